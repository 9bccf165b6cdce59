package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/AegisReview/internal/config"
	"github.com/Tomas-vilte/AegisReview/internal/domain/models"
	"github.com/Tomas-vilte/AegisReview/internal/domain/ports"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/logger"
	"google.golang.org/genai"
)

var _ ports.ChangeAnalyzer = (*GeminiAnalyzer)(nil)

// Textos de respaldo fijos. Se publican tal cual como cuerpo de la reseña
// cuando el análisis no se puede hacer; el Outcome tipado permite al caller
// distinguirlos de una reseña real.
const (
	missingKeyFallback = "Cannot analyze code because GEMINI_API_KEY is not set."
	modelErrorFallback = "An error occurred while analyzing the code. Please check the logs."
)

// contentGenerator abstrae la llamada de generación del cliente de genai
// para poder mockearla en los tests.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiAnalyzer struct {
	generator contentGenerator
	model     string
	trans     *i18n.Translations
}

// NewGeminiAnalyzer crea el analizador de cambios basado en Gemini. Si la API
// key está vacía no se crea ningún cliente: el analizador queda en modo
// respaldo y nunca intenta una llamada.
func NewGeminiAnalyzer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiAnalyzer, error) {
	analyzer := &GeminiAnalyzer{
		model: cfg.GeminiModel,
		trans: trans,
	}

	if cfg.GeminiAPIKey == "" {
		return analyzer, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		msg := trans.GetMessage("ai_service.error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	analyzer.generator = client.Models
	return analyzer, nil
}

// NewGeminiAnalyzerWithGenerator crea un analizador con un generador inyectado.
func NewGeminiAnalyzerWithGenerator(generator contentGenerator, model string, trans *i18n.Translations) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		generator: generator,
		model:     model,
		trans:     trans,
	}
}

// AnalyzeChanges incrusta el diff completo en la plantilla fija y llama al
// modelo de forma síncrona. Las fallas del modelo no se propagan: se loguean
// y se sustituyen por el texto de respaldo correspondiente.
func (ga *GeminiAnalyzer) AnalyzeChanges(ctx context.Context, diff string) models.ReviewAnalysis {
	if ga.generator == nil {
		logger.Warn(ctx, "GEMINI_API_KEY no configurada, no se puede analizar el diff")
		return models.ReviewAnalysis{
			Text:    missingKeyFallback,
			Outcome: models.OutcomeMissingCredential,
		}
	}

	logger.Info(ctx, "analizando el diff con Gemini", "model", ga.model, "diff_bytes", len(diff))

	prompt := buildReviewPrompt(diff)

	resp, err := ga.generator.GenerateContent(ctx, ga.model, genai.Text(prompt), reviewGenerateConfig())
	if err != nil {
		logger.Error(ctx, "error durante el análisis de IA", err, "model", ga.model)
		return models.ReviewAnalysis{
			Text:    modelErrorFallback,
			Outcome: models.OutcomeModelError,
		}
	}

	responseText := strings.TrimSpace(formatResponse(resp))
	if responseText == "" {
		logger.Error(ctx, "error durante el análisis de IA", errors.New("respuesta vacía de la IA"), "model", ga.model)
		return models.ReviewAnalysis{
			Text:    modelErrorFallback,
			Outcome: models.OutcomeModelError,
		}
	}

	logger.Info(ctx, "análisis de IA completado", "model", ga.model)
	return models.ReviewAnalysis{
		Text:    responseText,
		Outcome: models.OutcomeReview,
	}
}
