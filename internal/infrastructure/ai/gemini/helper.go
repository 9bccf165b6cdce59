package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// formatResponse concatena el texto de todos los candidates de la respuesta
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					formattedContent.WriteString(part.Text)
				}
			}
		}
	}
	return formattedContent.String()
}

// reviewGenerateConfig retorna la configuración de generación para reseñas de PR
func reviewGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(10000),
	}
}

func float32Ptr(f float32) *float32 {
	return &f
}
