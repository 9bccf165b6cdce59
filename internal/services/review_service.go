package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/AegisReview/internal/domain/models"
	"github.com/Tomas-vilte/AegisReview/internal/domain/ports"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/logger"
)

var _ ports.ReviewService = (*ReviewService)(nil)

type ReviewService struct {
	vcsClient ports.VCSClient
	analyzer  ports.ChangeAnalyzer
	trans     *i18n.Translations
}

func NewReviewService(vcsClient ports.VCSClient, analyzer ports.ChangeAnalyzer, trans *i18n.Translations) *ReviewService {
	return &ReviewService{
		vcsClient: vcsClient,
		analyzer:  analyzer,
		trans:     trans,
	}
}

// ReviewPR ejecuta el pipeline lineal: obtener diff, analizar, publicar.
// Si el fetch falla el pipeline aborta sin publicar nada. Si el análisis
// falla, el texto de respaldo se publica igual (comportamiento observado del
// producto, ver DESIGN.md) pero el resultado tipado lo deja registrado.
func (s *ReviewService) ReviewPR(ctx context.Context, prNumber int, progress func(string)) (models.ReviewResult, error) {
	notify := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}

	notify(s.trans.GetMessage("review.fetching_diff", 0, map[string]interface{}{
		"Number": prNumber,
	}))

	diff, err := s.vcsClient.GetPullRequestDiff(ctx, prNumber)
	if err != nil {
		msg := s.trans.GetMessage("error.fetching_diff", 0, map[string]interface{}{
			"Number": prNumber,
			"Error":  err.Error(),
		})
		return models.ReviewResult{}, fmt.Errorf("%s", msg)
	}

	notify(s.trans.GetMessage("review.analyzing", 0, nil))

	analysis := s.analyzer.AnalyzeChanges(ctx, diff)
	if !analysis.IsReview() {
		logger.Warn(ctx, "el análisis no produjo una reseña real, se publicará el texto de respaldo",
			"outcome", string(analysis.Outcome))
	}

	body := models.FormatReviewComment(analysis.Text)

	notify(s.trans.GetMessage("review.publishing", 0, nil))

	commentURL, err := s.vcsClient.PublishComment(ctx, prNumber, body)
	if err != nil {
		msg := s.trans.GetMessage("error.publishing_comment", 0, map[string]interface{}{
			"Number": prNumber,
			"Error":  err.Error(),
		})
		return models.ReviewResult{}, fmt.Errorf("%s", msg)
	}

	return models.ReviewResult{
		Analysis:    analysis,
		CommentBody: body,
		CommentURL:  commentURL,
	}, nil
}
