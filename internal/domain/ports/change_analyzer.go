package ports

import (
	"context"

	"github.com/Tomas-vilte/AegisReview/internal/domain/models"
)

// ChangeAnalyzer genera una reseña textual a partir del diff de una Pull Request.
// Nunca retorna error: las fallas del modelo se clasificican en el resultado
// tipado para que el caller decida qué hacer con ellas.
type ChangeAnalyzer interface {
	AnalyzeChanges(ctx context.Context, diff string) models.ReviewAnalysis
}
