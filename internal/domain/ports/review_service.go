package ports

import (
	"context"

	"github.com/Tomas-vilte/AegisReview/internal/domain/models"
)

// ReviewService define la interfaz para el servicio de reseña de Pull Requests.
type ReviewService interface {
	// ReviewPR ejecuta el pipeline completo: obtener diff, analizar y publicar
	// el comentario. progress recibe mensajes de avance para la UI.
	ReviewPR(ctx context.Context, prNumber int, progress func(string)) (models.ReviewResult, error)
}
