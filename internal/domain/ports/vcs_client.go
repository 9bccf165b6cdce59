package ports

import "context"

// VCSClient define los métodos comunes para interactuar con las APIs de los sistemas de control de versiones.
type VCSClient interface {
	// GetPullRequestDiff obtiene el diff unificado (texto crudo) de una Pull Request.
	GetPullRequestDiff(ctx context.Context, prNumber int) (string, error)
	// PublishComment publica un comentario en la Pull Request y retorna su URL canónica.
	PublishComment(ctx context.Context, prNumber int, body string) (string, error)
}
