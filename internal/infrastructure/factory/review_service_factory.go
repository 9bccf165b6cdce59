package factory

import (
	"context"

	"github.com/Tomas-vilte/AegisReview/internal/config"
	"github.com/Tomas-vilte/AegisReview/internal/domain/ports"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/AegisReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/AegisReview/internal/services"
)

type ReviewServiceFactoryInterface interface {
	CreateReviewService(ctx context.Context) (ports.ReviewService, error)
}

type ReviewServiceFactory struct {
	config *config.Config
	trans  *i18n.Translations
}

func NewReviewServiceFactory(cfg *config.Config, trans *i18n.Translations) *ReviewServiceFactory {
	return &ReviewServiceFactory{
		config: cfg,
		trans:  trans,
	}
}

// CreateReviewService valida la configuración y arma el pipeline completo.
// Si la identidad del PR o el token de GitHub faltan, falla acá y ningún
// cliente llega a crearse.
func (f *ReviewServiceFactory) CreateReviewService(ctx context.Context) (ports.ReviewService, error) {
	if err := f.config.Validate(); err != nil {
		return nil, err
	}

	identity := f.config.PRIdentity()
	vcsClient := github.NewGitHubClient(identity.Owner, identity.Repo, f.config.GitHubToken, f.trans)

	analyzer, err := gemini.NewGeminiAnalyzer(ctx, f.config, f.trans)
	if err != nil {
		return nil, err
	}

	return services.NewReviewService(vcsClient, analyzer, f.trans), nil
}
