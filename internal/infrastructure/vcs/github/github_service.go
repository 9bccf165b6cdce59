package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/AegisReview/internal/domain/ports"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/logger"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	GetRaw(ctx context.Context, owner, repo string, number int, opts github.RawOptions) (string, *github.Response, error)
}

type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	token         string
	trans         *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
		token:         token,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	owner string,
	repo string,
	token string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		token:         token,
		trans:         trans,
	}
}

// GetPullRequestDiff obtiene el diff crudo del PR pidiendo el media type de diff.
// Si falta la identidad o el token no se intenta ninguna llamada de red.
func (ghc *GitHubClient) GetPullRequestDiff(ctx context.Context, prNumber int) (string, error) {
	if err := ghc.checkRequestInfo(prNumber); err != nil {
		return "", err
	}

	diff, resp, err := ghc.prService.GetRaw(ctx, ghc.owner, ghc.repo, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		logger.Error(ctx, "error al obtener el diff del PR", err,
			"owner", ghc.owner,
			"repo", ghc.repo,
			"pr_number", prNumber,
			"status", responseStatus(resp),
		)
		return "", fmt.Errorf("error al obtener el diff del PR %d de Github: %w", prNumber, err)
	}

	logger.Info(ctx, "diff del PR obtenido", "pr_number", prNumber, "bytes", len(diff))
	return diff, nil
}

// PublishComment publica el comentario en el PR (vía el recurso de issues) y
// retorna la URL canónica del comentario creado.
func (ghc *GitHubClient) PublishComment(ctx context.Context, prNumber int, body string) (string, error) {
	if err := ghc.checkRequestInfo(prNumber); err != nil {
		return "", err
	}

	comment, resp, err := ghc.issuesService.CreateComment(ctx, ghc.owner, ghc.repo, prNumber, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		logger.Error(ctx, "error al publicar el comentario en el PR", err,
			"owner", ghc.owner,
			"repo", ghc.repo,
			"pr_number", prNumber,
			"status", responseStatus(resp),
		)
		return "", fmt.Errorf("error al publicar el comentario en el PR %d de Github: %w", prNumber, err)
	}

	logger.Info(ctx, "comentario de reseña publicado", "pr_number", prNumber, "html_url", comment.GetHTMLURL())
	return comment.GetHTMLURL(), nil
}

func (ghc *GitHubClient) checkRequestInfo(prNumber int) error {
	if ghc.owner == "" || ghc.repo == "" || prNumber <= 0 || ghc.token == "" {
		return fmt.Errorf("%s", ghc.trans.GetMessage("error.missing_pr_info", 0, nil))
	}
	return nil
}

func responseStatus(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
