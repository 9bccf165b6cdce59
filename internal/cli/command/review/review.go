package review

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/AegisReview/internal/config"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/infrastructure/factory"
	"github.com/Tomas-vilte/AegisReview/internal/ui"
	"github.com/urfave/cli/v3"
)

type ReviewCommand struct {
	serviceFactory factory.ReviewServiceFactoryInterface
}

func NewReviewCommand(serviceFactory factory.ReviewServiceFactoryInterface) *ReviewCommand {
	return &ReviewCommand{
		serviceFactory: serviceFactory,
	}
}

func (c *ReviewCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "review",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("review.command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pr-number",
				Aliases: []string{"n"},
				Usage:   t.GetMessage("review.pr_number_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("review.owner_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("review.repo_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			// Los flags sobrescriben los valores que vinieron del entorno
			if n := command.Int("pr-number"); n != 0 {
				config.PRNumber = int(n)
			}
			if owner := command.String("owner"); owner != "" {
				config.RepoOwner = owner
			}
			if repo := command.String("repo"); repo != "" {
				config.RepoName = repo
			}

			reviewService, err := c.serviceFactory.CreateReviewService(ctx)
			if err != nil {
				return fmt.Errorf(t.GetMessage("error.review_service_creation", 0, nil)+": %w", err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("review.fetching_diff", 0, map[string]interface{}{
				"Number": config.PRNumber,
			}))
			spinner.Start()

			result, err := reviewService.ReviewPR(ctx, config.PRNumber, func(msg string) {
				spinner.Log(msg)
			})
			if err != nil {
				spinner.Error(t.GetMessage("error.review_failed", 0, nil))
				return fmt.Errorf(t.GetMessage("error.review_failed", 0, nil)+": %w", err)
			}

			if !result.Analysis.IsReview() {
				spinner.Log(t.GetMessage("review.fallback_posted", 0, nil))
			}

			spinner.Success(t.GetMessage("review.success", 0, map[string]interface{}{
				"Number": config.PRNumber,
				"URL":    result.CommentURL,
			}))
			return nil
		},
	}
}
