package main

import (
	"context"
	"log"
	"os"

	"github.com/Tomas-vilte/AegisReview/internal/cli/command/review"
	cfg "github.com/Tomas-vilte/AegisReview/internal/config"
	"github.com/Tomas-vilte/AegisReview/internal/i18n"
	"github.com/Tomas-vilte/AegisReview/internal/infrastructure/factory"
	"github.com/Tomas-vilte/AegisReview/internal/logger"
	"github.com/Tomas-vilte/AegisReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	ctx := context.Background()

	cfgApp, err := cfg.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	serviceFactory := factory.NewReviewServiceFactory(cfgApp, translations)
	reviewCommand := review.NewReviewCommand(serviceFactory)

	commands := []*cli.Command{
		reviewCommand.CreateCommand(translations, cfgApp),
	}

	return &cli.Command{
		Name:        "aegis-review",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable info-level logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug-level logging",
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger.Initialize(command.Bool("debug"), command.Bool("verbose"))
			return ctx, nil
		},
	}, nil
}
