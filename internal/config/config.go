package config

import (
	"context"
	"fmt"

	domainErrors "github.com/Tomas-vilte/AegisReview/internal/domain/errors"
	"github.com/Tomas-vilte/AegisReview/internal/domain/models"
	"github.com/sethvargo/go-envconfig"
)

// Config contiene toda la configuración del proceso. Se construye una sola vez
// al inicio desde variables de entorno y se pasa explícitamente a cada
// componente; después del arranque nadie vuelve a leer el entorno.
type Config struct {
	GitHubToken  string `env:"GITHUB_TOKEN"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	RepoOwner    string `env:"REPO_OWNER"`
	RepoName     string `env:"REPO_NAME"`
	PRNumber     int    `env:"PR_NUMBER"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-1.5-flash"`
	Language     string `env:"LANGUAGE,default=en"`
}

// LoadConfig construye la configuración desde el entorno del proceso.
// Un PR_NUMBER no numérico falla acá, antes de crear cualquier cliente.
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("error al leer la configuración del entorno: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFrom construye la configuración desde un lookuper arbitrario.
// Pensado para inyectar configuraciones de prueba sin tocar el entorno.
func LoadConfigFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("error al leer la configuración del entorno: %w", err)
	}
	return &cfg, nil
}

// Validate verifica que la identidad del PR y la credencial de GitHub estén
// completas. La API key de Gemini no se valida acá: su ausencia la maneja el
// analizador con un texto de respaldo.
func (c *Config) Validate() error {
	if c.RepoOwner == "" {
		return domainErrors.NewConfigError("REPO_OWNER", "el owner del repositorio es requerido", nil)
	}
	if c.RepoName == "" {
		return domainErrors.NewConfigError("REPO_NAME", "el nombre del repositorio es requerido", nil)
	}
	if c.PRNumber <= 0 {
		return domainErrors.NewConfigError("PR_NUMBER", fmt.Sprintf("el número de PR debe ser un entero positivo, se recibió %d", c.PRNumber), nil)
	}
	if c.GitHubToken == "" {
		return domainErrors.NewConfigError("GITHUB_TOKEN", "el token de GitHub es requerido", nil)
	}
	return nil
}

// PRIdentity retorna la identidad inmutable del PR configurado.
func (c *Config) PRIdentity() models.PRIdentity {
	return models.PRIdentity{
		Owner:  c.RepoOwner,
		Repo:   c.RepoName,
		Number: c.PRNumber,
	}
}
