package config

import (
	"context"
	"testing"

	domainErrors "github.com/Tomas-vilte/AegisReview/internal/domain/errors"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	t.Run("should load a complete configuration", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		lookuper := envconfig.MapLookuper(map[string]string{
			"GITHUB_TOKEN":   "gh-token",
			"GEMINI_API_KEY": "gemini-key",
			"REPO_OWNER":     "acme",
			"REPO_NAME":      "widgets",
			"PR_NUMBER":      "7",
		})

		// Act
		cfg, err := LoadConfigFrom(ctx, lookuper)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "gh-token", cfg.GitHubToken)
		assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
		assert.Equal(t, "acme", cfg.RepoOwner)
		assert.Equal(t, "widgets", cfg.RepoName)
		assert.Equal(t, 7, cfg.PRNumber)
	})

	t.Run("should apply defaults for model and language", func(t *testing.T) {
		ctx := context.Background()
		lookuper := envconfig.MapLookuper(map[string]string{})

		cfg, err := LoadConfigFrom(ctx, lookuper)

		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("should fail with non-numeric PR_NUMBER", func(t *testing.T) {
		ctx := context.Background()
		lookuper := envconfig.MapLookuper(map[string]string{
			"PR_NUMBER": "not-a-number",
		})

		cfg, err := LoadConfigFrom(ctx, lookuper)

		assert.Nil(t, cfg, "No debería cargarse una configuración con PR_NUMBER inválido")
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			GitHubToken: "gh-token",
			RepoOwner:   "acme",
			RepoName:    "widgets",
			PRNumber:    7,
		}
	}

	t.Run("should accept a valid configuration", func(t *testing.T) {
		cfg := validConfig()

		err := cfg.Validate()

		assert.NoError(t, err)
	})

	t.Run("should reject a missing owner", func(t *testing.T) {
		cfg := validConfig()
		cfg.RepoOwner = ""

		err := cfg.Validate()

		require.Error(t, err)
		var configErr *domainErrors.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "REPO_OWNER", configErr.Field)
	})

	t.Run("should reject a missing repo name", func(t *testing.T) {
		cfg := validConfig()
		cfg.RepoName = ""

		err := cfg.Validate()

		require.Error(t, err)
		var configErr *domainErrors.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "REPO_NAME", configErr.Field)
	})

	t.Run("should reject an unset PR number", func(t *testing.T) {
		cfg := validConfig()
		cfg.PRNumber = 0

		err := cfg.Validate()

		require.Error(t, err)
		var configErr *domainErrors.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "PR_NUMBER", configErr.Field)
	})

	t.Run("should reject a missing GitHub token", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHubToken = ""

		err := cfg.Validate()

		require.Error(t, err)
		var configErr *domainErrors.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "GITHUB_TOKEN", configErr.Field)
	})

	t.Run("should not require the Gemini API key", func(t *testing.T) {
		cfg := validConfig()
		cfg.GeminiAPIKey = ""

		err := cfg.Validate()

		assert.NoError(t, err)
	})
}

func TestConfig_PRIdentity(t *testing.T) {
	cfg := &Config{
		RepoOwner: "acme",
		RepoName:  "widgets",
		PRNumber:  7,
	}

	identity := cfg.PRIdentity()

	assert.Equal(t, "acme", identity.Owner)
	assert.Equal(t, "widgets", identity.Repo)
	assert.Equal(t, 7, identity.Number)
}
