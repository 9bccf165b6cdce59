package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("should load the embedded default messages", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		msg := trans.GetMessage("app_usage", 0, nil)

		assert.NotEmpty(t, msg)
		assert.NotContains(t, msg, "Translation missing")
	})

	t.Run("should resolve messages with template data", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		msg := trans.GetMessage("review.fetching_diff", 0, map[string]interface{}{
			"Number": 7,
		})

		assert.Contains(t, msg, "7")
	})

	t.Run("should fall back for unknown message IDs", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		msg := trans.GetMessage("does.not.exist", 0, nil)

		assert.Equal(t, "Translation missing: does.not.exist", msg)
	})

	t.Run("should switch to Spanish", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		err = trans.SetLanguage("es")

		require.NoError(t, err)
		msg := trans.GetMessage("review.analyzing", 0, nil)
		assert.Contains(t, msg, "Analizando")
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		err = trans.SetLanguage("fr")

		assert.Error(t, err)
	})
}
