package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Review your pull requests with AI-generated summaries"

	[app_description]
	other = "Aegis Review fetches a pull request diff from GitHub, asks Gemini for a summary and posts it back as a comment"

	[review.command_usage]
	other = "Fetch the PR diff, analyze it with AI and post the review as a comment"

	[review.pr_number_usage]
	other = "Pull request number (overrides PR_NUMBER)"

	[review.owner_usage]
	other = "Repository owner (overrides REPO_OWNER)"

	[review.repo_usage]
	other = "Repository name (overrides REPO_NAME)"

	[review.fetching_diff]
	other = "Fetching diff for PR #{{.Number}}..."

	[review.analyzing]
	other = "Analyzing changes with Gemini..."

	[review.publishing]
	other = "Posting review comment..."

	[review.success]
	other = "Review posted on PR #{{.Number}}: {{.URL}}"

	[review.fallback_posted]
	other = "The AI analysis failed, a fallback message was posted instead of a review"

	[error.review_service_creation]
	other = "Could not create the review service"

	[error.review_failed]
	other = "Could not complete the PR review"

	[error.missing_pr_info]
	other = "Missing required info (owner, repo, PR number or token) for the GitHub call"

	[error.fetching_diff]
	other = "Error fetching the diff for PR #{{.Number}}: {{.Error}}"

	[error.publishing_comment]
	other = "Error posting the comment on PR #{{.Number}}: {{.Error}}"

	[ai_service.error_ai_client]
	other = "Error creating the AI client: {{.Error}}"
`
