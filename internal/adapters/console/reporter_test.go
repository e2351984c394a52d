package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"localesync/internal/adapters/console"
	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/infrastructure/i18n"
)

func TestReporter_FullRun(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf, i18n.NewTranslator("en"), "en", false)

	results := []entities.LanguageResult{
		{Lang: "es", Path: "/loc/es.json", Status: entities.StatusUpdated, Applied: 9},
		{Lang: "fr", Path: "/loc/fr.json", Status: entities.StatusFailed,
			Err: &domain.ReadError{Lang: "fr", Path: "/loc/fr.json", Err: errors.New("unexpected end of JSON input")}},
		{Lang: "ja", Path: "/loc/ja.json", Status: entities.StatusFailed, Err: domain.ErrNoTranslations},
		{Lang: "de", Path: "/loc/de.json", Status: entities.StatusUpdated, Applied: 1,
			Conflicts: []error{&domain.ConflictError{Path: "a.b", At: "a"}}},
	}

	r.RunStarted([]string{"es", "fr", "ja", "de"})
	for _, res := range results {
		r.LanguageStarted(res.Lang)
		r.LanguageFinished(res)
	}
	r.RunFinished(&entities.Summary{Results: results})

	rule := strings.Repeat("=", 50)
	want := strings.Join([]string{
		"Starting translation update...",
		"",
		"Updating Spanish (es)...",
		"✓ Updated es.json (9 keys)",
		"Updating French (fr)...",
		"✗ Error updating fr.json: unexpected end of JSON input",
		"Updating Japanese (ja)...",
		"⚠ No translations defined for ja",
		"Updating German (de)...",
		"✓ Updated de.json (1 keys)",
		`⚠ Skipped key a.b in de.json: "a" is not an object`,
		"",
		rule,
		"Translation Update Complete!",
		rule,
		"✓ Successfully updated: 2 languages",
		"✗ Failed: 2 languages",
		"⚠ Skipped keys: 1",
		rule,
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestReporter_DryRunFrench(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf, i18n.NewTranslator("en"), "fr", true)

	r.RunStarted([]string{"es"})
	r.LanguageFinished(entities.LanguageResult{Lang: "es", Path: "es.json", Status: entities.StatusChecked, Applied: 3})

	out := buf.String()
	assert.Contains(t, out, "Simulation : aucun fichier de langue ne sera écrit.")
	assert.Contains(t, out, "✓ es.json vérifié (3 clés, non écrit)")
}

func TestReporter_SkippedKeysNameTheKey(t *testing.T) {
	res := entities.LanguageResult{
		Lang: "es", Path: "/loc/es.json", Status: entities.StatusUpdated, Applied: 1,
		Conflicts: []error{
			&domain.ConflictError{Path: "insertImage.title", At: "insertImage"},
			&domain.KeyError{Path: "a..b", Err: domain.ErrInvalidKeyPath},
		},
	}

	var en bytes.Buffer
	console.NewReporter(&en, i18n.NewTranslator("en"), "en", false).LanguageFinished(res)
	assert.Equal(t, strings.Join([]string{
		"✓ Updated es.json (1 keys)",
		`⚠ Skipped key insertImage.title in es.json: "insertImage" is not an object`,
		"⚠ Skipped key a..b in es.json: invalid key path",
		"",
	}, "\n"), en.String())

	var fr bytes.Buffer
	console.NewReporter(&fr, i18n.NewTranslator("en"), "fr", false).LanguageFinished(res)
	assert.Contains(t, fr.String(), `⚠ Clé insertImage.title ignorée dans es.json : "insertImage" is not an object`)
}
