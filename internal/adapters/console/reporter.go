// Package console prints the progress of a sync run for humans.
package console

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

const bannerWidth = 50

var _ output.Reporter = (*Reporter)(nil)

// Reporter writes one line per language and a summary banner, localized
// through an output.T.
type Reporter struct {
	w      io.Writer
	t      output.T
	locale string
	dryRun bool
}

func NewReporter(w io.Writer, t output.T, locale string, dryRun bool) *Reporter {
	return &Reporter{w: w, t: t, locale: locale, dryRun: dryRun}
}

func (r *Reporter) RunStarted(_ []string) {
	r.line("run.start", nil)
	if r.dryRun {
		r.line("run.dry_run", nil)
	}
	fmt.Fprintln(r.w)
}

func (r *Reporter) LanguageStarted(lang string) {
	r.line("lang.updating", map[string]any{"Name": r.t.LanguageName(lang), "Lang": lang})
}

func (r *Reporter) LanguageFinished(res entities.LanguageResult) {
	file := filepath.Base(res.Path)
	switch {
	case errors.Is(res.Err, domain.ErrNoTranslations):
		r.line("lang.missing", map[string]any{"Lang": res.Lang})
	case res.Err != nil:
		r.line("lang.failed", map[string]any{"File": file, "Error": cause(res.Err)})
	case res.Status == entities.StatusChecked:
		r.line("lang.checked", map[string]any{"File": file, "Count": res.Applied})
	default:
		r.line("lang.updated", map[string]any{"File": file, "Count": res.Applied})
	}
	for _, c := range res.Conflicts {
		key, reason := skipped(c)
		r.line("lang.conflict", map[string]any{"Key": key, "File": file, "Error": reason})
	}
}

func (r *Reporter) RunFinished(summary *entities.Summary) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.w, "\n%s\n", rule)
	r.line("summary.title", nil)
	fmt.Fprintln(r.w, rule)
	r.line("summary.updated", map[string]any{"Count": summary.Updated()})
	r.line("summary.failed", map[string]any{"Count": summary.Failed()})
	if n := summary.Conflicts(); n > 0 {
		r.line("summary.conflicts", map[string]any{"Count": n})
	}
	fmt.Fprintf(r.w, "%s\n\n", rule)
}

func (r *Reporter) line(key string, data map[string]any) {
	fmt.Fprintln(r.w, r.t.T(r.locale, key, data))
}

// cause drops the path prefix of read/write errors; the line already names
// the file.
func cause(err error) string {
	var readErr *domain.ReadError
	if errors.As(err, &readErr) {
		return readErr.Err.Error()
	}
	var writeErr *domain.WriteError
	if errors.As(err, &writeErr) {
		return writeErr.Err.Error()
	}
	return err.Error()
}

// skipped splits a per-key merge error into the key and why it was skipped.
func skipped(err error) (key, reason string) {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return conflict.Path, fmt.Sprintf("%q is not an object", conflict.At)
	}
	var keyErr *domain.KeyError
	if errors.As(err, &keyErr) {
		return keyErr.Path, keyErr.Err.Error()
	}
	return "", err.Error()
}
