package application

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/input"
	"localesync/internal/ports/output"
)

var log = logging.Logger("sync")

var _ input.SyncUseCase = (*SyncService)(nil)

// SyncService runs read → merge → write for each language. A failing
// language never stops the others.
type SyncService struct {
	store    output.LocaleStore
	reporter output.Reporter
	dryRun   bool
}

func NewSyncService(store output.LocaleStore, reporter output.Reporter, dryRun bool) *SyncService {
	return &SyncService{
		store:    store,
		reporter: reporter,
		dryRun:   dryRun,
	}
}

// Run processes languages in order, or every language of patches when
// languages is empty. The returned error is only set when ctx is done; the
// summary then holds the languages processed so far.
func (s *SyncService) Run(ctx context.Context, patches *entities.PatchSet, languages []string) (*entities.Summary, error) {
	if len(languages) == 0 {
		languages = patches.Languages()
	}

	summary := &entities.Summary{}
	s.reporter.RunStarted(languages)
	for _, lang := range languages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		s.reporter.LanguageStarted(lang)
		res := s.syncLanguage(ctx, lang, patches)
		switch {
		case res.Err != nil:
			log.Warnw("locale not updated", "lang", lang, "path", res.Path, "err", res.Err)
		case len(res.Conflicts) > 0:
			log.Warnw("locale updated with skipped keys", "lang", lang, "applied", res.Applied, "skipped", len(res.Conflicts))
		default:
			log.Debugw("locale updated", "lang", lang, "applied", res.Applied, "status", res.Status)
		}
		summary.Results = append(summary.Results, res)
		s.reporter.LanguageFinished(res)
	}
	s.reporter.RunFinished(summary)
	return summary, nil
}

func (s *SyncService) syncLanguage(ctx context.Context, lang string, patches *entities.PatchSet) entities.LanguageResult {
	res := entities.LanguageResult{Lang: lang, Path: s.store.Path(lang)}

	patch, ok := patches.Patch(lang)
	if !ok {
		res.Status = entities.StatusFailed
		res.Err = domain.ErrNoTranslations
		return res
	}

	doc, err := s.store.Read(ctx, lang)
	if err != nil {
		res.Status = entities.StatusFailed
		res.Err = err
		return res
	}

	res.Applied, err = Merge(doc, patch)
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			res.Conflicts = merr.WrappedErrors()
		} else {
			res.Conflicts = []error{err}
		}
	}

	if s.dryRun {
		res.Status = entities.StatusChecked
		return res
	}

	if err := s.store.Write(ctx, lang, doc); err != nil {
		res.Status = entities.StatusFailed
		res.Err = err
		return res
	}
	res.Status = entities.StatusUpdated
	return res
}
