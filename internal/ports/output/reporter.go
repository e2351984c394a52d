package output

import "localesync/internal/domain/entities"

// Reporter receives progress of a sync run as it happens.
type Reporter interface {
	RunStarted(languages []string)
	LanguageStarted(lang string)
	LanguageFinished(result entities.LanguageResult)
	RunFinished(summary *entities.Summary)
}
