package input

import (
	"context"

	"localesync/internal/domain/entities"
)

// SyncUseCase applies translation patches to the locale files of a set of
// languages.
type SyncUseCase interface {
	Run(ctx context.Context, patches *entities.PatchSet, languages []string) (*entities.Summary, error)
}
