package output

import (
	"context"

	"localesync/internal/domain/entities"
)

// LocaleStore loads and saves one Document per language code.
type LocaleStore interface {
	// Read fails with *domain.ReadError.
	Read(ctx context.Context, lang string) (*entities.Document, error)
	// Write fails with *domain.WriteError.
	Write(ctx context.Context, lang string, doc *entities.Document) error
	// Path returns where the document of lang is stored.
	Path(lang string) string
}

// PatchSource loads the translation patches of every language.
type PatchSource interface {
	Load(ctx context.Context) (*entities.PatchSet, error)
}
