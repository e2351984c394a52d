package application

import (
	"github.com/hashicorp/go-multierror"

	"localesync/internal/domain/entities"
)

// Merge applies every entry of patch to doc in patch order and returns the
// number of keys set. Keys that cannot be set (structural conflicts, invalid
// paths) are collected in a *multierror.Error; the remaining keys still
// apply.
func Merge(doc *entities.Document, patch *entities.Patch) (int, error) {
	var merr *multierror.Error
	applied := 0
	for _, e := range patch.Entries() {
		if err := doc.Set(e.Path, e.Value); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		applied++
	}
	return applied, merr.ErrorOrNil()
}
