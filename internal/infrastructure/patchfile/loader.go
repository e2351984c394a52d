// Package patchfile loads translation patches from a JSON or TOML data file.
//
// Both formats map a language code to its keys. Keys may be written dotted
// ("insertImage.title") or as nested objects/tables; both forms flatten to
// the same key path. Every leaf must be a string.
package patchfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/pelletier/go-toml/v2"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

var _ output.PatchSource = (*Loader)(nil)

// Loader reads one patch file.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the file. JSON files keep the order of languages and keys as
// written; TOML files are applied in lexical order.
func (l *Loader) Load(_ context.Context) (*entities.PatchSet, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("patchfile: %w", err)
	}

	var set *entities.PatchSet
	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".json":
		set, err = decodeJSON(data)
	case ".toml":
		set, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("patchfile: %s: %w %q", l.path, domain.ErrUnsupportedPatch, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("patchfile: %s: %w", l.path, err)
	}
	return set, nil
}

func decodeJSON(data []byte) (*entities.PatchSet, error) {
	root := entities.NewDocument()
	if err := root.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	set := entities.NewPatchSet()
	for _, lang := range root.Keys() {
		if _, err := entities.ParseLanguage(lang); err != nil {
			return nil, err
		}
		v, _ := root.Root().Get(lang)
		obj, ok := v.(*orderedmap.OrderedMap)
		if !ok {
			return nil, fmt.Errorf("%s: expected an object of keys", lang)
		}
		if err := flattenOrdered(set.For(lang), lang, "", obj); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func flattenOrdered(patch *entities.Patch, lang, prefix string, obj *orderedmap.OrderedMap) error {
	for _, k := range obj.Keys() {
		path := joinPath(prefix, k)
		v, _ := obj.Get(k)
		switch t := v.(type) {
		case string:
			patch.Set(entities.KeyPath(path), t)
		case *orderedmap.OrderedMap:
			if err := flattenOrdered(patch, lang, path, t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %s: %w", lang, path, domain.ErrInvalidPatchValue)
		}
	}
	return nil
}

func decodeTOML(data []byte) (*entities.PatchSet, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	set := entities.NewPatchSet()
	for _, lang := range sortedKeys(raw) {
		if _, err := entities.ParseLanguage(lang); err != nil {
			return nil, err
		}
		table, ok := raw[lang].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a table of keys", lang)
		}
		if err := flattenTable(set.For(lang), lang, "", table); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func flattenTable(patch *entities.Patch, lang, prefix string, table map[string]any) error {
	for _, k := range sortedKeys(table) {
		path := joinPath(prefix, k)
		switch t := table[k].(type) {
		case string:
			patch.Set(entities.KeyPath(path), t)
		case map[string]any:
			if err := flattenTable(patch, lang, path, t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %s: %w", lang, path, domain.ErrInvalidPatchValue)
		}
	}
	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
