package entities

import (
	"sort"
	"strings"

	"localesync/internal/domain"
)

// KeyPath addresses a nested location in a Document, e.g. "insertImage.title".
type KeyPath string

// JoinKeyPath builds a KeyPath from its segments.
func JoinKeyPath(segs ...string) KeyPath {
	return KeyPath(strings.Join(segs, "."))
}

// Segments splits the path on '.'. Empty segments are rejected.
func (p KeyPath) Segments() ([]string, error) {
	segs := strings.Split(string(p), ".")
	for _, s := range segs {
		if s == "" {
			return nil, &domain.KeyError{Path: string(p), Err: domain.ErrInvalidKeyPath}
		}
	}
	return segs, nil
}

func (p KeyPath) String() string { return string(p) }

// Entry is one key of a Patch.
type Entry struct {
	Path  KeyPath
	Value string
}

// Patch is an ordered set of key path updates for a single language.
type Patch struct {
	entries []Entry
	index   map[KeyPath]int
}

func NewPatch() *Patch {
	return &Patch{index: make(map[KeyPath]int)}
}

// PatchFromMap builds a patch from m, in lexical key order.
func PatchFromMap(m map[string]string) *Patch {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := NewPatch()
	for _, k := range keys {
		p.Set(KeyPath(k), m[k])
	}
	return p
}

// Set adds or replaces the value for path. A replaced key keeps its
// original position.
func (p *Patch) Set(path KeyPath, value string) {
	if i, ok := p.index[path]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[path] = len(p.entries)
	p.entries = append(p.entries, Entry{Path: path, Value: value})
}

// Entries returns the patch in application order.
func (p *Patch) Entries() []Entry {
	return p.entries
}

func (p *Patch) Len() int {
	return len(p.entries)
}

// PatchSet maps language codes to their patches, in the order languages were
// first added.
type PatchSet struct {
	langs   []string
	patches map[string]*Patch
}

func NewPatchSet() *PatchSet {
	return &PatchSet{patches: make(map[string]*Patch)}
}

// For returns the patch of lang, creating an empty one if needed.
func (s *PatchSet) For(lang string) *Patch {
	if p, ok := s.patches[lang]; ok {
		return p
	}
	p := NewPatch()
	s.patches[lang] = p
	s.langs = append(s.langs, lang)
	return p
}

// Patch returns the patch of lang, if any.
func (s *PatchSet) Patch(lang string) (*Patch, bool) {
	p, ok := s.patches[lang]
	return p, ok
}

func (s *PatchSet) Languages() []string {
	return append([]string(nil), s.langs...)
}
