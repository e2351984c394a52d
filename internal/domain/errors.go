package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidKeyPath      = errors.New("invalid key path")
	ErrStructuralConflict  = errors.New("intermediate key holds a non-object value")
	ErrNotAnObject         = errors.New("root is not a JSON object")
	ErrInvalidEncoding     = errors.New("file is not valid UTF-8")
	ErrNoTranslations      = errors.New("no translations defined")
	ErrUnsupportedPatch    = errors.New("unsupported patch file format")
	ErrInvalidPatchValue   = errors.New("patch values must be strings")
	ErrInvalidLanguageCode = errors.New("invalid language code")
)

// ReadError reports a locale file that could not be loaded: missing,
// unreadable, not UTF-8 or not a JSON object.
type ReadError struct {
	Lang string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a locale file that could not be serialized or written.
type WriteError struct {
	Lang string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ConflictError is raised when a key path walks through a value that is not
// an object. At is the prefix of Path holding that value.
type ConflictError struct {
	Path string
	At   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("key %q: %q is not an object", e.Path, e.At)
}

func (e *ConflictError) Is(target error) bool { return target == ErrStructuralConflict }

// KeyError ties a per-key failure other than a conflict to its key path.
type KeyError struct {
	Path string
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Path, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
