package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/orderedmap"

	"localesync/internal/domain"
)

// Document is one language's translation catalog: a tree of JSON objects
// whose leaves are strings. Object keys keep the order they were read in and
// new keys are appended.
type Document struct {
	root *orderedmap.OrderedMap
}

// NewDocument returns an empty catalog ({}).
func NewDocument() *Document {
	return &Document{root: newObject()}
}

func newObject() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// Root returns the top-level object. Nested objects are stored as
// *orderedmap.OrderedMap.
func (d *Document) Root() *orderedmap.OrderedMap {
	return d.root
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.root.Keys()...)
}

// Lookup returns the value at path. Objects come back as
// *orderedmap.OrderedMap.
func (d *Document) Lookup(path KeyPath) (any, bool) {
	segs, err := path.Segments()
	if err != nil {
		return nil, false
	}
	var cur any = d.root
	for _, seg := range segs {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set stores value at path, creating missing intermediate objects. An
// existing intermediate value that is not an object is left alone and a
// *domain.ConflictError is returned; nothing is modified in that case.
func (d *Document) Set(path KeyPath, value string) error {
	segs, err := path.Segments()
	if err != nil {
		return err
	}

	cur := d.root
	last := len(segs) - 1
	for i, seg := range segs[:last] {
		v, ok := cur.Get(seg)
		if !ok {
			child := newObject()
			cur.Set(seg, child)
			cur = child
			continue
		}
		child, ok := asObject(v)
		if !ok {
			return &domain.ConflictError{
				Path: string(path),
				At:   strings.Join(segs[:i+1], "."),
			}
		}
		cur = child
	}
	cur.Set(segs[last], value)
	return nil
}

// SortKeys reorders every object of the document lexically.
func (d *Document) SortKeys() {
	sortObject(d.root)
}

func sortObject(m *orderedmap.OrderedMap) {
	m.SortKeys(sort.Strings)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		sortValue(v)
	}
}

func sortValue(v any) {
	switch t := v.(type) {
	case *orderedmap.OrderedMap:
		sortObject(t)
	case []any:
		for _, e := range t {
			sortValue(e)
		}
	}
}

// MarshalJSON encodes the document compactly, without HTML escaping.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.root.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping key order and number
// literals as written. Any other root value yields domain.ErrNotAnObject and
// text that is not UTF-8 yields domain.ErrInvalidEncoding.
func (d *Document) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.ErrNotAnObject
	}
	if !utf8.Valid(trimmed) {
		return domain.ErrInvalidEncoding
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	root, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("invalid data after top-level object")
		}
		return err
	}
	d.root = root.(*orderedmap.OrderedMap)
	return nil
}

// decodeValue reads one value from dec. Objects become
// *orderedmap.OrderedMap, arrays []any and numbers json.Number.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, unexpectedEOF(err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := newObject()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, unexpectedEOF(err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not a string", tok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, closeDelim(dec)
	case '[':
		list := make([]any, 0)
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, closeDelim(dec)
	}
	return nil, fmt.Errorf("unexpected %q", delim)
}

func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return unexpectedEOF(err)
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func asObject(v any) (*orderedmap.OrderedMap, bool) {
	o, ok := v.(*orderedmap.OrderedMap)
	return o, ok
}
