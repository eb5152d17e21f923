// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msgpack

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/tinylib/msgp/msgp"
)

// Field describes how one wire key of a record is tested for presence, written and read
type Field[T any] struct {
	Key     string
	Present func(*T) bool
	Append  func([]byte, *T) ([]byte, error)
	Read    func([]byte, *T) ([]byte, error)
}

// Schema is a table of fields for a record type, ordered by wire key.
//
// Records are encoded as a map holding only their present fields, in ascending
// key order. Decoding is strict and only accepts that exact form.
type Schema[T any] struct {
	fields []Field[T]
	index  map[string]int
}

// NewSchema builds a schema from the given fields. It panics on duplicate keys, so
// schemas should be built during package initialization.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}
	slices.SortFunc(s.fields, func(a, b Field[T]) int {
		return strings.Compare(a.Key, b.Key)
	})
	for i, f := range s.fields {
		if _, ok := s.index[f.Key]; ok {
			panic(fmt.Sprintf("msgpack: duplicate key %q in schema", f.Key))
		}
		s.index[f.Key] = i
	}
	return s
}

// Keys returns the wire keys in encoding order
func (s *Schema[T]) Keys() []string {
	ret := make([]string, len(s.fields))
	for i, f := range s.fields {
		ret[i] = f.Key
	}
	return ret
}

// Len returns the number of fields of v that will be encoded
func (s *Schema[T]) Len(v *T) int {
	count := 0
	for _, f := range s.fields {
		if f.Present(v) {
			count++
		}
	}
	return count
}

// Append appends the canonical encoding of v to b
func (s *Schema[T]) Append(b []byte, v *T) ([]byte, error) {
	b = msgp.AppendMapHeader(b, uint32(s.Len(v)))
	var err error
	for _, f := range s.fields {
		if !f.Present(v) {
			continue
		}
		b = msgp.AppendString(b, f.Key)
		if b, err = f.Append(b, v); err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Key, err)
		}
	}
	return b, nil
}

// Read decodes a record from the start of b into v and returns the remaining bytes.
// v is reset before decoding. Unknown keys, out of order keys, zero-valued fields
// and non-minimal encodings are rejected with ErrNonCanonical.
func (s *Schema[T]) Read(b []byte, v *T) ([]byte, error) {
	var zero T
	*v = zero
	start := b
	sz, o, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return nil, classify(err)
	}
	if int(sz) > len(s.fields) {
		return nil, fmt.Errorf("%w: map has %d entries, record has %d fields", ErrNonCanonical, sz, len(s.fields))
	}
	prev := -1
	for range sz {
		var key []byte
		key, o, err = msgp.ReadMapKeyZC(o)
		if err != nil {
			return nil, classify(err)
		}
		idx, ok := s.index[string(key)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", ErrNonCanonical, key)
		}
		if idx <= prev {
			return nil, fmt.Errorf("%w: key %q out of order", ErrNonCanonical, key)
		}
		prev = idx
		f := s.fields[idx]
		if o, err = f.Read(o, v); err != nil {
			return nil, fieldErr(f.Key, err)
		}
		if !f.Present(v) {
			return nil, fieldErr(f.Key, fmt.Errorf("%w: zero value encoded", ErrNonCanonical))
		}
	}
	// Catch non-minimal integer, length and header widths
	consumed := start[:len(start)-len(o)]
	canonical, err := s.Append(make([]byte, 0, len(consumed)), v)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(consumed, canonical) {
		return nil, fmt.Errorf("%w: re-encoding differs from input", ErrNonCanonical)
	}
	return o, nil
}
