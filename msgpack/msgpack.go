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

// Package msgpack implements canonical MessagePack encoding on top of
// github.com/tinylib/msgp.
//
// Records describe their wire layout with a Schema: a table of fields keyed by
// short wire names. A record is written as a map of only its present fields,
// sorted by key, with minimal-width unsigned integers and 'bin' byte strings.
// The same schema decodes strictly, so that decoding and re-encoding always
// reproduces the input bytes.
package msgpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"
)

// Encode returns the encoding of the given object
func Encode(m msgp.Marshaler) ([]byte, error) {
	return m.MarshalMsg(nil)
}

// Decode decodes a single object from data into dest and returns the number of bytes read
func Decode(data []byte, dest msgp.Unmarshaler) (int, error) {
	rest, err := dest.UnmarshalMsg(data)
	if err != nil {
		return 0, err
	}
	return len(data) - len(rest), nil
}

// DecodeExact decodes a single object from data into dest. Trailing bytes are an error.
func DecodeExact(data []byte, dest msgp.Unmarshaler) error {
	n, err := Decode(data, dest)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data)-n)
	}
	return nil
}

// StreamDecoder decodes a sequence of concatenated objects, such as a file of
// signed transactions, while tracking the byte offset of each
type StreamDecoder struct {
	data []byte
	pos  int
}

func NewStreamDecoder(data []byte) *StreamDecoder {
	return &StreamDecoder{data: data}
}

// Position returns the offset of the next object
func (d *StreamDecoder) Position() int {
	return d.pos
}

// EOF reports whether all data has been consumed
func (d *StreamDecoder) EOF() bool {
	return d.pos >= len(d.data)
}

// Decode decodes the next object into dest, returning its offset and length
func (d *StreamDecoder) Decode(dest msgp.Unmarshaler) (int, int, error) {
	if d.EOF() {
		return d.pos, 0, io.EOF
	}
	n, err := Decode(d.data[d.pos:], dest)
	if err != nil {
		return d.pos, 0, fmt.Errorf("decode at offset %d: %w", d.pos, err)
	}
	offset := d.pos
	d.pos += n
	return offset, n, nil
}

// Skip skips over the next object without decoding it
func (d *StreamDecoder) Skip() (int, int, error) {
	if d.EOF() {
		return d.pos, 0, io.EOF
	}
	rest, err := msgp.Skip(d.data[d.pos:])
	if err != nil {
		return d.pos, 0, classify(err)
	}
	offset := d.pos
	n := len(d.data) - offset - len(rest)
	d.pos += n
	return offset, n, nil
}

// ToJSON renders an encoded object as JSON for display. 'bin' values are shown as base64.
func ToJSON(data []byte) (string, error) {
	var buf bytes.Buffer
	if _, err := msgp.UnmarshalAsJSON(&buf, data); err != nil {
		return "", classify(err)
	}
	return buf.String(), nil
}
