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
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

var (
	// ErrNonCanonical is returned when decoded data is valid MessagePack but is not
	// the single canonical encoding of its value
	ErrNonCanonical = errors.New("non-canonical encoding")

	// ErrIntegerOverflow is returned when a decoded integer does not fit its field
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrMalformed is returned for truncated data or unexpected MessagePack types
	ErrMalformed = errors.New("malformed msgpack")
)

// FieldError records which wire key a decoding failure happened at
type FieldError struct {
	Key string
	Err error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Key, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// classify maps msgp library errors onto this package's sentinels
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNonCanonical) ||
		errors.Is(err, ErrIntegerOverflow) ||
		errors.Is(err, ErrMalformed) {
		return err
	}
	var uintOverflow msgp.UintOverflow
	var uintBelowZero msgp.UintBelowZero
	if errors.As(err, &uintOverflow) || errors.As(err, &uintBelowZero) {
		return fmt.Errorf("%w: %w", ErrIntegerOverflow, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}

func fieldErr(key string, err error) error {
	return FieldError{Key: key, Err: classify(err)}
}
