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

package mnemonic

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownWord      = errors.New("unknown mnemonic word")
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
)

// UnknownWordError indicates a word that is not in the dictionary
type UnknownWordError struct {
	Word     string
	Position int
}

func (e UnknownWordError) Error() string {
	return fmt.Sprintf("unknown mnemonic word %q at position %d", e.Word, e.Position+1)
}

func (UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}

// ChecksumMismatchError indicates that the checksum word does not match the seed
type ChecksumMismatchError struct {
	Expected string
	Actual   string
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"mnemonic checksum mismatch: expected checksum word %q, got %q",
		e.Expected,
		e.Actual,
	)
}

func (ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
