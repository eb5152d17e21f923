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

// Package mnemonic converts between 32-byte seeds and 25-word recovery phrases.
//
// The first 24 words carry the seed in 11-bit symbols. The last word is a
// checksum: the word for the first 11 bits of the SHA-512/256 digest of the seed.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/goalgorand/base"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
)

const (
	SeedSize   = crypto.SeedSize
	DataWords  = 24
	PhraseSize = DataWords + 1
)

// FromSeed returns the recovery phrase for a seed using the English dictionary
func FromSeed(seed []byte) (string, error) {
	return English.FromSeed(seed)
}

// ToSeed returns the seed encoded in a recovery phrase using the English dictionary
func ToSeed(phrase string) ([]byte, error) {
	return English.ToSeed(phrase)
}

// FromKey returns the recovery phrase for the seed of a keypair
func FromKey(keys *crypto.KeyPair) (string, error) {
	if keys == nil || len(keys.Secret) != crypto.SecretKeySize {
		return "", fmt.Errorf("%w: keypair has no secret key", common.ErrMalformedInput)
	}
	return FromSeed(keys.Seed())
}

// ToKey derives the keypair for a recovery phrase
func ToKey(phrase string) (*crypto.KeyPair, error) {
	seed, err := ToSeed(phrase)
	if err != nil {
		return nil, err
	}
	return crypto.GenerateKeysFromSeed(seed)
}

func (d *Dictionary) FromSeed(seed []byte) (string, error) {
	if len(seed) != SeedSize {
		return "", fmt.Errorf(
			"%w: seed must be %d bytes, got %d",
			common.ErrMalformedInput,
			SeedSize,
			len(seed),
		)
	}
	words := make([]string, 0, PhraseSize)
	for _, sym := range base.Encode2048(seed) {
		words = append(words, d.Word(sym))
	}
	words = append(words, d.checksumWord(seed))
	return strings.Join(words, " "), nil
}

func (d *Dictionary) ToSeed(phrase string) ([]byte, error) {
	words := strings.Fields(phrase)
	if len(words) != PhraseSize {
		return nil, fmt.Errorf(
			"%w: mnemonic must have %d words, got %d",
			common.ErrMalformedInput,
			PhraseSize,
			len(words),
		)
	}
	symbols := make([]uint16, DataWords)
	for i, w := range words[:DataWords] {
		idx, ok := d.Index(w)
		if !ok {
			return nil, UnknownWordError{Word: w, Position: i}
		}
		symbols[i] = idx
	}
	if _, ok := d.Index(words[DataWords]); !ok {
		return nil, UnknownWordError{Word: words[DataWords], Position: DataWords}
	}
	// 264 bits of symbols hold the 256-bit seed and a zero padding byte
	decoded := base.Decode2048(symbols)
	if len(decoded) != SeedSize+1 || decoded[SeedSize] != 0 {
		return nil, fmt.Errorf("%w: mnemonic padding bits are not zero", common.ErrMalformedInput)
	}
	seed := decoded[:SeedSize]
	expected := d.checksumWord(seed)
	if expected != words[DataWords] {
		return nil, ChecksumMismatchError{
			Expected: expected,
			Actual:   words[DataWords],
		}
	}
	return seed, nil
}

func (d *Dictionary) checksumWord(seed []byte) string {
	digest := crypto.Sum512_256(seed)
	return d.Word(base.Encode2048(digest[:2])[0])
}
