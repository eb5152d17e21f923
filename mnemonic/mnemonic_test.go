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
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownMnemonics(t *testing.T) {
	testDefs := []struct {
		phrase  string
		seedHex string
	}{
		{
			phrase:  test.ZeroSeedMnemonic,
			seedHex: "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			phrase:  test.GiraffeMnemonic,
			seedHex: "978858296828f29cc39f0e5faf8fcdfac34eb6e9e0005e86d1ec76c01b3021a3",
		},
		{
			phrase:  test.AdviceMnemonic,
			seedHex: "2048abcf3999de60dc97faa3db915fa3bd6cfdd0ef1712064b61fcf4b6958856",
		},
		{
			phrase:  strings.Repeat("abandon ", 22) + "zoo abandon mom",
			seedHex: "000000000000000000000000000000000000000000000000000000000000fc1f",
		},
	}
	for _, testDef := range testDefs {
		seed, err := ToSeed(testDef.phrase)
		if err != nil {
			t.Fatalf("failure decoding mnemonic: %s", err)
		}
		if !bytes.Equal(seed, test.DecodeHexString(testDef.seedHex)) {
			t.Fatalf("seed did not match expected value, got: %x, wanted: %s", seed, testDef.seedHex)
		}
		phrase, err := FromSeed(seed)
		require.NoError(t, err)
		assert.Equal(t, testDef.phrase, phrase)
	}
}

func TestRoundTrip(t *testing.T) {
	for range 64 {
		seed := make([]byte, SeedSize)
		_, err := rand.Read(seed)
		require.NoError(t, err)
		phrase, err := FromSeed(seed)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(phrase), PhraseSize)
		decoded, err := ToSeed(phrase)
		require.NoError(t, err)
		assert.Equal(t, seed, decoded)
	}
}

func TestChecksumMismatch(t *testing.T) {
	words := strings.Fields(test.ZeroSeedMnemonic)
	words[DataWords] = "abandon"
	_, err := ToSeed(strings.Join(words, " "))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	var mismatch ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "invest", mismatch.Expected)
	assert.Equal(t, "abandon", mismatch.Actual)
	assert.Contains(t, err.Error(), "invest")
	assert.Contains(t, err.Error(), "abandon")
}

func TestInvalidMnemonics(t *testing.T) {
	zeroWords := strings.Fields(test.ZeroSeedMnemonic)
	testDefs := []struct {
		name     string
		phrase   string
		expected error
	}{
		{
			name:     "empty",
			phrase:   "",
			expected: common.ErrMalformedInput,
		},
		{
			name:     "too few words",
			phrase:   strings.Join(zeroWords[:24], " "),
			expected: common.ErrMalformedInput,
		},
		{
			name:     "too many words",
			phrase:   test.ZeroSeedMnemonic + " abandon",
			expected: common.ErrMalformedInput,
		},
		{
			name:     "unknown data word",
			phrase:   "notaword " + strings.Join(zeroWords[1:], " "),
			expected: ErrUnknownWord,
		},
		{
			name:     "unknown checksum word",
			phrase:   strings.Join(zeroWords[:24], " ") + " notaword",
			expected: ErrUnknownWord,
		},
		{
			name:     "uppercase word",
			phrase:   "ABANDON " + strings.Join(zeroWords[1:], " "),
			expected: ErrUnknownWord,
		},
		{
			name:     "non-zero padding",
			phrase:   strings.Repeat("abandon ", 23) + "zoo invest",
			expected: common.ErrMalformedInput,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			seed, err := ToSeed(testDef.phrase)
			assert.Nil(t, seed)
			if !errors.Is(err, testDef.expected) {
				t.Fatalf("did not get expected error\n  got: %v\n  wanted: %s", err, testDef.expected)
			}
		})
	}
}

func TestUnknownWordPosition(t *testing.T) {
	words := strings.Fields(test.ZeroSeedMnemonic)
	words[5] = "bogus"
	_, err := ToSeed(strings.Join(words, " "))
	var unknown UnknownWordError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Word)
	assert.Equal(t, 5, unknown.Position)
}

func TestWhitespaceSeparators(t *testing.T) {
	phrase := strings.ReplaceAll(test.GiraffeMnemonic, " ", "\n  ")
	seed, err := ToSeed(phrase)
	require.NoError(t, err)
	expected, err := ToSeed(test.GiraffeMnemonic)
	require.NoError(t, err)
	assert.Equal(t, expected, seed)
}

func TestFromSeedInvalid(t *testing.T) {
	_, err := FromSeed(make([]byte, 31))
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	_, err = FromKey(&crypto.KeyPair{})
	assert.ErrorIs(t, err, common.ErrMalformedInput)
}

func TestKeyConversions(t *testing.T) {
	keys, err := ToKey(test.ZeroSeedMnemonic)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, SeedSize), keys.Seed())
	phrase, err := FromKey(keys)
	require.NoError(t, err)
	assert.Equal(t, test.ZeroSeedMnemonic, phrase)
}

func TestDictionary(t *testing.T) {
	assert.Equal(t, "abandon", English.Word(0))
	assert.Equal(t, "zoo", English.Word(2047))
	idx, ok := English.Index("invest")
	assert.True(t, ok)
	assert.Equal(t, "invest", English.Word(idx))
	_, ok = English.Index("bogus")
	assert.False(t, ok)
	assert.Panics(t, func() { NewDictionary([]string{"a", "b"}) })
}
