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

package base

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownValues(t *testing.T) {
	testDefs := []struct {
		input      string
		expected32 string
		expected64 string
	}{
		{input: "", expected32: "", expected64: ""},
		{input: "f", expected32: "MY", expected64: "Zg"},
		{input: "fo", expected32: "MZXQ", expected64: "Zm8"},
		{input: "foo", expected32: "MZXW6", expected64: "Zm9v"},
		{input: "foob", expected32: "MZXW6YQ", expected64: "Zm9vYg"},
		{input: "fooba", expected32: "MZXW6YTB", expected64: "Zm9vYmE"},
		{input: "foobar", expected32: "MZXW6YTBOI", expected64: "Zm9vYmFy"},
		{input: "hello", expected32: "NBSWY3DP", expected64: "aGVsbG8"},
	}
	for _, testDef := range testDefs {
		if got := Encode32([]byte(testDef.input)); got != testDef.expected32 {
			t.Fatalf(
				"did not get expected base32 for %q\n  got: %s\n  wanted: %s",
				testDef.input,
				got,
				testDef.expected32,
			)
		}
		if got := Encode64([]byte(testDef.input)); got != testDef.expected64 {
			t.Fatalf(
				"did not get expected base64 for %q\n  got: %s\n  wanted: %s",
				testDef.input,
				got,
				testDef.expected64,
			)
		}
		assert.Equal(t, testDef.input, string(Decode32(testDef.expected32)))
		assert.Equal(t, testDef.input, string(Decode64(testDef.expected64)))
	}
}

func TestEncode2048KnownValues(t *testing.T) {
	testDefs := []struct {
		input    []byte
		expected []uint16
	}{
		{input: []byte{}, expected: []uint16{}},
		{input: []byte("hello"), expected: []uint16{1384, 1420, 1457, 55}},
		{input: []byte{0xff, 0x07}, expected: []uint16{0x7ff, 0}},
		{input: []byte{0x01, 0x02, 0x03, 0x04}, expected: []uint16{0x201, 0x060, 0x010}},
	}
	for _, testDef := range testDefs {
		got := Encode2048(testDef.input)
		assert.Equal(t, testDef.expected, got)
		assert.Equal(t, testDef.input, Decode2048(got))
	}
	// 256 bits need 24 symbols, leaving a whole padding byte behind
	zeroSeed := make([]byte, 32)
	symbols := Encode2048(zeroSeed)
	assert.Equal(t, make([]uint16, 24), symbols)
	assert.Equal(t, append(zeroSeed, 0), Decode2048(symbols))
}

func TestEncode64Padded(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", Encode64Padded([]byte("hello")))
	assert.Equal(t, "Zm9vYmFy", Encode64Padded([]byte("foobar")))
	assert.Equal(t, "Zg==", Encode64Padded([]byte("f")))
	assert.Equal(t, "hello", string(Decode64("aGVsbG8=")))
	genesisHash := test.DecodeBase64String(test.GenesisHashB64)
	assert.Equal(t, test.GenesisHashB64, Encode64Padded(genesisHash))
}

func TestDecodeStopsAtForeignSymbol(t *testing.T) {
	assert.Equal(t, []byte("hel"), Decode32("NBSWY-3DP"))
	assert.Equal(t, []byte("hel"), Decode32("NBSWYnbsw"))
	assert.Equal(t, []byte("foo"), Decode64("Zm9v!Zm9v"))
	assert.Empty(t, Decode32("*"))
	assert.Equal(
		t,
		Decode2048([]uint16{1384, 1420}),
		Decode2048([]uint16{1384, 1420, 2048, 1457, 55}),
	)
}

func TestAlphabetPredicates(t *testing.T) {
	assert.True(t, UsesB32Alphabet(test.ZeroAddress))
	assert.True(t, UsesB32Alphabet(""))
	assert.False(t, UsesB32Alphabet("NBSWY3DP="))
	assert.False(t, UsesB32Alphabet("nbswy3dp"))
	assert.False(t, UsesB32Alphabet("NBSWY1DP"))
	assert.True(t, UsesB64Alphabet("aGVsbG8+/"))
	assert.False(t, UsesB64Alphabet("aGVsbG8="))
	assert.False(t, UsesB64Alphabet("aGVs bG8"))
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for size := 0; size < 130; size++ {
		data := make([]byte, size)
		_, _ = rnd.Read(data)
		if got := Decode32(Encode32(data)); !bytes.Equal(got, data) {
			t.Fatalf("base32 round trip failed for %x: got %x", data, got)
		}
		if got := Decode64(Encode64(data)); !bytes.Equal(got, data) {
			t.Fatalf("base64 round trip failed for %x: got %x", data, got)
		}
		if got := Decode64(Encode64Padded(data)); !bytes.Equal(got, data) {
			t.Fatalf("padded base64 round trip failed for %x: got %x", data, got)
		}
		got := Decode2048(Encode2048(data))
		if (size*8)%11 > 0 && (size*8)%11 <= 3 {
			// Final symbol carries at least 8 padding bits
			if !bytes.Equal(got, append(bytes.Clone(data), 0)) {
				t.Fatalf("base2048 round trip failed for %x: got %x", data, got)
			}
		} else if !bytes.Equal(got, data) {
			t.Fatalf("base2048 round trip failed for %x: got %x", data, got)
		}
	}
}

// The base-32 symbol values must match an independent 8-to-5 bit regrouping
func TestEncode32MatchesConvertBits(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for size := 1; size < 64; size++ {
		data := make([]byte, size)
		_, _ = rnd.Read(data)
		groups, err := bech32.ConvertBits(data, 8, 5, true)
		require.NoError(t, err)
		encoded := Encode32(data)
		require.Len(t, encoded, len(groups))
		for i, g := range groups {
			if encoded[i] != B32Digits[g] {
				t.Fatalf(
					"symbol %d mismatch for %x: got %c, wanted %c",
					i,
					data,
					encoded[i],
					B32Digits[g],
				)
			}
		}
	}
}

func TestEncode2048Length(t *testing.T) {
	for size := 0; size < 70; size++ {
		got := Encode2048(make([]byte, size))
		assert.Len(t, got, (size*8+10)/11)
	}
}
