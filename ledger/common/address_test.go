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

package common

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromPublicKey(t *testing.T) {
	testDefs := []struct {
		publicKeyHex    string
		expectedAddress string
	}{
		{
			publicKeyHex:    "0000000000000000000000000000000000000000000000000000000000000000",
			expectedAddress: test.ZeroAddress,
		},
		{
			publicKeyHex:    "e7f0f84d06811df9f31c8d878b1155f4671d51a185c200908667f449587068a1",
			expectedAddress: test.AdviceAddress,
		},
	}
	for _, testDef := range testDefs {
		addr, err := NewAddressFromPublicKey(
			test.DecodeHexString(testDef.publicKeyHex),
		)
		if err != nil {
			t.Fatalf(
				"failure populating address from public key: %s",
				err,
			)
		}
		if addr.String() != testDef.expectedAddress {
			t.Fatalf(
				"address did not match expected value, got: %s, wanted: %s",
				addr.String(),
				testDef.expectedAddress,
			)
		}
		parsed, err := NewAddress(testDef.expectedAddress)
		require.NoError(t, err)
		assert.Equal(t, addr, parsed)
		assert.Equal(t, test.DecodeHexString(testDef.publicKeyHex), parsed.PublicKey())
	}
	_, err := NewAddressFromPublicKey(make([]byte, 31))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestZeroAddress(t *testing.T) {
	assert.Equal(t, test.ZeroAddress, ZeroAddress.String())
	assert.Len(t, ZeroAddress.String(), AddressStringLength)
	assert.True(t, ZeroAddress.IsZero())
	addr, err := NewAddress(test.ZeroAddress)
	require.NoError(t, err)
	assert.True(t, addr.IsZero())
}

func TestNewAddressInvalid(t *testing.T) {
	valid := test.AdviceAddress
	testDefs := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "too short", address: valid[:57]},
		{name: "too long", address: valid + "A"},
		{name: "lowercase", address: "47ypqtigqeo7t4y4rwdywekv6rtr2unbqxbabeegm72eswdqncq52opasu"},
		{name: "bad alphabet", address: "1" + valid[1:]},
		{name: "checksum mismatch", address: valid[:57] + "A"},
		{name: "padding bits set", address: valid[:57] + "V"},
		{name: "flipped key character", address: "5" + valid[1:]},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := NewAddress(testDef.address)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput))
			assert.True(t, errors.Is(err, ErrInvalidAddress))
			var addrErr InvalidAddressError
			require.ErrorAs(t, err, &addrErr)
			assert.Equal(t, testDef.address, addrErr.Address)
		})
	}
}

func TestUncheckedAddress(t *testing.T) {
	valid := test.AdviceAddress
	expected, err := NewAddress(valid)
	require.NoError(t, err)
	assert.Equal(t, expected, UncheckedAddress(valid))
	// The checksum is not verified
	assert.Equal(t, expected, UncheckedAddress(valid[:57]+"A"))
}

func TestAddressRoundTripAllKeys(t *testing.T) {
	for i := 0; i < 256; i++ {
		var key [AddressSize]byte
		for j := range key {
			key[j] = byte(i * (j + 1))
		}
		addr, err := NewAddressFromPublicKey(key[:])
		require.NoError(t, err)
		parsed, err := NewAddress(addr.String())
		require.NoError(t, err)
		assert.Equal(t, key[:], parsed.PublicKey())
	}
}

func TestAddressLess(t *testing.T) {
	a, err := NewAddress(test.AdviceAddress)
	require.NoError(t, err)
	assert.True(t, a.Less(ZeroAddress))
	assert.False(t, ZeroAddress.Less(a))
	assert.False(t, a.Less(a))
}

func TestAddressText(t *testing.T) {
	a, err := NewAddress(test.AdviceAddress)
	require.NoError(t, err)
	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, test.AdviceAddress, string(text))
	var b Address
	require.NoError(t, b.UnmarshalText(text))
	assert.Equal(t, a, b)
	assert.ErrorIs(t, b.UnmarshalText([]byte("bogus")), ErrMalformedInput)
}

func TestAddressMsgpack(t *testing.T) {
	a, err := NewAddress(test.AdviceAddress)
	require.NoError(t, err)
	encoded, err := a.MarshalMsg(nil)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xc4, 0x20}, a.PublicKey()...), encoded)
	var b Address
	rest, err := b.UnmarshalMsg(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, a, b)
	_, err = b.UnmarshalMsg([]byte{0xc4, 0x01, 0x00})
	assert.ErrorIs(t, err, ErrMalformedInput)
}
