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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/goalgorand/base"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/msgpack"
	"github.com/tinylib/msgp/msgp"
)

const (
	AddressSize         = 32
	AddressChecksumSize = 4
	AddressStringLength = 58
)

// Address is an ed25519 public key, or the digest of a program or multisig
// preimage. Its string form is the base32 encoding of the key followed by a
// 4-byte checksum.
type Address [AddressSize]byte

// ZeroAddress is the all-zero address, used to mean "not set"
var ZeroAddress = Address{}

// NewAddress parses and validates an address string
func NewAddress(addr string) (Address, error) {
	if len(addr) != AddressStringLength {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  fmt.Sprintf("length must be %d, got %d", AddressStringLength, len(addr)),
		}
	}
	if !base.UsesB32Alphabet(addr) {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "invalid character",
		}
	}
	decoded := base.Decode32(addr)
	if len(decoded) != AddressSize+AddressChecksumSize {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  fmt.Sprintf("decoded to %d bytes", len(decoded)),
		}
	}
	a := Address(decoded[:AddressSize])
	if !bytes.Equal(a.Checksum(), decoded[AddressSize:]) {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "checksum mismatch",
		}
	}
	// 290 bits of base32 leave 2 padding bits that must be zero
	if a.String() != addr {
		return Address{}, InvalidAddressError{
			Address: addr,
			Reason:  "non-canonical encoding",
		}
	}
	return a, nil
}

// UncheckedAddress decodes an address string without validating its length,
// alphabet or checksum. It is meant for trusted, internally generated strings.
func UncheckedAddress(addr string) Address {
	var a Address
	copy(a[:], base.Decode32(addr))
	return a
}

// NewAddressFromPublicKey returns the address for a 32-byte public key
func NewAddressFromPublicKey(pubKey []byte) (Address, error) {
	if len(pubKey) != AddressSize {
		return Address{}, fmt.Errorf(
			"%w: public key must be %d bytes, got %d",
			ErrMalformedInput,
			AddressSize,
			len(pubKey),
		)
	}
	return Address(pubKey), nil
}

// AddressFromDigest returns the address whose key bytes are the given digest,
// as used for program and multisig addresses
func AddressFromDigest(d crypto.Digest) Address {
	return Address(d)
}

func (a Address) PublicKey() []byte {
	return bytes.Clone(a[:])
}

// Checksum returns the last 4 bytes of the SHA-512/256 digest of the key
func (a Address) Checksum() []byte {
	d := crypto.Sum512_256(a[:])
	return bytes.Clone(d[len(d)-AddressChecksumSize:])
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	tmp := make([]byte, 0, AddressSize+AddressChecksumSize)
	tmp = append(tmp, a[:]...)
	tmp = append(tmp, a.Checksum()...)
	return base.Encode32(tmp)
}

// Less orders addresses by their string form
func (a Address) Less(other Address) bool {
	return a.String() < other.String()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	tmp, err := NewAddress(string(text))
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}

// MarshalMsg appends the raw 32-byte key as 'bin'
func (a Address) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendBytes(b, a[:]), nil
}

func (a *Address) UnmarshalMsg(b []byte) ([]byte, error) {
	tmp, o, err := msgpack.ReadFixed32(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	*a = tmp
	return o, nil
}
