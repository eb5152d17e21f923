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

// Package crypto provides the hash and signature primitives used for Algorand
// identities and transactions: SHA-512/256 digests with domain separation and
// ed25519 keypairs.
package crypto

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/blinklabs-io/goalgorand/base"
)

const DigestSize = sha512.Size256

// HashID is a domain separation prefix for hashed and signed payloads
type HashID string

const (
	HashIDTransaction  HashID = "TX"
	HashIDProgram      HashID = "Program"
	HashIDMultisigAddr HashID = "MultisigAddr"
	HashIDTxGroup      HashID = "TG"
)

type Digest [DigestSize]byte

func NewDigest(data []byte) Digest {
	d := Digest{}
	copy(d[:], data)
	return d
}

// String returns the unpadded base32 form used for transaction and group IDs
func (d Digest) String() string {
	return base.Encode32(d[:])
}

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) Bytes() []byte {
	return d[:]
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Sum512_256 returns the SHA-512/256 digest of the concatenated inputs
func Sum512_256(data ...[]byte) Digest {
	h := sha512.New512_256()
	for _, d := range data {
		// hash.Hash never returns an error on Write
		_, _ = h.Write(d)
	}
	var ret Digest
	h.Sum(ret[:0])
	return ret
}

// HashObj returns the digest of the domain prefix followed by the data
func HashObj(id HashID, data []byte) Digest {
	return Sum512_256([]byte(id), data)
}
