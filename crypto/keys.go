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

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	SeedSize      = ed25519.SeedSize
	PublicKeySize = ed25519.PublicKeySize
	SecretKeySize = ed25519.PrivateKeySize
	SignatureSize = ed25519.SignatureSize
)

var (
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidSignature = errors.New("invalid signature")
)

// KeyPair is an ed25519 keypair. The secret key embeds the seed it was derived from.
type KeyPair struct {
	Public ed25519.PublicKey
	Secret ed25519.PrivateKey
}

// GenerateKeys creates a keypair from system randomness
func GenerateKeys() (*KeyPair, error) {
	pub, sec, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate keys: %w", err)
	}
	return &KeyPair{Public: pub, Secret: sec}, nil
}

// GenerateKeysFromSeed deterministically derives a keypair from a 32-byte seed
func GenerateKeysFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf(
			"%w: seed must be %d bytes, got %d",
			ErrInvalidKey,
			SeedSize,
			len(seed),
		)
	}
	sec := ed25519.NewKeyFromSeed(seed)
	pub, _ := sec.Public().(ed25519.PublicKey)
	return &KeyPair{Public: pub, Secret: sec}, nil
}

// NewKeyPair builds a keypair from existing key material. The secret key must
// embed the given public key.
func NewKeyPair(pub, sec []byte) (*KeyPair, error) {
	if err := ValidatePublicKey(pub); err != nil {
		return nil, err
	}
	if len(sec) != SecretKeySize {
		return nil, fmt.Errorf("%w: invalid secret key size: %d", ErrInvalidKey, len(sec))
	}
	derived := ed25519.NewKeyFromSeed(sec[:SeedSize])
	if !bytes.Equal(derived, sec) || !bytes.Equal(sec[SeedSize:], pub) {
		return nil, fmt.Errorf("%w: secret key does not match public key", ErrInvalidKey)
	}
	return &KeyPair{
		Public: ed25519.PublicKey(bytes.Clone(pub)),
		Secret: derived,
	}, nil
}

// Seed returns a copy of the seed embedded in the secret key
func (k *KeyPair) Seed() []byte {
	return bytes.Clone(k.Secret.Seed())
}

// Sign produces a detached signature over the message
func (k *KeyPair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.Secret, msg)
}

// SignWithID signs the domain prefix followed by the message
func (k *KeyPair) SignWithID(id HashID, msg []byte) []byte {
	return k.Sign(prefixed(id, msg))
}

// Zero erases the secret key. The keypair can no longer sign afterwards.
func (k *KeyPair) Zero() {
	clear(k.Secret)
	k.Secret = nil
}

// VerifySignature verifies an ed25519 signature against the provided public key and message
func VerifySignature(pubKey, sig, msg []byte) error {
	if len(pubKey) != PublicKeySize {
		return fmt.Errorf("%w: invalid public key size: %d", ErrInvalidKey, len(pubKey))
	}
	if len(sig) != SignatureSize {
		return fmt.Errorf("%w: invalid signature size: %d", ErrInvalidSignature, len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return fmt.Errorf("%w: signature verification failed", ErrInvalidSignature)
	}
	return nil
}

func Verify(pubKey, msg, sig []byte) bool {
	return VerifySignature(pubKey, sig, msg) == nil
}

// VerifyWithID verifies a signature made with SignWithID
func VerifyWithID(id HashID, pubKey, msg, sig []byte) bool {
	return VerifySignatureWithID(id, pubKey, sig, msg) == nil
}

// VerifySignatureWithID is VerifySignature for a message signed with SignWithID
func VerifySignatureWithID(id HashID, pubKey, sig, msg []byte) error {
	return VerifySignature(pubKey, sig, prefixed(id, msg))
}

// ValidatePublicKey checks that the key has the right size and decodes to a curve point
func ValidatePublicKey(pubKey []byte) error {
	if len(pubKey) != PublicKeySize {
		return fmt.Errorf("%w: invalid public key size: %d", ErrInvalidKey, len(pubKey))
	}
	if _, err := new(edwards25519.Point).SetBytes(pubKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}

func prefixed(id HashID, msg []byte) []byte {
	ret := make([]byte, 0, len(id)+len(msg))
	ret = append(ret, id...)
	return append(ret, msg...)
}
