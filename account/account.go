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

// Package account manages signing identities: an address together with the
// secret key that controls it, if known.
package account

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/mnemonic"
)

// ErrMissingSecretKey is returned when signing with a watch-only account
var ErrMissingSecretKey = errors.New("account has no secret key")

// Account is an address with an optional keypair. Accounts without a keypair
// are watch-only: they can be referenced in transactions but cannot sign.
type Account struct {
	address common.Address
	keys    *crypto.KeyPair
}

// Generate creates an account with a random keypair
func Generate() (*Account, error) {
	keys, err := crypto.GenerateKeys()
	if err != nil {
		return nil, err
	}
	return fromKeys(keys), nil
}

// FromSeed creates the account for a 32-byte seed
func FromSeed(seed []byte) (*Account, error) {
	keys, err := crypto.GenerateKeysFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedInput, err)
	}
	return fromKeys(keys), nil
}

// FromMnemonic creates the account for a 25-word recovery phrase
func FromMnemonic(phrase string) (*Account, error) {
	seed, err := mnemonic.ToSeed(phrase)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed)
}

// New creates an account from existing key material. The secret key must match the public key.
func New(pub, sec []byte) (*Account, error) {
	keys, err := crypto.NewKeyPair(pub, sec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedInput, err)
	}
	return fromKeys(keys), nil
}

// WatchOnly creates an account without a secret key
func WatchOnly(addr common.Address) *Account {
	return &Account{address: addr}
}

// FromAddressString parses an address into a watch-only account
func FromAddressString(addr string) (*Account, error) {
	a, err := common.NewAddress(addr)
	if err != nil {
		return nil, err
	}
	return WatchOnly(a), nil
}

func fromKeys(keys *crypto.KeyPair) *Account {
	a := &Account{keys: keys}
	copy(a.address[:], keys.Public)
	return a
}

func (a *Account) Address() common.Address {
	return a.address
}

func (a *Account) PublicKey() []byte {
	return a.address.PublicKey()
}

// IsWatchOnly reports whether the account lacks a secret key. A nil account
// is watch-only, so signing with it fails with ErrMissingSecretKey.
func (a *Account) IsWatchOnly() bool {
	return a == nil || a.keys == nil || len(a.keys.Secret) == 0
}

// Seed returns the seed the secret key was derived from
func (a *Account) Seed() ([]byte, error) {
	if a.IsWatchOnly() {
		return nil, ErrMissingSecretKey
	}
	return a.keys.Seed(), nil
}

// Mnemonic returns the recovery phrase for the account seed
func (a *Account) Mnemonic() (string, error) {
	seed, err := a.Seed()
	if err != nil {
		return "", err
	}
	return mnemonic.FromSeed(seed)
}

// Sign returns a detached signature over msg
func (a *Account) Sign(msg []byte) ([]byte, error) {
	if a.IsWatchOnly() {
		return nil, ErrMissingSecretKey
	}
	return a.keys.Sign(msg), nil
}

// SignWithID signs msg prefixed with a domain separation tag
func (a *Account) SignWithID(id crypto.HashID, msg []byte) ([]byte, error) {
	if a.IsWatchOnly() {
		return nil, ErrMissingSecretKey
	}
	return a.keys.SignWithID(id, msg), nil
}

// Verify checks a signature made by this account with SignWithID
func (a *Account) Verify(id crypto.HashID, msg, sig []byte) bool {
	return crypto.VerifyWithID(id, a.address[:], msg, sig)
}

// Equal reports whether both accounts have the same address
func (a *Account) Equal(other *Account) bool {
	return other != nil && bytes.Equal(a.address[:], other.address[:])
}

// Zero erases the secret key, turning the account watch-only
func (a *Account) Zero() {
	if a.keys != nil {
		a.keys.Zero()
		a.keys = nil
	}
}

func (a *Account) String() string {
	return a.address.String()
}
