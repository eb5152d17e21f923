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

package ledger

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/msgpack"
)

const (
	MultiSigVersion    = 1
	MaxMultiSigSigners = 255
)

// MultiSigSubsig is one signer slot of a multisig: a public key and, once that
// key has signed, its signature
type MultiSigSubsig struct {
	Key [32]byte
	Sig []byte
}

var multiSigSubsigSchema = msgpack.NewSchema(
	msgpack.Fixed32("pk", func(s *MultiSigSubsig) *[32]byte { return &s.Key }),
	msgpack.Bytes("s", func(s *MultiSigSubsig) *[]byte { return &s.Sig }),
)

func (s *MultiSigSubsig) MarshalMsg(b []byte) ([]byte, error) {
	return multiSigSubsigSchema.Append(b, s)
}

func (s *MultiSigSubsig) UnmarshalMsg(b []byte) ([]byte, error) {
	return multiSigSubsigSchema.Read(b, s)
}

func (s MultiSigSubsig) IsZero() bool {
	return multiSigSubsigSchema.Len(&s) == 0
}

// MultiSig is a threshold signature over an ordered set of keys. The slot order
// is fixed when the multisig is created, since it determines the address.
type MultiSig struct {
	Version   uint8
	Threshold uint8
	Subsigs   []MultiSigSubsig
}

var multiSigSchema = msgpack.NewSchema(
	msgpack.Uint8("v", func(m *MultiSig) *uint8 { return &m.Version }),
	msgpack.Uint8("thr", func(m *MultiSig) *uint8 { return &m.Threshold }),
	msgpack.ObjectList("subsig", func(m *MultiSig) *[]MultiSigSubsig { return &m.Subsigs }),
)

func (m *MultiSig) MarshalMsg(b []byte) ([]byte, error) {
	return multiSigSchema.Append(b, m)
}

func (m *MultiSig) UnmarshalMsg(b []byte) ([]byte, error) {
	return multiSigSchema.Read(b, m)
}

func (m MultiSig) IsZero() bool {
	return multiSigSchema.Len(&m) == 0
}

// NewMultiSig creates an unsigned multisig with one slot per address, in the
// given order. A threshold of 0 requires every signer.
func NewMultiSig(addrs []common.Address, threshold uint8) (MultiSig, error) {
	if len(addrs) == 0 || len(addrs) > MaxMultiSigSigners {
		return MultiSig{}, fmt.Errorf(
			"%w: multisig must have 1 to %d signers, got %d",
			common.ErrMalformedInput,
			MaxMultiSigSigners,
			len(addrs),
		)
	}
	if threshold == 0 {
		threshold = uint8(len(addrs))
	}
	if int(threshold) > len(addrs) {
		return MultiSig{}, fmt.Errorf(
			"%w: threshold %d exceeds %d signers",
			common.ErrMalformedInput,
			threshold,
			len(addrs),
		)
	}
	ret := MultiSig{
		Version:   MultiSigVersion,
		Threshold: threshold,
		Subsigs:   make([]MultiSigSubsig, len(addrs)),
	}
	for i, addr := range addrs {
		ret.Subsigs[i].Key = addr
	}
	return ret, nil
}

// Address returns the account address controlled by the multisig
func (m MultiSig) Address() common.Address {
	data := make([]byte, 0, 2+len(m.Subsigs)*crypto.PublicKeySize)
	data = append(data, m.Version, m.Threshold)
	for _, s := range m.Subsigs {
		data = append(data, s.Key[:]...)
	}
	return common.AddressFromDigest(crypto.HashObj(crypto.HashIDMultisigAddr, data))
}

// Addresses returns the signer addresses in slot order
func (m MultiSig) Addresses() []common.Address {
	ret := make([]common.Address, len(m.Subsigs))
	for i, s := range m.Subsigs {
		ret[i] = s.Key
	}
	return ret
}

// SignatureCount returns the number of filled slots
func (m MultiSig) SignatureCount() int {
	count := 0
	for _, s := range m.Subsigs {
		if len(s.Sig) > 0 {
			count++
		}
	}
	return count
}

// Clone returns a copy that shares no signature buffers with m
func (m MultiSig) Clone() MultiSig {
	ret := m
	if m.Subsigs != nil {
		ret.Subsigs = make([]MultiSigSubsig, len(m.Subsigs))
		for i, s := range m.Subsigs {
			ret.Subsigs[i] = MultiSigSubsig{Key: s.Key, Sig: cloneBytes(s.Sig)}
		}
	}
	return ret
}

// Sign returns a copy of the multisig with the account's slot signed for txn
func (m MultiSig) Sign(acct *account.Account, txn Transaction) (MultiSig, error) {
	return m.SignBytes(acct, crypto.HashIDTransaction, txn.Encode())
}

// SignBytes returns a copy of the multisig with every slot holding the account's
// key signed over msg under the given domain. Other slots are left unchanged.
func (m MultiSig) SignBytes(acct *account.Account, id crypto.HashID, msg []byte) (MultiSig, error) {
	if acct == nil {
		return MultiSig{}, account.ErrMissingSecretKey
	}
	addr := acct.Address()
	ret := m.Clone()
	var sig []byte
	found := false
	for i := range ret.Subsigs {
		if ret.Subsigs[i].Key != addr {
			continue
		}
		if !found {
			var err error
			if sig, err = acct.SignWithID(id, msg); err != nil {
				return MultiSig{}, err
			}
			found = true
		}
		ret.Subsigs[i].Sig = cloneBytes(sig)
	}
	if !found {
		return MultiSig{}, SignerNotFoundError{Signer: addr}
	}
	return ret, nil
}

// Merge combines the signatures of partially signed copies of the same
// multisig. All inputs must have the same version, threshold and keys.
func (m MultiSig) Merge(others ...MultiSig) (MultiSig, error) {
	ret := m.Clone()
	for _, other := range others {
		if other.Version != m.Version ||
			other.Threshold != m.Threshold ||
			len(other.Subsigs) != len(m.Subsigs) {
			return MultiSig{}, fmt.Errorf("%w: merging different multisigs", common.ErrMalformedInput)
		}
		for i, s := range other.Subsigs {
			if s.Key != ret.Subsigs[i].Key {
				return MultiSig{}, fmt.Errorf("%w: merging different multisigs", common.ErrMalformedInput)
			}
			if len(s.Sig) == 0 {
				continue
			}
			existing := ret.Subsigs[i].Sig
			if len(existing) > 0 && !bytes.Equal(existing, s.Sig) {
				return MultiSig{}, fmt.Errorf(
					"%w: conflicting signatures for slot %d",
					common.ErrMalformedInput,
					i,
				)
			}
			ret.Subsigs[i].Sig = cloneBytes(s.Sig)
		}
	}
	return ret, nil
}

// Verify checks that every filled slot holds a valid signature over msg and that
// at least Threshold slots are filled
func (m MultiSig) Verify(id crypto.HashID, msg []byte) error {
	if m.Version != MultiSigVersion {
		return fmt.Errorf("unsupported multisig version %d", m.Version)
	}
	if m.Threshold == 0 || int(m.Threshold) > len(m.Subsigs) {
		return fmt.Errorf("invalid threshold %d for %d signers", m.Threshold, len(m.Subsigs))
	}
	count := 0
	for i, s := range m.Subsigs {
		if len(s.Sig) == 0 {
			continue
		}
		if err := crypto.VerifySignatureWithID(id, s.Key[:], s.Sig, msg); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		count++
	}
	if count < int(m.Threshold) {
		return fmt.Errorf("%d of %d required signatures", count, m.Threshold)
	}
	return nil
}
