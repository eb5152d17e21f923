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

// Package ledger models Algorand transactions and their authorizations.
//
// A Transaction is plain data built with the factory functions. It is signed
// into a SignedTransaction with an account, a LogicSig or a MultiSig, and
// encoded to the canonical MessagePack bytes that the network hashes and
// accepts.
package ledger

import (
	"fmt"

	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/msgpack"
	"github.com/jinzhu/copier"
)

// TxType is the wire tag of a transaction variant
type TxType string

const (
	TxTypePayment         TxType = "pay"
	TxTypeKeyRegistration TxType = "keyreg"
	TxTypeAssetConfig     TxType = "acfg"
	TxTypeAssetTransfer   TxType = "axfer"
	TxTypeAssetFreeze     TxType = "afrz"
	TxTypeApplicationCall TxType = "appl"
)

// Header holds the fields shared by every transaction type
type Header struct {
	Sender      common.Address
	Fee         uint64
	FirstValid  uint64
	LastValid   uint64
	Note        []byte
	GenesisID   string
	GenesisHash [32]byte
	Group       crypto.Digest
	Lease       [32]byte
	RekeyTo     common.Address
}

// clone copies the note so that built transactions never share it with the caller
func (h Header) clone() Header {
	h.Note = cloneBytes(h.Note)
	return h
}

// Transaction is a flat record holding the fields of all transaction types.
// Type selects the variant; the fields of other variants are left at their
// zero value and are not encoded.
type Transaction struct {
	Type TxType
	Header
	PaymentFields
	KeyRegistrationFields
	AssetConfigFields
	AssetTransferFields
	AssetFreezeFields
	ApplicationCallFields
}

var transactionSchema = msgpack.NewSchema(
	// Header
	msgpack.String("type", func(t *Transaction) *TxType { return &t.Type }),
	msgpack.Fixed32("snd", func(t *Transaction) *common.Address { return &t.Sender }),
	msgpack.Uint64("fee", func(t *Transaction) *uint64 { return &t.Fee }),
	msgpack.Uint64("fv", func(t *Transaction) *uint64 { return &t.FirstValid }),
	msgpack.Uint64("lv", func(t *Transaction) *uint64 { return &t.LastValid }),
	msgpack.Bytes("note", func(t *Transaction) *[]byte { return &t.Note }),
	msgpack.String("gen", func(t *Transaction) *string { return &t.GenesisID }),
	msgpack.Fixed32("gh", func(t *Transaction) *[32]byte { return &t.GenesisHash }),
	msgpack.Fixed32("grp", func(t *Transaction) *crypto.Digest { return &t.Group }),
	msgpack.Fixed32("lx", func(t *Transaction) *[32]byte { return &t.Lease }),
	msgpack.Fixed32("rekey", func(t *Transaction) *common.Address { return &t.RekeyTo }),
	// Payment
	msgpack.Fixed32("rcv", func(t *Transaction) *common.Address { return &t.Receiver }),
	msgpack.Uint64("amt", func(t *Transaction) *uint64 { return &t.Amount }),
	msgpack.Fixed32("close", func(t *Transaction) *common.Address { return &t.CloseRemainderTo }),
	// Key registration
	msgpack.Fixed32("votekey", func(t *Transaction) *[32]byte { return &t.VotePK }),
	msgpack.Fixed32("selkey", func(t *Transaction) *[32]byte { return &t.SelectionPK }),
	msgpack.Uint64("votefst", func(t *Transaction) *uint64 { return &t.VoteFirst }),
	msgpack.Uint64("votelst", func(t *Transaction) *uint64 { return &t.VoteLast }),
	msgpack.Uint64("votekd", func(t *Transaction) *uint64 { return &t.VoteKeyDilution }),
	msgpack.Bool("nonpart", func(t *Transaction) *bool { return &t.Nonparticipation }),
	// Asset configuration
	msgpack.Uint64("caid", func(t *Transaction) *uint64 { return &t.ConfigAsset }),
	msgpack.Object("apar", func(t *Transaction) *common.AssetParams { return &t.AssetParams }),
	// Asset transfer
	msgpack.Uint64("xaid", func(t *Transaction) *uint64 { return &t.XferAsset }),
	msgpack.Uint64("aamt", func(t *Transaction) *uint64 { return &t.AssetAmount }),
	msgpack.Fixed32("asnd", func(t *Transaction) *common.Address { return &t.AssetSender }),
	msgpack.Fixed32("arcv", func(t *Transaction) *common.Address { return &t.AssetReceiver }),
	msgpack.Fixed32("aclose", func(t *Transaction) *common.Address { return &t.AssetCloseTo }),
	// Asset freeze
	msgpack.Uint64("faid", func(t *Transaction) *uint64 { return &t.FreezeAsset }),
	msgpack.Fixed32("fadd", func(t *Transaction) *common.Address { return &t.FreezeAccount }),
	msgpack.Bool("afrz", func(t *Transaction) *bool { return &t.AssetFrozen }),
	// Application call
	msgpack.Uint64("apid", func(t *Transaction) *uint64 { return &t.ApplicationID }),
	msgpack.Uint64("apan", func(t *Transaction) *OnCompletion { return &t.OnCompletion }),
	msgpack.Fixed32List("apat", func(t *Transaction) *[]common.Address { return &t.Accounts }),
	msgpack.Bytes("apap", func(t *Transaction) *[]byte { return &t.ApprovalProgram }),
	msgpack.Bytes("apsu", func(t *Transaction) *[]byte { return &t.ClearStateProgram }),
	msgpack.BytesList("apaa", func(t *Transaction) *[][]byte { return &t.ApplicationArgs }),
	msgpack.Uint64List("apfa", func(t *Transaction) *[]uint64 { return &t.ForeignApps }),
	msgpack.Uint64List("apas", func(t *Transaction) *[]uint64 { return &t.ForeignAssets }),
	msgpack.Object("apgs", func(t *Transaction) *common.StateSchema { return &t.GlobalStateSchema }),
	msgpack.Object("apls", func(t *Transaction) *common.StateSchema { return &t.LocalStateSchema }),
	msgpack.Uint32("apep", func(t *Transaction) *uint32 { return &t.ExtraProgramPages }),
)

func (t *Transaction) MarshalMsg(b []byte) ([]byte, error) {
	return transactionSchema.Append(b, t)
}

func (t *Transaction) UnmarshalMsg(b []byte) ([]byte, error) {
	return transactionSchema.Read(b, t)
}

// IsZero reports whether no field would be encoded
func (t Transaction) IsZero() bool {
	return transactionSchema.Len(&t) == 0
}

// Encode returns the canonical encoding of the transaction
func (t Transaction) Encode() []byte {
	ret, err := t.MarshalMsg(nil)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding transaction: %s", err))
	}
	return ret
}

// DecodeTransaction strictly decodes a canonical transaction encoding
func DecodeTransaction(data []byte) (Transaction, error) {
	var t Transaction
	if err := msgpack.DecodeExact(data, &t); err != nil {
		return Transaction{}, fmt.Errorf("%w: decode transaction: %w", common.ErrMalformedInput, err)
	}
	return t, nil
}

// Digest returns the hash of the transaction used for its ID and in groups
func (t Transaction) Digest() crypto.Digest {
	return crypto.HashObj(crypto.HashIDTransaction, t.Encode())
}

// ID returns the transaction ID, the base32 form of its digest
func (t Transaction) ID() string {
	return t.Digest().String()
}

// Clone returns a deep copy of the transaction
func (t Transaction) Clone() Transaction {
	var ret Transaction
	err := copier.CopyWithOption(
		&ret,
		&t,
		copier.Option{DeepCopy: true, IgnoreEmpty: true},
	)
	if err != nil {
		panic(fmt.Sprintf("unexpected error copying transaction: %s", err))
	}
	return ret
}

// EstimateSize returns the encoded size of the transaction once signed with a
// single signature
func (t Transaction) EstimateSize() int {
	stx := SignedTransaction{
		sig: make([]byte, crypto.SignatureSize),
		txn: t,
	}
	return len(stx.Encode())
}

// WithNote returns a copy of the transaction with the given note
func (t Transaction) WithNote(note []byte) Transaction {
	ret := t.Clone()
	ret.Note = cloneBytes(note)
	return ret
}

// WithLease returns a copy of the transaction with the given lease
func (t Transaction) WithLease(lease [32]byte) Transaction {
	ret := t.Clone()
	ret.Lease = lease
	return ret
}

// WithRekeyTo returns a copy of the transaction that rekeys the sender to the given address
func (t Transaction) WithRekeyTo(addr common.Address) Transaction {
	ret := t.Clone()
	ret.RekeyTo = addr
	return ret
}

// WithGroup returns a copy of the transaction with the given group ID
func (t Transaction) WithGroup(group crypto.Digest) Transaction {
	ret := t.Clone()
	ret.Group = group
	return ret
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret
}
