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
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/msgpack"
)

// SignedTransaction binds a transaction to exactly one authorization: a key
// signature, a multisig or a logicsig. It is built with the Sign methods on
// Transaction or by decoding.
type SignedTransaction struct {
	sig      []byte
	msig     MultiSig
	lsig     LogicSig
	authAddr common.Address
	txn      Transaction
}

var signedTransactionSchema = msgpack.NewSchema(
	msgpack.Bytes("sig", func(s *SignedTransaction) *[]byte { return &s.sig }),
	msgpack.Object("msig", func(s *SignedTransaction) *MultiSig { return &s.msig }),
	msgpack.Object("lsig", func(s *SignedTransaction) *LogicSig { return &s.lsig }),
	msgpack.Fixed32("sgnr", func(s *SignedTransaction) *common.Address { return &s.authAddr }),
	msgpack.Object("txn", func(s *SignedTransaction) *Transaction { return &s.txn }),
)

func (s *SignedTransaction) MarshalMsg(b []byte) ([]byte, error) {
	return signedTransactionSchema.Append(b, s)
}

func (s *SignedTransaction) UnmarshalMsg(b []byte) ([]byte, error) {
	return signedTransactionSchema.Read(b, s)
}

func (s SignedTransaction) IsZero() bool {
	return signedTransactionSchema.Len(&s) == 0
}

// Sign signs the transaction with the account. When the account is not the
// sender, the sender is assumed to be rekeyed to it.
func (t Transaction) Sign(acct *account.Account) (SignedTransaction, error) {
	sig, err := acct.SignWithID(crypto.HashIDTransaction, t.Encode())
	if err != nil {
		return SignedTransaction{}, err
	}
	return newSignedTransaction(t, acct.Address(), func(s *SignedTransaction) {
		s.sig = sig
	}), nil
}

// SignWithLogicSig authorizes the transaction with a logicsig
func (t Transaction) SignWithLogicSig(lsig LogicSig) (SignedTransaction, error) {
	if len(lsig.Logic) == 0 {
		return SignedTransaction{}, fmt.Errorf("%w: logicsig has no program", common.ErrMalformedInput)
	}
	if len(lsig.Sig) > 0 && !lsig.Msig.IsZero() {
		return SignedTransaction{}, fmt.Errorf("%w: logicsig has both a signature and a multisig", common.ErrMalformedInput)
	}
	return newSignedTransaction(t, lsig.authorizer(t.Sender), func(s *SignedTransaction) {
		s.lsig = lsig.Clone()
	}), nil
}

// SignWithMultiSig signs the account's slot of msig and authorizes the
// transaction with the result. Signatures already in msig are kept.
func (t Transaction) SignWithMultiSig(msig MultiSig, acct *account.Account) (SignedTransaction, error) {
	signed, err := msig.Sign(acct, t)
	if err != nil {
		return SignedTransaction{}, err
	}
	return t.WithMultiSig(signed), nil
}

// WithMultiSig authorizes the transaction with a multisig whose slots were
// signed separately, for example by merging copies from each signer
func (t Transaction) WithMultiSig(msig MultiSig) SignedTransaction {
	return newSignedTransaction(t, msig.Address(), func(s *SignedTransaction) {
		s.msig = msig.Clone()
	})
}

func newSignedTransaction(t Transaction, authorizer common.Address, set func(*SignedTransaction)) SignedTransaction {
	ret := SignedTransaction{txn: t.Clone()}
	if authorizer != t.Sender {
		ret.authAddr = authorizer
	}
	set(&ret)
	return ret
}

func (s SignedTransaction) Transaction() Transaction {
	return s.txn.Clone()
}

// Sig returns the key signature, if any
func (s SignedTransaction) Sig() []byte {
	return cloneBytes(s.sig)
}

// MultiSig returns the multisig authorization and whether there is one
func (s SignedTransaction) MultiSig() (MultiSig, bool) {
	return s.msig.Clone(), !s.msig.IsZero()
}

// LogicSig returns the logicsig authorization and whether there is one
func (s SignedTransaction) LogicSig() (LogicSig, bool) {
	return s.lsig.Clone(), !s.lsig.IsZero()
}

// AuthAddr returns the address that authorized the transaction. It differs from
// the sender for rekeyed accounts.
func (s SignedTransaction) AuthAddr() common.Address {
	if !s.authAddr.IsZero() {
		return s.authAddr
	}
	return s.txn.Sender
}

// ID returns the ID of the wrapped transaction
func (s SignedTransaction) ID() string {
	return s.txn.ID()
}

// Encode returns the canonical encoding of the signed transaction
func (s SignedTransaction) Encode() []byte {
	ret, err := s.MarshalMsg(nil)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding signed transaction: %s", err))
	}
	return ret
}

// Verify checks the authorization against the transaction. Logicsig programs
// are not evaluated.
func (s SignedTransaction) Verify() error {
	if err := s.validate(); err != nil {
		return err
	}
	authorizer := s.AuthAddr()
	switch {
	case len(s.sig) > 0:
		err := crypto.VerifySignatureWithID(
			crypto.HashIDTransaction,
			authorizer.PublicKey(),
			s.sig,
			s.txn.Encode(),
		)
		if err != nil {
			return AuthorizationError{Authorizer: authorizer, Reason: err.Error()}
		}
	case !s.msig.IsZero():
		if s.msig.Address() != authorizer {
			return AuthorizationError{Authorizer: authorizer, Reason: "multisig does not match address"}
		}
		if err := s.msig.Verify(crypto.HashIDTransaction, s.txn.Encode()); err != nil {
			return AuthorizationError{Authorizer: authorizer, Reason: err.Error()}
		}
	default:
		return s.lsig.Verify(authorizer)
	}
	return nil
}

// validate checks the structural rules that encoding alone does not enforce
func (s SignedTransaction) validate() error {
	count := 0
	if len(s.sig) > 0 {
		count++
		if len(s.sig) != crypto.SignatureSize {
			return fmt.Errorf("%w: signature is %d bytes", common.ErrMalformedInput, len(s.sig))
		}
	}
	if !s.msig.IsZero() {
		count++
	}
	if !s.lsig.IsZero() {
		count++
	}
	if count != 1 {
		return fmt.Errorf("%w: %d authorizations, expected exactly one", common.ErrMalformedInput, count)
	}
	if s.txn.IsZero() {
		return fmt.Errorf("%w: missing transaction", common.ErrMalformedInput)
	}
	return nil
}

// DecodeSignedTransaction strictly decodes a single signed transaction
func DecodeSignedTransaction(data []byte) (SignedTransaction, error) {
	var s SignedTransaction
	if err := msgpack.DecodeExact(data, &s); err != nil {
		return SignedTransaction{}, fmt.Errorf("%w: decode signed transaction: %w", common.ErrMalformedInput, err)
	}
	if err := s.validate(); err != nil {
		return SignedTransaction{}, err
	}
	return s, nil
}

// EncodeSignedTransactions concatenates the encodings of a group for submission
func EncodeSignedTransactions(stxns ...SignedTransaction) []byte {
	var ret []byte
	for i := range stxns {
		var err error
		if ret, err = stxns[i].MarshalMsg(ret); err != nil {
			panic(fmt.Sprintf("unexpected error encoding signed transaction: %s", err))
		}
	}
	return ret
}

// DecodeSignedTransactions decodes a concatenation of signed transactions
func DecodeSignedTransactions(data []byte) ([]SignedTransaction, error) {
	var ret []SignedTransaction
	d := msgpack.NewStreamDecoder(data)
	for {
		var s SignedTransaction
		_, _, err := d.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %w", common.ErrMalformedInput, len(ret), err)
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", len(ret), err)
		}
		ret = append(ret, s)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: no transactions", common.ErrMalformedInput)
	}
	return ret, nil
}
