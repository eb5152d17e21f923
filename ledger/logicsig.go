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
	"fmt"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/msgpack"
)

// LogicSig authorizes transactions with a program instead of a key. Without a
// signature the program controls its own address. Signed by a key or multisig,
// it delegates spending from that account to the program.
type LogicSig struct {
	Logic []byte
	Args  [][]byte
	Sig   []byte
	Msig  MultiSig
}

var logicSigSchema = msgpack.NewSchema(
	msgpack.Bytes("l", func(l *LogicSig) *[]byte { return &l.Logic }),
	msgpack.BytesList("arg", func(l *LogicSig) *[][]byte { return &l.Args }),
	msgpack.Bytes("sig", func(l *LogicSig) *[]byte { return &l.Sig }),
	msgpack.Object("msig", func(l *LogicSig) *MultiSig { return &l.Msig }),
)

func (l *LogicSig) MarshalMsg(b []byte) ([]byte, error) {
	return logicSigSchema.Append(b, l)
}

func (l *LogicSig) UnmarshalMsg(b []byte) ([]byte, error) {
	return logicSigSchema.Read(b, l)
}

func (l LogicSig) IsZero() bool {
	return logicSigSchema.Len(&l) == 0
}

// NewLogicSig wraps a compiled program and its arguments
func NewLogicSig(program []byte, args [][]byte) (LogicSig, error) {
	if len(program) == 0 {
		return LogicSig{}, fmt.Errorf("%w: empty program", common.ErrMalformedInput)
	}
	ret := LogicSig{Logic: cloneBytes(program)}
	if len(args) > 0 {
		ret.Args = make([][]byte, len(args))
		for i, arg := range args {
			ret.Args[i] = cloneBytes(arg)
		}
	}
	return ret, nil
}

// Address returns the address controlled by the program
func (l LogicSig) Address() common.Address {
	return common.AddressFromDigest(crypto.HashObj(crypto.HashIDProgram, l.Logic))
}

// IsDelegated reports whether the logicsig carries a program
func (l LogicSig) IsDelegated() bool {
	return len(l.Logic) > 0
}

// Clone returns a deep copy of the logicsig
func (l LogicSig) Clone() LogicSig {
	ret := LogicSig{
		Logic: cloneBytes(l.Logic),
		Sig:   cloneBytes(l.Sig),
		Msig:  l.Msig.Clone(),
	}
	if l.Args != nil {
		ret.Args = make([][]byte, len(l.Args))
		for i, arg := range l.Args {
			ret.Args[i] = cloneBytes(arg)
		}
	}
	return ret
}

// Sign returns a copy of the logicsig with the program signed by the account
// under the Program domain, delegating the account to the program
func (l LogicSig) Sign(acct *account.Account) (LogicSig, error) {
	sig, err := acct.SignWithID(crypto.HashIDProgram, l.Logic)
	if err != nil {
		return LogicSig{}, err
	}
	ret := l.Clone()
	ret.Sig = sig
	ret.Msig = MultiSig{}
	return ret, nil
}

// SignMultiSig returns a copy of the logicsig with the account's slot of msig
// signed over the program. Signatures already held for the same multisig are kept.
func (l LogicSig) SignMultiSig(msig MultiSig, acct *account.Account) (LogicSig, error) {
	if !l.Msig.IsZero() {
		if l.Msig.Address() != msig.Address() {
			return LogicSig{}, fmt.Errorf("%w: logicsig is delegated to a different multisig", common.ErrMalformedInput)
		}
		merged, err := l.Msig.Merge(msig)
		if err != nil {
			return LogicSig{}, err
		}
		msig = merged
	}
	signed, err := msig.SignBytes(acct, crypto.HashIDProgram, l.Logic)
	if err != nil {
		return LogicSig{}, err
	}
	ret := l.Clone()
	ret.Sig = nil
	ret.Msig = signed
	return ret, nil
}

// authorizer returns the address whose spending the logicsig authorizes when it
// can be derived from the logicsig alone. A key signature does not identify its
// signer, so the sender is used.
func (l LogicSig) authorizer(sender common.Address) common.Address {
	switch {
	case len(l.Sig) > 0:
		return sender
	case !l.Msig.IsZero():
		return l.Msig.Address()
	default:
		return l.Address()
	}
}

// Verify checks that the logicsig authorizes spending from addr. The program
// itself is not evaluated.
func (l LogicSig) Verify(addr common.Address) error {
	if len(l.Logic) == 0 {
		return AuthorizationError{Authorizer: addr, Reason: "logicsig has no program"}
	}
	switch {
	case len(l.Sig) > 0 && !l.Msig.IsZero():
		return AuthorizationError{Authorizer: addr, Reason: "logicsig has both a signature and a multisig"}
	case len(l.Sig) > 0:
		if err := crypto.VerifySignatureWithID(crypto.HashIDProgram, addr.PublicKey(), l.Sig, l.Logic); err != nil {
			return AuthorizationError{Authorizer: addr, Reason: err.Error()}
		}
	case !l.Msig.IsZero():
		if l.Msig.Address() != addr {
			return AuthorizationError{Authorizer: addr, Reason: "multisig does not match address"}
		}
		if err := l.Msig.Verify(crypto.HashIDProgram, l.Logic); err != nil {
			return AuthorizationError{Authorizer: addr, Reason: err.Error()}
		}
	default:
		if l.Address() != addr {
			return AuthorizationError{Authorizer: addr, Reason: "program does not match address"}
		}
	}
	return nil
}
