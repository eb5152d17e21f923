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

// Package bench provides benchmark fixtures for each transaction type.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
)

// TxFixture is a signed transaction with its encodings
type TxFixture struct {
	Name          string
	Account       *account.Account
	Txn           ledger.Transaction
	Signed        ledger.SignedTransaction
	Encoded       []byte
	SignedEncoded []byte
}

// KindNames returns the transaction types that have fixtures
func KindNames() []string {
	return []string{
		string(ledger.TxTypePayment),
		string(ledger.TxTypeKeyRegistration),
		string(ledger.TxTypeAssetConfig),
		string(ledger.TxTypeAssetTransfer),
		string(ledger.TxTypeAssetFreeze),
		string(ledger.TxTypeApplicationCall),
	}
}

func benchHeader(sender common.Address) ledger.Header {
	var gh [32]byte
	copy(gh[:], test.DecodeBase64String(test.GenesisHashB64))
	return ledger.Header{
		Sender:      sender,
		Fee:         ledger.MinTxnFee,
		FirstValid:  6000000,
		LastValid:   6001000,
		Note:        []byte("benchmark"),
		GenesisID:   "testnet-v1.0",
		GenesisHash: gh,
	}
}

func buildTxn(kind string, header ledger.Header) (ledger.Transaction, error) {
	other := common.UncheckedAddress(test.ToAddress)
	switch ledger.TxType(kind) {
	case ledger.TxTypePayment:
		return ledger.Payment(header, other, 123456, common.Address{}), nil
	case ledger.TxTypeKeyRegistration:
		return ledger.KeyRegistration(header, ledger.KeyRegistrationFields{
			VotePK:          [32]byte{1},
			SelectionPK:     [32]byte{2},
			VoteFirst:       6000000,
			VoteLast:        9000000,
			VoteKeyDilution: 1730,
		}), nil
	case ledger.TxTypeAssetConfig:
		return ledger.AssetCreate(header, common.AssetParams{
			Total:     1000000,
			Decimals:  2,
			UnitName:  "BNCH",
			AssetName: "benchmark",
			URL:       "https://example.com",
			Manager:   header.Sender,
			Reserve:   header.Sender,
			Freeze:    header.Sender,
			Clawback:  header.Sender,
		}), nil
	case ledger.TxTypeAssetTransfer:
		return ledger.AssetTransfer(header, 31566704, 100, other, common.Address{}), nil
	case ledger.TxTypeAssetFreeze:
		return ledger.AssetFreeze(header, 31566704, other, true), nil
	case ledger.TxTypeApplicationCall:
		return ledger.ApplicationCall(header, ledger.ApplicationCallFields{
			ApplicationID:   1234,
			ApplicationArgs: [][]byte{[]byte("bench"), {0, 0, 0, 1}},
			Accounts:        []common.Address{other},
			ForeignAssets:   []uint64{31566704},
		}), nil
	}
	return ledger.Transaction{}, fmt.Errorf("unknown transaction type: %s", kind)
}

// LoadTxFixture builds and signs a transaction of the given type
func LoadTxFixture(kind string) (*TxFixture, error) {
	acct, err := account.FromMnemonic(test.AdviceMnemonic)
	if err != nil {
		return nil, err
	}
	txn, err := buildTxn(kind, benchHeader(acct.Address()))
	if err != nil {
		return nil, err
	}
	stxn, err := txn.Sign(acct)
	if err != nil {
		return nil, err
	}
	return &TxFixture{
		Name:          kind,
		Account:       acct,
		Txn:           txn,
		Signed:        stxn,
		Encoded:       txn.Encode(),
		SignedEncoded: stxn.Encode(),
	}, nil
}

func MustLoadTxFixture(kind string) *TxFixture {
	f, err := LoadTxFixture(kind)
	if err != nil {
		panic("failed to load " + kind + " fixture: " + err.Error())
	}
	return f
}
