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

// Package submit is the boundary between signed transactions and whatever
// delivers them: a network client, a file, or a test double.
package submit

import (
	"context"
	"errors"
	"fmt"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/ledger"
)

// ErrNoTransactions is returned when there is nothing to submit
var ErrNoTransactions = errors.New("no transactions to submit")

// Status describes an accepted submission
type Status struct {
	// TxID of the first transaction in the submission
	TxID string
	// Path is set when the submission was written to a file
	Path string
}

// Submitter accepts one or more concatenated encoded signed transactions
type Submitter interface {
	Submit(ctx context.Context, raw []byte) (Status, error)
}

// ParamsSource provides the network parameters used to build transaction headers
type ParamsSource interface {
	SuggestedParams(ctx context.Context) (ledger.SuggestedParams, error)
}

// StaticParams is a ParamsSource that always returns the same parameters
type StaticParams ledger.SuggestedParams

func (p StaticParams) SuggestedParams(ctx context.Context) (ledger.SuggestedParams, error) {
	if err := ctx.Err(); err != nil {
		return ledger.SuggestedParams{}, err
	}
	return ledger.SuggestedParams(p), nil
}

// Sign signs the transactions with acct, first assigning a group ID when
// there is more than one
func Sign(acct *account.Account, txns ...ledger.Transaction) ([]ledger.SignedTransaction, error) {
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}
	if len(txns) > 1 {
		grouped, err := ledger.AssignGroupID(txns...)
		if err != nil {
			return nil, err
		}
		txns = grouped
	}
	ret := make([]ledger.SignedTransaction, len(txns))
	for i, txn := range txns {
		stxn, err := txn.Sign(acct)
		if err != nil {
			return nil, fmt.Errorf("sign transaction %d: %w", i, err)
		}
		ret[i] = stxn
	}
	return ret, nil
}

// SignAndSubmit signs the transactions and submits them together in a single
// call. Failed submissions are not retried.
func SignAndSubmit(
	ctx context.Context,
	submitter Submitter,
	acct *account.Account,
	txns ...ledger.Transaction,
) (Status, error) {
	stxns, err := Sign(acct, txns...)
	if err != nil {
		return Status{}, err
	}
	status, err := submitter.Submit(ctx, ledger.EncodeSignedTransactions(stxns...))
	if err != nil {
		return Status{}, fmt.Errorf("submit: %w", err)
	}
	return status, nil
}

// BuildHeader fetches suggested parameters and returns a header for sender
func BuildHeader(
	ctx context.Context,
	params ParamsSource,
	sender *account.Account,
) (ledger.Header, ledger.SuggestedParams, error) {
	sp, err := params.SuggestedParams(ctx)
	if err != nil {
		return ledger.Header{}, ledger.SuggestedParams{}, fmt.Errorf("suggested params: %w", err)
	}
	return ledger.NewHeader(sender.Address(), sp), sp, nil
}
