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

package submit_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const signedPaymentTxID = "5FJDJD5LMZC3EHUYYJNH5I23U4X6H2KXABNDGPIL557ZMJ33GZHQ"

type recordingSubmitter struct {
	calls [][]byte
	err   error
}

func (r *recordingSubmitter) Submit(ctx context.Context, raw []byte) (submit.Status, error) {
	r.calls = append(r.calls, raw)
	if r.err != nil {
		return submit.Status{}, r.err
	}
	stxns, err := ledger.DecodeSignedTransactions(raw)
	if err != nil {
		return submit.Status{}, err
	}
	return submit.Status{TxID: stxns[0].ID()}, nil
}

func testParams() submit.StaticParams {
	var gh [32]byte
	copy(gh[:], test.DecodeBase64String(test.GenesisHashB64))
	return submit.StaticParams{
		Fee:         10,
		FirstValid:  1000,
		LastValid:   2000,
		GenesisID:   "testnet-v1.0",
		GenesisHash: gh,
	}
}

func payments(t *testing.T, acct *account.Account, count int) []ledger.Transaction {
	t.Helper()
	header, _, err := submit.BuildHeader(context.Background(), testParams(), acct)
	require.NoError(t, err)
	receiver, err := common.NewAddress(test.ToAddress)
	require.NoError(t, err)
	ret := make([]ledger.Transaction, count)
	for i := range ret {
		ret[i] = ledger.Payment(header, receiver, uint64(1000*(i+1)), common.Address{})
	}
	return ret
}

func TestStaticParams(t *testing.T) {
	params := testParams()
	got, err := params.SuggestedParams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ledger.SuggestedParams(params), got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = params.SuggestedParams(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = submit.BuildHeader(ctx, params, account.WatchOnly(common.Address{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildHeader(t *testing.T) {
	acct, err := account.FromMnemonic(test.AdviceMnemonic)
	require.NoError(t, err)
	header, sp, err := submit.BuildHeader(context.Background(), testParams(), acct)
	require.NoError(t, err)
	assert.Equal(t, acct.Address(), header.Sender)
	assert.Equal(t, uint64(1000), header.FirstValid)
	assert.Equal(t, uint64(2000), header.LastValid)
	assert.Equal(t, "testnet-v1.0", header.GenesisID)
	assert.Equal(t, sp.GenesisHash, header.GenesisHash)
	// Per-byte fee, so the header starts at the minimum
	assert.Equal(t, uint64(ledger.MinTxnFee), header.Fee)
}

func TestSignAndSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	acct, err := account.FromMnemonic(test.AdviceMnemonic)
	require.NoError(t, err)

	testDefs := []struct {
		name  string
		count int
	}{
		{name: "single transaction", count: 1},
		{name: "group", count: 3},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			txns := payments(t, acct, testDef.count)
			submitter := &recordingSubmitter{}
			status, err := submit.SignAndSubmit(context.Background(), submitter, acct, txns...)
			require.NoError(t, err)
			require.Len(t, submitter.calls, 1)

			stxns, err := ledger.DecodeSignedTransactions(submitter.calls[0])
			require.NoError(t, err)
			require.Len(t, stxns, testDef.count)
			assert.Equal(t, stxns[0].ID(), status.TxID)
			for _, stxn := range stxns {
				require.NoError(t, stxn.Verify())
			}
			if testDef.count == 1 {
				assert.True(t, stxns[0].Transaction().Group.IsZero())
				assert.Equal(t, txns[0].ID(), status.TxID)
				return
			}
			gid, err := ledger.ComputeGroupID(txns...)
			require.NoError(t, err)
			for _, stxn := range stxns {
				assert.Equal(t, gid, stxn.Transaction().Group)
			}
		})
	}
}

func TestSignAndSubmitErrors(t *testing.T) {
	acct, err := account.FromMnemonic(test.AdviceMnemonic)
	require.NoError(t, err)
	watchOnly := account.WatchOnly(acct.Address())
	failure := errors.New("node unavailable")

	testDefs := []struct {
		name      string
		submitter *recordingSubmitter
		acct      *account.Account
		txns      []ledger.Transaction
		expected  error
		submitted int
	}{
		{
			name:      "no transactions",
			submitter: &recordingSubmitter{},
			acct:      acct,
			expected:  submit.ErrNoTransactions,
		},
		{
			name:      "watch-only account",
			submitter: &recordingSubmitter{},
			acct:      watchOnly,
			txns:      payments(t, acct, 1),
			expected:  account.ErrMissingSecretKey,
		},
		{
			name:      "group too large",
			submitter: &recordingSubmitter{},
			acct:      acct,
			txns:      payments(t, acct, ledger.MaxTxGroupSize+1),
			expected:  common.ErrMalformedInput,
		},
		{
			name:      "submitter failure",
			submitter: &recordingSubmitter{err: failure},
			acct:      acct,
			txns:      payments(t, acct, 2),
			expected:  failure,
			submitted: 1,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			status, err := submit.SignAndSubmit(
				context.Background(),
				testDef.submitter,
				testDef.acct,
				testDef.txns...,
			)
			assert.ErrorIs(t, err, testDef.expected)
			assert.Equal(t, submit.Status{}, status)
			assert.Len(t, testDef.submitter.calls, testDef.submitted)
		})
	}
}

func TestFileStoreSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := filepath.Join(t.TempDir(), "out")
	store := submit.NewFileStore(dir)
	assert.Equal(t, dir, store.Dir())

	raw := test.DecodeBase64String(test.SignedPaymentGoldenB64)
	status, err := store.Submit(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, signedPaymentTxID, status.TxID)
	assert.Equal(t, filepath.Join(dir, signedPaymentTxID+submit.SignedTransactionExt), status.Path)
	saved, err := os.ReadFile(status.Path)
	require.NoError(t, err)
	assert.Equal(t, raw, saved)

	_, err = store.Submit(context.Background(), raw[:len(raw)-1])
	assert.ErrorIs(t, err, common.ErrMalformedInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Submit(ctx, raw)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStoreSaveTransaction(t *testing.T) {
	store := submit.NewFileStore(t.TempDir(), submit.WithFileMode(0o600))
	txn, err := ledger.DecodeTransaction(test.DecodeBase64String(test.PaymentGoldenB64))
	require.NoError(t, err)
	status, err := store.SaveTransaction(context.Background(), txn)
	require.NoError(t, err)
	assert.Equal(t, txn.ID(), status.TxID)
	assert.Equal(t, submit.TransactionExt, filepath.Ext(status.Path))
	saved, err := os.ReadFile(status.Path)
	require.NoError(t, err)
	assert.Equal(t, test.DecodeBase64String(test.PaymentGoldenB64), saved)
	info, err := os.Stat(status.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSignAndSubmitToFileStore(t *testing.T) {
	acct, err := account.FromMnemonic(test.AdviceMnemonic)
	require.NoError(t, err)
	store := submit.NewFileStore(t.TempDir())
	txns := payments(t, acct, 2)
	status, err := submit.SignAndSubmit(context.Background(), store, acct, txns...)
	require.NoError(t, err)
	saved, err := os.ReadFile(status.Path)
	require.NoError(t, err)
	stxns, err := ledger.DecodeSignedTransactions(saved)
	require.NoError(t, err)
	assert.Len(t, stxns, 2)
	assert.Equal(t, stxns[0].ID(), status.TxID)
}
