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

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/submit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// commonTxnFlags are the header options shared by the transaction commands
type commonTxnFlags struct {
	note    string
	rekeyTo string
}

func (f *commonTxnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.note, "note", "", "note attached to the transaction")
	cmd.Flags().StringVar(&f.rekeyTo, "rekey-to", "", "address to rekey the sender to")
}

func (f *commonTxnFlags) apply(txn ledger.Transaction) (ledger.Transaction, error) {
	if f.note != "" {
		txn = txn.WithNote([]byte(f.note))
	}
	if f.rekeyTo != "" {
		addr, err := common.NewAddress(f.rekeyTo)
		if err != nil {
			return ledger.Transaction{}, fmt.Errorf("rekey-to: %w", err)
		}
		txn = txn.WithRekeyTo(addr)
	}
	return txn, nil
}

// optionalAddress parses an address flag that may be left empty
func optionalAddress(name, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, nil
	}
	addr, err := common.NewAddress(value)
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return addr, nil
}

// finish sets the fee, saves the unsigned transaction, then signs and saves it
func (a *app) finish(
	cmd *cobra.Command,
	acct *account.Account,
	params ledger.SuggestedParams,
	txn ledger.Transaction,
) error {
	txn = txn.WithSuggestedFee(params)
	store := a.store(cmd)
	unsigned, err := store.SaveTransaction(cmd.Context(), txn)
	if err != nil {
		return err
	}
	signed, err := submit.SignAndSubmit(cmd.Context(), store, acct, txn)
	if err != nil {
		return err
	}
	a.log(cmd).WithFields(logrus.Fields{
		"type": string(txn.Type),
		"fee":  txn.Fee,
	}).Debug("built transaction")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "txid:     %s\n", signed.TxID)
	fmt.Fprintf(out, "fee:      %d\n", txn.Fee)
	fmt.Fprintf(out, "unsigned: %s\n", unsigned.Path)
	fmt.Fprintf(out, "signed:   %s\n", signed.Path)
	return nil
}

func newPayCmd(a *app) *cobra.Command {
	var (
		txnFlags commonTxnFlags
		to       string
		amount   uint64
		closeTo  string
	)
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Build, sign and save a payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.signer()
			if err != nil {
				return err
			}
			txn, params, err := a.buildPayment(cmd, acct, to, amount, closeTo)
			if err != nil {
				return err
			}
			if txn, err = txnFlags.apply(txn); err != nil {
				return err
			}
			return a.finish(cmd, acct, params, txn)
		},
	}
	txnFlags.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "receiver address")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in microalgos")
	cmd.Flags().StringVar(&closeTo, "close-to", "", "close the remaining balance to this address")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) buildPayment(
	cmd *cobra.Command,
	sender *account.Account,
	to string,
	amount uint64,
	closeTo string,
) (ledger.Transaction, ledger.SuggestedParams, error) {
	receiver, err := requiredAddress("to", to)
	if err != nil {
		return ledger.Transaction{}, ledger.SuggestedParams{}, err
	}
	closeAddr, err := optionalAddress("close-to", closeTo)
	if err != nil {
		return ledger.Transaction{}, ledger.SuggestedParams{}, err
	}
	header, params, err := a.header(cmd.Context(), sender)
	if err != nil {
		return ledger.Transaction{}, ledger.SuggestedParams{}, err
	}
	return ledger.Payment(header, receiver, amount, closeAddr), params, nil
}

func newAssetTransferCmd(a *app) *cobra.Command {
	var (
		txnFlags commonTxnFlags
		assetID  uint64
		to       string
		amount   uint64
		closeTo  string
		optIn    bool
	)
	cmd := &cobra.Command{
		Use:   "axfer",
		Short: "Build, sign and save an asset transfer or opt-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.signer()
			if err != nil {
				return err
			}
			header, params, err := a.header(cmd.Context(), acct)
			if err != nil {
				return err
			}
			var txn ledger.Transaction
			if optIn {
				txn = ledger.AssetOptIn(header, assetID)
			} else {
				receiver, err := requiredAddress("to", to)
				if err != nil {
					return err
				}
				closeAddr, err := optionalAddress("close-to", closeTo)
				if err != nil {
					return err
				}
				txn = ledger.AssetTransfer(header, assetID, amount, receiver, closeAddr)
			}
			if txn, err = txnFlags.apply(txn); err != nil {
				return err
			}
			return a.finish(cmd, acct, params, txn)
		},
	}
	txnFlags.register(cmd)
	cmd.Flags().Uint64Var(&assetID, "asset", 0, "asset ID")
	cmd.Flags().StringVar(&to, "to", "", "receiver address")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units of the asset")
	cmd.Flags().StringVar(&closeTo, "close-to", "", "close the asset holding to this address")
	cmd.Flags().BoolVar(&optIn, "opt-in", false, "opt the signing account in to the asset")
	_ = cmd.MarkFlagRequired("asset")
	return cmd
}

func requiredAddress(name, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, fmt.Errorf("--%s is required", name)
	}
	addr, err := common.NewAddress(value)
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return addr, nil
}

func newAppCallCmd(a *app) *cobra.Command {
	var (
		txnFlags      commonTxnFlags
		appID         uint64
		onComplete    string
		argsHex       []string
		accounts      []string
		foreignApps   []uint
		foreignAssets []uint
		approvalFile  string
		clearFile     string
		globalInts    uint64
		globalBytes   uint64
		localInts     uint64
		localBytes    uint64
		extraPages    uint32
	)
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Build, sign and save an application call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := a.signer()
			if err != nil {
				return err
			}
			onc, err := ledger.ParseOnCompletion(onComplete)
			if err != nil {
				return err
			}
			fields := ledger.ApplicationCallFields{
				ApplicationID:     appID,
				OnCompletion:      onc,
				ForeignApps:       toUint64s(foreignApps),
				ForeignAssets:     toUint64s(foreignAssets),
				GlobalStateSchema: common.StateSchema{NumUint: globalInts, NumByteSlice: globalBytes},
				LocalStateSchema:  common.StateSchema{NumUint: localInts, NumByteSlice: localBytes},
				ExtraProgramPages: extraPages,
			}
			for _, arg := range argsHex {
				decoded, err := hex.DecodeString(arg)
				if err != nil {
					return fmt.Errorf("invalid argument %q: %w", arg, err)
				}
				fields.ApplicationArgs = append(fields.ApplicationArgs, decoded)
			}
			for _, s := range accounts {
				addr, err := common.NewAddress(s)
				if err != nil {
					return fmt.Errorf("account: %w", err)
				}
				fields.Accounts = append(fields.Accounts, addr)
			}
			if approvalFile != "" {
				if fields.ApprovalProgram, err = os.ReadFile(approvalFile); err != nil {
					return err
				}
			}
			if clearFile != "" {
				if fields.ClearStateProgram, err = os.ReadFile(clearFile); err != nil {
					return err
				}
			}
			header, params, err := a.header(cmd.Context(), acct)
			if err != nil {
				return err
			}
			txn := ledger.ApplicationCall(header, fields)
			if txn, err = txnFlags.apply(txn); err != nil {
				return err
			}
			return a.finish(cmd, acct, params, txn)
		},
	}
	txnFlags.register(cmd)
	flags := cmd.Flags()
	flags.Uint64Var(&appID, "app-id", 0, "application ID, zero to create an application")
	flags.StringVar(&onComplete, "on-complete", ledger.NoOp.String(), "noop, optin, closeout, clearstate, update or delete")
	flags.StringArrayVar(&argsHex, "arg", nil, "application argument in hex, repeatable")
	flags.StringArrayVar(&accounts, "account", nil, "account the application may access, repeatable")
	flags.UintSliceVar(&foreignApps, "foreign-app", nil, "application the call may access")
	flags.UintSliceVar(&foreignAssets, "foreign-asset", nil, "asset the call may access")
	flags.StringVar(&approvalFile, "approval-program", "", "file with the compiled approval program")
	flags.StringVar(&clearFile, "clear-program", "", "file with the compiled clear state program")
	flags.Uint64Var(&globalInts, "global-ints", 0, "global state integer slots")
	flags.Uint64Var(&globalBytes, "global-bytes", 0, "global state byte slice slots")
	flags.Uint64Var(&localInts, "local-ints", 0, "local state integer slots")
	flags.Uint64Var(&localBytes, "local-bytes", 0, "local state byte slice slots")
	flags.Uint32Var(&extraPages, "extra-pages", 0, "extra program pages")
	return cmd
}

func toUint64s(values []uint) []uint64 {
	if len(values) == 0 {
		return nil
	}
	ret := make([]uint64, len(values))
	for i, v := range values {
		ret[i] = uint64(v)
	}
	return ret
}
