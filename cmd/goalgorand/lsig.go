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

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type logicSigFlags struct {
	programHex string
	argsHex    []string
}

func (f *logicSigFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.programHex, "program-hex", "", "compiled program in hex")
	cmd.Flags().StringArrayVar(&f.argsHex, "arg", nil, "program argument in hex, repeatable")
	_ = cmd.MarkFlagRequired("program-hex")
}

func (f *logicSigFlags) logicSig() (ledger.LogicSig, error) {
	program, err := hex.DecodeString(f.programHex)
	if err != nil {
		return ledger.LogicSig{}, fmt.Errorf("invalid program: %w", err)
	}
	var args [][]byte
	for _, arg := range f.argsHex {
		decoded, err := hex.DecodeString(arg)
		if err != nil {
			return ledger.LogicSig{}, fmt.Errorf("invalid argument %q: %w", arg, err)
		}
		args = append(args, decoded)
	}
	return ledger.NewLogicSig(program, args)
}

func newLogicSigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsig",
		Short: "Logic signature tools",
	}
	cmd.AddCommand(
		newLogicSigAddressCmd(),
		newLogicSigPayCmd(a),
	)
	return cmd
}

func newLogicSigAddressCmd() *cobra.Command {
	var lsigFlags logicSigFlags
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the contract account address of a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lsig, err := lsigFlags.logicSig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lsig.Address())
			return nil
		},
	}
	lsigFlags.register(cmd)
	return cmd
}

func newLogicSigPayCmd(a *app) *cobra.Command {
	var (
		lsigFlags logicSigFlags
		txnFlags  commonTxnFlags
		to        string
		amount    uint64
		closeTo   string
		delegate  bool
	)
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Build and save a payment authorized by a program",
		Long: "Without --delegate the payment is sent from the program's contract account. " +
			"With --delegate it is sent from the signing account, which signs the program.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lsig, err := lsigFlags.logicSig()
			if err != nil {
				return err
			}
			sender := account.WatchOnly(lsig.Address())
			if delegate {
				acct, err := a.signer()
				if err != nil {
					return err
				}
				defer acct.Zero()
				if lsig, err = lsig.Sign(acct); err != nil {
					return err
				}
				sender = account.WatchOnly(acct.Address())
			}
			txn, params, err := a.buildPayment(cmd, sender, to, amount, closeTo)
			if err != nil {
				return err
			}
			if txn, err = txnFlags.apply(txn); err != nil {
				return err
			}
			txn = txn.WithSuggestedFee(params)
			stxn, err := txn.SignWithLogicSig(lsig)
			if err != nil {
				return err
			}
			if err := stxn.Verify(); err != nil {
				return err
			}
			store := a.store(cmd)
			status, err := store.Submit(cmd.Context(), stxn.Encode())
			if err != nil {
				return err
			}
			a.log(cmd).WithFields(logrus.Fields{
				"sender":    sender.String(),
				"delegated": delegate,
			}).Debug("built logicsig payment")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "txid:   %s\n", status.TxID)
			fmt.Fprintf(out, "sender: %s\n", sender)
			fmt.Fprintf(out, "signed: %s\n", status.Path)
			return nil
		},
	}
	lsigFlags.register(cmd)
	txnFlags.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "receiver address")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in microalgos")
	cmd.Flags().StringVar(&closeTo, "close-to", "", "close the remaining balance to this address")
	cmd.Flags().BoolVar(&delegate, "delegate", false, "sign the program with the signing account")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
