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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/msgpack"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a saved transaction or signed transaction file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			stxns, signedErr := ledger.DecodeSignedTransactions(data)
			if signedErr == nil {
				for idx, stxn := range stxns {
					if err := printSignedTransaction(out, idx, stxn); err != nil {
						return err
					}
				}
				return nil
			}
			txn, txnErr := ledger.DecodeTransaction(data)
			if txnErr != nil {
				a.log(cmd).WithError(signedErr).Debug("not a signed transaction file")
				return errors.Join(signedErr, txnErr)
			}
			fmt.Fprintf(out, "txid: %s\n", txn.ID())
			fmt.Fprintf(out, "type: %s\n", txn.Type)
			return printJSON(out, data)
		},
	}
}

func printSignedTransaction(out io.Writer, idx int, stxn ledger.SignedTransaction) error {
	kind := "sig"
	if _, ok := stxn.MultiSig(); ok {
		kind = "msig"
	} else if lsig, ok := stxn.LogicSig(); ok {
		kind = "lsig"
		if lsig.IsDelegated() {
			kind = "lsig (delegated)"
		}
	}
	status := "valid"
	if err := stxn.Verify(); err != nil {
		status = err.Error()
	}
	txn := stxn.Transaction()
	fmt.Fprintf(out, "[%d] txid:       %s\n", idx, stxn.ID())
	fmt.Fprintf(out, "[%d] type:       %s\n", idx, txn.Type)
	fmt.Fprintf(out, "[%d] authorizer: %s (%s)\n", idx, stxn.AuthAddr(), kind)
	fmt.Fprintf(out, "[%d] signature:  %s\n", idx, status)
	if !txn.Group.IsZero() {
		fmt.Fprintf(out, "[%d] group:      %s\n", idx, txn.Group)
	}
	return printJSON(out, stxn.Encode())
}

func printJSON(out io.Writer, data []byte) error {
	decoded, err := msgpack.ToJSON(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, decoded)
	return nil
}
