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
	"strings"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/mnemonic"
	"github.com/spf13/cobra"
)

func newKeygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := account.Generate()
			if err != nil {
				return err
			}
			defer acct.Zero()
			phrase, err := acct.Mnemonic()
			if err != nil {
				return err
			}
			a.log(cmd).WithField("address", acct.String()).Debug("generated account")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address:  %s\n", acct)
			fmt.Fprintf(out, "mnemonic: %s\n", phrase)
			return nil
		},
	}
}

func newMnemonicCmd(a *app) *cobra.Command {
	var seedHex string
	cmd := &cobra.Command{
		Use:   "mnemonic [word...]",
		Short: "Recover an account from a mnemonic, or encode a seed as one",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if seedHex != "" {
				seed, err := hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("invalid seed: %w", err)
				}
				phrase, err := mnemonic.FromSeed(seed)
				if err != nil {
					return err
				}
				acct, err := account.FromSeed(seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "address:  %s\n", acct)
				fmt.Fprintf(out, "mnemonic: %s\n", phrase)
				return nil
			}
			phrase := strings.Join(args, " ")
			if phrase == "" {
				phrase = a.v.GetString("account.mnemonic")
			}
			if phrase == "" {
				return errMissingMnemonic
			}
			acct, err := account.FromMnemonic(phrase)
			if err != nil {
				return err
			}
			seed, err := acct.Seed()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "address: %s\n", acct)
			fmt.Fprintf(out, "seed:    %x\n", seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed-hex", "", "32-byte seed in hex to encode as a mnemonic")
	return cmd
}

func newAddressCmd(a *app) *cobra.Command {
	var pubKeyHex string
	cmd := &cobra.Command{
		Use:   "address [address]",
		Short: "Validate an address, or derive one from a public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if pubKeyHex != "" {
				pubKey, err := hex.DecodeString(pubKeyHex)
				if err != nil {
					return fmt.Errorf("invalid public key: %w", err)
				}
				if err := crypto.ValidatePublicKey(pubKey); err != nil {
					return fmt.Errorf("%w: %w", common.ErrMalformedInput, err)
				}
				addr, err := common.NewAddressFromPublicKey(pubKey)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, addr)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("expected an address or --public-key")
			}
			addr, err := common.NewAddress(args[0])
			if err != nil {
				return err
			}
			a.log(cmd).WithField("address", addr.String()).Debug("address is valid")
			fmt.Fprintf(out, "public key: %x\n", addr.PublicKey())
			fmt.Fprintf(out, "checksum:   %x\n", addr.Checksum())
			return nil
		},
	}
	cmd.Flags().StringVar(&pubKeyHex, "public-key", "", "32-byte public key in hex")
	return cmd
}
