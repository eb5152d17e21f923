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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/base"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/submit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "goalgorand"

var errMissingMnemonic = errors.New(
	"no signing account: set --mnemonic or GOALGORAND_ACCOUNT_MNEMONIC",
)

// app holds the state shared by all subcommands
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: logrus.New(),
	}
	rootCmd := &cobra.Command{
		Use:           "goalgorand",
		Short:         "Build, sign, inspect and verify Algorand transactions offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "logging verbosity, possible values:[panic, fatal, error, warn, info, debug]")
	flags.String("out-dir", ".", "directory for saved transactions")
	flags.String("mnemonic", "", "25-word mnemonic of the signing account")
	flags.Uint64("fee", 0, "fee per byte, or the total fee with --flat-fee")
	flags.Uint64("min-fee", ledger.MinTxnFee, "minimum transaction fee")
	flags.Bool("flat-fee", false, "use --fee as the total fee")
	flags.Uint64("first-valid", 0, "first valid round")
	flags.Uint64("last-valid", 0, "last valid round, defaults to first valid + 1000")
	flags.String("genesis-id", "", "genesis ID of the network")
	flags.String("genesis-hash", "", "base64 genesis hash of the network")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("out.dir", flags.Lookup("out-dir"))
	_ = a.v.BindPFlag("account.mnemonic", flags.Lookup("mnemonic"))
	_ = a.v.BindPFlag("params.fee", flags.Lookup("fee"))
	_ = a.v.BindPFlag("params.min_fee", flags.Lookup("min-fee"))
	_ = a.v.BindPFlag("params.flat_fee", flags.Lookup("flat-fee"))
	_ = a.v.BindPFlag("params.first_valid", flags.Lookup("first-valid"))
	_ = a.v.BindPFlag("params.last_valid", flags.Lookup("last-valid"))
	_ = a.v.BindPFlag("params.genesis_id", flags.Lookup("genesis-id"))
	_ = a.v.BindPFlag("params.genesis_hash", flags.Lookup("genesis-hash"))

	rootCmd.AddCommand(
		newKeygenCmd(a),
		newMnemonicCmd(a),
		newAddressCmd(a),
		newPayCmd(a),
		newAssetTransferCmd(a),
		newAppCallCmd(a),
		newLogicSigCmd(a),
		newInspectCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

// loadConfig merges the config file and environment over the flag values
func (a *app) loadConfig(cmd *cobra.Command) error {
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	level, err := logrus.ParseLevel(a.v.GetString("log.level"))
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)
	a.logger.WithField("config", a.v.ConfigFileUsed()).Debug("loaded configuration")
	return nil
}

func (a *app) log(cmd *cobra.Command) *logrus.Entry {
	return a.logger.WithField("command", cmd.Name())
}

// params returns the network parameters from the configuration
func (a *app) params() (submit.StaticParams, error) {
	sp := ledger.SuggestedParams{
		Fee:        a.v.GetUint64("params.fee"),
		FlatFee:    a.v.GetBool("params.flat_fee"),
		MinFee:     a.v.GetUint64("params.min_fee"),
		FirstValid: a.v.GetUint64("params.first_valid"),
		LastValid:  a.v.GetUint64("params.last_valid"),
		GenesisID:  a.v.GetString("params.genesis_id"),
	}
	if sp.LastValid == 0 {
		sp.LastValid = sp.FirstValid + 1000
	}
	if sp.LastValid < sp.FirstValid {
		return submit.StaticParams{}, fmt.Errorf(
			"last valid round %d is before first valid round %d",
			sp.LastValid,
			sp.FirstValid,
		)
	}
	if gh := a.v.GetString("params.genesis_hash"); gh != "" {
		trimmed := strings.TrimRight(gh, "=")
		decoded := base.Decode64(trimmed)
		if !base.UsesB64Alphabet(trimmed) || len(decoded) != len(sp.GenesisHash) {
			return submit.StaticParams{}, fmt.Errorf("invalid genesis hash %q", gh)
		}
		copy(sp.GenesisHash[:], decoded)
	}
	return submit.StaticParams(sp), nil
}

// signer returns the account for the configured mnemonic
func (a *app) signer() (*account.Account, error) {
	phrase := a.v.GetString("account.mnemonic")
	if phrase == "" {
		return nil, errMissingMnemonic
	}
	return account.FromMnemonic(phrase)
}

func (a *app) store(cmd *cobra.Command) *submit.FileStore {
	return submit.NewFileStore(
		a.v.GetString("out.dir"),
		submit.WithLogger(a.log(cmd)),
	)
}

// header builds a transaction header for sender from the configured params
func (a *app) header(ctx context.Context, sender *account.Account) (ledger.Header, ledger.SuggestedParams, error) {
	params, err := a.params()
	if err != nil {
		return ledger.Header{}, ledger.SuggestedParams{}, err
	}
	return submit.BuildHeader(ctx, params, sender)
}
