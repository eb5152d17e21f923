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
	"os"

	"github.com/blinklabs-io/goalgorand/pipeline"
	"github.com/spf13/cobra"
)

var errVerifyFailed = errors.New("verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Check the signatures of saved signed transaction files",
		Long: "Each file holds one signed transaction or a signed group. " +
			"Logic signature programs are not evaluated.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batches := make([]pipeline.Batch, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				batches = append(batches, pipeline.Batch{Source: path, Data: data})
			}
			items, err := pipeline.VerifyAll(
				cmd.Context(),
				batches,
				pipeline.WithVerifyWorkers(workers),
				pipeline.WithLogger(a.log(cmd)),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, item := range items {
				if err := item.Err(); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s\n", err)
					continue
				}
				fmt.Fprintf(out, "OK   %s (%d transactions)\n", item.Source(), len(item.Transactions()))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errVerifyFailed, failed, len(items))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", pipeline.DefaultConfig().VerifyWorkers, "number of verify workers")
	return cmd
}
