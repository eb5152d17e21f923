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

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/blinklabs-io/goalgorand/ledger"
)

// VerifyStage checks the authorization of every transaction in a decoded item.
// When an item holds more than one transaction, they must share a group ID
// that matches their contents.
type VerifyStage struct{}

func NewVerifyStage() *VerifyStage {
	return &VerifyStage{}
}

func (s *VerifyStage) Name() string {
	return "verify"
}

func (s *VerifyStage) Process(ctx context.Context, item *Item) error {
	// Nothing to verify when decoding failed
	if !item.IsDecoded() {
		return nil
	}
	start := time.Now()
	err := verifyItem(ctx, item)
	if err != nil {
		err = fmt.Errorf("%s: %w", item.Source(), err)
	}
	item.SetVerified(err, time.Since(start))
	return err
}

func verifyItem(ctx context.Context, item *Item) error {
	stxns := item.Transactions()
	for idx, stxn := range stxns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := stxn.Verify(); err != nil {
			return fmt.Errorf("transaction %d (%s): %w", idx, stxn.ID(), err)
		}
	}
	if len(stxns) < 2 {
		return nil
	}
	txns := make([]ledger.Transaction, len(stxns))
	for idx, stxn := range stxns {
		txns[idx] = stxn.Transaction()
	}
	gid, err := ledger.ComputeGroupID(txns...)
	if err != nil {
		return err
	}
	for idx, txn := range txns {
		if txn.Group != gid {
			return fmt.Errorf("transaction %d: %w", idx, ErrGroupMismatch)
		}
	}
	return nil
}
