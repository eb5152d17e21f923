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

// DecodeStage strictly decodes the raw bytes of an item into signed transactions
type DecodeStage struct{}

func NewDecodeStage() *DecodeStage {
	return &DecodeStage{}
}

func (s *DecodeStage) Name() string {
	return "decode"
}

func (s *DecodeStage) Process(ctx context.Context, item *Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	txns, err := ledger.DecodeSignedTransactions(item.Raw())
	if err != nil {
		err = fmt.Errorf("%s: %w", item.Source(), err)
		item.SetDecoded(nil, err, time.Since(start))
		return err
	}
	item.SetDecoded(txns, nil, time.Since(start))
	return nil
}
