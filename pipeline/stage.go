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

// Package pipeline decodes and verifies batches of signed transactions
// concurrently, with a pool of workers per stage.
package pipeline

import (
	"context"
	"errors"
	"time"
)

var ErrNilStage = errors.New("pipeline: stage must not be nil")

// Stage represents a processing stage in the pipeline.
type Stage interface {
	// Name returns the name of the stage for logging and metrics.
	Name() string
	// Process processes a single item. Returns an error if processing fails.
	Process(ctx context.Context, item *Item) error
}

// StageFunc is an adapter that allows using ordinary functions as Stage implementations.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, item *Item) error
}

func NewStageFunc(name string, fn func(ctx context.Context, item *Item) error) *StageFunc {
	return &StageFunc{
		name: name,
		fn:   fn,
	}
}

func (s *StageFunc) Name() string {
	return s.name
}

func (s *StageFunc) Process(ctx context.Context, item *Item) error {
	return s.fn(ctx, item)
}

// Stats contains counters for a pipeline run
type Stats struct {
	Submitted    uint64
	Decoded      uint64
	Verified     uint64
	DecodeErrors uint64
	VerifyErrors uint64

	// Transactions counts the transactions in decoded batches
	Transactions uint64
	// Groups counts decoded batches of more than one transaction
	Groups uint64
	// VerifiedTransactions counts the transactions in verified batches
	VerifiedTransactions uint64

	// LastItemTime is when the last item finished verification
	LastItemTime time.Time
	StartTime    time.Time
}
