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
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	// ErrPipelineStopped is returned when trying to submit to a stopped pipeline.
	ErrPipelineStopped = errors.New("pipeline is stopped")

	// ErrPipelineNotStarted is returned when trying to use a pipeline that hasn't been started.
	ErrPipelineNotStarted = errors.New("pipeline not started")

	// ErrGroupMismatch is returned when the transactions of a batch do not carry
	// the group ID computed from their contents
	ErrGroupMismatch = errors.New("group ID does not match transactions")
)

// closedResultsChan is returned by Results before Start so callers never block on nil
var closedResultsChan = func() <-chan *Item {
	ch := make(chan *Item)
	close(ch)
	return ch
}()

// Pipeline decodes and verifies batches of signed transactions with a pool of
// workers per stage. Results arrive in completion order; use Item.Seq to
// restore submission order. Results and Errors must be drained until closed.
type Pipeline struct {
	config Config

	decodePool *StageWorkerPool
	verifyPool *StageWorkerPool

	submitChan  chan *Item
	decodedChan chan *Item
	resultsChan chan *Item
	errorsChan  chan error

	metrics *Metrics

	seq      atomic.Uint64
	ctx      context.Context
	cancel   context.CancelFunc
	started  atomic.Bool
	stopped  atomic.Bool
	mu       sync.Mutex   // protects Start/Stop
	submitMu sync.RWMutex // protects Submit against concurrent Stop
}

// New creates a pipeline using functional options.
//
// Example:
//
//	p := New(
//	    WithVerifyWorkers(8),
//	    WithLogger(logger),
//	)
func New(opts ...Option) *Pipeline {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Pipeline{
		config:  config,
		metrics: NewMetrics(),
	}
}

// Start starts the worker pools. Cancelling ctx aborts processing.
func (p *Pipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped.Load() {
		return ErrPipelineStopped
	}
	if p.started.Load() {
		return nil
	}

	p.ctx, p.cancel = context.WithCancel(ctx)

	bufSize := p.config.BufferSize
	p.submitChan = make(chan *Item, bufSize)
	p.decodedChan = make(chan *Item, bufSize)
	p.resultsChan = make(chan *Item, bufSize)
	p.errorsChan = make(chan error, bufSize)

	p.decodePool = NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:      NewDecodeStage(),
		NumWorkers: p.config.DecodeWorkers,
		Input:      p.submitChan,
		Output:     p.decodedChan,
		Errors:     p.errorsChan,
		Record:     DecodeRecorder(p.metrics),
		Logger:     p.config.Logger,
	})
	p.verifyPool = NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:      NewVerifyStage(),
		NumWorkers: p.config.VerifyWorkers,
		Input:      p.decodedChan,
		Output:     p.resultsChan,
		Errors:     p.errorsChan,
		Record:     VerifyRecorder(p.metrics),
		Logger:     p.config.Logger,
	})

	p.decodePool.Start(p.ctx) //nolint:contextcheck
	p.verifyPool.Start(p.ctx) //nolint:contextcheck

	p.started.Store(true)
	return nil
}

// Submit submits an encoded batch for processing.
// This method is safe to call concurrently with Stop.
func (p *Pipeline) Submit(ctx context.Context, source string, raw []byte) error {
	if !p.started.Load() {
		return ErrPipelineNotStarted
	}

	// Stop waits for in-flight submits before closing the input channel
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.stopped.Load() {
		return ErrPipelineStopped
	}

	item := NewItem(source, raw, p.seq.Add(1)-1)

	select {
	case p.submitChan <- item:
		p.metrics.RecordSubmit()
		if p.config.Logger != nil {
			p.config.Logger.WithFields(logrus.Fields{
				"source": source,
				"seq":    item.Seq(),
				"bytes":  len(raw),
			}).Debug("submitted batch")
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPipelineStopped
	}
}

// Results returns a channel of processed items, including failed ones.
// Before Start it returns a closed channel.
func (p *Pipeline) Results() <-chan *Item {
	if !p.started.Load() {
		return closedResultsChan
	}
	return p.resultsChan
}

// Errors returns a channel of processing errors
func (p *Pipeline) Errors() <-chan error {
	if !p.started.Load() {
		ch := make(chan error, 1)
		ch <- ErrPipelineNotStarted
		close(ch)
		return ch
	}
	return p.errorsChan
}

// Stop stops accepting new items, waits for submitted items to be processed,
// and closes the Results and Errors channels
func (p *Pipeline) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started.Load() || p.stopped.Load() {
		return nil
	}

	p.submitMu.Lock()
	p.stopped.Store(true)
	close(p.submitChan)
	p.submitMu.Unlock()

	p.decodePool.Stop()
	close(p.decodedChan)
	p.verifyPool.Stop()

	close(p.resultsChan)
	close(p.errorsChan)

	p.cancel()
	return nil
}

func (p *Pipeline) Stats() Stats {
	return p.metrics.Stats()
}

// Batch is an encoded group of signed transactions and where it came from
type Batch struct {
	Source string
	Data   []byte
}

// VerifyAll decodes and verifies the given batches and returns one item per
// batch in input order. Per-item failures are reported through Item.Err; the
// returned error is only set when the run itself fails.
func VerifyAll(ctx context.Context, batches []Batch, opts ...Option) ([]*Item, error) {
	p := New(opts...)
	if err := p.Start(ctx); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	results := make([]*Item, 0, len(batches))
	wg.Add(2)
	go func() {
		defer wg.Done()
		for item := range p.Results() {
			if p.config.Logger != nil {
				p.config.Logger.WithFields(logrus.Fields{
					"source":   item.Source(),
					"seq":      item.Seq(),
					"verified": item.IsVerified(),
				}).Debug("processed batch")
			}
			results = append(results, item)
		}
	}()
	go func() {
		defer wg.Done()
		// Errors are also recorded on their items
		for range p.Errors() {
		}
	}()

	var submitErr error
	for _, b := range batches {
		if submitErr = p.Submit(ctx, b.Source, b.Data); submitErr != nil {
			break
		}
	}
	_ = p.Stop()
	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b *Item) int {
		switch {
		case a.Seq() < b.Seq():
			return -1
		case a.Seq() > b.Seq():
			return 1
		}
		return 0
	})
	return results, nil
}
