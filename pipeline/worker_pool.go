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
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Recorder is told the outcome of every batch a stage finished
type Recorder func(item *Item, err error)

// StageWorkerPool runs one stage over batches read from Input with a fixed
// number of workers. Every batch is passed on to Output, failed or not, so the
// next stage and the caller see each submitted batch exactly once.
type StageWorkerPool struct {
	stage   Stage
	workers int
	input   <-chan *Item
	output  chan<- *Item
	errors  chan<- error
	record  Recorder
	logger  *logrus.Entry
	wg      sync.WaitGroup
	started atomic.Bool
}

type StageWorkerPoolConfig struct {
	// Stage is required; NewStageWorkerPool panics without one
	Stage Stage
	// NumWorkers defaults to 1
	NumWorkers int
	Input      <-chan *Item
	Output     chan<- *Item
	// Errors receives the error of each failed batch; may be nil
	Errors chan<- error
	// Record is called for each finished batch, except when the stage was
	// interrupted by cancellation; may be nil
	Record Recorder
	// Logger receives a debug entry per failed batch; may be nil
	Logger *logrus.Entry
}

func NewStageWorkerPool(config StageWorkerPoolConfig) *StageWorkerPool {
	if config.Stage == nil {
		panic(ErrNilStage)
	}
	logger := config.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &StageWorkerPool{
		stage:   config.Stage,
		workers: max(config.NumWorkers, 1),
		input:   config.Input,
		output:  config.Output,
		errors:  config.Errors,
		record:  config.Record,
		logger:  logger.WithField("stage", config.Stage.Name()),
	}
}

// Start launches the workers. Calling it again has no effect.
func (p *StageWorkerPool) Start(ctx context.Context) {
	if p.started.Swap(true) {
		return
	}
	p.wg.Add(p.workers)
	for range p.workers {
		go p.run(ctx)
	}
}

// Stop waits for the workers to exit. They exit once Input is closed and
// drained, or when the context passed to Start is done.
func (p *StageWorkerPool) Stop() {
	p.wg.Wait()
}

func (p *StageWorkerPool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-p.input:
			if !ok {
				return
			}
			if !p.handle(ctx, item) {
				return
			}
		}
	}
}

// handle processes one batch and passes it on. It returns false when ctx is
// done before the batch could be handed over.
func (p *StageWorkerPool) handle(ctx context.Context, item *Item) bool {
	err := p.stage.Process(ctx, item)
	if p.record != nil && !interrupted(err) {
		p.record(item, err)
	}
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"source": item.Source(),
			"seq":    item.Seq(),
		}).WithError(err).Debug("batch failed")
		if p.errors != nil {
			select {
			case p.errors <- err:
			case <-ctx.Done():
				return false
			}
		}
	}
	select {
	case p.output <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// DecodeRecorder counts decoded batches and the transactions they hold
func DecodeRecorder(metrics *Metrics) Recorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		metrics.RecordDecode(item.DecodeDuration(), len(item.Transactions()), err)
	}
}

// VerifyRecorder counts verified batches and their transactions. Batches that
// failed to decode pass through verification untouched and are not counted.
func VerifyRecorder(metrics *Metrics) Recorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		if !item.IsDecoded() {
			return
		}
		metrics.RecordVerify(item.VerifyDuration(), len(item.Transactions()), err)
	}
}
