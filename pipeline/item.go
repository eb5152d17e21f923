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
	"bytes"
	"sync"
	"time"

	"github.com/blinklabs-io/goalgorand/ledger"
)

// Item is one encoded batch of signed transactions moving through the pipeline,
// such as the contents of a .stxn file
type Item struct {
	// Immutable fields, set at construction
	source     string
	raw        []byte
	seq        uint64
	receivedAt time.Time

	mu sync.RWMutex

	// Decode stage results
	txns           []ledger.SignedTransaction
	decodeError    error
	decodeDuration time.Duration

	// Verify stage results
	verified       bool
	verifyError    error
	verifyDuration time.Duration
}

// NewItem creates an item. The raw bytes are copied.
func NewItem(source string, raw []byte, seq uint64) *Item {
	return &Item{
		source:     source,
		raw:        bytes.Clone(raw),
		seq:        seq,
		receivedAt: time.Now(),
	}
}

func (i *Item) Source() string {
	return i.source
}

func (i *Item) Raw() []byte {
	return i.raw
}

// Seq returns the submission order of the item
func (i *Item) Seq() uint64 {
	return i.seq
}

func (i *Item) ReceivedAt() time.Time {
	return i.receivedAt
}

func (i *Item) SetDecoded(txns []ledger.SignedTransaction, err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.txns = txns
	i.decodeError = err
	i.decodeDuration = duration
}

func (i *Item) SetVerified(err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.verified = err == nil
	i.verifyError = err
	i.verifyDuration = duration
}

// Transactions returns the decoded transactions, or nil if decoding failed
func (i *Item) Transactions() []ledger.SignedTransaction {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.txns
}

func (i *Item) IsDecoded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.txns != nil && i.decodeError == nil
}

func (i *Item) IsVerified() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.verified
}

func (i *Item) DecodeError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeError
}

func (i *Item) VerifyError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.verifyError
}

// Err returns the first error recorded for the item
func (i *Item) Err() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.decodeError != nil {
		return i.decodeError
	}
	return i.verifyError
}

func (i *Item) DecodeDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeDuration
}

func (i *Item) VerifyDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.verifyDuration
}
