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
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks counters for a pipeline with atomic operations
type Metrics struct {
	submitted    atomic.Uint64
	decoded      atomic.Uint64
	verified     atomic.Uint64
	decodeErrors atomic.Uint64
	verifyErrors atomic.Uint64
	transactions atomic.Uint64
	groups       atomic.Uint64
	verifiedTxns atomic.Uint64

	mu           sync.RWMutex
	decodeTime   time.Duration
	verifyTime   time.Duration
	lastItemTime time.Time
	startTime    time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

func (m *Metrics) RecordSubmit() {
	m.submitted.Add(1)
}

// RecordDecode counts a decoded batch of txns transactions. A batch of more
// than one transaction is a group.
func (m *Metrics) RecordDecode(duration time.Duration, txns int, err error) {
	if err != nil {
		m.decodeErrors.Add(1)
	} else {
		m.decoded.Add(1)
		m.transactions.Add(uint64(txns))
		if txns > 1 {
			m.groups.Add(1)
		}
	}
	m.mu.Lock()
	m.decodeTime += duration
	m.mu.Unlock()
}

func (m *Metrics) RecordVerify(duration time.Duration, txns int, err error) {
	if err != nil {
		m.verifyErrors.Add(1)
	} else {
		m.verified.Add(1)
		m.verifiedTxns.Add(uint64(txns))
	}
	m.mu.Lock()
	m.verifyTime += duration
	m.lastItemTime = time.Now()
	m.mu.Unlock()
}

// Durations returns the total time spent in each stage across all workers
func (m *Metrics) Durations() (decode time.Duration, verify time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.decodeTime, m.verifyTime
}

// Stats returns a snapshot of the current metrics
func (m *Metrics) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		Submitted:            m.submitted.Load(),
		Decoded:              m.decoded.Load(),
		Verified:             m.verified.Load(),
		DecodeErrors:         m.decodeErrors.Load(),
		VerifyErrors:         m.verifyErrors.Load(),
		Transactions:         m.transactions.Load(),
		Groups:               m.groups.Load(),
		VerifiedTransactions: m.verifiedTxns.Load(),
		LastItemTime:         m.lastItemTime,
		StartTime:            m.startTime,
	}
}
