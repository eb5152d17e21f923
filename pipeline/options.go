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
	"runtime"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for a Pipeline
type Config struct {
	// DecodeWorkers is the number of parallel decode workers.
	DecodeWorkers int
	// VerifyWorkers is the number of parallel verify workers.
	VerifyWorkers int
	// BufferSize is the buffer size for inter-stage channels.
	BufferSize int
	// Logger receives a debug entry per processed item; may be nil.
	Logger *logrus.Entry
}

// DefaultConfig returns a Config scaled to the number of CPUs.
// Verification dominates, so it gets most of the workers.
func DefaultConfig() Config {
	numCPU := runtime.NumCPU()
	return Config{
		DecodeWorkers: max(numCPU/4, 1),
		VerifyWorkers: max(numCPU, 2),
		BufferSize:    64,
	}
}

// Option is a functional option for configuring a Pipeline
type Option func(*Config)

func WithConfig(config Config) Option {
	return func(c *Config) {
		*c = config
	}
}

func WithDecodeWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.DecodeWorkers = n
		}
	}
}

func WithVerifyWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.VerifyWorkers = n
		}
	}
}

func WithBufferSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.BufferSize = size
		}
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
