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

package common

import (
	"github.com/blinklabs-io/goalgorand/msgpack"
)

// StateSchema bounds the key/value storage of an application
type StateSchema struct {
	NumUint      uint64
	NumByteSlice uint64
}

var stateSchemaSchema = msgpack.NewSchema(
	msgpack.Uint64("nbs", func(s *StateSchema) *uint64 { return &s.NumByteSlice }),
	msgpack.Uint64("nui", func(s *StateSchema) *uint64 { return &s.NumUint }),
)

func (s StateSchema) IsZero() bool {
	return s == StateSchema{}
}

func (s *StateSchema) MarshalMsg(b []byte) ([]byte, error) {
	return stateSchemaSchema.Append(b, s)
}

func (s *StateSchema) UnmarshalMsg(b []byte) ([]byte, error) {
	return stateSchemaSchema.Read(b, s)
}
