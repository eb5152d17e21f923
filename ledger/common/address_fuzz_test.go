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
	"testing"

	"github.com/blinklabs-io/goalgorand/internal/test"
)

func FuzzNewAddress(f *testing.F) {
	f.Add(test.ZeroAddress)
	f.Add(test.AdviceAddress)
	f.Add("invalid_address_string")

	f.Fuzz(func(t *testing.T, addr string) {
		parsed, err := NewAddress(addr)
		if err != nil {
			return
		}
		// Any accepted address must print back to its input
		if parsed.String() != addr {
			t.Fatalf("address round trip mismatch, got: %s, wanted: %s", parsed.String(), addr)
		}
	})
}

func FuzzAddressUnmarshalMsg(f *testing.F) {
	f.Add([]byte{0xc4, 0x20})
	f.Add(append([]byte{0xc4, 0x20}, make([]byte, 32)...))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic on any input
		var a Address
		_, _ = a.UnmarshalMsg(data)
	})
}
