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
	"errors"
	"fmt"
)

// Sentinel error for input with the wrong length, alphabet or checksum, so callers can use errors.Is
var ErrMalformedInput = errors.New("malformed input")

// Sentinel error for address validation failures
var ErrInvalidAddress = errors.New("invalid address")

// InvalidAddressError indicates an address string that failed validation
type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Address, e.Reason)
}

func (InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress || target == ErrMalformedInput
}
