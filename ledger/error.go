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

package ledger

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/goalgorand/ledger/common"
)

var (
	// ErrSignerNotFound is returned when signing a multisig with an account that is not one of its keys
	ErrSignerNotFound = errors.New("signer not found in multisig")

	// ErrNotAuthorized is returned by Verify when a signed transaction carries no valid authorization
	ErrNotAuthorized = errors.New("transaction not authorized")
)

type SignerNotFoundError struct {
	Signer common.Address
}

func (e SignerNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSignerNotFound, e.Signer)
}

func (e SignerNotFoundError) Is(target error) bool {
	return target == ErrSignerNotFound
}

// GroupSizeError is returned when a group is empty or exceeds MaxTxGroupSize
type GroupSizeError struct {
	Size int
}

func (e GroupSizeError) Error() string {
	return fmt.Sprintf(
		"%s: group has %d transactions, must have 1 to %d",
		common.ErrMalformedInput,
		e.Size,
		MaxTxGroupSize,
	)
}

func (e GroupSizeError) Is(target error) bool {
	return target == common.ErrMalformedInput
}

// AuthorizationError describes why a signed transaction failed verification
type AuthorizationError struct {
	Authorizer common.Address
	Reason     string
}

func (e AuthorizationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrNotAuthorized, e.Authorizer, e.Reason)
}

func (e AuthorizationError) Is(target error) bool {
	return target == ErrNotAuthorized
}
