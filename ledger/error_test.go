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

package ledger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	addr := common.UncheckedAddress(test.AdviceAddress)
	testDefs := []struct {
		name     string
		err      error
		is       error
		isNot    error
		contains string
	}{
		{
			name:     "signer not found",
			err:      ledger.SignerNotFoundError{Signer: addr},
			is:       ledger.ErrSignerNotFound,
			isNot:    ledger.ErrNotAuthorized,
			contains: test.AdviceAddress,
		},
		{
			name:     "group size",
			err:      ledger.GroupSizeError{Size: 17},
			is:       common.ErrMalformedInput,
			isNot:    ledger.ErrNotAuthorized,
			contains: "17 transactions",
		},
		{
			name:     "authorization",
			err:      ledger.AuthorizationError{Authorizer: addr, Reason: "bad signature"},
			is:       ledger.ErrNotAuthorized,
			isNot:    common.ErrMalformedInput,
			contains: "bad signature",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			wrapped := fmt.Errorf("transaction 3: %w", testDef.err)
			assert.ErrorIs(t, wrapped, testDef.is)
			assert.NotErrorIs(t, wrapped, testDef.isNot)
			assert.Contains(t, wrapped.Error(), testDef.contains)
		})
	}
}

func TestAuthorizationErrorAs(t *testing.T) {
	data := test.DecodeBase64String(test.SignedPaymentGoldenB64)
	data[10] ^= 0x01
	stxn, err := ledger.DecodeSignedTransaction(data)
	require.NoError(t, err)
	err = stxn.Verify()
	var authErr ledger.AuthorizationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, test.AdviceAddress, authErr.Authorizer.String())
	assert.NotEmpty(t, authErr.Reason)
}
