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
	"testing"

	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGroupID(t *testing.T) {
	first := goldenPayment(t)
	second := goldenSignedPayment(t)
	gid, err := ledger.ComputeGroupID(first, second)
	require.NoError(t, err)
	assert.Equal(
		t,
		test.DecodeBase64String("IbeII+r2BkRrlCAHlPpx7OP4rE9n3RAsngPNqmW33nw="),
		gid[:],
	)

	// Order matters
	reversed, err := ledger.ComputeGroupID(second, first)
	require.NoError(t, err)
	assert.NotEqual(t, gid, reversed)

	grouped, err := ledger.AssignGroupID(first, second)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	for _, txn := range grouped {
		assert.Equal(t, gid, txn.Group)
	}
	assert.True(t, first.Group.IsZero())
	assert.NotEqual(t, first.ID(), grouped[0].ID())

	// Existing group IDs are ignored
	again, err := ledger.ComputeGroupID(grouped...)
	require.NoError(t, err)
	assert.Equal(t, gid, again)
}

func TestComputeGroupIDSize(t *testing.T) {
	_, err := ledger.ComputeGroupID()
	assert.ErrorIs(t, err, common.ErrMalformedInput)

	txns := make([]ledger.Transaction, ledger.MaxTxGroupSize+1)
	for i := range txns {
		txns[i] = goldenPayment(t)
	}
	_, err = ledger.AssignGroupID(txns...)
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	var sizeErr ledger.GroupSizeError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, ledger.MaxTxGroupSize+1, sizeErr.Size)

	_, err = ledger.AssignGroupID(txns[:ledger.MaxTxGroupSize]...)
	require.NoError(t, err)
}
