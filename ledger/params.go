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
	"github.com/blinklabs-io/goalgorand/ledger/common"
)

// MinTxnFee is the network minimum fee per transaction, in microalgos
const MinTxnFee = 1000

// SuggestedParams are the network parameters used to fill a transaction header
type SuggestedParams struct {
	// Fee is the fee per encoded byte, or the total fee when FlatFee is set
	Fee         uint64
	FlatFee     bool
	MinFee      uint64
	FirstValid  uint64
	LastValid   uint64
	GenesisID   string
	GenesisHash [32]byte
}

func (p SuggestedParams) minFee() uint64 {
	if p.MinFee == 0 {
		return MinTxnFee
	}
	return p.MinFee
}

// NewHeader returns a header for the given sender using the suggested params.
// The fee is final when FlatFee is set and a placeholder otherwise, until
// WithSuggestedFee is applied to the finished transaction.
func NewHeader(sender common.Address, params SuggestedParams) Header {
	h := Header{
		Sender:      sender,
		FirstValid:  params.FirstValid,
		LastValid:   params.LastValid,
		GenesisID:   params.GenesisID,
		GenesisHash: params.GenesisHash,
	}
	if params.FlatFee {
		h.Fee = params.Fee
	} else {
		h.Fee = params.minFee()
	}
	return h
}

// WithSuggestedFee returns a copy of the transaction with its fee computed from
// the suggested params. Unless FlatFee is set, the fee is the per-byte fee times
// the estimated signed size, raised to the minimum fee.
func (t Transaction) WithSuggestedFee(params SuggestedParams) Transaction {
	ret := t.Clone()
	if params.FlatFee {
		ret.Fee = params.Fee
		return ret
	}
	// Size with the final fee may differ by a few bytes from the estimate
	ret.Fee = 0
	fee := params.Fee * uint64(ret.EstimateSize())
	ret.Fee = max(fee, params.minFee())
	return ret
}
