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
	"fmt"

	"github.com/blinklabs-io/goalgorand/crypto"
	"github.com/blinklabs-io/goalgorand/msgpack"
)

// MaxTxGroupSize is the maximum number of transactions in an atomic group
const MaxTxGroupSize = 16

type txGroup struct {
	TxList []crypto.Digest
}

var txGroupSchema = msgpack.NewSchema(
	msgpack.Fixed32List("txlist", func(g *txGroup) *[]crypto.Digest { return &g.TxList }),
)

func (g *txGroup) MarshalMsg(b []byte) ([]byte, error) {
	return txGroupSchema.Append(b, g)
}

// ComputeGroupID returns the ID of a group of transactions. Any group ID the
// transactions already carry is ignored.
func ComputeGroupID(txns ...Transaction) (crypto.Digest, error) {
	if len(txns) == 0 || len(txns) > MaxTxGroupSize {
		return crypto.Digest{}, GroupSizeError{Size: len(txns)}
	}
	g := txGroup{TxList: make([]crypto.Digest, len(txns))}
	for i, t := range txns {
		t.Group = crypto.Digest{}
		g.TxList[i] = t.Digest()
	}
	data, err := msgpack.Encode(&g)
	if err != nil {
		return crypto.Digest{}, fmt.Errorf("encode group: %w", err)
	}
	return crypto.HashObj(crypto.HashIDTxGroup, data), nil
}

// AssignGroupID returns copies of the transactions carrying their group ID, in
// the given order
func AssignGroupID(txns ...Transaction) ([]Transaction, error) {
	gid, err := ComputeGroupID(txns...)
	if err != nil {
		return nil, err
	}
	ret := make([]Transaction, len(txns))
	for i, t := range txns {
		ret[i] = t.WithGroup(gid)
	}
	return ret, nil
}
