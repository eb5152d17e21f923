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

type AssetConfigFields struct {
	ConfigAsset uint64
	AssetParams common.AssetParams
}

type AssetTransferFields struct {
	XferAsset     uint64
	AssetAmount   uint64
	AssetSender   common.Address
	AssetReceiver common.Address
	AssetCloseTo  common.Address
}

type AssetFreezeFields struct {
	FreezeAsset   uint64
	FreezeAccount common.Address
	AssetFrozen   bool
}

// AssetConfig reconfigures an existing asset, or creates one when assetID is zero
func AssetConfig(header Header, assetID uint64, params common.AssetParams) Transaction {
	return Transaction{
		Type:   TxTypeAssetConfig,
		Header: header.clone(),
		AssetConfigFields: AssetConfigFields{
			ConfigAsset: assetID,
			AssetParams: params,
		},
	}
}

func AssetCreate(header Header, params common.AssetParams) Transaction {
	return AssetConfig(header, 0, params)
}

// AssetDestroy removes an asset. Only the manager can destroy an asset, and only
// when the creator holds all of it.
func AssetDestroy(header Header, assetID uint64) Transaction {
	return AssetConfig(header, assetID, common.AssetParams{})
}

// AssetTransfer moves amount units of an asset from the sender to receiver. A
// non-zero closeTo removes the asset holding from the sender and sends it the
// remainder.
func AssetTransfer(header Header, assetID uint64, amount uint64, receiver common.Address, closeTo common.Address) Transaction {
	return Transaction{
		Type:   TxTypeAssetTransfer,
		Header: header.clone(),
		AssetTransferFields: AssetTransferFields{
			XferAsset:     assetID,
			AssetAmount:   amount,
			AssetReceiver: receiver,
			AssetCloseTo:  closeTo,
		},
	}
}

// AssetOptIn is a zero amount transfer from the sender to itself
func AssetOptIn(header Header, assetID uint64) Transaction {
	return AssetTransfer(header, assetID, 0, header.Sender, common.Address{})
}

// AssetRevoke is a clawback transfer. The sender must be the asset clawback
// address, and the units are taken from revokeFrom.
func AssetRevoke(header Header, assetID uint64, amount uint64, revokeFrom common.Address, receiver common.Address) Transaction {
	t := AssetTransfer(header, assetID, amount, receiver, common.Address{})
	t.AssetSender = revokeFrom
	return t
}

func AssetFreeze(header Header, assetID uint64, target common.Address, frozen bool) Transaction {
	return Transaction{
		Type:   TxTypeAssetFreeze,
		Header: header.clone(),
		AssetFreezeFields: AssetFreezeFields{
			FreezeAsset:   assetID,
			FreezeAccount: target,
			AssetFrozen:   frozen,
		},
	}
}
