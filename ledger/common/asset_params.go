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

// AssetParams describes an asset being created or reconfigured
type AssetParams struct {
	Total         uint64
	Decimals      uint32
	DefaultFrozen bool
	UnitName      string
	AssetName     string
	URL           string
	MetadataHash  [32]byte
	Manager       Address
	Reserve       Address
	Freeze        Address
	Clawback      Address
}

var assetParamsSchema = msgpack.NewSchema(
	msgpack.Fixed32("am", func(p *AssetParams) *[32]byte { return &p.MetadataHash }),
	msgpack.String("an", func(p *AssetParams) *string { return &p.AssetName }),
	msgpack.String("au", func(p *AssetParams) *string { return &p.URL }),
	msgpack.Fixed32("c", func(p *AssetParams) *Address { return &p.Clawback }),
	msgpack.Uint32("dc", func(p *AssetParams) *uint32 { return &p.Decimals }),
	msgpack.Bool("df", func(p *AssetParams) *bool { return &p.DefaultFrozen }),
	msgpack.Fixed32("f", func(p *AssetParams) *Address { return &p.Freeze }),
	msgpack.Fixed32("m", func(p *AssetParams) *Address { return &p.Manager }),
	msgpack.Fixed32("r", func(p *AssetParams) *Address { return &p.Reserve }),
	msgpack.Uint64("t", func(p *AssetParams) *uint64 { return &p.Total }),
	msgpack.String("un", func(p *AssetParams) *string { return &p.UnitName }),
)

// IsZero reports whether no field would be encoded
func (p AssetParams) IsZero() bool {
	return assetParamsSchema.Len(&p) == 0
}

func (p *AssetParams) MarshalMsg(b []byte) ([]byte, error) {
	return assetParamsSchema.Append(b, p)
}

func (p *AssetParams) UnmarshalMsg(b []byte) ([]byte, error) {
	return assetParamsSchema.Read(b, p)
}
