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

// Package common provides the address type and the records shared between
// transaction types.
//
// An Address is a 32-byte key. Its human readable form is 58 characters of
// base32 covering the key and a 4-byte SHA-512/256 checksum. Inside encoded
// transactions only the raw key bytes are written.
//
// AssetParams and StateSchema are nested records. Like transactions, they are
// encoded as canonical MessagePack maps that omit zero-valued fields.
package common
