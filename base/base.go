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

// Package base implements the fixed-alphabet bit-packing codecs used by the
// address, transaction ID and mnemonic encodings.
//
// Decoders stop at the first symbol outside of their alphabet instead of
// returning an error. Callers that need strict validation must check the
// input with UsesB32Alphabet or UsesB64Alphabet first.
package base

import (
	"strings"
)

const (
	B32Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	B64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// B2048Symbols is the number of distinct base-2048 symbols
	B2048Symbols = 2048
)

// alphabet maps between symbol values and their characters
type alphabet struct {
	digits string
	width  uint
	values [256]int16
}

func newAlphabet(digits string, width uint) *alphabet {
	a := &alphabet{
		digits: digits,
		width:  width,
	}
	for i := range a.values {
		a.values[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		a.values[digits[i]] = int16(i)
	}
	return a
}

var (
	b32 = newAlphabet(B32Digits, 5)
	b64 = newAlphabet(B64Digits, 6)
)

func (a *alphabet) encode(in []byte) string {
	var sb strings.Builder
	sb.Grow((len(in)*8 + int(a.width) - 1) / int(a.width))
	mask := uint32(1)<<a.width - 1
	var acc uint32
	var bits uint
	for _, c := range in {
		acc = acc<<8 | uint32(c)
		bits += 8
		for bits >= a.width {
			bits -= a.width
			sb.WriteByte(a.digits[(acc>>bits)&mask])
		}
		acc &= 1<<bits - 1
	}
	if bits > 0 {
		sb.WriteByte(a.digits[(acc<<(a.width-bits))&mask])
	}
	return sb.String()
}

func (a *alphabet) decode(in string) []byte {
	out := make([]byte, 0, len(in)*int(a.width)/8)
	var acc uint32
	var bits uint
	for i := 0; i < len(in); i++ {
		v := a.values[in[i]]
		if v < 0 {
			break
		}
		acc = acc<<a.width | uint32(v)
		bits += a.width
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
		acc &= 1<<bits - 1
	}
	return out
}

func (a *alphabet) uses(in string) bool {
	for i := 0; i < len(in); i++ {
		if a.values[in[i]] < 0 {
			return false
		}
	}
	return true
}

// Encode32 returns the unpadded base-32 form of the input
func Encode32(in []byte) string {
	return b32.encode(in)
}

// Decode32 decodes base-32 text, stopping at the first character outside of the alphabet
func Decode32(in string) []byte {
	return b32.decode(in)
}

// UsesB32Alphabet reports whether every character of the input is a base-32 digit
func UsesB32Alphabet(in string) bool {
	return b32.uses(in)
}

// Encode64 returns the unpadded base-64 form of the input
func Encode64(in []byte) string {
	return b64.encode(in)
}

// Encode64Padded returns the base-64 form of the input padded with '=' to a multiple of 4
func Encode64Padded(in []byte) string {
	out := b64.encode(in)
	if rem := len(out) % 4; rem != 0 {
		out += strings.Repeat("=", 4-rem)
	}
	return out
}

// Decode64 decodes base-64 text, stopping at the first character outside of the alphabet.
// Any '=' padding therefore terminates decoding.
func Decode64(in string) []byte {
	return b64.decode(in)
}

// UsesB64Alphabet reports whether every character of the input is a base-64 digit
func UsesB64Alphabet(in string) bool {
	return b64.uses(in)
}

// Encode2048 packs the input into 11-bit symbols.
//
// Unlike the base-32 and base-64 codecs, input bits are consumed least-significant
// first. This is the packing used by Algorand mnemonics.
func Encode2048(in []byte) []uint16 {
	out := make([]uint16, 0, (len(in)*8+10)/11)
	var acc uint32
	var bits uint
	for _, c := range in {
		acc |= uint32(c) << bits
		bits += 8
		if bits >= 11 {
			out = append(out, uint16(acc&0x7ff))
			acc >>= 11
			bits -= 11
		}
	}
	if bits > 0 {
		out = append(out, uint16(acc))
	}
	return out
}

// Decode2048 unpacks 11-bit symbols into bytes, stopping at the first symbol that
// is not below B2048Symbols. Leftover bits that do not fill a whole byte are dropped.
// When the final symbol of an encoding carries 8 or more padding bits, the result
// ends with an extra zero byte; mnemonic decoding relies on this.
func Decode2048(in []uint16) []byte {
	out := make([]byte, 0, len(in)*11/8)
	var acc uint32
	var bits uint
	for _, v := range in {
		if v >= B2048Symbols {
			break
		}
		acc |= uint32(v) << bits
		bits += 11
		for bits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			bits -= 8
		}
	}
	return out
}
