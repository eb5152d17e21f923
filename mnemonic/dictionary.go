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

package mnemonic

import (
	"fmt"

	"github.com/blinklabs-io/goalgorand/base"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Dictionary maps between 11-bit symbols and words
type Dictionary struct {
	words   []string
	indexes map[string]uint16
}

// English is the BIP-39 English word list
var English = NewDictionary(wordlists.English)

// NewDictionary builds a dictionary from exactly 2048 distinct words
func NewDictionary(words []string) *Dictionary {
	if len(words) != base.B2048Symbols {
		panic(fmt.Sprintf("mnemonic: dictionary needs %d words, got %d", base.B2048Symbols, len(words)))
	}
	d := &Dictionary{
		words:   make([]string, len(words)),
		indexes: make(map[string]uint16, len(words)),
	}
	copy(d.words, words)
	for i, w := range d.words {
		if _, ok := d.indexes[w]; ok {
			panic(fmt.Sprintf("mnemonic: duplicate dictionary word %q", w))
		}
		d.indexes[w] = uint16(i)
	}
	return d
}

// Word returns the word for a symbol, which must be below 2048
func (d *Dictionary) Word(symbol uint16) string {
	return d.words[symbol]
}

// Index returns the symbol for a word
func (d *Dictionary) Index(word string) (uint16, bool) {
	idx, ok := d.indexes[word]
	return idx, ok
}
