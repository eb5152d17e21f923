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

	"github.com/blinklabs-io/goalgorand/ledger/common"
)

// OnCompletion is the action taken after an application call succeeds
type OnCompletion uint64

const (
	NoOp OnCompletion = iota
	OptIn
	CloseOut
	ClearState
	UpdateApplication
	DeleteApplication
)

func (o OnCompletion) String() string {
	switch o {
	case NoOp:
		return "noop"
	case OptIn:
		return "optin"
	case CloseOut:
		return "closeout"
	case ClearState:
		return "clearstate"
	case UpdateApplication:
		return "update"
	case DeleteApplication:
		return "delete"
	}
	return fmt.Sprintf("unknown(%d)", uint64(o))
}

// ParseOnCompletion parses the names returned by OnCompletion.String
func ParseOnCompletion(name string) (OnCompletion, error) {
	for o := NoOp; o <= DeleteApplication; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown on-completion action %q", common.ErrMalformedInput, name)
}

type ApplicationCallFields struct {
	ApplicationID     uint64
	OnCompletion      OnCompletion
	ApplicationArgs   [][]byte
	Accounts          []common.Address
	ForeignApps       []uint64
	ForeignAssets     []uint64
	ApprovalProgram   []byte
	ClearStateProgram []byte
	GlobalStateSchema common.StateSchema
	LocalStateSchema  common.StateSchema
	ExtraProgramPages uint32
}

// ApplicationCall calls an application, or creates one when ApplicationID is zero
func ApplicationCall(header Header, fields ApplicationCallFields) Transaction {
	return Transaction{
		Type:                  TxTypeApplicationCall,
		Header:                header,
		ApplicationCallFields: fields,
	}.Clone()
}
