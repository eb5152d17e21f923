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

type PaymentFields struct {
	Receiver         common.Address
	Amount           uint64
	CloseRemainderTo common.Address
}

// Payment transfers amount microalgos from the header sender to receiver. A
// non-zero closeTo closes the sender account and sends it the remainder.
func Payment(header Header, receiver common.Address, amount uint64, closeTo common.Address) Transaction {
	return Transaction{
		Type:   TxTypePayment,
		Header: header.clone(),
		PaymentFields: PaymentFields{
			Receiver:         receiver,
			Amount:           amount,
			CloseRemainderTo: closeTo,
		},
	}
}
