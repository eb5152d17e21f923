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

type KeyRegistrationFields struct {
	VotePK           [32]byte
	SelectionPK      [32]byte
	VoteFirst        uint64
	VoteLast         uint64
	VoteKeyDilution  uint64
	Nonparticipation bool
}

// KeyRegistration registers participation keys for the sender. Empty fields
// take the sender offline.
func KeyRegistration(header Header, fields KeyRegistrationFields) Transaction {
	return Transaction{
		Type:                  TxTypeKeyRegistration,
		Header:                header.clone(),
		KeyRegistrationFields: fields,
	}
}

// KeyRegistrationOffline takes the sender offline. When nonParticipating is set the
// account is also marked as permanently not participating.
func KeyRegistrationOffline(header Header, nonParticipating bool) Transaction {
	return KeyRegistration(
		header,
		KeyRegistrationFields{Nonparticipation: nonParticipating},
	)
}
