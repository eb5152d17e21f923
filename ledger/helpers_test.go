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

package ledger_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/blinklabs-io/goalgorand/account"
	"github.com/blinklabs-io/goalgorand/internal/test"
	"github.com/blinklabs-io/goalgorand/ledger"
	"github.com/blinklabs-io/goalgorand/ledger/common"
	"github.com/blinklabs-io/goalgorand/msgpack"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, addr string) common.Address {
	t.Helper()
	ret, err := common.NewAddress(addr)
	require.NoError(t, err)
	return ret
}

func mustAccount(t *testing.T, phrase string) *account.Account {
	t.Helper()
	ret, err := account.FromMnemonic(phrase)
	require.NoError(t, err)
	return ret
}

// wireKeys returns the top-level keys of an encoded map
func wireKeys(t *testing.T, data []byte) []string {
	t.Helper()
	j, err := msgpack.ToJSON(data)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(j), &m))
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func hash32(b64 string) [32]byte {
	var ret [32]byte
	copy(ret[:], test.DecodeBase64String(b64))
	return ret
}

// goldenPayment is the unsigned payment with a known encoding
func goldenPayment(t *testing.T) ledger.Transaction {
	t.Helper()
	return ledger.Payment(
		ledger.Header{
			Sender:      mustAddress(t, test.PaymentSender),
			Fee:         1000,
			FirstValid:  1,
			LastValid:   100,
			Note:        []byte{1, 32, 200},
			GenesisHash: hash32(test.GenesisHashB64),
		},
		common.Address{},
		1000,
		common.Address{},
	)
}

// goldenSignedPayment is the payment signed by the advice account in the signed vector
func goldenSignedPayment(t *testing.T) ledger.Transaction {
	t.Helper()
	sender := mustAccount(t, test.AdviceMnemonic)
	return ledger.Payment(
		ledger.Header{
			Sender:      sender.Address(),
			Fee:         1176,
			FirstValid:  12466,
			LastValid:   13466,
			Note:        test.DecodeBase64String("6gAVR0Nsv5Y="),
			GenesisID:   "devnet-v33.0",
			GenesisHash: hash32(test.GenesisHashB64),
		},
		mustAddress(t, test.ToAddress),
		1000,
		mustAddress(t, test.CloseAddress),
	)
}

// goldenLogicSigPayment is the payment authorized in the logicsig vector
func goldenLogicSigPayment(t *testing.T) ledger.Transaction {
	t.Helper()
	sender := mustAccount(t, test.AdviceMnemonic)
	return ledger.Payment(
		ledger.Header{
			Sender:      sender.Address(),
			Fee:         1000,
			FirstValid:  2063137,
			LastValid:   2064137,
			Note:        test.DecodeBase64String("8xMCTuLQ810="),
			GenesisID:   "devnet-v1.0",
			GenesisHash: hash32(test.DevnetV1HashB64),
		},
		mustAddress(t, test.ToAddress),
		2000,
		common.Address{},
	)
}
