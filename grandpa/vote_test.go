// Copyright 2025 Blink Labs Software
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

package grandpa_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
	"github.com/huang-lei1/parity-bridges-common/internal/test"
)

// TestLocalizedPayloadLayout pins the exact signing payload bytes: stage
// byte, 32-byte target hash, fixed-width little-endian target number, round
// and set id. Authorities of the bridged chain sign exactly these bytes, so
// the layout must never drift.
func TestLocalizedPayloadLayout(t *testing.T) {
	var targetHash header.H256
	for i := range targetHash {
		targetHash[i] = 0xaa
	}
	precommit := grandpa.Precommit[header.H256, uint64]{
		TargetHash:   targetHash,
		TargetNumber: 0x0102030405060708,
	}

	payload, err := grandpa.LocalizedPayload(
		grandpa.RoundNumber(5),
		grandpa.SetID(9),
		precommit,
	)
	require.NoError(t, err)

	expected := []byte{0x01} // precommit stage
	expected = append(expected, targetHash[:]...)
	expected = binary.LittleEndian.AppendUint64(expected, 0x0102030405060708)
	expected = binary.LittleEndian.AppendUint64(expected, 5) // round
	expected = binary.LittleEndian.AppendUint64(expected, 9) // set id
	if !bytes.Equal(payload, expected) {
		t.Errorf("payload mismatch:\n  got  %x\n  want %x", payload, expected)
	}
}

func TestCheckMessageSignature(t *testing.T) {
	precommit := grandpa.Precommit[header.H256, uint64]{
		TargetHash:   test.ChainHeaderID(2).Hash,
		TargetNumber: 2,
	}
	round := grandpa.RoundNumber(1)
	setID := grandpa.SetID(1)

	payload, err := grandpa.LocalizedPayload(round, setID, precommit)
	require.NoError(t, err)
	signature := test.Alice.Sign(payload)

	if !grandpa.CheckMessageSignature(
		precommit,
		test.Alice.AuthorityID(),
		signature,
		round,
		setID,
	) {
		t.Error("expected valid signature to verify")
	}

	// wrong authority
	if grandpa.CheckMessageSignature(
		precommit,
		test.Bob.AuthorityID(),
		signature,
		round,
		setID,
	) {
		t.Error("expected signature under wrong authority to fail")
	}

	// wrong round
	if grandpa.CheckMessageSignature(
		precommit,
		test.Alice.AuthorityID(),
		signature,
		round+1,
		setID,
	) {
		t.Error("expected signature under wrong round to fail")
	}

	// wrong set id
	if grandpa.CheckMessageSignature(
		precommit,
		test.Alice.AuthorityID(),
		signature,
		round,
		setID+1,
	) {
		t.Error("expected signature under wrong set id to fail")
	}

	// zeroed signature
	if grandpa.CheckMessageSignature(
		precommit,
		test.Alice.AuthorityID(),
		grandpa.AuthoritySignature{},
		round,
		setID,
	) {
		t.Error("expected zeroed signature to fail")
	}
}
