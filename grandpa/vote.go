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

package grandpa

import (
	"crypto/ed25519"
	"log/slog"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/huang-lei1/parity-bridges-common/header"
)

// Message stage discriminants, matching the enum indexes of the shared
// codec. Only precommits appear in justifications; the other stages exist so
// the payload layout stays byte-compatible with the full protocol.
const (
	stagePrevote        uint8 = 0
	stagePrecommit      uint8 = 1
	stagePrimaryPropose uint8 = 2
)

// Precommit is one authority's claim that a given block and its ancestors
// can be finalized.
type Precommit[H comparable, N header.Number] struct {
	TargetHash   H
	TargetNumber N
}

// SignedPrecommit is a precommit together with the authority that signed it
// and its signature over the localized payload. Field order is the wire
// order of the shared codec.
type SignedPrecommit[H comparable, N header.Number] struct {
	Precommit Precommit[H, N]
	Signature AuthoritySignature
	ID        AuthorityID
}

// Commit is a claimed finalized block plus the signed precommits supporting
// it.
type Commit[H comparable, N header.Number] struct {
	TargetHash   H
	TargetNumber N
	Precommits   []SignedPrecommit[H, N]
}

// LocalizedPayload encodes a precommit message localized to a round and set
// id. These are the exact bytes an authority signs, so the layout must match
// the bridged chain's signer byte-for-byte: stage byte, vote, round, set id.
func LocalizedPayload[H comparable, N header.Number](
	round RoundNumber,
	setID SetID,
	precommit Precommit[H, N],
) ([]byte, error) {
	return scale.Marshal(struct {
		Stage uint8
		Vote  Precommit[H, N]
		Round RoundNumber
		SetID SetID
	}{
		Stage: stagePrecommit,
		Vote:  precommit,
		Round: round,
		SetID: setID,
	})
}

// CheckMessageSignature checks one authority's signature over one precommit
// by reconstructing the localized payload and verifying with the authority's
// ed25519 public key.
func CheckMessageSignature[H comparable, N header.Number](
	precommit Precommit[H, N],
	id AuthorityID,
	signature AuthoritySignature,
	round RoundNumber,
	setID SetID,
) bool {
	payload, err := LocalizedPayload(round, setID, precommit)
	if err != nil {
		return false
	}
	valid := ed25519.Verify(ed25519.PublicKey(id[:]), payload, signature[:])
	if !valid {
		slog.Debug(
			"bad signature on precommit message",
			"authority", id.String(),
		)
	}
	return valid
}
