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

// Package grandpa provides the primitives of the GRANDPA finality gadget
// that justification verification consumes: authority identities and
// weights, votes and commits, the canonical signing payload, and validation
// of a commit against a voter set.
package grandpa

import (
	"encoding/hex"

	"github.com/huang-lei1/parity-bridges-common/header"
)

// SetID is the monotonic identifier of a GRANDPA authority set. Signed vote
// messages are scoped to the set that produced them.
type SetID uint64

// RoundNumber is the voting round counter scoping signed messages.
type RoundNumber uint64

// AuthorityWeight is the voting weight of a single authority.
type AuthorityWeight uint64

// AuthorityID identifies a GRANDPA authority by its ed25519 public key.
type AuthorityID [32]byte

func (id AuthorityID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// AuthoritySignature is an ed25519 signature over a localized vote payload.
type AuthoritySignature [64]byte

// Authority is a single entry of an authority list: an identity and its
// voting weight.
type Authority struct {
	ID     AuthorityID
	Weight AuthorityWeight
}

// AuthorityList is the ordered list of authorities of one set, as read from
// the bridged chain's state.
type AuthorityList []Authority

// HashNumber is a block identified by hash and number.
type HashNumber[H comparable, N header.Number] struct {
	Hash   H
	Number N
}
