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

package header

import (
	"encoding/hex"
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"golang.org/x/crypto/blake2b"
)

// H256 is a 256-bit block hash, the hash type used by Substrate-based chains.
type H256 [32]byte

// Bytes returns the hash as a byte slice.
func (h H256) Bytes() []byte {
	return h[:]
}

func (h H256) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// NewH256 builds an H256 from a byte slice of exactly 32 bytes.
func NewH256(data []byte) (H256, error) {
	var h H256
	if len(data) != len(h) {
		return h, fmt.Errorf("hash: expected %d bytes, got %d", len(h), len(data))
	}
	copy(h[:], data)
	return h, nil
}

// Blake2b256 hashes a byte slice with blake2b-256, the header hash function
// of Substrate-based chains.
func Blake2b256(data []byte) H256 {
	return H256(blake2b.Sum256(data))
}

// HashOf hashes the SCALE encoding of a value with blake2b-256. This matches
// how the bridged chain derives a header hash from the header itself.
func HashOf(value any) H256 {
	return Blake2b256(scale.MustMarshal(value))
}
