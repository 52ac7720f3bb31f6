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

// Package justification checks GRANDPA finality proofs produced by a bridged
// chain. A justification bundles a commit, the precommit signatures behind
// it, and the minimal set of headers connecting every precommit target back
// to the finalized block. Verify decides whether such a proof, under a known
// authority set, really finalizes the expected header.
package justification

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
)

// Justification is a GRANDPA finality proof of the bridged chain. Field
// order is the wire order of the shared codec.
type Justification[H comparable, N header.Number, Hdr header.Header[H, N]] struct {
	Round           uint64
	Commit          grandpa.Commit[H, N]
	VotesAncestries []Hdr
}

// DecodeJustification decodes a justification from raw proof bytes. Decoding
// is all-or-nothing: any framing problem fails with ErrJustificationDecode
// and no partial result.
func DecodeJustification[H comparable, N header.Number, Hdr header.Header[H, N]](
	data []byte,
) (*Justification[H, N, Hdr], error) {
	var justification Justification[H, N, Hdr]
	if err := scale.Unmarshal(data, &justification); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrJustificationDecode, err)
	}
	return &justification, nil
}

// Encode returns the wire encoding of the justification.
func (j *Justification[H, N, Hdr]) Encode() ([]byte, error) {
	return scale.Marshal(*j)
}
