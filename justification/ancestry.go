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

package justification

import (
	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
)

// AncestryChain answers ancestry queries using only the headers embedded in
// one justification. It is built once per verification call and discarded.
type AncestryChain[H comparable, N header.Number] struct {
	parents map[H]H
}

// NewAncestryChain indexes a flat header list into a hash to parent-hash
// map. If two headers share a hash the later one wins, matching the bridged
// chain's own verifier; rejecting duplicates here would make the bridge
// stricter than the chain it mirrors.
func NewAncestryChain[H comparable, N header.Number, Hdr header.Header[H, N]](
	headers []Hdr,
) *AncestryChain[H, N] {
	parents := make(map[H]H, len(headers))
	for _, hdr := range headers {
		parents[hdr.Hash()] = hdr.ParentHash()
	}
	return &AncestryChain[H, N]{parents: parents}
}

// Ancestry returns the route from block back to base, excluding both
// endpoints and ordered from nearest-to-block to nearest-to-base. Returns
// grandpa.ErrNotDescendant when the walk leaves the known headers before
// reaching base.
func (c *AncestryChain[H, N]) Ancestry(base, block H) ([]H, error) {
	route := []H{}
	current := block
	for current != base {
		parent, ok := c.parents[current]
		if !ok {
			return nil, grandpa.ErrNotDescendant
		}
		current = parent
		route = append(route, current)
	}
	if len(route) > 0 {
		// drop the base itself
		route = route[:len(route)-1]
	}
	return route, nil
}

// BestChainContaining is only used while taking part in voting, which this
// module never does. Reaching it means the surrounding code broke the
// contract, not that the input was bad.
func (c *AncestryChain[H, N]) BestChainContaining(
	block H,
) (*grandpa.HashNumber[H, N], error) {
	panic("unreachable: BestChainContaining is only used during voting")
}

var _ grandpa.Chain[header.H256, uint64] = (*AncestryChain[header.H256, uint64])(nil)
