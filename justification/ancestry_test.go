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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
	"github.com/huang-lei1/parity-bridges-common/internal/test"
)

func testAncestryChain(indexes ...uint8) *AncestryChain[header.H256, uint64] {
	headers := []test.Header{}
	for _, index := range indexes {
		headers = append(headers, test.ChainHeader(index))
	}
	return NewAncestryChain[header.H256, uint64](headers)
}

func TestAncestrySameBlock(t *testing.T) {
	chain := testAncestryChain(2, 3, 4)
	route, err := chain.Ancestry(test.ChainHeader(2).Hash(), test.ChainHeader(2).Hash())
	require.NoError(t, err)
	require.Empty(t, route)
}

func TestAncestryDirectChild(t *testing.T) {
	chain := testAncestryChain(2, 3, 4)
	route, err := chain.Ancestry(test.ChainHeader(1).Hash(), test.ChainHeader(2).Hash())
	require.NoError(t, err)
	require.Empty(t, route)
}

func TestAncestryMultiHopOrdering(t *testing.T) {
	chain := testAncestryChain(2, 3, 4)
	route, err := chain.Ancestry(test.ChainHeader(1).Hash(), test.ChainHeader(4).Hash())
	require.NoError(t, err)
	// nearest-to-block first, both endpoints excluded
	require.Equal(t, []header.H256{
		test.ChainHeader(3).Hash(),
		test.ChainHeader(2).Hash(),
	}, route)
}

func TestAncestryBrokenChain(t *testing.T) {
	// header 3 is missing, so 4 cannot reach 1
	chain := testAncestryChain(2, 4)
	_, err := chain.Ancestry(test.ChainHeader(1).Hash(), test.ChainHeader(4).Hash())
	require.ErrorIs(t, err, grandpa.ErrNotDescendant)
}

func TestAncestryUnknownBlock(t *testing.T) {
	chain := testAncestryChain(2, 3, 4)
	_, err := chain.Ancestry(test.ChainHeader(1).Hash(), test.ChainHeader(10).Hash())
	require.ErrorIs(t, err, grandpa.ErrNotDescendant)
}

func TestBestChainContainingUnreachable(t *testing.T) {
	chain := testAncestryChain(2, 3, 4)
	require.Panics(t, func() {
		_, _ = chain.BestChainContaining(test.ChainHeader(2).Hash())
	})
}
