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
	"errors"

	"github.com/huang-lei1/parity-bridges-common/header"
)

// ErrNotDescendant is returned by Chain.Ancestry when the queried block
// cannot be connected back to the base with the known headers.
var ErrNotDescendant = errors.New("block is not a descendant of base")

// Chain is the ancestry oracle commit validation runs against. During
// justification verification it is backed by the headers embedded in the
// proof, nothing else.
type Chain[H comparable, N header.Number] interface {
	// Ancestry returns the hashes strictly between base (exclusive) and
	// block (exclusive), ordered from nearest-to-block to nearest-to-base.
	// Returns ErrNotDescendant when no such route exists.
	Ancestry(base, block H) ([]H, error)
	// BestChainContaining returns the best block containing the given block.
	// It is only needed while taking part in voting and is never called
	// during commit validation.
	BestChainContaining(block H) (*HashNumber[H, N], error)
}

// CommitValidationResult is the outcome of validating a commit. A commit is
// good when a ghost exists: some block gathered supermajority weight.
type CommitValidationResult[H comparable, N header.Number] struct {
	ghost         *HashNumber[H, N]
	numPrecommits int
}

// Ghost returns the best supermajority-backed block implied by the commit's
// precommits, or nil when no block gathered enough weight.
func (r CommitValidationResult[H, N]) Ghost() *HashNumber[H, N] {
	return r.ghost
}

// NumPrecommits returns the number of precommits carried by the commit.
func (r CommitValidationResult[H, N]) NumPrecommits() int {
	return r.numPrecommits
}

// ValidateCommit validates a commit against a voter set and an ancestry
// oracle. Signatures are assumed to have been (or to be) checked separately.
//
// Each precommit from a recognized authority endorses the commit target and,
// when its own target can be routed back to the commit target through the
// chain, every block on that route. The ghost is the highest block whose
// accumulated weight reaches the supermajority threshold. Precommits from
// unknown authorities carry no weight, a duplicated authority is counted
// once, and a precommit whose target cannot be routed still endorses the
// commit target itself. Any precommit targeting a block below the commit
// target makes the whole commit indeterminate.
func ValidateCommit[H comparable, N header.Number](
	commit Commit[H, N],
	voters *VoterSet,
	chain Chain[H, N],
) (CommitValidationResult[H, N], error) {
	result := CommitValidationResult[H, N]{
		numPrecommits: len(commit.Precommits),
	}

	// precommits may never target below the commit target
	for _, signed := range commit.Precommits {
		if signed.Precommit.TargetNumber < commit.TargetNumber {
			return result, nil
		}
	}

	weights := make(map[H]AuthorityWeight)
	numbers := make(map[H]N)
	base := commit.TargetHash
	numbers[base] = commit.TargetNumber

	seen := make(map[AuthorityID]struct{}, len(commit.Precommits))
	for _, signed := range commit.Precommits {
		weight, ok := voters.Weight(signed.ID)
		if !ok {
			continue
		}
		if _, dup := seen[signed.ID]; dup {
			continue
		}
		seen[signed.ID] = struct{}{}

		weights[base] += weight

		target := signed.Precommit.TargetHash
		if target == base {
			continue
		}
		route, err := chain.Ancestry(base, target)
		if err != nil {
			// unresolvable target: endorses the base only
			continue
		}
		weights[target] += weight
		numbers[target] = signed.Precommit.TargetNumber
		number := signed.Precommit.TargetNumber
		for _, hash := range route {
			number--
			weights[hash] += weight
			numbers[hash] = number
		}
	}

	threshold := voters.Threshold()
	for hash, weight := range weights {
		if weight < threshold {
			continue
		}
		number := numbers[hash]
		if result.ghost == nil || number > result.ghost.Number {
			result.ghost = &HashNumber[H, N]{Hash: hash, Number: number}
		}
	}

	return result, nil
}
