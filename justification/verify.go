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

// Verify checks that a justification generated by the given authority set
// finalizes the given header.
//
// Verify is a pure function of its arguments: it performs no I/O, keeps no
// state between calls, and the same inputs always produce the same verdict,
// so it is safe to call from any number of goroutines. Cost is linear in the
// number of ancestry headers plus precommits; bounding proof size against
// resource exhaustion is the caller's job.
func Verify[H comparable, N header.Number, Hdr header.Header[H, N]](
	targetHash H,
	targetNumber N,
	setID grandpa.SetID,
	voters *grandpa.VoterSet,
	rawJustification []byte,
) error {
	justification, err := DecodeJustification[H, N, Hdr](rawJustification)
	if err != nil {
		return err
	}

	// cheap target check before any signature work
	commit := justification.Commit
	if commit.TargetHash != targetHash || commit.TargetNumber != targetNumber {
		return ErrInvalidJustificationTarget
	}

	// the commit must carry supermajority weight for some candidate, judged
	// only against the ancestry embedded in the proof
	ancestryChain := NewAncestryChain[H, N](justification.VotesAncestries)
	result, err := grandpa.ValidateCommit(commit, voters, ancestryChain)
	if err != nil || result.Ghost() == nil {
		return ErrInvalidJustificationCommit
	}

	// now that the commit is known good, check every signature and collect
	// the ancestry each precommit actually needed
	round := grandpa.RoundNumber(justification.Round)
	visited := make(map[H]struct{}, len(justification.VotesAncestries))
	for _, signed := range commit.Precommits {
		if !grandpa.CheckMessageSignature(
			signed.Precommit,
			signed.ID,
			signed.Signature,
			round,
			setID,
		) {
			return ErrInvalidAuthoritySignature
		}

		if signed.Precommit.TargetHash == commit.TargetHash {
			continue
		}

		route, err := ancestryChain.Ancestry(
			commit.TargetHash,
			signed.Precommit.TargetHash,
		)
		if err != nil {
			return ErrInvalidPrecommitAncestryProof
		}
		// the route starts below the precommit target, but the target header
		// itself was needed too
		visited[signed.Precommit.TargetHash] = struct{}{}
		for _, hash := range route {
			visited[hash] = struct{}{}
		}
	}

	// every supplied header must have been needed, and nothing else
	ancestryHashes := make(map[H]struct{}, len(justification.VotesAncestries))
	for _, hdr := range justification.VotesAncestries {
		ancestryHashes[hdr.Hash()] = struct{}{}
	}
	if len(visited) != len(ancestryHashes) {
		return ErrInvalidPrecommitAncestries
	}
	for hash := range visited {
		if _, ok := ancestryHashes[hash]; !ok {
			return ErrInvalidPrecommitAncestries
		}
	}

	return nil
}
