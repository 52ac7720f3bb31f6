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

import "errors"

// Verification errors. Every failure of a single Verify call maps to exactly
// one of these; match with errors.Is. None are retried internally, the
// caller decides whether to fetch a fresh proof.
var (
	// ErrJustificationDecode means the proof bytes are malformed or
	// truncated.
	ErrJustificationDecode = errors.New("failed to decode justification")
	// ErrInvalidJustificationTarget means the proof finalizes a different
	// header than the expected one.
	ErrInvalidJustificationTarget = errors.New(
		"justification is finalizing unexpected header",
	)
	// ErrInvalidJustificationCommit means no supermajority-backed candidate
	// is determinable from the precommits and the voter set.
	ErrInvalidJustificationCommit = errors.New(
		"invalid commit in justification",
	)
	// ErrInvalidAuthoritySignature means a precommit signature does not
	// verify under its declared authority.
	ErrInvalidAuthoritySignature = errors.New(
		"justification has invalid authority signature",
	)
	// ErrInvalidPrecommitAncestryProof means a precommit target has no route
	// back to the finalized header through the supplied ancestry headers.
	ErrInvalidPrecommitAncestryProof = errors.New(
		"precommit target has no route to the finalized header",
	)
	// ErrInvalidPrecommitAncestries means the supplied ancestry headers are
	// not exactly the set the precommit routes required.
	ErrInvalidPrecommitAncestries = errors.New(
		"justification has unused headers in precommit ancestries",
	)
)
