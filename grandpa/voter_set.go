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

import "errors"

var (
	// ErrEmptyVoterSet is returned when a voter set is built from an empty
	// authority list.
	ErrEmptyVoterSet = errors.New("voter set has no authorities")
	// ErrZeroTotalWeight is returned when the combined weight of all
	// authorities is zero.
	ErrZeroTotalWeight = errors.New("voter set has zero total weight")
)

// VoterSet is the weighted set of authorities entitled to vote in one
// authority set epoch. It is built from chain state by the caller, never
// from proof bytes.
type VoterSet struct {
	weights map[AuthorityID]AuthorityWeight
	total   AuthorityWeight
}

// NewVoterSet builds a voter set from an authority list. Zero-weight
// authorities carry no vote and are dropped. A duplicated identity keeps the
// weight listed last. The set must end up non-empty with non-zero total
// weight.
func NewVoterSet(authorities AuthorityList) (*VoterSet, error) {
	if len(authorities) == 0 {
		return nil, ErrEmptyVoterSet
	}
	vs := &VoterSet{
		weights: make(map[AuthorityID]AuthorityWeight, len(authorities)),
	}
	for _, authority := range authorities {
		if authority.Weight == 0 {
			continue
		}
		if prev, ok := vs.weights[authority.ID]; ok {
			vs.total -= prev
		}
		vs.weights[authority.ID] = authority.Weight
		vs.total += authority.Weight
	}
	if vs.total == 0 {
		return nil, ErrZeroTotalWeight
	}
	return vs, nil
}

// Weight returns the voting weight of an authority and whether the
// authority belongs to the set.
func (vs *VoterSet) Weight(id AuthorityID) (AuthorityWeight, bool) {
	weight, ok := vs.weights[id]
	return weight, ok
}

// Contains reports whether an authority belongs to the set.
func (vs *VoterSet) Contains(id AuthorityID) bool {
	_, ok := vs.weights[id]
	return ok
}

// Len returns the number of authorities in the set.
func (vs *VoterSet) Len() int {
	return len(vs.weights)
}

// TotalWeight returns the combined weight of all authorities.
func (vs *VoterSet) TotalWeight() AuthorityWeight {
	return vs.total
}

// Threshold returns the supermajority weight: the smallest weight w such
// that w > 2/3 of the total. Computed as total - (total-1)/3, so for a total
// of 3t+1 up to t voters may be faulty.
func (vs *VoterSet) Threshold() AuthorityWeight {
	return vs.total - (vs.total-1)/3
}
