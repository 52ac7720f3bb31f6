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

// Package header defines the minimal view of a bridged chain header that
// finality verification needs. Bridged chains differ in their header layout,
// so everything downstream is generic over a hash type, a number type, and a
// header type satisfying the Header interface.
package header

// Number constrains the block number type of a bridged chain.
type Number interface {
	~uint | ~uint32 | ~uint64
}

// Header is the capability a bridged chain header must provide for finality
// verification: its own hash, its parent hash, and its number. Nothing else
// about the header is inspected.
type Header[H comparable, N Number] interface {
	// Hash returns the hash identifying this header.
	Hash() H
	// ParentHash returns the hash of the parent header.
	ParentHash() H
	// Number returns the block number of this header.
	Number() N
}
