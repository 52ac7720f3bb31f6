package test

import (
	"crypto/ed25519"

	"golang.org/x/crypto/blake2b"

	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
)

// Signer is a deterministic test authority. Keys are derived from the name,
// so fixtures signed in one test package match fixtures signed in another.
type Signer struct {
	name string
	priv ed25519.PrivateKey
}

// Well-known test authorities.
var (
	Alice   = NewSigner("Alice")
	Bob     = NewSigner("Bob")
	Charlie = NewSigner("Charlie")
	Dave    = NewSigner("Dave")
)

// NewSigner derives a test authority from a name.
func NewSigner(name string) Signer {
	seed := blake2b.Sum256([]byte("grandpa test signer//" + name))
	return Signer{
		name: name,
		priv: ed25519.NewKeyFromSeed(seed[:]),
	}
}

func (s Signer) String() string {
	return s.name
}

// AuthorityID returns the signer's public key as an authority identity.
func (s Signer) AuthorityID() grandpa.AuthorityID {
	var id grandpa.AuthorityID
	copy(id[:], s.priv.Public().(ed25519.PublicKey))
	return id
}

// Sign signs an arbitrary payload.
func (s Signer) Sign(payload []byte) grandpa.AuthoritySignature {
	var sig grandpa.AuthoritySignature
	copy(sig[:], ed25519.Sign(s.priv, payload))
	return sig
}

// SignedPrecommit builds a precommit for the given target, signed by the
// signer under the given round and set id.
func SignedPrecommit(
	signer Signer,
	target grandpa.HashNumber[header.H256, uint64],
	round grandpa.RoundNumber,
	setID grandpa.SetID,
) grandpa.SignedPrecommit[header.H256, uint64] {
	precommit := grandpa.Precommit[header.H256, uint64]{
		TargetHash:   target.Hash,
		TargetNumber: target.Number,
	}
	payload, err := grandpa.LocalizedPayload(round, setID, precommit)
	if err != nil {
		panic("failed to encode localized payload: " + err.Error())
	}
	return grandpa.SignedPrecommit[header.H256, uint64]{
		Precommit: precommit,
		Signature: signer.Sign(payload),
		ID:        signer.AuthorityID(),
	}
}

// AuthorityList builds an equally weighted authority list from the given
// signers.
func AuthorityList(signers ...Signer) grandpa.AuthorityList {
	authorities := make(grandpa.AuthorityList, 0, len(signers))
	for _, signer := range signers {
		authorities = append(authorities, grandpa.Authority{
			ID:     signer.AuthorityID(),
			Weight: 1,
		})
	}
	return authorities
}
