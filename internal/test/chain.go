package test

import (
	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
)

// Header is a minimal bridged chain header used in tests. Field order is the
// wire order.
type Header struct {
	Parent header.H256
	Num    uint64
}

// Hash returns the blake2b-256 hash of the SCALE-encoded header, the way the
// bridged chain derives it.
func (h Header) Hash() header.H256 {
	return header.HashOf(h)
}

func (h Header) ParentHash() header.H256 {
	return h.Parent
}

func (h Header) Number() uint64 {
	return h.Num
}

// ChainHeader returns the header at the given index of the deterministic
// test chain: a linear chain rooted at index 0, each header's parent being
// the previous header's hash.
func ChainHeader(index uint8) Header {
	hdr := Header{Num: uint64(index)}
	if index > 0 {
		hdr.Parent = ChainHeader(index - 1).Hash()
	}
	return hdr
}

// ChainHeaderID returns the (hash, number) pair of the header at the given
// index of the test chain.
func ChainHeaderID(index uint8) grandpa.HashNumber[header.H256, uint64] {
	return grandpa.HashNumber[header.H256, uint64]{
		Hash:   ChainHeader(index).Hash(),
		Number: uint64(index),
	}
}
