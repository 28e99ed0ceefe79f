// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"testing"

	"github.com/matryer/is"
)

func TestBIP44PathMain(t *testing.T) {
	is := is.New(t)

	p := BIP44Path(Main, 0, 0, 5, true)
	is.Equal(p.Elements, []uint32{
		44 + hardenedOffset,
		3 + hardenedOffset,
		0 + hardenedOffset,
		0,
		5,
	})
}

func TestBIP44PathStopsAtAccountLevelWhenNotLeaf(t *testing.T) {
	is := is.New(t)

	p := BIP44Path(Test, 1, 1, 0, false)
	is.Equal(p.Elements, []uint32{
		44 + hardenedOffset,
		1 + hardenedOffset,
		1 + hardenedOffset,
	})
}

func TestDeriveBIP44LeafVsAccountLevel(t *testing.T) {
	is := is.New(t)

	master, err := NewMasterFromSeed(Main, make([]byte, 32))
	is.NoErr(err)

	accountNode, err := DeriveBIP44(master, 0, 0, nil)
	is.NoErr(err)
	is.Equal(accountNode.Depth(), byte(3))

	idx := uint32(0)
	leaf, err := DeriveBIP44(master, 0, 0, &idx)
	is.NoErr(err)
	is.Equal(leaf.Depth(), byte(5))
}
