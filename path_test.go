// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"testing"

	"github.com/matryer/is"
)

func TestParsePathHardenedAndNormal(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("m/44'/3'/0'/0/5")
	is.NoErr(err)
	is.True(!p.Public)
	is.Equal(p.Elements, []uint32{
		44 + hardenedOffset,
		3 + hardenedOffset,
		0 + hardenedOffset,
		0,
		5,
	})
}

func TestParsePathAcceptsHSuffix(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("m/0h")
	is.NoErr(err)
	is.Equal(p.Elements, []uint32{hardenedOffset})
}

func TestParsePathCapitalMSetsPublic(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("M/0/1")
	is.NoErr(err)
	is.True(p.Public)
}

func TestParsePathRejectsMissingRoot(t *testing.T) {
	is := is.New(t)

	_, err := ParsePath("0/1")
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, InvalidPath)
}

func TestParsePathRejectsOverflow(t *testing.T) {
	is := is.New(t)

	_, err := ParsePath("m/4294967296")
	is.True(err != nil)
}

func TestDerivePathCapitalMRejectsHardenedElement(t *testing.T) {
	is := is.New(t)

	master, err := NewMasterFromSeed(Main, make([]byte, 32))
	is.NoErr(err)

	p, err := ParsePath("M/0'")
	is.NoErr(err)

	_, err = master.DerivePath(p, false)
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, HardenedOnPublic)
}

func TestDerivePathWantPrivateFalseNeutersResult(t *testing.T) {
	is := is.New(t)

	master, err := NewMasterFromSeed(Main, make([]byte, 32))
	is.NoErr(err)

	p, err := ParsePath("m/0/1")
	is.NoErr(err)

	out, err := master.DerivePath(p, false)
	is.NoErr(err)
	is.True(!out.IsPrivate())
}
