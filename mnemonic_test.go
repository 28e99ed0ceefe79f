// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"testing"

	"github.com/matryer/is"
)

func TestSeedFromMnemonicRejectsBadChecksum(t *testing.T) {
	is := is.New(t)

	_, err := SeedFromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "")
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, InvalidSeed)
}

func TestSeedFromMnemonicPassphraseChangesSeed(t *testing.T) {
	is := is.New(t)

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	s1, err := SeedFromMnemonic(mnemonic, "")
	is.NoErr(err)
	s2, err := SeedFromMnemonic(mnemonic, "extra")
	is.NoErr(err)

	is.Equal(len(s1), 64)
	is.True(string(s1) != string(s2))
}
