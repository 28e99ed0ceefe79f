// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"testing"

	"github.com/matryer/is"
)

func TestAddressesFromPubkeyVector(t *testing.T) {
	is := is.New(t)

	p2pkh, p2shP2wpkh, p2wpkh, err := AddressesFromPubkeyHex(Main,
		"039ca1fdedbe160cb7b14df2a798c8fed41ad4ed30b06a85ad23e03abe43c413b2")
	is.NoErr(err)
	is.Equal(p2pkh, "DTwqVfB7tbwca2PzwBvPV1g1xDB2YPrCYh")
	is.Equal(p2shP2wpkh, "A6JS4r6BucWmrMXeTuuxbVCrS9iHPckeBf")
	is.Equal(p2wpkh, "doge1qlg5uydlgue7ywqcnt6rumf8743pm5usr5rlvmd")
}

func TestPubkeyFromPrivatekeyVector(t *testing.T) {
	is := is.New(t)

	pubHex, err := PubkeyFromPrivatekey(Main, "QUaohmokNWroj71dRtmPSses5eRw5SGLKsYSRSVisJHyZdxhdDCZ")
	is.NoErr(err)
	is.Equal(pubHex, "024c33fbb2f6accde1db907e88ebf5dd1693e31433c62aaeef42f7640974f602ba")
}

func TestPubKeyFromCompressedRejectsWrongLength(t *testing.T) {
	is := is.New(t)

	_, err := PubKeyFromCompressed(make([]byte, 32))
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, BadLength)
}

func TestAddressTriDerivationIsDeterministic(t *testing.T) {
	is := is.New(t)

	priv, err := GeneratePrivKey(nil)
	is.NoErr(err)
	defer priv.Wipe()
	pub := priv.PubKey()

	a1, b1, c1, err := AddressesFromPubKey(Main, pub)
	is.NoErr(err)
	a2, b2, c2, err := AddressesFromPubKey(Main, pub)
	is.NoErr(err)
	is.Equal(a1, a2)
	is.Equal(b1, b2)
	is.Equal(c1, c2)
}
