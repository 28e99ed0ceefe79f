// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"encoding/hex"
	"testing"

	"github.com/matryer/is"
)

func TestGenPrivatekeyProducesDistinctInRangeWIFs(t *testing.T) {
	is := is.New(t)

	a, err := GenPrivatekey(Main)
	is.NoErr(err)
	b, err := GenPrivatekey(Main)
	is.NoErr(err)
	is.True(a != b)

	for _, wif := range []string{a, b} {
		priv, err := DecodeWIF(Main, wif)
		is.NoErr(err)
		scalar := priv.Bytes()
		is.True(scalarInRange(scalar[:]))
		priv.Wipe()

		decoded, err := DecodeCheck(wif)
		is.NoErr(err)
		is.Equal(decoded[0], byte(0x9E))
	}
}

func TestVerifyPrivPubKeypairAcceptsAndRejects(t *testing.T) {
	is := is.New(t)

	wif, p2pkh, err := GeneratePrivPubKeypair(Main)
	is.NoErr(err)
	is.True(VerifyPrivPubKeypair(wif, p2pkh, Main))

	corrupt := []byte(wif)
	corrupt[len(corrupt)/2] = flipBase58Char(corrupt[len(corrupt)/2])
	is.True(!VerifyPrivPubKeypair(string(corrupt), p2pkh, Main))
}

func TestSignVerifyMessageFacadeRoundTrip(t *testing.T) {
	is := is.New(t)

	wif, err := GenPrivatekey(Main)
	is.NoErr(err)
	priv, err := DecodeWIF(Main, wif)
	is.NoErr(err)
	scalar := priv.Bytes()
	privHex := hex.EncodeToString(scalar[:])
	addr := priv.PubKey().AddressP2PKH(Main)
	priv.Wipe()

	sig, err := SignMessageFacade(privHex, "hello")
	is.NoErr(err)
	is.True(VerifyMessageFacade(addr, sig, "hello"))
	is.True(!VerifyMessageFacade(addr, sig, "hellO"))
}

func TestDeriveFromMnemonicIsDeterministic(t *testing.T) {
	is := is.New(t)

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	addr1, err := DeriveFromMnemonic(0, 0, 0, mnemonic, "", Main)
	is.NoErr(err)
	addr2, err := DeriveFromMnemonic(0, 0, 0, mnemonic, "", Main)
	is.NoErr(err)
	is.Equal(addr1, addr2)

	addr3, err := DeriveFromMnemonic(0, 0, 1, mnemonic, "", Main)
	is.NoErr(err)
	is.True(addr1 != addr3)
}

func TestVerifyHDMasterKeypairRejectsWrongChain(t *testing.T) {
	is := is.New(t)

	xpriv, p2pkh, err := GenerateHDMasterKeypair(Main)
	is.NoErr(err)
	is.True(VerifyHDMasterKeypair(xpriv, p2pkh, Main))
	is.True(!VerifyHDMasterKeypair(xpriv, p2pkh, Test))
}

func TestGenerateHDMasterKeypairFromMnemonicIsDeterministic(t *testing.T) {
	is := is.New(t)

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	xpriv1, p2pkh1, err := GenerateHDMasterKeypairFromMnemonic(mnemonic, "", Main)
	is.NoErr(err)
	xpriv2, p2pkh2, err := GenerateHDMasterKeypairFromMnemonic(mnemonic, "", Main)
	is.NoErr(err)
	is.Equal(xpriv1, xpriv2)
	is.Equal(p2pkh1, p2pkh2)

	xpriv3, _, err := GenerateHDMasterKeypairFromMnemonic(mnemonic, "extra", Main)
	is.NoErr(err)
	is.True(xpriv1 != xpriv3)
}

func TestVerifyHDMasterKeypairFromMnemonicAcceptsAndRejects(t *testing.T) {
	is := is.New(t)

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	xpriv, p2pkh, err := GenerateHDMasterKeypairFromMnemonic(mnemonic, "", Main)
	is.NoErr(err)
	is.True(VerifyHDMasterKeypairFromMnemonic(xpriv, p2pkh, mnemonic, "", Main))
	is.True(!VerifyHDMasterKeypairFromMnemonic(xpriv, p2pkh, mnemonic, "wrong-passphrase", Main))
	is.True(!VerifyHDMasterKeypairFromMnemonic(xpriv, p2pkh, mnemonic, "", Test))
}
