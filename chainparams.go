// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

// Network names one of the four Dogecoin wire-parameter sets.
type Network string

const (
	NetworkMain    Network = "main"
	NetworkTest    Network = "test"
	NetworkRegtest Network = "regtest"
	NetworkSignet  Network = "signet"
)

// ChainParams is an immutable, process-wide set of network magic bytes.
// Every operation that touches an encoded key or address takes one
// explicitly; there is no global "current chain".
type ChainParams struct {
	Network Network

	B58PubkeyPrefix byte
	B58ScriptPrefix byte
	B58SecretPrefix byte

	BIP32PrivateKeyMagic [4]byte
	BIP32PublicKeyMagic  [4]byte

	Bech32HRP string

	// BIP44CoinType is the coin_type used by the BIP-44 adapter (C9):
	// 3 for main, 1 for test/regtest/signet.
	BIP44CoinType uint32
}

// Main is the Dogecoin production network.
var Main = ChainParams{
	Network:               NetworkMain,
	B58PubkeyPrefix:       0x1E,
	B58ScriptPrefix:       0x16,
	B58SecretPrefix:       0x9E,
	BIP32PrivateKeyMagic:  [4]byte{0x02, 0xFA, 0xC3, 0x98},
	BIP32PublicKeyMagic:   [4]byte{0x02, 0xFA, 0xCA, 0xFD},
	Bech32HRP:             "doge",
	BIP44CoinType:         3,
}

// Test is the Dogecoin public testnet.
var Test = ChainParams{
	Network:               NetworkTest,
	B58PubkeyPrefix:       0x71,
	B58ScriptPrefix:       0xC4,
	B58SecretPrefix:       0xF1,
	BIP32PrivateKeyMagic:  [4]byte{0x04, 0x32, 0xA2, 0x43},
	BIP32PublicKeyMagic:   [4]byte{0x04, 0x32, 0xA9, 0xA8},
	Bech32HRP:             "tdge",
	BIP44CoinType:         1,
}

// Regtest is the local regression-test network. It shares Test's script
// prefix and BIP-32 magic bytes, per Dogecoin convention, but uses its own
// address prefix, WIF secret prefix and bech32 HRP.
var Regtest = ChainParams{
	Network:               NetworkRegtest,
	B58PubkeyPrefix:       0x6F,
	B58ScriptPrefix:       0xC4,
	B58SecretPrefix:       0xEF,
	BIP32PrivateKeyMagic:  Test.BIP32PrivateKeyMagic,
	BIP32PublicKeyMagic:   Test.BIP32PublicKeyMagic,
	Bech32HRP:             "dcrt",
	BIP44CoinType:         1,
}

// Signet mirrors Test's wire parameters. spec.md's wire-constants table
// names main/test/regtest only; Dogecoin has no distinct signet magic
// bytes, so Signet is filled from Test's values (an Open Question, resolved
// here rather than left unimplemented — see DESIGN.md).
var Signet = ChainParams{
	Network:               NetworkSignet,
	B58PubkeyPrefix:       Test.B58PubkeyPrefix,
	B58ScriptPrefix:       Test.B58ScriptPrefix,
	B58SecretPrefix:       Test.B58SecretPrefix,
	BIP32PrivateKeyMagic:  Test.BIP32PrivateKeyMagic,
	BIP32PublicKeyMagic:   Test.BIP32PublicKeyMagic,
	Bech32HRP:             Test.Bech32HRP,
	BIP44CoinType:         1,
}

var allChains = []ChainParams{Main, Test, Regtest, Signet}

// ChainFromB58Prefix looks up the chain whose secret (WIF) prefix byte
// matches firstByte. The secret prefix is distinct for Main, Test and
// Regtest; Signet reuses Test's, so Test's prefix resolves to Test and
// Signet is never returned.
func ChainFromB58Prefix(firstByte byte) (ChainParams, bool) {
	for _, c := range allChains {
		if c.B58SecretPrefix == firstByte {
			return c, true
		}
	}
	return ChainParams{}, false
}

// ChainFromBIP32Magic looks up the chain whose extended-key magic (private
// or public) matches magic.
func ChainFromBIP32Magic(magic [4]byte) (ChainParams, bool) {
	for _, c := range allChains {
		if c.BIP32PrivateKeyMagic == magic || c.BIP32PublicKeyMagic == magic {
			return c, true
		}
	}
	return ChainParams{}, false
}

// ChainFromAddressPrefix looks up the chain whose P2PKH address prefix
// matches firstByte, letting operations like verify_message infer a chain
// from an address alone.
func ChainFromAddressPrefix(firstByte byte) (ChainParams, bool) {
	for _, c := range allChains {
		if c.B58PubkeyPrefix == firstByte {
			return c, true
		}
	}
	return ChainParams{}, false
}
