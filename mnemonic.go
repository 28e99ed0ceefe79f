// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"crypto/sha512"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// SeedFromMnemonic implements C8's bridge: mnemonic+passphrase → 64-byte
// seed via PBKDF2-HMAC-SHA512(2048 iterations), spec.md §4.7's exact
// construction. Mnemonic wordlist membership and checksum validation live
// in go-bip39, the adjacent wordlist module spec.md §4.7 assumes; the seed
// itself is derived directly with golang.org/x/crypto/pbkdf2 rather than
// through go-bip39's own NewSeed, so the KDF is visible in this package
// rather than borrowed opaquely. The passphrase may be empty.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, newErr(InvalidSeed, "invalid mnemonic")
	}
	salt := "mnemonic" + passphrase
	return pbkdf2.Key([]byte(mnemonic), []byte(salt), 2048, 64, sha512.New), nil
}

// SetWordlistLanguage selects the BIP-39 wordlist go-bip39 validates
// mnemonics against, mirroring the multi-language selection the teacher CLI
// exposes via its own --language flag.
func SetWordlistLanguage(list []string) {
	bip39.SetWordList(list)
}
