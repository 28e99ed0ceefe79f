// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package dogekey is a Dogecoin key-and-address engine: it generates,
// serializes, derives, signs with, and verifies the secp256k1 keys and
// addresses used to receive Dogecoin value. It covers WIF-encoded private
// keys, compressed public keys, the three address forms (P2PKH,
// P2SH-P2WPKH, native P2WPKH), BIP-32 hierarchical-deterministic key
// trees, the BIP-39/BIP-44 bridge from a mnemonic to a derived address,
// and recoverable-ECDSA message signing.
//
// The package is stateless and safe for concurrent use as long as each
// goroutine owns its own PrivKey or HDNode; there is no shared mutable
// state beyond the process CSPRNG and the package-wide BIP-39 wordlist
// selected with SetWordlistLanguage.
package dogekey
