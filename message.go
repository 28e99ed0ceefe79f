// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"crypto/sha256"
	"encoding/base64"
)

const messageMagic = "\x19Dogecoin Signed Message:\n"

func varint(n int) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		return []byte{0xfd, byte(n), byte(n >> 8)}
	default:
		return []byte{0xfe, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	}
}

// messageHash implements C10's digest:
// SHA256(SHA256(magic ‖ varint(len(msg)) ‖ msg)).
func messageHash(msg string) [32]byte {
	body := append([]byte(messageMagic), varint(len(msg))...)
	body = append(body, msg...)
	h1 := sha256.Sum256(body)
	return sha256.Sum256(h1[:])
}

// SignMessage implements C10's sign: recoverable ECDSA over the message
// digest, base64-encoded.
func SignMessage(priv *PrivKey, msg string) string {
	h := messageHash(msg)
	sig := priv.SignHashRecoverable(h)
	return base64.StdEncoding.EncodeToString(sig)
}

// VerifyMessage implements C10's verify: recover the signer's pubkey,
// derive its P2PKH address on chain, and compare against address. Every
// failure mode (bad base64, bad signature, address mismatch) collapses to
// false, per spec.md §7, to avoid disclosing which check failed.
func VerifyMessage(chain ChainParams, address, sigBase64, msg string) bool {
	sig, err := base64.StdEncoding.DecodeString(sigBase64)
	if err != nil {
		return false
	}
	h := messageHash(msg)
	pub, err := RecoverPubKey(sig, h)
	if err != nil {
		return false
	}
	return pub.AddressP2PKH(chain) == address
}
