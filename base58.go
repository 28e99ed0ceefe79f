// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"crypto/sha256"
	"math/big"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const maxCheckDecodedLen = 128

var base58Radix = big.NewInt(58)

// base58Encode encodes raw (not checksummed) bytes using the Bitcoin
// alphabet, preserving one leading '1' per leading 0x00 byte.
func base58Encode(raw []byte) string {
	zeros := 0
	for zeros < len(raw) && raw[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(raw)
	mod := new(big.Int)
	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base58Radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, base58Alphabet[0])
	}
	// out was built least-significant-digit first; reverse it.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// base58Decode is the inverse of base58Encode.
func base58Decode(s string) ([]byte, error) {
	n := new(big.Int)
	for _, r := range s {
		idx := -1
		for i := 0; i < len(base58Alphabet); i++ {
			if base58Alphabet[i] == byte(r) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, newErr(BadEncoding, "invalid base58 character")
		}
		n.Mul(n, base58Radix)
		n.Add(n, big.NewInt(int64(idx)))
	}

	decoded := n.Bytes()

	zeros := 0
	for zeros < len(s) && s[zeros] == base58Alphabet[0] {
		zeros++
	}

	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)
	return out, nil
}

// EncodeCheck implements the Base58Check codec of C2: the payload is
// checksummed with the first 4 bytes of the double-SHA-256 of itself, then
// base58-encoded.
func EncodeCheck(payload []byte) string {
	checksum := doubleSHA256(payload)[:4]
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum...)
	return base58Encode(full)
}

// DecodeCheck is the inverse of EncodeCheck: it verifies the trailing
// 4-byte checksum and returns the payload without it.
func DecodeCheck(s string) ([]byte, error) {
	decoded, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 4 {
		return nil, newErr(BadLength, "base58check input too short")
	}
	if len(decoded) > maxCheckDecodedLen+4 {
		return nil, newErr(BadLength, "base58check input too long")
	}
	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	want := doubleSHA256(payload)[:4]
	if !bytesEqual(checksum, want) {
		return nil, newErr(BadChecksum, "base58check checksum mismatch")
	}
	return payload, nil
}

func doubleSHA256(b []byte) []byte {
	h1 := sha256.Sum256(b)
	h2 := sha256.Sum256(h1[:])
	return h2[:]
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
