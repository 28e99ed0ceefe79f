// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// secp256k1N is the order of the secp256k1 base point. Valid private key
// scalars are k such that 1 <= k < secp256k1N.
var secp256k1N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// PrivKey owns a 32-byte secp256k1 secret. Callers must call Wipe when done
// with a PrivKey obtained outside of a helper that already wipes on error.
type PrivKey struct {
	key *btcec.PrivateKey
}

func scalarInRange(b []byte) bool {
	k := new(big.Int).SetBytes(b)
	return k.Sign() > 0 && k.Cmp(secp256k1N) < 0
}

// GeneratePrivKey draws 32 bytes from rng until the resulting integer is in
// [1, n-1], per C4, and fails with RngFailure if rng cannot supply enough
// valid draws.
func GeneratePrivKey(rng io.Reader) (*PrivKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	for attempts := 0; attempts < 16; attempts++ {
		var buf [32]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, wrapErr(RngFailure, "failed to read random bytes", err)
		}
		if !scalarInRange(buf[:]) {
			zero(buf[:])
			continue
		}
		key, _ := btcec.PrivKeyFromBytes(buf[:])
		zero(buf[:])
		return &PrivKey{key: key}, nil
	}
	return nil, newErr(RngFailure, "exhausted RNG attempts generating a valid scalar")
}

// PrivKeyFromBytes constructs a PrivKey from a raw 32-byte scalar, failing
// with InvalidScalar if it is zero or out of range.
func PrivKeyFromBytes(b []byte) (*PrivKey, error) {
	if len(b) != 32 {
		return nil, newErr(BadLength, "private key must be 32 bytes")
	}
	if !scalarInRange(b) {
		return nil, newErr(InvalidScalar, "private key scalar is zero or >= n")
	}
	key, _ := btcec.PrivKeyFromBytes(b)
	return &PrivKey{key: key}, nil
}

// Bytes returns the raw 32-byte scalar. Callers that copy it out are
// responsible for wiping their own copy.
func (p *PrivKey) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], p.key.Serialize())
	return out
}

// PubKey derives the compressed public key for p.
func (p *PrivKey) PubKey() *PubKey {
	return &PubKey{key: p.key.PubKey()}
}

// EncodeWIF implements C4's encode_wif: prefix ‖ 32-byte key ‖ 0x01
// (compressed marker), base58check-encoded.
func (p *PrivKey) EncodeWIF(chain ChainParams) string {
	scalar := p.Bytes()
	data := make([]byte, 0, 34)
	data = append(data, chain.B58SecretPrefix)
	data = append(data, scalar[:]...)
	data = append(data, 0x01)
	out := EncodeCheck(data)
	zero(scalar[:])
	zero(data)
	return out
}

// DecodeWIF implements C4's decode_wif. It accepts both the 33-byte
// (uncompressed) and 34-byte (compressed, trailing 0x01) payload shapes but
// this module only ever emits the compressed form.
func DecodeWIF(chain ChainParams, wif string) (*PrivKey, error) {
	data, err := DecodeCheck(wif)
	if err != nil {
		return nil, err
	}
	defer zero(data)

	if len(data) != 33 && len(data) != 34 {
		return nil, newErr(BadLength, "WIF payload has unexpected length")
	}
	if data[0] != chain.B58SecretPrefix {
		return nil, newErr(WrongNetwork, "WIF prefix does not match chain")
	}
	if len(data) == 34 && data[33] != 0x01 {
		return nil, newErr(BadEncoding, "WIF compression marker is not 0x01")
	}
	return PrivKeyFromBytes(data[1:33])
}

// SignHash produces a low-S-normalized deterministic (RFC-6979) ECDSA
// signature over a 32-byte hash, returning the DER encoding.
func (p *PrivKey) SignHash(hash [32]byte) []byte {
	sig := btcecdsa.Sign(p.key, hash[:])
	return sig.Serialize()
}

// SignHashRecoverable produces a 65-byte packed recoverable signature
// (header ‖ r ‖ s) over hash, per C10. The header already encodes
// 27+recid+4 (this module only ever signs for compressed pubkeys).
func (p *PrivKey) SignHashRecoverable(hash [32]byte) []byte {
	return btcecdsa.SignCompact(p.key, hash[:], true)
}

// Wipe zeroes the private scalar. Safe to call more than once.
func (p *PrivKey) Wipe() {
	if p == nil || p.key == nil {
		return
	}
	p.key.Zero()
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
