// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
)

// PubKey owns a secp256k1 point. It always serializes to the 33-byte
// compressed form for addresses. Decoding goes through
// PubKeyFromCompressed, which accepts only the 33-byte compressed form; the
// 65-byte uncompressed form is rejected with BadLength.
type PubKey struct {
	key *btcec.PublicKey
}

// PubKeyFromCompressed parses a 33-byte compressed public key.
func PubKeyFromCompressed(b []byte) (*PubKey, error) {
	if len(b) != 33 {
		return nil, newErr(BadLength, "compressed public key must be 33 bytes")
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, wrapErr(InvalidPoint, "invalid compressed public key", err)
	}
	return &PubKey{key: key}, nil
}

// Bytes returns the 33-byte compressed serialization.
func (p *PubKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

// Hash160 returns RIPEMD160(SHA256(compressed pubkey)), the HASH160 named
// in the glossary. It is implemented via btcutil.Hash160, which composes
// the same two trusted hash collaborators spec.md names.
func (p *PubKey) Hash160() [20]byte {
	var out [20]byte
	copy(out[:], btcutil.Hash160(p.Bytes()))
	return out
}

// AddressP2PKH implements C4/C5's P2PKH form:
// base58check(addr_prefix ‖ hash160).
func (p *PubKey) AddressP2PKH(chain ChainParams) string {
	h := p.Hash160()
	payload := append([]byte{chain.B58PubkeyPrefix}, h[:]...)
	return EncodeCheck(payload)
}

// AddressP2SHP2WPKH implements the P2SH-wrapped SegWit form: the redeem
// script is 0x00 0x14 ‖ hash160, and the output address is
// base58check(script_prefix ‖ HASH160(redeem_script)).
func (p *PubKey) AddressP2SHP2WPKH(chain ChainParams) string {
	h := p.Hash160()
	redeem := make([]byte, 0, 22)
	redeem = append(redeem, 0x00, 0x14)
	redeem = append(redeem, h[:]...)
	scriptHash := btcutil.Hash160(redeem)
	payload := append([]byte{chain.B58ScriptPrefix}, scriptHash...)
	return EncodeCheck(payload)
}

// AddressP2WPKH implements the native SegWit v0 form: bech32(hrp, 0, hash160).
func (p *PubKey) AddressP2WPKH(chain ChainParams) (string, error) {
	h := p.Hash160()
	return Bech32Encode(chain.Bech32HRP, 0, h[:])
}

// AddressesFromPubKey returns all three address forms of C5 for pub under
// chain, matching spec.md §8's concrete test vector.
func AddressesFromPubKey(chain ChainParams, pub *PubKey) (p2pkh, p2shP2wpkh, p2wpkh string, err error) {
	p2pkh = pub.AddressP2PKH(chain)
	p2shP2wpkh = pub.AddressP2SHP2WPKH(chain)
	p2wpkh, err = pub.AddressP2WPKH(chain)
	if err != nil {
		return "", "", "", err
	}
	return p2pkh, p2shP2wpkh, p2wpkh, nil
}

// VerifySig verifies a DER-encoded ECDSA signature over hash.
func (p *PubKey) VerifySig(hash [32]byte, sigDER []byte) bool {
	sig, err := btcecdsa.ParseDERSignature(sigDER)
	if err != nil {
		return false
	}
	return sig.Verify(hash[:], p.key)
}

// RecoverPubKey recovers the signer's public key from a 65-byte packed
// recoverable signature and the message hash, per C4's recover operation.
func RecoverPubKey(sigCompact []byte, hash [32]byte) (*PubKey, error) {
	if len(sigCompact) != 65 {
		return nil, newErr(BadLength, "compact signature must be 65 bytes")
	}
	pub, _, err := btcecdsa.RecoverCompact(sigCompact, hash[:])
	if err != nil {
		return nil, wrapErr(BadSignature, "signature recovery failed", err)
	}
	return &PubKey{key: pub}, nil
}
