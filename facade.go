// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// facade.go exposes the flat operation surface of C11: the set of
// functions the tests and any CLI consume, wrapping the richer typed
// components (C1-C10) declared elsewhere in the package.
package dogekey

import "encoding/hex"

// GeneratePrivPubKeypair generates a fresh keypair and returns its WIF
// encoding and P2PKH address.
func GeneratePrivPubKeypair(chain ChainParams) (wif, p2pkh string, err error) {
	priv, err := GeneratePrivKey(nil)
	if err != nil {
		return "", "", err
	}
	defer priv.Wipe()
	return priv.EncodeWIF(chain), priv.PubKey().AddressP2PKH(chain), nil
}

// GenPrivatekey generates a fresh private key and returns only its WIF
// encoding, split out from GeneratePrivPubKeypair per spec.md §9's note
// that the source's addressFromPrivkey conflated key generation with
// address derivation.
func GenPrivatekey(chain ChainParams) (wif string, err error) {
	priv, err := GeneratePrivKey(nil)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()
	return priv.EncodeWIF(chain), nil
}

// AddressFromPrivkey decodes wif and returns its P2PKH address, without
// generating a new key (the two operations spec.md §9 splits apart).
func AddressFromPrivkey(chain ChainParams, wif string) (p2pkh string, err error) {
	priv, err := DecodeWIF(chain, wif)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()
	return priv.PubKey().AddressP2PKH(chain), nil
}

// PubkeyFromPrivatekey decodes wif and returns the hex-encoded compressed
// public key.
func PubkeyFromPrivatekey(chain ChainParams, wif string) (pubkeyHex string, err error) {
	priv, err := DecodeWIF(chain, wif)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()
	return hex.EncodeToString(priv.PubKey().Bytes()), nil
}

// VerifyPrivPubKeypair reports whether wif decodes, under chain, to a
// private key whose P2PKH address equals p2pkh.
func VerifyPrivPubKeypair(wif, p2pkh string, chain ChainParams) bool {
	priv, err := DecodeWIF(chain, wif)
	if err != nil {
		return false
	}
	defer priv.Wipe()
	return priv.PubKey().AddressP2PKH(chain) == p2pkh
}

// VerifyP2PKHAddress reports whether addr is a well-formed base58check
// string. It checks the checksum only, not that the address belongs to any
// particular chain.
func VerifyP2PKHAddress(addr string) bool {
	_, err := DecodeCheck(addr)
	return err == nil
}

// AddressesFromPubkeyHex parses a hex-encoded compressed public key and
// returns all three address forms of C5.
func AddressesFromPubkeyHex(chain ChainParams, pubkeyHex string) (p2pkh, p2shP2wpkh, p2wpkh string, err error) {
	raw, err := hex.DecodeString(pubkeyHex)
	if err != nil {
		return "", "", "", wrapErr(BadEncoding, "public key is not valid hex", err)
	}
	pub, err := PubKeyFromCompressed(raw)
	if err != nil {
		return "", "", "", err
	}
	return AddressesFromPubKey(chain, pub)
}

// HDGenMaster generates a fresh random 32-byte seed and returns the
// serialized master extended private key.
func HDGenMaster(chain ChainParams) (xpriv string, err error) {
	priv, err := GeneratePrivKey(nil)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()
	scalar := priv.Bytes()
	defer zero(scalar[:])
	node, err := NewMasterFromSeed(chain, scalar[:])
	if err != nil {
		return "", err
	}
	return node.Serialize(), nil
}

// GenerateHDMasterKeypair generates a fresh HD master node and returns its
// serialized xpriv alongside the master's own P2PKH address.
func GenerateHDMasterKeypair(chain ChainParams) (xpriv, p2pkh string, err error) {
	xpriv, err = HDGenMaster(chain)
	if err != nil {
		return "", "", err
	}
	node, err := ParseExtendedKey(xpriv)
	if err != nil {
		return "", "", err
	}
	return xpriv, node.PubKey().AddressP2PKH(node.Chain()), nil
}

// DeriveHDPubFromMaster parses an xpriv or xpub (chain inferred from its
// magic) and returns its P2PKH address.
func DeriveHDPubFromMaster(xkey string) (p2pkh string, err error) {
	node, err := ParseExtendedKey(xkey)
	if err != nil {
		return "", err
	}
	return node.PubKey().AddressP2PKH(node.Chain()), nil
}

// VerifyHDMasterKeypair reports whether xpriv parses, under chain, to a
// node whose P2PKH address equals p2pkh. Per spec.md §9 this requires the
// key to actually decode under chain's magic, not merely to have a
// plausible-looking prefix.
func VerifyHDMasterKeypair(xpriv, p2pkh string, chain ChainParams) bool {
	node, err := ParseExtendedKey(xpriv)
	if err != nil {
		return false
	}
	if node.Chain() != chain {
		return false
	}
	return node.PubKey().AddressP2PKH(chain) == p2pkh
}

// HDDerive parses xkey and walks path, returning the resulting node's
// serialized extended key. The parsed key is treated as the root "m" of
// path: its depth, child number and parent fingerprint are reset to zero
// before the walk, so "m/0" always yields a depth-1 child.
func HDDerive(xkey, path string) (string, error) {
	node, err := ParseExtendedKey(xkey)
	if err != nil {
		return "", err
	}
	node.depth = 0
	node.childNumber = 0
	node.parentFingerprint = [4]byte{}
	p, err := ParsePath(path)
	if err != nil {
		return "", err
	}
	out, err := node.DerivePath(p, node.IsPrivate() && !p.Public)
	if err != nil {
		return "", err
	}
	return out.Serialize(), nil
}

// DeriveByPath parses masterKey and walks path, returning either the
// resulting extended key (wantPrivate) or its P2PKH address.
func DeriveByPath(masterKey, path string, wantPrivate bool) (string, error) {
	node, err := ParseExtendedKey(masterKey)
	if err != nil {
		return "", err
	}
	p, err := ParsePath(path)
	if err != nil {
		return "", err
	}
	out, err := node.DerivePath(p, wantPrivate)
	if err != nil {
		return "", err
	}
	if wantPrivate {
		return out.Serialize(), nil
	}
	return out.PubKey().AddressP2PKH(out.Chain()), nil
}

// DeriveBIP44Facade derives the BIP-44 node for (account, change, index)
// from masterKey and returns either its serialized extended key
// (wantPrivate) or its P2PKH address.
func DeriveBIP44Facade(masterKey string, account, change uint32, index *uint32, wantPrivate bool) (string, error) {
	master, err := ParseExtendedKey(masterKey)
	if err != nil {
		return "", err
	}
	node, err := DeriveBIP44(master, account, change, index)
	if err != nil {
		return "", err
	}
	if !wantPrivate {
		node = node.Neuter()
	}
	if wantPrivate {
		return node.Serialize(), nil
	}
	return node.PubKey().AddressP2PKH(node.Chain()), nil
}

// DeriveFromMnemonic derives seed_from_mnemonic → HD master → BIP-44 leaf
// → P2PKH address in one call.
func DeriveFromMnemonic(account, change, index uint32, mnemonic, passphrase string, chain ChainParams) (p2pkh string, err error) {
	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return "", err
	}
	defer zero(seed)
	master, err := NewMasterFromSeed(chain, seed)
	if err != nil {
		return "", err
	}
	idx := index
	leaf, err := DeriveBIP44(master, account, change, &idx)
	if err != nil {
		return "", err
	}
	return leaf.PubKey().AddressP2PKH(chain), nil
}

// GenerateHDMasterKeypairFromMnemonic derives seed_from_mnemonic → HD master
// and returns the master's serialized xpriv alongside its own P2PKH
// address, without walking any BIP-44 path. It composes the same building
// blocks as DeriveFromMnemonic one level shallower.
func GenerateHDMasterKeypairFromMnemonic(mnemonic, passphrase string, chain ChainParams) (xpriv, p2pkh string, err error) {
	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return "", "", err
	}
	defer zero(seed)
	master, err := NewMasterFromSeed(chain, seed)
	if err != nil {
		return "", "", err
	}
	return master.Serialize(), master.PubKey().AddressP2PKH(chain), nil
}

// VerifyHDMasterKeypairFromMnemonic reports whether mnemonic/passphrase
// regenerate a master node whose serialized xpriv equals xpriv and whose
// P2PKH address equals p2pkh.
func VerifyHDMasterKeypairFromMnemonic(xpriv, p2pkh, mnemonic, passphrase string, chain ChainParams) bool {
	gotXpriv, gotP2PKH, err := GenerateHDMasterKeypairFromMnemonic(mnemonic, passphrase, chain)
	if err != nil {
		return false
	}
	return gotXpriv == xpriv && gotP2PKH == p2pkh
}

// SignMessageFacade signs msg with the private key encoded as hex in
// privHex, returning the base64 recoverable signature.
func SignMessageFacade(privHex, msg string) (string, error) {
	raw, err := hex.DecodeString(privHex)
	if err != nil {
		return "", wrapErr(BadEncoding, "private key is not valid hex", err)
	}
	priv, err := PrivKeyFromBytes(raw)
	zero(raw)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()
	return SignMessage(priv, msg), nil
}

// VerifyMessageFacade infers the chain from address's own prefix byte and
// verifies the signature against it.
func VerifyMessageFacade(address, sigBase64, msg string) bool {
	decoded, err := DecodeCheck(address)
	if err != nil || len(decoded) == 0 {
		return false
	}
	chain, ok := ChainFromAddressPrefix(decoded[0])
	if !ok {
		return false
	}
	return VerifyMessage(chain, address, sigBase64, msg)
}
