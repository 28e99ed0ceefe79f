// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

const hardenedOffset = uint32(1) << 31

const serializedExtKeyLen = 78

// HDNode is the BIP-32 extended key record of C6: either a private node
// (owns a PrivKey and can derive both private and public children) or a
// public-only node (can only derive non-hardened public children).
type HDNode struct {
	chain             ChainParams
	depth             byte
	childNumber       uint32
	parentFingerprint [4]byte
	chainCode         [32]byte
	priv              *PrivKey // nil for public-only nodes
	pub               *PubKey
}

// NewMasterFromSeed implements C6's from-seed algorithm:
// I = HMAC-SHA512("Bitcoin seed", seed); left 32 bytes is the master key,
// right 32 bytes is the master chain code.
func NewMasterFromSeed(chain ChainParams, seed []byte) (*HDNode, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, newErr(BadLength, "seed must be between 16 and 64 bytes")
	}
	mac := hmac.New(sha512.New, []byte("Bitcoin seed"))
	mac.Write(seed)
	i := mac.Sum(nil)
	defer zero(i)

	priv, err := PrivKeyFromBytes(i[:32])
	if err != nil {
		return nil, wrapErr(InvalidSeed, "seed produced an invalid master scalar", err)
	}

	node := &HDNode{
		chain: chain,
		priv:  priv,
		pub:   priv.PubKey(),
	}
	copy(node.chainCode[:], i[32:64])
	return node, nil
}

// IsPrivate reports whether n can derive private children and sign.
func (n *HDNode) IsPrivate() bool { return n.priv != nil }

// Chain returns the network this node was derived under.
func (n *HDNode) Chain() ChainParams { return n.chain }

// Depth returns the BIP-32 depth (0 at the master).
func (n *HDNode) Depth() byte { return n.depth }

// ChildNumber returns the index this node was derived with (0 at the master).
func (n *HDNode) ChildNumber() uint32 { return n.childNumber }

// PrivKey returns the node's private key, or an error if this is a
// public-only node.
func (n *HDNode) PrivKey() (*PrivKey, error) {
	if n.priv == nil {
		return nil, newErr(InvalidPoint, "node has no private key")
	}
	return n.priv, nil
}

// PubKey returns the node's public key. Always available.
func (n *HDNode) PubKey() *PubKey { return n.pub }

// Neuter returns the public-only view of n: same chain code, depth,
// fingerprint and child number, with the private key dropped.
func (n *HDNode) Neuter() *HDNode {
	out := *n
	out.priv = nil
	return &out
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}

// Child implements CKD-priv (if n is private) or CKD-pub (if n is
// public-only), per C6, honoring the index-retry policy of §4.10: if the
// derived scalar is out of range or zero (CKD-priv) or the resulting point
// is at infinity (CKD-pub), the caller must retry at index+1. This
// implementation performs that retry internally and reports
// InvalidDerivation after 1024 consecutive invalid indices, or when a
// retry would cross the hardened/normal boundary.
func (n *HDNode) Child(index uint32) (*HDNode, error) {
	hardened := index >= hardenedOffset
	if hardened && n.priv == nil {
		return nil, newErr(HardenedOnPublic, "cannot derive a hardened child from a public-only node")
	}
	if n.depth == 255 {
		return nil, newErr(InvalidDerivation, "maximum BIP-32 depth reached")
	}

	// The probability that any given index needs a retry is ~2^-127; this
	// bound only exists to make the loop provably terminating.
	const maxRetries = 1024
	for retry := 0; ; retry++ {
		if retry >= maxRetries {
			return nil, newErr(InvalidDerivation, "exhausted retry indices")
		}
		if (index >= hardenedOffset) != hardened {
			return nil, newErr(InvalidDerivation, "retry crossed the hardened/normal boundary")
		}

		var data []byte
		if hardened {
			privBytes := n.priv.Bytes()
			data = append([]byte{0x00}, privBytes[:]...)
			data = append(data, ser32(index)...)
			zero(privBytes[:])
		} else {
			data = append(data, n.pub.Bytes()...)
			data = append(data, ser32(index)...)
		}

		mac := hmac.New(sha512.New, n.chainCode[:])
		mac.Write(data)
		i := mac.Sum(nil)
		zero(data)

		il, ir := i[:32], i[32:]
		fp := n.fingerprint()

		if n.priv != nil {
			privBytes := n.priv.Bytes()
			kPar := new(big.Int).SetBytes(privBytes[:])
			zero(privBytes[:])
			ilInt := new(big.Int).SetBytes(il)
			valid := ilInt.Cmp(secp256k1N) < 0
			var kChild *big.Int
			if valid {
				kChild = new(big.Int).Add(ilInt, kPar)
				kChild.Mod(kChild, secp256k1N)
				valid = kChild.Sign() != 0
			}
			zero(i)
			if !valid {
				index++
				continue
			}
			kb := make([]byte, 32)
			kChild.FillBytes(kb)
			childPriv, err := PrivKeyFromBytes(kb)
			zero(kb)
			if err != nil {
				return nil, wrapErr(InvalidDerivation, "derived child scalar rejected", err)
			}
			child := &HDNode{
				chain:             n.chain,
				depth:             n.depth + 1,
				childNumber:       index,
				parentFingerprint: fp,
				priv:              childPriv,
				pub:               childPriv.PubKey(),
			}
			copy(child.chainCode[:], ir)
			return child, nil
		}

		// CKD-pub: only reachable when hardened == false.
		curve := btcec.S256()
		ilX, ilY := curve.ScalarBaseMult(il)
		parentX, parentY := n.pub.key.X(), n.pub.key.Y()
		childX, childY := curve.Add(ilX, ilY, parentX, parentY)
		zero(i)
		if childX.Sign() == 0 && childY.Sign() == 0 {
			index++
			continue
		}
		prefix := byte(0x02)
		if childY.Bit(0) == 1 {
			prefix = 0x03
		}
		xb := make([]byte, 32)
		childX.FillBytes(xb)
		compressed := append([]byte{prefix}, xb...)
		childPub, err := PubKeyFromCompressed(compressed)
		if err != nil {
			return nil, wrapErr(InvalidPoint, "derived child point is invalid", err)
		}
		child := &HDNode{
			chain:             n.chain,
			depth:             n.depth + 1,
			childNumber:       index,
			parentFingerprint: fp,
			pub:               childPub,
		}
		copy(child.chainCode[:], ir)
		return child, nil
	}
}

func (n *HDNode) fingerprint() [4]byte {
	h := n.pub.Hash160()
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Serialize implements C6's 78-byte extended-key serialization,
// base58check-encoded: magic ‖ depth ‖ parent_fp ‖ child_number ‖
// chain_code ‖ key_data.
func (n *HDNode) Serialize() string {
	buf := make([]byte, 0, serializedExtKeyLen)
	if n.priv != nil {
		buf = append(buf, n.chain.BIP32PrivateKeyMagic[:]...)
	} else {
		buf = append(buf, n.chain.BIP32PublicKeyMagic[:]...)
	}
	buf = append(buf, n.depth)
	buf = append(buf, n.parentFingerprint[:]...)
	buf = append(buf, ser32(n.childNumber)...)
	buf = append(buf, n.chainCode[:]...)
	if n.priv != nil {
		k := n.priv.Bytes()
		buf = append(buf, 0x00)
		buf = append(buf, k[:]...)
		zero(k[:])
	} else {
		buf = append(buf, n.pub.Bytes()...)
	}
	out := EncodeCheck(buf)
	zero(buf)
	return out
}

// ParseExtendedKey implements C6's parse: strict 78-byte length, magic
// lookup (which determines both chain and private/public), and the
// depth-zero invariant (parent fingerprint and child number must both be
// zero at depth 0).
func ParseExtendedKey(s string) (*HDNode, error) {
	data, err := DecodeCheck(s)
	if err != nil {
		return nil, err
	}
	defer zero(data)

	if len(data) != serializedExtKeyLen {
		return nil, newErr(BadLength, "extended key must decode to 78 bytes")
	}

	var magic [4]byte
	copy(magic[:], data[0:4])
	chain, ok := ChainFromBIP32Magic(magic)
	if !ok {
		return nil, newErr(MalformedExtKey, "unrecognized extended key magic")
	}
	isPrivate := magic == chain.BIP32PrivateKeyMagic

	node := &HDNode{chain: chain}
	node.depth = data[4]
	copy(node.parentFingerprint[:], data[5:9])
	node.childNumber = binary.BigEndian.Uint32(data[9:13])
	copy(node.chainCode[:], data[13:45])

	if node.depth == 0 {
		var zeroFP [4]byte
		if node.parentFingerprint != zeroFP || node.childNumber != 0 {
			return nil, newErr(MalformedExtKey, "depth-zero node must have zero fingerprint and child number")
		}
	}

	keyData := data[45:78]
	if isPrivate {
		if keyData[0] != 0x00 {
			return nil, newErr(MalformedExtKey, "private key data must be prefixed with 0x00")
		}
		priv, err := PrivKeyFromBytes(keyData[1:])
		if err != nil {
			return nil, wrapErr(MalformedExtKey, "invalid private key material", err)
		}
		node.priv = priv
		node.pub = priv.PubKey()
	} else {
		pub, err := PubKeyFromCompressed(keyData)
		if err != nil {
			return nil, wrapErr(MalformedExtKey, "invalid public key material", err)
		}
		node.pub = pub
	}
	return node, nil
}
