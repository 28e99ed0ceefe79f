// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

// BIP44Path builds the path of C9: m/44'/<coin_type>'/<account>'/<change>/
// <index>. When leaf is false the path stops at the account extended key,
// m/44'/<coin_type>'/<account>' (depth 3) — the node a BIP-44 wallet
// exports for further non-hardened change/index derivation — and change is
// unused; otherwise it walks the full 5-level path to the leaf.
func BIP44Path(chain ChainParams, account, change, index uint32, leaf bool) Path {
	p := Path{Elements: []uint32{
		44 + hardenedOffset,
		chain.BIP44CoinType + hardenedOffset,
		account + hardenedOffset,
	}}
	if leaf {
		p.Elements = append(p.Elements, change, index)
	}
	return p
}

// DeriveBIP44 derives the BIP-44 node for (account, change, index) from a
// master HDNode. index == nil produces the account-level extended key
// (leaf=false, depth 3); otherwise it produces the leaf node at that index
// (depth 5).
func DeriveBIP44(master *HDNode, account, change uint32, index *uint32) (*HDNode, error) {
	leaf := index != nil
	var idx uint32
	if leaf {
		idx = *index
	}
	path := BIP44Path(master.chain, account, change, idx, leaf)
	return master.DerivePath(path, master.IsPrivate())
}
