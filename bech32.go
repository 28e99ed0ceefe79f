// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import "strings"

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var bech32CharsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i, c := range bech32Charset {
		rev[c] = int8(i)
	}
	return rev
}()

func bech32Polymod(values []byte) uint32 {
	gen := []uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

func bech32HRPExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := bech32Polymod(values) ^ 1
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

func bech32VerifyChecksum(hrp string, data []byte) bool {
	return bech32Polymod(append(bech32HRPExpand(hrp), data...)) == 1
}

// convertBits regroups a slice of fromBits-wide values into toBits-wide
// values, per BIP-173.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := uint32(0)
	bits := uint(0)
	var out []byte
	maxv := uint32(1)<<toBits - 1
	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, newErr(BadEncoding, "bech32 data value out of range")
		}
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits)&byte(maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits))&byte(maxv))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxv != 0 {
		return nil, newErr(BadEncoding, "bech32 non-zero padding")
	}
	return out, nil
}

// Bech32Encode encodes a segwit v0 P2WPKH witness program as a bech32
// string, per C3. version is the witness version (0 for P2WPKH).
func Bech32Encode(hrp string, version byte, program []byte) (string, error) {
	if version > 16 {
		return "", newErr(BadEncoding, "witness version out of range")
	}
	if version == 0 && len(program) != 20 {
		return "", newErr(BadLength, "v0 witness program must be 20 bytes")
	}
	converted, err := convertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := append([]byte{version}, converted...)
	checksum := bech32CreateChecksum(hrp, data)
	combined := append(data, checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		sb.WriteByte(bech32Charset[b])
	}
	return sb.String(), nil
}

// Bech32Decode is the inverse of Bech32Encode. It rejects mixed case, a
// checksum mismatch, and (for version 0) a witness program whose length is
// not exactly 20 bytes.
func Bech32Decode(s string) (hrp string, version byte, program []byte, err error) {
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return "", 0, nil, newErr(BadEncoding, "bech32 mixed case")
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+8 > len(s) {
		return "", 0, nil, newErr(BadEncoding, "bech32 missing or misplaced separator")
	}
	hrp = s[:sep]
	dataPart := s[sep+1:]

	data := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		c := dataPart[i]
		if c >= 128 || bech32CharsetRev[c] == -1 {
			return "", 0, nil, newErr(BadEncoding, "invalid bech32 character")
		}
		data[i] = byte(bech32CharsetRev[c])
	}

	if !bech32VerifyChecksum(hrp, data) {
		return "", 0, nil, newErr(BadChecksum, "bech32 checksum mismatch")
	}

	version = data[0]
	converted, err := convertBits(data[1:len(data)-6], 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}
	if version == 0 && len(converted) != 20 {
		return "", 0, nil, newErr(BadLength, "v0 witness program must be 20 bytes")
	}
	return hrp, version, converted, nil
}
