// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"testing"

	"github.com/matryer/is"
)

func TestBech32RoundTrip(t *testing.T) {
	is := is.New(t)

	program := make([]byte, 20)
	for i := range program {
		program[i] = byte(i * 7)
	}

	enc, err := Bech32Encode("doge", 0, program)
	is.NoErr(err)

	hrp, version, decoded, err := Bech32Decode(enc)
	is.NoErr(err)
	is.Equal(hrp, "doge")
	is.Equal(version, byte(0))
	is.Equal(len(decoded), len(program))
	for i := range program {
		is.Equal(decoded[i], program[i])
	}
}

func TestBech32RejectsWrongProgramLengthForV0(t *testing.T) {
	is := is.New(t)

	_, err := Bech32Encode("doge", 0, make([]byte, 19))
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, BadLength)
}

func TestBech32DecodeRejectsMixedCase(t *testing.T) {
	is := is.New(t)

	enc, err := Bech32Encode("doge", 0, make([]byte, 20))
	is.NoErr(err)
	// uppercase the first HRP letter; the checksum tail may end in a digit,
	// which has no case
	mixed := string(upper(enc[0])) + enc[1:]

	_, _, _, err = Bech32Decode(mixed)
	is.True(err != nil)
}

func TestBech32DecodeRejectsChecksumTamper(t *testing.T) {
	is := is.New(t)

	enc, err := Bech32Encode("doge", 0, make([]byte, 20))
	is.NoErr(err)
	tampered := []byte(enc)
	tampered[len(tampered)-1] = flipBech32Char(tampered[len(tampered)-1])

	_, _, _, err = Bech32Decode(string(tampered))
	is.True(err != nil)
}

func TestBech32DecodeRejectsEmptyDataPartInsteadOfPanicking(t *testing.T) {
	is := is.New(t)

	checksum := bech32CreateChecksum("doge", nil)
	var sb []byte
	for _, b := range checksum {
		sb = append(sb, bech32Charset[b])
	}
	crafted := "doge1" + string(sb)

	_, _, _, err := Bech32Decode(crafted)
	is.True(err != nil)
	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, BadEncoding)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func flipBech32Char(c byte) byte {
	for _, r := range bech32Charset {
		if byte(r) != c {
			return byte(r)
		}
	}
	return c
}
