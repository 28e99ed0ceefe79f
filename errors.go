// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import "errors"

// ErrorKind classifies why a dogekey operation failed. The kind, not the
// concrete error value, is the stable contract callers should branch on.
type ErrorKind string

const (
	BadEncoding       ErrorKind = "bad_encoding"
	BadChecksum       ErrorKind = "bad_checksum"
	WrongNetwork      ErrorKind = "wrong_network"
	BadLength         ErrorKind = "bad_length"
	InvalidScalar     ErrorKind = "invalid_scalar"
	InvalidPoint      ErrorKind = "invalid_point"
	InvalidDerivation ErrorKind = "invalid_derivation"
	HardenedOnPublic  ErrorKind = "hardened_on_public"
	MalformedExtKey   ErrorKind = "malformed_ext_key"
	InvalidSeed       ErrorKind = "invalid_seed"
	BadSignature      ErrorKind = "bad_signature"
	RngFailure        ErrorKind = "rng_failure"
	InvalidPath       ErrorKind = "invalid_path"
)

// Error is the concrete error type every dogekey operation returns on
// failure. Kind is stable across releases; the wrapped cause is for
// diagnostics only.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func newErr(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func wrapErr(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, err: cause}
}

// KindOf recovers the ErrorKind carried by err, if any. It returns false
// when err is nil or was not produced by this package.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
