// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package dogekey

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestKindOfUnwrapsWrappedCause(t *testing.T) {
	is := is.New(t)

	cause := errors.New("boom")
	err := wrapErr(BadEncoding, "could not parse", cause)

	kind, ok := KindOf(err)
	is.True(ok)
	is.Equal(kind, BadEncoding)
	is.True(errors.Is(err, cause))
}

func TestKindOfReportsFalseForForeignErrors(t *testing.T) {
	is := is.New(t)

	_, ok := KindOf(errors.New("not ours"))
	is.True(!ok)
}

func TestErrorMessageIncludesCause(t *testing.T) {
	is := is.New(t)

	cause := errors.New("underlying")
	err := wrapErr(BadLength, "wrong size", cause)
	is.Equal(err.Error(), "wrong size: underlying")
}
