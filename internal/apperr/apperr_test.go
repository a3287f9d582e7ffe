package apperr

import (
	"errors"
	"io"
	"testing"
)

var errSample = &Error{
	Message: "recipe %s not found",
}

func TestErrorIs(t *testing.T) {
	formatted := errSample.Fmt("abc")

	if formatted.Error() != "recipe abc not found" {
		t.Fatalf("unexpected message: %s", formatted.Error())
	}

	if !errors.Is(formatted, errSample) {
		t.Fatal("formatted error should match its sentinel")
	}

	wrapped := formatted.Wrap(io.EOF)

	if !errors.Is(wrapped, errSample) {
		t.Fatal("wrapped error should match its sentinel")
	}

	if !errors.Is(wrapped, io.EOF) {
		t.Fatal("wrapped error should match its cause")
	}

	other := &Error{Message: "recipe %s not found"}

	if errors.Is(formatted, other) {
		t.Fatal("errors with the same message but different sentinels must not match")
	}
}
