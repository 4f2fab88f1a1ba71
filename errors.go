package main

import (
	"errors"

	"github.com/hyp3rd/ewrap"
)

var (
	// ErrIO is returned when standard input cannot be read or standard output cannot be written.
	ErrIO = ewrap.New("i/o error")

	// ErrMalformedInput is returned when the input is not a JSON object of the form {"data": [<number>, ...]}.
	ErrMalformedInput = ewrap.New("malformed input")

	// ErrInvalidInput is returned when the sample set is empty or holds a non-finite value.
	ErrInvalidInput = ewrap.New("invalid input")

	// ErrSerialization is returned when the computed statistics cannot be encoded.
	ErrSerialization = ewrap.New("serialization error")
)

// sysexits(3) codes
const (
	exitFailure  = 1
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrMalformedInput), errors.Is(err, ErrInvalidInput):
		return exitDataErr
	case errors.Is(err, ErrSerialization):
		return exitSoftware
	case errors.Is(err, ErrIO):
		return exitIOErr
	default:
		return exitFailure
	}
}
