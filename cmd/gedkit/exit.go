package main

import (
	"errors"
	"os"

	"github.com/kestrelgen/gedkit/decoder"
)

// Exit codes per the decoder's external contract: 0 success with no
// errors, 1 fatal decode error, 2 cancellation, 3 I/O failure.
const (
	exitSuccess  = 0
	exitFatal    = 1
	exitCanceled = 2
	exitIOFail   = 3
)

// exitCodeForError classifies an error returned from a command's RunE into
// one of the four contract exit codes. Unrecognized errors (cobra usage
// errors, flag parsing failures) fall back to exitFatal.
func exitCodeForError(err error) int {
	if err == nil {
		return exitSuccess
	}

	var fatal *decoder.FatalError
	if errors.As(err, &fatal) {
		switch fatal.Reason {
		case "cancelled":
			return exitCanceled
		case "io":
			return exitIOFail
		default:
			return exitFatal
		}
	}

	if errors.Is(err, os.ErrNotExist) {
		return exitIOFail
	}

	return exitFatal
}
