package cbc

import (
	"errors"
	"fmt"
)

// Errors returned by the mode engine. Callers match them with errors.Is.
var (
	// ErrNilKeyMaterial is returned by Init when the key or the IV is nil.
	ErrNilKeyMaterial = errors.New("key material must not be nil")

	// ErrBadIVLength is returned by Init when the IV length does not equal
	// the underlying cipher's block size.
	ErrBadIVLength = errors.New("iv length must equal cipher block size")

	// ErrNotInitialized is returned by block transforms invoked before a
	// successful Init.
	ErrNotInitialized = errors.New("mode has not been initialized")

	// ErrWrongDirection is returned when EncryptBlock is called on a mode
	// bound for decryption or vice versa. Re-initialize to switch.
	ErrWrongDirection = errors.New("mode bound for the other direction")

	// ErrShortBuffer is returned when src or dst holds less than one full
	// block. Disabled by the UncheckedTransforms option.
	ErrShortBuffer = errors.New("buffer smaller than a full block")

	// ErrModeClosed is returned for any use of a closed mode. A closed mode
	// cannot be re-initialized.
	ErrModeClosed = errors.New("mode is closed")

	// ErrNilCipher is returned by NewMode when no cipher is supplied.
	ErrNilCipher = errors.New("cipher must not be nil")

	// ErrCipherFailure matches any error propagated opaquely from the
	// underlying block cipher.
	ErrCipherFailure = errors.New("underlying cipher failure")
)

// cipherError carries a failure from the plugged-in block cipher along with
// the operation that triggered it.
type cipherError struct {
	Op  string // init, encrypt or decrypt
	Err error
}

func (e *cipherError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrCipherFailure, e.Err)
}

func (e *cipherError) Unwrap() error {
	return e.Err
}

func (e *cipherError) Is(target error) bool {
	return target == ErrCipherFailure //nolint:errorlint
}
