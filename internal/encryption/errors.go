package encryption

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyData is returned when attempting to decrypt empty input data in a padded mode.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when encrypted data length is not aligned with AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrMissingIV is returned when a chaining or stream mode has no initialization vector available.
	ErrMissingIV = errors.New("missing initialization vector")

	// ErrUnsupportedScheme is returned for a variant, index or name outside the registry.
	ErrUnsupportedScheme = errors.New("scheme index is unsupported")
	// ErrKeyLengthMismatch is matched by every *KeyLengthError.
	ErrKeyLengthMismatch = errors.New("key length mismatch")
	// ErrCipherPrimitive is matched by every failure reported by the underlying block cipher or mode.
	ErrCipherPrimitive = errors.New("cipher primitive failure")
)

// KeyLengthError reports a key whose length differs from the one required by the variant.
type KeyLengthError struct {
	Expected int
	Actual   int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("key length mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// Is makes every KeyLengthError match ErrKeyLengthMismatch.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrKeyLengthMismatch
}

// PrimitiveError wraps a failure of the AES primitive or of the mode driving it.
// It matches both ErrCipherPrimitive and the wrapped cause.
type PrimitiveError struct {
	Op  string
	Err error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PrimitiveError) Unwrap() []error {
	return []error{ErrCipherPrimitive, e.Err}
}

func primitiveError(op string, err error) error {
	return &PrimitiveError{Op: op, Err: err}
}
