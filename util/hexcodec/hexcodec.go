// Package hexcodec converts between byte slices and their lowercase
// hexadecimal text representation.
package hexcodec

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HexDecodeError is returned when text is not a valid hex encoding: it has an
// odd number of characters or contains a character outside [0-9a-fA-F].
type HexDecodeError struct {
	Input string
	Cause error
}

func (e *HexDecodeError) Error() string {
	return "hex decode error: " + e.Cause.Error()
}

// Unwrap returns the underlying encoding/hex error.
func (e *HexDecodeError) Unwrap() error {
	return e.Cause
}

// DecodeHex decodes a string of paired hex digits into bytes. Upper and lower
// case digits are both accepted.
func DecodeHex(text string) ([]byte, error) {
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return nil, errors.WithStack(&HexDecodeError{Input: text, Cause: err})
	}
	return decoded, nil
}

// HexToBytes is an alias of DecodeHex and must stay behaviorally identical to
// it.
func HexToBytes(text string) ([]byte, error) {
	return DecodeHex(text)
}

// MustDecodeHex decodes text and panics if it is not valid hex. It is meant
// for constants and test sources only.
func MustDecodeHex(text string) []byte {
	decoded, err := DecodeHex(text)
	if err != nil {
		panic(err)
	}
	return decoded
}

// BytesToHex returns the lowercase hex encoding of b, two characters per
// byte. An empty or nil slice yields an empty string.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
