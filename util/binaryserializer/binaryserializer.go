// Package binaryserializer holds the little-endian integer encoding used by
// transaction primitives, together with byte order conversion helpers.
package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ToBigEndian returns a copy of b with its byte order reversed. b itself is
// left untouched, and applying ToBigEndian twice yields the original bytes.
// Transaction ids are conventionally displayed this way.
func ToBigEndian(b []byte) []byte {
	reversed := make([]byte, len(b))
	for i, value := range b {
		reversed[len(b)-1-i] = value
	}
	return reversed
}

// SwapEndianUint32 encodes value as 4 bytes, least significant byte first.
func SwapEndianUint32(value uint32) [4]byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return buf
}

// Uint8 reads a single byte from the provided reader and returns it as a uint8.
func Uint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return buf[0], nil
}

// Uint32 reads four little-endian bytes from the provided reader and returns
// the resulting uint32.
func Uint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint64 reads eight little-endian bytes from the provided reader and returns
// the resulting uint64.
func Uint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// PutUint8 writes val as a single byte to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return errors.WithStack(err)
}

// PutUint32 writes val to w as four little-endian bytes.
func PutUint32(w io.Writer, val uint32) error {
	buf := SwapEndianUint32(val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint64 writes val to w as eight little-endian bytes.
func PutUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}
