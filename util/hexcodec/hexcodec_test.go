package hexcodec

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestDecodeHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []byte
		valid    bool
	}{
		{name: "empty", input: "", expected: []byte{}, valid: true},
		{name: "deadbeef", input: "deadbeef", expected: []byte{0xde, 0xad, 0xbe, 0xef}, valid: true},
		{name: "upper case", input: "DEADBEEF", expected: []byte{0xde, 0xad, 0xbe, 0xef}, valid: true},
		{name: "mixed case", input: "DeAdBeEf", expected: []byte{0xde, 0xad, 0xbe, 0xef}, valid: true},
		{name: "all nibbles", input: "0123456789abcdef", expected: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, valid: true},
		{name: "odd length", input: "abc", valid: false},
		{name: "single digit", input: "a", valid: false},
		{name: "non hex character", input: "zz", valid: false},
		{name: "0x prefix", input: "0xdead", valid: false},
		{name: "whitespace", input: "de ad", valid: false},
	}

	for _, test := range tests {
		decoded, err := DecodeHex(test.input)
		aliased, aliasErr := HexToBytes(test.input)

		if (err == nil) != (aliasErr == nil) || !bytes.Equal(decoded, aliased) {
			t.Errorf("%s: DecodeHex and HexToBytes disagree: %s / %v vs %s / %v", test.name,
				spew.Sdump(decoded), err, spew.Sdump(aliased), aliasErr)
		}

		if !test.valid {
			if err == nil {
				t.Errorf("%s: expected an error, got %x", test.name, decoded)
				continue
			}
			var decodeErr *HexDecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("%s: expected a *HexDecodeError, got %T", test.name, err)
				continue
			}
			if decodeErr.Input != test.input {
				t.Errorf("%s: error carries input %q", test.name, decodeErr.Input)
			}
			if !strings.HasPrefix(err.Error(), "hex decode error: ") {
				t.Errorf("%s: unexpected error text %q", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if !bytes.Equal(decoded, test.expected) {
			t.Errorf("%s: got %s want %s", test.name, spew.Sdump(decoded), spew.Sdump(test.expected))
		}
	}
}

func TestHexDecodeErrorCause(t *testing.T) {
	t.Parallel()

	_, err := DecodeHex("abc")
	if !errors.Is(err, hex.ErrLength) {
		t.Errorf("odd length error does not wrap hex.ErrLength: %v", err)
	}

	_, err = DecodeHex("0g")
	var invalidByte hex.InvalidByteError
	if !errors.As(err, &invalidByte) || byte(invalidByte) != 'g' {
		t.Errorf("invalid character error does not wrap hex.InvalidByteError('g'): %v", err)
	}
}

func TestBytesToHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    []byte
		expected string
	}{
		{input: nil, expected: ""},
		{input: []byte{}, expected: ""},
		{input: []byte{0x00}, expected: "00"},
		{input: []byte{0xde, 0xad, 0xbe, 0xef}, expected: "deadbeef"},
		{input: []byte{0xAB, 0xCD}, expected: "abcd"},
	}

	for i, test := range tests {
		encoded := BytesToHex(test.input)
		if encoded != test.expected {
			t.Errorf("test %d: got %q want %q", i, encoded, test.expected)
		}
		if len(encoded) != 2*len(test.input) {
			t.Errorf("test %d: encoded length %d is not twice the input length", i, len(encoded))
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs := [][]byte{{}, {0x00}, {0xff, 0x00, 0x7f}, all}
	for i, input := range inputs {
		decoded, err := DecodeHex(BytesToHex(input))
		if err != nil {
			t.Fatalf("test %d: DecodeHex: %s", i, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("test %d: round trip mismatch: got %x want %x", i, decoded, input)
		}
	}

	for _, text := range []string{"DEADBEEF", "00Ff", "abcdef0123"} {
		decoded, err := HexToBytes(text)
		if err != nil {
			t.Fatalf("HexToBytes(%q): %s", text, err)
		}
		if BytesToHex(decoded) != strings.ToLower(text) {
			t.Errorf("re-encoding %q gave %q", text, BytesToHex(decoded))
		}
	}
}

func TestMustDecodeHexPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Errorf("MustDecodeHex did not panic on invalid input")
		}
	}()
	MustDecodeHex("xyz")
}
