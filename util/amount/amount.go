// Package amount parses and formats currency amounts expressed in satoshis,
// the smallest unit of the currency.
package amount

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// SatoshiPerBitcoin is the number of satoshis in one bitcoin.
	SatoshiPerBitcoin = 100_000_000

	// fractionDigits is the number of decimal places of a bitcoin amount.
	fractionDigits = 8
)

// InvalidAmountError is returned when text cannot be parsed into an amount.
type InvalidAmountError struct {
	Input  string
	Reason string
	Cause  error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid satoshi amount %q: %s", e.Input, e.Reason)
}

// Unwrap returns the underlying parse error, if any.
func (e *InvalidAmountError) Unwrap() error {
	return e.Cause
}

func invalidAmount(input, reason string, cause error) error {
	return errors.WithStack(&InvalidAmountError{Input: input, Reason: reason, Cause: cause})
}

// ParseSatoshis parses a base-10 unsigned integer. Signs, whitespace and any
// other non-digit character are rejected, as are empty input and values that
// do not fit in 64 bits.
func ParseSatoshis(text string) (uint64, error) {
	if text == "" {
		return 0, invalidAmount(text, "empty amount", nil)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, invalidAmount(text, fmt.Sprintf("unexpected character %q", r), nil)
		}
	}
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, invalidAmount(text, "out of range", err)
	}
	return value, nil
}

// FormatBTC renders sats as a bitcoin amount with exactly 8 decimal places.
func FormatBTC(sats uint64) string {
	return fmt.Sprintf("%d.%08d", sats/SatoshiPerBitcoin, sats%SatoshiPerBitcoin)
}

var amountFormat = regexp.MustCompile(`^([1-9]\d{0,11}|0)(\.\d{0,8})?$`)

// ValidateAmountFormat checks that text is either an integer without leading
// zeros, or a decimal with at most 8 fractional digits.
func ValidateAmountFormat(text string) error {
	if !amountFormat.MatchString(text) {
		return invalidAmount(text, "not a bitcoin amount with up to 8 decimal places", nil)
	}
	return nil
}

// ParseBTC converts a decimal bitcoin amount such as "1.5" into satoshis
// without going through floating point.
func ParseBTC(text string) (uint64, error) {
	err := ValidateAmountFormat(text)
	if err != nil {
		return 0, err
	}

	whole, fraction := text, ""
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		whole, fraction = text[:dot], text[dot+1:]
	}
	fraction += strings.Repeat("0", fractionDigits-len(fraction))

	wholeValue, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, invalidAmount(text, "out of range", err)
	}
	fractionValue, err := strconv.ParseUint(fraction, 10, 64)
	if err != nil {
		return 0, invalidAmount(text, "out of range", err)
	}

	const maxUint64 = ^uint64(0)
	if wholeValue > (maxUint64-fractionValue)/SatoshiPerBitcoin {
		return 0, invalidAmount(text, "out of range", nil)
	}
	return wholeValue*SatoshiPerBitcoin + fractionValue, nil
}
