// Package bech32m decodes Bech32 and Bech32m strings and encodes payloads
// as Bech32m (BIP-350).
//
// Payloads are plain bytes; regrouping to and from 5-bit words is done
// here so callers never see the intermediate form.
package bech32m

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/pkg/codec"
)

const (
	// MaxLength is the longest string, prefix and separator included, whose
	// checksum still guarantees error detection.
	MaxLength = 1023

	// ChecksumLength is the number of checksum characters at the end of
	// every Bech32 string.
	ChecksumLength = 6
)

// Variant is the checksum flavour a decoded string was built with.
type Variant int

const (
	VariantBech32  Variant = iota // BIP-173
	VariantBech32m                // BIP-350
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantBech32:
		return "Bech32"
	case VariantBech32m:
		return "Bech32m"
	default:
		return "Unknown"
	}
}

// Decode parses a Bech32 or Bech32m string and returns its lowercased
// human-readable part, its payload bytes and the checksum variant.
// Both variants are accepted; the payload must have zero padding bits.
func Decode(s string) (string, []byte, Variant, error) {
	if len(s) > MaxLength {
		return "", nil, 0, ErrTooLong(len(s))
	}

	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, 0, err
	}
	if _, err := ParsePrefix(hrp); err != nil {
		return "", nil, 0, err
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, 0, errors.Wrap(err, "invalid payload padding")
	}

	// The checksum matched one of the two constants. Re-encoding with the
	// Bech32m constant tells which.
	variant := VariantBech32
	if encoded, err := bech32.EncodeM(hrp, data); err == nil &&
		encoded == strings.ToLower(s) {

		variant = VariantBech32m
	}

	return hrp, payload, variant, nil
}

// Encode returns the Bech32m string for payload under the given
// human-readable part. The prefix is validated and lowercased first.
func Encode(prefix string, payload []byte) (string, error) {
	hrp, err := ParsePrefix(prefix)
	if err != nil {
		return "", err
	}

	// Convert to 5-bit groups for Bech32m
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to regroup payload")
	}

	length := len(hrp) + 1 + len(data) + ChecksumLength
	if length > MaxLength {
		return "", ErrTooLong(length)
	}

	return bech32.EncodeM(hrp, data)
}

// Codec adapts Decode to codec.Codec. The source prefix is discarded.
type Codec struct{}

// Format returns codec.Bech32m.
func (Codec) Format() codec.Format {
	return codec.Bech32m
}

// Decode returns the payload of a Bech32 or Bech32m string.
func (Codec) Decode(s string) ([]byte, error) {
	_, payload, _, err := Decode(s)
	return payload, err
}
