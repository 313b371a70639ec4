// Package base16 decodes and encodes hexadecimal payloads.
package base16

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/pkg/codec"
)

// Decode decodes an even-length hex string of either case. No prefix is
// accepted.
func Decode(s string) ([]byte, error) {
	payload, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return payload, nil
}

// Encode returns the lowercase hex form of payload without a prefix.
func Encode(payload []byte) string {
	return hex.EncodeToString(payload)
}

// Codec adapts Decode to codec.Codec.
type Codec struct{}

// Format returns codec.Base16.
func (Codec) Format() codec.Format {
	return codec.Base16
}

// Decode decodes a hex string.
func (Codec) Decode(s string) ([]byte, error) {
	return Decode(s)
}
