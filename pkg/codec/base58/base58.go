// Package base58 decodes Base58 payloads using the Bitcoin alphabet.
// No checksum is expected or verified.
package base58

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/pkg/codec"
)

// Decode decodes a Base58 string. Each leading '1' becomes a zero byte.
func Decode(s string) ([]byte, error) {
	payload, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Base58")
	}
	return payload, nil
}

// Codec adapts Decode to codec.Codec.
type Codec struct{}

// Format returns codec.Base58.
func (Codec) Format() codec.Format {
	return codec.Base58
}

// Decode decodes a Base58 string.
func (Codec) Decode(s string) ([]byte, error) {
	return Decode(s)
}
