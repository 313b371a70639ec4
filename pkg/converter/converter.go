// Package converter detects the encoding of a line of text and moves its
// payload between Base16, Base58 and Bech32m.
//
// Decoding always expects Bech32m (legacy Bech32 is tolerated) and yields
// lowercase hex. Encoding accepts any of the supported formats and tries
// them in priority order: Bech32m first, because its checksum makes a false
// positive unlikely, then Base16, then Base58, the loosest of the three.
package converter

import (
	"github.com/Amr-9/bech32m/pkg/codec"
	"github.com/Amr-9/bech32m/pkg/codec/base16"
	"github.com/Amr-9/bech32m/pkg/codec/base58"
	"github.com/Amr-9/bech32m/pkg/codec/bech32m"
)

// Converter re-encodes payloads under a Bech32m prefix.
type Converter struct {
	codecs []codec.Codec
}

// New returns a Converter that detects Bech32m, Base16 and Base58 input,
// in that order.
func New() *Converter {
	return NewWithCodecs(bech32m.Codec{}, base16.Codec{}, base58.Codec{})
}

// NewWithCodecs returns a Converter that tries codecs in the given order
// when detecting the format of its input.
func NewWithCodecs(codecs ...codec.Codec) *Converter {
	return &Converter{codecs: codecs}
}

// Decode parses input as a Bech32m string and returns its payload as
// lowercase hex.
func (c *Converter) Decode(input string) (string, error) {
	hrp, payload, variant, err := bech32m.Decode(input)
	if err != nil {
		log.Debugf("Input is not a valid Bech32 string: %s", err)
		return "", WrapError(KindInvalidEncoding, "Invalid bech32m string", err)
	}

	log.Debugf("Decoded %s string with prefix %q (%d bytes)", variant, hrp,
		len(payload))
	return base16.Encode(payload), nil
}

// Encode detects the format of input and returns its payload encoded as
// Bech32m under prefix. A Bech32m input keeps its payload and gets the new
// prefix.
func (c *Converter) Encode(input, prefix string) (string, error) {
	hrp, err := bech32m.ParsePrefix(prefix)
	if err != nil {
		return "", WrapError(KindInvalidPrefix, "Invalid prefix", err)
	}

	format, payload, err := c.Detect(input)
	if err != nil {
		return "", err
	}

	encoded, err := bech32m.Encode(hrp, payload)
	if err != nil {
		return "", WrapError(KindEncoding, "Encoding error", err)
	}

	log.Debugf("Encoded %s payload under prefix %q", format, hrp)
	return encoded, nil
}

// Detect decodes input with the first codec that accepts it and reports
// which format that was.
func (c *Converter) Detect(input string) (codec.Format, []byte, error) {
	for _, cd := range c.codecs {
		payload, err := cd.Decode(input)
		if err != nil {
			log.Tracef("Input is not %s: %s", cd.Format(), err)
			continue
		}

		log.Debugf("Detected %s input (%d bytes)", cd.Format(), len(payload))
		return cd.Format(), payload, nil
	}

	return 0, nil, NewError(KindUnrecognizedFormat,
		"Unable to decode input. Supported formats: Base16, Bech32m, Base58")
}
