// Package codec defines the contract shared by the text encodings the
// converter understands. Each encoding lives in its own subpackage so the
// converter can try them in a fixed priority order.
package codec

// Format identifies a textual encoding of a byte payload.
type Format int

const (
	Bech32m Format = iota // Bech32m (BIP-350), also accepts legacy Bech32 on decode
	Base16                // Hex, even length, no prefix
	Base58                // Base58 with the Bitcoin alphabet
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Bech32m:
		return "Bech32m"
	case Base16:
		return "Base16"
	case Base58:
		return "Base58"
	default:
		return "Unknown"
	}
}

// Codec turns the textual form of a payload back into bytes.
type Codec interface {
	// Format returns the encoding this codec decodes.
	Format() Format

	// Decode returns the payload carried by s, or an error if s is not a
	// well-formed string in this encoding.
	Decode(s string) ([]byte, error)
}
