package bech32m

import "fmt"

// ErrPrefixLength is returned when a human-readable part is empty or longer
// than MaxPrefixLength.
type ErrPrefixLength int

func (e ErrPrefixLength) Error() string {
	return fmt.Sprintf("invalid prefix length %d, must be between 1 and %d",
		int(e), MaxPrefixLength)
}

// ErrPrefixCharacter is returned when a human-readable part contains a
// character outside printable US-ASCII.
type ErrPrefixCharacter rune

func (e ErrPrefixCharacter) Error() string {
	return fmt.Sprintf("invalid character in prefix: %q", rune(e))
}

// ErrPrefixMixedCase is returned when a human-readable part has both upper
// and lower case letters.
type ErrPrefixMixedCase struct{}

func (e ErrPrefixMixedCase) Error() string {
	return "prefix mixes upper and lower case"
}

// ErrTooLong is returned when a string, decoded or about to be encoded,
// exceeds MaxLength characters.
type ErrTooLong int

func (e ErrTooLong) Error() string {
	return fmt.Sprintf("length %d exceeds the %d character limit", int(e),
		MaxLength)
}
