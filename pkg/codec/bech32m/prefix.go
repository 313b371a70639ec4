package bech32m

import (
	"strings"
)

// MaxPrefixLength is the longest human-readable part BIP-173 allows.
const MaxPrefixLength = 83

// IsValidPrefixChar checks if a character may appear in a human-readable part.
// Only printable US-ASCII (33..126) is allowed.
func IsValidPrefixChar(c rune) bool {
	return c >= 33 && c <= 126
}

// ParsePrefix validates a human-readable part and returns it lowercased.
// The prefix must be 1..83 printable ASCII characters and must not mix
// upper and lower case.
func ParsePrefix(prefix string) (string, error) {
	if len(prefix) == 0 || len(prefix) > MaxPrefixLength {
		return "", ErrPrefixLength(len(prefix))
	}

	var hasLower, hasUpper bool
	for _, c := range prefix {
		if !IsValidPrefixChar(c) {
			return "", ErrPrefixCharacter(c)
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		return "", ErrPrefixMixedCase{}
	}

	return strings.ToLower(prefix), nil
}
