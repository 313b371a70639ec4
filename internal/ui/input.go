package ui

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/pkg/converter"
)

// ReadLine reads the first line of r and trims surrounding whitespace.
// Anything after the first newline is left unread.
func ReadLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", converter.WrapError(converter.KindStdinRead,
			"Error reading input", err)
	}
	if err == io.EOF && line == "" {
		return "", converter.NewError(converter.KindEmptyInput, "No input provided")
	}

	if !utf8.ValidString(line) {
		return "", converter.WrapError(converter.KindStdinRead,
			"Error reading input", errors.New("stream did not contain valid UTF-8"))
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", converter.NewError(converter.KindEmptyInput, "No input provided")
	}
	return line, nil
}
