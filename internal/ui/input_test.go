package ui

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Amr-9/bech32m/pkg/converter"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline terminated", "706174617465\n", "706174617465"},
		{"no trailing newline", "706174617465", "706174617465"},
		{"crlf and surrounding spaces", "  abc \t\r\nsecond line\n", "abc"},
		{"only first line is read", "first\nsecond\n", "first"},
	}

	for _, test := range tests {
		got, err := ReadLine(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestReadLineErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		kind    converter.Kind
		message string
	}{
		{"no input", "", converter.KindEmptyInput, "No input provided"},
		{"blank line", "\n", converter.KindEmptyInput, "No input provided"},
		{"whitespace first line", "   \nnext\n", converter.KindEmptyInput, "No input provided"},
		{"invalid utf-8", "\xff\xfe\n", converter.KindStdinRead,
			"Error reading input: stream did not contain valid UTF-8"},
	}

	for _, test := range tests {
		_, err := ReadLine(strings.NewReader(test.input))
		if !converter.IsKind(err, test.kind) {
			t.Errorf("%s: got %v, want a %s error", test.name, err, test.kind)
			continue
		}
		if err.Error() != test.message {
			t.Errorf("%s: got message %q, want %q", test.name, err.Error(), test.message)
		}
	}
}

func TestReadLineReaderFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := ReadLine(iotest.ErrReader(boom))
	if !converter.IsKind(err, converter.KindStdinRead) {
		t.Fatalf("got %v, want a %s error", err, converter.KindStdinRead)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("error %v does not wrap the reader failure", err)
	}
	if err.Error() != "Error reading input: boom" {
		t.Fatalf("got message %q", err.Error())
	}
}
