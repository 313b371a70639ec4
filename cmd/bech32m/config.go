package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/internal/logger"
)

const (
	appName = "bech32m"
	version = "0.1.0"
)

const helpEpilogue = `Arguments:
  PREFIX  An optional human-readable prefix (e.g. 'addr').
          When provided, the input text is decoded from one of the supported
          formats and re-encoded to Bech32m using the given prefix.
          When omitted, the input text is decoded from Bech32m to Base16.

Supported encoding formats: Base16, Bech32m & Base58.

Examples:
  To Bech32m:
    $ bech32m base16_ <<< 706174617465
    base16_1wpshgct5v5kgt2jd

    $ bech32m base58_ <<< Ae2tdPwUPEYy
    base58_1p58rejhd9592uusgm3whg

    $ bech32m new_prefix <<< old_prefix1wpshgct5v5frd79v
    new_prefix1wpshgct5v52ycf9c

  From Bech32m:
    $ bech32m <<< base16_1wpshgct5v5kgt2jd
    706174617465
`

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level written to stderr {trace, debug, info, warn, error, critical, off}"`
	SelfTest    bool   `long:"selftest" description:"Run the built-in conversion vectors and exit"`

	// Set from the positional argument. An explicit empty PREFIX still
	// selects encode mode.
	Prefix     string `no-flag:"yes"`
	EncodeMode bool   `no-flag:"yes"`
}

func newParser(cfg *configFlags) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName
	parser.Usage = "[OPTIONS] [PREFIX]\n\n" +
		"Convert to and from bech32m strings. Data are read from standard input."
	return parser
}

func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{
		LogLevel: logger.DefaultLogLevel,
	}
	parser := newParser(cfg)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion || cfg.SelfTest {
		return cfg, nil
	}

	switch len(remainingArgs) {
	case 0:
	case 1:
		cfg.Prefix = remainingArgs[0]
		cfg.EncodeMode = true
	default:
		return nil, errors.Errorf("expected at most one PREFIX argument, got %d",
			len(remainingArgs))
	}

	return cfg, nil
}
