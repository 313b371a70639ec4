package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/Amr-9/bech32m/internal/ui"
	"github.com/Amr-9/bech32m/pkg/converter"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := parseConfig(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(out, flagsErr.Message)
			fmt.Fprint(out, helpEpilogue)
			return exitSuccess
		}
		return usageError(errOut, err)
	}

	if cfg.ShowVersion {
		ui.PrintVersion(out, appName, version)
		return exitSuccess
	}

	if err := initLog(errOut, cfg.LogLevel); err != nil {
		return usageError(errOut, err)
	}

	conv := converter.New()

	if cfg.SelfTest {
		passed, results := conv.Verify()
		ui.PrintVerifyResults(out, passed, results)
		if !passed {
			return exitFailure
		}
		return exitSuccess
	}

	input, err := ui.ReadLine(in)
	if err != nil {
		ui.PrintError(errOut, err)
		return exitFailure
	}

	var output string
	if cfg.EncodeMode {
		log.Debugf("Encoding input under prefix %q", cfg.Prefix)
		output, err = conv.Encode(input, cfg.Prefix)
	} else {
		log.Debugf("Decoding input")
		output, err = conv.Decode(input)
	}
	if err != nil {
		ui.PrintError(errOut, err)
		return exitFailure
	}

	fmt.Fprintln(out, output)
	return exitSuccess
}

func usageError(errOut io.Writer, err error) int {
	ui.PrintError(errOut, err)
	fmt.Fprintf(errOut, "\nFor more information, try '--help'.\n")
	return exitUsage
}
