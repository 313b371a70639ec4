// Package logger owns the single btclog backend of the process and hands
// out one logger per subsystem.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
)

// DefaultLogLevel keeps stderr clean unless the user asks for more.
const DefaultLogLevel = "off"

// SubsystemTags is an enum of all sub system tags
var SubsystemTags = struct {
	BMCL,
	CONV string
}{
	BMCL: "BMCL",
	CONV: "CONV",
}

// logWriter forwards log lines to the writer set by Init.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	outputMtx.Lock()
	defer outputMtx.Unlock()
	return output.Write(p)
}

var (
	outputMtx sync.Mutex
	output    io.Writer = os.Stderr

	backendLog = btclog.NewBackend(logWriter{})

	// subsystemLoggers maps each subsystem identifier to its associated logger.
	subsystemLoggers = map[string]btclog.Logger{
		SubsystemTags.BMCL: backendLog.Logger(SubsystemTags.BMCL),
		SubsystemTags.CONV: backendLog.Logger(SubsystemTags.CONV),
	}
)

func init() {
	// Nothing is logged before Init picks a level.
	for _, logger := range subsystemLoggers {
		logger.SetLevel(btclog.LevelOff)
	}
}

// Init redirects all log output to w and sets every subsystem to the given
// level.
func Init(w io.Writer, level string) error {
	outputMtx.Lock()
	output = w
	outputMtx.Unlock()

	return SetLogLevels(level)
}

// Get returns a logger of a specific sub system
func Get(tag string) (logger btclog.Logger, ok bool) {
	logger, ok = subsystemLoggers[tag]
	return
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) error {
	level, ok := btclog.LevelFromString(strings.ToLower(logLevel))
	if !ok {
		return errors.Errorf("invalid log level %q, supported levels are "+
			"{trace, debug, info, warn, error, critical, off}", logLevel)
	}

	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
