package main

import (
	"io"

	"github.com/Amr-9/bech32m/internal/logger"
	"github.com/Amr-9/bech32m/pkg/converter"
)

var log, _ = logger.Get(logger.SubsystemTags.BMCL)

// initLog sends all subsystem logs to w at the given level and hands the
// converter its logger.
func initLog(w io.Writer, level string) error {
	if err := logger.Init(w, level); err != nil {
		return err
	}

	convLog, _ := logger.Get(logger.SubsystemTags.CONV)
	converter.UseLogger(convLog)
	return nil
}
