package main

import (
	"os"

	"github.com/yigit/coursecraft/internal/pkg/logger"
)

func main() {
	logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true, Output: os.Stderr})

	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("coursectl failed")
		os.Exit(1)
	}
}
