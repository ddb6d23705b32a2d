package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	logger := newLogger(os.Stderr)
	root := newRootCmd(os.Stdout, logger)
	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "syntaxforge",
		Level:  log.WarnLevel,
	})
}
