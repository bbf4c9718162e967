// Package logging configures the process-wide zerolog logger, minus a GCP
// severity hook: the compiler is a local CLI/library with no cloud logging
// sink to report severity to (see DESIGN.md).
package logging

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the logging library for one compiler run.
func SetupLogger(version string, debug, human bool) {
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if human {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	log.Logger = log.With().
		Str("version", version).
		Str("goversion", runtime.Version()).
		Logger()
}

// Stage returns a child logger tagged with the pipeline stage it's scoped
// to (linearize, build-ir, codegen, assemble), deriving a stage-scoped
// sub-logger rather than threading a logger parameter through every
// function.
func Stage(name string) zerolog.Logger {
	return log.With().Str("stage", name).Logger()
}
