package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger to write human-readable lines to stderr.
// Debug enables debug level; otherwise only warnings and errors are shown so
// that diagnostics never mix with the printed results.
func Init(debug bool) {
	InitWithWriter(os.Stderr, debug)
}

// InitWithWriter is Init with a custom destination.
func InitWithWriter(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr})

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().Msg("Debug mode enabled")
}
