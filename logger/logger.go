// Package logger provides the structured logger shared by every component
// of the conversion core. It wraps zerolog the way go-ichiran wires it
// through a package-level Logger variable, rather than the ad hoc
// log.Printf/JSON-dump style of earlier IME prototypes.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// L is the process-wide logger. Callers may reassign it (e.g. to redirect
// output or change verbosity) before any component is initialised.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

// Component returns a logger pre-tagged with "component" for a given
// subsystem name, e.g. logger.Component("trie").
func Component(name string) zerolog.Logger {
	return L.With().Str("component", name).Logger()
}

// SetLevel adjusts the global minimum log level.
func SetLevel(lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
}
