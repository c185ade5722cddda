// Package mlctslog holds the package-level logger used by the decompose
// package and the mlctsgen command.
package mlctslog

import (
	"github.com/rs/zerolog"
)

// Log is the package-level logger used across mlctsgo. It defaults to a
// no-op logger; callers embedding this library should call SetLogger to
// wire it to their own zerolog.Logger.
var Log zerolog.Logger = zerolog.Nop()

// SetLogger replaces the package-level logger.
func SetLogger(l zerolog.Logger) {
	Log = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return Log
}
