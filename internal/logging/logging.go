// internal/logging/logging.go
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable before Init is called
// (defaulting to info level) so that early startup code can log safely.
var Log = logrus.New()

// Init configures the shared logger with a specific level.
func Init(level string) {
	// Using JSON format for structured logging.
	Log.SetFormatter(&logrus.JSONFormatter{})

	// Default is stderr, but stdout plays nicer with container log collectors.
	Log.SetOutput(os.Stdout)

	switch strings.ToLower(level) {
	case "trace":
		Log.SetLevel(logrus.TraceLevel)
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}
}
