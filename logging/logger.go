// Package logging builds the hclog loggers used across hebkbd.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// New creates a logger writing to output, stderr when nil.
// HEBKBD_JSON_LOG=1 switches to JSON lines.
func New(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv("HEBKBD_JSON_LOG") == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// Level picks the log level. HEBKBD_LOG_LEVEL wins; otherwise the debug
// and verbose switches (or the DEBUG and VERBOSE environment variables)
// raise the default "warn".
func Level(debug, verbose bool) string {
	if level := os.Getenv("HEBKBD_LOG_LEVEL"); level != "" {
		return strings.ToLower(level)
	}
	switch {
	case debug || envSet("DEBUG"):
		return "debug"
	case verbose || envSet("VERBOSE"):
		return "info"
	}
	return "warn"
}

func envSet(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && v != "" && v != "0"
}
