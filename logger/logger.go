package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process wide logger. It works with logrus defaults until Init
// is called, so packages and tests can log without setup.
var Log = logrus.New()

// Init configures Log once at startup. level is a logrus level name and
// falls back to info; format "json" selects the JSON formatter, anything
// else the text formatter.
func Init(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}

// For returns an entry tagged with the subsystem name.
func For(subsystem string) *logrus.Entry {
	return Log.WithField("subsystem", subsystem)
}
