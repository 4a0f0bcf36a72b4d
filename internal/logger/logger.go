// Package logger builds the process-wide logrus logger from the environment.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It discards output until Init is called.
var Log = discard()

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures Log to write to w. LOG_LEVEL picks the level (default
// info) and LOG_FORMAT=json switches to JSON lines; anything else is text.
func Init(w io.Writer) *logrus.Logger {
	l := logrus.New()

	name, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		name = "info"
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetOutput(w)
	Log = l
	return l
}

// OpenFile opens path for appending and initialises Log on it. The caller
// closes the returned file.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Init(f)
	return f, nil
}
