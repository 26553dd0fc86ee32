// Package logger configures the application-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It discards output until Init is called.
var Log = newDiscard()

// Init configures Log from the environment:
//   - LOG_LEVEL: logrus level name (default "info")
//   - LOG_FORMAT: "json" or text (default text)
//   - LOG_FILE: destination file; output is discarded when unset because the
//     terminal belongs to the game screen
//
// The returned closer releases the log file.
func Init() (io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	var closer io.Closer = nopCloser{}
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		l.SetOutput(f)
		closer = f
	} else {
		l.SetOutput(io.Discard)
	}

	Log = l
	return closer, nil
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
