package config

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(level string, json bool) *logrus.Logger {
	return newLogger(os.Stderr, level, json)
}

func newLogger(out io.Writer, level string, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	if json {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Logger builds the logger described by s.
func (s Settings) Logger() *logrus.Logger {
	return NewLogger(s.LogLevel, s.LogJSON)
}
