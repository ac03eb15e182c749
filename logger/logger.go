package logger

import (
	"github.com/sirupsen/logrus"
)

// New creates the process logger. The level string comes from the
// LOG_LEVEL environment variable; unknown values fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}
