package common

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerOnce sync.Once
	logger     *logrus.Logger
)

// Logger returns the package-wide logger used by codecs that were not given
// one explicitly. It only reports warnings and above.
func Logger() logrus.FieldLogger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	})
	return logger
}

// LoggerOr returns l, or the package-wide logger when l is nil.
func LoggerOr(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Logger()
	}
	return l
}
