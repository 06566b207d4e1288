package cache

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger      *logrus.Logger
	loggerMutex sync.RWMutex
)

func SetLogger(s *logrus.Logger) {
	loggerMutex.Lock()
	logger = s
	loggerMutex.Unlock()
}

// GetLogger returns the shared logger. Hosts that never call SetLogger get
// a plain stderr logger on first use.
func GetLogger() *logrus.Logger {
	loggerMutex.RLock()
	l := logger
	loggerMutex.RUnlock()
	if l != nil {
		return l
	}

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if logger == nil {
		logger = logrus.New()
		logger.Out = os.Stderr
	}
	return logger
}
