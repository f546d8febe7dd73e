package util

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

var (
	globalLogger Logger = defaultLogger{}
	globalLock   sync.Mutex
)

// Logger is the logging interface used throughout the client. Implement it to
// route client logs into your own logging setup, then install it with SetLogger
// (or via Options.Logger).
type Logger interface {
	Printf(format string, a ...any)
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
	Warnf(format string, a ...any)
	// Errorf logs at error level and returns the formatted message as an error.
	Errorf(format string, a ...any) error
}

func SetLogger(log Logger) {
	if log == nil {
		panic("Can't set the logger to nil")
	}

	globalLock.Lock()
	globalLogger = log
	globalLock.Unlock()
}

func Printf(format string, a ...any) {
	globalLogger.Printf(format, a...)
}

func Infof(format string, a ...any) {
	globalLogger.Infof(format, a...)
}

func Debugf(format string, a ...any) {
	globalLogger.Debugf(format, a...)
}

func Warnf(format string, a ...any) {
	globalLogger.Warnf(format, a...)
}

func Errorf(format string, a ...any) error {
	return globalLogger.Errorf(format, a...)
}

type defaultLogger struct{}

func (defaultLogger) Printf(format string, a ...any) {
	log.Printf(terminated(format), a...)
}

func (defaultLogger) Infof(format string, a ...any) {
	log.Printf("INFO: "+terminated(format), a...)
}

func (defaultLogger) Debugf(format string, a ...any) {
	log.Printf("DEBUG: "+terminated(format), a...)
}

func (defaultLogger) Warnf(format string, a ...any) {
	log.Printf("WARN: "+terminated(format), a...)
}

func (defaultLogger) Errorf(format string, a ...any) error {
	log.Printf("ERROR: "+terminated(format), a...)
	return fmt.Errorf(format, a...)
}

func terminated(format string) string {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	return format
}

// DiscardLogger suppresses all client logging.
type DiscardLogger struct{}

func (DiscardLogger) Printf(_ string, _ ...any) {}

func (DiscardLogger) Infof(_ string, _ ...any) {}

func (DiscardLogger) Debugf(_ string, _ ...any) {}

func (DiscardLogger) Warnf(_ string, _ ...any) {}

func (DiscardLogger) Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}
