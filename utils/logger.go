package utils

import (
	"fmt"
	"log"
)

type LogLevel int

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

func logf(level LogLevel, prefix, format string, v ...any) {
	if GlobalLogLevel&level == 0 {
		return
	}
	if prefix == "" {
		log.Printf(format, v...)
		return
	}
	log.Printf("[%s] %s", prefix, fmt.Sprintf(format, v...))
}

// Errorf logs upstream and handler failures
func Errorf(prefix, format string, v ...any) {
	logf(LogLevelError, prefix, format, v...)
}

func Logf(prefix, format string, v ...any) {
	logf(LogLevelInfo, prefix, format, v...)
}

// Noticef logs degraded operation, like falling back to synthetic data
func Noticef(prefix, format string, v ...any) {
	logf(LogLevelNotice, prefix, format, v...)
}

func Debugf(prefix, format string, v ...any) {
	logf(LogLevelDebug, prefix, format, v...)
}
