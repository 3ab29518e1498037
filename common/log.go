package common

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logMu    sync.Mutex
	logLevel = log.InfoLevel
	loggers  = map[string]*log.Logger{}
)

// NewLogger returns the shared logger for a category such as "combat" or
// "nav". Loggers are cached so SetLogLevel reaches every category.
func NewLogger(category string) *log.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          category,
		ReportTimestamp: true,
		Level:           logLevel,
	})
	loggers[category] = l
	return l
}

// SetLogLevel parses level ("debug", "info", "warn", "error") and applies it
// to every category logger.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	logLevel = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
	return nil
}
