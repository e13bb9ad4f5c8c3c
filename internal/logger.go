package internal

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// The status line must not print anything besides its two lines, so logs go
// nowhere until a sink is configured.
var (
	logLevel = LogLevelInfo
	logger   = log.New(io.Discard, "", log.LstdFlags)
)

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
	} else {
		SetLogLevel(LogLevelInfo)
	}
}

// SetLogOutput redirects log output
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ConfigureLogging picks the log sink: a rotating file when logFile is set,
// stderr when verbose, otherwise nothing.
func ConfigureLogging(logFile string, verbose bool) {
	SetVerbose(verbose)
	switch {
	case logFile != "":
		SetLogOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // MB
			MaxBackups: 3,
			Compress:   false,
		})
	case verbose:
		SetLogOutput(os.Stderr)
	default:
		SetLogOutput(io.Discard)
	}
}

func logError(format string, args ...interface{}) {
	if logLevel >= LogLevelError {
		logger.Printf("[ERROR] "+format, args...)
	}
}

func logWarn(format string, args ...interface{}) {
	if logLevel >= LogLevelWarn {
		logger.Printf("[WARN] "+format, args...)
	}
}

func logInfo(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		logger.Printf("[INFO] "+format, args...)
	}
}

func logDebug(format string, args ...interface{}) {
	if logLevel >= LogLevelDebug {
		logger.Printf("[DEBUG] "+format, args...)
	}
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logError(format, args...)
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	logWarn(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logInfo(format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logDebug(format, args...)
}
