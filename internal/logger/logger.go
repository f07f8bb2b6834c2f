package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	NONE
)

var (
	level     = INFO
	stdLogger = newLogger(os.Stderr)
	logFile   *os.File
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", "ripeness").Logger()
}

func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "none":
		return NONE
	default:
		return INFO
	}
}

// Init sets the level and, when logfilePath is set, tees output into that
// file as JSON lines next to the console writer on stderr.
func Init(logfilePath string, levelStr string) error {
	level = ParseLevel(levelStr)
	if err := Close(); err != nil {
		return err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	if logfilePath != "" {
		dir := filepath.Dir(logfilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		stdLogger = newLogger(zerolog.MultiLevelWriter(console, f))
	} else {
		stdLogger = newLogger(console)
	}
	return nil
}

// Close releases the log file opened by Init, if any, and sends further
// output to stderr.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	stdLogger = newLogger(os.Stderr)
	return err
}

// SetOutput swaps the sink, mostly for tests.
func SetOutput(w io.Writer) {
	stdLogger = newLogger(w)
}

func SetLevel(l LogLevel) {
	level = l
}

func Debug(msg string, args ...any) {
	if level <= DEBUG {
		stdLogger.Debug().Msg(fmt.Sprintf(msg, args...))
	}
}
func Info(msg string, args ...any) {
	if level <= INFO {
		stdLogger.Info().Msg(fmt.Sprintf(msg, args...))
	}
}
func Warn(msg string, args ...any) {
	if level <= WARN {
		stdLogger.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}
func Error(msg string, args ...any) {
	if level <= ERROR {
		stdLogger.Error().Msg(fmt.Sprintf(msg, args...))
	}
}
