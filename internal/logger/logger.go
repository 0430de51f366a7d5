package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/landlord-rules/internal/config"
)

const maxLogSize = 10 * 1024 * 1024

var (
	log     = newLogger(os.Stderr, logrus.InfoLevel)
	logFile *os.File
	logPath string
)

// Formatter 单行日志：时间 [级别] 消息 字段
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Time.Format(time.DateTime))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(entry.Level.String()))
	sb.WriteString("] ")
	sb.WriteString(entry.Message)

	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &Formatter{}
	return l
}

// Init initializes the file logger
func Init(cfg config.LogConfig) error {
	logDir := cfg.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, ".fight-the-landlord")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	logPath = filepath.Join(logDir, "debug.log")
	f, err := openLogFile(logDir)
	if err != nil {
		return err
	}
	logFile = f

	log = newLogger(f, level)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// openLogFile opens debug.log, rotating it first if it is too large
func openLogFile(logDir string) (*os.File, error) {
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Close closes the log file and falls back to stderr
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	log = newLogger(os.Stderr, log.GetLevel())
}

// SetOutput redirects logging, mainly for tests
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...any) {
	log.Debugf(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	log.Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	log.Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r any) {
	log.Errorf("panic: %v\n%s", r, debug.Stack())
}

// WithTable returns an entry carrying the table id
func WithTable(tableID string) *logrus.Entry {
	return log.WithField("table", tableID)
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
