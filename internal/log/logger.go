package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"orbiter/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  atomic.Pointer[Logger]
)

func init() {
	logger.Store(NewLogger())
}

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type settings struct {
	out  io.Writer
	json bool
	file string
}

// Option configures a Logger.
type Option func(*settings)

// WithOutput sends log output to w.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithJSON switches to the JSON formatter.
func WithJSON() Option {
	return func(s *settings) { s.json = true }
}

// WithFile appends log output to the file at path, creating parent
// directories as needed. It takes precedence over WithOutput.
func WithFile(path string) Option {
	return func(s *settings) { s.file = path }
}

// Logger wraps a logrus entry so callers can chain fields.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates a logger writing to stderr unless configured otherwise.
func NewLogger(opts ...Option) *Logger {
	s := settings{out: os.Stderr}
	for _, opt := range opts {
		opt(&s)
	}

	l := &Logger{}
	if s.file != "" {
		if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err == nil {
			if f, err := os.OpenFile(s.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				l.file = f
				s.out = f
			}
		}
	}

	base := logrus.New()
	base.SetOutput(s.out)
	// Level gating for debug happens in Debug/Debugf so SetDebug applies
	// to loggers that already exist.
	base.SetLevel(logrus.DebugLevel)
	base.SetReportCaller(true)
	if s.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyFunc: "caller",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.entry = logrus.NewEntry(base)
	return l
}

// SetDebug turns debug output on or off for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// Configure replaces the package logger. It is safe to call while other
// goroutines are logging.
func Configure(opts ...Option) {
	old := logger.Swap(NewLogger(opts...))
	if old != nil {
		_ = old.Close()
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// With returns a child logger carrying fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

// WithContext attaches ctx to subsequent entries.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx)}
}

func (l *Logger) Info(msg string)                          { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                          { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                         { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs msg only when debug output is enabled
func (l *Logger) Debug(msg string) {
	if isDebug.Load() {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug output is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.entry.Debugf(format, args...)
	}
}

// Info logs an informational message on the package logger
func Info(msg string) { logger.Load().Info(msg) }

// Infof logs a formatted informational message
func Infof(format string, args ...interface{}) { logger.Load().Infof(format, args...) }

// Debug logs a debug message
func Debug(msg string) { logger.Load().Debug(msg) }

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) { logger.Load().Debugf(format, args...) }

// Warn logs a warning message
func Warn(msg string) { logger.Load().Warn(msg) }

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) { logger.Load().Warnf(format, args...) }

// Error logs an error message
func Error(msg string) { logger.Load().Error(msg) }

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) { logger.Load().Errorf(format, args...) }

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.Load().With(fields...)
}

// LogWithError returns the package logger with err and, for application
// errors, its kind and context attached.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.Load().With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error())}

	var appErr *errors.ApplicationError
	var configErr *errors.ConfigError
	var contentErr *errors.ContentError
	var subErr *errors.SubmissionError
	switch {
	case errors.As(err, &configErr):
		fields = append(fields, F("error_kind", int(configErr.Kind())), F("param", configErr.Param()))
	case errors.As(err, &contentErr):
		fields = append(fields, F("error_kind", int(contentErr.Kind())), F("source", contentErr.Source()))
	case errors.As(err, &subErr):
		fields = append(fields, F("error_kind", int(subErr.Kind())))
		for name, msg := range subErr.Fields {
			fields = append(fields, F("field."+name, msg))
		}
	case errors.As(err, &appErr):
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}

	return logger.Load().With(fields...)
}
