package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Fields map[string]interface{}

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetLevel accepts logrus level names ("debug", "info", ...). Unknown names
// are ignored.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		std.SetLevel(lvl)
	}
}

func entry(fields Fields) *logrus.Entry {
	return std.WithFields(logrus.Fields(fields))
}

// Debug logs a diagnostic message with optional fields.
func Debug(msg string, fields Fields) {
	entry(fields).Debug(msg)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	entry(fields).Info(msg)
}

// Warn logs a recoverable problem.
func Warn(msg string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Warn(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Fatal(msg)
}
