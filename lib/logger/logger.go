// Package logger wraps Stackdriver logging behind the handful of calls the
// combatmagic services actually make, with a plain standard-library fallback
// so binaries can run outside of GCP.
package logger

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"

	"cloud.google.com/go/logging"
)

// Logger writes structured entries to Stackdriver and, when debugging or
// running local, mirrors them to the standard logger.
type Logger struct {
	client      *logging.Client
	sdlogger    *logging.Logger
	httpRequest *logging.HTTPRequest
	opts        *loggerOptions
}

type loggerOptions struct {
	defaultSeverity logging.Severity
	debug           bool
	local           bool
	logName         string
	prefix          string
}

// LoggerOption configures a Logger at construction time.
type LoggerOption func(*loggerOptions)

// WithDefaultSeverity sets the minimum severity an entry needs to be sent.
func WithDefaultSeverity(s logging.Severity) LoggerOption {
	return func(o *loggerOptions) { o.defaultSeverity = s }
}

// WithDebug mirrors all entries to the standard logger and drops the
// severity floor to Debug.
func WithDebug(debug bool) LoggerOption {
	return func(o *loggerOptions) { o.debug = debug }
}

// WithLocal skips the Stackdriver client entirely; entries go to the
// standard logger only. For CLIs and tests with no GCP credentials.
func WithLocal(local bool) LoggerOption {
	return func(o *loggerOptions) { o.local = local }
}

// WithLogName sets the Stackdriver log name.
func WithLogName(name string) LoggerOption {
	return func(o *loggerOptions) { o.logName = name }
}

// WithPrefix prepends a fixed prefix to every payload. Used to tag entries
// with the pod name.
func WithPrefix(prefix string) LoggerOption {
	return func(o *loggerOptions) { o.prefix = prefix }
}

// New creates a Logger for the given project. If the Stackdriver client
// cannot be created the logger degrades to the standard logger rather than
// failing the process.
func New(projectID string, options ...LoggerOption) *Logger {
	opts := &loggerOptions{
		defaultSeverity: logging.Info,
		logName:         "combatmagic",
	}
	for _, o := range options {
		o(opts)
	}
	logger := &Logger{opts: opts}
	if opts.local {
		return logger
	}
	client, err := logging.NewClient(context.Background(), projectID)
	if err != nil {
		stdlog.Printf("could not create logging client, falling back to stdlog: %v", err)
		return logger
	}
	logger.client = client
	logger.sdlogger = client.Logger(opts.logName)
	return logger
}

// WithRequest returns a shallow copy of the logger with an http request
// attached to every subsequent entry.
func (logger *Logger) WithRequest(r *http.Request) *Logger {
	logger2 := new(Logger)
	*logger2 = *logger
	logger2.httpRequest = &logging.HTTPRequest{Request: r}
	return logger2
}

func (logger *Logger) log(severity logging.Severity, message interface{}) {
	if severity < logger.opts.defaultSeverity && !logger.opts.debug {
		return
	}
	payload := message
	if logger.opts.prefix != "" {
		payload = fmt.Sprintf("%s%v", logger.opts.prefix, message)
	}
	if logger.sdlogger == nil || logger.opts.debug {
		stdlog.Printf("%s: %v", severity, payload)
	}
	if logger.sdlogger != nil {
		logger.sdlogger.Log(logging.Entry{
			Payload:     payload,
			Severity:    severity,
			HTTPRequest: logger.httpRequest,
		})
	}
}

// Debug logs a message at Debug severity.
func (logger *Logger) Debug(message interface{}) { logger.log(logging.Debug, message) }

// Info logs a message at Info severity.
func (logger *Logger) Info(message interface{}) { logger.log(logging.Info, message) }

// Error logs a message at Error severity.
func (logger *Logger) Error(message interface{}) { logger.log(logging.Error, message) }

// Critical logs a message at Critical severity.
func (logger *Logger) Critical(message interface{}) { logger.log(logging.Critical, message) }

// Debugf logs a formatted message at Debug severity.
func (logger *Logger) Debugf(format string, a ...interface{}) {
	logger.Debug(fmt.Sprintf(format, a...))
}

// Infof logs a formatted message at Info severity.
func (logger *Logger) Infof(format string, a ...interface{}) {
	logger.Info(fmt.Sprintf(format, a...))
}

// Errorf logs a formatted message at Error severity.
func (logger *Logger) Errorf(format string, a ...interface{}) {
	logger.Error(fmt.Sprintf(format, a...))
}

// Criticalf logs a formatted message at Critical severity.
func (logger *Logger) Criticalf(format string, a ...interface{}) {
	logger.Critical(fmt.Sprintf(format, a...))
}

// Fatalf logs a formatted message at Critical severity, flushes, and exits.
func (logger *Logger) Fatalf(format string, a ...interface{}) {
	logger.Critical(fmt.Sprintf(format, a...))
	logger.Close()
	stdlog.Fatalf(format, a...)
}

// Close flushes and closes the underlying client.
func (logger *Logger) Close() {
	if logger.client != nil {
		logger.client.Close()
	}
}

// Printf writes to the standard logger. For messages that must surface even
// when the structured logger is broken.
func Printf(format string, v ...interface{}) { stdlog.Printf(format, v...) }

// Println writes to the standard logger.
func Println(v ...interface{}) { stdlog.Println(v...) }

// Fatalf writes to the standard logger and exits.
func Fatalf(format string, v ...interface{}) { stdlog.Fatalf(format, v...) }
