package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dotse/slug"
	sentryslog "github.com/getsentry/sentry-go/slog"
	slogmulti "github.com/samber/slog-multi"
)

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

func ToSlogLevel(level Level) slog.Level {
	switch Level(strings.ToLower(string(level))) {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Options configures MustCreateLogger.
type Options struct {
	Level Level
	// File receives log output instead of stderr when set.
	File string
	// SentryDSN enables forwarding of log records to sentry.
	SentryDSN string
	Version   string
}

// MustCreateLogger installs the default slog logger and returns a closer releasing the log file and flushing
// sentry. It panics when the log file or sentry client cannot be created.
func MustCreateLogger(ctx context.Context, opts Options) func() {
	closers := []func(){}

	handlerOpts := slug.HandlerOptions{
		HandlerOptions: slog.HandlerOptions{
			Level: ToSlogLevel(opts.Level),
		},
	}

	var handlers []slog.Handler

	if opts.SentryDSN != "" {
		flush, errSentry := NewSentryClient(opts.SentryDSN, opts.Version)
		if errSentry != nil {
			panic(fmt.Sprintf("Failed to setup sentry: %v", errSentry))
		}

		closers = append(closers, flush)
		handlers = append(handlers, sentryslog.Option{
			Level:     slog.LevelWarn,
			AddSource: true,
		}.NewSentryHandler(ctx))
	}

	if opts.File != "" {
		logFile, errLogFile := os.Create(opts.File)
		if errLogFile != nil {
			panic(fmt.Sprintf("Failed to open logfile: %v", errLogFile))
		}

		closers = append(closers, func() {
			if errClose := logFile.Close(); errClose != nil {
				panic(fmt.Sprintf("Failed to close log file: %v", errClose))
			}
		})

		handlers = append(handlers, slug.NewHandler(handlerOpts, logFile))
	} else {
		// stdout is reserved for command output.
		handlers = append(handlers, slug.NewHandler(handlerOpts, os.Stderr))
	}

	defaultLogger := slog.New(slogmulti.Fanout(handlers...))

	if opts.Version != "" {
		defaultLogger = defaultLogger.With("release", opts.Version)
	}

	slog.SetDefault(defaultLogger)

	return func() {
		for _, closer := range closers {
			closer()
		}
	}
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("reason", err)
}

func Closer(closer io.Closer) {
	if errClose := closer.Close(); errClose != nil {
		slog.Error("Failed to close", ErrAttr(errClose))
	}
}
