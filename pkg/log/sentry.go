package log

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
)

var ErrClientInit = errors.New("failed to initialize sentry client")

const sentryFlushTimeout = 2 * time.Second

// NewSentryClient binds a sentry client to the current hub and returns a func flushing buffered events.
func NewSentryClient(dsn string, buildVersion string) (func(), error) {
	hub := sentry.CurrentHub()

	client, errClient := sentry.NewClient(sentry.ClientOptions{
		Dsn:        dsn,
		SampleRate: 1.0,
		Release:    buildVersion,
	})
	if errClient != nil {
		return nil, errors.Join(errClient, ErrClientInit)
	}

	hub.BindClient(client)

	return func() {
		client.Flush(sentryFlushTimeout)
	}, nil
}
