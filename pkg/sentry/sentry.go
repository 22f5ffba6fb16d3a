// Package sentry configures the global sentry hub step errors are reported to.
package sentry

import (
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"
)

func Initialize(c *Config) error {
	options := sentry.ClientOptions{}

	if c.Enabled {
		glog.Infof("Sentry error reporting enabled to %s on project %s", c.URL, c.Project)
		options.Dsn = fmt.Sprintf("https://%s@%s/%s", c.Key, c.URL, c.Project)
	} else {
		// an empty DSN disables sentry
		glog.Infof("Disabling Sentry error reporting")
		options.Dsn = ""
	}

	options.Transport = &sentry.HTTPTransport{
		Timeout: c.Timeout,
	}
	options.Debug = c.Debug
	options.AttachStacktrace = true
	options.Environment = c.Environment
	options.Release = c.Release

	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		options.ServerName = hostname
	}

	if err := sentry.Init(options); err != nil {
		glog.Errorf("Unable to initialize sentry integration: %s", err.Error())
		return err
	}
	return nil
}

// Flush waits for buffered events to be sent, up to timeout.
func Flush(timeout time.Duration) {
	if !sentry.Flush(timeout) {
		glog.Warningf("Not all sentry events were sent within %s", timeout)
	}
}
