// Except.go: Contains functions to make handling panics less PITA

package helpers

import (
	"fmt"
	"runtime"

	"github.com/getsentry/raven-go"
	"github.com/hemna/aprsd-twitter-plugin/cache"
	"github.com/pkg/errors"
)

// DEBUG_MODE adds stack traces to recovered panics
var DEBUG_MODE = false

// SetupSentry points raven at $dsn. An empty dsn disables reporting.
func SetupSentry(dsn string, release string) error {
	if dsn == "" {
		return nil
	}
	err := raven.SetDSN(dsn)
	if err != nil {
		return errors.Wrap(err, "setting sentry dsn")
	}
	if release != "" {
		raven.SetRelease(release)
	}
	return nil
}

// Recover recover()s and logs the panic
func Recover() {
	err := recover()
	if err != nil {
		logPanic(err)
	}
}

func logPanic(err interface{}) {
	entry := cache.GetLogger().WithField("module", "helpers")
	if DEBUG_MODE {
		buf := make([]byte, 1<<16)
		stackSize := runtime.Stack(buf, false)
		entry = entry.WithField("stack", string(buf[0:stackSize]))
	}
	entry.Errorf("recovered from panic: %#v", err)

	raven.CaptureError(fmt.Errorf("%#v", err), map[string]string{})
}

// RelaxLog logs $err and sends it to sentry. No-op if $err is nil.
func RelaxLog(err error) {
	RelaxLogWithTags(err, map[string]string{})
}

func RelaxLogWithTags(err error, tags map[string]string) {
	if err == nil {
		return
	}

	cache.GetLogger().WithField("module", "helpers").Errorf("%+v", err)
	raven.CaptureError(err, tags)
}
