// Package errutil reports errors at the top of the dashboard binary.
package errutil

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Check exits through the standard logger when err is non-nil.
func Check(err error) {
	CheckWithContext(err, "")
}

// CheckWithContext exits through the standard logger when err is non-nil,
// prefixing the message with context. The root cause is logged as a field
// and the full stack of wrapped errors at debug level.
func CheckWithContext(err error, context string) {
	if err == nil {
		return
	}
	entry(err).Debugf("%+v", err)
	entry(err).Fatal(describe(err, context))
}

// Warn logs non-nil error with context and reports whether it was logged.
func Warn(err error, context string) bool {
	if err == nil {
		return false
	}
	entry(err).Debugf("%+v", err)
	entry(err).Warn(describe(err, context))
	return true
}

func entry(err error) *logrus.Entry {
	return logrus.WithField("cause", errors.Cause(err).Error())
}

func describe(err error, context string) string {
	if context == "" {
		return err.Error()
	}
	return context + ": " + err.Error()
}
