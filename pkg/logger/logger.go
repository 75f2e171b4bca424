package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is used by every log line of the dashboard.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Initialize configures the standard logrus logger for the application.
func Initialize(appName string, level logrus.Level, out io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})
	logrus.SetLevel(level)
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.Debugf("Logging for %s initialized at level %s", appName, level)
}

// ForRequest returns entry tagged with request identity, used by the HTTP layers.
func ForRequest(requestID, method, path string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})
}
