package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/mackay"
)

var _ mackay.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New returns a LogrusLogger tagging every entry with component=mackay.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "mackay")}
}

func (l LogrusLogger) Debug(msg string, f mackay.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f mackay.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f mackay.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f mackay.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
