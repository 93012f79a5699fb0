package zap

import (
	"sort"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/mackay"
)

var _ mackay.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New returns a ZapLogger writing under the "mackay" logger name.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("mackay")} }

func (z ZapLogger) Debug(msg string, f mackay.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f mackay.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f mackay.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f mackay.Fields) { z.L.Error(msg, zf(f)...) }

// zf converts fields in key order so encoded lines are stable.
func zf(f mackay.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
