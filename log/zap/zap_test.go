package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/mackay"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	r3, err := mackay.NewRepetition(3, mackay.WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}
	r3.Decode([]bool{true, false})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.DebugLevel || e.LoggerName != "mackay" {
		t.Fatalf("entry = %+v", e)
	}
	fields := e.ContextMap()
	if fields["len"] != int64(2) || fields["n"] != int64(3) {
		t.Fatalf("fields = %v", fields)
	}
}

func TestZapFieldOrder(t *testing.T) {
	fs := zf(mackay.Fields{"b": 1, "a": 2, "c": 3})
	if len(fs) != 3 || fs[0].Key != "a" || fs[1].Key != "b" || fs[2].Key != "c" {
		t.Fatalf("fields = %v", fs)
	}
	if zf(nil) != nil {
		t.Fatalf("expected nil for empty fields")
	}
}
