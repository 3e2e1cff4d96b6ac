package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	return NewZapLoggerFrom(zap.New(core)), logs
}

func TestZapLoggerFields(t *testing.T) {
	l, logs := newObserved(t)

	l.WithFields(Fields{"component": "mask"}).Warn("decay clamped", Fields{"regions": 3})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(entries))
	}

	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Fatalf("level=%v, want warn", e.Level)
	}

	if e.Message != "decay clamped" {
		t.Fatalf("message=%q", e.Message)
	}

	ctx := e.ContextMap()
	if ctx["component"] != "mask" {
		t.Fatalf("component=%v", ctx["component"])
	}

	if ctx["regions"] != int64(3) {
		t.Fatalf("regions=%v (%T)", ctx["regions"], ctx["regions"])
	}
}

func TestZapLoggerError(t *testing.T) {
	l, logs := newObserved(t)

	l.Error(errors.New("boom"), "save failed")

	entries := logs.FilterMessage("save failed").All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(entries))
	}

	if entries[0].ContextMap()["error"] != "boom" {
		t.Fatalf("error field=%v", entries[0].ContextMap()["error"])
	}
}

func TestWithFieldsDoesNotLeak(t *testing.T) {
	l, logs := newObserved(t)

	_ = l.WithFields(Fields{"segment": 1})
	l.Info("plain")

	if _, ok := logs.All()[0].ContextMap()["segment"]; ok {
		t.Fatal("fields of derived logger leaked into parent")
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	l, logs := newObserved(t)
	SetGlobalLogger(l)

	Info("hello", Fields{"n": 2})

	if logs.Len() != 1 {
		t.Fatalf("entries=%d, want 1", logs.Len())
	}

	SetGlobalLogger(nil)

	if _, ok := GetGlobalLogger().(NoOpLogger); !ok {
		t.Fatalf("nil logger should install NoOpLogger, got %T", GetGlobalLogger())
	}
}

func TestLevelString(t *testing.T) {
	if WarnLevel.String() != "WARN" || Level(42).String() != "UNKNOWN" {
		t.Fatal("unexpected level names")
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
