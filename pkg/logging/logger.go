// Package logging provides structured, JSON line based logging.
// With logging, you can use a context to add logging details to your call stack.
package logging

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is the current operation system's line separator.
	Separator string
	// MarshalFunc is used to serialise the logging event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
	// TestingTB is used to mark logging methods as helper functions,
	// so when logging is used during testing, it points to the actual logging source in the test log entries.
	TestingTB testingTB

	outLock sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	l.tb().Helper()
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	_ = l.logTo(l.writer(), logEvent{
		Context:   ctx,
		Level:     level,
		Message:   msg,
		Details:   ds,
		Timestamp: clock.Now(),
	})
}

type logEvent struct {
	Context   context.Context
	Level     Level
	Message   string
	Timestamp time.Time
	Details   []Detail
}

func (l *Logger) logTo(out io.Writer, event logEvent) error {
	var (
		entry   = l.toLogEntry(event)
		bs, err = l.marshalFunc()(entry)
	)
	if err != nil {
		return err
	}
	_, err = out.Write(append(bs, []byte(l.separator())...))
	return err
}

type syncwriter struct {
	Writer io.Writer
	Locker sync.Locker
}

func (w *syncwriter) Write(p []byte) (n int, err error) {
	w.Locker.Lock()
	defer w.Locker.Unlock()
	return w.Writer.Write(p)
}

func (l *Logger) writer() io.Writer {
	var out io.Writer = os.Stdout
	if l.Out != nil {
		out = l.Out
	}
	return &syncwriter{
		Writer: out,
		Locker: &l.outLock,
	}
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
}

func (l *Logger) toLogEntry(event logEvent) entry {
	le := make(entry)
	for _, d := range getLoggingDetailsFromContext(event.Context) {
		d.addTo(l, le)
	}
	for _, d := range event.Details {
		if d != nil {
			d.addTo(l, le)
		}
	}
	le[coalesce(l.LevelKey, "level")] = event.Level
	le[coalesce(l.MessageKey, "message")] = event.Message
	le[coalesce(l.TimestampKey, "timestamp")] = event.Timestamp.Format(time.RFC3339)
	return le
}

func coalesce(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	switch os.PathSeparator {
	case '\\':
		return "\r\n"
	default:
		return "\n"
	}
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

func (l *Logger) Clone() *Logger {
	return &Logger{
		Out:          l.Out,
		Level:        l.Level,
		Separator:    l.Separator,
		MessageKey:   l.MessageKey,
		LevelKey:     l.LevelKey,
		TimestampKey: l.TimestampKey,
		MarshalFunc:  l.MarshalFunc,
		TestingTB:    l.TestingTB,
	}
}

type testingTB interface {
	Helper()
	Cleanup(func())
}

var fallbackTestingTB = (*nullTestingTB)(nil)

func (l *Logger) tb() testingTB {
	if l.TestingTB != nil {
		return l.TestingTB
	}
	return fallbackTestingTB
}

type nullTestingTB struct{}

func (*nullTestingTB) Helper() {}

func (*nullTestingTB) Cleanup(func()) {}
