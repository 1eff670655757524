package logging

import (
	"bytes"
	"context"
	"sync"
)

// Default is the package level logger.
// Its level is taken from the LOG_LEVEL environment variable when set.
var Default = &Logger{Level: levelFromEnv()}

func Debug(ctx context.Context, msg string, ds ...Detail) {
	Default.Debug(ctx, msg, ds...)
}

func Info(ctx context.Context, msg string, ds ...Detail) {
	Default.Info(ctx, msg, ds...)
}

func Warn(ctx context.Context, msg string, ds ...Detail) {
	Default.Warn(ctx, msg, ds...)
}

func Error(ctx context.Context, msg string, ds ...Detail) {
	Default.Error(ctx, msg, ds...)
}

// Stub replaces Default with a debug level logger that writes into the returned output.
// Default is restored at the end of the test.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	og := Default
	tb.Cleanup(func() { Default = og })
	buf := &stubOutput{}
	Default = &Logger{
		TestingTB: tb,
		Level:     LevelDebug,
		Out:       buf,
	}
	return Default, buf
}

type StubOutput interface {
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return bytes.Clone(o.buf.Bytes())
}
