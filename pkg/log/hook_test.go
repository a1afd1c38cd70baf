package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func newTestEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{name: "Error", level: ErrorLevel, wantMain: true, wantCritical: true},
		{name: "Warn", level: WarnLevel, wantMain: true},
		{name: "Info", level: InfoLevel, wantMain: true},
		{name: "Debug", level: DebugLevel, wantVerbose: true},
		{name: "Trace", level: TraceLevel, wantVerbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mainBuf, criticalBuf, verboseBuf, consoleBuf bytes.Buffer
			h := &hook{
				mainWriter:     &mainBuf,
				criticalWriter: &criticalBuf,
				verboseWriter:  &verboseBuf,
				consoleWriter:  &consoleBuf,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}

			require.NoError(t, h.Fire(newTestEntry(tt.level, "hello")))

			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0)
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0)
			assert.Contains(t, consoleBuf.String(), "hello")
		})
	}
}

func TestHook_Fire_WriteFailure(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: failingWriter{},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	err := h.Fire(newTestEntry(ErrorLevel, "boom"))
	require.Error(t, err)
	assert.Contains(t, mainBuf.String(), "boom", "Critical 쓰기가 실패해도 Main 로그는 기록되어야 합니다")
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	var mainBuf bytes.Buffer
	h := &hook{mainWriter: &mainBuf, formatter: &logrus.TextFormatter{}}

	require.NoError(t, h.Close())
	require.NoError(t, h.Fire(newTestEntry(InfoLevel, "ignored")))
	assert.Zero(t, mainBuf.Len())
}
