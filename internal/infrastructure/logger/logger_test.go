package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(WithWriter(&buf), WithMinLevel(LevelWarn))

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("Blocked by CORS: %s", "https://evil.com")
	l.Errorf("boom")

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] Blocked by CORS: https://evil.com")
	assert.Contains(t, out, "[ERROR] boom")
}

func TestStdLogger_Fatalf(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	l := NewStdLogger(WithWriter(&buf), WithMinLevel(LevelError)).(*StdLogger)
	l.exitf = func(c int) { code = c }

	l.Fatalf("cannot start: %s", "port in use")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[FATAL] cannot start: port in use")
}

func TestLevelForEnv(t *testing.T) {
	assert.Equal(t, LevelDebug, LevelForEnv("development"))
	assert.Equal(t, LevelInfo, LevelForEnv("production"))
}
