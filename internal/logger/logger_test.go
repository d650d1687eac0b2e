package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user", "u1", "Password", "hunter2", "api_token", "x", "dangling"})
	assert.Equal(t, []interface{}{"user", "u1", "Password", "[redacted]", "api_token", "[redacted]", "dangling"}, out)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "auth").Info("login rejected", "chat", 42, "secret", "s3")

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "login rejected", entries[0].Message)
	assert.Equal(t, "auth", fields["component"])
	assert.EqualValues(t, 42, fields["chat"])
	assert.Equal(t, "[redacted]", fields["secret"])
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
	Nop().Info("discarded")
}
