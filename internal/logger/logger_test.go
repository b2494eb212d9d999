package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLine captures one entry from l into a decoded JSON map.
func logLine(t *testing.T, l *Logger, msg string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg(msg)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	entry := logLine(t, NewLogger("vault-server"), "hello")

	assert.Equal(t, "vault-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func", "caller is recorded under the func field")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsParentFields(t *testing.T) {
	parent := NewLogger("inherited-role")
	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	entry := logLine(t, child, "child message")
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestFromContext(t *testing.T) {
	// without an attached logger the zerolog global is returned, never nil
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	l := FromContext(zl.WithContext(context.Background()))

	l.Info().Msg("from context")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)
}
