package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		" INFO ":  Info,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "dog-breeds", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "abc"}).Error("boom", map[string]any{
		"err":  errors.New("upstream down"),
		"code": 500,
		"":     "ignored",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "dog-breeds", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "upstream down", entry["err"])
	assert.EqualValues(t, 500, entry["code"])
	assert.NotContains(t, entry, "")
}

func TestFromContext_FallsBackToNop(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Info("nothing happens", nil)

	var buf bytes.Buffer
	custom := New(Options{Format: FormatJSON, Output: &buf})
	ctx := NewContext(context.Background(), custom)
	FromContext(ctx).Info("hello", nil)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
