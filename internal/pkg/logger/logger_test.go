package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "test", entry["component"])
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	Info().Msg("dropped")
	require.Zero(t, buf.Len())

	Warn().Msg("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestCtx_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	ctx := WithRequestID(context.Background(), "req-42")
	Ctx(ctx).Info().Msg("scoped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "req-42", entry["request_id"])
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	require.NotNil(t, Ctx(context.Background()))
}
