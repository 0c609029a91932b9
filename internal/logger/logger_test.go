package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	defer Init("test")

	ctx := WithJobID(WithUserID(WithRequestID(context.Background(), "req-1"), "user-7"), "job-1")
	CtxInfo(ctx, "ranking requested")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ranking requested", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.Equal(t, "job-1", entry["job_id"])
}

func TestFromContext_EmptyContext(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	defer Init("test")

	FromContext(context.Background()).Info("plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "user_id")
}
