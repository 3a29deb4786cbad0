package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	defer Setup("info", nil)

	Setup("debug", &bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	WithContext(ctx).WithField("project_id", 7).Info("project created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, float64(7), entry["project_id"])
	assert.Equal(t, "project created", entry["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	WithContext(context.Background()).Warn("delete rejected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["request_id"]
	assert.False(t, ok)
	assert.Equal(t, "warning", entry["level"])
}
