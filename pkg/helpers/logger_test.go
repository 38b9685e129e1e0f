package helpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "portal", "production")

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "portal", line["app"])
	assert.Equal(t, "logger initialized", line["msg"])
}

func TestNewLogger_DevelopmentIsText(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "portal", "development")

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.Contains(t, buf.String(), `msg="logger initialized"`)
}
