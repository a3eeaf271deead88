package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pre-lang/go-pre/internal/config"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.WithField("file", "a.pre").Info("converted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "a.pre", entry["file"])
}

func TestNewErrors(t *testing.T) {
	_, err := New(config.LogConfig{Level: "nope", Format: "text"}, nil)
	assert.ErrorContains(t, err, "log level")

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, nil)
	assert.ErrorContains(t, err, "unknown log format")
}

func TestTimed(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)

	require.NoError(t, Timed(log, true, "parse", func() error { return nil }))
	assert.Contains(t, buf.String(), "phase=parse")
	assert.Contains(t, buf.String(), "took=")

	buf.Reset()
	boom := errors.New("boom")
	assert.Equal(t, boom, Timed(log, false, "render", func() error { return boom }))
	assert.Empty(t, buf.String())
}
