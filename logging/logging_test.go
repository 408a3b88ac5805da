package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelWarn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, FormatJSON)

	logger.Debug("hidden")
	logger.Info("converted", "doc", "wsj_0001")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "wsj_0001", entry["doc"])

	_, err := time.Parse(time.RFC3339, entry["time"].(string))
	assert.NoError(t, err)
}

func TestNewTextLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, FormatText)

	logger.Info("quiet")
	assert.Zero(t, buf.Len())

	logger.Warn("missing rule log", "file", "all.txt.new")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "file=all.txt.new")
}
