package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectMessages(t *testing.T, raw []byte) []string {
	t.Helper()
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		msgs = append(msgs, ev["message"].(string))
	}
	return msgs
}

func TestLineWriter_SplitsLines(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(zerolog.New(&buf), zerolog.DebugLevel)

	_, err := lw.Write([]byte("frame=10\nframe=20\n"))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	assert.Equal(t, []string{"frame=10", "frame=20"}, collectMessages(t, buf.Bytes()))
}

func TestLineWriter_BuffersPartialLines(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(zerolog.New(&buf), zerolog.DebugLevel)

	_, err := lw.Write([]byte("fra"))
	require.NoError(t, err)
	assert.Empty(t, buf.Bytes(), "partial line must not be emitted yet")

	_, err = lw.Write([]byte("me=10\ntail"))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	assert.Equal(t, []string{"frame=10", "tail"}, collectMessages(t, buf.Bytes()))
}

func TestLineWriter_SkipsEmptyLines(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(zerolog.New(&buf), zerolog.DebugLevel)

	_, err := lw.Write([]byte("\n\nonly\n\n"))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	assert.Equal(t, []string{"only"}, collectMessages(t, buf.Bytes()))
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestFileName(t *testing.T) {
	ts := mustParse(t, "2026-03-01T14:05:09Z")
	assert.Equal(t, "shortscutter-20260301-140509.log", FileName(ts))
}
