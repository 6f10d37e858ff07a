package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts.UTC()
}

func TestSetup_FileSink(t *testing.T) {
	dir := t.TempDir()

	log, path := Setup(Config{
		Level:  "debug",
		Format: "json",
		Dir:    dir,
		RunID:  "01TESTRUNID000000000000000",
	})

	require.NotEmpty(t, path)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "shortscutter-"))
	assert.True(t, strings.HasSuffix(path, ".log"))

	log.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id":"01TESTRUNID000000000000000"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestSetup_NoFile(t *testing.T) {
	_, path := Setup(Config{Level: "info", Dir: t.TempDir(), NoFile: true})
	assert.Empty(t, path)
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	log, _ := Setup(Config{Level: "shout", NoFile: true})
	assert.Equal(t, "info", log.GetLevel().String())
}
