package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	config, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, "Validation", config.TreeName)
	assert.Equal(t, 1, config.NumWorkers)
	assert.True(t, config.WriteROOT)
	assert.Equal(t, "SNValidation", config.DBName)
}

func TestLoadConfigurationFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"file_in": "run_7.root", "tree_name": "Events", "num_workers": 4, "write_hdf5": false}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("VALIDATION_NUM_WORKERS", "2")
	t.Setenv("VALIDATION_DB_HOST", "db.example.org")

	config, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "run_7.root", config.FileIn)
	assert.Equal(t, "Events", config.TreeName)
	assert.Equal(t, 2, config.NumWorkers)
	assert.False(t, config.WriteHDF5)
	assert.True(t, config.WritePlots)
	assert.Equal(t, "db.example.org", config.Host)
}

func TestLoadConfigurationErrors(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadConfiguration(path)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := Logger{
		InfoLog:  slog.New(NewHandler(&buf, nil)),
		ErrorLog: slog.New(NewHandler(&buf, nil)),
	}
	l.Info("Processing c_calo_hits", "processor")
	l.Warn("skipping hit", "hits")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "[processor] Processing c_calo_hits")
	assert.NotContains(t, string(lines[0]), "module=")
	assert.Contains(t, string(lines[1]), "[WARN] [hits] skipping hit")
}

func TestHandlerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	log.Info("hidden", "module", "main")
	log.Error("shown", "module", "main")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[ERROR] [main] shown\n")
}

func TestHandlerBoundAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, nil)).With("run", "42").WithGroup("g")
	log.Info("Processing c_calo_hits", "module", "processor", slog.Group("hit", "id", "[1302:0.1.0.5.*]"))

	line := buf.String()
	assert.Contains(t, line, "[42] [processor] [[1302:0.1.0.5.*]] Processing c_calo_hits\n")
	assert.NotContains(t, line, "run=")
	assert.Regexp(t, `^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] `, line)
}
