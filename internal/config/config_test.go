package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/umlforge/internal/config"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "umlforge.yaml")
	content := "default_language: java\noutput_dir: build/diagrams\ndiagram_types: [class, sequence]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.DefaultLanguage)
	assert.Equal(t, "build/diagrams", cfg.OutputDir)
	assert.Equal(t, []string{"class", "sequence"}, cfg.DiagramTypes)
}
