package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "storage:\n  type: local\n  local_path: "+filepath.Join(t.TempDir(), "data")+"\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 0.6, cfg.Analysis.QuizWeight)
	assert.Equal(t, 0.4, cfg.Analysis.AttendanceWeight)
	assert.Equal(t, "student_performance.csv", cfg.Dataset.Object)
	assert.Contains(t, cfg.Dataset.DefaultSubjects, "Mathematics")
	assert.Equal(t, 60, cfg.Redis.SnapshotTTLMinutes)
	assert.Equal(t, "logs/learning-assistant.log", cfg.Log.File)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Console)
	assert.DirExists(t, cfg.Storage.LocalPath)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "server:\n  mode: debug\nstorage:\n  local_path: "+t.TempDir()+"\n")
	t.Setenv("SERVER_MODE", "release")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown storage", "storage:\n  type: ftp\n"},
		{"minio without bucket", "storage:\n  type: minio\n  minio_bucket: \"\"\n"},
		{"zero weights", "analysis:\n  quiz_weight: 0\n  attendance_weight: 0\n"},
		{"negative weight", "analysis:\n  subject_weight: -1\n"},
		{"negative log rotation", "log:\n  max_backups: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
