package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_CreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vttscribe.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.FileExists(t, path)

	require.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)
	require.Equal(t, "subtitles", cfg.OutputDir)
	require.Equal(t, "all_subtitles.txt", cfg.CombinedFilename)
	require.Equal(t, 3, cfg.MaxVideos)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "en", cfg.SubLang)
	require.True(t, cfg.PreferManualSubs)
	require.Equal(t, "auto", cfg.Log.Format)
	require.Equal(t, path, cfg.Path())
	require.Equal(t, filepath.Join("subtitles", "all_subtitles.txt"), cfg.CombinedPath())
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
output_dir: out
max_videos: 10
workers: 100
sub_lang: " fr "
log:
  level: DEBUG
yt_dlp:
  path: /opt/tools
config_version: 2
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 10, cfg.MaxVideos)
	require.Equal(t, maxWorkers, cfg.Workers)
	require.Equal(t, "fr", cfg.SubLang)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "auto", cfg.Log.Format)
	// absent => défaut
	require.Equal(t, "all_subtitles.txt", cfg.CombinedFilename)
	require.True(t, strings.HasPrefix(cfg.YtDlp.Name, "yt-dlp"))
	require.Equal(t, filepath.Join("/opt/tools", cfg.YtDlp.Name), cfg.YtDlp.ResolvedPath)
}

func TestParse_Normalization(t *testing.T) {
	cfg, err := Parse([]byte("combined_filename: ../../etc/out.txt\nmax_videos: -4\nworkers: 0\noutput_dir: \"\"\n"))
	require.NoError(t, err)
	require.Equal(t, "out.txt", cfg.CombinedFilename)
	require.Equal(t, 0, cfg.MaxVideos)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, ".", cfg.OutputDir)
	require.Empty(t, cfg.YtDlp.ResolvedPath)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("workers: [1, 2"))
	require.Error(t, err)
}

func TestLoad_MigratesOldConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vttscribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: legacy\nconfig_version: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, "legacy", cfg.OutputDir)

	// le fichier réécrit porte la nouvelle version
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	require.Equal(t, CurrentConfigVersion, onDisk.ConfigVersion)

	// une sauvegarde existe à côté
	backups, err := filepath.Glob(path + ".bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)
}

func TestLoad_ReportsCreationAndUpgrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vttscribe.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Created())
	_, _, upgraded := cfg.Upgrade()
	require.False(t, upgraded)

	require.NoError(t, os.WriteFile(path, []byte("config_version: 1\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Created())
	from, backup, upgraded := cfg.Upgrade()
	require.True(t, upgraded)
	require.Equal(t, 1, from)
	require.FileExists(t, backup)
}
