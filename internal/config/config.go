package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/vttscribe/internal/assets"
	"github.com/patrickprogramme/vttscribe/internal/bootstrap"
)

const CurrentConfigVersion = 2

const (
	defaultCombinedFilename = "all_subtitles.txt"
	defaultMaxVideos        = 3
	defaultWorkers          = 2
	defaultSubLang          = "en"
	maxWorkers              = 16
)

// LogConfig : paramètres du logger (voir internal/logging)
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console, json ou auto
}

// YtDlpConfig : emplacement et options du binaire yt-dlp
type YtDlpConfig struct {
	Name         string `yaml:"name"`
	Path         string `yaml:"path"`
	ShowWarnings bool   `yaml:"show_warnings"`
	UpdateCheck  bool   `yaml:"update_check"` // compare la version locale à la dernière release GitHub

	// ResolvedPath contient le chemin effectif vers l'exécutable
	ResolvedPath string `yaml:"-"`
}

// struct pour les paramètres de configuration
type Config struct {
	// Sortie
	OutputDir        string `yaml:"output_dir"`
	CombinedFilename string `yaml:"combined_filename"`
	SaveTranscripts  bool   `yaml:"save_transcripts"` // un .txt par vidéo en plus du fichier combiné
	KeepVTT          bool   `yaml:"keep_vtt"`         // conserve la piste vtt brute (<id>.<lang>.vtt)

	// Chaîne
	MaxVideos int `yaml:"max_videos"` // 0 => toutes les vidéos
	Workers   int `yaml:"workers"`

	// Sous-titres
	SubLang          string `yaml:"sub_lang"`
	PreferManualSubs bool   `yaml:"prefer_manual_subs"`

	// Conversion : strict => une erreur de conversion est remontée au lieu
	// d'être journalisée avec un transcript vide
	Strict bool `yaml:"strict"`

	CopyToClipboard bool `yaml:"copy_to_clipboard"`

	Log   LogConfig   `yaml:"log"`
	YtDlp YtDlpConfig `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
	created        bool
	upgradedFrom   int    // version avant migration
	backupPath     string // sauvegarde faite avant migration, vide sinon
}

// Default retourne la configuration par défaut
// (fallback si l'asset embarqué est manquant, et base du Unmarshal).
func Default() *Config {
	c := &Config{}

	c.OutputDir = "subtitles"
	c.CombinedFilename = defaultCombinedFilename
	c.SaveTranscripts = false
	c.KeepVTT = false

	c.MaxVideos = defaultMaxVideos
	c.Workers = defaultWorkers

	c.SubLang = defaultSubLang
	c.PreferManualSubs = true

	c.Strict = false
	c.CopyToClipboard = false

	c.Log.Level = "info"
	c.Log.Format = "auto"

	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.UpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "vttscribe.yaml"
	}

	created, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path
	cfg.created = created

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	return cfg, nil
}

// Parse déserialise data par-dessus Default() : les champs absents
// conservent les valeurs par défaut. Pas d'I/O.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// un fichier sans config_version est antérieur au versioning
	cfg.ConfigVersion = 0

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalizeConfig()
	return cfg, nil
}

// Created indique si Load vient de créer le fichier depuis l'exemple embarqué.
func (c *Config) Created() bool {
	return c.created
}

// Upgrade retourne la version d'origine et la sauvegarde si Load a migré le fichier.
func (c *Config) Upgrade() (from int, backup string, ok bool) {
	return c.upgradedFrom, c.backupPath, c.backupPath != ""
}

// Path retourne le chemin du fichier d'où la config a été chargée.
func (c *Config) Path() string {
	return c.configFilePath
}

// CombinedPath retourne le chemin du fichier combiné de la chaîne.
func (c *Config) CombinedPath() string {
	return filepath.Join(c.OutputDir, c.CombinedFilename)
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// le fichier combiné reste dans OutputDir : on ne garde que le nom
	c.CombinedFilename = filepath.Base(strings.TrimSpace(c.CombinedFilename))
	if c.CombinedFilename == "" || c.CombinedFilename == "." || c.CombinedFilename == string(filepath.Separator) {
		c.CombinedFilename = defaultCombinedFilename
	}

	if c.MaxVideos < 0 {
		c.MaxVideos = 0
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Workers > maxWorkers {
		c.Workers = maxWorkers
	}

	c.SubLang = strings.TrimSpace(c.SubLang)
	if c.SubLang == "" {
		c.SubLang = defaultSubLang
	}

	c.Log.Level = strings.TrimSpace(strings.ToLower(c.Log.Level))
	c.Log.Format = strings.TrimSpace(strings.ToLower(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}

	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
// Sans chemin configuré, ResolvedPath reste vide : le binaire est cherché dans le PATH.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
