package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/vttscribe/internal/app"
	"github.com/patrickprogramme/vttscribe/internal/clipboard"
	"github.com/patrickprogramme/vttscribe/internal/config"
	"github.com/patrickprogramme/vttscribe/internal/logging"
	"github.com/patrickprogramme/vttscribe/internal/ui"
	"github.com/patrickprogramme/vttscribe/internal/yt"
)

const defaultConfigName = "vttscribe.yaml"

type commandContext struct {
	configFlag   string
	logLevelFlag string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error

	// remplaçables dans les tests
	releaseURL string // vide => updater.LatestReleaseURL
	initYT     func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (yt.Interface, string, error)
}

func newCommandContext() *commandContext {
	return &commandContext{initYT: yt.InitYtDlp}
}

// ensureConfig charge la config (une seule fois) et construit le logger.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = fmt.Errorf("config load: %w", err)
			return
		}
		if lvl := strings.TrimSpace(c.logLevelFlag); lvl != "" {
			cfg.Log.Level = lvl
		}

		logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
		if err != nil {
			c.configErr = err
			return
		}
		if cfg.Created() {
			logger.Info("created default config", "path", cfg.Path())
		}
		if from, backup, ok := cfg.Upgrade(); ok {
			logger.Info("config upgraded", "from", from, "to", config.CurrentConfigVersion, "backup", backup)
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

// configPath : flag, sinon vttscribe.yaml à côté de l'exécutable.
func (c *commandContext) configPath() string {
	if p := strings.TrimSpace(c.configFlag); p != "" {
		return p
	}
	exePath, err := os.Executable()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(filepath.Dir(exePath), defaultConfigName)
}

// newApp construit l'application ; withYT initialise yt-dlp (binaire + version).
func (c *commandContext) newApp(cmd *cobra.Command, withYT bool) (*app.App, ui.Interface, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	term := ui.NewTerminalWith(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), clipboard.ReadAll)

	var client yt.Interface
	var version string
	if withYT {
		warnings, err := cfg.ValidateYtDlpPresence()
		if err != nil {
			return nil, nil, err
		}
		for _, w := range warnings {
			c.logger.Warn(w)
		}

		dl, v, err := c.initYT(cmd.Context(), cfg, c.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("yt init: %w", err)
		}
		c.logger.Debug("yt-dlp ready", "version", v)
		client, version = dl, v
	}

	a := app.New(cfg, term, client, nil, c.logger)
	if withYT && cfg.YtDlp.UpdateCheck {
		if err := a.YtDlpUpdateCheck(cmd.Context(), "", version); err != nil {
			c.logger.Warn("yt-dlp update check failed", "error", err)
		}
	}
	return a, term, nil
}

// urlArg : argument positionnel, sinon presse-papier puis saisie.
func urlArg(cmd *cobra.Command, args []string, term ui.Interface, prompt string, accept func(string) bool) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	return term.GetURL(cmd.Context(), prompt, accept)
}
