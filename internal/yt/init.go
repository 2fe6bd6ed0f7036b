package yt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/config"
)

const defaultVersionTimeout = 5 * time.Second

// InitYtDlp initialise le client, vérifie le binaire et récupère la version.
func InitYtDlp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Interface, string, error) {
	dl := NewYtDlp(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, NewOptions(cfg.YtDlp.ShowWarnings))
	if logger != nil {
		dl.Logger = logger
	}
	dl.Logger.Debug("yt-dlp binary", "name", dl.Name, "path", dl.Path)

	if err := dl.CheckBinary(); err != nil {
		return nil, "", fmt.Errorf("yt-dlp introuvable : %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()
	version, err := dl.GetVersion(vctx)
	if err != nil {
		return dl, "", fmt.Errorf("échec récupération version yt-dlp : %w", err)
	}

	return dl, version, nil
}
