package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/updater"
)

const defaultUpdateTimeout = 15 * time.Second

// YtDlpUpdateCheck compare version à la dernière release de yt-dlp et affiche le résultat.
// releaseURL vide => updater.LatestReleaseURL.
func (a *App) YtDlpUpdateCheck(ctx context.Context, releaseURL, version string) error {
	if releaseURL == "" {
		releaseURL = updater.LatestReleaseURL
	}
	uc, cancel := context.WithTimeout(ctx, defaultUpdateTimeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, a.fetch, releaseURL, version)
	if err != nil {
		return fmt.Errorf("vérification de mise à jour a échoué : %w", err)
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))
	return nil
}
