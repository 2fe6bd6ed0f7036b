// Package updater compare la version locale de yt-dlp à la dernière release GitHub.
package updater

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/vttscribe/internal/fetch"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string
	LatestRelease  *Release
	IsUpToDate     bool // CurrentVersion == LatestRelease.TagName
}

// CheckYtDlpUpdate compare la version locale et la version GitHub.
func CheckYtDlpUpdate(ctx context.Context, client *fetch.Client, releaseURL, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestYtDlpRelease(ctx, client, releaseURL)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     localVer == latest.TagName,
	}, nil
}

// GetUpdateLink retourne le lien de téléchargement pour l'OS donné (GOOS),
// ou la page de la release si aucun exécutable ne correspond.
func (u UpdateCheck) GetUpdateLink(system string) string {
	if link, ok := u.LatestRelease.Binaries[system]; ok {
		return link
	}
	return u.LatestRelease.HTMLURL
}
