package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/fetch"
)

// LatestReleaseURL : API GitHub de la dernière release de yt-dlp.
const LatestReleaseURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

const maxReleaseBytes = 2_000_000

// Release : dernière release de yt-dlp et lien de ses exécutables par OS.
type Release struct {
	TagName     string
	Name        string
	PublishedAt time.Time
	HTMLURL     string
	Binaries    map[string]string // GOOS -> browser_download_url
}

// binaryOS : nom de l'asset GitHub -> GOOS
var binaryOS = map[string]string{
	"yt-dlp.exe":   "windows",
	"yt-dlp":       "linux",
	"yt-dlp_macos": "darwin",
}

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// GetLatestYtDlpRelease interroge releaseURL (LatestReleaseURL hors tests)
// et indexe les exécutables par OS.
func GetLatestYtDlpRelease(ctx context.Context, client *fetch.Client, releaseURL string) (*Release, error) {
	data, err := client.FetchBytes(ctx, releaseURL, 0, maxReleaseBytes)
	if err != nil {
		return nil, fmt.Errorf("requête GitHub: %w", err)
	}
	return parseRelease(data)
}

func parseRelease(data []byte) (*Release, error) {
	var raw rawRelease
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("décodage JSON: %w", err)
	}

	info := &Release{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		HTMLURL:     raw.HTMLURL,
		Binaries:    make(map[string]string, len(binaryOS)),
	}
	for _, a := range raw.Assets {
		if goos, ok := binaryOS[a.Name]; ok && a.BrowserDownloadURL != "" {
			info.Binaries[goos] = a.BrowserDownloadURL
		}
	}

	if info.TagName == "" {
		return nil, fmt.Errorf("release sans tag_name")
	}
	return info, nil
}
