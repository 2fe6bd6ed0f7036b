package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/logging"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

// NewYtDlp construit une instance. resolvedPath vide => le nom est cherché dans le PATH.
func NewYtDlp(name, resolvedPath string, opts Options) *YtDlp {
	return &YtDlp{
		Name:    name,
		Path:    resolvedPath,
		Options: opts,
		Logger:  logging.Discard(),
	}
}

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// CheckBinary vérifie que le binaire existe : via le PATH sans chemin configuré,
// sinon le fichier doit exister et ne pas être un répertoire.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path == "" {
		if _, err := exec.LookPath(y.Name); err != nil {
			return fmt.Errorf("yt-dlp introuvable dans le PATH (%s) : %w", y.Name, err)
		}
		return nil
	}

	info, err := os.Stat(y.Path)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %w", y.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire : %s", y.Path)
	}
	return nil
}

// GetVersion exécute `yt-dlp --version` et retourne sa sortie.
// CombinedOutput capture stdout et stderr pour le diagnostic.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, y.exe(), "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	start := time.Now()
	raw, err := y.run(ctx, y.Options.BuildArgs(url))
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump json failed: %w", err)
	}
	y.Logger.Debug("metadata extracted", "url", url, "elapsed", time.Since(start))
	return raw, nil
}

// ListChannel liste les vidéos de l'onglet "videos" d'une chaîne (au plus limit, 0 => toutes).
func (y *YtDlp) ListChannel(ctx context.Context, channelURL string, limit int) ([]model.VideoEntry, error) {
	videosURL, err := ChannelVideosURL(channelURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := y.run(ctx, y.Options.BuildListArgs(videosURL, limit))
	if err != nil {
		return nil, fmt.Errorf("yt-dlp channel listing failed: %w", err)
	}
	raw.LogWarnings(y.Logger)

	entries, err := ParseChannelListing(raw.JSON)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	y.Logger.Debug("channel listed", "url", videosURL, "videos", len(entries), "elapsed", time.Since(start))
	return entries, nil
}

// run exécute yt-dlp et sépare la ligne JSON des avertissements.
func (y *YtDlp) run(ctx context.Context, args []string) (*ExtractedRaw, error) {
	out, err := exec.CommandContext(ctx, y.exe(), args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w, output: %s", err, string(out))
	}
	return splitOutput(out)
}

// splitOutput garde la dernière ligne JSON ; le reste est traité comme avertissements.
func splitOutput(out []byte) (*ExtractedRaw, error) {
	var jsonLine string
	var warnings []string
	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}
