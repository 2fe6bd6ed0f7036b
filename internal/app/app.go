package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/clipboard"
	"github.com/patrickprogramme/vttscribe/internal/config"
	"github.com/patrickprogramme/vttscribe/internal/fetch"
	"github.com/patrickprogramme/vttscribe/internal/logging"
	"github.com/patrickprogramme/vttscribe/internal/subtitles"
	"github.com/patrickprogramme/vttscribe/internal/ui"
	"github.com/patrickprogramme/vttscribe/internal/yt"
)

const (
	defaultExtractTimeout = 2 * time.Minute
	defaultListTimeout    = 5 * time.Minute
	dirPerm               = 0o755
	filePerm              = 0o644
)

var ErrNotVideoURL = errors.New("not a youtube video url")

// App orchestre les différentes dépendances (UI, yt-dlp, HTTP, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	ytClient yt.Interface // nil pour la conversion de fichiers locaux
	fetch    *fetch.Client
	logger   *slog.Logger

	writeClipboard func(string) error
}

// New construit l'application. Pour les tests, on injecte des implémentations factices.
// fetchClient et logger peuvent être nil.
func New(cfg *config.Config, uiClient ui.Interface, ytClient yt.Interface, fetchClient *fetch.Client, logger *slog.Logger) *App {
	if fetchClient == nil {
		fetchClient = fetch.NewClient(nil)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		cfg:            cfg,
		ui:             uiClient,
		ytClient:       ytClient,
		fetch:          fetchClient,
		logger:         logger,
		writeClipboard: clipboard.WriteAll,
	}
}

// ProcessVideo : métadonnées -> choix de la piste -> téléchargement -> conversion.
// Hors mode strict, une piste inconvertible donne un transcript vide (journalisé).
// Retourne subtitles.ErrNoSubtitle (enveloppée) si aucune piste vtt n'existe.
func (a *App) ProcessVideo(ctx context.Context, url string) (subtitles.Transcript, error) {
	if a.ytClient == nil {
		return subtitles.Transcript{}, fmt.Errorf("yt-dlp non initialisé")
	}

	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	raw, err := a.ytClient.ExtractRaw(exCtx, url)
	if err != nil {
		return subtitles.Transcript{}, fmt.Errorf("extract raw: %w", err)
	}
	if a.cfg.YtDlp.ShowWarnings {
		raw.LogWarnings(a.logger)
	}

	meta, err := yt.ParseYTDLP(raw.JSON)
	if err != nil {
		return subtitles.Transcript{}, fmt.Errorf("parse ytdlp: %w", err)
	}
	logger := a.logger.With("video_id", meta.ID)
	logger.Debug("metadata parsed", "meta", meta.String())

	sd, err := subtitles.DownloadSubtitleFromMeta(ctx, a.fetch, meta, a.cfg.SubLang, a.cfg.PreferManualSubs, fetch.DefaultTimeout, fetch.DefaultMaxBytes)
	if err != nil {
		// titre conservé pour les messages de l'appelant
		return subtitles.Transcript{Title: meta.TitleOrID(), VideoID: meta.ID}, fmt.Errorf("%s: %w", meta.TitleOrID(), err)
	}
	logger.Debug("subtitle downloaded", "lang", sd.Track.Lang, "source", string(sd.Track.Source), "bytes", len(sd.Data))

	if a.cfg.KeepVTT {
		if err := a.saveVTT(sd); err != nil {
			return subtitles.Transcript{}, err
		}
	}

	tr, err := subtitles.NewTranscriptFromDownload(&sd)
	if err != nil {
		if a.cfg.Strict {
			return subtitles.Transcript{}, fmt.Errorf("%s: %w", meta.TitleOrID(), err)
		}
		logger.Error("error converting vtt to text", "url", sd.Track.URL, "error", err)
		tr = subtitles.NewTranscript(sd.Title, sd.VideoID, sd.Track, subtitles.Result{})
	}
	return tr, nil
}

// RunVideo traite une vidéo et écrit <output_dir>/<titre>.txt.
// Retourne le chemin écrit.
func (a *App) RunVideo(ctx context.Context, url string) (string, error) {
	if !yt.IsYouTubeURL(url) {
		return "", fmt.Errorf("%w: %s", ErrNotVideoURL, url)
	}

	tr, err := a.ProcessVideo(ctx, url)
	if err != nil {
		if errors.Is(err, subtitles.ErrNoSubtitle) {
			a.ui.PrintInfo(ctx, "No subtitles found for: "+tr.Title)
		}
		return "", err
	}

	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	path, err := a.saveTranscript(tr, nil)
	if err != nil {
		return "", err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Processed: %s -> %s", tr.Title, path))

	if a.cfg.CopyToClipboard {
		a.copyText(ctx, tr.Text())
	}
	return path, nil
}

func (a *App) saveVTT(sd subtitles.SubtitleDownload) error {
	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	path := filepath.Join(a.cfg.OutputDir, sd.Filename())
	if err := os.WriteFile(path, sd.Data, filePerm); err != nil {
		return fmt.Errorf("write subtitle %s: %w", path, err)
	}
	return nil
}

// saveTranscript écrit <output_dir>/<titre>.txt. Avec taken (noms déjà écrits
// pendant ce traitement, en minuscules), un titre déjà pris reçoit l'ID de la
// vidéo : "<titre> [<id>].txt".
func (a *App) saveTranscript(tr subtitles.Transcript, taken map[string]bool) (string, error) {
	name, err := tr.Filename(subtitleFormat)
	if err != nil {
		return "", err
	}
	if taken != nil {
		if taken[strings.ToLower(name)] && tr.VideoID != "" {
			name = strings.TrimSuffix(name, subtitleFormat.Extension()) + " [" + tr.VideoID + "]" + subtitleFormat.Extension()
		}
		taken[strings.ToLower(name)] = true
	}
	path := filepath.Join(a.cfg.OutputDir, name)
	if err := tr.SaveAs(path, subtitleFormat); err != nil {
		return "", fmt.Errorf("échec de la sauvegarde du transcript: %w", err)
	}
	return path, nil
}

// copyText copie text dans le presse-papier ; un échec n'est qu'un avertissement.
func (a *App) copyText(ctx context.Context, text string) {
	if text == "" {
		a.ui.PrintError(ctx, "rien à copier : transcript vide")
		return
	}
	if err := a.writeClipboard(text); err != nil {
		a.logger.Warn("clipboard copy failed", "error", err)
		a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible: %v", err))
		return
	}
	a.ui.PrintInfo(ctx, "Texte copié dans le presse-papier.")
}
