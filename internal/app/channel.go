package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"github.com/patrickprogramme/vttscribe/internal/fsutil"
	"github.com/patrickprogramme/vttscribe/internal/subtitles"
	"github.com/patrickprogramme/vttscribe/internal/ui"
	"github.com/patrickprogramme/vttscribe/internal/yt"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

const (
	lockRetryDelay = 200 * time.Millisecond
	lockTimeout    = 30 * time.Second
)

var subtitleFormat = model.FormatTXT

// videoResult : résultat d'une vidéo de la chaîne, à la position de la liste.
type videoResult struct {
	entry model.VideoEntry
	tr    subtitles.Transcript
	err   error
}

// RunChannel traite les vidéos d'une chaîne et écrit le fichier combiné
// <output_dir>/<combined_filename>. Une vidéo en échec est ignorée.
// Retourne le chemin du fichier combiné.
func (a *App) RunChannel(ctx context.Context, channelURL string) (string, error) {
	if !yt.IsChannelURL(channelURL) {
		return "", fmt.Errorf("%w: %s", yt.ErrNotChannelURL, channelURL)
	}
	if a.ytClient == nil {
		return "", fmt.Errorf("yt-dlp non initialisé")
	}

	listCtx, cancel := context.WithTimeout(ctx, defaultListTimeout)
	entries, err := a.ytClient.ListChannel(listCtx, channelURL, a.cfg.MaxVideos)
	cancel()
	if err != nil {
		return "", fmt.Errorf("list channel: %w", err)
	}
	if a.cfg.MaxVideos > 0 && len(entries) > a.cfg.MaxVideos {
		entries = entries[:a.cfg.MaxVideos]
	}
	for _, e := range entries {
		a.ui.PrintInfo(ctx, "Found video: "+e.TitleOrID())
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Found %d videos", len(entries)))

	if err := os.MkdirAll(a.cfg.OutputDir, dirPerm); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}

	results := a.processAll(ctx, entries)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sections, rows := a.collect(ctx, results)

	path := a.cfg.CombinedPath()
	if err := writeCombined(ctx, path, sections); err != nil {
		return "", err
	}

	a.ui.PrintSummary(ctx, rows)
	a.ui.PrintInfo(ctx, "\nAll subtitles have been combined into: "+path)
	return path, nil
}

// processAll traite les vidéos en parallèle (cfg.Workers à la fois).
// L'ordre de la liste est conservé dans le résultat.
func (a *App) processAll(ctx context.Context, entries []model.VideoEntry) []videoResult {
	results := make([]videoResult, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	// SetLimit(0) bloquerait chaque Go : au moins un worker
	g.SetLimit(max(a.cfg.Workers, 1))
	for i, e := range entries {
		g.Go(func() error {
			tr, err := a.ProcessVideo(gctx, e.WatchURL())
			results[i] = videoResult{entry: e, tr: tr, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// collect construit les sections du fichier combiné et le bilan,
// journalise les vidéos ignorées et sauvegarde les transcripts individuels.
func (a *App) collect(ctx context.Context, results []videoResult) ([]string, []ui.SummaryRow) {
	sections := make([]string, 0, len(results))
	rows := make([]ui.SummaryRow, 0, len(results))
	taken := make(map[string]bool, len(results))

	for _, r := range results {
		title := r.tr.Title
		if title == "" {
			title = r.entry.TitleOrID()
		}
		row := ui.SummaryRow{Title: title, VideoID: r.entry.ID}
		logger := a.logger.With("video_id", r.entry.ID)

		switch {
		case errors.Is(r.err, subtitles.ErrNoSubtitle):
			row.Status = ui.StatusNoSubtitle
			logger.Info("no subtitles found", "title", title, "lang", a.cfg.SubLang)
			a.ui.PrintInfo(ctx, "No subtitles found for: "+title)
		case r.err != nil:
			row.Status = ui.StatusFailed
			logger.Error("skipping video", "url", r.entry.WatchURL(), "error", r.err)
			a.ui.PrintError(ctx, fmt.Sprintf("Skipping video %s due to error: %v", r.entry.WatchURL(), r.err))
		default:
			row.Status = ui.StatusOK
			row.Track = fmt.Sprintf("%s (%s)", r.tr.Track.Lang, r.tr.Track.Source)
			row.Lines = len(r.tr.Result.Lines)
			sections = append(sections, r.tr.Section())
			if a.cfg.SaveTranscripts && !r.tr.Result.Empty() {
				if _, err := a.saveTranscript(r.tr, taken); err != nil {
					logger.Error("transcript not saved", "error", err)
				}
			}
			a.ui.PrintInfo(ctx, "Processed: "+title)
		}
		rows = append(rows, row)
	}
	return sections, rows
}

// writeCombined écrit le fichier combiné sous verrou (<path>.lock) :
// deux exécutions sur le même dossier ne s'entremêlent pas.
func writeCombined(ctx context.Context, path string, sections []string) error {
	lock := flock.New(path + ".lock")

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: déjà verrouillé", path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := fsutil.WriteFileAtomic(path, []byte(strings.Join(sections, "")), filePerm); err != nil {
		return fmt.Errorf("write combined file %s: %w", path, err)
	}
	return nil
}
