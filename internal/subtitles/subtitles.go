package subtitles

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/vttscribe/internal/fetch"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

const origSuffix = "-orig"

// SelectTrack choisit la piste vtt à utiliser pour lang.
// Ordre : piste manuelle (si preferManual), piste automatique lang, puis lang-orig.
// Sans piste manuelle préférée, on retombe quand même sur la manuelle en dernier recours.
func SelectTrack(m *model.Meta, lang string, preferManual bool) (model.SubtitleTrack, bool) {
	if m == nil {
		return model.SubtitleTrack{}, false
	}
	lang = strings.TrimSpace(lang)

	find := func(tracks []model.SubtitleTrack, want string) (model.SubtitleTrack, bool) {
		for _, t := range tracks {
			if t.URL == "" || t.Format != model.FormatVTT {
				continue
			}
			if t.Lang == want {
				return t, true
			}
		}
		return model.SubtitleTrack{}, false
	}

	if preferManual {
		if t, ok := find(m.ManualSubs, lang); ok {
			return t, true
		}
	}
	if t, ok := find(m.AutoSubs, lang); ok {
		return t, true
	}
	if t, ok := find(m.AutoSubs, lang+origSuffix); ok {
		return t, true
	}
	if !preferManual {
		return find(m.ManualSubs, lang)
	}
	return model.SubtitleTrack{}, false
}

// NewSubtitleDownloadFromMeta : constructeur pur.
// Retourne un SubtitleDownload avec Title, VideoID et Track remplis, Data == nil.
func NewSubtitleDownloadFromMeta(m *model.Meta, lang string, preferManual bool) (SubtitleDownload, bool) {
	t, ok := SelectTrack(m, lang, preferManual)
	if !ok {
		return SubtitleDownload{}, false
	}
	return SubtitleDownload{
		Title:   m.TitleOrID(),
		VideoID: m.ID,
		Track:   t,
	}, true
}

// DownloadSubtitleFromMeta : wrapper qui télécharge la piste et retourne
// le SubtitleDownload avec Data rempli. Nom explicite => fait du réseau.
// Retourne ErrNoSubtitle si aucune piste vtt n'existe pour lang.
func DownloadSubtitleFromMeta(ctx context.Context, client *fetch.Client, m *model.Meta, lang string, preferManual bool, timeout time.Duration, maxBytes int64) (SubtitleDownload, error) {
	sd, ok := NewSubtitleDownloadFromMeta(m, lang, preferManual)
	if !ok {
		return SubtitleDownload{}, ErrNoSubtitle
	}

	data, err := client.FetchBytes(ctx, sd.Track.URL, timeout, maxBytes)
	if err != nil {
		return SubtitleDownload{}, fmt.Errorf("download subtitle: %w", err)
	}
	sd.Data = data
	return sd, nil
}
