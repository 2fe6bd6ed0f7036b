package yt

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/patrickprogramme/vttscribe/pkg/model"
)

// ParseYTDLP transforme le JSON brut en struct Meta.
// Seules les pistes vtt sont conservées, triées par langue.
func ParseYTDLP(raw []byte) (*model.Meta, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.Meta{
		ID:       y.ID,
		Title:    y.Title,
		Uploader: y.Uploader,
	}

	// upload_date: YYYYMMDD puis timestamp
	if y.UploadDate != "" {
		if t, err := time.Parse("20060102", y.UploadDate); err == nil {
			meta.UploadDate = t
		}
	}
	if meta.UploadDate.IsZero() && y.Timestamp != 0 {
		meta.UploadDate = time.Unix(y.Timestamp, 0).UTC()
	}

	meta.ManualSubs = selectTracks(y.Subtitles, model.FormatVTT, model.SubSourceManual)
	meta.AutoSubs = selectTracks(y.AutomaticCaptions, model.FormatVTT, model.SubSourceAutomatic)

	return meta, nil
}

// selectTracks garde, pour chaque langue, la première piste au format demandé.
// Parcours par ordre de langue : la sortie ne dépend pas de l'ordre de la map.
func selectTracks(byLang map[string][]subtitleItem, format model.Format, src model.SubSource) []model.SubtitleTrack {
	var out []model.SubtitleTrack
	for _, lang := range slices.Sorted(maps.Keys(byLang)) {
		for _, it := range byLang[lang] {
			pf, err := model.ParseFormat(it.Ext)
			if err != nil || pf != format || it.URL == "" {
				continue
			}
			out = append(out, model.SubtitleTrack{
				Lang:   lang,
				Format: pf,
				URL:    it.URL,
				Source: src,
			})
			break
		}
	}
	return out
}

// ParseChannelListing lit la sortie de `--flat-playlist -J` et retourne les vidéos
// dans l'ordre de la chaîne. Les entrées sans ID sont ignorées.
func ParseChannelListing(raw []byte) ([]model.VideoEntry, error) {
	var p flatPlaylist
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal channel listing: %w", err)
	}
	out := make([]model.VideoEntry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e == nil || strings.TrimSpace(e.ID) == "" {
			continue
		}
		out = append(out, model.VideoEntry{ID: e.ID, Title: e.Title})
	}
	return out, nil
}
