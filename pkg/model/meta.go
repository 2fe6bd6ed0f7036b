package model

import (
	"fmt"
	"strings"
	"time"
)

const baseYtURL = "https://www.youtube.com/watch?v="

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = généré automatiquement par Youtube
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// SubtitleTrack décrit une piste de sous-titres associée à une vidéo.
type SubtitleTrack struct {
	Lang   string    `json:"lang"`
	Format Format    `json:"format,omitempty"`
	URL    string    `json:"url,omitempty"`
	Source SubSource `json:"source,omitempty"`
}

func (s SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(lang=%s, format=%s, source=%s)", s.Lang, s.Format, s.Source)
}

// VideoEntry est une entrée "plate" de la liste des vidéos d'une chaîne.
type VideoEntry struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// WatchURL retourne l'URL de lecture de la vidéo.
func (v VideoEntry) WatchURL() string {
	return baseYtURL + v.ID
}

// TitleOrID retourne le titre, ou l'ID si le titre est absent.
func (v VideoEntry) TitleOrID() string {
	if t := strings.TrimSpace(v.Title); t != "" {
		return t
	}
	return v.ID
}

// Meta regroupe les métadonnées extraites d'une vidéo YouTube.
type Meta struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Uploader   string          `json:"uploader,omitempty"`
	UploadDate time.Time       `json:"upload_date,omitempty"`
	AutoSubs   []SubtitleTrack `json:"subtitles,omitempty"`
	ManualSubs []SubtitleTrack `json:"manual_subtitles,omitempty"`
}

func (m Meta) HasManualSubs() bool {
	return len(m.ManualSubs) != 0
}

func (m Meta) HasAutoSubs() bool {
	return len(m.AutoSubs) != 0
}

// TitleOrID retourne le titre, ou sinon l'ID de la vidéo
func (m Meta) TitleOrID() string {
	if s := strings.TrimSpace(m.Title); s != "" {
		return s
	}
	return m.ID
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Uploader=%s, Date=%s, Subtitles=%d]",
		m.ID, m.Title, m.Uploader, m.UploadDate.Format("2006-01-02"),
		len(m.AutoSubs)+len(m.ManualSubs))
}

