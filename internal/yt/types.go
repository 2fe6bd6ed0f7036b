package yt

import "log/slog"

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une vidéo.
//
// Subtitles et AutomaticCaptions sont des maps où :
//   - la clé correspond au code langue de la piste (ex. "fr", "en", "en-orig") ;
//   - la valeur liste les pistes disponibles pour cette langue (une par extension).
type ytdlpOutput struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	Uploader          string                    `json:"uploader"`
	UploadDate        string                    `json:"upload_date"`
	Timestamp         int64                     `json:"timestamp"`
	Subtitles         map[string][]subtitleItem `json:"subtitles"`
	AutomaticCaptions map[string][]subtitleItem `json:"automatic_captions"`
}

// flatEntry : entrée d'une playlist extraite avec --flat-playlist.
// Les entrées non vidéo (onglets, shorts imbriqués) peuvent être nulles.
type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type flatPlaylist struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Entries []*flatEntry `json:"entries"`
}

// ExtractedRaw contient le JSON brut et les lignes d'avertissement de yt-dlp
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// LogWarnings journalise les avertissements de yt-dlp
func (r *ExtractedRaw) LogWarnings(logger *slog.Logger) {
	for _, w := range r.Warnings {
		logger.Warn("yt-dlp warning", "line", w)
	}
}

// YtDlp représente le binaire yt-dlp à exécuter (nom ou chemin) et ses options.
type YtDlp struct {
	Name    string
	Path    string // chemin résolu vers l'exe, vide => recherche dans le PATH
	Options Options
	Logger  *slog.Logger
}
