package ui

import "context"

// Interface regroupe les interactions utilisateur de l'application.
type Interface interface {
	// GetURL renvoie une URL acceptée par accept.
	// Implémentation terminale : priorité clipboard -> prompt
	GetURL(ctx context.Context, prompt string, accept func(string) bool) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// PrintSummary affiche le bilan d'un traitement de chaîne.
	PrintSummary(ctx context.Context, rows []SummaryRow)
}

// Statuts d'une vidéo dans le bilan
const (
	StatusOK         = "ok"
	StatusNoSubtitle = "no subtitles"
	StatusFailed     = "failed"
)

// SummaryRow : une ligne du bilan (une vidéo).
type SummaryRow struct {
	Title   string
	VideoID string
	Track   string // langue et provenance de la piste, vide si aucune
	Lines   int
	Status  string
}
