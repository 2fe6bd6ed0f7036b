package subtitles

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/vttscribe/internal/fsutil"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

// Text retourne le transcript sur une seule ligne (fragments séparés par un espace).
func (t Transcript) Text() string {
	return t.Result.Text
}

// Plain retourne le transcript lisible : une ligne regroupée par ligne de fichier.
func (t Transcript) Plain() string {
	if t.Result.Empty() {
		return ""
	}
	return strings.Join(t.Result.Lines, "\n") + "\n"
}

// Section retourne le bloc écrit dans le fichier combiné :
// une bannière avec le titre, puis le texte sur une ligne.
func (t Transcript) Section() string {
	rule := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(rule)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	b.WriteString(rule)
	b.WriteString("\n\n")
	b.WriteString(t.Result.Text)
	return b.String()
}

// SaveAs écrit le transcript dans le fichier `path` selon le format donné.
// Seul txt est supporté : le vtt brut n'est pas conservé dans Transcript.
func (t Transcript) SaveAs(path string, format model.Format) error {
	var data []byte

	switch format {
	case model.FormatTXT:
		data = []byte(t.Plain())
	case model.FormatVTT:
		return fmt.Errorf("SaveAs format vtt non supporté depuis Transcript (utiliser SubtitleDownload.Data)")
	default:
		return fmt.Errorf("format inconnu dans SaveAs: %s", format)
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("échec écriture fichier %s : %w", path, err)
	}
	return nil
}

// Filename compose le nom de fichier du transcript à partir du titre.
func (t Transcript) Filename(format model.Format) (string, error) {
	base := fsutil.SanitizeFilename(strings.TrimSpace(t.Title))
	if format.IsTextual() {
		return base + format.Extension(), nil
	}
	return "", fmt.Errorf("format inconnu dans Filename: %q", format)
}
