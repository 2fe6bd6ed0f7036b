package subtitles

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/vttscribe/internal/fsutil"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

var ErrNoSubtitle = errors.New("no subtitle available for given source")

// SubtitleDownload contient la piste + contexte utile (titre, id) + payload.
type SubtitleDownload struct {
	Title   string
	VideoID string
	Track   model.SubtitleTrack
	Data    []byte // nil tant que non téléchargé
}

// Filename compose le nom du fichier vtt brut, sur le modèle de yt-dlp :
// "<id>.<lang>.vtt". Sans ID, on retombe sur le titre nettoyé.
func (s SubtitleDownload) Filename() string {
	base := strings.TrimSpace(s.VideoID)
	if base == "" {
		base = fsutil.SanitizeFilename(strings.TrimSpace(s.Title))
	}

	// langue (fallback "und")
	lang := strings.TrimSpace(s.Track.Lang)
	if lang == "" {
		lang = "und"
	}

	filename := fmt.Sprintf("%s.%s%s", base, lang, model.FormatVTT.Extension())
	return filepath.Base(filename)
}

// Convert convertit les données téléchargées en texte.
// Erreur si Data est vide ou si le décodage échoue.
func (s *SubtitleDownload) Convert() (Result, error) {
	if s == nil {
		return Result{}, fmt.Errorf("%w: SubtitleDownload est nil", ErrConversion)
	}
	if len(s.Data) == 0 {
		return Result{}, fmt.Errorf("%w: pas de données dans SubtitleDownload (nil/empty)", ErrConversion)
	}
	return ConvertBytes(s.Data)
}

// String implémente fmt.Stringer pour SubtitleDownload.
// Affiche Title, les infos essentielles du Track et si Data est présent.
func (s SubtitleDownload) String() string {
	// aperçu de l'URL sans afficher des centaines de caractères
	urlPreview := s.Track.URL
	if urlPreview == "" {
		urlPreview = "<no url>"
	} else if len(urlPreview) > 80 {
		urlPreview = urlPreview[:77] + "..."
	}

	return fmt.Sprintf(
		"SubtitleDownload{Title:%q, ID:%q, Lang:%q, Source:%q, URL:%q, DataLen:%d}",
		s.Title,
		s.VideoID,
		s.Track.Lang,
		string(s.Track.Source),
		urlPreview,
		len(s.Data),
	)
}
