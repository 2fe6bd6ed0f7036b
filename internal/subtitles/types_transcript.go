package subtitles

import (
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

// bannerWidth : largeur de la bannière "=====" du fichier combiné.
const bannerWidth = 50

// Transcript représente le transcript résultant d'un traitement
// (décodage vtt -> StripTags -> ... -> MergeShortLines).
type Transcript struct {
	Title   string              // titre (hérité de SubtitleDownload)
	VideoID string              // id YouTube, vide pour un fichier local
	Track   model.SubtitleTrack // métadonnée sur la piste (hérité de SubtitleDownload)
	Result  Result              // texte converti
}

// NewTranscript construit un Transcript à partir de données déjà prêtes.
// - pure function, pas d'I/O ni de parsing.
func NewTranscript(title, videoID string, track model.SubtitleTrack, res Result) Transcript {
	return Transcript{
		Title:   title,
		VideoID: videoID,
		Track:   track,
		Result:  res,
	}
}

// NewTranscriptFromDownload convertit sd et construit le Transcript associé.
func NewTranscriptFromDownload(sd *SubtitleDownload) (Transcript, error) {
	res, err := sd.Convert()
	if err != nil {
		return Transcript{}, err
	}
	return NewTranscript(sd.Title, sd.VideoID, sd.Track, res), nil
}
