package subtitles

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var (
	// ErrConversion enveloppe toute erreur survenue pendant la conversion vtt -> texte.
	ErrConversion = errors.New("vtt conversion failed")
	// ErrInvalidEncoding : le contenu n'est ni de l'UTF-8 valide ni de l'UTF-16 avec BOM.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

// Result est le résultat d'une conversion réussie.
// Un Result vide signifie "aucune caption", pas un échec.
type Result struct {
	Text  string   // lignes jointes par un espace
	Lines []string // lignes regroupées par MergeShortLines
}

// Empty indique si le document ne contenait aucune caption.
func (r Result) Empty() bool {
	return len(r.Lines) == 0
}

// Lines applique le pipeline complet (StripTags, RemoveHeader, MergeDuplicates,
// MergeShortLines) et retourne la séquence des lignes regroupées.
func Lines(text string) iter.Seq[string] {
	lines := RemoveHeader(SplitLines(StripTags(text)))
	return MergeShortLines(MergeDuplicates(slices.Values(lines)))
}

// Convert transforme le texte d'un fichier vtt en transcript brut :
// une seule ligne, les fragments séparés par un espace.
// Pure function, pas d'I/O.
func Convert(text string) string {
	return newResult(text).Text
}

func newResult(text string) Result {
	lines := slices.Collect(Lines(text))
	return Result{
		Text:  strings.Join(lines, " "),
		Lines: lines,
	}
}

// ConvertBytes décode data (UTF-8 ou UTF-16 avec BOM) puis convertit.
// Utile quand la piste a été téléchargée en mémoire.
func ConvertBytes(data []byte) (Result, error) {
	text, err := decodeText(data)
	if err != nil {
		return Result{}, fmt.Errorf("%w: decode: %w", ErrConversion, err)
	}
	return newResult(text), nil
}

// ConvertFile lit le fichier vtt path et le convertit.
// Toute erreur est enveloppée dans ErrConversion.
func ConvertFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read %s: %w", ErrConversion, path, err)
	}
	res, err := ConvertBytes(data)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// ConvertFileOrEmpty : variante "log and continue" de ConvertFile.
// En cas d'échec l'erreur est journalisée et la fonction retourne "".
// Attention : l'appelant ne peut pas distinguer un échec d'un fichier sans caption.
func ConvertFileOrEmpty(logger *slog.Logger, path string) string {
	res, err := ConvertFile(path)
	if err != nil {
		if logger != nil {
			logger.Error("error converting vtt to text", "path", path, "error", err)
		}
		return ""
	}
	return res.Text
}
