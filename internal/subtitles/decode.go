package subtitles

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decodeText convertit le contenu brut d'un fichier vtt en string UTF-8.
// - UTF-8 : le BOM éventuel est retiré.
// - UTF-16 : accepté seulement avec un BOM (BE ou LE).
// Un contenu UTF-8 invalide (sans BOM UTF-16) retourne ErrInvalidEncoding :
// on ne veut pas de caractères de remplacement silencieux dans le transcript.
func decodeText(data []byte) (string, error) {
	utf16 := bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
	if !utf16 && !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}
