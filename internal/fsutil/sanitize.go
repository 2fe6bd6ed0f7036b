package fsutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxFilenameLen : longueur max (en octets) d'un nom de fichier généré
const maxFilenameLen = 200

// invalidFileRunes : caractères interdits dans les noms de fichiers
// (\x00-\x1F = caractères de contrôle)
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename transforme un titre de vidéo en nom de fichier valide :
// ":" devient "-", les autres caractères interdits deviennent des espaces,
// espaces multiples et points terminaux sont supprimés, longueur limitée.
// Retourne "untitled" si rien ne reste.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", "-")

	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if len(clean) > maxFilenameLen {
		clean = truncateRunes(clean, maxFilenameLen)
	}
	return CapitalizeFirst(clean)
}

// truncateRunes coupe s à n octets au plus sans casser une rune UTF-8.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// CapitalizeFirst met en majuscule le premier caractère (rune) de s.
// Ne touche pas au reste de la chaîne. Vide -> retourne "".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
