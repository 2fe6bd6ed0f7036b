package subtitles

import (
	"regexp"
	"strings"
)

// timestampRe : ligne de timestamp grossier "HH:MM" produite par StripTags.
var timestampRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// isTimestamp indique si la ligne est un timestamp grossier (et rien d'autre).
func isTimestamp(line string) bool {
	return timestampRe.MatchString(line)
}

// isLineBreak liste les séparateurs de lignes reconnus (en plus de "\r\n").
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// SplitLines découpe text en lignes.
// "\r\n" compte pour un seul saut de ligne ; un saut de ligne final ne produit
// pas de ligne vide supplémentaire, et un texte vide ne produit aucune ligne.
func SplitLines(text string) []string {
	var lines []string
	var sb strings.Builder
	pendingCR := false

	for _, r := range text {
		if pendingCR {
			pendingCR = false
			if r == '\n' {
				// fin du "\r\n" déjà comptabilisé
				continue
			}
		}
		if isLineBreak(r) {
			lines = append(lines, sb.String())
			sb.Reset()
			pendingCR = r == '\r'
			continue
		}
		sb.WriteRune(r)
	}
	if sb.Len() > 0 {
		lines = append(lines, sb.String())
	}
	return lines
}
