package subtitles

import "slices"

// headerMarks : lignes qui terminent l'en-tête d'un fichier vtt YouTube.
var headerMarks = []string{"##", "Language: en"}

// RemoveHeader retire l'en-tête vtt : tout ce qui précède, marque incluse,
// la marque d'en-tête située le plus loin dans lines.
// Sans marque, lines est renvoyé tel quel (position -1).
func RemoveHeader(lines []string) []string {
	pos := -1
	for _, mark := range headerMarks {
		if i := slices.Index(lines, mark); i > pos {
			pos = i
		}
	}
	return lines[pos+1:]
}
