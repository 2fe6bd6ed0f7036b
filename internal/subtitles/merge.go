package subtitles

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// LineWidth : seuil de lisibilité (en runes) utilisé pour regrouper les lignes courtes.
const LineWidth = 80

// MergeDuplicates supprime les doublons des captions automatiques.
// Les doublons sont toujours adjacents : on compare seulement au dernier
// timestamp et à la dernière caption émis, pas à l'ensemble du texte.
// Les lignes vides sont ignorées. Chaque parcours repart d'un état neuf.
func MergeDuplicates(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		lastTimestamp := ""
		lastCaption := ""
		for line := range lines {
			if line == "" {
				continue
			}
			if isTimestamp(line) {
				if line != lastTimestamp {
					if !yield(line) {
						return
					}
					lastTimestamp = line
				}
				continue
			}
			if line != lastCaption {
				if !yield(line) {
					return
				}
				lastCaption = line
			}
		}
	}
}

// MergeShortLines regroupe les lignes courtes en lignes d'environ LineWidth runes.
// Une ligne vide ou un timestamp vide le buffer courant ; ces frontières ne sont
// jamais émises. Le reste du buffer est émis en fin de parcours.
func MergeShortLines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		buffer := ""
		for line := range lines {
			if line == "" || isTimestamp(line) {
				if buffer != "" {
					if !yield(strings.TrimSpace(buffer)) {
						return
					}
					buffer = ""
				}
				continue
			}

			if utf8.RuneCountInString(line)+utf8.RuneCountInString(buffer) < LineWidth {
				buffer += " " + line
				continue
			}
			if buffer != "" {
				if !yield(strings.TrimSpace(buffer)) {
					return
				}
			}
			buffer = line
		}
		if buffer != "" {
			yield(strings.TrimSpace(buffer))
		}
	}
}
