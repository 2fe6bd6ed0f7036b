package subtitles

import (
	"regexp"
	"strings"
)

// tagPatterns : balises inline des captions automatiques YouTube, retirées dans l'ordre.
var tagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`</c>`),
	regexp.MustCompile(`<c(\.color\w+)?>`),
	regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`),
}

// cueTimingRe : ligne de timing complète d'un cue, on ne garde que HH:MM (groupe 1).
var cueTimingRe = regexp.MustCompile(`(\d{2}:\d{2}):\d{2}\.\d{3} --> .* align:start position:0%`)

// blankLineRe : ligne composée uniquement d'espaces, espaces Unicode compris
// (insécable, \x85, séparateurs \x1c-\x1f).
var blankLineRe = regexp.MustCompile(`(?m)^[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]+$`)

// newlineReplacer : fins de ligne \r\n et \r ramenées à \n.
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// StripTags retire le balisage vtt (couleurs, ancres de timing) et réduit
// chaque ligne de timing "00:01:02.345 --> ... align:start position:0%" à "00:01".
// Les fins de ligne sont d'abord ramenées à \n ; le reste du texte qui ne
// correspond à aucun motif passe tel quel.
func StripTags(text string) string {
	text = newlineReplacer.Replace(text)

	for _, re := range tagPatterns {
		text = re.ReplaceAllString(text, "")
	}

	// timestamp grossier : HH:MM uniquement
	text = cueTimingRe.ReplaceAllString(text, "${1}")

	return blankLineRe.ReplaceAllString(text, "")
}
