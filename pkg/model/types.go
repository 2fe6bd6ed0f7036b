package model

import "fmt"

// Format : formats de fichiers manipulés (pistes et transcripts)
type Format string

const (
	FormatTXT Format = "txt"
	FormatVTT Format = "vtt"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "txt":
		return FormatTXT, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) IsTextual() bool {
	return f == FormatTXT
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}
