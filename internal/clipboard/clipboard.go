// Package clipboard enveloppe atotto/clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmpty : refus d'écrire un texte vide dans le presse-papier.
var ErrEmpty = errors.New("le texte à copier ne peut pas être vide")

// Available indique si un presse-papier système est utilisable
// (xclip, xsel ou wl-clipboard sous Linux).
func Available() bool {
	return !clipboard.Unsupported
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteAll écrit text dans le presse-papier.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	return clipboard.WriteAll(text)
}
