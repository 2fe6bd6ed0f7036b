package app

import (
	"context"
	"strings"

	"github.com/patrickprogramme/vttscribe/internal/subtitles"
)

// ConvertOptions : options de la commande convert.
type ConvertOptions struct {
	Lines  bool // une ligne reformatée par ligne de sortie
	Copy   bool // copie le résultat dans le presse-papier
	Strict bool // une erreur de conversion arrête la commande
}

// RunConvert convertit des fichiers vtt locaux et retourne le texte produit :
// une ligne par fichier, ou les lignes reformatées avec opts.Lines.
// Hors mode strict, un fichier illisible donne un texte vide (journalisé).
func (a *App) RunConvert(ctx context.Context, paths []string, opts ConvertOptions) (string, error) {
	strict := opts.Strict || a.cfg.Strict

	var b strings.Builder
	for _, p := range paths {
		if !strict && !opts.Lines {
			b.WriteString(subtitles.ConvertFileOrEmpty(a.logger, p))
			b.WriteString("\n")
			continue
		}

		res, err := subtitles.ConvertFile(p)
		if err != nil {
			if strict {
				return "", err
			}
			a.logger.Error("error converting vtt to text", "path", p, "error", err)
			continue
		}
		if opts.Lines {
			for _, line := range res.Lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(res.Text)
		b.WriteString("\n")
	}

	out := b.String()
	if opts.Copy || a.cfg.CopyToClipboard {
		a.copyText(ctx, strings.TrimRight(out, "\n"))
	}
	a.logger.Debug("converted files", "count", len(paths), "bytes", len(out))
	return out, nil
}
