package yt

import "strconv"

// Options représente les flags ajoutables quand on utilise yt-dlp
type Options struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewOptions initialise les options standard ; showWarnings vient du yaml de config
func NewOptions(showWarnings bool) Options {
	return Options{
		SkipDownload: true,
		NoWarnings:   !showWarnings,
		NoProgress:   true,
		NoUpdate:     true,
		NoConfig:     true,
	}
}

// common : flags partagés par toutes les invocations, --no-config en tête.
func (o Options) common() []string {
	args := make([]string, 0, 8)
	if o.NoConfig {
		args = append(args, "--no-config")
	}
	if o.SkipDownload {
		args = append(args, "--skip-download")
	}
	if o.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if o.NoProgress {
		args = append(args, "--no-progress")
	}
	if o.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

// BuildArgs construit les arguments pour extraire le JSON d'une vidéo (-j).
func (o Options) BuildArgs(url string) []string {
	args := o.common()
	args = append(args, "-j", url)
	return args
}

// BuildListArgs construit les arguments pour lister les vidéos d'une chaîne
// sans résoudre chaque entrée (--flat-playlist -J). limit <= 0 => pas de limite.
func (o Options) BuildListArgs(url string, limit int) []string {
	args := o.common()
	args = append(args, "--flat-playlist", "-J")
	if limit > 0 {
		args = append(args, "--playlist-end", strconv.Itoa(limit))
	}
	args = append(args, url)
	return args
}
