package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/vttscribe/internal/app"
	"github.com/patrickprogramme/vttscribe/internal/ui"
	"github.com/patrickprogramme/vttscribe/internal/yt"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var opts app.ConvertOptions

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convertit des fichiers vtt locaux en texte",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := ctx.newApp(cmd, false)
			if err != nil {
				return err
			}
			out, err := a.RunConvert(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Lines, "lines", false, "Une ligne regroupée par ligne de sortie")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copie le résultat dans le presse-papier")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Échoue au lieu de produire un texte vide")
	return cmd
}

func newVideoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "video [URL]",
		Short: "Télécharge les sous-titres d'une vidéo et écrit le transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, term, err := ctx.newApp(cmd, true)
			if err != nil {
				return err
			}
			url, err := urlArg(cmd, args, term, "Entrez l'URL d'une vidéo Youtube", yt.IsYouTubeURL)
			if err != nil {
				return fmt.Errorf("get url: %w", err)
			}
			_, err = a.RunVideo(cmd.Context(), url)
			return err
		},
	}
}

func newChannelCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "channel [URL]",
		Short: "Combine les sous-titres des dernières vidéos d'une chaîne (https://www.youtube.com/@nom)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, term, err := ctx.newApp(cmd, true)
			if err != nil {
				return err
			}
			url, err := urlArg(cmd, args, term, "Entrez l'URL d'une chaîne Youtube (https://www.youtube.com/@nom)", yt.IsChannelURL)
			if err != nil {
				return fmt.Errorf("get url: %w", err)
			}
			_, err = a.RunChannel(cmd.Context(), url)
			return err
		},
	}
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Vérifie la config, le binaire yt-dlp et sa version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config    : %s\n", cfg.Path())
			fmt.Fprintf(out, "sortie    : %s\n", cfg.CombinedPath())

			_, version, err := ctx.initYT(cmd.Context(), cfg, ctx.logger)
			if err != nil {
				return fmt.Errorf("yt init: %w", err)
			}
			fmt.Fprintf(out, "yt-dlp    : %s\n", version)

			a := app.New(cfg, ui.NewTerminalWith(cmd.InOrStdin(), out, cmd.ErrOrStderr(), nil), nil, nil, ctx.logger)
			return a.YtDlpUpdateCheck(cmd.Context(), ctx.releaseURL, version)
		},
	}
}
