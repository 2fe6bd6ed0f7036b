package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/patrickprogramme/vttscribe/internal/clipboard"
)

type terminalUI struct {
	reader    *bufio.Reader
	out       io.Writer
	errOut    io.Writer
	clipboard func() (string, error)
	color     bool // out est un terminal
}

// NewTerminal : interface sur stdin/stdout/stderr et le presse-papier système.
func NewTerminal() Interface {
	return NewTerminalWith(os.Stdin, os.Stdout, os.Stderr, clipboard.ReadAll)
}

// NewTerminalWith permet d'injecter les flux et la lecture du presse-papier
// (nil => presse-papier ignoré).
func NewTerminalWith(in io.Reader, out, errOut io.Writer, readClipboard func() (string, error)) Interface {
	return &terminalUI{
		reader:    bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		clipboard: readClipboard,
		color:     isTerminal(out),
	}
}

func (t *terminalUI) GetURL(ctx context.Context, prompt string, accept func(string) bool) (string, error) {
	// 1) clipboard
	if t.clipboard != nil {
		if clip, err := t.clipboard(); err == nil {
			clip = strings.TrimSpace(clip)
			if accept(clip) {
				t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
				return clip, nil
			}
		}
	}
	// 2) prompt
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(t.out, "%s: ", prompt)
		input, err := t.reader.ReadString('\n')
		url := strings.TrimSpace(input)
		if accept(url) {
			return url, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("aucune URL saisie : %w", err)
			}
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		fmt.Fprintln(t.out, "❌ URL invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

func (t *terminalUI) PrintSummary(ctx context.Context, rows []SummaryRow) {
	if s := RenderSummary(rows, t.color); s != "" {
		fmt.Fprintln(t.out, s)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
