package subtitles

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// extrait typique de captions automatiques YouTube : chaque ligne est répétée
// dans le bloc suivant, avec un balisage karaoké.
const autoCaptionsVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.350 align:start position:0%

so<00:00:00.320><c> today</c><00:00:00.640><c> we're</c><00:00:00.880><c> going</c>

00:00:02.350 --> 00:00:02.360 align:start position:0%
so today we're going


00:00:02.360 --> 00:00:04.790 align:start position:0%
so today we're going
to<00:00:02.480><c> talk</c><00:00:02.720><c> about</c><00:00:03.040><c> captions</c>

00:01:00.000 --> 00:01:02.000 align:start position:0%
to talk about captions
<c.colorE5E5E5>and</c><00:01:00.300><c.colorE5E5E5> timing</c>
`

func TestConvert_AutoCaptions(t *testing.T) {
	got := Convert(autoCaptionsVTT)
	require.Equal(t, "so today we're going to talk about captions and timing", got)
}

func TestLines_AutoCaptions(t *testing.T) {
	got := slices.Collect(Lines(autoCaptionsVTT))
	// le changement de minute (00:00 -> 00:01) est une frontière
	require.Equal(t, []string{
		"so today we're going to talk about captions",
		"and timing",
	}, got)
}

func TestLines_WhitespaceOnlyCaptionLines(t *testing.T) {
	const doc = "Language: en\n00:00:00.000 --> 00:00:02.000 align:start position:0%\nhi\n\u00a0\nhi\n"

	tests := []struct {
		name string
		in   string
	}{
		{name: "lf with nbsp line", in: doc},
		{name: "crlf", in: strings.ReplaceAll(doc, "\n", "\r\n")},
		{name: "lone cr", in: strings.ReplaceAll(doc, "\n", "\r")},
		{name: "lone cr with spaces", in: strings.ReplaceAll(strings.ReplaceAll(doc, "\u00a0", "   "), "\n", "\r")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// la ligne blanche ne coupe pas la suite de doublons
			require.Equal(t, []string{"hi"}, slices.Collect(Lines(tc.in)))
		})
	}
}

func TestConvert_NoCaptions(t *testing.T) {
	require.Equal(t, "", Convert("WEBVTT\nKind: captions\nLanguage: en\n\n"))
	require.Equal(t, "", Convert(""))
}

func TestConvertBytes(t *testing.T) {
	t.Run("utf8 bom", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Language: en\nhello\n")...)
		res, err := ConvertBytes(data)
		require.NoError(t, err)
		require.Equal(t, "hello", res.Text)
		require.False(t, res.Empty())
	})

	t.Run("utf16le bom", func(t *testing.T) {
		var buf bytes.Buffer
		buf.Write([]byte{0xFF, 0xFE})
		for _, r := range "Language: en\nhi\n" {
			buf.Write([]byte{byte(r), 0})
		}
		res, err := ConvertBytes(buf.Bytes())
		require.NoError(t, err)
		require.Equal(t, "hi", res.Text)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		_, err := ConvertBytes([]byte{'h', 0xFF, 'i'})
		require.ErrorIs(t, err, ErrConversion)
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("empty is success", func(t *testing.T) {
		res, err := ConvertBytes(nil)
		require.NoError(t, err)
		require.True(t, res.Empty())
	})
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc.en.vtt")
	require.NoError(t, os.WriteFile(path, []byte(autoCaptionsVTT), 0o644))

	res, err := ConvertFile(path)
	require.NoError(t, err)
	require.Equal(t, Convert(autoCaptionsVTT), res.Text)
	require.Len(t, res.Lines, 2)

	_, err = ConvertFile(filepath.Join(dir, "missing.vtt"))
	require.ErrorIs(t, err, ErrConversion)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConvertFileOrEmpty(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	got := ConvertFileOrEmpty(logger, filepath.Join(t.TempDir(), "missing.vtt"))
	require.Equal(t, "", got)
	require.Contains(t, logs.String(), "error converting vtt to text")

	// logger nil accepté
	require.Equal(t, "", ConvertFileOrEmpty(nil, "/nonexistent/file.vtt"))

	path := filepath.Join(t.TempDir(), "ok.vtt")
	require.NoError(t, os.WriteFile(path, []byte("##\nhello\n"), 0o644))
	require.Equal(t, "hello", ConvertFileOrEmpty(slog.New(slog.NewTextHandler(io.Discard, nil)), path))
}
