package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, WriteFileAtomic(dest, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(dest, []byte("second"), 0o644))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	// aucun fichier temporaire ne doit rester
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "untitled"},
		{in: "how to: vtt", want: "How to- vtt"},
		{in: `a<b>c"d/e\f|g?h*i`, want: "A b c d e f g h i"},
		{in: "trailing dots...", want: "Trailing dots"},
		{in: "  many    spaces  ", want: "Many spaces"},
		{in: "???", want: "untitled"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestSanitizeFilename_TruncatesOnRuneBoundary(t *testing.T) {
	long := ""
	for i := 0; i < 150; i++ {
		long += "é"
	}
	got := SanitizeFilename(long)
	require.LessOrEqual(t, len(got), maxFilenameLen)
	require.True(t, utf8.ValidString(got))
}
