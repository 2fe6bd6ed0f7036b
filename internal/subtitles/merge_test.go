package subtitles

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func collect(seq func(func(string) bool)) []string {
	var out []string
	for s := range seq {
		out = append(out, s)
	}
	return out
}

func TestMergeDuplicates(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "non adjacent repeat retained",
			in:   []string{"00:00", "Hi there", "Hi there", "00:01", "Hi there"},
			want: []string{"00:00", "Hi there", "00:01", "Hi there"},
		},
		{
			name: "repeated timestamps collapse",
			in:   []string{"00:00", "a", "00:00", "b", "00:01"},
			want: []string{"00:00", "a", "b", "00:01"},
		},
		{
			name: "empty lines skipped and do not reset state",
			in:   []string{"a", "", "a", "", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "caption after different caption is emitted again",
			in:   []string{"a", "b", "a"},
			want: []string{"a", "b", "a"},
		},
		{
			name: "timestamp-like caption is not a timestamp",
			in:   []string{"00:00:01", "00:00:01"},
			want: []string{"00:00:01"},
		},
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, slices.Collect(MergeDuplicates(slices.Values(tc.in))))
		})
	}
}

func TestMergeDuplicates_Idempotent(t *testing.T) {
	in := []string{"00:00", "a", "a", "", "00:00", "b", "00:01", "b", "b", "a"}
	once := slices.Collect(MergeDuplicates(slices.Values(in)))
	twice := slices.Collect(MergeDuplicates(slices.Values(once)))
	require.Equal(t, once, twice)
}

func TestMergeDuplicates_Restartable(t *testing.T) {
	seq := MergeDuplicates(slices.Values([]string{"a", "a", "b"}))
	require.Equal(t, []string{"a", "b"}, collect(seq))
	require.Equal(t, []string{"a", "b"}, collect(seq))
}

func TestMergeDuplicates_EarlyStop(t *testing.T) {
	var got []string
	for s := range MergeDuplicates(slices.Values([]string{"a", "b", "c"})) {
		got = append(got, s)
		if s == "b" {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func TestMergeShortLines(t *testing.T) {
	long := strings.Repeat("x", 78)
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "boundary flushes first buffer",
			in:   []string{"Hi", "00:00", "there"},
			want: []string{"Hi", "there"},
		},
		{
			name: "short lines merged",
			in:   []string{"so today", "we are going", "to talk"},
			want: []string{"so today we are going to talk"},
		},
		{
			name: "empty line is a boundary",
			in:   []string{"a", "", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "threshold reached starts a new buffer",
			in:   []string{long, "ab"},
			want: []string{long, "ab"},
		},
		{
			name: "just under threshold appends",
			in:   []string{long[:77], "a"},
			want: []string{long[:77] + " a"},
		},
		{
			name: "long line alone",
			in:   []string{strings.Repeat("y", 100)},
			want: []string{strings.Repeat("y", 100)},
		},
		{
			name: "only boundaries",
			in:   []string{"00:00", "", "00:01"},
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, slices.Collect(MergeShortLines(slices.Values(tc.in))))
		})
	}
}

func TestMergeShortLines_CountsRunes(t *testing.T) {
	// 39 runes mais 78 octets : doit être regroupé
	accents := strings.Repeat("é", 39)
	got := slices.Collect(MergeShortLines(slices.Values([]string{accents, accents})))
	require.Equal(t, []string{accents + " " + accents}, got)
}

func TestMergeShortLines_FlushedLinesAreLong(t *testing.T) {
	var in []string
	for i := 0; i < 200; i++ {
		in = append(in, strings.Repeat("w", 3+i%17))
	}
	maxLine := 0
	for _, l := range in {
		maxLine = max(maxLine, utf8.RuneCountInString(l))
	}

	out := slices.Collect(MergeShortLines(slices.Values(in)))
	require.NotEmpty(t, out)
	for _, l := range out[:len(out)-1] {
		require.GreaterOrEqual(t, utf8.RuneCountInString(l), LineWidth-maxLine-1, "line %q flushed too early", l)
	}

	// aucun mot perdu, ordre conservé
	require.Equal(t, strings.Join(in, " "), strings.Join(out, " "))
}
