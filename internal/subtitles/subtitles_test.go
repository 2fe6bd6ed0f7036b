package subtitles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/vttscribe/internal/fetch"
	"github.com/patrickprogramme/vttscribe/pkg/model"
)

func vttTrack(lang string, src model.SubSource) model.SubtitleTrack {
	return model.SubtitleTrack{Lang: lang, Format: model.FormatVTT, URL: "https://example.test/" + lang, Source: src}
}

func TestSelectTrack(t *testing.T) {
	manualEN := vttTrack("en", model.SubSourceManual)
	autoEN := vttTrack("en", model.SubSourceAutomatic)
	autoOrig := vttTrack("en-orig", model.SubSourceAutomatic)

	tests := []struct {
		name         string
		meta         *model.Meta
		preferManual bool
		want         model.SubtitleTrack
		wantOK       bool
	}{
		{
			name:         "manual preferred",
			meta:         &model.Meta{ManualSubs: []model.SubtitleTrack{manualEN}, AutoSubs: []model.SubtitleTrack{autoEN}},
			preferManual: true,
			want:         manualEN,
			wantOK:       true,
		},
		{
			name:         "auto when manual not preferred",
			meta:         &model.Meta{ManualSubs: []model.SubtitleTrack{manualEN}, AutoSubs: []model.SubtitleTrack{autoEN}},
			preferManual: false,
			want:         autoEN,
			wantOK:       true,
		},
		{
			name:         "orig fallback",
			meta:         &model.Meta{AutoSubs: []model.SubtitleTrack{vttTrack("fr", model.SubSourceAutomatic), autoOrig}},
			preferManual: true,
			want:         autoOrig,
			wantOK:       true,
		},
		{
			name:         "manual as last resort",
			meta:         &model.Meta{ManualSubs: []model.SubtitleTrack{manualEN}},
			preferManual: false,
			want:         manualEN,
			wantOK:       true,
		},
		{
			name: "track without url ignored",
			meta: &model.Meta{AutoSubs: []model.SubtitleTrack{{Lang: "en", Format: model.FormatVTT}}},
		},
		{
			name: "nil meta",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SelectTrack(tc.meta, "en", tc.preferManual)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDownloadSubtitleFromMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(autoCaptionsVTT))
	}))
	defer srv.Close()

	meta := &model.Meta{
		ID:       "abc123",
		Title:    "Captions 101",
		AutoSubs: []model.SubtitleTrack{{Lang: "en", Format: model.FormatVTT, URL: srv.URL + "/en.vtt", Source: model.SubSourceAutomatic}},
	}

	sd, err := DownloadSubtitleFromMeta(context.Background(), fetch.NewClient(srv.Client()), meta, "en", true, time.Second, 0)
	require.NoError(t, err)
	require.Equal(t, "abc123.en.vtt", sd.Filename())

	tr, err := NewTranscriptFromDownload(&sd)
	require.NoError(t, err)
	require.Equal(t, "Captions 101", tr.Title)
	require.Equal(t, Convert(autoCaptionsVTT), tr.Text())

	_, err = DownloadSubtitleFromMeta(context.Background(), fetch.NewClient(srv.Client()), &model.Meta{ID: "x"}, "en", true, time.Second, 0)
	require.ErrorIs(t, err, ErrNoSubtitle)
}

func TestSubtitleDownload_Convert_Empty(t *testing.T) {
	var sd *SubtitleDownload
	_, err := sd.Convert()
	require.ErrorIs(t, err, ErrConversion)

	_, err = (&SubtitleDownload{}).Convert()
	require.ErrorIs(t, err, ErrConversion)
}

func TestTranscript_Section(t *testing.T) {
	tr := NewTranscript("My video", "id1", model.SubtitleTrack{}, Result{Text: "hello world", Lines: []string{"hello world"}})
	rule := strings.Repeat("=", 50)
	want := "\n\n" + rule + "\nTitle: My video\n" + rule + "\n\nhello world"
	require.Equal(t, want, tr.Section())
}

func TestTranscript_FilenameAndSave(t *testing.T) {
	tr := NewTranscript("my video: part 1", "", model.SubtitleTrack{}, Result{Text: "a b", Lines: []string{"a", "b"}})

	name, err := tr.Filename(model.FormatTXT)
	require.NoError(t, err)
	require.Equal(t, "My video- part 1.txt", name)

	_, err = tr.Filename(model.FormatVTT)
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, tr.SaveAs(path, model.FormatTXT))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(data))

	require.Error(t, tr.SaveAs(path, model.FormatVTT))
}
