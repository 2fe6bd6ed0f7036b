package updater

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/vttscribe/internal/fetch"
)

const releaseJSON = `{
  "tag_name": "2025.09.26",
  "name": "yt-dlp 2025.09.26",
  "html_url": "https://github.com/yt-dlp/yt-dlp/releases/tag/2025.09.26",
  "assets": [
    {"name": "yt-dlp", "browser_download_url": "https://dl/yt-dlp"},
    {"name": "yt-dlp.exe", "browser_download_url": "https://dl/yt-dlp.exe"},
    {"name": "SHA2-256SUMS", "browser_download_url": "https://dl/sums"}
  ]
}`

func TestCheckYtDlpUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(releaseJSON))
	}))
	defer srv.Close()
	client := fetch.NewClient(srv.Client())

	check, err := CheckYtDlpUpdate(t.Context(), client, srv.URL, "2025.09.26")
	require.NoError(t, err)
	require.True(t, check.IsUpToDate)

	check, err = CheckYtDlpUpdate(t.Context(), client, srv.URL, "2024.01.01")
	require.NoError(t, err)
	require.False(t, check.IsUpToDate)
	require.Equal(t, "https://dl/yt-dlp.exe", check.GetUpdateLink("windows"))
	require.Equal(t, "https://dl/yt-dlp", check.GetUpdateLink("linux"))
	require.Equal(t, check.LatestRelease.HTMLURL, check.GetUpdateLink("plan9"))
}

func TestParseRelease(t *testing.T) {
	info, err := parseRelease([]byte(`{"tag_name":"v1","html_url":"https://page"}`))
	require.NoError(t, err)
	require.Equal(t, "https://page", UpdateCheck{LatestRelease: info}.GetUpdateLink("linux"))

	_, err = parseRelease([]byte(`{"name":"no tag"}`))
	require.Error(t, err)

	_, err = parseRelease([]byte(`nope`))
	require.Error(t, err)
}

func TestCheckYtDlpUpdate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := CheckYtDlpUpdate(t.Context(), fetch.NewClient(srv.Client()), srv.URL, "x")
	require.ErrorIs(t, err, fetch.ErrStatus)
}
