package browser

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://www.youtube.com/watch?v=abc", want: "youtube.com"},
		{in: "https://music.youtube.com/playlist?list=x", want: "youtube.com"},
		{in: "https://www.bbc.co.uk/iplayer", want: "bbc.co.uk"},
		{in: "youtube.com/watch", wantErr: true},
		{in: "https://co.uk/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := BaseDomain(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteNetscape(t *testing.T) {
	exp := time.Unix(1893456000, 0)
	cookies := []*http.Cookie{
		{Name: "SID", Value: "abc", Domain: ".youtube.com", Path: "/", Secure: true, Expires: exp},
		{Name: "PREF", Value: "f6=8", Domain: "www.youtube.com", Path: ""},
		{Name: "LOGIN", Value: "1", Path: "/", HttpOnly: true},
	}

	var b strings.Builder
	require.NoError(t, WriteNetscape(&b, cookies, "youtube.com"))

	out := b.String()
	assert.True(t, strings.HasPrefix(out, "# Netscape HTTP Cookie File\n"))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, netscapeHeader)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".youtube.com\tTRUE\t/\tTRUE\t1893456000\tSID\tabc", lines[0])
	assert.Equal(t, "www.youtube.com\tFALSE\t/\tFALSE\t0\tPREF\tf6=8", lines[1])
	assert.Equal(t, "#HttpOnly_youtube.com\tFALSE\t/\tFALSE\t0\tLOGIN\t1", lines[2])
}

func TestMergeCookies(t *testing.T) {
	merged := mergeCookies([]*http.Cookie{
		{Name: "b", Value: "1", Domain: ".x.com", Path: "/"},
		{Name: "a", Value: "old", Domain: ".x.com", Path: "/"},
		nil,
		{Name: "a", Value: "new", Domain: ".x.com", Path: "/"},
	})
	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].Name)
	assert.Equal(t, "new", merged[0].Value)
	assert.Equal(t, "b", merged[1].Name)
}

func stubCookies(t *testing.T, src cookieSource) {
	t.Helper()
	prev := readCookies
	readCookies = src
	t.Cleanup(func() { readCookies = prev })
}

func TestExportCookies(t *testing.T) {
	var gotBrowser, gotDomain string
	stubCookies(t, func(_ context.Context, browserName, domain string) ([]*http.Cookie, error) {
		gotBrowser, gotDomain = browserName, domain
		return []*http.Cookie{{Name: "SID", Value: "abc", Domain: ".youtube.com", Path: "/"}}, nil
	})

	out := filepath.Join(t.TempDir(), "sub", "cookies.txt")
	n, err := ExportCookies(context.Background(), " Firefox ", "https://www.youtube.com/watch?v=abc", out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "firefox", gotBrowser)
	assert.Equal(t, "youtube.com", gotDomain)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".youtube.com\tTRUE\t/\tFALSE\t0\tSID\tabc\n")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExportCookiesErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cookies.txt")

	stubCookies(t, func(context.Context, string, string) ([]*http.Cookie, error) {
		return nil, nil
	})
	_, err := ExportCookies(context.Background(), "", "https://www.youtube.com/", out)
	assert.ErrorContains(t, err, "no cookies found for youtube.com")
	assert.NoFileExists(t, out)

	stubCookies(t, func(context.Context, string, string) ([]*http.Cookie, error) {
		return nil, errors.New("store locked")
	})
	_, err = ExportCookies(context.Background(), "chrome", "https://www.youtube.com/", out)
	assert.EqualError(t, err, "store locked")

	_, err = ExportCookies(context.Background(), "", "https://www.youtube.com/", "")
	assert.Error(t, err)

	_, err = ExportCookies(context.Background(), "", "not a url", out)
	assert.Error(t, err)
}

func TestReadKookyCookiesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cookies, err := readKookyCookies(ctx, "", "example.com")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, cookies)
}
