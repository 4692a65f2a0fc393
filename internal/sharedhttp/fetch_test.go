package sharedhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestFetch_CharsetAndRedirect(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().String(`<p>首页 >> 海贼王 集</p>`)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/comic/1/2/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("s") == "" {
			http.Redirect(w, r, "/comic/1/2/?s=3", http.StatusFound)
			return
		}

		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(gbk))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	page, err := Fetch(context.Background(), srv.URL+"/comic/1/2/", "gb2312")
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/comic/1/2/?s=3", page.URL)
	assert.Equal(t, `<p>首页 >> 海贼王 集</p>`, page.Body)
}

func TestFetch_NotFound(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, "utf-8")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "client errors must not be retried")
}

func TestFetch_UnknownCharset(t *testing.T) {
	_, err := Fetch(context.Background(), "http://127.0.0.1:1/", "klingon")
	assert.Error(t, err)
}

func TestCheckStatusCode(t *testing.T) {
	assert.NoError(t, CheckStatusCode(http.StatusOK))

	for _, code := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusTeapot, http.StatusServiceUnavailable} {
		assert.Error(t, CheckStatusCode(code), code)
	}
}
