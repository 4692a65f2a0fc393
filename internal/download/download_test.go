package download

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"comic99/internal/domain"
	"comic99/internal/logger"
	"comic99/internal/sharedhttp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolume(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}

		assert.Equal(t, sharedhttp.UserAgent, r.Header.Get("User-Agent"))

		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = w.Write([]byte("img:" + r.URL.Path))
	}))
	defer srv.Close()

	entries := []domain.PictureEntry{
		{LocalName: "Book/Vol_1/0.jpg", RemoteURL: srv.URL + "/a.jpg"},
		{LocalName: "Book/Vol_1/1.jpg", RemoteURL: srv.URL + "/missing.jpg"},
		{LocalName: "Book/Vol_1/2.png", RemoteURL: srv.URL + "/b.png"},
	}

	dest := t.TempDir()
	log := logger.New(&domain.Config{LogLevel: "ERROR"})

	failed, err := Volume(dest, entries, 2, log)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))

	data, err := os.ReadFile(filepath.Join(dest, "Book", "Vol_1", "0.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img:/a.jpg", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "Book", "Vol_1", "2.png"))
	require.NoError(t, err)
	assert.Equal(t, "img:/b.png", string(data))

	_, err = os.Stat(filepath.Join(dest, "Book", "Vol_1", "1.jpg"))
	assert.True(t, os.IsNotExist(err))
}
