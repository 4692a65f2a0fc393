package download

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"comic99/internal/domain"
	"comic99/internal/logger"
	"comic99/internal/sharedhttp"

	"github.com/gocolly/colly"
	"github.com/pkg/errors"
)

const DefaultWorkers = 10

// Volume downloads every picture of a resolved volume into destDir with at
// most workers requests in flight. A failed picture is logged and counted but
// never stops the others; the number of failures is returned.
func Volume(destDir string, entries []domain.PictureEntry, workers int, log logger.Logger) (int, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	destDir, err := filepath.Abs(destDir)
	if err != nil {
		return 0, err
	}

	c := colly.NewCollector(
		colly.Async(true),
		colly.AllowURLRevisit(),
		colly.UserAgent(sharedhttp.UserAgent),
	)
	c.WithTransport(sharedhttp.Transport)
	c.SetRequestTimeout(120 * time.Second)
	c.MaxBodySize = 0

	if err := c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: workers}); err != nil {
		return 0, errors.Wrap(err, "could not limit parallelism")
	}

	var failed atomic.Int64

	c.OnResponse(func(r *colly.Response) {
		name := r.Ctx.Get("name")
		if err := r.Save(name); err != nil {
			failed.Add(1)
			log.Error().Err(err).Str("file", name).Msg("error saving picture")
			return
		}

		log.Trace().Str("file", name).Msg("saved picture")
	})

	c.OnError(func(r *colly.Response, err error) {
		failed.Add(1)
		log.Error().Err(err).Int("status", r.StatusCode).Str("url", r.Request.URL.String()).Msg("error downloading picture")
	})

	for _, e := range entries {
		name := filepath.Join(destDir, filepath.FromSlash(e.LocalName))

		if err := os.MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
			return int(failed.Load()), errors.Wrapf(err, "could not create directory for %s", e.LocalName)
		}

		ctx := colly.NewContext()
		ctx.Put("name", name)

		if err := c.Request("GET", e.RemoteURL, nil, ctx, nil); err != nil {
			failed.Add(1)
			log.Error().Err(err).Str("url", e.RemoteURL).Msg("error queueing picture")
		}
	}

	c.Wait()

	return int(failed.Load()), nil
}
