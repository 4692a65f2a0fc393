package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"comic99/internal/buildinfo"
	"comic99/internal/config"
	"comic99/internal/domain"
	"comic99/internal/files"
	"comic99/internal/logger"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor the configured books for new volumes",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		if err := cfg.UpdateConfig(); err != nil {
			log.Error().Err(err).Msgf("error updating config")
		}

		// init dynamic config
		cfg.DynamicReload(log)

		if err := files.IsValidLocation(cfg.Config.DownloadLocation); err != nil {
			log.Fatal().Err(err).Msgf("invalid download location")
		}

		if len(cfg.Config.MonitoredBooks) == 0 {
			log.Fatal().Msg("no monitored books configured")
		}

		log.Info().Msg("starting to monitor configured books")

		ticker := time.NewTicker(time.Duration(cfg.Config.CheckInterval) * time.Minute)
		defer ticker.Stop()

		check := func() {
			wg := sync.WaitGroup{}

			for name, monitored := range cfg.Config.MonitoredBooks {
				wg.Add(1)

				go func() {
					defer wg.Done()

					mLog := log.With().Str("entry", name).Str("url", monitored.URL).Logger()
					if err := checkBook(ctx, cfg.Config, monitored, log); err != nil {
						mLog.Error().Err(err).Msg("error checking book")
					}
				}()
			}

			wg.Wait()
		}

		quit := make(chan struct{})
		done := monitorLoop(quit, ticker.C, check)

		// set up a channel to catch signals for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		fmt.Printf("received signal: %s, stopping monitoring.\n", <-sigCh)
		close(quit)
		<-done
	},
}

// monitorLoop runs check once, then on every tick until quit is closed.
// The returned channel is closed after the last check has returned.
func monitorLoop(quit <-chan struct{}, tick <-chan time.Time, check func()) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		check()

		for {
			select {
			case <-quit:
				return
			case <-tick:
				check()
			}
		}
	}()

	return done
}

// checkBook downloads the latest volume of a monitored book unless it is already present.
func checkBook(ctx context.Context, cfg *domain.Config, monitored *domain.MonitoredBook, log logger.Logger) error {
	client, book, err := fetchBook(ctx, monitored.URL)
	if err != nil {
		return err
	}

	o := volumeOutput{
		destDir: cfg.DownloadLocation,
		format:  cfg.Format,
		naming:  cfg.NamingTemplate,
		workers: cfg.Workers,
	}
	if monitored.Format != "" {
		o.format = monitored.Format
	}

	volume := book.Volumes[len(book.Volumes)-1]
	bLog := log.With().Str("book", book.Name).Str("volume", volume.Title).Logger()

	if files.Exists(o.target(book, volume)) {
		bLog.Debug().Msg("volume has already been downloaded, skipping")
		return nil
	}

	entries, err := resolveVolume(ctx, client, book, volume)
	if err != nil {
		return err
	}

	if cfg.Aria2 {
		bLog.Info().Int("pictures", len(entries)).Msg("sending volume to aria2")
		return sendToAria2(ctx, cfg.Aria2RPC, cfg.DownloadLocation, entries)
	}

	bLog.Info().Int("pictures", len(entries)).Msg("downloading volume")
	if err := fetchVolume(o, book, volume, entries, log); err != nil {
		return err
	}

	bLog.Info().Msg("finished downloading volume")
	return nil
}
