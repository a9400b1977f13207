package main

import (
	"context"
	"log"
	"time"

	"mudanzasBack/internal/repositories"
)

const (
	requestArchiverTimeout = 1 * time.Minute
	// requests whose move date passed this long ago drop out of the feed
	requestRetention = 30 * 24 * time.Hour
)

// startRequestArchiver archives requests whose move date is long past.
// Runs once at startup and then daily.
func startRequestArchiver(ctx context.Context, repo *repositories.RequestRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, requestArchiverTimeout)
			archived, err := repo.ArchiveStale(runCtx, time.Now().Add(-requestRetention))
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("request archiver: failed to archive stale requests: %v", err)
				}
			} else if archived > 0 && infoLog != nil {
				infoLog.Printf("request archiver: archived %d stale requests", archived)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
