// dbhealth checks connectivity to the job database and reports any jobs
// stuck in processing, which usually means a worker died mid-job.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fieldvoice/backoffice/internal/common"
	repo "github.com/fieldvoice/backoffice/internal/repository"
	"github.com/fieldvoice/backoffice/internal/server"
)

func main() {
	staleAfter := flag.Duration("stale-after", 30*time.Minute, "report processing jobs older than this")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, time.Second); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	jobRepo := repo.NewJobRepository(entc, logger)
	stale, err := jobRepo.ListStale(ctx, *staleAfter)
	if err != nil {
		log.Fatalf("listing stale jobs: %v", err)
	}

	if len(stale) == 0 {
		log.Println("no stale processing jobs")
		return
	}
	log.Printf("stale processing jobs: %d", len(stale))
	for _, j := range stale {
		claimedBy := ""
		if j.ClaimedBy != nil {
			claimedBy = *j.ClaimedBy
		}
		claimedAt := ""
		if j.ClaimedAt != nil {
			claimedAt = j.ClaimedAt.Format(time.RFC3339)
		}
		log.Printf("- %s kind=%s claimed_by=%s claimed_at=%s", j.ID, j.Kind, claimedBy, claimedAt)
	}
}
