// jobreport writes an XLSX report of finished jobs for operators.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fieldvoice/backoffice/internal/common"
	"github.com/fieldvoice/backoffice/internal/export"
	repo "github.com/fieldvoice/backoffice/internal/repository"
	"github.com/fieldvoice/backoffice/internal/server"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		out   = flag.String("out", "jobs.xlsx", "output XLSX file path")
		limit = flag.Int("limit", 500, "maximum number of jobs to include (0 = all)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	jobRepo := repo.NewJobRepository(entc, logger)
	svc := export.NewService(jobRepo, logger)

	data, err := svc.ExportJobsXLSX(ctx, *limit)
	if err != nil {
		printError("Error: building report: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
}
