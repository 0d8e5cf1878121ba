package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/export"
	repo "github.com/riks17/Document-OCR/internal/repository"
)

// exportxlsx writes all of a user's processing results to an XLSX workbook.
// Usage: exportxlsx <owner-id-uuid> <out.xlsx>
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "exportxlsx <owner-id-uuid> <out.xlsx>")
		os.Exit(2)
	}
	ownerID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid owner id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening DB", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	svc := export.NewService(repo.NewResultStore(entc, logger), logger)
	data, err := svc.ExportResultsXLSX(ctx, ownerID)
	if err != nil {
		logger.Error("export failed", "owner_id", ownerID, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(os.Args[2], data, 0o644); err != nil {
		logger.Error("write workbook", "path", os.Args[2], "error", err)
		os.Exit(1)
	}
	logger.Info("export OK", "path", os.Args[2], "bytes", len(data))
}
