package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/extract"
	"github.com/riks17/Document-OCR/internal/ocr"
	"github.com/riks17/Document-OCR/internal/pipeline"
	"github.com/riks17/Document-OCR/internal/raster"
	repo "github.com/riks17/Document-OCR/internal/repository"
)

// docingest submits one artifact through the full pipeline and prints the
// persisted result. Usage: docingest <document-type> <file>
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "docingest <document-type> <file>", "types", constants.DocumentTypeStrings())
		os.Exit(2)
	}
	docType := constants.DocumentType(os.Args[1])
	if !constants.IsValidDocumentType(os.Args[1]) {
		logger.Error("unknown document type", "arg", os.Args[1], "types", constants.DocumentTypeStrings())
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[2])
	if err != nil {
		logger.Error("read input file", "path", os.Args[2], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ownerID := uuid.New()
	if v := os.Getenv("OWNER_ID"); v != "" {
		ownerID, err = uuid.Parse(v)
		if err != nil {
			logger.Error("invalid OWNER_ID (must be UUID)", "arg", v, "error", err)
			os.Exit(2)
		}
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
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("apply schema", "error", err)
		os.Exit(1)
	}

	var engine ocr.Client
	if cfg.OCR.EngineURL != "" {
		engine = ocr.NewHTTPClient(ocr.HTTPConfig{
			BaseURL:     cfg.OCR.EngineURL,
			Language:    cfg.OCR.Language,
			CallTimeout: cfg.OCR.CallTimeout,
		})
	} else {
		engine = ocr.NewTesseractClient(ocr.TesseractConfig{
			Binary:      cfg.OCR.Tesseract,
			Language:    cfg.OCR.Language,
			TessdataDir: cfg.OCR.TessdataDir,
			CallTimeout: cfg.OCR.CallTimeout,
		})
	}

	p := pipeline.NewIngestionPipeline(
		pipeline.Config{
			Workers:       cfg.OCR.Workers,
			RetryAttempts: cfg.OCR.RetryAttempts,
			RetryDelay:    cfg.OCR.RetryDelay,
			SaveTimeout:   cfg.Database.SaveTimeout,
		},
		raster.NewRasterizer(cfg.Raster, logger),
		engine,
		extract.NewRuleExtractor(logger),
		repo.NewResultStore(entc, logger),
		logger,
	)

	artifact := entity.UploadedArtifact{
		Bytes:        data,
		MIMEType:     detectMIME(os.Args[2], data),
		DocumentType: docType,
		OwnerID:      ownerID,
	}
	auth := common.AuthContext{UserID: ownerID}
	runCtx := common.WithRequestID(common.WithAuthContext(ctx, auth), uuid.NewString())

	start := time.Now()
	result, err := p.Submit(runCtx, artifact, auth)
	dur := time.Since(start)
	if err != nil {
		logger.Error("ingestion failed", "error", err, "duration_ms", dur.Milliseconds())
		if common.IsArtifactError(err) {
			os.Exit(2) // caller sent a bad artifact, not our fault
		}
		os.Exit(1)
	}

	logger.Info("ingestion OK",
		"result_id", result.ID,
		"status", result.Status,
		"pages", result.PageCount,
		"duration_ms", dur.Milliseconds(),
	)
	out, _ := json.MarshalIndent(result, "", "  ")
	_, _ = os.Stdout.Write(append(out, '\n'))
}

func detectMIME(path string, data []byte) string {
	if ct := http.DetectContentType(data); ct != "application/octet-stream" {
		return ct
	}
	// fall back to the extension; the rasterizer still checks the header
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
