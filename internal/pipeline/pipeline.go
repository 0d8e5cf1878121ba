package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/errgroup"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/extract"
	"github.com/riks17/Document-OCR/internal/ocr"
	"github.com/riks17/Document-OCR/internal/repository"
)

// Rasterizer turns a validated artifact into ordered page images.
type Rasterizer interface {
	Rasterize(ctx context.Context, artifact entity.UploadedArtifact) ([]entity.PageImage, error)
}

// Config tunes the page fan-out and persistence behavior.
type Config struct {
	Workers       int
	RetryAttempts int
	RetryDelay    time.Duration
	SaveTimeout   time.Duration
}

// IngestionPipeline drives one artifact from upload to a persisted result:
// rasterize, recognize pages concurrently, extract fields, persist. A
// successful run returns the persisted result and no error. A failed run
// returns an error; when every page failed recognition it also returns an
// unpersisted FAILED result carrying the page errors, for diagnostics.
type IngestionPipeline struct {
	cfg       Config
	raster    Rasterizer
	engine    ocr.Client
	extractor extract.Extractor
	store     repository.ResultStore
	logger    *slog.Logger
}

func NewIngestionPipeline(cfg Config, raster Rasterizer, engine ocr.Client, extractor extract.Extractor, store repository.ResultStore, logger *slog.Logger) *IngestionPipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 200 * time.Millisecond
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionPipeline{
		cfg:       cfg,
		raster:    raster,
		engine:    engine,
		extractor: extractor,
		store:     store,
		logger:    logger,
	}
}

// Submit processes one uploaded artifact on behalf of auth's user and returns
// the persisted result. Artifact-level failures (unsupported format, corrupt
// or oversized input) return an error before any page work starts. Page-level
// OCR failures degrade the result to PARTIAL instead of failing the run;
// only when every page fails is the run FAILED, and nothing is persisted.
func (p *IngestionPipeline) Submit(ctx context.Context, artifact entity.UploadedArtifact, auth common.AuthContext) (*entity.ProcessingResult, error) {
	if !auth.Valid() {
		return nil, fmt.Errorf("submit requires an authenticated user: %w", common.ErrUnauthorized)
	}
	if artifact.OwnerID != auth.UserID {
		return nil, fmt.Errorf("artifact owner does not match caller: %w", common.ErrUnauthorized)
	}
	if !constants.IsValidDocumentType(string(artifact.DocumentType)) {
		return nil, fmt.Errorf("unknown document type %q: %w", artifact.DocumentType, common.ErrUnsupportedFormat)
	}

	hash := artifact.ContentHashHex()
	log := p.logger.With("owner_id", auth.UserID, "content_hash", hash, "document_type", artifact.DocumentType)
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("request_id", rid)
	}
	log.Info("pipeline.received", "state", constants.StateReceived, "bytes", len(artifact.Bytes), "mime_type", artifact.MIMEType)

	log.Info("pipeline.rasterizing", "state", constants.StateRasterizing)
	pages, err := p.raster.Rasterize(ctx, artifact)
	if err != nil {
		log.Error("pipeline.rasterize.failed", "error", err)
		return nil, err
	}
	format := constants.MapMIMEToFormat(artifact.MIMEType)

	log.Info("pipeline.recognizing", "state", constants.StateRecognizing, "page_count", len(pages), "workers", p.cfg.Workers)
	ocrResults, pageErrs := p.recognizePages(ctx, pages, log)
	if err := ctx.Err(); err != nil {
		// canceled mid-flight: in-flight pages were allowed to finish above,
		// but their output is discarded and nothing is persisted
		log.Warn("pipeline.canceled", "error", err)
		return nil, err
	}

	result := &entity.ProcessingResult{
		OwnerID:        auth.UserID,
		Format:         format,
		DocumentType:   artifact.DocumentType,
		PageErrors:     pageErrs,
		PageCount:      len(pages),
		PagesSucceeded: len(ocrResults),
		ContentHashHex: hash,
	}

	if len(ocrResults) == 0 {
		// nothing recognized: record the failure, do not persist
		result.Status = constants.StatusFailed
		log.Error("pipeline.failed", "page_errors", len(pageErrs))
		return result, fmt.Errorf("no page produced recognizable text: %w", common.ErrExtractionFailed)
	}

	log.Info("pipeline.extracting", "state", constants.StateExtracting, "pages_succeeded", len(ocrResults))
	doc, err := p.extractor.Extract(artifact.DocumentType, ocrResults)
	if err != nil {
		log.Error("pipeline.extract.failed", "error", err)
		return nil, err
	}
	result.Document = &doc
	result.Status = deriveStatus(artifact.DocumentType, doc, len(pageErrs))

	if err := ctx.Err(); err != nil {
		log.Warn("pipeline.canceled", "error", err)
		return nil, err
	}

	log.Info("pipeline.persisting", "state", constants.StatePersisting, "status", result.Status)
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.SaveTimeout)
	defer cancel()
	saved, err := p.store.Save(saveCtx, result)
	if err != nil {
		log.Error("pipeline.persist.failed", "error", err)
		return nil, err
	}

	log.Info("pipeline.done",
		"result_id", saved.ID,
		"status", saved.Status,
		"pages_succeeded", saved.PagesSucceeded,
		"page_count", saved.PageCount,
		"overall_confidence", doc.OverallConfidence)
	return saved, nil
}

// recognizePages fans pages out to the OCR engine with a bounded worker pool.
// Each page gets its own retry budget for transient engine errors; permanent
// rejections fail the page immediately. Returned results are ordered by page
// index regardless of completion order.
func (p *IngestionPipeline) recognizePages(ctx context.Context, pages []entity.PageImage, log *slog.Logger) ([]entity.OcrPageResult, []entity.PageError) {
	results := make([]*entity.OcrPageResult, len(pages))
	errs := make([]*entity.PageError, len(pages))

	// In-flight calls run to completion even when ctx is canceled; the
	// caller discards everything afterwards. Cancellation only stops new
	// pages from starting.
	callCtx := context.WithoutCancel(ctx)

	g := new(errgroup.Group)
	g.SetLimit(p.cfg.Workers)
	for i, page := range pages {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := retry.DoWithData(
				func() (entity.OcrPageResult, error) {
					return p.engine.Recognize(callCtx, page)
				},
				retry.RetryIf(common.IsRetryableEngineError),
				retry.Attempts(uint(p.cfg.RetryAttempts)),
				retry.Delay(p.cfg.RetryDelay),
				retry.DelayType(retry.BackOffDelay),
				retry.LastErrorOnly(true),
				retry.Context(callCtx),
			)
			if err != nil {
				log.Warn("pipeline.ocr.page_failed", "page_index", page.Index, "error", err)
				errs[i] = &entity.PageError{PageIndex: page.Index, Message: err.Error()}
				return nil
			}
			log.Debug("pipeline.ocr.page_ok", "page_index", page.Index, "confidence", res.Confidence)
			results[i] = &res
			return nil
		})
	}
	_ = g.Wait()

	var okResults []entity.OcrPageResult
	var pageErrs []entity.PageError
	for i := range pages {
		if results[i] != nil {
			okResults = append(okResults, *results[i])
		}
		if errs[i] != nil {
			pageErrs = append(pageErrs, *errs[i])
		}
	}
	sort.Slice(okResults, func(a, b int) bool { return okResults[a].Index < okResults[b].Index })
	return okResults, pageErrs
}

// deriveStatus folds page failures and field outcomes into the result status.
// SUCCEEDED requires every page recognized and every required field OK;
// a document where no required field extracted is FAILED even if pages read
// fine; everything in between is PARTIAL. GENERIC has no required fields, so
// it succeeds whenever all pages were recognized.
func deriveStatus(docType constants.DocumentType, doc entity.ExtractedDocument, failedPages int) constants.ResultStatus {
	rs, ok := extract.RulesFor(docType)
	if !ok {
		return constants.StatusFailed
	}

	required, okCount := 0, 0
	for _, rule := range rs.Fields {
		if !rule.Required {
			continue
		}
		required++
		if doc.Fields[rule.Name].Status == entity.FieldOK {
			okCount++
		}
	}

	if required > 0 && okCount == 0 {
		return constants.StatusFailed
	}
	if failedPages == 0 && okCount == required {
		return constants.StatusSucceeded
	}
	return constants.StatusPartial
}
