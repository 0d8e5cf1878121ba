package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/extract"
	"github.com/riks17/Document-OCR/internal/repository"
)

const idPageText = "Name: John Doe\nDOB: 12/05/1990\nABCDE1234F\n"

type fakeRaster struct {
	pages []entity.PageImage
	err   error
}

func (f fakeRaster) Rasterize(context.Context, entity.UploadedArtifact) ([]entity.PageImage, error) {
	return f.pages, f.err
}

// fakeEngine answers per page index and counts calls per page.
type fakeEngine struct {
	mu      sync.Mutex
	calls   map[int]int
	respond func(page entity.PageImage, attempt int) (entity.OcrPageResult, error)
}

func newFakeEngine(respond func(page entity.PageImage, attempt int) (entity.OcrPageResult, error)) *fakeEngine {
	return &fakeEngine{calls: make(map[int]int), respond: respond}
}

func (f *fakeEngine) Recognize(_ context.Context, page entity.PageImage) (entity.OcrPageResult, error) {
	f.mu.Lock()
	f.calls[page.Index]++
	attempt := f.calls[page.Index]
	f.mu.Unlock()
	return f.respond(page, attempt)
}

func (f *fakeEngine) callsFor(idx int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[idx]
}

func okEngine() *fakeEngine {
	return newFakeEngine(func(page entity.PageImage, _ int) (entity.OcrPageResult, error) {
		return entity.OcrPageResult{Index: page.Index, Text: idPageText, Confidence: 0.9, Language: "eng"}, nil
	})
}

func nPages(n int) []entity.PageImage {
	pages := make([]entity.PageImage, n)
	for i := range pages {
		pages[i] = entity.PageImage{Index: i, SourcePage: i + 1, Width: 10, Height: 10, PNG: []byte{1}}
	}
	return pages
}

func newTestPipeline(r Rasterizer, engine *fakeEngine, store repository.ResultStore) *IngestionPipeline {
	return NewIngestionPipeline(
		Config{Workers: 2, RetryAttempts: 3, RetryDelay: time.Millisecond, SaveTimeout: time.Second},
		r, engine, extract.NewRuleExtractor(nil), store, nil,
	)
}

func testArtifact(owner uuid.UUID) entity.UploadedArtifact {
	return entity.UploadedArtifact{
		Bytes:        []byte("%PDF-fake"),
		MIMEType:     "application/pdf",
		DocumentType: constants.NationalID,
		OwnerID:      owner,
	}
}

func TestSubmitSucceeds(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	p := newTestPipeline(fakeRaster{pages: nPages(3)}, okEngine(), store)

	res, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Status != constants.StatusSucceeded {
		t.Errorf("status = %v, want SUCCEEDED", res.Status)
	}
	if res.ID == uuid.Nil {
		t.Error("result has no assigned ID")
	}
	if res.PageCount != 3 || res.PagesSucceeded != 3 {
		t.Errorf("pages = %d/%d, want 3/3", res.PagesSucceeded, res.PageCount)
	}
	if res.Document == nil {
		t.Fatal("result has no document")
	}
	if got := res.Document.Fields["id_number"]; got.Status != entity.FieldOK || got.Value != "ABCDE1234F" {
		t.Errorf("id_number = %+v, want OK ABCDE1234F", got)
	}
	if res.ContentHashHex == "" {
		t.Error("result has no content hash")
	}
	if store.Len() != 1 {
		t.Errorf("stored results = %d, want 1", store.Len())
	}

	// owner can read it back; a stranger cannot
	if _, err := store.GetByID(context.Background(), res.ID, owner); err != nil {
		t.Errorf("owner GetByID failed: %v", err)
	}
	if _, err := store.GetByID(context.Background(), res.ID, uuid.New()); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("stranger GetByID err = %v, want ErrUnauthorized", err)
	}
}

func TestSubmitPartialOnPageFailure(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	engine := newFakeEngine(func(page entity.PageImage, _ int) (entity.OcrPageResult, error) {
		if page.Index == 1 {
			return entity.OcrPageResult{}, fmt.Errorf("glyph soup: %w", common.ErrEngineRejected)
		}
		return entity.OcrPageResult{Index: page.Index, Text: idPageText, Confidence: 0.9}, nil
	})
	p := newTestPipeline(fakeRaster{pages: nPages(3)}, engine, store)

	res, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Status != constants.StatusPartial {
		t.Errorf("status = %v, want PARTIAL", res.Status)
	}
	if res.PagesSucceeded != 2 || res.PageCount != 3 {
		t.Errorf("pages = %d/%d, want 2/3", res.PagesSucceeded, res.PageCount)
	}
	if len(res.PageErrors) != 1 || res.PageErrors[0].PageIndex != 1 {
		t.Errorf("page errors = %+v, want one error for page 1", res.PageErrors)
	}
	// a permanent rejection must not burn the retry budget
	if got := engine.callsFor(1); got != 1 {
		t.Errorf("page 1 attempts = %d, want 1 (no retry on rejection)", got)
	}
	if store.Len() != 1 {
		t.Errorf("stored results = %d, want 1 (partials persist)", store.Len())
	}
}

func TestSubmitFailsWhenAllPagesFail(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	engine := newFakeEngine(func(entity.PageImage, int) (entity.OcrPageResult, error) {
		return entity.OcrPageResult{}, fmt.Errorf("down: %w", common.ErrEngineUnavailable)
	})
	p := newTestPipeline(fakeRaster{pages: nPages(2)}, engine, store)

	res, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err == nil {
		t.Fatal("Submit succeeded, want error")
	}
	if res == nil || res.Status != constants.StatusFailed {
		t.Errorf("result = %+v, want FAILED status attached to the error", res)
	}
	if store.Len() != 0 {
		t.Errorf("stored results = %d, want 0 (failures do not persist)", store.Len())
	}
	// transient errors use the whole retry budget
	if got := engine.callsFor(0); got != 3 {
		t.Errorf("page 0 attempts = %d, want 3", got)
	}
}

func TestSubmitRetriesTransientErrors(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	engine := newFakeEngine(func(page entity.PageImage, attempt int) (entity.OcrPageResult, error) {
		if attempt < 3 {
			return entity.OcrPageResult{}, fmt.Errorf("flaky: %w", common.ErrEngineTimeout)
		}
		return entity.OcrPageResult{Index: page.Index, Text: idPageText, Confidence: 0.9}, nil
	})
	p := newTestPipeline(fakeRaster{pages: nPages(1)}, engine, store)

	res, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Status != constants.StatusSucceeded {
		t.Errorf("status = %v, want SUCCEEDED after retries", res.Status)
	}
	if got := engine.callsFor(0); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestSubmitPropagatesArtifactErrors(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	p := newTestPipeline(fakeRaster{err: fmt.Errorf("bad bytes: %w", common.ErrCorruptArtifact)}, okEngine(), store)

	_, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if !errors.Is(err, common.ErrCorruptArtifact) {
		t.Errorf("err = %v, want ErrCorruptArtifact", err)
	}
	if store.Len() != 0 {
		t.Errorf("stored results = %d, want 0", store.Len())
	}
}

func TestSubmitStorageFailure(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	store.SaveErr = errors.New("connection reset")
	p := newTestPipeline(fakeRaster{pages: nPages(1)}, okEngine(), store)

	_, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Errorf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestSubmitCancellation(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	p := newTestPipeline(fakeRaster{pages: nPages(3)}, okEngine(), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Submit(ctx, testArtifact(owner), common.AuthContext{UserID: owner})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if store.Len() != 0 {
		t.Errorf("stored results = %d, want 0 (canceled runs never persist)", store.Len())
	}
}

func TestSubmitAuthorization(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	p := newTestPipeline(fakeRaster{pages: nPages(1)}, okEngine(), store)

	t.Run("anonymous", func(t *testing.T) {
		_, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{})
		if !errors.Is(err, common.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("owner mismatch", func(t *testing.T) {
		_, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: uuid.New()})
		if !errors.Is(err, common.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestSubmitTwiceCreatesTwoResults(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	p := newTestPipeline(fakeRaster{pages: nPages(1)}, okEngine(), store)

	a, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Submit(context.Background(), testArtifact(owner), common.AuthContext{UserID: owner})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("resubmission reused the result ID; results must be create-once")
	}
	if a.ContentHashHex != b.ContentHashHex {
		t.Error("same bytes produced different content hashes")
	}
	if store.Len() != 2 {
		t.Errorf("stored results = %d, want 2", store.Len())
	}
}

func TestDeriveStatus(t *testing.T) {
	okDoc := func() entity.ExtractedDocument {
		return entity.ExtractedDocument{
			DocumentType: constants.NationalID,
			Fields: map[string]entity.FieldValue{
				"id_number":     {Value: "ABCDE1234F", Confidence: 0.9, Status: entity.FieldOK},
				"name":          {Value: "John Doe", Confidence: 0.9, Status: entity.FieldOK},
				"father_name":   {Status: entity.FieldMissing},
				"date_of_birth": {Value: "12/05/1990", Confidence: 0.9, Status: entity.FieldOK},
			},
		}
	}

	t.Run("all required ok, no page errors", func(t *testing.T) {
		if got := deriveStatus(constants.NationalID, okDoc(), 0); got != constants.StatusSucceeded {
			t.Errorf("status = %v, want SUCCEEDED", got)
		}
	})

	t.Run("optional field missing does not demote", func(t *testing.T) {
		if got := deriveStatus(constants.NationalID, okDoc(), 0); got != constants.StatusSucceeded {
			t.Errorf("status = %v, want SUCCEEDED", got)
		}
	})

	t.Run("page failures demote to partial", func(t *testing.T) {
		if got := deriveStatus(constants.NationalID, okDoc(), 1); got != constants.StatusPartial {
			t.Errorf("status = %v, want PARTIAL", got)
		}
	})

	t.Run("one required field missing is partial", func(t *testing.T) {
		doc := okDoc()
		doc.Fields["date_of_birth"] = entity.FieldValue{Status: entity.FieldMissing}
		if got := deriveStatus(constants.NationalID, doc, 0); got != constants.StatusPartial {
			t.Errorf("status = %v, want PARTIAL", got)
		}
	})

	t.Run("no required field extracted is failed", func(t *testing.T) {
		doc := okDoc()
		for name, fv := range doc.Fields {
			fv.Status = entity.FieldMissing
			fv.Value = ""
			doc.Fields[name] = fv
		}
		if got := deriveStatus(constants.NationalID, doc, 0); got != constants.StatusFailed {
			t.Errorf("status = %v, want FAILED", got)
		}
	})

	t.Run("generic succeeds without fields", func(t *testing.T) {
		doc := entity.ExtractedDocument{DocumentType: constants.Generic}
		if got := deriveStatus(constants.Generic, doc, 0); got != constants.StatusSucceeded {
			t.Errorf("status = %v, want SUCCEEDED", got)
		}
	})
}
