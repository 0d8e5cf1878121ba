package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

// newSQLiteStore backs the ResultStore with an in-memory sqlite database so
// the ent query and JSON column paths are the ones production runs.
func newSQLiteStore(t *testing.T) ResultStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := openSQLite("file::memory:?_pragma=foreign_keys(1)", logger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return NewResultStore(client, logger)
}

func TestResultStoreRoundTrip(t *testing.T) {
	owner := uuid.New()
	store := newSQLiteStore(t)
	ctx := context.Background()

	in := sampleResult(owner)
	in.Status = constants.StatusPartial
	in.PageCount = 2
	in.PagesSucceeded = 1
	in.PageErrors = []entity.PageError{{PageIndex: 1, Message: "engine timeout"}}

	saved, err := store.Save(ctx, in)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("Save did not assign an ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("Save did not stamp CreatedAt")
	}

	got, err := store.GetByID(ctx, saved.ID, owner)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != constants.StatusPartial || got.ContentHashHex != "deadbeef" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.DocumentType != constants.NationalID || got.Format != constants.IMAGE {
		t.Errorf("document_type/format = %v/%v, want NATIONAL_ID/IMAGE", got.DocumentType, got.Format)
	}
	if got.Document == nil {
		t.Fatal("round trip lost the extracted document")
	}
	id := got.Document.Fields["id_number"]
	if id.Status != entity.FieldOK || id.Value != "ABCDE1234F" || id.Confidence != 0.9 {
		t.Errorf("id_number = %+v, want OK ABCDE1234F at 0.9", id)
	}
	if got.Document.RawText != "ABCDE1234F" {
		t.Errorf("raw text = %q, want ABCDE1234F", got.Document.RawText)
	}
	if got.Document.OverallConfidence != 0.9 {
		t.Errorf("overall confidence = %v, want 0.9", got.Document.OverallConfidence)
	}
	if len(got.PageErrors) != 1 || got.PageErrors[0].PageIndex != 1 || got.PageErrors[0].Message != "engine timeout" {
		t.Errorf("page errors = %+v, want the saved engine timeout on page 1", got.PageErrors)
	}
	if got.PageCount != 2 || got.PagesSucceeded != 1 {
		t.Errorf("page counts = %d/%d, want 2/1", got.PageCount, got.PagesSucceeded)
	}
}

func TestResultStoreScopesByOwner(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	store := newSQLiteStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, sampleResult(owner))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetByID(ctx, saved.ID, stranger); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("stranger GetByID err = %v, want ErrUnauthorized", err)
	}
	list, err := store.ListByUser(ctx, stranger)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("stranger sees %d results, want 0", len(list))
	}

	list, err = store.ListByUser(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Errorf("owner list = %+v, want the one saved result", list)
	}
}

func TestResultStoreSecondSubmissionGetsOwnRow(t *testing.T) {
	owner := uuid.New()
	store := newSQLiteStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, sampleResult(owner))
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save(ctx, sampleResult(owner))
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Error("re-submitting the same artifact reused the result ID")
	}
	list, err := store.ListByUser(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("ListByUser = %d results, want 2", len(list))
	}
}
