package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

func sampleResult(owner uuid.UUID) *entity.ProcessingResult {
	return &entity.ProcessingResult{
		OwnerID:      owner,
		Status:       constants.StatusSucceeded,
		Format:       constants.IMAGE,
		DocumentType: constants.NationalID,
		Document: &entity.ExtractedDocument{
			DocumentType: constants.NationalID,
			Fields: map[string]entity.FieldValue{
				"id_number": {Value: "ABCDE1234F", Confidence: 0.9, Status: entity.FieldOK},
			},
			OverallConfidence: 0.9,
			RawText:           "ABCDE1234F",
		},
		PageCount:      1,
		PagesSucceeded: 1,
		ContentHashHex: "deadbeef",
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	owner := uuid.New()
	store := NewMemoryResultStore()
	ctx := context.Background()

	saved, err := store.Save(ctx, sampleResult(owner))
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
	if got.Status != constants.StatusSucceeded || got.ContentHashHex != "deadbeef" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	list, err := store.ListByUser(ctx, owner)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("ListByUser = %d results, want 1", len(list))
	}
}

func TestMemoryStoreScopesByOwner(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	store := NewMemoryResultStore()
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
}

func TestMemoryStoreErrorInjection(t *testing.T) {
	store := NewMemoryResultStore()
	store.SaveErr = errors.New("boom")

	_, err := store.Save(context.Background(), sampleResult(uuid.New()))
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Errorf("err = %v, want ErrStorageUnavailable", err)
	}
	if store.Len() != 0 {
		t.Errorf("failed save left %d results behind", store.Len())
	}
}
