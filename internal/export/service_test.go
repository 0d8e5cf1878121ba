package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/repository"
)

func TestExportResultsXLSX(t *testing.T) {
	owner := uuid.New()
	store := repository.NewMemoryResultStore()
	_, err := store.Save(context.Background(), &entity.ProcessingResult{
		OwnerID:      owner,
		Status:       constants.StatusSucceeded,
		Format:       constants.IMAGE,
		DocumentType: constants.NationalID,
		Document: &entity.ExtractedDocument{
			DocumentType: constants.NationalID,
			Fields: map[string]entity.FieldValue{
				"id_number":     {Value: "ABCDE1234F", Confidence: 0.9, Status: entity.FieldOK},
				"name":          {Value: "John Doe", Confidence: 0.88, Status: entity.FieldOK},
				"date_of_birth": {Status: entity.FieldMissing},
			},
			OverallConfidence: 0.88,
		},
		PageCount:      1,
		PagesSucceeded: 1,
		ContentHashHex: "deadbeef",
	})
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(store, nil)
	data, err := svc.ExportResultsXLSX(context.Background(), owner)
	if err != nil {
		t.Fatalf("ExportResultsXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Results")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 result", len(rows))
	}
	found := false
	for _, cell := range rows[1] {
		if cell == "ABCDE1234F" {
			found = true
		}
	}
	if !found {
		t.Errorf("result row missing the ID value: %v", rows[1])
	}
}

func TestExportResultsXLSXEmpty(t *testing.T) {
	svc := NewService(repository.NewMemoryResultStore(), nil)
	data, err := svc.ExportResultsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportResultsXLSX returned error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Results")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
