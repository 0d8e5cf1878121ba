package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/repository"
)

// Service is a tiny façade over the result store that produces XLSX bytes for exports.
type Service struct {
	store  repository.ResultStore
	logger *slog.Logger
}

func NewService(store repository.ResultStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Well-known field names across document types. Fields outside this set land
// in the Notes column.
var fieldColumns = []string{"id_number", "passport_number", "voter_id", "name", "date_of_birth"}

// ExportResultsXLSX returns an XLSX workbook (as bytes) with one row per
// processing result owned by the given user.
func (s *Service) ExportResultsXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	results, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Processed At",
		"Document Type",
		"Status",
		"ID Number",
		"Passport Number",
		"Voter ID",
		"Name",
		"Date of Birth",
		"Confidence",
		"Pages",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.UTC().Format(time.RFC3339))
		write(2, string(r.DocumentType))
		write(3, string(r.Status))

		if r.Document != nil {
			for i, name := range fieldColumns {
				if fv, ok := r.Document.Fields[name]; ok && fv.Status == entity.FieldOK {
					write(4+i, fv.Value)
				}
			}
			write(9, fmt.Sprintf("%.2f", r.Document.OverallConfidence))
		}
		write(10, fmt.Sprintf("%d/%d", r.PagesSucceeded, r.PageCount))
		write(11, notesFor(r))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "C", 16)
	_ = f.SetColWidth(sheet, "D", "H", 24) // field values
	_ = f.SetColWidth(sheet, "K", "K", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", userID.String(),
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// notesFor summarizes non-OK fields and page failures for the Notes column.
func notesFor(r *entity.ProcessingResult) string {
	var notes string
	if r.Document != nil {
		for name, fv := range r.Document.Fields {
			if fv.Status == entity.FieldOK {
				continue
			}
			if notes != "" {
				notes += "; "
			}
			notes += fmt.Sprintf("%s %s", name, fv.Status)
		}
	}
	for _, pe := range r.PageErrors {
		if notes != "" {
			notes += "; "
		}
		notes += fmt.Sprintf("page %d: %s", pe.PageIndex, truncate(pe.Message, 60))
	}
	return truncate(notes, 140)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
