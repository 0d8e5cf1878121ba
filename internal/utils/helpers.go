package utils

import (
	"encoding/json"
	"fmt"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/gen/ent"
	"github.com/riks17/Document-OCR/internal/entity"
)

// ToProcessingResult converts an ent row into the entity DTO.
func ToProcessingResult(r *ent.ProcessingResult) (*entity.ProcessingResult, error) {
	out := &entity.ProcessingResult{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		Status:         constants.ResultStatus(r.Status),
		Format:         constants.Format(r.Format),
		DocumentType:   constants.DocumentType(r.DocumentType),
		PageCount:      r.PageCount,
		PagesSucceeded: r.PagesSucceeded,
		ContentHashHex: r.ContentHashHex,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.ExtractedFields) > 0 {
		var fields map[string]entity.FieldValue
		if err := json.Unmarshal(r.ExtractedFields, &fields); err != nil {
			return nil, fmt.Errorf("unmarshal extracted fields: %w", err)
		}
		doc := &entity.ExtractedDocument{
			DocumentType: constants.DocumentType(r.DocumentType),
			Fields:       fields,
			RawText:      r.RawText,
		}
		if r.OverallConfidence != nil {
			doc.OverallConfidence = *r.OverallConfidence
		}
		out.Document = doc
	}
	if len(r.PageErrors) > 0 {
		if err := json.Unmarshal(r.PageErrors, &out.PageErrors); err != nil {
			return nil, fmt.Errorf("unmarshal page errors: %w", err)
		}
	}
	return out, nil
}

// MarshalFields serializes the extracted field map for storage.
// Returns nil for a nil document so the column stays NULL.
func MarshalFields(doc *entity.ExtractedDocument) (json.RawMessage, error) {
	if doc == nil {
		return nil, nil
	}
	b, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal extracted fields: %w", err)
	}
	return b, nil
}

// MarshalPageErrors serializes page errors for storage.
func MarshalPageErrors(errs []entity.PageError) (json.RawMessage, error) {
	if len(errs) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return nil, fmt.Errorf("marshal page errors: %w", err)
	}
	return b, nil
}
