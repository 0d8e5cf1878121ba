package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
)

// FieldStatus describes how a single field extraction went.
type FieldStatus string

const (
	FieldOK        FieldStatus = "OK"
	FieldMissing   FieldStatus = "MISSING"   // no candidate matched
	FieldAmbiguous FieldStatus = "AMBIGUOUS" // multiple conflicting candidates
	FieldInvalid   FieldStatus = "INVALID"   // matched but failed format validation
)

// FieldValue is one extracted field. Value is empty unless Status is OK.
type FieldValue struct {
	Value      string      `json:"value,omitempty"`
	Confidence float32     `json:"confidence"`
	SourcePage int         `json:"source_page"` // 0-based page index the value came from
	Status     FieldStatus `json:"status"`
}

// ExtractedDocument is the structured output of field extraction.
// The field set is determined solely by the document type.
type ExtractedDocument struct {
	DocumentType      constants.DocumentType `json:"document_type"`
	Fields            map[string]FieldValue  `json:"fields"`
	OverallConfidence float32                `json:"overall_confidence"`
	RawText           string                 `json:"raw_text"` // page texts concatenated in page order
}

// PageError records a page-scoped failure without aborting the run.
type PageError struct {
	PageIndex int    `json:"page_index"`
	Message   string `json:"message"`
}

// ProcessingResult is the durable outcome of one pipeline run.
// Rows are create-once: corrections produce a new result, never an update.
type ProcessingResult struct {
	ID             uuid.UUID              `json:"id"`
	OwnerID        uuid.UUID              `json:"owner_id"`
	Status         constants.ResultStatus `json:"status"`
	Format         constants.Format       `json:"format"`
	DocumentType   constants.DocumentType `json:"document_type"`
	Document       *ExtractedDocument     `json:"document,omitempty"`
	PageErrors     []PageError            `json:"page_errors,omitempty"`
	PageCount      int                    `json:"page_count"`
	PagesSucceeded int                    `json:"pages_succeeded"`
	ContentHashHex string                 `json:"content_hash_hex"`
	CreatedAt      time.Time              `json:"created_at"`
}
