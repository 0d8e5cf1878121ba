// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

// ProcessingResult is the model entity for the ProcessingResult schema.
type ProcessingResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence *float32 `json:"overall_confidence,omitempty"`
	// PageErrors holds the value of the "page_errors" field.
	PageErrors json.RawMessage `json:"page_errors,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// PagesSucceeded holds the value of the "pages_succeeded" field.
	PagesSucceeded int `json:"pages_succeeded,omitempty"`
	// ContentHashHex holds the value of the "content_hash_hex" field.
	ContentHashHex string `json:"content_hash_hex,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingresult.FieldExtractedFields, processingresult.FieldPageErrors:
			values[i] = new([]byte)
		case processingresult.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case processingresult.FieldPageCount, processingresult.FieldPagesSucceeded:
			values[i] = new(sql.NullInt64)
		case processingresult.FieldStatus, processingresult.FieldFormat, processingresult.FieldDocumentType, processingresult.FieldRawText, processingresult.FieldContentHashHex:
			values[i] = new(sql.NullString)
		case processingresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case processingresult.FieldID, processingresult.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingResult fields.
func (_m *ProcessingResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processingresult.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case processingresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processingresult.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case processingresult.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case processingresult.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case processingresult.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case processingresult.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = new(float32)
				*_m.OverallConfidence = float32(value.Float64)
			}
		case processingresult.FieldPageErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field page_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PageErrors); err != nil {
					return fmt.Errorf("unmarshal field page_errors: %w", err)
				}
			}
		case processingresult.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case processingresult.FieldPagesSucceeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages_succeeded", values[i])
			} else if value.Valid {
				_m.PagesSucceeded = int(value.Int64)
			}
		case processingresult.FieldContentHashHex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash_hex", values[i])
			} else if value.Valid {
				_m.ContentHashHex = value.String
			}
		case processingresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingResult.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessingResult.
// Note that you need to call ProcessingResult.Unwrap() before calling this method if this ProcessingResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingResult) Update() *ProcessingResultUpdateOne {
	return NewProcessingResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingResult) Unwrap() *ProcessingResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingResult) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	if v := _m.OverallConfidence; v != nil {
		builder.WriteString("overall_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("page_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageErrors))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("pages_succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.PagesSucceeded))
	builder.WriteString(", ")
	builder.WriteString("content_hash_hex=")
	builder.WriteString(_m.ContentHashHex)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingResults is a parsable slice of ProcessingResult.
type ProcessingResults []*ProcessingResult
