// Code generated by ent, DO NOT EDIT.

package processingresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the processingresult type in the database.
	Label = "processing_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldExtractedFields holds the string denoting the extracted_fields field in the database.
	FieldExtractedFields = "extracted_fields"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldPageErrors holds the string denoting the page_errors field in the database.
	FieldPageErrors = "page_errors"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldPagesSucceeded holds the string denoting the pages_succeeded field in the database.
	FieldPagesSucceeded = "pages_succeeded"
	// FieldContentHashHex holds the string denoting the content_hash_hex field in the database.
	FieldContentHashHex = "content_hash_hex"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the processingresult in the database.
	Table = "processing_result"
)

// Columns holds all SQL columns for processingresult fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldStatus,
	FieldFormat,
	FieldDocumentType,
	FieldExtractedFields,
	FieldRawText,
	FieldOverallConfidence,
	FieldPageErrors,
	FieldPageCount,
	FieldPagesSucceeded,
	FieldContentHashHex,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	PageCountValidator func(int) error
	// PagesSucceededValidator is a validator for the "pages_succeeded" field. It is called by the builders before save.
	PagesSucceededValidator func(int) error
	// ContentHashHexValidator is a validator for the "content_hash_hex" field. It is called by the builders before save.
	ContentHashHexValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ProcessingResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByPagesSucceeded orders the results by the pages_succeeded field.
func ByPagesSucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagesSucceeded, opts...).ToFunc()
}

// ByContentHashHex orders the results by the content_hash_hex field.
func ByContentHashHex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHashHex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
