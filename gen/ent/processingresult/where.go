// Code generated by ent, DO NOT EDIT.

package processingresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldOwnerID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldStatus, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldFormat, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldDocumentType, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldRawText, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldPageCount, v))
}

// PagesSucceeded applies equality check predicate on the "pages_succeeded" field. It's identical to PagesSucceededEQ.
func PagesSucceeded(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldPagesSucceeded, v))
}

// ContentHashHex applies equality check predicate on the "content_hash_hex" field. It's identical to ContentHashHexEQ.
func ContentHashHex(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldContentHashHex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldOwnerID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContainsFold(FieldStatus, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContainsFold(FieldFormat, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContainsFold(FieldDocumentType, v))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotNull(FieldExtractedFields))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContainsFold(FieldRawText, v))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldOverallConfidence, v))
}

// OverallConfidenceIsNil applies the IsNil predicate on the "overall_confidence" field.
func OverallConfidenceIsNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIsNull(FieldOverallConfidence))
}

// OverallConfidenceNotNil applies the NotNil predicate on the "overall_confidence" field.
func OverallConfidenceNotNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotNull(FieldOverallConfidence))
}

// PageErrorsIsNil applies the IsNil predicate on the "page_errors" field.
func PageErrorsIsNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIsNull(FieldPageErrors))
}

// PageErrorsNotNil applies the NotNil predicate on the "page_errors" field.
func PageErrorsNotNil() predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotNull(FieldPageErrors))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldPageCount, v))
}

// PagesSucceededEQ applies the EQ predicate on the "pages_succeeded" field.
func PagesSucceededEQ(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldPagesSucceeded, v))
}

// PagesSucceededNEQ applies the NEQ predicate on the "pages_succeeded" field.
func PagesSucceededNEQ(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldPagesSucceeded, v))
}

// PagesSucceededIn applies the In predicate on the "pages_succeeded" field.
func PagesSucceededIn(vs ...int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldPagesSucceeded, vs...))
}

// PagesSucceededNotIn applies the NotIn predicate on the "pages_succeeded" field.
func PagesSucceededNotIn(vs ...int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldPagesSucceeded, vs...))
}

// PagesSucceededGT applies the GT predicate on the "pages_succeeded" field.
func PagesSucceededGT(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldPagesSucceeded, v))
}

// PagesSucceededGTE applies the GTE predicate on the "pages_succeeded" field.
func PagesSucceededGTE(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldPagesSucceeded, v))
}

// PagesSucceededLT applies the LT predicate on the "pages_succeeded" field.
func PagesSucceededLT(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldPagesSucceeded, v))
}

// PagesSucceededLTE applies the LTE predicate on the "pages_succeeded" field.
func PagesSucceededLTE(v int) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldPagesSucceeded, v))
}

// ContentHashHexEQ applies the EQ predicate on the "content_hash_hex" field.
func ContentHashHexEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldContentHashHex, v))
}

// ContentHashHexNEQ applies the NEQ predicate on the "content_hash_hex" field.
func ContentHashHexNEQ(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldContentHashHex, v))
}

// ContentHashHexIn applies the In predicate on the "content_hash_hex" field.
func ContentHashHexIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldContentHashHex, vs...))
}

// ContentHashHexNotIn applies the NotIn predicate on the "content_hash_hex" field.
func ContentHashHexNotIn(vs ...string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldContentHashHex, vs...))
}

// ContentHashHexGT applies the GT predicate on the "content_hash_hex" field.
func ContentHashHexGT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldContentHashHex, v))
}

// ContentHashHexGTE applies the GTE predicate on the "content_hash_hex" field.
func ContentHashHexGTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldContentHashHex, v))
}

// ContentHashHexLT applies the LT predicate on the "content_hash_hex" field.
func ContentHashHexLT(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldContentHashHex, v))
}

// ContentHashHexLTE applies the LTE predicate on the "content_hash_hex" field.
func ContentHashHexLTE(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldContentHashHex, v))
}

// ContentHashHexContains applies the Contains predicate on the "content_hash_hex" field.
func ContentHashHexContains(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContains(FieldContentHashHex, v))
}

// ContentHashHexHasPrefix applies the HasPrefix predicate on the "content_hash_hex" field.
func ContentHashHexHasPrefix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasPrefix(FieldContentHashHex, v))
}

// ContentHashHexHasSuffix applies the HasSuffix predicate on the "content_hash_hex" field.
func ContentHashHexHasSuffix(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldHasSuffix(FieldContentHashHex, v))
}

// ContentHashHexEqualFold applies the EqualFold predicate on the "content_hash_hex" field.
func ContentHashHexEqualFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEqualFold(FieldContentHashHex, v))
}

// ContentHashHexContainsFold applies the ContainsFold predicate on the "content_hash_hex" field.
func ContentHashHexContainsFold(v string) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldContainsFold(FieldContentHashHex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingResult) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingResult) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingResult) predicate.ProcessingResult {
	return predicate.ProcessingResult(sql.NotPredicates(p))
}
