// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/gen/ent/predicate"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProcessingResult = "ProcessingResult"
)

// ProcessingResultMutation represents an operation that mutates the ProcessingResult nodes in the graph.
type ProcessingResultMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	owner_id               *uuid.UUID
	status                 *string
	format                 *string
	document_type          *string
	extracted_fields       *json.RawMessage
	appendextracted_fields json.RawMessage
	raw_text               *string
	overall_confidence     *float32
	addoverall_confidence  *float32
	page_errors            *json.RawMessage
	appendpage_errors      json.RawMessage
	page_count             *int
	addpage_count          *int
	pages_succeeded        *int
	addpages_succeeded     *int
	content_hash_hex       *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ProcessingResult, error)
	predicates             []predicate.ProcessingResult
}

var _ ent.Mutation = (*ProcessingResultMutation)(nil)

// processingresultOption allows management of the mutation configuration using functional options.
type processingresultOption func(*ProcessingResultMutation)

// newProcessingResultMutation creates new mutation for the ProcessingResult entity.
func newProcessingResultMutation(c config, op Op, opts ...processingresultOption) *ProcessingResultMutation {
	m := &ProcessingResultMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingResultID sets the ID field of the mutation.
func withProcessingResultID(id uuid.UUID) processingresultOption {
	return func(m *ProcessingResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingResult
		)
		m.oldValue = func(ctx context.Context) (*ProcessingResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingResult sets the old ProcessingResult of the mutation.
func withProcessingResult(node *ProcessingResult) processingresultOption {
	return func(m *ProcessingResultMutation) {
		m.oldValue = func(context.Context) (*ProcessingResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingResult entities.
func (m *ProcessingResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ProcessingResultMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProcessingResultMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProcessingResultMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingResultMutation) ResetStatus() {
	m.status = nil
}

// SetFormat sets the "format" field.
func (m *ProcessingResultMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ProcessingResultMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ProcessingResultMutation) ResetFormat() {
	m.format = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ProcessingResultMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ProcessingResultMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ProcessingResultMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *ProcessingResultMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *ProcessingResultMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *ProcessingResultMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *ProcessingResultMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *ProcessingResultMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[processingresult.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *ProcessingResultMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[processingresult.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *ProcessingResultMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, processingresult.FieldExtractedFields)
}

// SetRawText sets the "raw_text" field.
func (m *ProcessingResultMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ProcessingResultMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ProcessingResultMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[processingresult.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ProcessingResultMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[processingresult.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ProcessingResultMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, processingresult.FieldRawText)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *ProcessingResultMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *ProcessingResultMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldOverallConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *ProcessingResultMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *ProcessingResultMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (m *ProcessingResultMutation) ClearOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	m.clearedFields[processingresult.FieldOverallConfidence] = struct{}{}
}

// OverallConfidenceCleared returns if the "overall_confidence" field was cleared in this mutation.
func (m *ProcessingResultMutation) OverallConfidenceCleared() bool {
	_, ok := m.clearedFields[processingresult.FieldOverallConfidence]
	return ok
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *ProcessingResultMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	delete(m.clearedFields, processingresult.FieldOverallConfidence)
}

// SetPageErrors sets the "page_errors" field.
func (m *ProcessingResultMutation) SetPageErrors(jm json.RawMessage) {
	m.page_errors = &jm
	m.appendpage_errors = nil
}

// PageErrors returns the value of the "page_errors" field in the mutation.
func (m *ProcessingResultMutation) PageErrors() (r json.RawMessage, exists bool) {
	v := m.page_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldPageErrors returns the old "page_errors" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldPageErrors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageErrors: %w", err)
	}
	return oldValue.PageErrors, nil
}

// AppendPageErrors adds jm to the "page_errors" field.
func (m *ProcessingResultMutation) AppendPageErrors(jm json.RawMessage) {
	m.appendpage_errors = append(m.appendpage_errors, jm...)
}

// AppendedPageErrors returns the list of values that were appended to the "page_errors" field in this mutation.
func (m *ProcessingResultMutation) AppendedPageErrors() (json.RawMessage, bool) {
	if len(m.appendpage_errors) == 0 {
		return nil, false
	}
	return m.appendpage_errors, true
}

// ClearPageErrors clears the value of the "page_errors" field.
func (m *ProcessingResultMutation) ClearPageErrors() {
	m.page_errors = nil
	m.appendpage_errors = nil
	m.clearedFields[processingresult.FieldPageErrors] = struct{}{}
}

// PageErrorsCleared returns if the "page_errors" field was cleared in this mutation.
func (m *ProcessingResultMutation) PageErrorsCleared() bool {
	_, ok := m.clearedFields[processingresult.FieldPageErrors]
	return ok
}

// ResetPageErrors resets all changes to the "page_errors" field.
func (m *ProcessingResultMutation) ResetPageErrors() {
	m.page_errors = nil
	m.appendpage_errors = nil
	delete(m.clearedFields, processingresult.FieldPageErrors)
}

// SetPageCount sets the "page_count" field.
func (m *ProcessingResultMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ProcessingResultMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ProcessingResultMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ProcessingResultMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ProcessingResultMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetPagesSucceeded sets the "pages_succeeded" field.
func (m *ProcessingResultMutation) SetPagesSucceeded(i int) {
	m.pages_succeeded = &i
	m.addpages_succeeded = nil
}

// PagesSucceeded returns the value of the "pages_succeeded" field in the mutation.
func (m *ProcessingResultMutation) PagesSucceeded() (r int, exists bool) {
	v := m.pages_succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldPagesSucceeded returns the old "pages_succeeded" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldPagesSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagesSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagesSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagesSucceeded: %w", err)
	}
	return oldValue.PagesSucceeded, nil
}

// AddPagesSucceeded adds i to the "pages_succeeded" field.
func (m *ProcessingResultMutation) AddPagesSucceeded(i int) {
	if m.addpages_succeeded != nil {
		*m.addpages_succeeded += i
	} else {
		m.addpages_succeeded = &i
	}
}

// AddedPagesSucceeded returns the value that was added to the "pages_succeeded" field in this mutation.
func (m *ProcessingResultMutation) AddedPagesSucceeded() (r int, exists bool) {
	v := m.addpages_succeeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagesSucceeded resets all changes to the "pages_succeeded" field.
func (m *ProcessingResultMutation) ResetPagesSucceeded() {
	m.pages_succeeded = nil
	m.addpages_succeeded = nil
}

// SetContentHashHex sets the "content_hash_hex" field.
func (m *ProcessingResultMutation) SetContentHashHex(s string) {
	m.content_hash_hex = &s
}

// ContentHashHex returns the value of the "content_hash_hex" field in the mutation.
func (m *ProcessingResultMutation) ContentHashHex() (r string, exists bool) {
	v := m.content_hash_hex
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHashHex returns the old "content_hash_hex" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldContentHashHex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHashHex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHashHex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHashHex: %w", err)
	}
	return oldValue.ContentHashHex, nil
}

// ResetContentHashHex resets all changes to the "content_hash_hex" field.
func (m *ProcessingResultMutation) ResetContentHashHex() {
	m.content_hash_hex = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingResult entity.
// If the ProcessingResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProcessingResultMutation builder.
func (m *ProcessingResultMutation) Where(ps ...predicate.ProcessingResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingResult).
func (m *ProcessingResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.owner_id != nil {
		fields = append(fields, processingresult.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, processingresult.FieldStatus)
	}
	if m.format != nil {
		fields = append(fields, processingresult.FieldFormat)
	}
	if m.document_type != nil {
		fields = append(fields, processingresult.FieldDocumentType)
	}
	if m.extracted_fields != nil {
		fields = append(fields, processingresult.FieldExtractedFields)
	}
	if m.raw_text != nil {
		fields = append(fields, processingresult.FieldRawText)
	}
	if m.overall_confidence != nil {
		fields = append(fields, processingresult.FieldOverallConfidence)
	}
	if m.page_errors != nil {
		fields = append(fields, processingresult.FieldPageErrors)
	}
	if m.page_count != nil {
		fields = append(fields, processingresult.FieldPageCount)
	}
	if m.pages_succeeded != nil {
		fields = append(fields, processingresult.FieldPagesSucceeded)
	}
	if m.content_hash_hex != nil {
		fields = append(fields, processingresult.FieldContentHashHex)
	}
	if m.created_at != nil {
		fields = append(fields, processingresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingresult.FieldOwnerID:
		return m.OwnerID()
	case processingresult.FieldStatus:
		return m.Status()
	case processingresult.FieldFormat:
		return m.Format()
	case processingresult.FieldDocumentType:
		return m.DocumentType()
	case processingresult.FieldExtractedFields:
		return m.ExtractedFields()
	case processingresult.FieldRawText:
		return m.RawText()
	case processingresult.FieldOverallConfidence:
		return m.OverallConfidence()
	case processingresult.FieldPageErrors:
		return m.PageErrors()
	case processingresult.FieldPageCount:
		return m.PageCount()
	case processingresult.FieldPagesSucceeded:
		return m.PagesSucceeded()
	case processingresult.FieldContentHashHex:
		return m.ContentHashHex()
	case processingresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingresult.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case processingresult.FieldStatus:
		return m.OldStatus(ctx)
	case processingresult.FieldFormat:
		return m.OldFormat(ctx)
	case processingresult.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case processingresult.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case processingresult.FieldRawText:
		return m.OldRawText(ctx)
	case processingresult.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case processingresult.FieldPageErrors:
		return m.OldPageErrors(ctx)
	case processingresult.FieldPageCount:
		return m.OldPageCount(ctx)
	case processingresult.FieldPagesSucceeded:
		return m.OldPagesSucceeded(ctx)
	case processingresult.FieldContentHashHex:
		return m.OldContentHashHex(ctx)
	case processingresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingresult.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case processingresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingresult.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case processingresult.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case processingresult.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case processingresult.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case processingresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case processingresult.FieldPageErrors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageErrors(v)
		return nil
	case processingresult.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case processingresult.FieldPagesSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagesSucceeded(v)
		return nil
	case processingresult.FieldContentHashHex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHashHex(v)
		return nil
	case processingresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingResultMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_confidence != nil {
		fields = append(fields, processingresult.FieldOverallConfidence)
	}
	if m.addpage_count != nil {
		fields = append(fields, processingresult.FieldPageCount)
	}
	if m.addpages_succeeded != nil {
		fields = append(fields, processingresult.FieldPagesSucceeded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingresult.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	case processingresult.FieldPageCount:
		return m.AddedPageCount()
	case processingresult.FieldPagesSucceeded:
		return m.AddedPagesSucceeded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	case processingresult.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case processingresult.FieldPagesSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagesSucceeded(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingresult.FieldExtractedFields) {
		fields = append(fields, processingresult.FieldExtractedFields)
	}
	if m.FieldCleared(processingresult.FieldRawText) {
		fields = append(fields, processingresult.FieldRawText)
	}
	if m.FieldCleared(processingresult.FieldOverallConfidence) {
		fields = append(fields, processingresult.FieldOverallConfidence)
	}
	if m.FieldCleared(processingresult.FieldPageErrors) {
		fields = append(fields, processingresult.FieldPageErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingResultMutation) ClearField(name string) error {
	switch name {
	case processingresult.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case processingresult.FieldRawText:
		m.ClearRawText()
		return nil
	case processingresult.FieldOverallConfidence:
		m.ClearOverallConfidence()
		return nil
	case processingresult.FieldPageErrors:
		m.ClearPageErrors()
		return nil
	}
	return fmt.Errorf("unknown ProcessingResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingResultMutation) ResetField(name string) error {
	switch name {
	case processingresult.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case processingresult.FieldStatus:
		m.ResetStatus()
		return nil
	case processingresult.FieldFormat:
		m.ResetFormat()
		return nil
	case processingresult.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case processingresult.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case processingresult.FieldRawText:
		m.ResetRawText()
		return nil
	case processingresult.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case processingresult.FieldPageErrors:
		m.ResetPageErrors()
		return nil
	case processingresult.FieldPageCount:
		m.ResetPageCount()
		return nil
	case processingresult.FieldPagesSucceeded:
		m.ResetPagesSucceeded()
		return nil
	case processingresult.FieldContentHashHex:
		m.ResetContentHashHex()
		return nil
	case processingresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingResult edge %s", name)
}
