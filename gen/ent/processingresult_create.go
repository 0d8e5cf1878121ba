// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

// ProcessingResultCreate is the builder for creating a ProcessingResult entity.
type ProcessingResultCreate struct {
	config
	mutation *ProcessingResultMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ProcessingResultCreate) SetOwnerID(v uuid.UUID) *ProcessingResultCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingResultCreate) SetStatus(v string) *ProcessingResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ProcessingResultCreate) SetFormat(v string) *ProcessingResultCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ProcessingResultCreate) SetDocumentType(v string) *ProcessingResultCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *ProcessingResultCreate) SetExtractedFields(v json.RawMessage) *ProcessingResultCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ProcessingResultCreate) SetRawText(v string) *ProcessingResultCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ProcessingResultCreate) SetNillableRawText(v *string) *ProcessingResultCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *ProcessingResultCreate) SetOverallConfidence(v float32) *ProcessingResultCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *ProcessingResultCreate) SetNillableOverallConfidence(v *float32) *ProcessingResultCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetPageErrors sets the "page_errors" field.
func (_c *ProcessingResultCreate) SetPageErrors(v json.RawMessage) *ProcessingResultCreate {
	_c.mutation.SetPageErrors(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *ProcessingResultCreate) SetPageCount(v int) *ProcessingResultCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetPagesSucceeded sets the "pages_succeeded" field.
func (_c *ProcessingResultCreate) SetPagesSucceeded(v int) *ProcessingResultCreate {
	_c.mutation.SetPagesSucceeded(v)
	return _c
}

// SetContentHashHex sets the "content_hash_hex" field.
func (_c *ProcessingResultCreate) SetContentHashHex(v string) *ProcessingResultCreate {
	_c.mutation.SetContentHashHex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingResultCreate) SetCreatedAt(v time.Time) *ProcessingResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingResultCreate) SetNillableCreatedAt(v *time.Time) *ProcessingResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingResultCreate) SetID(v uuid.UUID) *ProcessingResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingResultCreate) SetNillableID(v *uuid.UUID) *ProcessingResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcessingResultMutation object of the builder.
func (_c *ProcessingResultCreate) Mutation() *ProcessingResultMutation {
	return _c.mutation
}

// Save creates the ProcessingResult in the database.
func (_c *ProcessingResultCreate) Save(ctx context.Context) (*ProcessingResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingResultCreate) SaveX(ctx context.Context) *ProcessingResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingResultCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ProcessingResult.owner_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ProcessingResult.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := processingresult.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "ProcessingResult.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := processingresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "ProcessingResult.page_count"`)}
	}
	if v, ok := _c.mutation.PageCount(); ok {
		if err := processingresult.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.page_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PagesSucceeded(); !ok {
		return &ValidationError{Name: "pages_succeeded", err: errors.New(`ent: missing required field "ProcessingResult.pages_succeeded"`)}
	}
	if v, ok := _c.mutation.PagesSucceeded(); ok {
		if err := processingresult.PagesSucceededValidator(v); err != nil {
			return &ValidationError{Name: "pages_succeeded", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.pages_succeeded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHashHex(); !ok {
		return &ValidationError{Name: "content_hash_hex", err: errors.New(`ent: missing required field "ProcessingResult.content_hash_hex"`)}
	}
	if v, ok := _c.mutation.ContentHashHex(); ok {
		if err := processingresult.ContentHashHexValidator(v); err != nil {
			return &ValidationError{Name: "content_hash_hex", err: fmt.Errorf(`ent: validator failed for field "ProcessingResult.content_hash_hex": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingResult.created_at"`)}
	}
	return nil
}

func (_c *ProcessingResultCreate) sqlSave(ctx context.Context) (*ProcessingResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingResultCreate) createSpec() (*ProcessingResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingresult.Table, sqlgraph.NewFieldSpec(processingresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(processingresult.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(processingresult.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(processingresult.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(processingresult.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(processingresult.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(processingresult.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = &value
	}
	if value, ok := _c.mutation.PageErrors(); ok {
		_spec.SetField(processingresult.FieldPageErrors, field.TypeJSON, value)
		_node.PageErrors = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(processingresult.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.PagesSucceeded(); ok {
		_spec.SetField(processingresult.FieldPagesSucceeded, field.TypeInt, value)
		_node.PagesSucceeded = value
	}
	if value, ok := _c.mutation.ContentHashHex(); ok {
		_spec.SetField(processingresult.FieldContentHashHex, field.TypeString, value)
		_node.ContentHashHex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProcessingResultCreateBulk is the builder for creating many ProcessingResult entities in bulk.
type ProcessingResultCreateBulk struct {
	config
	err      error
	builders []*ProcessingResultCreate
}

// Save creates the ProcessingResult entities in the database.
func (_c *ProcessingResultCreateBulk) Save(ctx context.Context) ([]*ProcessingResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessingResultCreateBulk) SaveX(ctx context.Context) []*ProcessingResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
