// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/riks17/Document-OCR/gen/ent/predicate"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

// ProcessingResultUpdate is the builder for updating ProcessingResult entities.
type ProcessingResultUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingResultMutation
}

// Where appends a list predicates to the ProcessingResultUpdate builder.
func (_u *ProcessingResultUpdate) Where(ps ...predicate.ProcessingResult) *ProcessingResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ProcessingResultMutation object of the builder.
func (_u *ProcessingResultUpdate) Mutation() *ProcessingResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingresult.Table, processingresult.Columns, sqlgraph.NewFieldSpec(processingresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(processingresult.FieldExtractedFields, field.TypeJSON)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(processingresult.FieldRawText, field.TypeString)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(processingresult.FieldOverallConfidence, field.TypeFloat32)
	}
	if _u.mutation.PageErrorsCleared() {
		_spec.ClearField(processingresult.FieldPageErrors, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingResultUpdateOne is the builder for updating a single ProcessingResult entity.
type ProcessingResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingResultMutation
}

// Mutation returns the ProcessingResultMutation object of the builder.
func (_u *ProcessingResultUpdateOne) Mutation() *ProcessingResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingResultUpdate builder.
func (_u *ProcessingResultUpdateOne) Where(ps ...predicate.ProcessingResult) *ProcessingResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingResultUpdateOne) Select(field string, fields ...string) *ProcessingResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingResult entity.
func (_u *ProcessingResultUpdateOne) Save(ctx context.Context) (*ProcessingResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingResultUpdateOne) SaveX(ctx context.Context) *ProcessingResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingResultUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingresult.Table, processingresult.Columns, sqlgraph.NewFieldSpec(processingresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingresult.FieldID)
		for _, f := range fields {
			if !processingresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(processingresult.FieldExtractedFields, field.TypeJSON)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(processingresult.FieldRawText, field.TypeString)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(processingresult.FieldOverallConfidence, field.TypeFloat32)
	}
	if _u.mutation.PageErrorsCleared() {
		_spec.ClearField(processingresult.FieldPageErrors, field.TypeJSON)
	}
	_node = &ProcessingResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
