// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roeland/learntrack/ent/completionevent"
	"github.com/roeland/learntrack/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *CompletionEventUpdate) SetEventType(v string) *CompletionEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableEventType(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetItemKey sets the "item_key" field.
func (_u *CompletionEventUpdate) SetItemKey(v string) *CompletionEventUpdate {
	_u.mutation.SetItemKey(v)
	return _u
}

// SetNillableItemKey sets the "item_key" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableItemKey(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetItemKey(*v)
	}
	return _u
}

// ClearItemKey clears the value of the "item_key" field.
func (_u *CompletionEventUpdate) ClearItemKey() *CompletionEventUpdate {
	_u.mutation.ClearItemKey()
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdate) SetScore(v int) *CompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableScore(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdate) AddScore(v int) *CompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *CompletionEventUpdate) ClearScore() *CompletionEventUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *CompletionEventUpdate) SetPointsAwarded(v int) *CompletionEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillablePointsAwarded(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *CompletionEventUpdate) AddPointsAwarded(v int) *CompletionEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *CompletionEventUpdate) SetAttemptID(v string) *CompletionEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableAttemptID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := completionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := completionevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(completionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKey(); ok {
		_spec.SetField(completionevent.FieldItemKey, field.TypeString, value)
	}
	if _u.mutation.ItemKeyCleared() {
		_spec.ClearField(completionevent.FieldItemKey, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(completionevent.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(completionevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(completionevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(completionevent.FieldAttemptID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *CompletionEventUpdateOne) SetEventType(v string) *CompletionEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableEventType(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetItemKey sets the "item_key" field.
func (_u *CompletionEventUpdateOne) SetItemKey(v string) *CompletionEventUpdateOne {
	_u.mutation.SetItemKey(v)
	return _u
}

// SetNillableItemKey sets the "item_key" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableItemKey(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetItemKey(*v)
	}
	return _u
}

// ClearItemKey clears the value of the "item_key" field.
func (_u *CompletionEventUpdateOne) ClearItemKey() *CompletionEventUpdateOne {
	_u.mutation.ClearItemKey()
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdateOne) SetScore(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableScore(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdateOne) AddScore(v int) *CompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *CompletionEventUpdateOne) ClearScore() *CompletionEventUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *CompletionEventUpdateOne) SetPointsAwarded(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillablePointsAwarded(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *CompletionEventUpdateOne) AddPointsAwarded(v int) *CompletionEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *CompletionEventUpdateOne) SetAttemptID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableAttemptID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := completionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := completionevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(completionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemKey(); ok {
		_spec.SetField(completionevent.FieldItemKey, field.TypeString, value)
	}
	if _u.mutation.ItemKeyCleared() {
		_spec.ClearField(completionevent.FieldItemKey, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(completionevent.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(completionevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(completionevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(completionevent.FieldAttemptID, field.TypeString, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
