// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/predicate"
)

// LearningMemoryUpdate is the builder for updating LearningMemory entities.
type LearningMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *LearningMemoryMutation
}

// Where appends a list predicates to the LearningMemoryUpdate builder.
func (_u *LearningMemoryUpdate) Where(ps ...predicate.LearningMemory) *LearningMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LearningMemoryMutation object of the builder.
func (_u *LearningMemoryUpdate) Mutation() *LearningMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningMemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningMemoryUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningMemory.user"`)
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningMemory.campaign"`)
	}
	return nil
}

func (_u *LearningMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningmemory.Table, learningmemory.Columns, sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PostingFrequencyCleared() {
		_spec.ClearField(learningmemory.FieldPostingFrequency, field.TypeString)
	}
	if _u.mutation.GoalAchievementSummaryCleared() {
		_spec.ClearField(learningmemory.FieldGoalAchievementSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningMemoryUpdateOne is the builder for updating a single LearningMemory entity.
type LearningMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningMemoryMutation
}

// Mutation returns the LearningMemoryMutation object of the builder.
func (_u *LearningMemoryUpdateOne) Mutation() *LearningMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningMemoryUpdate builder.
func (_u *LearningMemoryUpdateOne) Where(ps ...predicate.LearningMemory) *LearningMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningMemoryUpdateOne) Select(field string, fields ...string) *LearningMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningMemory entity.
func (_u *LearningMemoryUpdateOne) Save(ctx context.Context) (*LearningMemory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningMemoryUpdateOne) SaveX(ctx context.Context) *LearningMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningMemoryUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningMemory.user"`)
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LearningMemory.campaign"`)
	}
	return nil
}

func (_u *LearningMemoryUpdateOne) sqlSave(ctx context.Context) (_node *LearningMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningmemory.Table, learningmemory.Columns, sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningmemory.FieldID)
		for _, f := range fields {
			if !learningmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningmemory.FieldID {
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
	if _u.mutation.PostingFrequencyCleared() {
		_spec.ClearField(learningmemory.FieldPostingFrequency, field.TypeString)
	}
	if _u.mutation.GoalAchievementSummaryCleared() {
		_spec.ClearField(learningmemory.FieldGoalAchievementSummary, field.TypeString)
	}
	_node = &LearningMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
