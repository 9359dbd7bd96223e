// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/predicate"
)

// CreatorProfileDelete is the builder for deleting a CreatorProfile entity.
type CreatorProfileDelete struct {
	config
	hooks    []Hook
	mutation *CreatorProfileMutation
}

// Where appends a list predicates to the CreatorProfileDelete builder.
func (_d *CreatorProfileDelete) Where(ps ...predicate.CreatorProfile) *CreatorProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CreatorProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CreatorProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CreatorProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(creatorprofile.Table, sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CreatorProfileDeleteOne is the builder for deleting a single CreatorProfile entity.
type CreatorProfileDeleteOne struct {
	_d *CreatorProfileDelete
}

// Where appends a list predicates to the CreatorProfileDelete builder.
func (_d *CreatorProfileDeleteOne) Where(ps ...predicate.CreatorProfile) *CreatorProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CreatorProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{creatorprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CreatorProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
