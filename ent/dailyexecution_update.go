// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/ent/predicate"
)

// DailyExecutionUpdate is the builder for updating DailyExecution entities.
type DailyExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *DailyExecutionMutation
}

// Where appends a list predicates to the DailyExecutionUpdate builder.
func (_u *DailyExecutionUpdate) Where(ps ...predicate.DailyExecution) *DailyExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *DailyExecutionUpdate) SetDayNumber(v int) *DailyExecutionUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DailyExecutionUpdate) SetNillableDayNumber(v *int) *DailyExecutionUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DailyExecutionUpdate) AddDayNumber(v int) *DailyExecutionUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *DailyExecutionUpdate) SetPlatform(v string) *DailyExecutionUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *DailyExecutionUpdate) SetNillablePlatform(v *string) *DailyExecutionUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPostedToYoutube sets the "posted_to_youtube" field.
func (_u *DailyExecutionUpdate) SetPostedToYoutube(v bool) *DailyExecutionUpdate {
	_u.mutation.SetPostedToYoutube(v)
	return _u
}

// SetNillablePostedToYoutube sets the "posted_to_youtube" field if the given value is not nil.
func (_u *DailyExecutionUpdate) SetNillablePostedToYoutube(v *bool) *DailyExecutionUpdate {
	if v != nil {
		_u.SetPostedToYoutube(*v)
	}
	return _u
}

// SetPostedToTwitter sets the "posted_to_twitter" field.
func (_u *DailyExecutionUpdate) SetPostedToTwitter(v bool) *DailyExecutionUpdate {
	_u.mutation.SetPostedToTwitter(v)
	return _u
}

// SetNillablePostedToTwitter sets the "posted_to_twitter" field if the given value is not nil.
func (_u *DailyExecutionUpdate) SetNillablePostedToTwitter(v *bool) *DailyExecutionUpdate {
	if v != nil {
		_u.SetPostedToTwitter(*v)
	}
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *DailyExecutionUpdate) SetExecutedAt(v time.Time) *DailyExecutionUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *DailyExecutionUpdate) SetNillableExecutedAt(v *time.Time) *DailyExecutionUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *DailyExecutionUpdate) ClearExecutedAt() *DailyExecutionUpdate {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetEngagementMetrics sets the "engagement_metrics" field.
func (_u *DailyExecutionUpdate) SetEngagementMetrics(v map[string]interface{}) *DailyExecutionUpdate {
	_u.mutation.SetEngagementMetrics(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyExecutionUpdate) SetUpdatedAt(v time.Time) *DailyExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyExecutionMutation object of the builder.
func (_u *DailyExecutionUpdate) Mutation() *DailyExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailyexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyExecutionUpdate) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := dailyexecution.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyExecution.day_number": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyExecution.campaign"`)
	}
	return nil
}

func (_u *DailyExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyexecution.Table, dailyexecution.Columns, sqlgraph.NewFieldSpec(dailyexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(dailyexecution.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(dailyexecution.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(dailyexecution.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedToYoutube(); ok {
		_spec.SetField(dailyexecution.FieldPostedToYoutube, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PostedToTwitter(); ok {
		_spec.SetField(dailyexecution.FieldPostedToTwitter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(dailyexecution.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(dailyexecution.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EngagementMetrics(); ok {
		_spec.SetField(dailyexecution.FieldEngagementMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyExecutionUpdateOne is the builder for updating a single DailyExecution entity.
type DailyExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyExecutionMutation
}

// SetDayNumber sets the "day_number" field.
func (_u *DailyExecutionUpdateOne) SetDayNumber(v int) *DailyExecutionUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DailyExecutionUpdateOne) SetNillableDayNumber(v *int) *DailyExecutionUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DailyExecutionUpdateOne) AddDayNumber(v int) *DailyExecutionUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *DailyExecutionUpdateOne) SetPlatform(v string) *DailyExecutionUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *DailyExecutionUpdateOne) SetNillablePlatform(v *string) *DailyExecutionUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPostedToYoutube sets the "posted_to_youtube" field.
func (_u *DailyExecutionUpdateOne) SetPostedToYoutube(v bool) *DailyExecutionUpdateOne {
	_u.mutation.SetPostedToYoutube(v)
	return _u
}

// SetNillablePostedToYoutube sets the "posted_to_youtube" field if the given value is not nil.
func (_u *DailyExecutionUpdateOne) SetNillablePostedToYoutube(v *bool) *DailyExecutionUpdateOne {
	if v != nil {
		_u.SetPostedToYoutube(*v)
	}
	return _u
}

// SetPostedToTwitter sets the "posted_to_twitter" field.
func (_u *DailyExecutionUpdateOne) SetPostedToTwitter(v bool) *DailyExecutionUpdateOne {
	_u.mutation.SetPostedToTwitter(v)
	return _u
}

// SetNillablePostedToTwitter sets the "posted_to_twitter" field if the given value is not nil.
func (_u *DailyExecutionUpdateOne) SetNillablePostedToTwitter(v *bool) *DailyExecutionUpdateOne {
	if v != nil {
		_u.SetPostedToTwitter(*v)
	}
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *DailyExecutionUpdateOne) SetExecutedAt(v time.Time) *DailyExecutionUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *DailyExecutionUpdateOne) SetNillableExecutedAt(v *time.Time) *DailyExecutionUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *DailyExecutionUpdateOne) ClearExecutedAt() *DailyExecutionUpdateOne {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetEngagementMetrics sets the "engagement_metrics" field.
func (_u *DailyExecutionUpdateOne) SetEngagementMetrics(v map[string]interface{}) *DailyExecutionUpdateOne {
	_u.mutation.SetEngagementMetrics(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyExecutionUpdateOne) SetUpdatedAt(v time.Time) *DailyExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyExecutionMutation object of the builder.
func (_u *DailyExecutionUpdateOne) Mutation() *DailyExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyExecutionUpdate builder.
func (_u *DailyExecutionUpdateOne) Where(ps ...predicate.DailyExecution) *DailyExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyExecutionUpdateOne) Select(field string, fields ...string) *DailyExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyExecution entity.
func (_u *DailyExecutionUpdateOne) Save(ctx context.Context) (*DailyExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyExecutionUpdateOne) SaveX(ctx context.Context) *DailyExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailyexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := dailyexecution.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyExecution.day_number": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyExecution.campaign"`)
	}
	return nil
}

func (_u *DailyExecutionUpdateOne) sqlSave(ctx context.Context) (_node *DailyExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyexecution.Table, dailyexecution.Columns, sqlgraph.NewFieldSpec(dailyexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyexecution.FieldID)
		for _, f := range fields {
			if !dailyexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyexecution.FieldID {
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
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(dailyexecution.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(dailyexecution.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(dailyexecution.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedToYoutube(); ok {
		_spec.SetField(dailyexecution.FieldPostedToYoutube, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PostedToTwitter(); ok {
		_spec.SetField(dailyexecution.FieldPostedToTwitter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(dailyexecution.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(dailyexecution.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EngagementMetrics(); ok {
		_spec.SetField(dailyexecution.FieldEngagementMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DailyExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
