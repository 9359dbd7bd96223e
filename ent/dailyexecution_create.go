// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/dailyexecution"
)

// DailyExecutionCreate is the builder for creating a DailyExecution entity.
type DailyExecutionCreate struct {
	config
	mutation *DailyExecutionMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *DailyExecutionCreate) SetCampaignID(v string) *DailyExecutionCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *DailyExecutionCreate) SetDayNumber(v int) *DailyExecutionCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *DailyExecutionCreate) SetPlatform(v string) *DailyExecutionCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPostedToYoutube sets the "posted_to_youtube" field.
func (_c *DailyExecutionCreate) SetPostedToYoutube(v bool) *DailyExecutionCreate {
	_c.mutation.SetPostedToYoutube(v)
	return _c
}

// SetNillablePostedToYoutube sets the "posted_to_youtube" field if the given value is not nil.
func (_c *DailyExecutionCreate) SetNillablePostedToYoutube(v *bool) *DailyExecutionCreate {
	if v != nil {
		_c.SetPostedToYoutube(*v)
	}
	return _c
}

// SetPostedToTwitter sets the "posted_to_twitter" field.
func (_c *DailyExecutionCreate) SetPostedToTwitter(v bool) *DailyExecutionCreate {
	_c.mutation.SetPostedToTwitter(v)
	return _c
}

// SetNillablePostedToTwitter sets the "posted_to_twitter" field if the given value is not nil.
func (_c *DailyExecutionCreate) SetNillablePostedToTwitter(v *bool) *DailyExecutionCreate {
	if v != nil {
		_c.SetPostedToTwitter(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *DailyExecutionCreate) SetExecutedAt(v time.Time) *DailyExecutionCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *DailyExecutionCreate) SetNillableExecutedAt(v *time.Time) *DailyExecutionCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetEngagementMetrics sets the "engagement_metrics" field.
func (_c *DailyExecutionCreate) SetEngagementMetrics(v map[string]interface{}) *DailyExecutionCreate {
	_c.mutation.SetEngagementMetrics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DailyExecutionCreate) SetCreatedAt(v time.Time) *DailyExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DailyExecutionCreate) SetNillableCreatedAt(v *time.Time) *DailyExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DailyExecutionCreate) SetUpdatedAt(v time.Time) *DailyExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DailyExecutionCreate) SetNillableUpdatedAt(v *time.Time) *DailyExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DailyExecutionCreate) SetID(v string) *DailyExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *DailyExecutionCreate) SetCampaign(v *Campaign) *DailyExecutionCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the DailyExecutionMutation object of the builder.
func (_c *DailyExecutionCreate) Mutation() *DailyExecutionMutation {
	return _c.mutation
}

// Save creates the DailyExecution in the database.
func (_c *DailyExecutionCreate) Save(ctx context.Context) (*DailyExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyExecutionCreate) SaveX(ctx context.Context) *DailyExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyExecutionCreate) defaults() {
	if _, ok := _c.mutation.PostedToYoutube(); !ok {
		v := dailyexecution.DefaultPostedToYoutube
		_c.mutation.SetPostedToYoutube(v)
	}
	if _, ok := _c.mutation.PostedToTwitter(); !ok {
		v := dailyexecution.DefaultPostedToTwitter
		_c.mutation.SetPostedToTwitter(v)
	}
	if _, ok := _c.mutation.EngagementMetrics(); !ok {
		v := dailyexecution.DefaultEngagementMetrics
		_c.mutation.SetEngagementMetrics(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dailyexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dailyexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyExecutionCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "DailyExecution.campaign_id"`)}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "DailyExecution.day_number"`)}
	}
	if v, ok := _c.mutation.DayNumber(); ok {
		if err := dailyexecution.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyExecution.day_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "DailyExecution.platform"`)}
	}
	if _, ok := _c.mutation.PostedToYoutube(); !ok {
		return &ValidationError{Name: "posted_to_youtube", err: errors.New(`ent: missing required field "DailyExecution.posted_to_youtube"`)}
	}
	if _, ok := _c.mutation.PostedToTwitter(); !ok {
		return &ValidationError{Name: "posted_to_twitter", err: errors.New(`ent: missing required field "DailyExecution.posted_to_twitter"`)}
	}
	if _, ok := _c.mutation.EngagementMetrics(); !ok {
		return &ValidationError{Name: "engagement_metrics", err: errors.New(`ent: missing required field "DailyExecution.engagement_metrics"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DailyExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DailyExecution.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "DailyExecution.campaign"`)}
	}
	return nil
}

func (_c *DailyExecutionCreate) sqlSave(ctx context.Context) (*DailyExecution, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DailyExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyExecutionCreate) createSpec() (*DailyExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyexecution.Table, sqlgraph.NewFieldSpec(dailyexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(dailyexecution.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(dailyexecution.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PostedToYoutube(); ok {
		_spec.SetField(dailyexecution.FieldPostedToYoutube, field.TypeBool, value)
		_node.PostedToYoutube = value
	}
	if value, ok := _c.mutation.PostedToTwitter(); ok {
		_spec.SetField(dailyexecution.FieldPostedToTwitter, field.TypeBool, value)
		_node.PostedToTwitter = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(dailyexecution.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = &value
	}
	if value, ok := _c.mutation.EngagementMetrics(); ok {
		_spec.SetField(dailyexecution.FieldEngagementMetrics, field.TypeJSON, value)
		_node.EngagementMetrics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dailyexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dailyexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailyexecution.CampaignTable,
			Columns: []string{dailyexecution.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DailyExecutionCreateBulk is the builder for creating many DailyExecution entities in bulk.
type DailyExecutionCreateBulk struct {
	config
	err      error
	builders []*DailyExecutionCreate
}

// Save creates the DailyExecution entities in the database.
func (_c *DailyExecutionCreateBulk) Save(ctx context.Context) ([]*DailyExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyExecutionMutation)
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
func (_c *DailyExecutionCreateBulk) SaveX(ctx context.Context) []*DailyExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
