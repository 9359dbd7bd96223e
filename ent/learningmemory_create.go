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
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/user"
)

// LearningMemoryCreate is the builder for creating a LearningMemory entity.
type LearningMemoryCreate struct {
	config
	mutation *LearningMemoryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningMemoryCreate) SetUserID(v string) *LearningMemoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *LearningMemoryCreate) SetCampaignID(v string) *LearningMemoryCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetGoalType sets the "goal_type" field.
func (_c *LearningMemoryCreate) SetGoalType(v string) *LearningMemoryCreate {
	_c.mutation.SetGoalType(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *LearningMemoryCreate) SetPlatform(v string) *LearningMemoryCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNiche sets the "niche" field.
func (_c *LearningMemoryCreate) SetNiche(v string) *LearningMemoryCreate {
	_c.mutation.SetNiche(v)
	return _c
}

// SetCampaignDurationDays sets the "campaign_duration_days" field.
func (_c *LearningMemoryCreate) SetCampaignDurationDays(v int) *LearningMemoryCreate {
	_c.mutation.SetCampaignDurationDays(v)
	return _c
}

// SetPostingFrequency sets the "posting_frequency" field.
func (_c *LearningMemoryCreate) SetPostingFrequency(v string) *LearningMemoryCreate {
	_c.mutation.SetPostingFrequency(v)
	return _c
}

// SetNillablePostingFrequency sets the "posting_frequency" field if the given value is not nil.
func (_c *LearningMemoryCreate) SetNillablePostingFrequency(v *string) *LearningMemoryCreate {
	if v != nil {
		_c.SetPostingFrequency(*v)
	}
	return _c
}

// SetWhatWorked sets the "what_worked" field.
func (_c *LearningMemoryCreate) SetWhatWorked(v []string) *LearningMemoryCreate {
	_c.mutation.SetWhatWorked(v)
	return _c
}

// SetWhatFailed sets the "what_failed" field.
func (_c *LearningMemoryCreate) SetWhatFailed(v []string) *LearningMemoryCreate {
	_c.mutation.SetWhatFailed(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *LearningMemoryCreate) SetRecommendations(v []string) *LearningMemoryCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetGoalAchievementSummary sets the "goal_achievement_summary" field.
func (_c *LearningMemoryCreate) SetGoalAchievementSummary(v string) *LearningMemoryCreate {
	_c.mutation.SetGoalAchievementSummary(v)
	return _c
}

// SetNillableGoalAchievementSummary sets the "goal_achievement_summary" field if the given value is not nil.
func (_c *LearningMemoryCreate) SetNillableGoalAchievementSummary(v *string) *LearningMemoryCreate {
	if v != nil {
		_c.SetGoalAchievementSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningMemoryCreate) SetCreatedAt(v time.Time) *LearningMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningMemoryCreate) SetNillableCreatedAt(v *time.Time) *LearningMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningMemoryCreate) SetID(v string) *LearningMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *LearningMemoryCreate) SetUser(v *User) *LearningMemoryCreate {
	return _c.SetUserID(v.ID)
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *LearningMemoryCreate) SetCampaign(v *Campaign) *LearningMemoryCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the LearningMemoryMutation object of the builder.
func (_c *LearningMemoryCreate) Mutation() *LearningMemoryMutation {
	return _c.mutation
}

// Save creates the LearningMemory in the database.
func (_c *LearningMemoryCreate) Save(ctx context.Context) (*LearningMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningMemoryCreate) SaveX(ctx context.Context) *LearningMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningMemoryCreate) defaults() {
	if _, ok := _c.mutation.WhatWorked(); !ok {
		v := learningmemory.DefaultWhatWorked
		_c.mutation.SetWhatWorked(v)
	}
	if _, ok := _c.mutation.WhatFailed(); !ok {
		v := learningmemory.DefaultWhatFailed
		_c.mutation.SetWhatFailed(v)
	}
	if _, ok := _c.mutation.Recommendations(); !ok {
		v := learningmemory.DefaultRecommendations
		_c.mutation.SetRecommendations(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningMemoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningMemory.user_id"`)}
	}
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "LearningMemory.campaign_id"`)}
	}
	if _, ok := _c.mutation.GoalType(); !ok {
		return &ValidationError{Name: "goal_type", err: errors.New(`ent: missing required field "LearningMemory.goal_type"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "LearningMemory.platform"`)}
	}
	if _, ok := _c.mutation.Niche(); !ok {
		return &ValidationError{Name: "niche", err: errors.New(`ent: missing required field "LearningMemory.niche"`)}
	}
	if _, ok := _c.mutation.CampaignDurationDays(); !ok {
		return &ValidationError{Name: "campaign_duration_days", err: errors.New(`ent: missing required field "LearningMemory.campaign_duration_days"`)}
	}
	if _, ok := _c.mutation.WhatWorked(); !ok {
		return &ValidationError{Name: "what_worked", err: errors.New(`ent: missing required field "LearningMemory.what_worked"`)}
	}
	if _, ok := _c.mutation.WhatFailed(); !ok {
		return &ValidationError{Name: "what_failed", err: errors.New(`ent: missing required field "LearningMemory.what_failed"`)}
	}
	if _, ok := _c.mutation.Recommendations(); !ok {
		return &ValidationError{Name: "recommendations", err: errors.New(`ent: missing required field "LearningMemory.recommendations"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningMemory.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "LearningMemory.user"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "LearningMemory.campaign"`)}
	}
	return nil
}

func (_c *LearningMemoryCreate) sqlSave(ctx context.Context) (*LearningMemory, error) {
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
			return nil, fmt.Errorf("unexpected LearningMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningMemoryCreate) createSpec() (*LearningMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningmemory.Table, sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GoalType(); ok {
		_spec.SetField(learningmemory.FieldGoalType, field.TypeString, value)
		_node.GoalType = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(learningmemory.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Niche(); ok {
		_spec.SetField(learningmemory.FieldNiche, field.TypeString, value)
		_node.Niche = value
	}
	if value, ok := _c.mutation.CampaignDurationDays(); ok {
		_spec.SetField(learningmemory.FieldCampaignDurationDays, field.TypeInt, value)
		_node.CampaignDurationDays = value
	}
	if value, ok := _c.mutation.PostingFrequency(); ok {
		_spec.SetField(learningmemory.FieldPostingFrequency, field.TypeString, value)
		_node.PostingFrequency = value
	}
	if value, ok := _c.mutation.WhatWorked(); ok {
		_spec.SetField(learningmemory.FieldWhatWorked, field.TypeJSON, value)
		_node.WhatWorked = value
	}
	if value, ok := _c.mutation.WhatFailed(); ok {
		_spec.SetField(learningmemory.FieldWhatFailed, field.TypeJSON, value)
		_node.WhatFailed = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(learningmemory.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.GoalAchievementSummary(); ok {
		_spec.SetField(learningmemory.FieldGoalAchievementSummary, field.TypeString, value)
		_node.GoalAchievementSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningmemory.UserTable,
			Columns: []string{learningmemory.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   learningmemory.CampaignTable,
			Columns: []string{learningmemory.CampaignColumn},
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

// LearningMemoryCreateBulk is the builder for creating many LearningMemory entities in bulk.
type LearningMemoryCreateBulk struct {
	config
	err      error
	builders []*LearningMemoryCreate
}

// Save creates the LearningMemory entities in the database.
func (_c *LearningMemoryCreateBulk) Save(ctx context.Context) ([]*LearningMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningMemoryMutation)
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
func (_c *LearningMemoryCreateBulk) SaveX(ctx context.Context) []*LearningMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
