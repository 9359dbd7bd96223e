// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/user"
)

// CreatorProfileCreate is the builder for creating a CreatorProfile entity.
type CreatorProfileCreate struct {
	config
	mutation *CreatorProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CreatorProfileCreate) SetUserID(v string) *CreatorProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CreatorProfileCreate) SetName(v string) *CreatorProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCreatorType sets the "creator_type" field.
func (_c *CreatorProfileCreate) SetCreatorType(v string) *CreatorProfileCreate {
	_c.mutation.SetCreatorType(v)
	return _c
}

// SetNiche sets the "niche" field.
func (_c *CreatorProfileCreate) SetNiche(v string) *CreatorProfileCreate {
	_c.mutation.SetNiche(v)
	return _c
}

// SetTargetAudienceNiche sets the "target_audience_niche" field.
func (_c *CreatorProfileCreate) SetTargetAudienceNiche(v string) *CreatorProfileCreate {
	_c.mutation.SetTargetAudienceNiche(v)
	return _c
}

// SetExistingPlatforms sets the "existing_platforms" field.
func (_c *CreatorProfileCreate) SetExistingPlatforms(v []string) *CreatorProfileCreate {
	_c.mutation.SetExistingPlatforms(v)
	return _c
}

// SetPlatformUrls sets the "platform_urls" field.
func (_c *CreatorProfileCreate) SetPlatformUrls(v map[string]string) *CreatorProfileCreate {
	_c.mutation.SetPlatformUrls(v)
	return _c
}

// SetUniqueAngle sets the "unique_angle" field.
func (_c *CreatorProfileCreate) SetUniqueAngle(v string) *CreatorProfileCreate {
	_c.mutation.SetUniqueAngle(v)
	return _c
}

// SetNillableUniqueAngle sets the "unique_angle" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillableUniqueAngle(v *string) *CreatorProfileCreate {
	if v != nil {
		_c.SetUniqueAngle(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *CreatorProfileCreate) SetPurpose(v string) *CreatorProfileCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillablePurpose(v *string) *CreatorProfileCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *CreatorProfileCreate) SetStrengths(v []string) *CreatorProfileCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetTargetPlatforms sets the "target_platforms" field.
func (_c *CreatorProfileCreate) SetTargetPlatforms(v []string) *CreatorProfileCreate {
	_c.mutation.SetTargetPlatforms(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *CreatorProfileCreate) SetTopics(v []string) *CreatorProfileCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetAudienceDemographics sets the "audience_demographics" field.
func (_c *CreatorProfileCreate) SetAudienceDemographics(v map[string]interface{}) *CreatorProfileCreate {
	_c.mutation.SetAudienceDemographics(v)
	return _c
}

// SetCompetitorAccounts sets the "competitor_accounts" field.
func (_c *CreatorProfileCreate) SetCompetitorAccounts(v map[string][]string) *CreatorProfileCreate {
	_c.mutation.SetCompetitorAccounts(v)
	return _c
}

// SetExistingAssets sets the "existing_assets" field.
func (_c *CreatorProfileCreate) SetExistingAssets(v []string) *CreatorProfileCreate {
	_c.mutation.SetExistingAssets(v)
	return _c
}

// SetMotivation sets the "motivation" field.
func (_c *CreatorProfileCreate) SetMotivation(v string) *CreatorProfileCreate {
	_c.mutation.SetMotivation(v)
	return _c
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillableMotivation(v *string) *CreatorProfileCreate {
	if v != nil {
		_c.SetMotivation(*v)
	}
	return _c
}

// SetPhase2Completed sets the "phase2_completed" field.
func (_c *CreatorProfileCreate) SetPhase2Completed(v bool) *CreatorProfileCreate {
	_c.mutation.SetPhase2Completed(v)
	return _c
}

// SetNillablePhase2Completed sets the "phase2_completed" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillablePhase2Completed(v *bool) *CreatorProfileCreate {
	if v != nil {
		_c.SetPhase2Completed(*v)
	}
	return _c
}

// SetAgentContext sets the "agent_context" field.
func (_c *CreatorProfileCreate) SetAgentContext(v map[string]interface{}) *CreatorProfileCreate {
	_c.mutation.SetAgentContext(v)
	return _c
}

// SetRecommendedFrequency sets the "recommended_frequency" field.
func (_c *CreatorProfileCreate) SetRecommendedFrequency(v string) *CreatorProfileCreate {
	_c.mutation.SetRecommendedFrequency(v)
	return _c
}

// SetNillableRecommendedFrequency sets the "recommended_frequency" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillableRecommendedFrequency(v *string) *CreatorProfileCreate {
	if v != nil {
		_c.SetRecommendedFrequency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreatorProfileCreate) SetCreatedAt(v time.Time) *CreatorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillableCreatedAt(v *time.Time) *CreatorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreatorProfileCreate) SetUpdatedAt(v time.Time) *CreatorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreatorProfileCreate) SetNillableUpdatedAt(v *time.Time) *CreatorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreatorProfileCreate) SetID(v string) *CreatorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CreatorProfileCreate) SetUser(v *User) *CreatorProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the CreatorProfileMutation object of the builder.
func (_c *CreatorProfileCreate) Mutation() *CreatorProfileMutation {
	return _c.mutation
}

// Save creates the CreatorProfile in the database.
func (_c *CreatorProfileCreate) Save(ctx context.Context) (*CreatorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreatorProfileCreate) SaveX(ctx context.Context) *CreatorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreatorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreatorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreatorProfileCreate) defaults() {
	if _, ok := _c.mutation.ExistingPlatforms(); !ok {
		v := creatorprofile.DefaultExistingPlatforms
		_c.mutation.SetExistingPlatforms(v)
	}
	if _, ok := _c.mutation.PlatformUrls(); !ok {
		v := creatorprofile.DefaultPlatformUrls
		_c.mutation.SetPlatformUrls(v)
	}
	if _, ok := _c.mutation.Strengths(); !ok {
		v := creatorprofile.DefaultStrengths
		_c.mutation.SetStrengths(v)
	}
	if _, ok := _c.mutation.TargetPlatforms(); !ok {
		v := creatorprofile.DefaultTargetPlatforms
		_c.mutation.SetTargetPlatforms(v)
	}
	if _, ok := _c.mutation.Topics(); !ok {
		v := creatorprofile.DefaultTopics
		_c.mutation.SetTopics(v)
	}
	if _, ok := _c.mutation.AudienceDemographics(); !ok {
		v := creatorprofile.DefaultAudienceDemographics
		_c.mutation.SetAudienceDemographics(v)
	}
	if _, ok := _c.mutation.CompetitorAccounts(); !ok {
		v := creatorprofile.DefaultCompetitorAccounts
		_c.mutation.SetCompetitorAccounts(v)
	}
	if _, ok := _c.mutation.ExistingAssets(); !ok {
		v := creatorprofile.DefaultExistingAssets
		_c.mutation.SetExistingAssets(v)
	}
	if _, ok := _c.mutation.Phase2Completed(); !ok {
		v := creatorprofile.DefaultPhase2Completed
		_c.mutation.SetPhase2Completed(v)
	}
	if _, ok := _c.mutation.AgentContext(); !ok {
		v := creatorprofile.DefaultAgentContext
		_c.mutation.SetAgentContext(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creatorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creatorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreatorProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreatorProfile.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CreatorProfile.name"`)}
	}
	if _, ok := _c.mutation.CreatorType(); !ok {
		return &ValidationError{Name: "creator_type", err: errors.New(`ent: missing required field "CreatorProfile.creator_type"`)}
	}
	if _, ok := _c.mutation.Niche(); !ok {
		return &ValidationError{Name: "niche", err: errors.New(`ent: missing required field "CreatorProfile.niche"`)}
	}
	if _, ok := _c.mutation.TargetAudienceNiche(); !ok {
		return &ValidationError{Name: "target_audience_niche", err: errors.New(`ent: missing required field "CreatorProfile.target_audience_niche"`)}
	}
	if _, ok := _c.mutation.ExistingPlatforms(); !ok {
		return &ValidationError{Name: "existing_platforms", err: errors.New(`ent: missing required field "CreatorProfile.existing_platforms"`)}
	}
	if _, ok := _c.mutation.PlatformUrls(); !ok {
		return &ValidationError{Name: "platform_urls", err: errors.New(`ent: missing required field "CreatorProfile.platform_urls"`)}
	}
	if _, ok := _c.mutation.Strengths(); !ok {
		return &ValidationError{Name: "strengths", err: errors.New(`ent: missing required field "CreatorProfile.strengths"`)}
	}
	if _, ok := _c.mutation.TargetPlatforms(); !ok {
		return &ValidationError{Name: "target_platforms", err: errors.New(`ent: missing required field "CreatorProfile.target_platforms"`)}
	}
	if _, ok := _c.mutation.Topics(); !ok {
		return &ValidationError{Name: "topics", err: errors.New(`ent: missing required field "CreatorProfile.topics"`)}
	}
	if _, ok := _c.mutation.AudienceDemographics(); !ok {
		return &ValidationError{Name: "audience_demographics", err: errors.New(`ent: missing required field "CreatorProfile.audience_demographics"`)}
	}
	if _, ok := _c.mutation.CompetitorAccounts(); !ok {
		return &ValidationError{Name: "competitor_accounts", err: errors.New(`ent: missing required field "CreatorProfile.competitor_accounts"`)}
	}
	if _, ok := _c.mutation.ExistingAssets(); !ok {
		return &ValidationError{Name: "existing_assets", err: errors.New(`ent: missing required field "CreatorProfile.existing_assets"`)}
	}
	if _, ok := _c.mutation.Phase2Completed(); !ok {
		return &ValidationError{Name: "phase2_completed", err: errors.New(`ent: missing required field "CreatorProfile.phase2_completed"`)}
	}
	if _, ok := _c.mutation.AgentContext(); !ok {
		return &ValidationError{Name: "agent_context", err: errors.New(`ent: missing required field "CreatorProfile.agent_context"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreatorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreatorProfile.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "CreatorProfile.user"`)}
	}
	return nil
}

func (_c *CreatorProfileCreate) sqlSave(ctx context.Context) (*CreatorProfile, error) {
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
			return nil, fmt.Errorf("unexpected CreatorProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreatorProfileCreate) createSpec() (*CreatorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &CreatorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creatorprofile.Table, sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(creatorprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CreatorType(); ok {
		_spec.SetField(creatorprofile.FieldCreatorType, field.TypeString, value)
		_node.CreatorType = value
	}
	if value, ok := _c.mutation.Niche(); ok {
		_spec.SetField(creatorprofile.FieldNiche, field.TypeString, value)
		_node.Niche = value
	}
	if value, ok := _c.mutation.TargetAudienceNiche(); ok {
		_spec.SetField(creatorprofile.FieldTargetAudienceNiche, field.TypeString, value)
		_node.TargetAudienceNiche = value
	}
	if value, ok := _c.mutation.ExistingPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldExistingPlatforms, field.TypeJSON, value)
		_node.ExistingPlatforms = value
	}
	if value, ok := _c.mutation.PlatformUrls(); ok {
		_spec.SetField(creatorprofile.FieldPlatformUrls, field.TypeJSON, value)
		_node.PlatformUrls = value
	}
	if value, ok := _c.mutation.UniqueAngle(); ok {
		_spec.SetField(creatorprofile.FieldUniqueAngle, field.TypeString, value)
		_node.UniqueAngle = &value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(creatorprofile.FieldPurpose, field.TypeString, value)
		_node.Purpose = &value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(creatorprofile.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.TargetPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldTargetPlatforms, field.TypeJSON, value)
		_node.TargetPlatforms = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(creatorprofile.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.AudienceDemographics(); ok {
		_spec.SetField(creatorprofile.FieldAudienceDemographics, field.TypeJSON, value)
		_node.AudienceDemographics = value
	}
	if value, ok := _c.mutation.CompetitorAccounts(); ok {
		_spec.SetField(creatorprofile.FieldCompetitorAccounts, field.TypeJSON, value)
		_node.CompetitorAccounts = value
	}
	if value, ok := _c.mutation.ExistingAssets(); ok {
		_spec.SetField(creatorprofile.FieldExistingAssets, field.TypeJSON, value)
		_node.ExistingAssets = value
	}
	if value, ok := _c.mutation.Motivation(); ok {
		_spec.SetField(creatorprofile.FieldMotivation, field.TypeString, value)
		_node.Motivation = &value
	}
	if value, ok := _c.mutation.Phase2Completed(); ok {
		_spec.SetField(creatorprofile.FieldPhase2Completed, field.TypeBool, value)
		_node.Phase2Completed = value
	}
	if value, ok := _c.mutation.AgentContext(); ok {
		_spec.SetField(creatorprofile.FieldAgentContext, field.TypeJSON, value)
		_node.AgentContext = value
	}
	if value, ok := _c.mutation.RecommendedFrequency(); ok {
		_spec.SetField(creatorprofile.FieldRecommendedFrequency, field.TypeString, value)
		_node.RecommendedFrequency = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creatorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creatorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   creatorprofile.UserTable,
			Columns: []string{creatorprofile.UserColumn},
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
	return _node, _spec
}

// CreatorProfileCreateBulk is the builder for creating many CreatorProfile entities in bulk.
type CreatorProfileCreateBulk struct {
	config
	err      error
	builders []*CreatorProfileCreate
}

// Save creates the CreatorProfile entities in the database.
func (_c *CreatorProfileCreateBulk) Save(ctx context.Context) ([]*CreatorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreatorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreatorProfileMutation)
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
func (_c *CreatorProfileCreateBulk) SaveX(ctx context.Context) []*CreatorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreatorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreatorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
