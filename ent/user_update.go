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
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/predicate"
	"github.com/creatorloop/looper/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExternalIdentityID sets the "external_identity_id" field.
func (_u *UserUpdate) SetExternalIdentityID(v string) *UserUpdate {
	_u.mutation.SetExternalIdentityID(v)
	return _u
}

// SetNillableExternalIdentityID sets the "external_identity_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableExternalIdentityID(v *string) *UserUpdate {
	if v != nil {
		_u.SetExternalIdentityID(*v)
	}
	return _u
}

// ClearExternalIdentityID clears the value of the "external_identity_id" field.
func (_u *UserUpdate) ClearExternalIdentityID() *UserUpdate {
	_u.mutation.ClearExternalIdentityID()
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *UserUpdate) SetPlanTier(v string) *UserUpdate {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePlanTier(v *string) *UserUpdate {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *UserUpdate) SetUsage(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfileID sets the "profile" edge to the CreatorProfile entity by ID.
func (_u *UserUpdate) SetProfileID(id string) *UserUpdate {
	_u.mutation.SetProfileID(id)
	return _u
}

// SetNillableProfileID sets the "profile" edge to the CreatorProfile entity by ID if the given value is not nil.
func (_u *UserUpdate) SetNillableProfileID(id *string) *UserUpdate {
	if id != nil {
		_u = _u.SetProfileID(*id)
	}
	return _u
}

// SetProfile sets the "profile" edge to the CreatorProfile entity.
func (_u *UserUpdate) SetProfile(v *CreatorProfile) *UserUpdate {
	return _u.SetProfileID(v.ID)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *UserUpdate) AddCampaignIDs(ids ...string) *UserUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *UserUpdate) AddCampaigns(v ...*Campaign) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by IDs.
func (_u *UserUpdate) AddLearningMemoryIDs(ids ...string) *UserUpdate {
	_u.mutation.AddLearningMemoryIDs(ids...)
	return _u
}

// AddLearningMemories adds the "learning_memories" edges to the LearningMemory entity.
func (_u *UserUpdate) AddLearningMemories(v ...*LearningMemory) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLearningMemoryIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the CreatorProfile entity.
func (_u *UserUpdate) ClearProfile() *UserUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *UserUpdate) ClearCampaigns() *UserUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *UserUpdate) RemoveCampaignIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *UserUpdate) RemoveCampaigns(v ...*Campaign) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearLearningMemories clears all "learning_memories" edges to the LearningMemory entity.
func (_u *UserUpdate) ClearLearningMemories() *UserUpdate {
	_u.mutation.ClearLearningMemories()
	return _u
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to LearningMemory entities by IDs.
func (_u *UserUpdate) RemoveLearningMemoryIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveLearningMemoryIDs(ids...)
	return _u
}

// RemoveLearningMemories removes "learning_memories" edges to LearningMemory entities.
func (_u *UserUpdate) RemoveLearningMemories(v ...*LearningMemory) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLearningMemoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalIdentityID(); ok {
		_spec.SetField(user.FieldExternalIdentityID, field.TypeString, value)
	}
	if _u.mutation.ExternalIdentityIDCleared() {
		_spec.ClearField(user.FieldExternalIdentityID, field.TypeString)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(user.FieldPlanTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(user.FieldUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ProfileTable,
			Columns: []string{user.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ProfileTable,
			Columns: []string{user.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LearningMemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLearningMemoriesIDs(); len(nodes) > 0 && !_u.mutation.LearningMemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LearningMemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExternalIdentityID sets the "external_identity_id" field.
func (_u *UserUpdateOne) SetExternalIdentityID(v string) *UserUpdateOne {
	_u.mutation.SetExternalIdentityID(v)
	return _u
}

// SetNillableExternalIdentityID sets the "external_identity_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableExternalIdentityID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetExternalIdentityID(*v)
	}
	return _u
}

// ClearExternalIdentityID clears the value of the "external_identity_id" field.
func (_u *UserUpdateOne) ClearExternalIdentityID() *UserUpdateOne {
	_u.mutation.ClearExternalIdentityID()
	return _u
}

// SetPlanTier sets the "plan_tier" field.
func (_u *UserUpdateOne) SetPlanTier(v string) *UserUpdateOne {
	_u.mutation.SetPlanTier(v)
	return _u
}

// SetNillablePlanTier sets the "plan_tier" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePlanTier(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPlanTier(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *UserUpdateOne) SetUsage(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfileID sets the "profile" edge to the CreatorProfile entity by ID.
func (_u *UserUpdateOne) SetProfileID(id string) *UserUpdateOne {
	_u.mutation.SetProfileID(id)
	return _u
}

// SetNillableProfileID sets the "profile" edge to the CreatorProfile entity by ID if the given value is not nil.
func (_u *UserUpdateOne) SetNillableProfileID(id *string) *UserUpdateOne {
	if id != nil {
		_u = _u.SetProfileID(*id)
	}
	return _u
}

// SetProfile sets the "profile" edge to the CreatorProfile entity.
func (_u *UserUpdateOne) SetProfile(v *CreatorProfile) *UserUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *UserUpdateOne) AddCampaignIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *UserUpdateOne) AddCampaigns(v ...*Campaign) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by IDs.
func (_u *UserUpdateOne) AddLearningMemoryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddLearningMemoryIDs(ids...)
	return _u
}

// AddLearningMemories adds the "learning_memories" edges to the LearningMemory entity.
func (_u *UserUpdateOne) AddLearningMemories(v ...*LearningMemory) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLearningMemoryIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the CreatorProfile entity.
func (_u *UserUpdateOne) ClearProfile() *UserUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *UserUpdateOne) ClearCampaigns() *UserUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *UserUpdateOne) RemoveCampaignIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *UserUpdateOne) RemoveCampaigns(v ...*Campaign) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// ClearLearningMemories clears all "learning_memories" edges to the LearningMemory entity.
func (_u *UserUpdateOne) ClearLearningMemories() *UserUpdateOne {
	_u.mutation.ClearLearningMemories()
	return _u
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to LearningMemory entities by IDs.
func (_u *UserUpdateOne) RemoveLearningMemoryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveLearningMemoryIDs(ids...)
	return _u
}

// RemoveLearningMemories removes "learning_memories" edges to LearningMemory entities.
func (_u *UserUpdateOne) RemoveLearningMemories(v ...*LearningMemory) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLearningMemoryIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalIdentityID(); ok {
		_spec.SetField(user.FieldExternalIdentityID, field.TypeString, value)
	}
	if _u.mutation.ExternalIdentityIDCleared() {
		_spec.ClearField(user.FieldExternalIdentityID, field.TypeString)
	}
	if value, ok := _u.mutation.PlanTier(); ok {
		_spec.SetField(user.FieldPlanTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(user.FieldUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ProfileTable,
			Columns: []string{user.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ProfileTable,
			Columns: []string{user.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CampaignsTable,
			Columns: []string{user.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LearningMemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLearningMemoriesIDs(); len(nodes) > 0 && !_u.mutation.LearningMemoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LearningMemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.LearningMemoriesTable,
			Columns: []string{user.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
