// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/predicate"
)

// CreatorProfileUpdate is the builder for updating CreatorProfile entities.
type CreatorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *CreatorProfileMutation
}

// Where appends a list predicates to the CreatorProfileUpdate builder.
func (_u *CreatorProfileUpdate) Where(ps ...predicate.CreatorProfile) *CreatorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CreatorProfileUpdate) SetName(v string) *CreatorProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableName(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatorType sets the "creator_type" field.
func (_u *CreatorProfileUpdate) SetCreatorType(v string) *CreatorProfileUpdate {
	_u.mutation.SetCreatorType(v)
	return _u
}

// SetNillableCreatorType sets the "creator_type" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableCreatorType(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetCreatorType(*v)
	}
	return _u
}

// SetNiche sets the "niche" field.
func (_u *CreatorProfileUpdate) SetNiche(v string) *CreatorProfileUpdate {
	_u.mutation.SetNiche(v)
	return _u
}

// SetNillableNiche sets the "niche" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableNiche(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetNiche(*v)
	}
	return _u
}

// SetTargetAudienceNiche sets the "target_audience_niche" field.
func (_u *CreatorProfileUpdate) SetTargetAudienceNiche(v string) *CreatorProfileUpdate {
	_u.mutation.SetTargetAudienceNiche(v)
	return _u
}

// SetNillableTargetAudienceNiche sets the "target_audience_niche" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableTargetAudienceNiche(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetTargetAudienceNiche(*v)
	}
	return _u
}

// SetExistingPlatforms sets the "existing_platforms" field.
func (_u *CreatorProfileUpdate) SetExistingPlatforms(v []string) *CreatorProfileUpdate {
	_u.mutation.SetExistingPlatforms(v)
	return _u
}

// AppendExistingPlatforms appends value to the "existing_platforms" field.
func (_u *CreatorProfileUpdate) AppendExistingPlatforms(v []string) *CreatorProfileUpdate {
	_u.mutation.AppendExistingPlatforms(v)
	return _u
}

// SetPlatformUrls sets the "platform_urls" field.
func (_u *CreatorProfileUpdate) SetPlatformUrls(v map[string]string) *CreatorProfileUpdate {
	_u.mutation.SetPlatformUrls(v)
	return _u
}

// SetUniqueAngle sets the "unique_angle" field.
func (_u *CreatorProfileUpdate) SetUniqueAngle(v string) *CreatorProfileUpdate {
	_u.mutation.SetUniqueAngle(v)
	return _u
}

// SetNillableUniqueAngle sets the "unique_angle" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableUniqueAngle(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetUniqueAngle(*v)
	}
	return _u
}

// ClearUniqueAngle clears the value of the "unique_angle" field.
func (_u *CreatorProfileUpdate) ClearUniqueAngle() *CreatorProfileUpdate {
	_u.mutation.ClearUniqueAngle()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *CreatorProfileUpdate) SetPurpose(v string) *CreatorProfileUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillablePurpose(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// ClearPurpose clears the value of the "purpose" field.
func (_u *CreatorProfileUpdate) ClearPurpose() *CreatorProfileUpdate {
	_u.mutation.ClearPurpose()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *CreatorProfileUpdate) SetStrengths(v []string) *CreatorProfileUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *CreatorProfileUpdate) AppendStrengths(v []string) *CreatorProfileUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetTargetPlatforms sets the "target_platforms" field.
func (_u *CreatorProfileUpdate) SetTargetPlatforms(v []string) *CreatorProfileUpdate {
	_u.mutation.SetTargetPlatforms(v)
	return _u
}

// AppendTargetPlatforms appends value to the "target_platforms" field.
func (_u *CreatorProfileUpdate) AppendTargetPlatforms(v []string) *CreatorProfileUpdate {
	_u.mutation.AppendTargetPlatforms(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *CreatorProfileUpdate) SetTopics(v []string) *CreatorProfileUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *CreatorProfileUpdate) AppendTopics(v []string) *CreatorProfileUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetAudienceDemographics sets the "audience_demographics" field.
func (_u *CreatorProfileUpdate) SetAudienceDemographics(v map[string]interface{}) *CreatorProfileUpdate {
	_u.mutation.SetAudienceDemographics(v)
	return _u
}

// SetCompetitorAccounts sets the "competitor_accounts" field.
func (_u *CreatorProfileUpdate) SetCompetitorAccounts(v map[string][]string) *CreatorProfileUpdate {
	_u.mutation.SetCompetitorAccounts(v)
	return _u
}

// SetExistingAssets sets the "existing_assets" field.
func (_u *CreatorProfileUpdate) SetExistingAssets(v []string) *CreatorProfileUpdate {
	_u.mutation.SetExistingAssets(v)
	return _u
}

// AppendExistingAssets appends value to the "existing_assets" field.
func (_u *CreatorProfileUpdate) AppendExistingAssets(v []string) *CreatorProfileUpdate {
	_u.mutation.AppendExistingAssets(v)
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *CreatorProfileUpdate) SetMotivation(v string) *CreatorProfileUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableMotivation(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *CreatorProfileUpdate) ClearMotivation() *CreatorProfileUpdate {
	_u.mutation.ClearMotivation()
	return _u
}

// SetPhase2Completed sets the "phase2_completed" field.
func (_u *CreatorProfileUpdate) SetPhase2Completed(v bool) *CreatorProfileUpdate {
	_u.mutation.SetPhase2Completed(v)
	return _u
}

// SetNillablePhase2Completed sets the "phase2_completed" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillablePhase2Completed(v *bool) *CreatorProfileUpdate {
	if v != nil {
		_u.SetPhase2Completed(*v)
	}
	return _u
}

// SetAgentContext sets the "agent_context" field.
func (_u *CreatorProfileUpdate) SetAgentContext(v map[string]interface{}) *CreatorProfileUpdate {
	_u.mutation.SetAgentContext(v)
	return _u
}

// SetRecommendedFrequency sets the "recommended_frequency" field.
func (_u *CreatorProfileUpdate) SetRecommendedFrequency(v string) *CreatorProfileUpdate {
	_u.mutation.SetRecommendedFrequency(v)
	return _u
}

// SetNillableRecommendedFrequency sets the "recommended_frequency" field if the given value is not nil.
func (_u *CreatorProfileUpdate) SetNillableRecommendedFrequency(v *string) *CreatorProfileUpdate {
	if v != nil {
		_u.SetRecommendedFrequency(*v)
	}
	return _u
}

// ClearRecommendedFrequency clears the value of the "recommended_frequency" field.
func (_u *CreatorProfileUpdate) ClearRecommendedFrequency() *CreatorProfileUpdate {
	_u.mutation.ClearRecommendedFrequency()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreatorProfileUpdate) SetUpdatedAt(v time.Time) *CreatorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreatorProfileMutation object of the builder.
func (_u *CreatorProfileUpdate) Mutation() *CreatorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreatorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreatorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreatorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreatorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreatorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creatorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreatorProfileUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreatorProfile.user"`)
	}
	return nil
}

func (_u *CreatorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creatorprofile.Table, creatorprofile.Columns, sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(creatorprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatorType(); ok {
		_spec.SetField(creatorprofile.FieldCreatorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Niche(); ok {
		_spec.SetField(creatorprofile.FieldNiche, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudienceNiche(); ok {
		_spec.SetField(creatorprofile.FieldTargetAudienceNiche, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExistingPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldExistingPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExistingPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldExistingPlatforms, value)
		})
	}
	if value, ok := _u.mutation.PlatformUrls(); ok {
		_spec.SetField(creatorprofile.FieldPlatformUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UniqueAngle(); ok {
		_spec.SetField(creatorprofile.FieldUniqueAngle, field.TypeString, value)
	}
	if _u.mutation.UniqueAngleCleared() {
		_spec.ClearField(creatorprofile.FieldUniqueAngle, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(creatorprofile.FieldPurpose, field.TypeString, value)
	}
	if _u.mutation.PurposeCleared() {
		_spec.ClearField(creatorprofile.FieldPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(creatorprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.TargetPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldTargetPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldTargetPlatforms, value)
		})
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(creatorprofile.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.AudienceDemographics(); ok {
		_spec.SetField(creatorprofile.FieldAudienceDemographics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompetitorAccounts(); ok {
		_spec.SetField(creatorprofile.FieldCompetitorAccounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExistingAssets(); ok {
		_spec.SetField(creatorprofile.FieldExistingAssets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExistingAssets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldExistingAssets, value)
		})
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(creatorprofile.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(creatorprofile.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.Phase2Completed(); ok {
		_spec.SetField(creatorprofile.FieldPhase2Completed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentContext(); ok {
		_spec.SetField(creatorprofile.FieldAgentContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RecommendedFrequency(); ok {
		_spec.SetField(creatorprofile.FieldRecommendedFrequency, field.TypeString, value)
	}
	if _u.mutation.RecommendedFrequencyCleared() {
		_spec.ClearField(creatorprofile.FieldRecommendedFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creatorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creatorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreatorProfileUpdateOne is the builder for updating a single CreatorProfile entity.
type CreatorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreatorProfileMutation
}

// SetName sets the "name" field.
func (_u *CreatorProfileUpdateOne) SetName(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableName(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCreatorType sets the "creator_type" field.
func (_u *CreatorProfileUpdateOne) SetCreatorType(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetCreatorType(v)
	return _u
}

// SetNillableCreatorType sets the "creator_type" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableCreatorType(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetCreatorType(*v)
	}
	return _u
}

// SetNiche sets the "niche" field.
func (_u *CreatorProfileUpdateOne) SetNiche(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetNiche(v)
	return _u
}

// SetNillableNiche sets the "niche" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableNiche(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetNiche(*v)
	}
	return _u
}

// SetTargetAudienceNiche sets the "target_audience_niche" field.
func (_u *CreatorProfileUpdateOne) SetTargetAudienceNiche(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetTargetAudienceNiche(v)
	return _u
}

// SetNillableTargetAudienceNiche sets the "target_audience_niche" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableTargetAudienceNiche(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetTargetAudienceNiche(*v)
	}
	return _u
}

// SetExistingPlatforms sets the "existing_platforms" field.
func (_u *CreatorProfileUpdateOne) SetExistingPlatforms(v []string) *CreatorProfileUpdateOne {
	_u.mutation.SetExistingPlatforms(v)
	return _u
}

// AppendExistingPlatforms appends value to the "existing_platforms" field.
func (_u *CreatorProfileUpdateOne) AppendExistingPlatforms(v []string) *CreatorProfileUpdateOne {
	_u.mutation.AppendExistingPlatforms(v)
	return _u
}

// SetPlatformUrls sets the "platform_urls" field.
func (_u *CreatorProfileUpdateOne) SetPlatformUrls(v map[string]string) *CreatorProfileUpdateOne {
	_u.mutation.SetPlatformUrls(v)
	return _u
}

// SetUniqueAngle sets the "unique_angle" field.
func (_u *CreatorProfileUpdateOne) SetUniqueAngle(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetUniqueAngle(v)
	return _u
}

// SetNillableUniqueAngle sets the "unique_angle" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableUniqueAngle(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetUniqueAngle(*v)
	}
	return _u
}

// ClearUniqueAngle clears the value of the "unique_angle" field.
func (_u *CreatorProfileUpdateOne) ClearUniqueAngle() *CreatorProfileUpdateOne {
	_u.mutation.ClearUniqueAngle()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *CreatorProfileUpdateOne) SetPurpose(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillablePurpose(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// ClearPurpose clears the value of the "purpose" field.
func (_u *CreatorProfileUpdateOne) ClearPurpose() *CreatorProfileUpdateOne {
	_u.mutation.ClearPurpose()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *CreatorProfileUpdateOne) SetStrengths(v []string) *CreatorProfileUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *CreatorProfileUpdateOne) AppendStrengths(v []string) *CreatorProfileUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetTargetPlatforms sets the "target_platforms" field.
func (_u *CreatorProfileUpdateOne) SetTargetPlatforms(v []string) *CreatorProfileUpdateOne {
	_u.mutation.SetTargetPlatforms(v)
	return _u
}

// AppendTargetPlatforms appends value to the "target_platforms" field.
func (_u *CreatorProfileUpdateOne) AppendTargetPlatforms(v []string) *CreatorProfileUpdateOne {
	_u.mutation.AppendTargetPlatforms(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *CreatorProfileUpdateOne) SetTopics(v []string) *CreatorProfileUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *CreatorProfileUpdateOne) AppendTopics(v []string) *CreatorProfileUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetAudienceDemographics sets the "audience_demographics" field.
func (_u *CreatorProfileUpdateOne) SetAudienceDemographics(v map[string]interface{}) *CreatorProfileUpdateOne {
	_u.mutation.SetAudienceDemographics(v)
	return _u
}

// SetCompetitorAccounts sets the "competitor_accounts" field.
func (_u *CreatorProfileUpdateOne) SetCompetitorAccounts(v map[string][]string) *CreatorProfileUpdateOne {
	_u.mutation.SetCompetitorAccounts(v)
	return _u
}

// SetExistingAssets sets the "existing_assets" field.
func (_u *CreatorProfileUpdateOne) SetExistingAssets(v []string) *CreatorProfileUpdateOne {
	_u.mutation.SetExistingAssets(v)
	return _u
}

// AppendExistingAssets appends value to the "existing_assets" field.
func (_u *CreatorProfileUpdateOne) AppendExistingAssets(v []string) *CreatorProfileUpdateOne {
	_u.mutation.AppendExistingAssets(v)
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *CreatorProfileUpdateOne) SetMotivation(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableMotivation(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *CreatorProfileUpdateOne) ClearMotivation() *CreatorProfileUpdateOne {
	_u.mutation.ClearMotivation()
	return _u
}

// SetPhase2Completed sets the "phase2_completed" field.
func (_u *CreatorProfileUpdateOne) SetPhase2Completed(v bool) *CreatorProfileUpdateOne {
	_u.mutation.SetPhase2Completed(v)
	return _u
}

// SetNillablePhase2Completed sets the "phase2_completed" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillablePhase2Completed(v *bool) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetPhase2Completed(*v)
	}
	return _u
}

// SetAgentContext sets the "agent_context" field.
func (_u *CreatorProfileUpdateOne) SetAgentContext(v map[string]interface{}) *CreatorProfileUpdateOne {
	_u.mutation.SetAgentContext(v)
	return _u
}

// SetRecommendedFrequency sets the "recommended_frequency" field.
func (_u *CreatorProfileUpdateOne) SetRecommendedFrequency(v string) *CreatorProfileUpdateOne {
	_u.mutation.SetRecommendedFrequency(v)
	return _u
}

// SetNillableRecommendedFrequency sets the "recommended_frequency" field if the given value is not nil.
func (_u *CreatorProfileUpdateOne) SetNillableRecommendedFrequency(v *string) *CreatorProfileUpdateOne {
	if v != nil {
		_u.SetRecommendedFrequency(*v)
	}
	return _u
}

// ClearRecommendedFrequency clears the value of the "recommended_frequency" field.
func (_u *CreatorProfileUpdateOne) ClearRecommendedFrequency() *CreatorProfileUpdateOne {
	_u.mutation.ClearRecommendedFrequency()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreatorProfileUpdateOne) SetUpdatedAt(v time.Time) *CreatorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreatorProfileMutation object of the builder.
func (_u *CreatorProfileUpdateOne) Mutation() *CreatorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreatorProfileUpdate builder.
func (_u *CreatorProfileUpdateOne) Where(ps ...predicate.CreatorProfile) *CreatorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreatorProfileUpdateOne) Select(field string, fields ...string) *CreatorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreatorProfile entity.
func (_u *CreatorProfileUpdateOne) Save(ctx context.Context) (*CreatorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreatorProfileUpdateOne) SaveX(ctx context.Context) *CreatorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreatorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreatorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreatorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creatorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreatorProfileUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreatorProfile.user"`)
	}
	return nil
}

func (_u *CreatorProfileUpdateOne) sqlSave(ctx context.Context) (_node *CreatorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creatorprofile.Table, creatorprofile.Columns, sqlgraph.NewFieldSpec(creatorprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreatorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creatorprofile.FieldID)
		for _, f := range fields {
			if !creatorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creatorprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(creatorprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatorType(); ok {
		_spec.SetField(creatorprofile.FieldCreatorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Niche(); ok {
		_spec.SetField(creatorprofile.FieldNiche, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudienceNiche(); ok {
		_spec.SetField(creatorprofile.FieldTargetAudienceNiche, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExistingPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldExistingPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExistingPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldExistingPlatforms, value)
		})
	}
	if value, ok := _u.mutation.PlatformUrls(); ok {
		_spec.SetField(creatorprofile.FieldPlatformUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UniqueAngle(); ok {
		_spec.SetField(creatorprofile.FieldUniqueAngle, field.TypeString, value)
	}
	if _u.mutation.UniqueAngleCleared() {
		_spec.ClearField(creatorprofile.FieldUniqueAngle, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(creatorprofile.FieldPurpose, field.TypeString, value)
	}
	if _u.mutation.PurposeCleared() {
		_spec.ClearField(creatorprofile.FieldPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(creatorprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.TargetPlatforms(); ok {
		_spec.SetField(creatorprofile.FieldTargetPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldTargetPlatforms, value)
		})
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(creatorprofile.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.AudienceDemographics(); ok {
		_spec.SetField(creatorprofile.FieldAudienceDemographics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompetitorAccounts(); ok {
		_spec.SetField(creatorprofile.FieldCompetitorAccounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExistingAssets(); ok {
		_spec.SetField(creatorprofile.FieldExistingAssets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExistingAssets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creatorprofile.FieldExistingAssets, value)
		})
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(creatorprofile.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(creatorprofile.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.Phase2Completed(); ok {
		_spec.SetField(creatorprofile.FieldPhase2Completed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentContext(); ok {
		_spec.SetField(creatorprofile.FieldAgentContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RecommendedFrequency(); ok {
		_spec.SetField(creatorprofile.FieldRecommendedFrequency, field.TypeString, value)
	}
	if _u.mutation.RecommendedFrequencyCleared() {
		_spec.ClearField(creatorprofile.FieldRecommendedFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creatorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CreatorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creatorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
