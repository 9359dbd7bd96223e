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
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/user"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CampaignCreate) SetUserID(v string) *CampaignCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOnboardingData sets the "onboarding_data" field.
func (_c *CampaignCreate) SetOnboardingData(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetOnboardingData(v)
	return _c
}

// SetProfileSnapshot sets the "profile_snapshot" field.
func (_c *CampaignCreate) SetProfileSnapshot(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetProfileSnapshot(v)
	return _c
}

// SetAgentContext sets the "agent_context" field.
func (_c *CampaignCreate) SetAgentContext(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetAgentContext(v)
	return _c
}

// SetStrategyOutput sets the "strategy_output" field.
func (_c *CampaignCreate) SetStrategyOutput(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetStrategyOutput(v)
	return _c
}

// SetForensicsOutput sets the "forensics_output" field.
func (_c *CampaignCreate) SetForensicsOutput(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetForensicsOutput(v)
	return _c
}

// SetCampaignPlan sets the "campaign_plan" field.
func (_c *CampaignCreate) SetCampaignPlan(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetCampaignPlan(v)
	return _c
}

// SetOutcomeReport sets the "outcome_report" field.
func (_c *CampaignCreate) SetOutcomeReport(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetOutcomeReport(v)
	return _c
}

// SetLearningInsights sets the "learning_insights" field.
func (_c *CampaignCreate) SetLearningInsights(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetLearningInsights(v)
	return _c
}

// SetContentWarnings sets the "content_warnings" field.
func (_c *CampaignCreate) SetContentWarnings(v []string) *CampaignCreate {
	_c.mutation.SetContentWarnings(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *CampaignCreate) SetTaskID(v string) *CampaignCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTaskID(v *string) *CampaignCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetLastAttemptedPhase sets the "last_attempted_phase" field.
func (_c *CampaignCreate) SetLastAttemptedPhase(v string) *CampaignCreate {
	_c.mutation.SetLastAttemptedPhase(v)
	return _c
}

// SetNillableLastAttemptedPhase sets the "last_attempted_phase" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableLastAttemptedPhase(v *string) *CampaignCreate {
	if v != nil {
		_c.SetLastAttemptedPhase(*v)
	}
	return _c
}

// SetFailedStage sets the "failed_stage" field.
func (_c *CampaignCreate) SetFailedStage(v string) *CampaignCreate {
	_c.mutation.SetFailedStage(v)
	return _c
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFailedStage(v *string) *CampaignCreate {
	if v != nil {
		_c.SetFailedStage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CampaignCreate) SetStartedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStartedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CampaignCreate) SetCompletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCompletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *CampaignCreate) SetArchivedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableArchivedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CampaignCreate) SetUser(v *User) *CampaignCreate {
	return _c.SetUserID(v.ID)
}

// AddDailyContentIDs adds the "daily_contents" edge to the DailyContent entity by IDs.
func (_c *CampaignCreate) AddDailyContentIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddDailyContentIDs(ids...)
	return _c
}

// AddDailyContents adds the "daily_contents" edges to the DailyContent entity.
func (_c *CampaignCreate) AddDailyContents(v ...*DailyContent) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDailyContentIDs(ids...)
}

// AddDailyExecutionIDs adds the "daily_executions" edge to the DailyExecution entity by IDs.
func (_c *CampaignCreate) AddDailyExecutionIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddDailyExecutionIDs(ids...)
	return _c
}

// AddDailyExecutions adds the "daily_executions" edges to the DailyExecution entity.
func (_c *CampaignCreate) AddDailyExecutions(v ...*DailyExecution) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDailyExecutionIDs(ids...)
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by IDs.
func (_c *CampaignCreate) AddLearningMemoryIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddLearningMemoryIDs(ids...)
	return _c
}

// AddLearningMemories adds the "learning_memories" edges to the LearningMemory entity.
func (_c *CampaignCreate) AddLearningMemories(v ...*LearningMemory) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLearningMemoryIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OnboardingData(); !ok {
		v := campaign.DefaultOnboardingData
		_c.mutation.SetOnboardingData(v)
	}
	if _, ok := _c.mutation.ProfileSnapshot(); !ok {
		v := campaign.DefaultProfileSnapshot
		_c.mutation.SetProfileSnapshot(v)
	}
	if _, ok := _c.mutation.AgentContext(); !ok {
		v := campaign.DefaultAgentContext
		_c.mutation.SetAgentContext(v)
	}
	if _, ok := _c.mutation.StrategyOutput(); !ok {
		v := campaign.DefaultStrategyOutput
		_c.mutation.SetStrategyOutput(v)
	}
	if _, ok := _c.mutation.ForensicsOutput(); !ok {
		v := campaign.DefaultForensicsOutput
		_c.mutation.SetForensicsOutput(v)
	}
	if _, ok := _c.mutation.CampaignPlan(); !ok {
		v := campaign.DefaultCampaignPlan
		_c.mutation.SetCampaignPlan(v)
	}
	if _, ok := _c.mutation.OutcomeReport(); !ok {
		v := campaign.DefaultOutcomeReport
		_c.mutation.SetOutcomeReport(v)
	}
	if _, ok := _c.mutation.LearningInsights(); !ok {
		v := campaign.DefaultLearningInsights
		_c.mutation.SetLearningInsights(v)
	}
	if _, ok := _c.mutation.ContentWarnings(); !ok {
		v := campaign.DefaultContentWarnings
		_c.mutation.SetContentWarnings(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Campaign.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OnboardingData(); !ok {
		return &ValidationError{Name: "onboarding_data", err: errors.New(`ent: missing required field "Campaign.onboarding_data"`)}
	}
	if _, ok := _c.mutation.ProfileSnapshot(); !ok {
		return &ValidationError{Name: "profile_snapshot", err: errors.New(`ent: missing required field "Campaign.profile_snapshot"`)}
	}
	if _, ok := _c.mutation.AgentContext(); !ok {
		return &ValidationError{Name: "agent_context", err: errors.New(`ent: missing required field "Campaign.agent_context"`)}
	}
	if _, ok := _c.mutation.StrategyOutput(); !ok {
		return &ValidationError{Name: "strategy_output", err: errors.New(`ent: missing required field "Campaign.strategy_output"`)}
	}
	if _, ok := _c.mutation.ForensicsOutput(); !ok {
		return &ValidationError{Name: "forensics_output", err: errors.New(`ent: missing required field "Campaign.forensics_output"`)}
	}
	if _, ok := _c.mutation.CampaignPlan(); !ok {
		return &ValidationError{Name: "campaign_plan", err: errors.New(`ent: missing required field "Campaign.campaign_plan"`)}
	}
	if _, ok := _c.mutation.OutcomeReport(); !ok {
		return &ValidationError{Name: "outcome_report", err: errors.New(`ent: missing required field "Campaign.outcome_report"`)}
	}
	if _, ok := _c.mutation.LearningInsights(); !ok {
		return &ValidationError{Name: "learning_insights", err: errors.New(`ent: missing required field "Campaign.learning_insights"`)}
	}
	if _, ok := _c.mutation.ContentWarnings(); !ok {
		return &ValidationError{Name: "content_warnings", err: errors.New(`ent: missing required field "Campaign.content_warnings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Campaign.user"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OnboardingData(); ok {
		_spec.SetField(campaign.FieldOnboardingData, field.TypeJSON, value)
		_node.OnboardingData = value
	}
	if value, ok := _c.mutation.ProfileSnapshot(); ok {
		_spec.SetField(campaign.FieldProfileSnapshot, field.TypeJSON, value)
		_node.ProfileSnapshot = value
	}
	if value, ok := _c.mutation.AgentContext(); ok {
		_spec.SetField(campaign.FieldAgentContext, field.TypeJSON, value)
		_node.AgentContext = value
	}
	if value, ok := _c.mutation.StrategyOutput(); ok {
		_spec.SetField(campaign.FieldStrategyOutput, field.TypeJSON, value)
		_node.StrategyOutput = value
	}
	if value, ok := _c.mutation.ForensicsOutput(); ok {
		_spec.SetField(campaign.FieldForensicsOutput, field.TypeJSON, value)
		_node.ForensicsOutput = value
	}
	if value, ok := _c.mutation.CampaignPlan(); ok {
		_spec.SetField(campaign.FieldCampaignPlan, field.TypeJSON, value)
		_node.CampaignPlan = value
	}
	if value, ok := _c.mutation.OutcomeReport(); ok {
		_spec.SetField(campaign.FieldOutcomeReport, field.TypeJSON, value)
		_node.OutcomeReport = value
	}
	if value, ok := _c.mutation.LearningInsights(); ok {
		_spec.SetField(campaign.FieldLearningInsights, field.TypeJSON, value)
		_node.LearningInsights = value
	}
	if value, ok := _c.mutation.ContentWarnings(); ok {
		_spec.SetField(campaign.FieldContentWarnings, field.TypeJSON, value)
		_node.ContentWarnings = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(campaign.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.LastAttemptedPhase(); ok {
		_spec.SetField(campaign.FieldLastAttemptedPhase, field.TypeString, value)
		_node.LastAttemptedPhase = &value
	}
	if value, ok := _c.mutation.FailedStage(); ok {
		_spec.SetField(campaign.FieldFailedStage, field.TypeString, value)
		_node.FailedStage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(campaign.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
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
	if nodes := _c.mutation.DailyContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DailyContentsTable,
			Columns: []string{campaign.DailyContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailycontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DailyExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.DailyExecutionsTable,
			Columns: []string{campaign.DailyExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailyexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LearningMemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.LearningMemoriesTable,
			Columns: []string{campaign.LearningMemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(learningmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
