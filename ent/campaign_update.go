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
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/predicate"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOnboardingData sets the "onboarding_data" field.
func (_u *CampaignUpdate) SetOnboardingData(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetOnboardingData(v)
	return _u
}

// SetProfileSnapshot sets the "profile_snapshot" field.
func (_u *CampaignUpdate) SetProfileSnapshot(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetProfileSnapshot(v)
	return _u
}

// SetAgentContext sets the "agent_context" field.
func (_u *CampaignUpdate) SetAgentContext(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetAgentContext(v)
	return _u
}

// SetStrategyOutput sets the "strategy_output" field.
func (_u *CampaignUpdate) SetStrategyOutput(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetStrategyOutput(v)
	return _u
}

// SetForensicsOutput sets the "forensics_output" field.
func (_u *CampaignUpdate) SetForensicsOutput(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetForensicsOutput(v)
	return _u
}

// SetCampaignPlan sets the "campaign_plan" field.
func (_u *CampaignUpdate) SetCampaignPlan(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetCampaignPlan(v)
	return _u
}

// SetOutcomeReport sets the "outcome_report" field.
func (_u *CampaignUpdate) SetOutcomeReport(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetOutcomeReport(v)
	return _u
}

// SetLearningInsights sets the "learning_insights" field.
func (_u *CampaignUpdate) SetLearningInsights(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetLearningInsights(v)
	return _u
}

// SetContentWarnings sets the "content_warnings" field.
func (_u *CampaignUpdate) SetContentWarnings(v []string) *CampaignUpdate {
	_u.mutation.SetContentWarnings(v)
	return _u
}

// AppendContentWarnings appends value to the "content_warnings" field.
func (_u *CampaignUpdate) AppendContentWarnings(v []string) *CampaignUpdate {
	_u.mutation.AppendContentWarnings(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CampaignUpdate) SetTaskID(v string) *CampaignUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTaskID(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *CampaignUpdate) ClearTaskID() *CampaignUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetLastAttemptedPhase sets the "last_attempted_phase" field.
func (_u *CampaignUpdate) SetLastAttemptedPhase(v string) *CampaignUpdate {
	_u.mutation.SetLastAttemptedPhase(v)
	return _u
}

// SetNillableLastAttemptedPhase sets the "last_attempted_phase" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableLastAttemptedPhase(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetLastAttemptedPhase(*v)
	}
	return _u
}

// ClearLastAttemptedPhase clears the value of the "last_attempted_phase" field.
func (_u *CampaignUpdate) ClearLastAttemptedPhase() *CampaignUpdate {
	_u.mutation.ClearLastAttemptedPhase()
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *CampaignUpdate) SetFailedStage(v string) *CampaignUpdate {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFailedStage(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (_u *CampaignUpdate) ClearFailedStage() *CampaignUpdate {
	_u.mutation.ClearFailedStage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdate) SetStartedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStartedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdate) ClearStartedAt() *CampaignUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdate) SetCompletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdate) ClearCompletedAt() *CampaignUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *CampaignUpdate) SetArchivedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableArchivedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *CampaignUpdate) ClearArchivedAt() *CampaignUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// AddDailyContentIDs adds the "daily_contents" edge to the DailyContent entity by IDs.
func (_u *CampaignUpdate) AddDailyContentIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddDailyContentIDs(ids...)
	return _u
}

// AddDailyContents adds the "daily_contents" edges to the DailyContent entity.
func (_u *CampaignUpdate) AddDailyContents(v ...*DailyContent) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyContentIDs(ids...)
}

// AddDailyExecutionIDs adds the "daily_executions" edge to the DailyExecution entity by IDs.
func (_u *CampaignUpdate) AddDailyExecutionIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddDailyExecutionIDs(ids...)
	return _u
}

// AddDailyExecutions adds the "daily_executions" edges to the DailyExecution entity.
func (_u *CampaignUpdate) AddDailyExecutions(v ...*DailyExecution) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyExecutionIDs(ids...)
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by IDs.
func (_u *CampaignUpdate) AddLearningMemoryIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddLearningMemoryIDs(ids...)
	return _u
}

// AddLearningMemories adds the "learning_memories" edges to the LearningMemory entity.
func (_u *CampaignUpdate) AddLearningMemories(v ...*LearningMemory) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLearningMemoryIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearDailyContents clears all "daily_contents" edges to the DailyContent entity.
func (_u *CampaignUpdate) ClearDailyContents() *CampaignUpdate {
	_u.mutation.ClearDailyContents()
	return _u
}

// RemoveDailyContentIDs removes the "daily_contents" edge to DailyContent entities by IDs.
func (_u *CampaignUpdate) RemoveDailyContentIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveDailyContentIDs(ids...)
	return _u
}

// RemoveDailyContents removes "daily_contents" edges to DailyContent entities.
func (_u *CampaignUpdate) RemoveDailyContents(v ...*DailyContent) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyContentIDs(ids...)
}

// ClearDailyExecutions clears all "daily_executions" edges to the DailyExecution entity.
func (_u *CampaignUpdate) ClearDailyExecutions() *CampaignUpdate {
	_u.mutation.ClearDailyExecutions()
	return _u
}

// RemoveDailyExecutionIDs removes the "daily_executions" edge to DailyExecution entities by IDs.
func (_u *CampaignUpdate) RemoveDailyExecutionIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveDailyExecutionIDs(ids...)
	return _u
}

// RemoveDailyExecutions removes "daily_executions" edges to DailyExecution entities.
func (_u *CampaignUpdate) RemoveDailyExecutions(v ...*DailyExecution) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyExecutionIDs(ids...)
}

// ClearLearningMemories clears all "learning_memories" edges to the LearningMemory entity.
func (_u *CampaignUpdate) ClearLearningMemories() *CampaignUpdate {
	_u.mutation.ClearLearningMemories()
	return _u
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to LearningMemory entities by IDs.
func (_u *CampaignUpdate) RemoveLearningMemoryIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveLearningMemoryIDs(ids...)
	return _u
}

// RemoveLearningMemories removes "learning_memories" edges to LearningMemory entities.
func (_u *CampaignUpdate) RemoveLearningMemories(v ...*LearningMemory) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLearningMemoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OnboardingData(); ok {
		_spec.SetField(campaign.FieldOnboardingData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProfileSnapshot(); ok {
		_spec.SetField(campaign.FieldProfileSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentContext(); ok {
		_spec.SetField(campaign.FieldAgentContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StrategyOutput(); ok {
		_spec.SetField(campaign.FieldStrategyOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ForensicsOutput(); ok {
		_spec.SetField(campaign.FieldForensicsOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CampaignPlan(); ok {
		_spec.SetField(campaign.FieldCampaignPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OutcomeReport(); ok {
		_spec.SetField(campaign.FieldOutcomeReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LearningInsights(); ok {
		_spec.SetField(campaign.FieldLearningInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ContentWarnings(); ok {
		_spec.SetField(campaign.FieldContentWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldContentWarnings, value)
		})
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(campaign.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(campaign.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptedPhase(); ok {
		_spec.SetField(campaign.FieldLastAttemptedPhase, field.TypeString, value)
	}
	if _u.mutation.LastAttemptedPhaseCleared() {
		_spec.ClearField(campaign.FieldLastAttemptedPhase, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(campaign.FieldFailedStage, field.TypeString, value)
	}
	if _u.mutation.FailedStageCleared() {
		_spec.ClearField(campaign.FieldFailedStage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(campaign.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(campaign.FieldArchivedAt, field.TypeTime)
	}
	if _u.mutation.DailyContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyContentsIDs(); len(nodes) > 0 && !_u.mutation.DailyContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyExecutionsIDs(); len(nodes) > 0 && !_u.mutation.DailyExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LearningMemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLearningMemoriesIDs(); len(nodes) > 0 && !_u.mutation.LearningMemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LearningMemoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOnboardingData sets the "onboarding_data" field.
func (_u *CampaignUpdateOne) SetOnboardingData(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetOnboardingData(v)
	return _u
}

// SetProfileSnapshot sets the "profile_snapshot" field.
func (_u *CampaignUpdateOne) SetProfileSnapshot(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetProfileSnapshot(v)
	return _u
}

// SetAgentContext sets the "agent_context" field.
func (_u *CampaignUpdateOne) SetAgentContext(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetAgentContext(v)
	return _u
}

// SetStrategyOutput sets the "strategy_output" field.
func (_u *CampaignUpdateOne) SetStrategyOutput(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetStrategyOutput(v)
	return _u
}

// SetForensicsOutput sets the "forensics_output" field.
func (_u *CampaignUpdateOne) SetForensicsOutput(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetForensicsOutput(v)
	return _u
}

// SetCampaignPlan sets the "campaign_plan" field.
func (_u *CampaignUpdateOne) SetCampaignPlan(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetCampaignPlan(v)
	return _u
}

// SetOutcomeReport sets the "outcome_report" field.
func (_u *CampaignUpdateOne) SetOutcomeReport(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetOutcomeReport(v)
	return _u
}

// SetLearningInsights sets the "learning_insights" field.
func (_u *CampaignUpdateOne) SetLearningInsights(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetLearningInsights(v)
	return _u
}

// SetContentWarnings sets the "content_warnings" field.
func (_u *CampaignUpdateOne) SetContentWarnings(v []string) *CampaignUpdateOne {
	_u.mutation.SetContentWarnings(v)
	return _u
}

// AppendContentWarnings appends value to the "content_warnings" field.
func (_u *CampaignUpdateOne) AppendContentWarnings(v []string) *CampaignUpdateOne {
	_u.mutation.AppendContentWarnings(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CampaignUpdateOne) SetTaskID(v string) *CampaignUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTaskID(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *CampaignUpdateOne) ClearTaskID() *CampaignUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetLastAttemptedPhase sets the "last_attempted_phase" field.
func (_u *CampaignUpdateOne) SetLastAttemptedPhase(v string) *CampaignUpdateOne {
	_u.mutation.SetLastAttemptedPhase(v)
	return _u
}

// SetNillableLastAttemptedPhase sets the "last_attempted_phase" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableLastAttemptedPhase(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetLastAttemptedPhase(*v)
	}
	return _u
}

// ClearLastAttemptedPhase clears the value of the "last_attempted_phase" field.
func (_u *CampaignUpdateOne) ClearLastAttemptedPhase() *CampaignUpdateOne {
	_u.mutation.ClearLastAttemptedPhase()
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *CampaignUpdateOne) SetFailedStage(v string) *CampaignUpdateOne {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFailedStage(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (_u *CampaignUpdateOne) ClearFailedStage() *CampaignUpdateOne {
	_u.mutation.ClearFailedStage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdateOne) SetStartedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStartedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdateOne) ClearStartedAt() *CampaignUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdateOne) SetCompletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdateOne) ClearCompletedAt() *CampaignUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *CampaignUpdateOne) SetArchivedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableArchivedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *CampaignUpdateOne) ClearArchivedAt() *CampaignUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// AddDailyContentIDs adds the "daily_contents" edge to the DailyContent entity by IDs.
func (_u *CampaignUpdateOne) AddDailyContentIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddDailyContentIDs(ids...)
	return _u
}

// AddDailyContents adds the "daily_contents" edges to the DailyContent entity.
func (_u *CampaignUpdateOne) AddDailyContents(v ...*DailyContent) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyContentIDs(ids...)
}

// AddDailyExecutionIDs adds the "daily_executions" edge to the DailyExecution entity by IDs.
func (_u *CampaignUpdateOne) AddDailyExecutionIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddDailyExecutionIDs(ids...)
	return _u
}

// AddDailyExecutions adds the "daily_executions" edges to the DailyExecution entity.
func (_u *CampaignUpdateOne) AddDailyExecutions(v ...*DailyExecution) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyExecutionIDs(ids...)
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by IDs.
func (_u *CampaignUpdateOne) AddLearningMemoryIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddLearningMemoryIDs(ids...)
	return _u
}

// AddLearningMemories adds the "learning_memories" edges to the LearningMemory entity.
func (_u *CampaignUpdateOne) AddLearningMemories(v ...*LearningMemory) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLearningMemoryIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearDailyContents clears all "daily_contents" edges to the DailyContent entity.
func (_u *CampaignUpdateOne) ClearDailyContents() *CampaignUpdateOne {
	_u.mutation.ClearDailyContents()
	return _u
}

// RemoveDailyContentIDs removes the "daily_contents" edge to DailyContent entities by IDs.
func (_u *CampaignUpdateOne) RemoveDailyContentIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveDailyContentIDs(ids...)
	return _u
}

// RemoveDailyContents removes "daily_contents" edges to DailyContent entities.
func (_u *CampaignUpdateOne) RemoveDailyContents(v ...*DailyContent) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyContentIDs(ids...)
}

// ClearDailyExecutions clears all "daily_executions" edges to the DailyExecution entity.
func (_u *CampaignUpdateOne) ClearDailyExecutions() *CampaignUpdateOne {
	_u.mutation.ClearDailyExecutions()
	return _u
}

// RemoveDailyExecutionIDs removes the "daily_executions" edge to DailyExecution entities by IDs.
func (_u *CampaignUpdateOne) RemoveDailyExecutionIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveDailyExecutionIDs(ids...)
	return _u
}

// RemoveDailyExecutions removes "daily_executions" edges to DailyExecution entities.
func (_u *CampaignUpdateOne) RemoveDailyExecutions(v ...*DailyExecution) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyExecutionIDs(ids...)
}

// ClearLearningMemories clears all "learning_memories" edges to the LearningMemory entity.
func (_u *CampaignUpdateOne) ClearLearningMemories() *CampaignUpdateOne {
	_u.mutation.ClearLearningMemories()
	return _u
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to LearningMemory entities by IDs.
func (_u *CampaignUpdateOne) RemoveLearningMemoryIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveLearningMemoryIDs(ids...)
	return _u
}

// RemoveLearningMemories removes "learning_memories" edges to LearningMemory entities.
func (_u *CampaignUpdateOne) RemoveLearningMemories(v ...*LearningMemory) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLearningMemoryIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OnboardingData(); ok {
		_spec.SetField(campaign.FieldOnboardingData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProfileSnapshot(); ok {
		_spec.SetField(campaign.FieldProfileSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentContext(); ok {
		_spec.SetField(campaign.FieldAgentContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StrategyOutput(); ok {
		_spec.SetField(campaign.FieldStrategyOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ForensicsOutput(); ok {
		_spec.SetField(campaign.FieldForensicsOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CampaignPlan(); ok {
		_spec.SetField(campaign.FieldCampaignPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OutcomeReport(); ok {
		_spec.SetField(campaign.FieldOutcomeReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LearningInsights(); ok {
		_spec.SetField(campaign.FieldLearningInsights, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ContentWarnings(); ok {
		_spec.SetField(campaign.FieldContentWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldContentWarnings, value)
		})
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(campaign.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(campaign.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptedPhase(); ok {
		_spec.SetField(campaign.FieldLastAttemptedPhase, field.TypeString, value)
	}
	if _u.mutation.LastAttemptedPhaseCleared() {
		_spec.ClearField(campaign.FieldLastAttemptedPhase, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(campaign.FieldFailedStage, field.TypeString, value)
	}
	if _u.mutation.FailedStageCleared() {
		_spec.ClearField(campaign.FieldFailedStage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(campaign.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(campaign.FieldArchivedAt, field.TypeTime)
	}
	if _u.mutation.DailyContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyContentsIDs(); len(nodes) > 0 && !_u.mutation.DailyContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyExecutionsIDs(); len(nodes) > 0 && !_u.mutation.DailyExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LearningMemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLearningMemoriesIDs(); len(nodes) > 0 && !_u.mutation.LearningMemoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LearningMemoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
