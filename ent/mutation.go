// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/predicate"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/ent/user"
	"github.com/creatorloop/looper/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign       = "Campaign"
	TypeCreatorProfile = "CreatorProfile"
	TypeDailyContent   = "DailyContent"
	TypeDailyExecution = "DailyExecution"
	TypeLearningMemory = "LearningMemory"
	TypeTask           = "Task"
	TypeUser           = "User"
	TypeWebhookEvent   = "WebhookEvent"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	status                   *campaign.Status
	onboarding_data          *map[string]interface{}
	profile_snapshot         *map[string]interface{}
	agent_context            *map[string]interface{}
	strategy_output          *map[string]interface{}
	forensics_output         *map[string]interface{}
	campaign_plan            *map[string]interface{}
	outcome_report           *map[string]interface{}
	learning_insights        *map[string]interface{}
	content_warnings         *[]string
	appendcontent_warnings   []string
	task_id                  *string
	last_attempted_phase     *string
	failed_stage             *string
	created_at               *time.Time
	updated_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	archived_at              *time.Time
	clearedFields            map[string]struct{}
	user                     *string
	cleareduser              bool
	daily_contents           map[string]struct{}
	removeddaily_contents    map[string]struct{}
	cleareddaily_contents    bool
	daily_executions         map[string]struct{}
	removeddaily_executions  map[string]struct{}
	cleareddaily_executions  bool
	learning_memories        map[string]struct{}
	removedlearning_memories map[string]struct{}
	clearedlearning_memories bool
	done                     bool
	oldValue                 func(context.Context) (*Campaign, error)
	predicates               []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CampaignMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CampaignMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CampaignMutation) ResetUserID() {
	m.user = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetOnboardingData sets the "onboarding_data" field.
func (m *CampaignMutation) SetOnboardingData(value map[string]interface{}) {
	m.onboarding_data = &value
}

// OnboardingData returns the value of the "onboarding_data" field in the mutation.
func (m *CampaignMutation) OnboardingData() (r map[string]interface{}, exists bool) {
	v := m.onboarding_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOnboardingData returns the old "onboarding_data" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldOnboardingData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnboardingData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnboardingData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnboardingData: %w", err)
	}
	return oldValue.OnboardingData, nil
}

// ResetOnboardingData resets all changes to the "onboarding_data" field.
func (m *CampaignMutation) ResetOnboardingData() {
	m.onboarding_data = nil
}

// SetProfileSnapshot sets the "profile_snapshot" field.
func (m *CampaignMutation) SetProfileSnapshot(value map[string]interface{}) {
	m.profile_snapshot = &value
}

// ProfileSnapshot returns the value of the "profile_snapshot" field in the mutation.
func (m *CampaignMutation) ProfileSnapshot() (r map[string]interface{}, exists bool) {
	v := m.profile_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileSnapshot returns the old "profile_snapshot" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldProfileSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileSnapshot: %w", err)
	}
	return oldValue.ProfileSnapshot, nil
}

// ResetProfileSnapshot resets all changes to the "profile_snapshot" field.
func (m *CampaignMutation) ResetProfileSnapshot() {
	m.profile_snapshot = nil
}

// SetAgentContext sets the "agent_context" field.
func (m *CampaignMutation) SetAgentContext(value map[string]interface{}) {
	m.agent_context = &value
}

// AgentContext returns the value of the "agent_context" field in the mutation.
func (m *CampaignMutation) AgentContext() (r map[string]interface{}, exists bool) {
	v := m.agent_context
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentContext returns the old "agent_context" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldAgentContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentContext: %w", err)
	}
	return oldValue.AgentContext, nil
}

// ResetAgentContext resets all changes to the "agent_context" field.
func (m *CampaignMutation) ResetAgentContext() {
	m.agent_context = nil
}

// SetStrategyOutput sets the "strategy_output" field.
func (m *CampaignMutation) SetStrategyOutput(value map[string]interface{}) {
	m.strategy_output = &value
}

// StrategyOutput returns the value of the "strategy_output" field in the mutation.
func (m *CampaignMutation) StrategyOutput() (r map[string]interface{}, exists bool) {
	v := m.strategy_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyOutput returns the old "strategy_output" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStrategyOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyOutput: %w", err)
	}
	return oldValue.StrategyOutput, nil
}

// ResetStrategyOutput resets all changes to the "strategy_output" field.
func (m *CampaignMutation) ResetStrategyOutput() {
	m.strategy_output = nil
}

// SetForensicsOutput sets the "forensics_output" field.
func (m *CampaignMutation) SetForensicsOutput(value map[string]interface{}) {
	m.forensics_output = &value
}

// ForensicsOutput returns the value of the "forensics_output" field in the mutation.
func (m *CampaignMutation) ForensicsOutput() (r map[string]interface{}, exists bool) {
	v := m.forensics_output
	if v == nil {
		return
	}
	return *v, true
}

// OldForensicsOutput returns the old "forensics_output" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldForensicsOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForensicsOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForensicsOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForensicsOutput: %w", err)
	}
	return oldValue.ForensicsOutput, nil
}

// ResetForensicsOutput resets all changes to the "forensics_output" field.
func (m *CampaignMutation) ResetForensicsOutput() {
	m.forensics_output = nil
}

// SetCampaignPlan sets the "campaign_plan" field.
func (m *CampaignMutation) SetCampaignPlan(value map[string]interface{}) {
	m.campaign_plan = &value
}

// CampaignPlan returns the value of the "campaign_plan" field in the mutation.
func (m *CampaignMutation) CampaignPlan() (r map[string]interface{}, exists bool) {
	v := m.campaign_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignPlan returns the old "campaign_plan" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCampaignPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignPlan: %w", err)
	}
	return oldValue.CampaignPlan, nil
}

// ResetCampaignPlan resets all changes to the "campaign_plan" field.
func (m *CampaignMutation) ResetCampaignPlan() {
	m.campaign_plan = nil
}

// SetOutcomeReport sets the "outcome_report" field.
func (m *CampaignMutation) SetOutcomeReport(value map[string]interface{}) {
	m.outcome_report = &value
}

// OutcomeReport returns the value of the "outcome_report" field in the mutation.
func (m *CampaignMutation) OutcomeReport() (r map[string]interface{}, exists bool) {
	v := m.outcome_report
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeReport returns the old "outcome_report" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldOutcomeReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeReport: %w", err)
	}
	return oldValue.OutcomeReport, nil
}

// ResetOutcomeReport resets all changes to the "outcome_report" field.
func (m *CampaignMutation) ResetOutcomeReport() {
	m.outcome_report = nil
}

// SetLearningInsights sets the "learning_insights" field.
func (m *CampaignMutation) SetLearningInsights(value map[string]interface{}) {
	m.learning_insights = &value
}

// LearningInsights returns the value of the "learning_insights" field in the mutation.
func (m *CampaignMutation) LearningInsights() (r map[string]interface{}, exists bool) {
	v := m.learning_insights
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningInsights returns the old "learning_insights" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLearningInsights(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningInsights: %w", err)
	}
	return oldValue.LearningInsights, nil
}

// ResetLearningInsights resets all changes to the "learning_insights" field.
func (m *CampaignMutation) ResetLearningInsights() {
	m.learning_insights = nil
}

// SetContentWarnings sets the "content_warnings" field.
func (m *CampaignMutation) SetContentWarnings(s []string) {
	m.content_warnings = &s
	m.appendcontent_warnings = nil
}

// ContentWarnings returns the value of the "content_warnings" field in the mutation.
func (m *CampaignMutation) ContentWarnings() (r []string, exists bool) {
	v := m.content_warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldContentWarnings returns the old "content_warnings" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldContentWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentWarnings: %w", err)
	}
	return oldValue.ContentWarnings, nil
}

// AppendContentWarnings adds s to the "content_warnings" field.
func (m *CampaignMutation) AppendContentWarnings(s []string) {
	m.appendcontent_warnings = append(m.appendcontent_warnings, s...)
}

// AppendedContentWarnings returns the list of values that were appended to the "content_warnings" field in this mutation.
func (m *CampaignMutation) AppendedContentWarnings() ([]string, bool) {
	if len(m.appendcontent_warnings) == 0 {
		return nil, false
	}
	return m.appendcontent_warnings, true
}

// ResetContentWarnings resets all changes to the "content_warnings" field.
func (m *CampaignMutation) ResetContentWarnings() {
	m.content_warnings = nil
	m.appendcontent_warnings = nil
}

// SetTaskID sets the "task_id" field.
func (m *CampaignMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CampaignMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *CampaignMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[campaign.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *CampaignMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[campaign.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CampaignMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, campaign.FieldTaskID)
}

// SetLastAttemptedPhase sets the "last_attempted_phase" field.
func (m *CampaignMutation) SetLastAttemptedPhase(s string) {
	m.last_attempted_phase = &s
}

// LastAttemptedPhase returns the value of the "last_attempted_phase" field in the mutation.
func (m *CampaignMutation) LastAttemptedPhase() (r string, exists bool) {
	v := m.last_attempted_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedPhase returns the old "last_attempted_phase" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLastAttemptedPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedPhase: %w", err)
	}
	return oldValue.LastAttemptedPhase, nil
}

// ClearLastAttemptedPhase clears the value of the "last_attempted_phase" field.
func (m *CampaignMutation) ClearLastAttemptedPhase() {
	m.last_attempted_phase = nil
	m.clearedFields[campaign.FieldLastAttemptedPhase] = struct{}{}
}

// LastAttemptedPhaseCleared returns if the "last_attempted_phase" field was cleared in this mutation.
func (m *CampaignMutation) LastAttemptedPhaseCleared() bool {
	_, ok := m.clearedFields[campaign.FieldLastAttemptedPhase]
	return ok
}

// ResetLastAttemptedPhase resets all changes to the "last_attempted_phase" field.
func (m *CampaignMutation) ResetLastAttemptedPhase() {
	m.last_attempted_phase = nil
	delete(m.clearedFields, campaign.FieldLastAttemptedPhase)
}

// SetFailedStage sets the "failed_stage" field.
func (m *CampaignMutation) SetFailedStage(s string) {
	m.failed_stage = &s
}

// FailedStage returns the value of the "failed_stage" field in the mutation.
func (m *CampaignMutation) FailedStage() (r string, exists bool) {
	v := m.failed_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedStage returns the old "failed_stage" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFailedStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedStage: %w", err)
	}
	return oldValue.FailedStage, nil
}

// ClearFailedStage clears the value of the "failed_stage" field.
func (m *CampaignMutation) ClearFailedStage() {
	m.failed_stage = nil
	m.clearedFields[campaign.FieldFailedStage] = struct{}{}
}

// FailedStageCleared returns if the "failed_stage" field was cleared in this mutation.
func (m *CampaignMutation) FailedStageCleared() bool {
	_, ok := m.clearedFields[campaign.FieldFailedStage]
	return ok
}

// ResetFailedStage resets all changes to the "failed_stage" field.
func (m *CampaignMutation) ResetFailedStage() {
	m.failed_stage = nil
	delete(m.clearedFields, campaign.FieldFailedStage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CampaignMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CampaignMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CampaignMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[campaign.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CampaignMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CampaignMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, campaign.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CampaignMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CampaignMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CampaignMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[campaign.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CampaignMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CampaignMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, campaign.FieldCompletedAt)
}

// SetArchivedAt sets the "archived_at" field.
func (m *CampaignMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *CampaignMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *CampaignMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[campaign.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *CampaignMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *CampaignMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, campaign.FieldArchivedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *CampaignMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[campaign.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CampaignMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CampaignMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddDailyContentIDs adds the "daily_contents" edge to the DailyContent entity by ids.
func (m *CampaignMutation) AddDailyContentIDs(ids ...string) {
	if m.daily_contents == nil {
		m.daily_contents = make(map[string]struct{})
	}
	for i := range ids {
		m.daily_contents[ids[i]] = struct{}{}
	}
}

// ClearDailyContents clears the "daily_contents" edge to the DailyContent entity.
func (m *CampaignMutation) ClearDailyContents() {
	m.cleareddaily_contents = true
}

// DailyContentsCleared reports if the "daily_contents" edge to the DailyContent entity was cleared.
func (m *CampaignMutation) DailyContentsCleared() bool {
	return m.cleareddaily_contents
}

// RemoveDailyContentIDs removes the "daily_contents" edge to the DailyContent entity by IDs.
func (m *CampaignMutation) RemoveDailyContentIDs(ids ...string) {
	if m.removeddaily_contents == nil {
		m.removeddaily_contents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.daily_contents, ids[i])
		m.removeddaily_contents[ids[i]] = struct{}{}
	}
}

// RemovedDailyContents returns the removed IDs of the "daily_contents" edge to the DailyContent entity.
func (m *CampaignMutation) RemovedDailyContentsIDs() (ids []string) {
	for id := range m.removeddaily_contents {
		ids = append(ids, id)
	}
	return
}

// DailyContentsIDs returns the "daily_contents" edge IDs in the mutation.
func (m *CampaignMutation) DailyContentsIDs() (ids []string) {
	for id := range m.daily_contents {
		ids = append(ids, id)
	}
	return
}

// ResetDailyContents resets all changes to the "daily_contents" edge.
func (m *CampaignMutation) ResetDailyContents() {
	m.daily_contents = nil
	m.cleareddaily_contents = false
	m.removeddaily_contents = nil
}

// AddDailyExecutionIDs adds the "daily_executions" edge to the DailyExecution entity by ids.
func (m *CampaignMutation) AddDailyExecutionIDs(ids ...string) {
	if m.daily_executions == nil {
		m.daily_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.daily_executions[ids[i]] = struct{}{}
	}
}

// ClearDailyExecutions clears the "daily_executions" edge to the DailyExecution entity.
func (m *CampaignMutation) ClearDailyExecutions() {
	m.cleareddaily_executions = true
}

// DailyExecutionsCleared reports if the "daily_executions" edge to the DailyExecution entity was cleared.
func (m *CampaignMutation) DailyExecutionsCleared() bool {
	return m.cleareddaily_executions
}

// RemoveDailyExecutionIDs removes the "daily_executions" edge to the DailyExecution entity by IDs.
func (m *CampaignMutation) RemoveDailyExecutionIDs(ids ...string) {
	if m.removeddaily_executions == nil {
		m.removeddaily_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.daily_executions, ids[i])
		m.removeddaily_executions[ids[i]] = struct{}{}
	}
}

// RemovedDailyExecutions returns the removed IDs of the "daily_executions" edge to the DailyExecution entity.
func (m *CampaignMutation) RemovedDailyExecutionsIDs() (ids []string) {
	for id := range m.removeddaily_executions {
		ids = append(ids, id)
	}
	return
}

// DailyExecutionsIDs returns the "daily_executions" edge IDs in the mutation.
func (m *CampaignMutation) DailyExecutionsIDs() (ids []string) {
	for id := range m.daily_executions {
		ids = append(ids, id)
	}
	return
}

// ResetDailyExecutions resets all changes to the "daily_executions" edge.
func (m *CampaignMutation) ResetDailyExecutions() {
	m.daily_executions = nil
	m.cleareddaily_executions = false
	m.removeddaily_executions = nil
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by ids.
func (m *CampaignMutation) AddLearningMemoryIDs(ids ...string) {
	if m.learning_memories == nil {
		m.learning_memories = make(map[string]struct{})
	}
	for i := range ids {
		m.learning_memories[ids[i]] = struct{}{}
	}
}

// ClearLearningMemories clears the "learning_memories" edge to the LearningMemory entity.
func (m *CampaignMutation) ClearLearningMemories() {
	m.clearedlearning_memories = true
}

// LearningMemoriesCleared reports if the "learning_memories" edge to the LearningMemory entity was cleared.
func (m *CampaignMutation) LearningMemoriesCleared() bool {
	return m.clearedlearning_memories
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to the LearningMemory entity by IDs.
func (m *CampaignMutation) RemoveLearningMemoryIDs(ids ...string) {
	if m.removedlearning_memories == nil {
		m.removedlearning_memories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.learning_memories, ids[i])
		m.removedlearning_memories[ids[i]] = struct{}{}
	}
}

// RemovedLearningMemories returns the removed IDs of the "learning_memories" edge to the LearningMemory entity.
func (m *CampaignMutation) RemovedLearningMemoriesIDs() (ids []string) {
	for id := range m.removedlearning_memories {
		ids = append(ids, id)
	}
	return
}

// LearningMemoriesIDs returns the "learning_memories" edge IDs in the mutation.
func (m *CampaignMutation) LearningMemoriesIDs() (ids []string) {
	for id := range m.learning_memories {
		ids = append(ids, id)
	}
	return
}

// ResetLearningMemories resets all changes to the "learning_memories" edge.
func (m *CampaignMutation) ResetLearningMemories() {
	m.learning_memories = nil
	m.clearedlearning_memories = false
	m.removedlearning_memories = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.user != nil {
		fields = append(fields, campaign.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.onboarding_data != nil {
		fields = append(fields, campaign.FieldOnboardingData)
	}
	if m.profile_snapshot != nil {
		fields = append(fields, campaign.FieldProfileSnapshot)
	}
	if m.agent_context != nil {
		fields = append(fields, campaign.FieldAgentContext)
	}
	if m.strategy_output != nil {
		fields = append(fields, campaign.FieldStrategyOutput)
	}
	if m.forensics_output != nil {
		fields = append(fields, campaign.FieldForensicsOutput)
	}
	if m.campaign_plan != nil {
		fields = append(fields, campaign.FieldCampaignPlan)
	}
	if m.outcome_report != nil {
		fields = append(fields, campaign.FieldOutcomeReport)
	}
	if m.learning_insights != nil {
		fields = append(fields, campaign.FieldLearningInsights)
	}
	if m.content_warnings != nil {
		fields = append(fields, campaign.FieldContentWarnings)
	}
	if m.task_id != nil {
		fields = append(fields, campaign.FieldTaskID)
	}
	if m.last_attempted_phase != nil {
		fields = append(fields, campaign.FieldLastAttemptedPhase)
	}
	if m.failed_stage != nil {
		fields = append(fields, campaign.FieldFailedStage)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, campaign.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldUserID:
		return m.UserID()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldOnboardingData:
		return m.OnboardingData()
	case campaign.FieldProfileSnapshot:
		return m.ProfileSnapshot()
	case campaign.FieldAgentContext:
		return m.AgentContext()
	case campaign.FieldStrategyOutput:
		return m.StrategyOutput()
	case campaign.FieldForensicsOutput:
		return m.ForensicsOutput()
	case campaign.FieldCampaignPlan:
		return m.CampaignPlan()
	case campaign.FieldOutcomeReport:
		return m.OutcomeReport()
	case campaign.FieldLearningInsights:
		return m.LearningInsights()
	case campaign.FieldContentWarnings:
		return m.ContentWarnings()
	case campaign.FieldTaskID:
		return m.TaskID()
	case campaign.FieldLastAttemptedPhase:
		return m.LastAttemptedPhase()
	case campaign.FieldFailedStage:
		return m.FailedStage()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	case campaign.FieldStartedAt:
		return m.StartedAt()
	case campaign.FieldCompletedAt:
		return m.CompletedAt()
	case campaign.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldUserID:
		return m.OldUserID(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldOnboardingData:
		return m.OldOnboardingData(ctx)
	case campaign.FieldProfileSnapshot:
		return m.OldProfileSnapshot(ctx)
	case campaign.FieldAgentContext:
		return m.OldAgentContext(ctx)
	case campaign.FieldStrategyOutput:
		return m.OldStrategyOutput(ctx)
	case campaign.FieldForensicsOutput:
		return m.OldForensicsOutput(ctx)
	case campaign.FieldCampaignPlan:
		return m.OldCampaignPlan(ctx)
	case campaign.FieldOutcomeReport:
		return m.OldOutcomeReport(ctx)
	case campaign.FieldLearningInsights:
		return m.OldLearningInsights(ctx)
	case campaign.FieldContentWarnings:
		return m.OldContentWarnings(ctx)
	case campaign.FieldTaskID:
		return m.OldTaskID(ctx)
	case campaign.FieldLastAttemptedPhase:
		return m.OldLastAttemptedPhase(ctx)
	case campaign.FieldFailedStage:
		return m.OldFailedStage(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case campaign.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case campaign.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case campaign.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldOnboardingData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnboardingData(v)
		return nil
	case campaign.FieldProfileSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileSnapshot(v)
		return nil
	case campaign.FieldAgentContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentContext(v)
		return nil
	case campaign.FieldStrategyOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyOutput(v)
		return nil
	case campaign.FieldForensicsOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForensicsOutput(v)
		return nil
	case campaign.FieldCampaignPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignPlan(v)
		return nil
	case campaign.FieldOutcomeReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeReport(v)
		return nil
	case campaign.FieldLearningInsights:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningInsights(v)
		return nil
	case campaign.FieldContentWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentWarnings(v)
		return nil
	case campaign.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case campaign.FieldLastAttemptedPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedPhase(v)
		return nil
	case campaign.FieldFailedStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedStage(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case campaign.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case campaign.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case campaign.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldTaskID) {
		fields = append(fields, campaign.FieldTaskID)
	}
	if m.FieldCleared(campaign.FieldLastAttemptedPhase) {
		fields = append(fields, campaign.FieldLastAttemptedPhase)
	}
	if m.FieldCleared(campaign.FieldFailedStage) {
		fields = append(fields, campaign.FieldFailedStage)
	}
	if m.FieldCleared(campaign.FieldStartedAt) {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.FieldCleared(campaign.FieldCompletedAt) {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.FieldCleared(campaign.FieldArchivedAt) {
		fields = append(fields, campaign.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldTaskID:
		m.ClearTaskID()
		return nil
	case campaign.FieldLastAttemptedPhase:
		m.ClearLastAttemptedPhase()
		return nil
	case campaign.FieldFailedStage:
		m.ClearFailedStage()
		return nil
	case campaign.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case campaign.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldUserID:
		m.ResetUserID()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldOnboardingData:
		m.ResetOnboardingData()
		return nil
	case campaign.FieldProfileSnapshot:
		m.ResetProfileSnapshot()
		return nil
	case campaign.FieldAgentContext:
		m.ResetAgentContext()
		return nil
	case campaign.FieldStrategyOutput:
		m.ResetStrategyOutput()
		return nil
	case campaign.FieldForensicsOutput:
		m.ResetForensicsOutput()
		return nil
	case campaign.FieldCampaignPlan:
		m.ResetCampaignPlan()
		return nil
	case campaign.FieldOutcomeReport:
		m.ResetOutcomeReport()
		return nil
	case campaign.FieldLearningInsights:
		m.ResetLearningInsights()
		return nil
	case campaign.FieldContentWarnings:
		m.ResetContentWarnings()
		return nil
	case campaign.FieldTaskID:
		m.ResetTaskID()
		return nil
	case campaign.FieldLastAttemptedPhase:
		m.ResetLastAttemptedPhase()
		return nil
	case campaign.FieldFailedStage:
		m.ResetFailedStage()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case campaign.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case campaign.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.daily_contents != nil {
		edges = append(edges, campaign.EdgeDailyContents)
	}
	if m.daily_executions != nil {
		edges = append(edges, campaign.EdgeDailyExecutions)
	}
	if m.learning_memories != nil {
		edges = append(edges, campaign.EdgeLearningMemories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeDailyContents:
		ids := make([]ent.Value, 0, len(m.daily_contents))
		for id := range m.daily_contents {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeDailyExecutions:
		ids := make([]ent.Value, 0, len(m.daily_executions))
		for id := range m.daily_executions {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeLearningMemories:
		ids := make([]ent.Value, 0, len(m.learning_memories))
		for id := range m.learning_memories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddaily_contents != nil {
		edges = append(edges, campaign.EdgeDailyContents)
	}
	if m.removeddaily_executions != nil {
		edges = append(edges, campaign.EdgeDailyExecutions)
	}
	if m.removedlearning_memories != nil {
		edges = append(edges, campaign.EdgeLearningMemories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeDailyContents:
		ids := make([]ent.Value, 0, len(m.removeddaily_contents))
		for id := range m.removeddaily_contents {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeDailyExecutions:
		ids := make([]ent.Value, 0, len(m.removeddaily_executions))
		for id := range m.removeddaily_executions {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeLearningMemories:
		ids := make([]ent.Value, 0, len(m.removedlearning_memories))
		for id := range m.removedlearning_memories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.cleareddaily_contents {
		edges = append(edges, campaign.EdgeDailyContents)
	}
	if m.cleareddaily_executions {
		edges = append(edges, campaign.EdgeDailyExecutions)
	}
	if m.clearedlearning_memories {
		edges = append(edges, campaign.EdgeLearningMemories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeUser:
		return m.cleareduser
	case campaign.EdgeDailyContents:
		return m.cleareddaily_contents
	case campaign.EdgeDailyExecutions:
		return m.cleareddaily_executions
	case campaign.EdgeLearningMemories:
		return m.clearedlearning_memories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	case campaign.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeUser:
		m.ResetUser()
		return nil
	case campaign.EdgeDailyContents:
		m.ResetDailyContents()
		return nil
	case campaign.EdgeDailyExecutions:
		m.ResetDailyExecutions()
		return nil
	case campaign.EdgeLearningMemories:
		m.ResetLearningMemories()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CreatorProfileMutation represents an operation that mutates the CreatorProfile nodes in the graph.
type CreatorProfileMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	creator_type             *string
	niche                    *string
	target_audience_niche    *string
	existing_platforms       *[]string
	appendexisting_platforms []string
	platform_urls            *map[string]string
	unique_angle             *string
	purpose                  *string
	strengths                *[]string
	appendstrengths          []string
	target_platforms         *[]string
	appendtarget_platforms   []string
	topics                   *[]string
	appendtopics             []string
	audience_demographics    *map[string]interface{}
	competitor_accounts      *map[string][]string
	existing_assets          *[]string
	appendexisting_assets    []string
	motivation               *string
	phase2_completed         *bool
	agent_context            *map[string]interface{}
	recommended_frequency    *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	user                     *string
	cleareduser              bool
	done                     bool
	oldValue                 func(context.Context) (*CreatorProfile, error)
	predicates               []predicate.CreatorProfile
}

var _ ent.Mutation = (*CreatorProfileMutation)(nil)

// creatorprofileOption allows management of the mutation configuration using functional options.
type creatorprofileOption func(*CreatorProfileMutation)

// newCreatorProfileMutation creates new mutation for the CreatorProfile entity.
func newCreatorProfileMutation(c config, op Op, opts ...creatorprofileOption) *CreatorProfileMutation {
	m := &CreatorProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeCreatorProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreatorProfileID sets the ID field of the mutation.
func withCreatorProfileID(id string) creatorprofileOption {
	return func(m *CreatorProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *CreatorProfile
		)
		m.oldValue = func(ctx context.Context) (*CreatorProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreatorProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreatorProfile sets the old CreatorProfile of the mutation.
func withCreatorProfile(node *CreatorProfile) creatorprofileOption {
	return func(m *CreatorProfileMutation) {
		m.oldValue = func(context.Context) (*CreatorProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreatorProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreatorProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreatorProfile entities.
func (m *CreatorProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreatorProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreatorProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreatorProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CreatorProfileMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CreatorProfileMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CreatorProfileMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *CreatorProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CreatorProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CreatorProfileMutation) ResetName() {
	m.name = nil
}

// SetCreatorType sets the "creator_type" field.
func (m *CreatorProfileMutation) SetCreatorType(s string) {
	m.creator_type = &s
}

// CreatorType returns the value of the "creator_type" field in the mutation.
func (m *CreatorProfileMutation) CreatorType() (r string, exists bool) {
	v := m.creator_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorType returns the old "creator_type" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldCreatorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorType: %w", err)
	}
	return oldValue.CreatorType, nil
}

// ResetCreatorType resets all changes to the "creator_type" field.
func (m *CreatorProfileMutation) ResetCreatorType() {
	m.creator_type = nil
}

// SetNiche sets the "niche" field.
func (m *CreatorProfileMutation) SetNiche(s string) {
	m.niche = &s
}

// Niche returns the value of the "niche" field in the mutation.
func (m *CreatorProfileMutation) Niche() (r string, exists bool) {
	v := m.niche
	if v == nil {
		return
	}
	return *v, true
}

// OldNiche returns the old "niche" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldNiche(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNiche is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNiche requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNiche: %w", err)
	}
	return oldValue.Niche, nil
}

// ResetNiche resets all changes to the "niche" field.
func (m *CreatorProfileMutation) ResetNiche() {
	m.niche = nil
}

// SetTargetAudienceNiche sets the "target_audience_niche" field.
func (m *CreatorProfileMutation) SetTargetAudienceNiche(s string) {
	m.target_audience_niche = &s
}

// TargetAudienceNiche returns the value of the "target_audience_niche" field in the mutation.
func (m *CreatorProfileMutation) TargetAudienceNiche() (r string, exists bool) {
	v := m.target_audience_niche
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudienceNiche returns the old "target_audience_niche" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldTargetAudienceNiche(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudienceNiche is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudienceNiche requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudienceNiche: %w", err)
	}
	return oldValue.TargetAudienceNiche, nil
}

// ResetTargetAudienceNiche resets all changes to the "target_audience_niche" field.
func (m *CreatorProfileMutation) ResetTargetAudienceNiche() {
	m.target_audience_niche = nil
}

// SetExistingPlatforms sets the "existing_platforms" field.
func (m *CreatorProfileMutation) SetExistingPlatforms(s []string) {
	m.existing_platforms = &s
	m.appendexisting_platforms = nil
}

// ExistingPlatforms returns the value of the "existing_platforms" field in the mutation.
func (m *CreatorProfileMutation) ExistingPlatforms() (r []string, exists bool) {
	v := m.existing_platforms
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingPlatforms returns the old "existing_platforms" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldExistingPlatforms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingPlatforms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingPlatforms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingPlatforms: %w", err)
	}
	return oldValue.ExistingPlatforms, nil
}

// AppendExistingPlatforms adds s to the "existing_platforms" field.
func (m *CreatorProfileMutation) AppendExistingPlatforms(s []string) {
	m.appendexisting_platforms = append(m.appendexisting_platforms, s...)
}

// AppendedExistingPlatforms returns the list of values that were appended to the "existing_platforms" field in this mutation.
func (m *CreatorProfileMutation) AppendedExistingPlatforms() ([]string, bool) {
	if len(m.appendexisting_platforms) == 0 {
		return nil, false
	}
	return m.appendexisting_platforms, true
}

// ResetExistingPlatforms resets all changes to the "existing_platforms" field.
func (m *CreatorProfileMutation) ResetExistingPlatforms() {
	m.existing_platforms = nil
	m.appendexisting_platforms = nil
}

// SetPlatformUrls sets the "platform_urls" field.
func (m *CreatorProfileMutation) SetPlatformUrls(value map[string]string) {
	m.platform_urls = &value
}

// PlatformUrls returns the value of the "platform_urls" field in the mutation.
func (m *CreatorProfileMutation) PlatformUrls() (r map[string]string, exists bool) {
	v := m.platform_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformUrls returns the old "platform_urls" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldPlatformUrls(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformUrls: %w", err)
	}
	return oldValue.PlatformUrls, nil
}

// ResetPlatformUrls resets all changes to the "platform_urls" field.
func (m *CreatorProfileMutation) ResetPlatformUrls() {
	m.platform_urls = nil
}

// SetUniqueAngle sets the "unique_angle" field.
func (m *CreatorProfileMutation) SetUniqueAngle(s string) {
	m.unique_angle = &s
}

// UniqueAngle returns the value of the "unique_angle" field in the mutation.
func (m *CreatorProfileMutation) UniqueAngle() (r string, exists bool) {
	v := m.unique_angle
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueAngle returns the old "unique_angle" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldUniqueAngle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueAngle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueAngle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueAngle: %w", err)
	}
	return oldValue.UniqueAngle, nil
}

// ClearUniqueAngle clears the value of the "unique_angle" field.
func (m *CreatorProfileMutation) ClearUniqueAngle() {
	m.unique_angle = nil
	m.clearedFields[creatorprofile.FieldUniqueAngle] = struct{}{}
}

// UniqueAngleCleared returns if the "unique_angle" field was cleared in this mutation.
func (m *CreatorProfileMutation) UniqueAngleCleared() bool {
	_, ok := m.clearedFields[creatorprofile.FieldUniqueAngle]
	return ok
}

// ResetUniqueAngle resets all changes to the "unique_angle" field.
func (m *CreatorProfileMutation) ResetUniqueAngle() {
	m.unique_angle = nil
	delete(m.clearedFields, creatorprofile.FieldUniqueAngle)
}

// SetPurpose sets the "purpose" field.
func (m *CreatorProfileMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *CreatorProfileMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldPurpose(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ClearPurpose clears the value of the "purpose" field.
func (m *CreatorProfileMutation) ClearPurpose() {
	m.purpose = nil
	m.clearedFields[creatorprofile.FieldPurpose] = struct{}{}
}

// PurposeCleared returns if the "purpose" field was cleared in this mutation.
func (m *CreatorProfileMutation) PurposeCleared() bool {
	_, ok := m.clearedFields[creatorprofile.FieldPurpose]
	return ok
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *CreatorProfileMutation) ResetPurpose() {
	m.purpose = nil
	delete(m.clearedFields, creatorprofile.FieldPurpose)
}

// SetStrengths sets the "strengths" field.
func (m *CreatorProfileMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *CreatorProfileMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *CreatorProfileMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *CreatorProfileMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *CreatorProfileMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
}

// SetTargetPlatforms sets the "target_platforms" field.
func (m *CreatorProfileMutation) SetTargetPlatforms(s []string) {
	m.target_platforms = &s
	m.appendtarget_platforms = nil
}

// TargetPlatforms returns the value of the "target_platforms" field in the mutation.
func (m *CreatorProfileMutation) TargetPlatforms() (r []string, exists bool) {
	v := m.target_platforms
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPlatforms returns the old "target_platforms" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldTargetPlatforms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPlatforms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPlatforms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPlatforms: %w", err)
	}
	return oldValue.TargetPlatforms, nil
}

// AppendTargetPlatforms adds s to the "target_platforms" field.
func (m *CreatorProfileMutation) AppendTargetPlatforms(s []string) {
	m.appendtarget_platforms = append(m.appendtarget_platforms, s...)
}

// AppendedTargetPlatforms returns the list of values that were appended to the "target_platforms" field in this mutation.
func (m *CreatorProfileMutation) AppendedTargetPlatforms() ([]string, bool) {
	if len(m.appendtarget_platforms) == 0 {
		return nil, false
	}
	return m.appendtarget_platforms, true
}

// ResetTargetPlatforms resets all changes to the "target_platforms" field.
func (m *CreatorProfileMutation) ResetTargetPlatforms() {
	m.target_platforms = nil
	m.appendtarget_platforms = nil
}

// SetTopics sets the "topics" field.
func (m *CreatorProfileMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *CreatorProfileMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *CreatorProfileMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *CreatorProfileMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ResetTopics resets all changes to the "topics" field.
func (m *CreatorProfileMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
}

// SetAudienceDemographics sets the "audience_demographics" field.
func (m *CreatorProfileMutation) SetAudienceDemographics(value map[string]interface{}) {
	m.audience_demographics = &value
}

// AudienceDemographics returns the value of the "audience_demographics" field in the mutation.
func (m *CreatorProfileMutation) AudienceDemographics() (r map[string]interface{}, exists bool) {
	v := m.audience_demographics
	if v == nil {
		return
	}
	return *v, true
}

// OldAudienceDemographics returns the old "audience_demographics" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldAudienceDemographics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudienceDemographics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudienceDemographics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudienceDemographics: %w", err)
	}
	return oldValue.AudienceDemographics, nil
}

// ResetAudienceDemographics resets all changes to the "audience_demographics" field.
func (m *CreatorProfileMutation) ResetAudienceDemographics() {
	m.audience_demographics = nil
}

// SetCompetitorAccounts sets the "competitor_accounts" field.
func (m *CreatorProfileMutation) SetCompetitorAccounts(value map[string][]string) {
	m.competitor_accounts = &value
}

// CompetitorAccounts returns the value of the "competitor_accounts" field in the mutation.
func (m *CreatorProfileMutation) CompetitorAccounts() (r map[string][]string, exists bool) {
	v := m.competitor_accounts
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorAccounts returns the old "competitor_accounts" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldCompetitorAccounts(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorAccounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorAccounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorAccounts: %w", err)
	}
	return oldValue.CompetitorAccounts, nil
}

// ResetCompetitorAccounts resets all changes to the "competitor_accounts" field.
func (m *CreatorProfileMutation) ResetCompetitorAccounts() {
	m.competitor_accounts = nil
}

// SetExistingAssets sets the "existing_assets" field.
func (m *CreatorProfileMutation) SetExistingAssets(s []string) {
	m.existing_assets = &s
	m.appendexisting_assets = nil
}

// ExistingAssets returns the value of the "existing_assets" field in the mutation.
func (m *CreatorProfileMutation) ExistingAssets() (r []string, exists bool) {
	v := m.existing_assets
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingAssets returns the old "existing_assets" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldExistingAssets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingAssets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingAssets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingAssets: %w", err)
	}
	return oldValue.ExistingAssets, nil
}

// AppendExistingAssets adds s to the "existing_assets" field.
func (m *CreatorProfileMutation) AppendExistingAssets(s []string) {
	m.appendexisting_assets = append(m.appendexisting_assets, s...)
}

// AppendedExistingAssets returns the list of values that were appended to the "existing_assets" field in this mutation.
func (m *CreatorProfileMutation) AppendedExistingAssets() ([]string, bool) {
	if len(m.appendexisting_assets) == 0 {
		return nil, false
	}
	return m.appendexisting_assets, true
}

// ResetExistingAssets resets all changes to the "existing_assets" field.
func (m *CreatorProfileMutation) ResetExistingAssets() {
	m.existing_assets = nil
	m.appendexisting_assets = nil
}

// SetMotivation sets the "motivation" field.
func (m *CreatorProfileMutation) SetMotivation(s string) {
	m.motivation = &s
}

// Motivation returns the value of the "motivation" field in the mutation.
func (m *CreatorProfileMutation) Motivation() (r string, exists bool) {
	v := m.motivation
	if v == nil {
		return
	}
	return *v, true
}

// OldMotivation returns the old "motivation" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldMotivation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMotivation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMotivation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMotivation: %w", err)
	}
	return oldValue.Motivation, nil
}

// ClearMotivation clears the value of the "motivation" field.
func (m *CreatorProfileMutation) ClearMotivation() {
	m.motivation = nil
	m.clearedFields[creatorprofile.FieldMotivation] = struct{}{}
}

// MotivationCleared returns if the "motivation" field was cleared in this mutation.
func (m *CreatorProfileMutation) MotivationCleared() bool {
	_, ok := m.clearedFields[creatorprofile.FieldMotivation]
	return ok
}

// ResetMotivation resets all changes to the "motivation" field.
func (m *CreatorProfileMutation) ResetMotivation() {
	m.motivation = nil
	delete(m.clearedFields, creatorprofile.FieldMotivation)
}

// SetPhase2Completed sets the "phase2_completed" field.
func (m *CreatorProfileMutation) SetPhase2Completed(b bool) {
	m.phase2_completed = &b
}

// Phase2Completed returns the value of the "phase2_completed" field in the mutation.
func (m *CreatorProfileMutation) Phase2Completed() (r bool, exists bool) {
	v := m.phase2_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase2Completed returns the old "phase2_completed" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldPhase2Completed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase2Completed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase2Completed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase2Completed: %w", err)
	}
	return oldValue.Phase2Completed, nil
}

// ResetPhase2Completed resets all changes to the "phase2_completed" field.
func (m *CreatorProfileMutation) ResetPhase2Completed() {
	m.phase2_completed = nil
}

// SetAgentContext sets the "agent_context" field.
func (m *CreatorProfileMutation) SetAgentContext(value map[string]interface{}) {
	m.agent_context = &value
}

// AgentContext returns the value of the "agent_context" field in the mutation.
func (m *CreatorProfileMutation) AgentContext() (r map[string]interface{}, exists bool) {
	v := m.agent_context
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentContext returns the old "agent_context" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldAgentContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentContext: %w", err)
	}
	return oldValue.AgentContext, nil
}

// ResetAgentContext resets all changes to the "agent_context" field.
func (m *CreatorProfileMutation) ResetAgentContext() {
	m.agent_context = nil
}

// SetRecommendedFrequency sets the "recommended_frequency" field.
func (m *CreatorProfileMutation) SetRecommendedFrequency(s string) {
	m.recommended_frequency = &s
}

// RecommendedFrequency returns the value of the "recommended_frequency" field in the mutation.
func (m *CreatorProfileMutation) RecommendedFrequency() (r string, exists bool) {
	v := m.recommended_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedFrequency returns the old "recommended_frequency" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldRecommendedFrequency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedFrequency: %w", err)
	}
	return oldValue.RecommendedFrequency, nil
}

// ClearRecommendedFrequency clears the value of the "recommended_frequency" field.
func (m *CreatorProfileMutation) ClearRecommendedFrequency() {
	m.recommended_frequency = nil
	m.clearedFields[creatorprofile.FieldRecommendedFrequency] = struct{}{}
}

// RecommendedFrequencyCleared returns if the "recommended_frequency" field was cleared in this mutation.
func (m *CreatorProfileMutation) RecommendedFrequencyCleared() bool {
	_, ok := m.clearedFields[creatorprofile.FieldRecommendedFrequency]
	return ok
}

// ResetRecommendedFrequency resets all changes to the "recommended_frequency" field.
func (m *CreatorProfileMutation) ResetRecommendedFrequency() {
	m.recommended_frequency = nil
	delete(m.clearedFields, creatorprofile.FieldRecommendedFrequency)
}

// SetCreatedAt sets the "created_at" field.
func (m *CreatorProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreatorProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreatorProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreatorProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreatorProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreatorProfile entity.
// If the CreatorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreatorProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreatorProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *CreatorProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[creatorprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CreatorProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CreatorProfileMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CreatorProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the CreatorProfileMutation builder.
func (m *CreatorProfileMutation) Where(ps ...predicate.CreatorProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreatorProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreatorProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreatorProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreatorProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreatorProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreatorProfile).
func (m *CreatorProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreatorProfileMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.user != nil {
		fields = append(fields, creatorprofile.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, creatorprofile.FieldName)
	}
	if m.creator_type != nil {
		fields = append(fields, creatorprofile.FieldCreatorType)
	}
	if m.niche != nil {
		fields = append(fields, creatorprofile.FieldNiche)
	}
	if m.target_audience_niche != nil {
		fields = append(fields, creatorprofile.FieldTargetAudienceNiche)
	}
	if m.existing_platforms != nil {
		fields = append(fields, creatorprofile.FieldExistingPlatforms)
	}
	if m.platform_urls != nil {
		fields = append(fields, creatorprofile.FieldPlatformUrls)
	}
	if m.unique_angle != nil {
		fields = append(fields, creatorprofile.FieldUniqueAngle)
	}
	if m.purpose != nil {
		fields = append(fields, creatorprofile.FieldPurpose)
	}
	if m.strengths != nil {
		fields = append(fields, creatorprofile.FieldStrengths)
	}
	if m.target_platforms != nil {
		fields = append(fields, creatorprofile.FieldTargetPlatforms)
	}
	if m.topics != nil {
		fields = append(fields, creatorprofile.FieldTopics)
	}
	if m.audience_demographics != nil {
		fields = append(fields, creatorprofile.FieldAudienceDemographics)
	}
	if m.competitor_accounts != nil {
		fields = append(fields, creatorprofile.FieldCompetitorAccounts)
	}
	if m.existing_assets != nil {
		fields = append(fields, creatorprofile.FieldExistingAssets)
	}
	if m.motivation != nil {
		fields = append(fields, creatorprofile.FieldMotivation)
	}
	if m.phase2_completed != nil {
		fields = append(fields, creatorprofile.FieldPhase2Completed)
	}
	if m.agent_context != nil {
		fields = append(fields, creatorprofile.FieldAgentContext)
	}
	if m.recommended_frequency != nil {
		fields = append(fields, creatorprofile.FieldRecommendedFrequency)
	}
	if m.created_at != nil {
		fields = append(fields, creatorprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creatorprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreatorProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creatorprofile.FieldUserID:
		return m.UserID()
	case creatorprofile.FieldName:
		return m.Name()
	case creatorprofile.FieldCreatorType:
		return m.CreatorType()
	case creatorprofile.FieldNiche:
		return m.Niche()
	case creatorprofile.FieldTargetAudienceNiche:
		return m.TargetAudienceNiche()
	case creatorprofile.FieldExistingPlatforms:
		return m.ExistingPlatforms()
	case creatorprofile.FieldPlatformUrls:
		return m.PlatformUrls()
	case creatorprofile.FieldUniqueAngle:
		return m.UniqueAngle()
	case creatorprofile.FieldPurpose:
		return m.Purpose()
	case creatorprofile.FieldStrengths:
		return m.Strengths()
	case creatorprofile.FieldTargetPlatforms:
		return m.TargetPlatforms()
	case creatorprofile.FieldTopics:
		return m.Topics()
	case creatorprofile.FieldAudienceDemographics:
		return m.AudienceDemographics()
	case creatorprofile.FieldCompetitorAccounts:
		return m.CompetitorAccounts()
	case creatorprofile.FieldExistingAssets:
		return m.ExistingAssets()
	case creatorprofile.FieldMotivation:
		return m.Motivation()
	case creatorprofile.FieldPhase2Completed:
		return m.Phase2Completed()
	case creatorprofile.FieldAgentContext:
		return m.AgentContext()
	case creatorprofile.FieldRecommendedFrequency:
		return m.RecommendedFrequency()
	case creatorprofile.FieldCreatedAt:
		return m.CreatedAt()
	case creatorprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreatorProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creatorprofile.FieldUserID:
		return m.OldUserID(ctx)
	case creatorprofile.FieldName:
		return m.OldName(ctx)
	case creatorprofile.FieldCreatorType:
		return m.OldCreatorType(ctx)
	case creatorprofile.FieldNiche:
		return m.OldNiche(ctx)
	case creatorprofile.FieldTargetAudienceNiche:
		return m.OldTargetAudienceNiche(ctx)
	case creatorprofile.FieldExistingPlatforms:
		return m.OldExistingPlatforms(ctx)
	case creatorprofile.FieldPlatformUrls:
		return m.OldPlatformUrls(ctx)
	case creatorprofile.FieldUniqueAngle:
		return m.OldUniqueAngle(ctx)
	case creatorprofile.FieldPurpose:
		return m.OldPurpose(ctx)
	case creatorprofile.FieldStrengths:
		return m.OldStrengths(ctx)
	case creatorprofile.FieldTargetPlatforms:
		return m.OldTargetPlatforms(ctx)
	case creatorprofile.FieldTopics:
		return m.OldTopics(ctx)
	case creatorprofile.FieldAudienceDemographics:
		return m.OldAudienceDemographics(ctx)
	case creatorprofile.FieldCompetitorAccounts:
		return m.OldCompetitorAccounts(ctx)
	case creatorprofile.FieldExistingAssets:
		return m.OldExistingAssets(ctx)
	case creatorprofile.FieldMotivation:
		return m.OldMotivation(ctx)
	case creatorprofile.FieldPhase2Completed:
		return m.OldPhase2Completed(ctx)
	case creatorprofile.FieldAgentContext:
		return m.OldAgentContext(ctx)
	case creatorprofile.FieldRecommendedFrequency:
		return m.OldRecommendedFrequency(ctx)
	case creatorprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creatorprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreatorProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreatorProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creatorprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case creatorprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case creatorprofile.FieldCreatorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorType(v)
		return nil
	case creatorprofile.FieldNiche:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNiche(v)
		return nil
	case creatorprofile.FieldTargetAudienceNiche:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudienceNiche(v)
		return nil
	case creatorprofile.FieldExistingPlatforms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingPlatforms(v)
		return nil
	case creatorprofile.FieldPlatformUrls:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformUrls(v)
		return nil
	case creatorprofile.FieldUniqueAngle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueAngle(v)
		return nil
	case creatorprofile.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case creatorprofile.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case creatorprofile.FieldTargetPlatforms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPlatforms(v)
		return nil
	case creatorprofile.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case creatorprofile.FieldAudienceDemographics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudienceDemographics(v)
		return nil
	case creatorprofile.FieldCompetitorAccounts:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorAccounts(v)
		return nil
	case creatorprofile.FieldExistingAssets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingAssets(v)
		return nil
	case creatorprofile.FieldMotivation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMotivation(v)
		return nil
	case creatorprofile.FieldPhase2Completed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase2Completed(v)
		return nil
	case creatorprofile.FieldAgentContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentContext(v)
		return nil
	case creatorprofile.FieldRecommendedFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedFrequency(v)
		return nil
	case creatorprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creatorprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreatorProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreatorProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreatorProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreatorProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CreatorProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreatorProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creatorprofile.FieldUniqueAngle) {
		fields = append(fields, creatorprofile.FieldUniqueAngle)
	}
	if m.FieldCleared(creatorprofile.FieldPurpose) {
		fields = append(fields, creatorprofile.FieldPurpose)
	}
	if m.FieldCleared(creatorprofile.FieldMotivation) {
		fields = append(fields, creatorprofile.FieldMotivation)
	}
	if m.FieldCleared(creatorprofile.FieldRecommendedFrequency) {
		fields = append(fields, creatorprofile.FieldRecommendedFrequency)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreatorProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreatorProfileMutation) ClearField(name string) error {
	switch name {
	case creatorprofile.FieldUniqueAngle:
		m.ClearUniqueAngle()
		return nil
	case creatorprofile.FieldPurpose:
		m.ClearPurpose()
		return nil
	case creatorprofile.FieldMotivation:
		m.ClearMotivation()
		return nil
	case creatorprofile.FieldRecommendedFrequency:
		m.ClearRecommendedFrequency()
		return nil
	}
	return fmt.Errorf("unknown CreatorProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreatorProfileMutation) ResetField(name string) error {
	switch name {
	case creatorprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case creatorprofile.FieldName:
		m.ResetName()
		return nil
	case creatorprofile.FieldCreatorType:
		m.ResetCreatorType()
		return nil
	case creatorprofile.FieldNiche:
		m.ResetNiche()
		return nil
	case creatorprofile.FieldTargetAudienceNiche:
		m.ResetTargetAudienceNiche()
		return nil
	case creatorprofile.FieldExistingPlatforms:
		m.ResetExistingPlatforms()
		return nil
	case creatorprofile.FieldPlatformUrls:
		m.ResetPlatformUrls()
		return nil
	case creatorprofile.FieldUniqueAngle:
		m.ResetUniqueAngle()
		return nil
	case creatorprofile.FieldPurpose:
		m.ResetPurpose()
		return nil
	case creatorprofile.FieldStrengths:
		m.ResetStrengths()
		return nil
	case creatorprofile.FieldTargetPlatforms:
		m.ResetTargetPlatforms()
		return nil
	case creatorprofile.FieldTopics:
		m.ResetTopics()
		return nil
	case creatorprofile.FieldAudienceDemographics:
		m.ResetAudienceDemographics()
		return nil
	case creatorprofile.FieldCompetitorAccounts:
		m.ResetCompetitorAccounts()
		return nil
	case creatorprofile.FieldExistingAssets:
		m.ResetExistingAssets()
		return nil
	case creatorprofile.FieldMotivation:
		m.ResetMotivation()
		return nil
	case creatorprofile.FieldPhase2Completed:
		m.ResetPhase2Completed()
		return nil
	case creatorprofile.FieldAgentContext:
		m.ResetAgentContext()
		return nil
	case creatorprofile.FieldRecommendedFrequency:
		m.ResetRecommendedFrequency()
		return nil
	case creatorprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creatorprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreatorProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreatorProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, creatorprofile.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreatorProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case creatorprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreatorProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreatorProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreatorProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, creatorprofile.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreatorProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case creatorprofile.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreatorProfileMutation) ClearEdge(name string) error {
	switch name {
	case creatorprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown CreatorProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreatorProfileMutation) ResetEdge(name string) error {
	switch name {
	case creatorprofile.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown CreatorProfile edge %s", name)
}

// DailyContentMutation represents an operation that mutates the DailyContent nodes in the graph.
type DailyContentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	day_number      *int
	addday_number   *int
	platform        *string
	script          *string
	title           *string
	seo_tags        *[]string
	appendseo_tags  []string
	cta             *string
	tweet           *string
	thread          *[]string
	appendthread    []string
	thumbnail_urls  *map[string]string
	reasoning       *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	campaign        *string
	clearedcampaign bool
	done            bool
	oldValue        func(context.Context) (*DailyContent, error)
	predicates      []predicate.DailyContent
}

var _ ent.Mutation = (*DailyContentMutation)(nil)

// dailycontentOption allows management of the mutation configuration using functional options.
type dailycontentOption func(*DailyContentMutation)

// newDailyContentMutation creates new mutation for the DailyContent entity.
func newDailyContentMutation(c config, op Op, opts ...dailycontentOption) *DailyContentMutation {
	m := &DailyContentMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyContentID sets the ID field of the mutation.
func withDailyContentID(id string) dailycontentOption {
	return func(m *DailyContentMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyContent
		)
		m.oldValue = func(ctx context.Context) (*DailyContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyContent sets the old DailyContent of the mutation.
func withDailyContent(node *DailyContent) dailycontentOption {
	return func(m *DailyContentMutation) {
		m.oldValue = func(context.Context) (*DailyContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyContent entities.
func (m *DailyContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *DailyContentMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *DailyContentMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *DailyContentMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetDayNumber sets the "day_number" field.
func (m *DailyContentMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *DailyContentMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *DailyContentMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *DailyContentMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *DailyContentMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetPlatform sets the "platform" field.
func (m *DailyContentMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *DailyContentMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *DailyContentMutation) ResetPlatform() {
	m.platform = nil
}

// SetScript sets the "script" field.
func (m *DailyContentMutation) SetScript(s string) {
	m.script = &s
}

// Script returns the value of the "script" field in the mutation.
func (m *DailyContentMutation) Script() (r string, exists bool) {
	v := m.script
	if v == nil {
		return
	}
	return *v, true
}

// OldScript returns the old "script" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldScript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScript: %w", err)
	}
	return oldValue.Script, nil
}

// ClearScript clears the value of the "script" field.
func (m *DailyContentMutation) ClearScript() {
	m.script = nil
	m.clearedFields[dailycontent.FieldScript] = struct{}{}
}

// ScriptCleared returns if the "script" field was cleared in this mutation.
func (m *DailyContentMutation) ScriptCleared() bool {
	_, ok := m.clearedFields[dailycontent.FieldScript]
	return ok
}

// ResetScript resets all changes to the "script" field.
func (m *DailyContentMutation) ResetScript() {
	m.script = nil
	delete(m.clearedFields, dailycontent.FieldScript)
}

// SetTitle sets the "title" field.
func (m *DailyContentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DailyContentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DailyContentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[dailycontent.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DailyContentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[dailycontent.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DailyContentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, dailycontent.FieldTitle)
}

// SetSeoTags sets the "seo_tags" field.
func (m *DailyContentMutation) SetSeoTags(s []string) {
	m.seo_tags = &s
	m.appendseo_tags = nil
}

// SeoTags returns the value of the "seo_tags" field in the mutation.
func (m *DailyContentMutation) SeoTags() (r []string, exists bool) {
	v := m.seo_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldSeoTags returns the old "seo_tags" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldSeoTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeoTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeoTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeoTags: %w", err)
	}
	return oldValue.SeoTags, nil
}

// AppendSeoTags adds s to the "seo_tags" field.
func (m *DailyContentMutation) AppendSeoTags(s []string) {
	m.appendseo_tags = append(m.appendseo_tags, s...)
}

// AppendedSeoTags returns the list of values that were appended to the "seo_tags" field in this mutation.
func (m *DailyContentMutation) AppendedSeoTags() ([]string, bool) {
	if len(m.appendseo_tags) == 0 {
		return nil, false
	}
	return m.appendseo_tags, true
}

// ResetSeoTags resets all changes to the "seo_tags" field.
func (m *DailyContentMutation) ResetSeoTags() {
	m.seo_tags = nil
	m.appendseo_tags = nil
}

// SetCta sets the "cta" field.
func (m *DailyContentMutation) SetCta(s string) {
	m.cta = &s
}

// Cta returns the value of the "cta" field in the mutation.
func (m *DailyContentMutation) Cta() (r string, exists bool) {
	v := m.cta
	if v == nil {
		return
	}
	return *v, true
}

// OldCta returns the old "cta" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldCta(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCta: %w", err)
	}
	return oldValue.Cta, nil
}

// ClearCta clears the value of the "cta" field.
func (m *DailyContentMutation) ClearCta() {
	m.cta = nil
	m.clearedFields[dailycontent.FieldCta] = struct{}{}
}

// CtaCleared returns if the "cta" field was cleared in this mutation.
func (m *DailyContentMutation) CtaCleared() bool {
	_, ok := m.clearedFields[dailycontent.FieldCta]
	return ok
}

// ResetCta resets all changes to the "cta" field.
func (m *DailyContentMutation) ResetCta() {
	m.cta = nil
	delete(m.clearedFields, dailycontent.FieldCta)
}

// SetTweet sets the "tweet" field.
func (m *DailyContentMutation) SetTweet(s string) {
	m.tweet = &s
}

// Tweet returns the value of the "tweet" field in the mutation.
func (m *DailyContentMutation) Tweet() (r string, exists bool) {
	v := m.tweet
	if v == nil {
		return
	}
	return *v, true
}

// OldTweet returns the old "tweet" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldTweet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTweet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTweet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTweet: %w", err)
	}
	return oldValue.Tweet, nil
}

// ClearTweet clears the value of the "tweet" field.
func (m *DailyContentMutation) ClearTweet() {
	m.tweet = nil
	m.clearedFields[dailycontent.FieldTweet] = struct{}{}
}

// TweetCleared returns if the "tweet" field was cleared in this mutation.
func (m *DailyContentMutation) TweetCleared() bool {
	_, ok := m.clearedFields[dailycontent.FieldTweet]
	return ok
}

// ResetTweet resets all changes to the "tweet" field.
func (m *DailyContentMutation) ResetTweet() {
	m.tweet = nil
	delete(m.clearedFields, dailycontent.FieldTweet)
}

// SetThread sets the "thread" field.
func (m *DailyContentMutation) SetThread(s []string) {
	m.thread = &s
	m.appendthread = nil
}

// Thread returns the value of the "thread" field in the mutation.
func (m *DailyContentMutation) Thread() (r []string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThread returns the old "thread" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldThread(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThread is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThread requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThread: %w", err)
	}
	return oldValue.Thread, nil
}

// AppendThread adds s to the "thread" field.
func (m *DailyContentMutation) AppendThread(s []string) {
	m.appendthread = append(m.appendthread, s...)
}

// AppendedThread returns the list of values that were appended to the "thread" field in this mutation.
func (m *DailyContentMutation) AppendedThread() ([]string, bool) {
	if len(m.appendthread) == 0 {
		return nil, false
	}
	return m.appendthread, true
}

// ResetThread resets all changes to the "thread" field.
func (m *DailyContentMutation) ResetThread() {
	m.thread = nil
	m.appendthread = nil
}

// SetThumbnailUrls sets the "thumbnail_urls" field.
func (m *DailyContentMutation) SetThumbnailUrls(value map[string]string) {
	m.thumbnail_urls = &value
}

// ThumbnailUrls returns the value of the "thumbnail_urls" field in the mutation.
func (m *DailyContentMutation) ThumbnailUrls() (r map[string]string, exists bool) {
	v := m.thumbnail_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailUrls returns the old "thumbnail_urls" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldThumbnailUrls(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailUrls: %w", err)
	}
	return oldValue.ThumbnailUrls, nil
}

// ResetThumbnailUrls resets all changes to the "thumbnail_urls" field.
func (m *DailyContentMutation) ResetThumbnailUrls() {
	m.thumbnail_urls = nil
}

// SetReasoning sets the "reasoning" field.
func (m *DailyContentMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *DailyContentMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *DailyContentMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[dailycontent.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *DailyContentMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[dailycontent.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *DailyContentMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, dailycontent.FieldReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *DailyContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DailyContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DailyContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DailyContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DailyContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DailyContent entity.
// If the DailyContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DailyContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *DailyContentMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[dailycontent.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *DailyContentMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *DailyContentMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *DailyContentMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the DailyContentMutation builder.
func (m *DailyContentMutation) Where(ps ...predicate.DailyContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyContent).
func (m *DailyContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyContentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.campaign != nil {
		fields = append(fields, dailycontent.FieldCampaignID)
	}
	if m.day_number != nil {
		fields = append(fields, dailycontent.FieldDayNumber)
	}
	if m.platform != nil {
		fields = append(fields, dailycontent.FieldPlatform)
	}
	if m.script != nil {
		fields = append(fields, dailycontent.FieldScript)
	}
	if m.title != nil {
		fields = append(fields, dailycontent.FieldTitle)
	}
	if m.seo_tags != nil {
		fields = append(fields, dailycontent.FieldSeoTags)
	}
	if m.cta != nil {
		fields = append(fields, dailycontent.FieldCta)
	}
	if m.tweet != nil {
		fields = append(fields, dailycontent.FieldTweet)
	}
	if m.thread != nil {
		fields = append(fields, dailycontent.FieldThread)
	}
	if m.thumbnail_urls != nil {
		fields = append(fields, dailycontent.FieldThumbnailUrls)
	}
	if m.reasoning != nil {
		fields = append(fields, dailycontent.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, dailycontent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dailycontent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailycontent.FieldCampaignID:
		return m.CampaignID()
	case dailycontent.FieldDayNumber:
		return m.DayNumber()
	case dailycontent.FieldPlatform:
		return m.Platform()
	case dailycontent.FieldScript:
		return m.Script()
	case dailycontent.FieldTitle:
		return m.Title()
	case dailycontent.FieldSeoTags:
		return m.SeoTags()
	case dailycontent.FieldCta:
		return m.Cta()
	case dailycontent.FieldTweet:
		return m.Tweet()
	case dailycontent.FieldThread:
		return m.Thread()
	case dailycontent.FieldThumbnailUrls:
		return m.ThumbnailUrls()
	case dailycontent.FieldReasoning:
		return m.Reasoning()
	case dailycontent.FieldCreatedAt:
		return m.CreatedAt()
	case dailycontent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailycontent.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case dailycontent.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case dailycontent.FieldPlatform:
		return m.OldPlatform(ctx)
	case dailycontent.FieldScript:
		return m.OldScript(ctx)
	case dailycontent.FieldTitle:
		return m.OldTitle(ctx)
	case dailycontent.FieldSeoTags:
		return m.OldSeoTags(ctx)
	case dailycontent.FieldCta:
		return m.OldCta(ctx)
	case dailycontent.FieldTweet:
		return m.OldTweet(ctx)
	case dailycontent.FieldThread:
		return m.OldThread(ctx)
	case dailycontent.FieldThumbnailUrls:
		return m.OldThumbnailUrls(ctx)
	case dailycontent.FieldReasoning:
		return m.OldReasoning(ctx)
	case dailycontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dailycontent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailycontent.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case dailycontent.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case dailycontent.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case dailycontent.FieldScript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScript(v)
		return nil
	case dailycontent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case dailycontent.FieldSeoTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeoTags(v)
		return nil
	case dailycontent.FieldCta:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCta(v)
		return nil
	case dailycontent.FieldTweet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTweet(v)
		return nil
	case dailycontent.FieldThread:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThread(v)
		return nil
	case dailycontent.FieldThumbnailUrls:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailUrls(v)
		return nil
	case dailycontent.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case dailycontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dailycontent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyContentMutation) AddedFields() []string {
	var fields []string
	if m.addday_number != nil {
		fields = append(fields, dailycontent.FieldDayNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailycontent.FieldDayNumber:
		return m.AddedDayNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailycontent.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	}
	return fmt.Errorf("unknown DailyContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dailycontent.FieldScript) {
		fields = append(fields, dailycontent.FieldScript)
	}
	if m.FieldCleared(dailycontent.FieldTitle) {
		fields = append(fields, dailycontent.FieldTitle)
	}
	if m.FieldCleared(dailycontent.FieldCta) {
		fields = append(fields, dailycontent.FieldCta)
	}
	if m.FieldCleared(dailycontent.FieldTweet) {
		fields = append(fields, dailycontent.FieldTweet)
	}
	if m.FieldCleared(dailycontent.FieldReasoning) {
		fields = append(fields, dailycontent.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyContentMutation) ClearField(name string) error {
	switch name {
	case dailycontent.FieldScript:
		m.ClearScript()
		return nil
	case dailycontent.FieldTitle:
		m.ClearTitle()
		return nil
	case dailycontent.FieldCta:
		m.ClearCta()
		return nil
	case dailycontent.FieldTweet:
		m.ClearTweet()
		return nil
	case dailycontent.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown DailyContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyContentMutation) ResetField(name string) error {
	switch name {
	case dailycontent.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case dailycontent.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case dailycontent.FieldPlatform:
		m.ResetPlatform()
		return nil
	case dailycontent.FieldScript:
		m.ResetScript()
		return nil
	case dailycontent.FieldTitle:
		m.ResetTitle()
		return nil
	case dailycontent.FieldSeoTags:
		m.ResetSeoTags()
		return nil
	case dailycontent.FieldCta:
		m.ResetCta()
		return nil
	case dailycontent.FieldTweet:
		m.ResetTweet()
		return nil
	case dailycontent.FieldThread:
		m.ResetThread()
		return nil
	case dailycontent.FieldThumbnailUrls:
		m.ResetThumbnailUrls()
		return nil
	case dailycontent.FieldReasoning:
		m.ResetReasoning()
		return nil
	case dailycontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dailycontent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, dailycontent.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dailycontent.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, dailycontent.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyContentMutation) EdgeCleared(name string) bool {
	switch name {
	case dailycontent.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyContentMutation) ClearEdge(name string) error {
	switch name {
	case dailycontent.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown DailyContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyContentMutation) ResetEdge(name string) error {
	switch name {
	case dailycontent.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown DailyContent edge %s", name)
}

// DailyExecutionMutation represents an operation that mutates the DailyExecution nodes in the graph.
type DailyExecutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	day_number         *int
	addday_number      *int
	platform           *string
	posted_to_youtube  *bool
	posted_to_twitter  *bool
	executed_at        *time.Time
	engagement_metrics *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	campaign           *string
	clearedcampaign    bool
	done               bool
	oldValue           func(context.Context) (*DailyExecution, error)
	predicates         []predicate.DailyExecution
}

var _ ent.Mutation = (*DailyExecutionMutation)(nil)

// dailyexecutionOption allows management of the mutation configuration using functional options.
type dailyexecutionOption func(*DailyExecutionMutation)

// newDailyExecutionMutation creates new mutation for the DailyExecution entity.
func newDailyExecutionMutation(c config, op Op, opts ...dailyexecutionOption) *DailyExecutionMutation {
	m := &DailyExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyExecutionID sets the ID field of the mutation.
func withDailyExecutionID(id string) dailyexecutionOption {
	return func(m *DailyExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyExecution
		)
		m.oldValue = func(ctx context.Context) (*DailyExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyExecution sets the old DailyExecution of the mutation.
func withDailyExecution(node *DailyExecution) dailyexecutionOption {
	return func(m *DailyExecutionMutation) {
		m.oldValue = func(context.Context) (*DailyExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyExecution entities.
func (m *DailyExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *DailyExecutionMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *DailyExecutionMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *DailyExecutionMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetDayNumber sets the "day_number" field.
func (m *DailyExecutionMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *DailyExecutionMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *DailyExecutionMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *DailyExecutionMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *DailyExecutionMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetPlatform sets the "platform" field.
func (m *DailyExecutionMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *DailyExecutionMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *DailyExecutionMutation) ResetPlatform() {
	m.platform = nil
}

// SetPostedToYoutube sets the "posted_to_youtube" field.
func (m *DailyExecutionMutation) SetPostedToYoutube(b bool) {
	m.posted_to_youtube = &b
}

// PostedToYoutube returns the value of the "posted_to_youtube" field in the mutation.
func (m *DailyExecutionMutation) PostedToYoutube() (r bool, exists bool) {
	v := m.posted_to_youtube
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedToYoutube returns the old "posted_to_youtube" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldPostedToYoutube(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedToYoutube is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedToYoutube requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedToYoutube: %w", err)
	}
	return oldValue.PostedToYoutube, nil
}

// ResetPostedToYoutube resets all changes to the "posted_to_youtube" field.
func (m *DailyExecutionMutation) ResetPostedToYoutube() {
	m.posted_to_youtube = nil
}

// SetPostedToTwitter sets the "posted_to_twitter" field.
func (m *DailyExecutionMutation) SetPostedToTwitter(b bool) {
	m.posted_to_twitter = &b
}

// PostedToTwitter returns the value of the "posted_to_twitter" field in the mutation.
func (m *DailyExecutionMutation) PostedToTwitter() (r bool, exists bool) {
	v := m.posted_to_twitter
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedToTwitter returns the old "posted_to_twitter" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldPostedToTwitter(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedToTwitter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedToTwitter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedToTwitter: %w", err)
	}
	return oldValue.PostedToTwitter, nil
}

// ResetPostedToTwitter resets all changes to the "posted_to_twitter" field.
func (m *DailyExecutionMutation) ResetPostedToTwitter() {
	m.posted_to_twitter = nil
}

// SetExecutedAt sets the "executed_at" field.
func (m *DailyExecutionMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *DailyExecutionMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (m *DailyExecutionMutation) ClearExecutedAt() {
	m.executed_at = nil
	m.clearedFields[dailyexecution.FieldExecutedAt] = struct{}{}
}

// ExecutedAtCleared returns if the "executed_at" field was cleared in this mutation.
func (m *DailyExecutionMutation) ExecutedAtCleared() bool {
	_, ok := m.clearedFields[dailyexecution.FieldExecutedAt]
	return ok
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *DailyExecutionMutation) ResetExecutedAt() {
	m.executed_at = nil
	delete(m.clearedFields, dailyexecution.FieldExecutedAt)
}

// SetEngagementMetrics sets the "engagement_metrics" field.
func (m *DailyExecutionMutation) SetEngagementMetrics(value map[string]interface{}) {
	m.engagement_metrics = &value
}

// EngagementMetrics returns the value of the "engagement_metrics" field in the mutation.
func (m *DailyExecutionMutation) EngagementMetrics() (r map[string]interface{}, exists bool) {
	v := m.engagement_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementMetrics returns the old "engagement_metrics" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldEngagementMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementMetrics: %w", err)
	}
	return oldValue.EngagementMetrics, nil
}

// ResetEngagementMetrics resets all changes to the "engagement_metrics" field.
func (m *DailyExecutionMutation) ResetEngagementMetrics() {
	m.engagement_metrics = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DailyExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DailyExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DailyExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DailyExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DailyExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DailyExecution entity.
// If the DailyExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DailyExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *DailyExecutionMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[dailyexecution.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *DailyExecutionMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *DailyExecutionMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *DailyExecutionMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the DailyExecutionMutation builder.
func (m *DailyExecutionMutation) Where(ps ...predicate.DailyExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyExecution).
func (m *DailyExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyExecutionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.campaign != nil {
		fields = append(fields, dailyexecution.FieldCampaignID)
	}
	if m.day_number != nil {
		fields = append(fields, dailyexecution.FieldDayNumber)
	}
	if m.platform != nil {
		fields = append(fields, dailyexecution.FieldPlatform)
	}
	if m.posted_to_youtube != nil {
		fields = append(fields, dailyexecution.FieldPostedToYoutube)
	}
	if m.posted_to_twitter != nil {
		fields = append(fields, dailyexecution.FieldPostedToTwitter)
	}
	if m.executed_at != nil {
		fields = append(fields, dailyexecution.FieldExecutedAt)
	}
	if m.engagement_metrics != nil {
		fields = append(fields, dailyexecution.FieldEngagementMetrics)
	}
	if m.created_at != nil {
		fields = append(fields, dailyexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dailyexecution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailyexecution.FieldCampaignID:
		return m.CampaignID()
	case dailyexecution.FieldDayNumber:
		return m.DayNumber()
	case dailyexecution.FieldPlatform:
		return m.Platform()
	case dailyexecution.FieldPostedToYoutube:
		return m.PostedToYoutube()
	case dailyexecution.FieldPostedToTwitter:
		return m.PostedToTwitter()
	case dailyexecution.FieldExecutedAt:
		return m.ExecutedAt()
	case dailyexecution.FieldEngagementMetrics:
		return m.EngagementMetrics()
	case dailyexecution.FieldCreatedAt:
		return m.CreatedAt()
	case dailyexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailyexecution.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case dailyexecution.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case dailyexecution.FieldPlatform:
		return m.OldPlatform(ctx)
	case dailyexecution.FieldPostedToYoutube:
		return m.OldPostedToYoutube(ctx)
	case dailyexecution.FieldPostedToTwitter:
		return m.OldPostedToTwitter(ctx)
	case dailyexecution.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	case dailyexecution.FieldEngagementMetrics:
		return m.OldEngagementMetrics(ctx)
	case dailyexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dailyexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailyexecution.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case dailyexecution.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case dailyexecution.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case dailyexecution.FieldPostedToYoutube:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedToYoutube(v)
		return nil
	case dailyexecution.FieldPostedToTwitter:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedToTwitter(v)
		return nil
	case dailyexecution.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	case dailyexecution.FieldEngagementMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementMetrics(v)
		return nil
	case dailyexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dailyexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addday_number != nil {
		fields = append(fields, dailyexecution.FieldDayNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailyexecution.FieldDayNumber:
		return m.AddedDayNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailyexecution.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	}
	return fmt.Errorf("unknown DailyExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dailyexecution.FieldExecutedAt) {
		fields = append(fields, dailyexecution.FieldExecutedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyExecutionMutation) ClearField(name string) error {
	switch name {
	case dailyexecution.FieldExecutedAt:
		m.ClearExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyExecutionMutation) ResetField(name string) error {
	switch name {
	case dailyexecution.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case dailyexecution.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case dailyexecution.FieldPlatform:
		m.ResetPlatform()
		return nil
	case dailyexecution.FieldPostedToYoutube:
		m.ResetPostedToYoutube()
		return nil
	case dailyexecution.FieldPostedToTwitter:
		m.ResetPostedToTwitter()
		return nil
	case dailyexecution.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	case dailyexecution.FieldEngagementMetrics:
		m.ResetEngagementMetrics()
		return nil
	case dailyexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dailyexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, dailyexecution.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dailyexecution.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, dailyexecution.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case dailyexecution.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyExecutionMutation) ClearEdge(name string) error {
	switch name {
	case dailyexecution.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown DailyExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyExecutionMutation) ResetEdge(name string) error {
	switch name {
	case dailyexecution.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown DailyExecution edge %s", name)
}

// LearningMemoryMutation represents an operation that mutates the LearningMemory nodes in the graph.
type LearningMemoryMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	goal_type                 *string
	platform                  *string
	niche                     *string
	campaign_duration_days    *int
	addcampaign_duration_days *int
	posting_frequency         *string
	what_worked               *[]string
	appendwhat_worked         []string
	what_failed               *[]string
	appendwhat_failed         []string
	recommendations           *[]string
	appendrecommendations     []string
	goal_achievement_summary  *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	user                      *string
	cleareduser               bool
	campaign                  *string
	clearedcampaign           bool
	done                      bool
	oldValue                  func(context.Context) (*LearningMemory, error)
	predicates                []predicate.LearningMemory
}

var _ ent.Mutation = (*LearningMemoryMutation)(nil)

// learningmemoryOption allows management of the mutation configuration using functional options.
type learningmemoryOption func(*LearningMemoryMutation)

// newLearningMemoryMutation creates new mutation for the LearningMemory entity.
func newLearningMemoryMutation(c config, op Op, opts ...learningmemoryOption) *LearningMemoryMutation {
	m := &LearningMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningMemoryID sets the ID field of the mutation.
func withLearningMemoryID(id string) learningmemoryOption {
	return func(m *LearningMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningMemory
		)
		m.oldValue = func(ctx context.Context) (*LearningMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningMemory sets the old LearningMemory of the mutation.
func withLearningMemory(node *LearningMemory) learningmemoryOption {
	return func(m *LearningMemoryMutation) {
		m.oldValue = func(context.Context) (*LearningMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningMemory entities.
func (m *LearningMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearningMemoryMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningMemoryMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningMemoryMutation) ResetUserID() {
	m.user = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *LearningMemoryMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *LearningMemoryMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *LearningMemoryMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetGoalType sets the "goal_type" field.
func (m *LearningMemoryMutation) SetGoalType(s string) {
	m.goal_type = &s
}

// GoalType returns the value of the "goal_type" field in the mutation.
func (m *LearningMemoryMutation) GoalType() (r string, exists bool) {
	v := m.goal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalType returns the old "goal_type" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldGoalType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalType: %w", err)
	}
	return oldValue.GoalType, nil
}

// ResetGoalType resets all changes to the "goal_type" field.
func (m *LearningMemoryMutation) ResetGoalType() {
	m.goal_type = nil
}

// SetPlatform sets the "platform" field.
func (m *LearningMemoryMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *LearningMemoryMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *LearningMemoryMutation) ResetPlatform() {
	m.platform = nil
}

// SetNiche sets the "niche" field.
func (m *LearningMemoryMutation) SetNiche(s string) {
	m.niche = &s
}

// Niche returns the value of the "niche" field in the mutation.
func (m *LearningMemoryMutation) Niche() (r string, exists bool) {
	v := m.niche
	if v == nil {
		return
	}
	return *v, true
}

// OldNiche returns the old "niche" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldNiche(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNiche is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNiche requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNiche: %w", err)
	}
	return oldValue.Niche, nil
}

// ResetNiche resets all changes to the "niche" field.
func (m *LearningMemoryMutation) ResetNiche() {
	m.niche = nil
}

// SetCampaignDurationDays sets the "campaign_duration_days" field.
func (m *LearningMemoryMutation) SetCampaignDurationDays(i int) {
	m.campaign_duration_days = &i
	m.addcampaign_duration_days = nil
}

// CampaignDurationDays returns the value of the "campaign_duration_days" field in the mutation.
func (m *LearningMemoryMutation) CampaignDurationDays() (r int, exists bool) {
	v := m.campaign_duration_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignDurationDays returns the old "campaign_duration_days" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldCampaignDurationDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignDurationDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignDurationDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignDurationDays: %w", err)
	}
	return oldValue.CampaignDurationDays, nil
}

// AddCampaignDurationDays adds i to the "campaign_duration_days" field.
func (m *LearningMemoryMutation) AddCampaignDurationDays(i int) {
	if m.addcampaign_duration_days != nil {
		*m.addcampaign_duration_days += i
	} else {
		m.addcampaign_duration_days = &i
	}
}

// AddedCampaignDurationDays returns the value that was added to the "campaign_duration_days" field in this mutation.
func (m *LearningMemoryMutation) AddedCampaignDurationDays() (r int, exists bool) {
	v := m.addcampaign_duration_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCampaignDurationDays resets all changes to the "campaign_duration_days" field.
func (m *LearningMemoryMutation) ResetCampaignDurationDays() {
	m.campaign_duration_days = nil
	m.addcampaign_duration_days = nil
}

// SetPostingFrequency sets the "posting_frequency" field.
func (m *LearningMemoryMutation) SetPostingFrequency(s string) {
	m.posting_frequency = &s
}

// PostingFrequency returns the value of the "posting_frequency" field in the mutation.
func (m *LearningMemoryMutation) PostingFrequency() (r string, exists bool) {
	v := m.posting_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldPostingFrequency returns the old "posting_frequency" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldPostingFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostingFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostingFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostingFrequency: %w", err)
	}
	return oldValue.PostingFrequency, nil
}

// ClearPostingFrequency clears the value of the "posting_frequency" field.
func (m *LearningMemoryMutation) ClearPostingFrequency() {
	m.posting_frequency = nil
	m.clearedFields[learningmemory.FieldPostingFrequency] = struct{}{}
}

// PostingFrequencyCleared returns if the "posting_frequency" field was cleared in this mutation.
func (m *LearningMemoryMutation) PostingFrequencyCleared() bool {
	_, ok := m.clearedFields[learningmemory.FieldPostingFrequency]
	return ok
}

// ResetPostingFrequency resets all changes to the "posting_frequency" field.
func (m *LearningMemoryMutation) ResetPostingFrequency() {
	m.posting_frequency = nil
	delete(m.clearedFields, learningmemory.FieldPostingFrequency)
}

// SetWhatWorked sets the "what_worked" field.
func (m *LearningMemoryMutation) SetWhatWorked(s []string) {
	m.what_worked = &s
	m.appendwhat_worked = nil
}

// WhatWorked returns the value of the "what_worked" field in the mutation.
func (m *LearningMemoryMutation) WhatWorked() (r []string, exists bool) {
	v := m.what_worked
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatWorked returns the old "what_worked" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldWhatWorked(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatWorked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatWorked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatWorked: %w", err)
	}
	return oldValue.WhatWorked, nil
}

// AppendWhatWorked adds s to the "what_worked" field.
func (m *LearningMemoryMutation) AppendWhatWorked(s []string) {
	m.appendwhat_worked = append(m.appendwhat_worked, s...)
}

// AppendedWhatWorked returns the list of values that were appended to the "what_worked" field in this mutation.
func (m *LearningMemoryMutation) AppendedWhatWorked() ([]string, bool) {
	if len(m.appendwhat_worked) == 0 {
		return nil, false
	}
	return m.appendwhat_worked, true
}

// ResetWhatWorked resets all changes to the "what_worked" field.
func (m *LearningMemoryMutation) ResetWhatWorked() {
	m.what_worked = nil
	m.appendwhat_worked = nil
}

// SetWhatFailed sets the "what_failed" field.
func (m *LearningMemoryMutation) SetWhatFailed(s []string) {
	m.what_failed = &s
	m.appendwhat_failed = nil
}

// WhatFailed returns the value of the "what_failed" field in the mutation.
func (m *LearningMemoryMutation) WhatFailed() (r []string, exists bool) {
	v := m.what_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatFailed returns the old "what_failed" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldWhatFailed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatFailed: %w", err)
	}
	return oldValue.WhatFailed, nil
}

// AppendWhatFailed adds s to the "what_failed" field.
func (m *LearningMemoryMutation) AppendWhatFailed(s []string) {
	m.appendwhat_failed = append(m.appendwhat_failed, s...)
}

// AppendedWhatFailed returns the list of values that were appended to the "what_failed" field in this mutation.
func (m *LearningMemoryMutation) AppendedWhatFailed() ([]string, bool) {
	if len(m.appendwhat_failed) == 0 {
		return nil, false
	}
	return m.appendwhat_failed, true
}

// ResetWhatFailed resets all changes to the "what_failed" field.
func (m *LearningMemoryMutation) ResetWhatFailed() {
	m.what_failed = nil
	m.appendwhat_failed = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *LearningMemoryMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *LearningMemoryMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *LearningMemoryMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *LearningMemoryMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *LearningMemoryMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
}

// SetGoalAchievementSummary sets the "goal_achievement_summary" field.
func (m *LearningMemoryMutation) SetGoalAchievementSummary(s string) {
	m.goal_achievement_summary = &s
}

// GoalAchievementSummary returns the value of the "goal_achievement_summary" field in the mutation.
func (m *LearningMemoryMutation) GoalAchievementSummary() (r string, exists bool) {
	v := m.goal_achievement_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalAchievementSummary returns the old "goal_achievement_summary" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldGoalAchievementSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalAchievementSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalAchievementSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalAchievementSummary: %w", err)
	}
	return oldValue.GoalAchievementSummary, nil
}

// ClearGoalAchievementSummary clears the value of the "goal_achievement_summary" field.
func (m *LearningMemoryMutation) ClearGoalAchievementSummary() {
	m.goal_achievement_summary = nil
	m.clearedFields[learningmemory.FieldGoalAchievementSummary] = struct{}{}
}

// GoalAchievementSummaryCleared returns if the "goal_achievement_summary" field was cleared in this mutation.
func (m *LearningMemoryMutation) GoalAchievementSummaryCleared() bool {
	_, ok := m.clearedFields[learningmemory.FieldGoalAchievementSummary]
	return ok
}

// ResetGoalAchievementSummary resets all changes to the "goal_achievement_summary" field.
func (m *LearningMemoryMutation) ResetGoalAchievementSummary() {
	m.goal_achievement_summary = nil
	delete(m.clearedFields, learningmemory.FieldGoalAchievementSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningMemory entity.
// If the LearningMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *LearningMemoryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[learningmemory.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *LearningMemoryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *LearningMemoryMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *LearningMemoryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *LearningMemoryMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[learningmemory.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *LearningMemoryMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *LearningMemoryMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *LearningMemoryMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the LearningMemoryMutation builder.
func (m *LearningMemoryMutation) Where(ps ...predicate.LearningMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningMemory).
func (m *LearningMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningMemoryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user != nil {
		fields = append(fields, learningmemory.FieldUserID)
	}
	if m.campaign != nil {
		fields = append(fields, learningmemory.FieldCampaignID)
	}
	if m.goal_type != nil {
		fields = append(fields, learningmemory.FieldGoalType)
	}
	if m.platform != nil {
		fields = append(fields, learningmemory.FieldPlatform)
	}
	if m.niche != nil {
		fields = append(fields, learningmemory.FieldNiche)
	}
	if m.campaign_duration_days != nil {
		fields = append(fields, learningmemory.FieldCampaignDurationDays)
	}
	if m.posting_frequency != nil {
		fields = append(fields, learningmemory.FieldPostingFrequency)
	}
	if m.what_worked != nil {
		fields = append(fields, learningmemory.FieldWhatWorked)
	}
	if m.what_failed != nil {
		fields = append(fields, learningmemory.FieldWhatFailed)
	}
	if m.recommendations != nil {
		fields = append(fields, learningmemory.FieldRecommendations)
	}
	if m.goal_achievement_summary != nil {
		fields = append(fields, learningmemory.FieldGoalAchievementSummary)
	}
	if m.created_at != nil {
		fields = append(fields, learningmemory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningmemory.FieldUserID:
		return m.UserID()
	case learningmemory.FieldCampaignID:
		return m.CampaignID()
	case learningmemory.FieldGoalType:
		return m.GoalType()
	case learningmemory.FieldPlatform:
		return m.Platform()
	case learningmemory.FieldNiche:
		return m.Niche()
	case learningmemory.FieldCampaignDurationDays:
		return m.CampaignDurationDays()
	case learningmemory.FieldPostingFrequency:
		return m.PostingFrequency()
	case learningmemory.FieldWhatWorked:
		return m.WhatWorked()
	case learningmemory.FieldWhatFailed:
		return m.WhatFailed()
	case learningmemory.FieldRecommendations:
		return m.Recommendations()
	case learningmemory.FieldGoalAchievementSummary:
		return m.GoalAchievementSummary()
	case learningmemory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningmemory.FieldUserID:
		return m.OldUserID(ctx)
	case learningmemory.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case learningmemory.FieldGoalType:
		return m.OldGoalType(ctx)
	case learningmemory.FieldPlatform:
		return m.OldPlatform(ctx)
	case learningmemory.FieldNiche:
		return m.OldNiche(ctx)
	case learningmemory.FieldCampaignDurationDays:
		return m.OldCampaignDurationDays(ctx)
	case learningmemory.FieldPostingFrequency:
		return m.OldPostingFrequency(ctx)
	case learningmemory.FieldWhatWorked:
		return m.OldWhatWorked(ctx)
	case learningmemory.FieldWhatFailed:
		return m.OldWhatFailed(ctx)
	case learningmemory.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case learningmemory.FieldGoalAchievementSummary:
		return m.OldGoalAchievementSummary(ctx)
	case learningmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningmemory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningmemory.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case learningmemory.FieldGoalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalType(v)
		return nil
	case learningmemory.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case learningmemory.FieldNiche:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNiche(v)
		return nil
	case learningmemory.FieldCampaignDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignDurationDays(v)
		return nil
	case learningmemory.FieldPostingFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostingFrequency(v)
		return nil
	case learningmemory.FieldWhatWorked:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatWorked(v)
		return nil
	case learningmemory.FieldWhatFailed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatFailed(v)
		return nil
	case learningmemory.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case learningmemory.FieldGoalAchievementSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalAchievementSummary(v)
		return nil
	case learningmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningMemoryMutation) AddedFields() []string {
	var fields []string
	if m.addcampaign_duration_days != nil {
		fields = append(fields, learningmemory.FieldCampaignDurationDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningMemoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningmemory.FieldCampaignDurationDays:
		return m.AddedCampaignDurationDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningmemory.FieldCampaignDurationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCampaignDurationDays(v)
		return nil
	}
	return fmt.Errorf("unknown LearningMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningmemory.FieldPostingFrequency) {
		fields = append(fields, learningmemory.FieldPostingFrequency)
	}
	if m.FieldCleared(learningmemory.FieldGoalAchievementSummary) {
		fields = append(fields, learningmemory.FieldGoalAchievementSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningMemoryMutation) ClearField(name string) error {
	switch name {
	case learningmemory.FieldPostingFrequency:
		m.ClearPostingFrequency()
		return nil
	case learningmemory.FieldGoalAchievementSummary:
		m.ClearGoalAchievementSummary()
		return nil
	}
	return fmt.Errorf("unknown LearningMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningMemoryMutation) ResetField(name string) error {
	switch name {
	case learningmemory.FieldUserID:
		m.ResetUserID()
		return nil
	case learningmemory.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case learningmemory.FieldGoalType:
		m.ResetGoalType()
		return nil
	case learningmemory.FieldPlatform:
		m.ResetPlatform()
		return nil
	case learningmemory.FieldNiche:
		m.ResetNiche()
		return nil
	case learningmemory.FieldCampaignDurationDays:
		m.ResetCampaignDurationDays()
		return nil
	case learningmemory.FieldPostingFrequency:
		m.ResetPostingFrequency()
		return nil
	case learningmemory.FieldWhatWorked:
		m.ResetWhatWorked()
		return nil
	case learningmemory.FieldWhatFailed:
		m.ResetWhatFailed()
		return nil
	case learningmemory.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case learningmemory.FieldGoalAchievementSummary:
		m.ResetGoalAchievementSummary()
		return nil
	case learningmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, learningmemory.EdgeUser)
	}
	if m.campaign != nil {
		edges = append(edges, learningmemory.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case learningmemory.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case learningmemory.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, learningmemory.EdgeUser)
	}
	if m.clearedcampaign {
		edges = append(edges, learningmemory.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case learningmemory.EdgeUser:
		return m.cleareduser
	case learningmemory.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningMemoryMutation) ClearEdge(name string) error {
	switch name {
	case learningmemory.EdgeUser:
		m.ClearUser()
		return nil
	case learningmemory.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown LearningMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningMemoryMutation) ResetEdge(name string) error {
	switch name {
	case learningmemory.EdgeUser:
		m.ResetUser()
		return nil
	case learningmemory.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown LearningMemory edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *task.Kind
	status              *task.Status
	campaign_id         *string
	user_id             *string
	args                *map[string]interface{}
	progress            *int
	addprogress         *int
	message             *string
	result              *map[string]interface{}
	error_message       *string
	attempt             *int
	addattempt          *int
	max_attempts        *int
	addmax_attempts     *int
	not_before          *time.Time
	pod_id              *string
	last_interaction_at *time.Time
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TaskMutation) SetKind(t task.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskMutation) Kind() (r task.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKind(ctx context.Context) (v task.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *TaskMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *TaskMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCampaignID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *TaskMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[task.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *TaskMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[task.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *TaskMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, task.FieldCampaignID)
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[task.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[task.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, task.FieldUserID)
}

// SetArgs sets the "args" field.
func (m *TaskMutation) SetArgs(value map[string]interface{}) {
	m.args = &value
}

// Args returns the value of the "args" field in the mutation.
func (m *TaskMutation) Args() (r map[string]interface{}, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// ResetArgs resets all changes to the "args" field.
func (m *TaskMutation) ResetArgs() {
	m.args = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetMessage sets the "message" field.
func (m *TaskMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *TaskMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *TaskMutation) ResetMessage() {
	m.message = nil
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetAttempt sets the "attempt" field.
func (m *TaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNotBefore sets the "not_before" field.
func (m *TaskMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *TaskMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNotBefore(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ClearNotBefore clears the value of the "not_before" field.
func (m *TaskMutation) ClearNotBefore() {
	m.not_before = nil
	m.clearedFields[task.FieldNotBefore] = struct{}{}
}

// NotBeforeCleared returns if the "not_before" field was cleared in this mutation.
func (m *TaskMutation) NotBeforeCleared() bool {
	_, ok := m.clearedFields[task.FieldNotBefore]
	return ok
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *TaskMutation) ResetNotBefore() {
	m.not_before = nil
	delete(m.clearedFields, task.FieldNotBefore)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *TaskMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *TaskMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *TaskMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[task.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *TaskMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *TaskMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, task.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.kind != nil {
		fields = append(fields, task.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.campaign_id != nil {
		fields = append(fields, task.FieldCampaignID)
	}
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.args != nil {
		fields = append(fields, task.FieldArgs)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.message != nil {
		fields = append(fields, task.FieldMessage)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.attempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.not_before != nil {
		fields = append(fields, task.FieldNotBefore)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, task.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldKind:
		return m.Kind()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCampaignID:
		return m.CampaignID()
	case task.FieldUserID:
		return m.UserID()
	case task.FieldArgs:
		return m.Args()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldMessage:
		return m.Message()
	case task.FieldResult:
		return m.Result()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldAttempt:
		return m.Attempt()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldNotBefore:
		return m.NotBefore()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldKind:
		return m.OldKind(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldArgs:
		return m.OldArgs(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldMessage:
		return m.OldMessage(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldAttempt:
		return m.OldAttempt(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldKind:
		v, ok := value.(task.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addattempt != nil {
		fields = append(fields, task.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldAttempt:
		return m.AddedAttempt()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldCampaignID) {
		fields = append(fields, task.FieldCampaignID)
	}
	if m.FieldCleared(task.FieldUserID) {
		fields = append(fields, task.FieldUserID)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldNotBefore) {
		fields = append(fields, task.FieldNotBefore)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastInteractionAt) {
		fields = append(fields, task.FieldLastInteractionAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case task.FieldUserID:
		m.ClearUserID()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldNotBefore:
		m.ClearNotBefore()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldKind:
		m.ResetKind()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldArgs:
		m.ResetArgs()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldMessage:
		m.ResetMessage()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldAttempt:
		m.ResetAttempt()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	email                    *string
	external_identity_id     *string
	plan_tier                *string
	usage                    *map[string]interface{}
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	profile                  *string
	clearedprofile           bool
	campaigns                map[string]struct{}
	removedcampaigns         map[string]struct{}
	clearedcampaigns         bool
	learning_memories        map[string]struct{}
	removedlearning_memories map[string]struct{}
	clearedlearning_memories bool
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetExternalIdentityID sets the "external_identity_id" field.
func (m *UserMutation) SetExternalIdentityID(s string) {
	m.external_identity_id = &s
}

// ExternalIdentityID returns the value of the "external_identity_id" field in the mutation.
func (m *UserMutation) ExternalIdentityID() (r string, exists bool) {
	v := m.external_identity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalIdentityID returns the old "external_identity_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldExternalIdentityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalIdentityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalIdentityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalIdentityID: %w", err)
	}
	return oldValue.ExternalIdentityID, nil
}

// ClearExternalIdentityID clears the value of the "external_identity_id" field.
func (m *UserMutation) ClearExternalIdentityID() {
	m.external_identity_id = nil
	m.clearedFields[user.FieldExternalIdentityID] = struct{}{}
}

// ExternalIdentityIDCleared returns if the "external_identity_id" field was cleared in this mutation.
func (m *UserMutation) ExternalIdentityIDCleared() bool {
	_, ok := m.clearedFields[user.FieldExternalIdentityID]
	return ok
}

// ResetExternalIdentityID resets all changes to the "external_identity_id" field.
func (m *UserMutation) ResetExternalIdentityID() {
	m.external_identity_id = nil
	delete(m.clearedFields, user.FieldExternalIdentityID)
}

// SetPlanTier sets the "plan_tier" field.
func (m *UserMutation) SetPlanTier(s string) {
	m.plan_tier = &s
}

// PlanTier returns the value of the "plan_tier" field in the mutation.
func (m *UserMutation) PlanTier() (r string, exists bool) {
	v := m.plan_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanTier returns the old "plan_tier" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPlanTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanTier: %w", err)
	}
	return oldValue.PlanTier, nil
}

// ResetPlanTier resets all changes to the "plan_tier" field.
func (m *UserMutation) ResetPlanTier() {
	m.plan_tier = nil
}

// SetUsage sets the "usage" field.
func (m *UserMutation) SetUsage(value map[string]interface{}) {
	m.usage = &value
}

// Usage returns the value of the "usage" field in the mutation.
func (m *UserMutation) Usage() (r map[string]interface{}, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ResetUsage resets all changes to the "usage" field.
func (m *UserMutation) ResetUsage() {
	m.usage = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProfileID sets the "profile" edge to the CreatorProfile entity by id.
func (m *UserMutation) SetProfileID(id string) {
	m.profile = &id
}

// ClearProfile clears the "profile" edge to the CreatorProfile entity.
func (m *UserMutation) ClearProfile() {
	m.clearedprofile = true
}

// ProfileCleared reports if the "profile" edge to the CreatorProfile entity was cleared.
func (m *UserMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileID returns the "profile" edge ID in the mutation.
func (m *UserMutation) ProfileID() (id string, exists bool) {
	if m.profile != nil {
		return *m.profile, true
	}
	return
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ProfileIDs() (ids []string) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *UserMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *UserMutation) AddCampaignIDs(ids ...string) {
	if m.campaigns == nil {
		m.campaigns = make(map[string]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *UserMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *UserMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *UserMutation) RemoveCampaignIDs(ids ...string) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *UserMutation) RemovedCampaignsIDs() (ids []string) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *UserMutation) CampaignsIDs() (ids []string) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *UserMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// AddLearningMemoryIDs adds the "learning_memories" edge to the LearningMemory entity by ids.
func (m *UserMutation) AddLearningMemoryIDs(ids ...string) {
	if m.learning_memories == nil {
		m.learning_memories = make(map[string]struct{})
	}
	for i := range ids {
		m.learning_memories[ids[i]] = struct{}{}
	}
}

// ClearLearningMemories clears the "learning_memories" edge to the LearningMemory entity.
func (m *UserMutation) ClearLearningMemories() {
	m.clearedlearning_memories = true
}

// LearningMemoriesCleared reports if the "learning_memories" edge to the LearningMemory entity was cleared.
func (m *UserMutation) LearningMemoriesCleared() bool {
	return m.clearedlearning_memories
}

// RemoveLearningMemoryIDs removes the "learning_memories" edge to the LearningMemory entity by IDs.
func (m *UserMutation) RemoveLearningMemoryIDs(ids ...string) {
	if m.removedlearning_memories == nil {
		m.removedlearning_memories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.learning_memories, ids[i])
		m.removedlearning_memories[ids[i]] = struct{}{}
	}
}

// RemovedLearningMemories returns the removed IDs of the "learning_memories" edge to the LearningMemory entity.
func (m *UserMutation) RemovedLearningMemoriesIDs() (ids []string) {
	for id := range m.removedlearning_memories {
		ids = append(ids, id)
	}
	return
}

// LearningMemoriesIDs returns the "learning_memories" edge IDs in the mutation.
func (m *UserMutation) LearningMemoriesIDs() (ids []string) {
	for id := range m.learning_memories {
		ids = append(ids, id)
	}
	return
}

// ResetLearningMemories resets all changes to the "learning_memories" edge.
func (m *UserMutation) ResetLearningMemories() {
	m.learning_memories = nil
	m.clearedlearning_memories = false
	m.removedlearning_memories = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.external_identity_id != nil {
		fields = append(fields, user.FieldExternalIdentityID)
	}
	if m.plan_tier != nil {
		fields = append(fields, user.FieldPlanTier)
	}
	if m.usage != nil {
		fields = append(fields, user.FieldUsage)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldExternalIdentityID:
		return m.ExternalIdentityID()
	case user.FieldPlanTier:
		return m.PlanTier()
	case user.FieldUsage:
		return m.Usage()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldExternalIdentityID:
		return m.OldExternalIdentityID(ctx)
	case user.FieldPlanTier:
		return m.OldPlanTier(ctx)
	case user.FieldUsage:
		return m.OldUsage(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldExternalIdentityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalIdentityID(v)
		return nil
	case user.FieldPlanTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanTier(v)
		return nil
	case user.FieldUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldExternalIdentityID) {
		fields = append(fields, user.FieldExternalIdentityID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldExternalIdentityID:
		m.ClearExternalIdentityID()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldExternalIdentityID:
		m.ResetExternalIdentityID()
		return nil
	case user.FieldPlanTier:
		m.ResetPlanTier()
		return nil
	case user.FieldUsage:
		m.ResetUsage()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.profile != nil {
		edges = append(edges, user.EdgeProfile)
	}
	if m.campaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.learning_memories != nil {
		edges = append(edges, user.EdgeLearningMemories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLearningMemories:
		ids := make([]ent.Value, 0, len(m.learning_memories))
		for id := range m.learning_memories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcampaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.removedlearning_memories != nil {
		edges = append(edges, user.EdgeLearningMemories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLearningMemories:
		ids := make([]ent.Value, 0, len(m.removedlearning_memories))
		for id := range m.removedlearning_memories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprofile {
		edges = append(edges, user.EdgeProfile)
	}
	if m.clearedcampaigns {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.clearedlearning_memories {
		edges = append(edges, user.EdgeLearningMemories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeProfile:
		return m.clearedprofile
	case user.EdgeCampaigns:
		return m.clearedcampaigns
	case user.EdgeLearningMemories:
		return m.clearedlearning_memories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeProfile:
		m.ResetProfile()
		return nil
	case user.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	case user.EdgeLearningMemories:
		m.ResetLearningMemories()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	event_type       *string
	external_user_id *string
	payload          *map[string]interface{}
	processed_at     *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*WebhookEvent, error)
	predicates       []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetExternalUserID sets the "external_user_id" field.
func (m *WebhookEventMutation) SetExternalUserID(s string) {
	m.external_user_id = &s
}

// ExternalUserID returns the value of the "external_user_id" field in the mutation.
func (m *WebhookEventMutation) ExternalUserID() (r string, exists bool) {
	v := m.external_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalUserID returns the old "external_user_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldExternalUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalUserID: %w", err)
	}
	return oldValue.ExternalUserID, nil
}

// ResetExternalUserID resets all changes to the "external_user_id" field.
func (m *WebhookEventMutation) ResetExternalUserID() {
	m.external_user_id = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *WebhookEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *WebhookEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *WebhookEventMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.external_user_id != nil {
		fields = append(fields, webhookevent.FieldExternalUserID)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.processed_at != nil {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldExternalUserID:
		return m.ExternalUserID()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldExternalUserID:
		return m.OldExternalUserID(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldExternalUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalUserID(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldExternalUserID:
		m.ResetExternalUserID()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
