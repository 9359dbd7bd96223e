// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOnboardingData holds the string denoting the onboarding_data field in the database.
	FieldOnboardingData = "onboarding_data"
	// FieldProfileSnapshot holds the string denoting the profile_snapshot field in the database.
	FieldProfileSnapshot = "profile_snapshot"
	// FieldAgentContext holds the string denoting the agent_context field in the database.
	FieldAgentContext = "agent_context"
	// FieldStrategyOutput holds the string denoting the strategy_output field in the database.
	FieldStrategyOutput = "strategy_output"
	// FieldForensicsOutput holds the string denoting the forensics_output field in the database.
	FieldForensicsOutput = "forensics_output"
	// FieldCampaignPlan holds the string denoting the campaign_plan field in the database.
	FieldCampaignPlan = "campaign_plan"
	// FieldOutcomeReport holds the string denoting the outcome_report field in the database.
	FieldOutcomeReport = "outcome_report"
	// FieldLearningInsights holds the string denoting the learning_insights field in the database.
	FieldLearningInsights = "learning_insights"
	// FieldContentWarnings holds the string denoting the content_warnings field in the database.
	FieldContentWarnings = "content_warnings"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldLastAttemptedPhase holds the string denoting the last_attempted_phase field in the database.
	FieldLastAttemptedPhase = "last_attempted_phase"
	// FieldFailedStage holds the string denoting the failed_stage field in the database.
	FieldFailedStage = "failed_stage"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeDailyContents holds the string denoting the daily_contents edge name in mutations.
	EdgeDailyContents = "daily_contents"
	// EdgeDailyExecutions holds the string denoting the daily_executions edge name in mutations.
	EdgeDailyExecutions = "daily_executions"
	// EdgeLearningMemories holds the string denoting the learning_memories edge name in mutations.
	EdgeLearningMemories = "learning_memories"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// DailyContentFieldID holds the string denoting the ID field of the DailyContent.
	DailyContentFieldID = "content_id"
	// DailyExecutionFieldID holds the string denoting the ID field of the DailyExecution.
	DailyExecutionFieldID = "execution_id"
	// LearningMemoryFieldID holds the string denoting the ID field of the LearningMemory.
	LearningMemoryFieldID = "memory_id"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "campaigns"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// DailyContentsTable is the table that holds the daily_contents relation/edge.
	DailyContentsTable = "daily_contents"
	// DailyContentsInverseTable is the table name for the DailyContent entity.
	// It exists in this package in order to avoid circular dependency with the "dailycontent" package.
	DailyContentsInverseTable = "daily_contents"
	// DailyContentsColumn is the table column denoting the daily_contents relation/edge.
	DailyContentsColumn = "campaign_id"
	// DailyExecutionsTable is the table that holds the daily_executions relation/edge.
	DailyExecutionsTable = "daily_executions"
	// DailyExecutionsInverseTable is the table name for the DailyExecution entity.
	// It exists in this package in order to avoid circular dependency with the "dailyexecution" package.
	DailyExecutionsInverseTable = "daily_executions"
	// DailyExecutionsColumn is the table column denoting the daily_executions relation/edge.
	DailyExecutionsColumn = "campaign_id"
	// LearningMemoriesTable is the table that holds the learning_memories relation/edge.
	LearningMemoriesTable = "learning_memories"
	// LearningMemoriesInverseTable is the table name for the LearningMemory entity.
	// It exists in this package in order to avoid circular dependency with the "learningmemory" package.
	LearningMemoriesInverseTable = "learning_memories"
	// LearningMemoriesColumn is the table column denoting the learning_memories relation/edge.
	LearningMemoriesColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldOnboardingData,
	FieldProfileSnapshot,
	FieldAgentContext,
	FieldStrategyOutput,
	FieldForensicsOutput,
	FieldCampaignPlan,
	FieldOutcomeReport,
	FieldLearningInsights,
	FieldContentWarnings,
	FieldTaskID,
	FieldLastAttemptedPhase,
	FieldFailedStage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldArchivedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultOnboardingData holds the default value on creation for the "onboarding_data" field.
	DefaultOnboardingData map[string]interface{}
	// DefaultProfileSnapshot holds the default value on creation for the "profile_snapshot" field.
	DefaultProfileSnapshot map[string]interface{}
	// DefaultAgentContext holds the default value on creation for the "agent_context" field.
	DefaultAgentContext map[string]interface{}
	// DefaultStrategyOutput holds the default value on creation for the "strategy_output" field.
	DefaultStrategyOutput map[string]interface{}
	// DefaultForensicsOutput holds the default value on creation for the "forensics_output" field.
	DefaultForensicsOutput map[string]interface{}
	// DefaultCampaignPlan holds the default value on creation for the "campaign_plan" field.
	DefaultCampaignPlan map[string]interface{}
	// DefaultOutcomeReport holds the default value on creation for the "outcome_report" field.
	DefaultOutcomeReport map[string]interface{}
	// DefaultLearningInsights holds the default value on creation for the "learning_insights" field.
	DefaultLearningInsights map[string]interface{}
	// DefaultContentWarnings holds the default value on creation for the "content_warnings" field.
	DefaultContentWarnings []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOnboardingIncomplete is the default value of the Status enum.
const DefaultStatus = StatusOnboardingIncomplete

// Status values.
const (
	StatusOnboardingIncomplete Status = "onboarding_incomplete"
	StatusReadyToStart         Status = "ready_to_start"
	StatusProcessing           Status = "processing"
	StatusInProgress           Status = "in_progress"
	StatusGeneratingReport     Status = "generating_report"
	StatusCompleted            Status = "completed"
	StatusProcessingFailed     Status = "processing_failed"
	StatusFailed               Status = "failed"
	StatusArchivedPlanExpired  Status = "archived_plan_expired"
	StatusArchivedUserDeleted  Status = "archived_user_deleted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOnboardingIncomplete, StatusReadyToStart, StatusProcessing, StatusInProgress, StatusGeneratingReport, StatusCompleted, StatusProcessingFailed, StatusFailed, StatusArchivedPlanExpired, StatusArchivedUserDeleted:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByLastAttemptedPhase orders the results by the last_attempted_phase field.
func ByLastAttemptedPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptedPhase, opts...).ToFunc()
}

// ByFailedStage orders the results by the failed_stage field.
func ByFailedStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedStage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByDailyContentsCount orders the results by daily_contents count.
func ByDailyContentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDailyContentsStep(), opts...)
	}
}

// ByDailyContents orders the results by daily_contents terms.
func ByDailyContents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDailyContentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDailyExecutionsCount orders the results by daily_executions count.
func ByDailyExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDailyExecutionsStep(), opts...)
	}
}

// ByDailyExecutions orders the results by daily_executions terms.
func ByDailyExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDailyExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLearningMemoriesCount orders the results by learning_memories count.
func ByLearningMemoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLearningMemoriesStep(), opts...)
	}
}

// ByLearningMemories orders the results by learning_memories terms.
func ByLearningMemories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLearningMemoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newDailyContentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DailyContentsInverseTable, DailyContentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DailyContentsTable, DailyContentsColumn),
	)
}
func newDailyExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DailyExecutionsInverseTable, DailyExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DailyExecutionsTable, DailyExecutionsColumn),
	)
}
func newLearningMemoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LearningMemoriesInverseTable, LearningMemoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LearningMemoriesTable, LearningMemoriesColumn),
	)
}
