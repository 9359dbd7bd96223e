// Code generated by ent, DO NOT EDIT.

package learningmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the learningmemory type in the database.
	Label = "learning_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldGoalType holds the string denoting the goal_type field in the database.
	FieldGoalType = "goal_type"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldNiche holds the string denoting the niche field in the database.
	FieldNiche = "niche"
	// FieldCampaignDurationDays holds the string denoting the campaign_duration_days field in the database.
	FieldCampaignDurationDays = "campaign_duration_days"
	// FieldPostingFrequency holds the string denoting the posting_frequency field in the database.
	FieldPostingFrequency = "posting_frequency"
	// FieldWhatWorked holds the string denoting the what_worked field in the database.
	FieldWhatWorked = "what_worked"
	// FieldWhatFailed holds the string denoting the what_failed field in the database.
	FieldWhatFailed = "what_failed"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldGoalAchievementSummary holds the string denoting the goal_achievement_summary field in the database.
	FieldGoalAchievementSummary = "goal_achievement_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// Table holds the table name of the learningmemory in the database.
	Table = "learning_memories"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "learning_memories"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "learning_memories"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
)

// Columns holds all SQL columns for learningmemory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCampaignID,
	FieldGoalType,
	FieldPlatform,
	FieldNiche,
	FieldCampaignDurationDays,
	FieldPostingFrequency,
	FieldWhatWorked,
	FieldWhatFailed,
	FieldRecommendations,
	FieldGoalAchievementSummary,
	FieldCreatedAt,
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
	// DefaultWhatWorked holds the default value on creation for the "what_worked" field.
	DefaultWhatWorked []string
	// DefaultWhatFailed holds the default value on creation for the "what_failed" field.
	DefaultWhatFailed []string
	// DefaultRecommendations holds the default value on creation for the "recommendations" field.
	DefaultRecommendations []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearningMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByGoalType orders the results by the goal_type field.
func ByGoalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalType, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByNiche orders the results by the niche field.
func ByNiche(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNiche, opts...).ToFunc()
}

// ByCampaignDurationDays orders the results by the campaign_duration_days field.
func ByCampaignDurationDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignDurationDays, opts...).ToFunc()
}

// ByPostingFrequency orders the results by the posting_frequency field.
func ByPostingFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostingFrequency, opts...).ToFunc()
}

// ByGoalAchievementSummary orders the results by the goal_achievement_summary field.
func ByGoalAchievementSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalAchievementSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, CampaignFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
