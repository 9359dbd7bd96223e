// Code generated by ent, DO NOT EDIT.

package dailyexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dailyexecution type in the database.
	Label = "daily_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldPostedToYoutube holds the string denoting the posted_to_youtube field in the database.
	FieldPostedToYoutube = "posted_to_youtube"
	// FieldPostedToTwitter holds the string denoting the posted_to_twitter field in the database.
	FieldPostedToTwitter = "posted_to_twitter"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// FieldEngagementMetrics holds the string denoting the engagement_metrics field in the database.
	FieldEngagementMetrics = "engagement_metrics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// Table holds the table name of the dailyexecution in the database.
	Table = "daily_executions"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "daily_executions"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
)

// Columns holds all SQL columns for dailyexecution fields.
var Columns = []string{
	FieldID,
	FieldCampaignID,
	FieldDayNumber,
	FieldPlatform,
	FieldPostedToYoutube,
	FieldPostedToTwitter,
	FieldExecutedAt,
	FieldEngagementMetrics,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	DayNumberValidator func(int) error
	// DefaultPostedToYoutube holds the default value on creation for the "posted_to_youtube" field.
	DefaultPostedToYoutube bool
	// DefaultPostedToTwitter holds the default value on creation for the "posted_to_twitter" field.
	DefaultPostedToTwitter bool
	// DefaultEngagementMetrics holds the default value on creation for the "engagement_metrics" field.
	DefaultEngagementMetrics map[string]interface{}
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByDayNumber orders the results by the day_number field.
func ByDayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayNumber, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByPostedToYoutube orders the results by the posted_to_youtube field.
func ByPostedToYoutube(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedToYoutube, opts...).ToFunc()
}

// ByPostedToTwitter orders the results by the posted_to_twitter field.
func ByPostedToTwitter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedToTwitter, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, CampaignFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
