// Code generated by ent, DO NOT EDIT.

package dailycontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dailycontent type in the database.
	Label = "daily_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldScript holds the string denoting the script field in the database.
	FieldScript = "script"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSeoTags holds the string denoting the seo_tags field in the database.
	FieldSeoTags = "seo_tags"
	// FieldCta holds the string denoting the cta field in the database.
	FieldCta = "cta"
	// FieldTweet holds the string denoting the tweet field in the database.
	FieldTweet = "tweet"
	// FieldThread holds the string denoting the thread field in the database.
	FieldThread = "thread"
	// FieldThumbnailUrls holds the string denoting the thumbnail_urls field in the database.
	FieldThumbnailUrls = "thumbnail_urls"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// Table holds the table name of the dailycontent in the database.
	Table = "daily_contents"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "daily_contents"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
)

// Columns holds all SQL columns for dailycontent fields.
var Columns = []string{
	FieldID,
	FieldCampaignID,
	FieldDayNumber,
	FieldPlatform,
	FieldScript,
	FieldTitle,
	FieldSeoTags,
	FieldCta,
	FieldTweet,
	FieldThread,
	FieldThumbnailUrls,
	FieldReasoning,
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
	// DefaultSeoTags holds the default value on creation for the "seo_tags" field.
	DefaultSeoTags []string
	// DefaultThread holds the default value on creation for the "thread" field.
	DefaultThread []string
	// DefaultThumbnailUrls holds the default value on creation for the "thumbnail_urls" field.
	DefaultThumbnailUrls map[string]string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyContent queries.
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

// ByScript orders the results by the script field.
func ByScript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScript, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCta orders the results by the cta field.
func ByCta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCta, opts...).ToFunc()
}

// ByTweet orders the results by the tweet field.
func ByTweet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTweet, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
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
