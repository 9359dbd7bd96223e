// Code generated by ent, DO NOT EDIT.

package creatorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the creatorprofile type in the database.
	Label = "creator_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "profile_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCreatorType holds the string denoting the creator_type field in the database.
	FieldCreatorType = "creator_type"
	// FieldNiche holds the string denoting the niche field in the database.
	FieldNiche = "niche"
	// FieldTargetAudienceNiche holds the string denoting the target_audience_niche field in the database.
	FieldTargetAudienceNiche = "target_audience_niche"
	// FieldExistingPlatforms holds the string denoting the existing_platforms field in the database.
	FieldExistingPlatforms = "existing_platforms"
	// FieldPlatformUrls holds the string denoting the platform_urls field in the database.
	FieldPlatformUrls = "platform_urls"
	// FieldUniqueAngle holds the string denoting the unique_angle field in the database.
	FieldUniqueAngle = "unique_angle"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldTargetPlatforms holds the string denoting the target_platforms field in the database.
	FieldTargetPlatforms = "target_platforms"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldAudienceDemographics holds the string denoting the audience_demographics field in the database.
	FieldAudienceDemographics = "audience_demographics"
	// FieldCompetitorAccounts holds the string denoting the competitor_accounts field in the database.
	FieldCompetitorAccounts = "competitor_accounts"
	// FieldExistingAssets holds the string denoting the existing_assets field in the database.
	FieldExistingAssets = "existing_assets"
	// FieldMotivation holds the string denoting the motivation field in the database.
	FieldMotivation = "motivation"
	// FieldPhase2Completed holds the string denoting the phase2_completed field in the database.
	FieldPhase2Completed = "phase2_completed"
	// FieldAgentContext holds the string denoting the agent_context field in the database.
	FieldAgentContext = "agent_context"
	// FieldRecommendedFrequency holds the string denoting the recommended_frequency field in the database.
	FieldRecommendedFrequency = "recommended_frequency"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the creatorprofile in the database.
	Table = "creator_profiles"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "creator_profiles"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for creatorprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldCreatorType,
	FieldNiche,
	FieldTargetAudienceNiche,
	FieldExistingPlatforms,
	FieldPlatformUrls,
	FieldUniqueAngle,
	FieldPurpose,
	FieldStrengths,
	FieldTargetPlatforms,
	FieldTopics,
	FieldAudienceDemographics,
	FieldCompetitorAccounts,
	FieldExistingAssets,
	FieldMotivation,
	FieldPhase2Completed,
	FieldAgentContext,
	FieldRecommendedFrequency,
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
	// DefaultExistingPlatforms holds the default value on creation for the "existing_platforms" field.
	DefaultExistingPlatforms []string
	// DefaultPlatformUrls holds the default value on creation for the "platform_urls" field.
	DefaultPlatformUrls map[string]string
	// DefaultStrengths holds the default value on creation for the "strengths" field.
	DefaultStrengths []string
	// DefaultTargetPlatforms holds the default value on creation for the "target_platforms" field.
	DefaultTargetPlatforms []string
	// DefaultTopics holds the default value on creation for the "topics" field.
	DefaultTopics []string
	// DefaultAudienceDemographics holds the default value on creation for the "audience_demographics" field.
	DefaultAudienceDemographics map[string]interface{}
	// DefaultCompetitorAccounts holds the default value on creation for the "competitor_accounts" field.
	DefaultCompetitorAccounts map[string][]string
	// DefaultExistingAssets holds the default value on creation for the "existing_assets" field.
	DefaultExistingAssets []string
	// DefaultPhase2Completed holds the default value on creation for the "phase2_completed" field.
	DefaultPhase2Completed bool
	// DefaultAgentContext holds the default value on creation for the "agent_context" field.
	DefaultAgentContext map[string]interface{}
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CreatorProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatorType orders the results by the creator_type field.
func ByCreatorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorType, opts...).ToFunc()
}

// ByNiche orders the results by the niche field.
func ByNiche(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNiche, opts...).ToFunc()
}

// ByTargetAudienceNiche orders the results by the target_audience_niche field.
func ByTargetAudienceNiche(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAudienceNiche, opts...).ToFunc()
}

// ByUniqueAngle orders the results by the unique_angle field.
func ByUniqueAngle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueAngle, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByMotivation orders the results by the motivation field.
func ByMotivation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotivation, opts...).ToFunc()
}

// ByPhase2Completed orders the results by the phase2_completed field.
func ByPhase2Completed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase2Completed, opts...).ToFunc()
}

// ByRecommendedFrequency orders the results by the recommended_frequency field.
func ByRecommendedFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedFrequency, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
