package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// CreatorProfile holds the schema definition for the CreatorProfile entity.
// One profile per user, keyed by the owning user's ID.
type CreatorProfile struct {
	ent.Schema
}

// Fields of the CreatorProfile.
func (CreatorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("profile_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),

		// Phase 1 (required for onboarding completion)
		field.String("name"),
		field.String("creator_type"),
		field.String("niche"),
		field.String("target_audience_niche"),
		field.JSON("existing_platforms", []string{}).
			Default([]string{}),
		field.JSON("platform_urls", map[string]string{}).
			Default(map[string]string{}),

		// Phase 2 (optional enrichment)
		field.String("unique_angle").
			Optional().
			Nillable(),
		field.String("purpose").
			Optional().
			Nillable(),
		field.JSON("strengths", []string{}).
			Default([]string{}),
		field.JSON("target_platforms", []string{}).
			Default([]string{}),
		field.JSON("topics", []string{}).
			Default([]string{}),
		field.JSON("audience_demographics", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("competitor_accounts", map[string][]string{}).
			Default(map[string][]string{}).
			Comment("platform -> competitor URLs"),
		field.JSON("existing_assets", []string{}).
			Default([]string{}),
		field.String("motivation").
			Optional().
			Nillable(),
		field.Bool("phase2_completed").
			Default(false),

		// Derived by the context-analysis stage
		field.JSON("agent_context", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.String("recommended_frequency").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CreatorProfile.
func (CreatorProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("profile").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}
