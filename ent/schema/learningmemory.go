package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningMemory holds the schema definition for the LearningMemory entity.
// Immutable once written; created in the same transaction that completes
// the owning campaign.
type LearningMemory struct {
	ent.Schema
}

// Fields of the LearningMemory.
func (LearningMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("goal_type").
			Immutable(),
		field.String("platform").
			Immutable(),
		field.String("niche").
			Immutable(),
		field.Int("campaign_duration_days").
			Immutable(),
		field.String("posting_frequency").
			Optional().
			Immutable(),
		field.JSON("what_worked", []string{}).
			Default([]string{}).
			Immutable(),
		field.JSON("what_failed", []string{}).
			Default([]string{}).
			Immutable(),
		field.JSON("recommendations", []string{}).
			Default([]string{}).
			Immutable(),
		field.Text("goal_achievement_summary").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LearningMemory.
func (LearningMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("learning_memories").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("campaign", Campaign.Type).
			Ref("learning_memories").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LearningMemory.
func (LearningMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "goal_type", "platform", "niche"),
		index.Fields("user_id", "created_at"),
	}
}
