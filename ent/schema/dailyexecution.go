package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyExecution holds the schema definition for the DailyExecution entity.
// Records user-confirmed posting per (campaign, day, platform).
type DailyExecution struct {
	ent.Schema
}

// Fields of the DailyExecution.
func (DailyExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Int("day_number").
			Min(1).
			Max(30),
		field.String("platform"),
		field.Bool("posted_to_youtube").
			Default(false),
		field.Bool("posted_to_twitter").
			Default(false),
		field.Time("executed_at").
			Optional().
			Nillable().
			Comment("When the user confirmed posting for this day"),
		field.JSON("engagement_metrics", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DailyExecution.
func (DailyExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("daily_executions").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DailyExecution.
func (DailyExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "day_number", "platform").
			Unique(),
	}
}
