package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
// A campaign is a time-boxed growth attempt; its status field is the
// state machine value guarded by the services layer.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values(
				"onboarding_incomplete",
				"ready_to_start",
				"processing",
				"in_progress",
				"generating_report",
				"completed",
				"processing_failed",
				"failed",
				"archived_plan_expired",
				"archived_user_deleted",
			).
			Default("onboarding_incomplete"),

		// JSONB artifacts, never null (empty container default)
		field.JSON("onboarding_data", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("profile_snapshot", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			Comment("Immutable copy of the creator profile taken at creation"),
		field.JSON("agent_context", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("strategy_output", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("forensics_output", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("campaign_plan", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("outcome_report", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("learning_insights", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.JSON("content_warnings", []string{}).
			Default([]string{}),

		field.String("task_id").
			Optional().
			Nillable().
			Comment("Current task runtime binding; null when no task is live"),
		field.String("last_attempted_phase").
			Optional().
			Nillable().
			Comment("'workflow' or 'outcome'; read by retry"),
		field.String("failed_stage").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("archived_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("campaigns").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("daily_contents", DailyContent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("daily_executions", DailyExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("learning_memories", LearningMemory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("user_id", "status"),
	}
}
