package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// Tasks are the durable queue: rows are claimed with FOR UPDATE SKIP LOCKED,
// heartbeated via last_interaction_at, and acknowledged by writing a
// terminal status.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("run_campaign_workflow", "analyze_campaign_outcome", "analyze_previous_campaigns").
			Immutable(),
		field.Enum("status").
			Values("pending", "started", "success", "failure", "retry", "revoked").
			Default("pending"),
		field.String("campaign_id").
			Optional().
			Nillable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.JSON("args", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			Comment("Task-kind specific arguments, e.g. actual_metrics"),

		field.Int("progress").
			Default(0).
			Min(0).
			Max(100),
		field.String("message").
			Default(""),
		field.JSON("result", map[string]interface{}{}).
			Default(map[string]interface{}{}),
		field.String("error_message").
			Optional().
			Nillable(),

		field.Int("attempt").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("not_before").
			Optional().
			Nillable().
			Comment("Retry rows are re-claimed only once this passes"),

		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "not_before"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("campaign_id"),
	}
}
