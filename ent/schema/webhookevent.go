package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Append-only idempotency ledger for identity-provider events. The primary
// key is the provider's event ID, so a replayed delivery hits a constraint
// instead of mutating state twice.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.String("external_user_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			Immutable(),
		field.Time("processed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_user_id", "event_type", "processed_at"),
	}
}
