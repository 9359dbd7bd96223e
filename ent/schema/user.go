package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Users are created by the webhook ledger (or the auth middleware racing it),
// never by self-service signup.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("external_identity_id").
			Optional().
			Nillable().
			Comment("ID from the external identity provider"),
		field.String("plan_tier").
			Default("free"),
		field.JSON("usage", map[string]interface{}{}).
			Default(map[string]interface{}{}).
			Comment("Usage counters seeded at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("profile", CreatorProfile.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("campaigns", Campaign.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("learning_memories", LearningMemory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_identity_id"),
	}
}
