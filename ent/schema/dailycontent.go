package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyContent holds the schema definition for the DailyContent entity.
// One row per (campaign, day, platform); the Content stage upserts by that key.
type DailyContent struct {
	ent.Schema
}

// Fields of the DailyContent.
func (DailyContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Int("day_number").
			Min(1).
			Max(30),
		field.String("platform"),

		// YouTube shape
		field.Text("script").
			Optional(),
		field.String("title").
			Optional(),
		field.JSON("seo_tags", []string{}).
			Default([]string{}),
		field.String("cta").
			Optional(),

		// Twitter shape
		field.Text("tweet").
			Optional(),
		field.JSON("thread", []string{}).
			Default([]string{}),

		field.JSON("thumbnail_urls", map[string]string{}).
			Default(map[string]string{}),
		field.Text("reasoning").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DailyContent.
func (DailyContent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("daily_contents").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DailyContent.
func (DailyContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "day_number", "platform").
			Unique(),
	}
}
