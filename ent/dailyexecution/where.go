// Code generated by ent, DO NOT EDIT.

package dailyexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorloop/looper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldCampaignID, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldDayNumber, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPlatform, v))
}

// PostedToYoutube applies equality check predicate on the "posted_to_youtube" field. It's identical to PostedToYoutubeEQ.
func PostedToYoutube(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPostedToYoutube, v))
}

// PostedToTwitter applies equality check predicate on the "posted_to_twitter" field. It's identical to PostedToTwitterEQ.
func PostedToTwitter(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPostedToTwitter, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldExecutedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldContainsFold(FieldCampaignID, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldDayNumber, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldContainsFold(FieldPlatform, v))
}

// PostedToYoutubeEQ applies the EQ predicate on the "posted_to_youtube" field.
func PostedToYoutubeEQ(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPostedToYoutube, v))
}

// PostedToYoutubeNEQ applies the NEQ predicate on the "posted_to_youtube" field.
func PostedToYoutubeNEQ(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldPostedToYoutube, v))
}

// PostedToTwitterEQ applies the EQ predicate on the "posted_to_twitter" field.
func PostedToTwitterEQ(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldPostedToTwitter, v))
}

// PostedToTwitterNEQ applies the NEQ predicate on the "posted_to_twitter" field.
func PostedToTwitterNEQ(v bool) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldPostedToTwitter, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldExecutedAt, v))
}

// ExecutedAtIsNil applies the IsNil predicate on the "executed_at" field.
func ExecutedAtIsNil() predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIsNull(FieldExecutedAt))
}

// ExecutedAtNotNil applies the NotNil predicate on the "executed_at" field.
func ExecutedAtNotNil() predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotNull(FieldExecutedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DailyExecution {
	return predicate.DailyExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.DailyExecution {
	return predicate.DailyExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.DailyExecution {
	return predicate.DailyExecution(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyExecution) predicate.DailyExecution {
	return predicate.DailyExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyExecution) predicate.DailyExecution {
	return predicate.DailyExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyExecution) predicate.DailyExecution {
	return predicate.DailyExecution(sql.NotPredicates(p))
}
