// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorloop/looper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// ExternalIdentityID applies equality check predicate on the "external_identity_id" field. It's identical to ExternalIdentityIDEQ.
func ExternalIdentityID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldExternalIdentityID, v))
}

// PlanTier applies equality check predicate on the "plan_tier" field. It's identical to PlanTierEQ.
func PlanTier(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPlanTier, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// ExternalIdentityIDEQ applies the EQ predicate on the "external_identity_id" field.
func ExternalIdentityIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldExternalIdentityID, v))
}

// ExternalIdentityIDNEQ applies the NEQ predicate on the "external_identity_id" field.
func ExternalIdentityIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldExternalIdentityID, v))
}

// ExternalIdentityIDIn applies the In predicate on the "external_identity_id" field.
func ExternalIdentityIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldExternalIdentityID, vs...))
}

// ExternalIdentityIDNotIn applies the NotIn predicate on the "external_identity_id" field.
func ExternalIdentityIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldExternalIdentityID, vs...))
}

// ExternalIdentityIDGT applies the GT predicate on the "external_identity_id" field.
func ExternalIdentityIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldExternalIdentityID, v))
}

// ExternalIdentityIDGTE applies the GTE predicate on the "external_identity_id" field.
func ExternalIdentityIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldExternalIdentityID, v))
}

// ExternalIdentityIDLT applies the LT predicate on the "external_identity_id" field.
func ExternalIdentityIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldExternalIdentityID, v))
}

// ExternalIdentityIDLTE applies the LTE predicate on the "external_identity_id" field.
func ExternalIdentityIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldExternalIdentityID, v))
}

// ExternalIdentityIDContains applies the Contains predicate on the "external_identity_id" field.
func ExternalIdentityIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldExternalIdentityID, v))
}

// ExternalIdentityIDHasPrefix applies the HasPrefix predicate on the "external_identity_id" field.
func ExternalIdentityIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldExternalIdentityID, v))
}

// ExternalIdentityIDHasSuffix applies the HasSuffix predicate on the "external_identity_id" field.
func ExternalIdentityIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldExternalIdentityID, v))
}

// ExternalIdentityIDIsNil applies the IsNil predicate on the "external_identity_id" field.
func ExternalIdentityIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldExternalIdentityID))
}

// ExternalIdentityIDNotNil applies the NotNil predicate on the "external_identity_id" field.
func ExternalIdentityIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldExternalIdentityID))
}

// ExternalIdentityIDEqualFold applies the EqualFold predicate on the "external_identity_id" field.
func ExternalIdentityIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldExternalIdentityID, v))
}

// ExternalIdentityIDContainsFold applies the ContainsFold predicate on the "external_identity_id" field.
func ExternalIdentityIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldExternalIdentityID, v))
}

// PlanTierEQ applies the EQ predicate on the "plan_tier" field.
func PlanTierEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPlanTier, v))
}

// PlanTierNEQ applies the NEQ predicate on the "plan_tier" field.
func PlanTierNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPlanTier, v))
}

// PlanTierIn applies the In predicate on the "plan_tier" field.
func PlanTierIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPlanTier, vs...))
}

// PlanTierNotIn applies the NotIn predicate on the "plan_tier" field.
func PlanTierNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPlanTier, vs...))
}

// PlanTierGT applies the GT predicate on the "plan_tier" field.
func PlanTierGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPlanTier, v))
}

// PlanTierGTE applies the GTE predicate on the "plan_tier" field.
func PlanTierGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPlanTier, v))
}

// PlanTierLT applies the LT predicate on the "plan_tier" field.
func PlanTierLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPlanTier, v))
}

// PlanTierLTE applies the LTE predicate on the "plan_tier" field.
func PlanTierLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPlanTier, v))
}

// PlanTierContains applies the Contains predicate on the "plan_tier" field.
func PlanTierContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPlanTier, v))
}

// PlanTierHasPrefix applies the HasPrefix predicate on the "plan_tier" field.
func PlanTierHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPlanTier, v))
}

// PlanTierHasSuffix applies the HasSuffix predicate on the "plan_tier" field.
func PlanTierHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPlanTier, v))
}

// PlanTierEqualFold applies the EqualFold predicate on the "plan_tier" field.
func PlanTierEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPlanTier, v))
}

// PlanTierContainsFold applies the ContainsFold predicate on the "plan_tier" field.
func PlanTierContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPlanTier, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.CreatorProfile) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaigns applies the HasEdge predicate on the "campaigns" edge.
func HasCampaigns() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CampaignsTable, CampaignsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignsWith applies the HasEdge predicate on the "campaigns" edge with a given conditions (other predicates).
func HasCampaignsWith(preds ...predicate.Campaign) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newCampaignsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLearningMemories applies the HasEdge predicate on the "learning_memories" edge.
func HasLearningMemories() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LearningMemoriesTable, LearningMemoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLearningMemoriesWith applies the HasEdge predicate on the "learning_memories" edge with a given conditions (other predicates).
func HasLearningMemoriesWith(preds ...predicate.LearningMemory) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newLearningMemoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
