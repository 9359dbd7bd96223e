// Code generated by ent, DO NOT EDIT.

package learningmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorloop/looper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldUserID, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCampaignID, v))
}

// GoalType applies equality check predicate on the "goal_type" field. It's identical to GoalTypeEQ.
func GoalType(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldGoalType, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldPlatform, v))
}

// Niche applies equality check predicate on the "niche" field. It's identical to NicheEQ.
func Niche(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldNiche, v))
}

// CampaignDurationDays applies equality check predicate on the "campaign_duration_days" field. It's identical to CampaignDurationDaysEQ.
func CampaignDurationDays(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCampaignDurationDays, v))
}

// PostingFrequency applies equality check predicate on the "posting_frequency" field. It's identical to PostingFrequencyEQ.
func PostingFrequency(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldPostingFrequency, v))
}

// GoalAchievementSummary applies equality check predicate on the "goal_achievement_summary" field. It's identical to GoalAchievementSummaryEQ.
func GoalAchievementSummary(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldGoalAchievementSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldUserID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldCampaignID, v))
}

// GoalTypeEQ applies the EQ predicate on the "goal_type" field.
func GoalTypeEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldGoalType, v))
}

// GoalTypeNEQ applies the NEQ predicate on the "goal_type" field.
func GoalTypeNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldGoalType, v))
}

// GoalTypeIn applies the In predicate on the "goal_type" field.
func GoalTypeIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldGoalType, vs...))
}

// GoalTypeNotIn applies the NotIn predicate on the "goal_type" field.
func GoalTypeNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldGoalType, vs...))
}

// GoalTypeGT applies the GT predicate on the "goal_type" field.
func GoalTypeGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldGoalType, v))
}

// GoalTypeGTE applies the GTE predicate on the "goal_type" field.
func GoalTypeGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldGoalType, v))
}

// GoalTypeLT applies the LT predicate on the "goal_type" field.
func GoalTypeLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldGoalType, v))
}

// GoalTypeLTE applies the LTE predicate on the "goal_type" field.
func GoalTypeLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldGoalType, v))
}

// GoalTypeContains applies the Contains predicate on the "goal_type" field.
func GoalTypeContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldGoalType, v))
}

// GoalTypeHasPrefix applies the HasPrefix predicate on the "goal_type" field.
func GoalTypeHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldGoalType, v))
}

// GoalTypeHasSuffix applies the HasSuffix predicate on the "goal_type" field.
func GoalTypeHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldGoalType, v))
}

// GoalTypeEqualFold applies the EqualFold predicate on the "goal_type" field.
func GoalTypeEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldGoalType, v))
}

// GoalTypeContainsFold applies the ContainsFold predicate on the "goal_type" field.
func GoalTypeContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldGoalType, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldPlatform, v))
}

// NicheEQ applies the EQ predicate on the "niche" field.
func NicheEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldNiche, v))
}

// NicheNEQ applies the NEQ predicate on the "niche" field.
func NicheNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldNiche, v))
}

// NicheIn applies the In predicate on the "niche" field.
func NicheIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldNiche, vs...))
}

// NicheNotIn applies the NotIn predicate on the "niche" field.
func NicheNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldNiche, vs...))
}

// NicheGT applies the GT predicate on the "niche" field.
func NicheGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldNiche, v))
}

// NicheGTE applies the GTE predicate on the "niche" field.
func NicheGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldNiche, v))
}

// NicheLT applies the LT predicate on the "niche" field.
func NicheLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldNiche, v))
}

// NicheLTE applies the LTE predicate on the "niche" field.
func NicheLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldNiche, v))
}

// NicheContains applies the Contains predicate on the "niche" field.
func NicheContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldNiche, v))
}

// NicheHasPrefix applies the HasPrefix predicate on the "niche" field.
func NicheHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldNiche, v))
}

// NicheHasSuffix applies the HasSuffix predicate on the "niche" field.
func NicheHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldNiche, v))
}

// NicheEqualFold applies the EqualFold predicate on the "niche" field.
func NicheEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldNiche, v))
}

// NicheContainsFold applies the ContainsFold predicate on the "niche" field.
func NicheContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldNiche, v))
}

// CampaignDurationDaysEQ applies the EQ predicate on the "campaign_duration_days" field.
func CampaignDurationDaysEQ(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCampaignDurationDays, v))
}

// CampaignDurationDaysNEQ applies the NEQ predicate on the "campaign_duration_days" field.
func CampaignDurationDaysNEQ(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldCampaignDurationDays, v))
}

// CampaignDurationDaysIn applies the In predicate on the "campaign_duration_days" field.
func CampaignDurationDaysIn(vs ...int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldCampaignDurationDays, vs...))
}

// CampaignDurationDaysNotIn applies the NotIn predicate on the "campaign_duration_days" field.
func CampaignDurationDaysNotIn(vs ...int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldCampaignDurationDays, vs...))
}

// CampaignDurationDaysGT applies the GT predicate on the "campaign_duration_days" field.
func CampaignDurationDaysGT(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldCampaignDurationDays, v))
}

// CampaignDurationDaysGTE applies the GTE predicate on the "campaign_duration_days" field.
func CampaignDurationDaysGTE(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldCampaignDurationDays, v))
}

// CampaignDurationDaysLT applies the LT predicate on the "campaign_duration_days" field.
func CampaignDurationDaysLT(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldCampaignDurationDays, v))
}

// CampaignDurationDaysLTE applies the LTE predicate on the "campaign_duration_days" field.
func CampaignDurationDaysLTE(v int) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldCampaignDurationDays, v))
}

// PostingFrequencyEQ applies the EQ predicate on the "posting_frequency" field.
func PostingFrequencyEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldPostingFrequency, v))
}

// PostingFrequencyNEQ applies the NEQ predicate on the "posting_frequency" field.
func PostingFrequencyNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldPostingFrequency, v))
}

// PostingFrequencyIn applies the In predicate on the "posting_frequency" field.
func PostingFrequencyIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldPostingFrequency, vs...))
}

// PostingFrequencyNotIn applies the NotIn predicate on the "posting_frequency" field.
func PostingFrequencyNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldPostingFrequency, vs...))
}

// PostingFrequencyGT applies the GT predicate on the "posting_frequency" field.
func PostingFrequencyGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldPostingFrequency, v))
}

// PostingFrequencyGTE applies the GTE predicate on the "posting_frequency" field.
func PostingFrequencyGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldPostingFrequency, v))
}

// PostingFrequencyLT applies the LT predicate on the "posting_frequency" field.
func PostingFrequencyLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldPostingFrequency, v))
}

// PostingFrequencyLTE applies the LTE predicate on the "posting_frequency" field.
func PostingFrequencyLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldPostingFrequency, v))
}

// PostingFrequencyContains applies the Contains predicate on the "posting_frequency" field.
func PostingFrequencyContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldPostingFrequency, v))
}

// PostingFrequencyHasPrefix applies the HasPrefix predicate on the "posting_frequency" field.
func PostingFrequencyHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldPostingFrequency, v))
}

// PostingFrequencyHasSuffix applies the HasSuffix predicate on the "posting_frequency" field.
func PostingFrequencyHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldPostingFrequency, v))
}

// PostingFrequencyIsNil applies the IsNil predicate on the "posting_frequency" field.
func PostingFrequencyIsNil() predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIsNull(FieldPostingFrequency))
}

// PostingFrequencyNotNil applies the NotNil predicate on the "posting_frequency" field.
func PostingFrequencyNotNil() predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotNull(FieldPostingFrequency))
}

// PostingFrequencyEqualFold applies the EqualFold predicate on the "posting_frequency" field.
func PostingFrequencyEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldPostingFrequency, v))
}

// PostingFrequencyContainsFold applies the ContainsFold predicate on the "posting_frequency" field.
func PostingFrequencyContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldPostingFrequency, v))
}

// GoalAchievementSummaryEQ applies the EQ predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryNEQ applies the NEQ predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryNEQ(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryIn applies the In predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldGoalAchievementSummary, vs...))
}

// GoalAchievementSummaryNotIn applies the NotIn predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryNotIn(vs ...string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldGoalAchievementSummary, vs...))
}

// GoalAchievementSummaryGT applies the GT predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryGT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryGTE applies the GTE predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryGTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryLT applies the LT predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryLT(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryLTE applies the LTE predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryLTE(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryContains applies the Contains predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryContains(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContains(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryHasPrefix applies the HasPrefix predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryHasPrefix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasPrefix(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryHasSuffix applies the HasSuffix predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryHasSuffix(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldHasSuffix(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryIsNil applies the IsNil predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryIsNil() predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIsNull(FieldGoalAchievementSummary))
}

// GoalAchievementSummaryNotNil applies the NotNil predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryNotNil() predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotNull(FieldGoalAchievementSummary))
}

// GoalAchievementSummaryEqualFold applies the EqualFold predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryEqualFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEqualFold(FieldGoalAchievementSummary, v))
}

// GoalAchievementSummaryContainsFold applies the ContainsFold predicate on the "goal_achievement_summary" field.
func GoalAchievementSummaryContainsFold(v string) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldContainsFold(FieldGoalAchievementSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningMemory {
	return predicate.LearningMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.LearningMemory {
	return predicate.LearningMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.LearningMemory {
	return predicate.LearningMemory(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.LearningMemory {
	return predicate.LearningMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.LearningMemory {
	return predicate.LearningMemory(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningMemory) predicate.LearningMemory {
	return predicate.LearningMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningMemory) predicate.LearningMemory {
	return predicate.LearningMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningMemory) predicate.LearningMemory {
	return predicate.LearningMemory(sql.NotPredicates(p))
}
