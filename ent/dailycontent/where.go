// Code generated by ent, DO NOT EDIT.

package dailycontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorloop/looper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCampaignID, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldDayNumber, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldPlatform, v))
}

// Script applies equality check predicate on the "script" field. It's identical to ScriptEQ.
func Script(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldScript, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldTitle, v))
}

// Cta applies equality check predicate on the "cta" field. It's identical to CtaEQ.
func Cta(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCta, v))
}

// Tweet applies equality check predicate on the "tweet" field. It's identical to TweetEQ.
func Tweet(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldTweet, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldReasoning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldCampaignID, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldDayNumber, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldPlatform, v))
}

// ScriptEQ applies the EQ predicate on the "script" field.
func ScriptEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldScript, v))
}

// ScriptNEQ applies the NEQ predicate on the "script" field.
func ScriptNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldScript, v))
}

// ScriptIn applies the In predicate on the "script" field.
func ScriptIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldScript, vs...))
}

// ScriptNotIn applies the NotIn predicate on the "script" field.
func ScriptNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldScript, vs...))
}

// ScriptGT applies the GT predicate on the "script" field.
func ScriptGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldScript, v))
}

// ScriptGTE applies the GTE predicate on the "script" field.
func ScriptGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldScript, v))
}

// ScriptLT applies the LT predicate on the "script" field.
func ScriptLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldScript, v))
}

// ScriptLTE applies the LTE predicate on the "script" field.
func ScriptLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldScript, v))
}

// ScriptContains applies the Contains predicate on the "script" field.
func ScriptContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldScript, v))
}

// ScriptHasPrefix applies the HasPrefix predicate on the "script" field.
func ScriptHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldScript, v))
}

// ScriptHasSuffix applies the HasSuffix predicate on the "script" field.
func ScriptHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldScript, v))
}

// ScriptIsNil applies the IsNil predicate on the "script" field.
func ScriptIsNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIsNull(FieldScript))
}

// ScriptNotNil applies the NotNil predicate on the "script" field.
func ScriptNotNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotNull(FieldScript))
}

// ScriptEqualFold applies the EqualFold predicate on the "script" field.
func ScriptEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldScript, v))
}

// ScriptContainsFold applies the ContainsFold predicate on the "script" field.
func ScriptContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldScript, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldTitle, v))
}

// CtaEQ applies the EQ predicate on the "cta" field.
func CtaEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCta, v))
}

// CtaNEQ applies the NEQ predicate on the "cta" field.
func CtaNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldCta, v))
}

// CtaIn applies the In predicate on the "cta" field.
func CtaIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldCta, vs...))
}

// CtaNotIn applies the NotIn predicate on the "cta" field.
func CtaNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldCta, vs...))
}

// CtaGT applies the GT predicate on the "cta" field.
func CtaGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldCta, v))
}

// CtaGTE applies the GTE predicate on the "cta" field.
func CtaGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldCta, v))
}

// CtaLT applies the LT predicate on the "cta" field.
func CtaLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldCta, v))
}

// CtaLTE applies the LTE predicate on the "cta" field.
func CtaLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldCta, v))
}

// CtaContains applies the Contains predicate on the "cta" field.
func CtaContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldCta, v))
}

// CtaHasPrefix applies the HasPrefix predicate on the "cta" field.
func CtaHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldCta, v))
}

// CtaHasSuffix applies the HasSuffix predicate on the "cta" field.
func CtaHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldCta, v))
}

// CtaIsNil applies the IsNil predicate on the "cta" field.
func CtaIsNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIsNull(FieldCta))
}

// CtaNotNil applies the NotNil predicate on the "cta" field.
func CtaNotNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotNull(FieldCta))
}

// CtaEqualFold applies the EqualFold predicate on the "cta" field.
func CtaEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldCta, v))
}

// CtaContainsFold applies the ContainsFold predicate on the "cta" field.
func CtaContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldCta, v))
}

// TweetEQ applies the EQ predicate on the "tweet" field.
func TweetEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldTweet, v))
}

// TweetNEQ applies the NEQ predicate on the "tweet" field.
func TweetNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldTweet, v))
}

// TweetIn applies the In predicate on the "tweet" field.
func TweetIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldTweet, vs...))
}

// TweetNotIn applies the NotIn predicate on the "tweet" field.
func TweetNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldTweet, vs...))
}

// TweetGT applies the GT predicate on the "tweet" field.
func TweetGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldTweet, v))
}

// TweetGTE applies the GTE predicate on the "tweet" field.
func TweetGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldTweet, v))
}

// TweetLT applies the LT predicate on the "tweet" field.
func TweetLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldTweet, v))
}

// TweetLTE applies the LTE predicate on the "tweet" field.
func TweetLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldTweet, v))
}

// TweetContains applies the Contains predicate on the "tweet" field.
func TweetContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldTweet, v))
}

// TweetHasPrefix applies the HasPrefix predicate on the "tweet" field.
func TweetHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldTweet, v))
}

// TweetHasSuffix applies the HasSuffix predicate on the "tweet" field.
func TweetHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldTweet, v))
}

// TweetIsNil applies the IsNil predicate on the "tweet" field.
func TweetIsNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIsNull(FieldTweet))
}

// TweetNotNil applies the NotNil predicate on the "tweet" field.
func TweetNotNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotNull(FieldTweet))
}

// TweetEqualFold applies the EqualFold predicate on the "tweet" field.
func TweetEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldTweet, v))
}

// TweetContainsFold applies the ContainsFold predicate on the "tweet" field.
func TweetContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldTweet, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldContainsFold(FieldReasoning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DailyContent {
	return predicate.DailyContent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.DailyContent {
	return predicate.DailyContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.DailyContent {
	return predicate.DailyContent(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyContent) predicate.DailyContent {
	return predicate.DailyContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyContent) predicate.DailyContent {
	return predicate.DailyContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyContent) predicate.DailyContent {
	return predicate.DailyContent(sql.NotPredicates(p))
}
