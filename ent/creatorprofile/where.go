// Code generated by ent, DO NOT EDIT.

package creatorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/creatorloop/looper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldName, v))
}

// CreatorType applies equality check predicate on the "creator_type" field. It's identical to CreatorTypeEQ.
func CreatorType(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldCreatorType, v))
}

// Niche applies equality check predicate on the "niche" field. It's identical to NicheEQ.
func Niche(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldNiche, v))
}

// TargetAudienceNiche applies equality check predicate on the "target_audience_niche" field. It's identical to TargetAudienceNicheEQ.
func TargetAudienceNiche(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldTargetAudienceNiche, v))
}

// UniqueAngle applies equality check predicate on the "unique_angle" field. It's identical to UniqueAngleEQ.
func UniqueAngle(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUniqueAngle, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldPurpose, v))
}

// Motivation applies equality check predicate on the "motivation" field. It's identical to MotivationEQ.
func Motivation(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldMotivation, v))
}

// Phase2Completed applies equality check predicate on the "phase2_completed" field. It's identical to Phase2CompletedEQ.
func Phase2Completed(v bool) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldPhase2Completed, v))
}

// RecommendedFrequency applies equality check predicate on the "recommended_frequency" field. It's identical to RecommendedFrequencyEQ.
func RecommendedFrequency(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldRecommendedFrequency, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldName, v))
}

// CreatorTypeEQ applies the EQ predicate on the "creator_type" field.
func CreatorTypeEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldCreatorType, v))
}

// CreatorTypeNEQ applies the NEQ predicate on the "creator_type" field.
func CreatorTypeNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldCreatorType, v))
}

// CreatorTypeIn applies the In predicate on the "creator_type" field.
func CreatorTypeIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldCreatorType, vs...))
}

// CreatorTypeNotIn applies the NotIn predicate on the "creator_type" field.
func CreatorTypeNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldCreatorType, vs...))
}

// CreatorTypeGT applies the GT predicate on the "creator_type" field.
func CreatorTypeGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldCreatorType, v))
}

// CreatorTypeGTE applies the GTE predicate on the "creator_type" field.
func CreatorTypeGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldCreatorType, v))
}

// CreatorTypeLT applies the LT predicate on the "creator_type" field.
func CreatorTypeLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldCreatorType, v))
}

// CreatorTypeLTE applies the LTE predicate on the "creator_type" field.
func CreatorTypeLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldCreatorType, v))
}

// CreatorTypeContains applies the Contains predicate on the "creator_type" field.
func CreatorTypeContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldCreatorType, v))
}

// CreatorTypeHasPrefix applies the HasPrefix predicate on the "creator_type" field.
func CreatorTypeHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldCreatorType, v))
}

// CreatorTypeHasSuffix applies the HasSuffix predicate on the "creator_type" field.
func CreatorTypeHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldCreatorType, v))
}

// CreatorTypeEqualFold applies the EqualFold predicate on the "creator_type" field.
func CreatorTypeEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldCreatorType, v))
}

// CreatorTypeContainsFold applies the ContainsFold predicate on the "creator_type" field.
func CreatorTypeContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldCreatorType, v))
}

// NicheEQ applies the EQ predicate on the "niche" field.
func NicheEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldNiche, v))
}

// NicheNEQ applies the NEQ predicate on the "niche" field.
func NicheNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldNiche, v))
}

// NicheIn applies the In predicate on the "niche" field.
func NicheIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldNiche, vs...))
}

// NicheNotIn applies the NotIn predicate on the "niche" field.
func NicheNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldNiche, vs...))
}

// NicheGT applies the GT predicate on the "niche" field.
func NicheGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldNiche, v))
}

// NicheGTE applies the GTE predicate on the "niche" field.
func NicheGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldNiche, v))
}

// NicheLT applies the LT predicate on the "niche" field.
func NicheLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldNiche, v))
}

// NicheLTE applies the LTE predicate on the "niche" field.
func NicheLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldNiche, v))
}

// NicheContains applies the Contains predicate on the "niche" field.
func NicheContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldNiche, v))
}

// NicheHasPrefix applies the HasPrefix predicate on the "niche" field.
func NicheHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldNiche, v))
}

// NicheHasSuffix applies the HasSuffix predicate on the "niche" field.
func NicheHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldNiche, v))
}

// NicheEqualFold applies the EqualFold predicate on the "niche" field.
func NicheEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldNiche, v))
}

// NicheContainsFold applies the ContainsFold predicate on the "niche" field.
func NicheContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldNiche, v))
}

// TargetAudienceNicheEQ applies the EQ predicate on the "target_audience_niche" field.
func TargetAudienceNicheEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheNEQ applies the NEQ predicate on the "target_audience_niche" field.
func TargetAudienceNicheNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheIn applies the In predicate on the "target_audience_niche" field.
func TargetAudienceNicheIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldTargetAudienceNiche, vs...))
}

// TargetAudienceNicheNotIn applies the NotIn predicate on the "target_audience_niche" field.
func TargetAudienceNicheNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldTargetAudienceNiche, vs...))
}

// TargetAudienceNicheGT applies the GT predicate on the "target_audience_niche" field.
func TargetAudienceNicheGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheGTE applies the GTE predicate on the "target_audience_niche" field.
func TargetAudienceNicheGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheLT applies the LT predicate on the "target_audience_niche" field.
func TargetAudienceNicheLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheLTE applies the LTE predicate on the "target_audience_niche" field.
func TargetAudienceNicheLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheContains applies the Contains predicate on the "target_audience_niche" field.
func TargetAudienceNicheContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheHasPrefix applies the HasPrefix predicate on the "target_audience_niche" field.
func TargetAudienceNicheHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheHasSuffix applies the HasSuffix predicate on the "target_audience_niche" field.
func TargetAudienceNicheHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheEqualFold applies the EqualFold predicate on the "target_audience_niche" field.
func TargetAudienceNicheEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldTargetAudienceNiche, v))
}

// TargetAudienceNicheContainsFold applies the ContainsFold predicate on the "target_audience_niche" field.
func TargetAudienceNicheContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldTargetAudienceNiche, v))
}

// UniqueAngleEQ applies the EQ predicate on the "unique_angle" field.
func UniqueAngleEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUniqueAngle, v))
}

// UniqueAngleNEQ applies the NEQ predicate on the "unique_angle" field.
func UniqueAngleNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldUniqueAngle, v))
}

// UniqueAngleIn applies the In predicate on the "unique_angle" field.
func UniqueAngleIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldUniqueAngle, vs...))
}

// UniqueAngleNotIn applies the NotIn predicate on the "unique_angle" field.
func UniqueAngleNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldUniqueAngle, vs...))
}

// UniqueAngleGT applies the GT predicate on the "unique_angle" field.
func UniqueAngleGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldUniqueAngle, v))
}

// UniqueAngleGTE applies the GTE predicate on the "unique_angle" field.
func UniqueAngleGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldUniqueAngle, v))
}

// UniqueAngleLT applies the LT predicate on the "unique_angle" field.
func UniqueAngleLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldUniqueAngle, v))
}

// UniqueAngleLTE applies the LTE predicate on the "unique_angle" field.
func UniqueAngleLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldUniqueAngle, v))
}

// UniqueAngleContains applies the Contains predicate on the "unique_angle" field.
func UniqueAngleContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldUniqueAngle, v))
}

// UniqueAngleHasPrefix applies the HasPrefix predicate on the "unique_angle" field.
func UniqueAngleHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldUniqueAngle, v))
}

// UniqueAngleHasSuffix applies the HasSuffix predicate on the "unique_angle" field.
func UniqueAngleHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldUniqueAngle, v))
}

// UniqueAngleIsNil applies the IsNil predicate on the "unique_angle" field.
func UniqueAngleIsNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIsNull(FieldUniqueAngle))
}

// UniqueAngleNotNil applies the NotNil predicate on the "unique_angle" field.
func UniqueAngleNotNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotNull(FieldUniqueAngle))
}

// UniqueAngleEqualFold applies the EqualFold predicate on the "unique_angle" field.
func UniqueAngleEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldUniqueAngle, v))
}

// UniqueAngleContainsFold applies the ContainsFold predicate on the "unique_angle" field.
func UniqueAngleContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldUniqueAngle, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeIsNil applies the IsNil predicate on the "purpose" field.
func PurposeIsNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIsNull(FieldPurpose))
}

// PurposeNotNil applies the NotNil predicate on the "purpose" field.
func PurposeNotNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotNull(FieldPurpose))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldPurpose, v))
}

// MotivationEQ applies the EQ predicate on the "motivation" field.
func MotivationEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldMotivation, v))
}

// MotivationNEQ applies the NEQ predicate on the "motivation" field.
func MotivationNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldMotivation, v))
}

// MotivationIn applies the In predicate on the "motivation" field.
func MotivationIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldMotivation, vs...))
}

// MotivationNotIn applies the NotIn predicate on the "motivation" field.
func MotivationNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldMotivation, vs...))
}

// MotivationGT applies the GT predicate on the "motivation" field.
func MotivationGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldMotivation, v))
}

// MotivationGTE applies the GTE predicate on the "motivation" field.
func MotivationGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldMotivation, v))
}

// MotivationLT applies the LT predicate on the "motivation" field.
func MotivationLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldMotivation, v))
}

// MotivationLTE applies the LTE predicate on the "motivation" field.
func MotivationLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldMotivation, v))
}

// MotivationContains applies the Contains predicate on the "motivation" field.
func MotivationContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldMotivation, v))
}

// MotivationHasPrefix applies the HasPrefix predicate on the "motivation" field.
func MotivationHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldMotivation, v))
}

// MotivationHasSuffix applies the HasSuffix predicate on the "motivation" field.
func MotivationHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldMotivation, v))
}

// MotivationIsNil applies the IsNil predicate on the "motivation" field.
func MotivationIsNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIsNull(FieldMotivation))
}

// MotivationNotNil applies the NotNil predicate on the "motivation" field.
func MotivationNotNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotNull(FieldMotivation))
}

// MotivationEqualFold applies the EqualFold predicate on the "motivation" field.
func MotivationEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldMotivation, v))
}

// MotivationContainsFold applies the ContainsFold predicate on the "motivation" field.
func MotivationContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldMotivation, v))
}

// Phase2CompletedEQ applies the EQ predicate on the "phase2_completed" field.
func Phase2CompletedEQ(v bool) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldPhase2Completed, v))
}

// Phase2CompletedNEQ applies the NEQ predicate on the "phase2_completed" field.
func Phase2CompletedNEQ(v bool) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldPhase2Completed, v))
}

// RecommendedFrequencyEQ applies the EQ predicate on the "recommended_frequency" field.
func RecommendedFrequencyEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyNEQ applies the NEQ predicate on the "recommended_frequency" field.
func RecommendedFrequencyNEQ(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyIn applies the In predicate on the "recommended_frequency" field.
func RecommendedFrequencyIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldRecommendedFrequency, vs...))
}

// RecommendedFrequencyNotIn applies the NotIn predicate on the "recommended_frequency" field.
func RecommendedFrequencyNotIn(vs ...string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldRecommendedFrequency, vs...))
}

// RecommendedFrequencyGT applies the GT predicate on the "recommended_frequency" field.
func RecommendedFrequencyGT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyGTE applies the GTE predicate on the "recommended_frequency" field.
func RecommendedFrequencyGTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyLT applies the LT predicate on the "recommended_frequency" field.
func RecommendedFrequencyLT(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyLTE applies the LTE predicate on the "recommended_frequency" field.
func RecommendedFrequencyLTE(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyContains applies the Contains predicate on the "recommended_frequency" field.
func RecommendedFrequencyContains(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContains(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyHasPrefix applies the HasPrefix predicate on the "recommended_frequency" field.
func RecommendedFrequencyHasPrefix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasPrefix(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyHasSuffix applies the HasSuffix predicate on the "recommended_frequency" field.
func RecommendedFrequencyHasSuffix(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldHasSuffix(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyIsNil applies the IsNil predicate on the "recommended_frequency" field.
func RecommendedFrequencyIsNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIsNull(FieldRecommendedFrequency))
}

// RecommendedFrequencyNotNil applies the NotNil predicate on the "recommended_frequency" field.
func RecommendedFrequencyNotNil() predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotNull(FieldRecommendedFrequency))
}

// RecommendedFrequencyEqualFold applies the EqualFold predicate on the "recommended_frequency" field.
func RecommendedFrequencyEqualFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEqualFold(FieldRecommendedFrequency, v))
}

// RecommendedFrequencyContainsFold applies the ContainsFold predicate on the "recommended_frequency" field.
func RecommendedFrequencyContainsFold(v string) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldContainsFold(FieldRecommendedFrequency, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CreatorProfile {
	return predicate.CreatorProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CreatorProfile {
	return predicate.CreatorProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreatorProfile) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreatorProfile) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreatorProfile) predicate.CreatorProfile {
	return predicate.CreatorProfile(sql.NotPredicates(p))
}
