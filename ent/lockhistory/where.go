// Code generated by ent, DO NOT EDIT.

package lockhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldID, id))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldResourceID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldAgentID, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldAcquiredAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldReleasedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldDurationMs, v))
}

// WaitTimeMs applies equality check predicate on the "wait_time_ms" field. It's identical to WaitTimeMsEQ.
func WaitTimeMs(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldWaitTimeMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContainsFold(FieldResourceID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContainsFold(FieldAgentID, v))
}

// OpEQ applies the EQ predicate on the "op" field.
func OpEQ(v Op) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldOp, v))
}

// OpNEQ applies the NEQ predicate on the "op" field.
func OpNEQ(v Op) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldOp, v))
}

// OpIn applies the In predicate on the "op" field.
func OpIn(vs ...Op) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldOp, vs...))
}

// OpNotIn applies the NotIn predicate on the "op" field.
func OpNotIn(vs ...Op) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldOp, vs...))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldAcquiredAt, v))
}

// AcquiredAtIsNil applies the IsNil predicate on the "acquired_at" field.
func AcquiredAtIsNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIsNull(FieldAcquiredAt))
}

// AcquiredAtNotNil applies the NotNil predicate on the "acquired_at" field.
func AcquiredAtNotNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotNull(FieldAcquiredAt))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotNull(FieldReleasedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotNull(FieldDurationMs))
}

// WaitTimeMsEQ applies the EQ predicate on the "wait_time_ms" field.
func WaitTimeMsEQ(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldWaitTimeMs, v))
}

// WaitTimeMsNEQ applies the NEQ predicate on the "wait_time_ms" field.
func WaitTimeMsNEQ(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldWaitTimeMs, v))
}

// WaitTimeMsIn applies the In predicate on the "wait_time_ms" field.
func WaitTimeMsIn(vs ...int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldWaitTimeMs, vs...))
}

// WaitTimeMsNotIn applies the NotIn predicate on the "wait_time_ms" field.
func WaitTimeMsNotIn(vs ...int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldWaitTimeMs, vs...))
}

// WaitTimeMsGT applies the GT predicate on the "wait_time_ms" field.
func WaitTimeMsGT(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldWaitTimeMs, v))
}

// WaitTimeMsGTE applies the GTE predicate on the "wait_time_ms" field.
func WaitTimeMsGTE(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldWaitTimeMs, v))
}

// WaitTimeMsLT applies the LT predicate on the "wait_time_ms" field.
func WaitTimeMsLT(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldWaitTimeMs, v))
}

// WaitTimeMsLTE applies the LTE predicate on the "wait_time_ms" field.
func WaitTimeMsLTE(v int64) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldWaitTimeMs, v))
}

// WaitTimeMsIsNil applies the IsNil predicate on the "wait_time_ms" field.
func WaitTimeMsIsNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIsNull(FieldWaitTimeMs))
}

// WaitTimeMsNotNil applies the NotNil predicate on the "wait_time_ms" field.
func WaitTimeMsNotNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotNull(FieldWaitTimeMs))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LockHistory {
	return predicate.LockHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LockHistory) predicate.LockHistory {
	return predicate.LockHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LockHistory) predicate.LockHistory {
	return predicate.LockHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LockHistory) predicate.LockHistory {
	return predicate.LockHistory(sql.NotPredicates(p))
}
