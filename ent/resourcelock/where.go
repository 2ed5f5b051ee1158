// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAgentID, v))
}

// LockKey applies equality check predicate on the "lock_key" field. It's identical to LockKeyEQ.
func LockKey(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldLockKey, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldExpiresAt, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReason, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldAgentID, v))
}

// LockKeyEQ applies the EQ predicate on the "lock_key" field.
func LockKeyEQ(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldLockKey, v))
}

// LockKeyNEQ applies the NEQ predicate on the "lock_key" field.
func LockKeyNEQ(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldLockKey, v))
}

// LockKeyIn applies the In predicate on the "lock_key" field.
func LockKeyIn(vs ...int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldLockKey, vs...))
}

// LockKeyNotIn applies the NotIn predicate on the "lock_key" field.
func LockKeyNotIn(vs ...int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldLockKey, vs...))
}

// LockKeyGT applies the GT predicate on the "lock_key" field.
func LockKeyGT(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldLockKey, v))
}

// LockKeyGTE applies the GTE predicate on the "lock_key" field.
func LockKeyGTE(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldLockKey, v))
}

// LockKeyLT applies the LT predicate on the "lock_key" field.
func LockKeyLT(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldLockKey, v))
}

// LockKeyLTE applies the LTE predicate on the "lock_key" field.
func LockKeyLTE(v int64) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldLockKey, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldExpiresAt, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldReason, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.NotPredicates(p))
}
