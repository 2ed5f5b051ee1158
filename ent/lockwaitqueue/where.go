// Code generated by ent, DO NOT EDIT.

package lockwaitqueue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldContainsFold(FieldID, id))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldResourceID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldAgentID, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldRequestedAt, v))
}

// TimeoutAt applies equality check predicate on the "timeout_at" field. It's identical to TimeoutAtEQ.
func TimeoutAt(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldTimeoutAt, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldPriority, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldContainsFold(FieldResourceID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldContainsFold(FieldAgentID, v))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldRequestedAt, v))
}

// TimeoutAtEQ applies the EQ predicate on the "timeout_at" field.
func TimeoutAtEQ(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldTimeoutAt, v))
}

// TimeoutAtNEQ applies the NEQ predicate on the "timeout_at" field.
func TimeoutAtNEQ(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldTimeoutAt, v))
}

// TimeoutAtIn applies the In predicate on the "timeout_at" field.
func TimeoutAtIn(vs ...time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldTimeoutAt, vs...))
}

// TimeoutAtNotIn applies the NotIn predicate on the "timeout_at" field.
func TimeoutAtNotIn(vs ...time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldTimeoutAt, vs...))
}

// TimeoutAtGT applies the GT predicate on the "timeout_at" field.
func TimeoutAtGT(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldTimeoutAt, v))
}

// TimeoutAtGTE applies the GTE predicate on the "timeout_at" field.
func TimeoutAtGTE(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldTimeoutAt, v))
}

// TimeoutAtLT applies the LT predicate on the "timeout_at" field.
func TimeoutAtLT(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldTimeoutAt, v))
}

// TimeoutAtLTE applies the LTE predicate on the "timeout_at" field.
func TimeoutAtLTE(v time.Time) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldTimeoutAt, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldLTE(FieldPriority, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LockWaitQueue) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LockWaitQueue) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LockWaitQueue) predicate.LockWaitQueue {
	return predicate.LockWaitQueue(sql.NotPredicates(p))
}
