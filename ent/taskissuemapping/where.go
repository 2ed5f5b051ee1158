// Code generated by ent, DO NOT EDIT.

package taskissuemapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldContainsFold(FieldID, id))
}

// IssueRef applies equality check predicate on the "issue_ref" field. It's identical to IssueRefEQ.
func IssueRef(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldIssueRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// IssueRefEQ applies the EQ predicate on the "issue_ref" field.
func IssueRefEQ(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldIssueRef, v))
}

// IssueRefNEQ applies the NEQ predicate on the "issue_ref" field.
func IssueRefNEQ(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNEQ(FieldIssueRef, v))
}

// IssueRefIn applies the In predicate on the "issue_ref" field.
func IssueRefIn(vs ...string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldIn(FieldIssueRef, vs...))
}

// IssueRefNotIn applies the NotIn predicate on the "issue_ref" field.
func IssueRefNotIn(vs ...string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNotIn(FieldIssueRef, vs...))
}

// IssueRefGT applies the GT predicate on the "issue_ref" field.
func IssueRefGT(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGT(FieldIssueRef, v))
}

// IssueRefGTE applies the GTE predicate on the "issue_ref" field.
func IssueRefGTE(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGTE(FieldIssueRef, v))
}

// IssueRefLT applies the LT predicate on the "issue_ref" field.
func IssueRefLT(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLT(FieldIssueRef, v))
}

// IssueRefLTE applies the LTE predicate on the "issue_ref" field.
func IssueRefLTE(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLTE(FieldIssueRef, v))
}

// IssueRefContains applies the Contains predicate on the "issue_ref" field.
func IssueRefContains(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldContains(FieldIssueRef, v))
}

// IssueRefHasPrefix applies the HasPrefix predicate on the "issue_ref" field.
func IssueRefHasPrefix(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldHasPrefix(FieldIssueRef, v))
}

// IssueRefHasSuffix applies the HasSuffix predicate on the "issue_ref" field.
func IssueRefHasSuffix(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldHasSuffix(FieldIssueRef, v))
}

// IssueRefEqualFold applies the EqualFold predicate on the "issue_ref" field.
func IssueRefEqualFold(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEqualFold(FieldIssueRef, v))
}

// IssueRefContainsFold applies the ContainsFold predicate on the "issue_ref" field.
func IssueRefContainsFold(v string) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldContainsFold(FieldIssueRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskIssueMapping) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskIssueMapping) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskIssueMapping) predicate.TaskIssueMapping {
	return predicate.TaskIssueMapping(sql.NotPredicates(p))
}
