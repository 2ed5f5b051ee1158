// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductorhq/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStepID, v))
}

// RiskAssessment applies equality check predicate on the "risk_assessment" field. It's identical to RiskAssessmentEQ.
func RiskAssessment(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRiskAssessment, v))
}

// Risk applies equality check predicate on the "risk" field. It's identical to RiskEQ.
func Risk(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRisk, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldWorkflowID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldStepID, v))
}

// RiskAssessmentEQ applies the EQ predicate on the "risk_assessment" field.
func RiskAssessmentEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRiskAssessment, v))
}

// RiskAssessmentNEQ applies the NEQ predicate on the "risk_assessment" field.
func RiskAssessmentNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRiskAssessment, v))
}

// RiskAssessmentIn applies the In predicate on the "risk_assessment" field.
func RiskAssessmentIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRiskAssessment, vs...))
}

// RiskAssessmentNotIn applies the NotIn predicate on the "risk_assessment" field.
func RiskAssessmentNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRiskAssessment, vs...))
}

// RiskAssessmentGT applies the GT predicate on the "risk_assessment" field.
func RiskAssessmentGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRiskAssessment, v))
}

// RiskAssessmentGTE applies the GTE predicate on the "risk_assessment" field.
func RiskAssessmentGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRiskAssessment, v))
}

// RiskAssessmentLT applies the LT predicate on the "risk_assessment" field.
func RiskAssessmentLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRiskAssessment, v))
}

// RiskAssessmentLTE applies the LTE predicate on the "risk_assessment" field.
func RiskAssessmentLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRiskAssessment, v))
}

// RiskAssessmentContains applies the Contains predicate on the "risk_assessment" field.
func RiskAssessmentContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRiskAssessment, v))
}

// RiskAssessmentHasPrefix applies the HasPrefix predicate on the "risk_assessment" field.
func RiskAssessmentHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRiskAssessment, v))
}

// RiskAssessmentHasSuffix applies the HasSuffix predicate on the "risk_assessment" field.
func RiskAssessmentHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRiskAssessment, v))
}

// RiskAssessmentIsNil applies the IsNil predicate on the "risk_assessment" field.
func RiskAssessmentIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldRiskAssessment))
}

// RiskAssessmentNotNil applies the NotNil predicate on the "risk_assessment" field.
func RiskAssessmentNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldRiskAssessment))
}

// RiskAssessmentEqualFold applies the EqualFold predicate on the "risk_assessment" field.
func RiskAssessmentEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRiskAssessment, v))
}

// RiskAssessmentContainsFold applies the ContainsFold predicate on the "risk_assessment" field.
func RiskAssessmentContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRiskAssessment, v))
}

// RiskEQ applies the EQ predicate on the "risk" field.
func RiskEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRisk, v))
}

// RiskNEQ applies the NEQ predicate on the "risk" field.
func RiskNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRisk, v))
}

// RiskIn applies the In predicate on the "risk" field.
func RiskIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRisk, vs...))
}

// RiskNotIn applies the NotIn predicate on the "risk" field.
func RiskNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRisk, vs...))
}

// RiskGT applies the GT predicate on the "risk" field.
func RiskGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRisk, v))
}

// RiskGTE applies the GTE predicate on the "risk" field.
func RiskGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRisk, v))
}

// RiskLT applies the LT predicate on the "risk" field.
func RiskLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRisk, v))
}

// RiskLTE applies the LTE predicate on the "risk" field.
func RiskLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRisk, v))
}

// RiskContains applies the Contains predicate on the "risk" field.
func RiskContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRisk, v))
}

// RiskHasPrefix applies the HasPrefix predicate on the "risk" field.
func RiskHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRisk, v))
}

// RiskHasSuffix applies the HasSuffix predicate on the "risk" field.
func RiskHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRisk, v))
}

// RiskIsNil applies the IsNil predicate on the "risk" field.
func RiskIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldRisk))
}

// RiskNotNil applies the NotNil predicate on the "risk" field.
func RiskNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldRisk))
}

// RiskEqualFold applies the EqualFold predicate on the "risk" field.
func RiskEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRisk, v))
}

// RiskContainsFold applies the ContainsFold predicate on the "risk" field.
func RiskContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRisk, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecision, vs...))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldDecidedBy, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDecidedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.NotPredicates(p))
}
