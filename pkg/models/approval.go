package models

import "time"

// ApprovalDecision is the state of a HITL approval request.
type ApprovalDecision string

// Approval decisions.
const (
	ApprovalPending  ApprovalDecision = "pending"
	ApprovalApproved ApprovalDecision = "approved"
	ApprovalRejected ApprovalDecision = "rejected"
)

// RiskLevel classifies a HITL gate's risk assessment.
type RiskLevel string

// Risk levels. Low risk auto-approves; medium and high pause the workflow.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ApprovalRequest is a persisted request for a human decision on a HITL gate.
type ApprovalRequest struct {
	ID             string           `json:"approval_id"`
	WorkflowID     string           `json:"workflow_id"`
	StepID         string           `json:"step_id"`
	Risk           RiskLevel        `json:"risk,omitempty"`
	RiskAssessment string           `json:"risk_assessment,omitempty"`
	Decision       ApprovalDecision `json:"decision"`
	DecidedBy      string           `json:"decided_by,omitempty"`
	DecidedAt      *time.Time       `json:"decided_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
