package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest holds the schema definition for the ApprovalRequest entity.
// Created when a HITL gate requires a human decision; the workflow stays
// paused until the decision lands.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("workflow_id"),
		field.String("step_id"),
		field.Text("risk_assessment").
			Optional().
			Comment("LLM risk assessment text shown to the approver"),
		field.String("risk").
			Optional().
			Comment("low|medium|high"),
		field.Enum("decision").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApprovalRequest.
func (ApprovalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("approvals").
			Field("workflow_id").
			Unique().
			Required(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_id").
			Unique(),
		index.Fields("decision"),
	}
}
