package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// A workflow is a running instance of a declarative DAG template; the row is
// the engine checkpoint and the single source of truth between advances.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("template_name").
			Comment("Name of the template this workflow was created from"),
		field.Enum("status").
			Values("running", "paused", "completed", "failed", "canceled").
			Default("running"),
		field.String("current_step").
			Optional().
			Nillable(),
		field.JSON("context", map[string]any{}).
			Comment("Caller-supplied key/value context for placeholder resolution"),
		field.JSON("outputs", map[string]any{}).
			Optional().
			Comment("step_id -> output value; present iff the step completed"),
		field.JSON("step_statuses", map[string]string{}).
			Optional().
			Comment("step_id -> pending|running|completed|failed|skipped"),
		field.Int("version").
			Default(1).
			Comment("Monotonic version for optimistic concurrency"),
		field.String("task_id").
			Optional().
			Nillable().
			Comment("External task identifier, used for issue-tracker mapping"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination and orphan recovery"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("approvals", ApprovalRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("template_name"),
		index.Fields("status", "started_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
