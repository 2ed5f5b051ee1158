package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TaskIssueMapping holds the schema definition for the TaskIssueMapping
// entity. Maps an internal task id to an external issue-tracker reference,
// used when notifying approvers about HITL gates.
type TaskIssueMapping struct {
	ent.Schema
}

// Fields of the TaskIssueMapping.
func (TaskIssueMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("issue_ref"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
