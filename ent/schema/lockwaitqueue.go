package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LockWaitQueue holds the schema definition for the LockWaitQueue entity.
// Waiters are granted in priority DESC, requested_at ASC order.
type LockWaitQueue struct {
	ent.Schema
}

// Fields of the LockWaitQueue.
func (LockWaitQueue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("resource_id"),
		field.String("agent_id"),
		field.Time("requested_at"),
		field.Time("timeout_at"),
		field.Int("priority").
			Default(0).
			Comment("Higher wins"),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

// Indexes of the LockWaitQueue.
func (LockWaitQueue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_id", "priority", "requested_at"),
		index.Fields("timeout_at"),
	}
}
