package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LockHistory holds the schema definition for the LockHistory entity.
// Append-only audit trail of lock operations.
type LockHistory struct {
	ent.Schema
}

// Fields of the LockHistory.
func (LockHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("resource_id"),
		field.String("agent_id"),
		field.Enum("op").
			Values("acquire", "release", "timeout", "force_release"),
		field.Time("acquired_at").
			Optional().
			Nillable(),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Comment("How long the lock was held"),
		field.Int64("wait_time_ms").
			Optional().
			Comment("How long the caller waited before the operation resolved"),
		field.Bool("success"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LockHistory.
func (LockHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_id", "created_at"),
		index.Fields("agent_id"),
	}
}
