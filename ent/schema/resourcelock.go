package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceLock holds the schema definition for the ResourceLock entity.
// At most one row exists per resource_id; a row with expires_at <= now is
// logically released and eligible for takeover.
type ResourceLock struct {
	ent.Schema
}

// Fields of the ResourceLock.
func (ResourceLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("resource_id").
			MaxLen(256).
			Unique().
			Immutable(),
		field.String("agent_id").
			Comment("Current holder"),
		field.Int64("lock_key").
			Comment("FNV hash of resource_id, used as pg advisory lock key"),
		field.Time("acquired_at"),
		field.Time("expires_at"),
		field.String("reason").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

// Indexes of the ResourceLock.
func (ResourceLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
		index.Fields("agent_id"),
	}
}
