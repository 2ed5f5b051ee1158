// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resourcelock type in the database.
	Label = "resource_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "resource_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldLockKey holds the string denoting the lock_key field in the database.
	FieldLockKey = "lock_key"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the resourcelock in the database.
	Table = "resource_locks"
)

// Columns holds all SQL columns for resourcelock fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldLockKey,
	FieldAcquiredAt,
	FieldExpiresAt,
	FieldReason,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the ResourceLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByLockKey orders the results by the lock_key field.
func ByLockKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockKey, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}
