// Code generated by ent, DO NOT EDIT.

package lockwaitqueue

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lockwaitqueue type in the database.
	Label = "lock_wait_queue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldTimeoutAt holds the string denoting the timeout_at field in the database.
	FieldTimeoutAt = "timeout_at"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the lockwaitqueue in the database.
	Table = "lock_wait_queues"
)

// Columns holds all SQL columns for lockwaitqueue fields.
var Columns = []string{
	FieldID,
	FieldResourceID,
	FieldAgentID,
	FieldRequestedAt,
	FieldTimeoutAt,
	FieldPriority,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
)

// OrderOption defines the ordering options for the LockWaitQueue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByTimeoutAt orders the results by the timeout_at field.
func ByTimeoutAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutAt, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}
