// Code generated by ent, DO NOT EDIT.

package taskissuemapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskissuemapping type in the database.
	Label = "task_issue_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldIssueRef holds the string denoting the issue_ref field in the database.
	FieldIssueRef = "issue_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the taskissuemapping in the database.
	Table = "task_issue_mappings"
)

// Columns holds all SQL columns for taskissuemapping fields.
var Columns = []string{
	FieldID,
	FieldIssueRef,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TaskIssueMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIssueRef orders the results by the issue_ref field.
func ByIssueRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
