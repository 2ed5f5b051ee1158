// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString},
		{Name: "risk_assessment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risk", Type: field.TypeString, Nullable: true},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_requests_workflows_approvals",
				Columns:    []*schema.Column{ApprovalRequestsColumns[8]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_workflow_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{ApprovalRequestsColumns[8], ApprovalRequestsColumns[1]},
			},
			{
				Name:    "approvalrequest_decision",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_workflows_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// LockHistoriesColumns holds the columns for the "lock_histories" table.
	LockHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "op", Type: field.TypeEnum, Enums: []string{"acquire", "release", "timeout", "force_release"}},
		{Name: "acquired_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "wait_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LockHistoriesTable holds the schema information for the "lock_histories" table.
	LockHistoriesTable = &schema.Table{
		Name:       "lock_histories",
		Columns:    LockHistoriesColumns,
		PrimaryKey: []*schema.Column{LockHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lockhistory_resource_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LockHistoriesColumns[1], LockHistoriesColumns[10]},
			},
			{
				Name:    "lockhistory_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LockHistoriesColumns[2]},
			},
		},
	}
	// LockWaitQueuesColumns holds the columns for the "lock_wait_queues" table.
	LockWaitQueuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "timeout_at", Type: field.TypeTime},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// LockWaitQueuesTable holds the schema information for the "lock_wait_queues" table.
	LockWaitQueuesTable = &schema.Table{
		Name:       "lock_wait_queues",
		Columns:    LockWaitQueuesColumns,
		PrimaryKey: []*schema.Column{LockWaitQueuesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lockwaitqueue_resource_id_priority_requested_at",
				Unique:  false,
				Columns: []*schema.Column{LockWaitQueuesColumns[1], LockWaitQueuesColumns[5], LockWaitQueuesColumns[3]},
			},
			{
				Name:    "lockwaitqueue_timeout_at",
				Unique:  false,
				Columns: []*schema.Column{LockWaitQueuesColumns[4]},
			},
		},
	}
	// ResourceLocksColumns holds the columns for the "resource_locks" table.
	ResourceLocksColumns = []*schema.Column{
		{Name: "resource_id", Type: field.TypeString, Unique: true, Size: 256},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "lock_key", Type: field.TypeInt64},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// ResourceLocksTable holds the schema information for the "resource_locks" table.
	ResourceLocksTable = &schema.Table{
		Name:       "resource_locks",
		Columns:    ResourceLocksColumns,
		PrimaryKey: []*schema.Column{ResourceLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourcelock_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[4]},
			},
			{
				Name:    "resourcelock_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceLocksColumns[1]},
			},
		},
	}
	// TaskIssueMappingsColumns holds the columns for the "task_issue_mappings" table.
	TaskIssueMappingsColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "issue_ref", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TaskIssueMappingsTable holds the schema information for the "task_issue_mappings" table.
	TaskIssueMappingsTable = &schema.Table{
		Name:       "task_issue_mappings",
		Columns:    TaskIssueMappingsColumns,
		PrimaryKey: []*schema.Column{TaskIssueMappingsColumns[0]},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "template_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "paused", "completed", "failed", "canceled"}, Default: "running"},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "step_statuses", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2]},
			},
			{
				Name:    "workflow_template_name",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1]},
			},
			{
				Name:    "workflow_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2], WorkflowsColumns[12]},
			},
			{
				Name:    "workflow_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2], WorkflowsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRequestsTable,
		EventsTable,
		LockHistoriesTable,
		LockWaitQueuesTable,
		ResourceLocksTable,
		TaskIssueMappingsTable,
		WorkflowsTable,
	}
)

func init() {
	ApprovalRequestsTable.ForeignKeys[0].RefTable = WorkflowsTable
	EventsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
