// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/event"
	"github.com/conductorhq/conductor/ent/lockhistory"
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/ent/resourcelock"
	"github.com/conductorhq/conductor/ent/schema"
	"github.com/conductorhq/conductor/ent/taskissuemapping"
	"github.com/conductorhq/conductor/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescCreatedAt is the schema descriptor for created_at field.
	approvalrequestDescCreatedAt := approvalrequestFields[8].Descriptor()
	// approvalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrequest.DefaultCreatedAt = approvalrequestDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	lockhistoryFields := schema.LockHistory{}.Fields()
	_ = lockhistoryFields
	// lockhistoryDescCreatedAt is the schema descriptor for created_at field.
	lockhistoryDescCreatedAt := lockhistoryFields[9].Descriptor()
	// lockhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	lockhistory.DefaultCreatedAt = lockhistoryDescCreatedAt.Default.(func() time.Time)
	lockwaitqueueFields := schema.LockWaitQueue{}.Fields()
	_ = lockwaitqueueFields
	// lockwaitqueueDescPriority is the schema descriptor for priority field.
	lockwaitqueueDescPriority := lockwaitqueueFields[5].Descriptor()
	// lockwaitqueue.DefaultPriority holds the default value on creation for the priority field.
	lockwaitqueue.DefaultPriority = lockwaitqueueDescPriority.Default.(int)
	resourcelockFields := schema.ResourceLock{}.Fields()
	_ = resourcelockFields
	// resourcelockDescID is the schema descriptor for id field.
	resourcelockDescID := resourcelockFields[0].Descriptor()
	// resourcelock.IDValidator is a validator for the "id" field. It is called by the builders before save.
	resourcelock.IDValidator = resourcelockDescID.Validators[0].(func(string) error)
	taskissuemappingFields := schema.TaskIssueMapping{}.Fields()
	_ = taskissuemappingFields
	// taskissuemappingDescCreatedAt is the schema descriptor for created_at field.
	taskissuemappingDescCreatedAt := taskissuemappingFields[2].Descriptor()
	// taskissuemapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskissuemapping.DefaultCreatedAt = taskissuemappingDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescVersion is the schema descriptor for version field.
	workflowDescVersion := workflowFields[7].Descriptor()
	// workflow.DefaultVersion holds the default value on creation for the version field.
	workflow.DefaultVersion = workflowDescVersion.Default.(int)
	// workflowDescStartedAt is the schema descriptor for started_at field.
	workflowDescStartedAt := workflowFields[12].Descriptor()
	// workflow.DefaultStartedAt holds the default value on creation for the started_at field.
	workflow.DefaultStartedAt = workflowDescStartedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[13].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
