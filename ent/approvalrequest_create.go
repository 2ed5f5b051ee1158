// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/workflow"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ApprovalRequestCreate) SetWorkflowID(v string) *ApprovalRequestCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ApprovalRequestCreate) SetStepID(v string) *ApprovalRequestCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_c *ApprovalRequestCreate) SetRiskAssessment(v string) *ApprovalRequestCreate {
	_c.mutation.SetRiskAssessment(v)
	return _c
}

// SetNillableRiskAssessment sets the "risk_assessment" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRiskAssessment(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRiskAssessment(*v)
	}
	return _c
}

// SetRisk sets the "risk" field.
func (_c *ApprovalRequestCreate) SetRisk(v string) *ApprovalRequestCreate {
	_c.mutation.SetRisk(v)
	return _c
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRisk(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRisk(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ApprovalRequestCreate) SetDecision(v approvalrequest.Decision) *ApprovalRequestCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalRequestCreate) SetDecidedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalRequestCreate) SetDecidedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRequestCreate) SetCreatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *ApprovalRequestCreate) SetWorkflow(v *Workflow) *ApprovalRequestCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Decision(); !ok {
		v := approvalrequest.DefaultDecision
		_c.mutation.SetDecision(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "ApprovalRequest.workflow_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "ApprovalRequest.step_id"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ApprovalRequest.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRequest.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "ApprovalRequest.workflow"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ApprovalRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(approvalrequest.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeString, value)
		_node.RiskAssessment = value
	}
	if value, ok := _c.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeString, value)
		_node.Risk = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRequest.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRequestUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRequestCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalRequestUpsertOne {
	_c.conflict = opts
	return &ApprovalRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRequestCreate) OnConflictColumns(columns ...string) *ApprovalRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRequestUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalRequestUpsertOne is the builder for "upsert"-ing
	//  one ApprovalRequest node.
	ApprovalRequestUpsertOne struct {
		create *ApprovalRequestCreate
	}

	// ApprovalRequestUpsert is the "OnConflict" setter.
	ApprovalRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkflowID sets the "workflow_id" field.
func (u *ApprovalRequestUpsert) SetWorkflowID(v string) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldWorkflowID, v)
	return u
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateWorkflowID() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldWorkflowID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *ApprovalRequestUpsert) SetStepID(v string) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateStepID() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldStepID)
	return u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *ApprovalRequestUpsert) SetRiskAssessment(v string) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldRiskAssessment, v)
	return u
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateRiskAssessment() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldRiskAssessment)
	return u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (u *ApprovalRequestUpsert) ClearRiskAssessment() *ApprovalRequestUpsert {
	u.SetNull(approvalrequest.FieldRiskAssessment)
	return u
}

// SetRisk sets the "risk" field.
func (u *ApprovalRequestUpsert) SetRisk(v string) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldRisk, v)
	return u
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateRisk() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldRisk)
	return u
}

// ClearRisk clears the value of the "risk" field.
func (u *ApprovalRequestUpsert) ClearRisk() *ApprovalRequestUpsert {
	u.SetNull(approvalrequest.FieldRisk)
	return u
}

// SetDecision sets the "decision" field.
func (u *ApprovalRequestUpsert) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateDecision() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldDecision)
	return u
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalRequestUpsert) SetDecidedBy(v string) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldDecidedBy, v)
	return u
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateDecidedBy() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldDecidedBy)
	return u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalRequestUpsert) ClearDecidedBy() *ApprovalRequestUpsert {
	u.SetNull(approvalrequest.FieldDecidedBy)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalRequestUpsert) SetDecidedAt(v time.Time) *ApprovalRequestUpsert {
	u.Set(approvalrequest.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalRequestUpsert) UpdateDecidedAt() *ApprovalRequestUpsert {
	u.SetExcluded(approvalrequest.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalRequestUpsert) ClearDecidedAt() *ApprovalRequestUpsert {
	u.SetNull(approvalrequest.FieldDecidedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRequestUpsertOne) UpdateNewValues() *ApprovalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalRequestUpsertOne) Ignore() *ApprovalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRequestUpsertOne) DoNothing() *ApprovalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRequestCreate.OnConflict
// documentation for more info.
func (u *ApprovalRequestUpsertOne) Update(set func(*ApprovalRequestUpsert)) *ApprovalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkflowID sets the "workflow_id" field.
func (u *ApprovalRequestUpsertOne) SetWorkflowID(v string) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateWorkflowID() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ApprovalRequestUpsertOne) SetStepID(v string) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateStepID() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateStepID()
	})
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *ApprovalRequestUpsertOne) SetRiskAssessment(v string) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetRiskAssessment(v)
	})
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateRiskAssessment() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateRiskAssessment()
	})
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (u *ApprovalRequestUpsertOne) ClearRiskAssessment() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearRiskAssessment()
	})
}

// SetRisk sets the "risk" field.
func (u *ApprovalRequestUpsertOne) SetRisk(v string) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetRisk(v)
	})
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateRisk() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateRisk()
	})
}

// ClearRisk clears the value of the "risk" field.
func (u *ApprovalRequestUpsertOne) ClearRisk() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearRisk()
	})
}

// SetDecision sets the "decision" field.
func (u *ApprovalRequestUpsertOne) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateDecision() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecision()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalRequestUpsertOne) SetDecidedBy(v string) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateDecidedBy() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalRequestUpsertOne) ClearDecidedBy() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearDecidedBy()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalRequestUpsertOne) SetDecidedAt(v time.Time) *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalRequestUpsertOne) UpdateDecidedAt() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalRequestUpsertOne) ClearDecidedAt() *ApprovalRequestUpsertOne {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ApprovalRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalRequestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalRequestUpsertOne.ID is not supported by MySQL driver. Use ApprovalRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalRequestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRequestUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalRequestUpsertBulk {
	_c.conflict = opts
	return &ApprovalRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRequestCreateBulk) OnConflictColumns(columns ...string) *ApprovalRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRequestUpsertBulk{
		create: _c,
	}
}

// ApprovalRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalRequest nodes.
type ApprovalRequestUpsertBulk struct {
	create *ApprovalRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRequestUpsertBulk) UpdateNewValues() *ApprovalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalRequestUpsertBulk) Ignore() *ApprovalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRequestUpsertBulk) DoNothing() *ApprovalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRequestCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalRequestUpsertBulk) Update(set func(*ApprovalRequestUpsert)) *ApprovalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkflowID sets the "workflow_id" field.
func (u *ApprovalRequestUpsertBulk) SetWorkflowID(v string) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateWorkflowID() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ApprovalRequestUpsertBulk) SetStepID(v string) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateStepID() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateStepID()
	})
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *ApprovalRequestUpsertBulk) SetRiskAssessment(v string) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetRiskAssessment(v)
	})
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateRiskAssessment() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateRiskAssessment()
	})
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (u *ApprovalRequestUpsertBulk) ClearRiskAssessment() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearRiskAssessment()
	})
}

// SetRisk sets the "risk" field.
func (u *ApprovalRequestUpsertBulk) SetRisk(v string) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetRisk(v)
	})
}

// UpdateRisk sets the "risk" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateRisk() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateRisk()
	})
}

// ClearRisk clears the value of the "risk" field.
func (u *ApprovalRequestUpsertBulk) ClearRisk() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearRisk()
	})
}

// SetDecision sets the "decision" field.
func (u *ApprovalRequestUpsertBulk) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateDecision() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecision()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *ApprovalRequestUpsertBulk) SetDecidedBy(v string) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateDecidedBy() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *ApprovalRequestUpsertBulk) ClearDecidedBy() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearDecidedBy()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalRequestUpsertBulk) SetDecidedAt(v time.Time) *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalRequestUpsertBulk) UpdateDecidedAt() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalRequestUpsertBulk) ClearDecidedAt() *ApprovalRequestUpsertBulk {
	return u.Update(func(s *ApprovalRequestUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ApprovalRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
