// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/conductorhq/conductor/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/event"
	"github.com/conductorhq/conductor/ent/lockhistory"
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/ent/resourcelock"
	"github.com/conductorhq/conductor/ent/taskissuemapping"
	"github.com/conductorhq/conductor/ent/workflow"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalRequest is the client for interacting with the ApprovalRequest builders.
	ApprovalRequest *ApprovalRequestClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LockHistory is the client for interacting with the LockHistory builders.
	LockHistory *LockHistoryClient
	// LockWaitQueue is the client for interacting with the LockWaitQueue builders.
	LockWaitQueue *LockWaitQueueClient
	// ResourceLock is the client for interacting with the ResourceLock builders.
	ResourceLock *ResourceLockClient
	// TaskIssueMapping is the client for interacting with the TaskIssueMapping builders.
	TaskIssueMapping *TaskIssueMappingClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalRequest = NewApprovalRequestClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LockHistory = NewLockHistoryClient(c.config)
	c.LockWaitQueue = NewLockWaitQueueClient(c.config)
	c.ResourceLock = NewResourceLockClient(c.config)
	c.TaskIssueMapping = NewTaskIssueMappingClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		Event:            NewEventClient(cfg),
		LockHistory:      NewLockHistoryClient(cfg),
		LockWaitQueue:    NewLockWaitQueueClient(cfg),
		ResourceLock:     NewResourceLockClient(cfg),
		TaskIssueMapping: NewTaskIssueMappingClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		Event:            NewEventClient(cfg),
		LockHistory:      NewLockHistoryClient(cfg),
		LockWaitQueue:    NewLockWaitQueueClient(cfg),
		ResourceLock:     NewResourceLockClient(cfg),
		TaskIssueMapping: NewTaskIssueMappingClient(cfg),
		Workflow:         NewWorkflowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ApprovalRequest, c.Event, c.LockHistory, c.LockWaitQueue, c.ResourceLock,
		c.TaskIssueMapping, c.Workflow,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalRequest, c.Event, c.LockHistory, c.LockWaitQueue, c.ResourceLock,
		c.TaskIssueMapping, c.Workflow,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalRequestMutation:
		return c.ApprovalRequest.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LockHistoryMutation:
		return c.LockHistory.mutate(ctx, m)
	case *LockWaitQueueMutation:
		return c.LockWaitQueue.mutate(ctx, m)
	case *ResourceLockMutation:
		return c.ResourceLock.mutate(ctx, m)
	case *TaskIssueMappingMutation:
		return c.TaskIssueMapping.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalRequestClient is a client for the ApprovalRequest schema.
type ApprovalRequestClient struct {
	config
}

// NewApprovalRequestClient returns a client for the ApprovalRequest from the given config.
func NewApprovalRequestClient(c config) *ApprovalRequestClient {
	return &ApprovalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrequest.Hooks(f(g(h())))`.
func (c *ApprovalRequestClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRequest = append(c.hooks.ApprovalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrequest.Intercept(f(g(h())))`.
func (c *ApprovalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRequest = append(c.inters.ApprovalRequest, interceptors...)
}

// Create returns a builder for creating a ApprovalRequest entity.
func (c *ApprovalRequestClient) Create() *ApprovalRequestCreate {
	mutation := newApprovalRequestMutation(c.config, OpCreate)
	return &ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRequest entities.
func (c *ApprovalRequestClient) CreateBulk(builders ...*ApprovalRequestCreate) *ApprovalRequestCreateBulk {
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRequestClient) MapCreateBulk(slice any, setFunc func(*ApprovalRequestCreate, int)) *ApprovalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRequestCreateBulk{err: fmt.Errorf("calling to ApprovalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRequest.
func (c *ApprovalRequestClient) Update() *ApprovalRequestUpdate {
	mutation := newApprovalRequestMutation(c.config, OpUpdate)
	return &ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRequestClient) UpdateOne(_m *ApprovalRequest) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequest(_m))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRequestClient) UpdateOneID(id string) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequestID(id))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRequest.
func (c *ApprovalRequestClient) Delete() *ApprovalRequestDelete {
	mutation := newApprovalRequestMutation(c.config, OpDelete)
	return &ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRequestClient) DeleteOne(_m *ApprovalRequest) *ApprovalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRequestClient) DeleteOneID(id string) *ApprovalRequestDeleteOne {
	builder := c.Delete().Where(approvalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRequestDeleteOne{builder}
}

// Query returns a query builder for ApprovalRequest.
func (c *ApprovalRequestClient) Query() *ApprovalRequestQuery {
	return &ApprovalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRequest entity by its id.
func (c *ApprovalRequestClient) Get(ctx context.Context, id string) (*ApprovalRequest, error) {
	return c.Query().Where(approvalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRequestClient) GetX(ctx context.Context, id string) *ApprovalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a ApprovalRequest.
func (c *ApprovalRequestClient) QueryWorkflow(_m *ApprovalRequest) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalrequest.Table, approvalrequest.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvalrequest.WorkflowTable, approvalrequest.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalRequestClient) Hooks() []Hook {
	return c.hooks.ApprovalRequest
}

// Interceptors returns the client interceptors.
func (c *ApprovalRequestClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRequest
}

func (c *ApprovalRequestClient) mutate(ctx context.Context, m *ApprovalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRequest mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Event.
func (c *EventClient) QueryWorkflow(_m *Event) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.WorkflowTable, event.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LockHistoryClient is a client for the LockHistory schema.
type LockHistoryClient struct {
	config
}

// NewLockHistoryClient returns a client for the LockHistory from the given config.
func NewLockHistoryClient(c config) *LockHistoryClient {
	return &LockHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lockhistory.Hooks(f(g(h())))`.
func (c *LockHistoryClient) Use(hooks ...Hook) {
	c.hooks.LockHistory = append(c.hooks.LockHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lockhistory.Intercept(f(g(h())))`.
func (c *LockHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LockHistory = append(c.inters.LockHistory, interceptors...)
}

// Create returns a builder for creating a LockHistory entity.
func (c *LockHistoryClient) Create() *LockHistoryCreate {
	mutation := newLockHistoryMutation(c.config, OpCreate)
	return &LockHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LockHistory entities.
func (c *LockHistoryClient) CreateBulk(builders ...*LockHistoryCreate) *LockHistoryCreateBulk {
	return &LockHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LockHistoryClient) MapCreateBulk(slice any, setFunc func(*LockHistoryCreate, int)) *LockHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LockHistoryCreateBulk{err: fmt.Errorf("calling to LockHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LockHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LockHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LockHistory.
func (c *LockHistoryClient) Update() *LockHistoryUpdate {
	mutation := newLockHistoryMutation(c.config, OpUpdate)
	return &LockHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LockHistoryClient) UpdateOne(_m *LockHistory) *LockHistoryUpdateOne {
	mutation := newLockHistoryMutation(c.config, OpUpdateOne, withLockHistory(_m))
	return &LockHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LockHistoryClient) UpdateOneID(id int) *LockHistoryUpdateOne {
	mutation := newLockHistoryMutation(c.config, OpUpdateOne, withLockHistoryID(id))
	return &LockHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LockHistory.
func (c *LockHistoryClient) Delete() *LockHistoryDelete {
	mutation := newLockHistoryMutation(c.config, OpDelete)
	return &LockHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LockHistoryClient) DeleteOne(_m *LockHistory) *LockHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LockHistoryClient) DeleteOneID(id int) *LockHistoryDeleteOne {
	builder := c.Delete().Where(lockhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LockHistoryDeleteOne{builder}
}

// Query returns a query builder for LockHistory.
func (c *LockHistoryClient) Query() *LockHistoryQuery {
	return &LockHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLockHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a LockHistory entity by its id.
func (c *LockHistoryClient) Get(ctx context.Context, id int) (*LockHistory, error) {
	return c.Query().Where(lockhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LockHistoryClient) GetX(ctx context.Context, id int) *LockHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LockHistoryClient) Hooks() []Hook {
	return c.hooks.LockHistory
}

// Interceptors returns the client interceptors.
func (c *LockHistoryClient) Interceptors() []Interceptor {
	return c.inters.LockHistory
}

func (c *LockHistoryClient) mutate(ctx context.Context, m *LockHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LockHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LockHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LockHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LockHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LockHistory mutation op: %q", m.Op())
	}
}

// LockWaitQueueClient is a client for the LockWaitQueue schema.
type LockWaitQueueClient struct {
	config
}

// NewLockWaitQueueClient returns a client for the LockWaitQueue from the given config.
func NewLockWaitQueueClient(c config) *LockWaitQueueClient {
	return &LockWaitQueueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lockwaitqueue.Hooks(f(g(h())))`.
func (c *LockWaitQueueClient) Use(hooks ...Hook) {
	c.hooks.LockWaitQueue = append(c.hooks.LockWaitQueue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lockwaitqueue.Intercept(f(g(h())))`.
func (c *LockWaitQueueClient) Intercept(interceptors ...Interceptor) {
	c.inters.LockWaitQueue = append(c.inters.LockWaitQueue, interceptors...)
}

// Create returns a builder for creating a LockWaitQueue entity.
func (c *LockWaitQueueClient) Create() *LockWaitQueueCreate {
	mutation := newLockWaitQueueMutation(c.config, OpCreate)
	return &LockWaitQueueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LockWaitQueue entities.
func (c *LockWaitQueueClient) CreateBulk(builders ...*LockWaitQueueCreate) *LockWaitQueueCreateBulk {
	return &LockWaitQueueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LockWaitQueueClient) MapCreateBulk(slice any, setFunc func(*LockWaitQueueCreate, int)) *LockWaitQueueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LockWaitQueueCreateBulk{err: fmt.Errorf("calling to LockWaitQueueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LockWaitQueueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LockWaitQueueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LockWaitQueue.
func (c *LockWaitQueueClient) Update() *LockWaitQueueUpdate {
	mutation := newLockWaitQueueMutation(c.config, OpUpdate)
	return &LockWaitQueueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LockWaitQueueClient) UpdateOne(_m *LockWaitQueue) *LockWaitQueueUpdateOne {
	mutation := newLockWaitQueueMutation(c.config, OpUpdateOne, withLockWaitQueue(_m))
	return &LockWaitQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LockWaitQueueClient) UpdateOneID(id string) *LockWaitQueueUpdateOne {
	mutation := newLockWaitQueueMutation(c.config, OpUpdateOne, withLockWaitQueueID(id))
	return &LockWaitQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LockWaitQueue.
func (c *LockWaitQueueClient) Delete() *LockWaitQueueDelete {
	mutation := newLockWaitQueueMutation(c.config, OpDelete)
	return &LockWaitQueueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LockWaitQueueClient) DeleteOne(_m *LockWaitQueue) *LockWaitQueueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LockWaitQueueClient) DeleteOneID(id string) *LockWaitQueueDeleteOne {
	builder := c.Delete().Where(lockwaitqueue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LockWaitQueueDeleteOne{builder}
}

// Query returns a query builder for LockWaitQueue.
func (c *LockWaitQueueClient) Query() *LockWaitQueueQuery {
	return &LockWaitQueueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLockWaitQueue},
		inters: c.Interceptors(),
	}
}

// Get returns a LockWaitQueue entity by its id.
func (c *LockWaitQueueClient) Get(ctx context.Context, id string) (*LockWaitQueue, error) {
	return c.Query().Where(lockwaitqueue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LockWaitQueueClient) GetX(ctx context.Context, id string) *LockWaitQueue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LockWaitQueueClient) Hooks() []Hook {
	return c.hooks.LockWaitQueue
}

// Interceptors returns the client interceptors.
func (c *LockWaitQueueClient) Interceptors() []Interceptor {
	return c.inters.LockWaitQueue
}

func (c *LockWaitQueueClient) mutate(ctx context.Context, m *LockWaitQueueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LockWaitQueueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LockWaitQueueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LockWaitQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LockWaitQueueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LockWaitQueue mutation op: %q", m.Op())
	}
}

// ResourceLockClient is a client for the ResourceLock schema.
type ResourceLockClient struct {
	config
}

// NewResourceLockClient returns a client for the ResourceLock from the given config.
func NewResourceLockClient(c config) *ResourceLockClient {
	return &ResourceLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resourcelock.Hooks(f(g(h())))`.
func (c *ResourceLockClient) Use(hooks ...Hook) {
	c.hooks.ResourceLock = append(c.hooks.ResourceLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resourcelock.Intercept(f(g(h())))`.
func (c *ResourceLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResourceLock = append(c.inters.ResourceLock, interceptors...)
}

// Create returns a builder for creating a ResourceLock entity.
func (c *ResourceLockClient) Create() *ResourceLockCreate {
	mutation := newResourceLockMutation(c.config, OpCreate)
	return &ResourceLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResourceLock entities.
func (c *ResourceLockClient) CreateBulk(builders ...*ResourceLockCreate) *ResourceLockCreateBulk {
	return &ResourceLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResourceLockClient) MapCreateBulk(slice any, setFunc func(*ResourceLockCreate, int)) *ResourceLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResourceLockCreateBulk{err: fmt.Errorf("calling to ResourceLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResourceLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResourceLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResourceLock.
func (c *ResourceLockClient) Update() *ResourceLockUpdate {
	mutation := newResourceLockMutation(c.config, OpUpdate)
	return &ResourceLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResourceLockClient) UpdateOne(_m *ResourceLock) *ResourceLockUpdateOne {
	mutation := newResourceLockMutation(c.config, OpUpdateOne, withResourceLock(_m))
	return &ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResourceLockClient) UpdateOneID(id string) *ResourceLockUpdateOne {
	mutation := newResourceLockMutation(c.config, OpUpdateOne, withResourceLockID(id))
	return &ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResourceLock.
func (c *ResourceLockClient) Delete() *ResourceLockDelete {
	mutation := newResourceLockMutation(c.config, OpDelete)
	return &ResourceLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResourceLockClient) DeleteOne(_m *ResourceLock) *ResourceLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResourceLockClient) DeleteOneID(id string) *ResourceLockDeleteOne {
	builder := c.Delete().Where(resourcelock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResourceLockDeleteOne{builder}
}

// Query returns a query builder for ResourceLock.
func (c *ResourceLockClient) Query() *ResourceLockQuery {
	return &ResourceLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResourceLock},
		inters: c.Interceptors(),
	}
}

// Get returns a ResourceLock entity by its id.
func (c *ResourceLockClient) Get(ctx context.Context, id string) (*ResourceLock, error) {
	return c.Query().Where(resourcelock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResourceLockClient) GetX(ctx context.Context, id string) *ResourceLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResourceLockClient) Hooks() []Hook {
	return c.hooks.ResourceLock
}

// Interceptors returns the client interceptors.
func (c *ResourceLockClient) Interceptors() []Interceptor {
	return c.inters.ResourceLock
}

func (c *ResourceLockClient) mutate(ctx context.Context, m *ResourceLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResourceLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResourceLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResourceLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResourceLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResourceLock mutation op: %q", m.Op())
	}
}

// TaskIssueMappingClient is a client for the TaskIssueMapping schema.
type TaskIssueMappingClient struct {
	config
}

// NewTaskIssueMappingClient returns a client for the TaskIssueMapping from the given config.
func NewTaskIssueMappingClient(c config) *TaskIssueMappingClient {
	return &TaskIssueMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskissuemapping.Hooks(f(g(h())))`.
func (c *TaskIssueMappingClient) Use(hooks ...Hook) {
	c.hooks.TaskIssueMapping = append(c.hooks.TaskIssueMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskissuemapping.Intercept(f(g(h())))`.
func (c *TaskIssueMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskIssueMapping = append(c.inters.TaskIssueMapping, interceptors...)
}

// Create returns a builder for creating a TaskIssueMapping entity.
func (c *TaskIssueMappingClient) Create() *TaskIssueMappingCreate {
	mutation := newTaskIssueMappingMutation(c.config, OpCreate)
	return &TaskIssueMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskIssueMapping entities.
func (c *TaskIssueMappingClient) CreateBulk(builders ...*TaskIssueMappingCreate) *TaskIssueMappingCreateBulk {
	return &TaskIssueMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskIssueMappingClient) MapCreateBulk(slice any, setFunc func(*TaskIssueMappingCreate, int)) *TaskIssueMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskIssueMappingCreateBulk{err: fmt.Errorf("calling to TaskIssueMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskIssueMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskIssueMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskIssueMapping.
func (c *TaskIssueMappingClient) Update() *TaskIssueMappingUpdate {
	mutation := newTaskIssueMappingMutation(c.config, OpUpdate)
	return &TaskIssueMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskIssueMappingClient) UpdateOne(_m *TaskIssueMapping) *TaskIssueMappingUpdateOne {
	mutation := newTaskIssueMappingMutation(c.config, OpUpdateOne, withTaskIssueMapping(_m))
	return &TaskIssueMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskIssueMappingClient) UpdateOneID(id string) *TaskIssueMappingUpdateOne {
	mutation := newTaskIssueMappingMutation(c.config, OpUpdateOne, withTaskIssueMappingID(id))
	return &TaskIssueMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskIssueMapping.
func (c *TaskIssueMappingClient) Delete() *TaskIssueMappingDelete {
	mutation := newTaskIssueMappingMutation(c.config, OpDelete)
	return &TaskIssueMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskIssueMappingClient) DeleteOne(_m *TaskIssueMapping) *TaskIssueMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskIssueMappingClient) DeleteOneID(id string) *TaskIssueMappingDeleteOne {
	builder := c.Delete().Where(taskissuemapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskIssueMappingDeleteOne{builder}
}

// Query returns a query builder for TaskIssueMapping.
func (c *TaskIssueMappingClient) Query() *TaskIssueMappingQuery {
	return &TaskIssueMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskIssueMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskIssueMapping entity by its id.
func (c *TaskIssueMappingClient) Get(ctx context.Context, id string) (*TaskIssueMapping, error) {
	return c.Query().Where(taskissuemapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskIssueMappingClient) GetX(ctx context.Context, id string) *TaskIssueMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskIssueMappingClient) Hooks() []Hook {
	return c.hooks.TaskIssueMapping
}

// Interceptors returns the client interceptors.
func (c *TaskIssueMappingClient) Interceptors() []Interceptor {
	return c.inters.TaskIssueMapping
}

func (c *TaskIssueMappingClient) mutate(ctx context.Context, m *TaskIssueMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskIssueMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskIssueMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskIssueMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskIssueMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskIssueMapping mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApprovals queries the approvals edge of a Workflow.
func (c *WorkflowClient) QueryApprovals(_m *Workflow) *ApprovalRequestQuery {
	query := (&ApprovalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(approvalrequest.Table, approvalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ApprovalsTable, workflow.ApprovalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Workflow.
func (c *WorkflowClient) QueryEvents(_m *Workflow) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.EventsTable, workflow.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalRequest, Event, LockHistory, LockWaitQueue, ResourceLock,
		TaskIssueMapping, Workflow []ent.Hook
	}
	inters struct {
		ApprovalRequest, Event, LockHistory, LockWaitQueue, ResourceLock,
		TaskIssueMapping, Workflow []ent.Interceptor
	}
)
