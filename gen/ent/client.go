// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProcessingResult is the client for interacting with the ProcessingResult builders.
	ProcessingResult *ProcessingResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProcessingResult = NewProcessingResultClient(c.config)
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
		ProcessingResult: NewProcessingResultClient(cfg),
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
		ProcessingResult: NewProcessingResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProcessingResult.
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
	c.ProcessingResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ProcessingResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProcessingResultMutation:
		return c.ProcessingResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProcessingResultClient is a client for the ProcessingResult schema.
type ProcessingResultClient struct {
	config
}

// NewProcessingResultClient returns a client for the ProcessingResult from the given config.
func NewProcessingResultClient(c config) *ProcessingResultClient {
	return &ProcessingResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingresult.Hooks(f(g(h())))`.
func (c *ProcessingResultClient) Use(hooks ...Hook) {
	c.hooks.ProcessingResult = append(c.hooks.ProcessingResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingresult.Intercept(f(g(h())))`.
func (c *ProcessingResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingResult = append(c.inters.ProcessingResult, interceptors...)
}

// Create returns a builder for creating a ProcessingResult entity.
func (c *ProcessingResultClient) Create() *ProcessingResultCreate {
	mutation := newProcessingResultMutation(c.config, OpCreate)
	return &ProcessingResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingResult entities.
func (c *ProcessingResultClient) CreateBulk(builders ...*ProcessingResultCreate) *ProcessingResultCreateBulk {
	return &ProcessingResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingResultClient) MapCreateBulk(slice any, setFunc func(*ProcessingResultCreate, int)) *ProcessingResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingResultCreateBulk{err: fmt.Errorf("calling to ProcessingResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingResult.
func (c *ProcessingResultClient) Update() *ProcessingResultUpdate {
	mutation := newProcessingResultMutation(c.config, OpUpdate)
	return &ProcessingResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingResultClient) UpdateOne(_m *ProcessingResult) *ProcessingResultUpdateOne {
	mutation := newProcessingResultMutation(c.config, OpUpdateOne, withProcessingResult(_m))
	return &ProcessingResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingResultClient) UpdateOneID(id uuid.UUID) *ProcessingResultUpdateOne {
	mutation := newProcessingResultMutation(c.config, OpUpdateOne, withProcessingResultID(id))
	return &ProcessingResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingResult.
func (c *ProcessingResultClient) Delete() *ProcessingResultDelete {
	mutation := newProcessingResultMutation(c.config, OpDelete)
	return &ProcessingResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingResultClient) DeleteOne(_m *ProcessingResult) *ProcessingResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingResultClient) DeleteOneID(id uuid.UUID) *ProcessingResultDeleteOne {
	builder := c.Delete().Where(processingresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingResultDeleteOne{builder}
}

// Query returns a query builder for ProcessingResult.
func (c *ProcessingResultClient) Query() *ProcessingResultQuery {
	return &ProcessingResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingResult entity by its id.
func (c *ProcessingResultClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingResult, error) {
	return c.Query().Where(processingresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingResultClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingResultClient) Hooks() []Hook {
	return c.hooks.ProcessingResult
}

// Interceptors returns the client interceptors.
func (c *ProcessingResultClient) Interceptors() []Interceptor {
	return c.inters.ProcessingResult
}

func (c *ProcessingResultClient) mutate(ctx context.Context, m *ProcessingResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProcessingResult []ent.Hook
	}
	inters struct {
		ProcessingResult []ent.Interceptor
	}
)
