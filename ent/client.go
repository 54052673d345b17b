// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/steward-io/steward/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/ent/artifact"
	"github.com/steward-io/steward/ent/artifactcontent"
	"github.com/steward-io/steward/ent/auditentry"
	"github.com/steward-io/steward/ent/checkpoint"
	"github.com/steward-io/steward/ent/coherenceissue"
	"github.com/steward-io/steward/ent/domaintrustscore"
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/ent/project"
	"github.com/steward-io/steward/ent/quarantinedevent"
	"github.com/steward-io/steward/ent/storemeta"
	"github.com/steward-io/steward/ent/trustscore"
	"github.com/steward-io/steward/ent/workstream"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRecord is the client for interacting with the AgentRecord builders.
	AgentRecord *AgentRecordClient
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// ArtifactContent is the client for interacting with the ArtifactContent builders.
	ArtifactContent *ArtifactContentClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// CoherenceIssue is the client for interacting with the CoherenceIssue builders.
	CoherenceIssue *CoherenceIssueClient
	// DomainTrustScore is the client for interacting with the DomainTrustScore builders.
	DomainTrustScore *DomainTrustScoreClient
	// EventRecord is the client for interacting with the EventRecord builders.
	EventRecord *EventRecordClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// QuarantinedEvent is the client for interacting with the QuarantinedEvent builders.
	QuarantinedEvent *QuarantinedEventClient
	// StoreMeta is the client for interacting with the StoreMeta builders.
	StoreMeta *StoreMetaClient
	// TrustScore is the client for interacting with the TrustScore builders.
	TrustScore *TrustScoreClient
	// Workstream is the client for interacting with the Workstream builders.
	Workstream *WorkstreamClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRecord = NewAgentRecordClient(c.config)
	c.Artifact = NewArtifactClient(c.config)
	c.ArtifactContent = NewArtifactContentClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.CoherenceIssue = NewCoherenceIssueClient(c.config)
	c.DomainTrustScore = NewDomainTrustScoreClient(c.config)
	c.EventRecord = NewEventRecordClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.QuarantinedEvent = NewQuarantinedEventClient(c.config)
	c.StoreMeta = NewStoreMetaClient(c.config)
	c.TrustScore = NewTrustScoreClient(c.config)
	c.Workstream = NewWorkstreamClient(c.config)
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
		AgentRecord:      NewAgentRecordClient(cfg),
		Artifact:         NewArtifactClient(cfg),
		ArtifactContent:  NewArtifactContentClient(cfg),
		AuditEntry:       NewAuditEntryClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		CoherenceIssue:   NewCoherenceIssueClient(cfg),
		DomainTrustScore: NewDomainTrustScoreClient(cfg),
		EventRecord:      NewEventRecordClient(cfg),
		Project:          NewProjectClient(cfg),
		QuarantinedEvent: NewQuarantinedEventClient(cfg),
		StoreMeta:        NewStoreMetaClient(cfg),
		TrustScore:       NewTrustScoreClient(cfg),
		Workstream:       NewWorkstreamClient(cfg),
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
		AgentRecord:      NewAgentRecordClient(cfg),
		Artifact:         NewArtifactClient(cfg),
		ArtifactContent:  NewArtifactContentClient(cfg),
		AuditEntry:       NewAuditEntryClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		CoherenceIssue:   NewCoherenceIssueClient(cfg),
		DomainTrustScore: NewDomainTrustScoreClient(cfg),
		EventRecord:      NewEventRecordClient(cfg),
		Project:          NewProjectClient(cfg),
		QuarantinedEvent: NewQuarantinedEventClient(cfg),
		StoreMeta:        NewStoreMetaClient(cfg),
		TrustScore:       NewTrustScoreClient(cfg),
		Workstream:       NewWorkstreamClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRecord.
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
		c.AgentRecord, c.Artifact, c.ArtifactContent, c.AuditEntry, c.Checkpoint,
		c.CoherenceIssue, c.DomainTrustScore, c.EventRecord, c.Project,
		c.QuarantinedEvent, c.StoreMeta, c.TrustScore, c.Workstream,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRecord, c.Artifact, c.ArtifactContent, c.AuditEntry, c.Checkpoint,
		c.CoherenceIssue, c.DomainTrustScore, c.EventRecord, c.Project,
		c.QuarantinedEvent, c.StoreMeta, c.TrustScore, c.Workstream,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRecordMutation:
		return c.AgentRecord.mutate(ctx, m)
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *ArtifactContentMutation:
		return c.ArtifactContent.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *CoherenceIssueMutation:
		return c.CoherenceIssue.mutate(ctx, m)
	case *DomainTrustScoreMutation:
		return c.DomainTrustScore.mutate(ctx, m)
	case *EventRecordMutation:
		return c.EventRecord.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *QuarantinedEventMutation:
		return c.QuarantinedEvent.mutate(ctx, m)
	case *StoreMetaMutation:
		return c.StoreMeta.mutate(ctx, m)
	case *TrustScoreMutation:
		return c.TrustScore.mutate(ctx, m)
	case *WorkstreamMutation:
		return c.Workstream.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRecordClient is a client for the AgentRecord schema.
type AgentRecordClient struct {
	config
}

// NewAgentRecordClient returns a client for the AgentRecord from the given config.
func NewAgentRecordClient(c config) *AgentRecordClient {
	return &AgentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrecord.Hooks(f(g(h())))`.
func (c *AgentRecordClient) Use(hooks ...Hook) {
	c.hooks.AgentRecord = append(c.hooks.AgentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrecord.Intercept(f(g(h())))`.
func (c *AgentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRecord = append(c.inters.AgentRecord, interceptors...)
}

// Create returns a builder for creating a AgentRecord entity.
func (c *AgentRecordClient) Create() *AgentRecordCreate {
	mutation := newAgentRecordMutation(c.config, OpCreate)
	return &AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRecord entities.
func (c *AgentRecordClient) CreateBulk(builders ...*AgentRecordCreate) *AgentRecordCreateBulk {
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRecordClient) MapCreateBulk(slice any, setFunc func(*AgentRecordCreate, int)) *AgentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRecordCreateBulk{err: fmt.Errorf("calling to AgentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRecord.
func (c *AgentRecordClient) Update() *AgentRecordUpdate {
	mutation := newAgentRecordMutation(c.config, OpUpdate)
	return &AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRecordClient) UpdateOne(_m *AgentRecord) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecord(_m))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRecordClient) UpdateOneID(id string) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecordID(id))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRecord.
func (c *AgentRecordClient) Delete() *AgentRecordDelete {
	mutation := newAgentRecordMutation(c.config, OpDelete)
	return &AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRecordClient) DeleteOne(_m *AgentRecord) *AgentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRecordClient) DeleteOneID(id string) *AgentRecordDeleteOne {
	builder := c.Delete().Where(agentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRecordDeleteOne{builder}
}

// Query returns a query builder for AgentRecord.
func (c *AgentRecordClient) Query() *AgentRecordQuery {
	return &AgentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRecord entity by its id.
func (c *AgentRecordClient) Get(ctx context.Context, id string) (*AgentRecord, error) {
	return c.Query().Where(agentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRecordClient) GetX(ctx context.Context, id string) *AgentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentRecordClient) Hooks() []Hook {
	return c.hooks.AgentRecord
}

// Interceptors returns the client interceptors.
func (c *AgentRecordClient) Interceptors() []Interceptor {
	return c.inters.AgentRecord
}

func (c *AgentRecordClient) mutate(ctx context.Context, m *AgentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRecord mutation op: %q", m.Op())
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// ArtifactContentClient is a client for the ArtifactContent schema.
type ArtifactContentClient struct {
	config
}

// NewArtifactContentClient returns a client for the ArtifactContent from the given config.
func NewArtifactContentClient(c config) *ArtifactContentClient {
	return &ArtifactContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifactcontent.Hooks(f(g(h())))`.
func (c *ArtifactContentClient) Use(hooks ...Hook) {
	c.hooks.ArtifactContent = append(c.hooks.ArtifactContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifactcontent.Intercept(f(g(h())))`.
func (c *ArtifactContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArtifactContent = append(c.inters.ArtifactContent, interceptors...)
}

// Create returns a builder for creating a ArtifactContent entity.
func (c *ArtifactContentClient) Create() *ArtifactContentCreate {
	mutation := newArtifactContentMutation(c.config, OpCreate)
	return &ArtifactContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArtifactContent entities.
func (c *ArtifactContentClient) CreateBulk(builders ...*ArtifactContentCreate) *ArtifactContentCreateBulk {
	return &ArtifactContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactContentClient) MapCreateBulk(slice any, setFunc func(*ArtifactContentCreate, int)) *ArtifactContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactContentCreateBulk{err: fmt.Errorf("calling to ArtifactContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArtifactContent.
func (c *ArtifactContentClient) Update() *ArtifactContentUpdate {
	mutation := newArtifactContentMutation(c.config, OpUpdate)
	return &ArtifactContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactContentClient) UpdateOne(_m *ArtifactContent) *ArtifactContentUpdateOne {
	mutation := newArtifactContentMutation(c.config, OpUpdateOne, withArtifactContent(_m))
	return &ArtifactContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactContentClient) UpdateOneID(id int) *ArtifactContentUpdateOne {
	mutation := newArtifactContentMutation(c.config, OpUpdateOne, withArtifactContentID(id))
	return &ArtifactContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArtifactContent.
func (c *ArtifactContentClient) Delete() *ArtifactContentDelete {
	mutation := newArtifactContentMutation(c.config, OpDelete)
	return &ArtifactContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactContentClient) DeleteOne(_m *ArtifactContent) *ArtifactContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactContentClient) DeleteOneID(id int) *ArtifactContentDeleteOne {
	builder := c.Delete().Where(artifactcontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactContentDeleteOne{builder}
}

// Query returns a query builder for ArtifactContent.
func (c *ArtifactContentClient) Query() *ArtifactContentQuery {
	return &ArtifactContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifactContent},
		inters: c.Interceptors(),
	}
}

// Get returns a ArtifactContent entity by its id.
func (c *ArtifactContentClient) Get(ctx context.Context, id int) (*ArtifactContent, error) {
	return c.Query().Where(artifactcontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactContentClient) GetX(ctx context.Context, id int) *ArtifactContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactContentClient) Hooks() []Hook {
	return c.hooks.ArtifactContent
}

// Interceptors returns the client interceptors.
func (c *ArtifactContentClient) Interceptors() []Interceptor {
	return c.inters.ArtifactContent
}

func (c *ArtifactContentClient) mutate(ctx context.Context, m *ArtifactContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArtifactContent mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id int) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id int) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id int) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id int) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// CoherenceIssueClient is a client for the CoherenceIssue schema.
type CoherenceIssueClient struct {
	config
}

// NewCoherenceIssueClient returns a client for the CoherenceIssue from the given config.
func NewCoherenceIssueClient(c config) *CoherenceIssueClient {
	return &CoherenceIssueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coherenceissue.Hooks(f(g(h())))`.
func (c *CoherenceIssueClient) Use(hooks ...Hook) {
	c.hooks.CoherenceIssue = append(c.hooks.CoherenceIssue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coherenceissue.Intercept(f(g(h())))`.
func (c *CoherenceIssueClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoherenceIssue = append(c.inters.CoherenceIssue, interceptors...)
}

// Create returns a builder for creating a CoherenceIssue entity.
func (c *CoherenceIssueClient) Create() *CoherenceIssueCreate {
	mutation := newCoherenceIssueMutation(c.config, OpCreate)
	return &CoherenceIssueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoherenceIssue entities.
func (c *CoherenceIssueClient) CreateBulk(builders ...*CoherenceIssueCreate) *CoherenceIssueCreateBulk {
	return &CoherenceIssueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoherenceIssueClient) MapCreateBulk(slice any, setFunc func(*CoherenceIssueCreate, int)) *CoherenceIssueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoherenceIssueCreateBulk{err: fmt.Errorf("calling to CoherenceIssueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoherenceIssueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoherenceIssueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoherenceIssue.
func (c *CoherenceIssueClient) Update() *CoherenceIssueUpdate {
	mutation := newCoherenceIssueMutation(c.config, OpUpdate)
	return &CoherenceIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoherenceIssueClient) UpdateOne(_m *CoherenceIssue) *CoherenceIssueUpdateOne {
	mutation := newCoherenceIssueMutation(c.config, OpUpdateOne, withCoherenceIssue(_m))
	return &CoherenceIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoherenceIssueClient) UpdateOneID(id string) *CoherenceIssueUpdateOne {
	mutation := newCoherenceIssueMutation(c.config, OpUpdateOne, withCoherenceIssueID(id))
	return &CoherenceIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoherenceIssue.
func (c *CoherenceIssueClient) Delete() *CoherenceIssueDelete {
	mutation := newCoherenceIssueMutation(c.config, OpDelete)
	return &CoherenceIssueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoherenceIssueClient) DeleteOne(_m *CoherenceIssue) *CoherenceIssueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoherenceIssueClient) DeleteOneID(id string) *CoherenceIssueDeleteOne {
	builder := c.Delete().Where(coherenceissue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoherenceIssueDeleteOne{builder}
}

// Query returns a query builder for CoherenceIssue.
func (c *CoherenceIssueClient) Query() *CoherenceIssueQuery {
	return &CoherenceIssueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoherenceIssue},
		inters: c.Interceptors(),
	}
}

// Get returns a CoherenceIssue entity by its id.
func (c *CoherenceIssueClient) Get(ctx context.Context, id string) (*CoherenceIssue, error) {
	return c.Query().Where(coherenceissue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoherenceIssueClient) GetX(ctx context.Context, id string) *CoherenceIssue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoherenceIssueClient) Hooks() []Hook {
	return c.hooks.CoherenceIssue
}

// Interceptors returns the client interceptors.
func (c *CoherenceIssueClient) Interceptors() []Interceptor {
	return c.inters.CoherenceIssue
}

func (c *CoherenceIssueClient) mutate(ctx context.Context, m *CoherenceIssueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoherenceIssueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoherenceIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoherenceIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoherenceIssueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoherenceIssue mutation op: %q", m.Op())
	}
}

// DomainTrustScoreClient is a client for the DomainTrustScore schema.
type DomainTrustScoreClient struct {
	config
}

// NewDomainTrustScoreClient returns a client for the DomainTrustScore from the given config.
func NewDomainTrustScoreClient(c config) *DomainTrustScoreClient {
	return &DomainTrustScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domaintrustscore.Hooks(f(g(h())))`.
func (c *DomainTrustScoreClient) Use(hooks ...Hook) {
	c.hooks.DomainTrustScore = append(c.hooks.DomainTrustScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domaintrustscore.Intercept(f(g(h())))`.
func (c *DomainTrustScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainTrustScore = append(c.inters.DomainTrustScore, interceptors...)
}

// Create returns a builder for creating a DomainTrustScore entity.
func (c *DomainTrustScoreClient) Create() *DomainTrustScoreCreate {
	mutation := newDomainTrustScoreMutation(c.config, OpCreate)
	return &DomainTrustScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainTrustScore entities.
func (c *DomainTrustScoreClient) CreateBulk(builders ...*DomainTrustScoreCreate) *DomainTrustScoreCreateBulk {
	return &DomainTrustScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainTrustScoreClient) MapCreateBulk(slice any, setFunc func(*DomainTrustScoreCreate, int)) *DomainTrustScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainTrustScoreCreateBulk{err: fmt.Errorf("calling to DomainTrustScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainTrustScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainTrustScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainTrustScore.
func (c *DomainTrustScoreClient) Update() *DomainTrustScoreUpdate {
	mutation := newDomainTrustScoreMutation(c.config, OpUpdate)
	return &DomainTrustScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainTrustScoreClient) UpdateOne(_m *DomainTrustScore) *DomainTrustScoreUpdateOne {
	mutation := newDomainTrustScoreMutation(c.config, OpUpdateOne, withDomainTrustScore(_m))
	return &DomainTrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainTrustScoreClient) UpdateOneID(id int) *DomainTrustScoreUpdateOne {
	mutation := newDomainTrustScoreMutation(c.config, OpUpdateOne, withDomainTrustScoreID(id))
	return &DomainTrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainTrustScore.
func (c *DomainTrustScoreClient) Delete() *DomainTrustScoreDelete {
	mutation := newDomainTrustScoreMutation(c.config, OpDelete)
	return &DomainTrustScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainTrustScoreClient) DeleteOne(_m *DomainTrustScore) *DomainTrustScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainTrustScoreClient) DeleteOneID(id int) *DomainTrustScoreDeleteOne {
	builder := c.Delete().Where(domaintrustscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainTrustScoreDeleteOne{builder}
}

// Query returns a query builder for DomainTrustScore.
func (c *DomainTrustScoreClient) Query() *DomainTrustScoreQuery {
	return &DomainTrustScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainTrustScore},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainTrustScore entity by its id.
func (c *DomainTrustScoreClient) Get(ctx context.Context, id int) (*DomainTrustScore, error) {
	return c.Query().Where(domaintrustscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainTrustScoreClient) GetX(ctx context.Context, id int) *DomainTrustScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DomainTrustScoreClient) Hooks() []Hook {
	return c.hooks.DomainTrustScore
}

// Interceptors returns the client interceptors.
func (c *DomainTrustScoreClient) Interceptors() []Interceptor {
	return c.inters.DomainTrustScore
}

func (c *DomainTrustScoreClient) mutate(ctx context.Context, m *DomainTrustScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainTrustScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainTrustScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainTrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainTrustScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainTrustScore mutation op: %q", m.Op())
	}
}

// EventRecordClient is a client for the EventRecord schema.
type EventRecordClient struct {
	config
}

// NewEventRecordClient returns a client for the EventRecord from the given config.
func NewEventRecordClient(c config) *EventRecordClient {
	return &EventRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventrecord.Hooks(f(g(h())))`.
func (c *EventRecordClient) Use(hooks ...Hook) {
	c.hooks.EventRecord = append(c.hooks.EventRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventrecord.Intercept(f(g(h())))`.
func (c *EventRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventRecord = append(c.inters.EventRecord, interceptors...)
}

// Create returns a builder for creating a EventRecord entity.
func (c *EventRecordClient) Create() *EventRecordCreate {
	mutation := newEventRecordMutation(c.config, OpCreate)
	return &EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventRecord entities.
func (c *EventRecordClient) CreateBulk(builders ...*EventRecordCreate) *EventRecordCreateBulk {
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventRecordClient) MapCreateBulk(slice any, setFunc func(*EventRecordCreate, int)) *EventRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventRecordCreateBulk{err: fmt.Errorf("calling to EventRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventRecord.
func (c *EventRecordClient) Update() *EventRecordUpdate {
	mutation := newEventRecordMutation(c.config, OpUpdate)
	return &EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventRecordClient) UpdateOne(_m *EventRecord) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecord(_m))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventRecordClient) UpdateOneID(id int) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecordID(id))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventRecord.
func (c *EventRecordClient) Delete() *EventRecordDelete {
	mutation := newEventRecordMutation(c.config, OpDelete)
	return &EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventRecordClient) DeleteOne(_m *EventRecord) *EventRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventRecordClient) DeleteOneID(id int) *EventRecordDeleteOne {
	builder := c.Delete().Where(eventrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventRecordDeleteOne{builder}
}

// Query returns a query builder for EventRecord.
func (c *EventRecordClient) Query() *EventRecordQuery {
	return &EventRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a EventRecord entity by its id.
func (c *EventRecordClient) Get(ctx context.Context, id int) (*EventRecord, error) {
	return c.Query().Where(eventrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventRecordClient) GetX(ctx context.Context, id int) *EventRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventRecordClient) Hooks() []Hook {
	return c.hooks.EventRecord
}

// Interceptors returns the client interceptors.
func (c *EventRecordClient) Interceptors() []Interceptor {
	return c.inters.EventRecord
}

func (c *EventRecordClient) mutate(ctx context.Context, m *EventRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventRecord mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// QuarantinedEventClient is a client for the QuarantinedEvent schema.
type QuarantinedEventClient struct {
	config
}

// NewQuarantinedEventClient returns a client for the QuarantinedEvent from the given config.
func NewQuarantinedEventClient(c config) *QuarantinedEventClient {
	return &QuarantinedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quarantinedevent.Hooks(f(g(h())))`.
func (c *QuarantinedEventClient) Use(hooks ...Hook) {
	c.hooks.QuarantinedEvent = append(c.hooks.QuarantinedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quarantinedevent.Intercept(f(g(h())))`.
func (c *QuarantinedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuarantinedEvent = append(c.inters.QuarantinedEvent, interceptors...)
}

// Create returns a builder for creating a QuarantinedEvent entity.
func (c *QuarantinedEventClient) Create() *QuarantinedEventCreate {
	mutation := newQuarantinedEventMutation(c.config, OpCreate)
	return &QuarantinedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuarantinedEvent entities.
func (c *QuarantinedEventClient) CreateBulk(builders ...*QuarantinedEventCreate) *QuarantinedEventCreateBulk {
	return &QuarantinedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuarantinedEventClient) MapCreateBulk(slice any, setFunc func(*QuarantinedEventCreate, int)) *QuarantinedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuarantinedEventCreateBulk{err: fmt.Errorf("calling to QuarantinedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuarantinedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuarantinedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuarantinedEvent.
func (c *QuarantinedEventClient) Update() *QuarantinedEventUpdate {
	mutation := newQuarantinedEventMutation(c.config, OpUpdate)
	return &QuarantinedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuarantinedEventClient) UpdateOne(_m *QuarantinedEvent) *QuarantinedEventUpdateOne {
	mutation := newQuarantinedEventMutation(c.config, OpUpdateOne, withQuarantinedEvent(_m))
	return &QuarantinedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuarantinedEventClient) UpdateOneID(id int) *QuarantinedEventUpdateOne {
	mutation := newQuarantinedEventMutation(c.config, OpUpdateOne, withQuarantinedEventID(id))
	return &QuarantinedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuarantinedEvent.
func (c *QuarantinedEventClient) Delete() *QuarantinedEventDelete {
	mutation := newQuarantinedEventMutation(c.config, OpDelete)
	return &QuarantinedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuarantinedEventClient) DeleteOne(_m *QuarantinedEvent) *QuarantinedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuarantinedEventClient) DeleteOneID(id int) *QuarantinedEventDeleteOne {
	builder := c.Delete().Where(quarantinedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuarantinedEventDeleteOne{builder}
}

// Query returns a query builder for QuarantinedEvent.
func (c *QuarantinedEventClient) Query() *QuarantinedEventQuery {
	return &QuarantinedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuarantinedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuarantinedEvent entity by its id.
func (c *QuarantinedEventClient) Get(ctx context.Context, id int) (*QuarantinedEvent, error) {
	return c.Query().Where(quarantinedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuarantinedEventClient) GetX(ctx context.Context, id int) *QuarantinedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuarantinedEventClient) Hooks() []Hook {
	return c.hooks.QuarantinedEvent
}

// Interceptors returns the client interceptors.
func (c *QuarantinedEventClient) Interceptors() []Interceptor {
	return c.inters.QuarantinedEvent
}

func (c *QuarantinedEventClient) mutate(ctx context.Context, m *QuarantinedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuarantinedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuarantinedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuarantinedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuarantinedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuarantinedEvent mutation op: %q", m.Op())
	}
}

// StoreMetaClient is a client for the StoreMeta schema.
type StoreMetaClient struct {
	config
}

// NewStoreMetaClient returns a client for the StoreMeta from the given config.
func NewStoreMetaClient(c config) *StoreMetaClient {
	return &StoreMetaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `storemeta.Hooks(f(g(h())))`.
func (c *StoreMetaClient) Use(hooks ...Hook) {
	c.hooks.StoreMeta = append(c.hooks.StoreMeta, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `storemeta.Intercept(f(g(h())))`.
func (c *StoreMetaClient) Intercept(interceptors ...Interceptor) {
	c.inters.StoreMeta = append(c.inters.StoreMeta, interceptors...)
}

// Create returns a builder for creating a StoreMeta entity.
func (c *StoreMetaClient) Create() *StoreMetaCreate {
	mutation := newStoreMetaMutation(c.config, OpCreate)
	return &StoreMetaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StoreMeta entities.
func (c *StoreMetaClient) CreateBulk(builders ...*StoreMetaCreate) *StoreMetaCreateBulk {
	return &StoreMetaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoreMetaClient) MapCreateBulk(slice any, setFunc func(*StoreMetaCreate, int)) *StoreMetaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoreMetaCreateBulk{err: fmt.Errorf("calling to StoreMetaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoreMetaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoreMetaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StoreMeta.
func (c *StoreMetaClient) Update() *StoreMetaUpdate {
	mutation := newStoreMetaMutation(c.config, OpUpdate)
	return &StoreMetaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoreMetaClient) UpdateOne(_m *StoreMeta) *StoreMetaUpdateOne {
	mutation := newStoreMetaMutation(c.config, OpUpdateOne, withStoreMeta(_m))
	return &StoreMetaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoreMetaClient) UpdateOneID(id string) *StoreMetaUpdateOne {
	mutation := newStoreMetaMutation(c.config, OpUpdateOne, withStoreMetaID(id))
	return &StoreMetaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StoreMeta.
func (c *StoreMetaClient) Delete() *StoreMetaDelete {
	mutation := newStoreMetaMutation(c.config, OpDelete)
	return &StoreMetaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoreMetaClient) DeleteOne(_m *StoreMeta) *StoreMetaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoreMetaClient) DeleteOneID(id string) *StoreMetaDeleteOne {
	builder := c.Delete().Where(storemeta.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoreMetaDeleteOne{builder}
}

// Query returns a query builder for StoreMeta.
func (c *StoreMetaClient) Query() *StoreMetaQuery {
	return &StoreMetaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStoreMeta},
		inters: c.Interceptors(),
	}
}

// Get returns a StoreMeta entity by its id.
func (c *StoreMetaClient) Get(ctx context.Context, id string) (*StoreMeta, error) {
	return c.Query().Where(storemeta.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoreMetaClient) GetX(ctx context.Context, id string) *StoreMeta {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StoreMetaClient) Hooks() []Hook {
	return c.hooks.StoreMeta
}

// Interceptors returns the client interceptors.
func (c *StoreMetaClient) Interceptors() []Interceptor {
	return c.inters.StoreMeta
}

func (c *StoreMetaClient) mutate(ctx context.Context, m *StoreMetaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoreMetaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoreMetaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoreMetaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoreMetaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StoreMeta mutation op: %q", m.Op())
	}
}

// TrustScoreClient is a client for the TrustScore schema.
type TrustScoreClient struct {
	config
}

// NewTrustScoreClient returns a client for the TrustScore from the given config.
func NewTrustScoreClient(c config) *TrustScoreClient {
	return &TrustScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trustscore.Hooks(f(g(h())))`.
func (c *TrustScoreClient) Use(hooks ...Hook) {
	c.hooks.TrustScore = append(c.hooks.TrustScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trustscore.Intercept(f(g(h())))`.
func (c *TrustScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrustScore = append(c.inters.TrustScore, interceptors...)
}

// Create returns a builder for creating a TrustScore entity.
func (c *TrustScoreClient) Create() *TrustScoreCreate {
	mutation := newTrustScoreMutation(c.config, OpCreate)
	return &TrustScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrustScore entities.
func (c *TrustScoreClient) CreateBulk(builders ...*TrustScoreCreate) *TrustScoreCreateBulk {
	return &TrustScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrustScoreClient) MapCreateBulk(slice any, setFunc func(*TrustScoreCreate, int)) *TrustScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrustScoreCreateBulk{err: fmt.Errorf("calling to TrustScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrustScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrustScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrustScore.
func (c *TrustScoreClient) Update() *TrustScoreUpdate {
	mutation := newTrustScoreMutation(c.config, OpUpdate)
	return &TrustScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrustScoreClient) UpdateOne(_m *TrustScore) *TrustScoreUpdateOne {
	mutation := newTrustScoreMutation(c.config, OpUpdateOne, withTrustScore(_m))
	return &TrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrustScoreClient) UpdateOneID(id string) *TrustScoreUpdateOne {
	mutation := newTrustScoreMutation(c.config, OpUpdateOne, withTrustScoreID(id))
	return &TrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrustScore.
func (c *TrustScoreClient) Delete() *TrustScoreDelete {
	mutation := newTrustScoreMutation(c.config, OpDelete)
	return &TrustScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrustScoreClient) DeleteOne(_m *TrustScore) *TrustScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrustScoreClient) DeleteOneID(id string) *TrustScoreDeleteOne {
	builder := c.Delete().Where(trustscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrustScoreDeleteOne{builder}
}

// Query returns a query builder for TrustScore.
func (c *TrustScoreClient) Query() *TrustScoreQuery {
	return &TrustScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrustScore},
		inters: c.Interceptors(),
	}
}

// Get returns a TrustScore entity by its id.
func (c *TrustScoreClient) Get(ctx context.Context, id string) (*TrustScore, error) {
	return c.Query().Where(trustscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrustScoreClient) GetX(ctx context.Context, id string) *TrustScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrustScoreClient) Hooks() []Hook {
	return c.hooks.TrustScore
}

// Interceptors returns the client interceptors.
func (c *TrustScoreClient) Interceptors() []Interceptor {
	return c.inters.TrustScore
}

func (c *TrustScoreClient) mutate(ctx context.Context, m *TrustScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrustScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrustScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrustScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrustScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrustScore mutation op: %q", m.Op())
	}
}

// WorkstreamClient is a client for the Workstream schema.
type WorkstreamClient struct {
	config
}

// NewWorkstreamClient returns a client for the Workstream from the given config.
func NewWorkstreamClient(c config) *WorkstreamClient {
	return &WorkstreamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workstream.Hooks(f(g(h())))`.
func (c *WorkstreamClient) Use(hooks ...Hook) {
	c.hooks.Workstream = append(c.hooks.Workstream, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workstream.Intercept(f(g(h())))`.
func (c *WorkstreamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workstream = append(c.inters.Workstream, interceptors...)
}

// Create returns a builder for creating a Workstream entity.
func (c *WorkstreamClient) Create() *WorkstreamCreate {
	mutation := newWorkstreamMutation(c.config, OpCreate)
	return &WorkstreamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workstream entities.
func (c *WorkstreamClient) CreateBulk(builders ...*WorkstreamCreate) *WorkstreamCreateBulk {
	return &WorkstreamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkstreamClient) MapCreateBulk(slice any, setFunc func(*WorkstreamCreate, int)) *WorkstreamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkstreamCreateBulk{err: fmt.Errorf("calling to WorkstreamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkstreamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkstreamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workstream.
func (c *WorkstreamClient) Update() *WorkstreamUpdate {
	mutation := newWorkstreamMutation(c.config, OpUpdate)
	return &WorkstreamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkstreamClient) UpdateOne(_m *Workstream) *WorkstreamUpdateOne {
	mutation := newWorkstreamMutation(c.config, OpUpdateOne, withWorkstream(_m))
	return &WorkstreamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkstreamClient) UpdateOneID(id string) *WorkstreamUpdateOne {
	mutation := newWorkstreamMutation(c.config, OpUpdateOne, withWorkstreamID(id))
	return &WorkstreamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workstream.
func (c *WorkstreamClient) Delete() *WorkstreamDelete {
	mutation := newWorkstreamMutation(c.config, OpDelete)
	return &WorkstreamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkstreamClient) DeleteOne(_m *Workstream) *WorkstreamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkstreamClient) DeleteOneID(id string) *WorkstreamDeleteOne {
	builder := c.Delete().Where(workstream.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkstreamDeleteOne{builder}
}

// Query returns a query builder for Workstream.
func (c *WorkstreamClient) Query() *WorkstreamQuery {
	return &WorkstreamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkstream},
		inters: c.Interceptors(),
	}
}

// Get returns a Workstream entity by its id.
func (c *WorkstreamClient) Get(ctx context.Context, id string) (*Workstream, error) {
	return c.Query().Where(workstream.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkstreamClient) GetX(ctx context.Context, id string) *Workstream {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkstreamClient) Hooks() []Hook {
	return c.hooks.Workstream
}

// Interceptors returns the client interceptors.
func (c *WorkstreamClient) Interceptors() []Interceptor {
	return c.inters.Workstream
}

func (c *WorkstreamClient) mutate(ctx context.Context, m *WorkstreamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkstreamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkstreamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkstreamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkstreamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workstream mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRecord, Artifact, ArtifactContent, AuditEntry, Checkpoint, CoherenceIssue,
		DomainTrustScore, EventRecord, Project, QuarantinedEvent, StoreMeta,
		TrustScore, Workstream []ent.Hook
	}
	inters struct {
		AgentRecord, Artifact, ArtifactContent, AuditEntry, Checkpoint, CoherenceIssue,
		DomainTrustScore, EventRecord, Project, QuarantinedEvent, StoreMeta,
		TrustScore, Workstream []ent.Interceptor
	}
)
