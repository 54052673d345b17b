// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/ent/artifact"
	"github.com/steward-io/steward/ent/artifactcontent"
	"github.com/steward-io/steward/ent/auditentry"
	"github.com/steward-io/steward/ent/checkpoint"
	"github.com/steward-io/steward/ent/coherenceissue"
	"github.com/steward-io/steward/ent/domaintrustscore"
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/ent/project"
	"github.com/steward-io/steward/ent/quarantinedevent"
	"github.com/steward-io/steward/ent/storemeta"
	"github.com/steward-io/steward/ent/trustscore"
	"github.com/steward-io/steward/ent/workstream"
	"github.com/steward-io/steward/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRecord      = "AgentRecord"
	TypeArtifact         = "Artifact"
	TypeArtifactContent  = "ArtifactContent"
	TypeAuditEntry       = "AuditEntry"
	TypeCheckpoint       = "Checkpoint"
	TypeCoherenceIssue   = "CoherenceIssue"
	TypeDomainTrustScore = "DomainTrustScore"
	TypeEventRecord      = "EventRecord"
	TypeProject          = "Project"
	TypeQuarantinedEvent = "QuarantinedEvent"
	TypeStoreMeta        = "StoreMeta"
	TypeTrustScore       = "TrustScore"
	TypeWorkstream       = "Workstream"
)

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	role                       *string
	workstream                 *string
	readable_workstreams       *[]string
	appendreadable_workstreams []string
	plugin_name                *string
	status                     *agentrecord.Status
	session_id                 *string
	model_preference           *string
	brief                      *models.AgentBrief
	spawned_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*AgentRecord, error)
	predicates                 []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id string) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRecord entities.
func (m *AgentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *AgentRecordMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentRecordMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentRecordMutation) ResetRole() {
	m.role = nil
}

// SetWorkstream sets the "workstream" field.
func (m *AgentRecordMutation) SetWorkstream(s string) {
	m.workstream = &s
}

// Workstream returns the value of the "workstream" field in the mutation.
func (m *AgentRecordMutation) Workstream() (r string, exists bool) {
	v := m.workstream
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkstream returns the old "workstream" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldWorkstream(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkstream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkstream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkstream: %w", err)
	}
	return oldValue.Workstream, nil
}

// ResetWorkstream resets all changes to the "workstream" field.
func (m *AgentRecordMutation) ResetWorkstream() {
	m.workstream = nil
}

// SetReadableWorkstreams sets the "readable_workstreams" field.
func (m *AgentRecordMutation) SetReadableWorkstreams(s []string) {
	m.readable_workstreams = &s
	m.appendreadable_workstreams = nil
}

// ReadableWorkstreams returns the value of the "readable_workstreams" field in the mutation.
func (m *AgentRecordMutation) ReadableWorkstreams() (r []string, exists bool) {
	v := m.readable_workstreams
	if v == nil {
		return
	}
	return *v, true
}

// OldReadableWorkstreams returns the old "readable_workstreams" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldReadableWorkstreams(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadableWorkstreams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadableWorkstreams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadableWorkstreams: %w", err)
	}
	return oldValue.ReadableWorkstreams, nil
}

// AppendReadableWorkstreams adds s to the "readable_workstreams" field.
func (m *AgentRecordMutation) AppendReadableWorkstreams(s []string) {
	m.appendreadable_workstreams = append(m.appendreadable_workstreams, s...)
}

// AppendedReadableWorkstreams returns the list of values that were appended to the "readable_workstreams" field in this mutation.
func (m *AgentRecordMutation) AppendedReadableWorkstreams() ([]string, bool) {
	if len(m.appendreadable_workstreams) == 0 {
		return nil, false
	}
	return m.appendreadable_workstreams, true
}

// ClearReadableWorkstreams clears the value of the "readable_workstreams" field.
func (m *AgentRecordMutation) ClearReadableWorkstreams() {
	m.readable_workstreams = nil
	m.appendreadable_workstreams = nil
	m.clearedFields[agentrecord.FieldReadableWorkstreams] = struct{}{}
}

// ReadableWorkstreamsCleared returns if the "readable_workstreams" field was cleared in this mutation.
func (m *AgentRecordMutation) ReadableWorkstreamsCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldReadableWorkstreams]
	return ok
}

// ResetReadableWorkstreams resets all changes to the "readable_workstreams" field.
func (m *AgentRecordMutation) ResetReadableWorkstreams() {
	m.readable_workstreams = nil
	m.appendreadable_workstreams = nil
	delete(m.clearedFields, agentrecord.FieldReadableWorkstreams)
}

// SetPluginName sets the "plugin_name" field.
func (m *AgentRecordMutation) SetPluginName(s string) {
	m.plugin_name = &s
}

// PluginName returns the value of the "plugin_name" field in the mutation.
func (m *AgentRecordMutation) PluginName() (r string, exists bool) {
	v := m.plugin_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginName returns the old "plugin_name" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldPluginName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginName: %w", err)
	}
	return oldValue.PluginName, nil
}

// ResetPluginName resets all changes to the "plugin_name" field.
func (m *AgentRecordMutation) ResetPluginName() {
	m.plugin_name = nil
}

// SetStatus sets the "status" field.
func (m *AgentRecordMutation) SetStatus(a agentrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRecordMutation) Status() (r agentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldStatus(ctx context.Context) (v agentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRecordMutation) ResetStatus() {
	m.status = nil
}

// SetSessionID sets the "session_id" field.
func (m *AgentRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AgentRecordMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[agentrecord.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AgentRecordMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentRecordMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, agentrecord.FieldSessionID)
}

// SetModelPreference sets the "model_preference" field.
func (m *AgentRecordMutation) SetModelPreference(s string) {
	m.model_preference = &s
}

// ModelPreference returns the value of the "model_preference" field in the mutation.
func (m *AgentRecordMutation) ModelPreference() (r string, exists bool) {
	v := m.model_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldModelPreference returns the old "model_preference" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldModelPreference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelPreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelPreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelPreference: %w", err)
	}
	return oldValue.ModelPreference, nil
}

// ClearModelPreference clears the value of the "model_preference" field.
func (m *AgentRecordMutation) ClearModelPreference() {
	m.model_preference = nil
	m.clearedFields[agentrecord.FieldModelPreference] = struct{}{}
}

// ModelPreferenceCleared returns if the "model_preference" field was cleared in this mutation.
func (m *AgentRecordMutation) ModelPreferenceCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldModelPreference]
	return ok
}

// ResetModelPreference resets all changes to the "model_preference" field.
func (m *AgentRecordMutation) ResetModelPreference() {
	m.model_preference = nil
	delete(m.clearedFields, agentrecord.FieldModelPreference)
}

// SetBrief sets the "brief" field.
func (m *AgentRecordMutation) SetBrief(mb models.AgentBrief) {
	m.brief = &mb
}

// Brief returns the value of the "brief" field in the mutation.
func (m *AgentRecordMutation) Brief() (r models.AgentBrief, exists bool) {
	v := m.brief
	if v == nil {
		return
	}
	return *v, true
}

// OldBrief returns the old "brief" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldBrief(ctx context.Context) (v models.AgentBrief, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrief is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrief requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrief: %w", err)
	}
	return oldValue.Brief, nil
}

// ClearBrief clears the value of the "brief" field.
func (m *AgentRecordMutation) ClearBrief() {
	m.brief = nil
	m.clearedFields[agentrecord.FieldBrief] = struct{}{}
}

// BriefCleared returns if the "brief" field was cleared in this mutation.
func (m *AgentRecordMutation) BriefCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldBrief]
	return ok
}

// ResetBrief resets all changes to the "brief" field.
func (m *AgentRecordMutation) ResetBrief() {
	m.brief = nil
	delete(m.clearedFields, agentrecord.FieldBrief)
}

// SetSpawnedAt sets the "spawned_at" field.
func (m *AgentRecordMutation) SetSpawnedAt(t time.Time) {
	m.spawned_at = &t
}

// SpawnedAt returns the value of the "spawned_at" field in the mutation.
func (m *AgentRecordMutation) SpawnedAt() (r time.Time, exists bool) {
	v := m.spawned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSpawnedAt returns the old "spawned_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldSpawnedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpawnedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpawnedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpawnedAt: %w", err)
	}
	return oldValue.SpawnedAt, nil
}

// ResetSpawnedAt resets all changes to the "spawned_at" field.
func (m *AgentRecordMutation) ResetSpawnedAt() {
	m.spawned_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.role != nil {
		fields = append(fields, agentrecord.FieldRole)
	}
	if m.workstream != nil {
		fields = append(fields, agentrecord.FieldWorkstream)
	}
	if m.readable_workstreams != nil {
		fields = append(fields, agentrecord.FieldReadableWorkstreams)
	}
	if m.plugin_name != nil {
		fields = append(fields, agentrecord.FieldPluginName)
	}
	if m.status != nil {
		fields = append(fields, agentrecord.FieldStatus)
	}
	if m.session_id != nil {
		fields = append(fields, agentrecord.FieldSessionID)
	}
	if m.model_preference != nil {
		fields = append(fields, agentrecord.FieldModelPreference)
	}
	if m.brief != nil {
		fields = append(fields, agentrecord.FieldBrief)
	}
	if m.spawned_at != nil {
		fields = append(fields, agentrecord.FieldSpawnedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldRole:
		return m.Role()
	case agentrecord.FieldWorkstream:
		return m.Workstream()
	case agentrecord.FieldReadableWorkstreams:
		return m.ReadableWorkstreams()
	case agentrecord.FieldPluginName:
		return m.PluginName()
	case agentrecord.FieldStatus:
		return m.Status()
	case agentrecord.FieldSessionID:
		return m.SessionID()
	case agentrecord.FieldModelPreference:
		return m.ModelPreference()
	case agentrecord.FieldBrief:
		return m.Brief()
	case agentrecord.FieldSpawnedAt:
		return m.SpawnedAt()
	case agentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldRole:
		return m.OldRole(ctx)
	case agentrecord.FieldWorkstream:
		return m.OldWorkstream(ctx)
	case agentrecord.FieldReadableWorkstreams:
		return m.OldReadableWorkstreams(ctx)
	case agentrecord.FieldPluginName:
		return m.OldPluginName(ctx)
	case agentrecord.FieldStatus:
		return m.OldStatus(ctx)
	case agentrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentrecord.FieldModelPreference:
		return m.OldModelPreference(ctx)
	case agentrecord.FieldBrief:
		return m.OldBrief(ctx)
	case agentrecord.FieldSpawnedAt:
		return m.OldSpawnedAt(ctx)
	case agentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentrecord.FieldWorkstream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkstream(v)
		return nil
	case agentrecord.FieldReadableWorkstreams:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadableWorkstreams(v)
		return nil
	case agentrecord.FieldPluginName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginName(v)
		return nil
	case agentrecord.FieldStatus:
		v, ok := value.(agentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentrecord.FieldModelPreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelPreference(v)
		return nil
	case agentrecord.FieldBrief:
		v, ok := value.(models.AgentBrief)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrief(v)
		return nil
	case agentrecord.FieldSpawnedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpawnedAt(v)
		return nil
	case agentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldReadableWorkstreams) {
		fields = append(fields, agentrecord.FieldReadableWorkstreams)
	}
	if m.FieldCleared(agentrecord.FieldSessionID) {
		fields = append(fields, agentrecord.FieldSessionID)
	}
	if m.FieldCleared(agentrecord.FieldModelPreference) {
		fields = append(fields, agentrecord.FieldModelPreference)
	}
	if m.FieldCleared(agentrecord.FieldBrief) {
		fields = append(fields, agentrecord.FieldBrief)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldReadableWorkstreams:
		m.ClearReadableWorkstreams()
		return nil
	case agentrecord.FieldSessionID:
		m.ClearSessionID()
		return nil
	case agentrecord.FieldModelPreference:
		m.ClearModelPreference()
		return nil
	case agentrecord.FieldBrief:
		m.ClearBrief()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldRole:
		m.ResetRole()
		return nil
	case agentrecord.FieldWorkstream:
		m.ResetWorkstream()
		return nil
	case agentrecord.FieldReadableWorkstreams:
		m.ResetReadableWorkstreams()
		return nil
	case agentrecord.FieldPluginName:
		m.ResetPluginName()
		return nil
	case agentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentrecord.FieldModelPreference:
		m.ResetModelPreference()
		return nil
	case agentrecord.FieldBrief:
		m.ResetBrief()
		return nil
	case agentrecord.FieldSpawnedAt:
		m.ResetSpawnedAt()
		return nil
	case agentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	kind             *artifact.Kind
	workstream       *string
	status           *artifact.Status
	quality_score    *float64
	addquality_score *float64
	created_by       *string
	created_at       *time.Time
	updated_at       *time.Time
	sources          *[]string
	appendsources    []string
	uri              *string
	mime_type        *string
	size_bytes       *int64
	addsize_bytes    *int64
	content_hash     *string
	summary          *string
	version          *int
	addversion       *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Artifact, error)
	predicates       []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ArtifactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ArtifactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ArtifactMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *ArtifactMutation) SetKind(a artifact.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ArtifactMutation) Kind() (r artifact.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldKind(ctx context.Context) (v artifact.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ArtifactMutation) ResetKind() {
	m.kind = nil
}

// SetWorkstream sets the "workstream" field.
func (m *ArtifactMutation) SetWorkstream(s string) {
	m.workstream = &s
}

// Workstream returns the value of the "workstream" field in the mutation.
func (m *ArtifactMutation) Workstream() (r string, exists bool) {
	v := m.workstream
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkstream returns the old "workstream" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldWorkstream(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkstream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkstream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkstream: %w", err)
	}
	return oldValue.Workstream, nil
}

// ResetWorkstream resets all changes to the "workstream" field.
func (m *ArtifactMutation) ResetWorkstream() {
	m.workstream = nil
}

// SetStatus sets the "status" field.
func (m *ArtifactMutation) SetStatus(a artifact.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ArtifactMutation) Status() (r artifact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStatus(ctx context.Context) (v artifact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ArtifactMutation) ResetStatus() {
	m.status = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *ArtifactMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ArtifactMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ArtifactMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ArtifactMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ArtifactMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ArtifactMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ArtifactMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ArtifactMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSources sets the "sources" field.
func (m *ArtifactMutation) SetSources(s []string) {
	m.sources = &s
	m.appendsources = nil
}

// Sources returns the value of the "sources" field in the mutation.
func (m *ArtifactMutation) Sources() (r []string, exists bool) {
	v := m.sources
	if v == nil {
		return
	}
	return *v, true
}

// OldSources returns the old "sources" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSources: %w", err)
	}
	return oldValue.Sources, nil
}

// AppendSources adds s to the "sources" field.
func (m *ArtifactMutation) AppendSources(s []string) {
	m.appendsources = append(m.appendsources, s...)
}

// AppendedSources returns the list of values that were appended to the "sources" field in this mutation.
func (m *ArtifactMutation) AppendedSources() ([]string, bool) {
	if len(m.appendsources) == 0 {
		return nil, false
	}
	return m.appendsources, true
}

// ClearSources clears the value of the "sources" field.
func (m *ArtifactMutation) ClearSources() {
	m.sources = nil
	m.appendsources = nil
	m.clearedFields[artifact.FieldSources] = struct{}{}
}

// SourcesCleared returns if the "sources" field was cleared in this mutation.
func (m *ArtifactMutation) SourcesCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSources]
	return ok
}

// ResetSources resets all changes to the "sources" field.
func (m *ArtifactMutation) ResetSources() {
	m.sources = nil
	m.appendsources = nil
	delete(m.clearedFields, artifact.FieldSources)
}

// SetURI sets the "uri" field.
func (m *ArtifactMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *ArtifactMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ClearURI clears the value of the "uri" field.
func (m *ArtifactMutation) ClearURI() {
	m.uri = nil
	m.clearedFields[artifact.FieldURI] = struct{}{}
}

// URICleared returns if the "uri" field was cleared in this mutation.
func (m *ArtifactMutation) URICleared() bool {
	_, ok := m.clearedFields[artifact.FieldURI]
	return ok
}

// ResetURI resets all changes to the "uri" field.
func (m *ArtifactMutation) ResetURI() {
	m.uri = nil
	delete(m.clearedFields, artifact.FieldURI)
}

// SetMimeType sets the "mime_type" field.
func (m *ArtifactMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ArtifactMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *ArtifactMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[artifact.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *ArtifactMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[artifact.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ArtifactMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, artifact.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *ArtifactMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[artifact.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *ArtifactMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, artifact.FieldSizeBytes)
}

// SetContentHash sets the "content_hash" field.
func (m *ArtifactMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ArtifactMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *ArtifactMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[artifact.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *ArtifactMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[artifact.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ArtifactMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, artifact.FieldContentHash)
}

// SetSummary sets the "summary" field.
func (m *ArtifactMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArtifactMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArtifactMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[artifact.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArtifactMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArtifactMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, artifact.FieldSummary)
}

// SetVersion sets the "version" field.
func (m *ArtifactMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ArtifactMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ArtifactMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ArtifactMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ArtifactMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, artifact.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, artifact.FieldKind)
	}
	if m.workstream != nil {
		fields = append(fields, artifact.FieldWorkstream)
	}
	if m.status != nil {
		fields = append(fields, artifact.FieldStatus)
	}
	if m.quality_score != nil {
		fields = append(fields, artifact.FieldQualityScore)
	}
	if m.created_by != nil {
		fields = append(fields, artifact.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, artifact.FieldUpdatedAt)
	}
	if m.sources != nil {
		fields = append(fields, artifact.FieldSources)
	}
	if m.uri != nil {
		fields = append(fields, artifact.FieldURI)
	}
	if m.mime_type != nil {
		fields = append(fields, artifact.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.content_hash != nil {
		fields = append(fields, artifact.FieldContentHash)
	}
	if m.summary != nil {
		fields = append(fields, artifact.FieldSummary)
	}
	if m.version != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldName:
		return m.Name()
	case artifact.FieldKind:
		return m.Kind()
	case artifact.FieldWorkstream:
		return m.Workstream()
	case artifact.FieldStatus:
		return m.Status()
	case artifact.FieldQualityScore:
		return m.QualityScore()
	case artifact.FieldCreatedBy:
		return m.CreatedBy()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	case artifact.FieldUpdatedAt:
		return m.UpdatedAt()
	case artifact.FieldSources:
		return m.Sources()
	case artifact.FieldURI:
		return m.URI()
	case artifact.FieldMimeType:
		return m.MimeType()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldContentHash:
		return m.ContentHash()
	case artifact.FieldSummary:
		return m.Summary()
	case artifact.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldName:
		return m.OldName(ctx)
	case artifact.FieldKind:
		return m.OldKind(ctx)
	case artifact.FieldWorkstream:
		return m.OldWorkstream(ctx)
	case artifact.FieldStatus:
		return m.OldStatus(ctx)
	case artifact.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case artifact.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case artifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case artifact.FieldSources:
		return m.OldSources(ctx)
	case artifact.FieldURI:
		return m.OldURI(ctx)
	case artifact.FieldMimeType:
		return m.OldMimeType(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldContentHash:
		return m.OldContentHash(ctx)
	case artifact.FieldSummary:
		return m.OldSummary(ctx)
	case artifact.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case artifact.FieldKind:
		v, ok := value.(artifact.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case artifact.FieldWorkstream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkstream(v)
		return nil
	case artifact.FieldStatus:
		v, ok := value.(artifact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case artifact.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case artifact.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case artifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case artifact.FieldSources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSources(v)
		return nil
	case artifact.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case artifact.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case artifact.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, artifact.FieldQualityScore)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.addversion != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldQualityScore:
		return m.AddedQualityScore()
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	case artifact.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldSources) {
		fields = append(fields, artifact.FieldSources)
	}
	if m.FieldCleared(artifact.FieldURI) {
		fields = append(fields, artifact.FieldURI)
	}
	if m.FieldCleared(artifact.FieldMimeType) {
		fields = append(fields, artifact.FieldMimeType)
	}
	if m.FieldCleared(artifact.FieldSizeBytes) {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.FieldCleared(artifact.FieldContentHash) {
		fields = append(fields, artifact.FieldContentHash)
	}
	if m.FieldCleared(artifact.FieldSummary) {
		fields = append(fields, artifact.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldSources:
		m.ClearSources()
		return nil
	case artifact.FieldURI:
		m.ClearURI()
		return nil
	case artifact.FieldMimeType:
		m.ClearMimeType()
		return nil
	case artifact.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	case artifact.FieldContentHash:
		m.ClearContentHash()
		return nil
	case artifact.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldName:
		m.ResetName()
		return nil
	case artifact.FieldKind:
		m.ResetKind()
		return nil
	case artifact.FieldWorkstream:
		m.ResetWorkstream()
		return nil
	case artifact.FieldStatus:
		m.ResetStatus()
		return nil
	case artifact.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case artifact.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case artifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case artifact.FieldSources:
		m.ResetSources()
		return nil
	case artifact.FieldURI:
		m.ResetURI()
		return nil
	case artifact.FieldMimeType:
		m.ResetMimeType()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldContentHash:
		m.ResetContentHash()
		return nil
	case artifact.FieldSummary:
		m.ResetSummary()
		return nil
	case artifact.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// ArtifactContentMutation represents an operation that mutates the ArtifactContent nodes in the graph.
type ArtifactContentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_id      *string
	artifact_id   *string
	content       *[]byte
	mime_type     *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ArtifactContent, error)
	predicates    []predicate.ArtifactContent
}

var _ ent.Mutation = (*ArtifactContentMutation)(nil)

// artifactcontentOption allows management of the mutation configuration using functional options.
type artifactcontentOption func(*ArtifactContentMutation)

// newArtifactContentMutation creates new mutation for the ArtifactContent entity.
func newArtifactContentMutation(c config, op Op, opts ...artifactcontentOption) *ArtifactContentMutation {
	m := &ArtifactContentMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifactContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactContentID sets the ID field of the mutation.
func withArtifactContentID(id int) artifactcontentOption {
	return func(m *ArtifactContentMutation) {
		var (
			err   error
			once  sync.Once
			value *ArtifactContent
		)
		m.oldValue = func(ctx context.Context) (*ArtifactContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArtifactContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifactContent sets the old ArtifactContent of the mutation.
func withArtifactContent(node *ArtifactContent) artifactcontentOption {
	return func(m *ArtifactContentMutation) {
		m.oldValue = func(context.Context) (*ArtifactContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactContentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactContentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArtifactContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ArtifactContentMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ArtifactContentMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ArtifactContent entity.
// If the ArtifactContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactContentMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ArtifactContentMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetArtifactID sets the "artifact_id" field.
func (m *ArtifactContentMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *ArtifactContentMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the ArtifactContent entity.
// If the ArtifactContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactContentMutation) OldArtifactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *ArtifactContentMutation) ResetArtifactID() {
	m.artifact_id = nil
}

// SetContent sets the "content" field.
func (m *ArtifactContentMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *ArtifactContentMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ArtifactContent entity.
// If the ArtifactContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactContentMutation) OldContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArtifactContentMutation) ResetContent() {
	m.content = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ArtifactContentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ArtifactContentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the ArtifactContent entity.
// If the ArtifactContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactContentMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *ArtifactContentMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[artifactcontent.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *ArtifactContentMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[artifactcontent.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ArtifactContentMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, artifactcontent.FieldMimeType)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArtifactContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArtifactContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ArtifactContent entity.
// If the ArtifactContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArtifactContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ArtifactContentMutation builder.
func (m *ArtifactContentMutation) Where(ps ...predicate.ArtifactContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArtifactContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArtifactContent).
func (m *ArtifactContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactContentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.agent_id != nil {
		fields = append(fields, artifactcontent.FieldAgentID)
	}
	if m.artifact_id != nil {
		fields = append(fields, artifactcontent.FieldArtifactID)
	}
	if m.content != nil {
		fields = append(fields, artifactcontent.FieldContent)
	}
	if m.mime_type != nil {
		fields = append(fields, artifactcontent.FieldMimeType)
	}
	if m.updated_at != nil {
		fields = append(fields, artifactcontent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifactcontent.FieldAgentID:
		return m.AgentID()
	case artifactcontent.FieldArtifactID:
		return m.ArtifactID()
	case artifactcontent.FieldContent:
		return m.Content()
	case artifactcontent.FieldMimeType:
		return m.MimeType()
	case artifactcontent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifactcontent.FieldAgentID:
		return m.OldAgentID(ctx)
	case artifactcontent.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case artifactcontent.FieldContent:
		return m.OldContent(ctx)
	case artifactcontent.FieldMimeType:
		return m.OldMimeType(ctx)
	case artifactcontent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArtifactContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifactcontent.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case artifactcontent.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case artifactcontent.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case artifactcontent.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case artifactcontent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArtifactContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactContentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactContentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ArtifactContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifactcontent.FieldMimeType) {
		fields = append(fields, artifactcontent.FieldMimeType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactContentMutation) ClearField(name string) error {
	switch name {
	case artifactcontent.FieldMimeType:
		m.ClearMimeType()
		return nil
	}
	return fmt.Errorf("unknown ArtifactContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactContentMutation) ResetField(name string) error {
	switch name {
	case artifactcontent.FieldAgentID:
		m.ResetAgentID()
		return nil
	case artifactcontent.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case artifactcontent.FieldContent:
		m.ResetContent()
		return nil
	case artifactcontent.FieldMimeType:
		m.ResetMimeType()
		return nil
	case artifactcontent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ArtifactContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ArtifactContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ArtifactContent edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	entity_type     *string
	entity_id       *string
	action          *string
	caller_agent_id *string
	timestamp       *time.Time
	details         *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AuditEntry, error)
	predicates      []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id int) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *AuditEntryMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditEntryMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditEntryMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditEntryMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditEntryMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditEntryMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (m *AuditEntryMutation) SetCallerAgentID(s string) {
	m.caller_agent_id = &s
}

// CallerAgentID returns the value of the "caller_agent_id" field in the mutation.
func (m *AuditEntryMutation) CallerAgentID() (r string, exists bool) {
	v := m.caller_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerAgentID returns the old "caller_agent_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCallerAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerAgentID: %w", err)
	}
	return oldValue.CallerAgentID, nil
}

// ClearCallerAgentID clears the value of the "caller_agent_id" field.
func (m *AuditEntryMutation) ClearCallerAgentID() {
	m.caller_agent_id = nil
	m.clearedFields[auditentry.FieldCallerAgentID] = struct{}{}
}

// CallerAgentIDCleared returns if the "caller_agent_id" field was cleared in this mutation.
func (m *AuditEntryMutation) CallerAgentIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldCallerAgentID]
	return ok
}

// ResetCallerAgentID resets all changes to the "caller_agent_id" field.
func (m *AuditEntryMutation) ResetCallerAgentID() {
	m.caller_agent_id = nil
	delete(m.clearedFields, auditentry.FieldCallerAgentID)
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDetails sets the "details" field.
func (m *AuditEntryMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditEntryMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditEntryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditentry.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditEntryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditentry.FieldDetails)
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity_type != nil {
		fields = append(fields, auditentry.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditentry.FieldEntityID)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.caller_agent_id != nil {
		fields = append(fields, auditentry.FieldCallerAgentID)
	}
	if m.timestamp != nil {
		fields = append(fields, auditentry.FieldTimestamp)
	}
	if m.details != nil {
		fields = append(fields, auditentry.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldEntityType:
		return m.EntityType()
	case auditentry.FieldEntityID:
		return m.EntityID()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldCallerAgentID:
		return m.CallerAgentID()
	case auditentry.FieldTimestamp:
		return m.Timestamp()
	case auditentry.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditentry.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldCallerAgentID:
		return m.OldCallerAgentID(ctx)
	case auditentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditentry.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditentry.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldCallerAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerAgentID(v)
		return nil
	case auditentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditentry.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldCallerAgentID) {
		fields = append(fields, auditentry.FieldCallerAgentID)
	}
	if m.FieldCleared(auditentry.FieldDetails) {
		fields = append(fields, auditentry.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldCallerAgentID:
		m.ClearCallerAgentID()
		return nil
	case auditentry.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditentry.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldCallerAgentID:
		m.ResetCallerAgentID()
		return nil
	case auditentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditentry.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	state         *models.SerializedAgentState
	decision_id   *string
	serialized_by *checkpoint.SerializedBy
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *CheckpointMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CheckpointMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CheckpointMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(mas models.SerializedAgentState) {
	m.state = &mas
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r models.SerializedAgentState, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v models.SerializedAgentState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetDecisionID sets the "decision_id" field.
func (m *CheckpointMutation) SetDecisionID(s string) {
	m.decision_id = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *CheckpointMutation) DecisionID() (r string, exists bool) {
	v := m.decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldDecisionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ClearDecisionID clears the value of the "decision_id" field.
func (m *CheckpointMutation) ClearDecisionID() {
	m.decision_id = nil
	m.clearedFields[checkpoint.FieldDecisionID] = struct{}{}
}

// DecisionIDCleared returns if the "decision_id" field was cleared in this mutation.
func (m *CheckpointMutation) DecisionIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldDecisionID]
	return ok
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *CheckpointMutation) ResetDecisionID() {
	m.decision_id = nil
	delete(m.clearedFields, checkpoint.FieldDecisionID)
}

// SetSerializedBy sets the "serialized_by" field.
func (m *CheckpointMutation) SetSerializedBy(cb checkpoint.SerializedBy) {
	m.serialized_by = &cb
}

// SerializedBy returns the value of the "serialized_by" field in the mutation.
func (m *CheckpointMutation) SerializedBy() (r checkpoint.SerializedBy, exists bool) {
	v := m.serialized_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSerializedBy returns the old "serialized_by" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSerializedBy(ctx context.Context) (v checkpoint.SerializedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerializedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerializedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerializedBy: %w", err)
	}
	return oldValue.SerializedBy, nil
}

// ResetSerializedBy resets all changes to the "serialized_by" field.
func (m *CheckpointMutation) ResetSerializedBy() {
	m.serialized_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.agent_id != nil {
		fields = append(fields, checkpoint.FieldAgentID)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.decision_id != nil {
		fields = append(fields, checkpoint.FieldDecisionID)
	}
	if m.serialized_by != nil {
		fields = append(fields, checkpoint.FieldSerializedBy)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldAgentID:
		return m.AgentID()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldDecisionID:
		return m.DecisionID()
	case checkpoint.FieldSerializedBy:
		return m.SerializedBy()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldAgentID:
		return m.OldAgentID(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case checkpoint.FieldSerializedBy:
		return m.OldSerializedBy(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(models.SerializedAgentState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case checkpoint.FieldSerializedBy:
		v, ok := value.(checkpoint.SerializedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerializedBy(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldDecisionID) {
		fields = append(fields, checkpoint.FieldDecisionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldDecisionID:
		m.ClearDecisionID()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldAgentID:
		m.ResetAgentID()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case checkpoint.FieldSerializedBy:
		m.ResetSerializedBy()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CoherenceIssueMutation represents an operation that mutates the CoherenceIssue nodes in the graph.
type CoherenceIssueMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	kind                       *coherenceissue.Kind
	summary                    *string
	severity                   *coherenceissue.Severity
	status                     *coherenceissue.Status
	affected_workstreams       *[]string
	appendaffected_workstreams []string
	affected_artifacts         *[]string
	appendaffected_artifacts   []string
	detected_by                *string
	detected_at_tick           *int64
	adddetected_at_tick        *int64
	created_at                 *time.Time
	resolved_at                *time.Time
	resolution                 *string
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*CoherenceIssue, error)
	predicates                 []predicate.CoherenceIssue
}

var _ ent.Mutation = (*CoherenceIssueMutation)(nil)

// coherenceissueOption allows management of the mutation configuration using functional options.
type coherenceissueOption func(*CoherenceIssueMutation)

// newCoherenceIssueMutation creates new mutation for the CoherenceIssue entity.
func newCoherenceIssueMutation(c config, op Op, opts ...coherenceissueOption) *CoherenceIssueMutation {
	m := &CoherenceIssueMutation{
		config:        c,
		op:            op,
		typ:           TypeCoherenceIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoherenceIssueID sets the ID field of the mutation.
func withCoherenceIssueID(id string) coherenceissueOption {
	return func(m *CoherenceIssueMutation) {
		var (
			err   error
			once  sync.Once
			value *CoherenceIssue
		)
		m.oldValue = func(ctx context.Context) (*CoherenceIssue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoherenceIssue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoherenceIssue sets the old CoherenceIssue of the mutation.
func withCoherenceIssue(node *CoherenceIssue) coherenceissueOption {
	return func(m *CoherenceIssueMutation) {
		m.oldValue = func(context.Context) (*CoherenceIssue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoherenceIssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoherenceIssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoherenceIssue entities.
func (m *CoherenceIssueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoherenceIssueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoherenceIssueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoherenceIssue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *CoherenceIssueMutation) SetKind(c coherenceissue.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CoherenceIssueMutation) Kind() (r coherenceissue.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldKind(ctx context.Context) (v coherenceissue.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CoherenceIssueMutation) ResetKind() {
	m.kind = nil
}

// SetSummary sets the "summary" field.
func (m *CoherenceIssueMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CoherenceIssueMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *CoherenceIssueMutation) ResetSummary() {
	m.summary = nil
}

// SetSeverity sets the "severity" field.
func (m *CoherenceIssueMutation) SetSeverity(c coherenceissue.Severity) {
	m.severity = &c
}

// Severity returns the value of the "severity" field in the mutation.
func (m *CoherenceIssueMutation) Severity() (r coherenceissue.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldSeverity(ctx context.Context) (v coherenceissue.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *CoherenceIssueMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *CoherenceIssueMutation) SetStatus(c coherenceissue.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CoherenceIssueMutation) Status() (r coherenceissue.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldStatus(ctx context.Context) (v coherenceissue.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CoherenceIssueMutation) ResetStatus() {
	m.status = nil
}

// SetAffectedWorkstreams sets the "affected_workstreams" field.
func (m *CoherenceIssueMutation) SetAffectedWorkstreams(s []string) {
	m.affected_workstreams = &s
	m.appendaffected_workstreams = nil
}

// AffectedWorkstreams returns the value of the "affected_workstreams" field in the mutation.
func (m *CoherenceIssueMutation) AffectedWorkstreams() (r []string, exists bool) {
	v := m.affected_workstreams
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedWorkstreams returns the old "affected_workstreams" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldAffectedWorkstreams(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedWorkstreams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedWorkstreams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedWorkstreams: %w", err)
	}
	return oldValue.AffectedWorkstreams, nil
}

// AppendAffectedWorkstreams adds s to the "affected_workstreams" field.
func (m *CoherenceIssueMutation) AppendAffectedWorkstreams(s []string) {
	m.appendaffected_workstreams = append(m.appendaffected_workstreams, s...)
}

// AppendedAffectedWorkstreams returns the list of values that were appended to the "affected_workstreams" field in this mutation.
func (m *CoherenceIssueMutation) AppendedAffectedWorkstreams() ([]string, bool) {
	if len(m.appendaffected_workstreams) == 0 {
		return nil, false
	}
	return m.appendaffected_workstreams, true
}

// ClearAffectedWorkstreams clears the value of the "affected_workstreams" field.
func (m *CoherenceIssueMutation) ClearAffectedWorkstreams() {
	m.affected_workstreams = nil
	m.appendaffected_workstreams = nil
	m.clearedFields[coherenceissue.FieldAffectedWorkstreams] = struct{}{}
}

// AffectedWorkstreamsCleared returns if the "affected_workstreams" field was cleared in this mutation.
func (m *CoherenceIssueMutation) AffectedWorkstreamsCleared() bool {
	_, ok := m.clearedFields[coherenceissue.FieldAffectedWorkstreams]
	return ok
}

// ResetAffectedWorkstreams resets all changes to the "affected_workstreams" field.
func (m *CoherenceIssueMutation) ResetAffectedWorkstreams() {
	m.affected_workstreams = nil
	m.appendaffected_workstreams = nil
	delete(m.clearedFields, coherenceissue.FieldAffectedWorkstreams)
}

// SetAffectedArtifacts sets the "affected_artifacts" field.
func (m *CoherenceIssueMutation) SetAffectedArtifacts(s []string) {
	m.affected_artifacts = &s
	m.appendaffected_artifacts = nil
}

// AffectedArtifacts returns the value of the "affected_artifacts" field in the mutation.
func (m *CoherenceIssueMutation) AffectedArtifacts() (r []string, exists bool) {
	v := m.affected_artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedArtifacts returns the old "affected_artifacts" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldAffectedArtifacts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedArtifacts: %w", err)
	}
	return oldValue.AffectedArtifacts, nil
}

// AppendAffectedArtifacts adds s to the "affected_artifacts" field.
func (m *CoherenceIssueMutation) AppendAffectedArtifacts(s []string) {
	m.appendaffected_artifacts = append(m.appendaffected_artifacts, s...)
}

// AppendedAffectedArtifacts returns the list of values that were appended to the "affected_artifacts" field in this mutation.
func (m *CoherenceIssueMutation) AppendedAffectedArtifacts() ([]string, bool) {
	if len(m.appendaffected_artifacts) == 0 {
		return nil, false
	}
	return m.appendaffected_artifacts, true
}

// ClearAffectedArtifacts clears the value of the "affected_artifacts" field.
func (m *CoherenceIssueMutation) ClearAffectedArtifacts() {
	m.affected_artifacts = nil
	m.appendaffected_artifacts = nil
	m.clearedFields[coherenceissue.FieldAffectedArtifacts] = struct{}{}
}

// AffectedArtifactsCleared returns if the "affected_artifacts" field was cleared in this mutation.
func (m *CoherenceIssueMutation) AffectedArtifactsCleared() bool {
	_, ok := m.clearedFields[coherenceissue.FieldAffectedArtifacts]
	return ok
}

// ResetAffectedArtifacts resets all changes to the "affected_artifacts" field.
func (m *CoherenceIssueMutation) ResetAffectedArtifacts() {
	m.affected_artifacts = nil
	m.appendaffected_artifacts = nil
	delete(m.clearedFields, coherenceissue.FieldAffectedArtifacts)
}

// SetDetectedBy sets the "detected_by" field.
func (m *CoherenceIssueMutation) SetDetectedBy(s string) {
	m.detected_by = &s
}

// DetectedBy returns the value of the "detected_by" field in the mutation.
func (m *CoherenceIssueMutation) DetectedBy() (r string, exists bool) {
	v := m.detected_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedBy returns the old "detected_by" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldDetectedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedBy: %w", err)
	}
	return oldValue.DetectedBy, nil
}

// ClearDetectedBy clears the value of the "detected_by" field.
func (m *CoherenceIssueMutation) ClearDetectedBy() {
	m.detected_by = nil
	m.clearedFields[coherenceissue.FieldDetectedBy] = struct{}{}
}

// DetectedByCleared returns if the "detected_by" field was cleared in this mutation.
func (m *CoherenceIssueMutation) DetectedByCleared() bool {
	_, ok := m.clearedFields[coherenceissue.FieldDetectedBy]
	return ok
}

// ResetDetectedBy resets all changes to the "detected_by" field.
func (m *CoherenceIssueMutation) ResetDetectedBy() {
	m.detected_by = nil
	delete(m.clearedFields, coherenceissue.FieldDetectedBy)
}

// SetDetectedAtTick sets the "detected_at_tick" field.
func (m *CoherenceIssueMutation) SetDetectedAtTick(i int64) {
	m.detected_at_tick = &i
	m.adddetected_at_tick = nil
}

// DetectedAtTick returns the value of the "detected_at_tick" field in the mutation.
func (m *CoherenceIssueMutation) DetectedAtTick() (r int64, exists bool) {
	v := m.detected_at_tick
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAtTick returns the old "detected_at_tick" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldDetectedAtTick(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAtTick is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAtTick requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAtTick: %w", err)
	}
	return oldValue.DetectedAtTick, nil
}

// AddDetectedAtTick adds i to the "detected_at_tick" field.
func (m *CoherenceIssueMutation) AddDetectedAtTick(i int64) {
	if m.adddetected_at_tick != nil {
		*m.adddetected_at_tick += i
	} else {
		m.adddetected_at_tick = &i
	}
}

// AddedDetectedAtTick returns the value that was added to the "detected_at_tick" field in this mutation.
func (m *CoherenceIssueMutation) AddedDetectedAtTick() (r int64, exists bool) {
	v := m.adddetected_at_tick
	if v == nil {
		return
	}
	return *v, true
}

// ResetDetectedAtTick resets all changes to the "detected_at_tick" field.
func (m *CoherenceIssueMutation) ResetDetectedAtTick() {
	m.detected_at_tick = nil
	m.adddetected_at_tick = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CoherenceIssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoherenceIssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoherenceIssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *CoherenceIssueMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *CoherenceIssueMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *CoherenceIssueMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[coherenceissue.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *CoherenceIssueMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[coherenceissue.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *CoherenceIssueMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, coherenceissue.FieldResolvedAt)
}

// SetResolution sets the "resolution" field.
func (m *CoherenceIssueMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *CoherenceIssueMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the CoherenceIssue entity.
// If the CoherenceIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoherenceIssueMutation) OldResolution(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *CoherenceIssueMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[coherenceissue.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *CoherenceIssueMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[coherenceissue.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *CoherenceIssueMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, coherenceissue.FieldResolution)
}

// Where appends a list predicates to the CoherenceIssueMutation builder.
func (m *CoherenceIssueMutation) Where(ps ...predicate.CoherenceIssue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoherenceIssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoherenceIssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoherenceIssue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoherenceIssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoherenceIssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoherenceIssue).
func (m *CoherenceIssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoherenceIssueMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.kind != nil {
		fields = append(fields, coherenceissue.FieldKind)
	}
	if m.summary != nil {
		fields = append(fields, coherenceissue.FieldSummary)
	}
	if m.severity != nil {
		fields = append(fields, coherenceissue.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, coherenceissue.FieldStatus)
	}
	if m.affected_workstreams != nil {
		fields = append(fields, coherenceissue.FieldAffectedWorkstreams)
	}
	if m.affected_artifacts != nil {
		fields = append(fields, coherenceissue.FieldAffectedArtifacts)
	}
	if m.detected_by != nil {
		fields = append(fields, coherenceissue.FieldDetectedBy)
	}
	if m.detected_at_tick != nil {
		fields = append(fields, coherenceissue.FieldDetectedAtTick)
	}
	if m.created_at != nil {
		fields = append(fields, coherenceissue.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, coherenceissue.FieldResolvedAt)
	}
	if m.resolution != nil {
		fields = append(fields, coherenceissue.FieldResolution)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoherenceIssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coherenceissue.FieldKind:
		return m.Kind()
	case coherenceissue.FieldSummary:
		return m.Summary()
	case coherenceissue.FieldSeverity:
		return m.Severity()
	case coherenceissue.FieldStatus:
		return m.Status()
	case coherenceissue.FieldAffectedWorkstreams:
		return m.AffectedWorkstreams()
	case coherenceissue.FieldAffectedArtifacts:
		return m.AffectedArtifacts()
	case coherenceissue.FieldDetectedBy:
		return m.DetectedBy()
	case coherenceissue.FieldDetectedAtTick:
		return m.DetectedAtTick()
	case coherenceissue.FieldCreatedAt:
		return m.CreatedAt()
	case coherenceissue.FieldResolvedAt:
		return m.ResolvedAt()
	case coherenceissue.FieldResolution:
		return m.Resolution()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoherenceIssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coherenceissue.FieldKind:
		return m.OldKind(ctx)
	case coherenceissue.FieldSummary:
		return m.OldSummary(ctx)
	case coherenceissue.FieldSeverity:
		return m.OldSeverity(ctx)
	case coherenceissue.FieldStatus:
		return m.OldStatus(ctx)
	case coherenceissue.FieldAffectedWorkstreams:
		return m.OldAffectedWorkstreams(ctx)
	case coherenceissue.FieldAffectedArtifacts:
		return m.OldAffectedArtifacts(ctx)
	case coherenceissue.FieldDetectedBy:
		return m.OldDetectedBy(ctx)
	case coherenceissue.FieldDetectedAtTick:
		return m.OldDetectedAtTick(ctx)
	case coherenceissue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case coherenceissue.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case coherenceissue.FieldResolution:
		return m.OldResolution(ctx)
	}
	return nil, fmt.Errorf("unknown CoherenceIssue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoherenceIssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coherenceissue.FieldKind:
		v, ok := value.(coherenceissue.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case coherenceissue.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case coherenceissue.FieldSeverity:
		v, ok := value.(coherenceissue.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case coherenceissue.FieldStatus:
		v, ok := value.(coherenceissue.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case coherenceissue.FieldAffectedWorkstreams:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedWorkstreams(v)
		return nil
	case coherenceissue.FieldAffectedArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedArtifacts(v)
		return nil
	case coherenceissue.FieldDetectedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedBy(v)
		return nil
	case coherenceissue.FieldDetectedAtTick:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAtTick(v)
		return nil
	case coherenceissue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case coherenceissue.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case coherenceissue.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	}
	return fmt.Errorf("unknown CoherenceIssue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoherenceIssueMutation) AddedFields() []string {
	var fields []string
	if m.adddetected_at_tick != nil {
		fields = append(fields, coherenceissue.FieldDetectedAtTick)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoherenceIssueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coherenceissue.FieldDetectedAtTick:
		return m.AddedDetectedAtTick()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoherenceIssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coherenceissue.FieldDetectedAtTick:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDetectedAtTick(v)
		return nil
	}
	return fmt.Errorf("unknown CoherenceIssue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoherenceIssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(coherenceissue.FieldAffectedWorkstreams) {
		fields = append(fields, coherenceissue.FieldAffectedWorkstreams)
	}
	if m.FieldCleared(coherenceissue.FieldAffectedArtifacts) {
		fields = append(fields, coherenceissue.FieldAffectedArtifacts)
	}
	if m.FieldCleared(coherenceissue.FieldDetectedBy) {
		fields = append(fields, coherenceissue.FieldDetectedBy)
	}
	if m.FieldCleared(coherenceissue.FieldResolvedAt) {
		fields = append(fields, coherenceissue.FieldResolvedAt)
	}
	if m.FieldCleared(coherenceissue.FieldResolution) {
		fields = append(fields, coherenceissue.FieldResolution)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoherenceIssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoherenceIssueMutation) ClearField(name string) error {
	switch name {
	case coherenceissue.FieldAffectedWorkstreams:
		m.ClearAffectedWorkstreams()
		return nil
	case coherenceissue.FieldAffectedArtifacts:
		m.ClearAffectedArtifacts()
		return nil
	case coherenceissue.FieldDetectedBy:
		m.ClearDetectedBy()
		return nil
	case coherenceissue.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case coherenceissue.FieldResolution:
		m.ClearResolution()
		return nil
	}
	return fmt.Errorf("unknown CoherenceIssue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoherenceIssueMutation) ResetField(name string) error {
	switch name {
	case coherenceissue.FieldKind:
		m.ResetKind()
		return nil
	case coherenceissue.FieldSummary:
		m.ResetSummary()
		return nil
	case coherenceissue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case coherenceissue.FieldStatus:
		m.ResetStatus()
		return nil
	case coherenceissue.FieldAffectedWorkstreams:
		m.ResetAffectedWorkstreams()
		return nil
	case coherenceissue.FieldAffectedArtifacts:
		m.ResetAffectedArtifacts()
		return nil
	case coherenceissue.FieldDetectedBy:
		m.ResetDetectedBy()
		return nil
	case coherenceissue.FieldDetectedAtTick:
		m.ResetDetectedAtTick()
		return nil
	case coherenceissue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case coherenceissue.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case coherenceissue.FieldResolution:
		m.ResetResolution()
		return nil
	}
	return fmt.Errorf("unknown CoherenceIssue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoherenceIssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoherenceIssueMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoherenceIssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoherenceIssueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoherenceIssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoherenceIssueMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoherenceIssueMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CoherenceIssue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoherenceIssueMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CoherenceIssue edge %s", name)
}

// DomainTrustScoreMutation represents an operation that mutates the DomainTrustScore nodes in the graph.
type DomainTrustScoreMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_id      *string
	domain        *string
	score         *int
	addscore      *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DomainTrustScore, error)
	predicates    []predicate.DomainTrustScore
}

var _ ent.Mutation = (*DomainTrustScoreMutation)(nil)

// domaintrustscoreOption allows management of the mutation configuration using functional options.
type domaintrustscoreOption func(*DomainTrustScoreMutation)

// newDomainTrustScoreMutation creates new mutation for the DomainTrustScore entity.
func newDomainTrustScoreMutation(c config, op Op, opts ...domaintrustscoreOption) *DomainTrustScoreMutation {
	m := &DomainTrustScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainTrustScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainTrustScoreID sets the ID field of the mutation.
func withDomainTrustScoreID(id int) domaintrustscoreOption {
	return func(m *DomainTrustScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainTrustScore
		)
		m.oldValue = func(ctx context.Context) (*DomainTrustScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainTrustScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainTrustScore sets the old DomainTrustScore of the mutation.
func withDomainTrustScore(node *DomainTrustScore) domaintrustscoreOption {
	return func(m *DomainTrustScoreMutation) {
		m.oldValue = func(context.Context) (*DomainTrustScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainTrustScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainTrustScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainTrustScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainTrustScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainTrustScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *DomainTrustScoreMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *DomainTrustScoreMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the DomainTrustScore entity.
// If the DomainTrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTrustScoreMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *DomainTrustScoreMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetDomain sets the "domain" field.
func (m *DomainTrustScoreMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *DomainTrustScoreMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the DomainTrustScore entity.
// If the DomainTrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTrustScoreMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *DomainTrustScoreMutation) ResetDomain() {
	m.domain = nil
}

// SetScore sets the "score" field.
func (m *DomainTrustScoreMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *DomainTrustScoreMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the DomainTrustScore entity.
// If the DomainTrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTrustScoreMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *DomainTrustScoreMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *DomainTrustScoreMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *DomainTrustScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DomainTrustScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DomainTrustScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DomainTrustScore entity.
// If the DomainTrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTrustScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DomainTrustScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DomainTrustScoreMutation builder.
func (m *DomainTrustScoreMutation) Where(ps ...predicate.DomainTrustScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainTrustScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainTrustScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainTrustScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainTrustScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainTrustScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainTrustScore).
func (m *DomainTrustScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainTrustScoreMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.agent_id != nil {
		fields = append(fields, domaintrustscore.FieldAgentID)
	}
	if m.domain != nil {
		fields = append(fields, domaintrustscore.FieldDomain)
	}
	if m.score != nil {
		fields = append(fields, domaintrustscore.FieldScore)
	}
	if m.updated_at != nil {
		fields = append(fields, domaintrustscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainTrustScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domaintrustscore.FieldAgentID:
		return m.AgentID()
	case domaintrustscore.FieldDomain:
		return m.Domain()
	case domaintrustscore.FieldScore:
		return m.Score()
	case domaintrustscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainTrustScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domaintrustscore.FieldAgentID:
		return m.OldAgentID(ctx)
	case domaintrustscore.FieldDomain:
		return m.OldDomain(ctx)
	case domaintrustscore.FieldScore:
		return m.OldScore(ctx)
	case domaintrustscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DomainTrustScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainTrustScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domaintrustscore.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case domaintrustscore.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case domaintrustscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case domaintrustscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DomainTrustScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainTrustScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, domaintrustscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainTrustScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case domaintrustscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainTrustScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case domaintrustscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown DomainTrustScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainTrustScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainTrustScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainTrustScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DomainTrustScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainTrustScoreMutation) ResetField(name string) error {
	switch name {
	case domaintrustscore.FieldAgentID:
		m.ResetAgentID()
		return nil
	case domaintrustscore.FieldDomain:
		m.ResetDomain()
		return nil
	case domaintrustscore.FieldScore:
		m.ResetScore()
		return nil
	case domaintrustscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainTrustScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainTrustScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainTrustScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainTrustScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainTrustScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainTrustScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainTrustScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainTrustScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainTrustScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainTrustScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainTrustScore edge %s", name)
}

// EventRecordMutation represents an operation that mutates the EventRecord nodes in the graph.
type EventRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	source_event_id    *string
	agent_id           *string
	run_id             *string
	source_sequence    *int64
	addsource_sequence *int64
	source_occurred_at *time.Time
	ingested_at        *time.Time
	event_type         *string
	payload            *models.AgentEvent
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*EventRecord, error)
	predicates         []predicate.EventRecord
}

var _ ent.Mutation = (*EventRecordMutation)(nil)

// eventrecordOption allows management of the mutation configuration using functional options.
type eventrecordOption func(*EventRecordMutation)

// newEventRecordMutation creates new mutation for the EventRecord entity.
func newEventRecordMutation(c config, op Op, opts ...eventrecordOption) *EventRecordMutation {
	m := &EventRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeEventRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventRecordID sets the ID field of the mutation.
func withEventRecordID(id int) eventrecordOption {
	return func(m *EventRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *EventRecord
		)
		m.oldValue = func(ctx context.Context) (*EventRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventRecord sets the old EventRecord of the mutation.
func withEventRecord(node *EventRecord) eventrecordOption {
	return func(m *EventRecordMutation) {
		m.oldValue = func(context.Context) (*EventRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceEventID sets the "source_event_id" field.
func (m *EventRecordMutation) SetSourceEventID(s string) {
	m.source_event_id = &s
}

// SourceEventID returns the value of the "source_event_id" field in the mutation.
func (m *EventRecordMutation) SourceEventID() (r string, exists bool) {
	v := m.source_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEventID returns the old "source_event_id" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSourceEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEventID: %w", err)
	}
	return oldValue.SourceEventID, nil
}

// ResetSourceEventID resets all changes to the "source_event_id" field.
func (m *EventRecordMutation) ResetSourceEventID() {
	m.source_event_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *EventRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EventRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EventRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRunID sets the "run_id" field.
func (m *EventRecordMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventRecordMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventRecordMutation) ResetRunID() {
	m.run_id = nil
}

// SetSourceSequence sets the "source_sequence" field.
func (m *EventRecordMutation) SetSourceSequence(i int64) {
	m.source_sequence = &i
	m.addsource_sequence = nil
}

// SourceSequence returns the value of the "source_sequence" field in the mutation.
func (m *EventRecordMutation) SourceSequence() (r int64, exists bool) {
	v := m.source_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSequence returns the old "source_sequence" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSourceSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSequence: %w", err)
	}
	return oldValue.SourceSequence, nil
}

// AddSourceSequence adds i to the "source_sequence" field.
func (m *EventRecordMutation) AddSourceSequence(i int64) {
	if m.addsource_sequence != nil {
		*m.addsource_sequence += i
	} else {
		m.addsource_sequence = &i
	}
}

// AddedSourceSequence returns the value that was added to the "source_sequence" field in this mutation.
func (m *EventRecordMutation) AddedSourceSequence() (r int64, exists bool) {
	v := m.addsource_sequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceSequence resets all changes to the "source_sequence" field.
func (m *EventRecordMutation) ResetSourceSequence() {
	m.source_sequence = nil
	m.addsource_sequence = nil
}

// SetSourceOccurredAt sets the "source_occurred_at" field.
func (m *EventRecordMutation) SetSourceOccurredAt(t time.Time) {
	m.source_occurred_at = &t
}

// SourceOccurredAt returns the value of the "source_occurred_at" field in the mutation.
func (m *EventRecordMutation) SourceOccurredAt() (r time.Time, exists bool) {
	v := m.source_occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceOccurredAt returns the old "source_occurred_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSourceOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceOccurredAt: %w", err)
	}
	return oldValue.SourceOccurredAt, nil
}

// ResetSourceOccurredAt resets all changes to the "source_occurred_at" field.
func (m *EventRecordMutation) ResetSourceOccurredAt() {
	m.source_occurred_at = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *EventRecordMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *EventRecordMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *EventRecordMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetEventType sets the "event_type" field.
func (m *EventRecordMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventRecordMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventRecordMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventRecordMutation) SetPayload(me models.AgentEvent) {
	m.payload = &me
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventRecordMutation) Payload() (r models.AgentEvent, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldPayload(ctx context.Context) (v models.AgentEvent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventRecordMutation) ResetPayload() {
	m.payload = nil
}

// Where appends a list predicates to the EventRecordMutation builder.
func (m *EventRecordMutation) Where(ps ...predicate.EventRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventRecord).
func (m *EventRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.source_event_id != nil {
		fields = append(fields, eventrecord.FieldSourceEventID)
	}
	if m.agent_id != nil {
		fields = append(fields, eventrecord.FieldAgentID)
	}
	if m.run_id != nil {
		fields = append(fields, eventrecord.FieldRunID)
	}
	if m.source_sequence != nil {
		fields = append(fields, eventrecord.FieldSourceSequence)
	}
	if m.source_occurred_at != nil {
		fields = append(fields, eventrecord.FieldSourceOccurredAt)
	}
	if m.ingested_at != nil {
		fields = append(fields, eventrecord.FieldIngestedAt)
	}
	if m.event_type != nil {
		fields = append(fields, eventrecord.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, eventrecord.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldSourceEventID:
		return m.SourceEventID()
	case eventrecord.FieldAgentID:
		return m.AgentID()
	case eventrecord.FieldRunID:
		return m.RunID()
	case eventrecord.FieldSourceSequence:
		return m.SourceSequence()
	case eventrecord.FieldSourceOccurredAt:
		return m.SourceOccurredAt()
	case eventrecord.FieldIngestedAt:
		return m.IngestedAt()
	case eventrecord.FieldEventType:
		return m.EventType()
	case eventrecord.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventrecord.FieldSourceEventID:
		return m.OldSourceEventID(ctx)
	case eventrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case eventrecord.FieldRunID:
		return m.OldRunID(ctx)
	case eventrecord.FieldSourceSequence:
		return m.OldSourceSequence(ctx)
	case eventrecord.FieldSourceOccurredAt:
		return m.OldSourceOccurredAt(ctx)
	case eventrecord.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	case eventrecord.FieldEventType:
		return m.OldEventType(ctx)
	case eventrecord.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown EventRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldSourceEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEventID(v)
		return nil
	case eventrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case eventrecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case eventrecord.FieldSourceSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSequence(v)
		return nil
	case eventrecord.FieldSourceOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceOccurredAt(v)
		return nil
	case eventrecord.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	case eventrecord.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventrecord.FieldPayload:
		v, ok := value.(models.AgentEvent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsource_sequence != nil {
		fields = append(fields, eventrecord.FieldSourceSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldSourceSequence:
		return m.AddedSourceSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldSourceSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceSequence(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventRecordMutation) ResetField(name string) error {
	switch name {
	case eventrecord.FieldSourceEventID:
		m.ResetSourceEventID()
		return nil
	case eventrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case eventrecord.FieldRunID:
		m.ResetRunID()
		return nil
	case eventrecord.FieldSourceSequence:
		m.ResetSourceSequence()
		return nil
	case eventrecord.FieldSourceOccurredAt:
		m.ResetSourceOccurredAt()
		return nil
	case eventrecord.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	case eventrecord.FieldEventType:
		m.ResetEventType()
		return nil
	case eventrecord.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventRecord edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	_config       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Project, error)
	predicates    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetConfig sets the "config" field.
func (m *ProjectMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ProjectMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ProjectMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[project.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ProjectMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[project.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ProjectMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, project.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m._config != nil {
		fields = append(fields, project.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldConfig:
		return m.Config()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldConfig:
		return m.OldConfig(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldConfig) {
		fields = append(fields, project.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldConfig:
		m.ResetConfig()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}

// QuarantinedEventMutation represents an operation that mutates the QuarantinedEvent nodes in the graph.
type QuarantinedEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	raw            *string
	reason         *string
	source         *string
	quarantined_at *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QuarantinedEvent, error)
	predicates     []predicate.QuarantinedEvent
}

var _ ent.Mutation = (*QuarantinedEventMutation)(nil)

// quarantinedeventOption allows management of the mutation configuration using functional options.
type quarantinedeventOption func(*QuarantinedEventMutation)

// newQuarantinedEventMutation creates new mutation for the QuarantinedEvent entity.
func newQuarantinedEventMutation(c config, op Op, opts ...quarantinedeventOption) *QuarantinedEventMutation {
	m := &QuarantinedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuarantinedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuarantinedEventID sets the ID field of the mutation.
func withQuarantinedEventID(id int) quarantinedeventOption {
	return func(m *QuarantinedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuarantinedEvent
		)
		m.oldValue = func(ctx context.Context) (*QuarantinedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuarantinedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuarantinedEvent sets the old QuarantinedEvent of the mutation.
func withQuarantinedEvent(node *QuarantinedEvent) quarantinedeventOption {
	return func(m *QuarantinedEventMutation) {
		m.oldValue = func(context.Context) (*QuarantinedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuarantinedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuarantinedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuarantinedEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuarantinedEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuarantinedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRaw sets the "raw" field.
func (m *QuarantinedEventMutation) SetRaw(s string) {
	m.raw = &s
}

// Raw returns the value of the "raw" field in the mutation.
func (m *QuarantinedEventMutation) Raw() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the QuarantinedEvent entity.
// If the QuarantinedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantinedEventMutation) OldRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ResetRaw resets all changes to the "raw" field.
func (m *QuarantinedEventMutation) ResetRaw() {
	m.raw = nil
}

// SetReason sets the "reason" field.
func (m *QuarantinedEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *QuarantinedEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the QuarantinedEvent entity.
// If the QuarantinedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantinedEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *QuarantinedEventMutation) ResetReason() {
	m.reason = nil
}

// SetSource sets the "source" field.
func (m *QuarantinedEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *QuarantinedEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the QuarantinedEvent entity.
// If the QuarantinedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantinedEventMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *QuarantinedEventMutation) ClearSource() {
	m.source = nil
	m.clearedFields[quarantinedevent.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *QuarantinedEventMutation) SourceCleared() bool {
	_, ok := m.clearedFields[quarantinedevent.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *QuarantinedEventMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, quarantinedevent.FieldSource)
}

// SetQuarantinedAt sets the "quarantined_at" field.
func (m *QuarantinedEventMutation) SetQuarantinedAt(t time.Time) {
	m.quarantined_at = &t
}

// QuarantinedAt returns the value of the "quarantined_at" field in the mutation.
func (m *QuarantinedEventMutation) QuarantinedAt() (r time.Time, exists bool) {
	v := m.quarantined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQuarantinedAt returns the old "quarantined_at" field's value of the QuarantinedEvent entity.
// If the QuarantinedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarantinedEventMutation) OldQuarantinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuarantinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuarantinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuarantinedAt: %w", err)
	}
	return oldValue.QuarantinedAt, nil
}

// ResetQuarantinedAt resets all changes to the "quarantined_at" field.
func (m *QuarantinedEventMutation) ResetQuarantinedAt() {
	m.quarantined_at = nil
}

// Where appends a list predicates to the QuarantinedEventMutation builder.
func (m *QuarantinedEventMutation) Where(ps ...predicate.QuarantinedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuarantinedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuarantinedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuarantinedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuarantinedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuarantinedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuarantinedEvent).
func (m *QuarantinedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuarantinedEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.raw != nil {
		fields = append(fields, quarantinedevent.FieldRaw)
	}
	if m.reason != nil {
		fields = append(fields, quarantinedevent.FieldReason)
	}
	if m.source != nil {
		fields = append(fields, quarantinedevent.FieldSource)
	}
	if m.quarantined_at != nil {
		fields = append(fields, quarantinedevent.FieldQuarantinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuarantinedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quarantinedevent.FieldRaw:
		return m.Raw()
	case quarantinedevent.FieldReason:
		return m.Reason()
	case quarantinedevent.FieldSource:
		return m.Source()
	case quarantinedevent.FieldQuarantinedAt:
		return m.QuarantinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuarantinedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quarantinedevent.FieldRaw:
		return m.OldRaw(ctx)
	case quarantinedevent.FieldReason:
		return m.OldReason(ctx)
	case quarantinedevent.FieldSource:
		return m.OldSource(ctx)
	case quarantinedevent.FieldQuarantinedAt:
		return m.OldQuarantinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuarantinedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarantinedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quarantinedevent.FieldRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case quarantinedevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case quarantinedevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case quarantinedevent.FieldQuarantinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuarantinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuarantinedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuarantinedEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuarantinedEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarantinedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuarantinedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuarantinedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quarantinedevent.FieldSource) {
		fields = append(fields, quarantinedevent.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuarantinedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuarantinedEventMutation) ClearField(name string) error {
	switch name {
	case quarantinedevent.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown QuarantinedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuarantinedEventMutation) ResetField(name string) error {
	switch name {
	case quarantinedevent.FieldRaw:
		m.ResetRaw()
		return nil
	case quarantinedevent.FieldReason:
		m.ResetReason()
		return nil
	case quarantinedevent.FieldSource:
		m.ResetSource()
		return nil
	case quarantinedevent.FieldQuarantinedAt:
		m.ResetQuarantinedAt()
		return nil
	}
	return fmt.Errorf("unknown QuarantinedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuarantinedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuarantinedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuarantinedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuarantinedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuarantinedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuarantinedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuarantinedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuarantinedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuarantinedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuarantinedEvent edge %s", name)
}

// StoreMetaMutation represents an operation that mutates the StoreMeta nodes in the graph.
type StoreMetaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	version       *int64
	addversion    *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StoreMeta, error)
	predicates    []predicate.StoreMeta
}

var _ ent.Mutation = (*StoreMetaMutation)(nil)

// storemetaOption allows management of the mutation configuration using functional options.
type storemetaOption func(*StoreMetaMutation)

// newStoreMetaMutation creates new mutation for the StoreMeta entity.
func newStoreMetaMutation(c config, op Op, opts ...storemetaOption) *StoreMetaMutation {
	m := &StoreMetaMutation{
		config:        c,
		op:            op,
		typ:           TypeStoreMeta,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoreMetaID sets the ID field of the mutation.
func withStoreMetaID(id string) storemetaOption {
	return func(m *StoreMetaMutation) {
		var (
			err   error
			once  sync.Once
			value *StoreMeta
		)
		m.oldValue = func(ctx context.Context) (*StoreMeta, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoreMeta.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoreMeta sets the old StoreMeta of the mutation.
func withStoreMeta(node *StoreMeta) storemetaOption {
	return func(m *StoreMetaMutation) {
		m.oldValue = func(context.Context) (*StoreMeta, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoreMetaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoreMetaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoreMeta entities.
func (m *StoreMetaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoreMetaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoreMetaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoreMeta.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *StoreMetaMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StoreMetaMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StoreMeta entity.
// If the StoreMeta object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMetaMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StoreMetaMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StoreMetaMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StoreMetaMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoreMetaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoreMetaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StoreMeta entity.
// If the StoreMeta object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMetaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StoreMetaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StoreMetaMutation builder.
func (m *StoreMetaMutation) Where(ps ...predicate.StoreMeta) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoreMetaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoreMetaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoreMeta, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoreMetaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoreMetaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoreMeta).
func (m *StoreMetaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoreMetaMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.version != nil {
		fields = append(fields, storemeta.FieldVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, storemeta.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoreMetaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storemeta.FieldVersion:
		return m.Version()
	case storemeta.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoreMetaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storemeta.FieldVersion:
		return m.OldVersion(ctx)
	case storemeta.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StoreMeta field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoreMetaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storemeta.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case storemeta.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StoreMeta field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoreMetaMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, storemeta.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoreMetaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storemeta.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoreMetaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storemeta.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown StoreMeta numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoreMetaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoreMetaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoreMetaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StoreMeta nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoreMetaMutation) ResetField(name string) error {
	switch name {
	case storemeta.FieldVersion:
		m.ResetVersion()
		return nil
	case storemeta.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StoreMeta field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoreMetaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoreMetaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoreMetaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoreMetaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoreMetaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoreMetaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoreMetaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StoreMeta unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoreMetaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StoreMeta edge %s", name)
}

// TrustScoreMutation represents an operation that mutates the TrustScore nodes in the graph.
type TrustScoreMutation struct {
	config
	op            Op
	typ           string
	id            *string
	score         *int
	addscore      *int
	last_reason   *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TrustScore, error)
	predicates    []predicate.TrustScore
}

var _ ent.Mutation = (*TrustScoreMutation)(nil)

// trustscoreOption allows management of the mutation configuration using functional options.
type trustscoreOption func(*TrustScoreMutation)

// newTrustScoreMutation creates new mutation for the TrustScore entity.
func newTrustScoreMutation(c config, op Op, opts ...trustscoreOption) *TrustScoreMutation {
	m := &TrustScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeTrustScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrustScoreID sets the ID field of the mutation.
func withTrustScoreID(id string) trustscoreOption {
	return func(m *TrustScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *TrustScore
		)
		m.oldValue = func(ctx context.Context) (*TrustScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrustScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrustScore sets the old TrustScore of the mutation.
func withTrustScore(node *TrustScore) trustscoreOption {
	return func(m *TrustScoreMutation) {
		m.oldValue = func(context.Context) (*TrustScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrustScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrustScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrustScore entities.
func (m *TrustScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrustScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrustScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrustScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScore sets the "score" field.
func (m *TrustScoreMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TrustScoreMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TrustScore entity.
// If the TrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustScoreMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *TrustScoreMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TrustScoreMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TrustScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetLastReason sets the "last_reason" field.
func (m *TrustScoreMutation) SetLastReason(s string) {
	m.last_reason = &s
}

// LastReason returns the value of the "last_reason" field in the mutation.
func (m *TrustScoreMutation) LastReason() (r string, exists bool) {
	v := m.last_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReason returns the old "last_reason" field's value of the TrustScore entity.
// If the TrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustScoreMutation) OldLastReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReason: %w", err)
	}
	return oldValue.LastReason, nil
}

// ClearLastReason clears the value of the "last_reason" field.
func (m *TrustScoreMutation) ClearLastReason() {
	m.last_reason = nil
	m.clearedFields[trustscore.FieldLastReason] = struct{}{}
}

// LastReasonCleared returns if the "last_reason" field was cleared in this mutation.
func (m *TrustScoreMutation) LastReasonCleared() bool {
	_, ok := m.clearedFields[trustscore.FieldLastReason]
	return ok
}

// ResetLastReason resets all changes to the "last_reason" field.
func (m *TrustScoreMutation) ResetLastReason() {
	m.last_reason = nil
	delete(m.clearedFields, trustscore.FieldLastReason)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TrustScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TrustScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TrustScore entity.
// If the TrustScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrustScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TrustScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TrustScoreMutation builder.
func (m *TrustScoreMutation) Where(ps ...predicate.TrustScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrustScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrustScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrustScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrustScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrustScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrustScore).
func (m *TrustScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrustScoreMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.score != nil {
		fields = append(fields, trustscore.FieldScore)
	}
	if m.last_reason != nil {
		fields = append(fields, trustscore.FieldLastReason)
	}
	if m.updated_at != nil {
		fields = append(fields, trustscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrustScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trustscore.FieldScore:
		return m.Score()
	case trustscore.FieldLastReason:
		return m.LastReason()
	case trustscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrustScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trustscore.FieldScore:
		return m.OldScore(ctx)
	case trustscore.FieldLastReason:
		return m.OldLastReason(ctx)
	case trustscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrustScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrustScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trustscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case trustscore.FieldLastReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReason(v)
		return nil
	case trustscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrustScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrustScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, trustscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrustScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trustscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrustScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trustscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown TrustScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrustScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trustscore.FieldLastReason) {
		fields = append(fields, trustscore.FieldLastReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrustScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrustScoreMutation) ClearField(name string) error {
	switch name {
	case trustscore.FieldLastReason:
		m.ClearLastReason()
		return nil
	}
	return fmt.Errorf("unknown TrustScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrustScoreMutation) ResetField(name string) error {
	switch name {
	case trustscore.FieldScore:
		m.ResetScore()
		return nil
	case trustscore.FieldLastReason:
		m.ResetLastReason()
		return nil
	case trustscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrustScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrustScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrustScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrustScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrustScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrustScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrustScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrustScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrustScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrustScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrustScore edge %s", name)
}

// WorkstreamMutation represents an operation that mutates the Workstream nodes in the graph.
type WorkstreamMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	status        *string
	last_activity *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Workstream, error)
	predicates    []predicate.Workstream
}

var _ ent.Mutation = (*WorkstreamMutation)(nil)

// workstreamOption allows management of the mutation configuration using functional options.
type workstreamOption func(*WorkstreamMutation)

// newWorkstreamMutation creates new mutation for the Workstream entity.
func newWorkstreamMutation(c config, op Op, opts ...workstreamOption) *WorkstreamMutation {
	m := &WorkstreamMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkstream,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkstreamID sets the ID field of the mutation.
func withWorkstreamID(id string) workstreamOption {
	return func(m *WorkstreamMutation) {
		var (
			err   error
			once  sync.Once
			value *Workstream
		)
		m.oldValue = func(ctx context.Context) (*Workstream, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workstream.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkstream sets the old Workstream of the mutation.
func withWorkstream(node *Workstream) workstreamOption {
	return func(m *WorkstreamMutation) {
		m.oldValue = func(context.Context) (*Workstream, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkstreamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkstreamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workstream entities.
func (m *WorkstreamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkstreamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkstreamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workstream.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkstreamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkstreamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workstream entity.
// If the Workstream object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkstreamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkstreamMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *WorkstreamMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkstreamMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workstream entity.
// If the Workstream object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkstreamMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkstreamMutation) ResetStatus() {
	m.status = nil
}

// SetLastActivity sets the "last_activity" field.
func (m *WorkstreamMutation) SetLastActivity(s string) {
	m.last_activity = &s
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *WorkstreamMutation) LastActivity() (r string, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the Workstream entity.
// If the Workstream object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkstreamMutation) OldLastActivity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ClearLastActivity clears the value of the "last_activity" field.
func (m *WorkstreamMutation) ClearLastActivity() {
	m.last_activity = nil
	m.clearedFields[workstream.FieldLastActivity] = struct{}{}
}

// LastActivityCleared returns if the "last_activity" field was cleared in this mutation.
func (m *WorkstreamMutation) LastActivityCleared() bool {
	_, ok := m.clearedFields[workstream.FieldLastActivity]
	return ok
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *WorkstreamMutation) ResetLastActivity() {
	m.last_activity = nil
	delete(m.clearedFields, workstream.FieldLastActivity)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkstreamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkstreamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workstream entity.
// If the Workstream object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkstreamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkstreamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkstreamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkstreamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workstream entity.
// If the Workstream object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkstreamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkstreamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkstreamMutation builder.
func (m *WorkstreamMutation) Where(ps ...predicate.Workstream) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkstreamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkstreamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workstream, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkstreamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkstreamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workstream).
func (m *WorkstreamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkstreamMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, workstream.FieldName)
	}
	if m.status != nil {
		fields = append(fields, workstream.FieldStatus)
	}
	if m.last_activity != nil {
		fields = append(fields, workstream.FieldLastActivity)
	}
	if m.created_at != nil {
		fields = append(fields, workstream.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workstream.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkstreamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workstream.FieldName:
		return m.Name()
	case workstream.FieldStatus:
		return m.Status()
	case workstream.FieldLastActivity:
		return m.LastActivity()
	case workstream.FieldCreatedAt:
		return m.CreatedAt()
	case workstream.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkstreamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workstream.FieldName:
		return m.OldName(ctx)
	case workstream.FieldStatus:
		return m.OldStatus(ctx)
	case workstream.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case workstream.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workstream.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workstream field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkstreamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workstream.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workstream.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workstream.FieldLastActivity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case workstream.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workstream.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workstream field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkstreamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkstreamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkstreamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workstream numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkstreamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workstream.FieldLastActivity) {
		fields = append(fields, workstream.FieldLastActivity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkstreamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkstreamMutation) ClearField(name string) error {
	switch name {
	case workstream.FieldLastActivity:
		m.ClearLastActivity()
		return nil
	}
	return fmt.Errorf("unknown Workstream nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkstreamMutation) ResetField(name string) error {
	switch name {
	case workstream.FieldName:
		m.ResetName()
		return nil
	case workstream.FieldStatus:
		m.ResetStatus()
		return nil
	case workstream.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case workstream.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workstream.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workstream field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkstreamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkstreamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkstreamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkstreamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkstreamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkstreamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkstreamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Workstream unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkstreamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Workstream edge %s", name)
}
