// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// ArtifactContent is the predicate function for artifactcontent builders.
type ArtifactContent func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// CoherenceIssue is the predicate function for coherenceissue builders.
type CoherenceIssue func(*sql.Selector)

// DomainTrustScore is the predicate function for domaintrustscore builders.
type DomainTrustScore func(*sql.Selector)

// EventRecord is the predicate function for eventrecord builders.
type EventRecord func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// QuarantinedEvent is the predicate function for quarantinedevent builders.
type QuarantinedEvent func(*sql.Selector)

// StoreMeta is the predicate function for storemeta builders.
type StoreMeta func(*sql.Selector)

// TrustScore is the predicate function for trustscore builders.
type TrustScore func(*sql.Selector)

// Workstream is the predicate function for workstream builders.
type Workstream func(*sql.Selector)
