// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "workstream", Type: field.TypeString},
		{Name: "readable_workstreams", Type: field.TypeJSON, Nullable: true},
		{Name: "plugin_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "paused", "waiting_on_human", "completed", "error"}, Default: "running"},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "model_preference", Type: field.TypeString, Nullable: true},
		{Name: "brief", Type: field.TypeJSON, Nullable: true},
		{Name: "spawned_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[5]},
			},
			{
				Name:    "agentrecord_workstream",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[2]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"code", "doc", "design", "config", "test", "other"}, Default: "other"},
		{Name: "workstream", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "in_review", "approved", "rejected"}, Default: "draft"},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sources", Type: field.TypeJSON, Nullable: true},
		{Name: "uri", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_workstream",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[3]},
			},
			{
				Name:    "artifact_status",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[4]},
			},
			{
				Name:    "artifact_workstream_status",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[3], ArtifactsColumns[4]},
			},
		},
	}
	// ArtifactContentsColumns holds the columns for the "artifact_contents" table.
	ArtifactContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "artifact_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeBytes},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ArtifactContentsTable holds the schema information for the "artifact_contents" table.
	ArtifactContentsTable = &schema.Table{
		Name:       "artifact_contents",
		Columns:    ArtifactContentsColumns,
		PrimaryKey: []*schema.Column{ArtifactContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifactcontent_agent_id_artifact_id",
				Unique:  true,
				Columns: []*schema.Column{ArtifactContentsColumns[1], ArtifactContentsColumns[2]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "caller_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[5]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "decision_id", Type: field.TypeString, Nullable: true},
		{Name: "serialized_by", Type: field.TypeEnum, Enums: []string{"pause", "kill_grace", "crash_recovery", "decision_checkpoint"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1]},
			},
			{
				Name:    "checkpoint_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[5]},
			},
		},
	}
	// CoherenceIssuesColumns holds the columns for the "coherence_issues" table.
	CoherenceIssuesColumns = []*schema.Column{
		{Name: "issue_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"contradiction", "duplication", "gap", "dependency_violation"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"warning", "low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "resolved"}, Default: "open"},
		{Name: "affected_workstreams", Type: field.TypeJSON, Nullable: true},
		{Name: "affected_artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_by", Type: field.TypeString, Nullable: true},
		{Name: "detected_at_tick", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolution", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CoherenceIssuesTable holds the schema information for the "coherence_issues" table.
	CoherenceIssuesTable = &schema.Table{
		Name:       "coherence_issues",
		Columns:    CoherenceIssuesColumns,
		PrimaryKey: []*schema.Column{CoherenceIssuesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coherenceissue_status",
				Unique:  false,
				Columns: []*schema.Column{CoherenceIssuesColumns[4]},
			},
			{
				Name:    "coherenceissue_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoherenceIssuesColumns[4], CoherenceIssuesColumns[9]},
			},
		},
	}
	// DomainTrustScoresColumns holds the columns for the "domain_trust_scores" table.
	DomainTrustScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 50},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DomainTrustScoresTable holds the schema information for the "domain_trust_scores" table.
	DomainTrustScoresTable = &schema.Table{
		Name:       "domain_trust_scores",
		Columns:    DomainTrustScoresColumns,
		PrimaryKey: []*schema.Column{DomainTrustScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domaintrustscore_agent_id_domain",
				Unique:  true,
				Columns: []*schema.Column{DomainTrustScoresColumns[1], DomainTrustScoresColumns[2]},
			},
			{
				Name:    "domaintrustscore_agent_id",
				Unique:  false,
				Columns: []*schema.Column{DomainTrustScoresColumns[1]},
			},
		},
	}
	// EventRecordsColumns holds the columns for the "event_records" table.
	EventRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_event_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
		{Name: "source_sequence", Type: field.TypeInt64},
		{Name: "source_occurred_at", Type: field.TypeTime},
		{Name: "ingested_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
	}
	// EventRecordsTable holds the schema information for the "event_records" table.
	EventRecordsTable = &schema.Table{
		Name:       "event_records",
		Columns:    EventRecordsColumns,
		PrimaryKey: []*schema.Column{EventRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[2]},
			},
			{
				Name:    "eventrecord_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[7]},
			},
			{
				Name:    "eventrecord_agent_id_run_id_source_sequence",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[2], EventRecordsColumns[3], EventRecordsColumns[4]},
			},
			{
				Name:    "eventrecord_ingested_at",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[6]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// QuarantinedEventsColumns holds the columns for the "quarantined_events" table.
	QuarantinedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "raw", Type: field.TypeString, Size: 2147483647},
		{Name: "reason", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "quarantined_at", Type: field.TypeTime},
	}
	// QuarantinedEventsTable holds the schema information for the "quarantined_events" table.
	QuarantinedEventsTable = &schema.Table{
		Name:       "quarantined_events",
		Columns:    QuarantinedEventsColumns,
		PrimaryKey: []*schema.Column{QuarantinedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quarantinedevent_quarantined_at",
				Unique:  false,
				Columns: []*schema.Column{QuarantinedEventsColumns[4]},
			},
		},
	}
	// StoreMetaColumns holds the columns for the "store_meta" table.
	StoreMetaColumns = []*schema.Column{
		{Name: "meta_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StoreMetaTable holds the schema information for the "store_meta" table.
	StoreMetaTable = &schema.Table{
		Name:       "store_meta",
		Columns:    StoreMetaColumns,
		PrimaryKey: []*schema.Column{StoreMetaColumns[0]},
	}
	// TrustScoresColumns holds the columns for the "trust_scores" table.
	TrustScoresColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeInt, Default: 50},
		{Name: "last_reason", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TrustScoresTable holds the schema information for the "trust_scores" table.
	TrustScoresTable = &schema.Table{
		Name:       "trust_scores",
		Columns:    TrustScoresColumns,
		PrimaryKey: []*schema.Column{TrustScoresColumns[0]},
	}
	// WorkstreamsColumns holds the columns for the "workstreams" table.
	WorkstreamsColumns = []*schema.Column{
		{Name: "workstream_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "last_activity", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkstreamsTable holds the schema information for the "workstreams" table.
	WorkstreamsTable = &schema.Table{
		Name:       "workstreams",
		Columns:    WorkstreamsColumns,
		PrimaryKey: []*schema.Column{WorkstreamsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRecordsTable,
		ArtifactsTable,
		ArtifactContentsTable,
		AuditEntriesTable,
		CheckpointsTable,
		CoherenceIssuesTable,
		DomainTrustScoresTable,
		EventRecordsTable,
		ProjectsTable,
		QuarantinedEventsTable,
		StoreMetaTable,
		TrustScoresTable,
		WorkstreamsTable,
	}
)

func init() {
	StoreMetaTable.Annotation = &entsql.Annotation{
		Table: "store_meta",
	}
}
