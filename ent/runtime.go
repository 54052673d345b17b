// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/steward-io/steward/ent/schema"
	"github.com/steward-io/steward/ent/storemeta"
	"github.com/steward-io/steward/ent/trustscore"
	"github.com/steward-io/steward/ent/workstream"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescSpawnedAt is the schema descriptor for spawned_at field.
	agentrecordDescSpawnedAt := agentrecordFields[9].Descriptor()
	// agentrecord.DefaultSpawnedAt holds the default value on creation for the spawned_at field.
	agentrecord.DefaultSpawnedAt = agentrecordDescSpawnedAt.Default.(func() time.Time)
	// agentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	agentrecordDescUpdatedAt := agentrecordFields[10].Descriptor()
	// agentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrecord.DefaultUpdatedAt = agentrecordDescUpdatedAt.Default.(func() time.Time)
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescQualityScore is the schema descriptor for quality_score field.
	artifactDescQualityScore := artifactFields[5].Descriptor()
	// artifact.DefaultQualityScore holds the default value on creation for the quality_score field.
	artifact.DefaultQualityScore = artifactDescQualityScore.Default.(float64)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescUpdatedAt is the schema descriptor for updated_at field.
	artifactDescUpdatedAt := artifactFields[8].Descriptor()
	// artifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artifact.DefaultUpdatedAt = artifactDescUpdatedAt.Default.(func() time.Time)
	// artifactDescVersion is the schema descriptor for version field.
	artifactDescVersion := artifactFields[15].Descriptor()
	// artifact.DefaultVersion holds the default value on creation for the version field.
	artifact.DefaultVersion = artifactDescVersion.Default.(int)
	artifactcontentFields := schema.ArtifactContent{}.Fields()
	_ = artifactcontentFields
	// artifactcontentDescUpdatedAt is the schema descriptor for updated_at field.
	artifactcontentDescUpdatedAt := artifactcontentFields[4].Descriptor()
	// artifactcontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artifactcontent.DefaultUpdatedAt = artifactcontentDescUpdatedAt.Default.(func() time.Time)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescTimestamp is the schema descriptor for timestamp field.
	auditentryDescTimestamp := auditentryFields[4].Descriptor()
	// auditentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditentry.DefaultTimestamp = auditentryDescTimestamp.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[5].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	coherenceissueFields := schema.CoherenceIssue{}.Fields()
	_ = coherenceissueFields
	// coherenceissueDescDetectedAtTick is the schema descriptor for detected_at_tick field.
	coherenceissueDescDetectedAtTick := coherenceissueFields[8].Descriptor()
	// coherenceissue.DefaultDetectedAtTick holds the default value on creation for the detected_at_tick field.
	coherenceissue.DefaultDetectedAtTick = coherenceissueDescDetectedAtTick.Default.(int64)
	// coherenceissueDescCreatedAt is the schema descriptor for created_at field.
	coherenceissueDescCreatedAt := coherenceissueFields[9].Descriptor()
	// coherenceissue.DefaultCreatedAt holds the default value on creation for the created_at field.
	coherenceissue.DefaultCreatedAt = coherenceissueDescCreatedAt.Default.(func() time.Time)
	domaintrustscoreFields := schema.DomainTrustScore{}.Fields()
	_ = domaintrustscoreFields
	// domaintrustscoreDescScore is the schema descriptor for score field.
	domaintrustscoreDescScore := domaintrustscoreFields[2].Descriptor()
	// domaintrustscore.DefaultScore holds the default value on creation for the score field.
	domaintrustscore.DefaultScore = domaintrustscoreDescScore.Default.(int)
	// domaintrustscoreDescUpdatedAt is the schema descriptor for updated_at field.
	domaintrustscoreDescUpdatedAt := domaintrustscoreFields[3].Descriptor()
	// domaintrustscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domaintrustscore.DefaultUpdatedAt = domaintrustscoreDescUpdatedAt.Default.(func() time.Time)
	eventrecordFields := schema.EventRecord{}.Fields()
	_ = eventrecordFields
	// eventrecordDescIngestedAt is the schema descriptor for ingested_at field.
	eventrecordDescIngestedAt := eventrecordFields[5].Descriptor()
	// eventrecord.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	eventrecord.DefaultIngestedAt = eventrecordDescIngestedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	quarantinedeventFields := schema.QuarantinedEvent{}.Fields()
	_ = quarantinedeventFields
	// quarantinedeventDescQuarantinedAt is the schema descriptor for quarantined_at field.
	quarantinedeventDescQuarantinedAt := quarantinedeventFields[3].Descriptor()
	// quarantinedevent.DefaultQuarantinedAt holds the default value on creation for the quarantined_at field.
	quarantinedevent.DefaultQuarantinedAt = quarantinedeventDescQuarantinedAt.Default.(func() time.Time)
	storemetaFields := schema.StoreMeta{}.Fields()
	_ = storemetaFields
	// storemetaDescVersion is the schema descriptor for version field.
	storemetaDescVersion := storemetaFields[1].Descriptor()
	// storemeta.DefaultVersion holds the default value on creation for the version field.
	storemeta.DefaultVersion = storemetaDescVersion.Default.(int64)
	// storemetaDescUpdatedAt is the schema descriptor for updated_at field.
	storemetaDescUpdatedAt := storemetaFields[2].Descriptor()
	// storemeta.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	storemeta.DefaultUpdatedAt = storemetaDescUpdatedAt.Default.(func() time.Time)
	trustscoreFields := schema.TrustScore{}.Fields()
	_ = trustscoreFields
	// trustscoreDescScore is the schema descriptor for score field.
	trustscoreDescScore := trustscoreFields[1].Descriptor()
	// trustscore.DefaultScore holds the default value on creation for the score field.
	trustscore.DefaultScore = trustscoreDescScore.Default.(int)
	// trustscoreDescUpdatedAt is the schema descriptor for updated_at field.
	trustscoreDescUpdatedAt := trustscoreFields[3].Descriptor()
	// trustscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trustscore.DefaultUpdatedAt = trustscoreDescUpdatedAt.Default.(func() time.Time)
	workstreamFields := schema.Workstream{}.Fields()
	_ = workstreamFields
	// workstreamDescStatus is the schema descriptor for status field.
	workstreamDescStatus := workstreamFields[2].Descriptor()
	// workstream.DefaultStatus holds the default value on creation for the status field.
	workstream.DefaultStatus = workstreamDescStatus.Default.(string)
	// workstreamDescCreatedAt is the schema descriptor for created_at field.
	workstreamDescCreatedAt := workstreamFields[4].Descriptor()
	// workstream.DefaultCreatedAt holds the default value on creation for the created_at field.
	workstream.DefaultCreatedAt = workstreamDescCreatedAt.Default.(func() time.Time)
	// workstreamDescUpdatedAt is the schema descriptor for updated_at field.
	workstreamDescUpdatedAt := workstreamFields[5].Descriptor()
	// workstream.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workstream.DefaultUpdatedAt = workstreamDescUpdatedAt.Default.(func() time.Time)
}
