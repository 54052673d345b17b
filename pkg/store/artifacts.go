package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/artifact"
	"github.com/steward-io/steward/ent/artifactcontent"
	"github.com/steward-io/steward/pkg/models"
)

// ArtifactContentResult is returned by StoreArtifactContent.
type ArtifactContentResult struct {
	BackendURI string `json:"backendUri"`
	Stored     bool   `json:"stored"`
}

// UpsertArtifact performs the atomic read-check-write upsert. The caller
// supplies the version it last observed; a mismatch (or a missing row with
// expectedVersion != 0) fails with *ConflictError and changes nothing. On
// success the stored version becomes expectedVersion+1, an audit entry is
// recorded, the workstream row is ensured, and the global version is bumped.
func (s *Store) UpsertArtifact(ctx context.Context, ev *models.ArtifactEvent, expectedVersion int, caller string) (*ent.Artifact, error) {
	if ev == nil || ev.ArtifactID == "" {
		return nil, NewValidationError("artifactId", "required")
	}
	if ev.Workstream == "" {
		return nil, NewValidationError("workstream", "required")
	}

	var result *ent.Artifact
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		current, err := tx.Artifact.Query().
			Where(artifact.IDEQ(ev.ArtifactID)).
			Only(ctx)
		switch {
		case err == nil:
			if current.Version != expectedVersion {
				return &ConflictError{ArtifactID: ev.ArtifactID, Expected: expectedVersion, Actual: current.Version}
			}
			updated, uerr := s.applyArtifactUpdate(ctx, current, ev, current.Version+1)
			if uerr != nil {
				return uerr
			}
			result = updated
			if aerr := s.auditTx(ctx, tx, "artifact", ev.ArtifactID, "update", caller, map[string]interface{}{
				"version": updated.Version,
			}); aerr != nil {
				return aerr
			}
		case ent.IsNotFound(err):
			if expectedVersion != 0 {
				return &ConflictError{ArtifactID: ev.ArtifactID, Expected: expectedVersion, Actual: 0}
			}
			created, cerr := s.createArtifactTx(ctx, tx, ev, caller, 1)
			if cerr != nil {
				return cerr
			}
			result = created
			if aerr := s.auditTx(ctx, tx, "artifact", ev.ArtifactID, "create", caller, map[string]interface{}{
				"version": created.Version,
			}); aerr != nil {
				return aerr
			}
		default:
			return fmt.Errorf("failed to read artifact: %w", err)
		}

		if err := s.ensureWorkstreamTx(ctx, tx, ev.Workstream, "", ""); err != nil {
			return err
		}
		_, err = s.bumpVersionTx(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StoreArtifact is the legacy unchecked upsert: no expectedVersion guard, but
// the stored version still increments on every accepted write.
func (s *Store) StoreArtifact(ctx context.Context, ev *models.ArtifactEvent, caller string) (*ent.Artifact, error) {
	if ev == nil || ev.ArtifactID == "" {
		return nil, NewValidationError("artifactId", "required")
	}
	if ev.Workstream == "" {
		return nil, NewValidationError("workstream", "required")
	}

	var result *ent.Artifact
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		current, err := tx.Artifact.Query().
			Where(artifact.IDEQ(ev.ArtifactID)).
			Only(ctx)
		switch {
		case err == nil:
			updated, uerr := s.applyArtifactUpdate(ctx, current, ev, current.Version+1)
			if uerr != nil {
				return uerr
			}
			result = updated
		case ent.IsNotFound(err):
			created, cerr := s.createArtifactTx(ctx, tx, ev, caller, 1)
			if cerr != nil {
				return cerr
			}
			result = created
		default:
			return fmt.Errorf("failed to read artifact: %w", err)
		}

		action := "update"
		if result.Version == 1 {
			action = "create"
		}
		if aerr := s.auditTx(ctx, tx, "artifact", ev.ArtifactID, action, caller, nil); aerr != nil {
			return aerr
		}
		if err := s.ensureWorkstreamTx(ctx, tx, ev.Workstream, "", ""); err != nil {
			return err
		}
		_, err = s.bumpVersionTx(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) createArtifactTx(ctx context.Context, tx *ent.Tx, ev *models.ArtifactEvent, caller string, version int) (*ent.Artifact, error) {
	builder := tx.Artifact.Create().
		SetID(ev.ArtifactID).
		SetName(ev.Name).
		SetWorkstream(ev.Workstream).
		SetCreatedBy(callerOrSystem(caller)).
		SetVersion(version).
		SetCreatedAt(time.Now().UTC()).
		SetUpdatedAt(time.Now().UTC())
	if ev.Kind != "" {
		builder.SetKind(artifact.Kind(ev.Kind))
	}
	if ev.Status != "" {
		builder.SetStatus(artifact.Status(ev.Status))
	}
	builder.SetQualityScore(ev.QualityScore)
	if len(ev.SourceArtifactIDs) > 0 {
		builder.SetSources(ev.SourceArtifactIDs)
	}
	if ev.URI != "" {
		builder.SetURI(ev.URI)
	}
	if ev.MimeType != "" {
		builder.SetMimeType(ev.MimeType)
	}
	if ev.SizeBytes > 0 {
		builder.SetSizeBytes(ev.SizeBytes)
	}
	if ev.ContentHash != "" {
		builder.SetContentHash(ev.ContentHash)
	}
	if ev.Summary != "" {
		builder.SetSummary(ev.Summary)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}
	return created, nil
}

func (s *Store) applyArtifactUpdate(ctx context.Context, current *ent.Artifact, ev *models.ArtifactEvent, version int) (*ent.Artifact, error) {
	builder := current.Update().
		SetName(ev.Name).
		SetWorkstream(ev.Workstream).
		SetVersion(version).
		SetUpdatedAt(time.Now().UTC())
	if ev.Kind != "" {
		builder.SetKind(artifact.Kind(ev.Kind))
	}
	if ev.Status != "" {
		builder.SetStatus(artifact.Status(ev.Status))
	}
	builder.SetQualityScore(ev.QualityScore)
	if len(ev.SourceArtifactIDs) > 0 {
		builder.SetSources(ev.SourceArtifactIDs)
	}
	if ev.URI != "" {
		builder.SetURI(ev.URI)
	}
	if ev.MimeType != "" {
		builder.SetMimeType(ev.MimeType)
	}
	if ev.SizeBytes > 0 {
		builder.SetSizeBytes(ev.SizeBytes)
	}
	if ev.ContentHash != "" {
		builder.SetContentHash(ev.ContentHash)
	}
	if ev.Summary != "" {
		builder.SetSummary(ev.Summary)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update artifact: %w", err)
	}
	return updated, nil
}

// GetArtifact returns an artifact by id.
func (s *Store) GetArtifact(ctx context.Context, id string) (*ent.Artifact, error) {
	row, err := s.client.Artifact.Query().
		Where(artifact.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("artifact %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return row, nil
}

// ListArtifacts returns artifacts, optionally filtered by workstream, newest
// update first.
func (s *Store) ListArtifacts(ctx context.Context, workstream string) ([]*ent.Artifact, error) {
	query := s.client.Artifact.Query()
	if workstream != "" {
		query = query.Where(artifact.WorkstreamEQ(workstream))
	}
	rows, err := query.
		Order(ent.Desc(artifact.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return rows, nil
}

// GetArtifactVersion returns the stored version, or 0 when the artifact does
// not exist.
func (s *Store) GetArtifactVersion(ctx context.Context, id string) (int, error) {
	row, err := s.client.Artifact.Query().
		Where(artifact.IDEQ(id)).
		Select(artifact.FieldVersion).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get artifact version: %w", err)
	}
	return row.Version, nil
}

// StoreArtifactContent upserts uploaded content keyed by (agentID, artifactID)
// and returns the backend URI that resolves to it.
func (s *Store) StoreArtifactContent(ctx context.Context, agentID, artifactID string, content []byte, mimeType string) (*ArtifactContentResult, error) {
	if agentID == "" {
		return nil, NewValidationError("agentId", "required")
	}
	if artifactID == "" {
		return nil, NewValidationError("artifactId", "required")
	}

	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		existing, err := tx.ArtifactContent.Query().
			Where(
				artifactcontent.AgentIDEQ(agentID),
				artifactcontent.ArtifactIDEQ(artifactID),
			).
			Only(ctx)
		switch {
		case err == nil:
			builder := existing.Update().
				SetContent(content).
				SetUpdatedAt(time.Now().UTC())
			if mimeType != "" {
				builder.SetMimeType(mimeType)
			}
			if _, uerr := builder.Save(ctx); uerr != nil {
				return fmt.Errorf("failed to update artifact content: %w", uerr)
			}
		case ent.IsNotFound(err):
			builder := tx.ArtifactContent.Create().
				SetAgentID(agentID).
				SetArtifactID(artifactID).
				SetContent(content).
				SetUpdatedAt(time.Now().UTC())
			if mimeType != "" {
				builder.SetMimeType(mimeType)
			}
			if _, cerr := builder.Save(ctx); cerr != nil {
				return fmt.Errorf("failed to store artifact content: %w", cerr)
			}
		default:
			return fmt.Errorf("failed to read artifact content: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ArtifactContentResult{
		BackendURI: fmt.Sprintf("artifact://%s/%s", agentID, artifactID),
		Stored:     true,
	}, nil
}

// GetArtifactContent resolves stored content for an artifact. When agentID is
// empty the most recently updated upload for the artifact wins.
func (s *Store) GetArtifactContent(ctx context.Context, agentID, artifactID string) (*ent.ArtifactContent, error) {
	query := s.client.ArtifactContent.Query().
		Where(artifactcontent.ArtifactIDEQ(artifactID))
	if agentID != "" {
		query = query.Where(artifactcontent.AgentIDEQ(agentID))
	}
	row, err := query.
		Order(ent.Desc(artifactcontent.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("content for artifact %s: %w", artifactID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artifact content: %w", err)
	}
	return row, nil
}
