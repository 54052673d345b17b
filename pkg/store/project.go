package store

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/project"
)

// projectRowID keys the single project row.
const projectRowID = "project"

// ProjectInput is the full project configuration for a save.
type ProjectInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// SaveProject upserts the single project row, replacing name, description and
// config wholesale.
func (s *Store) SaveProject(ctx context.Context, in ProjectInput) (*ent.Project, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	var row *ent.Project
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		now := time.Now().UTC()
		existing, qerr := tx.Project.Get(ctx, projectRowID)
		switch {
		case qerr == nil:
			updated, uerr := existing.Update().
				SetName(in.Name).
				SetDescription(in.Description).
				SetConfig(in.Config).
				SetUpdatedAt(now).
				Save(ctx)
			if uerr != nil {
				return fmt.Errorf("failed to update project: %w", uerr)
			}
			row = updated
		case ent.IsNotFound(qerr):
			created, cerr := tx.Project.Create().
				SetID(projectRowID).
				SetName(in.Name).
				SetDescription(in.Description).
				SetConfig(in.Config).
				SetCreatedAt(now).
				SetUpdatedAt(now).
				Save(ctx)
			if cerr != nil {
				return fmt.Errorf("failed to create project: %w", cerr)
			}
			row = created
		default:
			return fmt.Errorf("failed to query project: %w", qerr)
		}
		return s.auditTx(ctx, tx, "project", projectRowID, "save", "system", nil)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// PatchProject deep-merges the given config fragment over the stored config.
// Keys present in the patch win; everything else is preserved.
func (s *Store) PatchProject(ctx context.Context, patch map[string]any) (*ent.Project, error) {
	var row *ent.Project
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		existing, qerr := tx.Project.Get(ctx, projectRowID)
		if qerr != nil {
			if ent.IsNotFound(qerr) {
				return fmt.Errorf("project: %w", ErrNotFound)
			}
			return fmt.Errorf("failed to query project: %w", qerr)
		}

		merged := map[string]any{}
		if err := mergo.Merge(&merged, existing.Config, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to copy project config: %w", err)
		}
		if err := mergo.Merge(&merged, patch, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge project config patch: %w", err)
		}

		updated, uerr := existing.Update().
			SetConfig(merged).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if uerr != nil {
			return fmt.Errorf("failed to patch project: %w", uerr)
		}
		row = updated
		return s.auditTx(ctx, tx, "project", projectRowID, "patch", "system", nil)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetProject returns the single project row.
func (s *Store) GetProject(ctx context.Context) (*ent.Project, error) {
	row, err := s.client.Project.Get(ctx, projectRowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return row, nil
}

// HasProject reports whether the project row exists yet.
func (s *Store) HasProject(ctx context.Context) (bool, error) {
	exists, err := s.client.Project.Query().
		Where(project.ID(projectRowID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	return exists, nil
}
