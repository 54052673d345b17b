package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/coherenceissue"
)

// CoherenceIssueInput carries a new issue into the store. DetectedBy is the
// reporting agent id, empty when the issue came from the coherence scan.
type CoherenceIssueInput struct {
	IssueID             string
	Kind                string
	Summary             string
	Severity            string
	AffectedWorkstreams []string
	AffectedArtifactIDs []string
	DetectedBy          string
	DetectedAtTick      int64
}

// StoreCoherenceIssue persists an open issue. A missing issue id gets a
// generated one; the id is returned either way.
func (s *Store) StoreCoherenceIssue(ctx context.Context, in CoherenceIssueInput) (*ent.CoherenceIssue, error) {
	if in.Kind == "" {
		return nil, NewValidationError("kind", "cannot be empty")
	}
	if in.Summary == "" {
		return nil, NewValidationError("summary", "cannot be empty")
	}
	issueID := in.IssueID
	if issueID == "" {
		issueID = uuid.NewString()
	}
	severity := in.Severity
	if severity == "" {
		severity = "medium"
	}

	var issue *ent.CoherenceIssue
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		create := tx.CoherenceIssue.Create().
			SetID(issueID).
			SetKind(coherenceissue.Kind(in.Kind)).
			SetSummary(in.Summary).
			SetSeverity(coherenceissue.Severity(severity)).
			SetStatus(coherenceissue.StatusOpen).
			SetAffectedWorkstreams(in.AffectedWorkstreams).
			SetAffectedArtifacts(in.AffectedArtifactIDs).
			SetDetectedAtTick(in.DetectedAtTick).
			SetCreatedAt(time.Now().UTC())
		if in.DetectedBy != "" {
			create.SetDetectedBy(in.DetectedBy)
		}
		created, cerr := create.Save(ctx)
		if cerr != nil {
			if ent.IsConstraintError(cerr) {
				return fmt.Errorf("coherence issue %s: %w", issueID, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to store coherence issue: %w", cerr)
		}
		issue = created

		for _, ws := range in.AffectedWorkstreams {
			if werr := s.ensureWorkstreamTx(ctx, tx, ws, "", ""); werr != nil {
				return werr
			}
		}
		if aerr := s.auditTx(ctx, tx, "coherence_issue", issueID, "create", callerOrSystem(in.DetectedBy), map[string]interface{}{
			"kind":     in.Kind,
			"severity": severity,
		}); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// ListCoherenceIssues returns issues, newest first, optionally restricted to
// one status ("open" or "resolved"). Empty status means all.
func (s *Store) ListCoherenceIssues(ctx context.Context, status string) ([]*ent.CoherenceIssue, error) {
	q := s.client.CoherenceIssue.Query()
	if status != "" {
		q = q.Where(coherenceissue.StatusEQ(coherenceissue.Status(status)))
	}
	rows, err := q.Order(ent.Desc(coherenceissue.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coherence issues: %w", err)
	}
	return rows, nil
}

// ResolveCoherenceIssue closes an open issue with a resolution note. Resolving
// an already-resolved issue is a conflict, not an idempotent no-op, so callers
// learn their view was stale.
func (s *Store) ResolveCoherenceIssue(ctx context.Context, issueID, resolution, caller string) (*ent.CoherenceIssue, error) {
	var issue *ent.CoherenceIssue
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		existing, qerr := tx.CoherenceIssue.Get(ctx, issueID)
		if qerr != nil {
			if ent.IsNotFound(qerr) {
				return fmt.Errorf("coherence issue %s: %w", issueID, ErrNotFound)
			}
			return fmt.Errorf("failed to load coherence issue %s: %w", issueID, qerr)
		}
		if existing.Status == coherenceissue.StatusResolved {
			return fmt.Errorf("coherence issue %s already resolved: %w", issueID, ErrConflict)
		}

		updated, uerr := existing.Update().
			SetStatus(coherenceissue.StatusResolved).
			SetResolvedAt(time.Now().UTC()).
			SetResolution(resolution).
			Save(ctx)
		if uerr != nil {
			return fmt.Errorf("failed to resolve coherence issue %s: %w", issueID, uerr)
		}
		issue = updated

		if aerr := s.auditTx(ctx, tx, "coherence_issue", issueID, "resolve", callerOrSystem(caller), nil); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}
