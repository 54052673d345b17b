package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/domaintrustscore"
	"github.com/steward-io/steward/ent/trustscore"
	"github.com/steward-io/steward/pkg/models"
)

const defaultTrustScore = 50

func clampTrust(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// GetTrustProfile returns the agent's global and per-domain trust scores.
// An agent with no recorded history gets the default global score and no
// domain entries.
func (s *Store) GetTrustProfile(ctx context.Context, agentID string) (*models.TrustProfile, error) {
	profile := &models.TrustProfile{
		AgentID: agentID,
		Score:   defaultTrustScore,
		Domains: map[string]int{},
	}

	row, err := s.client.TrustScore.Get(ctx, agentID)
	switch {
	case err == nil:
		profile.Score = row.Score
	case ent.IsNotFound(err):
	default:
		return nil, fmt.Errorf("failed to get trust score for %s: %w", agentID, err)
	}

	domains, err := s.GetDomainTrustScores(ctx, agentID)
	if err != nil {
		return nil, err
	}
	profile.Domains = domains
	return profile, nil
}

// UpdateTrust applies a signed delta to the agent's global score, clamped to
// [0,100], creating the row at the default score first if needed. Returns the
// new score.
func (s *Store) UpdateTrust(ctx context.Context, agentID string, delta int, reason string) (int, error) {
	if agentID == "" {
		return 0, NewValidationError("agentId", "cannot be empty")
	}

	var newScore int
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		now := time.Now().UTC()
		current := defaultTrustScore
		row, qerr := tx.TrustScore.Get(ctx, agentID)
		switch {
		case qerr == nil:
			current = row.Score
		case ent.IsNotFound(qerr):
		default:
			return fmt.Errorf("failed to get trust score for %s: %w", agentID, qerr)
		}

		newScore = clampTrust(current + delta)
		if row == nil {
			_, cerr := tx.TrustScore.Create().
				SetID(agentID).
				SetScore(newScore).
				SetLastReason(reason).
				SetUpdatedAt(now).
				Save(ctx)
			if cerr != nil {
				return fmt.Errorf("failed to create trust score for %s: %w", agentID, cerr)
			}
		} else {
			_, uerr := row.Update().
				SetScore(newScore).
				SetLastReason(reason).
				SetUpdatedAt(now).
				Save(ctx)
			if uerr != nil {
				return fmt.Errorf("failed to update trust score for %s: %w", agentID, uerr)
			}
		}

		return s.auditTx(ctx, tx, "trust", agentID, "update", "system", map[string]interface{}{
			"delta":  delta,
			"score":  newScore,
			"reason": reason,
		})
	})
	if err != nil {
		return 0, err
	}
	return newScore, nil
}

// SetTrustScore overwrites the agent's global score, clamped to [0,100].
// Used by decay and by calibration profile changes, where the engine computes
// the absolute value itself.
func (s *Store) SetTrustScore(ctx context.Context, agentID string, score int, reason string) (int, error) {
	if agentID == "" {
		return 0, NewValidationError("agentId", "cannot be empty")
	}

	final := clampTrust(score)
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		now := time.Now().UTC()
		n, uerr := tx.TrustScore.Update().
			Where(trustscore.ID(agentID)).
			SetScore(final).
			SetLastReason(reason).
			SetUpdatedAt(now).
			Save(ctx)
		if uerr != nil {
			return fmt.Errorf("failed to set trust score for %s: %w", agentID, uerr)
		}
		if n == 0 {
			_, cerr := tx.TrustScore.Create().
				SetID(agentID).
				SetScore(final).
				SetLastReason(reason).
				SetUpdatedAt(now).
				Save(ctx)
			if cerr != nil {
				return fmt.Errorf("failed to create trust score for %s: %w", agentID, cerr)
			}
		}
		return s.auditTx(ctx, tx, "trust", agentID, "set", "system", map[string]interface{}{
			"score":  final,
			"reason": reason,
		})
	})
	if err != nil {
		return 0, err
	}
	return final, nil
}

// GetDomainTrustScores returns the agent's per-domain scores keyed by domain.
func (s *Store) GetDomainTrustScores(ctx context.Context, agentID string) (map[string]int, error) {
	rows, err := s.client.DomainTrustScore.Query().
		Where(domaintrustscore.AgentID(agentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get domain trust scores for %s: %w", agentID, err)
	}
	scores := make(map[string]int, len(rows))
	for _, r := range rows {
		scores[r.Domain] = r.Score
	}
	return scores, nil
}

// StoreDomainTrustScores upserts the given per-domain scores, clamped to
// [0,100]. Domains absent from the map are left untouched.
func (s *Store) StoreDomainTrustScores(ctx context.Context, agentID string, scores map[string]int) error {
	if agentID == "" {
		return NewValidationError("agentId", "cannot be empty")
	}
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		now := time.Now().UTC()
		for domain, score := range scores {
			final := clampTrust(score)
			n, uerr := tx.DomainTrustScore.Update().
				Where(
					domaintrustscore.AgentID(agentID),
					domaintrustscore.Domain(domain),
				).
				SetScore(final).
				SetUpdatedAt(now).
				Save(ctx)
			if uerr != nil {
				return fmt.Errorf("failed to update domain trust %s/%s: %w", agentID, domain, uerr)
			}
			if n == 0 {
				_, cerr := tx.DomainTrustScore.Create().
					SetAgentID(agentID).
					SetDomain(domain).
					SetScore(final).
					SetUpdatedAt(now).
					Save(ctx)
				if cerr != nil {
					return fmt.Errorf("failed to create domain trust %s/%s: %w", agentID, domain, cerr)
				}
			}
		}
		return nil
	})
}
