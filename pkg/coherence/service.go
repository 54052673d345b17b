// Package coherence files and tracks cross-workstream inconsistencies. Issues
// arrive two ways: agents report them through coherence events, and a
// tick-cadence heuristic scan finds the mechanical ones (duplicate artifact
// names across workstreams, artifacts deriving from sources that do not
// exist). Either path debits the trust of the agents whose artifacts are
// involved.
package coherence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
)

// Issue kinds accepted from agents and produced by the scan.
const (
	KindContradiction       = "contradiction"
	KindDuplication         = "duplication"
	KindGap                 = "gap"
	KindDependencyViolation = "dependency_violation"
)

// Store is the persistence slice the service works through.
type Store interface {
	StoreCoherenceIssue(ctx context.Context, in store.CoherenceIssueInput) (*ent.CoherenceIssue, error)
	ListCoherenceIssues(ctx context.Context, status string) ([]*ent.CoherenceIssue, error)
	ResolveCoherenceIssue(ctx context.Context, issueID, resolution, caller string) (*ent.CoherenceIssue, error)
	ListArtifacts(ctx context.Context, workstream string) ([]*ent.Artifact, error)
	GetArtifact(ctx context.Context, id string) (*ent.Artifact, error)
}

// TrustEngine applies behavioral outcomes to agent scores.
type TrustEngine interface {
	ApplyOutcome(agentID string, outcome trust.Outcome, tick int64, octx *trust.OutcomeContext) int
}

// Ticks reports the current project tick.
type Ticks interface {
	Current() int64
}

// Publisher carries scan findings onto the event bus so reactive injection
// triggers fire for them the same way they do for agent-reported issues.
type Publisher interface {
	Publish(env *models.EventEnvelope)
}

// Options tunes the heuristic scan.
type Options struct {
	// ScanIntervalTicks runs the scan each time the tick counter crosses a
	// multiple of it. 0 disables the scan.
	ScanIntervalTicks int64
	// ScanTimeout bounds one scan pass.
	ScanTimeout time.Duration
}

const defaultScanTimeout = 30 * time.Second

// Service is the coherence policy engine. trust and bus may be nil.
type Service struct {
	store Store
	trust TrustEngine
	ticks Ticks
	bus   Publisher
	opts  Options
}

// NewService builds the coherence service.
func NewService(st Store, trustEngine TrustEngine, ticks Ticks, bus Publisher, opts Options) *Service {
	if opts.ScanTimeout <= 0 {
		opts.ScanTimeout = defaultScanTimeout
	}
	return &Service{store: st, trust: trustEngine, ticks: ticks, bus: bus, opts: opts}
}

// HandleCoherenceEvent persists an agent-reported issue and debits the trust
// of the creators of the affected artifacts. Called by the ingest pipeline
// for every coherence envelope; duplicate issue ids surface as
// store.ErrAlreadyExists.
func (s *Service) HandleCoherenceEvent(ctx context.Context, env *models.EventEnvelope) (*ent.CoherenceIssue, error) {
	ev := env.Event.Coherence
	if ev == nil {
		return nil, store.NewValidationError("coherence", "missing coherence payload")
	}
	if !knownKind(ev.Kind) {
		return nil, store.NewValidationError("kind", fmt.Sprintf("unknown coherence kind %q", ev.Kind))
	}
	if ev.Severity != "" && !models.KnownSeverity(ev.Severity) {
		return nil, store.NewValidationError("severity", fmt.Sprintf("unknown severity %q", ev.Severity))
	}

	issue, err := s.store.StoreCoherenceIssue(ctx, store.CoherenceIssueInput{
		IssueID:             ev.IssueID,
		Kind:                ev.Kind,
		Summary:             ev.Summary,
		Severity:            ev.Severity,
		AffectedWorkstreams: ev.AffectedWorkstreams,
		AffectedArtifactIDs: ev.AffectedArtifactIDs,
		DetectedBy:          env.AgentID,
		DetectedAtTick:      s.ticks.Current(),
	})
	if err != nil {
		return nil, err
	}

	s.applyOutcome(ctx, trust.OutcomeCoherenceIssue, issue.AffectedArtifacts, issue.AffectedWorkstreams)
	return issue, nil
}

// Resolve closes an open issue and credits the creators of its artifacts with
// the resolution outcome.
func (s *Service) Resolve(ctx context.Context, issueID, resolution, caller string) (*ent.CoherenceIssue, error) {
	issue, err := s.store.ResolveCoherenceIssue(ctx, issueID, resolution, caller)
	if err != nil {
		return nil, err
	}
	s.applyOutcome(ctx, trust.OutcomeCoherenceIssueResolved, issue.AffectedArtifacts, issue.AffectedWorkstreams)
	return issue, nil
}

// List returns issues, newest first, optionally restricted to one status.
func (s *Service) List(ctx context.Context, status string) ([]*ent.CoherenceIssue, error) {
	return s.store.ListCoherenceIssues(ctx, status)
}

// OnTick runs the heuristic scan on its cadence. Wire as a tick subscriber.
func (s *Service) OnTick(tick int64) {
	if s.opts.ScanIntervalTicks <= 0 || tick <= 0 || tick%s.opts.ScanIntervalTicks != 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ScanTimeout)
	defer cancel()
	if _, err := s.Scan(ctx); err != nil {
		slog.Warn("Coherence scan failed", "tick", tick, "error", err)
	}
}

// Scan runs the heuristics once over the artifact index and returns the
// newly filed issues. Findings already on record are skipped; issue ids are
// deterministic in the finding so a fact files at most once.
func (s *Service) Scan(ctx context.Context) ([]*ent.CoherenceIssue, error) {
	arts, err := s.store.ListArtifacts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("coherence scan: %w", err)
	}

	var filed []*ent.CoherenceIssue
	filed = append(filed, s.scanDuplicateNames(ctx, arts)...)
	filed = append(filed, s.scanDanglingSources(ctx, arts)...)
	if len(filed) > 0 {
		slog.Info("Coherence scan filed issues", "count", len(filed))
	}
	return filed, nil
}

// scanDuplicateNames files a duplication issue for every artifact name that
// appears in more than one workstream.
func (s *Service) scanDuplicateNames(ctx context.Context, arts []*ent.Artifact) []*ent.CoherenceIssue {
	byName := make(map[string][]*ent.Artifact)
	for _, art := range arts {
		byName[art.Name] = append(byName[art.Name], art)
	}

	var filed []*ent.CoherenceIssue
	for name, group := range byName {
		wsSet := make(map[string]bool)
		ids := make([]string, 0, len(group))
		for _, art := range group {
			wsSet[art.Workstream] = true
			ids = append(ids, art.ID)
		}
		if len(wsSet) < 2 {
			continue
		}
		workstreams := make([]string, 0, len(wsSet))
		for ws := range wsSet {
			workstreams = append(workstreams, ws)
		}
		sort.Strings(workstreams)
		sort.Strings(ids)

		issue := s.file(ctx, store.CoherenceIssueInput{
			IssueID:             scanIssueID(KindDuplication, name),
			Kind:                KindDuplication,
			Summary:             fmt.Sprintf("artifact name %q exists in %d workstreams (%s)", name, len(workstreams), strings.Join(workstreams, ", ")),
			Severity:            models.SeverityLow,
			AffectedWorkstreams: workstreams,
			AffectedArtifactIDs: ids,
		})
		if issue != nil {
			filed = append(filed, issue)
		}
	}
	return filed
}

// scanDanglingSources files a dependency_violation issue for every artifact
// whose provenance names a source artifact that is not in the store.
func (s *Service) scanDanglingSources(ctx context.Context, arts []*ent.Artifact) []*ent.CoherenceIssue {
	known := make(map[string]bool, len(arts))
	for _, art := range arts {
		known[art.ID] = true
	}

	var filed []*ent.CoherenceIssue
	for _, art := range arts {
		for _, src := range art.Sources {
			if src == "" || known[src] {
				continue
			}
			issue := s.file(ctx, store.CoherenceIssueInput{
				IssueID:             scanIssueID(KindDependencyViolation, art.ID, src),
				Kind:                KindDependencyViolation,
				Summary:             fmt.Sprintf("artifact %q (%s) derives from missing artifact %s", art.Name, art.ID, src),
				Severity:            models.SeverityMedium,
				AffectedWorkstreams: []string{art.Workstream},
				AffectedArtifactIDs: []string{art.ID, src},
			})
			if issue != nil {
				filed = append(filed, issue)
			}
		}
	}
	return filed
}

// file persists one scan finding, debits trust, and republishes it as a
// synthetic coherence envelope. A nil return means the finding was already on
// record or could not be stored.
func (s *Service) file(ctx context.Context, in store.CoherenceIssueInput) *ent.CoherenceIssue {
	in.DetectedAtTick = s.ticks.Current()
	issue, err := s.store.StoreCoherenceIssue(ctx, in)
	if err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			slog.Warn("Failed to store scan finding", "issue_id", in.IssueID, "kind", in.Kind, "error", err)
		}
		return nil
	}

	s.applyOutcome(ctx, trust.OutcomeCoherenceIssue, issue.AffectedArtifacts, issue.AffectedWorkstreams)
	s.publishFinding(issue)
	return issue
}

// applyOutcome maps the affected artifacts to their creators and applies the
// outcome to each, with the artifact kinds and workstreams as context.
// Artifacts that no longer resolve carry no attribution.
func (s *Service) applyOutcome(ctx context.Context, outcome trust.Outcome, artifactIDs, workstreams []string) {
	if s.trust == nil {
		return
	}
	kindsByCreator := make(map[string]map[string]bool)
	for _, id := range artifactIDs {
		art, err := s.store.GetArtifact(ctx, id)
		if err != nil || art.CreatedBy == "" {
			continue
		}
		kinds := kindsByCreator[art.CreatedBy]
		if kinds == nil {
			kinds = make(map[string]bool)
			kindsByCreator[art.CreatedBy] = kinds
		}
		kinds[string(art.Kind)] = true
	}

	tick := s.ticks.Current()
	for creator, kindSet := range kindsByCreator {
		kinds := make([]string, 0, len(kindSet))
		for k := range kindSet {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		s.trust.ApplyOutcome(creator, outcome, tick, &trust.OutcomeContext{
			ArtifactKinds: kinds,
			Workstreams:   workstreams,
		})
	}
}

// publishFinding puts a scan finding on the bus as a coherence envelope so
// injection triggers treat it like an agent report.
func (s *Service) publishFinding(issue *ent.CoherenceIssue) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(&models.EventEnvelope{
		SourceEventID:    "coherence-scan-" + issue.ID,
		SourceOccurredAt: issue.CreatedAt,
		RunID:            "control-plane",
		AgentID:          "coherence-scan",
		IngestedAt:       time.Now().UTC(),
		Event: models.AgentEvent{
			Type: models.EventTypeCoherence,
			Coherence: &models.CoherenceEvent{
				IssueID:             issue.ID,
				Kind:                string(issue.Kind),
				Summary:             issue.Summary,
				Severity:            string(issue.Severity),
				AffectedWorkstreams: issue.AffectedWorkstreams,
				AffectedArtifactIDs: issue.AffectedArtifacts,
			},
		},
	})
}

func knownKind(kind string) bool {
	switch kind {
	case KindContradiction, KindDuplication, KindGap, KindDependencyViolation:
		return true
	}
	return false
}

// scanIssueID derives a stable issue id from the finding itself.
func scanIssueID(kind string, parts ...string) string {
	h := sha256.Sum256([]byte(kind + "\x00" + strings.Join(parts, "\x00")))
	return "scan-" + kind + "-" + hex.EncodeToString(h[:6])
}
