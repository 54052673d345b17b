package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// Seed modes accepted by ProjectService.Seed.
const (
	SeedModeCreate = "create"
	SeedModeMerge  = "merge"
)

// defaultEscalationProtocol applies when neither the draft input nor the
// project config names one.
const defaultEscalationProtocol = "escalate_to_human"

// ProjectService owns the single project configuration row and derives
// spawn-ready agent briefs from it.
type ProjectService struct {
	store *store.Store
}

// NewProjectService creates the service.
func NewProjectService(st *store.Store) *ProjectService {
	if st == nil {
		panic("NewProjectService: store must not be nil")
	}
	return &ProjectService{store: st}
}

// Seed installs the project configuration. Mode create refuses to overwrite
// an existing project; merge deep-merges the incoming config over the stored
// one, with name and description overriding only when set. An empty mode
// defaults to create.
func (s *ProjectService) Seed(ctx context.Context, mode string, in store.ProjectInput) (*ent.Project, error) {
	switch mode {
	case SeedModeCreate, "":
		exists, err := s.store.HasProject(ctx)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("project already seeded: %w", store.ErrAlreadyExists)
		}
		return s.store.SaveProject(ctx, in)

	case SeedModeMerge:
		existing, err := s.store.GetProject(ctx)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return s.store.SaveProject(ctx, in)
			}
			return nil, err
		}

		merged := store.ProjectInput{
			Name:   existing.Name,
			Config: map[string]any{},
		}
		if existing.Description != nil {
			merged.Description = *existing.Description
		}
		if err := mergo.Merge(&merged.Config, existing.Config, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to copy project config: %w", err)
		}
		if err := mergo.Merge(&merged.Config, in.Config, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge project config: %w", err)
		}
		if in.Name != "" {
			merged.Name = in.Name
		}
		if in.Description != "" {
			merged.Description = in.Description
		}
		return s.store.SaveProject(ctx, merged)

	default:
		return nil, store.NewValidationError("mode", fmt.Sprintf("unknown seed mode %q", mode))
	}
}

// Get returns the project row.
func (s *ProjectService) Get(ctx context.Context) (*ent.Project, error) {
	return s.store.GetProject(ctx)
}

// Patch deep-merges a config fragment over the stored project config.
func (s *ProjectService) Patch(ctx context.Context, patch map[string]any) (*ent.Project, error) {
	if len(patch) == 0 {
		return nil, store.NewValidationError("patch", "cannot be empty")
	}
	return s.store.PatchProject(ctx, patch)
}

// DraftBriefInput seeds a generated brief.
type DraftBriefInput struct {
	Role                string   `json:"role"`
	Workstream          string   `json:"workstream"`
	ReadableWorkstreams []string `json:"readableWorkstreams,omitempty"`
	ModelPreference     string   `json:"modelPreference,omitempty"`
}

// DraftBrief assembles a spawn-ready brief from the stored project
// configuration: the project brief text from name and description, readable
// workstreams defaulting to every known workstream except the agent's own,
// allowed tools and escalation protocol from the config when present. The
// knowledge snapshot is not attached here; spawn does that.
func (s *ProjectService) DraftBrief(ctx context.Context, in DraftBriefInput) (*models.AgentBrief, error) {
	if in.Role == "" {
		return nil, store.NewValidationError("role", "cannot be empty")
	}
	if in.Workstream == "" {
		return nil, store.NewValidationError("workstream", "cannot be empty")
	}

	proj, err := s.store.GetProject(ctx)
	if err != nil {
		return nil, err
	}

	brief := &models.AgentBrief{
		Role:                in.Role,
		Workstream:          in.Workstream,
		ReadableWorkstreams: in.ReadableWorkstreams,
		ModelPreference:     in.ModelPreference,
		EscalationProtocol:  defaultEscalationProtocol,
		ProjectBrief:        projectBriefText(proj),
	}

	if len(brief.ReadableWorkstreams) == 0 {
		rows, err := s.store.ListWorkstreams(ctx)
		if err != nil {
			return nil, err
		}
		for _, ws := range rows {
			if ws.ID == in.Workstream {
				continue
			}
			brief.ReadableWorkstreams = append(brief.ReadableWorkstreams, ws.ID)
		}
		sort.Strings(brief.ReadableWorkstreams)
	}

	if tools, ok := stringSlice(proj.Config["allowedTools"]); ok {
		brief.AllowedTools = tools
	}
	if esc, ok := proj.Config["escalationProtocol"].(string); ok && esc != "" {
		brief.EscalationProtocol = esc
	}

	return brief, nil
}

func projectBriefText(proj *ent.Project) string {
	var b strings.Builder
	b.WriteString(proj.Name)
	if proj.Description != nil && *proj.Description != "" {
		b.WriteString(": ")
		b.WriteString(*proj.Description)
	}
	return b.String()
}

// stringSlice coerces a JSON-decoded config value into a string slice. Config
// maps round-trip through JSON, so string arrays arrive as []any.
func stringSlice(v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, len(vv) > 0
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}
