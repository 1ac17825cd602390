package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/store"
)

// resolveBlockID matches user input against stored block ids, accepting an
// exact id or an unambiguous prefix.
func resolveBlockID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("block ID is required")
	}

	blocks, err := app.Timelines.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range blocks {
		if b.ID == input {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range blocks {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("block not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("block ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveID matches input against candidate ids: exact first, then an
// unambiguous prefix.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(t *domain.Timeline, input string) (string, error) {
	ids := make([]string, 0, len(t.Projects))
	for _, p := range t.Projects {
		ids = append(ids, p.ID)
	}
	return resolveID("project", input, ids)
}

func resolveStageID(t *domain.Timeline, input string) (string, error) {
	var ids []string
	for _, p := range t.Projects {
		for _, s := range p.Stages {
			ids = append(ids, s.ID)
		}
	}
	return resolveID("stage", input, ids)
}

func resolveMilestoneID(t *domain.Timeline, input string) (string, error) {
	var ids []string
	for _, p := range t.Projects {
		for _, m := range p.Milestones {
			ids = append(ids, m.ID)
		}
	}
	return resolveID("milestone", input, ids)
}

func resolveSprintID(t *domain.Timeline, input string) (string, error) {
	ids := make([]string, 0, len(t.Sprints))
	for _, sp := range t.Sprints {
		ids = append(ids, sp.ID)
	}
	return resolveID("sprint", input, ids)
}

// withModel loads the block's model, applies fn through a store, and saves
// the result back when fn succeeds.
func withModel(ctx context.Context, app *App, blockRef string, fn func(*store.Store) error) error {
	blockID, err := resolveBlockID(ctx, app, blockRef)
	if err != nil {
		return err
	}
	t, err := app.Timelines.Load(ctx, blockID)
	if err != nil {
		return err
	}
	if err := fn(store.New(t)); err != nil {
		return err
	}
	return app.Timelines.Save(ctx, blockID, t)
}

// readModel loads the block's model without writing anything back.
func readModel(ctx context.Context, app *App, blockRef string) (*domain.Timeline, error) {
	blockID, err := resolveBlockID(ctx, app, blockRef)
	if err != nil {
		return nil, err
	}
	return app.Timelines.Load(ctx, blockID)
}
