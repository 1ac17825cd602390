package service

import (
	"context"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/repository"
)

// TimelineService loads, mutates and persists timeline models through the
// block storage collaborator. Decode failures yield default models; block
// storage failures are fatal to the operation and surface to the caller.
type TimelineService interface {
	Create(ctx context.Context, blockID string) (*domain.Timeline, error)
	Load(ctx context.Context, blockID string) (*domain.Timeline, error)
	Save(ctx context.Context, blockID string, t *domain.Timeline) error
	Remove(ctx context.Context, blockID string) error
	List(ctx context.Context) ([]*repository.Block, error)

	// Gesture-driven mutations for non-interactive callers: each runs a
	// whole drag or resize gesture against the persisted model.
	MoveStage(ctx context.Context, blockID, stageID string, byUnits int) (*domain.Stage, error)
	ResizeStage(ctx context.Context, blockID, stageID string, toDuration int) (*domain.Stage, error)
	MoveMilestone(ctx context.Context, blockID, milestoneID string, byUnits int) (*domain.Milestone, error)
}

// ImportResult holds the outcome of a timeline definition import.
type ImportResult struct {
	BlockID        string
	ProjectCount   int
	StageCount     int
	MilestoneCount int
	SprintCount    int
}

// ImportService materializes a timeline from a YAML or JSON definition
// file into a new block.
type ImportService interface {
	ImportTimeline(ctx context.Context, filePath, blockID string) (*ImportResult, error)
}

// EditorBinding ties an ephemeral render slot to its persistent block and
// the model last rendered into it.
type EditorBinding struct {
	BlockID   string
	Model     *domain.Timeline
	BoundAt   time.Time
	UpdatedAt time.Time
}
