package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/codec"
	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/Chilos/project-gantt/internal/geometry"
	"github.com/Chilos/project-gantt/internal/gesture"
	"github.com/Chilos/project-gantt/internal/repository"
	"github.com/google/uuid"
)

type timelineService struct {
	blocks repository.BlockRepo
}

// NewTimelineService wires the service over a block storage collaborator.
func NewTimelineService(blocks repository.BlockRepo) TimelineService {
	return &timelineService{blocks: blocks}
}

func (s *timelineService) Create(ctx context.Context, blockID string) (*domain.Timeline, error) {
	if blockID == "" {
		blockID = uuid.New().String()
	}
	t := domain.NewTimeline(time.Now())
	payload, err := codec.Encode(t)
	if err != nil {
		return nil, fmt.Errorf("encoding timeline: %w", err)
	}
	if err := s.blocks.CreateBlock(ctx, blockID, repository.WrapMacro(payload)); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads the block, extracts the macro payload and decodes it. A block
// with no macro or an unparseable payload yields a fresh default model;
// only storage failures are errors.
func (s *timelineService) Load(ctx context.Context, blockID string) (*domain.Timeline, error) {
	block, err := s.blocks.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	payload, ok := repository.ExtractMacroPayload(block.Content)
	if !ok {
		return domain.NewTimeline(time.Now()), nil
	}
	return codec.Decode(payload), nil
}

func (s *timelineService) Save(ctx context.Context, blockID string, t *domain.Timeline) error {
	payload, err := codec.Encode(t)
	if err != nil {
		return fmt.Errorf("encoding timeline: %w", err)
	}
	block, err := s.blocks.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	content := repository.ReplaceMacroPayload(block.Content, payload)
	return s.blocks.UpdateBlock(ctx, blockID, content)
}

func (s *timelineService) Remove(ctx context.Context, blockID string) error {
	return s.blocks.DeleteBlock(ctx, blockID)
}

func (s *timelineService) List(ctx context.Context) ([]*repository.Block, error) {
	return s.blocks.ListBlocks(ctx)
}

// MoveStage drags a stage left or right by whole cells, through a full
// gesture so grid snapping, window clamps and duration preservation all
// apply.
func (s *timelineService) MoveStage(ctx context.Context, blockID, stageID string, byUnits int) (*domain.Stage, error) {
	t, err := s.Load(ctx, blockID)
	if err != nil {
		return nil, err
	}
	_, stage := t.FindStage(stageID)
	if stage == nil {
		return nil, fmt.Errorf("stage %q not found", stageID)
	}

	eng := gesture.NewEngine(t)
	grab := eng.Mapper().DateToPosition(stage.Start)
	if err := eng.BeginDrag(t, gesture.Target{Kind: gesture.TargetStage, ID: stageID}, grab); err != nil {
		return nil, err
	}
	eng.Move(grab + float64(byUnits)*eng.Mapper().CellWidth)
	if err := eng.End(t); err != nil {
		return nil, err
	}

	if err := s.Save(ctx, blockID, t); err != nil {
		return nil, err
	}
	return stage, nil
}

// ResizeStage runs a right-edge resize gesture to the requested duration.
func (s *timelineService) ResizeStage(ctx context.Context, blockID, stageID string, toDuration int) (*domain.Stage, error) {
	if toDuration < 1 {
		return nil, fmt.Errorf("duration must be at least 1 day, got %d", toDuration)
	}
	t, err := s.Load(ctx, blockID)
	if err != nil {
		return nil, err
	}
	_, stage := t.FindStage(stageID)
	if stage == nil {
		return nil, fmt.Errorf("stage %q not found", stageID)
	}

	eng := gesture.NewEngine(t)
	if err := eng.BeginResize(t, stageID); err != nil {
		return nil, err
	}
	left := eng.Mapper().DateToPosition(stage.Start)
	eng.Move(left + geometry.WidthFromDuration(toDuration, eng.Mapper().CellWidth))
	if err := eng.End(t); err != nil {
		return nil, err
	}

	if err := s.Save(ctx, blockID, t); err != nil {
		return nil, err
	}
	return stage, nil
}

// MoveMilestone drags a milestone by whole cells, clamped to the window.
func (s *timelineService) MoveMilestone(ctx context.Context, blockID, milestoneID string, byUnits int) (*domain.Milestone, error) {
	t, err := s.Load(ctx, blockID)
	if err != nil {
		return nil, err
	}
	_, m := t.FindMilestone(milestoneID)
	if m == nil {
		return nil, fmt.Errorf("milestone %q not found", milestoneID)
	}

	eng := gesture.NewEngine(t)
	grab := eng.Mapper().DateToPosition(m.Date)
	if err := eng.BeginDrag(t, gesture.Target{Kind: gesture.TargetMilestone, ID: milestoneID}, grab); err != nil {
		return nil, err
	}
	eng.Move(grab + float64(byUnits)*eng.Mapper().CellWidth)
	if err := eng.End(t); err != nil {
		return nil, err
	}

	if err := s.Save(ctx, blockID, t); err != nil {
		return nil, err
	}
	return m, nil
}
