package service

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/codec"
	"github.com/Chilos/project-gantt/internal/importer"
	"github.com/Chilos/project-gantt/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	blocks repository.BlockRepo
}

// NewImportService wires the import pipeline over block storage.
func NewImportService(blocks repository.BlockRepo) ImportService {
	return &importService{blocks: blocks}
}

// ImportTimeline loads, validates and converts a definition file, then
// persists the result as a new block. The timeline is sanitized before
// encoding so out-of-window entities never reach storage.
func (s *importService) ImportTimeline(ctx context.Context, filePath, blockID string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid timeline definition: %d error(s), first: %w", len(errs), errs[0])
	}

	t, err := importer.Convert(schema)
	if err != nil {
		return nil, err
	}
	t.Sanitize()

	payload, err := codec.Encode(t)
	if err != nil {
		return nil, fmt.Errorf("encoding timeline: %w", err)
	}
	if blockID == "" {
		blockID = uuid.New().String()
	}
	if err := s.blocks.CreateBlock(ctx, blockID, repository.WrapMacro(payload)); err != nil {
		return nil, err
	}

	result := &ImportResult{BlockID: blockID, ProjectCount: len(t.Projects), SprintCount: len(t.Sprints)}
	for _, p := range t.Projects {
		result.StageCount += len(p.Stages)
		result.MilestoneCount += len(p.Milestones)
	}
	return result, nil
}
