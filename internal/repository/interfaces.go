package repository

import (
	"context"
	"errors"
	"time"
)

// ErrBlockNotFound is returned when a block id does not exist in storage.
var ErrBlockNotFound = errors.New("block not found")

// Block is one host-document block: an id and its raw text content. The
// timeline transport string is embedded in the content as a macro token.
type Block struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockRepo is the block storage collaborator. Storage failures are
// surfaced to the caller; the core does not retry and has no fallback.
type BlockRepo interface {
	GetBlock(ctx context.Context, id string) (*Block, error)
	UpdateBlock(ctx context.Context, id, content string) error
	CreateBlock(ctx context.Context, id, content string) error
	DeleteBlock(ctx context.Context, id string) error
	ListBlocks(ctx context.Context) ([]*Block, error)
}
