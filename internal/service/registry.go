package service

import (
	"fmt"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
)

// EditorRegistry maps ephemeral render-slot identifiers to persistent
// block ids and the model last rendered into each slot. It replaces the
// ambient slot->uuid globals of the host-binding layer with one owned
// object with an explicit lifecycle.
type EditorRegistry struct {
	bindings map[string]*EditorBinding
}

// NewEditorRegistry returns an empty registry.
func NewEditorRegistry() *EditorRegistry {
	return &EditorRegistry{bindings: map[string]*EditorBinding{}}
}

// Bind associates a slot with a block and its current model, replacing
// any previous binding for the slot.
func (r *EditorRegistry) Bind(slotID, blockID string, model *domain.Timeline) {
	now := time.Now()
	r.bindings[slotID] = &EditorBinding{
		BlockID:   blockID,
		Model:     model,
		BoundAt:   now,
		UpdatedAt: now,
	}
}

// Lookup returns the binding for a slot.
func (r *EditorRegistry) Lookup(slotID string) (*EditorBinding, bool) {
	b, ok := r.bindings[slotID]
	return b, ok
}

// Refresh replaces the model held for a slot after a save.
func (r *EditorRegistry) Refresh(slotID string, model *domain.Timeline) error {
	b, ok := r.bindings[slotID]
	if !ok {
		return fmt.Errorf("slot %q is not bound", slotID)
	}
	b.Model = model
	b.UpdatedAt = time.Now()
	return nil
}

// Release drops one slot's binding.
func (r *EditorRegistry) Release(slotID string) {
	delete(r.bindings, slotID)
}

// Reset drops every binding; used at teardown.
func (r *EditorRegistry) Reset() {
	r.bindings = map[string]*EditorBinding{}
}

// Len returns the number of live bindings.
func (r *EditorRegistry) Len() int {
	return len(r.bindings)
}
