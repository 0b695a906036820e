package hooks

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Block is a parsed block instance: its name, decoded attributes and the
// inner HTML saved with it.
type Block struct {
	Name      string         `json:"name"`
	Attrs     map[string]any `json:"attrs,omitempty"`
	InnerHTML string         `json:"innerHTML,omitempty"`
}

// BlockRenderer produces the markup of a dynamic block.
type BlockRenderer func(ctx context.Context, attrs map[string]any, inner string) string

// RenderFilter rewrites the rendered markup of a block.
type RenderFilter func(ctx context.Context, content string, block Block) string

// Registry stores block renderers and render filters. It is safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu      sync.RWMutex
	blocks  map[string]BlockRenderer
	filters map[string][]RenderFilter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blocks:  make(map[string]BlockRenderer),
		filters: make(map[string][]RenderFilter),
	}
}

// RegisterBlock registers the server-side renderer for a block name.
func (r *Registry) RegisterBlock(name string, fn BlockRenderer) error {
	if name == "" || fn == nil {
		return ErrInvalidBlock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blocks[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBlock, name)
	}
	r.blocks[name] = fn
	return nil
}

// AddRenderFilter appends a filter for the named block. Filters run in
// registration order. Nil filters are ignored.
func (r *Registry) AddRenderFilter(name string, fn RenderFilter) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = append(r.filters[name], fn)
}

// HasBlock reports whether a renderer is registered for name.
func (r *Registry) HasBlock(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.blocks[name]
	return ok
}

// Render renders a single block instance.
func (r *Registry) Render(ctx context.Context, b Block) string {
	r.mu.RLock()
	renderer := r.blocks[b.Name]
	filters := r.filters[b.Name]
	r.mu.RUnlock()

	out := b.InnerHTML
	if renderer != nil {
		out = renderer(ctx, b.Attrs, b.InnerHTML)
	}
	for _, f := range filters {
		out = f(ctx, out, b)
	}
	return out
}

// RenderAll renders blocks in order and concatenates the output. Each block
// is rendered independently.
func (r *Registry) RenderAll(ctx context.Context, blocks []Block) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(r.Render(ctx, block))
	}
	return b.String()
}
