package view

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Renderer draws a view on some display surface.
type Renderer interface {
	Render(ctx context.Context, v View) error
}

// JSONRenderer writes each view as an indented JSON document tagged with
// its page kind.
type JSONRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

type envelope struct {
	Kind PageKind `json:"kind"`
	View View     `json:"view"`
}

func (r *JSONRenderer) Render(_ context.Context, v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope{Kind: v.Kind(), View: v}); err != nil {
		return fmt.Errorf("failed to render %s view: %w", v.Kind(), err)
	}
	return nil
}

// RecordingRenderer keeps every rendered view; useful for tests and for
// embedding the engine behind another presentation layer.
type RecordingRenderer struct {
	mu    sync.Mutex
	views []View
}

func (r *RecordingRenderer) Render(_ context.Context, v View) error {
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()
	return nil
}

// Views returns a copy of the rendered views in order.
func (r *RecordingRenderer) Views() []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]View(nil), r.views...)
}

// Last returns the most recent view, or nil.
func (r *RecordingRenderer) Last() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return nil
	}
	return r.views[len(r.views)-1]
}
