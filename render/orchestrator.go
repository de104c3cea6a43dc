package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	canvas   Canvas
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an orchestrator drawing to canvas
func NewRenderOrchestrator(canvas Canvas) *RenderOrchestrator {
	return &RenderOrchestrator{
		canvas: canvas,
		layers: make([]layerEntry, 0, 4),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// BeginFrame clears the previous frame
func (o *RenderOrchestrator) BeginFrame() {
	o.canvas.Clear()
}

// EndFrame presents the frame
func (o *RenderOrchestrator) EndFrame() {
	o.canvas.Show()
}

// RenderFrame executes the render pipeline: clear, render all layers, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.BeginFrame()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.canvas)
	}

	o.EndFrame()
}
