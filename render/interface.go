package render

import "github.com/gdamore/tcell/v2"

// Canvas is the subset of tcell.Screen the renderer draws through
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Layer is one stage of the frame, drawn in priority order
type Layer interface {
	Render(ctx RenderContext, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
