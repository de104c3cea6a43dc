package constants

// Camera defaults, matching the Box2D testbed camera
const (
	// CameraCenterX and CameraCenterY are the world point at the middle of the view
	CameraCenterX = 0.0
	CameraCenterY = 20.0

	// CameraExtent is the vertical half-extent of the view in meters at zoom 1
	CameraExtent = 25.0

	// CameraZoom scales both extents
	CameraZoom = 1.0
)

// Terminal cell geometry in virtual pixels, a typical 8x16 font cell
const (
	CellPixelWidth  = 8
	CellPixelHeight = 16
)

// Overlay Layout
const (
	// OverlayPadding is the blank column between the panel border and its text
	OverlayPadding = 1

	// OverlayMinWidth keeps the panel from jittering as numbers change width
	OverlayMinWidth = 28
)
