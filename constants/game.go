package constants

import "time"

// Frame Loop Timing
const (
	// FrameRate is the fixed simulation and render rate
	FrameRate = 60

	// FrameTarget is the wall-clock interval the pacer aims for (1/60 s)
	FrameTarget = time.Second / FrameRate

	// PacerSmoothing is the weight kept from the previous correction in the low-pass filter
	PacerSmoothing = 0.9

	// EventQueueSize is the capacity of the terminal event channel between poller and loop
	EventQueueSize = 256
)

// Physics Stepping
const (
	// TimeStep is the fixed physics interval in seconds, one step per frame
	TimeStep = 1.0 / FrameRate

	// VelocityIterations and PositionIterations are the solver passes per step
	VelocityIterations = 8
	PositionIterations = 3
)
