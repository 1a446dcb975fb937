package game

// World geometry, in virtual pixels. The playfield is a fixed 512x288 camera
// with the origin at its center and y growing upward; rendering projects it
// onto whatever terminal size is available.
const (
	VirtualWidth  = 512.0
	VirtualHeight = 288.0

	GroundWidth  = 1100.0
	GroundHeight = 12.0

	// Looping backgrounds respawn at LoopOffset and scroll through one
	// LoopPeriod before wrapping.
	LoopPeriod = 413.0
	LoopOffset = 290.0

	BirdWidth  = 38.0
	BirdHeight = 24.0

	PipeWidth  = 70.0
	PipeHeight = 288.0
)

// Z-order layers, back to front.
const (
	LayerBackdrop = 0
	LayerGround   = 2
	LayerPipe     = 3
	LayerBird     = 4
)

// Fixed world positions.
const (
	// GroundY places the ground strip flush with the bottom edge.
	GroundY = (VirtualHeight - GroundHeight) / -2

	// Text rows: score at the top middle, overlay lines around the center.
	ScoreTextY    = 94.0
	TitleTextY    = 40.0
	SubtitleTextY = 8.0
)

// Overlay copy.
const (
	TitleText    = "F L I P P Y"
	SubtitleText = "press space to fly"
)
