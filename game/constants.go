package game

const (
	// Gravity is the downward (+z) acceleration added every integration step.
	Gravity = float32(9.8)
	// AirDrag is added to a rising body's vertical force while it is airborne.
	AirDrag = float32(0.5)
	// TimeScale divides the tick delta (milliseconds) before integration.
	TimeScale = float32(100)

	TileSize = float32(16)

	WarpSettleOffset = float32(20)
	WarpSettleSteps  = 40

	// SoundTTL is the default dedup window of an emitted sound, in milliseconds.
	SoundTTL    = float32(300)
	TextLogSize = 64

	IndexCellSize = 16

	// GroundProbe is how far below a body the grounded test looks.
	GroundProbe = float32(1)
	// UseReach inflates a body's box on every axis when looking for usable entities.
	UseReach = float32(2)
)
