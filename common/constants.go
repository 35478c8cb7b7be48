package common

const (
	BaseWidth  = 960
	BaseHeight = 540

	// TPS is the fixed simulation rate. Every frame counter assumes it.
	TPS = 60

	// PixelsPerUnit converts world units to screen pixels at zoom 1.
	PixelsPerUnit = 48.0

	// MapSize is the side of the square play field in world units.
	MapSize = 41
)

// Seconds converts a duration in seconds to a whole number of ticks.
func Seconds(s float64) int {
	return int(s*TPS + 0.5)
}
