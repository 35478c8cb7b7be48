package component

// Gem is a collectible dropped by defeated enemies. It bobs around BaseY
// until the player touches it.
type Gem struct {
	Value        int
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool
}

var GemComponent = NewComponent[Gem]()

// GemDrop makes an entity leave gems behind when it is killed.
type GemDrop struct {
	Count int
	Value int
}

var GemDropComponent = NewComponent[GemDrop]()
