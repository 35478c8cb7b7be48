package component

// Formation spawns a Rows x Cols grid of enemies marching in the classic
// invader pattern. It fires once after DelayFrames.
type Formation struct {
	Kind        EnemyKind
	Rows        int
	Cols        int
	Spacing     float64
	Width       float64
	Height      float64
	Steps       int
	DelayFrames int
	Spawned     bool
}

var FormationComponent = NewComponent[Formation]()
