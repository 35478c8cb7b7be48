package component

// EnemyWave periodically spawns groups of enemies around the player.
type EnemyWave struct {
	Kind     EnemyKind
	Movement MovementKind

	IntervalFrames int
	TimerFrames    int

	Size  int
	Count int
	// Repeat caps the number of firings when > 0.
	Repeat int
	Fired  int

	// Script names a wave script that may rescale Size and Count per firing.
	Script string
}

var EnemyWaveComponent = NewComponent[EnemyWave]()
