package component

// RunStats accumulates the current run's score.
type RunStats struct {
	Frames int
	Gems   int
	Kills  int
	Charms int
	Waves  int
	// EnemyContacts counts enemy on enemy overlaps, shown in debug mode.
	EnemyContacts int
	Over          bool
}

var RunStatsComponent = NewComponent[RunStats]()
