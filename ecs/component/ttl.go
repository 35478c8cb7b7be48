package component

// TTL is a simple frame-based time-to-live component. The TTL system
// destroys the entity once Frames reaches zero.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
