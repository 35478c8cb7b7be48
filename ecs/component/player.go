package component

type Player struct {
	MoveSpeed          float64
	InvulnerableFrames int
}

var PlayerComponent = NewComponent[Player]()
