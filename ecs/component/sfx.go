package component

// Sfx queues named sound effects for the audio system. Gameplay systems only
// append names; the audio system plays and clears them.
type Sfx struct {
	Play []string
}

func (s *Sfx) Queue(name string) {
	if s == nil || name == "" {
		return
	}
	for _, n := range s.Play {
		if n == name {
			return
		}
	}
	s.Play = append(s.Play, name)
}

var SfxComponent = NewComponent[Sfx]()
