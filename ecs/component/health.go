package component

type Health struct {
	Current int
	Max     int
}

func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount, clamping at zero, and reports whether this call
// took the entity from alive to dead.
func (h *Health) Damage(amount int) bool {
	if h.Current <= 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

func (h Health) Dead() bool {
	return h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
