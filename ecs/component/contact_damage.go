package component

// ContactDamage is applied to whatever this entity hurts on touch. Zero
// falls back to one point.
type ContactDamage struct {
	Amount int
}

func (c ContactDamage) Value() int {
	if c.Amount <= 0 {
		return 1
	}
	return c.Amount
}

var ContactDamageComponent = NewComponent[ContactDamage]()
