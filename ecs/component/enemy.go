package component

type EnemyKind string

const (
	EnemyBlueFish     EnemyKind = "blue_fish"
	EnemyBigRedFish   EnemyKind = "big_red_fish"
	EnemyPumpkin      EnemyKind = "pumpkin"
	EnemySkeletonHead EnemyKind = "skeleton_head"
	EnemyKnife        EnemyKind = "knife"
)

var EnemyKinds = []EnemyKind{EnemyBlueFish, EnemyBigRedFish, EnemyPumpkin, EnemySkeletonHead, EnemyKnife}

func (k EnemyKind) Valid() bool {
	for _, known := range EnemyKinds {
		if k == known {
			return true
		}
	}
	return false
}

type Enemy struct {
	Kind EnemyKind
}

var EnemyComponent = NewComponent[Enemy]()
