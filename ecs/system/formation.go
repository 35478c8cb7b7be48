package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
)

// formationLift is how far above the player a formation's top row starts.
const formationLift = 12.0

// FormationSystem spawns invader grids once their delay runs out. Each member
// carries its own march tween.
type FormationSystem struct {
	Spawn SpawnFunc
}

func NewFormationSystem() *FormationSystem {
	return &FormationSystem{Spawn: entity.NewEnemy}
}

func (s *FormationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.FormationComponent.Kind(), func(e ecs.Entity, f *component.Formation) {
		if f.Spawned {
			return
		}
		if f.DelayFrames > 0 {
			f.DelayFrames--
			return
		}
		p, ok := w.First(component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		pt, ok := ecs.Get(w, p, component.TransformComponent.Kind())
		if !ok {
			return
		}

		spawn := s.Spawn
		if spawn == nil {
			spawn = entity.NewEnemy
		}

		// center the march on the player: start half a slide to the left
		left := pt.X - f.Width/2 - float64(f.Cols-1)*f.Spacing/2
		top := pt.Y - formationLift - float64(f.Rows-1)*f.Spacing

		steps := InvaderSteps(f.Steps, f.Width, f.Height)
		spawned := 0
		for row := 0; row < f.Rows; row++ {
			for col := 0; col < f.Cols; col++ {
				x := left + float64(col)*f.Spacing
				y := top + float64(row)*f.Spacing
				enemy, err := spawn(w, f.Kind, x, y, component.Movement{})
				if err != nil {
					logf("formation", "spawn %s: %v", f.Kind, err)
					continue
				}
				tween := &component.Tween{Steps: append([]component.TweenStep(nil), steps...)}
				if err := ecs.Add(w, enemy, component.TweenComponent.Kind(), tween); err != nil {
					logf("formation", "tween %v: %v", enemy, err)
				}
				spawned++
			}
		}
		f.Spawned = true
		logf("formation", "%dx%d %s formation: %d spawned", f.Rows, f.Cols, f.Kind, spawned)
	})
}
