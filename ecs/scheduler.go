package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Stage groups systems that run together. Stages run in ascending order.
type Stage int

const (
	StagePreUpdate Stage = iota
	StageUpdate
	StagePhysics
	StagePostPhysics
	StagePostUpdate

	stageCount
)

func (s Stage) String() string {
	switch s {
	case StagePreUpdate:
		return "pre_update"
	case StageUpdate:
		return "update"
	case StagePhysics:
		return "physics"
	case StagePostPhysics:
		return "post_physics"
	case StagePostUpdate:
		return "post_update"
	default:
		return "unknown"
	}
}

type Scheduler struct {
	stages [stageCount][]System
}

// NewScheduler returns a scheduler with systems placed in StageUpdate.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	s.AddToStage(StageUpdate, system)
}

func (s *Scheduler) AddToStage(stage Stage, system System) {
	if s == nil || system == nil || stage < 0 || stage >= stageCount {
		return
	}
	s.stages[stage] = append(s.stages[stage], system)
}

func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, systems := range s.stages {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

// Systems returns every scheduled system in run order.
func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	var systems []System
	for _, stage := range s.stages {
		systems = append(systems, stage...)
	}
	return systems
}
