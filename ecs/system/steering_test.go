package system

import (
	"math"
	"testing"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

var testTuning = prefabs.SteeringTuning{
	TrackingAccel:      0.1,
	TrackingMaxDist:    5,
	SlowWalkingAccel:   0.03,
	SlowWalkingMaxDist: 2,
	RunningAccel:       0.5,
	RunningReaimDist:   20,
	FollowAccel:        7,
}

func steered(t *testing.T, w *ecs.World, x, y float64, m component.Movement) ecs.Entity {
	t.Helper()
	e := newEnemy(t, w, x, y, 1)
	mustAdd(t, w, e, component.MovementComponent.Kind(), &m)
	return e
}

func TestSteeringApproach(t *testing.T) {
	cases := []struct {
		name   string
		kind   component.MovementKind
		x, y   float64
		wantVX float64
		wantVY float64
	}{
		// velocity += dir * min(dist, max) * accel
		{"tracking_near", component.MovementTracking, -3, 0, 3 * 0.1, 0},
		{"tracking_far_clamped", component.MovementTracking, 0, 50, 0, -5 * 0.1},
		{"slow_walking_near", component.MovementSlowWalking, 1, 0, -1 * 0.03, 0},
		{"slow_walking_far_clamped", component.MovementSlowWalking, 30, 40, -0.6 * 2 * 0.03, -0.8 * 2 * 0.03},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newPlayer(t, w, 5)
			e := steered(t, w, c.x, c.y, component.Movement{Kind: c.kind})

			NewSteeringSystem(testTuning).Update(w)

			v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if !near(v.X, c.wantVX) || !near(v.Y, c.wantVY) {
				t.Fatalf("expected velocity (%v, %v), got (%v, %v)", c.wantVX, c.wantVY, v.X, v.Y)
			}
		})
	}
}

func TestSteeringWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := steered(t, w, 3, 3, component.Movement{Kind: component.MovementTracking})

	NewSteeringSystem(testTuning).Update(w)

	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("nothing to chase, velocity should stay zero, got (%v, %v)", v.X, v.Y)
	}
}

func TestRunningGroupReaim(t *testing.T) {
	cases := []struct {
		name           string
		x, y           float64
		dirX, dirY     float64
		wantDX, wantDY float64
	}{
		{"keeps_heading_when_close", 5, 0, 0, 1, 0, 1},
		{"reaims_when_far", 30, 0, 0, 1, -1, 0},
		{"aims_when_unset", 0, 4, 0, 0, 0, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newPlayer(t, w, 5)
			e := steered(t, w, c.x, c.y, component.Movement{Kind: component.MovementRunningGroup, DirX: c.dirX, DirY: c.dirY})

			NewSteeringSystem(testTuning).Update(w)

			m, _ := ecs.Get(w, e, component.MovementComponent.Kind())
			if !near(m.DirX, c.wantDX) || !near(m.DirY, c.wantDY) {
				t.Fatalf("expected heading (%v, %v), got (%v, %v)", c.wantDX, c.wantDY, m.DirX, m.DirY)
			}
			v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if !near(v.X, c.wantDX*0.5) || !near(v.Y, c.wantDY*0.5) {
				t.Fatalf("expected velocity along heading, got (%v, %v)", v.X, v.Y)
			}
		})
	}
}

func TestFollowNearestPlayer(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(t, w, 5)
	far := newPlayer(t, w, 5)
	ft, _ := ecs.Get(w, far, component.TransformComponent.Kind())
	ft.X = 100
	e := steered(t, w, 90, 0, component.Movement{Kind: component.MovementFollowNearestPlayer})

	NewSteeringSystem(testTuning).Update(w)

	acc, ok := ecs.Get(w, e, component.AccelerationComponent.Kind())
	if !ok {
		t.Fatalf("follow steering should add an acceleration")
	}
	if !near(acc.X, 7) || !near(acc.Y, 0) {
		t.Fatalf("expected acceleration towards the nearest player, got (%v, %v)", acc.X, acc.Y)
	}
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !near(v.X, 7.0/common.TPS) {
		t.Fatalf("expected acceleration integrated once, got %v", v.X)
	}
}

func TestSeekNearestEnemy(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(t, w, 5)
	newEnemy(t, w, 10, 0, 1)
	newEnemy(t, w, -2, 0, 1)
	ally := newEntity(t, w, 0, 0)
	mustAdd(t, w, ally, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, ally, component.MovementComponent.Kind(), &component.Movement{Kind: component.MovementSeekNearestEnemy})

	NewSteeringSystem(testTuning).Update(w)

	v, _ := ecs.Get(w, ally, component.VelocityComponent.Kind())
	if !near(v.X, -2*0.1) || !near(v.Y, 0) {
		t.Fatalf("expected to seek the enemy at -2, got (%v, %v)", v.X, v.Y)
	}
}

func TestMaxSpeedClampsEachAxis(t *testing.T) {
	cases := []struct {
		name           string
		movement       component.MovementKind
		vx, vy, limit  float64
		wantVX, wantVY float64
	}{
		{"under", component.MovementFollowNearestPlayer, 1, -1, 2, 1, -1},
		{"over_x", component.MovementFollowNearestPlayer, 5, 1, 2, 2, 1},
		{"over_both", component.MovementFollowNearestPlayer, -5, 9, 2, -2, 2},
		{"zero_limit_ignored", component.MovementFollowNearestPlayer, 5, 5, 0, 5, 5},
		{"seek_not_clamped", component.MovementSeekNearestEnemy, 5, -5, 2, 5, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newEntity(t, w, 0, 0)
			mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{X: c.vx, Y: c.vy})
			mustAdd(t, w, e, component.MaxSpeedComponent.Kind(), &component.MaxSpeed{Value: c.limit})
			mustAdd(t, w, e, component.MovementComponent.Kind(), &component.Movement{Kind: c.movement})

			NewSteeringSystem(testTuning).Update(w)

			v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if v.X != c.wantVX || v.Y != c.wantVY {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantVX, c.wantVY, v.X, v.Y)
			}
		})
	}
}

func TestFacing(t *testing.T) {
	cases := []struct {
		name         string
		x            float64
		baseFlip     bool
		baseRotation float64
		wantFlip     bool
		wantRotation float64
	}{
		// player is at the origin; a target straight left or right gives angle 0 or pi
		{"left_of_target", -3, false, 0, false, 0},
		{"right_of_target", 3, false, 0, true, 2 * math.Pi},
		{"right_of_target_base_flip", 3, true, 0.25, false, 2*math.Pi - 0.25},
		{"left_of_target_base_rotation", -3, false, 0.25, false, 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newPlayer(t, w, 5)
			e := steered(t, w, c.x, 0, component.Movement{Kind: component.MovementTracking})
			mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "blue_fish", BaseFlipX: c.baseFlip, BaseRotation: c.baseRotation})

			NewSteeringSystem(testTuning).Update(w)

			s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if s.FlipX != c.wantFlip {
				t.Fatalf("expected flip=%v, got %v", c.wantFlip, s.FlipX)
			}
			if !near(tr.Rotation, c.wantRotation) {
				t.Fatalf("expected rotation %v, got %v", c.wantRotation, tr.Rotation)
			}
		})
	}
}
