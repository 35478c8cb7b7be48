package component

import (
	"fmt"
	"strings"
)

type MovementKind int

const (
	MovementNone MovementKind = iota
	MovementTracking
	MovementSlowWalking
	MovementRunningGroup
	MovementFollowNearestPlayer
	MovementSeekNearestEnemy
)

func (k MovementKind) String() string {
	switch k {
	case MovementTracking:
		return "tracking"
	case MovementSlowWalking:
		return "slow_walking"
	case MovementRunningGroup:
		return "running_group"
	case MovementFollowNearestPlayer:
		return "follow_nearest_player"
	case MovementSeekNearestEnemy:
		return "seek_nearest_enemy"
	default:
		return "none"
	}
}

func ParseMovementKind(s string) (MovementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MovementNone, nil
	case "tracking":
		return MovementTracking, nil
	case "slow_walking":
		return MovementSlowWalking, nil
	case "running_group", "running":
		return MovementRunningGroup, nil
	case "follow_nearest_player":
		return MovementFollowNearestPlayer, nil
	case "seek_nearest_enemy":
		return MovementSeekNearestEnemy, nil
	}
	return MovementNone, fmt.Errorf("unknown movement %q", s)
}

// Movement selects the steering behaviour for an entity. DirX/DirY is only
// used by running groups, which keep heading until they overshoot.
type Movement struct {
	Kind MovementKind
	DirX float64
	DirY float64
}

var MovementComponent = NewComponent[Movement]()
