package component

import (
	"fmt"
	"strings"
)

// GameLayer is one collision category bit.
type GameLayer uint32

const (
	LayerPlayer GameLayer = 1 << iota
	LayerWeapon
	LayerConvertingWeapon
	LayerAlly
	LayerEnemy
	LayerGem
	LayerStuff
)

var layerNames = map[string]GameLayer{
	"player":            LayerPlayer,
	"weapon":            LayerWeapon,
	"converting_weapon": LayerConvertingWeapon,
	"ally":              LayerAlly,
	"enemy":             LayerEnemy,
	"gem":               LayerGem,
	"stuff":             LayerStuff,
}

// ParseGameLayer resolves a layer name used in prefab files.
func ParseGameLayer(name string) (GameLayer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown collision layer %q", name)
	}
	return l, nil
}

// CollisionLayer declares which groups an entity belongs to and which groups
// it is allowed to overlap. A pair only collides when each side's mask
// contains one of the other side's groups.
type CollisionLayer struct {
	Group GameLayer
	Mask  GameLayer
}

// NewCollisionLayer builds a layer with a single group and the given masks.
func NewCollisionLayer(group GameLayer, masks ...GameLayer) CollisionLayer {
	l := CollisionLayer{Group: group}
	for _, m := range masks {
		l.Mask |= m
	}
	return l
}

func (l CollisionLayer) ContainsGroup(g GameLayer) bool {
	return l.Group&g != 0
}

func (l CollisionLayer) ContainsMask(g GameLayer) bool {
	return l.Mask&g != 0
}

// Interacts reports whether l and o would be allowed to overlap.
func (l CollisionLayer) Interacts(o CollisionLayer) bool {
	return l.Group&o.Mask != 0 && o.Group&l.Mask != 0
}

var (
	PlayerLayers           = NewCollisionLayer(LayerPlayer, LayerEnemy, LayerGem, LayerStuff)
	EnemyLayers            = NewCollisionLayer(LayerEnemy, LayerPlayer, LayerEnemy, LayerAlly, LayerWeapon, LayerConvertingWeapon)
	AllyLayers             = NewCollisionLayer(LayerAlly, LayerEnemy, LayerConvertingWeapon)
	WeaponLayers           = NewCollisionLayer(LayerWeapon, LayerEnemy)
	ConvertingWeaponLayers = NewCollisionLayer(LayerConvertingWeapon, LayerEnemy, LayerAlly)
	GemLayers              = NewCollisionLayer(LayerGem, LayerPlayer)
)

var CollisionLayerComponent = NewComponent[CollisionLayer]()
