package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":            addPlayerTag,
	"camera_tag":            addCameraTag,
	"enemy_tag":             addEnemyTag,
	"ally_tag":              addAllyTag,
	"gem_tag":               addGemTag,
	"weapon_tag":            addWeaponTag,
	"converting_weapon_tag": addConvertingWeaponTag,
	"player":                addPlayer,
	"input":                 addInput,
	"enemy":                 addEnemy,
	"transform":             addTransform,
	"velocity":              addVelocity,
	"max_speed":             addMaxSpeed,
	"movement":              addMovement,
	"sprite":                addSprite,
	"animation":             addAnimation,
	"render_layer":          addRenderLayer,
	"camera":                addCamera,
	"collision_layer":       addCollisionLayer,
	"repulsion_layer":       addRepulsionLayer,
	"physics_body":          addPhysicsBody,
	"health":                addHealth,
	"hit_tint":              addHitTint,
	"contact_damage":        addContactDamage,
	"gem":                   addGem,
	"gem_drop":              addGemDrop,
	"ttl":                   addTTL,
	"run_stats":             addRunStats,
	"sfx":                   addSfx,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"enemy_tag",
	"ally_tag",
	"gem_tag",
	"weapon_tag",
	"converting_weapon_tag",
	"player",
	"input",
	"enemy",
	"transform",
	"velocity",
	"max_speed",
	"movement",
	"sprite",
	"animation",
	"render_layer",
	"camera",
	"collision_layer",
	"repulsion_layer",
	"physics_body",
	"health",
	"hit_tint",
	"contact_damage",
	"gem",
	"gem_drop",
	"ttl",
	"run_stats",
	"sfx",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec is BuildEntity for a spec that is already decoded.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addAllyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AllyTagComponent.Kind(), &component.AllyTag{})
}

func addGemTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GemTagComponent.Kind(), &component.GemTag{})
}

func addWeaponTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WeaponTagComponent.Kind(), &component.WeaponTag{})
}

func addConvertingWeaponTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ConvertingWeaponTagComponent.Kind(), &component.ConvertingWeaponTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed == 0 {
		spec.MoveSpeed = 3
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:          spec.MoveSpeed,
		InvulnerableFrames: spec.InvulnerableFrames,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type enemySpec = prefabs.EnemyComponentSpec

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[enemySpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	kind := component.EnemyKind(spec.Kind)
	if !kind.Valid() {
		return fmt.Errorf("unknown enemy kind %q", spec.Kind)
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Kind: kind})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

type maxSpeedSpec = prefabs.MaxSpeedComponentSpec

func addMaxSpeed(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[maxSpeedSpec](raw)
	if err != nil {
		return fmt.Errorf("decode max speed spec: %w", err)
	}
	if spec.Value <= 0 {
		return fmt.Errorf("max speed must be > 0, got %v", spec.Value)
	}
	return ecs.Add(w, e, component.MaxSpeedComponent.Kind(), &component.MaxSpeed{Value: spec.Value})
}

type movementSpec = prefabs.MovementComponentSpec

func addMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[movementSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movement spec: %w", err)
	}
	kind, err := component.ParseMovementKind(spec.Kind)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Kind: kind})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Key == "" {
		return fmt.Errorf("sprite key is required")
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	if spec.Height <= 0 {
		spec.Height = spec.Width
	}

	sprite := component.Sprite{
		Key:          spec.Key,
		Width:        spec.Width,
		Height:       spec.Height,
		OriginX:      spec.OriginX,
		OriginY:      spec.OriginY,
		BaseRotation: spec.BaseRotation,
		BaseFlipX:    spec.BaseFlipX,
		FlipX:        spec.BaseFlipX,
		Rotation:     spec.BaseRotation,
	}
	if spec.Tint != nil {
		sprite.Tint = spec.Tint.Color
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if len(spec.Defs) == 0 {
		return fmt.Errorf("animation needs at least one def")
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 {
			def.FrameCount = 1
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation current %q has no def", spec.Current)
	}

	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	var layer component.CollisionLayer
	for _, name := range spec.Groups {
		l, err := component.ParseGameLayer(name)
		if err != nil {
			return err
		}
		layer.Group |= l
	}
	for _, name := range spec.Masks {
		l, err := component.ParseGameLayer(name)
		if err != nil {
			return err
		}
		layer.Mask |= l
	}
	if layer.Group == 0 {
		return fmt.Errorf("collision layer needs at least one group")
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layer)
}

type repulsionLayerSpec = prefabs.RepulsionLayerComponentSpec

func addRepulsionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[repulsionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode repulsion layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = 1
	}
	if mask == 0 {
		mask = ^uint32(0)
	}
	return ecs.Add(w, e, component.RepulsionLayerComponent.Kind(), &component.RepulsionLayer{Category: cat, Mask: mask, Radius: spec.Radius})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		spec.Radius = 0.5
	}
	if spec.Mass <= 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Damping:    spec.Damping,
		Sensor:     spec.Sensor,
		Driven:     spec.Driven,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 1
	}
	h := component.NewHealth(spec.Max)
	return ecs.Add(w, e, component.HealthComponent.Kind(), &h)
}

func addHitTint(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HitTintComponent.Kind(), &component.HitTint{})
}

type contactDamageSpec = prefabs.ContactDamageComponentSpec

func addContactDamage(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[contactDamageSpec](raw)
	if err != nil {
		return fmt.Errorf("decode contact damage spec: %w", err)
	}
	return ecs.Add(w, e, component.ContactDamageComponent.Kind(), &component.ContactDamage{Amount: spec.Amount})
}

type gemSpec = prefabs.GemComponentSpec

func addGem(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gemSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gem spec: %w", err)
	}
	if spec.Value <= 0 {
		spec.Value = 1
	}
	return ecs.Add(w, e, component.GemComponent.Kind(), &component.Gem{
		Value:        spec.Value,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
	})
}

type gemDropSpec = prefabs.GemDropComponentSpec

func addGemDrop(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gemDropSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gem drop spec: %w", err)
	}
	if spec.Count <= 0 {
		spec.Count = 1
	}
	if spec.Value <= 0 {
		spec.Value = 1
	}
	return ecs.Add(w, e, component.GemDropComponent.Kind(), &component.GemDrop{Count: spec.Count, Value: spec.Value})
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.Frames})
}

func addRunStats(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.RunStatsComponent.Kind(), &component.RunStats{})
}

func addSfx(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SfxComponent.Kind(), &component.Sfx{})
}
