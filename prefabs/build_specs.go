package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Key          string     `yaml:"key"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	OriginX      float64    `yaml:"origin_x"`
	OriginY      float64    `yaml:"origin_y"`
	Tint         *YAMLColor `yaml:"tint"`
	BaseRotation float64    `yaml:"base_rotation"`
	BaseFlipX    bool       `yaml:"base_flip_x"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing *bool                                `yaml:"playing"`
}

type AnimationDefComponentSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type CollisionLayerComponentSpec struct {
	Groups []string `yaml:"groups"`
	Masks  []string `yaml:"masks"`
}

type RepulsionLayerComponentSpec struct {
	Category uint32  `yaml:"category"`
	Mask     uint32  `yaml:"mask"`
	Radius   float64 `yaml:"radius"`
}

type PhysicsBodyComponentSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Damping    float64 `yaml:"damping"`
	Sensor     bool    `yaml:"sensor"`
	Driven     bool    `yaml:"driven"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type MaxSpeedComponentSpec struct {
	Value float64 `yaml:"value"`
}

type MovementComponentSpec struct {
	Kind string `yaml:"kind"`
}

type EnemyComponentSpec struct {
	Kind string `yaml:"kind"`
}

type ContactDamageComponentSpec struct {
	Amount int `yaml:"amount"`
}

type GemComponentSpec struct {
	Value        int     `yaml:"value"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
}

type GemDropComponentSpec struct {
	Count int `yaml:"count"`
	Value int `yaml:"value"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}
