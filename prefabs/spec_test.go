package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig()
	if err != nil {
		t.Fatalf("load game config: %v", err)
	}
	if cfg.Player.InvulnerableFrames != 60 {
		t.Fatalf("expected 60 invulnerable frames, got %d", cfg.Player.InvulnerableFrames)
	}
	if len(cfg.Waves) == 0 {
		t.Fatalf("expected at least one wave")
	}
	for _, w := range cfg.Waves {
		if _, err := Load(EnemyPrefab(w.Kind)); err != nil {
			t.Fatalf("wave prefab for %q: %v", w.Kind, err)
		}
		if w.Script != "" {
			if _, err := LoadScript(w.Script); err != nil {
				t.Fatalf("wave script %q: %v", w.Script, err)
			}
		}
	}
	for _, w := range cfg.Weapons {
		if _, err := LoadEntityBuildSpec(w.Prefab); err != nil {
			t.Fatalf("weapon prefab %q: %v", w.Prefab, err)
		}
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Waves = []WaveTuning{{Kind: "dragon", Movement: "teleport"}}
	cfg.Formations = []FormationTuning{{Kind: "pumpkin"}}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "rgb", in: `"#0078ff"`, want: color.NRGBA{R: 0, G: 120, B: 255, A: 255}},
		{name: "rgba", in: `"#e5070080"`, want: color.NRGBA{R: 229, G: 7, B: 0, A: 128}},
		{name: "no hash", in: `"ffffff"`, want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "short", in: `"#fff"`, wantErr: true},
		{name: "not hex", in: `"#gggggg"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, c.Color)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"waves", "waves.tengo", "scripts/waves.tengo", "prefabs/scripts/waves.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/waves.tengo" {
			t.Fatalf("cleanScriptPath(%q) = %q", in, got)
		}
	}
}
