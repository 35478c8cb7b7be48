// spsa previews the generated sprite animations of a prefab. Left/Right
// cycles the prefab's animations.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/system"
	"github.com/milk9111/horde/prefabs"
)

type demoGame struct {
	sprites *system.SpriteRegistry
	sprite  component.Sprite
	anims   []component.AnimationDef
	anim    int
	current int
	tick    int
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.switchAnim(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.switchAnim(-1)
	}
	if len(g.anims) == 0 {
		return nil
	}
	def := g.anims[g.anim]
	ticks := 1
	if def.FPS > 0 {
		ticks = int(60 / def.FPS)
		if ticks < 1 {
			ticks = 1
		}
	}
	g.tick++
	if g.tick >= ticks {
		g.tick = 0
		g.current++
		if g.current >= def.FrameCount {
			g.current = 0
		}
	}
	return nil
}

func (g *demoGame) switchAnim(step int) {
	if len(g.anims) == 0 {
		return
	}
	g.anim = (g.anim + step + len(g.anims)) % len(g.anims)
	g.current = 0
	g.tick = 0
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	// clear
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	key := g.sprite.Key
	label := key
	if len(g.anims) > 0 {
		anim := &component.Animation{Current: g.anims[g.anim].Name, Frame: g.current}
		key = system.FrameKey(&g.sprite, anim)
		label = fmt.Sprintf("%s  (%d/%d)", key, g.anim+1, len(g.anims))
	}
	img := g.sprites.Image(key)
	if img == nil {
		return
	}

	const scale = 8
	fw := img.Bounds().Dx() * scale
	fh := img.Bounds().Dy() * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64((512-fw)/2), float64((512-fh)/2))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
	ebitenutil.DebugPrintAt(screen, label, 10, 10)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 512, 512
}

func loadPrefab(path string) (component.Sprite, []component.AnimationDef, error) {
	spec, err := prefabs.LoadEntityBuildSpec(path)
	if err != nil {
		return component.Sprite{}, nil, err
	}
	spriteSpec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](spec.Components["sprite"])
	if err != nil {
		return component.Sprite{}, nil, fmt.Errorf("sprite: %w", err)
	}
	if spriteSpec.Key == "" {
		return component.Sprite{}, nil, fmt.Errorf("%s has no sprite", path)
	}
	animSpec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		return component.Sprite{}, nil, fmt.Errorf("animation: %w", err)
	}

	names := make([]string, 0, len(animSpec.Defs))
	for name := range animSpec.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make([]component.AnimationDef, 0, len(names))
	for _, name := range names {
		d := animSpec.Defs[name]
		defs = append(defs, component.AnimationDef{Name: name, FrameCount: d.FrameCount, FPS: d.FPS, Loop: d.Loop})
	}
	return component.Sprite{Key: spriteSpec.Key}, defs, nil
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab to preview")
	flag.Parse()

	sprite, anims, err := loadPrefab(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	g := &demoGame{sprites: system.NewSpriteRegistry(), sprite: sprite, anims: anims}
	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("Sprite Preview: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
