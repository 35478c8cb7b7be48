package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

var (
	colorBackground = color.RGBA{R: 24, G: 26, B: 36, A: 255}
	colorGrid       = color.RGBA{R: 44, G: 48, B: 64, A: 255}
	colorMapEdge    = color.RGBA{R: 90, G: 96, B: 130, A: 255}
	// allies are drawn washed in blue so the player can read the charm
	colorAlly = color.RGBA{R: 150, G: 190, B: 255, A: 255}
)

type RenderSystem struct {
	Sprites *SpriteRegistry
	MapSize int
}

func NewRenderSystem(sprites *SpriteRegistry, mapSize int) *RenderSystem {
	if sprites == nil {
		sprites = NewSpriteRegistry()
	}
	if mapSize <= 0 {
		mapSize = common.MapSize
	}
	return &RenderSystem{Sprites: sprites, MapSize: mapSize}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	b := screen.Bounds()
	vp := CameraViewport(w, b.Dx(), b.Dy())
	screen.Fill(colorBackground)
	r.drawGrid(screen, vp)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	type keyed struct {
		e     ecs.Entity
		index int
		depth float64
	}
	order := make([]keyed, 0, len(entities))
	for _, e := range entities {
		k := keyed{e: e}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			k.index = layer.Index
			k.depth = layer.Depth
		}
		order = append(order, k)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].index != order[j].index {
			return order[i].index < order[j].index
		}
		if order[i].depth != order[j].depth {
			return order[i].depth < order[j].depth
		}
		return uint64(order[i].e) < uint64(order[j].e)
	})

	for _, k := range order {
		r.drawEntity(w, k.e, screen, vp)
	}
}

func (r *RenderSystem) drawEntity(w *ecs.World, e ecs.Entity, screen *ebiten.Image, vp Viewport) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	img := r.Sprites.Image(FrameKey(s, anim))
	if img == nil {
		return
	}

	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())
	width, height := s.Width, s.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}

	var geo ebiten.GeoM
	// center the image on the origin, then size it in world units
	geo.Translate(-iw/2-s.OriginX, -ih/2-s.OriginY)
	geo.Scale(width/iw, height/ih)
	if s.FlipX {
		geo.Scale(-1, 1)
	}
	geo.Scale(sx, sy)
	geo.Rotate(t.Rotation)
	geo.Scale(vp.Scale(), vp.Scale())
	x, y := vp.ToScreen(t.X, t.Y)
	geo.Translate(x, y)

	if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && wf.On {
		var cm colorm.ColorM
		cm.Translate(1, 1, 1, 0)
		op := &colorm.DrawImageOptions{GeoM: geo}
		colorm.DrawImage(screen, img, cm, op)
		return
	}

	op := &ebiten.DrawImageOptions{GeoM: geo}
	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	if ecs.Has(w, e, component.AllyTagComponent.Kind()) {
		op.ColorScale.ScaleWithColor(colorAlly)
	}
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawGrid(screen *ebiten.Image, vp Viewport) {
	half := float64(r.MapSize) / 2
	for i := 0; i <= r.MapSize; i++ {
		v := -half + float64(i)
		clr := colorGrid
		if i == 0 || i == r.MapSize {
			clr = colorMapEdge
		}
		x0, y0 := vp.ToScreen(v, -half)
		x1, y1 := vp.ToScreen(v, half)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
		x0, y0 = vp.ToScreen(-half, v)
		x1, y1 = vp.ToScreen(half, v)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
}
