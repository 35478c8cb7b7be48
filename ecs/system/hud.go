package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	colorHeart      = color.RGBA{R: 230, G: 60, B: 80, A: 255}
	colorHeartEmpty = color.RGBA{R: 70, G: 40, B: 50, A: 255}
	colorHUDText    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// BestRun is the best finished run shown next to the live score.
type BestRun struct {
	Seconds int
	Gems    int
	Kills   int
}

// HUDSystem draws the player's hearts and the run counters in screen space.
type HUDSystem struct {
	Best BestRun

	face ebtext.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}

	const heartSize = 14
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			for i := 0; i < health.Max; i++ {
				clr := colorHeart
				if i >= health.Current {
					clr = colorHeartEmpty
				}
				x := float32(12 + i*(heartSize+6))
				vector.DrawFilledCircle(screen, x+heartSize/2, 12+heartSize/2, heartSize/2, clr, true)
			}
		}
	}

	stats := RunStatsOf(w)
	line := fmt.Sprintf("Time %s   Gems %d   Kills %d   Allies %d",
		clock(stats.Frames/common.TPS), stats.Gems, stats.Kills, len(w.Query(component.AllyTagComponent.Kind())))
	h.print(screen, line, 12, 36)
	if h.Best.Seconds > 0 {
		best := fmt.Sprintf("Best %s   Gems %d   Kills %d", clock(h.Best.Seconds), h.Best.Gems, h.Best.Kills)
		h.print(screen, best, 12, 54)
	}
}

func (h *HUDSystem) print(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorHUDText)
	ebtext.Draw(screen, s, h.face, op)
}

// RunStatsOf returns a copy of the world's run stats, or zero values.
func RunStatsOf(w *ecs.World) component.RunStats {
	e, ok := w.First(component.RunStatsComponent.Kind())
	if !ok {
		return component.RunStats{}
	}
	stats, ok := ecs.Get(w, e, component.RunStatsComponent.Kind())
	if !ok {
		return component.RunStats{}
	}
	return *stats
}

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
