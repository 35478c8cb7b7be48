package system

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spriteSize is the pixel size every generated frame is painted at. The
// renderer scales it to the sprite's world size.
const spriteSize = 32

// SpriteRegistry paints and caches the art for every sprite key. Keys follow
// FrameKey: "<key>" or "<key>/<animation>/<frame>".
type SpriteRegistry struct {
	images map[string]*ebiten.Image
}

func NewSpriteRegistry() *SpriteRegistry {
	return &SpriteRegistry{images: map[string]*ebiten.Image{}}
}

// Image returns the frame for key, painting it on first use.
func (r *SpriteRegistry) Image(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	if img, ok := r.images[key]; ok {
		return img
	}
	base, anim, frame := splitFrameKey(key)
	img := ebiten.NewImage(spriteSize, spriteSize)
	paintSprite(img, base, anim, frame)
	r.images[key] = img
	return img
}

func splitFrameKey(key string) (base, anim string, frame int) {
	parts := strings.Split(key, "/")
	base = parts[0]
	if len(parts) >= 2 {
		anim = parts[1]
	}
	if len(parts) >= 3 {
		frame, _ = strconv.Atoi(parts[2])
	}
	return base, anim, frame
}

var (
	colorOutline = color.RGBA{R: 20, G: 16, B: 28, A: 255}
	colorEye     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

func paintSprite(img *ebiten.Image, base, anim string, frame int) {
	const c = spriteSize / 2
	// walking frames bob up and down
	bob := float32(0)
	if anim == animWalk {
		bob = float32(math.Sin(float64(frame)*math.Pi/2)) * 1.5
	} else if anim == animIdle && frame%2 == 1 {
		bob = 0.5
	}

	switch base {
	case "player":
		vector.DrawFilledCircle(img, c, c+bob, 11, colorOutline, true)
		vector.DrawFilledCircle(img, c, c+bob, 10, color.RGBA{R: 90, G: 200, B: 110, A: 255}, true)
		vector.DrawFilledCircle(img, c+4, c-2+bob, 2.5, colorEye, true)
		vector.DrawFilledCircle(img, c-4, c-2+bob, 2.5, colorEye, true)
	case "blue_fish", "big_red_fish":
		body := color.RGBA{R: 70, G: 130, B: 230, A: 255}
		if base == "big_red_fish" {
			body = color.RGBA{R: 220, G: 60, B: 60, A: 255}
		}
		vector.DrawFilledCircle(img, c+2, c+bob, 9, body, true)
		vector.DrawFilledCircle(img, c-7, c+bob, 6, body, true)
		vector.DrawFilledRect(img, 2, c-6+bob, 6, 12, body, true)
		vector.DrawFilledCircle(img, c+6, c-2+bob, 2, colorEye, true)
	case "pumpkin":
		vector.DrawFilledCircle(img, c, c+2+bob, 11, color.RGBA{R: 240, G: 140, B: 30, A: 255}, true)
		vector.DrawFilledRect(img, c-1.5, 3+bob, 3, 6, color.RGBA{R: 60, G: 120, B: 40, A: 255}, true)
		vector.DrawFilledCircle(img, c-4, c+bob, 2, colorOutline, true)
		vector.DrawFilledCircle(img, c+4, c+bob, 2, colorOutline, true)
	case "skeleton_head":
		vector.DrawFilledCircle(img, c, c-2+bob, 10, color.RGBA{R: 235, G: 230, B: 215, A: 255}, true)
		vector.DrawFilledRect(img, c-6, c+4+bob, 12, 6, color.RGBA{R: 235, G: 230, B: 215, A: 255}, true)
		vector.DrawFilledCircle(img, c-4, c-2+bob, 3, colorOutline, true)
		vector.DrawFilledCircle(img, c+4, c-2+bob, 3, colorOutline, true)
	case "knife":
		vector.StrokeLine(img, 6, 26+bob, 26, 6+bob, 4, color.RGBA{R: 200, G: 205, B: 215, A: 255}, true)
		vector.StrokeLine(img, 4, 28+bob, 10, 22+bob, 5, color.RGBA{R: 110, G: 70, B: 40, A: 255}, true)
	case "gem":
		shine := uint8(200 + 10*(frame%4))
		vector.DrawFilledCircle(img, c, c, 7, color.RGBA{R: 60, G: shine, B: 240, A: 255}, true)
		vector.DrawFilledCircle(img, c-2, c-2, 2, colorEye, true)
	case "weapon":
		vector.StrokeCircle(img, c, c, 10, 3, color.RGBA{R: 250, G: 210, B: 60, A: 255}, true)
		vector.StrokeLine(img, c-10, c, c+10, c, 3, color.RGBA{R: 250, G: 210, B: 60, A: 255}, true)
	case "converting_weapon":
		pink := color.RGBA{R: 240, G: 110, B: 200, A: 255}
		vector.DrawFilledCircle(img, c-4, c-3, 6, pink, true)
		vector.DrawFilledCircle(img, c+4, c-3, 6, pink, true)
		vector.StrokeLine(img, c-9, c, c, c+9, 5, pink, true)
		vector.StrokeLine(img, c+9, c, c, c+9, 5, pink, true)
	default:
		vector.DrawFilledRect(img, 4, 4, spriteSize-8, spriteSize-8, color.RGBA{R: 255, G: 0, B: 255, A: 255}, false)
	}
}
