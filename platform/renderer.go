// Package platform provides the ebiten-backed host capabilities the engine
// runs against: drawing surface, audio sink, keyboard delivery, resource
// transport and decoding, and the monotonic frame clock.
package platform

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/colefleming/walkthedog/engine"
)

// Renderer draws the whole tick into an offscreen canvas, so the engine's
// draw step stays inside Tick; the ebiten Draw callback only blits the
// canvas to the screen.
type Renderer struct {
	canvas *ebiten.Image
	debug  bool
}

func NewRenderer(width, height int, debug bool) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, &CapabilityError{Capability: "renderer", Reason: "non-positive canvas size"}
	}
	return &Renderer{canvas: ebiten.NewImage(width, height), debug: debug}, nil
}

// Canvas is the offscreen target holding the last completed tick's frame.
func (r *Renderer) Canvas() *ebiten.Image {
	return r.canvas
}

func (r *Renderer) Clear(rect engine.Rect) {
	sub := r.canvas.SubImage(image.Rect(int(rect.X), int(rect.Y), int(rect.Right()), int(rect.Bottom())))
	sub.(*ebiten.Image).Fill(color.White)
}

// DrawImage blits the src region of tex to dst, scaling when the rects
// differ. A payload that is not an *ebiten.Image is a placeholder (failed
// or mistyped resource) and degrades to a colored rect.
func (r *Renderer) DrawImage(tex any, src, dst engine.Rect) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		vector.DrawFilledRect(r.canvas, float32(dst.X), float32(dst.Y), float32(dst.Width), float32(dst.Height), colornames.Hotpink, false)
		return
	}

	sub := img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{}
	if src.Width != 0 && src.Height != 0 {
		opts.GeoM.Scale(dst.Width/src.Width, dst.Height/src.Height)
	}
	opts.GeoM.Translate(dst.X, dst.Y)
	r.canvas.DrawImage(sub, opts)

	if r.debug {
		vector.StrokeRect(r.canvas, float32(dst.X), float32(dst.Y), float32(dst.Width), float32(dst.Height), 1, colornames.Red, false)
	}
}

func (r *Renderer) DrawText(s string, x, y float64) {
	ebitenutil.DebugPrintAt(r.canvas, s, int(x), int(y))
}
