package main

import "github.com/colefleming/walkthedog/engine"

// Sprite is a positioned image drawn at its natural size.
type Sprite struct {
	tex    any
	pos    engine.Point
	width  float64
	height float64
}

func NewSprite(tex any, pos engine.Point, width, height float64) *Sprite {
	return &Sprite{tex: tex, pos: pos, width: width, height: height}
}

func (s *Sprite) SetTexture(tex any) {
	s.tex = tex
}

func (s *Sprite) BoundingBox() engine.Rect {
	return engine.NewRect(s.pos.X, s.pos.Y, s.width, s.height)
}

func (s *Sprite) Right() float64 {
	return s.pos.X + s.width
}

func (s *Sprite) SetX(x float64) {
	s.pos.X = x
}

func (s *Sprite) MoveHorizontally(dx float64) {
	s.pos.X += dx
}

func (s *Sprite) Draw(r engine.Renderer) {
	src := engine.NewRect(0, 0, s.width, s.height)
	r.DrawImage(s.tex, src, s.BoundingBox())
}
