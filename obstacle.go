package main

import "github.com/colefleming/walkthedog/engine"

// Obstacle is anything the boy can collide with as the world scrolls past.
type Obstacle interface {
	CheckIntersection(b *Boy)
	Draw(r engine.Renderer)
	MoveHorizontally(dx float64)
	Right() float64
}

func rightmost(obstacles []Obstacle) float64 {
	var right float64
	for _, o := range obstacles {
		if r := o.Right(); r > right {
			right = r
		}
	}
	return right
}

// Platform is a row of sprite sheet cells the boy can land on from above.
// Hitting it from the side or below is a knockout.
type Platform struct {
	sheet         *SpriteSheet
	sprites       []Cell
	boundingBoxes []engine.Rect
	pos           engine.Point
}

// NewPlatform resolves sprite names against the sheet and translates the
// local bounding boxes to the platform's world position. The sprites are
// laid out in one row, each offset by the previous cell's width.
func NewPlatform(sheet *SpriteSheet, pos engine.Point, spriteNames []string, boxes []engine.Rect) *Platform {
	var sprites []Cell
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}

	translated := make([]engine.Rect, len(boxes))
	for i, box := range boxes {
		translated[i] = box.Translate(pos.X, pos.Y)
	}

	return &Platform{
		sheet:         sheet,
		sprites:       sprites,
		boundingBoxes: translated,
		pos:           pos,
	}
}

func (p *Platform) Draw(r engine.Renderer) {
	var x float64
	for _, sprite := range p.sprites {
		src := engine.NewRect(sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H)
		dst := engine.NewRect(p.pos.X+x, p.pos.Y, sprite.Frame.W, sprite.Frame.H)
		p.sheet.Draw(r, src, dst)
		x += sprite.Frame.W
	}
}

func (p *Platform) MoveHorizontally(dx float64) {
	p.pos.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].X += dx
	}
}

func (p *Platform) CheckIntersection(b *Boy) {
	for _, box := range p.boundingBoxes {
		if !b.BoundingBox().Intersects(box) {
			continue
		}
		// Screen y grows downward: descending onto the platform from
		// above is a landing, anything else is a hit.
		if b.VelocityY() > 0 && b.PosY() < p.pos.Y {
			b.LandOn(box.Y)
		} else {
			b.KnockOut()
		}
		return
	}
}

func (p *Platform) Right() float64 {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}

// Barrier is a single-image obstacle that always knocks the boy out.
type Barrier struct {
	sprite *Sprite
}

func NewBarrier(sprite *Sprite) *Barrier {
	return &Barrier{sprite: sprite}
}

func (b *Barrier) CheckIntersection(boy *Boy) {
	if boy.BoundingBox().Intersects(b.sprite.BoundingBox()) {
		boy.KnockOut()
	}
}

func (b *Barrier) Draw(r engine.Renderer) {
	b.sprite.Draw(r)
}

func (b *Barrier) MoveHorizontally(dx float64) {
	b.sprite.MoveHorizontally(dx)
}

func (b *Barrier) Right() float64 {
	return b.sprite.Right()
}
