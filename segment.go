package main

import "github.com/colefleming/walkthedog/engine"

// Obstacle segments are pre-built layouts stitched onto the right edge of
// the timeline as the world scrolls. Heights are asset-coupled: the stone
// sprite is 90x54, so it sits on the floor at y=546.
const (
	stoneWidth  = 90
	stoneHeight = 54

	stoneOnGround = canvasHeight - stoneHeight
	lowPlatform   = 420
	highPlatform  = 375
)

var floatingPlatformSprites = []string{"13.png", "14.png", "15.png"}

func floatingPlatformBoxes() []engine.Rect {
	// The end caps are thinner than the slab in the middle, so the boy can
	// clip the corners without a knockout.
	return []engine.Rect{
		engine.NewRect(0, 0, 60, 54),
		engine.NewRect(60, 0, 264, 93),
		engine.NewRect(324, 0, 60, 54),
	}
}

func stoneAndPlatform(stoneTex any, sheet *SpriteSheet, offsetX float64) []Obstacle {
	const stoneOffset = 150
	const platformOffset = 400

	return []Obstacle{
		NewBarrier(NewSprite(stoneTex, engine.Point{X: offsetX + stoneOffset, Y: stoneOnGround}, stoneWidth, stoneHeight)),
		NewPlatform(sheet, engine.Point{X: offsetX + platformOffset, Y: lowPlatform}, floatingPlatformSprites, floatingPlatformBoxes()),
	}
}

func platformAndStone(stoneTex any, sheet *SpriteSheet, offsetX float64) []Obstacle {
	const platformOffset = 200
	const stoneOffset = 750

	return []Obstacle{
		NewPlatform(sheet, engine.Point{X: offsetX + platformOffset, Y: highPlatform}, floatingPlatformSprites, floatingPlatformBoxes()),
		NewBarrier(NewSprite(stoneTex, engine.Point{X: offsetX + stoneOffset, Y: stoneOnGround}, stoneWidth, stoneHeight)),
	}
}
