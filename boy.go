package main

import (
	"fmt"

	"github.com/colefleming/walkthedog/engine"
)

const (
	canvasWidth  = 600
	canvasHeight = 600

	floorY    = 479
	boyHeight = canvasHeight - floorY
	startingX = -20

	runningSpeed     = 4.0
	jumpSpeed        = -23.0
	gravity          = 1.0
	terminalVelocity = 20.0

	idleFrames    = 29
	runningFrames = 23
	slidingFrames = 14
	jumpingFrames = 35
	fallingFrames = 29
)

// boyState is the interface each concrete boy state implements.
type boyState interface {
	Name() string
	// FrameName is the sprite sheet prefix for this state's animation.
	FrameName() string
	HandleInput(b *Boy, snap engine.Snapshot)
	Step(b *Boy)
}

var (
	stateIdle       = idleState{}
	stateRunning    = runningState{}
	stateSliding    = slidingState{}
	stateJumping    = jumpingState{}
	stateFalling    = fallingState{}
	stateKnockedOut = knockedOutState{}
)

// Boy is the runner. Position and velocity are in pixels per fixed step;
// the floor clamp and gravity tuning assume a 60Hz step.
type Boy struct {
	state boyState
	sheet *Sheet
	tex   any

	frame int
	pos   engine.Point
	vel   engine.Point

	// jumped is set on the input that starts a jump and consumed by the
	// game to trigger the jump sound exactly once.
	jumped bool
}

func NewBoy(sheet *Sheet, tex any) *Boy {
	return &Boy{
		state: stateIdle,
		sheet: sheet,
		tex:   tex,
		pos:   engine.Point{X: startingX, Y: floorY},
	}
}

func (b *Boy) setState(s boyState) {
	b.frame = 0
	b.state = s
}

func (b *Boy) HandleInput(snap engine.Snapshot) {
	b.state.HandleInput(b, snap)
}

func (b *Boy) Step() {
	b.state.Step(b)
}

// advance is the shared per-step physics: gravity up to terminal velocity,
// animation frame wrap, vertical motion with a floor clamp.
func (b *Boy) advance(frameCount int) {
	if b.vel.Y < terminalVelocity {
		b.vel.Y += gravity
	}
	if b.frame < frameCount {
		b.frame++
	} else {
		b.frame = 0
	}
	b.pos.Y += b.vel.Y
	if b.pos.Y > floorY {
		b.pos.Y = floorY
	}
}

// KnockOut stops the run and starts the fall animation. A boy already
// falling or down stays down.
func (b *Boy) KnockOut() {
	switch b.state {
	case stateFalling, stateKnockedOut:
		return
	}
	b.vel.X = 0
	b.setState(stateFalling)
}

// LandOn puts the boy's feet on top of the surface at y. Mid-jump this
// ends the jump; while running or sliding it only adjusts height.
func (b *Boy) LandOn(y float64) {
	b.pos.Y = y - boyHeight
	b.vel.Y = 0
	if b.state == stateJumping {
		b.setState(stateRunning)
	}
}

func (b *Boy) WalkingSpeed() float64 { return b.vel.X }
func (b *Boy) VelocityY() float64    { return b.vel.Y }
func (b *Boy) PosY() float64         { return b.pos.Y }
func (b *Boy) StateName() string     { return b.state.Name() }

// Down reports whether the knockout animation has finished.
func (b *Boy) Down() bool { return b.state == stateKnockedOut }

// Falling reports whether the boy has been hit (falling or already down).
func (b *Boy) Falling() bool {
	return b.state == stateFalling || b.state == stateKnockedOut
}

// TookJump reports and clears the jump trigger set by input handling.
func (b *Boy) TookJump() bool {
	j := b.jumped
	b.jumped = false
	return j
}

func (b *Boy) SetTexture(tex any) { b.tex = tex }

func (b *Boy) frameName() string {
	return fmt.Sprintf("%s (%d).png", b.state.FrameName(), b.frame/3+1)
}

func (b *Boy) currentCell() (Cell, bool) {
	return b.sheet.Cell(b.frameName())
}

func (b *Boy) destinationBox() engine.Rect {
	cell, ok := b.currentCell()
	if !ok {
		return engine.NewRect(b.pos.X, b.pos.Y, 0, 0)
	}
	return engine.NewRect(
		b.pos.X+cell.SpriteSourceSize.X,
		b.pos.Y+cell.SpriteSourceSize.Y,
		cell.Frame.W,
		cell.Frame.H,
	)
}

// BoundingBox trims the transparent margins off the sprite box.
func (b *Boy) BoundingBox() engine.Rect {
	const xOffset = 18.0
	const yOffset = 14.0
	const widthOffset = 28.0

	box := b.destinationBox()
	return engine.NewRect(
		box.X+xOffset,
		box.Y+yOffset,
		box.Width-widthOffset,
		box.Height-yOffset,
	)
}

func (b *Boy) Draw(r engine.Renderer) {
	cell, ok := b.currentCell()
	if !ok {
		return
	}
	src := engine.NewRect(cell.Frame.X, cell.Frame.Y, cell.Frame.W, cell.Frame.H)
	r.DrawImage(b.tex, src, b.destinationBox())
}

// Concrete states

type idleState struct{}

func (idleState) Name() string      { return "idle" }
func (idleState) FrameName() string { return "Idle" }
func (idleState) HandleInput(b *Boy, snap engine.Snapshot) {
	if snap.Pressed("ArrowRight") {
		b.vel.X += runningSpeed
		b.setState(stateRunning)
	}
}
func (idleState) Step(b *Boy) {
	b.advance(idleFrames)
}

type runningState struct{}

func (runningState) Name() string      { return "running" }
func (runningState) FrameName() string { return "Run" }
func (runningState) HandleInput(b *Boy, snap engine.Snapshot) {
	if snap.Pressed("ArrowDown") {
		b.setState(stateSliding)
		return
	}
	if snap.Pressed("Space") {
		b.vel.Y = jumpSpeed
		b.jumped = true
		b.setState(stateJumping)
	}
}
func (runningState) Step(b *Boy) {
	b.advance(runningFrames)
}

type slidingState struct{}

func (slidingState) Name() string                     { return "sliding" }
func (slidingState) FrameName() string                { return "Slide" }
func (slidingState) HandleInput(*Boy, engine.Snapshot) {}
func (slidingState) Step(b *Boy) {
	b.advance(slidingFrames)
	if b.frame >= slidingFrames {
		b.setState(stateRunning)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string                     { return "jumping" }
func (jumpingState) FrameName() string                { return "Jump" }
func (jumpingState) HandleInput(*Boy, engine.Snapshot) {}
func (jumpingState) Step(b *Boy) {
	b.advance(jumpingFrames)
	// Landing is position-driven, not frame-driven: time to the floor
	// depends on launch velocity and gravity, not the animation length.
	if b.pos.Y >= floorY {
		b.LandOn(canvasHeight)
	}
}

type fallingState struct{}

func (fallingState) Name() string                     { return "falling" }
func (fallingState) FrameName() string                { return "Dead" }
func (fallingState) HandleInput(*Boy, engine.Snapshot) {}
func (fallingState) Step(b *Boy) {
	b.advance(fallingFrames)
	if b.frame >= fallingFrames {
		// Keep the last animation frame; no reset on this transition.
		b.state = stateKnockedOut
	}
}

type knockedOutState struct{}

func (knockedOutState) Name() string                     { return "knockedout" }
func (knockedOutState) FrameName() string                { return "Dead" }
func (knockedOutState) HandleInput(*Boy, engine.Snapshot) {}
func (knockedOutState) Step(b *Boy) {
	// Frame frozen; gravity still settles the body onto the floor.
	if b.vel.Y < terminalVelocity {
		b.vel.Y += gravity
	}
	b.pos.Y += b.vel.Y
	if b.pos.Y > floorY {
		b.pos.Y = floorY
	}
}
