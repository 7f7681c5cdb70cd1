package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/colefleming/walkthedog/engine"
	"github.com/colefleming/walkthedog/platform"
)

// Game is the ebiten shell. Each host frame it polls the keyboard, pumps
// asset-watcher events, and drives one loop tick; the tick renders into
// the offscreen canvas which Draw then blits.
type Game struct {
	loop     *engine.Loop
	walk     *Walk
	renderer *platform.Renderer
	keyboard *platform.Keyboard
	watcher  *platform.Watcher
	clock    func() float64

	ui *ebitenui.UI

	width  int
	height int
}

func NewGame(loop *engine.Loop, walk *Walk, renderer *platform.Renderer, keyboard *platform.Keyboard, watcher *platform.Watcher, clock func() float64, width, height int) *Game {
	g := &Game{
		loop:     loop,
		walk:     walk,
		renderer: renderer,
		keyboard: keyboard,
		watcher:  watcher,
		clock:    clock,
		width:    width,
		height:   height,
	}
	g.ui = NewGameOverUI(g)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}

	g.keyboard.Poll()
	g.pumpWatcher()
	g.loop.Tick(g.clock())

	if g.walk.GameOver() {
		g.ui.Update()
	}

	return nil
}

// pumpWatcher drains any pending file-change events without blocking the
// frame and re-requests the touched assets.
func (g *Game) pumpWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			g.walk.Reload(name)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.renderer.Canvas(), nil)

	if g.walk.GameOver() {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
