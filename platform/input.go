package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/colefleming/walkthedog/engine"
)

// defaultBindings maps ebiten keys to the engine's key identifiers. The
// identifiers match browser key codes so input-driven logic is host-neutral.
var defaultBindings = map[ebiten.Key]string{
	ebiten.KeySpace:      "Space",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyEscape:     "Escape",
}

// Keyboard turns ebiten's polled key state into discrete key-down/key-up
// events for the sampler. Poll runs once per host update, before the tick,
// so events always land in the very next snapshot.
type Keyboard struct {
	sampler  *engine.Sampler
	clock    func() float64
	bindings map[ebiten.Key]string
}

func NewKeyboard(sampler *engine.Sampler, clock func() float64) *Keyboard {
	return &Keyboard{
		sampler:  sampler,
		clock:    clock,
		bindings: defaultBindings,
	}
}

func (k *Keyboard) Poll() {
	now := k.clock()
	for key, id := range k.bindings {
		if inpututil.IsKeyJustPressed(key) {
			k.sampler.Push(engine.KeyEvent{Key: id, Down: true, When: now})
		}
		if inpututil.IsKeyJustReleased(key) {
			k.sampler.Push(engine.KeyEvent{Key: id, Down: false, When: now})
		}
	}
}
