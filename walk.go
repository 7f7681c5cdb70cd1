package main

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/colefleming/walkthedog/common"
	"github.com/colefleming/walkthedog/engine"
	"github.com/colefleming/walkthedog/storage"
)

const (
	assetBoySheet   = "rhb.json"
	assetBoyImage   = "rhb.png"
	assetBackground = "BG.png"
	assetStone      = "Stone.png"
	assetTileSheet  = "tiles.json"
	assetTileImage  = "tiles.png"
	assetJumpSound  = "SFX_Jump_23.wav"
)

var allAssets = []string{
	assetBoySheet,
	assetBoyImage,
	assetBackground,
	assetStone,
	assetTileSheet,
	assetTileImage,
	assetJumpSound,
}

const (
	// The boy's tuning is per fixed 60Hz step; Update folds wall-clock
	// elapsed time into steps of this size.
	frameStep = 1.0 / 60

	timelineMinimum = 1000.0
	obstacleBuffer  = 20.0
)

type walkPhase int

const (
	walkLoading walkPhase = iota
	walkPlaying
)

type soundTrigger struct {
	handle *engine.Handle
	delay  float64
	token  string
}

// Walk is the whole simulation state: the boy, the scrolling world, the
// obstacle timeline, and the readiness bookkeeping for every asset. It is
// mutated only inside a tick.
type Walk struct {
	loop   *engine.Loop
	store  *storage.Store
	logger *log.Logger

	handles   map[string]*engine.Handle
	boySheet  *Sheet
	tileSheet *Sheet

	phase         walkPhase
	boy           *Boy
	backgrounds   [2]*Sprite
	obstacles     []Obstacle
	obstacleSheet *SpriteSheet

	timeline      float64
	distance      float64
	shownDistance float64
	best          int
	accum         float64
	scoreSaved    bool

	sounds []soundTrigger
}

func NewWalk(store *storage.Store, logger *log.Logger) *Walk {
	w := &Walk{
		store:   store,
		logger:  logger,
		handles: make(map[string]*engine.Handle),
	}
	if store != nil {
		best, err := store.BestDistance()
		if err != nil {
			logger.Warn("could not read best distance", "err", err)
		}
		w.best = best
	}
	return w
}

// Bind attaches the loop and requests the initial asset batch. Must run
// before Loop.Start.
func (w *Walk) Bind(loop *engine.Loop) {
	w.loop = loop
	for _, name := range allAssets {
		w.handles[name] = loop.Load(name)
	}
}

// Reload re-requests a changed asset. The old handle stays settled and is
// simply superseded; textures swap when the new one settles.
func (w *Walk) Reload(name string) {
	if _, ok := w.handles[name]; !ok {
		return
	}
	w.logger.Info("reloading asset", "asset", name)
	w.handles[name] = w.loop.Load(name)
}

func (w *Walk) Update(snap engine.Snapshot, dt float64) {
	if w.phase == walkLoading {
		return
	}

	w.boy.HandleInput(snap)
	if w.boy.TookJump() {
		w.sounds = append(w.sounds, soundTrigger{
			handle: w.handles[assetJumpSound],
			token:  uuid.NewString(),
		})
	}

	w.accum += dt
	for w.accum >= frameStep {
		w.step()
		w.accum -= frameStep
	}

	w.shownDistance = common.Lerp(w.shownDistance, w.distance, 0.2)
}

// step advances one fixed 60Hz simulation step.
func (w *Walk) step() {
	w.boy.Step()

	velocity := -w.boy.WalkingSpeed()

	first, second := w.backgrounds[0], w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept

	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		o.CheckIntersection(w.boy)
	}

	if w.timeline < timelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}

	if !w.boy.Falling() {
		w.distance -= velocity
	}
	if w.boy.Down() && !w.scoreSaved {
		w.saveScore()
	}
}

func (w *Walk) generateNextSegment() {
	stoneTex := w.payload(assetStone)
	offset := w.timeline + obstacleBuffer

	var next []Obstacle
	if rand.IntN(2) == 0 {
		next = stoneAndPlatform(stoneTex, w.obstacleSheet, offset)
	} else {
		next = platformAndStone(stoneTex, w.obstacleSheet, offset)
	}

	w.timeline = rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

func (w *Walk) ResourceSettled(h *engine.Handle) {
	name := h.URL()
	if cur, ok := w.handles[name]; !ok || cur != h {
		// Superseded by a newer request for the same asset.
		return
	}

	if err := h.Err(); err != nil {
		w.logger.Error("asset failed to load", "asset", name, "err", err)
	}

	switch name {
	case assetBoySheet:
		w.boySheet = w.parseSheet(h)
	case assetTileSheet:
		w.tileSheet = w.parseSheet(h)
	}

	w.refresh(name, h)

	if w.phase == walkLoading && w.allSettled() {
		w.buildWorld()
	}
}

func (w *Walk) parseSheet(h *engine.Handle) *Sheet {
	data, ok := h.Payload().([]byte)
	if !ok {
		return nil
	}
	sheet, err := ParseSheet(data)
	if err != nil {
		w.logger.Error("bad sprite sheet", "asset", h.URL(), "err", err)
		return nil
	}
	return sheet
}

// refresh swaps a hot-reloaded texture into the live world. Existing stone
// barriers keep their old texture; the next segment picks up the new one.
func (w *Walk) refresh(name string, h *engine.Handle) {
	if w.phase != walkPlaying {
		return
	}
	switch name {
	case assetBoyImage:
		w.boy.SetTexture(h.Payload())
	case assetBackground:
		for _, bg := range w.backgrounds {
			bg.SetTexture(h.Payload())
		}
	case assetTileImage:
		w.obstacleSheet.SetTexture(h.Payload())
	}
}

func (w *Walk) allSettled() bool {
	for _, h := range w.handles {
		if h.Poll() == engine.StatePending {
			return false
		}
	}
	return true
}

func (w *Walk) payload(name string) any {
	h, ok := w.handles[name]
	if !ok {
		return nil
	}
	return h.Payload()
}

// buildWorld constructs the playable state from whatever settled. Failed
// textures stay nil and draw as placeholders; a failed sheet falls back to
// a synthesized one so animation lookups keep working.
func (w *Walk) buildWorld() {
	if w.boySheet == nil {
		w.boySheet = fallbackBoySheet()
	}
	if w.tileSheet == nil {
		w.tileSheet = fallbackTileSheet()
	}

	w.boy = NewBoy(w.boySheet, w.payload(assetBoyImage))

	bgTex := w.payload(assetBackground)
	bgWidth, _ := textureSize(bgTex)
	w.backgrounds = [2]*Sprite{
		NewSprite(bgTex, engine.Point{X: 0, Y: 0}, bgWidth, canvasHeight),
		NewSprite(bgTex, engine.Point{X: bgWidth, Y: 0}, bgWidth, canvasHeight),
	}

	w.obstacleSheet = NewSpriteSheet(w.tileSheet, w.payload(assetTileImage))
	w.obstacles = stoneAndPlatform(w.payload(assetStone), w.obstacleSheet, 0)
	w.timeline = rightmost(w.obstacles)

	w.distance = 0
	w.shownDistance = 0
	w.accum = 0
	w.scoreSaved = false
	w.phase = walkPlaying
}

// Reset starts a new run against the already-loaded assets.
func (w *Walk) Reset() {
	if !w.allSettled() {
		return
	}
	w.buildWorld()
}

// GameOver reports whether the knockout animation has finished, which is
// when the restart overlay appears.
func (w *Walk) GameOver() bool {
	return w.phase == walkPlaying && w.boy.Down()
}

func (w *Walk) saveScore() {
	w.scoreSaved = true
	distance := int(w.distance)
	if distance > w.best {
		w.best = distance
	}
	if w.store == nil {
		return
	}
	id, err := w.store.SaveRun(distance)
	if err != nil {
		w.logger.Error("could not save run", "err", err)
		return
	}
	w.logger.Info("run saved", "id", id, "distance", distance)
}

func (w *Walk) Draw(r engine.Renderer) {
	r.Clear(engine.NewRect(0, 0, canvasWidth, canvasHeight))

	if w.phase == walkLoading {
		r.DrawText("Loading...", canvasWidth/2-30, canvasHeight/2)
		return
	}

	for _, bg := range w.backgrounds {
		bg.Draw(r)
	}
	w.boy.Draw(r)
	for _, o := range w.obstacles {
		o.Draw(r)
	}

	r.DrawText(fmt.Sprintf("Distance: %d   Best: %d", int(w.shownDistance), w.best), 10, 10)
}

func (w *Walk) PlaySounds(s *engine.Scheduler) {
	for _, tr := range w.sounds {
		if tr.handle == nil {
			continue
		}
		if err := s.Schedule(tr.handle, tr.delay, tr.token); err != nil {
			// Expected for not-ready or failed audio; the sound is
			// skipped for this trigger, never deferred.
			w.logger.Debug("sound skipped", "asset", tr.handle.URL(), "err", err)
		}
	}
	w.sounds = w.sounds[:0]
}

// textureSize reads the pixel size off payloads that expose bounds (any
// *ebiten.Image does); everything else gets the canvas size.
func textureSize(tex any) (float64, float64) {
	if img, ok := tex.(interface{ Bounds() image.Rectangle }); ok {
		b := img.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return canvasWidth, canvasHeight
}

func fallbackBoySheet() *Sheet {
	counts := map[string]int{
		"Idle":  idleFrames/3 + 1,
		"Run":   runningFrames/3 + 1,
		"Slide": slidingFrames/3 + 1,
		"Jump":  jumpingFrames/3 + 1,
		"Dead":  fallingFrames/3 + 1,
	}
	frames := make(map[string]Cell)
	for prefix, n := range counts {
		for i := 1; i <= n; i++ {
			frames[fmt.Sprintf("%s (%d).png", prefix, i)] = Cell{
				Frame: SheetRect{X: float64((i - 1) * 64), W: 64, H: float64(boyHeight)},
			}
		}
	}
	return &Sheet{Frames: frames}
}

func fallbackTileSheet() *Sheet {
	frames := make(map[string]Cell)
	for i, name := range floatingPlatformSprites {
		frames[name] = Cell{Frame: SheetRect{X: float64(i * 128), W: 128, H: 93}}
	}
	return &Sheet{Frames: frames}
}
