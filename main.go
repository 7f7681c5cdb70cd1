package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/colefleming/walkthedog/config"
	"github.com/colefleming/walkthedog/engine"
	"github.com/colefleming/walkthedog/platform"
	"github.com/colefleming/walkthedog/storage"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	debug := flag.Bool("debug", false, "draw bounding boxes and enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "walkthedog",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}

	var store *storage.Store
	if cfg.Scores.Path != "" {
		store, err = storage.Open(cfg.Scores.Path)
		if err != nil {
			logger.Warn("score store unavailable, runs will not be saved", "path", cfg.Scores.Path, "err", err)
		} else {
			defer store.Close()
		}
	}

	clock := platform.NewClock()

	renderer, err := platform.NewRenderer(cfg.Window.Width, cfg.Window.Height, *debug)
	if err != nil {
		fatalCapability(logger, err)
	}
	sink, err := platform.NewSink(cfg.Audio.SampleRate, clock)
	if err != nil {
		fatalCapability(logger, err)
	}

	sampler := engine.NewSampler()
	loader := engine.NewLoader(
		platform.NewTransport(cfg.Assets.Dir),
		platform.NewDecoder(cfg.Audio.SampleRate),
	)
	sched := engine.NewScheduler(sink, cfg.Audio.Lookahead)

	walk := NewWalk(store, logger)
	loop := engine.NewLoop(walk, renderer, sampler, loader, sched, cfg.Loop.MaxStep)
	walk.Bind(loop)

	if err := loop.Start(); err != nil {
		logger.Fatal("could not start loop", "err", err)
	}

	keyboard := platform.NewKeyboard(sampler, clock)

	watcher, err := platform.NewWatcher(cfg.Assets.Dir)
	if err != nil {
		logger.Warn("asset watching disabled", "err", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(loop, walk, renderer, keyboard, watcher, clock, cfg.Window.Width, cfg.Window.Height)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}

// fatalCapability reports a missing host capability and exits before the
// loop ever starts.
func fatalCapability(logger *log.Logger, err error) {
	var capErr *platform.CapabilityError
	if errors.As(err, &capErr) {
		logger.Fatal("host capability unavailable", "capability", capErr.Capability, "reason", capErr.Reason)
	}
	logger.Fatal("platform setup failed", "err", err)
}
