// Package config holds the game's tunable settings, loaded from YAML with
// built-in defaults as the fallback.
package config

type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetsConfig `yaml:"assets"`
	Loop   LoopConfig   `yaml:"loop"`
	Audio  AudioConfig  `yaml:"audio"`
	Scores ScoresConfig `yaml:"scores"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AssetsConfig struct {
	// Dir is the local asset directory searched for non-URL asset names.
	Dir string `yaml:"dir"`
}

type LoopConfig struct {
	// MaxStep clamps simulated elapsed time per tick, in seconds.
	MaxStep float64 `yaml:"max_step"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	// Lookahead is the scheduling horizon in seconds; play-tokens are
	// deduplicated within it.
	Lookahead float64 `yaml:"lookahead"`
}

type ScoresConfig struct {
	// Path is the sqlite database file for run records. Empty disables
	// persistence.
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Width: 600, Height: 600, Title: "walk the dog"},
		Assets: AssetsConfig{Dir: "assets"},
		Loop:   LoopConfig{MaxStep: 0.1},
		Audio:  AudioConfig{SampleRate: 44100, Lookahead: 1.0},
		Scores: ScoresConfig{Path: "walkthedog.db"},
	}
}
