package main

import (
	"encoding/json"
	"fmt"

	"github.com/colefleming/walkthedog/engine"
)

// SheetRect is a region inside a packed sprite sheet image.
type SheetRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Cell is one packed sprite: where it sits on the sheet and how it was
// trimmed relative to its original frame.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet is the JSON half of a sprite sheet (frames keyed by name).
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

func ParseSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse sprite sheet: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("sprite sheet has no frames")
	}
	return &s, nil
}

func (s *Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// SpriteSheet pairs the parsed frame data with its texture.
type SpriteSheet struct {
	sheet *Sheet
	tex   any
}

func NewSpriteSheet(sheet *Sheet, tex any) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, tex: tex}
}

func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	return s.sheet.Cell(name)
}

func (s *SpriteSheet) SetTexture(tex any) {
	s.tex = tex
}

func (s *SpriteSheet) Draw(r engine.Renderer, src, dst engine.Rect) {
	r.DrawImage(s.tex, src, dst)
}
