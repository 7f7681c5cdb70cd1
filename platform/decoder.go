package platform

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Decoder turns fetched bytes into engine payloads by extension:
// png -> *ebiten.Image, wav -> PCM []byte at the sink's sample rate,
// json -> raw bytes (the game parses its own data files).
type Decoder struct {
	sampleRate int
}

func NewDecoder(sampleRate int) *Decoder {
	return &Decoder{sampleRate: sampleRate}
}

func (d *Decoder) Decode(url string, data []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(url)) {
	case ".png":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(img), nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(d.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(stream)
	case ".json":
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported asset format %q", filepath.Ext(url))
	}
}
