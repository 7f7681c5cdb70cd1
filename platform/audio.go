package platform

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sink plays decoded PCM buffers through ebiten's audio context. Start
// times in the future are honored best-effort with a timer against the
// frame clock; once a player starts it is never retimed.
type Sink struct {
	ctx   *audio.Context
	clock func() float64
}

// NewSink creates the audio context at the given sample rate. ebiten
// allows one context per process; the caller owns that invariant.
func NewSink(sampleRate int, clock func() float64) (*Sink, error) {
	if sampleRate <= 0 {
		return nil, &CapabilityError{Capability: "audio", Reason: fmt.Sprintf("invalid sample rate %d", sampleRate)}
	}
	return &Sink{ctx: audio.NewContext(sampleRate), clock: clock}, nil
}

func (s *Sink) SampleRate() int {
	return s.ctx.SampleRate()
}

// Play starts buf at clock time at. Fire-and-forget: playback progress is
// never queried and failures after start are not reported back.
func (s *Sink) Play(buf any, at float64) error {
	pcm, ok := buf.([]byte)
	if !ok {
		return fmt.Errorf("platform: audio payload is %T, want []byte", buf)
	}

	delay := at - s.clock()
	if delay <= 0 {
		s.ctx.NewPlayerFromBytes(pcm).Play()
		return nil
	}
	time.AfterFunc(time.Duration(delay*float64(time.Second)), func() {
		s.ctx.NewPlayerFromBytes(pcm).Play()
	})
	return nil
}
