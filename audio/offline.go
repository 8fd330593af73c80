package audio

import (
	"github.com/simukka/blockfall-13k/common"
)

// renderTail pads offline renders past the last scheduled stop so final
// envelopes ring out instead of being cut at the edge.
const renderTail = 0.05

// renderSampleRate is the default rate for offline renders and WAV export.
const renderSampleRate = 44100

// offlineGraph renders scheduled effects into a PCM buffer instead of a
// device. Its clock stays at zero while effects are scheduled; Render then
// sweeps time forward over every voice.
type offlineGraph struct {
	dspRig
}

func newOfflineGraph(sampleRate float64) *offlineGraph {
	g := &offlineGraph{}
	g.init(sampleRate, func() float64 { return 0 })
	return g
}

func (g *offlineGraph) CurrentTime() float64 { return 0 }
func (g *offlineGraph) State() string        { return StateRunning }
func (g *offlineGraph) Resume()              {}

// Render mixes every scheduled voice down to mono samples in [-1, 1].
// Returns nil when nothing was scheduled.
func (g *offlineGraph) Render() []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.end <= 0 {
		return nil
	}
	frames := int((g.end + renderTail) * g.sampleRate)
	out := make([]float64, frames)
	dt := 1 / g.sampleRate
	for i := range out {
		out[i] = clampUnit(g.mixAt(float64(i)*dt, dt))
	}
	return out
}

// RenderEffect runs fn against a manager wired to a fresh offline graph
// and returns the rendered samples. The seed drives noise and detune, so
// equal seeds render identical audio.
//
//	samples := audio.RenderEffect(44100, 7, func(am *audio.AudioManager) {
//		am.PlayLineClear(4, 10)
//	})
func RenderEffect(sampleRate float64, seed uint32, fn func(*AudioManager)) []float64 {
	g := newOfflineGraph(sampleRate)
	am := NewAudioManagerWithGraph(func() Graph { return g }, common.NewSeededRNG(seed))
	fn(am)
	return g.Render()
}
