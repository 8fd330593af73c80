//go:build !js
// +build !js

package audio

import (
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const nativeSampleRate = 44100

// 10ms of 16-bit mono audio, enough buffer to ride out scheduler hiccups
// without adding audible latency.
const playerBufferBytes = nativeSampleRate / 100 * 2

// defaultGraphFactory opens the oto-backed playback graph natively.
func defaultGraphFactory() Graph {
	return NewPlaybackGraph(nativeSampleRate)
}

// playbackGraph streams the software voices into an oto player. The player
// pulls PCM on its own goroutine while effects are scheduled from the
// caller's; the rig lock keeps the two sides consistent.
type playbackGraph struct {
	dspRig
	otoCtx *oto.Context
	player *oto.Player
	ready  <-chan struct{}
	pos    atomic.Int64 // samples handed to the player so far
}

// NewPlaybackGraph opens the default output device and starts streaming
// silence. Returns nil when no device is available, which leaves the
// manager permanently silent.
func NewPlaybackGraph(sampleRate int) Graph {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil
	}

	g := newPlaybackGraph(float64(sampleRate))
	g.otoCtx = ctx
	g.ready = ready

	p := ctx.NewPlayer(g)
	p.SetBufferSize(playerBufferBytes)
	p.Play()
	g.player = p
	return g
}

// newPlaybackGraph builds the mixer without touching a device. Tests drive
// Read directly.
func newPlaybackGraph(sampleRate float64) *playbackGraph {
	g := &playbackGraph{}
	g.init(sampleRate, g.CurrentTime)
	return g
}

// CurrentTime is the stream position in seconds: samples already handed to
// the player divided by the rate.
func (g *playbackGraph) CurrentTime() float64 {
	return float64(g.pos.Load()) / g.sampleRate
}

// State reports suspended until the host signals the device is ready.
func (g *playbackGraph) State() string {
	if g.ready == nil {
		return StateRunning
	}
	select {
	case <-g.ready:
		return StateRunning
	default:
		return StateSuspended
	}
}

func (g *playbackGraph) Resume() {
	if g.otoCtx != nil {
		_ = g.otoCtx.Resume()
	}
}

// Read implements io.Reader for oto.Player, mixing live voices as 16-bit
// little-endian mono PCM. Silence keeps flowing when nothing is scheduled
// so the stream never starves.
func (g *playbackGraph) Read(p []byte) (int, error) {
	frames := len(p) / 2
	dt := 1 / g.sampleRate
	pos := g.pos.Load()

	g.mu.Lock()
	for i := 0; i < frames; i++ {
		t := float64(pos+int64(i)) * dt
		v := int16(clampUnit(g.mixAt(t, dt)) * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	g.mu.Unlock()

	g.pos.Store(pos + int64(frames))
	return frames * 2, nil
}
