//go:build !js
// +build !js

package audio

import (
	"testing"

	"github.com/simukka/blockfall-13k/common"
)

func TestPlaybackGraph_Read_SilenceWhenIdle(t *testing.T) {
	g := newPlaybackGraph(44100)

	buf := make([]byte, 8820) // 100ms of 16-bit mono
	n, err := g.Read(buf)

	if err != nil {
		t.Fatalf("Read should not fail: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Read should fill the buffer: expected %d bytes, got %d", len(buf), n)
	}
	for i, s := range pcmSamples(buf) {
		if s != 0 {
			t.Errorf("idle stream should be silent, sample %d is %d", i, s)
			break
		}
	}
}

func TestPlaybackGraph_Read_MixesScheduledVoice(t *testing.T) {
	g := newPlaybackGraph(44100)
	am := NewAudioManagerWithGraph(func() Graph { return g }, common.NewSeededRNG(1))
	am.PlayRotate(1)

	buf := make([]byte, 8820)
	n, err := g.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read: got %d bytes, err %v", n, err)
	}

	hasNonZero := false
	for _, s := range pcmSamples(buf) {
		if s != 0 {
			hasNonZero = true
			break
		}
	}
	if !hasNonZero {
		t.Error("a scheduled voice should reach the PCM stream")
	}
}

func TestPlaybackGraph_CurrentTime_AdvancesWithRead(t *testing.T) {
	g := newPlaybackGraph(44100)

	if got := g.CurrentTime(); got != 0 {
		t.Errorf("fresh graph clock should read 0, got %f", got)
	}

	buf := make([]byte, 8820)
	g.Read(buf)

	if got := g.CurrentTime(); !floatNear(got, 0.1, 1e-9) {
		t.Errorf("after 4410 frames the clock should read 0.1s, got %f", got)
	}

	g.Read(buf)
	if got := g.CurrentTime(); !floatNear(got, 0.2, 1e-9) {
		t.Errorf("after 8820 frames the clock should read 0.2s, got %f", got)
	}
}

func TestPlaybackGraph_Read_VoiceEndsIntoSilence(t *testing.T) {
	g := newPlaybackGraph(44100)
	am := NewAudioManagerWithGraph(func() Graph { return g }, common.NewSeededRNG(1))
	am.PlayRotate(1) // rotate blip is over well inside 100ms

	buf := make([]byte, 8820)
	g.Read(buf)
	g.Read(buf)

	for i, s := range pcmSamples(buf) {
		if s != 0 {
			t.Errorf("stream should return to silence after the voice ends, sample %d is %d", i, s)
			break
		}
	}
}

func TestPlaybackGraph_NoDevice_ReportsRunning(t *testing.T) {
	g := newPlaybackGraph(44100)

	if got := g.State(); got != StateRunning {
		t.Errorf("deviceless graph state: expected %q, got %q", StateRunning, got)
	}
	g.Resume() // must not crash without a device
}

func pcmSamples(p []byte) []int16 {
	out := make([]int16, len(p)/2)
	for i := range out {
		out[i] = int16(uint16(p[2*i]) | uint16(p[2*i+1])<<8)
	}
	return out
}
