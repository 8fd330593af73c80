package audio

import (
	"github.com/simukka/blockfall-13k/common"
)

// AudioManager synthesizes the game's sound effects on a host audio graph.
// Every cue is built live from oscillators, noise buffers, filters and gain
// envelopes; nothing is sampled. Construction has no audio side effects:
// the graph is created lazily by the first sound-producing call, so pages
// never trip autoplay restrictions before the player has interacted.
type AudioManager struct {
	graph  Graph
	master Gain

	muted  bool
	volume float64

	// newGraph is invoked once, on the first unmuted play. A nil factory
	// or a factory returning nil leaves the manager permanently silent.
	newGraph    GraphFactory
	unavailable bool

	rng *common.SeededRNG // Seeded RNG for noise bursts and detune
}

// NewAudioManager creates an audio manager playing through the platform's
// default graph: Web Audio in the browser, the oto mixer natively.
func NewAudioManager(seed *common.SeededRNG) *AudioManager {
	return NewAudioManagerWithGraph(defaultGraphFactory, seed)
}

// NewAudioManagerWithGraph creates an audio manager on a caller-supplied
// graph factory. Tests use this to substitute a recording fake.
func NewAudioManagerWithGraph(newGraph GraphFactory, seed *common.SeededRNG) *AudioManager {
	if seed == nil {
		seed = common.NewSeededRNG(1)
	}
	return &AudioManager{
		volume:   AudioConfig.MasterVolume,
		newGraph: newGraph,
		rng:      seed,
	}
}

// ensureGraph creates the host graph and master gain on first use and
// reports whether sound can be produced. Once a factory has failed the
// manager stays silent instead of retrying on every effect.
func (am *AudioManager) ensureGraph() bool {
	if am.graph != nil {
		am.resumeIfSuspended()
		return true
	}
	if am.unavailable || am.newGraph == nil {
		am.unavailable = true
		return false
	}

	g := am.newGraph()
	if g == nil {
		am.unavailable = true
		return false
	}

	am.graph = g
	am.master = g.CreateGain()
	am.master.Gain().Set(am.volume)
	am.master.Connect(g.Destination())
	am.resumeIfSuspended()
	return true
}

// resumeIfSuspended nudges the graph whenever the host has parked it.
// Browsers suspend fresh contexts until a user gesture, so effects are
// the natural place to retry.
func (am *AudioManager) resumeIfSuspended() {
	if am.graph.State() == StateSuspended {
		am.graph.Resume()
	}
}

// IsMuted reports whether effects are muted.
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// SetMuted sets the mute state. An existing master gain is eased toward
// the target level rather than assigned, so toggling never clicks. Tones
// already in flight decay under the same ramp. Muting alone never creates
// a graph.
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if am.master == nil {
		return
	}
	target := 0.0
	if !muted {
		target = am.volume
	}
	am.master.Gain().SetTarget(target, am.graph.CurrentTime(), AudioConfig.MuteRamp)
}

// ToggleMute flips the mute state and returns the new value.
func (am *AudioManager) ToggleMute() bool {
	am.SetMuted(!am.muted)
	return am.muted
}

// SetVolume sets the master volume (0.0 to 1.0). The new level takes
// effect immediately unless muted, in which case it becomes the unmute
// target.
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
	if am.master == nil || am.muted {
		return
	}
	am.master.Gain().SetTarget(volume, am.graph.CurrentTime(), AudioConfig.MuteRamp)
}

// Volume returns the master volume.
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// PlayRotate plays the piece-rotation blip: one short triangle voice with
// a small upward glide. Pitch rises with level.
func (am *AudioManager) PlayRotate(level int) {
	if am.muted || !am.ensureGraph() {
		return
	}
	now := am.graph.CurrentTime()
	freq := AudioConfig.RotateFreq * levelScale(level)
	am.playTone(toneSpec{
		wave:  WaveTriangle,
		freq:  freq,
		glide: freq * AudioConfig.RotateGlide,
		at:    now,
		dur:   AudioConfig.RotateDur,
		peak:  AudioConfig.RotateGain,
	})
}

// PlayHardDrop plays the piece-landing thump: a sine voice gliding down to
// its floor frequency, layered with a lowpass-filtered noise burst for the
// impact.
func (am *AudioManager) PlayHardDrop(level int) {
	if am.muted || !am.ensureGraph() {
		return
	}
	now := am.graph.CurrentTime()
	am.playTone(toneSpec{
		wave:  WaveSine,
		freq:  AudioConfig.DropFreq * levelScale(level),
		glide: AudioConfig.DropFloorFreq,
		at:    now,
		dur:   AudioConfig.DropDur,
		peak:  AudioConfig.DropGain,
	})
	am.playNoise(now, AudioConfig.DropNoiseDur, AudioConfig.DropNoiseCutoff, AudioConfig.DropNoiseGain)
}

// PlayLineClear plays one ascending square-wave step per cleared line,
// walking up a major chord. Counts outside 1..4 are clamped, so a spurious
// zero still blips once and anything past a quad sounds like a quad.
func (am *AudioManager) PlayLineClear(lines, level int) {
	if am.muted || !am.ensureGraph() {
		return
	}
	voices := lines
	if voices < 1 {
		voices = 1
	}
	if voices > len(majorArpRatios) {
		voices = len(majorArpRatios)
	}

	now := am.graph.CurrentTime()
	root := AudioConfig.ClearFreq * levelScale(level)
	for i := 0; i < voices; i++ {
		am.playTone(toneSpec{
			wave: WaveSquare,
			freq: am.detuned(root * majorArpRatios[i]),
			at:   now + float64(i)*AudioConfig.ClearStep,
			dur:  AudioConfig.ClearNoteDur,
			peak: AudioConfig.ClearGain,
		})
	}
}

// PlayCombo67 plays the big-combo fanfare: a rising sawtooth sweep under a
// fast four-note arpeggio an octave up, anchored by a bass tone. Six voices
// in all.
func (am *AudioManager) PlayCombo67(level int) {
	if am.muted || !am.ensureGraph() {
		return
	}
	now := am.graph.CurrentTime()
	root := AudioConfig.ComboFreq * levelScale(level)

	// Rising sweep from below the root up past it
	am.playTone(toneSpec{
		wave:  WaveSawtooth,
		freq:  root / 2,
		glide: root * AudioConfig.ComboSweepTop,
		at:    now,
		dur:   AudioConfig.ComboSweepDur,
		peak:  AudioConfig.ComboGain,
	})

	// Double-time arpeggio an octave above the root
	for i, ratio := range majorArpRatios {
		am.playTone(toneSpec{
			wave: WaveSquare,
			freq: am.detuned(root * 2 * ratio),
			at:   now + float64(i)*AudioConfig.ComboStep,
			dur:  AudioConfig.ComboNoteDur,
			peak: AudioConfig.ComboGain,
		})
	}

	// Bass anchor below it all
	am.playTone(toneSpec{
		wave: WaveSine,
		freq: root / 4,
		at:   now,
		dur:  AudioConfig.ComboBassDur,
		peak: AudioConfig.ComboBassGain,
	})
}

// PlayLevelUp plays the five-note triangle flourish, the major arpeggio
// extended to the tenth. Always exactly five voices.
func (am *AudioManager) PlayLevelUp(level int) {
	if am.muted || !am.ensureGraph() {
		return
	}
	now := am.graph.CurrentTime()
	root := AudioConfig.LevelUpFreq * levelScale(level)
	for i, ratio := range flourishRatios {
		am.playTone(toneSpec{
			wave: WaveTriangle,
			freq: am.detuned(root * ratio),
			at:   now + float64(i)*AudioConfig.LevelUpStep,
			dur:  AudioConfig.LevelUpNoteDur,
			peak: AudioConfig.LevelUpGain,
		})
	}
}

// PlayGameOver plays the descending six-note square melody with a long
// sine bass underneath. Seven voices, independent of level.
func (am *AudioManager) PlayGameOver() {
	if am.muted || !am.ensureGraph() {
		return
	}
	now := am.graph.CurrentTime()
	for i, freq := range gameOverMelody {
		am.playTone(toneSpec{
			wave: WaveSquare,
			freq: freq,
			at:   now + float64(i)*AudioConfig.GameOverStep,
			dur:  AudioConfig.GameOverNoteDur,
			peak: AudioConfig.GameOverGain,
		})
	}
	am.playTone(toneSpec{
		wave: WaveSine,
		freq: gameOverBassFreq,
		at:   now,
		dur:  AudioConfig.GameOverBassDur,
		peak: AudioConfig.GameOverBassGain,
	})
}

// toneSpec describes a single scheduled voice: a waveform at a frequency,
// an optional glide target, and an attack/decay gain envelope.
type toneSpec struct {
	wave  Waveform
	freq  float64
	glide float64 // exponential glide target; 0 keeps the pitch fixed
	at    float64 // start time on the graph clock
	dur   float64
	peak  float64
}

// Attack length shared by every envelope. Starting a voice at full gain
// clicks, so the peak is reached over a few milliseconds.
const attackTime = 0.008

// playTone schedules one oscillator voice through its own envelope gain
// into the master bus.
func (am *AudioManager) playTone(t toneSpec) {
	osc := am.graph.CreateOscillator()
	osc.SetWave(t.wave)
	osc.Frequency().SetAt(t.freq, t.at)
	if t.glide > 0 {
		osc.Frequency().ExpRampTo(t.glide, t.at+t.dur)
	}

	env := am.graph.CreateGain()
	env.Gain().SetAt(envelopeFloor, t.at)
	env.Gain().LinearRampTo(t.peak, t.at+attackTime)
	env.Gain().ExpRampTo(envelopeFloor, t.at+t.dur)

	osc.Connect(env)
	env.Connect(am.master)
	osc.Start(t.at)
	osc.Stop(t.at + t.dur + stopSlack)
}

// playNoise schedules a short filtered noise burst, the percussive layer
// under the hard-drop thump. The buffer is filled from the seeded RNG so
// renders are reproducible.
func (am *AudioManager) playNoise(at, dur, cutoff, peak float64) {
	frames := int(dur * am.graph.SampleRate())
	if frames < 1 {
		frames = 1
	}
	buf := am.graph.CreateBuffer(frames)
	data := make([]float64, frames)
	for i := range data {
		data[i] = am.rng.RandomFloat(-1, 1)
	}
	buf.SetData(data)

	src := am.graph.CreateBufferSource()
	src.SetBuffer(buf)

	filter := am.graph.CreateFilter()
	filter.SetShape(FilterLowpass)
	filter.Frequency().Set(cutoff)

	env := am.graph.CreateGain()
	env.Gain().SetAt(peak, at)
	env.Gain().ExpRampTo(envelopeFloor, at+dur)

	src.Connect(filter)
	filter.Connect(env)
	env.Connect(am.master)
	src.Start(at)
}

// detuned nudges a frequency by a small seeded offset for analog feel.
func (am *AudioManager) detuned(freq float64) float64 {
	return freq * (1 + (am.rng.Random()-0.5)*AudioConfig.Detune)
}

// levelScale converts a 1-based level into a frequency multiplier. Levels
// below 1 count as 1 and the scale tops out at MaxLevel, so hostile input
// can neither drop the pitch nor push it ultrasonic.
func levelScale(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > AudioConfig.MaxLevel {
		level = AudioConfig.MaxLevel
	}
	return 1 + AudioConfig.LevelStep*float64(level-1)
}
