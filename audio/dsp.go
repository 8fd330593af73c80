package audio

import (
	"math"
	"sync"
)

// This file is the software rendering core behind the non-browser graphs.
// It mirrors the Web Audio pieces the effect recipes touch: automatable
// parameters, the four classic oscillator shapes, buffer sources, a
// state-variable filter and gain stages, mixed voice-by-voice into mono
// samples.

type paramKind int

const (
	paramSetAt paramKind = iota
	paramLinear
	paramExp
	paramTarget
)

type paramEvent struct {
	kind  paramKind
	value float64
	at    float64
	tc    float64 // time constant, paramTarget only
}

// schedule is the Param implementation of the software graphs. Automation
// events are appended in nondecreasing time order, which is how the
// recipes schedule them; valueAt interprets the timeline the way Web
// Audio's AudioParam rules do.
type schedule struct {
	def    float64
	clock  func() float64
	mu     *sync.Mutex
	events []paramEvent
}

func (s *schedule) Set(value float64)          { s.SetAt(value, s.clock()) }
func (s *schedule) SetAt(value, at float64)    { s.add(paramEvent{paramSetAt, value, at, 0}) }
func (s *schedule) LinearRampTo(value, at float64) {
	s.add(paramEvent{paramLinear, value, at, 0})
}
func (s *schedule) ExpRampTo(value, at float64) { s.add(paramEvent{paramExp, value, at, 0}) }
func (s *schedule) SetTarget(value, at, timeConstant float64) {
	s.add(paramEvent{paramTarget, value, at, timeConstant})
}

func (s *schedule) add(e paramEvent) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// valueAt evaluates the timeline at time t. Render loops call this under
// the rig lock, so it takes none itself.
func (s *schedule) valueAt(t float64) float64 {
	v, at := s.def, 0.0
	var tgt paramEvent
	tgtActive := false

	for _, e := range s.events {
		if e.at > t {
			if tgtActive {
				return tgt.value + (v-tgt.value)*math.Exp(-(t-tgt.at)/tgt.tc)
			}
			switch e.kind {
			case paramLinear:
				if e.at <= at {
					return e.value
				}
				f := (t - at) / (e.at - at)
				return v + (e.value-v)*f
			case paramExp:
				if v <= 0 || e.value <= 0 || e.at <= at {
					return v
				}
				f := (t - at) / (e.at - at)
				return v * math.Pow(e.value/v, f)
			default:
				// A future step or target holds the current value
				return v
			}
		}

		if tgtActive {
			// The target curve ran until this event took over
			v = tgt.value + (v-tgt.value)*math.Exp(-(e.at-tgt.at)/tgt.tc)
			tgtActive = false
		}
		if e.kind == paramTarget {
			tgt = e
			tgtActive = true
		} else {
			v, at = e.value, e.at
		}
	}

	if tgtActive {
		return tgt.value + (v-tgt.value)*math.Exp(-(t-tgt.at)/tgt.tc)
	}
	return v
}

// dspRig is the shared core of the software graphs: sample clock, node
// factories and the live voice list. offlineGraph and playbackGraph embed
// it and supply their own transport.
type dspRig struct {
	sampleRate float64
	clock      func() float64

	mu     sync.Mutex
	voices []*dspVoice
	dest   *dspDestination
	end    float64 // latest scheduled voice end
}

func (r *dspRig) init(sampleRate float64, clock func() float64) {
	r.sampleRate = sampleRate
	r.clock = clock
	r.dest = &dspDestination{}
}

func (r *dspRig) SampleRate() float64 { return r.sampleRate }
func (r *dspRig) Destination() Node   { return r.dest }

func (r *dspRig) CreateGain() Gain {
	return &dspGain{dspNode: dspNode{rig: r}, gain: r.newParam(1)}
}

func (r *dspRig) CreateOscillator() Oscillator {
	return &dspOscillator{dspNode: dspNode{rig: r}, freq: r.newParam(440)}
}

func (r *dspRig) CreateBufferSource() BufferSource {
	return &dspBufferSource{dspNode: dspNode{rig: r}}
}

func (r *dspRig) CreateFilter() Filter {
	return &dspFilter{dspNode: dspNode{rig: r}, freq: r.newParam(350), q: r.newParam(1)}
}

func (r *dspRig) CreateBuffer(frames int) Buffer {
	return &dspBuffer{data: make([]float64, frames)}
}

func (r *dspRig) newParam(def float64) *schedule {
	return &schedule{def: def, clock: r.clock, mu: &r.mu}
}

func (r *dspRig) startVoice(src Node, start, stop float64) *dspVoice {
	v := &dspVoice{src: src, start: start, stop: stop}
	r.mu.Lock()
	r.voices = append(r.voices, v)
	if !math.IsInf(stop, 1) && stop > r.end {
		r.end = stop
	}
	r.mu.Unlock()
	return v
}

func (r *dspRig) stopVoice(v *dspVoice, at float64) {
	if v == nil {
		return
	}
	r.mu.Lock()
	v.stop = at
	if at > r.end {
		r.end = at
	}
	r.mu.Unlock()
}

// mixAt sums every live voice at time t and drops the finished ones.
// Callers hold the rig lock.
func (r *dspRig) mixAt(t, dt float64) float64 {
	var sum float64
	kept := r.voices[:0]
	for _, v := range r.voices {
		s, done := v.sample(t, dt)
		if done {
			continue
		}
		kept = append(kept, v)
		sum += s
	}
	r.voices = kept
	return sum
}

// dspNode carries the routing shared by every software node. Effect chains
// are straight lines (source, optional filter, envelope, master bus), so a
// single outgoing edge suffices.
type dspNode struct {
	rig *dspRig
	out Node
}

func (n *dspNode) Connect(dst Node) {
	n.rig.mu.Lock()
	n.out = dst
	n.rig.mu.Unlock()
}

// dspDestination terminates every chain.
type dspDestination struct{}

func (*dspDestination) Connect(Node) {}

type dspGain struct {
	dspNode
	gain *schedule
}

func (g *dspGain) Gain() Param { return g.gain }

// dspOscillator renders one of the four classic shapes, reading its
// frequency from the automation timeline every sample so glides track
// exactly.
type dspOscillator struct {
	dspNode
	wave  Waveform
	freq  *schedule
	phase float64 // normalized, [0, 1)
	voice *dspVoice
}

func (o *dspOscillator) SetWave(w Waveform) { o.wave = w }
func (o *dspOscillator) Frequency() Param   { return o.freq }

func (o *dspOscillator) Start(at float64) {
	if o.voice != nil {
		return
	}
	o.voice = o.rig.startVoice(o, at, math.Inf(1))
}

func (o *dspOscillator) Stop(at float64) {
	o.rig.stopVoice(o.voice, at)
}

type dspBufferSource struct {
	dspNode
	buf *dspBuffer
}

func (b *dspBufferSource) SetBuffer(buf Buffer) {
	if d, ok := buf.(*dspBuffer); ok {
		b.buf = d
	}
}

func (b *dspBufferSource) Start(at float64) {
	if b.buf == nil {
		return
	}
	dur := float64(len(b.buf.data)) / b.rig.sampleRate
	b.rig.startVoice(b, at, at+dur)
}

type dspBuffer struct {
	data []float64
}

func (b *dspBuffer) Frames() int { return len(b.data) }

func (b *dspBuffer) SetData(samples []float64) {
	copy(b.data, samples)
}

// dspFilter is a Chamberlin state-variable filter, the same
// integrator-with-damping construction the classic sfxr synths use, with
// cutoff and resonance automatable. One filter serves one voice, so the
// integrator state never mixes signals.
type dspFilter struct {
	dspNode
	shape FilterShape
	freq  *schedule
	q     *schedule

	low, band float64
	coefFreq  float64
	coefQ     float64
	f, damp   float64
}

func (fl *dspFilter) SetShape(s FilterShape) { fl.shape = s }
func (fl *dspFilter) Frequency() Param       { return fl.freq }
func (fl *dspFilter) Q() Param               { return fl.q }

func (fl *dspFilter) process(x, t float64) float64 {
	fc := fl.freq.valueAt(t)
	q := fl.q.valueAt(t)
	if fc != fl.coefFreq || q != fl.coefQ || fl.f == 0 {
		fl.configure(fc, q)
	}

	fl.low += fl.f * fl.band
	high := x - fl.low - fl.damp*fl.band
	fl.band += fl.f * high

	switch fl.shape {
	case FilterHighpass:
		return high
	case FilterBandpass:
		return fl.band
	default:
		return fl.low
	}
}

func (fl *dspFilter) configure(fc, q float64) {
	fl.f = 2 * math.Sin(math.Pi*fc/fl.rig.sampleRate)
	if fl.f > 1 {
		fl.f = 1 // keeps the integrators stable at high cutoffs
	}
	if q < 0.5 {
		q = 0.5
	}
	fl.damp = 1 / q
	fl.coefFreq, fl.coefQ = fc, q
}

// dspVoice is one sounding source and its position in time.
type dspVoice struct {
	src   Node
	start float64
	stop  float64
}

// sample renders the voice at absolute time t and walks its chain toward
// the destination. The second result reports the voice has finished.
func (v *dspVoice) sample(t, dt float64) (float64, bool) {
	if t < v.start {
		return 0, false
	}
	if t >= v.stop {
		return 0, true
	}

	var x float64
	var next Node
	switch src := v.src.(type) {
	case *dspOscillator:
		src.phase += src.freq.valueAt(t) * dt
		for src.phase >= 1 {
			src.phase--
		}
		x = waveSample(src.wave, src.phase)
		next = src.out
	case *dspBufferSource:
		idx := int((t - v.start) * src.rig.sampleRate)
		if idx < 0 || idx >= len(src.buf.data) {
			return 0, true
		}
		x = src.buf.data[idx]
		next = src.out
	default:
		return 0, true
	}

	for {
		switch n := next.(type) {
		case *dspGain:
			x *= n.gain.valueAt(t)
			next = n.out
		case *dspFilter:
			x = n.process(x, t)
			next = n.out
		case *dspDestination:
			return x, false
		default:
			// Chains that never reach the destination produce nothing
			return 0, false
		}
	}
}

// waveSample evaluates a waveform at a normalized phase in [0, 1).
func waveSample(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
