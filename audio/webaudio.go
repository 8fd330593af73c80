//go:build js
// +build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// defaultGraphFactory creates the browser graph.
func defaultGraphFactory() Graph {
	return NewWebAudioGraph()
}

// NewWebAudioGraph wraps a fresh Web Audio AudioContext, trying the
// prefixed constructor older WebKit builds expose. Returns nil when the
// page has no Web Audio at all.
func NewWebAudioGraph() Graph {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil
	}
	return &webGraph{ctx: ctor.New()}
}

type webGraph struct {
	ctx *js.Object
}

func (g *webGraph) CurrentTime() float64 { return g.ctx.Get("currentTime").Float() }
func (g *webGraph) SampleRate() float64  { return g.ctx.Get("sampleRate").Float() }
func (g *webGraph) State() string        { return g.ctx.Get("state").String() }
func (g *webGraph) Resume()              { g.ctx.Call("resume") }

func (g *webGraph) Destination() Node {
	return webNode{g.ctx.Get("destination")}
}

func (g *webGraph) CreateGain() Gain {
	return webGain{webNode{g.ctx.Call("createGain")}}
}

func (g *webGraph) CreateOscillator() Oscillator {
	return webOscillator{webNode{g.ctx.Call("createOscillator")}}
}

func (g *webGraph) CreateBufferSource() BufferSource {
	return webBufferSource{webNode{g.ctx.Call("createBufferSource")}}
}

func (g *webGraph) CreateFilter() Filter {
	return webFilter{webNode{g.ctx.Call("createBiquadFilter")}}
}

func (g *webGraph) CreateBuffer(frames int) Buffer {
	return webBuffer{g.ctx.Call("createBuffer", 1, frames, g.ctx.Get("sampleRate"))}
}

// webNode adapts a Web Audio node object. Connect unwraps the peer, so
// only webaudio nodes can be wired together.
type webNode struct {
	o *js.Object
}

func (n webNode) Connect(dst Node) {
	if d, ok := dst.(jsBacked); ok {
		n.o.Call("connect", d.jsObject())
	}
}

func (n webNode) jsObject() *js.Object { return n.o }

type jsBacked interface {
	jsObject() *js.Object
}

type webParam struct {
	o *js.Object
}

func (p webParam) Set(value float64) {
	p.o.Set("value", value)
}

func (p webParam) SetAt(value, at float64) {
	p.o.Call("setValueAtTime", value, at)
}

func (p webParam) LinearRampTo(value, at float64) {
	p.o.Call("linearRampToValueAtTime", value, at)
}

func (p webParam) ExpRampTo(value, at float64) {
	p.o.Call("exponentialRampToValueAtTime", value, at)
}

func (p webParam) SetTarget(value, at, timeConstant float64) {
	p.o.Call("setTargetAtTime", value, at, timeConstant)
}

type webGain struct {
	webNode
}

func (g webGain) Gain() Param { return webParam{g.o.Get("gain")} }

type webOscillator struct {
	webNode
}

func (o webOscillator) SetWave(w Waveform) { o.o.Set("type", w.String()) }
func (o webOscillator) Frequency() Param   { return webParam{o.o.Get("frequency")} }
func (o webOscillator) Start(at float64)   { o.o.Call("start", at) }
func (o webOscillator) Stop(at float64)    { o.o.Call("stop", at) }

type webBufferSource struct {
	webNode
}

func (b webBufferSource) SetBuffer(buf Buffer) {
	if w, ok := buf.(webBuffer); ok {
		b.o.Set("buffer", w.o)
	}
}

func (b webBufferSource) Start(at float64) { b.o.Call("start", at) }

type webFilter struct {
	webNode
}

func (f webFilter) SetShape(s FilterShape) { f.o.Set("type", s.String()) }
func (f webFilter) Frequency() Param       { return webParam{f.o.Get("frequency")} }
func (f webFilter) Q() Param               { return webParam{f.o.Get("Q")} }

type webBuffer struct {
	o *js.Object
}

func (b webBuffer) Frames() int { return b.o.Get("length").Int() }

func (b webBuffer) SetData(samples []float64) {
	ch := b.o.Call("getChannelData", 0)
	for i, s := range samples {
		ch.SetIndex(i, s)
	}
}
