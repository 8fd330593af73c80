package audio

// Graph is the host audio graph the sound engine schedules effects on. In
// the browser it wraps a Web Audio AudioContext; natively it is backed by
// the oto mixer, and tests substitute their own recording implementation.
type Graph interface {
	// CurrentTime returns the graph clock in seconds. All scheduling is
	// expressed in absolute times on this clock.
	CurrentTime() float64
	// SampleRate returns the output sample rate in Hz.
	SampleRate() float64
	// State reports the transport state, StateRunning or StateSuspended.
	State() string
	// Resume asks a suspended graph to start processing. Browsers suspend
	// fresh contexts until a user gesture, so this is called before every
	// effect rather than once at startup.
	Resume()
	// Destination returns the terminal output node.
	Destination() Node

	CreateGain() Gain
	CreateOscillator() Oscillator
	CreateBufferSource() BufferSource
	CreateFilter() Filter
	CreateBuffer(frames int) Buffer
}

// Transport states reported by Graph.State.
const (
	StateRunning   = "running"
	StateSuspended = "suspended"
)

// GraphFactory produces the Graph an AudioManager plays through. It is
// invoked lazily on the first sound-producing call, never at construction.
// A factory returning nil leaves the manager permanently silent.
type GraphFactory func() Graph

// Node is any audio node that can be routed somewhere.
type Node interface {
	Connect(dst Node)
}

// Param is an automatable value such as a gain level or a frequency.
// Ramp targets are absolute times on the graph clock.
type Param interface {
	// Set assigns the value immediately.
	Set(value float64)
	// SetAt assigns the value at time at.
	SetAt(value, at float64)
	// LinearRampTo ramps linearly from the previous event to value at time at.
	LinearRampTo(value, at float64)
	// ExpRampTo ramps exponentially to value at time at. Endpoints must be
	// positive; envelopes decay toward a small floor instead of zero.
	ExpRampTo(value, at float64)
	// SetTarget eases toward value starting at time at with the given time
	// constant. Used for mute transitions, where a hard step would click.
	SetTarget(value, at, timeConstant float64)
}

// Gain scales the signal passing through it.
type Gain interface {
	Node
	Gain() Param
}

// Oscillator is a periodic tone source, one per scheduled voice.
type Oscillator interface {
	Node
	SetWave(w Waveform)
	Frequency() Param
	Start(at float64)
	Stop(at float64)
}

// BufferSource plays a pre-filled sample buffer once, used for noise bursts.
type BufferSource interface {
	Node
	SetBuffer(b Buffer)
	Start(at float64)
}

// Filter shapes the spectrum of whatever runs through it.
type Filter interface {
	Node
	SetShape(s FilterShape)
	Frequency() Param
	Q() Param
}

// Buffer holds mono sample data for a BufferSource.
type Buffer interface {
	Frames() int
	SetData(samples []float64)
}

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// String returns the Web Audio name of the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "sine"
	}
}

// FilterShape selects a biquad filter response.
type FilterShape int

const (
	FilterLowpass FilterShape = iota
	FilterHighpass
	FilterBandpass
)

// String returns the Web Audio name of the filter response.
func (f FilterShape) String() string {
	switch f {
	case FilterHighpass:
		return "highpass"
	case FilterBandpass:
		return "bandpass"
	default:
		return "lowpass"
	}
}
