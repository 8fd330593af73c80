package audio

var AudioConfig = Config{
	// Master settings
	MasterVolume: 1.0,
	MuteRamp:     0.02,
	LevelStep:    0.06,
	MaxLevel:     30,
	Detune:       0.008,

	// Rotation blip settings
	RotateFreq:  520,
	RotateGlide: 1.25,
	RotateDur:   0.07,
	RotateGain:  0.25,

	// Hard drop settings
	DropFreq:        160,
	DropFloorFreq:   55,
	DropDur:         0.16,
	DropGain:        0.5,
	DropNoiseDur:    0.09,
	DropNoiseCutoff: 900,
	DropNoiseGain:   0.3,

	// Line clear settings
	ClearFreq:    440,
	ClearStep:    0.055,
	ClearNoteDur: 0.14,
	ClearGain:    0.3,

	// Combo fanfare settings
	ComboFreq:     440,
	ComboSweepDur: 0.45,
	ComboSweepTop: 3.0,
	ComboStep:     0.07,
	ComboNoteDur:  0.12,
	ComboGain:     0.28,
	ComboBassDur:  0.5,
	ComboBassGain: 0.35,

	// Level up settings
	LevelUpFreq:    440,
	LevelUpStep:    0.09,
	LevelUpNoteDur: 0.18,
	LevelUpGain:    0.3,

	// Game over settings
	GameOverStep:     0.17,
	GameOverNoteDur:  0.32,
	GameOverGain:     0.3,
	GameOverBassDur:  1.1,
	GameOverBassGain: 0.4,
}

// Envelope and scheduling floors shared by every recipe. Exponential ramps
// reject zero endpoints, so envelopes decay to envelopeFloor and the voice
// is stopped a little after it becomes inaudible.
const (
	envelopeFloor = 0.001
	stopSlack     = 0.03
)

// majorArpRatios walks a major chord up to the octave: root, third, fifth,
// octave. Line clears play the first min(lines, 4) steps.
var majorArpRatios = [4]float64{1, 5.0 / 4, 3.0 / 2, 2}

// flourishRatios extends the arpeggio to the tenth for the five-note
// level-up run.
var flourishRatios = [5]float64{1, 5.0 / 4, 3.0 / 2, 2, 5.0 / 2}

// gameOverMelody descends E5 D5 C5 A4 G4 E4; a low A closes under it.
var gameOverMelody = [6]float64{659.26, 587.33, 523.25, 440.0, 392.0, 329.63}

const gameOverBassFreq = 110.0 // A2
