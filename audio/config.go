package audio

type Config struct {
	// Master settings
	MasterVolume float64 // 0.0 - 1.0, ramp target when unmuted
	MuteRamp     float64 // Time constant for mute/volume eases (seconds)
	LevelStep    float64 // Pitch increase per level above 1 (fraction)
	MaxLevel     int     // Level clamp for pitch scaling
	Detune       float64 // Max random detune on melodic voices (fraction)

	// Rotation blip settings
	RotateFreq  float64 // Base frequency at level 1 (Hz)
	RotateGlide float64 // Upward glide multiplier over the blip
	RotateDur   float64 // Blip length in seconds
	RotateGain  float64 // Peak envelope gain

	// Hard drop settings
	DropFreq        float64 // Thump start frequency (Hz)
	DropFloorFreq   float64 // Thump glide-down target (Hz)
	DropDur         float64 // Thump length in seconds
	DropGain        float64 // Thump peak gain
	DropNoiseDur    float64 // Impact noise burst length in seconds
	DropNoiseCutoff float64 // Lowpass cutoff over the noise burst (Hz)
	DropNoiseGain   float64 // Noise burst peak gain

	// Line clear settings
	ClearFreq    float64 // Arpeggio root at level 1 (Hz)
	ClearStep    float64 // Onset stagger between voices (seconds)
	ClearNoteDur float64 // Per-voice length in seconds
	ClearGain    float64 // Per-voice peak gain

	// Combo fanfare settings
	ComboFreq     float64 // Fanfare root at level 1 (Hz)
	ComboSweepDur float64 // Rising sweep length in seconds
	ComboSweepTop float64 // Sweep end multiplier over the root
	ComboStep     float64 // Arpeggio onset stagger (seconds)
	ComboNoteDur  float64 // Arpeggio per-note length in seconds
	ComboGain     float64 // Arpeggio peak gain
	ComboBassDur  float64 // Bass anchor length in seconds
	ComboBassGain float64 // Bass anchor peak gain

	// Level up settings
	LevelUpFreq    float64 // Flourish root at level 1 (Hz)
	LevelUpStep    float64 // Onset stagger between notes (seconds)
	LevelUpNoteDur float64 // Per-note length in seconds
	LevelUpGain    float64 // Per-note peak gain

	// Game over settings
	GameOverStep     float64 // Onset stagger down the melody (seconds)
	GameOverNoteDur  float64 // Melody note length in seconds
	GameOverGain     float64 // Melody peak gain
	GameOverBassDur  float64 // Closing bass length in seconds
	GameOverBassGain float64 // Closing bass peak gain
}
