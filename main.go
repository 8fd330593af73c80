//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blockfall-13k/audio"
	"github.com/simukka/blockfall-13k/common"
)

func main() {
	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	am := audio.NewAudioManager(common.NewSeededRNG(seed))

	var panel *audio.ControlPanel

	// Expose the sound engine to the page. The game calls these from its
	// input and scoring handlers; nothing plays until the first call.
	js.Global.Set("BlockfallAudio", map[string]interface{}{
		"playRotate": func(level int) {
			am.PlayRotate(level)
		},
		"playHardDrop": func(level int) {
			am.PlayHardDrop(level)
		},
		"playLineClear": func(lines, level int) {
			am.PlayLineClear(lines, level)
		},
		"playCombo67": func(level int) {
			am.PlayCombo67(level)
		},
		"playLevelUp": func(level int) {
			am.PlayLevelUp(level)
		},
		"playGameOver": func() {
			am.PlayGameOver()
		},
		"isMuted": func() bool {
			return am.IsMuted()
		},
		"setMuted": func(muted bool) {
			am.SetMuted(muted)
		},
		"toggleMute": func() bool {
			return am.ToggleMute()
		},
		"setVolume": func(volume float64) {
			am.SetVolume(volume)
		},
		"getVolume": func() float64 {
			return am.Volume()
		},
		"openPanel": func() {
			if panel == nil {
				panel = audio.InitControlPanel(am)
			}
		},
	})

	select {}
}
