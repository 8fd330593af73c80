//go:build !js
// +build !js

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/simukka/blockfall-13k/audio"
	"github.com/simukka/blockfall-13k/common"
)

const sampleRate = 44100

// Native preview tool: plays every effect through the default output, or
// renders them to WAV files for inspection. The browser build exposes the
// same engine as window.BlockfallAudio instead.
func main() {
	var (
		event  = flag.String("event", "", "play a single effect; empty plays them all ("+strings.Join(audio.EffectIDs, ", ")+")")
		level  = flag.Int("level", 5, "level used for pitch scaling")
		outDir = flag.String("render", "", "render WAV files into this directory instead of playing")
		seed   = flag.Uint("seed", 1, "noise seed, equal seeds render identical audio")
	)
	flag.Parse()

	ids := audio.EffectIDs
	if *event != "" {
		if !validEffect(*event) {
			log.Fatalf("unknown effect %q, have: %s", *event, strings.Join(audio.EffectIDs, ", "))
		}
		ids = []string{*event}
	}

	if *outDir != "" {
		renderAll(ids, *level, uint32(*seed), *outDir)
		return
	}
	playAll(ids, *level, uint32(*seed))
}

func validEffect(id string) bool {
	for _, known := range audio.EffectIDs {
		if known == id {
			return true
		}
	}
	return false
}

// renderAll writes one WAV per effect into dir.
func renderAll(ids []string, level int, seed uint32, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, id := range ids {
		samples := audio.RenderEffect(sampleRate, seed, func(am *audio.AudioManager) {
			audio.ScheduleEffect(am, id, level)
		})

		path := filepath.Join(dir, id+".wav")
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := audio.WriteWAV(f, samples, sampleRate); err != nil {
			f.Close()
			log.Fatalf("rendering %s: %v", id, err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%.2fs)", path, float64(len(samples))/sampleRate)
	}
}

// playAll plays each effect through the default device with a gap between
// them.
func playAll(ids []string, level int, seed uint32) {
	am := audio.NewAudioManager(common.NewSeededRNG(seed))
	for _, id := range ids {
		log.Printf("playing %s at level %d", id, level)
		audio.ScheduleEffect(am, id, level)
		time.Sleep(1200 * time.Millisecond)
	}
	// Let the last tail ring out before exiting
	time.Sleep(1500 * time.Millisecond)
}
