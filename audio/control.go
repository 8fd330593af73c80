//go:build js
// +build js

package audio

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/gopherjs/gopherjs/js"
)

// ControlPanelData holds the data needed to render the panel template.
type ControlPanelData struct {
	Effects []EffectButton
}

// EffectButton is one audition row in the panel.
type EffectButton struct {
	ID    string
	Label string
}

var effectLabels = map[string]string{
	"rotate":   "Rotate",
	"harddrop": "Hard Drop",
	"line1":    "Single",
	"line2":    "Double",
	"line3":    "Triple",
	"line4":    "Quad",
	"combo67":  "Combo 6-7",
	"levelup":  "Level Up",
	"gameover": "Game Over",
}

//go:embed control.gohtml
var controlHtml string

// Seed used when exporting WAVs from the panel, so downloads are
// reproducible across sessions.
const exportSeed = 0xB10C

// ControlPanel is the in-page audition overlay: a play and a WAV-export
// button per effect, plus level, volume and mute controls. Development
// pages attach it; the game itself never does.
type ControlPanel struct {
	am    *AudioManager
	panel *js.Object
}

// InitControlPanel builds the panel, hidden, and binds F8 to toggle it.
func InitControlPanel(am *AudioManager) *ControlPanel {
	cp := &ControlPanel{am: am}
	doc := js.Global.Get("document")

	panel := doc.Call("createElement", "div")
	panel.Set("id", "audio-control-panel")
	panel.Get("style").Set("cssText", `
		position: fixed;
		top: 50%;
		left: 50%;
		transform: translate(-50%, -50%);
		background: rgba(16, 16, 24, 0.95);
		border: 2px solid #4a9eff;
		border-radius: 8px;
		padding: 20px;
		color: #fff;
		font-family: 'Courier New', monospace;
		font-size: 12px;
		z-index: 10000;
		display: none;
		max-height: 80vh;
		overflow-y: auto;
		min-width: 320px;
		box-shadow: 0 0 30px rgba(74, 158, 255, 0.3);
	`)
	panel.Set("innerHTML", cp.buildPanelHTML())

	doc.Get("body").Call("appendChild", panel)
	cp.panel = panel

	doc.Call("addEventListener", "keydown", func(e *js.Object) {
		if e.Get("key").String() == "F8" {
			e.Call("preventDefault")
			cp.toggle()
		}
	})

	cp.attachHandlers()
	return cp
}

// buildPanelHTML renders the embedded template.
func (cp *ControlPanel) buildPanelHTML() string {
	data := ControlPanelData{Effects: make([]EffectButton, 0, len(EffectIDs))}
	for _, id := range EffectIDs {
		data.Effects = append(data.Effects, EffectButton{ID: id, Label: effectLabels[id]})
	}

	tmpl, err := template.New("controlPanel").Parse(controlHtml)
	if err != nil {
		return "<div style='color:red'>Template error: " + err.Error() + "</div>"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "<div style='color:red'>Execute error: " + err.Error() + "</div>"
	}
	return buf.String()
}

// attachHandlers connects the panel controls after it is in the DOM.
func (cp *ControlPanel) attachHandlers() {
	doc := js.Global.Get("document")

	closeBtn := doc.Call("getElementById", "audio-panel-close")
	if closeBtn != nil && closeBtn != js.Undefined {
		closeBtn.Call("addEventListener", "click", func() {
			cp.hide()
		})
	}

	levelSlider := doc.Call("getElementById", "ctrl-level")
	levelVal := doc.Call("getElementById", "ctrl-level-val")
	if levelSlider != nil && levelSlider != js.Undefined {
		levelSlider.Call("addEventListener", "input", func(e *js.Object) {
			if levelVal != nil && levelVal != js.Undefined {
				levelVal.Set("textContent", e.Get("target").Get("value").String())
			}
		})
	}

	volSlider := doc.Call("getElementById", "ctrl-master-vol")
	volVal := doc.Call("getElementById", "ctrl-master-vol-val")
	if volSlider != nil && volSlider != js.Undefined {
		volSlider.Call("addEventListener", "input", func(e *js.Object) {
			v := e.Get("target").Get("value").Float()
			if volVal != nil && volVal != js.Undefined {
				volVal.Set("textContent", js.Global.Get("Math").Call("round", v).String()+"%")
			}
			cp.am.SetVolume(v / 100)
		})
	}

	muteBox := doc.Call("getElementById", "ctrl-mute")
	if muteBox != nil && muteBox != js.Undefined {
		muteBox.Call("addEventListener", "change", func(e *js.Object) {
			cp.am.SetMuted(e.Get("target").Get("checked").Bool())
		})
	}

	playBtns := doc.Call("querySelectorAll", ".sfx-play-btn")
	for i := 0; i < playBtns.Length(); i++ {
		btn := playBtns.Index(i)
		btn.Call("addEventListener", "click", func(e *js.Object) {
			id := e.Get("currentTarget").Call("getAttribute", "data-id").String()
			ScheduleEffect(cp.am, id, cp.currentLevel())
		})
	}

	saveBtns := doc.Call("querySelectorAll", ".sfx-save-btn")
	for i := 0; i < saveBtns.Length(); i++ {
		btn := saveBtns.Index(i)
		btn.Call("addEventListener", "click", func(e *js.Object) {
			id := e.Get("currentTarget").Call("getAttribute", "data-id").String()
			cp.exportEffect(id)
		})
	}
}

// currentLevel reads the panel's level slider.
func (cp *ControlPanel) currentLevel() int {
	slider := js.Global.Get("document").Call("getElementById", "ctrl-level")
	if slider == nil || slider == js.Undefined {
		return 1
	}
	return int(js.Global.Call("parseInt", slider.Get("value").String()).Int())
}

// exportEffect renders the effect offline and triggers a WAV download.
func (cp *ControlPanel) exportEffect(id string) {
	level := cp.currentLevel()
	samples := RenderEffect(renderSampleRate, exportSeed, func(am *AudioManager) {
		ScheduleEffect(am, id, level)
	})
	url, err := WAVDataURL(samples, renderSampleRate)
	if err != nil {
		return
	}

	doc := js.Global.Get("document")
	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", id+".wav")
	doc.Get("body").Call("appendChild", a)
	a.Call("click")
	doc.Get("body").Call("removeChild", a)
}

// toggle shows or hides the panel.
func (cp *ControlPanel) toggle() {
	if cp.panel == nil {
		return
	}
	if cp.panel.Get("style").Get("display").String() == "none" {
		cp.panel.Get("style").Set("display", "block")
	} else {
		cp.panel.Get("style").Set("display", "none")
	}
}

// hide hides the panel.
func (cp *ControlPanel) hide() {
	if cp.panel != nil {
		cp.panel.Get("style").Set("display", "none")
	}
}
