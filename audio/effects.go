package audio

// EffectIDs names every cue in trigger order, for tools that enumerate
// them: the audition panel and the native preview command.
var EffectIDs = []string{
	"rotate",
	"harddrop",
	"line1",
	"line2",
	"line3",
	"line4",
	"combo67",
	"levelup",
	"gameover",
}

// ScheduleEffect plays the named effect. Unknown names report false.
func ScheduleEffect(am *AudioManager, id string, level int) bool {
	switch id {
	case "rotate":
		am.PlayRotate(level)
	case "harddrop":
		am.PlayHardDrop(level)
	case "line1":
		am.PlayLineClear(1, level)
	case "line2":
		am.PlayLineClear(2, level)
	case "line3":
		am.PlayLineClear(3, level)
	case "line4":
		am.PlayLineClear(4, level)
	case "combo67":
		am.PlayCombo67(level)
	case "levelup":
		am.PlayLevelUp(level)
	case "gameover":
		am.PlayGameOver()
	default:
		return false
	}
	return true
}
