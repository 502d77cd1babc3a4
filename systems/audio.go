package systems

import "github.com/oakwoods/fighter/components"

// SFXSink receives the sound events produced during a tick. The shell can
// install a real player; without one the events are discarded. Decoding
// and playback live outside this module.
type SFXSink interface {
	Play(components.SoundEvent)
}

var sfxSink SFXSink

// SetSFXSink installs the sound-effect boundary.
func SetSFXSink(s SFXSink) {
	sfxSink = s
}

// UpdateAudio drains this tick's sound events into the installed sink.
func UpdateAudio(w *components.World) {
	if sfxSink == nil {
		return
	}
	for _, ev := range w.Outbox.Sounds {
		sfxSink.Play(ev)
	}
}
