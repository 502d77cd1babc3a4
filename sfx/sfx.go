package sfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/oakwoods/fighter/components"
)

const sampleRate = 44100

// Player turns sound events into short synthesized effects through a shared
// ebiten audio context. The effects are generated once at startup, so there
// are no audio assets to load.
type Player struct {
	ctx   *audio.Context
	swing [][]byte
}

// NewPlayer builds the audio context and pre-renders one swing sound per
// fighter. Player one's heavier sword gets the lower pitch.
func NewPlayer() *Player {
	return &Player{
		ctx: audio.NewContext(sampleRate),
		swing: [][]byte{
			renderSwing(320),
			renderSwing(480),
		},
	}
}

// Play fires the effect for one event and returns immediately.
func (p *Player) Play(ev components.SoundEvent) {
	var data []byte
	switch ev.Sound {
	case components.SoundSwing:
		data = p.swing[int(ev.Player)%len(p.swing)]
	default:
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}

// renderSwing renders a short whoosh: a sine sweep dropping from the base
// pitch, with a linear fade so it ends without a click. 16-bit stereo PCM,
// which is what the audio context consumes.
func renderSwing(baseHz float64) []byte {
	const dur = 0.12
	n := int(dur * sampleRate)
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := baseHz * (1 - 0.4*t)
		phase += 2 * math.Pi * hz / sampleRate

		v := math.Sin(phase) * (1 - t) * 0.25
		s := int16(v * math.MaxInt16)

		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}
