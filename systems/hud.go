package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a font source; the HUD uses a bitmap face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

const (
	healthBarWidth  = 400
	healthBarHeight = 30
	healthBarMargin = 32
	healthBarTop    = 24
	borderPad       = 2

	// revealSeconds is how long the red damage layer takes to catch up
	// with the health bar after a hit.
	revealSeconds = 0.6
)

var (
	barBorderColor = color.RGBA{255, 255, 255, 255}
	barRevealColor = color.RGBA{200, 40, 40, 255}
	barFillColor   = color.RGBA{128, 140, 251, 255}
	hudTextColor   = color.RGBA{255, 255, 255, 255}
	overlayColor   = color.RGBA{13, 13, 13, 230}
)

type barState struct {
	health int
	// reveal is the health still shown by the trailing damage layer; it
	// eases down toward health after each hit.
	reveal float32
	tween  *gween.Tween
}

// HUD renders both health bars and the countdown clock, and keeps the
// damage-reveal easing state between ticks.
type HUD struct {
	bars [cfg.PlayerCount]barState
}

func NewHUD() *HUD {
	h := &HUD{}
	for i := range h.bars {
		h.bars[i] = barState{health: cfg.MaxHealth, reveal: cfg.MaxHealth}
	}
	return h
}

// Update consumes this tick's health events and advances the reveal tweens.
func (h *HUD) Update(w *components.World) {
	for _, hu := range w.Outbox.Health {
		b := &h.bars[hu.Player]
		b.health = hu.Health
		b.tween = gween.New(b.reveal, float32(hu.Health), revealSeconds, ease.OutQuad)
	}

	dt := float32(1) / float32(cfg.Match.TicksPerSecond)
	for i := range h.bars {
		b := &h.bars[i]
		if b.tween == nil {
			continue
		}
		value, finished := b.tween.Update(dt)
		b.reveal = value
		if finished {
			b.tween = nil
		}
	}
}

// Draw renders the health bars and the countdown readout.
func (h *HUD) Draw(w *components.World, screen *ebiten.Image) {
	h.drawBar(screen, cfg.PlayerOne, healthBarMargin)
	h.drawBar(screen, cfg.PlayerTwo, float32(cfg.C.Width)-healthBarMargin-healthBarWidth)
	drawCountdown(screen, &w.Match)
}

// drawBar draws one mirrored health bar: white border, red damage-reveal
// layer, then the solid fill. Player one's bar depletes from its left edge
// toward the center of the screen, player two's from its right edge.
func (h *HUD) drawBar(screen *ebiten.Image, player cfg.PlayerID, x float32) {
	b := &h.bars[player]

	vector.DrawFilledRect(screen,
		x-borderPad, healthBarTop-borderPad,
		healthBarWidth+2*borderPad, healthBarHeight+2*borderPad,
		barBorderColor, false)

	revealW := healthBarWidth * b.reveal / cfg.MaxHealth
	fillW := float32(healthBarWidth) * float32(b.health) / cfg.MaxHealth

	if player == cfg.PlayerOne {
		// Anchored to the right edge.
		vector.DrawFilledRect(screen,
			x+healthBarWidth-revealW, healthBarTop,
			revealW, healthBarHeight, barRevealColor, false)
		vector.DrawFilledRect(screen,
			x+healthBarWidth-fillW, healthBarTop,
			fillW, healthBarHeight, barFillColor, false)
	} else {
		// Anchored to the left edge.
		vector.DrawFilledRect(screen,
			x, healthBarTop,
			revealW, healthBarHeight, barRevealColor, false)
		vector.DrawFilledRect(screen,
			x, healthBarTop,
			fillW, healthBarHeight, barFillColor, false)
	}
}

func drawCountdown(screen *ebiten.Image, m *components.MatchData) {
	boxW := float32(95)
	boxH := float32(40)
	boxX := float32(cfg.C.Width)/2 - boxW/2
	boxY := float32(healthBarTop) - borderPad

	vector.DrawFilledRect(screen, boxX-borderPad, boxY-borderPad,
		boxW+2*borderPad, boxH+2*borderPad, barBorderColor, false)
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH,
		color.RGBA{60, 60, 60, 255}, false)

	drawCenteredText(screen, fmt.Sprintf("%d", m.CountdownRemaining),
		cfg.C.Width/2, int(boxY)+26)
}

// DrawResults overlays the match outcome once the match has finished. The
// fight keeps simulating underneath so the death pose plays out.
func DrawResults(w *components.World, screen *ebiten.Image) {
	if w.Match.State != cfg.MatchStateFinished {
		return
	}

	centerX := cfg.C.Width / 2
	centerY := cfg.C.Height / 2

	vector.DrawFilledRect(screen,
		float32(centerX-220), float32(centerY-60),
		440, 120, overlayColor, false)

	var msg string
	switch w.Match.WinnerIndex {
	case int(cfg.PlayerOne):
		msg = "PLAYER 1 WINS"
	case int(cfg.PlayerTwo):
		msg = "PLAYER 2 WINS"
	default:
		msg = "DRAW"
	}

	drawCenteredText(screen, msg, centerX, centerY-10)
	drawCenteredText(screen, "PRESS ENTER TO CONTINUE", centerX, centerY+30)
}

func drawCenteredText(screen *ebiten.Image, msg string, centerX, baselineY int) {
	face := basicfont.Face7x13
	width := len(msg) * face.Advance
	text.Draw(screen, msg, face, centerX-width/2, baselineY, hudTextColor)
}
