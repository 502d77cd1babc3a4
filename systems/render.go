package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

var (
	skyColor   = color.RGBA{24, 20, 37, 255}
	floorColor = color.RGBA{62, 39, 49, 255}

	fighterColors = [cfg.PlayerCount]color.RGBA{
		{196, 36, 48, 255},
		{44, 78, 203, 255},
	}
	attackColors = [cfg.PlayerCount]color.RGBA{
		{240, 212, 58, 200},
		{58, 212, 240, 200},
	}
	outlineColor = color.RGBA{255, 255, 255, 160}
)

// DrawArena fills the background and the floor band.
func DrawArena(screen *ebiten.Image) {
	screen.Fill(skyColor)
	floorTop := screenY(cfg.C.FloorY)
	vector.DrawFilledRect(screen,
		0, floorTop,
		float32(cfg.C.Width), float32(cfg.C.Height)-floorTop,
		floorColor, false)
}

// DrawFighters renders each fighter's body from its hurtbox extents. While
// a fighter is attacking, the attackbox is shown as a strike that fills in
// on the connect frame; the rest of the swing it is a faint wind-up. This
// is the placeholder rendering for the sprite sheets, which the asset
// boundary supplies in the shipped game.
func DrawFighters(w *components.World, screen *ebiten.Image) {
	for i := range w.Fighters {
		f := &w.Fighters[i]

		body := fighterColors[f.Number]
		if f.CurrentState == cfg.TakingHit {
			body = color.RGBA{255, 255, 255, 255}
		}
		if f.CurrentState == cfg.Dying {
			body.A = 140
		}
		fillBox(screen, f.Hurtbox, body)

		if f.CurrentState == cfg.Attacking {
			strike := attackColors[f.Number]
			if f.Frame != cfg.Fighters[f.Number].ConnectFrame {
				strike.A = 60
			}
			fillBox(screen, f.Attackbox, strike)
		}
	}

	if cfg.Debug.DrawBoxes {
		drawDebugBoxes(w, screen)
	}
}

func drawDebugBoxes(w *components.World, screen *ebiten.Image) {
	for i := range w.Fighters {
		f := &w.Fighters[i]
		strokeBox(screen, f.Hurtbox)
		strokeBox(screen, f.Attackbox)
	}
}

func fillBox(screen *ebiten.Image, obj *resolv.Object, c color.RGBA) {
	x, y, w, h := boxOnScreen(obj)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func strokeBox(screen *ebiten.Image, obj *resolv.Object) {
	x, y, w, h := boxOnScreen(obj)
	vector.StrokeRect(screen, x, y, w, h, 1, outlineColor, false)
}

// boxOnScreen converts a box from world coordinates (y up, Y = bottom
// edge) to screen coordinates (y down, origin top-left).
func boxOnScreen(obj *resolv.Object) (x, y, w, h float32) {
	return float32(obj.X), screenY(obj.Y + obj.H), float32(obj.W), float32(obj.H)
}

func screenY(worldY float64) float32 {
	return float32(float64(cfg.C.Height) - worldY)
}
