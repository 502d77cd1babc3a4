package scenes

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // bitmap face, no font source needed
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	cfg "github.com/oakwoods/fighter/config"
	"github.com/oakwoods/fighter/systems"
)

type menuOption int

const (
	menuFight menuOption = iota
	menuExit
	menuOptionCount
)

var menuLabels = [menuOptionCount]string{"FIGHT", "EXIT"}

var (
	menuBackground = color.RGBA{24, 20, 37, 255}
	menuText       = color.RGBA{255, 255, 255, 255}
	menuDimText    = color.RGBA{140, 140, 140, 255}
	menuCursor     = color.RGBA{240, 212, 58, 255}
)

// MenuScene is the keyboard-driven title menu. It also shows the career
// win tallies loaded from disk.
type MenuScene struct {
	sceneChanger SceneChanger
	selected     menuOption
	scores       [cfg.PlayerCount]int
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) configure() {
	ms.scores = systems.LoadScores()
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Navigate with wrap-around. Either fighter's jump key moves up and
	// attack key moves down, straight from the binding tables.
	if menuKeyJustPressed(cfg.ActionJump) {
		ms.move(-1)
	}
	if menuKeyJustPressed(cfg.ActionAttack) {
		ms.move(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch ms.selected {
		case menuFight:
			ms.sceneChanger.ChangeScene(NewFightScene(ms.sceneChanger))
		case menuExit:
			os.Exit(0)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
}

func (ms *MenuScene) move(delta int) {
	ms.selected = (ms.selected + menuOption(delta) + menuOptionCount) % menuOptionCount
}

// menuKeys collects every key either fighter has bound to an action.
func menuKeys(action cfg.ActionID) []ebiten.Key {
	var keys []ebiten.Key
	for p := range cfg.Input.Bindings {
		keys = append(keys, cfg.Input.Bindings[p][action]...)
	}
	return keys
}

func menuKeyJustPressed(action cfg.ActionID) bool {
	for _, key := range menuKeys(action) {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)

	centerX := cfg.C.Width / 2
	drawMenuText(screen, "FIGHTER", centerX, 160, menuText)
	drawMenuText(screen,
		fmt.Sprintf("WINS  P1 %d - %d P2", ms.scores[cfg.PlayerOne], ms.scores[cfg.PlayerTwo]),
		centerX, 200, menuDimText)

	for i, label := range menuLabels {
		y := 280 + i*40
		c := menuText
		if menuOption(i) == ms.selected {
			c = menuCursor
			vector.DrawFilledRect(screen,
				float32(centerX-90), float32(y-14), 6, 12, menuCursor, false)
		}
		drawMenuText(screen, label, centerX, y, c)
	}

	drawMenuText(screen, "P1  A/D MOVE  W JUMP  S ATTACK", centerX, cfg.C.Height-80, menuDimText)
	drawMenuText(screen, "P2  ARROWS MOVE/JUMP  DOWN ATTACK", centerX, cfg.C.Height-56, menuDimText)
}

func drawMenuText(screen *ebiten.Image, msg string, centerX, baselineY int, c color.RGBA) {
	face := basicfont.Face7x13
	width := len(msg) * face.Advance
	text.Draw(screen, msg, face, centerX-width/2, baselineY, c)
}
