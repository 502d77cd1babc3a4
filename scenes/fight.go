package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
	"github.com/oakwoods/fighter/systems"
)

// FightScene runs one match. Every tick executes the systems in a fixed
// order: input, state overrides, movement, collision/damage, animation,
// match check. Once the match finishes the simulation keeps running so
// poses complete, but gameplay input is ignored and the results overlay is
// shown until Enter returns to the menu.
type FightScene struct {
	world        *components.World
	hud          *systems.HUD
	sceneChanger SceneChanger
	scoresSaved  bool
	once         sync.Once
}

// NewFightScene creates a fight scene; the world is built lazily on the
// first update.
func NewFightScene(sc SceneChanger) *FightScene {
	return &FightScene{sceneChanger: sc}
}

func (fs *FightScene) configure() {
	fs.world = components.NewWorld()
	fs.world.Match.Scores = systems.LoadScores()
	fs.hud = systems.NewHUD()
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	w := fs.world

	// Events are drained every tick; nothing carries over.
	w.Outbox.Reset()

	systems.UpdateInput(w)
	systems.UpdatePlayers(w)
	systems.UpdatePhysics(w)
	systems.UpdateCombat(w)
	systems.UpdateAnimations(w)
	systems.UpdateMatch(w)
	systems.UpdateAudio(w)
	fs.hud.Update(w)

	if w.Match.State != cfg.MatchStateFinished {
		return
	}

	if !fs.scoresSaved {
		fs.scoresSaved = true
		_ = systems.SaveScores(w.Match.Scores)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger))
	}
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	if fs.world == nil {
		return
	}
	systems.DrawArena(screen)
	systems.DrawFighters(fs.world, screen)
	fs.hud.Draw(fs.world, screen)
	systems.DrawResults(fs.world, screen)
}
