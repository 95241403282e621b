package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/ecs/entity"
	"github.com/milk9111/emberclimb/ecs/system"
	"github.com/milk9111/emberclimb/levels"
)

type scene int

const (
	sceneMenu scene = iota
	scenePlay
)

const playerPrefab = "player.yaml"

var backgroundColor = color.NRGBA{R: 0x1b, G: 0x14, B: 0x20, A: 0xff}

type Game struct {
	scene  scene
	paused bool
	quit   bool

	// menuWorld only carries level change requests while the menu is up.
	menuWorld *ecs.World

	world      *ecs.World
	clock      *component.Clock
	scheduler  *ecs.Scheduler
	physics    *system.PhysicsSystem
	render     *system.RenderSystem
	levelIndex int
	levelNames []string

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI

	debug *debugTools
}

func NewGame(levelName string, debug bool) *Game {
	g := &Game{
		menuWorld: ecs.NewWorld(),
		physics:   system.NewPhysicsSystem(common.Gravity),
	}

	names, err := levels.List()
	if err != nil {
		log.Printf("failed to list levels: %v", err)
	}
	g.levelNames = names

	g.menuUI = NewMenuUI(g, levelTitles(names))
	g.pauseUI = NewPauseUI(g)

	if debug {
		g.debug = newDebugTools()
	}

	if levelName != "" {
		if idx, ok := levelIndexByName(names, levelName); ok {
			if err := system.SelectLevel(g.menuWorld, idx); err != nil {
				log.Printf("failed to select level %q: %v", levelName, err)
			}
		} else {
			log.Printf("level %q not found", levelName)
		}
	}

	return g
}

// newScheduler builds the per-level system order. Systems that cache
// entities are rebuilt with every world.
func (g *Game) newScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(g.physics),
		system.NewAttackSystem(),
		g.physics,
		system.NewProjectileSystem(g.physics),
		system.NewDeathZoneSystem(),
		system.NewCheckpointSystem(),
		system.NewHealthSystem(),
		system.NewRespawnSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(),
	)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.debug.update(g)
	g.handleLevelRequest()

	switch g.scene {
	case sceneMenu:
		g.menuUI.Update()
	case scenePlay:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.setPaused(!g.paused)
		}
		if g.paused {
			g.pauseUI.Update()
			return nil
		}
		g.scheduler.Update(g.world)
		g.logEvents()
	}

	return nil
}

// handleLevelRequest loads a level asked for from the menu or the pause
// screen. Bad indexes keep the current scene.
func (g *Game) handleLevelRequest() {
	for _, w := range []*ecs.World{g.menuWorld, g.world} {
		if w == nil {
			continue
		}
		index, ok := system.TakeLevelRequest(w)
		if !ok {
			continue
		}
		if err := g.loadLevel(index); err != nil {
			log.Printf("failed to load level %d: %v", index, err)
		}
		return
	}
}

func (g *Game) loadLevel(index int) error {
	lvl, err := levels.LoadIndex(index)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	clock, err := system.NewClock(world)
	if err != nil {
		return fmt.Errorf("add clock: %w", err)
	}
	if err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return err
	}

	g.physics.Reset()
	g.world = world
	g.clock = clock
	g.scheduler = g.newScheduler()
	g.render = system.NewRenderSystem()
	g.levelIndex = index
	g.scene = scenePlay
	g.setPaused(false)

	log.Printf("loaded level %d %q", index, lvl.Name)
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.clock == nil {
		return
	}
	if paused {
		g.clock.Scale = 0
	} else {
		g.clock.Scale = 1
	}
}

// restartLevel asks for the current level again on the next frame.
func (g *Game) restartLevel() {
	if err := system.SelectLevel(g.world, g.levelIndex); err != nil {
		log.Printf("failed to restart level: %v", err)
	}
}

func (g *Game) returnToMenu() {
	g.setPaused(false)
	g.scene = sceneMenu
	g.world = nil
	g.clock = nil
	g.physics.Reset()
}

func (g *Game) logEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventPlayerDied:
			log.Printf("player died at (%.1f, %.1f)", evt.X, evt.Y)
		case ecs.EventPlayerRespawned:
			log.Printf("player respawned at (%.1f, %.1f)", evt.X, evt.Y)
		case ecs.EventCheckpointActivated:
			log.Printf("checkpoint reached at (%.1f, %.1f)", evt.X, evt.Y)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.scene {
	case sceneMenu:
		g.menuUI.Draw(screen)
	case scenePlay:
		g.render.Draw(g.world, screen)
		g.debug.draw(g, screen)
		if g.paused {
			g.pauseUI.Draw(screen)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	g.debug.close()
}

func levelIndexByName(names []string, name string) (int, bool) {
	want := strings.TrimSuffix(filepath.Base(name), ".json")
	for i, n := range names {
		if strings.TrimSuffix(n, ".json") == want {
			return i, true
		}
	}
	return 0, false
}

// levelTitles returns display names for the menu, falling back to the file
// name when a level cannot be read.
func levelTitles(names []string) []string {
	titles := make([]string, len(names))
	for i, name := range names {
		titles[i] = strings.TrimSuffix(name, ".json")
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			log.Printf("failed to read level %q: %v", name, err)
			continue
		}
		if lvl.Name != "" {
			titles[i] = lvl.Name
		}
	}
	return titles
}

// reloadPrefab applies an edited prefab to the running level. Only player
// tuning is live; other prefabs apply on the next level load.
func (g *Game) reloadPrefab(name string) {
	if g.world == nil || name != playerPrefab {
		return
	}
	if err := entity.ReloadPlayerTuning(g.world); err != nil {
		log.Printf("hot reload %s: %v", name, err)
		return
	}
	log.Printf("hot reloaded %s", name)
}
