package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/emberclimb/ecs/system"
	"github.com/milk9111/emberclimb/prefabs"
	"golang.design/x/clipboard"
)

const prefabDir = "prefabs"

// debugTools is only created with -debug. A nil *debugTools does nothing.
//
//	F1  toggle the physics and player state overlay
//	F2  copy the player state dump to the clipboard
type debugTools struct {
	overlay   bool
	clipboard bool
	watcher   *prefabs.Watcher
}

func newDebugTools() *debugTools {
	d := &debugTools{overlay: true}

	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboard = true
	}

	if _, err := os.Stat(prefabDir); err == nil {
		w, err := prefabs.NewWatcher(prefabDir)
		if err != nil {
			log.Printf("debug: prefab hot reload disabled: %v", err)
		} else {
			d.watcher = w
			log.Printf("debug: watching %s/ for prefab edits", prefabDir)
		}
	}

	return d
}

func (d *debugTools) update(g *Game) {
	if d == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.overlay = !d.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && g.world != nil {
		d.copyState(system.PlayerStateText(g.world))
	}

	d.drainWatcher(g)
}

func (d *debugTools) copyState(text string) {
	if text == "" {
		return
	}
	if !d.clipboard {
		log.Printf("debug: player state\n%s", text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("debug: copied player state to clipboard")
}

// drainWatcher applies pending prefab edits without blocking the frame.
func (d *debugTools) drainWatcher(g *Game) {
	if d.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-d.watcher.Changes():
			if !ok {
				d.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err, ok := <-d.watcher.Errors():
			if !ok {
				d.watcher = nil
				return
			}
			log.Printf("debug: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (d *debugTools) draw(g *Game, screen *ebiten.Image) {
	if d == nil || !d.overlay || g.world == nil {
		return
	}
	system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
	system.DrawPlayerStateDebug(g.world, screen)
}

func (d *debugTools) close() {
	if d == nil || d.watcher == nil {
		return
	}
	if err := d.watcher.Close(); err != nil {
		log.Printf("debug: close prefab watcher: %v", err)
	}
}
