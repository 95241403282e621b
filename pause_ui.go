package main

import (
	"github.com/ebitenui/ebitenui"
)

// NewPauseUI builds the in-level pause menu. Escape or Resume unpauses.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := newCenteredPanel()

	panel.AddChild(newTitle("Paused", face))
	panel.AddChild(newButton("Resume", face, func() {
		g.setPaused(false)
	}))
	panel.AddChild(newButton("Restart Level", face, g.restartLevel))
	panel.AddChild(newButton("Level Select", face, g.returnToMenu))

	return &ebitenui.UI{Container: root}
}
