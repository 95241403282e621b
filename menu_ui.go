package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/emberclimb/ecs/system"
)

// NewMenuUI lists the embedded levels in order. Picking one records a level
// change request that the game loads on its next update.
func NewMenuUI(g *Game, titles []string) *ebitenui.UI {
	face := uiFace()
	root, panel := newCenteredPanel()

	panel.AddChild(newTitle("emberclimb", face))
	if len(titles) == 0 {
		panel.AddChild(newTitle("no levels found", face))
	}
	for i, title := range titles {
		panel.AddChild(newButton(fmt.Sprintf("%d. %s", i+1, title), face, func() {
			if err := system.SelectLevel(g.menuWorld, i); err != nil {
				log.Printf("failed to select level %d: %v", i, err)
			}
		}))
	}
	panel.AddChild(newButton("Quit", face, func() {
		g.quit = true
	}))

	return &ebitenui.UI{Container: root}
}
