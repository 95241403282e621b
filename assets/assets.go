// Package assets builds the game's placeholder art. Every image is drawn
// procedurally at first use, so the repository carries no binary files.
package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	cacheMu sync.Mutex
	cache   = map[string]*ebiten.Image{}
)

// LoadImage returns the named placeholder image as an *ebiten.Image. Images
// are generated once and shared.
func LoadImage(name string) (*ebiten.Image, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if img, ok := cache[name]; ok {
		return img, nil
	}
	src, err := Generate(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	cache[name] = img
	return img, nil
}

// Generate draws the named placeholder image.
func Generate(name string) (image.Image, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown image %q", name)
	}
	return gen(), nil
}

// Names lists every image Generate knows about.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	return names
}
