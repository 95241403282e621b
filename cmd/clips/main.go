// Command clips previews the animation clips a prefab defines on the
// generated sprite sheets. Left and right switch clips.
//
//	go run ./cmd/clips -prefab player.yaml -clip run
//	go run ./cmd/clips -export out/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/emberclimb/assets"
	"github.com/milk9111/emberclimb/common"
	"github.com/milk9111/emberclimb/prefabs"
)

const (
	screenSize = 256
	zoom       = 4
)

type clip struct {
	name   string
	frames []*ebiten.Image
	ticks  int
}

type previewGame struct {
	clips   []clip
	current int
	frame   int
	tick    int
}

func (g *previewGame) Update() error {
	if len(g.clips) == 0 {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.current = (g.current + 1) % len(g.clips)
		g.frame, g.tick = 0, 0
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.current = (g.current + len(g.clips) - 1) % len(g.clips)
		g.frame, g.tick = 0, 0
	}

	c := g.clips[g.current]
	g.tick++
	if g.tick >= c.ticks {
		g.tick = 0
		g.frame = (g.frame + 1) % len(c.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	if len(g.clips) == 0 {
		ebitenutil.DebugPrint(screen, "no clips")
		return
	}
	c := g.clips[g.current]
	img := c.frames[g.frame]
	fw, fh := img.Bounds().Dx()*zoom, img.Bounds().Dy()*zoom
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(screenSize-fw)/2, float64(screenSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)  frame %d", c.name, g.current+1, len(g.clips), g.frame))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

// frameRects returns the sheet rectangles of a clip, left to right along
// its row.
func frameRects(def prefabs.AnimationDefComponentSpec) []image.Rectangle {
	rects := make([]image.Rectangle, 0, def.FrameCount)
	y := def.Row * def.FrameH
	for i := 0; i < def.FrameCount; i++ {
		x := (def.ColStart + i) * def.FrameW
		rects = append(rects, image.Rect(x, y, x+def.FrameW, y+def.FrameH))
	}
	return rects
}

// ticksPerFrame converts clip fps to game ticks, at least one.
func ticksPerFrame(fps float64) int {
	if fps <= 0 {
		return 1
	}
	ticks := int(common.TPS / fps)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func loadClips(prefab string) ([]clip, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return nil, err
	}
	anim, ok, err := prefabs.Component[prefabs.AnimationComponentSpec](spec, "animation")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("prefab %q has no animation component", prefab)
	}
	sheet, err := assets.LoadImage(anim.Sheet)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(anim.Defs))
	for name := range anim.Defs {
		names = append(names, name)
	}
	sort.Strings(names)

	clips := make([]clip, 0, len(names))
	for _, name := range names {
		def := anim.Defs[name]
		c := clip{name: name, ticks: ticksPerFrame(def.FPS)}
		for _, r := range frameRects(def) {
			if !r.In(sheet.Bounds()) {
				return nil, fmt.Errorf("clip %q frame %v is outside the %v sheet", name, r, sheet.Bounds())
			}
			c.frames = append(c.frames, sheet.SubImage(r).(*ebiten.Image))
		}
		if len(c.frames) > 0 {
			clips = append(clips, c)
		}
	}
	return clips, nil
}

// exportSheets writes every generated image as a PNG, as a starting point
// for real art.
func exportSheets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range assets.Names() {
		img, err := assets.Generate(name)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name+".png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab whose animation clips to preview")
	start := flag.String("clip", "", "clip to show first")
	export := flag.String("export", "", "write the generated sheets as PNGs to this directory and exit")
	flag.Parse()

	if *export != "" {
		if err := exportSheets(*export); err != nil {
			log.Fatal(err)
		}
		return
	}

	clips, err := loadClips(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	g := &previewGame{clips: clips}
	for i, c := range clips {
		if c.name == *start {
			g.current = i
		}
	}

	ebiten.SetWindowSize(screenSize*2, screenSize*2)
	ebiten.SetWindowTitle("clip preview: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
