package assets

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	TileSize = 32

	PlayerFrameW = 16
	PlayerFrameH = 32
	PlayerFrames = 4
)

// Tile indexes in the "tileset" image.
const (
	TileGround = iota
	TileLadder
	TileCount
)

// Player sheet rows, one per clip.
var playerRows = []color.RGBA{
	{0, 200, 110, 255},   // idle
	{0, 230, 140, 255},   // run
	{80, 220, 255, 255},  // jump
	{200, 170, 60, 255},  // climb
	{255, 140, 0, 255},   // attack
	{255, 110, 40, 255},  // run_attack
	{255, 80, 80, 255},   // jump_attack
	{120, 120, 130, 255}, // death
}

var palette = struct {
	Ground     color.RGBA
	GroundEdge color.RGBA
	Ladder     color.RGBA
	Outline    color.RGBA
	Ember      color.RGBA
	EmberCore  color.RGBA
	Flag       color.RGBA
	Pole       color.RGBA
}{
	Ground:     color.RGBA{70, 60, 72, 255},
	GroundEdge: color.RGBA{120, 90, 80, 255},
	Ladder:     color.RGBA{160, 110, 60, 255},
	Outline:    color.RGBA{20, 20, 24, 255},
	Ember:      color.RGBA{255, 120, 20, 255},
	EmberCore:  color.RGBA{255, 230, 120, 255},
	Flag:       color.RGBA{230, 60, 60, 255},
	Pole:       color.RGBA{200, 200, 210, 255},
}

var generators = map[string]func() image.Image{
	"tileset":      tileset,
	"player_sheet": playerSheet,
	"projectile":   projectile,
	"checkpoint":   checkpoint,
}

func tileset() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, TileSize*TileCount, TileSize))

	ground := image.Rect(TileGround*TileSize, 0, (TileGround+1)*TileSize, TileSize)
	fill(img, ground, palette.Ground)
	fill(img, image.Rect(ground.Min.X, 0, ground.Max.X, 4), palette.GroundEdge)
	outline(img, ground, palette.Outline)

	ladder := image.Rect(TileLadder*TileSize, 0, (TileLadder+1)*TileSize, TileSize)
	fill(img, image.Rect(ladder.Min.X+6, 0, ladder.Min.X+9, TileSize), palette.Ladder)
	fill(img, image.Rect(ladder.Max.X-9, 0, ladder.Max.X-6, TileSize), palette.Ladder)
	for y := 4; y < TileSize; y += 8 {
		fill(img, image.Rect(ladder.Min.X+6, y, ladder.Max.X-6, y+2), palette.Ladder)
	}
	return img
}

// playerSheet draws one row per clip. Frames bob by a pixel so playback is
// visible.
func playerSheet() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlayerFrameW*PlayerFrames, PlayerFrameH*len(playerRows)))
	for row, c := range playerRows {
		for frame := 0; frame < PlayerFrames; frame++ {
			x0 := frame * PlayerFrameW
			y0 := row * PlayerFrameH
			bob := frame % 2
			body := image.Rect(x0+2, y0+4+bob, x0+PlayerFrameW-2, y0+PlayerFrameH)
			fill(img, body, c)
			outline(img, body, palette.Outline)
			// Eye on the right side; the renderer mirrors for left.
			fill(img, image.Rect(x0+PlayerFrameW-6, y0+8+bob, x0+PlayerFrameW-4, y0+10+bob), palette.Outline)
		}
	}
	return img
}

func projectile() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	fill(img, img.Bounds(), palette.Ember)
	fill(img, image.Rect(4, 1, 7, 3), palette.EmberCore)
	return img
}

func checkpoint() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, 2*TileSize))
	fill(img, image.Rect(14, 4, 17, 2*TileSize), palette.Pole)
	fill(img, image.Rect(17, 4, 29, 14), palette.Flag)
	return img
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
