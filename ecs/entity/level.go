package entity

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/emberclimb/assets"
	"github.com/milk9111/emberclimb/ecs"
	"github.com/milk9111/emberclimb/ecs/component"
	"github.com/milk9111/emberclimb/levels"
	"github.com/milk9111/emberclimb/player"
)

// LoadLevelToWorld fills an empty world with a level: bounds, tile sprites,
// merged ground colliders, ladder sensors and the placed entities.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("load level: level is nil")
	}
	if err := lvl.Validate(); err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	tileSize := float64(lvl.TileSize)
	if tileSize <= 0 {
		tileSize = assets.TileSize
	}

	boundsEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:    float64(lvl.Width) * tileSize,
		Height:   float64(lvl.Height) * tileSize,
		CellSize: tileSize,
	}); err != nil {
		return err
	}

	var tileset *ebiten.Image
	if lvl.Tileset != "" {
		img, err := assets.LoadImage(lvl.Tileset)
		if err != nil {
			return fmt.Errorf("load level %q: %w", lvl.Name, err)
		}
		tileset = img
	}

	for layerIdx, layer := range lvl.Layers {
		if tileset != nil {
			if err := addTileSprites(world, tileset, layer, layerIdx, lvl.Width, lvl.Height, tileSize); err != nil {
				return err
			}
		}
		meta := lvl.Meta(layerIdx)
		if meta.Physics {
			if err := addMergedTileColliders(world, layer, lvl.Width, lvl.Height, tileSize, addGroundCollider); err != nil {
				return err
			}
		}
		if meta.Ladder {
			if err := addMergedTileColliders(world, layer, lvl.Width, lvl.Height, tileSize, addLadderSensor); err != nil {
				return err
			}
		}
	}

	for _, ent := range lvl.Entities {
		x, y := float64(ent.X), float64(ent.Y)
		var err error
		switch strings.ToLower(ent.Type) {
		case "player":
			_, err = NewPlayerAt(world, x, y)
		case "camera":
			_, err = NewCameraAt(world, x, y)
		case "death_zone":
			_, err = NewDeathZoneAt(world, x, y, propFloat(ent.Props, "width"), propFloat(ent.Props, "height"))
		case "checkpoint":
			_, err = NewCheckpointAt(world, x, y)
		default:
			log.Printf("level %q: skipping unknown entity type %q", lvl.Name, ent.Type)
		}
		if err != nil {
			return fmt.Errorf("load level %q: %s: %w", lvl.Name, ent.Type, err)
		}
	}

	return nil
}

func addTileSprites(world *ecs.World, tileset *ebiten.Image, layer []int, layerIdx, width, height int, tileSize float64) error {
	ts := int(tileSize)
	tilesX := tileset.Bounds().Dx() / ts
	tilesY := tileset.Bounds().Dy() / ts
	if tilesX <= 0 || tilesY <= 0 {
		return fmt.Errorf("tileset smaller than one %dpx tile", ts)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tileID := layer[y*width+x]
			if tileID <= 0 {
				continue
			}
			idx := tileID - 1
			if idx >= tilesX*tilesY {
				return fmt.Errorf("tile id %d at (%d, %d) is outside the tileset", tileID, x, y)
			}
			srcX := (idx % tilesX) * ts
			srcY := (idx / tilesX) * ts

			e := ecs.CreateEntity(world)
			if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
				X:      float64(x) * tileSize,
				Y:      float64(y) * tileSize,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return err
			}
			if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
				Image:     tileset,
				Source:    image.Rect(srcX, srcY, srcX+ts, srcY+ts),
				UseSource: true,
			}); err != nil {
				return err
			}
			if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.RenderLayerTiles + layerIdx}); err != nil {
				return err
			}
		}
	}
	return nil
}

type colliderFn func(world *ecs.World, x, y, w, h float64) error

// addMergedTileColliders covers a layer's filled tiles with as few
// rectangles as possible: each run grows right first, then down.
func addMergedTileColliders(world *ecs.World, layer []int, width, height int, tileSize float64, add colliderFn) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	filled := func(idx int) bool { return idx < len(layer) && !visited[idx] && layer[idx] > 0 }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !filled(index(x, y)) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && filled(index(x2, y)); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !filled(index(x2, y2)) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}

			if err := add(world, float64(x)*tileSize, float64(y)*tileSize, float64(maxW)*tileSize, float64(maxH)*tileSize); err != nil {
				return err
			}
		}
	}

	return nil
}

func addGroundCollider(world *ecs.World, x, y, w, h float64) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: uint32(player.LayerGround),
		Mask:     ^uint32(0),
	}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        w,
		Height:       h,
		Friction:     0.9,
		Static:       true,
		AlignTopLeft: true,
	})
}

// addLadderSensor adds a climbable area. It only answers ladder queries
// and never pushes the player.
func addLadderSensor(world *ecs.World, x, y, w, h float64) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.LadderTagComponent.Kind(), &component.LadderTag{}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: uint32(player.LayerLadder),
		Mask:     uint32(player.LayerPlayer),
	}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        w,
		Height:       h,
		Static:       true,
		Sensor:       true,
		AlignTopLeft: true,
	})
}

func propFloat(props map[string]interface{}, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
