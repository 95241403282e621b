// Package levels holds the embedded level files and their JSON schema.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile map plus entity placements. Layers are row-major tile
// IDs; 0 is empty and any other ID n draws tile n-1 of the tileset.
type Level struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  int         `json:"tile_size,omitempty"`
	Tileset   string      `json:"tileset"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

// LayerMeta marks what a layer's tiles do besides drawing. Physics tiles
// become solid ground; ladder tiles become climbable sensors.
type LayerMeta struct {
	Name    string `json:"name,omitempty"`
	Physics bool   `json:"physics,omitempty"`
	Ladder  bool   `json:"ladder,omitempty"`
}

// Entity places a prefab. X and Y are world pixels.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Meta returns layer i's metadata, or the zero value when the level does
// not describe it.
func (l *Level) Meta(i int) LayerMeta {
	if i < 0 || i >= len(l.LayerMeta) {
		return LayerMeta{}
	}
	return l.LayerMeta[i]
}

// Validate checks that every layer covers the whole map.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %q: invalid size %dx%d", l.Name, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("level %q: layer %d has %d tiles, want %d", l.Name, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// List returns the embedded level files in menu order.
func List() ([]string, error) {
	names, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// LoadIndex loads the level at position index of List.
func LoadIndex(index int) (*Level, error) {
	names, err := List()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("level index %d out of range [0, %d)", index, len(names))
	}
	return LoadLevelFromFS(names[index])
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = 32
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
