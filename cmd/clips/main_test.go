package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/emberclimb/assets"
	"github.com/milk9111/emberclimb/prefabs"
)

func TestFrameRects(t *testing.T) {
	def := prefabs.AnimationDefComponentSpec{Row: 2, ColStart: 1, FrameCount: 3, FrameW: 16, FrameH: 32}
	want := []image.Rectangle{
		image.Rect(16, 64, 32, 96),
		image.Rect(32, 64, 48, 96),
		image.Rect(48, 64, 64, 96),
	}
	got := frameRects(def)
	if len(got) != len(want) {
		t.Fatalf("frameRects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTicksPerFrame(t *testing.T) {
	tests := []struct {
		fps  float64
		want int
	}{
		{0, 1},
		{-3, 1},
		{6, 10},
		{12, 5},
		{240, 1},
	}
	for _, tc := range tests {
		if got := ticksPerFrame(tc.fps); got != tc.want {
			t.Fatalf("ticksPerFrame(%v) = %d, want %d", tc.fps, got, tc.want)
		}
	}
}

func TestPlayerClipsFitSheet(t *testing.T) {
	clips, err := loadClips("player.yaml")
	if err != nil {
		t.Fatalf("loadClips: %v", err)
	}
	if len(clips) == 0 {
		t.Fatalf("player prefab has no clips")
	}
	for _, c := range clips {
		if len(c.frames) == 0 || c.ticks < 1 {
			t.Fatalf("clip %q = %d frames, %d ticks", c.name, len(c.frames), c.ticks)
		}
	}
}

func TestExportSheets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sheets")
	if err := exportSheets(dir); err != nil {
		t.Fatalf("exportSheets: %v", err)
	}
	for _, name := range assets.Names() {
		if _, err := os.Stat(filepath.Join(dir, name+".png")); err != nil {
			t.Fatalf("missing export for %q: %v", name, err)
		}
	}
}
