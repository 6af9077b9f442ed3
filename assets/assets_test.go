package assets

import (
	"context"
	"image"
	"testing"

	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/zonedata"
)

var embeddedZones = []string{"00", "01", "02"}

func TestEmbeddedZonesLoad(t *testing.T) {
	p := ZoneProvider("")
	for _, id := range embeddedZones {
		t.Run(id, func(t *testing.T) {
			z, err := p.Load(context.Background(), id)
			if err != nil {
				t.Fatalf("Load(%q): %v", id, err)
			}
			if z.ID != id {
				t.Errorf("ID = %q, want %q", z.ID, id)
			}
			if z.Columns != 12 || z.Rows != 9 {
				t.Errorf("size = %dx%d, want 12x9", z.Columns, z.Rows)
			}
			if len(z.Collectibles) == 0 {
				t.Error("zone has no carrots")
			}
			for _, g := range z.GraphicalMap {
				if g < 0 || g >= cfg.MapTiles {
					t.Errorf("graphical tile %d outside sheet map area", g)
				}
			}
		})
	}
}

func TestEmbeddedDoorsLeadToOpenSpace(t *testing.T) {
	p := ZoneProvider("")
	zones := map[string]*zonedata.Zone{}
	for _, id := range embeddedZones {
		zones[id] = zonedata.MustLoad(p, id)
	}

	ts := cfg.Physics.TileSize
	for id, z := range zones {
		for i, d := range z.Doors {
			dest, ok := zones[d.DestinationZone]
			if !ok {
				t.Errorf("zone %s door %d: unknown destination %q", id, i, d.DestinationZone)
				continue
			}
			if d.DestinationX == zonedata.KeepAxis {
				continue
			}
			col := int(d.DestinationX) / ts
			// The door's own rows in the destination must be free at the landing column.
			for row := int(d.Y) / ts; row < int(d.Y+d.Height)/ts; row++ {
				if code := dest.CollisionMap[row*dest.Columns+col]; code == 15 {
					t.Errorf("zone %s door %d lands in solid cell (%d,%d) of %s", id, i, col, row, dest.ID)
				}
			}
			for j, back := range dest.Doors {
				cx := d.DestinationX
				if cx >= back.X && cx < back.X+back.Width {
					t.Errorf("zone %s door %d lands inside door %d of %s", id, i, j, dest.ID)
				}
			}
		}
	}
}

func TestZoneProviderFromDisk(t *testing.T) {
	_, err := ZoneProvider(t.TempDir()).Load(context.Background(), "00")
	if err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}

func TestSheet(t *testing.T) {
	img := Sheet()
	size := cfg.Sheet.Columns * cfg.Sheet.TileSize
	if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
		t.Fatalf("bounds = %v", got)
	}

	if got := img.RGBAAt(TileRect(TileSky).Min.X, TileRect(TileSky).Min.Y); got != cfg.Sky {
		t.Errorf("sky tile pixel = %v, want %v", got, cfg.Sky)
	}

	for i, f := range cfg.Sheet.Frames {
		opaque := 0
		for y := f.Y; y < f.Y+f.H; y++ {
			for x := f.X; x < f.X+f.W; x++ {
				if img.RGBAAt(x, y).A > 0 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Errorf("frame %d is empty", i)
		}
	}
}

func TestTileRect(t *testing.T) {
	tests := []struct {
		tile int
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{7, image.Rect(112, 0, 128, 16)},
		{8, image.Rect(0, 16, 16, 32)},
		{47, image.Rect(112, 80, 128, 96)},
	}
	for _, tt := range tests {
		if got := TileRect(tt.tile); got != tt.want {
			t.Errorf("TileRect(%d) = %v, want %v", tt.tile, got, tt.want)
		}
	}
}
