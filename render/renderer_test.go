package render

import (
	"image"
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.WithRand(rand.New(rand.NewPCG(7, 7))))
	z := &zonedata.Zone{
		ID:           "r",
		Columns:      3,
		Rows:         2,
		CollisionMap: make([]int, 6),
		GraphicalMap: []int{0, 1, 2, 8, 9, 10},
		Collectibles: []zonedata.GridCell{{2, 1}},
		Decorations:  []zonedata.GridCell{{1, 0}},
	}
	if err := w.Setup(z); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestDrawOrder(t *testing.T) {
	rec := &Recorder{}
	New(rec, cfg.Sheet).Draw(testWorld(t))

	var ops []string
	for _, c := range rec.Calls {
		ops = append(ops, c.Op)
	}
	want := []string{"tile", "tile", "tile", "tile", "tile", "tile", "sprite", "sprite", "sprite", "present"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
}

func TestDrawMapReverseWithSheetSources(t *testing.T) {
	rec := &Recorder{}
	New(rec, cfg.Sheet).Draw(testWorld(t))

	first := rec.Calls[0]
	if first.Col != 2 || first.Row != 1 {
		t.Errorf("first tile at (%d, %d), want last cell (2, 1)", first.Col, first.Row)
	}
	// Tile 10 sits in column 2, row 1 of an 8 wide sheet.
	if want := image.Rect(32, 16, 48, 32); first.Src != want {
		t.Errorf("first tile src = %v, want %v", first.Src, want)
	}

	last := rec.Calls[5]
	if last.Col != 0 || last.Row != 0 || last.Src != image.Rect(0, 0, 16, 16) {
		t.Errorf("last tile = %+v, want cell (0, 0) from sheet origin", last)
	}
}

func TestDrawSpritePlacement(t *testing.T) {
	rec := &Recorder{}
	New(rec, cfg.Sheet).Draw(testWorld(t))

	carrot := rec.Calls[6]
	a, b := cfg.Sheet.Frames[12], cfg.Sheet.Frames[13]
	if carrot.Src != frameRect(a) && carrot.Src != frameRect(b) {
		t.Errorf("carrot src = %v, want a carrot frame", carrot.Src)
	}

	// The idle frame is 13 wide over a 7 wide body: shifted left by 3 and
	// lifted by its offset.
	player := rec.Calls[7]
	idle := cfg.Sheet.Frames[0]
	if player.Src != frameRect(idle) {
		t.Errorf("player src = %v, want %v", player.Src, frameRect(idle))
	}
	wantPlayer := gamemath.NewRect(cfg.Player.SpawnX-3, cfg.Player.SpawnY-4, 13, 16)
	if player.Dst != wantPlayer {
		t.Errorf("player dst = %+v, want %+v", player.Dst, wantPlayer)
	}

	grass := rec.Calls[8]
	wantGrass := gamemath.NewRect(16, 12, 16, 4)
	if grass.Src != frameRect(cfg.Sheet.Frames[14]) || grass.Dst != wantGrass {
		t.Errorf("grass = %+v, want frame 14 at %+v", grass, wantGrass)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := &Recorder{}
	rec.Present()
	rec.DrawTile(image.Rect(0, 0, 16, 16), 1, 1, 16)
	if rec.Count("present") != 1 || rec.Count("tile") != 1 {
		t.Fatalf("calls = %+v", rec.Calls)
	}
	if got := rec.Calls[1].Dst; got != gamemath.NewRect(16, 16, 16, 16) {
		t.Errorf("tile dst = %+v", got)
	}
	rec.Reset()
	if len(rec.Calls) != 0 {
		t.Errorf("Reset() left %d calls", len(rec.Calls))
	}
}
