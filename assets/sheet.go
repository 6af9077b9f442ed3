package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	cfg "github.com/automoto/burrow/config"
	"golang.org/x/image/vector"
)

// Map tile indices drawn on the sheet.
const (
	TileSky = iota
	TileGrassTop
	TileDirt
	TileStone
	TilePlatform
	TileCave
	TileBurrow
	TileStoneTop
)

var (
	dirtColor   = color.RGBA{R: 120, G: 78, B: 46, A: 255}
	dirtDark    = color.RGBA{R: 92, G: 58, B: 34, A: 255}
	grassColor  = color.RGBA{R: 76, G: 160, B: 64, A: 255}
	grassDark   = color.RGBA{R: 48, G: 112, B: 44, A: 255}
	stoneColor  = color.RGBA{R: 96, G: 96, B: 108, A: 255}
	stoneLight  = color.RGBA{R: 132, G: 132, B: 144, A: 255}
	plankColor  = color.RGBA{R: 168, G: 120, B: 72, A: 255}
	caveColor   = color.RGBA{R: 22, G: 18, B: 28, A: 255}
	burrowColor = color.RGBA{R: 8, G: 6, B: 10, A: 255}
	furColor    = color.RGBA{R: 214, G: 204, B: 190, A: 255}
	furShade    = color.RGBA{R: 170, G: 156, B: 140, A: 255}
	eyeColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	carrotColor = color.RGBA{R: 240, G: 128, B: 32, A: 255}
	carrotLeaf  = color.RGBA{R: 64, G: 176, B: 56, A: 255}
)

// Sheet draws the tile sheet described by cfg.Sheet: map tiles in the upper
// rows and sprite frames at their configured source rectangles.
func Sheet() *image.RGBA {
	size := cfg.Sheet.Columns * cfg.Sheet.TileSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for i := TileSky; i <= TileStoneTop; i++ {
		drawTile(img, i, TileRect(i))
	}

	// Each frame is rasterized on its own canvas, then copied in.
	for i, f := range cfg.Sheet.Frames {
		frame := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
		switch {
		case i < 12:
			drawRabbit(frame, frame.Bounds(), i)
		case i < 14:
			drawCarrot(frame, frame.Bounds(), i-12)
		default:
			drawGrass(frame, frame.Bounds(), i-14)
		}
		draw.Draw(img, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H), frame, image.Point{}, draw.Over)
	}
	return img
}

// TileRect returns the source rectangle of map tile i.
func TileRect(i int) image.Rectangle {
	ts := cfg.Sheet.TileSize
	x := (i % cfg.Sheet.Columns) * ts
	y := (i / cfg.Sheet.Columns) * ts
	return image.Rect(x, y, x+ts, y+ts)
}

func drawTile(img *image.RGBA, tile int, r image.Rectangle) {
	switch tile {
	case TileSky:
		fill(img, r, cfg.Sky)
	case TileGrassTop:
		fill(img, r, dirtColor)
		speckle(img, r, dirtDark, 5)
		fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+4), grassColor)
		for x := r.Min.X; x < r.Max.X; x += 3 {
			img.SetRGBA(x, r.Min.Y+4, grassDark)
		}
	case TileDirt:
		fill(img, r, dirtColor)
		speckle(img, r, dirtDark, 5)
	case TileStone:
		fill(img, r, stoneColor)
		speckle(img, r, stoneLight, 7)
	case TilePlatform:
		fill(img, r, cfg.Sky)
		fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+5), plankColor)
		fill(img, image.Rect(r.Min.X, r.Min.Y+4, r.Max.X, r.Min.Y+5), dirtDark)
	case TileCave:
		fill(img, r, caveColor)
	case TileBurrow:
		fill(img, r, caveColor)
		ellipse(img, r.Min.X+8, r.Min.Y+9, 7, 6, burrowColor)
	case TileStoneTop:
		fill(img, r, stoneColor)
		speckle(img, r, stoneLight, 7)
		fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+2), stoneLight)
	}
}

// drawRabbit draws frame i of the rabbit: 0-5 face left, 6-11 face right.
// Within each half, 0 is idle, 1 is the jump pose and 2-5 are the walk cycle.
func drawRabbit(img *image.RGBA, r image.Rectangle, i int) {
	pose := i % 6
	right := i >= 6

	cx := float32(r.Min.X) + float32(r.Dx())/2
	by := float32(r.Max.Y) - 1
	dir := float32(-1)
	if right {
		dir = 1
	}

	hop := float32(0)
	legs := float32(0)
	switch {
	case pose == 1:
		hop = 2
		legs = 3
	case pose >= 2:
		hop = float32([]int{0, 1, 0, 1}[pose-2])
		legs = float32([]int{1, 2, 1, 0}[pose-2])
	}

	// body
	ellipse(img, int(cx-dir), int(by-4-hop), 5, 4, furColor)
	// tail
	ellipse(img, int(cx-dir*5), int(by-5-hop), 2, 2, color.RGBA{R: 245, G: 245, B: 240, A: 255})
	// head
	ellipse(img, int(cx+dir*3), int(by-8-hop), 3, 3, furColor)
	// ears
	ear := func(off float32) {
		x := cx + dir*off
		polygon(img, furShade,
			[2]float32{x - 1, by - 10 - hop},
			[2]float32{x + 1, by - 10 - hop},
			[2]float32{x + dir, by - 14 - hop},
		)
	}
	ear(2)
	ear(4)
	img.SetRGBA(int(cx+dir*4), int(by-9-hop), eyeColor)
	// feet
	fill(img, image.Rect(int(cx-dir*3-legs), int(by-1), int(cx-dir*3-legs)+3, int(by)+1), furShade)
	fill(img, image.Rect(int(cx+dir*2+legs), int(by-1), int(cx+dir*2+legs)+2, int(by)+1), furShade)
}

func drawCarrot(img *image.RGBA, r image.Rectangle, i int) {
	sway := float32(i)
	cx := float32(r.Min.X) + float32(r.Dx())/2
	top := float32(r.Min.Y) + 5
	polygon(img, carrotColor,
		[2]float32{cx - 3, top},
		[2]float32{cx + 3, top},
		[2]float32{cx, float32(r.Max.Y) - 1},
	)
	for _, dx := range []float32{-2, 0, 2} {
		polygon(img, carrotLeaf,
			[2]float32{cx + dx - 1, top},
			[2]float32{cx + dx + 1, top},
			[2]float32{cx + dx*1.5 + sway, float32(r.Min.Y)},
		)
	}
}

func drawGrass(img *image.RGBA, r image.Rectangle, i int) {
	lean := float32(i - 1)
	base := float32(r.Max.Y)
	for x := r.Min.X + 1; x < r.Max.X; x += 3 {
		c := grassColor
		if (x/3)%2 == 0 {
			c = grassDark
		}
		fx := float32(x)
		polygon(img, c,
			[2]float32{fx - 1, base},
			[2]float32{fx + 1, base},
			[2]float32{fx + lean, float32(r.Min.Y)},
		)
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// speckle sets every nth pixel of r on a skewed lattice.
func speckle(img *image.RGBA, r image.Rectangle, c color.RGBA, n int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x*3+y*7)%n == 0 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func polygon(img *image.RGBA, c color.Color, pts ...[2]float32) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

func ellipse(img *image.RGBA, cx, cy, rx, ry int, c color.Color) {
	const segments = 16
	pts := make([][2]float32, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = [2]float32{
			float32(cx) + float32(rx)*float32(math.Cos(a)),
			float32(cy) + float32(ry)*float32(math.Sin(a)),
		}
	}
	polygon(img, c, pts...)
}
