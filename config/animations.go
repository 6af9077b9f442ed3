package config

// Frame is a source rectangle on the tile sheet plus a draw offset.
type Frame struct {
	X, Y, W, H       int
	OffsetX, OffsetY float64
}

// TileSet describes the tile sheet: graphical map values index tiles laid out
// Columns wide, and Frames is indexed by frame id.
type TileSet struct {
	Columns  int
	TileSize int
	Frames   []Frame
}

// Frame set names
const (
	FramesIdleLeft  = "idle-left"
	FramesJumpLeft  = "jump-left"
	FramesMoveLeft  = "move-left"
	FramesIdleRight = "idle-right"
	FramesJumpRight = "jump-right"
	FramesMoveRight = "move-right"
	FramesCarrot    = "carrot"
	FramesGrass     = "grass"
)

// FrameSets maps a frame set name to its ordered frame ids.
var FrameSets = map[string][]int{
	FramesIdleLeft:  {0},
	FramesJumpLeft:  {1},
	FramesMoveLeft:  {2, 3, 4, 5},
	FramesIdleRight: {6},
	FramesJumpRight: {7},
	FramesMoveRight: {8, 9, 10, 11},
	FramesCarrot:    {12, 13},
	FramesGrass:     {14, 15, 16, 15},
}

// Sheet is the tile sheet shared by the map and every sprite.
var Sheet = TileSet{
	Columns:  8,
	TileSize: 16,
	Frames: []Frame{
		// Rabbit facing left
		{X: 115, Y: 96, W: 13, H: 16, OffsetY: -4},
		{X: 50, Y: 96, W: 13, H: 16, OffsetY: -4},
		{X: 102, Y: 96, W: 13, H: 16, OffsetY: -4},
		{X: 89, Y: 96, W: 13, H: 16, OffsetY: -4},
		{X: 76, Y: 96, W: 13, H: 16, OffsetY: -4},
		{X: 63, Y: 96, W: 13, H: 16, OffsetY: -4},
		// Rabbit facing right
		{X: 0, Y: 112, W: 13, H: 16, OffsetY: -4},
		{X: 65, Y: 112, W: 13, H: 16, OffsetY: -4},
		{X: 13, Y: 112, W: 13, H: 16, OffsetY: -4},
		{X: 26, Y: 112, W: 13, H: 16, OffsetY: -4},
		{X: 39, Y: 112, W: 13, H: 16, OffsetY: -4},
		{X: 52, Y: 112, W: 13, H: 16, OffsetY: -4},
		// Carrot
		{X: 81, Y: 112, W: 14, H: 16},
		{X: 96, Y: 112, W: 16, H: 16},
		// Grass
		{X: 112, Y: 115, W: 16, H: 4},
		{X: 112, Y: 124, W: 16, H: 4},
		{X: 112, Y: 119, W: 16, H: 4},
	},
}

// MapTiles is the number of sheet tiles usable by graphical maps. The bottom
// two rows hold sprite frames.
const MapTiles = 48
