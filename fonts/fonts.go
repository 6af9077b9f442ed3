package fonts

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD FontName = "hud"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

func init() {
	LoadFace(HUD, basicfont.Face7x13)
}

// LoadFace registers a bitmap or outline face under name.
func LoadFace(name FontName, face font.Face) {
	fonts[name] = text.NewGoXFace(face)
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
