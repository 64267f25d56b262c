package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var overlayShade = color.RGBA{R: 0, G: 0, B: 0, A: 160}

// TextOverlayObject shades the screen and centers a message on it. The
// message is read every frame; an empty message draws nothing.
type TextOverlayObject struct {
	*BaseObject

	message func() string
}

func NewTextOverlayObject(id string, message func() string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id),
		message:    message,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	msg := o.message()
	if msg == "" {
		return
	}

	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, sw, sh, overlayShade, false)

	lines := strings.Split(msg, "\n")
	f := fonts.MPlusLargeFont
	lineHeight := f.Metrics().Height.Ceil()
	top := float64(sh)/2 - float64(len(lines)*lineHeight)/2
	for i, line := range lines {
		bounds, _ := font.BoundString(f, line)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sw)/2-float64(bounds.Max.X>>6)/2, top+float64(i*lineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.DrawWithOptions(screen, line, f, op)
	}
}
