package objects

import (
	"image/color"

	"github.com/cbodonnell/circledodge/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text horizontally centered at a fixed
// height of the screen.
type TextOverlayObject struct {
	*BaseObject

	text  string
	y     float64
	face  font.Face
	color color.Color
}

type NewTextOverlayOptions struct {
	// Y is the baseline of the text from the top of the screen.
	Y float64
	// Face defaults to the large font.
	Face   font.Face
	Color  color.Color
	ZIndex int
}

func NewTextOverlayObject(id string, text string, opts NewTextOverlayOptions) *TextOverlayObject {
	face := opts.Face
	if face == nil {
		face = fonts.TTFLargeFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       text,
		y:          opts.Y,
		face:       face,
		color:      clr,
	}
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) Text() string {
	return o.text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	bounds, _ := font.BoundString(o.face, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, o.face, op)
}
