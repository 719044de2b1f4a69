package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundTopColor    = color.RGBA{R: 28, G: 28, B: 46, A: 255}
	backgroundBottomColor = color.RGBA{R: 46, G: 46, B: 72, A: 255}
)

// Background fills the screen with an image, or with two flat halves when
// there is none.
type Background struct {
	*BaseObject

	image *ebiten.Image
}

func NewBackground(id string, image *ebiten.Image, zIndex int) *Background {
	return &Background{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		image:      image,
	}
}

func (b *Background) Draw(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if b.image != nil {
		w, h := b.image.Bounds().Dx(), b.image.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(b.image, op)
		return
	}

	half := float32(sh) / 2
	vector.DrawFilledRect(screen, 0, 0, float32(sw), half, backgroundTopColor, false)
	vector.DrawFilledRect(screen, 0, half, float32(sw), float32(sh)-half, backgroundBottomColor, false)
}
