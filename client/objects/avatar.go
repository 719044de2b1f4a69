package objects

import (
	"image/color"
	"math"

	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	avatarFillColor   = color.RGBA{R: 236, G: 92, B: 72, A: 255}
	avatarMarkerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Avatar draws the player's circle spinning once per rotation period.
type Avatar struct {
	*BaseObject

	state *gametypes.AvatarState
	image *ebiten.Image
	// period is the seconds per revolution, zero disables rotation
	period float64
	angle  float64
}

type NewAvatarOptions struct {
	State *gametypes.AvatarState
	// Image is drawn scaled to the diameter. Optional.
	Image          *ebiten.Image
	RotationPeriod float64
	ZIndex         int
}

func NewAvatar(id string, opts NewAvatarOptions) *Avatar {
	return &Avatar{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		state:      opts.State,
		image:      opts.Image,
		period:     opts.RotationPeriod,
	}
}

func (a *Avatar) Update() error {
	if a.period > 0 {
		a.angle = math.Mod(a.angle+2*math.Pi/(a.period*float64(ebiten.TPS())), 2*math.Pi)
	}
	return nil
}

// ResetRotation starts the rotation over from the upright position.
func (a *Avatar) ResetRotation() {
	a.angle = 0
}

func (a *Avatar) Draw(screen *ebiten.Image) {
	cx, cy := a.state.Center.X, a.state.Center.Y
	r := a.state.Radius()

	if a.image != nil {
		w, h := a.image.Bounds().Dx(), a.image.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(a.state.Diameter/float64(w), a.state.Diameter/float64(h))
		op.GeoM.Rotate(a.angle)
		op.GeoM.Translate(cx, cy)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(a.image, op)
		return
	}

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), avatarFillColor, true)
	// a spoke makes the rotation visible on the plain circle
	sin, cos := math.Sincos(a.angle - math.Pi/2)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+cos*r*0.9), float32(cy+sin*r*0.9), 4, avatarMarkerColor, true)
}
