package objects

import (
	"image"
	"image/color"
	"sync"

	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	obstacleStartColor = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	obstacleEndColor   = color.RGBA{R: 255, G: 204, B: 0, A: 255}

	whiteSubImage     *ebiten.Image
	whiteSubImageOnce sync.Once
)

// fillSource returns a white pixel to tint with vertex colors.
func fillSource() *ebiten.Image {
	whiteSubImageOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Obstacle draws a bar with a horizontal blue to yellow gradient.
type Obstacle struct {
	*BaseObject

	state    *gametypes.ObstacleState
	vertices []ebiten.Vertex
}

func NewObstacle(id string, state *gametypes.ObstacleState, zIndex int) *Obstacle {
	return &Obstacle{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		state:      state,
		vertices:   make([]ebiten.Vertex, 4),
	}
}

var obstacleIndices = []uint16{0, 1, 2, 1, 2, 3}

func (o *Obstacle) Draw(screen *ebiten.Image) {
	r := o.state.Rect()
	corners := [4][2]float64{
		{r.MinX(), r.MinY()},
		{r.MaxX(), r.MinY()},
		{r.MinX(), r.MaxY()},
		{r.MaxX(), r.MaxY()},
	}
	for i, c := range corners {
		clr := obstacleStartColor
		if i%2 == 1 {
			clr = obstacleEndColor
		}
		o.vertices[i] = ebiten.Vertex{
			DstX:   float32(c[0]),
			DstY:   float32(c[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		}
	}
	screen.DrawTriangles(o.vertices, obstacleIndices, fillSource(), &ebiten.DrawTrianglesOptions{})
}
