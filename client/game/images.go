package game

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Images are the optional images named in the asset config.
type Images struct {
	Background *ebiten.Image
	Avatar     *ebiten.Image
}

// LoadImages reads the configured images. Unset paths are left nil so the
// objects fall back to drawing shapes.
func LoadImages(assets config.AssetConfig) (*Images, error) {
	images := &Images{}
	var err error
	if assets.Background != "" {
		if images.Background, _, err = ebitenutil.NewImageFromFile(assets.Background); err != nil {
			return nil, fmt.Errorf("failed to load background image %s: %v", assets.Background, err)
		}
	}
	if assets.Avatar != "" {
		if images.Avatar, _, err = ebitenutil.NewImageFromFile(assets.Avatar); err != nil {
			return nil, fmt.Errorf("failed to load avatar image %s: %v", assets.Avatar, err)
		}
	}
	return images, nil
}
