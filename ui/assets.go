package ui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/pairs/game"
)

// ResolveAsset returns the path of the named picture, inside dir when given
// and otherwise inside assets/ next to the executable
func ResolveAsset(dir, name string) string {
	if dir == "" {
		dir = "assets"
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Join(filepath.Dir(exe), "assets")
		}
	}
	return filepath.Join(dir, name)
}

// pictures holds the cover and face pictures; nil entries are drawn
// procedurally instead
type pictures struct {
	cover *pixel.Sprite
	faces [game.NumSkins]*pixel.Sprite
}

func loadPictures(dir string, log logrus.FieldLogger) pictures {
	var pics pictures

	load := func(name string) *pixel.Sprite {
		path := ResolveAsset(dir, name)
		pic, err := loadPicture(path)
		if err != nil {
			log.WithField("path", path).WithError(err).Debug("falling back to drawn tile")
			return nil
		}
		return pixel.NewSprite(pic, pic.Bounds())
	}

	pics.cover = load(game.CoverAsset)
	for skin := range pics.faces {
		pics.faces[skin] = load(fmt.Sprintf("%d.png", skin))
	}
	return pics
}

func loadPicture(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}
