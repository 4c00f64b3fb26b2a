package ui

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"golang.org/x/image/colornames"

	"github.com/they4kman/pairs/game"
)

// matchedAlpha fades matched tiles while keeping their tint
const matchedAlpha = 0.8

func tintColor(tint game.Tint) pixel.RGBA {
	return pixel.RGBA{R: tint.R, G: tint.G, B: tint.B, A: tint.A}
}

func faceColor(tile *game.Tile) pixel.RGBA {
	color := tintColor(tile.Tint())
	if tile.IsMatched() {
		color = color.Scaled(matchedAlpha)
	}
	return color
}

func drawTile(target pixel.Target, imd *imdraw.IMDraw, pics pictures, tile *game.Tile, rect pixel.Rect) {
	if !tile.IsOpen() {
		if pics.cover != nil {
			drawSprite(target, pics.cover, rect, pixel.Alpha(1))
			return
		}
		imd.Color = colornames.Slategray
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
		return
	}

	if face := pics.faces[tile.Skin()]; face != nil {
		drawSprite(target, face, rect, faceColor(tile))
		return
	}
	drawShape(imd, tile, rect)
}

func drawSprite(target pixel.Target, sprite *pixel.Sprite, rect pixel.Rect, mask pixel.RGBA) {
	frame := sprite.Frame()
	scale := math.Min(rect.W()/frame.W(), rect.H()/frame.H())
	sprite.DrawColorMask(target, pixel.IM.Scaled(pixel.ZV, scale).Moved(rect.Center()), mask)
}

// drawShape stands in for a missing face picture: a tinted card with one
// shape per skin
func drawShape(imd *imdraw.IMDraw, tile *game.Tile, rect pixel.Rect) {
	imd.Color = faceColor(tile)
	imd.Push(rect.Min, rect.Max)
	imd.Rectangle(0)

	center := rect.Center()
	r := math.Min(rect.W(), rect.H()) * 0.3
	shapeColor := pixel.ToRGBA(colornames.Darkslategray)
	if tile.IsMatched() {
		shapeColor = shapeColor.Scaled(matchedAlpha)
	}
	imd.Color = shapeColor

	switch tile.Skin() {
	case 0:
		imd.Push(center)
		imd.Circle(r, 0)
	case 1:
		imd.Push(center.Sub(pixel.V(r, r)), center.Add(pixel.V(r, r)))
		imd.Rectangle(0)
	case 2:
		imd.Push(
			center.Add(pixel.V(0, r)),
			center.Add(pixel.V(-r, -r)),
			center.Add(pixel.V(r, -r)),
		)
		imd.Polygon(0)
	case 3:
		imd.Push(
			center.Add(pixel.V(0, r)),
			center.Add(pixel.V(r, 0)),
			center.Add(pixel.V(0, -r)),
			center.Add(pixel.V(-r, 0)),
		)
		imd.Polygon(0)
	default:
		imd.Push(center.Add(pixel.V(-r, -r)), center.Add(pixel.V(r, r)))
		imd.Line(r / 3)
		imd.Push(center.Add(pixel.V(-r, r)), center.Add(pixel.V(r, -r)))
		imd.Line(r / 3)
	}
}
