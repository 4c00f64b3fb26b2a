// Package layout places the menu and play screen widgets inside a window.
// Pixel's coordinate system has Y pointing up; tile rows are laid out from
// the top of the grid down.
package layout

import (
	"github.com/faiface/pixel"
)

type ButtonID int

const (
	ButtonUp ButtonID = iota
	ButtonDown
	ButtonPlay
	ButtonExit
	ButtonReset
)

type Button struct {
	ID    ButtonID
	Label string
	Rect  pixel.Rect
}

type Label struct {
	Text string
	Rect pixel.Rect
}

const (
	// fraction of the window width taken by the tile grid
	gridFraction = 0.7
	tileSpacing  = 10
	headerHeight = 60
	margin       = 10
)

type Menu struct {
	Cols, Times, Rows pixel.Rect
	Buttons           []Button
}

// MenuLayout centres a box half the window's size, as a column of
// dimension row, Play and Exit.
func MenuLayout(bounds pixel.Rect) Menu {
	w, h := bounds.W()/2, bounds.H()/2
	box := pixel.R(0, 0, w, h).Moved(bounds.Center().Sub(pixel.V(w/2, h/2)))

	rowH := box.H() / 3
	top := pixel.R(box.Min.X, box.Max.Y-rowH, box.Max.X, box.Max.Y)
	play := pixel.R(box.Min.X, box.Max.Y-2*rowH, box.Max.X, box.Max.Y-rowH)
	exit := pixel.R(box.Min.X, box.Min.Y, box.Max.X, box.Max.Y-2*rowH)

	cellW := top.W() / 4
	cell := func(i int) pixel.Rect {
		return pixel.R(top.Min.X+cellW*float64(i), top.Min.Y, top.Min.X+cellW*float64(i+1), top.Max.Y)
	}
	adjust := cell(3)
	mid := adjust.Center().Y

	return Menu{
		Cols:  cell(0),
		Times: cell(1),
		Rows:  cell(2),
		Buttons: []Button{
			{ID: ButtonUp, Label: "up", Rect: pixel.R(adjust.Min.X, mid, adjust.Max.X, adjust.Max.Y)},
			{ID: ButtonDown, Label: "down", Rect: pixel.R(adjust.Min.X, adjust.Min.Y, adjust.Max.X, mid)},
			{ID: ButtonPlay, Label: "Play", Rect: play},
			{ID: ButtonExit, Label: "Exit", Rect: exit},
		},
	}
}

type Play struct {
	ScoreCaption, Score pixel.Rect
	Buttons             []Button
	Tiles               []pixel.Rect
}

// PlayLayout puts Exit, the score and Reset in a header, and a square grid
// of cols x rows tiles below it.
func PlayLayout(bounds pixel.Rect, cols, rows int) Play {
	header := pixel.R(bounds.Min.X, bounds.Max.Y-headerHeight, bounds.Max.X, bounds.Max.Y)
	cellW := header.W() / 4
	cell := func(i int) pixel.Rect {
		return pixel.R(header.Min.X+cellW*float64(i), header.Min.Y, header.Min.X+cellW*float64(i+1), header.Max.Y)
	}

	play := Play{
		ScoreCaption: cell(1),
		Score:        cell(2),
		Buttons: []Button{
			{ID: ButtonExit, Label: "Exit", Rect: cell(0)},
			{ID: ButtonReset, Label: "Reset", Rect: cell(3)},
		},
	}

	side := bounds.W() * gridFraction
	if avail := bounds.H() - headerHeight - 2*margin; avail < side {
		side = avail
	}
	if cols <= 0 || rows <= 0 || side <= 0 {
		return play
	}
	grid := pixel.R(0, 0, side, side).Moved(pixel.V(
		bounds.Center().X-side/2,
		header.Min.Y-margin-side,
	))

	tileW := (grid.W() - tileSpacing*float64(cols-1)) / float64(cols)
	tileH := (grid.H() - tileSpacing*float64(rows-1)) / float64(rows)
	play.Tiles = make([]pixel.Rect, 0, cols*rows)
	for y := 0; y < rows; y++ {
		maxY := grid.Max.Y - float64(y)*(tileH+tileSpacing)
		for x := 0; x < cols; x++ {
			minX := grid.Min.X + float64(x)*(tileW+tileSpacing)
			play.Tiles = append(play.Tiles, pixel.R(minX, maxY-tileH, minX+tileW, maxY))
		}
	}
	return play
}

// TileAt returns the index of the tile under pos
func (play Play) TileAt(pos pixel.Vec) (int, bool) {
	for idx, rect := range play.Tiles {
		if rect.Contains(pos) {
			return idx, true
		}
	}
	return 0, false
}

// ButtonAt returns the button under pos
func ButtonAt(buttons []Button, pos pixel.Vec) (ButtonID, bool) {
	for _, button := range buttons {
		if button.Rect.Contains(pos) {
			return button.ID, true
		}
	}
	return 0, false
}
