package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/pairs/game"
	"github.com/they4kman/pairs/ui/layout"
)

const (
	windowWidth  = 600
	windowHeight = 700
	title        = "pairs"
)

var buttonEvents = map[layout.ButtonID]func(*game.Game) game.Event{
	layout.ButtonUp: func(*game.Game) game.Event {
		return game.AdjustSize{Width: game.DimensionStep, Height: game.DimensionStep}
	},
	layout.ButtonDown: func(*game.Game) game.Event {
		return game.AdjustSize{Width: -game.DimensionStep, Height: -game.DimensionStep}
	},
	layout.ButtonPlay: func(g *game.Game) game.Event {
		width, height := g.MenuSize()
		return game.StartGame{Width: width, Height: height}
	},
	layout.ButtonExit: func(*game.Game) game.Event {
		return game.ExitRequested{}
	},
	layout.ButtonReset: func(*game.Game) game.Event {
		return game.ResetRequested{}
	},
}

// Run opens the window and drives g until the window is closed or the player
// exits. It must be called from within pixelgl.Run.
func Run(g *game.Game, log logrus.FieldLogger) error {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	pics := loadPictures(g.Config().AssetsDir, log)
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() && !g.Exiting() {
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			if event, ok := clickEvent(g, win.Bounds(), win.MousePosition()); ok {
				g.Post(event)
			}
		}
		if win.JustPressed(pixelgl.KeyEscape) {
			g.Post(game.ResetRequested{})
		}

		// rejected events are logged by the game
		_ = g.Update()

		win.Clear(bgColor)
		imd := imdraw.New(nil)
		labels := make([]layout.Label, 0, 8)

		switch g.Screen() {
		case game.MenuScreen:
			labels = drawMenu(imd, g, win.Bounds(), labels)
		case game.PlayScreen:
			labels = drawPlay(win, imd, pics, g, win.Bounds(), labels)
		}

		imd.Draw(win)
		for _, label := range labels {
			drawLabel(win, atlas, label)
		}

		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}
	}

	if !g.Exiting() {
		g.Post(game.ExitRequested{})
		_ = g.Update()
	}
	return nil
}

func clickEvent(g *game.Game, bounds pixel.Rect, pos pixel.Vec) (game.Event, bool) {
	var buttons []layout.Button
	switch g.Screen() {
	case game.MenuScreen:
		buttons = layout.MenuLayout(bounds).Buttons
	case game.PlayScreen:
		board := g.Session().Board()
		if board == nil {
			return nil, false
		}
		play := layout.PlayLayout(bounds, board.Width(), board.Height())
		if idx, ok := play.TileAt(pos); ok {
			return game.TileSelected{Index: idx}, true
		}
		buttons = play.Buttons
	}

	if id, ok := layout.ButtonAt(buttons, pos); ok {
		return buttonEvents[id](g), true
	}
	return nil, false
}

func drawMenu(imd *imdraw.IMDraw, g *game.Game, bounds pixel.Rect, labels []layout.Label) []layout.Label {
	menu := layout.MenuLayout(bounds)
	width, height := g.MenuSize()

	labels = append(labels,
		layout.Label{Text: strconv.Itoa(width), Rect: menu.Cols},
		layout.Label{Text: "x", Rect: menu.Times},
		layout.Label{Text: strconv.Itoa(height), Rect: menu.Rows},
	)
	return drawButtons(imd, menu.Buttons, labels)
}

func drawPlay(target pixel.Target, imd *imdraw.IMDraw, pics pictures, g *game.Game, bounds pixel.Rect, labels []layout.Label) []layout.Label {
	session := g.Session()
	board := session.Board()
	if board == nil {
		return labels
	}
	play := layout.PlayLayout(bounds, board.Width(), board.Height())

	labels = append(labels,
		layout.Label{Text: "Score", Rect: play.ScoreCaption},
		layout.Label{Text: strconv.Itoa(session.Score()), Rect: play.Score},
	)
	labels = drawButtons(imd, play.Buttons, labels)

	// sprites go straight to the target; drawn shapes are batched in imd
	for idx, rect := range play.Tiles {
		drawTile(target, imd, pics, board.TileAt(idx), rect)
	}
	return labels
}

func drawButtons(imd *imdraw.IMDraw, buttons []layout.Button, labels []layout.Label) []layout.Label {
	for _, button := range buttons {
		rect := button.Rect
		imd.Color = colornames.Dimgray
		imd.Push(rect.Min.Add(pixel.V(2, 2)), rect.Max.Sub(pixel.V(2, 2)))
		imd.Rectangle(0)
		labels = append(labels, layout.Label{Text: button.Label, Rect: rect})
	}
	return labels
}

func drawLabel(target pixel.Target, atlas *text.Atlas, label layout.Label) {
	txt := text.New(pixel.ZV, atlas)
	txt.Color = colornames.Black
	fmt.Fprint(txt, label.Text)

	matrix := pixel.IM.Scaled(pixel.ZV, 2)
	offset := label.Rect.Center().Sub(txt.Bounds().Center().Scaled(2))
	txt.Draw(target, matrix.Moved(offset))
}
