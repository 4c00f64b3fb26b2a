package layout

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = pixel.R(0, 0, 600, 700)

func TestPlayLayoutTileOrder(t *testing.T) {
	play := PlayLayout(window, 4, 2)
	require.Len(t, play.Tiles, 8)

	// row-major, first row at the top
	assert.Less(t, play.Tiles[0].Min.X, play.Tiles[1].Min.X)
	assert.Greater(t, play.Tiles[0].Min.Y, play.Tiles[4].Min.Y)
	assert.Equal(t, play.Tiles[0].Min.X, play.Tiles[4].Min.X)
}

func TestPlayLayoutTilesDoNotOverlap(t *testing.T) {
	play := PlayLayout(window, 6, 6)
	for i, a := range play.Tiles {
		for j, b := range play.Tiles {
			if i == j {
				continue
			}
			apart := a.Max.X <= b.Min.X || b.Max.X <= a.Min.X || a.Max.Y <= b.Min.Y || b.Max.Y <= a.Min.Y
			assert.True(t, apart, "tiles %d and %d overlap", i, j)
		}
	}
}

func TestPlayLayoutTileAt(t *testing.T) {
	play := PlayLayout(window, 2, 2)

	for want, rect := range play.Tiles {
		got, ok := play.TileAt(rect.Center())
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := play.TileAt(pixel.V(1, 1))
	assert.False(t, ok)
}

func TestPlayLayoutHeaderButtons(t *testing.T) {
	play := PlayLayout(window, 2, 2)

	id, ok := ButtonAt(play.Buttons, pixel.V(10, 690))
	require.True(t, ok)
	assert.Equal(t, ButtonExit, id)

	id, ok = ButtonAt(play.Buttons, pixel.V(590, 690))
	require.True(t, ok)
	assert.Equal(t, ButtonReset, id)
}

func TestMenuLayoutButtons(t *testing.T) {
	menu := MenuLayout(window)

	for _, button := range menu.Buttons {
		id, ok := ButtonAt(menu.Buttons, button.Rect.Center())
		require.True(t, ok)
		assert.Equal(t, button.ID, id, button.Label)
		assert.True(t, window.Contains(button.Rect.Center()))
	}

	_, ok := ButtonAt(menu.Buttons, pixel.V(1, 1))
	assert.False(t, ok)
}
