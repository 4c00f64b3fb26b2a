package game

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairCounts(board *Board) map[int]int {
	counts := make(map[int]int)
	for _, id := range board.PairIDs() {
		counts[id]++
	}
	return counts
}

func TestGenerateEveryPairTwice(t *testing.T) {
	sizes := []struct{ width, height int }{
		{2, 2}, {2, 3}, {4, 4}, {6, 4}, {10, 12}, {12, 12},
	}

	rng := rand.New(rand.NewSource(1))
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			board, err := Generate(size.width, size.height, rng)
			require.NoError(t, err)

			pairCount := size.width * size.height / 2
			assert.Equal(t, size.width*size.height, board.NumTiles())
			assert.Equal(t, pairCount, board.NumPairs())

			counts := pairCounts(board)
			assert.Len(t, counts, pairCount)
			for id, count := range counts {
				assert.Equal(t, 2, count, "pair id %d", id)
				assert.GreaterOrEqual(t, id, 0)
				assert.LessOrEqual(t, id, pairCount)
			}
		})
	}
}

func TestGenerateSecondHalfIsPermutationOfFirst(t *testing.T) {
	board, err := Generate(6, 6, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	ids := board.PairIDs()
	first := append([]int(nil), ids[:18]...)
	second := append([]int(nil), ids[18:]...)
	sort.Ints(first)
	sort.Ints(second)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.NotEqual(t, first[i-1], first[i], "first half repeats an id")
	}
}

func TestGeneratePartnersAreNotAtFixedOffset(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	offsets := make(map[int]struct{})

	for i := 0; i < 200; i++ {
		board, err := Generate(4, 4, rng)
		require.NoError(t, err)

		ids := board.PairIDs()
		for idx := 0; idx < 8; idx++ {
			for partner := 8; partner < 16; partner++ {
				if ids[partner] == ids[idx] {
					offsets[partner-idx] = struct{}{}
				}
			}
		}
	}

	assert.Greater(t, len(offsets), 1)
}

func TestGenerateInvalidDimensions(t *testing.T) {
	sizes := []struct{ width, height int }{
		{0, 2}, {2, 0}, {-2, 4}, {3, 3}, {1, 1},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			board, err := Generate(size.width, size.height, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, board)
		})
	}
}

func TestGenerateBeyondMenuBounds(t *testing.T) {
	sizes := []struct{ width, height int }{
		{MaxDimension + 2, 2}, {1, 2}, {20, 20}, {3, 30},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			board, err := Generate(size.width, size.height, rand.New(rand.NewSource(5)))
			require.NoError(t, err)
			assert.Equal(t, size.width*size.height, board.NumTiles())

			counts := pairCounts(board)
			assert.Len(t, counts, board.NumPairs())
			for id, count := range counts {
				assert.Equal(t, 2, count, "pair id %d", id)
			}
		})
	}
}

func TestTileCosmetics(t *testing.T) {
	board, err := NewBoard(2, 3, []int{0, 1, 2, 0, 1, 2})
	require.NoError(t, err)

	low, mid, high := board.TileAt(0), board.TileAt(1), board.TileAt(2)

	assert.Equal(t, LowBucket, low.Bucket())
	assert.Equal(t, MidBucket, mid.Bucket())
	assert.Equal(t, HighBucket, high.Bucket())

	assert.InDelta(t, 0.02, low.Tint().R, 1e-9)
	assert.Equal(t, 1.0, low.Tint().G)
	assert.InDelta(t, 0.02, mid.Tint().G, 1e-9)
	assert.InDelta(t, 0.02, high.Tint().B, 1e-9)
	assert.Equal(t, 1.0, high.Tint().A)

	assert.Equal(t, 2, high.Skin())
	assert.Equal(t, "2.png", high.FaceAsset())
}

func TestTileSkinWrapsAround(t *testing.T) {
	board, err := NewBoard(2, 2, []int{7, 5, 5, 7})
	require.NoError(t, err)

	assert.Equal(t, 2, board.TileAt(0).Skin())
	assert.Equal(t, 0, board.TileAt(1).Skin())
}

func TestNewBoardRejectsBrokenLayouts(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
	}{
		{"too few ids", []int{1, 1}},
		{"id three times", []int{1, 1, 1, 2}},
		{"unpaired ids", []int{1, 2, 3, 4}},
		{"negative id", []int{-1, -1, 2, 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBoard(2, 2, test.ids)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestBoardTileAtXY(t *testing.T) {
	board, err := NewBoard(2, 2, []int{5, 7, 7, 5})
	require.NoError(t, err)

	assert.Equal(t, 7, board.TileAtXY(0, 1).PairID())
	assert.Equal(t, 2, board.TileAtXY(0, 1).Index())
	assert.Nil(t, board.TileAtXY(2, 0))
	assert.Nil(t, board.TileAt(-1))
}
