package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/they4kman/pairs/util/collections"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidBoard      = errors.New("invalid board layout")
	ErrNoSuchTile        = errors.New("no such tile")
)

type Board struct {
	width, height int // in number of tiles
	pairCount     int
	tiles         []Tile

	numMatched int
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumTiles() int {
	return len(board.tiles)
}

func (board *Board) NumPairs() int {
	return board.pairCount
}

func (board *Board) NumMatched() int {
	return board.numMatched
}

// IsCleared reports whether every tile has been matched
func (board *Board) IsCleared() bool {
	return board.numMatched == len(board.tiles)
}

func (board *Board) TileAt(idx int) *Tile {
	if idx >= 0 && idx < len(board.tiles) {
		return &board.tiles[idx]
	}
	return nil
}

// TileAtXY addresses tiles in row-major order, with (0, 0) at the top left
func (board *Board) TileAtXY(x, y int) *Tile {
	if x < 0 || y < 0 || x >= board.width || y >= board.height {
		return nil
	}
	return board.TileAt(y*board.width + x)
}

func (board *Board) Tiles() []*Tile {
	tiles := make([]*Tile, len(board.tiles))
	for i := range board.tiles {
		tiles[i] = &board.tiles[i]
	}
	return tiles
}

// PairIDs returns the layout of the board, in tile order
func (board *Board) PairIDs() []int {
	ids := make([]int, len(board.tiles))
	for i, tile := range board.tiles {
		ids[i] = tile.pairID
	}
	return ids
}

// ValidateDimensions accepts any positive size with an even number of tiles.
// The menu's own bounds are narrower; see MinDimension and MaxDimension.
func ValidateDimensions(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d is not positive", ErrInvalidDimensions, width, height)
	case (width*height)%2 != 0:
		return fmt.Errorf("%w: %dx%d has an odd number of tiles", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Generate deals a fresh board. Pair ids are drawn without replacement from
// [0, pairCount]; the first half of the board holds them in draw order and the
// second half holds an independently shuffled copy.
func Generate(width, height int, rng *rand.Rand) (*Board, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	pairCount := width * height / 2
	ids := drawPairIDs(pairCount, rng)

	shuffled := make([]int, pairCount)
	copy(shuffled, ids)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return createBoard(width, height, append(ids, shuffled...)), nil
}

func drawPairIDs(pairCount int, rng *rand.Rand) []int {
	seen := collections.NewSet[int]()
	ids := make([]int, 0, pairCount)
	for len(ids) < pairCount {
		if id := rng.Intn(pairCount + 1); seen.AddIfAbsent(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// NewBoard builds a board from an explicit layout, e.g. one read from a snapshot
func NewBoard(width, height int, pairIDs []int) (*Board, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pairIDs) != width*height {
		return nil, fmt.Errorf("%w: %d ids for a %dx%d board", ErrInvalidBoard, len(pairIDs), width, height)
	}

	counts := make(map[int]int, len(pairIDs)/2)
	for _, id := range pairIDs {
		if id < 0 {
			return nil, fmt.Errorf("%w: negative pair id %d", ErrInvalidBoard, id)
		}
		counts[id]++
	}
	for id, count := range counts {
		if count != 2 {
			return nil, fmt.Errorf("%w: pair id %d occurs %d times", ErrInvalidBoard, id, count)
		}
	}

	return createBoard(width, height, pairIDs), nil
}

func createBoard(width, height int, pairIDs []int) *Board {
	board := Board{
		width:     width,
		height:    height,
		pairCount: len(pairIDs) / 2,
		tiles:     make([]Tile, len(pairIDs)),
	}
	for idx, id := range pairIDs {
		board.tiles[idx] = newTile(idx, id, board.pairCount)
	}
	return &board
}
