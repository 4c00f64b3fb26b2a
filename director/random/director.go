package random

import (
	"math/rand"

	"github.com/they4kman/pairs/game"
)

// Director picks any tile it is allowed to, at random
type Director struct {
	rand  *rand.Rand
	board *game.Board
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

func (director *Director) Act(session *game.Session) (int, bool) {
	board := session.Board()
	if board == nil {
		return 0, false
	}

	closedTiles := make([]int, 0, board.NumTiles())
	for _, tile := range board.Tiles() {
		if !tile.IsOpen() && !tile.IsMatched() {
			closedTiles = append(closedTiles, tile.Index())
		}
	}
	if len(closedTiles) == 0 {
		return 0, false
	}
	return closedTiles[director.rand.Intn(len(closedTiles))], true
}

func (director *Director) Observe(idx, pairID int) {}

func (director *Director) End() {
	director.board = nil
}
