// Package memory provides a director with perfect recall: every face it has
// seen is remembered until the board is cleared.
package memory

import (
	"math/rand"
	"sort"

	"github.com/they4kman/pairs/game"
	"github.com/they4kman/pairs/util/collections"
)

type Director struct {
	rand *rand.Rand

	// pair id of every tile seen face up
	faces map[int]int
	// tiles seen per pair id, in the order they were seen
	byPair map[int][]int
	// pair ids in the order their second tile was seen
	knownPairs []int

	unseen collections.Set[int]
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(board *game.Board) {
	director.faces = make(map[int]int, board.NumTiles())
	director.byPair = make(map[int][]int, board.NumPairs())
	director.knownPairs = nil
	director.unseen = collections.NewSet[int]()
	for idx := 0; idx < board.NumTiles(); idx++ {
		director.unseen.Add(idx)
	}
}

func (director *Director) Observe(idx, pairID int) {
	if _, seen := director.faces[idx]; seen {
		return
	}
	director.faces[idx] = pairID
	director.unseen.Remove(idx)

	director.byPair[pairID] = append(director.byPair[pairID], idx)
	if len(director.byPair[pairID]) == 2 {
		director.knownPairs = append(director.knownPairs, pairID)
	}
}

func (director *Director) Act(session *game.Session) (int, bool) {
	board := session.Board()
	if board == nil || director.faces == nil {
		return 0, false
	}

	if pending := session.Pending(); pending != nil {
		for _, idx := range director.byPair[pending.PairID()] {
			if idx != pending.Index() {
				return idx, true
			}
		}
		if idx, ok := director.pickUnseen(board, pending.Index()); ok {
			return idx, true
		}
		return director.pickClosed(board, pending.Index())
	}

	for _, pairID := range director.knownPairs {
		first := board.TileAt(director.byPair[pairID][0])
		if !first.IsMatched() {
			return first.Index(), true
		}
	}

	if idx, ok := director.pickUnseen(board, -1); ok {
		return idx, true
	}
	return director.pickClosed(board, -1)
}

func (director *Director) pickUnseen(board *game.Board, exclude int) (int, bool) {
	candidates := make([]int, 0, len(director.unseen))
	for _, idx := range director.unseen.Values() {
		if tile := board.TileAt(idx); idx != exclude && !tile.IsOpen() && !tile.IsMatched() {
			candidates = append(candidates, idx)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Ints(candidates)
	return candidates[director.rand.Intn(len(candidates))], true
}

func (director *Director) pickClosed(board *game.Board, exclude int) (int, bool) {
	for _, tile := range board.Tiles() {
		if tile.Index() != exclude && !tile.IsOpen() && !tile.IsMatched() {
			return tile.Index(), true
		}
	}
	return 0, false
}

func (director *Director) End() {
	director.faces = nil
	director.byPair = nil
	director.knownPairs = nil
	director.unseen = nil
}
