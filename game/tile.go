package game

import (
	"fmt"
	"math"
)

// Tint is a colour mask applied to a tile's face picture, channels in [0, 1]
type Tint struct {
	R, G, B, A float64
}

var White = Tint{1, 1, 1, 1}

type TintBucket int

const (
	LowBucket TintBucket = iota
	MidBucket
	HighBucket
)

type Tile struct {
	idx    int
	pairID int

	isOpen, isMatched bool

	skin   int
	bucket TintBucket
	tint   Tint
}

func newTile(idx, pairID, pairCount int) Tile {
	bucket := tintBucket(pairID, pairCount)
	return Tile{
		idx:    idx,
		pairID: pairID,
		skin:   pairID % NumSkins,
		bucket: bucket,
		tint:   bucketTint(pairID, bucket),
	}
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%d, pair=%d)", tile.idx, tile.pairID)
}

func (tile *Tile) Index() int {
	return tile.idx
}

func (tile *Tile) PairID() int {
	return tile.pairID
}

func (tile *Tile) IsOpen() bool {
	return tile.isOpen
}

func (tile *Tile) IsMatched() bool {
	return tile.isMatched
}

// Skin selects one of NumSkins face pictures
func (tile *Tile) Skin() int {
	return tile.skin
}

// FaceAsset is the file name of the tile's face picture
func (tile *Tile) FaceAsset() string {
	return fmt.Sprintf("%d.png", tile.skin)
}

func (tile *Tile) Bucket() TintBucket {
	return tile.bucket
}

func (tile *Tile) Tint() Tint {
	return tile.tint
}

func (tile *Tile) selectable() bool {
	return !tile.isOpen && !tile.isMatched
}

// tintBucket splits [0, pairCount) into thirds
func tintBucket(pairID, pairCount int) TintBucket {
	r := float64(pairCount)
	id := float64(pairID)
	switch {
	case id < r/3:
		return LowBucket
	case id < 2*r/3:
		return MidBucket
	default:
		return HighBucket
	}
}

func bucketTint(pairID int, bucket TintBucket) Tint {
	dim := math.Min(1, math.Floor(float64(pairID)/255)+0.02)
	tint := White
	switch bucket {
	case LowBucket:
		tint.R = dim
	case MidBucket:
		tint.G = dim
	case HighBucket:
		tint.B = dim
	}
	return tint
}
