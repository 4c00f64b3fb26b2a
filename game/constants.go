package game

import "time"

type Phase int

const (
	Idle Phase = iota
	OneSelected
	Resolving
	Complete
)

var phaseNames = map[Phase]string{
	Idle:        "idle",
	OneSelected: "one-selected",
	Resolving:   "resolving",
	Complete:    "complete",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return "unknown"
}

type Screen int

const (
	MenuScreen Screen = iota
	PlayScreen
)

const (
	// NumSkins is the number of face pictures a tile can wear
	NumSkins = 5

	ScorePerMatch = 2

	// bounds of the menu's size picker
	MinDimension = 2
	MaxDimension = 12
	// DimensionStep keeps the menu's width*height even
	DimensionStep = 2

	DefaultFlipDelay   = 500 * time.Millisecond
	DefaultActInterval = 400 * time.Millisecond
)

const (
	CoverAsset = "cover.png"
)
