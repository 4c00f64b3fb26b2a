package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const matchedMarker = "*"

type Snapshot struct {
	ID              string `yaml:"id"`
	Seed            int64  `yaml:"seed"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Score           int    `yaml:"score"`
	Turns           int    `yaml:"turns"`
	SerializedBoard string `yaml:"board"`
}

// Snapshot captures the session's board, one line per row. Matched tiles
// carry a trailing "*".
func (session *Session) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		ID:    session.id.String(),
		Seed:  session.seed,
		Score: session.score,
		Turns: session.turns,
	}

	board := session.board
	if board == nil {
		return snapshot
	}
	snapshot.Width, snapshot.Height = board.width, board.height

	var rows strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			rows.WriteString("\n")
		}
		for x := 0; x < board.width; x++ {
			if x > 0 {
				rows.WriteString(" ")
			}
			tile := board.TileAtXY(x, y)
			rows.WriteString(strconv.Itoa(tile.pairID))
			if tile.isMatched {
				rows.WriteString(matchedMarker)
			}
		}
	}
	snapshot.SerializedBoard = rows.String()
	return snapshot
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Board rebuilds the snapshot's board. A fresh board has every tile closed
// and unmatched.
func (snapshot *Snapshot) Board(fresh bool) (*Board, error) {
	if err := ValidateDimensions(snapshot.Width, snapshot.Height); err != nil {
		return nil, err
	}

	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != snapshot.Height {
		return nil, fmt.Errorf("%w: snapshot has %d rows, expected %d", ErrInvalidBoard, len(rows), snapshot.Height)
	}

	var ids []int
	var matched []bool
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != snapshot.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidBoard, y, len(fields), snapshot.Width)
		}
		for _, field := range fields {
			isMatched := strings.HasSuffix(field, matchedMarker)
			id, err := strconv.Atoi(strings.TrimSuffix(field, matchedMarker))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidBoard, y, err)
			}
			ids = append(ids, id)
			matched = append(matched, isMatched)
		}
	}

	board, err := NewBoard(snapshot.Width, snapshot.Height, ids)
	if err != nil {
		return nil, err
	}
	if !fresh {
		for idx, isMatched := range matched {
			if isMatched {
				board.tiles[idx].isMatched = true
				board.tiles[idx].isOpen = true
				board.numMatched++
			}
		}
	}
	return board, nil
}

// Session restores a session from the snapshot. Unless fresh, matched tiles
// and the score carry over.
func (snapshot *Snapshot) Session(fresh bool, options ...SessionOption) (*Session, error) {
	board, err := snapshot.Board(fresh)
	if err != nil {
		return nil, err
	}
	options = append([]SessionOption{WithSeed(snapshot.Seed)}, options...)
	session := NewSession(board, options...)
	if !fresh {
		session.score = snapshot.Score
		session.turns = snapshot.Turns
	}
	return session, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*Snapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	snapshot, err := LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// SaveSnapshot writes the session's snapshot into dir and returns the path
func SaveSnapshot(dir string, session *Session, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	out, err := session.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, snapshotFilename(session, t))
	if err := os.WriteFile(path, []byte(out), 0666); err != nil {
		return "", err
	}
	return path, nil
}

func snapshotFilename(session *Session, t time.Time) string {
	var filenameBuilder strings.Builder

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	if session.phase == Complete {
		filenameBuilder.WriteString("cleared")
	} else {
		filenameBuilder.WriteString("abandoned")
	}

	filenameBuilder.WriteString("_")
	filenameBuilder.WriteString(session.id.String()[:8])
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
