package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	session, _ := newTestSession(t, 2, 2, []int{5, 7, 5, 7}, WithSeed(42))
	require.NoError(t, session.Select(0))
	require.NoError(t, session.Select(2))

	snapshot := session.Snapshot()
	assert.Equal(t, "5* 7\n5* 7", snapshot.SerializedBoard)

	out, err := snapshot.Serialize()
	require.NoError(t, err)

	loaded, err := LoadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	restored, err := loaded.Session(false, WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Score())
	assert.Equal(t, 1, restored.Turns())
	assert.Equal(t, int64(42), restored.Seed())
	assert.True(t, restored.Board().TileAt(0).IsMatched())
	assert.Equal(t, 2, restored.Board().NumMatched())
	assert.Equal(t, []int{5, 7, 5, 7}, restored.Board().PairIDs())
}

func TestSnapshotFreshBoard(t *testing.T) {
	snapshot := &Snapshot{Width: 2, Height: 2, Score: 2, SerializedBoard: "5* 7\n5* 7"}

	session, err := snapshot.Session(true, WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, 0, session.Score())
	for _, tile := range session.Board().Tiles() {
		assert.False(t, tile.IsMatched())
		assert.False(t, tile.IsOpen())
	}
}

func TestSnapshotOfClearedBoardIsComplete(t *testing.T) {
	snapshot := &Snapshot{Width: 2, Height: 1, SerializedBoard: "3* 3*"}

	session, err := snapshot.Session(false, WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, Complete, session.Phase())
}

func TestSnapshotRejectsMalformedBoards(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
	}{
		{"row count", Snapshot{Width: 2, Height: 2, SerializedBoard: "1 1"}},
		{"row width", Snapshot{Width: 2, Height: 2, SerializedBoard: "1 1\n2"}},
		{"not a number", Snapshot{Width: 2, Height: 1, SerializedBoard: "x x"}},
		{"unpaired", Snapshot{Width: 2, Height: 1, SerializedBoard: "1 2"}},
		{"huge width", Snapshot{Width: 1 << 30, Height: 1, SerializedBoard: "1 1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.snapshot.Board(true)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestSnapshotRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"negative width", "width: -2\nheight: 1\nboard: 1 1\n"},
		{"negative height", "width: 2\nheight: -1\nboard: 1 1\n"},
		{"zero width", "width: 0\nheight: 2\nboard: \"\"\n"},
		{"odd product", "width: 3\nheight: 1\nboard: 1 1 1\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot, err := LoadSnapshot(test.document)
			require.NoError(t, err)

			assert.NotPanics(t, func() {
				_, err = snapshot.Board(true)
			})
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestSaveSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	session, _ := newTestSession(t, 2, 2, []int{5, 7, 5, 7})
	for _, idx := range []int{0, 2, 1, 3} {
		require.NoError(t, session.Select(idx))
	}

	path, err := SaveSnapshot(dir, session, time.Date(2020, 6, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "20200601_123000_cleared_"), name)
	assert.True(t, strings.HasSuffix(name, ".yaml"), name)

	loaded, err := LoadSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, session.ID().String(), loaded.ID)
	assert.Equal(t, 4, loaded.Score)
}

func TestSaveSnapshotIntoFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0666))

	session, _ := newTestSession(t, 2, 2, []int{5, 7, 5, 7})
	_, err := SaveSnapshot(file, session, time.Now())
	assert.Error(t, err)
}
