package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RevealFunc is told about every face that is turned up
type RevealFunc func(idx, pairID int)

// Session is the match controller for one board. It is not safe for
// concurrent use; all calls come from the goroutine driving the game.
type Session struct {
	id    uuid.UUID
	seed  int64
	board *Board

	phase   Phase
	score   int
	turns   int
	pending *Tile
	// the mismatched pair waiting to be hidden
	showing []*Tile

	flipDelay time.Duration
	policy    ResolvePolicy
	scheduler *Scheduler
	hideTask  *Task

	onReveal RevealFunc
	log      logrus.FieldLogger
}

type SessionOption func(*Session)

func WithFlipDelay(delay time.Duration) SessionOption {
	return func(session *Session) {
		session.flipDelay = delay
	}
}

func WithPolicy(policy ResolvePolicy) SessionOption {
	return func(session *Session) {
		session.policy = policy
	}
}

func WithScheduler(scheduler *Scheduler) SessionOption {
	return func(session *Session) {
		session.scheduler = scheduler
	}
}

func WithLogger(log logrus.FieldLogger) SessionOption {
	return func(session *Session) {
		session.log = log
	}
}

func WithSeed(seed int64) SessionOption {
	return func(session *Session) {
		session.seed = seed
	}
}

func NewSession(board *Board, options ...SessionOption) *Session {
	session := &Session{
		id:        uuid.New(),
		board:     board,
		phase:     Idle,
		flipDelay: DefaultFlipDelay,
		policy:    FlushOnSelect,
	}
	for _, option := range options {
		option(session)
	}
	if session.scheduler == nil {
		session.scheduler = NewScheduler(SystemClock)
	}
	if session.log == nil {
		session.log = logrus.StandardLogger()
	}
	session.log = session.log.WithField("session", session.id.String())

	if board != nil && board.IsCleared() {
		session.phase = Complete
	}
	return session
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Phase() Phase {
	return session.phase
}

func (session *Session) Score() int {
	return session.score
}

// Turns counts completed turns, matched or not
func (session *Session) Turns() int {
	return session.turns
}

// Pending is the tile waiting for its partner, if any
func (session *Session) Pending() *Tile {
	return session.pending
}

func (session *Session) OnReveal(fn RevealFunc) {
	session.onReveal = fn
}

// Select handles a tile being picked by the player
func (session *Session) Select(idx int) error {
	if session.board == nil {
		return fmt.Errorf("%w: no board in play", ErrNoSuchTile)
	}
	tile := session.board.TileAt(idx)
	if tile == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchTile, idx)
	}

	if session.phase == Resolving {
		if session.policy == IgnoreWhileResolving {
			session.log.WithField("tile", idx).Debug("ignoring selection while resolving")
			return nil
		}
		session.hideTask.Cancel()
		session.hideShowing()
	}

	switch session.phase {
	case Complete:
		return nil
	case Idle:
		if !tile.selectable() {
			return nil
		}
		session.reveal(tile)
		session.pending = tile
		session.phase = OneSelected
	case OneSelected:
		if tile == session.pending || !tile.selectable() {
			return nil
		}
		session.reveal(tile)
		session.compare(session.pending, tile)
	}
	return nil
}

func (session *Session) compare(first, second *Tile) {
	session.pending = nil
	session.turns++

	fields := logrus.Fields{
		"first":  first.idx,
		"second": second.idx,
		"turn":   session.turns,
	}

	if first.pairID != second.pairID {
		session.showing = []*Tile{first, second}
		session.phase = Resolving
		session.hideTask = session.scheduler.After(session.flipDelay, session.hideShowing)
		fields["hide_at"] = session.hideTask.Due()
		session.log.WithFields(fields).Debug("mismatch")
		return
	}

	first.isMatched = true
	second.isMatched = true
	session.board.numMatched += 2
	session.score += ScorePerMatch
	session.phase = Idle

	fields["pair"] = first.pairID
	fields["score"] = session.score
	session.log.WithFields(fields).Info("matched pair")

	if session.board.IsCleared() {
		session.phase = Complete
		session.log.WithFields(logrus.Fields{
			"score": session.score,
			"turns": session.turns,
		}).Info("board cleared")
	}
}

func (session *Session) reveal(tile *Tile) {
	tile.isOpen = true
	if session.onReveal != nil {
		session.onReveal(tile.idx, tile.pairID)
	}
}

func (session *Session) hideShowing() {
	for _, tile := range session.showing {
		tile.isOpen = false
	}
	session.showing = nil
	session.hideTask = nil
	if session.phase == Resolving {
		session.phase = Idle
	}
}

// Tick runs deferred actions that have come due
func (session *Session) Tick() {
	session.scheduler.Advance()
}

// Reset abandons the board. Any pending hide is cancelled.
func (session *Session) Reset() {
	session.hideTask.Cancel()
	session.hideTask = nil
	session.showing = nil
	session.pending = nil
	session.board = nil
	session.score = 0
	session.turns = 0
	session.phase = Idle
	session.log.Debug("session reset")
}
