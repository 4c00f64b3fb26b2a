package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Game owns the menu, the session in play and the queue of events feeding
// them. Update must be called regularly from a single goroutine.
type Game struct {
	config    Config
	rand      *rand.Rand
	clock     Clock
	scheduler *Scheduler

	screen        Screen
	width, height int
	session       *Session
	recorded      bool
	exiting       bool

	director Director
	nextAct  time.Time

	events eventQueue
	log    logrus.FieldLogger
}

type Option func(*Game)

func WithClock(clock Clock) Option {
	return func(game *Game) {
		game.clock = clock
	}
}

func WithDirector(director Director) Option {
	return func(game *Game) {
		game.director = director
	}
}

func WithGameLogger(log logrus.FieldLogger) Option {
	return func(game *Game) {
		game.log = log
	}
}

func New(config Config, options ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	game := &Game{
		config: config,
		clock:  SystemClock,
		screen: MenuScreen,
		width:  config.Width,
		height: config.Height,
		log:    logrus.StandardLogger(),
	}
	for _, option := range options {
		option(game)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.rand = rand.New(rand.NewSource(seed))
	game.scheduler = NewScheduler(game.clock)

	return game, nil
}

func (game *Game) Config() Config {
	return game.config
}

func (game *Game) Screen() Screen {
	return game.screen
}

// MenuSize is the board size the menu will deal next
func (game *Game) MenuSize() (int, int) {
	return game.width, game.height
}

// Session is the session in play; nil until the first game starts
func (game *Game) Session() *Session {
	return game.session
}

func (game *Game) Exiting() bool {
	return game.exiting
}

func (game *Game) Post(event Event) {
	game.events.push(event)
}

// Process dispatches every queued event
func (game *Game) Process() error {
	var errs []error
	for {
		event, ok := game.events.pop()
		if !ok {
			break
		}
		if err := game.Dispatch(event); err != nil {
			game.log.WithField("event", event.String()).WithError(err).Warn("event rejected")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (game *Game) Dispatch(event Event) error {
	switch event := event.(type) {
	case StartGame:
		return game.startGame(event.Width, event.Height)
	case TileSelected:
		if game.screen != PlayScreen || game.session == nil {
			return nil
		}
		return game.session.Select(event.Index)
	case ResetRequested:
		game.reset()
	case ExitRequested:
		game.reset()
		game.exiting = true
	case AdjustSize:
		game.width = nudgeDimension(game.width, event.Width)
		game.height = nudgeDimension(game.height, event.Height)
	default:
		return fmt.Errorf("unknown event %v", event)
	}
	return nil
}

// Update processes events, runs due deferred actions and lets the director act
func (game *Game) Update() error {
	err := game.Process()

	if game.session == nil {
		return err
	}
	game.session.Tick()

	if game.director != nil && game.screen == PlayScreen {
		game.directorAct()
	}

	if game.session.Phase() == Complete && !game.recorded {
		game.recorded = true
		game.saveSnapshot()
		if game.director != nil {
			game.director.End()
		}
	}
	return err
}

func (game *Game) directorAct() {
	now := game.clock.Now()
	if now.Before(game.nextAct) {
		return
	}
	switch game.session.Phase() {
	case Resolving, Complete:
		return
	}

	game.nextAct = now.Add(game.config.ActInterval)
	if idx, ok := game.director.Act(game.session); ok {
		if err := game.session.Select(idx); err != nil {
			game.log.WithError(err).Warn("director made an illegal selection")
		}
	}
}

func (game *Game) startGame(width, height int) error {
	session, err := game.newSession(width, height)
	if err != nil {
		return err
	}
	if game.screen == PlayScreen {
		game.reset()
	}

	board := session.Board()
	game.session = session
	game.recorded = false
	game.screen = PlayScreen
	game.width, game.height = board.Width(), board.Height()

	if game.director != nil {
		game.director.Init(board)
		session.OnReveal(game.director.Observe)
		game.nextAct = game.clock.Now().Add(game.config.ActInterval)
	}

	game.log.WithFields(logrus.Fields{
		"session": session.ID().String(),
		"width":   board.Width(),
		"height":  board.Height(),
		"seed":    session.Seed(),
	}).Info("game started")
	return nil
}

// newSession deals the next board, from the pending snapshot if there is one
func (game *Game) newSession(width, height int) (*Session, error) {
	options := []SessionOption{
		WithFlipDelay(game.config.FlipDelay),
		WithPolicy(game.config.Policy),
		WithScheduler(game.scheduler),
		WithLogger(game.log),
	}

	if snapshot := game.config.Snapshot; snapshot != nil {
		game.config.Snapshot = nil
		session, err := snapshot.Session(!game.config.Resume, options...)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		return session, nil
	}

	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	seed := game.rand.Int63()
	board, err := Generate(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return NewSession(board, append(options, WithSeed(seed))...), nil
}

func (game *Game) reset() {
	session := game.session
	if session != nil && session.Board() != nil {
		if !game.recorded {
			game.recorded = true
			game.saveSnapshot()
		}
		if game.director != nil && session.Phase() != Complete {
			game.director.End()
		}
		session.Reset()
	}
	game.scheduler.Clear()
	game.screen = MenuScreen
}

func (game *Game) saveSnapshot() {
	if game.config.SavedSnapshotsDir == "" {
		return
	}
	path, err := SaveSnapshot(game.config.SavedSnapshotsDir, game.session, game.clock.Now())
	if err != nil {
		game.log.WithError(err).Error("could not save snapshot")
		return
	}
	game.log.WithField("path", path).Info("saved snapshot")
}

// Autoplay lets the director play a board to completion, advancing clock by
// the act interval between steps. It gives up after maxSteps.
func (game *Game) Autoplay(ctx context.Context, clock *ManualClock, maxSteps int) error {
	if game.director == nil {
		return errors.New("autoplay needs a director")
	}
	if game.session == nil || game.screen != PlayScreen {
		return errors.New("no game in play")
	}

	for step := 0; step < maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := game.Update(); err != nil {
			return err
		}
		if game.session.Phase() == Complete {
			return nil
		}
		clock.Add(game.config.ActInterval)
	}
	return fmt.Errorf("board not cleared after %d steps", maxSteps)
}

// nudgeDimension moves value by delta rounded away from zero to whole steps,
// so an even dimension stays even
func nudgeDimension(value, delta int) int {
	steps := (delta + DimensionStep - 1) / DimensionStep
	if delta < 0 {
		steps = -((-delta + DimensionStep - 1) / DimensionStep)
	}
	return clampDimension(value + steps*DimensionStep)
}

func clampDimension(value int) int {
	if value < MinDimension {
		return MinDimension
	}
	if value > MaxDimension {
		return MaxDimension
	}
	return value
}
