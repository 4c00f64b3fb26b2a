package game

import (
	"fmt"
	"sync"

	"github.com/gammazero/deque"
)

// Event is something the UI, or a director, asks the game to do
type Event interface {
	fmt.Stringer
	isEvent()
}

type StartGame struct {
	Width, Height int
}

type TileSelected struct {
	Index int
}

type ResetRequested struct{}

type ExitRequested struct{}

// AdjustSize nudges the menu's board dimensions
type AdjustSize struct {
	Width, Height int
}

func (StartGame) isEvent()      {}
func (TileSelected) isEvent()   {}
func (ResetRequested) isEvent() {}
func (ExitRequested) isEvent()  {}
func (AdjustSize) isEvent()     {}

func (event StartGame) String() string {
	return fmt.Sprintf("StartGame(%dx%d)", event.Width, event.Height)
}

func (event TileSelected) String() string {
	return fmt.Sprintf("TileSelected(%d)", event.Index)
}

func (ResetRequested) String() string {
	return "ResetRequested"
}

func (ExitRequested) String() string {
	return "ExitRequested"
}

func (event AdjustSize) String() string {
	return fmt.Sprintf("AdjustSize(%+d, %+d)", event.Width, event.Height)
}

// eventQueue may be posted to from any goroutine, but is drained by one
type eventQueue struct {
	lock   sync.Mutex
	events deque.Deque
}

func (queue *eventQueue) push(event Event) {
	queue.lock.Lock()
	defer queue.lock.Unlock()
	queue.events.PushBack(event)
}

func (queue *eventQueue) pop() (Event, bool) {
	queue.lock.Lock()
	defer queue.lock.Unlock()
	if queue.events.Len() == 0 {
		return nil, false
	}
	return queue.events.PopFront().(Event), true
}

func (queue *eventQueue) len() int {
	queue.lock.Lock()
	defer queue.lock.Unlock()
	return queue.events.Len()
}
