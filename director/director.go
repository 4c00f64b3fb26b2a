// Package director looks up the automated players by name.
package director

import (
	"fmt"
	"sort"
	"time"

	"github.com/they4kman/pairs/director/memory"
	"github.com/they4kman/pairs/director/random"
	"github.com/they4kman/pairs/game"
)

var directors = map[string]func(seed int64) game.Director{
	"random": func(seed int64) game.Director { return random.New(seed) },
	"memory": func(seed int64) game.Director { return memory.New(seed) },
}

// Names lists the known directors
func Names() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named director. A zero seed picks one from the clock.
func New(name string, seed int64) (game.Director, error) {
	create, ok := directors[name]
	if !ok {
		return nil, fmt.Errorf("unknown director %q (want one of %v)", name, Names())
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return create(seed), nil
}
