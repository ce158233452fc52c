package game

import (
	"sync"

	"github.com/mcoot/wordmove/internal/model"
)

// gameLocks hands out one mutex per game so moves on the same game run one
// at a time while different games proceed in parallel. Entries live only
// while someone holds or waits on them.
type gameLocks struct {
	mu    sync.Mutex
	locks map[model.GameID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[model.GameID]*lockEntry)}
}

// lock acquires the game's mutex and returns its release func
func (g *gameLocks) lock(id model.GameID) func() {
	g.mu.Lock()
	e, ok := g.locks[id]
	if !ok {
		e = &lockEntry{}
		g.locks[id] = e
	}
	e.refs++
	g.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		g.mu.Lock()
		defer g.mu.Unlock()
		e.refs--
		if e.refs == 0 {
			delete(g.locks, id)
		}
	}
}
