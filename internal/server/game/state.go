package game

import (
	"errors"
	"sync"
	"time"

	"circlechess/internal/circlechess"
)

var ErrIllegalMove = errors.New("illegal move")

// GameState is one live session. The engine is single-threaded, so every
// access to Game goes through the session lock.
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *circlechess.Game
	updatedAt time.Time
}

func newGameState(id string, g *circlechess.Game, created, updated time.Time) *GameState {
	return &GameState{ID: id, CreatedAt: created, game: g, updatedAt: updated}
}

// View runs fn with exclusive access to the game. fn must not keep g.
func (s *GameState) View(fn func(g *circlechess.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

func (s *GameState) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Play applies one move. A rejected move returns ErrIllegalMove and leaves
// the game as it was.
func (s *GameState) Play(from, to circlechess.Tile) (circlechess.MoveResult, error) {
	return s.play(from, to, nil, nil)
}

// play moves a copy of the game and runs commit on it; the session only
// switches to the copy once commit succeeds, so a failed save leaves the
// game as it was. view, if any, sees the new position under the same lock.
func (s *GameState) play(from, to circlechess.Tile, commit func(s *GameState, next *circlechess.Game, updated time.Time) error, view func(g *circlechess.Game)) (circlechess.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.game.Clone()
	res := next.Move(from, to)
	if !res.OK {
		return res, ErrIllegalMove
	}
	updated := time.Now()
	if commit != nil {
		if err := commit(s, next, updated); err != nil {
			return circlechess.MoveResult{}, err
		}
	}
	s.game, s.updatedAt = next, updated
	if view != nil {
		view(s.game)
	}
	return res, nil
}

// Snapshot copies the game so it can be searched or encoded without the lock.
func (s *GameState) Snapshot() *circlechess.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}
