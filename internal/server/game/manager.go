package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"circlechess/internal/circlechess"
	"circlechess/internal/storage"
)

var ErrGameNotFound = errors.New("game not found")

// Store persists session snapshots. *storage.Storage satisfies it.
type Store interface {
	Save(rec *storage.Record) error
	Load(id string) (*storage.Record, error)
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	store Store // optional
}

// NewManager keeps games in memory; with a non-nil store every new game
// and every applied move is also written through.
func NewManager(store Store) *Manager {
	return &Manager{games: make(map[string]*GameState), store: store}
}

// NewGame registers a fresh game once its first snapshot is stored.
func (m *Manager) NewGame() (*GameState, error) {
	now := time.Now()
	g := newGameState(uuid.NewString(), circlechess.NewGame(), now, now)
	if err := m.save(g, g.game, now); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g, nil
}

// Get returns a live game, reloading it from the store after a restart.
func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return g, nil
	}
	if m.store == nil {
		return nil, ErrGameNotFound
	}

	rec, err := m.store.Load(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	pos, err := circlechess.DecodeGame(rec.Position)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		return g, nil // another request reloaded it first
	}
	g = newGameState(rec.ID, pos, rec.CreatedAt, rec.UpdatedAt)
	m.games[id] = g
	return g, nil
}

// Play applies a move to game id and writes the new position through. A
// failed write leaves the game unchanged.
func (m *Manager) Play(id string, from, to circlechess.Tile) (circlechess.MoveResult, error) {
	return m.PlayView(id, from, to, nil)
}

// PlayView is Play with fn run on the resulting position before anyone else
// can move, so callers can report exactly the position their move produced.
func (m *Manager) PlayView(id string, from, to circlechess.Tile, fn func(g *circlechess.Game)) (circlechess.MoveResult, error) {
	g, err := m.Get(id)
	if err != nil {
		return circlechess.MoveResult{}, err
	}
	return g.play(from, to, m.save, fn)
}

func (m *Manager) save(g *GameState, pos *circlechess.Game, updated time.Time) error {
	if m.store == nil {
		return nil
	}
	rec := storage.Record{
		ID:        g.ID,
		Position:  pos.Encode(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: updated,
	}
	if err := m.store.Save(&rec); err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}
