package session

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"janggi/internal/janggi"
)

var (
	ErrNotFound  = errors.New("game not found")
	ErrAmbiguous = errors.New("game id prefix is ambiguous")
)

// Entry is one game held by a Manager.
type Entry struct {
	Game      *janggi.Game
	UpdatedAt time.Time
}

// Manager keeps the games of one driver, keyed by game ID. The games
// themselves are not safe for concurrent use; the manager only guards its map.
type Manager struct {
	mu    sync.RWMutex
	cfg   janggi.Config
	games map[string]*Entry
}

func NewManager(cfg janggi.Config) *Manager {
	return &Manager{cfg: cfg, games: make(map[string]*Entry)}
}

func (m *Manager) NewGame() (*janggi.Game, error) {
	g, err := janggi.NewGame(m.cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &Entry{Game: g, UpdatedAt: g.CreatedAt}
	return g, nil
}

// Get looks a game up by its ID or by an unambiguous ID prefix.
func (m *Manager) Get(id string) (*janggi.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e.Game, nil
	}
	var found *Entry
	for k, e := range m.games {
		if id == "" || !strings.HasPrefix(k, id) {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguous
		}
		found = e
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found.Game, nil
}

// Touch records that a game was just played.
func (m *Manager) Touch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	e.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// List returns the games, oldest first.
func (m *Manager) List() []Entry {
	m.mu.RLock()
	out := make([]Entry, 0, len(m.games))
	for _, e := range m.games {
		out = append(out, *e)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if c := a.Game.CreatedAt.Compare(b.Game.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Game.ID, b.Game.ID)
	})
	return out
}
