package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janggi/internal/janggi"
)

func TestManager(t *testing.T) {
	m := NewManager(janggi.Config{})

	a, err := m.NewGame()
	require.NoError(t, err)
	b, err := m.NewGame()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := m.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	got, err = m.Get(b.ID[:8])
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = m.Get("not-a-game")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get("")
	assert.ErrorIs(t, err, ErrNotFound)

	list := m.List()
	require.Len(t, list, 2)
	ids := []string{list[0].Game.ID, list[1].Game.ID}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)

	require.NoError(t, m.Touch(a.ID))
	assert.ErrorIs(t, m.Touch("nope"), ErrNotFound)

	m.Remove(a.ID)
	_, err = m.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, m.List(), 1)
}

func TestManagerBadConfig(t *testing.T) {
	m := NewManager(janggi.Config{Layout: "garbage"})
	_, err := m.NewGame()
	assert.ErrorIs(t, err, janggi.ErrInvalidLayout)
	assert.Empty(t, m.List())
}
