package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/domain"
)

func testManager(ttl time.Duration) *Manager {
	data := &dataset.Dataset{Streams: map[domain.Stream]dataset.StreamInfo{}}
	return NewManager(func() *agent.Agent {
		return agent.New(data, nil, nil)
	}, ttl, nil)
}

func TestGetCreatesAndReuses(t *testing.T) {
	m := testManager(time.Hour)

	s1 := m.Get("abc")
	require.NotNil(t, s1)
	assert.Equal(t, "abc", s1.ID)
	assert.Equal(t, 1, m.Len())

	s2 := m.Get("abc")
	assert.Same(t, s1, s2, "same id returns the same session")
	assert.Equal(t, 1, m.Len())
}

func TestGetAllocatesIDWhenEmpty(t *testing.T) {
	m := testManager(time.Hour)

	s1 := m.Get("")
	s2 := m.Get("")
	assert.NotEmpty(t, s1.ID)
	assert.NotEmpty(t, s2.ID)
	assert.NotEqual(t, s1.ID, s2.ID, "each empty-id call allocates a fresh session")
	assert.Equal(t, 2, m.Len())
}

func TestLookupDoesNotCreate(t *testing.T) {
	m := testManager(time.Hour)

	_, ok := m.Lookup("ghost")
	assert.False(t, ok)
	assert.Zero(t, m.Len())

	m.Get("real")
	s, ok := m.Lookup("real")
	assert.True(t, ok)
	assert.Equal(t, "real", s.ID)
}

func TestEvictIdle(t *testing.T) {
	m := testManager(10 * time.Minute)

	m.Get("old")
	m.Get("fresh")

	// Only sessions idle past the TTL are dropped.
	evicted := m.EvictIdle(time.Now().Add(5 * time.Minute))
	assert.Zero(t, evicted)
	assert.Equal(t, 2, m.Len())

	evicted = m.EvictIdle(time.Now().Add(11 * time.Minute))
	assert.Equal(t, 2, evicted)
	assert.Zero(t, m.Len())
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	m := testManager(10 * time.Minute)

	m.Get("s")
	// A lookup refreshes the idle clock.
	base := time.Now()
	_, ok := m.Lookup("s")
	require.True(t, ok)

	evicted := m.EvictIdle(base.Add(9 * time.Minute))
	assert.Zero(t, evicted)
	assert.Equal(t, 1, m.Len())
}
