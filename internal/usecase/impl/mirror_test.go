package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirror_LastStartedRefetchWins(t *testing.T) {
	var m mirror[string, int]
	m.reset("me", 0)

	source, slow := m.begin()
	_, fast := m.begin()

	assert.True(t, m.apply(source, fast, 2))
	assert.False(t, m.apply(source, slow, 1), "an earlier refetch must not undo a later one")
	assert.Equal(t, 2, m.get())
}

func TestMirror_ResetDiscardsInFlightResults(t *testing.T) {
	var m mirror[string, int]
	m.reset("ana", 0)

	source, ticket := m.begin()
	m.reset("luis", 0)

	assert.False(t, m.apply(source, ticket, 7))
	assert.Equal(t, 0, m.get())
	assert.Equal(t, "luis", m.current())

	source, ticket = m.begin()
	assert.True(t, m.apply(source, ticket, 3))
	assert.Equal(t, 3, m.get())
}
