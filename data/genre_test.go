package data_test

import (
	"testing"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/stretchr/testify/assert"
)

func TestTopGenre(t *testing.T) {
	assert.Equal(t, "Unknown", data.TopGenre(""))
	assert.Equal(t, "Unknown", data.TopGenre("[]"))
	assert.Equal(t, "Unknown", data.TopGenre("  "))
	assert.Equal(t, "pop", data.TopGenre("['pop']"))
	assert.Equal(t, "pop", data.TopGenre("['pop', 'dance pop']"))
	assert.Equal(t, "Hip-Hop", data.TopGenre("['Hip-Hop']"))
	assert.Equal(t, "pop", data.TopGenre(`["pop", "rock"]`))
}

func TestTopGenreEdges(t *testing.T) {
	// empty leading pieces are skipped
	assert.Equal(t, "rock", data.TopGenre("['', 'rock']"))
	// only empty pieces left
	assert.Equal(t, "Unknown", data.TopGenre("['', '']"))
	// bracketless input still yields its first token
	assert.Equal(t, "pop", data.TopGenre("'pop', 'rock'"))
}
