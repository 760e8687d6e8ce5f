package data_test

import (
	"testing"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/stretchr/testify/assert"
)

func tracksWithGenres(labels ...string) []data.TrackRecord {
	tracks := make([]data.TrackRecord, len(labels))
	for i, label := range labels {
		tracks[i] = data.TrackRecord{TopGenre: label}
	}
	return tracks
}

func TestTopGenres(t *testing.T) {
	tracks := tracksWithGenres("a", "a", "a", "b", "b", "c")
	assert.Equal(t, []string{"a", "b"}, data.TopGenres(tracks, 2))
}

func TestTopGenresTieBreakByEncounterOrder(t *testing.T) {
	tracks := tracksWithGenres("x", "y", "x", "y", "z")
	assert.Equal(t, []string{"x", "y"}, data.TopGenres(tracks, 2))

	tracks = tracksWithGenres("y", "x", "y", "x", "z")
	assert.Equal(t, []string{"y", "x"}, data.TopGenres(tracks, 2))
}

func TestTopGenresShortDataset(t *testing.T) {
	tracks := tracksWithGenres("a", "b")
	assert.Equal(t, []string{"a", "b"}, data.TopGenres(tracks, 10))
	assert.Empty(t, data.TopGenres(nil, 10))
}

func TestBucket(t *testing.T) {
	top := []string{"pop", "rock"}
	assert.Equal(t, "pop", data.Bucket("pop", top))
	assert.Equal(t, "Other", data.Bucket("jazz", top))
	assert.Equal(t, "Other", data.Bucket("Unknown", top))
}
