package data_test

import (
	"testing"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/stretchr/testify/assert"
)

// The end-to-end scenario from the dashboard's contract: source A carries the
// follower count, source B carries the artist popularity, and the merged
// record derives its follower log from A's value.
func TestBuildMergesAcrossSources(t *testing.T) {
	a := []data.RawRow{{"track_id": "t1", "artist_followers": "999"}}
	b := []data.RawRow{{"track_id": "t1", "artist_popularity": "40"}}

	d := data.Build(a, b)
	assert.Equal(t, 1, d.Len())

	track, ok := d.Get("t1")
	assert.True(t, ok)
	assert.Equal(t, int64(999), track.ArtistFollowers)
	assert.Equal(t, int64(40), track.ArtistPopularity)
	assert.InDelta(t, 2.9996, track.FollowersLog, 0.0001)
}

func TestBuildDropsRowsWithoutID(t *testing.T) {
	a := []data.RawRow{{"track_name": "no id"}}
	b := []data.RawRow{{"track_id": "t2", "track_name": "kept"}}

	d := data.Build(a, b)
	assert.Equal(t, 1, d.Len())

	_, ok := d.Get("")
	assert.False(t, ok)
}

func TestDatasetGetMiss(t *testing.T) {
	d := data.Build(nil, nil)
	_, ok := d.Get("nope")
	assert.False(t, ok)
}

func TestDatasetTopGenres(t *testing.T) {
	var rows []data.RawRow
	for i := 0; i < 3; i++ {
		rows = append(rows, data.RawRow{"track_id": string(rune('a' + i)), "artist_genres": "['pop']"})
	}
	rows = append(rows, data.RawRow{"track_id": "z", "artist_genres": "[]"})

	d := data.Build(rows, nil)
	assert.Equal(t, []string{"pop", "Unknown"}, d.TopGenres())
}
