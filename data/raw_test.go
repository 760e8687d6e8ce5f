package data_test

import (
	"testing"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/stretchr/testify/assert"
)

func TestMergeFieldOverride(t *testing.T) {
	a := []data.RawRow{{"track_id": "id1", "track_popularity": "80"}}
	b := []data.RawRow{{"track_id": "id1", "track_popularity": "50", "track_name": "X"}}

	merged := data.Merge(a, b, "track_id")
	assert.Len(t, merged, 1)
	assert.Equal(t, "80", merged[0]["track_popularity"])
	assert.Equal(t, "X", merged[0]["track_name"])
}

func TestMergeKeyOnlyInB(t *testing.T) {
	a := []data.RawRow{{"track_id": "id1", "track_name": "A"}}
	b := []data.RawRow{
		{"track_id": "id1", "track_name": "B"},
		{"track_id": "id2", "track_name": "only-b"},
	}

	merged := data.Merge(a, b, "track_id")
	assert.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0]["track_name"])
	assert.Equal(t, "only-b", merged[1]["track_name"])
}

func TestMergeKeyOnlyInA(t *testing.T) {
	a := []data.RawRow{{"track_id": "id3", "track_name": "only-a"}}
	merged := data.Merge(a, nil, "track_id")
	assert.Len(t, merged, 1)
	assert.Equal(t, "only-a", merged[0]["track_name"])
}

func TestMergeDropsEmptyKeys(t *testing.T) {
	a := []data.RawRow{{"track_name": "no id"}}
	b := []data.RawRow{{"track_id": "", "track_name": "blank id"}}
	assert.Empty(t, data.Merge(a, b, "track_id"))
}

func TestMergeDoesNotMutateSources(t *testing.T) {
	a := []data.RawRow{{"track_id": "id1", "track_popularity": "80"}}
	b := []data.RawRow{{"track_id": "id1", "track_popularity": "50"}}
	data.Merge(a, b, "track_id")
	assert.Equal(t, "50", b[0]["track_popularity"])
}

func TestMergeDuplicateWithinSource(t *testing.T) {
	b := []data.RawRow{
		{"track_id": "id1", "track_name": "first"},
		{"track_id": "id2", "track_name": "two"},
		{"track_id": "id1", "track_name": "last"},
	}
	merged := data.Merge(nil, b, "track_id")
	assert.Len(t, merged, 2)
	assert.Equal(t, "last", merged[0]["track_name"])
	assert.Equal(t, "two", merged[1]["track_name"])
}
