package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShaokangXie/trackboard/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadMergesTwoFiles(t *testing.T) {
	a := writeCSV(t, "a.csv", "track_id,artist_followers\nt1,999\n")
	b := writeCSV(t, "b.csv", "track_id,artist_popularity\nt1,40\n")

	f := fetcher.New("")
	d, err := f.Load(context.Background(),
		fetcher.Source{Name: "tracks", Location: a},
		fetcher.Source{Name: "artists", Location: b})
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	track, ok := d.Get("t1")
	require.True(t, ok)
	assert.Equal(t, int64(999), track.ArtistFollowers)
	assert.Equal(t, int64(40), track.ArtistPopularity)
	assert.InDelta(t, 2.9996, track.FollowersLog, 0.0001)
}

func TestLoadFailureNamesSource(t *testing.T) {
	a := writeCSV(t, "a.csv", "track_id\nt1\n")

	f := fetcher.New("")
	_, err := f.Load(context.Background(),
		fetcher.Source{Name: "tracks", Location: a},
		fetcher.Source{Name: "artists", Location: filepath.Join(t.TempDir(), "missing.csv")})
	require.Error(t, err)

	var srcErr *fetcher.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "artists", srcErr.Source)
}

func TestLoadShortAndLongRows(t *testing.T) {
	a := writeCSV(t, "a.csv", "track_id,track_name,track_popularity\nt1,one\nt2,two,50,extra\n")
	b := writeCSV(t, "b.csv", "track_id\n")

	f := fetcher.New("")
	d, err := f.Load(context.Background(),
		fetcher.Source{Name: "tracks", Location: a},
		fetcher.Source{Name: "artists", Location: b})
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	t1, _ := d.Get("t1")
	assert.Equal(t, int64(0), t1.Popularity)
	t2, _ := d.Get("t2")
	assert.Equal(t, int64(50), t2.Popularity)
}

func TestLoadEmptyFileFails(t *testing.T) {
	a := writeCSV(t, "a.csv", "")
	b := writeCSV(t, "b.csv", "track_id\n")

	f := fetcher.New("")
	_, err := f.Load(context.Background(),
		fetcher.Source{Name: "tracks", Location: a},
		fetcher.Source{Name: "artists", Location: b})
	require.Error(t, err)

	var srcErr *fetcher.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "tracks", srcErr.Source)
}

func TestLoadCachesRemoteSources(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("track_id,track_name\nt1,one\n"))
	}))
	defer srv.Close()

	local := writeCSV(t, "b.csv", "track_id\nt1\n")
	f := fetcher.New(t.TempDir())

	for i := 0; i < 2; i++ {
		d, err := f.Load(context.Background(),
			fetcher.Source{Name: "tracks", Location: srv.URL},
			fetcher.Source{Name: "artists", Location: local})
		require.NoError(t, err)
		require.Equal(t, 1, d.Len())
	}

	assert.Equal(t, 1, hits)
}
