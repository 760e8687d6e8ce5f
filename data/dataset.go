package data

// A Dataset is the merged, deduplicated, fully normalized collection of
// TrackRecords held in memory for the session. Build writes it once; after
// that it is read-only.
type Dataset struct {
	Tracks []TrackRecord

	index map[string]int
}

// Build merges two raw-row sources (a's fields override b's) and normalizes
// each merged row exactly once. Rows without a track id are dropped.
func Build(a, b []RawRow) *Dataset {
	merged := Merge(a, b, MergeKey)

	d := &Dataset{
		Tracks: make([]TrackRecord, len(merged)),
		index:  make(map[string]int, len(merged)),
	}
	for i, row := range merged {
		d.Tracks[i] = Normalize(row)
		d.index[d.Tracks[i].SpotifyID] = i
	}
	return d
}

// FromTracks wraps already-normalized records, for consumers that load the
// canonical dataset back out of the database.
func FromTracks(tracks []TrackRecord) *Dataset {
	d := &Dataset{
		Tracks: tracks,
		index:  make(map[string]int, len(tracks)),
	}
	for i, t := range tracks {
		d.index[t.SpotifyID] = i
	}
	return d
}

// Get looks a track up by its id.
func (d *Dataset) Get(id string) (TrackRecord, bool) {
	i, ok := d.index[id]
	if !ok {
		return TrackRecord{}, false
	}
	return d.Tracks[i], true
}

func (d *Dataset) Len() int { return len(d.Tracks) }

// TopGenres computes the dataset's shared genre buckets.
func (d *Dataset) TopGenres() []string {
	return TopGenres(d.Tracks, TopKGenres)
}
