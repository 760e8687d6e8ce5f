package data

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"
)

// MergeKey is the column that uniquely identifies a track across both source
// files.
const MergeKey = "track_id"

// A TrackRecord is the canonical, fully-typed representation of one music
// track after normalization and merge. Records are written once by the loader
// and read-only for the rest of the session.
type TrackRecord struct {
	// like "11dFghVXANMlKmJXsNCbNl"
	SpotifyID string

	Name        string
	TrackNumber int64
	Popularity  int64
	Explicit    bool

	ArtistName       string
	ArtistPopularity int64
	ArtistFollowers  int64

	// like "['pop', 'dance pop']" -- the source file's printed genre list,
	// kept verbatim. TopGenre holds the extracted label.
	RawGenres string

	// like "2021-05-01"; kept as text because the source mixes precisions
	AlbumReleaseDate string
	AlbumTotalTracks int64
	AlbumType        string

	DurationMS sql.NullInt64

	// Derived at normalization, never re-derived.
	ReleaseYear  sql.NullInt64
	FollowersLog float64
	DurationMin  sql.NullFloat64
	TopGenre     string
}

// TableName maps TrackRecords onto the tracks table; see db/schema.sql.
func (TrackRecord) TableName() string { return "tracks" }

// Normalize converts a raw source row into a TrackRecord. It never fails:
// malformed numerics fall back to 0, malformed optional values come out null,
// and an unparseable genre list comes out "Unknown".
func Normalize(row RawRow) TrackRecord {
	followers := coerceInt(row["artist_followers"])
	if followers < 0 {
		followers = 0
	}

	t := TrackRecord{
		SpotifyID:   row[MergeKey],
		Name:        row["track_name"],
		TrackNumber: coerceInt(row["track_number"]),
		Popularity:  coerceInt(row["track_popularity"]),
		Explicit:    coerceBool(row["explicit"]),

		ArtistName:       row["artist_name"],
		ArtistPopularity: coerceInt(row["artist_popularity"]),
		ArtistFollowers:  followers,

		RawGenres:        row["artist_genres"],
		AlbumReleaseDate: row["album_release_date"],
		AlbumTotalTracks: coerceInt(row["album_total_tracks"]),
		AlbumType:        row["album_type"],
	}

	if ms, ok := coerceFloat(row["track_duration_ms"]); ok {
		t.DurationMS = sql.NullInt64{Int64: int64(ms), Valid: true}
	}

	t.ReleaseYear = releaseYear(t.AlbumReleaseDate)
	t.FollowersLog = math.Log10(float64(t.ArtistFollowers) + 1)
	t.TopGenre = TopGenre(t.RawGenres)

	if min, ok := coerceFloat(row["track_duration_min"]); ok {
		t.DurationMin = sql.NullFloat64{Float64: min, Valid: true}
	} else if t.DurationMS.Valid {
		t.DurationMin = sql.NullFloat64{Float64: float64(t.DurationMS.Int64) / 60000, Valid: true}
	}

	return t
}

// releaseYear reads the leading 4 characters of a date like "2021-05-01".
// Anything out of [1900, currentYear+1] is null, never clamped.
func releaseYear(date string) sql.NullInt64 {
	if len(date) < 4 {
		return sql.NullInt64{}
	}
	year, err := strconv.ParseInt(date[:4], 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	if year < 1900 || year > int64(time.Now().Year())+1 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: year, Valid: true}
}

// coerceFloat parses a cell as a finite number; the second return is false
// for empty, malformed, NaN, and infinite input.
func coerceFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceInt parses a cell as a number with fallback 0. Source files carry
// integer columns with decimal points ("81.0"), so it goes through float.
func coerceInt(s string) int64 {
	f, ok := coerceFloat(s)
	if !ok {
		return 0
	}
	return int64(f)
}

// coerceBool treats exactly "true", case-insensitively, as true. The source
// files write booleans as text, so there is no separate literal-bool path.
func coerceBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
