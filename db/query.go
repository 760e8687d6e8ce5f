package db

import (
	"context"
	"fmt"

	"github.com/ShaokangXie/trackboard/data"
)

// AllTracks loads the whole canonical dataset back out, in rowid order --
// which is the loader's insertion order, though consumers must not rely on
// row order.
func (db *DB) AllTracks(ctx context.Context) ([]data.TrackRecord, error) {
	var tracks []data.TrackRecord
	if err := db.
		Table("tracks").
		Order("rowid").
		Find(&tracks).
		Error; err != nil {
		return nil, fmt.Errorf("error loading tracks: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled: %w", err)
	}
	return tracks, nil
}

func (db *DB) CountTracks() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting tracks: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountTracksWithYear() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Where("release_year is not null").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting tracks with a release year: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountExplicitTracks() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Where("explicit = true").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting explicit tracks: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountDistinctGenres() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Distinct("top_genre").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting distinct genres: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountDistinctArtists() (int, error) {
	var count int64
	if err := db.
		Table("tracks").
		Distinct("artist_name").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting distinct artists: %w", err)
	}
	return int(count), nil
}

// YearRange returns the lowest and highest valid release years in the
// dataset. ok is false when no track has a valid year.
func (db *DB) YearRange() (min, max int, ok bool, err error) {
	var bounds struct {
		Min, Max *int
	}
	if err := db.
		Table("tracks").
		Where("release_year is not null").
		Select("min(release_year) as min", "max(release_year) as max").
		Scan(&bounds).
		Error; err != nil {
		return 0, 0, false, fmt.Errorf("error finding year range: %w", err)
	}
	if bounds.Min == nil || bounds.Max == nil {
		return 0, 0, false, nil
	}
	return *bounds.Min, *bounds.Max, true, nil
}
