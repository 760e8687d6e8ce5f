package db

import (
	"context"
	"fmt"

	"github.com/ShaokangXie/trackboard/data"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertTrack, given a TrackRecord, inserts it into the tracks table, doing
// nothing if it already exists.
func (db *DB) InsertTrack(track *data.TrackRecord) error {
	if track.SpotifyID == "" {
		return fmt.Errorf("no spotify id")
	}
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(track).
		Error; err != nil {
		return fmt.Errorf("error inserting track '%s': %w", track.SpotifyID, err)
	}
	return nil
}

// StoreDataset replaces the tracks table with the given canonical dataset,
// inside one transaction so a failed load can't leave a half-written table.
func (db *DB) StoreDataset(ctx context.Context, dataset *data.Dataset) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("delete from tracks").Error; err != nil {
			return fmt.Errorf("error clearing tracks: %w", err)
		}

		for i := range dataset.Tracks {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("canceled: %w", err)
			}

			track := &dataset.Tracks[i]
			if track.SpotifyID == "" {
				return fmt.Errorf("no spotify id")
			}
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(track).
				Error; err != nil {
				return fmt.Errorf("error inserting track '%s': %w", track.SpotifyID, err)
			}
		}

		return nil
	})
}
