package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ShaokangXie/trackboard/config"
	"github.com/ShaokangXie/trackboard/db"
	"github.com/ShaokangXie/trackboard/fetcher"
	"github.com/ShaokangXie/trackboard/subcmd"
)

func load(ctx context.Context, cfg *config.Config, db *db.DB, args []string) error {
	subcmd := subcmd.New("load", "fetch both source csv files and rebuild the dataset")
	var (
		trackSrc  = subcmd.String("a", cfg.Sources.Tracks, "primary source: tracks csv, path or url")
		artistSrc = subcmd.String("b", cfg.Sources.Artists, "secondary source: artists csv, path or url")
		cacheDir  = subcmd.String("cache", cfg.Cache.Dir, "download cache dir; empty disables caching")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if *trackSrc == "" || *artistSrc == "" {
		return fmt.Errorf("both sources are required: set -a and -b (or TRACKBOARD_SOURCES_TRACKS / TRACKBOARD_SOURCES_ARTISTS)")
	}

	f := fetcher.New(*cacheDir)
	dataset, err := f.Load(ctx,
		fetcher.Source{Name: "tracks", Location: *trackSrc},
		fetcher.Source{Name: "artists", Location: *artistSrc})
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	if err := db.StoreDataset(ctx, dataset); err != nil {
		return fmt.Errorf("error storing dataset: %w", err)
	}

	log.Printf("loaded %d tracks", dataset.Len())

	return nil
}
