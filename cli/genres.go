package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/ShaokangXie/trackboard/db"
	"github.com/ShaokangXie/trackboard/subcmd"
)

func genres(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("genres", "print the dashboard's genre buckets")
	k := subcmd.Int("k", data.TopKGenres, "bucket count (the views always use the default)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tracks, err := db.AllTracks(ctx)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		fmt.Println("no tracks loaded")
		return nil
	}

	top := data.TopGenres(tracks, *k)

	counts := map[string]int{}
	for _, t := range tracks {
		counts[data.Bucket(t.TopGenre, top)]++
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "genre\ttracks\n")
	for _, genre := range top {
		fmt.Fprintf(tw, "%s\t%d\n", genre, counts[genre])
	}
	if other := counts[data.OtherBucket]; other > 0 {
		fmt.Fprintf(tw, "%s\t%d\n", data.OtherBucket, other)
	}
	tw.Flush()

	return nil
}
