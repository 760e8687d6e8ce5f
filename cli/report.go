package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShaokangXie/trackboard/db"
	"github.com/ShaokangXie/trackboard/subcmd"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func report(ctx context.Context, db *db.DB, args []string) error {
	subcmd := subcmd.New("report", "summarize the loaded dataset")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tracks, err := db.CountTracks()
	if err != nil {
		return err
	}
	tracksWithYear, err := db.CountTracksWithYear()
	if err != nil {
		return err
	}
	explicitTracks, err := db.CountExplicitTracks()
	if err != nil {
		return err
	}

	artists, err := db.CountDistinctArtists()
	if err != nil {
		return err
	}
	genres, err := db.CountDistinctGenres()
	if err != nil {
		return err
	}

	printSection("tracks", tracks, map[string]int{
		"with a release year": tracksWithYear,
		"explicit":            explicitTracks,
	})
	printSection("artists", artists, nil)
	printSection("genres", genres, nil)

	if min, max, ok, err := db.YearRange(); err != nil {
		return err
	} else if ok {
		humanPrinter.Printf("YEARS\n  %d - %d\n\n", min, max)
	}

	return nil
}

var humanPrinter = message.NewPrinter(language.English)

func printSection(name string, known int, done map[string]int) {
	humanPrinter.Printf("%s\n", strings.ToUpper(name))
	humanPrinter.Printf("  %d\tknown\n", known)
	for k, v := range done {
		humanPrinter.Printf("  %d\t%s (%.2f%%)\n", v, k, 100.0*float64(v)/float64(known))
	}
	humanPrinter.Printf("\n")
}
