package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ShaokangXie/trackboard/config"
	"github.com/ShaokangXie/trackboard/data"
	"github.com/ShaokangXie/trackboard/db"
	"github.com/ShaokangXie/trackboard/server"
	"github.com/ShaokangXie/trackboard/setflag"
	"github.com/ShaokangXie/trackboard/subcmd"
)

func serve(ctx context.Context, cfg *config.Config, db *db.DB, args []string) error {
	subcmd := subcmd.New("serve", "run the dashboard api server over a loaded dataset")
	views := setflag.New(server.AllViews...)
	var (
		addr      = subcmd.String("addr", cfg.Server.Addr, "listen address")
		sampleCap = subcmd.Int("sample", cfg.Server.SampleCap, "per-view row cap; 0 disables the cap")
	)
	subcmd.Var(views, "views", "comma-separated views to enable (scatter, heatmap, parallel); default all")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tracks, err := db.AllTracks(ctx)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("no tracks in the database; run 'trackboard load' first")
	}

	opts := server.Options{SampleCap: *sampleCap}
	if chosen := views.List(); len(chosen) > 0 {
		opts.Views = chosen
	}

	srv := server.New(data.FromTracks(tracks), opts)
	log.Printf("serving %d tracks on %s", len(tracks), *addr)
	return server.Run(ctx, srv, *addr)
}
