// trackboard ingests two csv files of music-track metadata into a sqlite
// database and serves the dashboard's three linked views (scatter, heatmap,
// parallel coordinates) from it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ShaokangXie/trackboard/config"
	"github.com/ShaokangXie/trackboard/db"
	"github.com/ShaokangXie/trackboard/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: trackboard $cmd
valid $cmd are 'load', 'serve', 'report', 'genres'
for help: trackboard $cmd -help
`)

func run() error {
	ctx := sigctx.New()
	cfg := config.Load()

	if len(os.Args) < 2 {
		return fmt.Errorf(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	db, err := db.Open(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	switch cmd {
	case "load":
		return load(ctx, cfg, db, args)

	case "serve":
		return serve(ctx, cfg, db, args)

	case "report":
		return report(ctx, db, args)

	case "genres":
		return genres(ctx, db, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
