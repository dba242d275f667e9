package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ramadankeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the local database file
//	-r string   URL of the resource catalog document
//	-t int      catalog fetch timeout in seconds
//	-d int      current day of the period (1..30)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-r", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.CatalogURL, "r", cfg.CatalogURL, "URL of the resource catalog document")
	fetchTimeout := fs.Int("t", int(cfg.CatalogFetchTimeout.Seconds()), "catalog fetch timeout (in seconds)")
	fs.IntVar(&cfg.CurrentDay, "d", cfg.CurrentDay, "current day of the period (1..30)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CatalogFetchTimeout = time.Duration(*fetchTimeout) * time.Second
}
