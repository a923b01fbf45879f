// Command coldist reads pairs of integers from input.txt and reports two
// distances: the sum of the per-row differences, and the sum after every
// column has been sorted independently.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/cespare/coldist/config"
	"github.com/cespare/coldist/distance"
	"github.com/cespare/coldist/report"
	"github.com/cespare/coldist/rows"
)

const inputFile = "input.txt"

func main() {
	log.SetFlags(0)
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	stop, err := startProfile(cfg.Profile)
	if err != nil {
		log.Fatal(err)
	}
	err = run(cfg, ".", os.Stdout)
	if stopErr := stop(); stopErr != nil {
		log.Println("Error writing profile:", stopErr)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig parses args into a Config. Settings come from the ini file
// named by -config, if any; flags set on the command line override it.
// Positional arguments are ignored.
func loadConfig(fs *flag.FlagSet, args []string) (*config.Config, error) {
	var (
		configFile = fs.String("config", "", "ini settings file")
		verbose    = fs.Bool("v", false, "log diagnostics to stderr")
		showRows   = fs.Bool("rows", false, "list every row in the reports")
		group      = fs.Bool("group", false, "print sums with thousands separators")
		profile    = fs.String("profile", "", "write an fgprof profile to this file")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var cfg config.Config
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbose = *verbose
		case "rows":
			cfg.ShowRows = *showRows
		case "group":
			cfg.GroupDigits = *group
		case "profile":
			cfg.Profile = *profile
		}
	})
	return &cfg, nil
}

func run(cfg *config.Config, dir string, w io.Writer) error {
	name := filepath.Join(dir, inputFile)
	rs, stats, err := rows.ReadFile(name)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("read %s (%s): %s rows, %s skipped",
			name, humanize.Bytes(uint64(stats.Bytes)),
			humanize.Comma(int64(stats.Rows)), humanize.Comma(int64(stats.Skipped)))
	}

	r := &report.Reporter{
		W:           w,
		ShowRows:    cfg.ShowRows,
		GroupDigits: cfg.GroupDigits,
	}
	r.Report(rs, "Presort Distance")

	sorted := rows.Clone(rs)
	distance.ColumnSort(sorted)
	r.Report(sorted, "Post-sort distance")
	return nil
}
