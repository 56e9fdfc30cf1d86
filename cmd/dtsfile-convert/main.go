// The dtsfile-convert command converts shape files to interchange documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/siegetools/dtsfile/dts"
	"github.com/siegetools/dtsfile/internal/batch"
	"github.com/siegetools/dtsfile/internal/config"
)

const usage = `usage: dtsfile-convert [FLAGS] PATTERN...

Converts each DTS file named by PATTERN to a JSON document. The document is
written next to the source file with ".json" appended to its name, or into the
directory given by -o.

A PATTERN of "*" selects every file below the current directory with one of the
configured extensions (by default ".dts" and ".DTS"). A PATTERN of "*.ext"
selects every file below the current directory whose name ends with ".ext". Any
other PATTERN is the path of a file.

Flags:
`

func main() {
	var flags config.Flags
	var configPath string
	var verbose bool

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&configPath, "config", "", "read settings from a JSON config `file`")
	flag.StringVar(&flags.OutputDir, "o", "", "write documents to `dir`")
	flag.StringVar(&flags.Manifest, "manifest", "", "write a manifest of the results to `file`")
	flag.IntVar(&flags.Workers, "workers", 0, "number of files converted concurrently (default: number of CPUs)")
	flag.BoolVar(&flags.Compress, "compress", false, "write LZ4-compressed documents")
	flag.BoolVar(&flags.Verify, "verify", false, "check that each document converts back to the source bytes")
	flag.BoolVar(&flags.LaxClassNames, "lax", false, "accept nested records with unexpected class names")
	flag.BoolVar(&flags.NoValidate, "novalidate", false, "skip index validation")
	flag.BoolVar(&verbose, "v", false, "log each file")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := config.NewLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("create logger: %w", err))
		os.Exit(1)
	}
	defer log.Sync()
	dts.SetLogger(log)
	batch.SetLogger(log)

	var cfg config.Config
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg.Resolve(flags)

	files, err := batch.Find(".", flag.Args(), cfg.Extensions)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("find files: %w", err))
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no files found")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := batch.Run(ctx, cfg, files)
	for _, r := range results {
		if r.Success {
			fmt.Printf("%s -> %s\n", r.Path, r.Output)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.Path, r.Error)
		}
	}

	if cfg.Manifest != "" {
		if err := batch.WriteManifest(cfg.Manifest, results); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("write manifest: %w", err))
		}
	}

	failed := batch.Failed(results)
	fmt.Printf("converted %d of %d files\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}
