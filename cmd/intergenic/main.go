//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"git.sr.ht/~vejnar/Intergenic/lib/feature"
	"git.sr.ht/~vejnar/Intergenic/lib/gffio"
	"git.sr.ht/~vejnar/Intergenic/lib/intergenic"
)

var version = "DEV"

type Options struct {
	PathGFF     string
	PathOut     string
	FormatOut   string
	PathMapping string
	PathReport  string
	Verbose     bool
}

func main() {
	var opts Options
	var printVersion bool
	flag.StringVar(&opts.PathGFF, "path_gff", "", "Path to GFF/GTF features file (plain, gzip or BGZF)")
	flag.StringVar(&opts.PathOut, "path_out", "", "Write intergenic features to path (stdout if empty or -)")
	flag.StringVar(&opts.FormatOut, "format_out", intergenic.FormatGTF, "Output format: 'gtf' or 'gff', optionally compressed with '+lz4', '+lz4hc' or '+bgzf'")
	flag.StringVar(&opts.PathMapping, "path_mapping", "", "Path to chromosome name(s) mapping (tabulated file)")
	flag.StringVar(&opts.PathReport, "path_report", "", "Write report to path (stderr with -)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Verbose")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	flag.Parse()

	// Version
	if printVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Check arguments
	if len(opts.PathGFF) == 0 && flag.NArg() > 0 {
		opts.PathGFF = flag.Arg(0)
	}
	if len(opts.PathGFF) == 0 {
		log.Fatal("No feature input")
	}

	if err := run(context.Background(), opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts Options) error {
	// Time start
	timeStart := time.Now()

	// Output format
	format, zip := gffio.SplitFormat(opts.FormatOut)

	// Open feature mapping
	var mapping map[string]string
	if opts.PathMapping != "" {
		var err error
		if mapping, err = feature.OpenMapping(opts.PathMapping); err != nil {
			return err
		}
		if opts.Verbose {
			log.Printf("%.1fmin - Loaded %d chromosome name(s) from %s\n", time.Since(timeStart).Minutes(), len(mapping), opts.PathMapping)
		}
	}

	// Open input before output
	in, err := gffio.Open(opts.PathGFF)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := gffio.Create(opts.PathOut, zip)
	if err != nil {
		return errors.Wrap(err, "Output")
	}
	sink, err := intergenic.NewSink(out, format)
	if err != nil {
		out.Close()
		return err
	}

	if opts.Verbose {
		log.Printf("%.1fmin - Reading %s\n", time.Since(timeStart).Minutes(), opts.PathGFF)
	}
	e := intergenic.NewExtractor(sink, mapping)
	err = intergenic.Extract(ctx, in, e)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "Closing output")
	}
	if err != nil {
		return err
	}

	stats := e.Stats()
	if opts.Verbose {
		log.Printf("%.1fmin - Done %d feature(s) on %d chromosome(s), %d intergenic region(s) (%d bp)\n", time.Since(timeStart).Minutes(), stats.FeatureLines, stats.ChromosomeNumber, stats.Regions, stats.RegionsLength)
	}

	// Output: Report
	if opts.PathReport != "" {
		if err = WriteReport(opts.PathReport, opts.PathGFF, stats); err != nil {
			return err
		}
	}
	return nil
}
