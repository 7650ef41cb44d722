//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package intergenic

import (
	"github.com/pkg/errors"
	"gopkg.in/fatih/set.v0"

	"git.sr.ht/~vejnar/Intergenic/lib/feature"
)

// Watermark is the furthest end reached on the current chromosome.
type Watermark struct {
	Chrom  string
	MaxEnd int
	// false until the first gene-like feature
	Seen bool
}

// Stats counts what went through an Extractor.
type Stats struct {
	CommentLines     int `json:"comment_lines"`
	FeatureLines     int `json:"feature_lines"`
	DroppedLines     int `json:"dropped_lines"`
	Regions          int `json:"intergenic_regions"`
	RegionsLength    int `json:"intergenic_length"`
	ChromosomeNumber int `json:"chromosomes"`
	chroms           set.Interface
}

// Extractor derives intergenic regions from a GFF/GTF stream sorted by chromosome then start.
// Unsorted input is not detected. An Extractor is not safe for concurrent use.
type Extractor struct {
	sink     Sink
	mapping  map[string]string
	wm       Watermark
	lineNum  int
	stats    Stats
	finished bool
}

// NewExtractor returns an Extractor writing to sink. Chromosome names are renamed with
// mapping if not empty.
func NewExtractor(sink Sink, mapping map[string]string) *Extractor {
	return &Extractor{sink: sink, mapping: mapping, stats: Stats{chroms: set.New(set.NonThreadSafe)}}
}

// Line processes one input line, including its line terminator if any.
func (e *Extractor) Line(line string) error {
	e.lineNum++
	// Comment line
	if feature.IsComment(line) {
		e.stats.CommentLines++
		return e.sink.WriteComment(line)
	}
	// Other lines
	if !feature.IsGeneLike(line) {
		e.stats.DroppedLines++
		return nil
	}
	// Feature line
	feat, err := feature.Parse(line, e.lineNum)
	if err != nil {
		return err
	}
	e.stats.FeatureLines++
	if len(e.mapping) > 0 {
		feat.Chrom = feature.MapName(feat.Chrom, e.mapping)
	}
	return e.Feature(feat)
}

// Feature advances the watermark with feat and emits the region before it, if any.
func (e *Extractor) Feature(feat feature.Feature) error {
	sameChrom := e.wm.Seen && feat.Chrom == e.wm.Chrom
	if !sameChrom {
		e.wm.MaxEnd = 0
		e.stats.chroms.Add(feat.Chrom)
	}
	if sameChrom && e.wm.MaxEnd < feat.Start {
		r := Record{Chrom: feat.Chrom, Start: e.wm.MaxEnd, End: feat.Start}
		if err := e.sink.WriteRecord(r); err != nil {
			return errors.Wrapf(err, "Writing %s", r.ID())
		}
		e.stats.Regions++
		e.stats.RegionsLength += r.Length()
	}
	e.wm.Chrom = feat.Chrom
	e.wm.Seen = true
	if feat.End > e.wm.MaxEnd {
		e.wm.MaxEnd = feat.End
	}
	return nil
}

// Watermark returns the current watermark.
func (e *Extractor) Watermark() Watermark {
	return e.wm
}

// Stats returns the counts so far.
func (e *Extractor) Stats() Stats {
	s := e.stats
	s.ChromosomeNumber = s.chroms.Size()
	return s
}

// Close flushes the sink. Further calls are no-ops.
func (e *Extractor) Close() error {
	if e.finished {
		return nil
	}
	e.finished = true
	return e.sink.Flush()
}
