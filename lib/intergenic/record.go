//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package intergenic

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

const (
	Source  = "sgd"
	Type    = "intergenic"
	IDTag   = "gene_id"
	idRoot  = "intergenic"
	noScore = "."
	noFrame = "."
	strand  = "+"
)

// Record is an intergenic region between two gene-like features on Chrom.
// Start is the watermark end of the previous feature(s), End the start of the next one.
type Record struct {
	Chrom string
	Start int
	End   int
}

// ID returns the generated identifier, i.e. intergenic_<chrom>_<start>_<end>.
func (r Record) ID() string {
	return fmt.Sprintf("%s_%s_%d_%d", idRoot, r.Chrom, r.Start, r.End)
}

// Length returns the distance between the flanking features.
func (r Record) Length() int {
	return r.End - r.Start
}

// WriteTo writes the record as one GTF line.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s %s\n", r.Chrom, Source, Type, r.Start, r.End, noScore, strand, noFrame, IDTag, r.ID())
	return int64(n), err
}

// GFF converts the record to a biogo GFF feature (0-based half-open coordinates).
func (r Record) GFF() *gff.Feature {
	return &gff.Feature{
		SeqName:        r.Chrom,
		Source:         Source,
		Feature:        Type,
		FeatStart:      r.Start - 1,
		FeatEnd:        r.End,
		FeatStrand:     seq.Plus,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: gff.Attributes{{Tag: IDTag, Value: r.ID()}},
	}
}
