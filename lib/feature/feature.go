//
// Copyright (C) 2015-2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package feature

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/fatih/set.v0"
)

const (
	// Columns used from a GFF/GTF line
	colChrom = 0
	colType  = 2
	colStart = 3
	colEnd   = 4
	minCols  = 5
)

// GeneTypes are the gene-like feature types delimiting intergenic regions.
var GeneTypes = []string{
	"gene",
	"tRNA_gene",
	"ncRNA_gene",
	"pseudogene",
	"rRNA_gene",
	"snRNA_gene",
	"snoRNA_gene",
	"telomerase_RNA_gene",
	"transposable_element_gene",
	"long_terminal_repeat",
}

var geneTypes = newTypeSet(GeneTypes)

func newTypeSet(types []string) set.Interface {
	s := set.New(set.NonThreadSafe)
	for _, t := range types {
		s.Add(t)
	}
	return s
}

// Feature is one gene-like line of an annotation file. Coordinates are 1-based inclusive.
type Feature struct {
	Chrom string
	Type  string
	Start int
	End   int
}

// Length returns the number of bases covered by the feature
func (feat Feature) Length() int {
	return feat.End - feat.Start + 1
}

// ParseError reports a gene-like line that cannot be parsed.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Malformed feature at line %d (%s): %q", e.Line, e.Reason, e.Text)
}

// IsComment returns true for header/metadata lines.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsGeneLike returns true if the type column of line is one of GeneTypes.
func IsGeneLike(line string) bool {
	fields := strings.SplitN(trimEOL(line), "\t", colType+2)
	if len(fields) <= colType {
		return false
	}
	return geneTypes.Has(fields[colType])
}

// Parse parses a gene-like line. lineNum is only used for error reporting.
func Parse(line string, lineNum int) (feat Feature, err error) {
	text := trimEOL(line)
	fields := strings.Split(text, "\t")
	if len(fields) < minCols {
		err = &ParseError{Line: lineNum, Text: text, Reason: fmt.Sprintf("%d columns, expected at least %d", len(fields), minCols)}
		return
	}
	feat.Chrom = fields[colChrom]
	feat.Type = fields[colType]
	if feat.Start, err = parseCoord(fields[colStart]); err != nil {
		err = &ParseError{Line: lineNum, Text: text, Reason: "start is not an integer"}
		return
	}
	if feat.End, err = parseCoord(fields[colEnd]); err != nil {
		err = &ParseError{Line: lineNum, Text: text, Reason: "end is not an integer"}
		return
	}
	return
}

func parseCoord(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
