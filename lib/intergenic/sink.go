//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package intergenic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
)

const (
	FormatGTF = "gtf"
	FormatGFF = "gff"
)

// Sink receives the output lines of an Extractor in order.
type Sink interface {
	WriteComment(line string) error
	WriteRecord(r Record) error
	Flush() error
}

// TabSink writes records as GTF lines (see Record.WriteTo).
type TabSink struct {
	w *bufio.Writer
}

func NewTabSink(w io.Writer) *TabSink {
	return &TabSink{w: bufio.NewWriter(w)}
}

func (s *TabSink) WriteComment(line string) error {
	_, err := s.w.WriteString(line)
	return err
}

func (s *TabSink) WriteRecord(r Record) error {
	_, err := r.WriteTo(s.w)
	return err
}

func (s *TabSink) Flush() error {
	return s.w.Flush()
}

// GFFSink writes records with the biogo GFF writer. Comment lines are copied as is.
type GFFSink struct {
	w   *bufio.Writer
	gfw *gff.Writer
}

func NewGFFSink(w io.Writer) *GFFSink {
	bw := bufio.NewWriter(w)
	return &GFFSink{w: bw, gfw: gff.NewWriter(bw, 60, false)}
}

func (s *GFFSink) WriteComment(line string) error {
	_, err := s.w.WriteString(line)
	return err
}

func (s *GFFSink) WriteRecord(r Record) error {
	_, err := s.gfw.Write(r.GFF())
	return err
}

func (s *GFFSink) Flush() error {
	return s.w.Flush()
}

// NewSink returns the Sink for format (gtf or gff).
func NewSink(w io.Writer, format string) (Sink, error) {
	switch format {
	case FormatGTF, "":
		return NewTabSink(w), nil
	case FormatGFF:
		return NewGFFSink(w), nil
	}
	return nil, fmt.Errorf("Unknown output format %s", format)
}
