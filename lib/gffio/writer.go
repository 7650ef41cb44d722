//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package gffio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/pierrec/lz4"
)

const (
	ZipNone  = ""
	ZipLZ4   = "lz4"
	ZipLZ4HC = "lz4hc"
	ZipBGZF  = "bgzf"
)

type GenericWriter interface {
	Write(buf []byte) (n int, err error)
	Close() error
}

// SplitFormat splits a format such as "gtf+lz4" into format and compression.
func SplitFormat(format string) (string, string) {
	if strings.Contains(format, "+") {
		doubleFormat := strings.SplitN(format, "+", 2)
		return doubleFormat[0], doubleFormat[1]
	}
	return format, ZipNone
}

type output struct {
	GenericWriter
	f io.Closer
}

func (o *output) Close() error {
	err := o.GenericWriter.Close()
	if o.f != nil {
		if ferr := o.f.Close(); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewWriter wraps w with the compression zip.
func NewWriter(w io.Writer, zip string) (GenericWriter, error) {
	switch zip {
	case ZipNone:
		return nopCloser{w}, nil
	case ZipLZ4:
		return lz4.NewWriter(w), nil
	case ZipLZ4HC:
		lzWriter := lz4.NewWriter(w)
		lzWriter.Header = lz4.Header{CompressionLevel: 9}
		return lzWriter, nil
	case ZipBGZF:
		return bgzf.NewWriter(w, 1), nil
	}
	return nil, fmt.Errorf("Unknown compression %s", zip)
}

// Create opens path for writing (stdout if empty or -) with the compression zip.
// Closing the returned writer never closes stdout.
func Create(path string, zip string) (GenericWriter, error) {
	if path == "" || path == "-" {
		w, err := NewWriter(os.Stdout, zip)
		if err != nil {
			return nil, err
		}
		return &output{GenericWriter: w}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f, zip)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &output{GenericWriter: w, f: f}, nil
}
