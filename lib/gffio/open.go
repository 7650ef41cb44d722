//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package gffio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// InputOpenError reports an input that cannot be opened or decompressed.
type InputOpenError struct {
	Path string
	Err  error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("Cannot open %s: %v", e.Path, e.Err)
}

func (e *InputOpenError) Unwrap() error {
	return e.Err
}

type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() (err error) {
	for i := len(in.closers) - 1; i >= 0; i-- {
		if cerr := in.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return
}

// Open opens a plain, gzip or BGZF compressed annotation file.
// Compression is detected from the first bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputOpenError{Path: path, Err: err}
	}
	in := &input{closers: []io.Closer{f}}
	br := bufio.NewReader(f)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		in.Close()
		return nil, &InputOpenError{Path: path, Err: err}
	}
	if bytes.Equal(magic, gzipMagic) {
		// BGZF is a series of gzip members
		gz, err := gzip.NewReader(br)
		if err != nil {
			in.Close()
			return nil, &InputOpenError{Path: path, Err: err}
		}
		in.Reader = gz
		in.closers = append(in.closers, gz)
	} else {
		in.Reader = br
	}
	return in, nil
}
