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
	"context"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	batchLength    = 512
	batchQueue     = 8
	readBufferSize = 1 << 16
)

// Extract streams all lines of r through e, then flushes e.
// Processing is sequential: a reader goroutine only batches lines in input order, and a
// single extraction goroutine owns e, so output order always follows input order.
// On error, the returned error is the first one; a failed flush is added to its message.
func Extract(ctx context.Context, r io.Reader, e *Extractor) error {
	g, gctx := errgroup.WithContext(ctx)
	chLines := make(chan []string, batchQueue)

	// Reader
	g.Go(func() error {
		defer close(chLines)
		br := bufio.NewReaderSize(r, readBufferSize)
		batch := make([]string, 0, batchLength)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				batch = append(batch, line)
			}
			if err != nil && err != io.EOF {
				return errors.Wrap(err, "Reading input")
			}
			if len(batch) == batchLength || (err == io.EOF && len(batch) > 0) {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case chLines <- batch:
				}
				batch = make([]string, 0, batchLength)
			}
			if err == io.EOF {
				return nil
			}
		}
	})

	// Extraction
	g.Go(func() error {
		for batch := range chLines {
			if err := gctx.Err(); err != nil {
				return err
			}
			for _, line := range batch {
				if err := e.Line(line); err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// Keep what was already produced
		if cerr := e.Close(); cerr != nil {
			return errors.Wrapf(err, "Flushing output also failed (%v)", cerr)
		}
		return err
	}
	return e.Close()
}
