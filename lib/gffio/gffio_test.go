//
// Copyright (C) 2023 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package gffio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotation = "##gff-version 3\nchrI\tSGD\tgene\t335\t649\t.\t+\t.\tID=YAL069W\n"

func readAll(t *testing.T, path string) string {
	in, err := Open(path)
	require.NoError(t, err)
	defer in.Close()
	b, err := io.ReadAll(in)
	require.NoError(t, err)
	return string(b)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.gff")
	require.NoError(t, os.WriteFile(path, []byte(annotation), 0666))
	assert.Equal(t, annotation, readAll(t, path))

	// Shorter than the magic number
	require.NoError(t, os.WriteFile(path, []byte("#"), 0666))
	assert.Equal(t, "#", readAll(t, path))

	require.NoError(t, os.WriteFile(path, nil, 0666))
	assert.Equal(t, "", readAll(t, path))
}

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(annotation))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	// Name without .gz: detection is on content
	path := filepath.Join(t.TempDir(), "a.gff")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0666))
	assert.Equal(t, annotation, readAll(t, path))
}

func TestOpenBGZF(t *testing.T) {
	var buf bytes.Buffer
	bw := bgzf.NewWriter(&buf, 1)
	_, err := bw.Write([]byte(annotation))
	require.NoError(t, err)
	require.NoError(t, bw.Flush())
	_, err = bw.Write([]byte(annotation))
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	path := filepath.Join(t.TempDir(), "a.gff.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0666))
	assert.Equal(t, annotation+annotation, readAll(t, path))
}

func TestOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gff")
	_, err := Open(path)
	require.Error(t, err)
	var oerr *InputOpenError
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, path, oerr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Gzip magic with a broken header
	path = filepath.Join(t.TempDir(), "broken.gff.gz")
	require.NoError(t, os.WriteFile(path, []byte{0x1f, 0x8b, 0x00}, 0666))
	_, err = Open(path)
	require.True(t, errors.As(err, &oerr))
}

func TestSplitFormat(t *testing.T) {
	tests := []struct {
		in, format, zip string
	}{
		{"gtf", "gtf", ZipNone},
		{"gff+lz4", "gff", ZipLZ4},
		{"gtf+lz4hc", "gtf", ZipLZ4HC},
		{"gtf+bgzf", "gtf", ZipBGZF},
		{"", "", ZipNone},
	}
	for _, tt := range tests {
		format, zip := SplitFormat(tt.in)
		assert.Equal(t, tt.format, format, tt.in)
		assert.Equal(t, tt.zip, zip, tt.in)
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	for _, zip := range []string{ZipNone, ZipLZ4, ZipLZ4HC, ZipBGZF} {
		path := filepath.Join(dir, "out_"+zip)
		w, err := Create(path, zip)
		require.NoError(t, err, zip)
		_, err = w.Write([]byte(annotation))
		require.NoError(t, err, zip)
		require.NoError(t, w.Close(), zip)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var r io.Reader
		switch zip {
		case ZipLZ4, ZipLZ4HC:
			r = lz4.NewReader(bytes.NewReader(raw))
		case ZipBGZF:
			// Output is read back like any gzip input
			assert.Equal(t, annotation, readAll(t, path))
			continue
		default:
			r = bytes.NewReader(raw)
		}
		b, err := io.ReadAll(r)
		require.NoError(t, err, zip)
		assert.Equal(t, annotation, string(b), zip)
	}

	_, err := Create(filepath.Join(dir, "out_zip"), "zip")
	assert.Error(t, err)
}
