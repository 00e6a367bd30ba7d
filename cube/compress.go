/*
 * compress.go, part of gomultipole.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cube

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Compression is the compression applied to a cube file.
type Compression int

const (
	Plain Compression = iota
	Zstd
	Gzip
	Deflate
)

//CompressionFor returns the compression matching the extension of name:
//.zst or .zstd for zstd, .gz for gzip, .z for deflate, anything else is plain text.
func CompressionFor(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".z"):
		return Deflate
	default:
		return Plain
	}
}

//*zstd.Decoder doesn't implement io.ReadCloser, as its Close returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//newReader wraps r with the decompressor for c. The returned reader must be closed,
//which doesn't close r.
func newReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case Gzip:
		return gzip.NewReader(r)
	case Deflate:
		return flate.NewReader(r), nil
	default:
		return io.NopCloser(r), nil
	}
}

//newWriter wraps w with the compressor for c. The returned writer must be
//closed to flush the compressed stream, which doesn't close w.
func newWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Deflate:
		return flate.NewWriter(w, flate.BestCompression)
	default:
		return nopWriteCloser{w}, nil
	}
}
