// Package compressor defines the byte-compression capability the
// similarity metric is built on, plus adapters over the DEFLATE-family
// implementations from github.com/klauspost/compress.
package compressor

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compressor turns a byte sequence into a (usually shorter) one. The
// similarity metric only ever looks at the length of the output.
// Implementations must be deterministic and safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Func adapts a plain function to the Compressor interface.
type Func func(data []byte) ([]byte, error)

func (f Func) Compress(data []byte) ([]byte, error) { return f(data) }

type gzipCompressor struct {
	level int
}

// Gzip returns a gzip Compressor at the default compression level.
func Gzip() Compressor {
	return &gzipCompressor{level: gzip.DefaultCompression}
}

// GzipLevel returns a gzip Compressor at an explicit level.
func GzipLevel(level int) Compressor {
	return &gzipCompressor{level: level}
}

func (g *gzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, g.level)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

type flateCompressor struct {
	level int
}

// Flate returns a raw DEFLATE Compressor. It carries less framing
// overhead than gzip, which matters on very short texts.
func Flate(level int) Compressor {
	return &flateCompressor{level: level}
}

func (f *flateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, f.level)
	if err != nil {
		return nil, fmt.Errorf("flate writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("flate write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flate close: %w", err)
	}
	return buf.Bytes(), nil
}

type zstdCompressor struct {
	enc *zstd.Encoder
}

// Zstd returns a zstd Compressor backed by a single shared encoder.
// EncodeAll on a shared encoder is safe for concurrent use.
func Zstd() (Compressor, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	return &zstdCompressor{enc: enc}, nil
}

func (z *zstdCompressor) Compress(data []byte) ([]byte, error) {
	return z.enc.EncodeAll(data, nil), nil
}
