package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/rcg/rcg"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Open reads a log file into memory. Gzip compressed files (.rcg.gz)
// are detected by their magic bytes and decompressed.
func Open(path string) (*bytes.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rcg: open: %w", err)
	}
	data, err = Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("rcg: open %s: %w", path, err)
	}
	return bytes.NewReader(data), nil
}

// Decompress returns data unchanged unless it starts with the gzip
// magic bytes.
func Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return out, nil
}

// ParseFile opens path, selects a parser from its header and decodes the
// whole log into h.
func ParseFile(path string, h rcg.Handler, opts ...Option) (Parser, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	p, err := Create(r, opts...)
	if err != nil {
		return nil, err
	}
	return p, p.Parse(r, h)
}
