// Package emit writes decoded game logs back out.
//
// Every writer is an rcg.Handler, so converting a log is a single call:
//
//	w, err := emit.NewTextWriter(out, rcg.Version5)
//	if err != nil {
//		return err
//	}
//	err = p.Parse(in, w)
//
// Writers buffer their output and flush when they receive the EOF
// event; call Flush after an aborted decode to keep what was written.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/Neumenon/rcg/rcg"
)

// Format names an output format.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatBinary  Format = "binary"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatBinary, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("emit: unknown format %q", name)
}

// Writer is an rcg.Handler that produces a log.
type Writer interface {
	rcg.Handler
	Flush() error
}

// New returns a writer for format. version selects the text (4..6) or
// binary (2, 3) variant; zero picks the newest.
func New(format Format, w io.Writer, version int) (Writer, error) {
	switch format {
	case FormatText:
		if version == 0 {
			version = rcg.Version6
		}
		tw, err := NewTextWriter(w, version)
		if err != nil {
			return nil, err
		}
		return tw, nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatBinary:
		if version == 0 {
			version = rcg.Version3
		}
		bw, err := NewBinaryWriter(w, version)
		if err != nil {
			return nil, err
		}
		return bw, nil
	case FormatMsgpack:
		return NewMsgpackWriter(w), nil
	}
	return nil, fmt.Errorf("emit: unknown format %q", format)
}

// tileFromLines rebuilds a tile from the raw xpm lines of an event.
func tileFromLines(lines []string) (*rcg.XpmTile, error) {
	tile := &rcg.XpmTile{}
	for _, line := range lines {
		if err := tile.AddData(line); err != nil {
			return nil, err
		}
	}
	if !tile.Valid() {
		return nil, fmt.Errorf("emit: incomplete xpm tile (%d lines)", len(lines))
	}
	return tile, nil
}
