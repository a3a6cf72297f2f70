package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/Neumenon/rcg/legacy"
	"github.com/Neumenon/rcg/rcg"
)

// V1 decodes the headerless v1 log: a sequence of fixed size dispinfo_t
// records.
type V1 struct {
	o options
}

// NewV1 returns a v1 parser.
func NewV1(opts ...Option) *V1 {
	return &V1{o: newOptions(opts)}
}

// Version returns 1.
func (p *V1) Version() int { return rcg.VersionOld }

// Parse decodes records until EOF. A record cut off by the end of the
// stream fails with ErrShortRead.
func (p *V1) Parse(r io.ReadSeeker, h rcg.Handler) error {
	if err := rewind(r); err != nil {
		return err
	}
	a := legacy.NewAdapter(h)
	if err := a.LogVersion(rcg.VersionOld); err != nil {
		return handlerError(err)
	}

	buf := make([]byte, legacy.SizeDispInfo)
	var offset int64
	for {
		n, err := io.ReadFull(r, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &ParseError{
				Reason: fmt.Sprintf("dispinfo_t (%d of %d bytes)", n, len(buf)),
				Offset: offset,
				Err:    ErrShortRead,
			}
		}
		if err := p.decode(a, buf, offset); err != nil {
			return err
		}
		offset += int64(n)
	}

	if err := h.Handle(rcg.EOFEvent{}); err != nil {
		return handlerError(err)
	}
	return nil
}

// ParseData decodes one dispinfo_t record.
func (p *V1) ParseData(data []byte, h rcg.Handler) error {
	if len(data) < legacy.SizeDispInfo {
		return &ParseError{Reason: "dispinfo_t", Offset: 0, Err: ErrShortRead}
	}
	return p.decode(legacy.NewAdapter(h), data[:legacy.SizeDispInfo], 0)
}

func (p *V1) decode(a *legacy.Adapter, buf []byte, offset int64) error {
	var disp legacy.DispInfo
	if err := legacy.Decode(buf, &disp); err != nil {
		return &ParseError{Reason: "dispinfo_t", Offset: offset, Err: err}
	}
	switch disp.Mode {
	case legacy.NoInfo, legacy.BlankMode:
		return nil
	}
	ok, err := a.DispInfo(&disp)
	if !ok {
		p.o.logger.Warn("rcg v1: unknown mode", "mode", disp.Mode, "offset", offset)
		return nil
	}
	if err != nil {
		return &ParseError{Reason: legacy.ModeName(disp.Mode), Offset: offset, Err: err}
	}
	return nil
}
