package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Neumenon/rcg/legacy"
	"github.com/Neumenon/rcg/rcg"
	"github.com/Neumenon/rcg/stream"
)

// Binary decodes the mode-tagged v2 and v3 logs.
//
// v2 shows carry play mode and teams; v3 shows carry only ball and
// players, with play mode, teams and parameters in records of their
// own. Draw records are consumed and discarded.
type Binary struct {
	version int
	o       options
}

// NewV2 returns a v2 parser.
func NewV2(opts ...Option) *Binary {
	return &Binary{version: rcg.Version2, o: newOptions(opts)}
}

// NewV3 returns a v3 parser.
func NewV3(opts ...Option) *Binary {
	return &Binary{version: rcg.Version3, o: newOptions(opts)}
}

// Version returns 2 or 3.
func (p *Binary) Version() int { return p.version }

// Parse decodes the header and all records.
func (p *Binary) Parse(r io.ReadSeeker, h rcg.Handler) error {
	if err := rewind(r); err != nil {
		return err
	}
	sr := stream.NewReader(r, stream.WithMaxMessage(p.o.maxMessage))
	version, err := sr.ReadHeader()
	if errors.Is(err, stream.ErrTruncated) {
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedVersion, err)
	}
	if version != p.version {
		return fmt.Errorf("%w: log v%d, parser v%d", ErrUnsupportedVersion, version, p.version)
	}

	a := legacy.NewAdapter(h)
	if err := a.LogVersion(version); err != nil {
		return handlerError(err)
	}
	for {
		rec, err := sr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.streamError(err)
		}
		if err := p.decode(a, rec); err != nil {
			return err
		}
	}

	if err := h.Handle(rcg.EOFEvent{}); err != nil {
		return handlerError(err)
	}
	return nil
}

// ParseData decodes one record: the mode tag followed by its body.
func (p *Binary) ParseData(data []byte, h rcg.Handler) error {
	sr := stream.NewReader(bytes.NewReader(data),
		stream.WithVersion(p.version),
		stream.WithMaxMessage(p.o.maxMessage))
	rec, err := sr.Next()
	if errors.Is(err, io.EOF) {
		return &ParseError{Reason: "empty record", Offset: 0, Err: ErrShortRead}
	}
	if err != nil {
		return p.streamError(err)
	}
	return p.decode(legacy.NewAdapter(h), rec)
}

// streamError maps reader failures to the parser errors. The length of
// an unknown record is unknown, so the stream cannot resynchronize.
func (p *Binary) streamError(err error) error {
	switch {
	case errors.Is(err, stream.ErrTruncated):
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	case errors.Is(err, stream.ErrUnknownMode):
		p.o.logger.Warn("rcg binary: unknown mode", "version", p.version, "error", err)
		return fmt.Errorf("%w: %w", ErrUnknownRecord, err)
	}
	return err
}

func (p *Binary) decode(a *legacy.Adapter, rec *stream.Record) error {
	var err error
	switch rec.Mode {
	case legacy.NoInfo:
		return nil
	case legacy.ShowMode:
		if p.version == rcg.Version2 {
			var si legacy.ShowInfo
			if err = rec.Decode(&si); err == nil {
				err = a.ShowInfo(&si)
			}
		} else {
			var si legacy.ShortShowInfo2
			if err = rec.Decode(&si); err == nil {
				err = a.ShortShowInfo2(&si)
			}
		}
	case legacy.MsgMode:
		var board int
		var text string
		if board, text, err = rec.Message(); err == nil {
			err = a.Msg(board, text)
		}
	case legacy.DrawMode:
		p.o.logger.Debug("rcg binary: draw record discarded", "offset", rec.Offset)
		return nil
	case legacy.PMMode:
		err = a.PlayMode(rec.Body[0])
	case legacy.TeamMode:
		var teams [2]legacy.TeamInfo
		if err = rec.Decode(&teams); err == nil {
			err = a.TeamInfo(&teams[0], &teams[1])
		}
	case legacy.PTMode:
		var pt legacy.PlayerTypeInfo
		if err = rec.Decode(&pt); err == nil {
			err = a.PlayerType(&pt)
		}
	case legacy.ParamMode:
		var sp legacy.ServerParams
		if err = rec.Decode(&sp); err == nil {
			err = a.ServerParams(&sp)
		}
	case legacy.PParamMode:
		var pp legacy.PlayerParams
		if err = rec.Decode(&pp); err == nil {
			err = a.PlayerParams(&pp)
		}
	default:
		err = ErrUnknownRecord
	}
	if err != nil {
		return &ParseError{Reason: legacy.ModeName(rec.Mode), Offset: rec.Offset, Err: err}
	}
	return nil
}
