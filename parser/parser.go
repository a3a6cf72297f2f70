// Package parser decodes rcg game logs of every format generation and
// pushes the decoded records to an rcg.Handler.
//
// Create sniffs the first bytes of a stream and returns the matching
// parser:
//
//	[        JSON document (or the streaming JSON parser)
//	ULG4/5   text, S-expression records
//	ULG6     text, S-expression records with focus points
//	ULG\x03  binary v3
//	ULG\x02  binary v2
//	other    binary v1 (no header)
//
// Every parser has two entry points sharing the same decoders: Parse
// for a whole log and ParseData for one record received on its own.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Neumenon/rcg/rcg"
	"github.com/Neumenon/rcg/stream"
)

var (
	// ErrShortHeader is returned when fewer than 4 bytes are available.
	ErrShortHeader = errors.New("rcg: short header")
	// ErrUnknownFormat is returned for a header no parser accepts.
	ErrUnknownFormat = errors.New("rcg: unknown format")
	// ErrUnsupportedVersion is returned when a parser is given a log of
	// another version.
	ErrUnsupportedVersion = errors.New("rcg: unsupported version")
	// ErrShortRead is returned for a record cut off before its end.
	ErrShortRead = errors.New("rcg: short read")
	// ErrBadRecord marks a record that could not be decoded. Parse
	// logs and skips such records.
	ErrBadRecord = errors.New("rcg: malformed record")
	// ErrUnknownRecord marks a record tag no decoder handles.
	ErrUnknownRecord = errors.New("rcg: unknown record")
	// ErrBadShow marks a show record that broke off in the middle.
	// It aborts the decode.
	ErrBadShow = errors.New("rcg: malformed show")
	// ErrBadDocument is returned for a JSON log that is not an array.
	ErrBadDocument = errors.New("rcg: malformed document")
)

// ParseError locates a decode failure. Text logs report a line, binary
// logs an offset.
type ParseError struct {
	Reason string
	Line   int
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s at line %d: %v", e.Reason, e.Line, e.Err)
	case e.Offset >= 0:
		return fmt.Sprintf("%s at offset %d: %v", e.Reason, e.Offset, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser decodes one log format.
type Parser interface {
	// Version returns the log version the parser reports.
	Version() int
	// Parse decodes a whole log from the start of r. The handler sees
	// an EOFEvent only when the log decoded successfully.
	Parse(r io.ReadSeeker, h rcg.Handler) error
	// ParseData decodes a single record.
	ParseData(data []byte, h rcg.Handler) error
}

// ============================================================
// Options
// ============================================================

type options struct {
	logger        *slog.Logger
	streamingJSON bool
	legacyBallVY  bool
	maxMessage    int
}

// Option configures the parsers.
type Option func(*options)

// WithLogger sets the logger receiving diagnostics for skipped records
// (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStreamingJSON makes Create return the streaming JSON parser for
// JSON logs.
func WithStreamingJSON() Option {
	return func(o *options) {
		o.streamingJSON = true
	}
}

// WithLegacyBallVY makes the JSON document parser read the ball vy from
// the "vx" key, as logs converted by older tools expect.
func WithLegacyBallVY() Option {
	return func(o *options) {
		o.legacyBallVY = true
	}
}

// WithMaxMessage bounds the message length accepted by the binary
// parsers (default: stream.DefaultMaxMessage).
func WithMaxMessage(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMessage = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:     slog.Default(),
		maxMessage: stream.DefaultMaxMessage,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ============================================================
// Factory
// ============================================================

// Create reads the 4 byte header of r and returns the parser for it.
// Except for JSON logs the stream is left positioned after the header;
// every parser seeks back to the start in Parse.
func Create(r io.Reader, opts ...Option) (Parser, error) {
	o := newOptions(opts)

	var hdr [stream.HeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		o.logger.Warn("rcg header", "bytes", n, "error", err)
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, n)
	}

	if hdr[0] == '[' {
		if o.streamingJSON {
			return &StreamJSON{o: o}, nil
		}
		return &JSON{o: o}, nil
	}

	version := rcg.VersionOld
	if hdr[0] == stream.Magic[0] && hdr[1] == stream.Magic[1] && hdr[2] == stream.Magic[2] {
		version = int(hdr[3])
	}

	var p Parser
	switch version {
	case '4', '5':
		p = &Text{version: version - '0', o: o}
	case '6':
		p = &Text{version: rcg.Version6, o: o}
	case rcg.Version3:
		p = &Binary{version: rcg.Version3, o: o}
	case rcg.Version2:
		p = &Binary{version: rcg.Version2, o: o}
	case rcg.VersionOld:
		p = &V1{o: o}
	default:
		o.logger.Warn("rcg header", "header", fmt.Sprintf("%q", hdr[:]))
		return nil, fmt.Errorf("%w: header %q", ErrUnknownFormat, hdr[:])
	}
	o.logger.Debug("rcg parser", "version", p.Version())
	return p, nil
}

// New returns the parser for a log version. Version 6 selects the text
// parser; use NewJSON for JSON logs.
func New(version int, opts ...Option) (Parser, error) {
	o := newOptions(opts)
	switch version {
	case rcg.VersionOld:
		return &V1{o: o}, nil
	case rcg.Version2, rcg.Version3:
		return &Binary{version: version, o: o}, nil
	case rcg.Version4, rcg.Version5, rcg.Version6:
		return &Text{version: version, o: o}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
}

// NewJSON returns the JSON document parser, or the streaming parser
// when WithStreamingJSON is given.
func NewJSON(opts ...Option) Parser {
	o := newOptions(opts)
	if o.streamingJSON {
		return &StreamJSON{o: o}
	}
	return &JSON{o: o}
}

// ============================================================
// Helpers shared by the parsers
// ============================================================

// handlerError wraps an error returned by the handler.
func handlerError(err error) error {
	return fmt.Errorf("rcg: handler: %w", err)
}

// dispatch forwards events in order and stops at the first handler error.
func dispatch(h rcg.Handler, events []rcg.Event) error {
	for _, ev := range events {
		if err := h.Handle(ev); err != nil {
			return handlerError(err)
		}
	}
	return nil
}

func rewind(r io.Seeker) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rcg: seek: %w", err)
	}
	return nil
}
