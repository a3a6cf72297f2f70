package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Neumenon/rcg/legacy"
)

// Reader reads records of a v2/v3 binary log.
type Reader struct {
	r          *bufio.Reader
	version    int
	offset     int64
	maxMessage int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxMessage sets the largest message body accepted
// (default: DefaultMaxMessage).
func WithMaxMessage(max int) ReaderOption {
	return func(r *Reader) {
		r.maxMessage = max
	}
}

// WithVersion sets the stream version for a reader positioned after the
// header.
func WithVersion(version int) ReaderOption {
	return func(r *Reader) {
		r.version = version
		r.offset = HeaderSize
	}
}

// NewReader creates a record reader. Call ReadHeader first unless
// WithVersion is given.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:          bufio.NewReader(r),
		maxMessage: DefaultMaxMessage,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Version returns the stream version, 0 before the header is read.
func (r *Reader) Version() int { return r.version }

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int64 { return r.offset }

// ReadHeader reads and checks the "ULG" header and returns the version.
func (r *Reader) ReadHeader() (int, error) {
	var hdr [HeaderSize]byte
	n, err := io.ReadFull(r.r, hdr[:])
	r.offset += int64(n)
	if err != nil {
		return 0, &ParseError{Reason: "short header", Offset: int64(n), Err: fmt.Errorf("%w: %w", ErrBadHeader, ErrTruncated)}
	}
	if hdr[0] != Magic[0] || hdr[1] != Magic[1] || hdr[2] != Magic[2] {
		return 0, &ParseError{Reason: fmt.Sprintf("bad magic %q", hdr[:3]), Offset: 0, Err: ErrBadHeader}
	}
	if hdr[3] != 2 && hdr[3] != 3 {
		return 0, &ParseError{Reason: fmt.Sprintf("binary version %d", hdr[3]), Offset: 3, Err: ErrBadHeader}
	}
	r.version = int(hdr[3])
	return r.version, nil
}

// Next reads the next record. It returns io.EOF at a clean record
// boundary.
func (r *Reader) Next() (*Record, error) {
	start := r.offset
	var tag [2]byte
	n, err := io.ReadFull(r.r, tag[:])
	r.offset += int64(n)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, &ParseError{Reason: "truncated mode tag", Offset: start, Err: ErrTruncated}
	}
	rec := &Record{Mode: int16(binary.BigEndian.Uint16(tag[:])), Offset: start}

	if rec.Mode == legacy.MsgMode {
		return rec, r.readMessage(rec)
	}

	size, ok := BodySize(r.version, rec.Mode)
	if !ok {
		return rec, &ParseError{
			Reason: fmt.Sprintf("%s in v%d", legacy.ModeName(rec.Mode), r.version),
			Offset: start,
			Err:    ErrUnknownMode,
		}
	}
	rec.Body = make([]byte, size)
	if err := r.read(rec.Body); err != nil {
		return rec, &ParseError{Reason: "truncated " + legacy.ModeName(rec.Mode), Offset: start, Err: ErrTruncated}
	}
	return rec, nil
}

func (r *Reader) readMessage(rec *Record) error {
	var hdr [4]byte
	if err := r.read(hdr[:]); err != nil {
		return &ParseError{Reason: "truncated msg header", Offset: rec.Offset, Err: ErrTruncated}
	}
	length := int(int16(binary.BigEndian.Uint16(hdr[2:])))
	if length < 0 || length > r.maxMessage {
		return &ParseError{Reason: fmt.Sprintf("msg length %d", length), Offset: rec.Offset, Err: ErrTruncated}
	}
	rec.Body = make([]byte, 4+length)
	copy(rec.Body, hdr[:])
	if err := r.read(rec.Body[4:]); err != nil {
		return &ParseError{Reason: "truncated msg", Offset: rec.Offset, Err: ErrTruncated}
	}
	return nil
}

func (r *Reader) read(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.offset += int64(n)
	return err
}

// ReadAll reads all records until EOF.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
