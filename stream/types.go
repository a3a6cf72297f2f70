// Package stream implements the binary record envelope of rcg v2 and v3
// logs.
//
// A stream is a 4-byte header ("ULG" + version byte) followed by
// records. Each record is a big endian int16 mode tag and a body whose
// length is fixed by the mode, except for messages which carry their
// own length:
//
//	show    v2: showinfo_t (316), v3: short_showinfo_t2 (1428)
//	msg     board int16, len int16, len bytes
//	draw    drawinfo_t (74)
//	pm      1 byte (v3)
//	team    2 x team_t (36, v3)
//	pt      player_type_t (88, v3)
//	param   server_params_t (396, v3)
//	pparam  player_params_t (132, v3)
package stream

import (
	"errors"
	"fmt"

	"github.com/Neumenon/rcg/legacy"
)

// HeaderSize is the length of the stream header.
const HeaderSize = 4

// Magic starts every versioned log.
var Magic = [3]byte{'U', 'L', 'G'}

// DefaultMaxMessage bounds the length of a message record body.
const DefaultMaxMessage = 1 << 15

// Sentinel errors wrapped by ParseError.
var (
	ErrBadHeader   = errors.New("bad header")
	ErrTruncated   = errors.New("truncated record")
	ErrUnknownMode = errors.New("unsupported mode")
)

// Record is one mode-tagged record.
type Record struct {
	Mode   int16
	Offset int64 // offset of the mode tag
	Body   []byte
}

// String returns a short description of the record.
func (r *Record) String() string {
	return fmt.Sprintf("%s@%d (%d bytes)", legacy.ModeName(r.Mode), r.Offset, len(r.Body))
}

// Message decodes the body of a message record. A trailing NUL ends the
// text at the first NUL; otherwise the payload is taken verbatim.
func (r *Record) Message() (board int, text string, err error) {
	if r.Mode != legacy.MsgMode || len(r.Body) < 4 {
		return 0, "", &ParseError{Reason: "not a message record", Offset: r.Offset, Err: ErrTruncated}
	}
	board = int(int16(uint16(r.Body[0])<<8 | uint16(r.Body[1])))
	payload := r.Body[4:]
	if n := len(payload); n > 0 && payload[n-1] == 0 {
		return board, legacy.CString(payload), nil
	}
	return board, string(payload), nil
}

// Decode decodes the body into one of the legacy record structs.
func (r *Record) Decode(v any) error {
	return legacy.Decode(r.Body, v)
}

// BodySize returns the fixed body length of mode in a stream of the
// given version. ok is false for modes the version does not carry and
// for messages, whose length is variable.
func BodySize(version int, mode int16) (n int, ok bool) {
	switch mode {
	case legacy.NoInfo:
		return 0, true
	case legacy.ShowMode:
		if version == 2 {
			return legacy.SizeShowInfo, true
		}
		return legacy.SizeShortShowInfo2, true
	case legacy.DrawMode:
		return legacy.SizeDrawInfo, true
	}
	if version < 3 {
		return 0, false
	}
	switch mode {
	case legacy.PMMode:
		return 1, true
	case legacy.TeamMode:
		return 2 * legacy.SizeTeamInfo, true
	case legacy.PTMode:
		return legacy.SizePlayerTypeInfo, true
	case legacy.ParamMode:
		return legacy.SizeServerParams, true
	case legacy.PParamMode:
		return legacy.SizePlayerParams, true
	}
	return 0, false
}

// ParseError reports a malformed stream.
type ParseError struct {
	Reason string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("rcg stream: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("rcg stream: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
