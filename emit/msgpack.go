package emit

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Neumenon/rcg/rcg"
)

// ErrIncomplete reports a msgpack stream that ended before its eof record.
var ErrIncomplete = errors.New("emit: msgpack stream ended without eof record")

// packRecord is one event of the msgpack cache format. Kind is the
// rcg.EventKind name; the other fields are filled as the kind needs.
type packRecord struct {
	Kind     string         `msgpack:"kind"`
	Version  int            `msgpack:"version,omitempty"`
	Text     string         `msgpack:"text,omitempty"`
	Time     int            `msgpack:"time,omitempty"`
	Board    int            `msgpack:"board,omitempty"`
	PlayMode rcg.PlayMode   `msgpack:"playmode,omitempty"`
	Teams    []rcg.Team     `msgpack:"teams,omitempty"`
	Show     *rcg.ShowInfo  `msgpack:"show,omitempty"`
	Point    *rcg.Point     `msgpack:"point,omitempty"`
	Circle   *rcg.Circle    `msgpack:"circle,omitempty"`
	Line     *rcg.Line      `msgpack:"line,omitempty"`
	Side     rcg.Side       `msgpack:"side,omitempty"`
	X        int            `msgpack:"x,omitempty"`
	Y        int            `msgpack:"y,omitempty"`
	Xpm      []string       `msgpack:"xpm,omitempty"`
	Params   map[string]any `msgpack:"params,omitempty"`
}

// MsgpackWriter writes every event as a msgpack map. The stream is a
// lossless cache of a decoded log; ReadMsgpack replays it.
type MsgpackWriter struct {
	bw  *bufio.Writer
	enc *msgpack.Encoder
}

// NewMsgpackWriter returns a msgpack writer.
func NewMsgpackWriter(w io.Writer) *MsgpackWriter {
	bw := bufio.NewWriter(w)
	return &MsgpackWriter{bw: bw, enc: msgpack.NewEncoder(bw)}
}

// Flush writes any buffered output.
func (m *MsgpackWriter) Flush() error {
	return m.bw.Flush()
}

// Handle writes one event.
func (m *MsgpackWriter) Handle(ev rcg.Event) error {
	rec := packRecord{Kind: ev.Kind().String()}
	switch e := ev.(type) {
	case rcg.LogVersionEvent:
		rec.Version = e.Version
	case rcg.ServerVersionEvent:
		rec.Text = e.Version
	case rcg.TimestampEvent:
		rec.Text = e.Value
	case rcg.ShowEvent:
		rec.Show = e.Show
	case rcg.MsgEvent:
		rec.Time, rec.Board, rec.Text = e.Time, e.Board, e.Text
	case rcg.DrawClearEvent:
		rec.Time = e.Time
	case rcg.DrawPointEvent:
		rec.Time, rec.Point = e.Time, &e.Point
	case rcg.DrawCircleEvent:
		rec.Time, rec.Circle = e.Time, &e.Circle
	case rcg.DrawLineEvent:
		rec.Time, rec.Line = e.Time, &e.Line
	case rcg.PlayModeEvent:
		rec.Time, rec.PlayMode = e.Time, e.PlayMode
	case rcg.TeamEvent:
		rec.Time, rec.Teams = e.Time, []rcg.Team{e.Left, e.Right}
	case rcg.ServerParamEvent:
		rec.Params = packParams(rcg.ServerParamRegistry(), e.Param)
	case rcg.PlayerParamEvent:
		rec.Params = packParams(rcg.PlayerParamRegistry(), e.Param)
	case rcg.PlayerTypeEvent:
		rec.Params = packParams(rcg.PlayerTypeRegistry(), e.Type)
	case rcg.TeamGraphicEvent:
		rec.Side, rec.X, rec.Y, rec.Xpm = e.Side, e.X, e.Y, e.Xpm
	}
	if err := m.enc.Encode(&rec); err != nil {
		return fmt.Errorf("emit: msgpack %s: %w", rec.Kind, err)
	}
	if ev.Kind() == rcg.KindEOF {
		return m.Flush()
	}
	return nil
}

func packParams[T any](reg *rcg.Registry[T], p *T) map[string]any {
	out := make(map[string]any, reg.Len())
	for _, name := range reg.Names() {
		if v, ok := reg.Value(p, name); ok {
			out[name] = v
		}
	}
	return out
}

// ReadMsgpack replays a stream written by MsgpackWriter into h. A stream
// that ends before its eof record fails with ErrIncomplete.
func ReadMsgpack(r io.Reader, h rcg.Handler) error {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	dec.UseLooseInterfaceDecoding(true)
	for n := 0; ; n++ {
		var rec packRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrIncomplete
			}
			return fmt.Errorf("emit: msgpack record %d: %w", n, err)
		}
		ev, err := unpack(&rec)
		if err != nil {
			return fmt.Errorf("emit: msgpack record %d: %w", n, err)
		}
		if err := h.Handle(ev); err != nil {
			return err
		}
		if ev.Kind() == rcg.KindEOF {
			return nil
		}
	}
}

func unpack(rec *packRecord) (rcg.Event, error) {
	switch rec.Kind {
	case rcg.KindLogVersion.String():
		return rcg.LogVersionEvent{Version: rec.Version}, nil
	case rcg.KindServerVersion.String():
		return rcg.ServerVersionEvent{Version: rec.Text}, nil
	case rcg.KindTimestamp.String():
		return rcg.TimestampEvent{Value: rec.Text}, nil
	case rcg.KindShow.String():
		if rec.Show == nil {
			return nil, errors.New("show without body")
		}
		return rcg.ShowEvent{Show: rec.Show}, nil
	case rcg.KindMsg.String():
		return rcg.MsgEvent{Time: rec.Time, Board: rec.Board, Text: rec.Text}, nil
	case rcg.KindDrawClear.String():
		return rcg.DrawClearEvent{Time: rec.Time}, nil
	case rcg.KindDrawPoint.String():
		if rec.Point == nil {
			return nil, errors.New("draw_point without point")
		}
		return rcg.DrawPointEvent{Time: rec.Time, Point: *rec.Point}, nil
	case rcg.KindDrawCircle.String():
		if rec.Circle == nil {
			return nil, errors.New("draw_circle without circle")
		}
		return rcg.DrawCircleEvent{Time: rec.Time, Circle: *rec.Circle}, nil
	case rcg.KindDrawLine.String():
		if rec.Line == nil {
			return nil, errors.New("draw_line without line")
		}
		return rcg.DrawLineEvent{Time: rec.Time, Line: *rec.Line}, nil
	case rcg.KindPlayMode.String():
		return rcg.PlayModeEvent{Time: rec.Time, PlayMode: rec.PlayMode}, nil
	case rcg.KindTeam.String():
		if len(rec.Teams) != 2 {
			return nil, fmt.Errorf("team with %d entries", len(rec.Teams))
		}
		return rcg.TeamEvent{Time: rec.Time, Left: rec.Teams[0], Right: rec.Teams[1]}, nil
	case rcg.KindServerParam.String():
		sp := rcg.NewServerParam()
		if err := unpackParams(rcg.ServerParamRegistry(), sp, rec.Params); err != nil {
			return nil, err
		}
		return rcg.ServerParamEvent{Param: sp}, nil
	case rcg.KindPlayerParam.String():
		pp := rcg.NewPlayerParam()
		if err := unpackParams(rcg.PlayerParamRegistry(), pp, rec.Params); err != nil {
			return nil, err
		}
		return rcg.PlayerParamEvent{Param: pp}, nil
	case rcg.KindPlayerType.String():
		pt := rcg.NewPlayerType()
		if err := unpackParams(rcg.PlayerTypeRegistry(), pt, rec.Params); err != nil {
			return nil, err
		}
		return rcg.PlayerTypeEvent{Type: pt}, nil
	case rcg.KindTeamGraphic.String():
		return rcg.TeamGraphicEvent{Side: rec.Side, X: rec.X, Y: rec.Y, Xpm: rec.Xpm}, nil
	case rcg.KindEOF.String():
		return rcg.EOFEvent{}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", rec.Kind)
}

// unpackParams applies values decoded loosely: integers arrive as int64
// or uint64, floats as float64.
func unpackParams[T any](reg *rcg.Registry[T], p *T, params map[string]any) error {
	for name, v := range params {
		var err error
		switch x := v.(type) {
		case int64:
			err = reg.SetInt(p, name, int(x))
		case uint64:
			err = reg.SetInt(p, name, int(x))
		case float64:
			err = reg.SetDouble(p, name, x)
		case bool:
			err = reg.SetBool(p, name, x)
		case string:
			err = reg.SetString(p, name, x)
		default:
			err = fmt.Errorf("%s: %T", name, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
