package rcg

import "fmt"

// EventKind is the category of a decoded record.
type EventKind uint8

const (
	KindLogVersion EventKind = iota
	KindServerVersion
	KindTimestamp
	KindShow
	KindMsg
	KindDrawClear
	KindDrawPoint
	KindDrawCircle
	KindDrawLine
	KindPlayMode
	KindTeam
	KindServerParam
	KindPlayerParam
	KindPlayerType
	KindTeamGraphic
	KindEOF
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case KindLogVersion:
		return "log_version"
	case KindServerVersion:
		return "server_version"
	case KindTimestamp:
		return "timestamp"
	case KindShow:
		return "show"
	case KindMsg:
		return "msg"
	case KindDrawClear:
		return "draw_clear"
	case KindDrawPoint:
		return "draw_point"
	case KindDrawCircle:
		return "draw_circle"
	case KindDrawLine:
		return "draw_line"
	case KindPlayMode:
		return "playmode"
	case KindTeam:
		return "team"
	case KindServerParam:
		return "server_param"
	case KindPlayerParam:
		return "player_param"
	case KindPlayerType:
		return "player_type"
	case KindTeamGraphic:
		return "team_graphic"
	case KindEOF:
		return "eof"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Event is one decoded record. The concrete types are the *Event
// structs of this package.
type Event interface {
	Kind() EventKind
}

// LogVersionEvent announces the format version of the stream.
type LogVersionEvent struct{ Version int }

// ServerVersionEvent carries the version string of the recording server.
type ServerVersionEvent struct{ Version string }

// TimestampEvent carries the recording time as written by the server.
type TimestampEvent struct{ Value string }

// ShowEvent carries one cycle.
type ShowEvent struct{ Show *ShowInfo }

// MsgEvent is a message board entry.
type MsgEvent struct {
	Time  int
	Board int
	Text  string
}

// DrawClearEvent clears the legacy draw layer.
type DrawClearEvent struct{ Time int }

// DrawPointEvent is a legacy draw point.
type DrawPointEvent struct {
	Time  int
	Point Point
}

// DrawCircleEvent is a legacy draw circle.
type DrawCircleEvent struct {
	Time   int
	Circle Circle
}

// DrawLineEvent is a legacy draw line.
type DrawLineEvent struct {
	Time int
	Line Line
}

// PlayModeEvent is a referee state change.
type PlayModeEvent struct {
	Time     int
	PlayMode PlayMode
}

// TeamEvent carries both teams' names and scores.
type TeamEvent struct {
	Time  int
	Left  Team
	Right Team
}

// ServerParamEvent carries the server configuration.
type ServerParamEvent struct{ Param *ServerParam }

// PlayerParamEvent carries the heterogeneous player configuration.
type PlayerParamEvent struct{ Param *PlayerParam }

// PlayerTypeEvent carries one heterogeneous player type.
type PlayerTypeEvent struct{ Type *PlayerType }

// TeamGraphicEvent carries one 8x8 tile of a team logo as raw xpm lines.
type TeamGraphicEvent struct {
	Side Side
	X, Y int
	Xpm  []string
}

// EOFEvent is delivered once after a stream decoded successfully.
type EOFEvent struct{}

func (LogVersionEvent) Kind() EventKind    { return KindLogVersion }
func (ServerVersionEvent) Kind() EventKind { return KindServerVersion }
func (TimestampEvent) Kind() EventKind     { return KindTimestamp }
func (ShowEvent) Kind() EventKind          { return KindShow }
func (MsgEvent) Kind() EventKind           { return KindMsg }
func (DrawClearEvent) Kind() EventKind     { return KindDrawClear }
func (DrawPointEvent) Kind() EventKind     { return KindDrawPoint }
func (DrawCircleEvent) Kind() EventKind    { return KindDrawCircle }
func (DrawLineEvent) Kind() EventKind      { return KindDrawLine }
func (PlayModeEvent) Kind() EventKind      { return KindPlayMode }
func (TeamEvent) Kind() EventKind          { return KindTeam }
func (ServerParamEvent) Kind() EventKind   { return KindServerParam }
func (PlayerParamEvent) Kind() EventKind   { return KindPlayerParam }
func (PlayerTypeEvent) Kind() EventKind    { return KindPlayerType }
func (TeamGraphicEvent) Kind() EventKind   { return KindTeamGraphic }
func (EOFEvent) Kind() EventKind           { return KindEOF }

// Handler consumes decoded events. A non-nil error aborts decoding
// and is returned by the parser.
type Handler interface {
	Handle(ev Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event) error

// Handle calls f(ev).
func (f HandlerFunc) Handle(ev Event) error {
	return f(ev)
}

// Nop is a Handler that discards every event.
var Nop Handler = HandlerFunc(func(Event) error { return nil })

// ============================================================
// Collector
// ============================================================

// Collector records every event it receives.
type Collector struct {
	Events []Event
}

// Handle appends ev.
func (c *Collector) Handle(ev Event) error {
	c.Events = append(c.Events, ev)
	return nil
}

// Kinds returns the kinds of the recorded events in order.
func (c *Collector) Kinds() []EventKind {
	kinds := make([]EventKind, len(c.Events))
	for i, ev := range c.Events {
		kinds[i] = ev.Kind()
	}
	return kinds
}

// Count returns the number of recorded events of kind k.
func (c *Collector) Count(k EventKind) int {
	n := 0
	for _, ev := range c.Events {
		if ev.Kind() == k {
			n++
		}
	}
	return n
}

// Shows returns the recorded shows in order.
func (c *Collector) Shows() []*ShowInfo {
	var shows []*ShowInfo
	for _, ev := range c.Events {
		if s, ok := ev.(ShowEvent); ok {
			shows = append(shows, s.Show)
		}
	}
	return shows
}

// ============================================================
// Funcs - callback dispatch helper
// ============================================================

// Funcs is a Handler built from optional per-kind callbacks.
// Events without a callback are ignored.
type Funcs struct {
	OnLogVersion    func(version int) error
	OnServerVersion func(version string) error
	OnTimestamp     func(value string) error
	OnShow          func(show *ShowInfo) error
	OnMsg           func(time, board int, text string) error
	OnDrawClear     func(time int) error
	OnDrawPoint     func(time int, p Point) error
	OnDrawCircle    func(time int, c Circle) error
	OnDrawLine      func(time int, l Line) error
	OnPlayMode      func(time int, pm PlayMode) error
	OnTeam          func(time int, left, right Team) error
	OnServerParam   func(p *ServerParam) error
	OnPlayerParam   func(p *PlayerParam) error
	OnPlayerType    func(t *PlayerType) error
	OnTeamGraphic   func(side Side, x, y int, xpm []string) error
	OnEOF           func() error
}

// Handle dispatches ev to the matching callback.
func (f *Funcs) Handle(ev Event) error {
	switch e := ev.(type) {
	case LogVersionEvent:
		if f.OnLogVersion != nil {
			return f.OnLogVersion(e.Version)
		}
	case ServerVersionEvent:
		if f.OnServerVersion != nil {
			return f.OnServerVersion(e.Version)
		}
	case TimestampEvent:
		if f.OnTimestamp != nil {
			return f.OnTimestamp(e.Value)
		}
	case ShowEvent:
		if f.OnShow != nil {
			return f.OnShow(e.Show)
		}
	case MsgEvent:
		if f.OnMsg != nil {
			return f.OnMsg(e.Time, e.Board, e.Text)
		}
	case DrawClearEvent:
		if f.OnDrawClear != nil {
			return f.OnDrawClear(e.Time)
		}
	case DrawPointEvent:
		if f.OnDrawPoint != nil {
			return f.OnDrawPoint(e.Time, e.Point)
		}
	case DrawCircleEvent:
		if f.OnDrawCircle != nil {
			return f.OnDrawCircle(e.Time, e.Circle)
		}
	case DrawLineEvent:
		if f.OnDrawLine != nil {
			return f.OnDrawLine(e.Time, e.Line)
		}
	case PlayModeEvent:
		if f.OnPlayMode != nil {
			return f.OnPlayMode(e.Time, e.PlayMode)
		}
	case TeamEvent:
		if f.OnTeam != nil {
			return f.OnTeam(e.Time, e.Left, e.Right)
		}
	case ServerParamEvent:
		if f.OnServerParam != nil {
			return f.OnServerParam(e.Param)
		}
	case PlayerParamEvent:
		if f.OnPlayerParam != nil {
			return f.OnPlayerParam(e.Param)
		}
	case PlayerTypeEvent:
		if f.OnPlayerType != nil {
			return f.OnPlayerType(e.Type)
		}
	case TeamGraphicEvent:
		if f.OnTeamGraphic != nil {
			return f.OnTeamGraphic(e.Side, e.X, e.Y, e.Xpm)
		}
	case EOFEvent:
		if f.OnEOF != nil {
			return f.OnEOF()
		}
	}
	return nil
}
