package emit

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/Neumenon/rcg/parser"
	"github.com/Neumenon/rcg/rcg"
)

func sampleShow() *rcg.ShowInfo {
	s := rcg.NewShowInfo()
	s.Time = 17
	s.Ball = rcg.Ball{X: 1.5, Y: -2.25, VX: 0.5, VY: 0.125}

	p := rcg.NewPlayer()
	p.Side, p.Unum, p.Type, p.State = rcg.Left, 1, 0, rcg.Stand|rcg.Goalie
	p.X, p.Y, p.VX, p.VY, p.Body, p.Neck = -50, 0, 0.1, -0.2, 45, -30
	p.PointX, p.PointY = 10, 20
	p.ViewWidth = 90
	p.FocusDist, p.FocusDir = 5, 15
	p.Stamina, p.Effort, p.Recovery, p.StaminaCapacity = 8000, 1, 1, 130600
	p.FocusSide, p.FocusUnum = rcg.Right, 9
	p.KickCount, p.DashCount, p.TurnCount, p.CatchCount = 1, 2, 3, 4
	p.MoveCount, p.TurnNeckCount, p.ChangeViewCount, p.SayCount = 5, 6, 7, 8
	p.TackleCount, p.PointtoCount, p.AttentiontoCount, p.ChangeFocusCount = 9, 10, 11, 12
	s.Players[0] = p

	q := rcg.NewPlayer()
	q.Side, q.Unum, q.Type, q.State = rcg.Right, 11, 3, rcg.Stand
	q.HighQuality = false
	q.X, q.Y, q.Body = 30, 5, 180
	q.ViewWidth = 45
	q.Stamina, q.Effort, q.Recovery = 7000.5, 0.8, 0.9
	s.Players[21] = q
	return &s
}

func sampleEvents() []rcg.Event {
	sp := rcg.NewServerParam()
	sp.GoalWidth = 15.5
	pp := rcg.NewPlayerParam()
	return []rcg.Event{
		rcg.LogVersionEvent{Version: rcg.Version6},
		rcg.ServerParamEvent{Param: sp},
		rcg.PlayerParamEvent{Param: pp},
		rcg.PlayModeEvent{Time: 0, PlayMode: rcg.PMPlayOn},
		rcg.TeamEvent{
			Time:  0,
			Left:  rcg.Team{Name: "alpha", Score: 2, PenaltyScore: 3, PenaltyMiss: 1},
			Right: rcg.Team{Name: "", Score: 1, PenaltyScore: 2, PenaltyMiss: 2},
		},
		rcg.ShowEvent{Show: sampleShow()},
		rcg.MsgEvent{Time: 17, Board: 1, Text: "(say hello)"},
		rcg.TeamGraphicEvent{Side: rcg.Left, X: 1, Y: 0, Xpm: tileLines()},
		rcg.EOFEvent{},
	}
}

func tileLines() []string {
	return []string{
		"8 8 2 1",
		"a c #00FF00",
		"b c None",
		"abababab",
		"babababa",
		"abababab",
		"babababa",
		"abababab",
		"babababa",
		"abababab",
		"babababa",
	}
}

func replay(t *testing.T, h rcg.Handler, events []rcg.Event) {
	t.Helper()
	for _, ev := range events {
		if err := h.Handle(ev); err != nil {
			t.Fatalf("Handle(%s) failed: %v", ev.Kind(), err)
		}
	}
}

func reparse(t *testing.T, data []byte, opts ...parser.Option) *rcg.Collector {
	t.Helper()
	opts = append(opts, parser.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r := bytes.NewReader(data)
	p, err := parser.Create(r, opts...)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var c rcg.Collector
	if err := p.Parse(r, &c); err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, data)
	}
	return &c
}

func kinds(events []rcg.Event) []rcg.EventKind {
	out := make([]rcg.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind()
	}
	return out
}

// ============================================================
// Text Tests
// ============================================================

func TestTextWriter_RoundTrip(t *testing.T) {
	for _, version := range []int{rcg.Version4, rcg.Version5, rcg.Version6} {
		t.Run("v"+string(rune('0'+version)), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewTextWriter(&buf, version)
			if err != nil {
				t.Fatalf("NewTextWriter failed: %v", err)
			}
			events := sampleEvents()
			replay(t, w, events)
			if !strings.HasPrefix(buf.String(), "ULG"+string(rune('0'+version))+"\n") {
				t.Fatalf("header = %.5q", buf.String())
			}

			c := reparse(t, buf.Bytes())
			if !reflect.DeepEqual(c.Kinds(), kinds(events)) {
				t.Fatalf("kinds = %v, want %v", c.Kinds(), kinds(events))
			}
			if sp := c.Events[1].(rcg.ServerParamEvent).Param; *sp != *events[1].(rcg.ServerParamEvent).Param {
				t.Errorf("server param changed in round trip")
			}
			if pp := c.Events[2].(rcg.PlayerParamEvent).Param; *pp != *events[2].(rcg.PlayerParamEvent).Param {
				t.Errorf("player param changed in round trip")
			}
			if got, want := c.Events[4], events[4]; got != want {
				t.Errorf("team = %+v, want %+v", got, want)
			}
			if got, want := c.Shows()[0], sampleShow(); *got != *want {
				t.Errorf("show changed in round trip\ngot  %+v\nwant %+v", got.Players[0], want.Players[0])
			}
			if got := c.Events[6].(rcg.MsgEvent); got != events[6] {
				t.Errorf("msg = %+v", got)
			}
			tg := c.Events[7].(rcg.TeamGraphicEvent)
			if tg.Side != rcg.Left || tg.X != 1 || !reflect.DeepEqual(tg.Xpm, tileLines()) {
				t.Errorf("team graphic = %+v", tg)
			}
		})
	}
}

func TestTextWriter_Player(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewTextWriter(&buf, rcg.Version5)
	replay(t, w, []rcg.Event{rcg.ShowEvent{Show: sampleShow()}, rcg.EOFEvent{}})
	want := "((l 1) 0 0x9 -50 0 0.1 -0.2 45 -30 10 20 (v h 90) (fp 5 15) (s 8000 1 1 130600) (f r 9) (c 1 2 3 4 5 6 7 8 9 10 11 12))"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output %q\nmissing %q", buf.String(), want)
	}
	if !strings.Contains(buf.String(), "(v l 45)") {
		t.Errorf("low quality view missing: %q", buf.String())
	}
}

func TestNewTextWriter_Version(t *testing.T) {
	if _, err := NewTextWriter(io.Discard, 3); err == nil {
		t.Error("NewTextWriter(3) succeeded")
	}
}

// ============================================================
// JSON Tests
// ============================================================

func TestJSONWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	events := sampleEvents()
	replay(t, NewJSONWriter(&buf), events)

	c := reparse(t, buf.Bytes())
	if !reflect.DeepEqual(c.Kinds(), kinds(events)) {
		t.Fatalf("kinds = %v, want %v\n%s", c.Kinds(), kinds(events), buf.String())
	}
	if sp := c.Events[1].(rcg.ServerParamEvent).Param; *sp != *events[1].(rcg.ServerParamEvent).Param {
		t.Errorf("server param changed in round trip")
	}
	if got, want := c.Events[4], events[4]; got != want {
		t.Errorf("team = %+v, want %+v", got, want)
	}
	if got, want := c.Shows()[0], sampleShow(); *got != *want {
		t.Errorf("show changed in round trip\ngot  %+v\nwant %+v", got.Players[21], want.Players[21])
	}
	tg := c.Events[7].(rcg.TeamGraphicEvent)
	if !reflect.DeepEqual(tg.Xpm, tileLines()) {
		t.Errorf("xpm = %q", tg.Xpm)
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	replay(t, NewJSONWriter(&buf), []rcg.Event{rcg.EOFEvent{}})
	if got := strings.TrimSpace(buf.String()); got != "[\n]" {
		t.Errorf("empty document = %q", got)
	}
}

// ============================================================
// Binary Tests
// ============================================================

func TestBinaryWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewBinaryWriter(&buf, rcg.Version3)
	if err != nil {
		t.Fatalf("NewBinaryWriter failed: %v", err)
	}
	events := sampleEvents()
	withDraw := append(append([]rcg.Event{}, events[:6]...), rcg.DrawClearEvent{Time: 17})
	replay(t, w, append(withDraw, events[6:]...))

	c := reparse(t, buf.Bytes())
	want := []rcg.EventKind{
		rcg.KindLogVersion, rcg.KindServerParam, rcg.KindPlayerParam, rcg.KindPlayMode,
		rcg.KindTeam, rcg.KindShow, rcg.KindMsg, rcg.KindMsg, rcg.KindEOF,
	}
	if !reflect.DeepEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	show := c.Shows()[0]
	if show.Time != 17 || show.Ball.X != 1.5 {
		t.Errorf("show = %d %v", show.Time, show.Ball.X)
	}
	if p := show.Players[0]; p.Side != rcg.Left || p.Unum != 1 {
		t.Errorf("player = %v %d", p.Side, p.Unum)
	}
	logo := c.Events[7].(rcg.MsgEvent)
	side, x, _, tile, err := rcg.ParseTeamGraphic(logo.Text)
	if err != nil {
		t.Fatalf("ParseTeamGraphic failed: %v", err)
	}
	if side != rcg.Left || x != 1 || !reflect.DeepEqual(tile.Lines(), tileLines()) {
		t.Errorf("team graphic = %v %d %q", side, x, tile.Lines())
	}
}

func TestBinaryWriter_V2DropsParams(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewBinaryWriter(&buf, rcg.Version2)
	if err != nil {
		t.Fatalf("NewBinaryWriter failed: %v", err)
	}
	replay(t, w, sampleEvents()[:6])
	replay(t, w, []rcg.Event{rcg.EOFEvent{}})

	c := reparse(t, buf.Bytes())
	want := []rcg.EventKind{rcg.KindLogVersion, rcg.KindPlayMode, rcg.KindTeam, rcg.KindShow, rcg.KindEOF}
	if !reflect.DeepEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	if team := c.Events[2].(rcg.TeamEvent); team.Left.Name != "alpha" || team.Left.Score != 2 {
		t.Errorf("left team = %+v", team.Left)
	}
}

// ============================================================
// Msgpack Tests
// ============================================================

func TestMsgpack_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	events := append(sampleEvents()[:8],
		rcg.ServerVersionEvent{Version: "19.0.0"},
		rcg.DrawPointEvent{Time: 3, Point: rcg.Point{X: 1, Y: 2, Color: "red"}},
		rcg.DrawLineEvent{Time: 3, Line: rcg.Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "blue"}},
		rcg.EOFEvent{},
	)
	replay(t, NewMsgpackWriter(&buf), events)

	var c rcg.Collector
	if err := ReadMsgpack(bytes.NewReader(buf.Bytes()), &c); err != nil {
		t.Fatalf("ReadMsgpack failed: %v", err)
	}
	if !reflect.DeepEqual(c.Events, events) {
		t.Errorf("events changed in round trip\ngot  %v\nwant %v", c.Kinds(), kinds(events))
	}
}

func TestMsgpack_Incomplete(t *testing.T) {
	var buf bytes.Buffer
	w := NewMsgpackWriter(&buf)
	replay(t, w, sampleEvents()[:3])
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	err := ReadMsgpack(bytes.NewReader(buf.Bytes()), rcg.Nop)
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("got %v, want ErrIncomplete", err)
	}
}

// ============================================================
// Factory Tests
// ============================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"text", "TEXT", "*emit.TextWriter"},
		{"json", "json", "*emit.JSONWriter"},
		{"binary", " binary ", "*emit.BinaryWriter"},
		{"msgpack", "msgpack", "*emit.MsgpackWriter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseFormat failed: %v", err)
			}
			w, err := New(f, io.Discard, 0)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := reflect.TypeOf(w).String(); got != tt.want {
				t.Errorf("New = %s, want %s", got, tt.want)
			}
		})
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) succeeded")
	}
}
