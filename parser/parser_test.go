package parser

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/rcg/legacy"
	"github.com/Neumenon/rcg/rcg"
	"github.com/Neumenon/rcg/stream"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func capture(buf *bytes.Buffer) Option {
	return WithLogger(slog.New(slog.NewTextHandler(buf, nil)))
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

func kindsEqual(got, want []rcg.EventKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func parseString(t *testing.T, log string, opts ...Option) (*rcg.Collector, error) {
	t.Helper()
	r := strings.NewReader(log)
	p, err := Create(r, append([]Option{quiet()}, opts...)...)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var c rcg.Collector
	return &c, p.Parse(r, &c)
}

// ============================================================
// Factory Tests
// ============================================================

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		version int
		kind    string
		err     error
	}{
		{"text v4", "ULG4\n", 4, "text", nil},
		{"text v5", "ULG5\n", 5, "text", nil},
		{"text v6", "ULG6\n", 6, "text", nil},
		{"binary v3", "ULG\x03", 3, "binary", nil},
		{"binary v2", "ULG\x02", 2, "binary", nil},
		{"headerless v1", "\x00\x01\x00\x00", 1, "v1", nil},
		{"json", "[{}]", 6, "json", nil},
		{"short header", "UL", 0, "", ErrShortHeader},
		{"short json document", "[]", 0, "", ErrShortHeader},
		{"empty input", "", 0, "", ErrShortHeader},
		{"unknown version", "ULG7", 0, "", ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Create(strings.NewReader(tt.data), quiet())
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if p.Version() != tt.version {
				t.Errorf("Version() = %d, want %d", p.Version(), tt.version)
			}
			var kind string
			switch p.(type) {
			case *Text:
				kind = "text"
			case *Binary:
				kind = "binary"
			case *V1:
				kind = "v1"
			case *JSON:
				kind = "json"
			}
			if kind != tt.kind {
				t.Errorf("parser = %T, want %s", p, tt.kind)
			}
		})
	}
}

func TestCreate_StreamingJSON(t *testing.T) {
	p, err := Create(strings.NewReader("[{\"version\":\"19\"}]"), quiet(), WithStreamingJSON())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, ok := p.(*StreamJSON); !ok {
		t.Errorf("parser = %T, want *StreamJSON", p)
	}
}

func TestNew(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		p, err := New(v, quiet())
		if err != nil {
			t.Fatalf("New(%d) failed: %v", v, err)
		}
		if p.Version() != v {
			t.Errorf("New(%d).Version() = %d", v, p.Version())
		}
	}
	if _, err := New(7); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("New(7): got %v, want ErrUnsupportedVersion", err)
	}
	if _, err := NewText(3); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("NewText(3): got %v, want ErrUnsupportedVersion", err)
	}
}

// ============================================================
// Text Tests
// ============================================================

const v4Log = `ULG4
(server_param (goal_width 14.02) (maxpower 100))
(playmode 0 before_kick_off)
(team 0 alpha null 0 0)
(show 1 ((b) 0 0 0 0) ((l 1) 0 0x1 -10 0 0 0 0 0 (v h 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0)))
`

func TestText_V4(t *testing.T) {
	c, err := parseString(t, v4Log)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []rcg.EventKind{
		rcg.KindLogVersion, rcg.KindServerParam, rcg.KindPlayMode,
		rcg.KindTeam, rcg.KindShow, rcg.KindEOF,
	}
	if !kindsEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	if v := c.Events[0].(rcg.LogVersionEvent).Version; v != 4 {
		t.Errorf("log version = %d, want 4", v)
	}

	sp := c.Events[1].(rcg.ServerParamEvent).Param
	wantSP := rcg.NewServerParam()
	wantSP.GoalWidth = 14.02
	if *sp != *wantSP {
		t.Errorf("server param differs from defaults beyond goal_width")
	}

	pm := c.Events[2].(rcg.PlayModeEvent)
	if pm.Time != 0 || pm.PlayMode != rcg.PMBeforeKickOff {
		t.Errorf("playmode = %+v", pm)
	}
	team := c.Events[3].(rcg.TeamEvent)
	if team.Left.Name != "alpha" || team.Right.Name != "" {
		t.Errorf("teams = %q %q, want alpha and empty", team.Left.Name, team.Right.Name)
	}

	show := c.Shows()[0]
	if show.Time != 1 {
		t.Errorf("show time = %d, want 1", show.Time)
	}
	p := show.Players[0]
	if p.Side != rcg.Left || p.Unum != 1 || p.State != 1 || p.X != -10 {
		t.Errorf("player = %+v", p)
	}
	if !p.HighQuality || p.ViewWidth != 90 || p.Stamina != 8000 {
		t.Errorf("view/stamina = %v %v %v", p.HighQuality, p.ViewWidth, p.Stamina)
	}
	if show.Players[1].Side != rcg.Neutral {
		t.Errorf("absent player has side %v", show.Players[1].Side)
	}
}

func TestText_MsgVerbatim(t *testing.T) {
	c, err := parseString(t, "ULG5\n(msg 5 1 \"say \\\"hi\\\"\")\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Count(rcg.KindMsg) != 1 {
		t.Fatalf("msg count = %d, want 1", c.Count(rcg.KindMsg))
	}
	msg := c.Events[1].(rcg.MsgEvent)
	if msg.Time != 5 || msg.Board != 1 {
		t.Errorf("msg = %+v", msg)
	}
	if want := `say \"hi\"`; msg.Text != want {
		t.Errorf("text = %q, want %q", msg.Text, want)
	}
}

func TestText_BadUnumDropsPlayer(t *testing.T) {
	log := "ULG5\n" +
		"(show 7 ((b) 0 0 0 0)" +
		" ((l 12) 0 0x1 1 1 0 0 0 0 (v h 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0))" +
		" ((l 2) 0 0x1 2 2 0 0 0 0 (v h 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0)))\n"
	var logs bytes.Buffer
	c, err := parseString(t, log, capture(&logs))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	shows := c.Shows()
	if len(shows) != 1 {
		t.Fatalf("shows = %d, want 1", len(shows))
	}
	if shows[0].Time != 7 {
		t.Errorf("time = %d, want 7", shows[0].Time)
	}
	if p := shows[0].Players[1]; p.Unum != 2 || p.X != 2 {
		t.Errorf("l2 = %+v", p)
	}
	for i, p := range shows[0].Players {
		if p.Unum == 12 {
			t.Errorf("player %d has unum 12", i)
		}
	}
	if !strings.Contains(logs.String(), "player dropped") {
		t.Errorf("drop not logged: %s", logs.String())
	}
}

func TestText_SkippedAndFatalShows(t *testing.T) {
	t.Run("bad time skipped", func(t *testing.T) {
		c, err := parseString(t, "ULG5\n(show abc ((b) 0 0 0 0))\n(playmode 3 play_on)\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if c.Count(rcg.KindShow) != 0 || c.Count(rcg.KindPlayMode) != 1 || c.Count(rcg.KindEOF) != 1 {
			t.Errorf("kinds = %v", c.Kinds())
		}
	})
	t.Run("broken show aborts", func(t *testing.T) {
		c, err := parseString(t, "ULG5\n(playmode 0 play_on)\n(show 3 ((b) 0 0\n(playmode 4 play_on)\n")
		if !errors.Is(err, ErrBadShow) {
			t.Fatalf("got %v, want ErrBadShow", err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Line != 3 {
			t.Errorf("ParseError = %v, want line 3", err)
		}
		if c.Count(rcg.KindEOF) != 0 || c.Count(rcg.KindShow) != 0 {
			t.Errorf("kinds = %v", c.Kinds())
		}
	})
	t.Run("unknown record skipped", func(t *testing.T) {
		c, err := parseString(t, "ULG5\n(frobnicate 1)\n(playmode 0 play_on)\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if c.Count(rcg.KindPlayMode) != 1 {
			t.Errorf("kinds = %v", c.Kinds())
		}
	})
}

func TestText_FullPlayer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		focusX float32
		pointX float32
	}{
		{"v6 focus point then point", "ULG6", 1.5, 3},
		{"v5 point only", "ULG5", 0, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extras := "1.5 2.5 3 4"
			if tt.header == "ULG5" {
				extras = "1.5 2.5"
			}
			log := tt.header + "\n(show 9 (pm 2) (tm alpha beta 1 2 3 4 5 6) ((b) 1 2 0.5 0.25)" +
				" ((r 3) 4 0x2 5 6 0.1 0.2 30 -15 " + extras +
				" (v l 45) (fp 10 20) (s 7000 0.9 0.8 130600) (f l 7) (c 1 2 3 4 5 6 7 8 9 10 11 12)))\n"
			c, err := parseString(t, log)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			want := []rcg.EventKind{rcg.KindLogVersion, rcg.KindPlayMode, rcg.KindTeam, rcg.KindShow, rcg.KindEOF}
			if !kindsEqual(c.Kinds(), want) {
				t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
			}
			team := c.Events[2].(rcg.TeamEvent)
			if team.Left.Score != 1 || team.Right.Score != 2 || team.Left.PenaltyScore != 3 || team.Right.PenaltyMiss != 6 {
				t.Errorf("teams = %+v %+v", team.Left, team.Right)
			}
			show := c.Shows()[0]
			if show.Ball.VY != 0.25 {
				t.Errorf("ball vy = %v, want 0.25", show.Ball.VY)
			}
			p := show.Players[rcg.PlayerIndex(rcg.Right, 3)]
			if p.Type != 4 || p.State != 2 || p.Body != 30 || p.Neck != -15 {
				t.Errorf("player = %+v", p)
			}
			if tt.focusX != 0 && p.FocusPointX != tt.focusX {
				t.Errorf("focus point x = %v, want %v", p.FocusPointX, tt.focusX)
			}
			if p.PointX != tt.pointX {
				t.Errorf("point x = %v, want %v", p.PointX, tt.pointX)
			}
			if p.HighQuality || p.ViewWidth != 45 {
				t.Errorf("view = %v %v", p.HighQuality, p.ViewWidth)
			}
			if p.FocusDist != 10 || p.FocusDir != 20 {
				t.Errorf("focus = %v %v", p.FocusDist, p.FocusDir)
			}
			if p.StaminaCapacity != 130600 {
				t.Errorf("capacity = %v", p.StaminaCapacity)
			}
			if p.FocusSide != rcg.Left || p.FocusUnum != 7 {
				t.Errorf("focus target = %v %d", p.FocusSide, p.FocusUnum)
			}
			if p.KickCount != 1 || p.AttentiontoCount != 11 || p.ChangeFocusCount != 12 {
				t.Errorf("counters = %d %d %d", p.KickCount, p.AttentiontoCount, p.ChangeFocusCount)
			}
		})
	}
}

func tileLines() []string {
	return []string{
		"8 8 2 1",
		"a c #FF0000",
		"b c None",
		"aaaaaaaa",
		"abbbbbba",
		"abbbbbba",
		"abbbbbba",
		"abbbbbba",
		"abbbbbba",
		"abbbbbba",
		"aaaaaaaa",
	}
}

func TestText_TeamGraphic(t *testing.T) {
	var quoted []string
	for _, l := range tileLines() {
		quoted = append(quoted, `\"`+l+`\"`)
	}
	log := "ULG5\n(msg 0 1 \"(team_graphic_r (2 1 " + strings.Join(quoted, " ") + "))\")\n"
	c, err := parseString(t, log)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Count(rcg.KindTeamGraphic) != 1 {
		t.Fatalf("kinds = %v", c.Kinds())
	}
	tg := c.Events[1].(rcg.TeamGraphicEvent)
	if tg.Side != rcg.Right || tg.X != 2 || tg.Y != 1 {
		t.Errorf("team graphic = %v (%d, %d)", tg.Side, tg.X, tg.Y)
	}
	if len(tg.Xpm) != len(tileLines()) || tg.Xpm[0] != "8 8 2 1" {
		t.Errorf("xpm = %q", tg.Xpm)
	}
}

func TestText_Header(t *testing.T) {
	p, err := NewText(6, quiet())
	if err != nil {
		t.Fatalf("NewText failed: %v", err)
	}
	if err := p.Parse(strings.NewReader("ULG5\n"), rcg.Nop); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("v5 log in v6 parser: got %v, want ErrUnsupportedVersion", err)
	}
	if err := p.Parse(strings.NewReader("XYZ\n"), rcg.Nop); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("bad header: got %v, want ErrUnknownFormat", err)
	}

	p4, _ := NewText(4, quiet())
	var c rcg.Collector
	if err := p4.Parse(strings.NewReader("ULG6\n"), &c); err != nil {
		t.Fatalf("v6 log in v4 parser failed: %v", err)
	}
	if v := c.Events[0].(rcg.LogVersionEvent).Version; v != 6 {
		t.Errorf("log version = %d, want 6", v)
	}
}

func TestText_ParseData(t *testing.T) {
	p, _ := NewText(5, quiet())
	var c rcg.Collector
	if err := p.ParseData([]byte("(playmode 12 play_on)"), &c); err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	if pm := c.Events[0].(rcg.PlayModeEvent); pm.Time != 12 || pm.PlayMode != rcg.PMPlayOn {
		t.Errorf("playmode = %+v", pm)
	}
	if err := p.ParseData([]byte("garbage"), &c); !errors.Is(err, ErrBadRecord) {
		t.Errorf("garbage: got %v, want ErrBadRecord", err)
	}
}

func TestText_HandlerErrorAborts(t *testing.T) {
	stop := errors.New("stop")
	h := &rcg.Funcs{OnPlayMode: func(int, rcg.PlayMode) error { return stop }}
	p, _ := NewText(4, quiet())
	err := p.Parse(strings.NewReader(v4Log), h)
	if !errors.Is(err, stop) {
		t.Errorf("got %v, want handler error", err)
	}
}

// ============================================================
// Binary Tests
// ============================================================

func v1Show(time int, ballX float32) []byte {
	show := rcg.NewShowInfo()
	show.Time = time
	show.Ball.X = ballX
	left, right := rcg.Team{Name: "alpha"}, rcg.Team{Name: "beta", Score: 1}
	var si legacy.ShowInfo
	legacy.ShowToShowInfo(rcg.PMPlayOn, &left, &right, &show, &si)
	disp := legacy.DispInfo{Mode: legacy.ShowMode}
	copy(disp.Body[:], legacy.Encode(&si))
	return legacy.Encode(&disp)
}

func TestV1(t *testing.T) {
	data := append(v1Show(1, 10.5), v1Show(2, -3)...)
	r := bytes.NewReader(data)
	p, err := Create(r, quiet())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var c rcg.Collector
	if err := p.Parse(r, &c); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	shows := c.Shows()
	if len(shows) != 2 {
		t.Fatalf("shows = %d, want 2", len(shows))
	}
	if shows[0].Time != 1 || shows[1].Time != 2 {
		t.Errorf("times = %d %d", shows[0].Time, shows[1].Time)
	}
	if shows[0].Ball.X != 10.5 || shows[1].Ball.X != -3 {
		t.Errorf("ball x = %v %v", shows[0].Ball.X, shows[1].Ball.X)
	}
	if c.Count(rcg.KindTeam) != 2 || c.Count(rcg.KindEOF) != 1 {
		t.Errorf("kinds = %v", c.Kinds())
	}
}

func TestV1_Truncated(t *testing.T) {
	data := append(v1Show(1, 0), v1Show(2, 0)[:100]...)
	p := NewV1(quiet())
	var c rcg.Collector
	err := p.Parse(bytes.NewReader(data), &c)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("got %v, want ErrShortRead", err)
	}
	if c.Count(rcg.KindShow) != 1 || c.Count(rcg.KindEOF) != 0 {
		t.Errorf("kinds = %v", c.Kinds())
	}
}

func writeV3(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := stream.NewWriter(&buf, 3)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	sp := rcg.NewServerParam()
	sp.GoalWidth = 14.02
	show := rcg.NewShowInfo()
	show.Time = 42
	show.Ball.X = 1.25
	steps := []error{
		w.WriteServerParam(sp),
		w.WritePlayMode(rcg.PMPlayOn),
		w.WriteTeam(rcg.Team{Name: "alpha", Score: 2}, rcg.Team{Name: "beta"}),
		w.WriteDraw(rcg.DrawClearEvent{}),
		w.WriteShow(&show),
		w.WriteMsg(1, "hello"),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("write step %d failed: %v", i, err)
		}
	}
	return buf.Bytes()
}

func TestBinary_V3(t *testing.T) {
	r := bytes.NewReader(writeV3(t))
	p, err := Create(r, quiet())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	var c rcg.Collector
	if err := p.Parse(r, &c); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []rcg.EventKind{
		rcg.KindLogVersion, rcg.KindServerParam, rcg.KindPlayMode,
		rcg.KindTeam, rcg.KindShow, rcg.KindMsg, rcg.KindEOF,
	}
	if !kindsEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	if sp := c.Events[1].(rcg.ServerParamEvent).Param; !near(sp.GoalWidth, 14.02) {
		t.Errorf("goal_width = %v, want 14.02", sp.GoalWidth)
	}
	if team := c.Events[3].(rcg.TeamEvent); team.Left.Name != "alpha" || team.Left.Score != 2 {
		t.Errorf("left team = %+v", team.Left)
	}
	if show := c.Shows()[0]; show.Time != 42 || show.Ball.X != 1.25 {
		t.Errorf("show = %d %v", show.Time, show.Ball.X)
	}
	if msg := c.Events[5].(rcg.MsgEvent); msg.Time != 42 || msg.Text != "hello" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestBinary_V2(t *testing.T) {
	var buf bytes.Buffer
	w, _ := stream.NewWriter(&buf, 2)
	show := rcg.NewShowInfo()
	show.Time = 5
	if err := w.WritePlayMode(rcg.PMPlayOn); err != nil {
		t.Fatalf("WritePlayMode failed: %v", err)
	}
	if err := w.WriteTeam(rcg.Team{Name: "alpha"}, rcg.Team{Name: "beta", Score: 3}); err != nil {
		t.Fatalf("WriteTeam failed: %v", err)
	}
	if err := w.WriteShow(&show); err != nil {
		t.Fatalf("WriteShow failed: %v", err)
	}

	var c rcg.Collector
	if err := NewV2(quiet()).Parse(bytes.NewReader(buf.Bytes()), &c); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []rcg.EventKind{rcg.KindLogVersion, rcg.KindPlayMode, rcg.KindTeam, rcg.KindShow, rcg.KindEOF}
	if !kindsEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	if pm := c.Events[1].(rcg.PlayModeEvent); pm.PlayMode != rcg.PMPlayOn || pm.Time != 5 {
		t.Errorf("playmode = %+v", pm)
	}
	if team := c.Events[2].(rcg.TeamEvent); team.Right.Score != 3 {
		t.Errorf("right team = %+v", team.Right)
	}
}

func TestBinary_Errors(t *testing.T) {
	data := writeV3(t)
	t.Run("truncated", func(t *testing.T) {
		var c rcg.Collector
		err := NewV3(quiet()).Parse(bytes.NewReader(data[:len(data)-3]), &c)
		if !errors.Is(err, ErrShortRead) {
			t.Fatalf("got %v, want ErrShortRead", err)
		}
		if c.Count(rcg.KindEOF) != 0 {
			t.Errorf("EOF delivered after truncation")
		}
	})
	t.Run("short header", func(t *testing.T) {
		err := NewV3(quiet()).Parse(bytes.NewReader(data[:2]), rcg.Nop)
		if !errors.Is(err, ErrShortRead) {
			t.Fatalf("got %v, want ErrShortRead", err)
		}
		if errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("short header reported as a version error: %v", err)
		}
	})
	t.Run("bad magic", func(t *testing.T) {
		err := NewV3(quiet()).Parse(bytes.NewReader([]byte("XLG\x03")), rcg.Nop)
		if !errors.Is(err, ErrUnsupportedVersion) || errors.Is(err, ErrShortRead) {
			t.Errorf("got %v, want ErrUnsupportedVersion", err)
		}
	})
	t.Run("version mismatch", func(t *testing.T) {
		err := NewV2(quiet()).Parse(bytes.NewReader(data), rcg.Nop)
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("got %v, want ErrUnsupportedVersion", err)
		}
	})
	t.Run("unknown mode", func(t *testing.T) {
		bad := append(append([]byte{}, data[:stream.HeaderSize]...), 0x00, 0x63)
		err := NewV3(quiet()).Parse(bytes.NewReader(bad), rcg.Nop)
		if !errors.Is(err, ErrUnknownRecord) {
			t.Errorf("got %v, want ErrUnknownRecord", err)
		}
	})
}

// ============================================================
// JSON Tests
// ============================================================

const jsonPlayer1 = `{"side":"l","unum":1,"type":0,"vq":"h","state":1,"x":-10,"y":0,"vx":0,"vy":0,` +
	`"body":0,"neck":0,"vw":90,"stamina":8000,"effort":1,"recovery":1,"capacity":130600,` +
	`"count":{"kick":3,"set_focus":2}}`

const jsonDoc = `rcg json
[{"type":"header","version":"19.0.0"},
 {"type":"server_param","params":{"goal_width":14.02,"maxpower":100,"nonsense":1}},
 {"type":"player_type","id":2,"params":{"player_speed_max":1.1}},
 {"type":"playmode","time":0,"mode":"play_on"},
 {"type":"show"},
 {"type":"show","time":1,"stime":3,"teams":[{"name":"alpha","score":1},{"name":"null","score":0}],` +
	`"ball":{"x":1,"y":2,"vx":0.5,"vy":0.25},"players":[` + jsonPlayer1 + `]},
 {"type":"msg","time":1,"board":1,"message":"hello"}]`

func TestJSON(t *testing.T) {
	var logs bytes.Buffer
	c, err := parseString(t, "[ ]\n", capture(&logs))
	if err != nil {
		t.Fatalf("empty document failed: %v", err)
	}
	if !kindsEqual(c.Kinds(), []rcg.EventKind{rcg.KindLogVersion, rcg.KindEOF}) {
		t.Errorf("empty document kinds = %v", c.Kinds())
	}

	// Without the factory a document shorter than a header still parses.
	var empty rcg.Collector
	if err := NewJSON(quiet()).Parse(strings.NewReader("[]"), &empty); err != nil {
		t.Fatalf("Parse of [] failed: %v", err)
	}
	if !kindsEqual(empty.Kinds(), []rcg.EventKind{rcg.KindLogVersion, rcg.KindEOF}) {
		t.Errorf("[] kinds = %v", empty.Kinds())
	}

	p := NewJSON(capture(&logs))
	var col rcg.Collector
	if err := p.Parse(strings.NewReader(jsonDoc), &col); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []rcg.EventKind{
		rcg.KindLogVersion, rcg.KindServerParam, rcg.KindPlayerType,
		rcg.KindPlayMode, rcg.KindTeam, rcg.KindShow, rcg.KindMsg, rcg.KindEOF,
	}
	if !kindsEqual(col.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", col.Kinds(), want)
	}
	if v := col.Events[0].(rcg.LogVersionEvent).Version; v != rcg.VersionJSON {
		t.Errorf("log version = %d", v)
	}
	if sp := col.Events[1].(rcg.ServerParamEvent).Param; sp.GoalWidth != 14.02 || sp.MaxPower != 100 {
		t.Errorf("server param = %v %v", sp.GoalWidth, sp.MaxPower)
	}
	if pt := col.Events[2].(rcg.PlayerTypeEvent).Type; pt.ID != 2 || pt.PlayerSpeedMax != 1.1 {
		t.Errorf("player type = %d %v", pt.ID, pt.PlayerSpeedMax)
	}
	if team := col.Events[4].(rcg.TeamEvent); team.Right.Name != "" || team.Left.Score != 1 {
		t.Errorf("teams = %+v %+v", team.Left, team.Right)
	}
	show := col.Shows()[0]
	if show.Time != 1 || show.STime != 3 || show.Ball.VY != 0.25 {
		t.Errorf("show = %d %d %v", show.Time, show.STime, show.Ball.VY)
	}
	if pl := show.Players[0]; pl.KickCount != 3 || pl.ChangeFocusCount != 2 || pl.StaminaCapacity != 130600 {
		t.Errorf("player = %+v", pl)
	}
	if !strings.Contains(logs.String(), "record skipped") {
		t.Errorf("bad show not logged")
	}
	if !strings.Contains(logs.String(), "nonsense") {
		t.Errorf("unknown parameter not logged")
	}
}

func TestJSON_LegacyBallVY(t *testing.T) {
	rec := []byte(`{"type":"show","time":1,"ball":{"x":1,"y":2,"vx":0.5,"vy":0.25},"players":[]}`)
	tests := []struct {
		name string
		opts []Option
		want float32
	}{
		{"vy", nil, 0.25},
		{"legacy", []Option{WithLegacyBallVY()}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c rcg.Collector
			if err := NewJSON(append(tt.opts, quiet())...).ParseData(rec, &c); err != nil {
				t.Fatalf("ParseData failed: %v", err)
			}
			if got := c.Shows()[0].Ball.VY; got != tt.want {
				t.Errorf("ball vy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewQuality_SameRuleAcrossFormats(t *testing.T) {
	textShow := func(q string) []byte {
		return []byte("(show 1 ((b) 0 0 0 0) ((l 1) 0 0x1 0 0 0 0 0 0 (v " + q +
			" 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0)))")
	}
	jsonShow := func(q string) []byte {
		return []byte(`{"type":"show","time":1,"ball":{"x":0,"y":0,"vx":0,"vy":0},"players":[` +
			strings.Replace(jsonPlayer1, `"vq":"h"`, `"vq":"`+q+`"`, 1) + `]}`)
	}
	text, err := New(rcg.Version5, quiet())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	doc := NewJSON(quiet())

	tests := []struct {
		q    string
		want bool
	}{
		{"h", true},
		{"l", false},
		{"x", false},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			var tc, jc rcg.Collector
			if err := text.ParseData(textShow(tt.q), &tc); err != nil {
				t.Fatalf("text ParseData failed: %v", err)
			}
			if err := doc.ParseData(jsonShow(tt.q), &jc); err != nil {
				t.Fatalf("json ParseData failed: %v", err)
			}
			if len(tc.Shows()) != 1 || len(jc.Shows()) != 1 {
				t.Fatalf("shows = %d/%d, want 1/1", len(tc.Shows()), len(jc.Shows()))
			}
			if got := tc.Shows()[0].Players[0].HighQuality; got != tt.want {
				t.Errorf("text HighQuality = %v, want %v", got, tt.want)
			}
			if got := jc.Shows()[0].Players[0].HighQuality; got != tt.want {
				t.Errorf("json HighQuality = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSON_BadDocument(t *testing.T) {
	err := NewJSON(quiet()).Parse(strings.NewReader(`[{"type":`), rcg.Nop)
	if !errors.Is(err, ErrBadDocument) {
		t.Errorf("got %v, want ErrBadDocument", err)
	}
	err = NewJSON(quiet()).ParseData([]byte(`{"type":"wat"}`), rcg.Nop)
	if !errors.Is(err, ErrUnknownRecord) {
		t.Errorf("got %v, want ErrUnknownRecord", err)
	}
}

// ============================================================
// Streaming JSON Tests
// ============================================================

const streamDoc = `[{"version":"19.0.0"},
 {"timestamp":"2024-07-20 10:00:00"},
 {"server_param":{"goal_width":14.02,"maxpower":100}},
 {"player_type":{"id":1,"player_speed_max":1.05}},
 {"playmode":{"time":0,"mode":"before_kick_off"}},
 {"team":{"time":0,"l":{"name":"alpha","score":1},"r":{"name":null,"score":0}}},
 {"bogus":{}},
 {"show":{"time":1,"stime":0,"mode":"play_on","ball":{"x":1,"y":2,"vx":0.5,"vy":0.25},"players":[` +
	`{"side":"r","unum":4,"type":0,"state":1,"x":-10,"y":0,"vx":0,"vy":0,"body":0,"neck":0,` +
	`"vq":"l","vw":45,"stamina":8000,"effort":1,"recovery":1,"capacity":130600,"fside":"l","fnum":9,` +
	`"kick":3,"change_focus":2}]}},
 {"msg":{"time":1,"board":1,"message":"hello"}}]`

func TestStreamJSON(t *testing.T) {
	var logs bytes.Buffer
	var c rcg.Collector
	p := NewJSON(capture(&logs), WithStreamingJSON())
	if err := p.Parse(strings.NewReader(streamDoc), &c); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []rcg.EventKind{
		rcg.KindLogVersion, rcg.KindServerVersion, rcg.KindTimestamp,
		rcg.KindServerParam, rcg.KindPlayerType, rcg.KindPlayMode, rcg.KindTeam,
		rcg.KindPlayMode, rcg.KindShow, rcg.KindMsg, rcg.KindEOF,
	}
	if !kindsEqual(c.Kinds(), want) {
		t.Fatalf("kinds = %v, want %v", c.Kinds(), want)
	}
	if v := c.Events[1].(rcg.ServerVersionEvent).Version; v != "19.0.0" {
		t.Errorf("server version = %q", v)
	}
	if sp := c.Events[3].(rcg.ServerParamEvent).Param; sp.GoalWidth != 14.02 || sp.MaxPower != 100 {
		t.Errorf("server param = %v %v", sp.GoalWidth, sp.MaxPower)
	}
	if pt := c.Events[4].(rcg.PlayerTypeEvent).Type; pt.ID != 1 || pt.PlayerSpeedMax != 1.05 {
		t.Errorf("player type = %d %v", pt.ID, pt.PlayerSpeedMax)
	}
	if team := c.Events[6].(rcg.TeamEvent); team.Left.Name != "alpha" || team.Right.Name != "" {
		t.Errorf("teams = %+v %+v", team.Left, team.Right)
	}
	show := c.Shows()[0]
	pl := show.Players[rcg.PlayerIndex(rcg.Right, 4)]
	if pl.HighQuality || pl.ViewWidth != 45 || pl.FocusSide != rcg.Left || pl.FocusUnum != 9 {
		t.Errorf("player = %+v", pl)
	}
	if pl.KickCount != 3 || pl.ChangeFocusCount != 2 {
		t.Errorf("counters = %d %d", pl.KickCount, pl.ChangeFocusCount)
	}
	if !strings.Contains(logs.String(), "bogus") {
		t.Errorf("unknown key not logged: %s", logs.String())
	}
}

func TestStreamJSON_Errors(t *testing.T) {
	p := NewJSON(quiet(), WithStreamingJSON())
	if err := p.Parse(strings.NewReader(`{"show":{}}`), rcg.Nop); !errors.Is(err, ErrBadDocument) {
		t.Errorf("object root: got %v, want ErrBadDocument", err)
	}
	if err := p.Parse(strings.NewReader(`[{"show":`), rcg.Nop); !errors.Is(err, ErrBadDocument) {
		t.Errorf("invalid JSON: got %v, want ErrBadDocument", err)
	}
	if err := p.ParseData([]byte(`{"show":{"time":1}}`), rcg.Nop); !errors.Is(err, ErrBadRecord) {
		t.Errorf("incomplete show: got %v, want ErrBadRecord", err)
	}
}

// ============================================================
// File Tests
// ============================================================

func TestParseFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(v4Log)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "match.rcg.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var c rcg.Collector
	p, err := ParseFile(path, &c, quiet())
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if p.Version() != 4 {
		t.Errorf("version = %d, want 4", p.Version())
	}
	if c.Count(rcg.KindShow) != 1 {
		t.Errorf("kinds = %v", c.Kinds())
	}
}

func TestDecompress_Plain(t *testing.T) {
	out, err := Decompress([]byte("ULG5\n"))
	if err != nil || string(out) != "ULG5\n" {
		t.Errorf("Decompress = %q, %v", out, err)
	}
}
