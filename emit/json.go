package emit

import (
	"bufio"
	"bytes"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Neumenon/rcg/rcg"
)

// JSONWriter writes the JSON document log: one array whose elements are
// records tagged by "type". Draw events are dropped.
type JSONWriter struct {
	w       *bufio.Writer
	started bool
	records int
}

// NewJSONWriter returns a JSON document writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: bufio.NewWriter(w)}
}

// Flush writes any buffered output.
func (j *JSONWriter) Flush() error {
	return j.w.Flush()
}

func (j *JSONWriter) open() error {
	if j.started {
		return nil
	}
	j.started = true
	_, err := j.w.WriteString("[")
	return err
}

func (j *JSONWriter) write(rec []byte) error {
	if err := j.open(); err != nil {
		return err
	}
	sep := ",\n"
	if j.records == 0 {
		sep = "\n"
	}
	j.records++
	if _, err := j.w.WriteString(sep); err != nil {
		return err
	}
	_, err := j.w.Write(rec)
	return err
}

// Handle writes one event.
func (j *JSONWriter) Handle(ev rcg.Event) error {
	var rec []byte
	var err error
	switch e := ev.(type) {
	case rcg.LogVersionEvent:
		return j.open()
	case rcg.ServerVersionEvent:
		rec, err = record("header", "version", e.Version)
	case rcg.TimestampEvent:
		rec, err = record("header", "timestamp", e.Value)
	case rcg.ShowEvent:
		rec, err = jsonShow(e.Show)
	case rcg.PlayModeEvent:
		rec, err = record("playmode", "time", e.Time, "mode", e.PlayMode.String())
	case rcg.TeamEvent:
		rec, err = record("team", "time", e.Time)
		if err == nil {
			rec, err = sjson.SetRawBytes(rec, "teams", jsonTeams(e.Left, e.Right))
		}
	case rcg.MsgEvent:
		rec, err = record("msg", "time", e.Time, "board", e.Board, "message", e.Text)
	case rcg.TeamGraphicEvent:
		rec, err = record("team_graphic", "side", e.Side.String(), "x", e.X, "y", e.Y, "xpm", e.Xpm)
	case rcg.ServerParamEvent:
		rec, err = paramRecord("server_param", e.Param.JSON())
	case rcg.PlayerParamEvent:
		rec, err = paramRecord("player_param", e.Param.JSON())
	case rcg.PlayerTypeEvent:
		rec, err = paramRecord("player_type", e.Type.JSON())
		if err == nil {
			rec, err = sjson.SetBytes(rec, "id", e.Type.ID)
		}
	case rcg.EOFEvent:
		if err := j.open(); err != nil {
			return err
		}
		if _, err := j.w.WriteString("\n]\n"); err != nil {
			return err
		}
		return j.Flush()
	default:
		return nil
	}
	if err != nil {
		return err
	}
	return j.write(rec)
}

// record builds {"type":typ, k1:v1, ...}.
func record(typ string, kv ...any) ([]byte, error) {
	rec, err := sjson.SetBytes([]byte(`{}`), "type", typ)
	for i := 0; err == nil && i+1 < len(kv); i += 2 {
		rec, err = sjson.SetBytes(rec, kv[i].(string), kv[i+1])
	}
	return rec, err
}

// paramRecord moves the body of {"<message>":{...}} under "params".
func paramRecord(typ string, msg []byte) ([]byte, error) {
	rec, err := record(typ)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(rec, "params", []byte(gjson.GetBytes(msg, typ).Raw))
}

func jsonTeam(t rcg.Team) []byte {
	obj := []byte(`{"name":null}`)
	if t.Name != "" {
		obj, _ = sjson.SetBytes(obj, "name", t.Name)
	}
	obj, _ = sjson.SetBytes(obj, "score", t.Score)
	obj, _ = sjson.SetBytes(obj, "pen_score", t.PenaltyScore)
	obj, _ = sjson.SetBytes(obj, "pen_miss", t.PenaltyMiss)
	return obj
}

func jsonTeams(l, r rcg.Team) []byte {
	return joinArray([][]byte{jsonTeam(l), jsonTeam(r)})
}

func joinArray(items [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write(bytes.Join(items, []byte(",")))
	buf.WriteByte(']')
	return buf.Bytes()
}

func jsonShow(s *rcg.ShowInfo) ([]byte, error) {
	rec, err := record("show", "time", s.Time, "stime", s.STime)
	if err != nil {
		return nil, err
	}
	ball := []byte(`{}`)
	ball, _ = sjson.SetBytes(ball, "x", s.Ball.X)
	ball, _ = sjson.SetBytes(ball, "y", s.Ball.Y)
	ball, _ = sjson.SetBytes(ball, "vx", s.Ball.VX)
	ball, _ = sjson.SetBytes(ball, "vy", s.Ball.VY)
	if rec, err = sjson.SetRawBytes(rec, "ball", ball); err != nil {
		return nil, err
	}

	players := make([][]byte, 0, len(s.Players))
	for i := range s.Players {
		if s.Players[i].Side == rcg.Neutral {
			continue
		}
		players = append(players, jsonPlayer(&s.Players[i]))
	}
	return sjson.SetRawBytes(rec, "players", joinArray(players))
}

func jsonPlayer(p *rcg.Player) []byte {
	vq := "h"
	if !p.HighQuality {
		vq = "l"
	}
	fields := []struct {
		key string
		val any
	}{
		{"side", p.Side.String()},
		{"unum", p.Unum},
		{"type", p.Type},
		{"vq", vq},
		{"state", p.State},
		{"x", p.X},
		{"y", p.Y},
		{"vx", p.VX},
		{"vy", p.VY},
		{"body", p.Body},
		{"neck", p.Neck},
		{"vw", p.ViewWidth},
		{"stamina", p.Stamina},
		{"effort", p.Effort},
		{"recovery", p.Recovery},
		{"capacity", p.StaminaCapacity},
	}
	obj := []byte(`{}`)
	for _, f := range fields {
		obj, _ = sjson.SetBytes(obj, f.key, f.val)
	}
	if p.IsPointing() {
		obj, _ = sjson.SetBytes(obj, "px", p.PointX)
		obj, _ = sjson.SetBytes(obj, "py", p.PointY)
	}
	if p.HasFocusPoint() {
		obj, _ = sjson.SetBytes(obj, "focusx", p.FocusPointX)
		obj, _ = sjson.SetBytes(obj, "focusy", p.FocusPointY)
	}
	if p.FocusDist != rcg.Unset {
		obj, _ = sjson.SetBytes(obj, "fdist", p.FocusDist)
		obj, _ = sjson.SetBytes(obj, "fdir", p.FocusDir)
	}
	if p.IsFocusing() {
		obj, _ = sjson.SetBytes(obj, "fside", p.FocusSide.String())
		obj, _ = sjson.SetBytes(obj, "fnum", p.FocusUnum)
	}
	if p.HasCommandCount() {
		count := []byte(`{}`)
		for _, c := range []struct {
			key string
			n   uint16
		}{
			{"kick", p.KickCount},
			{"dash", p.DashCount},
			{"turn", p.TurnCount},
			{"catch", p.CatchCount},
			{"move", p.MoveCount},
			{"turn_neck", p.TurnNeckCount},
			{"change_view", p.ChangeViewCount},
			{"say", p.SayCount},
			{"tackle", p.TackleCount},
			{"pointto", p.PointtoCount},
			{"attentionto", p.AttentiontoCount},
		} {
			count, _ = sjson.SetBytes(count, c.key, c.n)
		}
		if p.ChangeFocusCount != rcg.UnsetCount {
			count, _ = sjson.SetBytes(count, "set_focus", p.ChangeFocusCount)
		}
		obj, _ = sjson.SetRawBytes(obj, "count", count)
	}
	return obj
}
