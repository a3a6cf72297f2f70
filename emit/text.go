package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Neumenon/rcg/rcg"
)

// TextWriter writes the line oriented v4, v5 or v6 log.
//
// Shows are written without (pm) and (tm) blocks; play mode and team
// changes get records of their own. Draw events, the server version
// and the timestamp have no text record and are dropped.
type TextWriter struct {
	w           *bufio.Writer
	version     int
	wroteHeader bool
	lastTime    int
	line        []byte
}

// NewTextWriter returns a writer for version 4, 5 or 6.
func NewTextWriter(w io.Writer, version int) (*TextWriter, error) {
	if version < rcg.Version4 || version > rcg.Version6 {
		return nil, fmt.Errorf("emit: text v%d", version)
	}
	return &TextWriter{w: bufio.NewWriter(w), version: version}, nil
}

// Flush writes any buffered output.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

func (t *TextWriter) header() error {
	if t.wroteHeader {
		return nil
	}
	t.wroteHeader = true
	_, err := fmt.Fprintf(t.w, "ULG%d\n", t.version)
	return err
}

// Handle writes one event.
func (t *TextWriter) Handle(ev rcg.Event) error {
	if err := t.header(); err != nil {
		return err
	}
	b := t.line[:0]
	switch e := ev.(type) {
	case rcg.ShowEvent:
		t.lastTime = e.Show.Time
		b = t.appendShow(b, e.Show)
	case rcg.PlayModeEvent:
		b = fmt.Appendf(b, "(playmode %d %s)", e.Time, e.PlayMode)
	case rcg.TeamEvent:
		b = appendTeam(b, e)
	case rcg.MsgEvent:
		b = fmt.Appendf(b, "(msg %d %d \"%s\")", e.Time, e.Board, e.Text)
	case rcg.TeamGraphicEvent:
		tile, err := tileFromLines(e.Xpm)
		if err != nil {
			return err
		}
		msg := rcg.TeamGraphicMessage(e.Side, e.X, e.Y, tile)
		b = fmt.Appendf(b, "(msg %d 1 \"%s\")", t.lastTime, strings.ReplaceAll(msg, `"`, `\"`))
	case rcg.ServerParamEvent:
		b = append(b, e.Param.SExp()...)
	case rcg.PlayerParamEvent:
		b = append(b, e.Param.SExp()...)
	case rcg.PlayerTypeEvent:
		b = append(b, e.Type.SExp()...)
	case rcg.EOFEvent:
		return t.Flush()
	default:
		return nil
	}
	b = append(b, '\n')
	t.line = b
	_, err := t.w.Write(b)
	return err
}

func appendFloat(b []byte, f float32) []byte {
	return strconv.AppendFloat(b, float64(f), 'g', -1, 32)
}

func appendFloats(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = append(b, ' ')
		b = appendFloat(b, f)
	}
	return b
}

func textName(name string) string {
	if name == "" {
		return "null"
	}
	return name
}

func appendTeam(b []byte, e rcg.TeamEvent) []byte {
	l, r := e.Left, e.Right
	b = fmt.Appendf(b, "(team %d %s %s %d %d", e.Time, textName(l.Name), textName(r.Name), l.Score, r.Score)
	if l.PenaltyTrial() > 0 || r.PenaltyTrial() > 0 {
		b = fmt.Appendf(b, " %d %d %d %d", l.PenaltyScore, l.PenaltyMiss, r.PenaltyScore, r.PenaltyMiss)
	}
	return append(b, ')')
}

func (t *TextWriter) appendShow(b []byte, s *rcg.ShowInfo) []byte {
	b = fmt.Appendf(b, "(show %d ((b)", s.Time)
	b = appendFloats(b, s.Ball.X, s.Ball.Y, s.Ball.VX, s.Ball.VY)
	b = append(b, ')')
	for i := range s.Players {
		p := &s.Players[i]
		if p.Side == rcg.Neutral {
			continue
		}
		b = append(b, ' ')
		b = t.appendPlayer(b, p)
	}
	return append(b, ')')
}

// appendPlayer writes one player block. Unset values are written as
// their sentinels, which read back unchanged.
func (t *TextWriter) appendPlayer(b []byte, p *rcg.Player) []byte {
	b = fmt.Appendf(b, "((%s %d) %d 0x%x", p.Side, p.Unum, p.Type, p.State)
	b = appendFloats(b, p.X, p.Y, p.VX, p.VY, p.Body, p.Neck)

	// A v6 row carries the focus point before the pointing target, so a
	// target alone still needs a placeholder in front of it.
	if t.version >= rcg.Version6 && (p.HasFocusPoint() || p.IsPointing()) {
		b = appendFloats(b, p.FocusPointX, p.FocusPointY)
	}
	if p.IsPointing() {
		b = appendFloats(b, p.PointX, p.PointY)
	}

	q := "h"
	if !p.HighQuality {
		q = "l"
	}
	b = fmt.Appendf(b, " (v %s", q)
	b = appendFloats(b, p.ViewWidth)
	b = append(b, ')')

	if p.FocusDist != rcg.Unset {
		b = append(b, " (fp"...)
		b = appendFloats(b, p.FocusDist, p.FocusDir)
		b = append(b, ')')
	}

	b = append(b, " (s"...)
	b = appendFloats(b, p.Stamina, p.Effort, p.Recovery)
	if p.HasStaminaCapacity() {
		b = appendFloats(b, p.StaminaCapacity)
	}
	b = append(b, ')')

	if p.IsFocusing() {
		b = fmt.Appendf(b, " (f %s %d)", p.FocusSide, p.FocusUnum)
	}

	b = fmt.Appendf(b, " (c %d %d %d %d %d %d %d %d %d %d %d",
		p.KickCount, p.DashCount, p.TurnCount, p.CatchCount, p.MoveCount,
		p.TurnNeckCount, p.ChangeViewCount, p.SayCount, p.TackleCount,
		p.PointtoCount, p.AttentiontoCount)
	if p.ChangeFocusCount != rcg.UnsetCount {
		b = fmt.Appendf(b, " %d", p.ChangeFocusCount)
	}
	return append(b, "))"...)
}
