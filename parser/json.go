package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/Neumenon/rcg/rcg"
)

// JSON decodes a JSON log: an array of record objects, each tagged by
// its "type":
//
//	[{"type":"header","version":"19.0.0"},
//	 {"type":"server_param","params":{"goal_width":14.02,...}},
//	 {"type":"playmode","time":0,"mode":"before_kick_off"},
//	 {"type":"show","time":1,"ball":{...},"players":[...]},
//	 ...]
//
// A record that cannot be decoded is logged and skipped; a document
// that is not an array fails.
type JSON struct {
	o options
}

// Version returns rcg.VersionJSON.
func (p *JSON) Version() int { return rcg.VersionJSON }

// Parse decodes the whole document. A first line that does not start
// the array is a header and is skipped.
func (p *JSON) Parse(r io.ReadSeeker, h rcg.Handler) error {
	if err := rewind(r); err != nil {
		return err
	}
	br := bufio.NewReader(r)
	if err := skipHeaderLine(br); err != nil {
		return err
	}

	var records []json.RawMessage
	if err := json.NewDecoder(br).Decode(&records); err != nil {
		return fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	if err := h.Handle(rcg.LogVersionEvent{Version: rcg.VersionJSON}); err != nil {
		return handlerError(err)
	}
	for i, raw := range records {
		events, err := p.decode(raw)
		if err != nil {
			p.o.logger.Warn("rcg json: record skipped", "index", i, "error", err)
			continue
		}
		if err := dispatch(h, events); err != nil {
			return &ParseError{Reason: fmt.Sprintf("record %d", i), Offset: -1, Err: err}
		}
	}

	if err := h.Handle(rcg.EOFEvent{}); err != nil {
		return handlerError(err)
	}
	return nil
}

// ParseData decodes one record object.
func (p *JSON) ParseData(data []byte, h rcg.Handler) error {
	events, err := p.decode(data)
	if err != nil {
		return err
	}
	return dispatch(h, events)
}

// skipHeaderLine consumes the first line unless the first non-blank
// byte opens the array.
func skipHeaderLine(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
			continue
		case '[':
			return nil
		}
		if _, err := br.ReadString('\n'); err != nil {
			return fmt.Errorf("%w: header line: %w", ErrBadDocument, err)
		}
		return nil
	}
}

// ============================================================
// Record layouts
// ============================================================

type jsonRecord struct {
	Type    string          `json:"type"`
	Time    *int            `json:"time"`
	STime   int             `json:"stime"`
	Mode    *string         `json:"mode"`
	Teams   []jsonTeam      `json:"teams"`
	Ball    *jsonBall       `json:"ball"`
	Players []jsonPlayer    `json:"players"`
	Board   *int            `json:"board"`
	Message *string         `json:"message"`
	Side    string          `json:"side"`
	X       *int            `json:"x"`
	Y       *int            `json:"y"`
	Xpm     []string        `json:"xpm"`
	ID      *int            `json:"id"`
	Params  json.RawMessage `json:"params"`
}

type jsonTeam struct {
	Name     *string `json:"name"`
	Score    *int    `json:"score"`
	PenScore int     `json:"pen_score"`
	PenMiss  int     `json:"pen_miss"`
}

type jsonBall struct {
	X  *float32 `json:"x"`
	Y  *float32 `json:"y"`
	VX *float32 `json:"vx"`
	VY *float32 `json:"vy"`
}

type jsonPlayer struct {
	Side     string     `json:"side"`
	Unum     *int       `json:"unum"`
	Type     *int16     `json:"type"`
	VQ       *string    `json:"vq"`
	FSide    *string    `json:"fside"`
	FNum     *int16     `json:"fnum"`
	State    *uint32    `json:"state"`
	X        *float32   `json:"x"`
	Y        *float32   `json:"y"`
	VX       *float32   `json:"vx"`
	VY       *float32   `json:"vy"`
	Body     *float32   `json:"body"`
	Neck     *float32   `json:"neck"`
	PX       *float32   `json:"px"`
	PY       *float32   `json:"py"`
	FocusX   *float32   `json:"focusx"`
	FocusY   *float32   `json:"focusy"`
	FDist    *float32   `json:"fdist"`
	FDir     *float32   `json:"fdir"`
	VW       *float32   `json:"vw"`
	Stamina  *float32   `json:"stamina"`
	Effort   *float32   `json:"effort"`
	Recovery *float32   `json:"recovery"`
	Capacity *float32   `json:"capacity"`
	Count    *jsonCount `json:"count"`
}

type jsonCount struct {
	Kick        uint16  `json:"kick"`
	Dash        uint16  `json:"dash"`
	Turn        uint16  `json:"turn"`
	Catch       uint16  `json:"catch"`
	Move        uint16  `json:"move"`
	TurnNeck    uint16  `json:"turn_neck"`
	ChangeView  uint16  `json:"change_view"`
	Say         uint16  `json:"say"`
	Tackle      uint16  `json:"tackle"`
	Pointto     uint16  `json:"pointto"`
	Attentionto uint16  `json:"attentionto"`
	SetFocus    *uint16 `json:"set_focus"`
}

// missing returns an error naming the first absent required field.
func missing(record string, fields ...any) error {
	for i := 0; i+1 < len(fields); i += 2 {
		ok := fields[i+1].(bool)
		if !ok {
			return fmt.Errorf("%s: missing %q", record, fields[i])
		}
	}
	return nil
}

// ============================================================
// Record decoders
// ============================================================

func (p *JSON) decode(raw []byte) ([]rcg.Event, error) {
	var rec jsonRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, badRecord(err)
	}
	switch rec.Type {
	case "show":
		return p.decodeShow(&rec)
	case "playmode":
		if err := missing("playmode", "time", rec.Time != nil, "mode", rec.Mode != nil); err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{rcg.PlayModeEvent{Time: *rec.Time, PlayMode: rcg.ParsePlayMode(*rec.Mode)}}, nil
	case "team":
		if err := missing("team", "time", rec.Time != nil); err != nil {
			return nil, badRecord(err)
		}
		left, right, err := jsonTeams(rec.Teams)
		if err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{rcg.TeamEvent{Time: *rec.Time, Left: left, Right: right}}, nil
	case "msg":
		if err := missing("msg", "time", rec.Time != nil, "board", rec.Board != nil, "message", rec.Message != nil); err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{rcg.MsgEvent{Time: *rec.Time, Board: *rec.Board, Text: *rec.Message}}, nil
	case "team_graphic":
		return decodeJSONTeamGraphic(&rec)
	case "server_param":
		sp := rcg.NewServerParam()
		if err := applyJSONParams(p.o.logger, rcg.ServerParamRegistry(), sp, rec.Params); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.ServerParamEvent{Param: sp}}, nil
	case "player_param":
		pp := rcg.NewPlayerParam()
		if err := applyJSONParams(p.o.logger, rcg.PlayerParamRegistry(), pp, rec.Params); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.PlayerParamEvent{Param: pp}}, nil
	case "player_type":
		if rec.ID == nil {
			return nil, badRecord(errors.New("player_type: missing \"id\""))
		}
		pt := rcg.NewPlayerType()
		if err := applyJSONParams(p.o.logger, rcg.PlayerTypeRegistry(), pt, rec.Params); err != nil {
			return nil, err
		}
		pt.ID = *rec.ID
		return []rcg.Event{rcg.PlayerTypeEvent{Type: pt}}, nil
	case "header":
		return nil, nil
	case "":
		return nil, badRecord(errors.New("record without type"))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, rec.Type)
}

func jsonTeams(teams []jsonTeam) (left, right rcg.Team, err error) {
	if len(teams) < 2 {
		return left, right, fmt.Errorf("teams: %d entries", len(teams))
	}
	out := [2]*rcg.Team{&left, &right}
	for i, t := range teams[:2] {
		if t.Score == nil {
			return left, right, errors.New(`teams: missing "score"`)
		}
		if t.Name != nil && *t.Name != "null" {
			out[i].Name = *t.Name
		}
		out[i].Score = *t.Score
		out[i].PenaltyScore = t.PenScore
		out[i].PenaltyMiss = t.PenMiss
	}
	return left, right, nil
}

// decodeShow returns the optional play mode and team events followed by
// the show.
func (p *JSON) decodeShow(rec *jsonRecord) ([]rcg.Event, error) {
	if rec.Time == nil {
		return nil, badRecord(errors.New(`show: missing "time"`))
	}
	time := *rec.Time

	var events []rcg.Event
	if rec.Mode != nil {
		events = append(events, rcg.PlayModeEvent{Time: time, PlayMode: rcg.ParsePlayMode(*rec.Mode)})
	}
	if rec.Teams != nil {
		left, right, err := jsonTeams(rec.Teams)
		if err != nil {
			return nil, badRecord(err)
		}
		events = append(events, rcg.TeamEvent{Time: time, Left: left, Right: right})
	}

	show := rcg.NewShowInfo()
	show.Time = time
	show.STime = rec.STime
	if err := p.setBall(rec.Ball, &show.Ball); err != nil {
		return nil, badRecord(err)
	}
	if rec.Players == nil {
		return nil, badRecord(errors.New(`show: missing "players"`))
	}
	for i := range rec.Players {
		if err := setPlayer(&rec.Players[i], &show); err != nil {
			return nil, badRecord(err)
		}
	}
	return append(events, rcg.ShowEvent{Show: &show}), nil
}

func (p *JSON) setBall(jb *jsonBall, b *rcg.Ball) error {
	if jb == nil {
		return errors.New(`show: missing "ball"`)
	}
	vy := jb.VY
	if p.o.legacyBallVY {
		vy = jb.VX
	}
	if err := missing("ball", "x", jb.X != nil, "y", jb.Y != nil, "vx", jb.VX != nil, "vy", vy != nil); err != nil {
		return err
	}
	b.X, b.Y, b.VX, b.VY = *jb.X, *jb.Y, *jb.VX, *vy
	return nil
}

func setPlayer(jp *jsonPlayer, show *rcg.ShowInfo) error {
	if jp.Unum == nil || len(jp.Side) != 1 {
		return errors.New("player: missing side or unum")
	}
	side := rcg.ParseSide(jp.Side[0])
	idx := rcg.PlayerIndex(side, *jp.Unum)
	if idx < 0 {
		return fmt.Errorf("player: illegal id %s %d", jp.Side, *jp.Unum)
	}
	if err := missing("player",
		"type", jp.Type != nil, "vq", jp.VQ != nil, "state", jp.State != nil,
		"x", jp.X != nil, "y", jp.Y != nil, "vx", jp.VX != nil, "vy", jp.VY != nil,
		"body", jp.Body != nil, "neck", jp.Neck != nil, "vw", jp.VW != nil,
		"stamina", jp.Stamina != nil, "effort", jp.Effort != nil,
		"recovery", jp.Recovery != nil, "capacity", jp.Capacity != nil,
	); err != nil {
		return err
	}

	p := rcg.NewPlayer()
	p.Side = side
	p.Unum = int16(*jp.Unum)
	p.Type = *jp.Type
	p.HighQuality = *jp.VQ == "h"
	p.State = *jp.State
	p.X, p.Y, p.VX, p.VY = *jp.X, *jp.Y, *jp.VX, *jp.VY
	p.Body, p.Neck = *jp.Body, *jp.Neck
	p.ViewWidth = *jp.VW
	p.Stamina, p.Effort, p.Recovery = *jp.Stamina, *jp.Effort, *jp.Recovery
	p.StaminaCapacity = *jp.Capacity

	optFloat(&p.PointX, jp.PX)
	optFloat(&p.PointY, jp.PY)
	optFloat(&p.FocusPointX, jp.FocusX)
	optFloat(&p.FocusPointY, jp.FocusY)
	optFloat(&p.FocusDist, jp.FDist)
	optFloat(&p.FocusDir, jp.FDir)
	if jp.FSide != nil && len(*jp.FSide) > 0 {
		p.FocusSide = rcg.ParseSide((*jp.FSide)[0])
	}
	if jp.FNum != nil {
		p.FocusUnum = *jp.FNum
	}
	if c := jp.Count; c != nil {
		p.KickCount = c.Kick
		p.DashCount = c.Dash
		p.TurnCount = c.Turn
		p.CatchCount = c.Catch
		p.MoveCount = c.Move
		p.TurnNeckCount = c.TurnNeck
		p.ChangeViewCount = c.ChangeView
		p.SayCount = c.Say
		p.TackleCount = c.Tackle
		p.PointtoCount = c.Pointto
		p.AttentiontoCount = c.Attentionto
		if c.SetFocus != nil {
			p.ChangeFocusCount = *c.SetFocus
		}
	}
	show.Players[idx] = p
	return nil
}

func optFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func decodeJSONTeamGraphic(rec *jsonRecord) ([]rcg.Event, error) {
	if err := missing("team_graphic", "x", rec.X != nil, "y", rec.Y != nil, "xpm", rec.Xpm != nil); err != nil {
		return nil, badRecord(err)
	}
	if len(rec.Side) != 1 {
		return nil, badRecord(fmt.Errorf("team_graphic: side %q", rec.Side))
	}
	var tile rcg.XpmTile
	for _, line := range rec.Xpm {
		if err := tile.AddData(line); err != nil {
			return nil, badRecord(err)
		}
	}
	return []rcg.Event{rcg.TeamGraphicEvent{
		Side: rcg.ParseSide(rec.Side[0]),
		X:    *rec.X,
		Y:    *rec.Y,
		Xpm:  tile.Lines(),
	}}, nil
}

// applyJSONParams assigns each member of a params object with the
// registry setter matching its JSON type. Members that do not fit are
// logged and skipped.
func applyJSONParams[T any](log *slog.Logger, reg *rcg.Registry[T], dst *T, raw json.RawMessage) error {
	if len(raw) == 0 {
		return badRecord(fmt.Errorf("%s: missing \"params\"", reg.Message()))
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var params map[string]any
	if err := dec.Decode(&params); err != nil {
		return badRecord(fmt.Errorf("%s: %w", reg.Message(), err))
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var err error
		switch v := params[name].(type) {
		case json.Number:
			if n, ierr := v.Int64(); ierr == nil && !strings.ContainsAny(v.String(), ".eE") {
				err = reg.SetInt(dst, name, int(n))
			} else if f, ferr := v.Float64(); ferr == nil {
				err = reg.SetDouble(dst, name, f)
			} else {
				err = ferr
			}
		case bool:
			err = reg.SetBool(dst, name, v)
		case string:
			err = reg.SetString(dst, name, v)
		default:
			err = fmt.Errorf("%w: %T", rcg.ErrParamType, v)
		}
		if err != nil {
			log.Warn("rcg json: parameter skipped", "message", reg.Message(), "name", name, "error", err)
		}
	}
	return nil
}
