package parser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/Neumenon/rcg/rcg"
)

// StreamJSON decodes the JSON log written by the server's streaming
// recorder: a root array of objects whose single key names the record.
//
//	[{"version":"19.0.0"},
//	 {"timestamp":"2024-07-20 10:00:00"},
//	 {"server_param":{"goal_width":14.02,...}},
//	 {"playmode":{"time":0,"mode":"before_kick_off"}},
//	 {"team":{"time":0,"l":{"name":"alpha","score":0},"r":{"name":null,"score":0}}},
//	 {"show":{"time":1,"ball":{...},"players":[...]}}]
//
// Parameter values are passed to the registries as raw JSON tokens, so
// JSON and text logs share one coercion path.
type StreamJSON struct {
	o options
}

// Version returns rcg.VersionJSON.
func (p *StreamJSON) Version() int { return rcg.VersionJSON }

// Parse decodes the whole document.
func (p *StreamJSON) Parse(r io.ReadSeeker, h rcg.Handler) error {
	if err := rewind(r); err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("rcg: read: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrBadDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return fmt.Errorf("%w: root is not an array", ErrBadDocument)
	}

	if err := h.Handle(rcg.LogVersionEvent{Version: rcg.VersionJSON}); err != nil {
		return handlerError(err)
	}

	var herr error
	index := 0
	root.ForEach(func(_, obj gjson.Result) bool {
		defer func() { index++ }()
		if !obj.IsObject() {
			p.o.logger.Warn("rcg json stream: record skipped", "index", index, "error", "not an object")
			return true
		}
		obj.ForEach(func(key, val gjson.Result) bool {
			events, err := decodeStreamField(p.o.logger, key.String(), val)
			if err != nil {
				p.o.logger.Warn("rcg json stream: record skipped", "index", index, "key", key.String(), "error", err)
				return true
			}
			if err := dispatch(h, events); err != nil {
				herr = &ParseError{Reason: fmt.Sprintf("record %d", index), Offset: -1, Err: err}
				return false
			}
			return true
		})
		return herr == nil
	})
	if herr != nil {
		return herr
	}

	if err := h.Handle(rcg.EOFEvent{}); err != nil {
		return handlerError(err)
	}
	return nil
}

// ParseData decodes one record object, as received from a live feed.
func (p *StreamJSON) ParseData(data []byte, h rcg.Handler) error {
	if !gjson.ValidBytes(data) {
		return badRecord(fmt.Errorf("invalid JSON"))
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return badRecord(fmt.Errorf("not an object"))
	}
	var events []rcg.Event
	var derr error
	obj.ForEach(func(key, val gjson.Result) bool {
		var evs []rcg.Event
		evs, derr = decodeStreamField(p.o.logger, key.String(), val)
		events = append(events, evs...)
		return derr == nil
	})
	if derr != nil {
		return derr
	}
	return dispatch(h, events)
}

// ============================================================
// Record decoders
// ============================================================

func decodeStreamField(log *slog.Logger, key string, val gjson.Result) ([]rcg.Event, error) {
	switch key {
	case "version":
		return []rcg.Event{rcg.ServerVersionEvent{Version: val.String()}}, nil
	case "timestamp":
		return []rcg.Event{rcg.TimestampEvent{Value: val.String()}}, nil
	case "server_param":
		sp := rcg.NewServerParam()
		if err := streamParams(log, rcg.ServerParamRegistry(), sp, val); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.ServerParamEvent{Param: sp}}, nil
	case "player_param":
		pp := rcg.NewPlayerParam()
		if err := streamParams(log, rcg.PlayerParamRegistry(), pp, val); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.PlayerParamEvent{Param: pp}}, nil
	case "player_type":
		pt := rcg.NewPlayerType()
		if err := streamParams(log, rcg.PlayerTypeRegistry(), pt, val); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.PlayerTypeEvent{Type: pt}}, nil
	case "team_graphic":
		return decodeStreamTeamGraphic(val)
	case "playmode":
		return decodeStreamPlayMode(val)
	case "team":
		ev, err := decodeStreamTeam(val, -1)
		if err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{ev}, nil
	case "msg":
		req, err := required(val, "msg", "time", "board", "message")
		if err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{rcg.MsgEvent{Time: int(req[0].Int()), Board: int(req[1].Int()), Text: req[2].String()}}, nil
	case "show":
		return decodeStreamShow(val)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, key)
}

// required fetches keys from an object and fails on the first absent one.
func required(obj gjson.Result, record string, keys ...string) ([]gjson.Result, error) {
	if !obj.IsObject() {
		return nil, fmt.Errorf("%s: not an object", record)
	}
	res := gjson.GetMany(obj.Raw, keys...)
	for i, r := range res {
		if !r.Exists() {
			return nil, fmt.Errorf("%s: missing %q", record, keys[i])
		}
	}
	return res, nil
}

// streamParams passes every member's raw token to the registry.
func streamParams[T any](log *slog.Logger, reg *rcg.Registry[T], dst *T, obj gjson.Result) error {
	if !obj.IsObject() {
		return badRecord(fmt.Errorf("%s: not an object", reg.Message()))
	}
	obj.ForEach(func(key, val gjson.Result) bool {
		if err := reg.SetValue(dst, key.String(), val.Raw); err != nil {
			log.Warn("rcg json stream: parameter skipped", "message", reg.Message(), "name", key.String(), "error", err)
		}
		return true
	})
	return nil
}

func decodeStreamTeamGraphic(val gjson.Result) ([]rcg.Event, error) {
	req, err := required(val, "team_graphic", "side", "x", "y", "xpm")
	if err != nil {
		return nil, badRecord(err)
	}
	side := req[0].String()
	if len(side) != 1 {
		return nil, badRecord(fmt.Errorf("team_graphic: side %q", side))
	}
	var tile rcg.XpmTile
	for _, line := range req[3].Array() {
		if err := tile.AddData(line.String()); err != nil {
			return nil, badRecord(err)
		}
	}
	return []rcg.Event{rcg.TeamGraphicEvent{
		Side: rcg.ParseSide(side[0]),
		X:    int(req[1].Int()),
		Y:    int(req[2].Int()),
		Xpm:  tile.Lines(),
	}}, nil
}

// decodeStreamPlayMode reads {"time":t,"mode":name}; a missing time is -1.
func decodeStreamPlayMode(val gjson.Result) ([]rcg.Event, error) {
	req, err := required(val, "playmode", "mode")
	if err != nil {
		return nil, badRecord(err)
	}
	time := -1
	if t := val.Get("time"); t.Exists() {
		time = int(t.Int())
	}
	return []rcg.Event{rcg.PlayModeEvent{Time: time, PlayMode: rcg.ParsePlayMode(req[0].String())}}, nil
}

// decodeStreamTeam reads {"time":t,"l":{...},"r":{...}}. A missing time
// is defaultTime.
func decodeStreamTeam(val gjson.Result, defaultTime int) (rcg.TeamEvent, error) {
	ev := rcg.TeamEvent{Time: defaultTime}
	req, err := required(val, "team", "l", "r")
	if err != nil {
		return ev, err
	}
	if t := val.Get("time"); t.Exists() {
		ev.Time = int(t.Int())
	}
	if ev.Left, err = streamTeam(req[0]); err != nil {
		return ev, err
	}
	if ev.Right, err = streamTeam(req[1]); err != nil {
		return ev, err
	}
	return ev, nil
}

func streamTeam(obj gjson.Result) (rcg.Team, error) {
	var t rcg.Team
	req, err := required(obj, "team", "score")
	if err != nil {
		return t, err
	}
	if name := obj.Get("name"); name.Type == gjson.String && name.String() != "null" {
		t.Name = name.String()
	}
	t.Score = int(req[0].Int())
	t.PenaltyScore = int(obj.Get("pen_score").Int())
	t.PenaltyMiss = int(obj.Get("pen_miss").Int())
	return t, nil
}

// decodeStreamShow returns the optional play mode and team events
// followed by the show.
func decodeStreamShow(val gjson.Result) ([]rcg.Event, error) {
	req, err := required(val, "show", "time", "ball", "players")
	if err != nil {
		return nil, badRecord(err)
	}
	show := rcg.NewShowInfo()
	show.Time = int(req[0].Int())
	show.STime = int(val.Get("stime").Int())

	var events []rcg.Event
	if mode := val.Get("mode"); mode.Exists() {
		events = append(events, rcg.PlayModeEvent{Time: show.Time, PlayMode: rcg.ParsePlayMode(mode.String())})
	}
	if team := val.Get("team"); team.Exists() {
		ev, err := decodeStreamTeam(team, show.Time)
		if err != nil {
			return nil, badRecord(err)
		}
		events = append(events, ev)
	}

	ball, err := required(req[1], "ball", "x", "y", "vx", "vy")
	if err != nil {
		return nil, badRecord(err)
	}
	show.Ball = rcg.Ball{
		X:  float32(ball[0].Float()),
		Y:  float32(ball[1].Float()),
		VX: float32(ball[2].Float()),
		VY: float32(ball[3].Float()),
	}

	if !req[2].IsArray() {
		return nil, badRecord(fmt.Errorf("show: players is not an array"))
	}
	var perr error
	req[2].ForEach(func(_, pv gjson.Result) bool {
		perr = streamPlayer(pv, &show)
		return perr == nil
	})
	if perr != nil {
		return nil, badRecord(perr)
	}
	return append(events, rcg.ShowEvent{Show: &show}), nil
}

var streamPlayerKeys = []string{
	"side", "unum", "type", "state", "x", "y", "vx", "vy", "body", "neck",
	"vq", "vw", "stamina", "effort", "recovery", "capacity",
}

func streamPlayer(pv gjson.Result, show *rcg.ShowInfo) error {
	req, err := required(pv, "player", streamPlayerKeys...)
	if err != nil {
		return err
	}
	side := req[0].String()
	unum := int(req[1].Int())
	if len(side) != 1 {
		return fmt.Errorf("player: side %q", side)
	}
	idx := rcg.PlayerIndex(rcg.ParseSide(side[0]), unum)
	if idx < 0 {
		return fmt.Errorf("player: illegal id %s %d", side, unum)
	}

	p := rcg.NewPlayer()
	p.Side = rcg.ParseSide(side[0])
	p.Unum = int16(unum)
	p.Type = int16(req[2].Int())
	p.State = uint32(req[3].Uint())
	p.X = float32(req[4].Float())
	p.Y = float32(req[5].Float())
	p.VX = float32(req[6].Float())
	p.VY = float32(req[7].Float())
	p.Body = float32(req[8].Float())
	p.Neck = float32(req[9].Float())
	p.HighQuality = req[10].String() == "h"
	p.ViewWidth = float32(req[11].Float())
	p.Stamina = float32(req[12].Float())
	p.Effort = float32(req[13].Float())
	p.Recovery = float32(req[14].Float())
	p.StaminaCapacity = float32(req[15].Float())

	optFloat := func(dst *float32, key string) {
		if r := pv.Get(key); r.Exists() {
			*dst = float32(r.Float())
		}
	}
	optFloat(&p.PointX, "px")
	optFloat(&p.PointY, "py")
	optFloat(&p.FocusDist, "fdist")
	optFloat(&p.FocusDir, "fdir")
	optFloat(&p.FocusPointX, "focusx")
	optFloat(&p.FocusPointY, "focusy")
	if fs := pv.Get("fside").String(); fs != "" {
		p.FocusSide = rcg.ParseSide(fs[0])
	}
	if fn := pv.Get("fnum"); fn.Exists() {
		p.FocusUnum = int16(fn.Int())
	}

	counts := []struct {
		key string
		dst *uint16
	}{
		{"kick", &p.KickCount},
		{"dash", &p.DashCount},
		{"turn", &p.TurnCount},
		{"catch", &p.CatchCount},
		{"move", &p.MoveCount},
		{"turn_neck", &p.TurnNeckCount},
		{"change_view", &p.ChangeViewCount},
		{"say", &p.SayCount},
		{"tackle", &p.TackleCount},
		{"pointto", &p.PointtoCount},
		{"attentionto", &p.AttentiontoCount},
		{"change_focus", &p.ChangeFocusCount},
	}
	for _, c := range counts {
		if r := pv.Get(c.key); r.Exists() {
			*c.dst = uint16(r.Int())
		}
	}

	show.Players[idx] = p
	return nil
}
