package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Neumenon/rcg/rcg"
)

// maxLineSize bounds one record of a text log.
const maxLineSize = 1 << 20

// Text decodes the line oriented logs of versions 4, 5 and 6:
//
//	ULG5
//	(server_param (goal_width 14.02)...)
//	(playmode 0 before_kick_off)
//	(team 0 alpha null 0 0)
//	(show 1 ((b) 0 0 0 0) ((l 1) 0 0x1 -10 0 0 0 0 0 (v h 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0)) ...)
//	(msg 1 1 "(team_graphic_l (0 0 \"8 8 1 1\" ...))")
//
// A v4/v5 parser also reads v6 logs; a v6 parser reads only v6.
type Text struct {
	version int
	o       options
}

// NewText returns a text parser for version 4, 5 or 6.
func NewText(version int, opts ...Option) (*Text, error) {
	if version < rcg.Version4 || version > rcg.Version6 {
		return nil, fmt.Errorf("%w: text v%d", ErrUnsupportedVersion, version)
	}
	return &Text{version: version, o: newOptions(opts)}, nil
}

// Version returns 4, 5 or 6.
func (p *Text) Version() int { return p.version }

func (p *Text) accepts(version int) bool {
	if p.version == rcg.Version6 {
		return version == rcg.Version6
	}
	return version >= rcg.Version4 && version <= rcg.Version6
}

// Parse decodes the header line and every record. Records that cannot
// be decoded are logged and skipped, except shows that break off after
// their time: those abort the decode.
func (p *Text) Parse(r io.ReadSeeker, h rcg.Handler) error {
	if err := rewind(r); err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !sc.Scan() {
		err := sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return &ParseError{Reason: "header line", Line: 1, Err: fmt.Errorf("%w: %w", ErrShortHeader, err)}
	}
	version, err := p.header(strings.TrimSpace(sc.Text()))
	if err != nil {
		p.o.logger.Warn("rcg text: bad header", "line", sc.Text())
		return &ParseError{Reason: "header line", Line: 1, Err: err}
	}
	if err := h.Handle(rcg.LogVersionEvent{Version: version}); err != nil {
		return handlerError(err)
	}

	d := &textDecoder{version: version, log: p.o.logger}
	for sc.Scan() {
		d.line++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		events, err := d.decode(line)
		if err != nil {
			if errors.Is(err, ErrBadShow) {
				return &ParseError{Reason: "show", Line: d.line + 1, Err: err}
			}
			p.o.logger.Warn("rcg text: record skipped", "line", d.line+1, "error", err)
			continue
		}
		if err := dispatch(h, events); err != nil {
			return &ParseError{Reason: "record", Line: d.line + 1, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return &ParseError{Reason: "read", Line: d.line + 2, Err: err}
	}

	if err := h.Handle(rcg.EOFEvent{}); err != nil {
		return handlerError(err)
	}
	return nil
}

// ParseData decodes one record line.
func (p *Text) ParseData(data []byte, h rcg.Handler) error {
	d := &textDecoder{version: p.version, log: p.o.logger}
	events, err := d.decode(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	return dispatch(h, events)
}

func (p *Text) header(line string) (int, error) {
	if len(line) < 4 || !strings.HasPrefix(line, "ULG") {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, line)
	}
	version, err := strconv.Atoi(line[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, line)
	}
	if !p.accepts(version) {
		return 0, fmt.Errorf("%w: v%d in v%d parser", ErrUnsupportedVersion, version, p.version)
	}
	return version, nil
}

// ============================================================
// Record decoders
// ============================================================

// textDecoder turns one line into events. It never calls the handler,
// so a record either decodes completely or not at all.
type textDecoder struct {
	version int
	line    int // records read so far
	log     *slog.Logger
}

func badRecord(err error) error {
	return fmt.Errorf("%w: %w", ErrBadRecord, err)
}

func badShow(err error) error {
	return fmt.Errorf("%w: %w", ErrBadShow, err)
}

// recordTag returns the name after the opening parenthesis.
func recordTag(line string) string {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, "(") {
		return ""
	}
	s = strings.TrimLeft(s[1:], " \t")
	end := strings.IndexAny(s, " \t()\"")
	if end < 0 {
		end = len(s)
	}
	return s[:end]
}

func (d *textDecoder) decode(line string) ([]rcg.Event, error) {
	switch tag := recordTag(line); tag {
	case "show":
		return d.decodeShow(line)
	case "playmode":
		return decodePlayMode(line)
	case "team":
		return decodeTeam(line)
	case "msg":
		return decodeMsg(line)
	case "server_param", "player_param", "player_type":
		return d.decodeParam(tag, line)
	case "":
		return nil, badRecord(fmt.Errorf("not a record: %.32q", line))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecord, tag)
	}
}

// decodeShow reads
//
//	(show <time> [(pm <id>)] [(tm <nl> <nr> <sl> <sr> [<psl> <pml> <psr> <pmr>])] ((b) x y vx vy) <player>...)
//
// and returns the play mode, team and show events in that order.
func (d *textDecoder) decodeShow(line string) ([]rcg.Event, error) {
	ts, err := rcg.Tokenize(line)
	if err != nil {
		return nil, badShow(err)
	}
	if _, err := ts.Expect(rcg.TokenLParen); err != nil {
		return nil, badShow(err)
	}
	if err := ts.Keyword("show"); err != nil {
		return nil, badShow(err)
	}

	tok := ts.Advance()
	t, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil || t < math.MinInt32 || t > math.MaxInt32 {
		return nil, badRecord(fmt.Errorf("show time %q", tok.Value))
	}
	time := int(t)

	var events []rcg.Event
	if ts.MatchOpen("pm") {
		id, err := ts.Int()
		if err != nil {
			return nil, badShow(err)
		}
		if err := ts.Close(); err != nil {
			return nil, badShow(err)
		}
		events = append(events, rcg.PlayModeEvent{Time: time, PlayMode: rcg.PlayMode(id)})
	}
	if ts.MatchOpen("tm") {
		left, right, err := scanTeams(ts)
		if err != nil {
			return nil, badShow(err)
		}
		if err := ts.Close(); err != nil {
			return nil, badShow(err)
		}
		events = append(events, rcg.TeamEvent{Time: time, Left: left, Right: right})
	}

	show := rcg.NewShowInfo()
	show.Time = time
	if err := scanBall(ts, &show.Ball); err != nil {
		return nil, badShow(err)
	}
	for ts.Peek().Type == rcg.TokenLParen {
		if err := d.scanPlayer(ts, &show); err != nil {
			return nil, badShow(err)
		}
	}
	if err := ts.Close(); err != nil {
		return nil, badShow(err)
	}
	return append(events, rcg.ShowEvent{Show: &show}), nil
}

func scanFloats(ts *rcg.TokenStream, dst ...*float32) error {
	for _, p := range dst {
		f, err := ts.Float()
		if err != nil {
			return err
		}
		*p = f
	}
	return nil
}

// scanName reads a team name; "null" stands for an unnamed team.
func scanName(ts *rcg.TokenStream) (string, error) {
	tok := ts.Advance()
	if tok.Type != rcg.TokenAtom && tok.Type != rcg.TokenString {
		return "", &rcg.SyntaxError{Reason: "expected team name, got " + tok.String(), Offset: tok.Pos}
	}
	if name := tok.Text(); name != "null" {
		return name, nil
	}
	return "", nil
}

// scanTeams reads "<nl> <nr> <sl> <sr> [<psl> <pml> <psr> <pmr>]".
func scanTeams(ts *rcg.TokenStream) (left, right rcg.Team, err error) {
	if left.Name, err = scanName(ts); err != nil {
		return left, right, err
	}
	if right.Name, err = scanName(ts); err != nil {
		return left, right, err
	}
	var nums []int
	for ts.PeekNumber() {
		n, err := ts.Int()
		if err != nil {
			return left, right, err
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 6:
		left.PenaltyScore, left.PenaltyMiss = nums[2], nums[3]
		right.PenaltyScore, right.PenaltyMiss = nums[4], nums[5]
		fallthrough
	case 2:
		left.Score, right.Score = nums[0], nums[1]
	default:
		return left, right, fmt.Errorf("team info has %d numbers", len(nums))
	}
	return left, right, nil
}

// scanBall reads "((b) x y vx vy)".
func scanBall(ts *rcg.TokenStream, b *rcg.Ball) error {
	if _, err := ts.Expect(rcg.TokenLParen); err != nil {
		return err
	}
	if !ts.MatchOpen("b") {
		return &rcg.SyntaxError{Reason: "expected (b), got " + ts.Peek().String(), Offset: ts.Peek().Pos}
	}
	if err := ts.Close(); err != nil {
		return err
	}
	if err := scanFloats(ts, &b.X, &b.Y, &b.VX, &b.VY); err != nil {
		return err
	}
	return ts.Close()
}

// scanPlayer reads one player block:
//
//	((<side> <unum>) <type> <state> x y vx vy body neck [fx fy]v6 [px py]
//	 (v <h|l> <width>) [(fp <dist> <dir>)] (s <stamina> <effort> <recovery> [<capacity>])
//	 [(f <side> <unum>)] (c <11 or 12 counters>))
//
// A player with a uniform number outside 1..11 is logged and dropped.
func (d *textDecoder) scanPlayer(ts *rcg.TokenStream, show *rcg.ShowInfo) error {
	if _, err := ts.Expect(rcg.TokenLParen); err != nil {
		return err
	}
	if _, err := ts.Expect(rcg.TokenLParen); err != nil {
		return err
	}
	s, err := ts.Atom()
	if err != nil {
		return err
	}
	if s != "l" && s != "r" {
		return fmt.Errorf("illegal player side %q", s)
	}
	unum, err := ts.Int()
	if err != nil {
		return err
	}
	if err := ts.Close(); err != nil {
		return err
	}
	side := rcg.ParseSide(s[0])
	idx := rcg.PlayerIndex(side, unum)
	if idx < 0 {
		d.log.Warn("rcg text: player dropped", "line", d.line+1, "time", show.Time, "side", s, "unum", unum)
		return ts.Skip()
	}

	p := rcg.NewPlayer()
	p.Side = side
	p.Unum = int16(unum)
	typ, err := ts.Int()
	if err != nil {
		return err
	}
	p.Type = int16(typ)
	if p.State, err = ts.Hex(); err != nil {
		return err
	}
	if err := scanFloats(ts, &p.X, &p.Y, &p.VX, &p.VY, &p.Body, &p.Neck); err != nil {
		return err
	}

	var extra []float32
	for ts.PeekNumber() {
		f, err := ts.Float()
		if err != nil {
			return err
		}
		extra = append(extra, f)
	}
	if d.version >= rcg.Version6 && len(extra) >= 2 {
		p.FocusPointX, p.FocusPointY = extra[0], extra[1]
		extra = extra[2:]
	}
	switch len(extra) {
	case 0:
	case 2:
		p.PointX, p.PointY = extra[0], extra[1]
	default:
		return fmt.Errorf("player %s %d: %d values after neck", s, unum, len(extra))
	}

	if !ts.MatchOpen("v") {
		return fmt.Errorf("player %s %d: missing view", s, unum)
	}
	q, err := ts.Atom()
	if err != nil {
		return err
	}
	p.HighQuality = q == "h"
	if err := scanFloats(ts, &p.ViewWidth); err != nil {
		return err
	}
	if err := ts.Close(); err != nil {
		return err
	}

	if ts.MatchOpen("fp") {
		if err := scanFloats(ts, &p.FocusDist, &p.FocusDir); err != nil {
			return err
		}
		if err := ts.Close(); err != nil {
			return err
		}
	}

	if !ts.MatchOpen("s") {
		return fmt.Errorf("player %s %d: missing stamina", s, unum)
	}
	if err := scanFloats(ts, &p.Stamina, &p.Effort, &p.Recovery); err != nil {
		return err
	}
	if ts.PeekNumber() {
		if err := scanFloats(ts, &p.StaminaCapacity); err != nil {
			return err
		}
	}
	if err := ts.Close(); err != nil {
		return err
	}

	if ts.MatchOpen("f") {
		fs, err := ts.Atom()
		if err != nil || fs == "" {
			return fmt.Errorf("player %s %d: bad focus side", s, unum)
		}
		fu, err := ts.Int()
		if err != nil {
			return err
		}
		if err := ts.Close(); err != nil {
			return err
		}
		p.FocusSide = rcg.ParseSide(fs[0])
		p.FocusUnum = int16(fu)
	}

	if !ts.MatchOpen("c") {
		return fmt.Errorf("player %s %d: missing counters", s, unum)
	}
	var counts []uint16
	for ts.PeekNumber() {
		n, err := ts.Int()
		if err != nil {
			return err
		}
		counts = append(counts, uint16(n))
	}
	if len(counts) != 11 && len(counts) != 12 {
		return fmt.Errorf("player %s %d: %d counters", s, unum, len(counts))
	}
	setCounts(&p, counts)
	if err := ts.Close(); err != nil {
		return err
	}
	if err := ts.Close(); err != nil {
		return err
	}

	show.Players[idx] = p
	return nil
}

// setCounts assigns the counters in log order. change_focus is optional.
func setCounts(p *rcg.Player, c []uint16) {
	p.KickCount = c[0]
	p.DashCount = c[1]
	p.TurnCount = c[2]
	p.CatchCount = c[3]
	p.MoveCount = c[4]
	p.TurnNeckCount = c[5]
	p.ChangeViewCount = c[6]
	p.SayCount = c[7]
	p.TackleCount = c[8]
	p.PointtoCount = c[9]
	p.AttentiontoCount = c[10]
	if len(c) > 11 {
		p.ChangeFocusCount = c[11]
	}
}

// decodePlayMode reads "(playmode <time> <name>)". Unknown names map to
// PMNull.
func decodePlayMode(line string) ([]rcg.Event, error) {
	ts, err := rcg.Tokenize(line)
	if err != nil {
		return nil, badRecord(err)
	}
	ts.Advance()
	if err := ts.Keyword("playmode"); err != nil {
		return nil, badRecord(err)
	}
	time, err := ts.Int()
	if err != nil {
		return nil, badRecord(err)
	}
	name, err := ts.Atom()
	if err != nil {
		return nil, badRecord(err)
	}
	if err := ts.Close(); err != nil {
		return nil, badRecord(err)
	}
	return []rcg.Event{rcg.PlayModeEvent{Time: time, PlayMode: rcg.ParsePlayMode(name)}}, nil
}

// decodeTeam reads "(team <time> <nl> <nr> <sl> <sr> [<4 penalty fields>])".
func decodeTeam(line string) ([]rcg.Event, error) {
	ts, err := rcg.Tokenize(line)
	if err != nil {
		return nil, badRecord(err)
	}
	ts.Advance()
	if err := ts.Keyword("team"); err != nil {
		return nil, badRecord(err)
	}
	time, err := ts.Int()
	if err != nil {
		return nil, badRecord(err)
	}
	left, right, err := scanTeams(ts)
	if err != nil {
		return nil, badRecord(err)
	}
	if err := ts.Close(); err != nil {
		return nil, badRecord(err)
	}
	return []rcg.Event{rcg.TeamEvent{Time: time, Left: left, Right: right}}, nil
}

// decodeMsg reads `(msg <time> <board> "<text>")`. The text ends at the
// last `")` of the line and is kept verbatim, escapes included. A text
// starting with "(team_graphic_" is a team logo tile.
func decodeMsg(line string) ([]rcg.Event, error) {
	q := strings.IndexByte(line, '"')
	if q < 0 {
		return nil, badRecord(errors.New("msg without text"))
	}
	head := strings.Fields(strings.TrimLeft(line[:q], " \t("))
	if len(head) != 3 || head[0] != "msg" {
		return nil, badRecord(fmt.Errorf("msg header %q", line[:q]))
	}
	time, err := strconv.Atoi(head[1])
	if err != nil {
		return nil, badRecord(fmt.Errorf("msg time %q", head[1]))
	}
	board, err := strconv.Atoi(head[2])
	if err != nil {
		return nil, badRecord(fmt.Errorf("msg board %q", head[2]))
	}

	body := line[q+1:]
	if len(body) <= 2 {
		return nil, badRecord(errors.New("empty msg"))
	}
	end := strings.LastIndex(body, `")`)
	if end < 0 {
		return nil, badRecord(errors.New("unterminated msg"))
	}
	text := body[:end]

	if strings.HasPrefix(text, "(team_graphic_") {
		ev, err := decodeTeamGraphic(text)
		if err != nil {
			return nil, badRecord(err)
		}
		return []rcg.Event{ev}, nil
	}
	return []rcg.Event{rcg.MsgEvent{Time: time, Board: board, Text: text}}, nil
}

// decodeTeamGraphic reads "(team_graphic_<l|r> (<x> <y> "<xpm>"...))".
// Inside a msg record the xpm quotes are escaped.
func decodeTeamGraphic(text string) (rcg.Event, error) {
	side, x, y, tile, err := rcg.ParseTeamGraphic(strings.ReplaceAll(text, `\"`, `"`))
	if err != nil {
		return nil, err
	}
	return rcg.TeamGraphicEvent{Side: side, X: x, Y: y, Xpm: tile.Lines()}, nil
}

// decodeParam reads a parameter record through the registry of its
// type. Unknown names and bad values are logged and skipped.
func (d *textDecoder) decodeParam(tag, line string) ([]rcg.Event, error) {
	switch tag {
	case "server_param":
		sp := rcg.NewServerParam()
		if err := d.paramResult(sp.ParseSExp(line)); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.ServerParamEvent{Param: sp}}, nil
	case "player_param":
		pp := rcg.NewPlayerParam()
		if err := d.paramResult(pp.ParseSExp(line)); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.PlayerParamEvent{Param: pp}}, nil
	default:
		pt := rcg.NewPlayerType()
		if err := d.paramResult(pt.ParseSExp(line)); err != nil {
			return nil, err
		}
		return []rcg.Event{rcg.PlayerTypeEvent{Type: pt}}, nil
	}
}

func (d *textDecoder) paramResult(err error) error {
	if err == nil {
		return nil
	}
	var perrs rcg.ParamErrors
	if errors.As(err, &perrs) {
		for _, pe := range perrs {
			d.log.Warn("rcg: parameter skipped", "line", d.line+1, "message", pe.Message, "name", pe.Name, "error", pe.Err)
		}
		return nil
	}
	return badRecord(err)
}
