package legacy

import (
	"fmt"

	"github.com/Neumenon/rcg/rcg"
)

// Adapter converts legacy records to canonical events and forwards them
// to a Handler. It remembers the time of the last show so messages and
// drawings, which carry no time of their own, are stamped with it.
type Adapter struct {
	h        rcg.Handler
	readTime int
}

// NewAdapter returns an Adapter forwarding to h.
func NewAdapter(h rcg.Handler) *Adapter {
	return &Adapter{h: h}
}

// ReadTime returns the time of the last show handled.
func (a *Adapter) ReadTime() int { return a.readTime }

// Handler returns the wrapped handler.
func (a *Adapter) Handler() rcg.Handler { return a.h }

// LogVersion announces the stream version.
func (a *Adapter) LogVersion(version int) error {
	return a.h.Handle(rcg.LogVersionEvent{Version: version})
}

// DispInfo handles one v1 record. ok is false for modes a DispInfo
// cannot carry.
func (a *Adapter) DispInfo(d *DispInfo) (ok bool, err error) {
	switch d.Mode {
	case ShowMode:
		var si ShowInfo
		if err := Decode(d.Body[:], &si); err != nil {
			return true, err
		}
		return true, a.ShowInfo(&si)
	case MsgMode:
		var mi MsgInfo
		if err := Decode(d.Body[:], &mi); err != nil {
			return true, err
		}
		return true, a.MsgInfo(&mi)
	case DrawMode:
		var di DrawInfo
		if err := Decode(d.Body[:], &di); err != nil {
			return true, err
		}
		return true, a.DrawInfo(&di)
	}
	return false, nil
}

// ShowInfo handles a v1/v2 show: play mode, teams, then the show.
func (a *Adapter) ShowInfo(si *ShowInfo) error {
	show := ShowInfoToShow(si)
	a.readTime = show.Time
	if err := a.PlayMode(si.PMode); err != nil {
		return err
	}
	if err := a.TeamInfo(&si.Team[0], &si.Team[1]); err != nil {
		return err
	}
	return a.h.Handle(rcg.ShowEvent{Show: &show})
}

// ShowInfo2 handles a monitor v2 show: play mode, teams, then the show.
func (a *Adapter) ShowInfo2(si *ShowInfo2) error {
	show := ShowInfo2ToShow(si)
	a.readTime = show.Time
	if err := a.PlayMode(si.PMode); err != nil {
		return err
	}
	if err := a.TeamInfo(&si.Team[0], &si.Team[1]); err != nil {
		return err
	}
	return a.h.Handle(rcg.ShowEvent{Show: &show})
}

// ShortShowInfo2 handles a v3 show.
func (a *Adapter) ShortShowInfo2(si *ShortShowInfo2) error {
	show := ShortShowInfo2ToShow(si)
	a.readTime = show.Time
	return a.h.Handle(rcg.ShowEvent{Show: &show})
}

// MsgInfo handles a message record.
func (a *Adapter) MsgInfo(mi *MsgInfo) error {
	board, text := MsgInfoToText(mi)
	return a.Msg(board, text)
}

// Msg forwards a message stamped with the last show time.
func (a *Adapter) Msg(board int, text string) error {
	return a.h.Handle(rcg.MsgEvent{Time: a.readTime, Board: board, Text: text})
}

// DrawInfo handles a draw record. Unknown draw modes are reported as
// errors.
func (a *Adapter) DrawInfo(di *DrawInfo) error {
	ev, ok := DrawInfoToEvent(a.readTime, di)
	if !ok {
		return fmt.Errorf("legacy: unknown draw mode %d", di.Mode)
	}
	return a.h.Handle(ev)
}

// PlayMode handles a play mode byte.
func (a *Adapter) PlayMode(pm uint8) error {
	return a.h.Handle(rcg.PlayModeEvent{Time: a.readTime, PlayMode: rcg.PlayMode(pm)})
}

// TeamInfo handles both team records.
func (a *Adapter) TeamInfo(left, right *TeamInfo) error {
	return a.h.Handle(rcg.TeamEvent{
		Time:  a.readTime,
		Left:  TeamInfoToTeam(left),
		Right: TeamInfoToTeam(right),
	})
}

// PlayerType handles a player type record.
func (a *Adapter) PlayerType(pt *PlayerTypeInfo) error {
	return a.h.Handle(rcg.PlayerTypeEvent{Type: PlayerTypeInfoToPlayerType(pt)})
}

// ServerParams handles a server parameter record.
func (a *Adapter) ServerParams(sp *ServerParams) error {
	return a.h.Handle(rcg.ServerParamEvent{Param: ServerParamsToServerParam(sp)})
}

// PlayerParams handles a player parameter record.
func (a *Adapter) PlayerParams(pp *PlayerParams) error {
	return a.h.Handle(rcg.PlayerParamEvent{Param: PlayerParamsToPlayerParam(pp)})
}
