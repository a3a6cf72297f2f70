package legacy

import (
	"math"

	"github.com/Neumenon/rcg/rcg"
)

// ============================================================
// Ball
// ============================================================

// PosToBall decodes the ball slot of a v1/v2 show.
func PosToBall(from *Pos) rcg.Ball {
	b := rcg.NewBall()
	b.X = ShortToFloat(from.X)
	b.Y = ShortToFloat(from.Y)
	return b
}

// BallToPos encodes a ball into a v1/v2 show slot.
func BallToPos(from *rcg.Ball, to *Pos) {
	*to = Pos{Side: int16(rcg.Neutral)}
	to.X = FloatToShort(from.X)
	to.Y = FloatToShort(from.Y)
}

// BallInfoToBall decodes a v3 ball.
func BallInfoToBall(from *BallInfo) rcg.Ball {
	return rcg.Ball{
		X:  LongToFloat(from.X),
		Y:  LongToFloat(from.Y),
		VX: LongToFloat(from.DeltaX),
		VY: LongToFloat(from.DeltaY),
	}
}

// BallToBallInfo encodes a v3 ball. An unknown velocity is written as
// LongUnset.
func BallToBallInfo(from *rcg.Ball, to *BallInfo) {
	to.X = FloatToLong(from.X)
	to.Y = FloatToLong(from.Y)
	to.DeltaX = FloatToLong(from.VX)
	to.DeltaY = FloatToLong(from.VY)
}

// ============================================================
// Player
// ============================================================

// PosToPlayer decodes a v1/v2 player slot. The angle is in degrees.
func PosToPlayer(from *Pos) rcg.Player {
	p := rcg.NewPlayer()
	p.State = uint32(uint16(from.Enable))
	p.Side = rcg.Side(from.Side)
	p.Unum = from.Unum
	p.Body = float32(from.Angle)
	p.X = ShortToFloat(from.X)
	p.Y = ShortToFloat(from.Y)
	return p
}

// PlayerToPos encodes a player into a v1/v2 slot.
func PlayerToPos(from *rcg.Player, to *Pos) {
	to.Enable = int16(from.State)
	to.Side = int16(from.Side)
	to.Unum = from.Unum
	to.Angle = clampShort(math.RoundToEven(float64(from.Body)))
	to.X = FloatToShort(from.X)
	to.Y = FloatToShort(from.Y)
}

// PlayerInfoToPlayer decodes a v3 player. side and unum come from the
// slot index because the record does not carry them.
func PlayerInfoToPlayer(side rcg.Side, unum int, from *PlayerInfo) rcg.Player {
	p := rcg.NewPlayer()
	p.Side = side
	p.Unum = int16(unum)
	p.Type = from.Type
	p.HighQuality = from.ViewQuality != 0
	p.State = uint32(uint16(from.Mode))

	p.X = LongToFloat(from.X)
	p.Y = LongToFloat(from.Y)
	p.VX = LongToFloat(from.DeltaX)
	p.VY = LongToFloat(from.DeltaY)
	p.Body = LongToAngle(from.BodyAngle)
	p.Neck = LongToAngle(from.HeadAngle)

	if from.ViewWidth != 0 {
		p.ViewWidth = LongToAngle(from.ViewWidth)
	}
	if from.Stamina != 0 && from.Effort != 0 && from.Recovery != 0 {
		p.Stamina = LongToFloat(from.Stamina)
		p.Effort = LongToFloat(from.Effort)
		p.Recovery = LongToFloat(from.Recovery)
	}

	p.KickCount = uint16(from.KickCount)
	p.DashCount = uint16(from.DashCount)
	p.TurnCount = uint16(from.TurnCount)
	p.SayCount = uint16(from.SayCount)
	p.TurnNeckCount = uint16(from.TurnNeckCount)
	p.CatchCount = uint16(from.CatchCount)
	p.MoveCount = uint16(from.MoveCount)
	p.ChangeViewCount = uint16(from.ChangeViewCount)
	return p
}

// PlayerToPlayerInfo encodes a v3 player. Unset optional values are
// written as LongUnset, which decodes back to rcg.Unset; unset counters
// keep their all-ones pattern.
func PlayerToPlayerInfo(from *rcg.Player, to *PlayerInfo) {
	*to = PlayerInfo{}
	to.Mode = int16(from.State)
	if from.HasType() {
		to.Type = from.Type
	}
	to.X = FloatToLong(from.X)
	to.Y = FloatToLong(from.Y)
	to.DeltaX = FloatToLong(from.VX)
	to.DeltaY = FloatToLong(from.VY)
	to.BodyAngle = AngleToLong(from.Body)
	to.HeadAngle = AngleToLong(from.Neck)
	to.ViewWidth = AngleToLong(from.ViewWidth)
	to.ViewQuality = BoolToShort(from.HighQuality)
	to.Stamina = FloatToLong(from.Stamina)
	to.Effort = FloatToLong(from.Effort)
	to.Recovery = FloatToLong(from.Recovery)
	to.KickCount = int16(from.KickCount)
	to.DashCount = int16(from.DashCount)
	to.TurnCount = int16(from.TurnCount)
	to.SayCount = int16(from.SayCount)
	to.TurnNeckCount = int16(from.TurnNeckCount)
	to.CatchCount = int16(from.CatchCount)
	to.MoveCount = int16(from.MoveCount)
	to.ChangeViewCount = int16(from.ChangeViewCount)
}

// PosToPlayerInfo widens a v1/v2 slot to the v3 layout.
func PosToPlayerInfo(from *Pos, to *PlayerInfo) {
	*to = PlayerInfo{}
	to.Mode = from.Enable
	to.X = ShortToLong(from.X)
	to.Y = ShortToLong(from.Y)
	to.BodyAngle = AngleToLong(float32(from.Angle))
}

// PlayerInfoToPos narrows a v3 player to the v1/v2 layout.
func PlayerInfoToPos(side rcg.Side, unum int, from *PlayerInfo, to *Pos) {
	*to = Pos{}
	to.Enable = from.Mode
	to.Side = int16(side)
	to.Unum = int16(unum)
	to.Angle = clampShort(math.RoundToEven(float64(LongToAngle(from.BodyAngle))))
	to.X = LongToShort(from.X)
	to.Y = LongToShort(from.Y)
}

// ============================================================
// Team
// ============================================================

// TeamInfoToTeam decodes a team record.
func TeamInfoToTeam(from *TeamInfo) rcg.Team {
	return rcg.Team{
		Name:  CString(from.Name[:]),
		Score: int(from.Score),
	}
}

// TeamToTeamInfo encodes a team. Names longer than 15 bytes are
// truncated.
func TeamToTeamInfo(from *rcg.Team, to *TeamInfo) {
	SetCString(to.Name[:], from.Name)
	to.Score = IntToShort(from.Score)
}

// ============================================================
// Show
// ============================================================

// ShowInfoToShow decodes the positions and time of a v1/v2 show.
func ShowInfoToShow(from *ShowInfo) rcg.ShowInfo {
	s := rcg.NewShowInfo()
	s.Ball = PosToBall(&from.Pos[0])
	for i := range s.Players {
		s.Players[i] = PosToPlayer(&from.Pos[i+1])
	}
	s.Time = int(uint16(from.Time))
	return s
}

// ShowToShowInfo encodes a show with its play mode and teams. Player
// slots follow the uniform number: left unum n at n, right at n+11.
func ShowToShowInfo(pm rcg.PlayMode, left, right *rcg.Team, from *rcg.ShowInfo, to *ShowInfo) {
	*to = ShowInfo{}
	to.PMode = uint8(pm)
	TeamToTeamInfo(left, &to.Team[0])
	TeamToTeamInfo(right, &to.Team[1])
	BallToPos(&from.Ball, &to.Pos[0])
	for i := range from.Players {
		p := &from.Players[i]
		idx := int(p.Unum)
		switch p.Side {
		case rcg.Left:
		case rcg.Right:
			idx += rcg.MaxPlayer
		default:
			continue
		}
		if idx < 1 || idx >= MaxObject {
			continue
		}
		PlayerToPos(p, &to.Pos[idx])
	}
	to.Time = int16(from.Time)
}

// ShowInfo2ToShow decodes a monitor v2 show.
func ShowInfo2ToShow(from *ShowInfo2) rcg.ShowInfo {
	return decodePlayers(&from.Ball, &from.Pos, from.Time)
}

// ShortShowInfo2ToShow decodes a v3 show.
func ShortShowInfo2ToShow(from *ShortShowInfo2) rcg.ShowInfo {
	return decodePlayers(&from.Ball, &from.Pos, from.Time)
}

func decodePlayers(ball *BallInfo, pos *[2 * rcg.MaxPlayer]PlayerInfo, time int16) rcg.ShowInfo {
	s := rcg.NewShowInfo()
	s.Ball = BallInfoToBall(ball)
	for i := 0; i < rcg.MaxPlayer; i++ {
		s.Players[i] = PlayerInfoToPlayer(rcg.Left, i+1, &pos[i])
	}
	for i := rcg.MaxPlayer; i < 2*rcg.MaxPlayer; i++ {
		s.Players[i] = PlayerInfoToPlayer(rcg.Right, i+1-rcg.MaxPlayer, &pos[i])
	}
	s.Time = int(uint16(time))
	return s
}

// ShowToShowInfo2 encodes a monitor v2 show.
func ShowToShowInfo2(pm rcg.PlayMode, left, right *rcg.Team, from *rcg.ShowInfo, to *ShowInfo2) {
	*to = ShowInfo2{}
	to.PMode = uint8(pm)
	TeamToTeamInfo(left, &to.Team[0])
	TeamToTeamInfo(right, &to.Team[1])
	encodePlayers(from, &to.Ball, &to.Pos)
	to.Time = int16(from.Time)
}

// ShowToShortShowInfo2 encodes a v3 show.
func ShowToShortShowInfo2(from *rcg.ShowInfo, to *ShortShowInfo2) {
	*to = ShortShowInfo2{}
	encodePlayers(from, &to.Ball, &to.Pos)
	to.Time = int16(from.Time)
}

func encodePlayers(from *rcg.ShowInfo, ball *BallInfo, pos *[2 * rcg.MaxPlayer]PlayerInfo) {
	BallToBallInfo(&from.Ball, ball)
	for i := range from.Players {
		p := &from.Players[i]
		idx := rcg.PlayerIndex(p.Side, int(p.Unum))
		if idx < 0 {
			continue
		}
		PlayerToPlayerInfo(p, &pos[idx])
	}
}

// ShowInfoToShowInfo2 widens a v1/v2 show to the monitor v2 layout.
func ShowInfoToShowInfo2(from *ShowInfo, to *ShowInfo2) {
	*to = ShowInfo2{}
	to.PMode = from.PMode
	to.Team = from.Team
	to.Ball.X = ShortToLong(from.Pos[0].X)
	to.Ball.Y = ShortToLong(from.Pos[0].Y)
	for i := range to.Pos {
		PosToPlayerInfo(&from.Pos[i+1], &to.Pos[i])
	}
	to.Time = from.Time
}

// ShowInfo2ToShowInfo narrows a monitor v2 show to the v1/v2 layout.
func ShowInfo2ToShowInfo(from *ShowInfo2, to *ShowInfo) {
	*to = ShowInfo{}
	to.PMode = from.PMode
	to.Team = from.Team
	to.Pos[0].Side = int16(rcg.Neutral)
	to.Pos[0].X = LongToShort(from.Ball.X)
	to.Pos[0].Y = LongToShort(from.Ball.Y)
	for i := 0; i < rcg.MaxPlayer; i++ {
		PlayerInfoToPos(rcg.Left, i+1, &from.Pos[i], &to.Pos[i+1])
	}
	for i := rcg.MaxPlayer; i < 2*rcg.MaxPlayer; i++ {
		PlayerInfoToPos(rcg.Right, i+1-rcg.MaxPlayer, &from.Pos[i], &to.Pos[i+1])
	}
	to.Time = from.Time
}

// ============================================================
// Message and draw
// ============================================================

// MsgInfoToText returns the board and text of a message record.
func MsgInfoToText(from *MsgInfo) (board int, text string) {
	return int(from.Board), CString(from.Message[:])
}

// TextToMsgInfo fills a message record. Text longer than the record
// is truncated.
func TextToMsgInfo(board int, text string, to *MsgInfo) {
	to.Board = IntToShort(board)
	SetCString(to.Message[:], text)
}

// DrawInfoToEvent decodes a draw record. ok is false for an unknown
// draw mode or a body that cannot be decoded.
func DrawInfoToEvent(time int, from *DrawInfo) (ev rcg.Event, ok bool) {
	switch from.Mode {
	case DrawClear:
		return rcg.DrawClearEvent{Time: time}, true
	case DrawPoint:
		var pi PointInfo
		if Decode(from.Object[:], &pi) != nil {
			return nil, false
		}
		return rcg.DrawPointEvent{Time: time, Point: rcg.Point{
			X:     ShortToFloat(pi.X),
			Y:     ShortToFloat(pi.Y),
			Color: CString(pi.Color[:]),
		}}, true
	case DrawCircle:
		var ci CircleInfo
		if Decode(from.Object[:], &ci) != nil {
			return nil, false
		}
		return rcg.DrawCircleEvent{Time: time, Circle: rcg.Circle{
			X:     ShortToFloat(ci.X),
			Y:     ShortToFloat(ci.Y),
			R:     ShortToFloat(ci.R),
			Color: CString(ci.Color[:]),
		}}, true
	case DrawLine:
		var li LineInfo
		if Decode(from.Object[:], &li) != nil {
			return nil, false
		}
		return rcg.DrawLineEvent{Time: time, Line: rcg.Line{
			X1:    ShortToFloat(li.X1),
			Y1:    ShortToFloat(li.Y1),
			X2:    ShortToFloat(li.X2),
			Y2:    ShortToFloat(li.Y2),
			Color: CString(li.Color[:]),
		}}, true
	}
	return nil, false
}

// EventToDrawInfo encodes a draw event. ok is false for other events.
func EventToDrawInfo(ev rcg.Event, to *DrawInfo) (ok bool) {
	*to = DrawInfo{}
	switch e := ev.(type) {
	case rcg.DrawClearEvent:
		to.Mode = DrawClear
	case rcg.DrawPointEvent:
		to.Mode = DrawPoint
		pi := PointInfo{X: FloatToShort(e.Point.X), Y: FloatToShort(e.Point.Y)}
		SetCString(pi.Color[:], e.Point.Color)
		copy(to.Object[:], Encode(&pi))
	case rcg.DrawCircleEvent:
		to.Mode = DrawCircle
		ci := CircleInfo{X: FloatToShort(e.Circle.X), Y: FloatToShort(e.Circle.Y), R: FloatToShort(e.Circle.R)}
		SetCString(ci.Color[:], e.Circle.Color)
		copy(to.Object[:], Encode(&ci))
	case rcg.DrawLineEvent:
		to.Mode = DrawLine
		li := LineInfo{
			X1: FloatToShort(e.Line.X1), Y1: FloatToShort(e.Line.Y1),
			X2: FloatToShort(e.Line.X2), Y2: FloatToShort(e.Line.Y2),
		}
		SetCString(li.Color[:], e.Line.Color)
		copy(to.Object[:], Encode(&li))
	default:
		return false
	}
	return true
}
