// Package rcg holds the canonical model of a RoboCup soccer simulator
// game log (rcg).
//
// Every log generation, from the fixed-layout binary records of the
// first monitor protocol to the JSON documents written by recent
// servers, decodes into the types of this package:
//   - ShowInfo: one simulation cycle (ball + 22 players)
//   - Team, PlayMode: match state delivered alongside shows
//   - ServerParam, PlayerParam, PlayerType: server configuration
//   - XpmTile, TeamGraphic: team logos
//
// Decoders push Events to a Handler; see handler.go.
package rcg

import "fmt"

// MaxPlayer is the number of players per team.
const MaxPlayer = 11

// Unset is the sentinel stored in optional float fields.
// It equals the 32-bit fixed-point scale and is compared exactly.
const Unset float32 = 65536.0

// UnsetCount is the sentinel stored in command counters.
const UnsetCount uint16 = 0xFFFF

// Log format versions.
const (
	VersionOld  = 1
	Version2    = 2
	Version3    = 3
	Version4    = 4
	Version5    = 5
	Version6    = 6
	VersionJSON = 6
)

// Message boards.
const (
	MsgBoard = 1
	LogBoard = 2
)

// Side identifies a team.
type Side int8

const (
	Left    Side = 1
	Neutral Side = 0
	Right   Side = -1
)

// String returns "l", "r" or "n".
func (s Side) String() string {
	switch s {
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "n"
	}
}

// ParseSide parses a side character. Anything but 'l' or 'r' is Neutral.
func ParseSide(c byte) Side {
	switch c {
	case 'l', 'L':
		return Left
	case 'r', 'R':
		return Right
	default:
		return Neutral
	}
}

// Ball is the ball state of one cycle.
type Ball struct {
	X  float32
	Y  float32
	VX float32
	VY float32
}

// NewBall returns a ball with unknown velocity.
func NewBall() Ball {
	return Ball{VX: Unset, VY: Unset}
}

// HasVelocity reports whether the velocity was recorded.
func (b *Ball) HasVelocity() bool {
	return b.VX != Unset
}

// Team is the name and score of one side.
type Team struct {
	Name         string
	Score        int
	PenaltyScore int
	PenaltyMiss  int
}

// PenaltyTrial returns the number of penalty kicks taken.
func (t Team) PenaltyTrial() int {
	return t.PenaltyScore + t.PenaltyMiss
}

// Equal compares all fields.
func (t Team) Equal(o Team) bool {
	return t == o
}

func (t Team) String() string {
	return fmt.Sprintf("%s %d (%d/%d)", t.Name, t.Score, t.PenaltyScore, t.PenaltyTrial())
}

// ShowInfo is the state of ball and players at one cycle.
// Players 0..10 are the left team, 11..21 the right team.
type ShowInfo struct {
	Time    int
	STime   int
	Ball    Ball
	Players [MaxPlayer * 2]Player
}

// NewShowInfo returns a show with every optional field unset.
func NewShowInfo() ShowInfo {
	s := ShowInfo{Ball: NewBall()}
	for i := range s.Players {
		s.Players[i] = NewPlayer()
	}
	return s
}

// PlayerIndex returns the slot of (side, unum) in Players, or -1.
func PlayerIndex(side Side, unum int) int {
	if unum < 1 || unum > MaxPlayer {
		return -1
	}
	switch side {
	case Left:
		return unum - 1
	case Right:
		return unum - 1 + MaxPlayer
	default:
		return -1
	}
}

// DispInfo is a show together with the match state in force at that cycle.
type DispInfo struct {
	PlayMode PlayMode
	Teams    [2]Team
	Show     ShowInfo
}

// Point is a legacy draw point.
type Point struct {
	X, Y  float32
	Color string
}

// Circle is a legacy draw circle.
type Circle struct {
	X, Y, R float32
	Color   string
}

// Line is a legacy draw line.
type Line struct {
	X1, Y1, X2, Y2 float32
	Color          string
}
