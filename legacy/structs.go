// Package legacy holds the fixed-layout binary records of rcg v1-v3 and
// the conversions between them and the canonical rcg model.
//
// All integers are big endian. Struct fields follow the C layout of the
// server including the alignment padding, so binary.Size of every
// record equals the size the server writes.
package legacy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Record modes of the v1-v3 envelope.
const (
	NoInfo     int16 = 0
	ShowMode   int16 = 1
	MsgMode    int16 = 2
	DrawMode   int16 = 3
	BlankMode  int16 = 4
	PMMode     int16 = 5
	TeamMode   int16 = 6
	PTMode     int16 = 7
	ParamMode  int16 = 8
	PParamMode int16 = 9
)

// ModeName returns a printable name for a record mode.
func ModeName(mode int16) string {
	switch mode {
	case NoInfo:
		return "no_info"
	case ShowMode:
		return "show"
	case MsgMode:
		return "msg"
	case DrawMode:
		return "draw"
	case BlankMode:
		return "blank"
	case PMMode:
		return "playmode"
	case TeamMode:
		return "team"
	case PTMode:
		return "player_type"
	case ParamMode:
		return "server_params"
	case PParamMode:
		return "player_params"
	default:
		return fmt.Sprintf("mode(%d)", mode)
	}
}

// Draw object kinds inside a DrawInfo.
const (
	DrawClear  int16 = 0
	DrawPoint  int16 = 1
	DrawCircle int16 = 2
	DrawLine   int16 = 3
)

const (
	ColorNameMax = 64
	MessageMax   = 2048
	TeamNameMax  = 16
)

// Pos is one object of a v1/v2 show: the ball at index 0, then the
// players. Coordinates are scaled by 16, angle is degrees.
type Pos struct {
	Enable int16
	Side   int16
	Unum   int16
	Angle  int16
	X      int16
	Y      int16
}

// TeamInfo is a NUL padded team name and a score.
type TeamInfo struct {
	Name  [TeamNameMax]byte
	Score int16
}

// ShowInfo is the v1/v2 show record.
type ShowInfo struct {
	PMode uint8
	_     uint8
	Team  [2]TeamInfo
	Pos   [MaxObject]Pos
	Time  int16
}

// MaxObject is the ball plus both teams.
const MaxObject = 23

// MsgInfo is a message board record.
type MsgInfo struct {
	Board   int16
	Message [MessageMax]byte
}

// PointInfo, CircleInfo and LineInfo are the bodies of a DrawInfo.
type PointInfo struct {
	X, Y  int16
	Color [ColorNameMax]byte
}

type CircleInfo struct {
	X, Y, R int16
	Color   [ColorNameMax]byte
}

type LineInfo struct {
	X1, Y1, X2, Y2 int16
	Color          [ColorNameMax]byte
}

// DrawInfo is a legacy draw record. Object holds the union of
// PointInfo, CircleInfo and LineInfo selected by Mode.
type DrawInfo struct {
	Mode   int16
	Object [72]byte
}

// DispInfo is the fixed-size v1 record: a mode and the union of
// ShowInfo, MsgInfo and DrawInfo.
type DispInfo struct {
	Mode int16
	Body [2050]byte
}

// BallInfo is the v3 ball, scaled by 65536.
type BallInfo struct {
	X      int32
	Y      int32
	DeltaX int32
	DeltaY int32
}

// PlayerInfo is the v3 player. Angles are radians scaled by 65536.
type PlayerInfo struct {
	Mode            int16
	Type            int16
	X               int32
	Y               int32
	DeltaX          int32
	DeltaY          int32
	BodyAngle       int32
	HeadAngle       int32
	ViewWidth       int32
	ViewQuality     int16
	_               [2]byte
	Stamina         int32
	Effort          int32
	Recovery        int32
	KickCount       int16
	DashCount       int16
	TurnCount       int16
	SayCount        int16
	TurnNeckCount   int16
	CatchCount      int16
	MoveCount       int16
	ChangeViewCount int16
}

// ShowInfo2 is the monitor v2 show with play mode and teams.
type ShowInfo2 struct {
	PMode uint8
	_     uint8
	Team  [2]TeamInfo
	_     [2]byte
	Ball  BallInfo
	Pos   [2 * 11]PlayerInfo
	Time  int16
	_     [2]byte
}

// ShortShowInfo2 is the show record of rcg v3.
type ShortShowInfo2 struct {
	Ball BallInfo
	Pos  [2 * 11]PlayerInfo
	Time int16
	_    [2]byte
}

// PlayerTypeInfo is a v3 player type record.
type PlayerTypeInfo struct {
	ID                    int16
	_                     [2]byte
	PlayerSpeedMax        int32
	StaminaIncMax         int32
	PlayerDecay           int32
	InertiaMoment         int32
	DashPowerRate         int32
	PlayerSize            int32
	KickableMargin        int32
	KickRand              int32
	ExtraStamina          int32
	EffortMax             int32
	EffortMin             int32
	KickPowerRate         int32
	FoulDetectProbability int32
	CatchableAreaLStretch int32
	_                     [7]int32
}

// ServerParams is the v3 server parameter record.
type ServerParams struct {
	GoalWidth                 int32
	InertiaMoment             int32
	PlayerSize                int32
	PlayerDecay               int32
	PlayerRand                int32
	PlayerWeight              int32
	PlayerSpeedMax            int32
	PlayerAccelMax            int32
	StaminaMax                int32
	StaminaInc                int32
	RecoverInit               int32
	RecoverDecThr             int32
	RecoverMin                int32
	RecoverDec                int32
	EffortInit                int32
	EffortDecThr              int32
	EffortMin                 int32
	EffortDec                 int32
	EffortIncThr              int32
	EffortInc                 int32
	KickRand                  int32
	TeamActuatorNoise         int16
	_                         [2]byte
	PlayerRandFactorL         int32
	PlayerRandFactorR         int32
	KickRandFactorL           int32
	KickRandFactorR           int32
	BallSize                  int32
	BallDecay                 int32
	BallRand                  int32
	BallWeight                int32
	BallSpeedMax              int32
	BallAccelMax              int32
	DashPowerRate             int32
	KickPowerRate             int32
	KickableMargin            int32
	ControlRadius             int32
	ControlRadiusWidth        int32
	MaxPower                  int32
	MinPower                  int32
	MaxMoment                 int32
	MinMoment                 int32
	MaxNeckMoment             int32
	MinNeckMoment             int32
	MaxNeckAngle              int32
	MinNeckAngle              int32
	VisibleAngle              int32
	VisibleDistance           int32
	WindDir                   int32
	WindForce                 int32
	WindAngle                 int32
	WindRand                  int32
	KickableArea              int32
	CatchableAreaL            int32
	CatchableAreaW            int32
	CatchProbability          int32
	GoalieMaxMoves            int16
	_                         [2]byte
	CornerKickMargin          int32
	OffsideActiveAreaSize     int32
	WindNone                  int16
	UseWindRandom             int16
	SayCoachCountMax          int16
	SayCoachMsgSize           int16
	ClangWinSize              int16
	ClangDefineWin            int16
	ClangMetaWin              int16
	ClangAdviceWin            int16
	ClangInfoWin              int16
	ClangMessDelay            int16
	ClangMessPerCycle         int16
	HalfTime                  int16
	SimulatorStep             int16
	SendStep                  int16
	RecvStep                  int16
	SenseBodyStep             int16
	LcmStep                   int16
	SayMsgSize                int16
	HearMax                   int16
	HearInc                   int16
	HearDecay                 int16
	CatchBanCycle             int16
	SlowDownFactor            int16
	UseOffside                int16
	KickOffOffside            int16
	_                         [2]byte
	OffsideKickMargin         int32
	AudioCutDist              int32
	DistQuantizeStep          int32
	LandmarkDistQuantizeStep  int32
	DirQuantizeStep           int32
	DistQuantizeStepL         int32
	DistQuantizeStepR         int32
	LandmarkDistQuantizeStepL int32
	LandmarkDistQuantizeStepR int32
	DirQuantizeStepL          int32
	DirQuantizeStepR          int32
	CoachMode                 int16
	CoachWithRefereeMode      int16
	UseOldCoachHear           int16
	OnlineCoachLookStep       int16
	SlownessOnTopForLeftTeam  int32
	SlownessOnTopForRightTeam int32
	KeepawayLength            int32
	KeepawayWidth             int32
	BallStuckArea             int32
	MaxTacklePower            int32
	MaxBackTacklePower        int32
	TackleDist                int32
	TackleBackDist            int32
	TackleWidth               int32
	StartGoalL                int16
	StartGoalR                int16
	FullstateL                int16
	FullstateR                int16
	DropBallTime              int16
	SynchMode                 int16
	SynchOffset               int16
	SynchMicroSleep           int16
	PointToBan                int16
	PointToDuration           int16
}

// PlayerParams is the v3 heterogeneous player parameter record.
type PlayerParams struct {
	PlayerTypes                      int16
	SubstituteMax                    int16
	PtMax                            int16
	_                                [2]byte
	PlayerSpeedMaxDeltaMin           int32
	PlayerSpeedMaxDeltaMax           int32
	StaminaIncMaxDeltaFactor         int32
	PlayerDecayDeltaMin              int32
	PlayerDecayDeltaMax              int32
	InertiaMomentDeltaFactor         int32
	DashPowerRateDeltaMin            int32
	DashPowerRateDeltaMax            int32
	PlayerSizeDeltaFactor            int32
	KickableMarginDeltaMin           int32
	KickableMarginDeltaMax           int32
	KickRandDeltaFactor              int32
	ExtraStaminaDeltaMin             int32
	ExtraStaminaDeltaMax             int32
	EffortMaxDeltaFactor             int32
	EffortMinDeltaFactor             int32
	RandomSeed                       int32
	NewDashPowerRateDeltaMin         int32
	NewDashPowerRateDeltaMax         int32
	NewStaminaIncMaxDeltaFactor      int32
	KickPowerRateDeltaMin            int32
	KickPowerRateDeltaMax            int32
	FoulDetectProbabilityDeltaFactor int32
	CatchableAreaLStretchMin         int32
	CatchableAreaLStretchMax         int32
	_                                int32
	AllowMultDefaultType             int16
	_                                [9]int16
}

// Record sizes on the wire.
var (
	SizePos            = binary.Size(Pos{})
	SizeTeamInfo       = binary.Size(TeamInfo{})
	SizeShowInfo       = binary.Size(ShowInfo{})
	SizeMsgInfo        = binary.Size(MsgInfo{})
	SizeDrawInfo       = binary.Size(DrawInfo{})
	SizeDispInfo       = binary.Size(DispInfo{})
	SizeBallInfo       = binary.Size(BallInfo{})
	SizePlayerInfo     = binary.Size(PlayerInfo{})
	SizeShowInfo2      = binary.Size(ShowInfo2{})
	SizeShortShowInfo2 = binary.Size(ShortShowInfo2{})
	SizePlayerTypeInfo = binary.Size(PlayerTypeInfo{})
	SizeServerParams   = binary.Size(ServerParams{})
	SizePlayerParams   = binary.Size(PlayerParams{})
)

// Decode fills v from the big endian bytes of data. data must hold at
// least binary.Size(v) bytes.
func Decode(data []byte, v any) error {
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, v); err != nil {
		return fmt.Errorf("legacy: decode %T: %w", v, err)
	}
	return nil
}

// Encode returns the big endian bytes of v.
func Encode(v any) []byte {
	var buf bytes.Buffer
	buf.Grow(binary.Size(v))
	// Writes to a bytes.Buffer of fixed-size values cannot fail.
	_ = binary.Write(&buf, binary.BigEndian, v)
	return buf.Bytes()
}

// Read reads one record into v.
func Read(r io.Reader, v any) error {
	return binary.Read(r, binary.BigEndian, v)
}

// Write writes one record.
func Write(w io.Writer, v any) error {
	return binary.Write(w, binary.BigEndian, v)
}

// CString returns b up to the first NUL.
func CString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// SetCString copies s into b, truncated to len(b)-1 bytes, and zeroes
// the rest.
func SetCString(b []byte, s string) {
	clear(b)
	if len(s) > len(b)-1 {
		s = s[:len(b)-1]
	}
	copy(b, s)
}
