package rcg

// Player status flags.
const (
	Disable        uint32 = 0x00000000
	Stand          uint32 = 0x00000001
	Kick           uint32 = 0x00000002
	KickFault      uint32 = 0x00000004
	Goalie         uint32 = 0x00000008
	Catch          uint32 = 0x00000010
	CatchFault     uint32 = 0x00000020
	BallToPlayer   uint32 = 0x00000040
	PlayerToBall   uint32 = 0x00000080
	Discard        uint32 = 0x00000100
	Lost           uint32 = 0x00000200
	BallCollide    uint32 = 0x00000400
	PlayerCollide  uint32 = 0x00000800
	Tackle         uint32 = 0x00001000
	TackleFault    uint32 = 0x00002000
	BackPass       uint32 = 0x00004000
	FreeKickFault  uint32 = 0x00008000
	PostCollide    uint32 = 0x00010000
	FoulCharged    uint32 = 0x00020000
	YellowCard     uint32 = 0x00040000
	RedCard        uint32 = 0x00080000
	IllegalDefense uint32 = 0x00100000
)

// Player is the state of one player at one cycle.
//
// Optional float fields hold Unset when absent and optional counters
// hold UnsetCount; the Has* predicates compare against the sentinels.
type Player struct {
	Side        Side
	Unum        int16
	Type        int16
	HighQuality bool
	State       uint32

	X, Y   float32
	VX, VY float32
	Body   float32
	Neck   float32

	PointX, PointY float32
	ViewWidth      float32

	FocusSide   Side
	FocusUnum   int16
	FocusDist   float32
	FocusDir    float32
	FocusPointX float32
	FocusPointY float32

	Stamina         float32
	Effort          float32
	Recovery        float32
	StaminaCapacity float32

	KickCount        uint16
	DashCount        uint16
	TurnCount        uint16
	CatchCount       uint16
	MoveCount        uint16
	TurnNeckCount    uint16
	ChangeViewCount  uint16
	SayCount         uint16
	TackleCount      uint16
	PointtoCount     uint16
	AttentiontoCount uint16
	ChangeFocusCount uint16
}

// NewPlayer returns a player with every optional field unset.
func NewPlayer() Player {
	return Player{
		Side:             Neutral,
		Type:             -1,
		HighQuality:      true,
		FocusSide:        Neutral,
		VX:               Unset,
		VY:               Unset,
		Neck:             Unset,
		PointX:           Unset,
		PointY:           Unset,
		ViewWidth:        Unset,
		FocusDist:        Unset,
		FocusDir:         Unset,
		FocusPointX:      Unset,
		FocusPointY:      Unset,
		Stamina:          Unset,
		Effort:           Unset,
		Recovery:         Unset,
		StaminaCapacity:  -1,
		KickCount:        UnsetCount,
		DashCount:        UnsetCount,
		TurnCount:        UnsetCount,
		CatchCount:       UnsetCount,
		MoveCount:        UnsetCount,
		TurnNeckCount:    UnsetCount,
		ChangeViewCount:  UnsetCount,
		SayCount:         UnsetCount,
		TackleCount:      UnsetCount,
		PointtoCount:     UnsetCount,
		AttentiontoCount: UnsetCount,
		ChangeFocusCount: UnsetCount,
	}
}

func (p *Player) HasType() bool            { return p.Type >= 0 }
func (p *Player) HasVelocity() bool        { return p.VX != Unset }
func (p *Player) HasNeck() bool            { return p.Neck != Unset }
func (p *Player) HasView() bool            { return p.ViewWidth != Unset }
func (p *Player) HasStamina() bool         { return p.Stamina != Unset }
func (p *Player) HasStaminaCapacity() bool { return p.StaminaCapacity >= 0 }
func (p *Player) HasCommandCount() bool    { return p.KickCount != UnsetCount }
func (p *Player) IsPointing() bool         { return p.PointX != Unset && p.PointY != Unset }
func (p *Player) IsFocusing() bool         { return p.FocusSide != Neutral }
func (p *Player) HasFocusPoint() bool      { return p.FocusPointX != Unset && p.FocusPointY != Unset }

// IsAlive reports whether the player is on the field.
func (p *Player) IsAlive() bool { return p.State != Disable }

func (p *Player) IsKicking() bool        { return p.State&Kick != 0 && p.State&KickFault == 0 }
func (p *Player) IsKickingFault() bool   { return p.State&KickFault != 0 }
func (p *Player) IsCatching() bool       { return p.State&Catch != 0 && p.State&CatchFault == 0 }
func (p *Player) IsCatchingFault() bool  { return p.State&CatchFault != 0 }
func (p *Player) IsTackling() bool       { return p.State&Tackle != 0 && p.State&TackleFault == 0 }
func (p *Player) IsTacklingFault() bool  { return p.State&TackleFault != 0 }
func (p *Player) IsCollidedBall() bool   { return p.State&BallCollide != 0 }
func (p *Player) IsCollidedPlayer() bool { return p.State&PlayerCollide != 0 }
func (p *Player) IsFoulCharged() bool    { return p.State&FoulCharged != 0 }
func (p *Player) HasYellowCard() bool    { return p.State&YellowCard != 0 }
func (p *Player) HasRedCard() bool       { return p.State&RedCard != 0 }
func (p *Player) IsGoalie() bool         { return p.State&Goalie != 0 }
func (p *Player) IsIllegalDefense() bool { return p.State&IllegalDefense != 0 }

// Head returns the global face direction in degrees.
func (p *Player) Head() float32 {
	if !p.HasNeck() {
		return p.Body
	}
	return p.Body + p.Neck
}
