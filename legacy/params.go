package legacy

import (
	"math"

	"github.com/Neumenon/rcg/rcg"
)

// ============================================================
// Player type
// ============================================================

// PlayerTypeInfoToPlayerType decodes a player type record. Fields the
// record cannot carry keep their defaults. The trailing kick power,
// foul and catch fields only override the default when non-zero since
// old servers leave them empty.
func PlayerTypeInfoToPlayerType(from *PlayerTypeInfo) *rcg.PlayerType {
	t := rcg.NewPlayerType()
	t.ID = int(from.ID)
	t.PlayerSpeedMax = LongToDouble(from.PlayerSpeedMax)
	t.StaminaIncMax = LongToDouble(from.StaminaIncMax)
	t.PlayerDecay = LongToDouble(from.PlayerDecay)
	t.InertiaMoment = LongToDouble(from.InertiaMoment)
	t.DashPowerRate = LongToDouble(from.DashPowerRate)
	t.PlayerSize = LongToDouble(from.PlayerSize)
	t.KickableMargin = LongToDouble(from.KickableMargin)
	t.KickRand = LongToDouble(from.KickRand)
	t.ExtraStamina = LongToDouble(from.ExtraStamina)
	t.EffortMax = LongToDouble(from.EffortMax)
	t.EffortMin = LongToDouble(from.EffortMin)
	if from.KickPowerRate != 0 {
		t.KickPowerRate = LongToDouble(from.KickPowerRate)
	}
	if from.FoulDetectProbability != 0 {
		t.FoulDetectProbability = LongToDouble(from.FoulDetectProbability)
	}
	if from.CatchableAreaLStretch != 0 {
		t.CatchableAreaLStretch = LongToDouble(from.CatchableAreaLStretch)
	}
	return t
}

// PlayerTypeToPlayerTypeInfo encodes a player type record.
func PlayerTypeToPlayerTypeInfo(from *rcg.PlayerType, to *PlayerTypeInfo) {
	*to = PlayerTypeInfo{}
	to.ID = IntToShort(from.ID)
	to.PlayerSpeedMax = DoubleToLong(from.PlayerSpeedMax)
	to.StaminaIncMax = DoubleToLong(from.StaminaIncMax)
	to.PlayerDecay = DoubleToLong(from.PlayerDecay)
	to.InertiaMoment = DoubleToLong(from.InertiaMoment)
	to.DashPowerRate = DoubleToLong(from.DashPowerRate)
	to.PlayerSize = DoubleToLong(from.PlayerSize)
	to.KickableMargin = DoubleToLong(from.KickableMargin)
	to.KickRand = DoubleToLong(from.KickRand)
	to.ExtraStamina = DoubleToLong(from.ExtraStamina)
	to.EffortMax = DoubleToLong(from.EffortMax)
	to.EffortMin = DoubleToLong(from.EffortMin)
	to.KickPowerRate = DoubleToLong(from.KickPowerRate)
	to.FoulDetectProbability = DoubleToLong(from.FoulDetectProbability)
	to.CatchableAreaLStretch = DoubleToLong(from.CatchableAreaLStretch)
}

// ============================================================
// Player params
// ============================================================

// PlayerParamsToPlayerParam decodes a heterogeneous player parameter
// record.
func PlayerParamsToPlayerParam(from *PlayerParams) *rcg.PlayerParam {
	p := rcg.NewPlayerParam()
	p.PlayerTypes = int(from.PlayerTypes)
	p.SubstituteMax = int(from.SubstituteMax)
	p.PtMax = int(from.PtMax)

	p.PlayerSpeedMaxDeltaMin = LongToDouble(from.PlayerSpeedMaxDeltaMin)
	p.PlayerSpeedMaxDeltaMax = LongToDouble(from.PlayerSpeedMaxDeltaMax)
	p.StaminaIncMaxDeltaFactor = LongToDouble(from.StaminaIncMaxDeltaFactor)

	p.PlayerDecayDeltaMin = LongToDouble(from.PlayerDecayDeltaMin)
	p.PlayerDecayDeltaMax = LongToDouble(from.PlayerDecayDeltaMax)
	p.InertiaMomentDeltaFactor = LongToDouble(from.InertiaMomentDeltaFactor)

	p.DashPowerRateDeltaMin = LongToDouble(from.DashPowerRateDeltaMin)
	p.DashPowerRateDeltaMax = LongToDouble(from.DashPowerRateDeltaMax)
	p.PlayerSizeDeltaFactor = LongToDouble(from.PlayerSizeDeltaFactor)

	p.KickableMarginDeltaMin = LongToDouble(from.KickableMarginDeltaMin)
	p.KickableMarginDeltaMax = LongToDouble(from.KickableMarginDeltaMax)
	p.KickRandDeltaFactor = LongToDouble(from.KickRandDeltaFactor)

	p.ExtraStaminaDeltaMin = LongToDouble(from.ExtraStaminaDeltaMin)
	p.ExtraStaminaDeltaMax = LongToDouble(from.ExtraStaminaDeltaMax)
	p.EffortMaxDeltaFactor = LongToDouble(from.EffortMaxDeltaFactor)
	p.EffortMinDeltaFactor = LongToDouble(from.EffortMinDeltaFactor)

	p.RandomSeed = int(from.RandomSeed)

	p.NewDashPowerRateDeltaMin = LongToDouble(from.NewDashPowerRateDeltaMin)
	p.NewDashPowerRateDeltaMax = LongToDouble(from.NewDashPowerRateDeltaMax)
	p.NewStaminaIncMaxDeltaFactor = LongToDouble(from.NewStaminaIncMaxDeltaFactor)

	p.KickPowerRateDeltaMin = LongToDouble(from.KickPowerRateDeltaMin)
	p.KickPowerRateDeltaMax = LongToDouble(from.KickPowerRateDeltaMax)
	p.FoulDetectProbabilityDeltaFactor = LongToDouble(from.FoulDetectProbabilityDeltaFactor)
	p.CatchableAreaLStretchMin = LongToDouble(from.CatchableAreaLStretchMin)
	p.CatchableAreaLStretchMax = LongToDouble(from.CatchableAreaLStretchMax)

	p.AllowMultDefaultType = ShortToBool(from.AllowMultDefaultType)
	return p
}

// PlayerParamToPlayerParams encodes a heterogeneous player parameter
// record.
func PlayerParamToPlayerParams(from *rcg.PlayerParam, to *PlayerParams) {
	*to = PlayerParams{}
	to.PlayerTypes = IntToShort(from.PlayerTypes)
	to.SubstituteMax = IntToShort(from.SubstituteMax)
	to.PtMax = IntToShort(from.PtMax)

	to.PlayerSpeedMaxDeltaMin = DoubleToLong(from.PlayerSpeedMaxDeltaMin)
	to.PlayerSpeedMaxDeltaMax = DoubleToLong(from.PlayerSpeedMaxDeltaMax)
	to.StaminaIncMaxDeltaFactor = DoubleToLong(from.StaminaIncMaxDeltaFactor)

	to.PlayerDecayDeltaMin = DoubleToLong(from.PlayerDecayDeltaMin)
	to.PlayerDecayDeltaMax = DoubleToLong(from.PlayerDecayDeltaMax)
	to.InertiaMomentDeltaFactor = DoubleToLong(from.InertiaMomentDeltaFactor)

	to.DashPowerRateDeltaMin = DoubleToLong(from.DashPowerRateDeltaMin)
	to.DashPowerRateDeltaMax = DoubleToLong(from.DashPowerRateDeltaMax)
	to.PlayerSizeDeltaFactor = DoubleToLong(from.PlayerSizeDeltaFactor)

	to.KickableMarginDeltaMin = DoubleToLong(from.KickableMarginDeltaMin)
	to.KickableMarginDeltaMax = DoubleToLong(from.KickableMarginDeltaMax)
	to.KickRandDeltaFactor = DoubleToLong(from.KickRandDeltaFactor)

	to.ExtraStaminaDeltaMin = DoubleToLong(from.ExtraStaminaDeltaMin)
	to.ExtraStaminaDeltaMax = DoubleToLong(from.ExtraStaminaDeltaMax)
	to.EffortMaxDeltaFactor = DoubleToLong(from.EffortMaxDeltaFactor)
	to.EffortMinDeltaFactor = DoubleToLong(from.EffortMinDeltaFactor)

	to.RandomSeed = IntToLong(from.RandomSeed)

	to.NewDashPowerRateDeltaMin = DoubleToLong(from.NewDashPowerRateDeltaMin)
	to.NewDashPowerRateDeltaMax = DoubleToLong(from.NewDashPowerRateDeltaMax)
	to.NewStaminaIncMaxDeltaFactor = DoubleToLong(from.NewStaminaIncMaxDeltaFactor)

	to.KickPowerRateDeltaMin = DoubleToLong(from.KickPowerRateDeltaMin)
	to.KickPowerRateDeltaMax = DoubleToLong(from.KickPowerRateDeltaMax)
	to.FoulDetectProbabilityDeltaFactor = DoubleToLong(from.FoulDetectProbabilityDeltaFactor)
	to.CatchableAreaLStretchMin = DoubleToLong(from.CatchableAreaLStretchMin)
	to.CatchableAreaLStretchMax = DoubleToLong(from.CatchableAreaLStretchMax)

	to.AllowMultDefaultType = BoolToShort(from.AllowMultDefaultType)
}

// ============================================================
// Server params
// ============================================================

// LcmStep is the least common multiple of the simulator steps written
// into encoded server parameter records.
const LcmStep = 300

// ServerParamsToServerParam decodes a server parameter record. Fields
// that old servers filled with garbage fall back to defaults when the
// raw value is out of range.
func ServerParamsToServerParam(from *ServerParams) *rcg.ServerParam {
	p := rcg.NewServerParam()
	d := LongToDouble
	i := func(v int16) int { return int(v) }
	b := ShortToBool

	p.GoalWidth = d(from.GoalWidth)
	p.InertiaMoment = d(from.InertiaMoment)
	p.PlayerSize = d(from.PlayerSize)
	p.PlayerDecay = d(from.PlayerDecay)
	p.PlayerRand = d(from.PlayerRand)
	p.PlayerWeight = d(from.PlayerWeight)
	p.PlayerSpeedMax = d(from.PlayerSpeedMax)
	p.PlayerAccelMax = d(from.PlayerAccelMax)
	p.StaminaMax = d(from.StaminaMax)
	p.StaminaIncMax = d(from.StaminaInc)
	p.RecoverInit = d(from.RecoverInit)
	p.RecoverDecThr = d(from.RecoverDecThr)
	p.RecoverMin = d(from.RecoverMin)
	p.RecoverDec = d(from.RecoverDec)
	p.EffortInit = d(from.EffortInit)
	p.EffortDecThr = d(from.EffortDecThr)
	p.EffortMin = d(from.EffortMin)
	p.EffortDec = d(from.EffortDec)
	p.EffortIncThr = d(from.EffortIncThr)
	p.EffortInc = d(from.EffortInc)
	p.KickRand = d(from.KickRand)
	p.TeamActuatorNoise = b(from.TeamActuatorNoise)
	p.PlayerRandFactorL = d(from.PlayerRandFactorL)
	p.PlayerRandFactorR = d(from.PlayerRandFactorR)
	p.KickRandFactorL = d(from.KickRandFactorL)
	p.KickRandFactorR = d(from.KickRandFactorR)

	p.BallSize = d(from.BallSize)
	p.BallDecay = d(from.BallDecay)
	p.BallRand = d(from.BallRand)
	p.BallWeight = d(from.BallWeight)
	p.BallSpeedMax = d(from.BallSpeedMax)
	p.BallAccelMax = d(from.BallAccelMax)

	p.DashPowerRate = d(from.DashPowerRate)
	p.KickPowerRate = d(from.KickPowerRate)
	p.KickableMargin = d(from.KickableMargin)
	p.ControlRadius = d(from.ControlRadius)

	p.MaxPower = d(from.MaxPower)
	p.MinPower = d(from.MinPower)
	p.MaxMoment = d(from.MaxMoment)
	p.MinMoment = d(from.MinMoment)
	p.MaxNeckMoment = d(from.MaxNeckMoment)
	p.MinNeckMoment = d(from.MinNeckMoment)
	p.MaxNeckAngle = d(from.MaxNeckAngle)
	p.MinNeckAngle = d(from.MinNeckAngle)
	p.VisibleAngle = d(from.VisibleAngle)
	p.VisibleDistance = d(from.VisibleDistance)

	p.WindDir = d(from.WindDir)
	p.WindForce = d(from.WindForce)
	p.WindAngle = d(from.WindAngle)
	p.WindRand = d(from.WindRand)

	p.CatchableAreaL = d(from.CatchableAreaL)
	p.CatchableAreaW = d(from.CatchableAreaW)
	p.CatchProbability = d(from.CatchProbability)
	p.GoalieMaxMoves = i(from.GoalieMaxMoves)

	p.CornerKickMargin = d(from.CornerKickMargin)
	p.OffsideActiveAreaSize = d(from.OffsideActiveAreaSize)

	p.WindNone = b(from.WindNone)
	p.UseWindRandom = b(from.UseWindRandom)

	p.CoachSayCountMax = i(from.SayCoachCountMax)
	p.CoachSayMsgSize = i(from.SayCoachMsgSize)
	p.ClangWinSize = i(from.ClangWinSize)
	p.ClangDefineWin = i(from.ClangDefineWin)
	p.ClangMetaWin = i(from.ClangMetaWin)
	p.ClangAdviceWin = i(from.ClangAdviceWin)
	p.ClangInfoWin = i(from.ClangInfoWin)
	p.ClangMessDelay = i(from.ClangMessDelay)
	p.ClangMessPerCycle = i(from.ClangMessPerCycle)

	p.HalfTime = i(from.HalfTime)
	p.SimulatorStep = i(from.SimulatorStep)
	p.SendStep = i(from.SendStep)
	p.RecvStep = i(from.RecvStep)
	p.SenseBodyStep = i(from.SenseBodyStep)

	p.PlayerSayMsgSize = i(from.SayMsgSize)
	p.PlayerHearMax = i(from.HearMax)
	p.PlayerHearInc = i(from.HearInc)
	p.PlayerHearDecay = i(from.HearDecay)
	p.CatchBanCycle = i(from.CatchBanCycle)
	p.SlowDownFactor = i(from.SlowDownFactor)

	p.UseOffside = b(from.UseOffside)
	p.KickoffOffside = b(from.KickOffOffside)
	p.OffsideKickMargin = d(from.OffsideKickMargin)
	p.AudioCutDist = d(from.AudioCutDist)
	p.DistQuantizeStep = d(from.DistQuantizeStep)
	p.LandmarkDistQuantizeStep = d(from.LandmarkDistQuantizeStep)

	p.CoachMode = b(from.CoachMode)
	p.CoachWithRefereeMode = b(from.CoachWithRefereeMode)
	p.UseOldCoachHear = b(from.UseOldCoachHear)
	p.OnlineCoachLookStep = i(from.OnlineCoachLookStep)

	p.SlownessOnTopForLeftTeam = d(from.SlownessOnTopForLeftTeam)
	p.SlownessOnTopForRightTeam = d(from.SlownessOnTopForRightTeam)
	p.KeepawayLength = d(from.KeepawayLength)
	p.KeepawayWidth = d(from.KeepawayWidth)

	p.BallStuckArea = 3.0
	if v := d(from.BallStuckArea); math.Abs(v) < 1000.0 {
		p.BallStuckArea = v
	}
	p.MaxTacklePower = p.MaxPower
	if v := d(from.MaxTacklePower); 0.0 < v && v < 200.0 {
		p.MaxTacklePower = v
	}
	p.MaxBackTacklePower = p.MaxPower
	if v := d(from.MaxBackTacklePower); 0.0 < v && v < 200.0 {
		p.MaxBackTacklePower = v
	}
	p.TackleDist = 2.0
	if v := d(from.TackleDist); 0.0 <= v && v < 3.0 {
		p.TackleDist = v
	}
	p.TackleBackDist = 0.5
	if v := d(from.TackleBackDist); 0.0 <= v && v < 1.0 {
		p.TackleBackDist = v
	}
	p.TackleWidth = 1.0
	if v := d(from.TackleWidth); 0.0 < v && v < 2.0 {
		p.TackleWidth = v
	}

	p.StartGoalL = i(from.StartGoalL)
	p.StartGoalR = i(from.StartGoalR)
	p.FullstateL = b(from.FullstateL)
	p.FullstateR = b(from.FullstateR)
	p.DropBallTime = i(from.DropBallTime)
	p.SynchMode = b(from.SynchMode)
	p.SynchOffset = i(from.SynchOffset)
	p.SynchMicroSleep = i(from.SynchMicroSleep)
	p.PointToBan = i(from.PointToBan)
	p.PointToDuration = i(from.PointToDuration)
	return p
}

// ServerParamToServerParams encodes a server parameter record. The
// control radius width and the direction and per-side quantize steps
// are not part of the canonical model and are written as zero.
func ServerParamToServerParams(from *rcg.ServerParam, to *ServerParams) {
	*to = ServerParams{}
	l := DoubleToLong
	s := IntToShort
	b := BoolToShort

	to.GoalWidth = l(from.GoalWidth)
	to.InertiaMoment = l(from.InertiaMoment)
	to.PlayerSize = l(from.PlayerSize)
	to.PlayerDecay = l(from.PlayerDecay)
	to.PlayerRand = l(from.PlayerRand)
	to.PlayerWeight = l(from.PlayerWeight)
	to.PlayerSpeedMax = l(from.PlayerSpeedMax)
	to.PlayerAccelMax = l(from.PlayerAccelMax)
	to.StaminaMax = l(from.StaminaMax)
	to.StaminaInc = l(from.StaminaIncMax)
	to.RecoverInit = l(from.RecoverInit)
	to.RecoverDecThr = l(from.RecoverDecThr)
	to.RecoverMin = l(from.RecoverMin)
	to.RecoverDec = l(from.RecoverDec)
	to.EffortInit = l(from.EffortInit)
	to.EffortDecThr = l(from.EffortDecThr)
	to.EffortMin = l(from.EffortMin)
	to.EffortDec = l(from.EffortDec)
	to.EffortIncThr = l(from.EffortIncThr)
	to.EffortInc = l(from.EffortInc)
	to.KickRand = l(from.KickRand)
	to.TeamActuatorNoise = b(from.TeamActuatorNoise)
	to.PlayerRandFactorL = l(from.PlayerRandFactorL)
	to.PlayerRandFactorR = l(from.PlayerRandFactorR)
	to.KickRandFactorL = l(from.KickRandFactorL)
	to.KickRandFactorR = l(from.KickRandFactorR)

	to.BallSize = l(from.BallSize)
	to.BallDecay = l(from.BallDecay)
	to.BallRand = l(from.BallRand)
	to.BallWeight = l(from.BallWeight)
	to.BallSpeedMax = l(from.BallSpeedMax)
	to.BallAccelMax = l(from.BallAccelMax)

	to.DashPowerRate = l(from.DashPowerRate)
	to.KickPowerRate = l(from.KickPowerRate)
	to.KickableMargin = l(from.KickableMargin)
	to.ControlRadius = l(from.ControlRadius)

	to.MaxPower = l(from.MaxPower)
	to.MinPower = l(from.MinPower)
	to.MaxMoment = l(from.MaxMoment)
	to.MinMoment = l(from.MinMoment)
	to.MaxNeckMoment = l(from.MaxNeckMoment)
	to.MinNeckMoment = l(from.MinNeckMoment)
	to.MaxNeckAngle = l(from.MaxNeckAngle)
	to.MinNeckAngle = l(from.MinNeckAngle)
	to.VisibleAngle = l(from.VisibleAngle)
	to.VisibleDistance = l(from.VisibleDistance)

	to.WindDir = l(from.WindDir)
	to.WindForce = l(from.WindForce)
	to.WindAngle = l(from.WindAngle)
	to.WindRand = l(from.WindRand)

	to.KickableArea = l(from.PlayerSize + from.KickableMargin + from.BallSize)
	to.CatchableAreaL = l(from.CatchableAreaL)
	to.CatchableAreaW = l(from.CatchableAreaW)
	to.CatchProbability = l(from.CatchProbability)
	to.GoalieMaxMoves = s(from.GoalieMaxMoves)

	to.CornerKickMargin = l(from.CornerKickMargin)
	to.OffsideActiveAreaSize = l(from.OffsideActiveAreaSize)

	to.WindNone = b(from.WindNone)
	to.UseWindRandom = b(from.UseWindRandom)

	to.SayCoachCountMax = s(from.CoachSayCountMax)
	to.SayCoachMsgSize = s(from.CoachSayMsgSize)
	to.ClangWinSize = s(from.ClangWinSize)
	to.ClangDefineWin = s(from.ClangDefineWin)
	to.ClangMetaWin = s(from.ClangMetaWin)
	to.ClangAdviceWin = s(from.ClangAdviceWin)
	to.ClangInfoWin = s(from.ClangInfoWin)
	to.ClangMessDelay = s(from.ClangMessDelay)
	to.ClangMessPerCycle = s(from.ClangMessPerCycle)

	to.HalfTime = s(from.HalfTime)
	to.SimulatorStep = s(from.SimulatorStep)
	to.SendStep = s(from.SendStep)
	to.RecvStep = s(from.RecvStep)
	to.SenseBodyStep = s(from.SenseBodyStep)
	to.LcmStep = LcmStep

	to.SayMsgSize = s(from.PlayerSayMsgSize)
	to.HearMax = s(from.PlayerHearMax)
	to.HearInc = s(from.PlayerHearInc)
	to.HearDecay = s(from.PlayerHearDecay)
	to.CatchBanCycle = s(from.CatchBanCycle)
	to.SlowDownFactor = s(from.SlowDownFactor)

	to.UseOffside = b(from.UseOffside)
	to.KickOffOffside = b(from.KickoffOffside)
	to.OffsideKickMargin = l(from.OffsideKickMargin)
	to.AudioCutDist = l(from.AudioCutDist)
	to.DistQuantizeStep = l(from.DistQuantizeStep)
	to.LandmarkDistQuantizeStep = l(from.LandmarkDistQuantizeStep)

	to.CoachMode = b(from.CoachMode)
	to.CoachWithRefereeMode = b(from.CoachWithRefereeMode)
	to.UseOldCoachHear = b(from.UseOldCoachHear)
	to.OnlineCoachLookStep = s(from.OnlineCoachLookStep)

	to.SlownessOnTopForLeftTeam = l(from.SlownessOnTopForLeftTeam)
	to.SlownessOnTopForRightTeam = l(from.SlownessOnTopForRightTeam)
	to.KeepawayLength = l(from.KeepawayLength)
	to.KeepawayWidth = l(from.KeepawayWidth)
	to.BallStuckArea = l(from.BallStuckArea)
	to.MaxTacklePower = l(from.MaxTacklePower)
	to.MaxBackTacklePower = l(from.MaxBackTacklePower)
	to.TackleDist = l(from.TackleDist)
	to.TackleBackDist = l(from.TackleBackDist)
	to.TackleWidth = l(from.TackleWidth)

	to.StartGoalL = s(from.StartGoalL)
	to.StartGoalR = s(from.StartGoalR)
	to.FullstateL = b(from.FullstateL)
	to.FullstateR = b(from.FullstateR)
	to.DropBallTime = s(from.DropBallTime)
	to.SynchMode = b(from.SynchMode)
	to.SynchOffset = s(from.SynchOffset)
	to.SynchMicroSleep = s(from.SynchMicroSleep)
	to.PointToBan = s(from.PointToBan)
	to.PointToDuration = s(from.PointToDuration)
}
