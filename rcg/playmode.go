package rcg

import "fmt"

// PlayMode is the referee state of the match.
type PlayMode uint8

const (
	PMNull PlayMode = iota
	PMBeforeKickOff
	PMTimeOver
	PMPlayOn
	PMKickOffLeft
	PMKickOffRight
	PMKickInLeft
	PMKickInRight
	PMFreeKickLeft
	PMFreeKickRight
	PMCornerKickLeft
	PMCornerKickRight
	PMGoalKickLeft
	PMGoalKickRight
	PMAfterGoalLeft
	PMAfterGoalRight
	PMDropBall
	PMOffSideLeft
	PMOffSideRight
	PMPenaltyKickLeft
	PMPenaltyKickRight
	PMFirstHalfOver
	PMPause
	PMHuman
	PMFoulChargeLeft
	PMFoulChargeRight
	PMFoulPushLeft
	PMFoulPushRight
	PMFoulMultipleAttackerLeft
	PMFoulMultipleAttackerRight
	PMFoulBallOutLeft
	PMFoulBallOutRight
	PMBackPassLeft
	PMBackPassRight
	PMFreeKickFaultLeft
	PMFreeKickFaultRight
	PMCatchFaultLeft
	PMCatchFaultRight
	PMIndFreeKickLeft
	PMIndFreeKickRight
	PMPenaltySetupLeft
	PMPenaltySetupRight
	PMPenaltyReadyLeft
	PMPenaltyReadyRight
	PMPenaltyTakenLeft
	PMPenaltyTakenRight
	PMPenaltyMissLeft
	PMPenaltyMissRight
	PMPenaltyScoreLeft
	PMPenaltyScoreRight
	PMIllegalDefenseLeft
	PMIllegalDefenseRight
	PMMax
)

// playModeNames is indexed by PlayMode.
var playModeNames = [PMMax]string{
	"",
	"before_kick_off",
	"time_over",
	"play_on",
	"kick_off_l",
	"kick_off_r",
	"kick_in_l",
	"kick_in_r",
	"free_kick_l",
	"free_kick_r",
	"corner_kick_l",
	"corner_kick_r",
	"goal_kick_l",
	"goal_kick_r",
	"goal_l",
	"goal_r",
	"drop_ball",
	"offside_l",
	"offside_r",
	"penalty_kick_l",
	"penalty_kick_r",
	"first_half_over",
	"pause",
	"human_judge",
	"foul_charge_l",
	"foul_charge_r",
	"foul_push_l",
	"foul_push_r",
	"foul_multiple_attack_l",
	"foul_multiple_attack_r",
	"foul_ballout_l",
	"foul_ballout_r",
	"back_pass_l",
	"back_pass_r",
	"free_kick_fault_l",
	"free_kick_fault_r",
	"catch_fault_l",
	"catch_fault_r",
	"indirect_free_kick_l",
	"indirect_free_kick_r",
	"penalty_setup_l",
	"penalty_setup_r",
	"penalty_ready_l",
	"penalty_ready_r",
	"penalty_taken_l",
	"penalty_taken_r",
	"penalty_miss_l",
	"penalty_miss_r",
	"penalty_score_l",
	"penalty_score_r",
	"illegal_defense_l",
	"illegal_defense_r",
}

var playModeIDs = func() map[string]PlayMode {
	m := make(map[string]PlayMode, len(playModeNames))
	for i, name := range playModeNames {
		m[name] = PlayMode(i)
	}
	return m
}()

// String returns the wire name of the play mode.
func (pm PlayMode) String() string {
	if pm < PMMax {
		return playModeNames[pm]
	}
	return fmt.Sprintf("playmode(%d)", uint8(pm))
}

// Valid reports whether pm is a known play mode.
func (pm PlayMode) Valid() bool {
	return pm < PMMax
}

// ParsePlayMode resolves a wire name. Unknown names map to PMNull.
func ParsePlayMode(name string) PlayMode {
	if pm, ok := playModeIDs[name]; ok {
		return pm
	}
	return PMNull
}

// LookupPlayMode resolves a wire name and reports whether it is known.
func LookupPlayMode(name string) (PlayMode, bool) {
	pm, ok := playModeIDs[name]
	return pm, ok
}
