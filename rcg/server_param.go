package rcg

// ServerParam is the rcssserver configuration recorded in a game log.
// Field order follows the parameter table of rcssserver.
type ServerParam struct {
	GoalWidth                 float64
	InertiaMoment             float64
	PlayerSize                float64
	PlayerDecay               float64
	PlayerRand                float64
	PlayerWeight              float64
	PlayerSpeedMax            float64
	PlayerAccelMax            float64
	StaminaMax                float64
	StaminaIncMax             float64
	RecoverInit               float64
	RecoverDecThr             float64
	RecoverMin                float64
	RecoverDec                float64
	EffortInit                float64
	EffortDecThr              float64
	EffortMin                 float64
	EffortDec                 float64
	EffortIncThr              float64
	EffortInc                 float64
	KickRand                  float64
	TeamActuatorNoise         bool
	PlayerRandFactorL         float64
	PlayerRandFactorR         float64
	KickRandFactorL           float64
	KickRandFactorR           float64
	BallSize                  float64
	BallDecay                 float64
	BallRand                  float64
	BallWeight                float64
	BallSpeedMax              float64
	BallAccelMax              float64
	DashPowerRate             float64
	KickPowerRate             float64
	KickableMargin            float64
	ControlRadius             float64
	CatchProbability          float64
	CatchableAreaL            float64
	CatchableAreaW            float64
	GoalieMaxMoves            int
	MaxPower                  float64
	MinPower                  float64
	MaxMoment                 float64
	MinMoment                 float64
	MaxNeckMoment             float64
	MinNeckMoment             float64
	MaxNeckAngle              float64
	MinNeckAngle              float64
	VisibleAngle              float64
	VisibleDistance           float64
	AudioCutDist              float64
	DistQuantizeStep          float64
	LandmarkDistQuantizeStep  float64
	CornerKickMargin          float64
	WindDir                   float64
	WindForce                 float64
	WindAngle                 float64
	WindRand                  float64
	WindNone                  bool
	UseWindRandom             bool
	HalfTime                  int
	DropBallTime              int
	Port                      int
	CoachPort                 int
	OnlineCoachPort           int
	CoachSayCountMax          int
	CoachSayMsgSize           int
	SimulatorStep             int
	SendStep                  int
	RecvStep                  int
	SenseBodyStep             int
	PlayerSayMsgSize          int
	ClangWinSize              int
	ClangDefineWin            int
	ClangMetaWin              int
	ClangAdviceWin            int
	ClangInfoWin              int
	ClangDelWin               int
	ClangRuleWin              int
	ClangMessDelay            int
	ClangMessPerCycle         int
	PlayerHearMax             int
	PlayerHearInc             int
	PlayerHearDecay           int
	CatchBanCycle             int
	CoachMode                 bool
	CoachWithRefereeMode      bool
	UseOldCoachHear           bool
	OnlineCoachLookStep       int
	UseOffside                bool
	OffsideKickMargin         float64
	KickoffOffside            bool
	Verbose                   bool
	OffsideActiveAreaSize     float64
	SlowDownFactor            int
	SynchMode                 bool
	SynchOffset               int
	SynchMicroSleep           int
	StartGoalL                int
	StartGoalR                int
	FullstateL                bool
	FullstateR                bool
	SlownessOnTopForLeftTeam  float64
	SlownessOnTopForRightTeam float64
	LandmarkFile              string
	SendComms                 bool
	TextLogging               bool
	GameLogging               bool
	GameLogVersion            int
	TextLogDir                string
	GameLogDir                string
	TextLogFixedName          string
	GameLogFixedName          string
	TextLogFixed              bool
	GameLogFixed              bool
	TextLogDated              bool
	GameLogDated              bool
	LogDateFormat             string
	LogTimes                  bool
	RecordMessages            bool
	TextLogCompression        int
	GameLogCompression        int
	Profile                   bool
	PointToBan                int
	PointToDuration           int
	TackleDist                float64
	TackleBackDist            float64
	TackleWidth               float64
	TackleExponent            float64
	TackleCycles              int
	TacklePowerRate           float64
	FreeformWaitPeriod        int
	FreeformSendPeriod        int
	FreeKickFaults            bool
	BackPasses                bool
	ProperGoalKicks           bool
	StoppedBallVel            float64
	MaxGoalKicks              int
	AutoMode                  bool
	KickOffWait               int
	ConnectWait               int
	GameOverWait              int
	TeamLStart                string
	TeamRStart                string
	KeepawayMode              bool
	KeepawayLength            float64
	KeepawayWidth             float64
	KeepawayLogging           bool
	KeepawayLogDir            string
	KeepawayLogFixedName      string
	KeepawayLogFixed          bool
	KeepawayLogDated          bool
	KeepawayStart             int
	NrNormalHalfs             int
	NrExtraHalfs              int
	PenaltyShootOuts          bool
	PenBeforeSetupWait        int
	PenSetupWait              int
	PenReadyWait              int
	PenTakenWait              int
	PenNrKicks                int
	PenMaxExtraKicks          int
	PenDistX                  float64
	PenRandomWinner           bool
	PenMaxGoalieDistX         float64
	PenAllowMultKicks         bool
	PenCoachMovesPlayers      bool
	BallStuckArea             float64
	CoachMsgFile              string
	MaxTacklePower            float64
	MaxBackTacklePower        float64
	PlayerSpeedMaxMin         float64
	ExtraStamina              float64
	SynchSeeOffset            int
	MaxMonitors               int
	ExtraHalfTime             int
	StaminaCapacity           float64
	MaxDashAngle              float64
	MinDashAngle              float64
	DashAngleStep             float64
	SideDashRate              float64
	BackDashRate              float64
	MaxDashPower              float64
	MinDashPower              float64
	TackleRandFactor          float64
	FoulDetectProbability     float64
	FoulExponent              float64
	FoulCycles                int
	GoldenGoal                bool
	RedCardProbability        float64
	IllegalDefenseDuration    int
	IllegalDefenseNumber      int
	IllegalDefenseDistX       float64
	IllegalDefenseWidth       float64
	FixedTeamnameL            string
	FixedTeamnameR            string
	MaxCatchAngle             float64
	MinCatchAngle             float64
	DistNoiseRate             float64
	FocusDistNoiseRate        float64
	LandDistNoiseRate         float64
	LandFocusDistNoiseRate    float64
}

// NewServerParam returns the server defaults.
func NewServerParam() *ServerParam {
	return &ServerParam{
		GoalWidth:                 14.02,
		InertiaMoment:             5.0,
		PlayerSize:                0.3,
		PlayerDecay:               0.4,
		PlayerRand:                0.1,
		PlayerWeight:              60.0,
		PlayerSpeedMax:            1.2,
		PlayerAccelMax:            1.0,
		StaminaMax:                4000.0,
		StaminaIncMax:             45.0,
		RecoverInit:               1.0,
		RecoverDecThr:             0.3,
		RecoverMin:                0.5,
		RecoverDec:                0.002,
		EffortInit:                1.0,
		EffortDecThr:              0.3,
		EffortMin:                 0.6,
		EffortDec:                 0.005,
		EffortIncThr:              0.6,
		EffortInc:                 0.01,
		KickRand:                  0.1,
		PlayerRandFactorL:         1.0,
		PlayerRandFactorR:         1.0,
		KickRandFactorL:           1.0,
		KickRandFactorR:           1.0,
		BallSize:                  0.085,
		BallDecay:                 0.94,
		BallRand:                  0.05,
		BallWeight:                0.2,
		BallSpeedMax:              3.0,
		BallAccelMax:              2.7,
		DashPowerRate:             0.006,
		KickPowerRate:             0.027,
		KickableMargin:            0.7,
		ControlRadius:             2.0,
		CatchProbability:          1.0,
		CatchableAreaL:            1.2,
		CatchableAreaW:            1.0,
		GoalieMaxMoves:            2,
		MaxPower:                  100.0,
		MinPower:                  -100.0,
		MaxMoment:                 180.0,
		MinMoment:                 -180.0,
		MaxNeckMoment:             180.0,
		MinNeckMoment:             -180.0,
		MaxNeckAngle:              90.0,
		MinNeckAngle:              -90.0,
		VisibleAngle:              90.0,
		VisibleDistance:           3.0,
		AudioCutDist:              50.0,
		DistQuantizeStep:          0.1,
		LandmarkDistQuantizeStep:  0.01,
		CornerKickMargin:          1.0,
		HalfTime:                  300,
		DropBallTime:              200,
		Port:                      6000,
		CoachPort:                 6001,
		OnlineCoachPort:           6002,
		CoachSayCountMax:          128,
		CoachSayMsgSize:           128,
		SimulatorStep:             100,
		SendStep:                  150,
		RecvStep:                  10,
		SenseBodyStep:             100,
		PlayerSayMsgSize:          10,
		ClangWinSize:              300,
		ClangDefineWin:            1,
		ClangMetaWin:              1,
		ClangAdviceWin:            1,
		ClangInfoWin:              1,
		ClangDelWin:               1,
		ClangRuleWin:              1,
		ClangMessDelay:            50,
		ClangMessPerCycle:         1,
		PlayerHearMax:             1,
		PlayerHearInc:             1,
		PlayerHearDecay:           1,
		CatchBanCycle:             5,
		OnlineCoachLookStep:       100,
		UseOffside:                true,
		OffsideKickMargin:         9.15,
		KickoffOffside:            true,
		OffsideActiveAreaSize:     2.5,
		SlowDownFactor:            1,
		SynchOffset:               60,
		SynchMicroSleep:           1,
		SlownessOnTopForLeftTeam:  1.0,
		SlownessOnTopForRightTeam: 1.0,
		TextLogging:               true,
		GameLogging:               true,
		GameLogVersion:            4,
		TextLogDir:                ".",
		GameLogDir:                ".",
		TextLogFixedName:          "rcssserver",
		GameLogFixedName:          "rcssserver",
		TextLogDated:              true,
		GameLogDated:              true,
		LogDateFormat:             "%Y%m%d%H%M-",
		PointToBan:                5,
		PointToDuration:           20,
		TackleDist:                2.0,
		TackleBackDist:            0.5,
		TackleWidth:               1.0,
		TackleExponent:            6.0,
		TackleCycles:              10,
		TacklePowerRate:           0.027,
		FreeformWaitPeriod:        600,
		FreeformSendPeriod:        20,
		FreeKickFaults:            true,
		BackPasses:                true,
		StoppedBallVel:            0.01,
		MaxGoalKicks:              3,
		KickOffWait:               100,
		ConnectWait:               300,
		GameOverWait:              100,
		KeepawayLength:            20.0,
		KeepawayWidth:             20.0,
		KeepawayLogging:           true,
		KeepawayLogDir:            ".",
		KeepawayLogFixedName:      "rcssserver",
		KeepawayLogDated:          true,
		KeepawayStart:             -1,
		NrNormalHalfs:             2,
		NrExtraHalfs:              2,
		PenaltyShootOuts:          true,
		PenBeforeSetupWait:        30,
		PenSetupWait:              100,
		PenReadyWait:              50,
		PenTakenWait:              200,
		PenNrKicks:                5,
		PenMaxExtraKicks:          10,
		PenDistX:                  42.5,
		PenMaxGoalieDistX:         14.0,
		PenAllowMultKicks:         true,
		PenCoachMovesPlayers:      true,
		BallStuckArea:             3.0,
		MaxTacklePower:            100.0,
		MaxBackTacklePower:        50.0,
		PlayerSpeedMaxMin:         0.8,
		SynchSeeOffset:            30,
		MaxMonitors:               -1,
		ExtraHalfTime:             300,
		StaminaCapacity:           -1.0,
		DashAngleStep:             90.0,
		SideDashRate:              0.25,
		BackDashRate:              0.5,
		MaxDashPower:              100.0,
		MinDashPower:              -100.0,
		TackleRandFactor:          1.0,
		FoulDetectProbability:     0.5,
		FoulExponent:              10.0,
		FoulCycles:                5,
		GoldenGoal:                true,
		IllegalDefenseDuration:    20,
		IllegalDefenseDistX:       16.5,
		IllegalDefenseWidth:       40.32,
		MaxCatchAngle:             180.0,
		MinCatchAngle:             -180.0,
		DistNoiseRate:             0.0125,
		FocusDistNoiseRate:        0.0125,
		LandDistNoiseRate:         0.00125,
		LandFocusDistNoiseRate:    0.00125,
	}
}

var serverParamRegistry = newRegistry("server_param", []param[ServerParam]{
	{"goal_width", func(p *ServerParam) any { return &p.GoalWidth }},
	{"inertia_moment", func(p *ServerParam) any { return &p.InertiaMoment }},
	{"player_size", func(p *ServerParam) any { return &p.PlayerSize }},
	{"player_decay", func(p *ServerParam) any { return &p.PlayerDecay }},
	{"player_rand", func(p *ServerParam) any { return &p.PlayerRand }},
	{"player_weight", func(p *ServerParam) any { return &p.PlayerWeight }},
	{"player_speed_max", func(p *ServerParam) any { return &p.PlayerSpeedMax }},
	{"player_accel_max", func(p *ServerParam) any { return &p.PlayerAccelMax }},
	{"stamina_max", func(p *ServerParam) any { return &p.StaminaMax }},
	{"stamina_inc_max", func(p *ServerParam) any { return &p.StaminaIncMax }},
	{"recover_init", func(p *ServerParam) any { return &p.RecoverInit }},
	{"recover_dec_thr", func(p *ServerParam) any { return &p.RecoverDecThr }},
	{"recover_min", func(p *ServerParam) any { return &p.RecoverMin }},
	{"recover_dec", func(p *ServerParam) any { return &p.RecoverDec }},
	{"effort_init", func(p *ServerParam) any { return &p.EffortInit }},
	{"effort_dec_thr", func(p *ServerParam) any { return &p.EffortDecThr }},
	{"effort_min", func(p *ServerParam) any { return &p.EffortMin }},
	{"effort_dec", func(p *ServerParam) any { return &p.EffortDec }},
	{"effort_inc_thr", func(p *ServerParam) any { return &p.EffortIncThr }},
	{"effort_inc", func(p *ServerParam) any { return &p.EffortInc }},
	{"kick_rand", func(p *ServerParam) any { return &p.KickRand }},
	{"team_actuator_noise", func(p *ServerParam) any { return &p.TeamActuatorNoise }},
	{"prand_factor_l", func(p *ServerParam) any { return &p.PlayerRandFactorL }},
	{"prand_factor_r", func(p *ServerParam) any { return &p.PlayerRandFactorR }},
	{"kick_rand_factor_l", func(p *ServerParam) any { return &p.KickRandFactorL }},
	{"kick_rand_factor_r", func(p *ServerParam) any { return &p.KickRandFactorR }},
	{"ball_size", func(p *ServerParam) any { return &p.BallSize }},
	{"ball_decay", func(p *ServerParam) any { return &p.BallDecay }},
	{"ball_rand", func(p *ServerParam) any { return &p.BallRand }},
	{"ball_weight", func(p *ServerParam) any { return &p.BallWeight }},
	{"ball_speed_max", func(p *ServerParam) any { return &p.BallSpeedMax }},
	{"ball_accel_max", func(p *ServerParam) any { return &p.BallAccelMax }},
	{"dash_power_rate", func(p *ServerParam) any { return &p.DashPowerRate }},
	{"kick_power_rate", func(p *ServerParam) any { return &p.KickPowerRate }},
	{"kickable_margin", func(p *ServerParam) any { return &p.KickableMargin }},
	{"control_radius", func(p *ServerParam) any { return &p.ControlRadius }},
	{"catch_probability", func(p *ServerParam) any { return &p.CatchProbability }},
	{"catchable_area_l", func(p *ServerParam) any { return &p.CatchableAreaL }},
	{"catchable_area_w", func(p *ServerParam) any { return &p.CatchableAreaW }},
	{"goalie_max_moves", func(p *ServerParam) any { return &p.GoalieMaxMoves }},
	{"maxpower", func(p *ServerParam) any { return &p.MaxPower }},
	{"minpower", func(p *ServerParam) any { return &p.MinPower }},
	{"maxmoment", func(p *ServerParam) any { return &p.MaxMoment }},
	{"minmoment", func(p *ServerParam) any { return &p.MinMoment }},
	{"maxneckmoment", func(p *ServerParam) any { return &p.MaxNeckMoment }},
	{"minneckmoment", func(p *ServerParam) any { return &p.MinNeckMoment }},
	{"maxneckang", func(p *ServerParam) any { return &p.MaxNeckAngle }},
	{"minneckang", func(p *ServerParam) any { return &p.MinNeckAngle }},
	{"visible_angle", func(p *ServerParam) any { return &p.VisibleAngle }},
	{"visible_distance", func(p *ServerParam) any { return &p.VisibleDistance }},
	{"audio_cut_dist", func(p *ServerParam) any { return &p.AudioCutDist }},
	{"quantize_step", func(p *ServerParam) any { return &p.DistQuantizeStep }},
	{"quantize_step_l", func(p *ServerParam) any { return &p.LandmarkDistQuantizeStep }},
	{"ckick_margin", func(p *ServerParam) any { return &p.CornerKickMargin }},
	{"wind_dir", func(p *ServerParam) any { return &p.WindDir }},
	{"wind_force", func(p *ServerParam) any { return &p.WindForce }},
	{"wind_ang", func(p *ServerParam) any { return &p.WindAngle }},
	{"wind_rand", func(p *ServerParam) any { return &p.WindRand }},
	{"wind_none", func(p *ServerParam) any { return &p.WindNone }},
	{"wind_random", func(p *ServerParam) any { return &p.UseWindRandom }},
	{"half_time", func(p *ServerParam) any { return &p.HalfTime }},
	{"drop_ball_time", func(p *ServerParam) any { return &p.DropBallTime }},
	{"port", func(p *ServerParam) any { return &p.Port }},
	{"coach_port", func(p *ServerParam) any { return &p.CoachPort }},
	{"olcoach_port", func(p *ServerParam) any { return &p.OnlineCoachPort }},
	{"say_coach_cnt_max", func(p *ServerParam) any { return &p.CoachSayCountMax }},
	{"say_coach_msg_size", func(p *ServerParam) any { return &p.CoachSayMsgSize }},
	{"simulator_step", func(p *ServerParam) any { return &p.SimulatorStep }},
	{"send_step", func(p *ServerParam) any { return &p.SendStep }},
	{"recv_step", func(p *ServerParam) any { return &p.RecvStep }},
	{"sense_body_step", func(p *ServerParam) any { return &p.SenseBodyStep }},
	{"say_msg_size", func(p *ServerParam) any { return &p.PlayerSayMsgSize }},
	{"clang_win_size", func(p *ServerParam) any { return &p.ClangWinSize }},
	{"clang_define_win", func(p *ServerParam) any { return &p.ClangDefineWin }},
	{"clang_meta_win", func(p *ServerParam) any { return &p.ClangMetaWin }},
	{"clang_advice_win", func(p *ServerParam) any { return &p.ClangAdviceWin }},
	{"clang_info_win", func(p *ServerParam) any { return &p.ClangInfoWin }},
	{"clang_del_win", func(p *ServerParam) any { return &p.ClangDelWin }},
	{"clang_rule_win", func(p *ServerParam) any { return &p.ClangRuleWin }},
	{"clang_mess_delay", func(p *ServerParam) any { return &p.ClangMessDelay }},
	{"clang_mess_per_cycle", func(p *ServerParam) any { return &p.ClangMessPerCycle }},
	{"hear_max", func(p *ServerParam) any { return &p.PlayerHearMax }},
	{"hear_inc", func(p *ServerParam) any { return &p.PlayerHearInc }},
	{"hear_decay", func(p *ServerParam) any { return &p.PlayerHearDecay }},
	{"catch_ban_cycle", func(p *ServerParam) any { return &p.CatchBanCycle }},
	{"coach", func(p *ServerParam) any { return &p.CoachMode }},
	{"coach_w_referee", func(p *ServerParam) any { return &p.CoachWithRefereeMode }},
	{"old_coach_hear", func(p *ServerParam) any { return &p.UseOldCoachHear }},
	{"send_vi_step", func(p *ServerParam) any { return &p.OnlineCoachLookStep }},
	{"use_offside", func(p *ServerParam) any { return &p.UseOffside }},
	{"offside_kick_margin", func(p *ServerParam) any { return &p.OffsideKickMargin }},
	{"forbid_kick_off_offside", func(p *ServerParam) any { return &p.KickoffOffside }},
	{"verbose", func(p *ServerParam) any { return &p.Verbose }},
	{"offside_active_area_size", func(p *ServerParam) any { return &p.OffsideActiveAreaSize }},
	{"slow_down_factor", func(p *ServerParam) any { return &p.SlowDownFactor }},
	{"synch_mode", func(p *ServerParam) any { return &p.SynchMode }},
	{"synch_offset", func(p *ServerParam) any { return &p.SynchOffset }},
	{"synch_micro_sleep", func(p *ServerParam) any { return &p.SynchMicroSleep }},
	{"start_goal_l", func(p *ServerParam) any { return &p.StartGoalL }},
	{"start_goal_r", func(p *ServerParam) any { return &p.StartGoalR }},
	{"fullstate_l", func(p *ServerParam) any { return &p.FullstateL }},
	{"fullstate_r", func(p *ServerParam) any { return &p.FullstateR }},
	{"slowness_on_top_for_left_team", func(p *ServerParam) any { return &p.SlownessOnTopForLeftTeam }},
	{"slowness_on_top_for_right_team", func(p *ServerParam) any { return &p.SlownessOnTopForRightTeam }},
	{"landmark_file", func(p *ServerParam) any { return &p.LandmarkFile }},
	{"send_comms", func(p *ServerParam) any { return &p.SendComms }},
	{"text_logging", func(p *ServerParam) any { return &p.TextLogging }},
	{"game_logging", func(p *ServerParam) any { return &p.GameLogging }},
	{"game_log_version", func(p *ServerParam) any { return &p.GameLogVersion }},
	{"text_log_dir", func(p *ServerParam) any { return &p.TextLogDir }},
	{"game_log_dir", func(p *ServerParam) any { return &p.GameLogDir }},
	{"text_log_fixed_name", func(p *ServerParam) any { return &p.TextLogFixedName }},
	{"game_log_fixed_name", func(p *ServerParam) any { return &p.GameLogFixedName }},
	{"text_log_fixed", func(p *ServerParam) any { return &p.TextLogFixed }},
	{"game_log_fixed", func(p *ServerParam) any { return &p.GameLogFixed }},
	{"text_log_dated", func(p *ServerParam) any { return &p.TextLogDated }},
	{"game_log_dated", func(p *ServerParam) any { return &p.GameLogDated }},
	{"log_date_format", func(p *ServerParam) any { return &p.LogDateFormat }},
	{"log_times", func(p *ServerParam) any { return &p.LogTimes }},
	{"record_messages", func(p *ServerParam) any { return &p.RecordMessages }},
	{"text_log_compression", func(p *ServerParam) any { return &p.TextLogCompression }},
	{"game_log_compression", func(p *ServerParam) any { return &p.GameLogCompression }},
	{"profile", func(p *ServerParam) any { return &p.Profile }},
	{"point_to_ban", func(p *ServerParam) any { return &p.PointToBan }},
	{"point_to_duration", func(p *ServerParam) any { return &p.PointToDuration }},
	{"tackle_dist", func(p *ServerParam) any { return &p.TackleDist }},
	{"tackle_back_dist", func(p *ServerParam) any { return &p.TackleBackDist }},
	{"tackle_width", func(p *ServerParam) any { return &p.TackleWidth }},
	{"tackle_exponent", func(p *ServerParam) any { return &p.TackleExponent }},
	{"tackle_cycles", func(p *ServerParam) any { return &p.TackleCycles }},
	{"tackle_power_rate", func(p *ServerParam) any { return &p.TacklePowerRate }},
	{"freeform_wait_period", func(p *ServerParam) any { return &p.FreeformWaitPeriod }},
	{"freeform_send_period", func(p *ServerParam) any { return &p.FreeformSendPeriod }},
	{"free_kick_faults", func(p *ServerParam) any { return &p.FreeKickFaults }},
	{"back_passes", func(p *ServerParam) any { return &p.BackPasses }},
	{"proper_goal_kicks", func(p *ServerParam) any { return &p.ProperGoalKicks }},
	{"stopped_ball_vel", func(p *ServerParam) any { return &p.StoppedBallVel }},
	{"max_goal_kicks", func(p *ServerParam) any { return &p.MaxGoalKicks }},
	{"auto_mode", func(p *ServerParam) any { return &p.AutoMode }},
	{"kick_off_wait", func(p *ServerParam) any { return &p.KickOffWait }},
	{"connect_wait", func(p *ServerParam) any { return &p.ConnectWait }},
	{"game_over_wait", func(p *ServerParam) any { return &p.GameOverWait }},
	{"team_l_start", func(p *ServerParam) any { return &p.TeamLStart }},
	{"team_r_start", func(p *ServerParam) any { return &p.TeamRStart }},
	{"keepaway", func(p *ServerParam) any { return &p.KeepawayMode }},
	{"keepaway_length", func(p *ServerParam) any { return &p.KeepawayLength }},
	{"keepaway_width", func(p *ServerParam) any { return &p.KeepawayWidth }},
	{"keepaway_logging", func(p *ServerParam) any { return &p.KeepawayLogging }},
	{"keepaway_log_dir", func(p *ServerParam) any { return &p.KeepawayLogDir }},
	{"keepaway_log_fixed_name", func(p *ServerParam) any { return &p.KeepawayLogFixedName }},
	{"keepaway_log_fixed", func(p *ServerParam) any { return &p.KeepawayLogFixed }},
	{"keepaway_log_dated", func(p *ServerParam) any { return &p.KeepawayLogDated }},
	{"keepaway_start", func(p *ServerParam) any { return &p.KeepawayStart }},
	{"nr_normal_halfs", func(p *ServerParam) any { return &p.NrNormalHalfs }},
	{"nr_extra_halfs", func(p *ServerParam) any { return &p.NrExtraHalfs }},
	{"penalty_shoot_outs", func(p *ServerParam) any { return &p.PenaltyShootOuts }},
	{"pen_before_setup_wait", func(p *ServerParam) any { return &p.PenBeforeSetupWait }},
	{"pen_setup_wait", func(p *ServerParam) any { return &p.PenSetupWait }},
	{"pen_ready_wait", func(p *ServerParam) any { return &p.PenReadyWait }},
	{"pen_taken_wait", func(p *ServerParam) any { return &p.PenTakenWait }},
	{"pen_nr_kicks", func(p *ServerParam) any { return &p.PenNrKicks }},
	{"pen_max_extra_kicks", func(p *ServerParam) any { return &p.PenMaxExtraKicks }},
	{"pen_dist_x", func(p *ServerParam) any { return &p.PenDistX }},
	{"pen_random_winner", func(p *ServerParam) any { return &p.PenRandomWinner }},
	{"pen_max_goalie_dist_x", func(p *ServerParam) any { return &p.PenMaxGoalieDistX }},
	{"pen_allow_mult_kicks", func(p *ServerParam) any { return &p.PenAllowMultKicks }},
	{"pen_coach_moves_players", func(p *ServerParam) any { return &p.PenCoachMovesPlayers }},
	{"ball_stuck_area", func(p *ServerParam) any { return &p.BallStuckArea }},
	{"coach_msg_file", func(p *ServerParam) any { return &p.CoachMsgFile }},
	{"max_tackle_power", func(p *ServerParam) any { return &p.MaxTacklePower }},
	{"max_back_tackle_power", func(p *ServerParam) any { return &p.MaxBackTacklePower }},
	{"player_speed_max_min", func(p *ServerParam) any { return &p.PlayerSpeedMaxMin }},
	{"extra_stamina", func(p *ServerParam) any { return &p.ExtraStamina }},
	{"synch_see_offset", func(p *ServerParam) any { return &p.SynchSeeOffset }},
	{"max_monitors", func(p *ServerParam) any { return &p.MaxMonitors }},
	{"extra_half_time", func(p *ServerParam) any { return &p.ExtraHalfTime }},
	{"stamina_capacity", func(p *ServerParam) any { return &p.StaminaCapacity }},
	{"max_dash_angle", func(p *ServerParam) any { return &p.MaxDashAngle }},
	{"min_dash_angle", func(p *ServerParam) any { return &p.MinDashAngle }},
	{"dash_angle_step", func(p *ServerParam) any { return &p.DashAngleStep }},
	{"side_dash_rate", func(p *ServerParam) any { return &p.SideDashRate }},
	{"back_dash_rate", func(p *ServerParam) any { return &p.BackDashRate }},
	{"max_dash_power", func(p *ServerParam) any { return &p.MaxDashPower }},
	{"min_dash_power", func(p *ServerParam) any { return &p.MinDashPower }},
	{"tackle_rand_factor", func(p *ServerParam) any { return &p.TackleRandFactor }},
	{"foul_detect_probability", func(p *ServerParam) any { return &p.FoulDetectProbability }},
	{"foul_exponent", func(p *ServerParam) any { return &p.FoulExponent }},
	{"foul_cycles", func(p *ServerParam) any { return &p.FoulCycles }},
	{"golden_goal", func(p *ServerParam) any { return &p.GoldenGoal }},
	{"red_card_probability", func(p *ServerParam) any { return &p.RedCardProbability }},
	{"illegal_defense_duration", func(p *ServerParam) any { return &p.IllegalDefenseDuration }},
	{"illegal_defense_number", func(p *ServerParam) any { return &p.IllegalDefenseNumber }},
	{"illegal_defense_dist_x", func(p *ServerParam) any { return &p.IllegalDefenseDistX }},
	{"illegal_defense_width", func(p *ServerParam) any { return &p.IllegalDefenseWidth }},
	{"fixed_teamname_l", func(p *ServerParam) any { return &p.FixedTeamnameL }},
	{"fixed_teamname_r", func(p *ServerParam) any { return &p.FixedTeamnameR }},
	{"max_catch_angle", func(p *ServerParam) any { return &p.MaxCatchAngle }},
	{"min_catch_angle", func(p *ServerParam) any { return &p.MinCatchAngle }},
	{"dist_noise_rate", func(p *ServerParam) any { return &p.DistNoiseRate }},
	{"focus_dist_noise_rate", func(p *ServerParam) any { return &p.FocusDistNoiseRate }},
	{"land_dist_noise_rate", func(p *ServerParam) any { return &p.LandDistNoiseRate }},
	{"land_focus_dist_noise_rate", func(p *ServerParam) any { return &p.LandFocusDistNoiseRate }},
})

// ServerParamRegistry returns the name table of ServerParam.
func ServerParamRegistry() *Registry[ServerParam] { return serverParamRegistry }

// SetValue assigns the textual value of the named parameter.
func (p *ServerParam) SetValue(name, value string) error {
	return serverParamRegistry.SetValue(p, name, value)
}

// SetInt assigns an integer to an int, double or bool parameter.
func (p *ServerParam) SetInt(name string, value int) error {
	return serverParamRegistry.SetInt(p, name, value)
}

// SetDouble assigns a double parameter.
func (p *ServerParam) SetDouble(name string, value float64) error {
	return serverParamRegistry.SetDouble(p, name, value)
}

// SetBool assigns a bool parameter.
func (p *ServerParam) SetBool(name string, value bool) error {
	return serverParamRegistry.SetBool(p, name, value)
}

// SetString assigns a string parameter.
func (p *ServerParam) SetString(name, value string) error {
	return serverParamRegistry.SetString(p, name, value)
}

// ParseSExp applies a "(server_param (name value)...)" record.
func (p *ServerParam) ParseSExp(msg string) error {
	return serverParamRegistry.ParseSExp(p, msg)
}

// SExp returns the server_param record with names sorted.
func (p *ServerParam) SExp() string {
	return serverParamRegistry.SExp(p)
}

// JSON returns {"server_param":{...}} with names sorted.
func (p *ServerParam) JSON() []byte {
	return serverParamRegistry.JSON(p)
}

// Clone returns a copy of p.
func (p *ServerParam) Clone() *ServerParam {
	c := *p
	return &c
}
