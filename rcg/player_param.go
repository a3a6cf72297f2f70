package rcg

// PlayerParam holds the heterogeneous player generation parameters.
type PlayerParam struct {
	PlayerTypes                      int
	SubstituteMax                    int
	PtMax                            int
	AllowMultDefaultType             bool
	PlayerSpeedMaxDeltaMin           float64
	PlayerSpeedMaxDeltaMax           float64
	StaminaIncMaxDeltaFactor         float64
	PlayerDecayDeltaMin              float64
	PlayerDecayDeltaMax              float64
	InertiaMomentDeltaFactor         float64
	DashPowerRateDeltaMin            float64
	DashPowerRateDeltaMax            float64
	PlayerSizeDeltaFactor            float64
	KickableMarginDeltaMin           float64
	KickableMarginDeltaMax           float64
	KickRandDeltaFactor              float64
	ExtraStaminaDeltaMin             float64
	ExtraStaminaDeltaMax             float64
	EffortMaxDeltaFactor             float64
	EffortMinDeltaFactor             float64
	RandomSeed                       int
	NewDashPowerRateDeltaMin         float64
	NewDashPowerRateDeltaMax         float64
	NewStaminaIncMaxDeltaFactor      float64
	KickPowerRateDeltaMin            float64
	KickPowerRateDeltaMax            float64
	FoulDetectProbabilityDeltaFactor float64
	CatchableAreaLStretchMin         float64
	CatchableAreaLStretchMax         float64
}

// NewPlayerParam returns the server defaults.
func NewPlayerParam() *PlayerParam {
	return &PlayerParam{
		PlayerTypes:                 18,
		SubstituteMax:               3,
		PtMax:                       1,
		PlayerDecayDeltaMin:         -0.05,
		PlayerDecayDeltaMax:         0.1,
		InertiaMomentDeltaFactor:    25.0,
		PlayerSizeDeltaFactor:       -100.0,
		KickableMarginDeltaMin:      -0.1,
		KickableMarginDeltaMax:      0.1,
		KickRandDeltaFactor:         1.0,
		ExtraStaminaDeltaMax:        100.0,
		EffortMaxDeltaFactor:        -0.002,
		EffortMinDeltaFactor:        -0.002,
		RandomSeed:                  -1,
		NewDashPowerRateDeltaMin:    -0.0005,
		NewDashPowerRateDeltaMax:    0.0015,
		NewStaminaIncMaxDeltaFactor: -6000.0,
	}
}

var playerParamRegistry = newRegistry("player_param", []param[PlayerParam]{
	{"player_types", func(p *PlayerParam) any { return &p.PlayerTypes }},
	{"subs_max", func(p *PlayerParam) any { return &p.SubstituteMax }},
	{"pt_max", func(p *PlayerParam) any { return &p.PtMax }},
	{"allow_mult_default_type", func(p *PlayerParam) any { return &p.AllowMultDefaultType }},
	{"player_speed_max_delta_min", func(p *PlayerParam) any { return &p.PlayerSpeedMaxDeltaMin }},
	{"player_speed_max_delta_max", func(p *PlayerParam) any { return &p.PlayerSpeedMaxDeltaMax }},
	{"stamina_inc_max_delta_factor", func(p *PlayerParam) any { return &p.StaminaIncMaxDeltaFactor }},
	{"player_decay_delta_min", func(p *PlayerParam) any { return &p.PlayerDecayDeltaMin }},
	{"player_decay_delta_max", func(p *PlayerParam) any { return &p.PlayerDecayDeltaMax }},
	{"inertia_moment_delta_factor", func(p *PlayerParam) any { return &p.InertiaMomentDeltaFactor }},
	{"dash_power_rate_delta_min", func(p *PlayerParam) any { return &p.DashPowerRateDeltaMin }},
	{"dash_power_rate_delta_max", func(p *PlayerParam) any { return &p.DashPowerRateDeltaMax }},
	{"player_size_delta_factor", func(p *PlayerParam) any { return &p.PlayerSizeDeltaFactor }},
	{"kickable_margin_delta_min", func(p *PlayerParam) any { return &p.KickableMarginDeltaMin }},
	{"kickable_margin_delta_max", func(p *PlayerParam) any { return &p.KickableMarginDeltaMax }},
	{"kick_rand_delta_factor", func(p *PlayerParam) any { return &p.KickRandDeltaFactor }},
	{"extra_stamina_delta_min", func(p *PlayerParam) any { return &p.ExtraStaminaDeltaMin }},
	{"extra_stamina_delta_max", func(p *PlayerParam) any { return &p.ExtraStaminaDeltaMax }},
	{"effort_max_delta_factor", func(p *PlayerParam) any { return &p.EffortMaxDeltaFactor }},
	{"effort_min_delta_factor", func(p *PlayerParam) any { return &p.EffortMinDeltaFactor }},
	{"random_seed", func(p *PlayerParam) any { return &p.RandomSeed }},
	{"new_dash_power_rate_delta_min", func(p *PlayerParam) any { return &p.NewDashPowerRateDeltaMin }},
	{"new_dash_power_rate_delta_max", func(p *PlayerParam) any { return &p.NewDashPowerRateDeltaMax }},
	{"new_stamina_inc_max_delta_factor", func(p *PlayerParam) any { return &p.NewStaminaIncMaxDeltaFactor }},
	{"kick_power_rate_delta_min", func(p *PlayerParam) any { return &p.KickPowerRateDeltaMin }},
	{"kick_power_rate_delta_max", func(p *PlayerParam) any { return &p.KickPowerRateDeltaMax }},
	{"foul_detect_probability_delta_factor", func(p *PlayerParam) any { return &p.FoulDetectProbabilityDeltaFactor }},
	{"catchable_area_l_stretch_min", func(p *PlayerParam) any { return &p.CatchableAreaLStretchMin }},
	{"catchable_area_l_stretch_max", func(p *PlayerParam) any { return &p.CatchableAreaLStretchMax }},
})

// PlayerParamRegistry returns the name table of PlayerParam.
func PlayerParamRegistry() *Registry[PlayerParam] { return playerParamRegistry }

// SetValue assigns the textual value of the named parameter.
func (p *PlayerParam) SetValue(name, value string) error {
	return playerParamRegistry.SetValue(p, name, value)
}

func (p *PlayerParam) SetInt(name string, value int) error {
	return playerParamRegistry.SetInt(p, name, value)
}

func (p *PlayerParam) SetDouble(name string, value float64) error {
	return playerParamRegistry.SetDouble(p, name, value)
}

func (p *PlayerParam) SetBool(name string, value bool) error {
	return playerParamRegistry.SetBool(p, name, value)
}

// ParseSExp applies a "(player_param (name value)...)" record.
func (p *PlayerParam) ParseSExp(msg string) error {
	return playerParamRegistry.ParseSExp(p, msg)
}

// SExp returns the player_param record with names sorted.
func (p *PlayerParam) SExp() string {
	return playerParamRegistry.SExp(p)
}

// JSON returns {"player_param":{...}} with names sorted.
func (p *PlayerParam) JSON() []byte {
	return playerParamRegistry.JSON(p)
}
