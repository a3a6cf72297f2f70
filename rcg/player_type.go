package rcg

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// PlayerType is one heterogeneous player type.
type PlayerType struct {
	ID                         int
	PlayerSpeedMax             float64
	StaminaIncMax              float64
	PlayerDecay                float64
	InertiaMoment              float64
	DashPowerRate              float64
	PlayerSize                 float64
	KickableMargin             float64
	KickRand                   float64
	ExtraStamina               float64
	EffortMax                  float64
	EffortMin                  float64
	KickPowerRate              float64
	FoulDetectProbability      float64
	CatchableAreaLStretch      float64
	UnumFarLength              float64
	UnumTooFarLength           float64
	TeamFarLength              float64
	TeamTooFarLength           float64
	PlayerMaxObservationLength float64
	BallVelFarLength           float64
	BallVelTooFarLength        float64
	BallMaxObservationLength   float64
	FlagChgFarLength           float64
	FlagChgTooFarLength        float64
	FlagMaxObservationLength   float64
	DistNoiseRate              float64
	FocusDistNoiseRate         float64
	LandDistNoiseRate          float64
	LandFocusDistNoiseRate     float64
}

// NewPlayerType returns the default player type with id 0.
func NewPlayerType() *PlayerType {
	return &PlayerType{
		PlayerSpeedMax:             1.2,
		StaminaIncMax:              45.0,
		PlayerDecay:                0.4,
		InertiaMoment:              5.0,
		DashPowerRate:              0.06,
		PlayerSize:                 0.3,
		KickableMargin:             0.7,
		KickRand:                   0.1,
		EffortMax:                  1.0,
		EffortMin:                  0.6,
		KickPowerRate:              0.027,
		FoulDetectProbability:      0.5,
		CatchableAreaLStretch:      1.0,
		UnumFarLength:              20.0,
		UnumTooFarLength:           40.0,
		TeamFarLength:              60.0,
		TeamTooFarLength:           125.095963164,
		PlayerMaxObservationLength: 125.095963164,
		BallVelFarLength:           20.0,
		BallVelTooFarLength:        40.0,
		BallMaxObservationLength:   125.095963164,
		FlagChgFarLength:           20.0,
		FlagChgTooFarLength:        40.0,
		FlagMaxObservationLength:   125.095963164,
		DistNoiseRate:              0.0125,
		FocusDistNoiseRate:         0.0125,
		LandDistNoiseRate:          0.00125,
		LandFocusDistNoiseRate:     0.00125,
	}
}

var playerTypeRegistry = newRegistry("player_type", []param[PlayerType]{
	{"id", func(p *PlayerType) any { return &p.ID }},
	{"player_speed_max", func(p *PlayerType) any { return &p.PlayerSpeedMax }},
	{"stamina_inc_max", func(p *PlayerType) any { return &p.StaminaIncMax }},
	{"player_decay", func(p *PlayerType) any { return &p.PlayerDecay }},
	{"inertia_moment", func(p *PlayerType) any { return &p.InertiaMoment }},
	{"dash_power_rate", func(p *PlayerType) any { return &p.DashPowerRate }},
	{"player_size", func(p *PlayerType) any { return &p.PlayerSize }},
	{"kickable_margin", func(p *PlayerType) any { return &p.KickableMargin }},
	{"kick_rand", func(p *PlayerType) any { return &p.KickRand }},
	{"extra_stamina", func(p *PlayerType) any { return &p.ExtraStamina }},
	{"effort_max", func(p *PlayerType) any { return &p.EffortMax }},
	{"effort_min", func(p *PlayerType) any { return &p.EffortMin }},
	{"kick_power_rate", func(p *PlayerType) any { return &p.KickPowerRate }},
	{"foul_detect_probability", func(p *PlayerType) any { return &p.FoulDetectProbability }},
	{"catchable_area_l_stretch", func(p *PlayerType) any { return &p.CatchableAreaLStretch }},
	{"unum_far_length", func(p *PlayerType) any { return &p.UnumFarLength }},
	{"unum_too_far_length", func(p *PlayerType) any { return &p.UnumTooFarLength }},
	{"team_far_length", func(p *PlayerType) any { return &p.TeamFarLength }},
	{"team_too_far_length", func(p *PlayerType) any { return &p.TeamTooFarLength }},
	{"player_max_observation_length", func(p *PlayerType) any { return &p.PlayerMaxObservationLength }},
	{"ball_vel_far_length", func(p *PlayerType) any { return &p.BallVelFarLength }},
	{"ball_vel_too_far_length", func(p *PlayerType) any { return &p.BallVelTooFarLength }},
	{"ball_max_observation_length", func(p *PlayerType) any { return &p.BallMaxObservationLength }},
	{"flag_chg_far_length", func(p *PlayerType) any { return &p.FlagChgFarLength }},
	{"flag_chg_too_far_length", func(p *PlayerType) any { return &p.FlagChgTooFarLength }},
	{"flag_max_observation_length", func(p *PlayerType) any { return &p.FlagMaxObservationLength }},
	{"dist_noise_rate", func(p *PlayerType) any { return &p.DistNoiseRate }},
	{"focus_dist_noise_rate", func(p *PlayerType) any { return &p.FocusDistNoiseRate }},
	{"land_dist_noise_rate", func(p *PlayerType) any { return &p.LandDistNoiseRate }},
	{"land_focus_dist_noise_rate", func(p *PlayerType) any { return &p.LandFocusDistNoiseRate }},
})

// PlayerTypeRegistry returns the name table of PlayerType.
func PlayerTypeRegistry() *Registry[PlayerType] { return playerTypeRegistry }

// SetValue assigns the textual value of the named parameter.
func (t *PlayerType) SetValue(name, value string) error {
	return playerTypeRegistry.SetValue(t, name, value)
}

func (t *PlayerType) SetInt(name string, value int) error {
	return playerTypeRegistry.SetInt(t, name, value)
}

func (t *PlayerType) SetDouble(name string, value float64) error {
	return playerTypeRegistry.SetDouble(t, name, value)
}

// ParseSExp applies a "(player_type (name value)...)" record.
func (t *PlayerType) ParseSExp(msg string) error {
	return playerTypeRegistry.ParseSExp(t, msg)
}

// quantized is one output column of a player type: the field name and
// the precision the server prints it with. A zero step prints the
// value as is.
type quantized struct {
	name string
	step float64
}

var playerTypeColumns = []quantized{
	{"player_speed_max", 1e-5},
	{"stamina_inc_max", 1e-5},
	{"player_decay", 1e-6},
	{"inertia_moment", 1e-5},
	{"dash_power_rate", 1e-8},
	{"player_size", 1e-5},
	{"kickable_margin", 1e-6},
	{"kick_rand", 1e-6},
	{"extra_stamina", 1e-5},
	{"effort_max", 1e-6},
	{"effort_min", 1e-6},
	{"kick_power_rate", 1e-6},
	{"foul_detect_probability", 1e-6},
	{"catchable_area_l_stretch", 1e-6},
	{"unum_far_length", 1e-6},
	{"unum_too_far_length", 1e-6},
	{"team_far_length", 1e-6},
	{"team_too_far_length", 1e-6},
	{"player_max_observation_length", 1e-6},
	{"ball_vel_far_length", 1e-6},
	{"ball_vel_too_far_length", 1e-6},
	{"ball_max_observation_length", 1e-6},
	{"flag_chg_far_length", 1e-6},
	{"flag_chg_too_far_length", 1e-6},
	{"flag_max_observation_length", 1e-6},
	{"dist_noise_rate", 1e-6},
	{"focus_dist_noise_rate", 1e-6},
	{"land_dist_noise_rate", 1e-6},
	{"land_focus_dist_noise_rate", 1e-6},
}

// quantize rounds v to a multiple of step and formats it without
// trailing zeros.
func quantize(v, step float64) string {
	if step <= 0 {
		return formatDouble(v)
	}
	q := math.RoundToEven(v/step) * step
	decimals := int(math.Round(-math.Log10(step)))
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(q, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (t *PlayerType) column(name string) float64 {
	v, _ := playerTypeRegistry.Value(t, name)
	f, _ := v.(float64)
	return f
}

// SExp returns the player_type record in server order with each value
// rounded to the precision the server uses.
func (t *PlayerType) SExp() string {
	var sb strings.Builder
	sb.WriteString("(player_type (id ")
	sb.WriteString(strconv.Itoa(t.ID))
	sb.WriteByte(')')
	for _, c := range playerTypeColumns {
		sb.WriteString(" (")
		sb.WriteString(c.name)
		sb.WriteByte(' ')
		sb.WriteString(quantize(t.column(c.name), c.step))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

// JSON returns {"player_type":{...}} in server order.
func (t *PlayerType) JSON() []byte {
	body := []byte(`{}`)
	body, _ = sjson.SetBytes(body, "id", t.ID)
	for _, c := range playerTypeColumns {
		body, _ = sjson.SetRawBytes(body, c.name, []byte(quantize(t.column(c.name), c.step)))
	}
	out, _ := sjson.SetRawBytes([]byte(`{}`), "player_type", body)
	return out
}
