package legacy

import (
	"math"

	"github.com/Neumenon/rcg/rcg"
)

// Fixed-point scales of the two integer families.
const (
	ShortScale = 16.0
	LongScale  = 65536.0
)

// Raw values reserved for rcg.Unset. Real values saturate one step
// above them.
const (
	ShortUnset int16 = math.MinInt16
	LongUnset  int32 = math.MinInt32
)

// ShortToFloat decodes a 16-bit fixed-point value.
func ShortToFloat(v int16) float32 {
	if v == ShortUnset {
		return rcg.Unset
	}
	return float32(float64(v) / ShortScale)
}

// FloatToShort encodes f on the 16-bit scale, rounding half to even and
// saturating at the int16 range.
func FloatToShort(f float32) int16 {
	if f == rcg.Unset {
		return ShortUnset
	}
	v := clampShort(math.RoundToEven(float64(f) * ShortScale))
	if v == ShortUnset {
		v++
	}
	return v
}

// LongToFloat decodes a 32-bit fixed-point value.
func LongToFloat(v int32) float32 {
	if v == LongUnset {
		return rcg.Unset
	}
	return float32(float64(v) / LongScale)
}

// FloatToLong encodes f on the 32-bit scale, rounding half to even and
// saturating at the int32 range.
func FloatToLong(f float32) int32 {
	if f == rcg.Unset {
		return LongUnset
	}
	v := clampLong(math.RoundToEven(float64(f) * LongScale))
	if v == LongUnset {
		v++
	}
	return v
}

// LongToAngle decodes a 32-bit fixed-point angle in radians to degrees.
func LongToAngle(v int32) float32 {
	if v == LongUnset {
		return rcg.Unset
	}
	return float32(float64(v) / LongScale * rad2deg)
}

// AngleToLong encodes an angle in degrees as 32-bit fixed-point radians.
func AngleToLong(deg float32) int32 {
	if deg == rcg.Unset {
		return LongUnset
	}
	v := DoubleToLong(float64(deg) * deg2rad)
	if v == LongUnset {
		v++
	}
	return v
}

// LongToDouble and DoubleToLong are the float64 variants used by the
// parameter records.
func LongToDouble(v int32) float64 {
	return float64(v) / LongScale
}

func DoubleToLong(f float64) int32 {
	return clampLong(math.RoundToEven(f * LongScale))
}

// ShortToLong rescales a 16-bit fixed-point value to the 32-bit family.
// ShortUnset maps to LongUnset.
func ShortToLong(v int16) int32 {
	if v == ShortUnset {
		return LongUnset
	}
	return int32(v) * (LongScale / ShortScale)
}

// LongToShort rescales a 32-bit fixed-point value to the 16-bit family.
// LongUnset maps to ShortUnset; real values saturate one step above it.
func LongToShort(v int32) int16 {
	if v == LongUnset {
		return ShortUnset
	}
	s := clampShort(math.RoundToEven(float64(v) / (LongScale / ShortScale)))
	if s == ShortUnset {
		s++
	}
	return s
}

// BoolToShort returns 1 for true.
func BoolToShort(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// ShortToBool reports v != 0.
func ShortToBool(v int16) bool {
	return v != 0
}

// IntToShort saturates v at the int16 range.
func IntToShort(v int) int16 {
	return clampShort(float64(v))
}

// IntToLong saturates v at the int32 range.
func IntToLong(v int) int32 {
	return clampLong(float64(v))
}

func clampShort(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

func clampLong(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)
