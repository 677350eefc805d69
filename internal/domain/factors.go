package domain

import "math"

// uvFactor is reported for completeness only. No UV measurement is consumed
// and the value is excluded from the weighted sum.
const uvFactor = 50.0

// TemperatureFactor scores air temperature in °C. 25–35 °C is optimal.
func TemperatureFactor(t float64) float64 {
	switch {
	case t >= 25 && t <= 35:
		return 100
	case t >= 20 && t < 25:
		return clampFactor(60 + (t-20)*8)
	case t > 35 && t <= 40:
		return clampFactor(100 - (t-35)*20)
	case t < 20:
		return clampFactor(math.Max(0, 20+t*2))
	default:
		return clampFactor(math.Max(0, 100-(t-40)*5))
	}
}

// HumidityFactor scores relative humidity in percent. Drier is better.
func HumidityFactor(h float64) float64 {
	switch {
	case h <= 40:
		return 100
	case h <= 60:
		return clampFactor(100 - (h-40)*1.5)
	case h <= 80:
		return clampFactor(70 - (h - 60))
	default:
		return clampFactor(math.Max(0, 50-(h-80)*0.5))
	}
}

// WindFactor scores wind speed given in m/s. 5–15 km/h is optimal.
func WindFactor(speed float64) float64 {
	kmh := speed * 3.6
	switch {
	case kmh <= 0:
		return 20
	case kmh >= 5 && kmh <= 15:
		return 100
	case kmh < 5:
		return clampFactor(20 + (kmh/5)*80)
	case kmh <= 25:
		return clampFactor(100 - (kmh-15)*5)
	default:
		return clampFactor(math.Max(0, 50-(kmh-25)*2))
	}
}

// CloudinessFactor scores cloud cover in percent. Clear sky is best.
func CloudinessFactor(cloudiness float64) float64 {
	return clampFactor(math.Max(0, 100-cloudiness))
}

// clampFactor bounds a factor to [0,100]. NaN collapses to 0.
func clampFactor(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(100, math.Max(0, v))
}
