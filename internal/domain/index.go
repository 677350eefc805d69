package domain

import "math"

// Factor weights for the drying index. They must sum to 1.0.
const (
	weightTemperature = 0.25
	weightHumidity    = 0.35
	weightWind        = 0.25
	weightCloudiness  = 0.15
)

// optimalThreshold is compared against the unrounded index.
const optimalThreshold = 70.0

// Condition labels, from best to worst.
const (
	ConditionsExcellent = "Excellent drying conditions"
	ConditionsGood      = "Good drying conditions"
	ConditionsFair      = "Fair drying conditions"
	ConditionsPoor      = "Poor drying conditions"
	ConditionsVeryPoor  = "Very poor drying conditions"
)

// factorSet carries the unrounded factor values through scoring.
type factorSet struct {
	temperature float64
	humidity    float64
	wind        float64
	cloudiness  float64
	uv          float64
}

func computeFactors(obs WeatherObservation) factorSet {
	return factorSet{
		temperature: TemperatureFactor(obs.Temperature),
		humidity:    HumidityFactor(obs.Humidity),
		wind:        WindFactor(obs.WindSpeed),
		cloudiness:  CloudinessFactor(obs.Cloudiness),
		uv:          uvFactor,
	}
}

// weightedIndex combines the factors into the raw, unrounded index.
// The UV factor does not participate.
func weightedIndex(f factorSet) float64 {
	return f.temperature*weightTemperature +
		f.humidity*weightHumidity +
		f.wind*weightWind +
		f.cloudiness*weightCloudiness
}

// ClassifyConditions maps an unrounded index to its conditions label.
func ClassifyConditions(index float64) string {
	switch {
	case index >= 80:
		return ConditionsExcellent
	case index >= 60:
		return ConditionsGood
	case index >= 40:
		return ConditionsFair
	case index >= 20:
		return ConditionsPoor
	default:
		return ConditionsVeryPoor
	}
}

// CalculateDryingIndex scores one observation for air-drying laundry.
// It is pure and safe for concurrent use.
func CalculateDryingIndex(obs WeatherObservation) DryingIndexResult {
	f := computeFactors(obs)
	index := weightedIndex(f)

	return DryingIndexResult{
		DryingIndex:      roundScore(index),
		Conditions:       ClassifyConditions(index),
		Recommendations:  recommend(obs, f, index),
		OptimalForDrying: index >= optimalThreshold,
		Factors: Factors{
			TemperatureFactor: roundScore(f.temperature),
			HumidityFactor:    roundScore(f.humidity),
			WindFactor:        roundScore(f.wind),
			CloudinessFactor:  roundScore(f.cloudiness),
			UVFactor:          roundScore(f.uv),
		},
	}
}

// roundScore rounds half away from zero and bounds the result to [0,100].
func roundScore(v float64) int {
	return int(math.Round(clampFactor(v)))
}
