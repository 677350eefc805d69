package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCalculateDryingIndex_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		obs             WeatherObservation
		factors         Factors
		index           int
		conditions      string
		optimal         bool
		recommendations []string
	}{
		{
			name:            "sunny breezy afternoon",
			obs:             WeatherObservation{Temperature: 30, Humidity: 50, WindSpeed: 2.78, Cloudiness: 10, Precipitation: ptr(0.0)},
			factors:         Factors{TemperatureFactor: 100, HumidityFactor: 85, WindFactor: 100, CloudinessFactor: 90, UVFactor: 50},
			index:           93,
			conditions:      ConditionsExcellent,
			optimal:         true,
			recommendations: []string{AdvicePerfect},
		},
		{
			name:            "cold damp still day",
			obs:             WeatherObservation{Temperature: 10, Humidity: 90, WindSpeed: 0, Cloudiness: 90, Precipitation: ptr(0.0)},
			factors:         Factors{TemperatureFactor: 40, HumidityFactor: 45, WindFactor: 20, CloudinessFactor: 10, UVFactor: 50},
			index:           32,
			conditions:      ConditionsPoor,
			optimal:         false,
			recommendations: []string{AdviceTooCold, AdviceVeryHumid, AdviceCalm},
		},
		{
			name:            "warm day with rain",
			obs:             WeatherObservation{Temperature: 28, Humidity: 55, WindSpeed: 0.1, Cloudiness: 20, Precipitation: ptr(2.0)},
			factors:         Factors{TemperatureFactor: 100, HumidityFactor: 78, WindFactor: 26, CloudinessFactor: 80, UVFactor: 50},
			index:           71,
			conditions:      ConditionsGood,
			optimal:         true,
			recommendations: []string{AdviceCalm, AdvicePrecipitation, AdviceGood},
		},
		{
			name:            "fair day needs no advice",
			obs:             WeatherObservation{Temperature: 22, Humidity: 75, WindSpeed: 1.0, Cloudiness: 100},
			factors:         Factors{TemperatureFactor: 76, HumidityFactor: 55, WindFactor: 78, CloudinessFactor: 0, UVFactor: 50},
			index:           58,
			conditions:      ConditionsFair,
			optimal:         false,
			recommendations: []string{AdviceAcceptable},
		},
		{
			name:            "scorching day",
			obs:             WeatherObservation{Temperature: 55, Humidity: 30, WindSpeed: 2, Cloudiness: 0},
			factors:         Factors{TemperatureFactor: 25, HumidityFactor: 100, WindFactor: 100, CloudinessFactor: 100, UVFactor: 50},
			index:           81,
			conditions:      ConditionsExcellent,
			optimal:         true,
			recommendations: []string{AdviceTooHot, AdvicePerfect},
		},
		{
			name:            "freezing storm",
			obs:             WeatherObservation{Temperature: -20, Humidity: 200, WindSpeed: 20, Cloudiness: 100},
			factors:         Factors{TemperatureFactor: 0, HumidityFactor: 0, WindFactor: 0, CloudinessFactor: 0, UVFactor: 50},
			index:           0,
			conditions:      ConditionsVeryPoor,
			optimal:         false,
			recommendations: []string{AdviceTooCold, AdviceVeryHumid, AdviceStrongWind, AdviceUseDryer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDryingIndex(tt.obs)
			assert.Equal(t, tt.factors, got.Factors)
			assert.Equal(t, tt.index, got.DryingIndex)
			assert.Equal(t, tt.conditions, got.Conditions)
			assert.Equal(t, tt.optimal, got.OptimalForDrying)
			assert.Equal(t, tt.recommendations, got.Recommendations)
		})
	}
}

func TestWeightedIndex_UnroundedValues(t *testing.T) {
	f := computeFactors(WeatherObservation{Temperature: 30, Humidity: 50, WindSpeed: 2.78, Cloudiness: 10})
	assert.InDelta(t, 93.25, weightedIndex(f), 1e-9)

	f = computeFactors(WeatherObservation{Temperature: 10, Humidity: 90, WindSpeed: 0, Cloudiness: 90})
	assert.InDelta(t, 32.25, weightedIndex(f), 1e-9)
}

func TestWeightedIndex_IgnoresUV(t *testing.T) {
	f := factorSet{temperature: 100, humidity: 100, wind: 100, cloudiness: 100, uv: 0}
	assert.InDelta(t, 100, weightedIndex(f), 1e-9)
	f.uv = 100
	assert.InDelta(t, 100, weightedIndex(f), 1e-9)
}

func TestCalculateDryingIndex_OptimalUsesUnroundedIndex(t *testing.T) {
	// Raw index 69.75: rounds to 70 but stays below the optimal threshold.
	obs := WeatherObservation{Temperature: 19.5, Humidity: 30, WindSpeed: 0, Cloudiness: 0}
	assert.InDelta(t, 69.75, weightedIndex(computeFactors(obs)), 1e-9)

	got := CalculateDryingIndex(obs)
	assert.Equal(t, 70, got.DryingIndex)
	assert.False(t, got.OptimalForDrying)
	assert.Equal(t, ConditionsGood, got.Conditions)
	assert.Equal(t, []string{AdviceCalm, AdviceGood}, got.Recommendations)
}

func TestClassifyConditions(t *testing.T) {
	tests := []struct {
		index    float64
		expected string
	}{
		{100, ConditionsExcellent},
		{80, ConditionsExcellent},
		{79.99, ConditionsGood},
		{60, ConditionsGood},
		{59.99, ConditionsFair},
		{40, ConditionsFair},
		{39.99, ConditionsPoor},
		{20, ConditionsPoor},
		{19.99, ConditionsVeryPoor},
		{0, ConditionsVeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyConditions(tt.index), "index %.2f", tt.index)
	}
}

func TestCalculateDryingIndex_Deterministic(t *testing.T) {
	obs := WeatherObservation{Temperature: 27.3, Humidity: 63.1, WindSpeed: 3.3, Cloudiness: 42, Precipitation: ptr(0.4)}
	assert.Equal(t, CalculateDryingIndex(obs), CalculateDryingIndex(obs))
}

func TestCalculateDryingIndex_InvariantsHoldAcrossGrid(t *testing.T) {
	for temp := -30.0; temp <= 60; temp += 9 {
		for hum := 0.0; hum <= 100; hum += 20 {
			for wind := 0.0; wind <= 25; wind += 5 {
				for cloud := 0.0; cloud <= 100; cloud += 25 {
					obs := WeatherObservation{Temperature: temp, Humidity: hum, WindSpeed: wind, Cloudiness: cloud}
					got := CalculateDryingIndex(obs)
					raw := weightedIndex(computeFactors(obs))

					assert.GreaterOrEqual(t, got.DryingIndex, 0)
					assert.LessOrEqual(t, got.DryingIndex, 100)
					assert.NotEmpty(t, got.Recommendations)
					assert.Equal(t, raw >= 70, got.OptimalForDrying)
					assert.Equal(t, ClassifyConditions(raw), got.Conditions)
				}
			}
		}
	}
}

func TestRoundScore_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 93, roundScore(93.25))
	assert.Equal(t, 94, roundScore(93.5))
	assert.Equal(t, 32, roundScore(32.25))
	assert.Equal(t, 100, roundScore(130))
	assert.Equal(t, 0, roundScore(-4))
}
