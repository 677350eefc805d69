// Package domain scores weather observations for air-drying laundry.
//
// # Data Source
//
// An upstream collector fetches current weather per location and publishes
// one [ObservationEnvelope] per location to the source topic. Values are
// already normalized to metric units:
//
//	temperature, feels_like   °C
//	humidity, cloudiness      percent, 0–100
//	wind_speed                m/s
//	precipitation             mm/h, omitted means 0
//
// When the collector cannot obtain weather for a location it publishes the
// envelope with an "error" string instead of "weather". Such envelopes become
// error reports and never affect other locations.
//
// # Factors
//
// Each measurement maps to a 0–100 suitability factor:
//
//	Temperature:  100 for 25–35 °C, ramps 60→100 over 20–25 °C,
//	              falls 100→0 over 35–40 °C, 20+2t below 20 °C,
//	              100-5(t-40) above 40 °C (floored at 0)
//	Humidity:     100 up to 40%, then -1.5/pt to 60%, -1/pt to 80%,
//	              -0.5/pt above (floored at 0)
//	Wind:         converted to km/h; 20 when calm, 100 for 5–15 km/h,
//	              20→100 over 0–5 km/h, -5/kmh to 25 km/h, -2/kmh above
//	Cloudiness:   100 - cloudiness
//	UV:           fixed at 50, informational only
//
// Every factor is clamped to [0,100] after its piecewise formula.
//
// # Index
//
// The raw index is the weighted sum
//
//	0.25·temperature + 0.35·humidity + 0.25·wind + 0.15·cloudiness
//
// The reported drying_index is the raw index rounded half away from zero.
// The conditions label (Excellent ≥80, Good ≥60, Fair ≥40, Poor ≥20, else
// Very poor) and optimal_for_drying (≥70) are derived from the unrounded
// index, so a raw 69.6 reports drying_index 70 but is not optimal.
//
// # Recommendations
//
// Rules run in a fixed order (temperature, humidity, wind, precipitation,
// overall index) and every matching rule appends one message. When nothing
// matches a single "acceptable" message is returned.
package domain
