package domain

// Advisory messages emitted by the recommendation rules.
const (
	AdviceTooCold       = "Temperature is too low. Consider drying indoors with ventilation."
	AdviceTooHot        = "Temperature is too high. Drying may be too fast and uneven."
	AdviceVeryHumid     = "Very high humidity. Drying will be significantly slower."
	AdviceHumid         = "High humidity detected. Allow extra drying time."
	AdviceCalm          = "Very calm conditions. Wind speed is too low for optimal drying."
	AdviceStrongWind    = "Very strong wind. Secure laundry to prevent damage or loss."
	AdvicePrecipitation = "Rain or precipitation expected. Consider indoor drying."
	AdvicePerfect       = "Perfect time to dry laundry outside!"
	AdviceGood          = "Good conditions. Laundry will dry efficiently."
	AdviceUseDryer      = "Not ideal for outdoor drying. Consider using a dryer or wait for better conditions."
	AdviceAcceptable    = "Current conditions are acceptable for drying laundry."
)

// recommend evaluates the advisory rules in order. Every matching rule
// contributes one message; the result is never empty.
func recommend(obs WeatherObservation, f factorSet, index float64) []string {
	var out []string

	if f.temperature < 50 {
		if obs.Temperature < 20 {
			out = append(out, AdviceTooCold)
		} else if obs.Temperature > 40 {
			out = append(out, AdviceTooHot)
		}
	}

	if f.humidity < 50 {
		if obs.Humidity > 80 {
			out = append(out, AdviceVeryHumid)
		} else if obs.Humidity > 60 {
			out = append(out, AdviceHumid)
		}
	}

	if f.wind < 40 {
		if obs.WindSpeed < 0.5 {
			out = append(out, AdviceCalm)
		} else if obs.WindSpeed > 9 {
			out = append(out, AdviceStrongWind)
		}
	}

	if obs.PrecipitationOrZero() > 0 {
		out = append(out, AdvicePrecipitation)
	}

	switch {
	case index >= 80:
		out = append(out, AdvicePerfect)
	case index >= 60:
		out = append(out, AdviceGood)
	case index < 30:
		out = append(out, AdviceUseDryer)
	}

	if len(out) == 0 {
		return []string{AdviceAcceptable}
	}
	return out
}
