package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/iter"
)

var (
	// ErrNoPayload is returned for an envelope carrying neither weather nor error.
	ErrNoPayload = errors.New("envelope has neither weather nor error")
	// ErrAmbiguousPayload is returned for an envelope carrying both weather and error.
	ErrAmbiguousPayload = errors.New("envelope has both weather and error")
	// ErrNoLocation is returned when the location has no id and no name.
	ErrNoLocation = errors.New("envelope location has no id or name")
)

// Report status values, also used as the "status" message header.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ParseRawEvent deserializes a RawEvent's value into an ObservationEnvelope
// and validates its shape.
func ParseRawEvent(raw RawEvent) (ObservationEnvelope, error) {
	var env ObservationEnvelope
	if err := json.Unmarshal(raw.Value, &env); err != nil {
		return ObservationEnvelope{}, fmt.Errorf("parse raw event: %w", err)
	}
	if err := ValidateEnvelope(env); err != nil {
		return ObservationEnvelope{}, fmt.Errorf("parse raw event: %w", err)
	}
	return env, nil
}

// ValidateEnvelope checks that the envelope names a location and carries
// exactly one of weather or error.
func ValidateEnvelope(env ObservationEnvelope) error {
	if env.Location.Key() == "" {
		return ErrNoLocation
	}
	switch {
	case env.Weather == nil && env.Error == "":
		return ErrNoPayload
	case env.Weather != nil && env.Error != "":
		return ErrAmbiguousPayload
	}
	return nil
}

// BuildLocationReport scores the envelope's observation, or turns an upstream
// failure into an isolated error record.
func BuildLocationReport(env ObservationEnvelope) LocationReport {
	report := LocationReport{
		Location:    env.Location,
		ProcessedAt: clock.Now().UTC(),
	}
	if env.Weather == nil {
		report.Error = env.Error
		if report.Error == "" {
			report.Error = ErrNoPayload.Error()
		}
		return report
	}

	obs := *env.Weather
	result := CalculateDryingIndex(obs)
	report.Weather = &obs
	report.DryingIndex = &result
	return report
}

// EvaluateBatch builds a report per envelope concurrently. Output order
// matches input order and each location is evaluated independently.
func EvaluateBatch(envs []ObservationEnvelope) []LocationReport {
	return iter.Map(envs, func(env *ObservationEnvelope) LocationReport {
		if err := ValidateEnvelope(*env); err != nil {
			return LocationReport{
				Location:    env.Location,
				Error:       err.Error(),
				ProcessedAt: clock.Now().UTC(),
			}
		}
		return BuildLocationReport(*env)
	})
}

// SerializeLocationReport marshals a report into an OutputEvent keyed by location.
func SerializeLocationReport(report LocationReport) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize location report: %w", err)
	}

	headers := map[string]string{
		"status":       StatusOK,
		"processed_at": report.ProcessedAt.Format(time.RFC3339),
	}
	if report.Failed() {
		headers["status"] = StatusError
	}
	if report.DryingIndex != nil {
		headers["conditions"] = report.DryingIndex.Conditions
	}

	return OutputEvent{
		Key:     []byte(report.Location.Key()),
		Value:   data,
		Headers: headers,
	}, nil
}
