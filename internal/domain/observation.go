package domain

import (
	"context"
	"time"
)

// WeatherObservation is a single, already-normalized weather reading for a
// location as supplied by an upstream weather-data collector.
type WeatherObservation struct {
	Temperature   float64  `json:"temperature" yaml:"temperature"` // °C
	FeelsLike     float64  `json:"feels_like" yaml:"feels_like"`   // °C, passed through
	Humidity      float64  `json:"humidity" yaml:"humidity"`       // percent
	WindSpeed     float64  `json:"wind_speed" yaml:"wind_speed"`   // m/s
	Cloudiness    float64  `json:"cloudiness" yaml:"cloudiness"`   // percent
	Description   string   `json:"description" yaml:"description"`
	Precipitation *float64 `json:"precipitation,omitempty" yaml:"precipitation,omitempty"` // mm/h
	Timestamp     string   `json:"timestamp" yaml:"timestamp"`
}

// PrecipitationOrZero returns the precipitation rate, treating an omitted value as 0.
func (o WeatherObservation) PrecipitationOrZero() float64 {
	if o.Precipitation == nil {
		return 0
	}
	return *o.Precipitation
}

// Factors holds the per-measurement suitability scores, each rounded to 0–100.
type Factors struct {
	TemperatureFactor int `json:"temperature_factor"`
	HumidityFactor    int `json:"humidity_factor"`
	WindFactor        int `json:"wind_factor"`
	CloudinessFactor  int `json:"cloudiness_factor"`
	UVFactor          int `json:"uv_factor"`
}

// DryingIndexResult is the scored outcome for one observation. Field names
// are consumed by presentation layers and must stay stable.
type DryingIndexResult struct {
	DryingIndex      int      `json:"drying_index"`
	Conditions       string   `json:"conditions"`
	Recommendations  []string `json:"recommendations"`
	OptimalForDrying bool     `json:"optimal_for_drying"`
	Factors          Factors  `json:"factors"`
}

// Location identifies the place an observation was taken for.
type Location struct {
	ID        string   `json:"id,omitempty" yaml:"id"`
	Name      string   `json:"name,omitempty" yaml:"name"`
	City      string   `json:"city,omitempty" yaml:"city"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Key returns the identifier used to key messages for this location.
func (l Location) Key() string {
	if l.ID != "" {
		return l.ID
	}
	return l.Name
}

// ObservationEnvelope is the message published by the collector for one
// location. Exactly one of Weather or Error is set: Error carries the reason
// the collector could not obtain an observation.
type ObservationEnvelope struct {
	Location Location            `json:"location" yaml:"location"`
	Weather  *WeatherObservation `json:"weather,omitempty" yaml:"weather,omitempty"`
	Error    string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// LocationReport is the per-location output. A failed upstream fetch yields a
// report with only Error set so sibling locations are unaffected.
type LocationReport struct {
	Location    Location            `json:"location"`
	Weather     *WeatherObservation `json:"weather,omitempty"`
	DryingIndex *DryingIndexResult  `json:"drying_index,omitempty"`
	Error       string              `json:"error,omitempty"`
	ProcessedAt time.Time           `json:"processed_at"`
}

// Failed reports whether the report is an isolated error record.
func (r LocationReport) Failed() bool {
	return r.Error != ""
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
