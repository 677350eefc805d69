package httpadapter

import (
	"fmt"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/drying-index-etl/internal/domain"
)

type scoreResponse struct {
	Weather     domain.WeatherObservation `json:"weather"`
	DryingIndex domain.DryingIndexResult  `json:"drying_index"`
}

// handleScore scores a single observation supplied in the request body.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var obs domain.WeatherObservation
	if err := decodeJSON(w, r, &obs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid observation: %v", err))
		return
	}

	result := domain.CalculateDryingIndex(obs)
	s.metrics.RecordReport(false, result.Conditions, result.DryingIndex)

	sharedobs.WriteJSON(w, http.StatusOK, scoreResponse{Weather: obs, DryingIndex: result})
}

// handleScoreBatch scores a list of observation envelopes. Envelopes that
// carry an upstream error, or are malformed, come back as error reports
// without affecting the rest of the batch.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var envs []domain.ObservationEnvelope
	if err := decodeJSON(w, r, &envs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid batch: %v", err))
		return
	}
	if limit := s.limits.MaxBatchLocations; limit > 0 && len(envs) > limit {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch has %d locations, limit is %d", len(envs), limit))
		return
	}

	reports := domain.EvaluateBatch(envs)
	failed := 0
	for _, rep := range reports {
		if rep.Failed() {
			failed++
			s.metrics.RecordReport(true, "", 0)
			continue
		}
		s.metrics.RecordReport(false, rep.DryingIndex.Conditions, rep.DryingIndex.DryingIndex)
	}
	s.logger.Debug("scored batch", "locations", len(reports), "failed", failed)

	sharedobs.WriteJSON(w, http.StatusOK, reports)
}
