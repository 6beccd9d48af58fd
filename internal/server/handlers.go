package server

import (
	"encoding/json"
	"net/http"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/services/ai"
)

// summaryRoute parameterizes one instance of the metric-summary flow: the
// endpoints differ only in prompt kind and response key, never in
// orchestration.
type summaryRoute struct {
	path        string
	kind        ai.SummaryKind
	responseKey string
}

var summaryRoutes = []summaryRoute{
	{path: "/ai/dora_score", kind: ai.KindDoraScore, responseKey: "dora_metrics_score"},
	{path: "/ai/lead_time_trends", kind: ai.KindLeadTimeTrends, responseKey: "lead_time_trends_summary"},
	{path: "/ai/deployment_frequency_trends", kind: ai.KindDeploymentFrequencyTrends, responseKey: "deployment_frequency_trends_summary"},
	{path: "/ai/change_failure_rate_trends", kind: ai.KindChangeFailureRateTrends, responseKey: "change_failure_rate_trends_summary"},
	{path: "/ai/mean_time_to_recovery_trends", kind: ai.KindMeanTimeToRecoveryTrends, responseKey: "mean_time_to_recovery_trends_summary"},
	{path: "/ai/dora_trends", kind: ai.KindDoraTrends, responseKey: "dora_trend_summary"},
	{path: "/ai/dora_data/compiled_summary", kind: ai.KindCompiledSummary, responseKey: "dora_compiled_summary"},
}

type summaryRequest struct {
	Data  map[string]interface{} `json:"data"`
	Model *string                `json:"model"`
}

type agentRequest struct {
	Feature string                 `json:"feature"`
	Query   string                 `json:"query"`
	Model   *string                `json:"model"`
	Data    map[string]interface{} `json:"data"`
}

type contributorSummaryRequest struct {
	ContributorData map[string]interface{} `json:"contributor_data"`
	Model           string                 `json:"model"`
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.resolver.AvailableModels())
}

// newSummaryHandler builds the handler for one summary endpoint.
func (s *Server) newSummaryHandler(route summaryRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summaryRequest
		if err := decodeBody(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		if req.Data == nil {
			s.writeError(w, r, domerrors.NewValidationError("data", "es requerido y debe ser un objeto"))
			return
		}
		if req.Model == nil || *req.Model == "" {
			s.writeError(w, r, domerrors.NewValidationError("model", "es requerido"))
			return
		}

		summary, err := s.gateway.Summarize(r.Context(), route.kind, *req.Model, req.Data)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{route.responseKey: summary})
	}
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Feature == "" {
		s.writeError(w, r, domerrors.NewValidationError("feature", "es requerido"))
		return
	}
	if req.Query == "" {
		s.writeError(w, r, domerrors.NewValidationError("query", "es requerido"))
		return
	}
	if req.Model == nil || *req.Model == "" {
		s.writeError(w, r, domerrors.NewValidationError("model", "es requerido"))
		return
	}
	if req.Data == nil {
		s.writeError(w, r, domerrors.NewValidationError("data", "es requerido y debe ser un objeto"))
		return
	}

	response, err := s.gateway.Agent(r.Context(), req.Feature, req.Query, *req.Model, req.Data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

func (s *Server) handleContributorSummary(w http.ResponseWriter, r *http.Request) {
	var req contributorSummaryRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.ContributorData == nil {
		s.writeError(w, r, domerrors.NewValidationError("contributor_data", "es requerido y debe ser un objeto"))
		return
	}

	summary, err := s.gateway.ContributorSummary(r.Context(), req.Model, req.ContributorData)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleTeamContributors(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("team_id")

	team, ok := s.teams.Get(teamID)
	if !ok {
		s.writeError(w, r, domerrors.NewTeamNotFoundError(teamID))
		return
	}

	ranked := s.aggregator.TeamContributors(r.Context(), team)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{"contributors": ranked})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domerrors.NewValidationError("body", "JSON invalido")
	}
	return nil
}
