package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/logger"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("error al escribir la respuesta", slog.Any("error", err))
	}
}

// writeError maps a domain error to the uniform error contract. Client
// errors carry a localized, actionable message; upstream and unexpected
// failures are logged with their detail and answered with a generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var (
		invalidModel      *domerrors.InvalidModelError
		invalidFeature    *domerrors.InvalidFeatureError
		missingCredential *domerrors.MissingCredentialError
		validation        *domerrors.ValidationError
		teamNotFound      *domerrors.TeamNotFoundError
		upstream          *domerrors.UpstreamError
	)

	switch {
	case errors.As(err, &invalidModel):
		s.writeErrorMessage(w, http.StatusBadRequest, "error_invalid_model", map[string]interface{}{
			"Model": invalidModel.Model,
		})
	case errors.As(err, &invalidFeature):
		s.writeErrorMessage(w, http.StatusBadRequest, "error_invalid_feature", map[string]interface{}{
			"Feature": invalidFeature.Feature,
		})
	case errors.As(err, &missingCredential):
		s.writeErrorMessage(w, http.StatusBadRequest, "error_missing_credential", map[string]interface{}{
			"Model": missingCredential.Model,
		})
	case errors.As(err, &validation):
		s.writeErrorMessage(w, http.StatusBadRequest, "error_invalid_request", map[string]interface{}{
			"Detail": validation.Error(),
		})
	case errors.As(err, &teamNotFound):
		s.writeErrorMessage(w, http.StatusNotFound, "error_team_not_found", map[string]interface{}{
			"TeamID": teamNotFound.TeamID,
		})
	case errors.As(err, &upstream):
		logger.Error(ctx, "fallo upstream", err)
		s.writeErrorMessage(w, http.StatusInternalServerError, "error_upstream", nil)
	default:
		logger.Error(ctx, "error inesperado", err)
		s.writeErrorMessage(w, http.StatusInternalServerError, "error_upstream", nil)
	}
}

func (s *Server) writeErrorMessage(w http.ResponseWriter, status int, messageID string, data map[string]interface{}) {
	s.writeJSON(w, status, errorResponse{
		Status:  "error",
		Message: s.trans.GetMessage(messageID, 0, data),
	})
}
