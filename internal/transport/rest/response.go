package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/pkg/ctxutil"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleError maps domain errors to HTTP statuses. Unexpected errors are
// logged and reported without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Code: "validation", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error(), "validation")
	case errors.Is(err, domain.ErrNoData):
		writeError(w, http.StatusServiceUnavailable, "tenant data is not available yet", "no_data")
	case errors.Is(err, domain.ErrSourceUnavailable):
		log.WarnContext(r.Context(), "data source unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusBadGateway, "data source unavailable", "source_unavailable")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request cancelled", "cancelled")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error", "internal")
	}
}
