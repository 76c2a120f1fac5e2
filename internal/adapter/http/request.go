package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"

	csvadapter "mesa-roi/internal/adapter/csv"
	"mesa-roi/internal/core/domain"
)

// rowsRequest is the JSON body accepted by the ingest and preview
// endpoints.
type rowsRequest struct {
	Rows []domain.PerformanceRow `json:"rows" validate:"dive"`
}

// decodeRows reads performance rows from the request body. A text/csv
// content type is parsed as a CSV export, anything else as JSON.
func (h *Handler) decodeRows(w http.ResponseWriter, r *http.Request) ([]domain.PerformanceRow, error) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/csv" {
		return csvadapter.ReadRows(r.Body)
	}

	var req rowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", domain.ErrInvalidInput, err)
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s failed on %s", domain.ErrInvalidInput, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return req.Rows, nil
}

// writeJSON encodes v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto HTTP statuses. Unexpected errors are
// logged and hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
