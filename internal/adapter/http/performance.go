package httpadapter

import (
	"net/http"
)

type ingestResponse struct {
	Inserted int64 `json:"inserted"`
}

// handleIngest stores performance rows sent as CSV or JSON. It returns
// HTTP 201 with the number of stored rows, or 400 when any row is invalid.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	rows, err := h.decodeRows(w, r)
	if err != nil {
		h.writeError(w, "ingest", err)
		return
	}
	n, err := h.svc.Ingest(r.Context(), rows)
	if err != nil {
		h.writeError(w, "ingest", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, ingestResponse{Inserted: n})
}
