package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/port"
)

// handlePreview computes a plan for the rows in the body without storing
// anything.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	rows, err := h.decodeRows(w, r)
	if err != nil {
		h.writeError(w, "preview", err)
		return
	}
	plan, err := h.svc.Preview(r.Context(), rows)
	if err != nil {
		h.writeError(w, "preview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// handleRun computes and stores a plan over stored rows. Optional `from`
// and `to` query parameters (RFC3339 or YYYY-MM-DD) bound the reporting
// period and `campaign_id` restricts it to one campaign.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter port.PerformanceFilter
		err    error
	)
	if filter.From, err = parseTime(q.Get("from")); err != nil {
		http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
		return
	}
	if filter.To, err = parseTime(q.Get("to")); err != nil {
		http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
		return
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		http.Error(w, "'to' is before 'from'", http.StatusBadRequest)
		return
	}
	if cid := q.Get("campaign_id"); cid != "" {
		filter.CampaignID = &cid
	}

	plan, err := h.svc.Run(r.Context(), filter)
	if err != nil {
		h.writeError(w, "run plan", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, plan)
}

// handleGetPlan returns a stored plan by id.
func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}
	plan, err := h.svc.GetPlan(r.Context(), id)
	if err != nil {
		h.writeError(w, "get plan", err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// handleLatestPlan returns the most recent stored plan.
func (h *Handler) handleLatestPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.LatestPlan(r.Context())
	if err != nil {
		h.writeError(w, "latest plan", err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: bad time %q", domain.ErrInvalidInput, s)
}
