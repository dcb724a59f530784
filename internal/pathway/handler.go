package pathway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"health-advisor/internal/ratelimit"
	"health-advisor/internal/triage"
)

// ReportRenderer turns a merged result into a downloadable document.
type ReportRenderer interface {
	Render(result *CarePathwayResult) ([]byte, error)
}

type Handler struct {
	svc     *Service
	reports ReportRenderer // nil disables the report endpoint
}

func NewHandler(svc *Service, reports ReportRenderer) *Handler {
	return &Handler{svc: svc, reports: reports}
}

func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTriageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Classify(r.Context(), req)
	if err != nil {
		writeTriageError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildClassifyResponse(h.svc.Catalog(), result))
}

func (h *Handler) HandlePathway(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTriageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Synthesize(r.Context(), req, ratelimit.ClientKey(r))
	if err != nil {
		writeTriageError(w, err)
		return
	}

	// Denial of the generative branch is not denial of the whole feature:
	// the deterministic result still goes back, with a retry hint attached.
	if IsRateLimited(result) {
		w.Header().Set("Retry-After", "60")
	}
	writeJSON(w, http.StatusOK, buildPathwayResponse(h.svc.Catalog(), result))
}

func (h *Handler) HandleSymptoms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":  h.svc.Catalog().Version(),
		"symptoms": h.svc.Catalog().Symptoms(),
	})
}

// HandleReport renders a deterministic triage result as a PDF summary.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if h.reports == nil {
		http.Error(w, "report generation unavailable", http.StatusServiceUnavailable)
		return
	}
	req, ok := decodeTriageRequest(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Classify(r.Context(), req)
	if err != nil {
		writeTriageError(w, err)
		return
	}

	pdfBytes, err := h.reports.Render(result)
	if err != nil {
		http.Error(w, "failed to render report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="triage_%s.pdf"`, uuid.New()))
	w.Write(pdfBytes)
}

func decodeTriageRequest(w http.ResponseWriter, r *http.Request) (TriageRequest, bool) {
	var req TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return TriageRequest{}, false
	}
	return req, true
}

func writeTriageError(w http.ResponseWriter, err error) {
	var valErr *triage.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "validation_failed",
			"details": valErr.Details,
		})
		return
	}
	http.Error(w, "Processing failed: "+err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/triage/classify", h.HandleClassify)
	r.Post("/triage/pathway", h.HandlePathway)
	r.Post("/triage/report", h.HandleReport)
	r.Get("/symptoms", h.HandleSymptoms)
}
