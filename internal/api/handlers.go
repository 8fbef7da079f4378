// Package api exposes HTTP handlers for workout summaries.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"example.com/workouts/internal/auth"
	"example.com/workouts/internal/domain"
)

const maxBatchSize = 500

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", healthz)
	r.Get("/v1/workout-types", h.listWorkoutTypes)
	r.Post("/v1/summaries", h.createSummary)
	r.Post("/v1/summaries/batch", h.createSummaryBatch)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireScope(w, r, auth.ScopeSummariesRead, auth.ScopeSummariesWrite); !ok {
		return
	}

	codes := domain.Codes()
	items := make([]WorkoutTypeView, 0, len(codes))
	for _, code := range codes {
		spec, _ := domain.Spec(code)
		items = append(items, WorkoutTypeView{
			Code:        spec.Code,
			WorkoutType: spec.Kind.Name(),
			Arity:       spec.Arity(),
			Fields:      spec.Fields,
		})
	}
	writeJSON(w, http.StatusOK, ListWorkoutTypesResponse{Items: items})
}

func (h *Handler) createSummary(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireScope(w, r, auth.ScopeSummariesWrite)
	if !ok {
		return
	}
	formula, ok := walkingFormula(w, r)
	if !ok {
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	result, err := h.service.Summarize(r.Context(), domain.SummarizeInput{
		TenantID:       claims.TenantID,
		Package:        req.toPackage(),
		WalkingFormula: formula,
	})
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryView(result))
}

func (h *Handler) createSummaryBatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireScope(w, r, auth.ScopeSummariesWrite)
	if !ok {
		return
	}
	formula, ok := walkingFormula(w, r)
	if !ok {
		return
	}

	var req BatchSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	packages := make([]domain.Package, 0, len(req.Packages))
	for _, p := range req.Packages {
		packages = append(packages, p.toPackage())
	}

	results, err := h.service.SummarizeBatch(r.Context(), domain.SummarizeBatchInput{
		TenantID:       claims.TenantID,
		Packages:       packages,
		WalkingFormula: formula,
	})
	if err != nil {
		var pkgErr *domain.PackageError
		if errors.As(err, &pkgErr) {
			writeDomainError(w, pkgErr.Err, &pkgErr.Index)
			return
		}
		writeDomainError(w, err, nil)
		return
	}

	resp := BatchSummaryResponse{Items: make([]SummaryView, 0, len(results))}
	for _, res := range results {
		resp.Items = append(resp.Items, toSummaryView(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

func requireScope(w http.ResponseWriter, r *http.Request, scopes ...string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasAnyScope(scopes...) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scopes[0]+" required")
		return nil, false
	}
	return claims, true
}

func walkingFormula(w http.ResponseWriter, r *http.Request) (domain.WalkingFormula, bool) {
	raw := r.URL.Query().Get("walking_formula")
	if raw == "" {
		return "", true
	}
	formula, ok := domain.ParseWalkingFormula(strings.ToLower(raw))
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_failed", "walking_formula must be floor or real")
		return "", false
	}
	return formula, true
}

// SummaryRequest is the payload for POST /v1/summaries.
type SummaryRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Validate ensures request correctness. Value counts are checked by the dispatcher.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	if r.Data == nil {
		return errors.New("data is required")
	}
	return nil
}

func (r SummaryRequest) toPackage() domain.Package {
	return domain.Package{Code: strings.TrimSpace(r.WorkoutType), Data: r.Data}
}

// BatchSummaryRequest is the payload for POST /v1/summaries/batch.
type BatchSummaryRequest struct {
	Packages []SummaryRequest `json:"packages"`
}

// Validate ensures request correctness.
func (r BatchSummaryRequest) Validate() error {
	if len(r.Packages) == 0 {
		return errors.New("packages must not be empty")
	}
	if len(r.Packages) > maxBatchSize {
		return errors.New("too many packages in batch")
	}
	for _, p := range r.Packages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SummaryView exposes one computed summary. Non-finite numbers are null.
type SummaryView struct {
	Code        string   `json:"code"`
	WorkoutType string   `json:"workout_type"`
	Duration    *float64 `json:"duration_h"`
	Distance    *float64 `json:"distance_km"`
	Speed       *float64 `json:"speed_kmh"`
	Calories    *float64 `json:"calories_kcal"`
	Message     string   `json:"message"`
}

// BatchSummaryResponse packages batch results in request order.
type BatchSummaryResponse struct {
	Items []SummaryView `json:"items"`
}

// WorkoutTypeView describes a registered type code.
type WorkoutTypeView struct {
	Code        string   `json:"code"`
	WorkoutType string   `json:"workout_type"`
	Arity       int      `json:"arity"`
	Fields      []string `json:"fields"`
}

// ListWorkoutTypesResponse lists registered type codes.
type ListWorkoutTypesResponse struct {
	Items []WorkoutTypeView `json:"items"`
}

func toSummaryView(res domain.Result) SummaryView {
	s := res.Summary
	return SummaryView{
		Code:        res.Code,
		WorkoutType: s.WorkoutType,
		Duration:    domain.Finite(s.Duration),
		Distance:    domain.Finite(s.Distance),
		Speed:       domain.Finite(s.Speed),
		Calories:    domain.Finite(s.Calories),
		Message:     s.Message(),
	}
}

func writeDomainError(w http.ResponseWriter, err error, index *int) {
	reason := domain.ErrorReason(err)
	status := http.StatusUnprocessableEntity
	if reason == "internal" {
		status = http.StatusInternalServerError
	}
	payload := map[string]interface{}{
		"type":   reason,
		"detail": err.Error(),
	}
	if index != nil {
		payload["index"] = *index
	}
	writeJSON(w, status, payload)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
