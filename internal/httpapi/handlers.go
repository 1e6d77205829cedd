package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/report"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/alexanderramin/quoteforge/internal/service"
)

// Handlers holds the services behind the HTTP routes.
type Handlers struct {
	quotes    service.QuoteService
	projects  service.ProjectService
	configs   service.ConfigService
	dashboard service.DashboardService
	bodyLimit int64
	log       *slog.Logger
}

func NewHandlers(
	quotes service.QuoteService,
	projects service.ProjectService,
	configs service.ConfigService,
	dashboard service.DashboardService,
	bodyLimit int64,
	log *slog.Logger,
) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		quotes:    quotes,
		projects:  projects,
		configs:   configs,
		dashboard: dashboard,
		bodyLimit: bodyLimit,
		log:       log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type estimateResponse struct {
	Estimate      domain.Estimate `json:"estimate"`
	ConfigVersion int             `json:"configVersion"`
}

func (h *Handlers) Estimate(w http.ResponseWriter, r *http.Request) {
	in, ok := readJSON[domain.PricingInputs](w, r, h.bodyLimit)
	if !ok {
		return
	}
	est, version, err := h.quotes.Estimate(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, estimateResponse{Estimate: est, ConfigVersion: version})
}

type analyzeRequest struct {
	Description string `json:"description"`
	// Save stores the mapped quote under Name when set.
	Save        bool   `json:"save,omitempty"`
	Name        string `json:"name,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
}

type analyzeResponse struct {
	*service.IdeaEstimate
	Project *domain.Project `json:"project,omitempty"`
}

func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[analyzeRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	idea, err := h.quotes.AnalyzeIdea(r.Context(), req.Description)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	resp := analyzeResponse{IdeaEstimate: idea}
	if req.Save {
		analysis := idea.Analysis
		p, err := h.quotes.SaveQuote(r.Context(), service.QuoteRequest{
			Name:        req.Name,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			Description: req.Description,
			Source:      domain.SourceAI,
			Inputs:      idea.Mapping.Inputs,
			Analysis:    &analysis,
		})
		if err != nil {
			h.writeDomainError(w, err, "")
			return
		}
		resp.Project = p
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Features(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pricing.FeatureCatalog)
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.ProjectFilter{
		Status: domain.ProjectStatus(q.Get("status")),
		Health: domain.HealthStatus(q.Get("health")),
		Query:  q.Get("q"),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		f.Limit = n
	}
	projects, err := h.projects.List(r.Context(), f)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[service.QuoteRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	if req.Source == "" {
		req.Source = domain.SourceAPI
	}
	p, err := h.quotes.SaveQuote(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	w.Header().Set("Location", "/api/v1/projects/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, err, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	if err := h.projects.Delete(r.Context(), urlParam(r, "id"), force); err != nil {
		h.writeDomainError(w, err, "project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusRequest struct {
	Status domain.ProjectStatus `json:"status"`
}

func (h *Handlers) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[statusRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	p, err := h.projects.UpdateStatus(r.Context(), urlParam(r, "id"), req.Status)
	if err != nil {
		h.writeDomainError(w, err, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handlers) UpdateProjectNotes(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[notesRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	if err := h.projects.UpdateNotes(r.Context(), urlParam(r, "id"), req.Notes); err != nil {
		h.writeDomainError(w, err, "project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProjectReport renders the quote report. format=md returns markdown;
// internal=true includes cost and margin.
func (h *Handlers) ProjectReport(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, err, "project not found")
		return
	}
	q := r.URL.Query()
	md := report.Markdown(p, h.quotes.Narrative(r.Context(), p), report.Options{Internal: q.Get("internal") == "true"})

	if q.Get("format") == "md" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(md))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(report.RenderHTML(md))
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handlers) ExportProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), repository.ProjectFilter{
		Status: domain.ProjectStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quotes-%s.xlsx"`, time.Now().UTC().Format("20060102")))
	if err := report.WriteWorkbook(w, projects); err != nil {
		h.log.Error("export failed", "error", err)
	}
}

func (h *Handlers) GetPricingConfig(w http.ResponseWriter, r *http.Request) {
	ac, err := h.configs.Active(r.Context())
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ac)
}

type saveConfigRequest struct {
	Label  string                `json:"label"`
	Config pricing.Configuration `json:"config"`
}

func (h *Handlers) SavePricingConfig(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[saveConfigRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	v, err := h.configs.Save(r.Context(), req.Label, req.Config)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handlers) PricingConfigHistory(w http.ResponseWriter, r *http.Request) {
	versions, err := h.configs.History(r.Context())
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

type activateRequest struct {
	Version int `json:"version"`
}

func (h *Handlers) ActivatePricingConfig(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[activateRequest](w, r, h.bodyLimit)
	if !ok {
		return
	}
	if err := h.configs.Activate(r.Context(), req.Version); err != nil {
		h.writeDomainError(w, err, "pricing config version not found")
		return
	}
	h.GetPricingConfig(w, r)
}

func (h *Handlers) SimulatePricingConfig(w http.ResponseWriter, r *http.Request) {
	override, ok := readJSON[pricing.Configuration](w, r, h.bodyLimit)
	if !ok {
		return
	}
	rep, err := h.configs.Simulate(r.Context(), override)
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
