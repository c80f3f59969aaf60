package insightshandler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/insights"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Service *insights.Service
	Now     func() time.Time
}

func NewHandler(service *insights.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/insights", func(r chi.Router) {
		r.Use(middleware.RequireIdentity)
		r.Get("/", h.handleReport)
		r.Get("/report.pdf", h.handleReportPDF)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.GetInsights(r.Context())
	if err != nil {
		shared.FailService(w, err, middleware.GetRequestID(r.Context()), "insights_failed", "failed to compute insights")
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	report, err := h.Service.GetInsights(r.Context())
	if err != nil {
		shared.FailService(w, err, requestID, "insights_failed", "failed to compute insights")
		return
	}

	var buf bytes.Buffer
	if err := insights.RenderPDF(&buf, report, h.Now()); err != nil {
		slog.Error("insights pdf render failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "insights_pdf_failed", "failed to render report", requestID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="insights.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write insights pdf failed", "err", err, "requestId", requestID)
	}
}
