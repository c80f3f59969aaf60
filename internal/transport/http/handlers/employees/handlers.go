package employeeshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/employees"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Service *employees.Service
}

func NewHandler(service *employees.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireIdentity).Get("/employees", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		shared.FailService(w, err, middleware.GetRequestID(r.Context()), "employee_list_failed", "failed to list employees")
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}
