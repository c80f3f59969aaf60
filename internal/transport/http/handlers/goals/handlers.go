package goalshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/goals"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Service *goals.Service
}

func NewHandler(service *goals.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/goals", func(r chi.Router) {
		r.Use(middleware.RequireIdentity)
		r.Get("/", h.handleList)
		r.Get("/statuses", h.handleStatuses)
		r.With(middleware.RequireManager).Post("/", h.handleCreate)
		r.With(middleware.RequireManager).Put("/{goalID}/status", h.handleUpdateStatus)
	})
}

type goalResponse struct {
	ID               int64  `json:"id"`
	Description      string `json:"description"`
	DueDate          string `json:"dueDate"`
	Status           string `json:"status"`
	ManagerFirstName string `json:"managerFirstName"`
	ManagerLastName  string `json:"managerLastName"`
}

func toResponse(g goals.GoalView) goalResponse {
	return goalResponse{
		ID:               g.ID,
		Description:      g.Description,
		DueDate:          shared.FormatDate(g.DueDate),
		Status:           string(g.Status),
		ManagerFirstName: g.ManagerFirstName,
		ManagerLastName:  g.ManagerLastName,
	}
}

// handleList returns the goals of employeeId, defaulting to the caller. Only managers
// may read another employee's goals.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	employeeID := identity.EmployeeID
	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "employeeId", Reason: "must be a positive integer"}})
			return
		}
		employeeID = parsed
	}
	if employeeID != identity.EmployeeID && !identity.IsManager {
		api.Fail(w, http.StatusForbidden, "forbidden", "you may only view your own goals", requestID)
		return
	}

	list, err := h.Service.ListGoalsForEmployee(r.Context(), employeeID)
	if err != nil {
		shared.FailService(w, err, requestID, "goal_list_failed", "failed to list goals")
		return
	}
	out := make([]goalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toResponse(g))
	}
	api.Success(w, out, requestID)
}

// handleStatuses lists the options for the create and update forms.
func (h *Handler) handleStatuses(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string][]goals.Status{
		"create": goals.Statuses,
		"update": h.Service.Policy().UpdateTargets(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())

	var payload struct {
		EmployeeID  int64  `json:"employeeId"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
		Status      string `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.PositiveID("employeeId", payload.EmployeeID)
	v.Required("description", payload.Description, "is required")
	v.Required("status", payload.Status, "is required")
	dueDate, _ := v.Date("dueDate", payload.DueDate)
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.CreateGoal(r.Context(), goals.NewGoal{
		EmployeeID:  payload.EmployeeID,
		ManagerID:   identity.EmployeeID,
		Description: payload.Description,
		DueDate:     dueDate,
		Status:      goals.Status(payload.Status),
	})
	if err != nil {
		shared.FailService(w, err, requestID, "goal_create_failed", "failed to create goal")
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	goalID, err := strconv.ParseInt(chi.URLParam(r, "goalID"), 10, 64)
	if err != nil || goalID <= 0 {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", requestID)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	if err := h.Service.UpdateGoalStatus(r.Context(), goalID, goals.Status(payload.Status)); err != nil {
		shared.FailService(w, err, requestID, "goal_update_failed", "failed to update goal")
		return
	}
	api.Success(w, map[string]any{"id": goalID, "status": payload.Status}, requestID)
}
