package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/auth"
	"hrdash/internal/domain/employees"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	Directory *employees.Service
	Secret    string
	TokenTTL  time.Duration
}

func NewHandler(directory *employees.Service, secret string, ttl time.Duration) *Handler {
	return &Handler{Directory: directory, Secret: secret, TokenTTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.With(middleware.RequireIdentity).Get("/me", h.HandleMe)
}

type loginRequest struct {
	EmployeeID json.Number `json:"employeeId"`
	Password   string      `json:"password"`
}

type loginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Employee  employees.Employee `json:"employee"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	employeeID, err := payload.EmployeeID.Int64()
	if err != nil || employeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id must be a positive integer", requestID)
		return
	}

	employee, err := h.Directory.Authenticate(r.Context(), employeeID, payload.Password)
	if err != nil {
		shared.FailService(w, err, requestID, "login_failed", "error during login")
		return
	}

	expiresAt := time.Now().Add(h.TokenTTL)
	token, err := auth.GenerateToken(h.Secret, auth.Identity{EmployeeID: employee.ID, IsManager: employee.IsManager}, h.TokenTTL)
	if err != nil {
		slog.Error("token generation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "login_failed", "error during login", requestID)
		return
	}
	api.Success(w, loginResponse{Token: token, ExpiresAt: expiresAt.UTC(), Employee: employee}, requestID)
}

// HandleLogout is stateless: tokens expire on their own and clients drop them.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity, _ := middleware.GetIdentity(r.Context())
	employee, err := h.Directory.GetEmployee(r.Context(), identity.EmployeeID)
	if err != nil {
		shared.FailService(w, err, requestID, "me_failed", "failed to load current employee")
		return
	}
	api.Success(w, employee, requestID)
}
