package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the authentication HTTP endpoints.
type Handler struct {
	service Service
	log     *slog.Logger
}

func NewHandler(service Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register) // POST /api/auth/register
		r.Post("/login", h.login)       // POST /api/auth/login
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, messageResponse{"All fields are required"})
		return
	}

	pub, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			respond(w, http.StatusBadRequest, messageResponse{"All fields are required"})
		case errors.Is(err, ErrDuplicateUser):
			respond(w, http.StatusBadRequest, messageResponse{"User with this email already exists"})
		default:
			// Full detail stays in the log; the client sees a generic message.
			h.log.Error("registration failed", "error", err)
			respond(w, http.StatusInternalServerError, messageResponse{"Server error during registration"})
		}
		return
	}

	respond(w, http.StatusCreated, struct {
		Message string      `json:"message"`
		User    interface{} `json:"user"`
	}{
		Message: string(pub.Role) + " registered successfully!",
		User:    pub,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, messageResponse{"Email and password are required"})
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			respond(w, http.StatusBadRequest, messageResponse{"Email and password are required"})
		case errors.Is(err, ErrInvalidCredentials):
			respond(w, http.StatusBadRequest, messageResponse{"Invalid email or password"})
		default:
			h.log.Error("login failed", "error", err)
			respond(w, http.StatusInternalServerError, messageResponse{"Server error during login"})
		}
		return
	}

	respond(w, http.StatusOK, struct {
		Message string      `json:"message"`
		User    interface{} `json:"user"`
		Token   string      `json:"token"`
	}{
		Message: "Login successful!",
		User:    res.User,
		Token:   res.Token,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
