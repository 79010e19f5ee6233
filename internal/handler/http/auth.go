package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/service"
	"github.com/MKhiriev/go-vitals-keeper/internal/store"
	"github.com/MKhiriev/go-vitals-keeper/internal/utils"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormDescriptor{
		Action: "/register",
		Method: http.MethodPost,
		Fields: []models.FormField{
			{Name: "name", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid form data"}, http.StatusBadRequest)
		return
	}

	user := models.User{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		var validationErrors service.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			log.Err(err).Msg("invalid registration data provided")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:  "validation failed",
				Fields: validationErrors,
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: store.ErrEmailAlreadyRegistered.Error()}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	// no auto-login: the client proceeds to /login with the new credentials
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormDescriptor{
		Action: "/login",
		Method: http.MethodPost,
		Fields: []models.FormField{
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid form data"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// one generic message whether the email exists or not
			log.Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrInvalidCredentials.Error()}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
