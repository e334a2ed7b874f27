package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/dto"
	"github.com/yeswin/wingo/internal/service/authservice"
	"github.com/yeswin/wingo/pkg/utils"
	"github.com/yeswin/wingo/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, gmail, password string) (*domain.User, error)
	Authenticate(ctx context.Context, gmail, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new player
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		200		{object}	dto.TokenResponseDTO	"Session token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		409		{object}	utils.Response			"Gmail already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Gmail, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrGmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondWithToken(w, user.ID)
}

// Login godoc
//
//	@Summary		Authenticate a player
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.TokenResponseDTO	"Session token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Gmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials), errors.Is(err, authservice.ErrUserBlocked):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.respondWithToken(w, user.ID)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, userID int) {
	token, err := h.authService.GenerateToken(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}
