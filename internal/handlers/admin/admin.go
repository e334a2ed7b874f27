package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/dto"
	"github.com/yeswin/wingo/internal/service/gameservice"
	"github.com/yeswin/wingo/internal/service/walletservice"
	"github.com/yeswin/wingo/pkg/utils"
	"github.com/yeswin/wingo/pkg/validate"
)

type WalletService interface {
	DecideTransaction(ctx context.Context, id int64, accept bool) error
}

type GameService interface {
	SetNextResult(ctx context.Context, nextResult string, track domain.Track) error
}

type AdminHandler struct {
	walletService WalletService
	gameService   GameService
}

func New(walletService WalletService, gameService GameService) *AdminHandler {
	return &AdminHandler{
		walletService: walletService,
		gameService:   gameService,
	}
}

// DecideTransaction godoc
//
//	@Summary		Accept or cancel a pending transaction
//	@Description	Accepting a deposit credits the balance turnover-linked; cancelling a withdrawal refunds the held amount.
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Transaction id"
//	@Param			request	body		dto.DecisionRequestDTO	true	"Decision"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Transaction already decided"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{id}/decision [post]
func (h *AdminHandler) DecideTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.DecideTransaction(r.Context(), id, req.Accept); err != nil {
		switch {
		case errors.Is(err, walletservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrTransactionDecided):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "transaction decided"})
}

// SetNextResult godoc
//
//	@Summary		Override the next draw of a track
//	@Description	One of auto, small, big, red, green. The override applies to every following draw of the track until changed.
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.NextResultRequestDTO	true	"Override"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Invalid override or unknown track"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings/next-result [put]
func (h *AdminHandler) SetNextResult(w http.ResponseWriter, r *http.Request) {
	var req dto.NextResultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.gameService.SetNextResult(r.Context(), req.NextResult, domain.Track(req.Track)); err != nil {
		switch {
		case errors.Is(err, gameservice.ErrInvalidOverride), errors.Is(err, gameservice.ErrUnknownTrack):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "next result updated"})
}
