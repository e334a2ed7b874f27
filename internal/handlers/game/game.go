package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/dto"
	"github.com/yeswin/wingo/internal/service/gameservice"
	"github.com/yeswin/wingo/internal/service/wagerservice"
	"github.com/yeswin/wingo/internal/ws"
	"github.com/yeswin/wingo/pkg/auth"
	"github.com/yeswin/wingo/pkg/utils"
	"github.com/yeswin/wingo/pkg/validate"
)

type GameService interface {
	State(track domain.Track) (int64, int64, error)
	History(ctx context.Context, track domain.Track) ([]domain.Outcome, error)
}

type WagerService interface {
	PlaceWager(ctx context.Context, userID int, track domain.Track, selection domain.Selection, amount float64) (*domain.Wager, error)
	GetWagers(ctx context.Context, userID int) ([]domain.Wager, error)
}

type GameHandler struct {
	gameService  GameService
	wagerService WagerService
	hub          *ws.Hub
}

func New(gameService GameService, wagerService WagerService, hub *ws.Hub) *GameHandler {
	return &GameHandler{
		gameService:  gameService,
		wagerService: wagerService,
		hub:          hub,
	}
}

// GetState godoc
//
//	@Summary		Current round state of a track
//	@Produce		json
//	@Param			track	path		string	true	"Track id (30sec, 1min, 3min, 5min)"
//	@Success		200		{object}	dto.TrackStateResponseDTO
//	@Failure		404		{object}	utils.Response	"Unknown track"
//	@Router			/api/game/{track}/state [get]
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	track := domain.Track(chi.URLParam(r, "track"))

	periodID, remaining, err := h.gameService.State(track)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "unknown track")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TrackStateResponseDTO{
		Track:            string(track),
		PeriodID:         periodID,
		SecondsRemaining: remaining,
	})
}

// GetHistory godoc
//
//	@Summary		Latest published outcomes of a track
//	@Produce		json
//	@Success		200	{array}		dto.OutcomeResponseDTO
//	@Failure		404	{object}	utils.Response	"Unknown track"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/game/{track}/history [get]
func (h *GameHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	track := domain.Track(chi.URLParam(r, "track"))

	outcomes, err := h.gameService.History(r.Context(), track)
	if err != nil {
		if errors.Is(err, gameservice.ErrUnknownTrack) {
			utils.RespondWithError(w, http.StatusNotFound, "unknown track")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OutcomeResponseDTO, len(outcomes))
	for i, o := range outcomes {
		response[i] = dto.OutcomeResponseDTO{
			Track:    string(o.Track),
			PeriodID: o.PeriodID,
			Number:   o.Number,
			Size:     string(o.Size),
			Color:    string(o.Color),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// StreamOutcomes subscribes the connection to a track's outcome feed.
func (h *GameHandler) StreamOutcomes(w http.ResponseWriter, r *http.Request) {
	track := domain.Track(chi.URLParam(r, "track"))
	if !track.Valid() {
		utils.RespondWithError(w, http.StatusNotFound, "unknown track")
		return
	}
	h.hub.ServeWS(w, r, ws.OutcomeTopic(track))
}

// StreamWagers subscribes the connection to the caller's wager feed.
func (h *GameHandler) StreamWagers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	h.hub.ServeWS(w, r, ws.WagerTopic(userID))
}

// PlaceWager godoc
//
//	@Summary		Place a wager against the open period of a track
//	@Description	The selection is a digit ("0".."9"), a color (red/green/violet) or a size (small/big).
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceWagerRequestDTO	true	"Wager payload"
//	@Success		200		{object}	dto.WagerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		409		{object}	utils.Response	"Betting closed for this round"
//	@Failure		422		{object}	utils.Response	"Malformed selection or unknown track"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bets [post]
func (h *GameHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	selection, err := domain.ParseSelection(req.Selection)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	wager, err := h.wagerService.PlaceWager(r.Context(), userID, domain.Track(req.Track), selection, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, wagerservice.ErrBettingClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, wagerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, wagerservice.ErrUnknownTrack), errors.Is(err, wagerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, wagerToDTO(wager))
}

// GetWagers godoc
//
//	@Summary		The caller's latest wagers, newest first
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WagerResponseDTO
//	@Success		204	{object}	utils.Response	"No wagers yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bets [get]
func (h *GameHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wagers, err := h.wagerService.GetWagers(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wagers")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No wagers yet")
		return
	}

	response := make([]dto.WagerResponseDTO, len(wagers))
	for i := range wagers {
		response[i] = wagerToDTO(&wagers[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func wagerToDTO(w *domain.Wager) dto.WagerResponseDTO {
	return dto.WagerResponseDTO{
		ID:        w.ID,
		Track:     string(w.Track),
		PeriodID:  w.PeriodID,
		Selection: w.Selection.Value(),
		Amount:    w.Amount,
		Status:    w.Status,
		Payout:    w.Payout,
		PlacedAt:  w.PlacedAt.Format(time.RFC3339),
	}
}
