package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tobyheywood/wordguess/internal/api/middleware"
	"github.com/tobyheywood/wordguess/internal/api/request"
	"github.com/tobyheywood/wordguess/internal/api/response"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	session, err := h.gameController.StartSession(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.StartSessionFromModel(session))
}

// Guess handles POST /api/v1/game/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	token := middleware.GetToken(r.Context())

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.SessionID == "" {
		WriteError(w, NewInvalidRequestError("session_id is required"))
		return
	}

	session, err := h.gameController.SubmitGuess(
		r.Context(),
		model.SessionID(req.SessionID),
		account.ID,
		token,
		req.Guess,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Get handles GET /api/v1/game/sessions/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["id"])

	session, err := h.gameController.GetSession(r.Context(), sessionID, account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}
