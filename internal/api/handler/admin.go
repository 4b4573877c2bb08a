package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tobyheywood/wordguess/internal/api/request"
	"github.com/tobyheywood/wordguess/internal/api/response"
	"github.com/tobyheywood/wordguess/internal/dependencies/clock"
	"github.com/tobyheywood/wordguess/internal/model"
	"github.com/tobyheywood/wordguess/internal/services/report"
	"github.com/tobyheywood/wordguess/internal/services/words"
)

// AdminHandler handles word pool CRUD and reporting endpoints
type AdminHandler struct {
	wordService   *words.Service
	reportService *report.Service
	clock         clock.Clock
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(wordService *words.Service, reportService *report.Service, clock clock.Clock) *AdminHandler {
	return &AdminHandler{
		wordService:   wordService,
		reportService: reportService,
		clock:         clock,
	}
}

// AddWord handles POST /api/v1/admin/words
func (h *AdminHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req request.AddWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	word, err := h.wordService.Add(r.Context(), req.Text, active)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.WordFromModel(word))
}

// ListWords handles GET /api/v1/admin/words?active=true
func (h *AdminHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	list, err := h.wordService.List(r.Context(), activeOnly)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordsFromModel(list))
}

// SetWordActive handles PATCH /api/v1/admin/words/{id}
func (h *AdminHandler) SetWordActive(w http.ResponseWriter, r *http.Request) {
	id := model.WordID(mux.Vars(r)["id"])

	var req request.SetWordActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	word, err := h.wordService.SetActive(r.Context(), id, req.Active)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordFromModel(word))
}

// DailyReport handles GET /api/v1/admin/reports/daily?date=YYYY-MM-DD
func (h *AdminHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := h.clock.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(model.QuotaDayLayout, raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("date must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	rep, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailyReportFromModel(rep))
}

// AccountReport handles GET /api/v1/admin/reports/accounts/{id}?from=...&to=...
func (h *AdminHandler) AccountReport(w http.ResponseWriter, r *http.Request) {
	accountID := model.AccountID(mux.Vars(r)["id"])

	from, err := time.Parse(model.QuotaDayLayout, r.URL.Query().Get("from"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("from must be YYYY-MM-DD"))
		return
	}
	to, err := time.Parse(model.QuotaDayLayout, r.URL.Query().Get("to"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("to must be YYYY-MM-DD"))
		return
	}
	if to.Before(from) {
		WriteError(w, NewInvalidRequestError("to must not precede from"))
		return
	}

	rep, err := h.reportService.ForAccount(r.Context(), accountID, from, to)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountReportFromModel(rep))
}
