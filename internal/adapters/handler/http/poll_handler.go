package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type PollHandler struct {
	service ports.PollService
	reader  ports.StateReader
	summary ports.SummaryService
}

func NewPollHandler(service ports.PollService, reader ports.StateReader, summary ports.SummaryService) *PollHandler {
	return &PollHandler{
		service: service,
		reader:  reader,
		summary: summary,
	}
}

// ListPolls godoc
// @Summary      Lists the loaded polls
// @Description  Returns every poll of the current catalog with its choices and tallies.
// @Tags         polls
// @Produce      json
// @Success      200  {array}  domain.Poll
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reader.Polls())
}

// GetPoll godoc
// @Summary      Gets one poll
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200  {object}  domain.Poll
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	poll, err := h.reader.Poll(id)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, poll)
}

// LoadPolls godoc
// @Summary      Reloads the poll catalog
// @Description  Fetches the catalog from the configured source and replaces the loaded polls. Votes are kept.
// @Tags         polls
// @Produce      json
// @Success      200  {array}   domain.Poll
// @Failure      503  {object}  errorResponse
// @Router       /polls/load [post]
func (h *PollHandler) LoadPolls(w http.ResponseWriter, r *http.Request) {
	// A load is not aborted when the client goes away.
	ctx := context.WithoutCancel(r.Context())

	if err := h.service.Load(ctx); err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.reader.Polls())
}

// GetPollResults godoc
// @Summary      Gets the results of one poll
// @Tags         results
// @Produce      json
// @Param        id   path      int  true  "Poll ID"
// @Success      200  {object}  domain.PollResult
// @Failure      404  {object}  errorResponse
// @Router       /polls/{id}/results [get]
func (h *PollHandler) GetPollResults(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	result, err := h.summary.SummarizePoll(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListResults godoc
// @Summary      Lists the results of every poll
// @Tags         results
// @Produce      json
// @Success      200  {array}   domain.PollResult
// @Failure      500  {object}  errorResponse
// @Router       /results [get]
func (h *PollHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.summary.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Health godoc
// @Summary      Reports tally consistency
// @Description  Checks every tally against its loaded count plus the votes recorded since the last load.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      500  {object}  healthResponse
// @Router       /health [get]
func (h *PollHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.reader.Verify(); err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "inconsistent", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
