package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/pollstate/internal/core/domain"
	"github.com/vncsmyrnk/pollstate/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	reader  ports.StateReader
}

func NewVoteHandler(service ports.VoteService, reader ports.StateReader) *VoteHandler {
	return &VoteHandler{
		service: service,
		reader:  reader,
	}
}

type voteRequest struct {
	ChoiceID *int    `json:"choice_id"`
	Comment  *string `json:"comment"`
}

// CastVote godoc
// @Summary      Casts a vote
// @Description  Records a vote for a choice with an optional comment. The choice is not required to exist in the loaded catalog.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        vote  body      voteRequest  true  "Vote"
// @Success      201   {object}  domain.Vote
// @Failure      400   {object}  errorResponse
// @Router       /votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChoiceID == nil {
		writeError(w, http.StatusBadRequest, "choice_id is required")
		return
	}

	vote := h.service.Vote(r.Context(), domain.ChoiceVote{ChoiceID: *req.ChoiceID, Comment: req.Comment})
	writeJSON(w, http.StatusCreated, vote)
}

// ListVotes godoc
// @Summary      Lists recorded votes
// @Tags         votes
// @Produce      json
// @Success      200  {array}  domain.Vote
// @Router       /votes [get]
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reader.Votes())
}

// ListChoiceVotes godoc
// @Summary      Lists the votes cast for one choice
// @Tags         votes
// @Produce      json
// @Param        id   path      int  true  "Choice ID"
// @Success      200  {array}   domain.Vote
// @Failure      400  {object}  errorResponse
// @Router       /choices/{id}/votes [get]
func (h *VoteHandler) ListChoiceVotes(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidChoiceID.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.reader.VotesForChoice(id))
}
