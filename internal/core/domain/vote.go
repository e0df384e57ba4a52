package domain

// Vote is an immutable record of one cast choice. IDs are assigned in
// insertion order starting at 1.
type Vote struct {
	ID       int     `json:"id"`
	ChoiceID int     `json:"choice_id"`
	Comment  *string `json:"comment,omitempty"`
}

// ChoiceVote is the intent submitted by a caller before a Vote is recorded.
type ChoiceVote struct {
	ChoiceID int     `json:"choice_id"`
	Comment  *string `json:"comment,omitempty"`
}

// NewChoiceVote builds a commented vote intent. Use a ChoiceVote literal for
// a vote without a comment.
func NewChoiceVote(choiceID int, comment string) ChoiceVote {
	return ChoiceVote{ChoiceID: choiceID, Comment: &comment}
}

// PollsState is the full engine state as seen by readers.
type PollsState struct {
	Polls []Poll `json:"polls"`
	Votes []Vote `json:"votes"`
}
