package domain

type PollResult struct {
	PollID     int           `json:"poll_id"`
	Topic      string        `json:"topic"`
	TotalVotes int           `json:"total_votes"`
	Choices    []ChoiceStats `json:"choices"`
}

type ChoiceStats struct {
	ChoiceID   int     `json:"choice_id"`
	Text       string  `json:"text"`
	VoteCount  int     `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}
