package domain

// Choice is one selectable option of a Poll. Count is a cached tally of the
// votes recorded against ID.
type Choice struct {
	ID     int    `json:"id"`
	PollID int    `json:"poll_id"`
	Text   string `json:"text"`
	Count  int    `json:"count"`
}

type Poll struct {
	ID      int      `json:"id"`
	Topic   string   `json:"topic"`
	Choices []Choice `json:"choices"`
}

func NewChoice(id, pollID int, text string) Choice {
	return Choice{
		ID:     id,
		PollID: pollID,
		Text:   text,
	}
}

// NewPoll owns the given choices. Choices without a PollID get the poll's id.
func NewPoll(id int, topic string, choices []Choice) Poll {
	owned := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.PollID == 0 {
			c.PollID = id
		}
		owned = append(owned, c)
	}

	return Poll{
		ID:      id,
		Topic:   topic,
		Choices: owned,
	}
}

// Clone returns a poll that shares no memory with p.
func (p Poll) Clone() Poll {
	choices := make([]Choice, len(p.Choices))
	copy(choices, p.Choices)
	p.Choices = choices
	return p
}

// TotalVotes sums the tallies of every choice in the poll.
func (p Poll) TotalVotes() int {
	total := 0
	for _, c := range p.Choices {
		total += c.Count
	}
	return total
}

func ClonePolls(polls []Poll) []Poll {
	out := make([]Poll, 0, len(polls))
	for _, p := range polls {
		out = append(out, p.Clone())
	}
	return out
}
