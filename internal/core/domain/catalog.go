package domain

import "fmt"

type IssueKind string

const (
	IssueDuplicatePollID   IssueKind = "duplicate_poll_id"
	IssueDuplicateChoiceID IssueKind = "duplicate_choice_id"
	IssuePollIDMismatch    IssueKind = "poll_id_mismatch"
	IssueEmptyTopic        IssueKind = "empty_topic"
)

// CatalogIssue describes a data-integrity problem in a poll catalog.
type CatalogIssue struct {
	Kind     IssueKind
	PollID   int
	ChoiceID int
}

func (i CatalogIssue) String() string {
	switch i.Kind {
	case IssueDuplicateChoiceID, IssuePollIDMismatch:
		return fmt.Sprintf("%s: poll %d choice %d", i.Kind, i.PollID, i.ChoiceID)
	default:
		return fmt.Sprintf("%s: poll %d", i.Kind, i.PollID)
	}
}

// CheckCatalog reports integrity problems the engine tolerates silently.
// Choice ids are checked across the whole catalog, not per poll.
func CheckCatalog(polls []Poll) []CatalogIssue {
	var issues []CatalogIssue
	seenPolls := make(map[int]bool, len(polls))
	seenChoices := make(map[int]bool)

	for _, p := range polls {
		if seenPolls[p.ID] {
			issues = append(issues, CatalogIssue{Kind: IssueDuplicatePollID, PollID: p.ID})
		}
		seenPolls[p.ID] = true

		if p.Topic == "" {
			issues = append(issues, CatalogIssue{Kind: IssueEmptyTopic, PollID: p.ID})
		}

		for _, c := range p.Choices {
			if seenChoices[c.ID] {
				issues = append(issues, CatalogIssue{Kind: IssueDuplicateChoiceID, PollID: p.ID, ChoiceID: c.ID})
			}
			seenChoices[c.ID] = true

			if c.PollID != p.ID {
				issues = append(issues, CatalogIssue{Kind: IssuePollIDMismatch, PollID: p.ID, ChoiceID: c.ID})
			}
		}
	}
	return issues
}
