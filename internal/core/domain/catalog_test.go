package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCatalogClean(t *testing.T) {
	polls := []Poll{
		NewPoll(1, "A", []Choice{NewChoice(1, 1, "a1"), NewChoice(2, 1, "a2")}),
		NewPoll(2, "B", []Choice{NewChoice(3, 2, "b1")}),
	}
	assert.Empty(t, CheckCatalog(polls))
}

func TestCheckCatalogReportsIssues(t *testing.T) {
	polls := []Poll{
		{ID: 1, Topic: "A", Choices: []Choice{{ID: 1, PollID: 1}, {ID: 2, PollID: 5}}},
		{ID: 1, Topic: "", Choices: []Choice{{ID: 1, PollID: 1}}},
	}

	issues := CheckCatalog(polls)

	assert.ElementsMatch(t, []CatalogIssue{
		{Kind: IssuePollIDMismatch, PollID: 1, ChoiceID: 2},
		{Kind: IssueDuplicatePollID, PollID: 1},
		{Kind: IssueEmptyTopic, PollID: 1},
		{Kind: IssueDuplicateChoiceID, PollID: 1, ChoiceID: 1},
	}, issues)
}

func TestCatalogIssueString(t *testing.T) {
	assert.Equal(t, "duplicate_choice_id: poll 2 choice 4",
		CatalogIssue{Kind: IssueDuplicateChoiceID, PollID: 2, ChoiceID: 4}.String())
	assert.Equal(t, "empty_topic: poll 3", CatalogIssue{Kind: IssueEmptyTopic, PollID: 3}.String())
}
