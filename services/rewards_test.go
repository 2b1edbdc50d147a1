package services

import (
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
)

func TestStarRefundsEmpty(t *testing.T) {
	refunds := StarRefunds(nil, nil, nil)
	assert.Empty(t, refunds)
}

func TestStarRefundsPerAuthor(t *testing.T) {
	subIdeas := []models.SubIdea{
		{AuthorID: "alice"},
		{AuthorID: "bob"},
	}
	proposals := []models.Proposal{
		{AuthorID: "bob"},
		{AuthorID: "bob"},
		{AuthorID: "carol"},
	}
	prototypes := []models.Prototype{
		{AuthorID: "carol"},
	}

	refunds := StarRefunds(subIdeas, proposals, prototypes)

	assert.Equal(t, StarsSubIdeaCreation, refunds["alice"])
	assert.Equal(t, StarsSubIdeaCreation+2*StarsProposalSubmission, refunds["bob"])
	assert.Equal(t, StarsProposalSubmission+StarsPrototypeCreation, refunds["carol"])
	assert.Len(t, refunds, 3)
}

func TestStarRefundsMatchCredits(t *testing.T) {
	// The refund total over a subtree must equal the credits its creation
	// produced, so cascade delete restores every balance exactly.
	subIdeas := []models.SubIdea{{AuthorID: "a"}, {AuthorID: "b"}, {AuthorID: "c"}}
	proposals := []models.Proposal{{AuthorID: "a"}, {AuthorID: "d"}}
	prototypes := []models.Prototype{{AuthorID: "d"}, {AuthorID: "e"}}

	refunds := StarRefunds(subIdeas, proposals, prototypes)

	total := 0
	for _, amount := range refunds {
		total += amount
	}
	expected := len(subIdeas)*StarsSubIdeaCreation +
		len(proposals)*StarsProposalSubmission +
		len(prototypes)*StarsPrototypeCreation
	assert.Equal(t, expected, total)
}
