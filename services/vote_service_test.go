package services

import (
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
)

func TestVoteTransition(t *testing.T) {
	up := &models.Vote{Value: models.VoteUp}
	down := &models.Vote{Value: models.VoteDown}

	tests := []struct {
		name     string
		existing *models.Vote
		value    int
		want     string
	}{
		{"no vote, upvote", nil, models.VoteUp, VoteActionCreated},
		{"no vote, downvote", nil, models.VoteDown, VoteActionCreated},
		{"upvoted, upvote again", up, models.VoteUp, VoteActionRemoved},
		{"upvoted, downvote", up, models.VoteDown, VoteActionFlipped},
		{"downvoted, downvote again", down, models.VoteDown, VoteActionRemoved},
		{"downvoted, upvote", down, models.VoteUp, VoteActionFlipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, voteTransition(tt.existing, tt.value))
		})
	}
}

func TestVoteTransitionRoundTrip(t *testing.T) {
	// Submitting the same value twice must land back at no vote: the first
	// submission creates, the second removes.
	assert.Equal(t, VoteActionCreated, voteTransition(nil, models.VoteUp))
	created := &models.Vote{Value: models.VoteUp}
	assert.Equal(t, VoteActionRemoved, voteTransition(created, models.VoteUp))
}
