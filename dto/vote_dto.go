package dto

import "github.com/ideahub-simple/models"

// CastVoteRequest carries a single up/down vote
type CastVoteRequest struct {
	Value int `json:"value" binding:"required,oneof=1 -1"`
}

// VoteResult reports the transition taken and the resulting aggregate
type VoteResult struct {
	Action     string            `json:"action"` // created, flipped, removed
	VoteCounts models.VoteCounts `json:"voteCounts"`
}
