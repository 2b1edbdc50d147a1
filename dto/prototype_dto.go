package dto

import "github.com/ideahub-simple/models"

// SubmitPrototypeRequest represents the request payload for submitting a
// prototype against an accepted proposal
type SubmitPrototypeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	LiveURL     *string  `json:"liveUrl"`
	Team        []string `json:"team"`
}

// UpdatePrototypeRequest represents the request payload for updating a prototype
type UpdatePrototypeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	LiveURL     *string `json:"liveUrl"`
}

// AddTeamMemberRequest adds one user to a prototype team
type AddTeamMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// PrototypeFilter represents list filter criteria for prototypes
type PrototypeFilter struct {
	ProposalID string
	Page       int
	Limit      int
}

// PrototypeDetail bundles a prototype with its vote aggregate
type PrototypeDetail struct {
	models.Prototype
	VoteCounts models.VoteCounts `json:"voteCounts"`
}
