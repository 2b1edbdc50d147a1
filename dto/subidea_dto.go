package dto

import "github.com/ideahub-simple/models"

// CreateSubIdeaRequest represents the request payload for creating a sub-idea
type CreateSubIdeaRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=open_for_prototyping self_prototyping"`
	IdeaID      string `json:"ideaId" binding:"required,uuid"`
}

// UpdateSubIdeaRequest represents the request payload for updating a sub-idea
type UpdateSubIdeaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ChangeSubIdeaStatusRequest switches a sub-idea between prototyping modes
type ChangeSubIdeaStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open_for_prototyping self_prototyping"`
}

// SubIdeaFilter represents list filter criteria for sub-ideas
type SubIdeaFilter struct {
	IdeaID string
	Page   int
	Limit  int
}

// SubIdeaDetail bundles a sub-idea with its vote aggregate
type SubIdeaDetail struct {
	models.SubIdea
	VoteCounts models.VoteCounts `json:"voteCounts"`
}
